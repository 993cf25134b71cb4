package glottie

import (
	"github.com/dhawalhost/glottie/internal/cursor"
)

// decodeComposition decodes the root composition object: canvas
// geometry, timing, the asset table, and the top-level layer list (spec
// §4.2 "Composition builder"). It runs the reference resolver and
// finalizes the static flag before returning.
func decodeComposition(cur *cursor.Cursor) *Composition {
	comp := newComposition()
	cur.EnterObject()
	for {
		key, ok := cur.NextObjectKey()
		if !ok {
			break
		}
		switch key {
		case "v":
			comp.Version = cur.GetString()
		case "w":
			comp.Width = cur.GetInt()
		case "h":
			comp.Height = cur.GetInt()
		case "ip":
			comp.StartFrame = cur.GetDouble()
		case "op":
			comp.EndFrame = cur.GetDouble()
		case "fr":
			comp.FrameRate = cur.GetDouble()
		case "nm":
			comp.Name = cur.GetString()
		case "assets":
			cur.EnterArray()
			for cur.NextArrayValue() {
				a := decodeAsset(comp, cur)
				comp.Assets[a.ID] = a
			}
		case "layers":
			cur.EnterArray()
			for cur.NextArrayValue() {
				comp.Layers = append(comp.Layers, decodeLayer(comp, cur))
			}
		default:
			skipUnknownKey(cur, key)
		}
	}

	resolveReferences(comp)

	static := true
	for _, l := range comp.Layers {
		static = static && l.Static()
	}
	comp.static = static
	return comp
}
