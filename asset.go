package glottie

import (
	"github.com/dhawalhost/glottie/internal/cursor"
)

// decodeAsset decodes one element of the composition's "assets" array.
func decodeAsset(comp *Composition, cur *cursor.Cursor) *Asset {
	a := &Asset{}
	cur.EnterObject()
	for {
		key, ok := cur.NextObjectKey()
		if !ok {
			break
		}
		switch key {
		case "ty":
			a.Type = cur.GetInt()
		case "id":
			a.ID = cur.GetString()
		case "nm":
			a.Name = cur.GetString()
		case "layers":
			cur.EnterArray()
			for cur.NextArrayValue() {
				a.Layers = append(a.Layers, decodeLayer(comp, cur))
			}
		default:
			skipUnknownKey(cur, key)
		}
	}
	return a
}
