package glottie

import (
	"math"

	"github.com/dhawalhost/glottie/internal/cursor"
)

// decodeLayer decodes one entry of a composition's or asset's "layers"
// array (spec §4.2 "Layer builder").
func decodeLayer(comp *Composition, cur *cursor.Cursor) *Layer {
	l := &Layer{}
	cur.EnterObject()
	for {
		key, ok := cur.NextObjectKey()
		if !ok {
			break
		}
		switch key {
		case "ty":
			l.Type = layerTypeFromInt(cur.GetInt())
		case "ind":
			l.ID = cur.GetInt()
		case "parent":
			l.ParentID = cur.GetInt()
			l.HasParent = true
		case "refId":
			l.RefID = cur.GetString()
			l.HasLayerRef = true
			comp.toResolve = append(comp.toResolve, l)
		case "sr":
			l.TimeStretch = cur.GetDouble()
		case "tm":
			remap := decodeScalarProperty(comp, cur)
			l.TimeRemap = &remap
		case "ip":
			l.InFrame = math.Round(cur.GetDouble())
		case "op":
			l.OutFrame = math.Round(cur.GetDouble())
		case "st":
			l.StartFrame = cur.GetDouble()
		case "bounds":
			l.Bounds = decodeRect(cur)
		case "bm":
			l.BlendMode = blendModeFromInt(cur.GetInt())
		case "ks":
			l.Transform = decodeTransform(comp, cur)
		case "shapes":
			l.Shapes = decodeShapeList(comp, cur, l)
		case "sw":
			l.SolidWidth = cur.GetInt()
		case "sh":
			l.SolidHeight = cur.GetInt()
		case "sc":
			l.SolidColor = hexColor(cur.GetString())
		case "tt":
			// Documented duplicate in the source layer builder; a
			// second occurrence would simply overwrite the same field.
			l.MatteType = matteTypeFromInt(cur.GetInt())
		case "hasMask":
			l.HasMask = cur.GetBool()
		case "masksProperties":
			cur.EnterArray()
			for cur.NextArrayValue() {
				l.Masks = append(l.Masks, decodeMask(comp, cur))
			}
		case "nm":
			l.Name = cur.GetString()
		case "hd":
			l.Hidden = cur.GetBool()
		case "ao":
			l.AutoOrient = cur.GetInt() != 0
		default:
			skipUnknownKey(cur, key)
		}
	}

	static := true
	for _, s := range l.Shapes {
		static = static && s.Static()
	}
	for _, m := range l.Masks {
		static = static && m.Static()
	}
	if l.Transform != nil {
		static = static && l.Transform.Static()
	}
	static = static && !l.HasLayerRef
	l.static = static || l.Hidden

	return l
}

func decodeRect(cur *cursor.Cursor) Rect {
	var r Rect
	cur.EnterObject()
	for {
		key, ok := cur.NextObjectKey()
		if !ok {
			break
		}
		switch key {
		case "l":
			r.Left = cur.GetInt()
		case "r":
			r.Right = cur.GetInt()
		case "t":
			r.Top = cur.GetInt()
		case "b":
			r.Bottom = cur.GetInt()
		default:
			skipUnknownKey(cur, key)
		}
	}
	return r
}

func layerTypeFromInt(v int) LayerType {
	switch v {
	case 0:
		return LayerPrecomp
	case 1:
		return LayerSolid
	case 2:
		return LayerImage
	case 3:
		return LayerNull
	case 4:
		return LayerShape
	case 5:
		return LayerText
	default:
		return LayerNull
	}
}

func blendModeFromInt(v int) BlendMode {
	switch v {
	case 1:
		return BlendMultiply
	case 2:
		return BlendScreen
	case 3:
		return BlendOverlay
	default:
		return BlendNormal
	}
}

func matteTypeFromInt(v int) MatteType {
	switch v {
	case 1:
		return MatteAlpha
	case 2:
		return MatteAlphaInv
	case 3:
		return MatteLuma
	case 4:
		return MatteLumaInv
	default:
		return MatteNone
	}
}
