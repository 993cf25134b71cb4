package glottie

import (
	"github.com/dhawalhost/glottie/internal/cursor"
)

// decodeMask decodes one entry of a layer's "masksProperties" array.
func decodeMask(comp *Composition, cur *cursor.Cursor) *Mask {
	m := &Mask{}
	cur.EnterObject()
	for {
		key, ok := cur.NextObjectKey()
		if !ok {
			break
		}
		switch key {
		case "inv":
			m.Inverted = cur.GetBool()
		case "mode":
			m.Mode = maskModeFromString(cur.GetString())
		case "pt":
			m.Shape = decodeShapeProperty(comp, cur)
		case "o":
			m.Opacity = decodeScalarProperty(comp, cur)
		default:
			skipUnknownKey(cur, key)
		}
	}
	return m
}

// maskModeFromString selects a mask's combine mode from the first
// character of Lottie's mode string ("a" add, "s" subtract, "i"
// intersect; anything else, including "n" for none, defaults to None).
func maskModeFromString(s string) MaskMode {
	if len(s) == 0 {
		return MaskNone
	}
	switch s[0] {
	case 'a':
		return MaskAdd
	case 's':
		return MaskSubtract
	case 'i':
		return MaskIntersect
	default:
		return MaskNone
	}
}
