package glottie

import (
	"github.com/dhawalhost/glottie/internal/cursor"
)

// decodeDash decodes a stroke's "d" dash array: a list of objects each
// carrying one animatable length in "v".
func decodeDash(comp *Composition, cur *cursor.Cursor) Dash {
	var d Dash
	cur.EnterArray()
	for cur.NextArrayValue() {
		cur.EnterObject()
		var entry Scalar
		for {
			key, ok := cur.NextObjectKey()
			if !ok {
				break
			}
			switch key {
			case "v":
				entry = decodeScalarProperty(comp, cur)
			default:
				skipUnknownKey(cur, key)
			}
		}
		d.Entries = append(d.Entries, entry)
	}
	return d
}
