package glottie

import (
	"math"

	"github.com/dhawalhost/glottie/internal/cursor"
)

const degToRad = math.Pi / 180

// decodeTransform decodes a "ks" or "tr" transform value from scratch,
// entering the object itself. Used by call sites where the transform is
// its own nested JSON value (a layer's "ks", a Repeater's "tr").
func decodeTransform(comp *Composition, cur *cursor.Cursor) *Transform {
	cur.EnterObject()
	return decodeTransformBody(comp, cur)
}

// decodeTransformBody decodes a transform's key/value pairs assuming the
// enclosing object has already been entered by the caller — the shape
// of a "tr" node reached through the shape-tree dispatch table, where
// the ty-string and the transform's own fields share one already-open
// object (spec §4.2 "Shape-tree dispatch", Transform).
func decodeTransformBody(comp *Composition, cur *cursor.Cursor) *Transform {
	t := &Transform{}
	for {
		key, ok := cur.NextObjectKey()
		if !ok {
			break
		}
		switch key {
		case "a":
			t.Anchor = decodeVec2Property(comp, cur)
		case "p":
			t.Position = decodeVec2Property(comp, cur)
		case "r":
			t.Rotation = decodeScalarProperty(comp, cur)
		case "s":
			t.Scale = decodeVec2Property(comp, cur)
		case "sk":
			t.Skew = decodeScalarProperty(comp, cur)
		case "sa":
			t.SkewAxis = decodeScalarProperty(comp, cur)
		case "o":
			t.Opacity = decodeScalarProperty(comp, cur)
		default:
			skipUnknownKey(cur, key)
		}
	}

	t.staticMatrix = t.Anchor.Static() && t.Position.Static() && t.Rotation.Static() &&
		t.Scale.Static() && t.Skew.Static() && t.SkewAxis.Static()
	if t.staticMatrix {
		t.cachedMatrix = affineMatrix(t.Anchor.Value, t.Position.Value, t.Rotation.Value,
			t.Scale.Value, t.Skew.Value, t.SkewAxis.Value)
	}
	return t
}

// affineMatrix composes a Transform's individual inputs into one matrix
// in After Effects' own evaluation order: subtract the anchor, scale,
// skew, rotate, then translate to position.
func affineMatrix(anchor, position Point, rotationDeg float64, scale Point, skewDeg, skewAxisDeg float64) Matrix {
	m := Translate(position.X, position.Y)
	m = m.Multiply(RotateMatrix(rotationDeg * degToRad))
	m = m.Multiply(ShearMatrix(skewDeg*degToRad, skewAxisDeg*degToRad))
	m = m.Multiply(ScaleMatrix(scale.X/100, scale.Y/100))
	m = m.Multiply(Translate(-anchor.X, -anchor.Y))
	return m
}
