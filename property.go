package glottie

import (
	"github.com/dhawalhost/glottie/internal/cursor"
)

// decodeScalarProperty decodes a "{k: ...}" animatable scalar (spec §4.3
// "Value & Animation Decoder", float family): k is either a bare number
// (immediate), an array of keyframe objects (animated), or — for a
// malformed document — a bare array of numbers, which we treat the same
// way the source parser's assertion-guarded parseArrayValue(float&) does:
// as unreachable for a well-formed document, so we fall back to
// last-number-wins rather than failing the whole parse.
func decodeScalarProperty(comp *Composition, cur *cursor.Cursor) Scalar {
	var prop Scalar
	cur.EnterObject()
	for {
		key, ok := cur.NextObjectKey()
		if !ok {
			break
		}
		switch key {
		case "k":
			if cur.PeekType() == cursor.PeekArray {
				cur.EnterArray()
				consumedAsKeyframes := false
				for cur.NextArrayValue() {
					if cur.PeekType() == cursor.PeekObject {
						consumedAsKeyframes = true
						prop.Animated = true
						appendKeyframe(&prop, decodeKeyframe(comp, cur, numberOrArrayValue))
					} else {
						prop.Value = lastNumberWinsRemaining(cur)
						break
					}
				}
				_ = consumedAsKeyframes
			} else {
				prop.Value = cur.GetDouble()
			}
		case "ix":
			// Property index, used only by After Effects expressions;
			// expression evaluation is out of scope.
			cur.SkipValue()
		default:
			skipUnknownKey(cur, key)
		}
	}
	return prop
}

// decodeVec2Property decodes an animatable 2D point/vector property
// (position, anchor, scale, size), including the spatial "ti"/"to"
// tangents a positional property's keyframes may carry.
func decodeVec2Property(comp *Composition, cur *cursor.Cursor) Vec2 {
	var prop Vec2
	cur.EnterObject()
	for {
		key, ok := cur.NextObjectKey()
		if !ok {
			break
		}
		switch key {
		case "k":
			if cur.PeekType() == cursor.PeekArray {
				cur.EnterArray()
				for cur.NextArrayValue() {
					if cur.PeekType() == cursor.PeekObject {
						prop.Animated = true
						appendKeyframe(&prop, decodeKeyframe(comp, cur, pointFromArray))
					} else {
						prop.Value = positionalPointRemaining(cur)
						break
					}
				}
			} else {
				prop.Value = pointFromArray(cur)
			}
		case "ix":
			cur.SkipValue()
		default:
			skipUnknownKey(cur, key)
		}
	}
	return prop
}

// decodeColorProperty decodes an animatable RGBA color property.
func decodeColorProperty(comp *Composition, cur *cursor.Cursor) Color {
	var prop Color
	cur.EnterObject()
	for {
		key, ok := cur.NextObjectKey()
		if !ok {
			break
		}
		switch key {
		case "k":
			if cur.PeekType() == cursor.PeekArray {
				cur.EnterArray()
				for cur.NextArrayValue() {
					if cur.PeekType() == cursor.PeekObject {
						prop.Animated = true
						appendKeyframe(&prop, decodeKeyframe(comp, cur, colorFromArray))
					} else {
						prop.Value = arrayColor(drainNumbers(cur))
						break
					}
				}
			} else {
				prop.Value = colorFromArray(cur)
			}
		case "ix":
			cur.SkipValue()
		default:
			skipUnknownKey(cur, key)
		}
	}
	return prop
}

// decodeGradientStopsProperty decodes a gradient's flat color/opacity
// stop table ("g.k"). Unlike position/color, every element of the array
// is kept, not just the leading positional handful.
func decodeGradientStopsProperty(comp *Composition, cur *cursor.Cursor) GradientStops {
	var prop GradientStops
	cur.EnterObject()
	for {
		key, ok := cur.NextObjectKey()
		if !ok {
			break
		}
		switch key {
		case "k":
			if cur.PeekType() == cursor.PeekArray {
				cur.EnterArray()
				for cur.NextArrayValue() {
					if cur.PeekType() == cursor.PeekObject {
						prop.Animated = true
						appendKeyframe(&prop, decodeKeyframe(comp, cur, func(c *cursor.Cursor) []float64 {
							return gradientStopsFromArray(c)
						}))
					} else {
						prop.Value = drainNumbers(cur)
						break
					}
				}
			}
		case "p":
			// Color point count, consumed by the owning gradient builder.
			cur.SkipValue()
		case "ix":
			cur.SkipValue()
		default:
			skipUnknownKey(cur, key)
		}
	}
	return prop
}

// decodeShapeValue decodes one ShapePath from the cursor. The value may
// be wrapped in a one-element array when it appears as a keyframe's "s"
// or "e" field.
func decodeShapeValue(cur *cursor.Cursor) ShapePath {
	arrayWrapped := cur.PeekType() == cursor.PeekArray
	if arrayWrapped {
		cur.EnterArray()
	}

	var in, out, vertices []Point
	closed := false
	cur.EnterObject()
	for {
		key, ok := cur.NextObjectKey()
		if !ok {
			break
		}
		switch key {
		case "i":
			in = decodePointList(cur)
		case "o":
			out = decodePointList(cur)
		case "v":
			vertices = decodePointList(cur)
		case "c":
			closed = cur.GetBool()
		default:
			skipUnknownKey(cur, key)
		}
	}
	if arrayWrapped {
		cur.NextArrayValue()
	}

	return buildShapePath(in, out, vertices, closed)
}

// buildShapePath converts After Effects' parallel vertex/in-tangent/
// out-tangent arrays into a cubic-Bézier point list: Move, then
// (size-1) CP1/CP2/end triples, plus one closing triple when the path is
// closed (spec §4.3 "Shape path reconstruction").
func buildShapePath(in, out, vertices []Point, closed bool) ShapePath {
	if len(in) != len(out) || len(in) != len(vertices) {
		diagWarn(DiagCorruptShape, "shape data arrays disagree in length",
			"in", len(in), "out", len(out), "v", len(vertices))
		return ShapePath{}
	}
	size := len(vertices)
	if size == 0 {
		return ShapePath{}
	}

	points := make([]Point, 0, 3*size+4)
	points = append(points, vertices[0])
	for i := 1; i < size; i++ {
		points = append(points,
			vertices[i-1].Add(out[i-1]),
			vertices[i].Add(in[i]),
			vertices[i],
		)
	}
	if closed {
		points = append(points,
			vertices[size-1].Add(out[size-1]),
			vertices[0].Add(in[0]),
			vertices[0],
		)
	}
	return ShapePath{Points: points, Closed: closed}
}

// decodeShapeProperty decodes an animatable shape-path property ("ks" on
// a Shape node), which differs from the other property kinds in that its
// non-animated "k" value is a bare shape object rather than a bare
// number or a bare number array.
func decodeShapeProperty(comp *Composition, cur *cursor.Cursor) ShapeAnim {
	var prop ShapeAnim
	cur.EnterObject()
	for {
		key, ok := cur.NextObjectKey()
		if !ok {
			break
		}
		switch key {
		case "k":
			if cur.PeekType() == cursor.PeekArray {
				cur.EnterArray()
				for cur.NextArrayValue() {
					prop.Animated = true
					appendKeyframe(&prop, decodeKeyframe(comp, cur, decodeShapeValue))
				}
			} else {
				prop.Value = decodeShapeValue(cur)
			}
		default:
			skipUnknownKey(cur, key)
		}
	}
	return prop
}
