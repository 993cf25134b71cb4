package glottie

import (
	"github.com/dhawalhost/glottie/internal/cursor"
)

// drainNumbers reads every remaining element of an already-entered array
// frame as a float64, closing the array in the process. It is the shared
// primitive behind every "read a flat number list" decode below.
func drainNumbers(cur *cursor.Cursor) []float64 {
	var out []float64
	for cur.NextArrayValue() {
		out = append(out, cur.GetDouble())
	}
	return out
}

// lastNumberWinsRemaining drains the remaining elements of an
// already-entered array, keeping only the last one. Multi-dimensional
// scalar arrays in a Lottie document (e.g. a keyframe interpolator
// tangent, or a bare scalar that was mistakenly wrapped in an array)
// resolve this way rather than by position.
func lastNumberWinsRemaining(cur *cursor.Cursor) float64 {
	vals := drainNumbers(cur)
	if len(vals) == 0 {
		return 0
	}
	return vals[len(vals)-1]
}

// numberOrArrayValue decodes a scalar that may be encoded either as a
// bare JSON number or as an array of numbers (last one wins). It enters
// the array itself when needed, so the cursor may be positioned directly
// on the value.
func numberOrArrayValue(cur *cursor.Cursor) float64 {
	if cur.PeekType() == cursor.PeekArray {
		cur.EnterArray()
		return lastNumberWinsRemaining(cur)
	}
	return cur.GetDouble()
}

// positionalPointRemaining builds a Point from the first two elements of
// an already-entered array, draining and discarding any further
// elements.
func positionalPointRemaining(cur *cursor.Cursor) Point {
	vals := drainNumbers(cur)
	var p Point
	if len(vals) > 0 {
		p.X = vals[0]
	}
	if len(vals) > 1 {
		p.Y = vals[1]
	}
	return p
}

// pointFromArray decodes a Point from its own array, entering the array
// itself. Positional properties are always array-encoded, never bare
// numbers.
func pointFromArray(cur *cursor.Cursor) Point {
	cur.EnterArray()
	return positionalPointRemaining(cur)
}

// colorFromArray decodes an RGBA from its own array, entering the array
// itself; see arrayColor for the alpha-discarding rule.
func colorFromArray(cur *cursor.Cursor) RGBA {
	cur.EnterArray()
	return arrayColor(drainNumbers(cur))
}

// gradientStopsFromArray decodes a flat gradient color/opacity stop list,
// keeping every element (unlike the positional point/color decoders).
func gradientStopsFromArray(cur *cursor.Cursor) []float64 {
	cur.EnterArray()
	return drainNumbers(cur)
}

// decodePointList decodes a Lottie shape's "i", "o", or "v" array: an
// array of 2-element (or longer, extras discarded) coordinate pairs.
func decodePointList(cur *cursor.Cursor) []Point {
	cur.EnterArray()
	var pts []Point
	for cur.NextArrayValue() {
		cur.EnterArray()
		pts = append(pts, positionalPointRemaining(cur))
	}
	return pts
}

// decodeInterpolatorPoint decodes one of a keyframe interpolator's "i" or
// "o" control points, whose x/y fields may each be a bare number or an
// array of numbers (last one wins).
func decodeInterpolatorPoint(cur *cursor.Cursor) Point {
	cur.EnterObject()
	var p Point
	for {
		key, ok := cur.NextObjectKey()
		if !ok {
			break
		}
		switch key {
		case "x":
			p.X = numberOrArrayValue(cur)
		case "y":
			p.Y = numberOrArrayValue(cur)
		default:
			skipUnknownKey(cur, key)
		}
	}
	return p
}

// decodeInterpolatorName decodes a keyframe's "n" field, which may be a
// bare string or an array of strings (last one wins).
func decodeInterpolatorName(cur *cursor.Cursor) string {
	if cur.PeekType() != cursor.PeekArray {
		return cur.GetString()
	}
	cur.EnterArray()
	var name string
	for cur.NextArrayValue() {
		name = cur.GetString()
	}
	return name
}
