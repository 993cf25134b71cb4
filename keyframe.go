package glottie

import (
	"github.com/dhawalhost/glottie/internal/cursor"
)

// valueFunc decodes one keyframe endpoint ("s" or "e") from the cursor,
// positioned directly on that field's value.
type valueFunc[T any] func(cur *cursor.Cursor) T

// decodedKeyframe carries a keyframe's start frame — needed to back-patch
// the previous entry's end_frame regardless of what follows — plus, only
// when the keyframe named a usable interpolator, the keyframe itself.
type decodedKeyframe[T any] struct {
	startFrame float64
	kf         *Keyframe[T]
}

// decodeKeyframe decodes one entry of an animated property's keyframe
// array. kf is nil when no interpolator key was established: no "n" name
// and no hold flag ("h" sets the reserved hold key even without a name)
// (spec §9: such a keyframe is never pushed as a real entry, matching the
// source parser's own behavior of only retaining a keyframe once an
// interpolatorKey has been established); its start frame is still
// reported so the caller can back-patch the previous entry with it —
// concrete scenario 4/5 both rely on a terminal, interpolator-less
// keyframe's "t" still closing out the segment before it.
func decodeKeyframe[T any](comp *Composition, cur *cursor.Cursor, decodeValue valueFunc[T]) decodedKeyframe[T] {
	cur.EnterObject()

	var kf Keyframe[T]
	var inTangent, outTangent Point
	interpolatorKey := ""
	hold := false

	for {
		key, ok := cur.NextObjectKey()
		if !ok {
			break
		}
		switch key {
		case "i":
			inTangent = decodeInterpolatorPoint(cur)
		case "o":
			outTangent = decodeInterpolatorPoint(cur)
		case "n":
			interpolatorKey = decodeInterpolatorName(cur)
		case "t":
			kf.StartFrame = cur.GetDouble()
		case "s":
			kf.StartValue = decodeValue(cur)
		case "e":
			kf.EndValue = decodeValue(cur)
		case "ti":
			p := pointFromArray(cur)
			kf.InTangent = &p
		case "to":
			p := pointFromArray(cur)
			kf.OutTangent = &p
		case "h":
			hold = cur.GetInt() != 0
		default:
			skipUnknownKey(cur, key)
		}
	}

	if hold {
		interpolatorKey = holdInterpolatorKey
		inTangent = Point{}
		outTangent = Point{}
		kf.EndValue = kf.StartValue
		kf.EndFrame = kf.StartFrame
	}

	if interpolatorKey == "" {
		return decodedKeyframe[T]{startFrame: kf.StartFrame}
	}
	kf.Interpolator = comp.interpolator(interpolatorKey, inTangent, outTangent)
	return decodedKeyframe[T]{startFrame: kf.StartFrame, kf: &kf}
}

// appendKeyframe back-patches the previous keyframe's end frame to this
// keyframe's start frame (spec §3, Concrete Scenario 5) before appending
// — the back-patch runs even when d carries no keyframe of its own, since
// a terminal, interpolator-less keyframe's "t" is still the correct
// close for the segment before it. A hold keyframe's own
// end_frame == start_frame is set by decodeKeyframe above and is then
// unconditionally overwritten by this back-patch when the next keyframe
// arrives, exactly as the source parser leaves it — the hold assignment
// only matters for a trailing hold keyframe that has no successor.
func appendKeyframe[T any](prop *AnimatedProperty[T], d decodedKeyframe[T]) {
	if n := len(prop.Keyframes); n > 0 {
		prop.Keyframes[n-1].EndFrame = d.startFrame
	}
	if d.kf != nil {
		prop.Keyframes = append(prop.Keyframes, *d.kf)
	}
}
