package glottie

import (
	"github.com/dhawalhost/glottie/internal/cursor"
)

// decodeGradientKey dispatches one key shared by GradientFill and
// GradientStroke objects into g, reporting whether the key belonged to
// the gradient's own attribute set. Both node builders continue this
// dispatch inline within their own key loop rather than re-entering the
// object, since "gf"/"gs" mix gradient keys with node-specific keys
// (fill rule, stroke width, caps) in one flat JSON object.
func decodeGradientKey(comp *Composition, cur *cursor.Cursor, key string, g *Gradient) bool {
	switch key {
	case "t":
		g.Type = cur.GetInt()
	case "o":
		g.Opacity = decodeScalarProperty(comp, cur)
	case "s":
		g.Start = decodeVec2Property(comp, cur)
	case "e":
		g.End = decodeVec2Property(comp, cur)
	case "h":
		g.HighlightLength = decodeScalarProperty(comp, cur)
	case "a":
		g.HighlightAngle = decodeScalarProperty(comp, cur)
	case "g":
		cur.EnterObject()
		for {
			gk, ok := cur.NextObjectKey()
			if !ok {
				break
			}
			switch gk {
			case "k":
				g.Stops = decodeGradientStopsProperty(comp, cur)
			case "p":
				g.ColorPointCount = cur.GetInt()
			default:
				skipUnknownKey(cur, gk)
			}
		}
	default:
		return false
	}
	return true
}

func fillRuleFromInt(v int) FillRule {
	switch v {
	case 1:
		return FillWinding
	case 2:
		return FillEvenOdd
	default:
		return FillWinding
	}
}

func lineCapFromInt(v int) LineCap {
	switch v {
	case 1:
		return CapFlat
	case 2:
		return CapRound
	default:
		return CapSquare
	}
}

func lineJoinFromInt(v int) LineJoin {
	switch v {
	case 1:
		return JoinMiter
	case 2:
		return JoinRound
	default:
		return JoinBevel
	}
}
