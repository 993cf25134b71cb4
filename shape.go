package glottie

import (
	"github.com/dhawalhost/glottie/internal/cursor"
)

// decodeShapeList decodes a layer's "shapes" array or a Group's "it"
// array into an ordered ShapeNode list.
func decodeShapeList(comp *Composition, cur *cursor.Cursor, curLayer *Layer) []ShapeNode {
	cur.EnterArray()
	var nodes []ShapeNode
	for cur.NextArrayValue() {
		if n := decodeShapeNode(comp, cur, curLayer); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// decodeShapeNode decodes one shape-tree element: an object whose "ty"
// discriminant selects the variant builder that then continues draining
// the very same already-entered object (spec §4.2 "Shape-tree
// dispatch"). curLayer threads the enclosing Shape layer through so a
// Trim node can flag it as owning a path operator.
func decodeShapeNode(comp *Composition, cur *cursor.Cursor, curLayer *Layer) ShapeNode {
	cur.EnterObject()
	var node ShapeNode
	for {
		key, ok := cur.NextObjectKey()
		if !ok {
			break
		}
		if key != "ty" {
			skipUnknownKey(cur, key)
			continue
		}
		switch cur.GetString() {
		case "gr":
			node = decodeGroupNode(comp, cur, curLayer)
		case "rc":
			node = decodeRectNode(comp, cur)
		case "el":
			node = decodeEllipseNode(comp, cur)
		case "sh":
			node = decodePathNode(comp, cur)
		case "sr":
			node = decodePolystarNode(comp, cur)
		case "tr":
			node = TransformNode{decodeTransformBody(comp, cur)}
		case "fl":
			node = decodeFillNode(comp, cur)
		case "st":
			node = decodeStrokeNode(comp, cur)
		case "gf":
			node = decodeGradientFillNode(comp, cur)
		case "gs":
			node = decodeGradientStrokeNode(comp, cur)
		case "tm":
			node = decodeTrimNode(comp, cur, curLayer)
		case "rp":
			node = decodeRepeaterNode(comp, cur)
		default:
			diagWarn(DiagUnknownShapeType, "shape type not handled")
			node = nil
		}
	}
	return node
}

// decodeGroupNode decodes a "gr" node: an ordered "it" child list whose
// final element is a Transform, extracted into the group's own
// Transform field rather than kept as a child.
func decodeGroupNode(comp *Composition, cur *cursor.Cursor, curLayer *Layer) *GroupNode {
	g := &GroupNode{}
	for {
		key, ok := cur.NextObjectKey()
		if !ok {
			break
		}
		switch key {
		case "it":
			children := decodeShapeList(comp, cur, curLayer)
			if n := len(children); n > 0 {
				if tr, ok := children[n-1].(TransformNode); ok {
					g.Transform = tr.Transform
					children = children[:n-1]
				}
			}
			g.Children = children
		default:
			skipUnknownKey(cur, key)
		}
	}
	return g
}

func decodeRectNode(comp *Composition, cur *cursor.Cursor) *RectNode {
	r := &RectNode{}
	for {
		key, ok := cur.NextObjectKey()
		if !ok {
			break
		}
		switch key {
		case "p":
			r.Position = decodeVec2Property(comp, cur)
		case "s":
			r.Size = decodeVec2Property(comp, cur)
		case "r":
			r.Radius = decodeScalarProperty(comp, cur)
		case "d":
			r.Direction = cur.GetInt()
		default:
			skipUnknownKey(cur, key)
		}
	}
	return r
}

func decodeEllipseNode(comp *Composition, cur *cursor.Cursor) *EllipseNode {
	e := &EllipseNode{}
	for {
		key, ok := cur.NextObjectKey()
		if !ok {
			break
		}
		switch key {
		case "p":
			e.Position = decodeVec2Property(comp, cur)
		case "s":
			e.Size = decodeVec2Property(comp, cur)
		case "d":
			e.Direction = cur.GetInt()
		default:
			skipUnknownKey(cur, key)
		}
	}
	return e
}

func decodePathNode(comp *Composition, cur *cursor.Cursor) *PathNode {
	p := &PathNode{}
	for {
		key, ok := cur.NextObjectKey()
		if !ok {
			break
		}
		switch key {
		case "ks":
			p.Path = decodeShapeProperty(comp, cur)
		case "d":
			p.Direction = cur.GetInt()
		default:
			skipUnknownKey(cur, key)
		}
	}
	return p
}

func decodePolystarNode(comp *Composition, cur *cursor.Cursor) *PolystarNode {
	p := &PolystarNode{}
	for {
		key, ok := cur.NextObjectKey()
		if !ok {
			break
		}
		switch key {
		case "p":
			p.Position = decodeVec2Property(comp, cur)
		case "pt":
			p.PointCount = decodeScalarProperty(comp, cur)
		case "ir":
			p.InnerRadius = decodeScalarProperty(comp, cur)
		case "is":
			p.InnerRoundness = decodeScalarProperty(comp, cur)
		case "or":
			p.OuterRadius = decodeScalarProperty(comp, cur)
		case "os":
			p.OuterRoundness = decodeScalarProperty(comp, cur)
		case "r":
			p.Rotation = decodeScalarProperty(comp, cur)
		case "sy":
			switch cur.GetInt() {
			case 1:
				p.Type = PolystarStar
			case 2:
				p.Type = PolystarPolygon
			}
		case "d":
			p.Direction = cur.GetInt()
		default:
			skipUnknownKey(cur, key)
		}
	}
	return p
}

func decodeFillNode(comp *Composition, cur *cursor.Cursor) *FillNode {
	f := &FillNode{}
	for {
		key, ok := cur.NextObjectKey()
		if !ok {
			break
		}
		switch key {
		case "c":
			f.Color = decodeColorProperty(comp, cur)
		case "o":
			f.Opacity = decodeScalarProperty(comp, cur)
		case "fillEnabled":
			f.FillEnabled = cur.GetBool()
		case "r":
			f.Rule = fillRuleFromInt(cur.GetInt())
		default:
			skipUnknownKey(cur, key)
		}
	}
	return f
}

func decodeStrokeNode(comp *Composition, cur *cursor.Cursor) *StrokeNode {
	s := &StrokeNode{}
	for {
		key, ok := cur.NextObjectKey()
		if !ok {
			break
		}
		switch key {
		case "c":
			s.Color = decodeColorProperty(comp, cur)
		case "o":
			s.Opacity = decodeScalarProperty(comp, cur)
		case "w":
			s.Width = decodeScalarProperty(comp, cur)
		case "fillEnabled":
			s.FillEnabled = cur.GetBool()
		case "lc":
			s.Cap = lineCapFromInt(cur.GetInt())
		case "lj":
			s.Join = lineJoinFromInt(cur.GetInt())
		case "ml":
			s.MiterLimit = cur.GetDouble()
		case "d":
			s.Dash = decodeDash(comp, cur)
		default:
			skipUnknownKey(cur, key)
		}
	}
	return s
}

func decodeGradientFillNode(comp *Composition, cur *cursor.Cursor) *GradientFillNode {
	g := &GradientFillNode{}
	for {
		key, ok := cur.NextObjectKey()
		if !ok {
			break
		}
		if key == "r" {
			g.Rule = fillRuleFromInt(cur.GetInt())
			continue
		}
		if !decodeGradientKey(comp, cur, key, &g.Gradient) {
			skipUnknownKey(cur, key)
		}
	}
	return g
}

func decodeGradientStrokeNode(comp *Composition, cur *cursor.Cursor) *GradientStrokeNode {
	g := &GradientStrokeNode{}
	for {
		key, ok := cur.NextObjectKey()
		if !ok {
			break
		}
		switch key {
		case "w":
			g.Width = decodeScalarProperty(comp, cur)
		case "lc":
			g.Cap = lineCapFromInt(cur.GetInt())
		case "lj":
			g.Join = lineJoinFromInt(cur.GetInt())
		case "ml":
			g.MiterLimit = cur.GetDouble()
		case "d":
			g.Dash = decodeDash(comp, cur)
		default:
			if !decodeGradientKey(comp, cur, key, &g.Gradient) {
				skipUnknownKey(cur, key)
			}
		}
	}
	return g
}

func decodeTrimNode(comp *Composition, cur *cursor.Cursor, curLayer *Layer) *TrimNode {
	t := &TrimNode{}
	for {
		key, ok := cur.NextObjectKey()
		if !ok {
			break
		}
		switch key {
		case "s":
			t.Start = decodeScalarProperty(comp, cur)
		case "e":
			t.End = decodeScalarProperty(comp, cur)
		case "o":
			t.Offset = decodeScalarProperty(comp, cur)
		case "m":
			switch cur.GetInt() {
			case 1:
				t.Type = TrimSimultaneous
			case 2:
				t.Type = TrimIndividual
			}
		default:
			skipUnknownKey(cur, key)
		}
	}
	if curLayer != nil {
		curLayer.HasPathOperator = true
	}
	return t
}

func decodeRepeaterNode(comp *Composition, cur *cursor.Cursor) *RepeaterNode {
	r := &RepeaterNode{}
	for {
		key, ok := cur.NextObjectKey()
		if !ok {
			break
		}
		switch key {
		case "c":
			r.Copies = decodeScalarProperty(comp, cur)
		case "o":
			r.Offset = decodeScalarProperty(comp, cur)
		case "tr":
			r.Transform = decodeTransform(comp, cur)
		default:
			skipUnknownKey(cur, key)
		}
	}
	return r
}
