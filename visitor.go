package glottie

// Visitor is the model consumer interface (spec §6.4): one visit entry
// per node type, plus an end marker for every container that recurses
// into children. Diagnostic printers and a renderer's frame evaluator
// both traverse the model through this interface rather than through
// type assertions on the concrete node types.
//
// Polystar carries no dedicated visit entry, matching the node set the
// source's own inspector traverses; a caller that needs Polystar detail
// can still reach it through the parent Group's Children slice.
type Visitor interface {
	VisitComposition(*Composition)
	EndComposition()

	VisitLayer(*Layer)
	EndLayer(*Layer)

	VisitTransform(*Transform)

	VisitGroup(*GroupNode)
	EndGroup()

	VisitShape(*PathNode)
	VisitRect(*RectNode)
	VisitEllipse(*EllipseNode)
	VisitTrim(*TrimNode)

	VisitRepeater(*RepeaterNode)
	EndRepeater()

	VisitFill(*FillNode)
	VisitGradientFill(*GradientFillNode)
	VisitStroke(*StrokeNode)
	VisitGradientStroke(*GradientStrokeNode)
}

// Accept walks the composition depth-first: VisitComposition, every
// top-level layer, then EndComposition.
func (c *Composition) Accept(v Visitor) {
	v.VisitComposition(c)
	c.VisitChildren(v)
	v.EndComposition()
}

func visitLayer(l *Layer, v Visitor) {
	v.VisitLayer(l)
	if l.Transform != nil {
		v.VisitTransform(l.Transform)
	}
	l.VisitChildren(v)
	v.EndLayer(l)
}

func visitShapeNode(n ShapeNode, v Visitor) {
	switch t := n.(type) {
	case *GroupNode:
		v.VisitGroup(t)
		for _, c := range t.Children {
			visitShapeNode(c, v)
		}
		if t.Transform != nil {
			v.VisitTransform(t.Transform)
		}
		v.EndGroup()
	case *RectNode:
		v.VisitRect(t)
	case *EllipseNode:
		v.VisitEllipse(t)
	case *PathNode:
		v.VisitShape(t)
	case *PolystarNode:
		// No dedicated visit entry; see the Visitor doc comment.
	case TransformNode:
		v.VisitTransform(t.Transform)
	case *FillNode:
		v.VisitFill(t)
	case *StrokeNode:
		v.VisitStroke(t)
	case *GradientFillNode:
		v.VisitGradientFill(t)
	case *GradientStrokeNode:
		v.VisitGradientStroke(t)
	case *TrimNode:
		v.VisitTrim(t)
	case *RepeaterNode:
		v.VisitRepeater(t)
		if t.Transform != nil {
			v.VisitTransform(t.Transform)
		}
		v.EndRepeater()
	}
}
