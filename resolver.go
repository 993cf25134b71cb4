package glottie

// resolveReferences is pass 2 of the parse: for every layer enqueued
// during layer building (any layer that carried a "refId"), look its
// RefID up in the composition's asset map and, on a hit, share the
// asset's layer slice as that layer's PrecompLayers. A miss leaves
// PrecompLayers nil; this is not an error (spec §4.4).
//
// The pass is a single flat loop over comp.toResolve rather than a
// recursive walk, so it is structurally immune to a refId cycle: no
// layer visits another layer's resolution, each entry is resolved
// exactly once against the (already fully parsed) asset map.
func resolveReferences(comp *Composition) {
	for _, l := range comp.toResolve {
		asset, ok := comp.Assets[l.RefID]
		if !ok {
			diagWarn(DiagUnresolvedReference, "precomp refId not found in assets", "refId", l.RefID)
			continue
		}
		l.PrecompLayers = asset.Layers
	}
	comp.toResolve = nil
}

// PathOperatorHook processes every layer whose HasPathOperator flag the
// parser set (i.e. every Shape layer containing a Trim node).
type PathOperatorHook func(l *Layer)

// RepeaterHook processes every RepeaterNode the parser produced.
type RepeaterHook func(r *RepeaterNode)

// runPathOperatorObjects walks the composition invoking hook for every
// layer with HasPathOperator set. This is the "processPathOperatorObjects"
// post-pass named in spec §4.4: it is owner-driven, not part of the
// parser's own responsibilities, and runs only when a caller supplies a
// hook via Parser.Model.
func runPathOperatorObjects(comp *Composition, hook PathOperatorHook) {
	if hook == nil {
		return
	}
	for _, l := range comp.Layers {
		walkLayersForPathOperators(l, hook)
	}
}

func walkLayersForPathOperators(l *Layer, hook PathOperatorHook) {
	if l.HasPathOperator {
		hook(l)
	}
	for _, child := range l.PrecompLayers {
		walkLayersForPathOperators(child, hook)
	}
}

// runRepeaterObjects walks every shape tree in the composition invoking
// hook for each RepeaterNode found ("processRepeaterObjects").
func runRepeaterObjects(comp *Composition, hook RepeaterHook) {
	if hook == nil {
		return
	}
	for _, l := range comp.Layers {
		walkLayerShapesForRepeaters(l, hook)
	}
}

func walkLayerShapesForRepeaters(l *Layer, hook RepeaterHook) {
	for _, s := range l.Shapes {
		walkShapeNodeForRepeaters(s, hook)
	}
	for _, child := range l.PrecompLayers {
		walkLayerShapesForRepeaters(child, hook)
	}
}

func walkShapeNodeForRepeaters(n ShapeNode, hook RepeaterHook) {
	switch v := n.(type) {
	case *GroupNode:
		for _, c := range v.Children {
			walkShapeNodeForRepeaters(c, hook)
		}
	case *RepeaterNode:
		hook(v)
	}
}
