package glottie

import (
	"os"
	"testing"
)

func TestNewRejectsEmptyDocument(t *testing.T) {
	p := New(nil)
	if p.IsValid() {
		t.Fatal("expected empty buffer to be invalid")
	}
	if p.Err() != ErrEmptyDocument {
		t.Errorf("got err %v, want ErrEmptyDocument", p.Err())
	}
}

func TestNewRejectsMalformedJSON(t *testing.T) {
	p := New([]byte(`{"w": `))
	if p.IsValid() {
		t.Fatal("expected malformed JSON to be invalid")
	}
	if p.Err() != ErrMalformedJSON {
		t.Errorf("got err %v, want ErrMalformedJSON", p.Err())
	}
}

func TestNewRejectsNonObjectRoot(t *testing.T) {
	p := New([]byte(`[1, 2, 3]`))
	if p.IsValid() {
		t.Fatal("expected array root to be invalid")
	}
	if p.Err() != ErrNotAnObject {
		t.Errorf("got err %v, want ErrNotAnObject", p.Err())
	}
}

func TestMinimalComposition(t *testing.T) {
	buf, err := os.ReadFile("testdata/minimal.json")
	if err != nil {
		t.Fatal(err)
	}
	p := New(buf)
	if !p.IsValid() {
		t.Fatalf("expected valid parse, got err %v", p.Err())
	}
	comp := p.Model()
	if comp.Version != "5.7.0" {
		t.Errorf("Version = %q", comp.Version)
	}
	if comp.Width != 512 || comp.Height != 512 {
		t.Errorf("dimensions = %dx%d", comp.Width, comp.Height)
	}
	if comp.FrameRate != 30 {
		t.Errorf("FrameRate = %v", comp.FrameRate)
	}
	if len(comp.Layers) != 0 {
		t.Errorf("expected no layers, got %d", len(comp.Layers))
	}
	if !comp.Static() {
		t.Error("empty composition must be static")
	}
}

func TestHexColoredSolidLayer(t *testing.T) {
	doc := []byte(`{
		"v": "5.7.0", "w": 100, "h": 100, "ip": 0, "op": 30, "fr": 30,
		"assets": [],
		"layers": [
			{
				"ty": 1, "ind": 1, "sr": 1, "ip": 0, "op": 30, "st": 0,
				"sw": 100, "sh": 100, "sc": "#FF8800",
				"ks": {
					"a": {"a":0, "k":[0,0]},
					"p": {"a":0, "k":[50,50]},
					"r": {"a":0, "k":0},
					"s": {"a":0, "k":[100,100]},
					"sk": {"a":0, "k":0},
					"sa": {"a":0, "k":0},
					"o": {"a":0, "k":100}
				}
			}
		]
	}`)
	p := New(doc)
	if !p.IsValid() {
		t.Fatalf("expected valid parse, got err %v", p.Err())
	}
	comp := p.Model()
	if len(comp.Layers) != 1 {
		t.Fatalf("expected 1 layer, got %d", len(comp.Layers))
	}
	l := comp.Layers[0]
	if l.Type != LayerSolid {
		t.Errorf("Type = %v, want LayerSolid", l.Type)
	}
	want := RGBA{R: float64(0xFF) / 255, G: float64(0x88) / 255, B: 0, A: 1}
	if l.SolidColor != want {
		t.Errorf("SolidColor = %+v, want %+v", l.SolidColor, want)
	}
	if !l.Static() {
		t.Error("a layer with only immediate transform inputs must be static")
	}
}

func TestStaticRectangleShapeLayer(t *testing.T) {
	doc := []byte(`{
		"v": "5.7.0", "w": 100, "h": 100, "ip": 0, "op": 30, "fr": 30,
		"assets": [],
		"layers": [
			{
				"ty": 4, "ind": 1, "sr": 1, "ip": 0, "op": 30, "st": 0,
				"ks": {
					"a": {"a":0, "k":[0,0]}, "p": {"a":0, "k":[0,0]},
					"r": {"a":0, "k":0}, "s": {"a":0, "k":[100,100]},
					"sk": {"a":0, "k":0}, "sa": {"a":0, "k":0}, "o": {"a":0, "k":100}
				},
				"shapes": [
					{
						"ty": "rc",
						"p": {"a":0, "k":[50,50]},
						"s": {"a":0, "k":[80,80]},
						"r": {"a":0, "k":10}
					},
					{
						"ty": "fl",
						"c": {"a":0, "k":[1,0,0]},
						"o": {"a":0, "k":100}
					}
				]
			}
		]
	}`)
	p := New(doc)
	if !p.IsValid() {
		t.Fatalf("expected valid parse, got err %v", p.Err())
	}
	comp := p.Model()
	l := comp.Layers[0]
	if len(l.Shapes) != 2 {
		t.Fatalf("expected 2 shape nodes, got %d", len(l.Shapes))
	}
	rect, ok := l.Shapes[0].(*RectNode)
	if !ok {
		t.Fatalf("shapes[0] is %T, want *RectNode", l.Shapes[0])
	}
	if rect.Position.Value != (Point{50, 50}) {
		t.Errorf("rect position = %+v", rect.Position.Value)
	}
	if !l.Static() {
		t.Error("a shape layer with only immediate inputs must be static")
	}
	if !comp.Static() {
		t.Error("composition with one static layer must be static")
	}
}

func TestTwoKeyframeOpacityAnimation(t *testing.T) {
	doc := []byte(`{
		"v": "5.7.0", "w": 100, "h": 100, "ip": 0, "op": 60, "fr": 30,
		"assets": [],
		"layers": [
			{
				"ty": 4, "ind": 1, "sr": 1, "ip": 0, "op": 60, "st": 0,
				"ks": {
					"a": {"a":0, "k":[0,0]}, "p": {"a":0, "k":[0,0]},
					"r": {"a":0, "k":0}, "s": {"a":0, "k":[100,100]},
					"sk": {"a":0, "k":0}, "sa": {"a":0, "k":0},
					"o": {"a":1, "k": [
						{"t":0, "s":[0], "e":[100], "i":{"x":[0.667],"y":[1]}, "o":{"x":[0.333],"y":[0]}, "n":["easeInOut"]},
						{"t":30, "s":[100]}
					]}
				},
				"shapes": []
			}
		]
	}`)
	p := New(doc)
	if !p.IsValid() {
		t.Fatalf("expected valid parse, got err %v", p.Err())
	}
	comp := p.Model()
	l := comp.Layers[0]
	op := l.Transform.Opacity
	if !op.Animated {
		t.Fatal("expected animated opacity")
	}
	if len(op.Keyframes) != 1 {
		t.Fatalf("expected 1 keyframe (final entry carries no interpolator), got %d", len(op.Keyframes))
	}
	kf := op.Keyframes[0]
	if kf.StartFrame != 0 || kf.EndFrame != 30 {
		t.Errorf("frame range = [%v, %v], want [0, 30]", kf.StartFrame, kf.EndFrame)
	}
	if kf.StartValue != 0 || kf.EndValue != 100 {
		t.Errorf("value range = [%v, %v], want [0, 100]", kf.StartValue, kf.EndValue)
	}
	if l.Transform.Static() {
		t.Error("an animated opacity must make the transform non-static")
	}
}

func TestHoldKeyframe(t *testing.T) {
	doc := []byte(`{
		"v": "5.7.0", "w": 100, "h": 100, "ip": 0, "op": 60, "fr": 30,
		"assets": [],
		"layers": [
			{
				"ty": 4, "ind": 1, "sr": 1, "ip": 0, "op": 60, "st": 0,
				"ks": {
					"a": {"a":0, "k":[0,0]},
					"p": {"a":1, "k": [
						{"t":0, "s":[0,0], "h":1},
						{"t":30, "s":[100,100], "e":[200,200], "n":["linear"]},
						{"t":60, "s":[200,200]}
					]},
					"r": {"a":0, "k":0}, "s": {"a":0, "k":[100,100]},
					"sk": {"a":0, "k":0}, "sa": {"a":0, "k":0}, "o": {"a":0, "k":100}
				},
				"shapes": []
			}
		]
	}`)
	p := New(doc)
	if !p.IsValid() {
		t.Fatalf("expected valid parse, got err %v", p.Err())
	}
	comp := p.Model()
	pos := comp.Layers[0].Transform.Position
	if len(pos.Keyframes) != 2 {
		t.Fatalf("expected 2 keyframes, got %d", len(pos.Keyframes))
	}
	hold := pos.Keyframes[0]
	if !hold.IsHold() {
		t.Error("expected first keyframe to be a hold")
	}
	if hold.StartValue != (Point{0, 0}) {
		t.Errorf("hold StartValue = %+v", hold.StartValue)
	}
	// The back-patch in appendKeyframe overwrites the hold's own
	// end_frame == start_frame assignment once a successor arrives.
	if hold.EndFrame != 30 {
		t.Errorf("hold EndFrame = %v, want 30 (back-patched)", hold.EndFrame)
	}
}

func TestClosedTrianglePath(t *testing.T) {
	doc := []byte(`{
		"v": "5.7.0", "w": 100, "h": 100, "ip": 0, "op": 30, "fr": 30,
		"assets": [],
		"layers": [
			{
				"ty": 4, "ind": 1, "sr": 1, "ip": 0, "op": 30, "st": 0,
				"ks": {
					"a": {"a":0, "k":[0,0]}, "p": {"a":0, "k":[0,0]},
					"r": {"a":0, "k":0}, "s": {"a":0, "k":[100,100]},
					"sk": {"a":0, "k":0}, "sa": {"a":0, "k":0}, "o": {"a":0, "k":100}
				},
				"shapes": [
					{
						"ty": "sh",
						"ks": {
							"a": 0,
							"k": {
								"i": [[0,0],[0,0],[0,0]],
								"o": [[0,0],[0,0],[0,0]],
								"v": [[0,0],[10,0],[5,10]],
								"c": true
							}
						}
					}
				]
			}
		]
	}`)
	p := New(doc)
	if !p.IsValid() {
		t.Fatalf("expected valid parse, got err %v", p.Err())
	}
	comp := p.Model()
	pathNode, ok := comp.Layers[0].Shapes[0].(*PathNode)
	if !ok {
		t.Fatalf("shapes[0] is %T, want *PathNode", comp.Layers[0].Shapes[0])
	}
	path := pathNode.Path.Value
	if !path.Closed {
		t.Error("expected closed path")
	}
	// 1 move + 2 interior triples + 1 closing triple = 1 + 2*3 + 3 = 10 points.
	if len(path.Points) != 10 {
		t.Fatalf("expected 10 points, got %d", len(path.Points))
	}
	if path.Points[0] != (Point{0, 0}) {
		t.Errorf("first point = %+v, want move to (0,0)", path.Points[0])
	}
	// Closing triple's final point returns to the first vertex.
	if path.Points[len(path.Points)-1] != (Point{0, 0}) {
		t.Errorf("last point = %+v, want close back to (0,0)", path.Points[len(path.Points)-1])
	}
}

func TestPrecompReferenceResolution(t *testing.T) {
	doc := []byte(`{
		"v": "5.7.0", "w": 100, "h": 100, "ip": 0, "op": 30, "fr": 30,
		"assets": [
			{
				"id": "comp_0", "ty": 0, "nm": "precomp",
				"layers": [
					{
						"ty": 4, "ind": 1, "sr": 1, "ip": 0, "op": 30, "st": 0,
						"ks": {
							"a": {"a":0, "k":[0,0]}, "p": {"a":0, "k":[0,0]},
							"r": {"a":0, "k":0}, "s": {"a":0, "k":[100,100]},
							"sk": {"a":0, "k":0}, "sa": {"a":0, "k":0}, "o": {"a":0, "k":100}
						},
						"shapes": []
					}
				]
			}
		],
		"layers": [
			{
				"ty": 0, "ind": 1, "sr": 1, "ip": 0, "op": 30, "st": 0,
				"refId": "comp_0",
				"ks": {
					"a": {"a":0, "k":[0,0]}, "p": {"a":0, "k":[0,0]},
					"r": {"a":0, "k":0}, "s": {"a":0, "k":[100,100]},
					"sk": {"a":0, "k":0}, "sa": {"a":0, "k":0}, "o": {"a":0, "k":100}
				}
			}
		]
	}`)
	p := New(doc)
	if !p.IsValid() {
		t.Fatalf("expected valid parse, got err %v", p.Err())
	}
	comp := p.Model()
	precomp := comp.Layers[0]
	if len(precomp.PrecompLayers) != 1 {
		t.Fatalf("expected precomp reference to resolve to 1 layer, got %d", len(precomp.PrecompLayers))
	}
	if !precomp.HasLayerRef {
		t.Error("expected HasLayerRef")
	}
	if precomp.Static() {
		t.Error("a layer carrying an unresolved-or-not precomp reference is never static")
	}
}

func TestUnresolvedPrecompReferenceIsNotAnError(t *testing.T) {
	doc := []byte(`{
		"v": "5.7.0", "w": 100, "h": 100, "ip": 0, "op": 30, "fr": 30,
		"assets": [],
		"layers": [
			{
				"ty": 0, "ind": 1, "sr": 1, "ip": 0, "op": 30, "st": 0, "refId": "missing",
				"ks": {
					"a": {"a":0, "k":[0,0]}, "p": {"a":0, "k":[0,0]},
					"r": {"a":0, "k":0}, "s": {"a":0, "k":[100,100]},
					"sk": {"a":0, "k":0}, "sa": {"a":0, "k":0}, "o": {"a":0, "k":100}
				}
			}
		]
	}`)
	p := New(doc)
	if !p.IsValid() {
		t.Fatalf("expected valid parse, got err %v", p.Err())
	}
	comp := p.Model()
	if comp.Layers[0].PrecompLayers != nil {
		t.Error("expected nil PrecompLayers for an unresolved refId")
	}
}

func TestModelHooksRunOnPathOperatorAndRepeaterNodes(t *testing.T) {
	doc := []byte(`{
		"v": "5.7.0", "w": 100, "h": 100, "ip": 0, "op": 30, "fr": 30,
		"assets": [],
		"layers": [
			{
				"ty": 4, "ind": 1, "sr": 1, "ip": 0, "op": 30, "st": 0,
				"ks": {
					"a": {"a":0, "k":[0,0]}, "p": {"a":0, "k":[0,0]},
					"r": {"a":0, "k":0}, "s": {"a":0, "k":[100,100]},
					"sk": {"a":0, "k":0}, "sa": {"a":0, "k":0}, "o": {"a":0, "k":100}
				},
				"shapes": [
					{
						"ty": "tm",
						"s": {"a":0, "k":0}, "e": {"a":0, "k":100}, "o": {"a":0, "k":0}, "m": 1
					},
					{
						"ty": "rp",
						"c": {"a":0, "k":3}, "o": {"a":0, "k":0},
						"tr": {
							"a": {"a":0, "k":[0,0]}, "p": {"a":0, "k":[10,0]},
							"r": {"a":0, "k":0}, "s": {"a":0, "k":[100,100]},
							"sk": {"a":0, "k":0}, "sa": {"a":0, "k":0}, "o": {"a":0, "k":100}
						}
					}
				]
			}
		]
	}`)
	p := New(doc)
	if !p.IsValid() {
		t.Fatalf("expected valid parse, got err %v", p.Err())
	}

	var pathOperatorCalls, repeaterCalls int
	comp := p.Model(
		WithPathOperatorHook(func(l *Layer) { pathOperatorCalls++ }),
		WithRepeaterHook(func(r *RepeaterNode) { repeaterCalls++ }),
	)
	if !comp.Layers[0].HasPathOperator {
		t.Error("expected HasPathOperator to be set by the Trim node")
	}
	if pathOperatorCalls != 1 {
		t.Errorf("pathOperatorCalls = %d, want 1", pathOperatorCalls)
	}
	if repeaterCalls != 1 {
		t.Errorf("repeaterCalls = %d, want 1", repeaterCalls)
	}
}

func TestModelWithoutHooksIsPassthrough(t *testing.T) {
	buf, err := os.ReadFile("testdata/minimal.json")
	if err != nil {
		t.Fatal(err)
	}
	p := New(buf)
	comp := p.Model()
	if comp == nil {
		t.Fatal("expected non-nil composition")
	}
}
