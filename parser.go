package glottie

import (
	"github.com/dhawalhost/glottie/internal/cursor"
)

// Parser binds a byte buffer and parses it immediately (spec §6.2
// "new(buffer)"). The buffer is not retained: every string the
// Composition keeps is a copy, so the caller may reuse the buffer once
// New has returned.
type Parser struct {
	comp *Composition
	err  error
}

// New parses buf into a Composition. Parsing happens synchronously and
// entirely within this call; there is no separate "start" step.
func New(buf []byte) *Parser {
	p := &Parser{}
	if len(buf) == 0 {
		p.err = ErrEmptyDocument
		return p
	}

	c := cursor.New(buf)
	if !c.IsValid() {
		p.err = ErrMalformedJSON
		return p
	}
	if c.PeekType() != cursor.PeekObject {
		p.err = ErrNotAnObject
		return p
	}

	p.comp = decodeComposition(c)
	if !c.IsValid() {
		p.err = ErrMalformedJSON
		p.comp = nil
	}
	return p
}

// IsValid reports whether the parse completed without a terminal cursor
// error (spec §6.3). A partially-populated model behind a failed parser
// should be discarded, not inspected.
func (p *Parser) IsValid() bool { return p.err == nil }

// Err returns the reason IsValid is false, or nil.
func (p *Parser) Err() error { return p.err }

// ModelOption configures the post-pass hooks Model runs before handing
// back the composition.
type ModelOption func(*modelConfig)

type modelConfig struct {
	pathOperator PathOperatorHook
	repeater     RepeaterHook
}

// WithPathOperatorHook registers the "processPathOperatorObjects"
// post-pass hook (spec §4.4): it runs once per layer the parser flagged
// with HasPathOperator.
func WithPathOperatorHook(h PathOperatorHook) ModelOption {
	return func(c *modelConfig) { c.pathOperator = h }
}

// WithRepeaterHook registers the "processRepeaterObjects" post-pass
// hook: it runs once per RepeaterNode found anywhere in the model.
func WithRepeaterHook(h RepeaterHook) ModelOption {
	return func(c *modelConfig) { c.repeater = h }
}

// Model returns the resolved Composition, running any post-pass hooks
// supplied via opts. These hooks belong to the model's owner, not the
// parser itself (spec §4.4 "Post-pass hooks"); Model is a no-op pass-
// through when none are given. Returns nil if the parse failed.
func (p *Parser) Model(opts ...ModelOption) *Composition {
	if p.comp == nil {
		return nil
	}
	var cfg modelConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	runPathOperatorObjects(p.comp, cfg.pathOperator)
	runRepeaterObjects(p.comp, cfg.repeater)
	return p.comp
}
