// Package cursor implements the pull-style JSON reader the schema walker
// drives during a Lottie parse: a discriminated current-state plus typed
// advance operations, built on top of valyala/fastjson's parsed value
// tree. String getters return copies, so nothing the model keeps refers
// back into the parser's buffers.
package cursor

import (
	"github.com/valyala/fastjson"
)

// State is the cursor's discriminated position. Every operation either
// requires a specific State or transitions between States; any mismatch
// is a protocol violation that moves the cursor to StateError.
type State uint8

const (
	StateNull State = iota
	StateBool
	StateNumber
	StateString
	StateKey
	StateEnterObject
	StateExitObject
	StateEnterArray
	StateExitArray
	StateError
)

func (s State) String() string {
	switch s {
	case StateNull:
		return "null"
	case StateBool:
		return "bool"
	case StateNumber:
		return "number"
	case StateString:
		return "string"
	case StateKey:
		return "key"
	case StateEnterObject:
		return "entering-object"
	case StateExitObject:
		return "exiting-object"
	case StateEnterArray:
		return "entering-array"
	case StateExitArray:
		return "exiting-array"
	default:
		return "error"
	}
}

// PeekKind is the underlying JSON type reported by PeekType, independent
// of the cursor's own State discriminant.
type PeekKind uint8

const (
	PeekEnd PeekKind = iota
	PeekNull
	PeekBool
	PeekNumber
	PeekString
	PeekArray
	PeekObject
)

type frameKind uint8

const (
	frameObject frameKind = iota
	frameArray
)

type objectEntry struct {
	key string
	val *fastjson.Value
}

type frame struct {
	kind    frameKind
	entries []objectEntry // frameObject
	items   []*fastjson.Value
	idx     int
}

// Cursor is a pull-style reader over one parsed JSON document. It is not
// safe for concurrent use; a Composition parse drives exactly one Cursor
// to completion before another may begin (see spec §5).
type Cursor struct {
	parser fastjson.Parser
	stack  []frame

	state   State
	current *fastjson.Value // value at the current position, for scalar/container states
	pendKey string          // valid only when state == StateKey
	pendVal *fastjson.Value // valid only when state == StateKey

	err error
}

// New parses buf and positions the cursor at the document's single root
// value. buf is not retained beyond the parse (fastjson copies escaped
// strings into its own arena internally as needed); the caller may reuse
// buf's backing array once the composition build the cursor drives has
// returned.
func New(buf []byte) *Cursor {
	c := &Cursor{}
	root, err := c.parser.ParseBytes(buf)
	if err != nil {
		c.fail(err)
		return c
	}
	c.current = root
	c.state = c.stateForValue(root)
	return c
}

// IsValid reports whether the cursor has not hit a terminal protocol or
// JSON-syntax error. Once false, it stays false, and every operation is a
// no-op that returns a zero value.
func (c *Cursor) IsValid() bool { return c.state != StateError }

// Err returns the error that put the cursor into its terminal state, if
// any.
func (c *Cursor) Err() error { return c.err }

// State returns the cursor's current discriminated position.
func (c *Cursor) State() State { return c.state }

func (c *Cursor) fail(err error) {
	if c.state == StateError {
		return
	}
	c.state = StateError
	c.err = err
}

func (c *Cursor) stateForValue(v *fastjson.Value) State {
	if v == nil {
		return StateNull
	}
	switch v.Type() {
	case fastjson.TypeNull:
		return StateNull
	case fastjson.TypeTrue, fastjson.TypeFalse:
		return StateBool
	case fastjson.TypeNumber:
		return StateNumber
	case fastjson.TypeString:
		return StateString
	case fastjson.TypeObject:
		return StateEnterObject
	case fastjson.TypeArray:
		return StateEnterArray
	default:
		return StateError
	}
}

// afterValueConsumed advances the cursor once the value at the current
// position has been fully drained, either by a scalar getter or by
// popping the frame of a container whose close was just consumed.
func (c *Cursor) afterValueConsumed() {
	if len(c.stack) == 0 {
		// Top-level document value consumed; nothing left to iterate.
		return
	}
	top := &c.stack[len(c.stack)-1]
	switch top.kind {
	case frameObject:
		top.idx++
		if top.idx < len(top.entries) {
			c.pendKey = top.entries[top.idx].key
			c.pendVal = top.entries[top.idx].val
			c.state = StateKey
		} else {
			c.state = StateExitObject
		}
	case frameArray:
		top.idx++
		if top.idx < len(top.items) {
			c.current = top.items[top.idx]
			c.state = c.stateForValue(c.current)
		} else {
			c.state = StateExitArray
		}
	}
}

// EnterObject is valid only when State() == StateEnterObject. It advances
// past the opener, leaving the cursor at the first key (StateKey) or, for
// an empty object, at the matching close (StateExitObject).
func (c *Cursor) EnterObject() {
	if c.state != StateEnterObject {
		c.fail(errProtocol("EnterObject", c.state))
		return
	}
	obj, err := c.current.Object()
	if err != nil {
		c.fail(err)
		return
	}
	entries := make([]objectEntry, 0, obj.Len())
	obj.Visit(func(key []byte, v *fastjson.Value) {
		entries = append(entries, objectEntry{key: string(key), val: v})
	})
	c.stack = append(c.stack, frame{kind: frameObject, entries: entries})
	if len(entries) == 0 {
		c.state = StateExitObject
		return
	}
	c.pendKey = entries[0].key
	c.pendVal = entries[0].val
	c.state = StateKey
}

// EnterArray is valid only when State() == StateEnterArray. It advances
// past the opener, leaving the cursor at the first element's state or, for
// an empty array, at the matching close (StateExitArray).
func (c *Cursor) EnterArray() {
	if c.state != StateEnterArray {
		c.fail(errProtocol("EnterArray", c.state))
		return
	}
	items, err := c.current.Array()
	if err != nil {
		c.fail(err)
		return
	}
	c.stack = append(c.stack, frame{kind: frameArray, items: items})
	if len(items) == 0 {
		c.state = StateExitArray
		return
	}
	c.current = items[0]
	c.state = c.stateForValue(c.current)
}

// NextObjectKey returns the next key of the object frame currently being
// iterated and advances onto its value (the cursor's State afterward
// reflects that value's own type). At the object's close it consumes the
// close and returns ("", false). Per the cursor's documented tolerance
// (spec §9), if the cursor is instead sitting at a sibling close left by a
// caller that fully drained an inner container itself (StateExitArray or
// StateEnterObject), it reports "no more keys" without consuming anything.
func (c *Cursor) NextObjectKey() (string, bool) {
	switch c.state {
	case StateKey:
		key := c.pendKey
		c.current = c.pendVal
		c.state = c.stateForValue(c.pendVal)
		return key, true
	case StateExitObject:
		if len(c.stack) == 0 {
			// The root object's close was already consumed.
			return "", false
		}
		c.stack = c.stack[:len(c.stack)-1]
		c.afterValueConsumed()
		return "", false
	case StateExitArray, StateEnterObject:
		return "", false
	default:
		c.fail(errProtocol("NextObjectKey", c.state))
		return "", false
	}
}

// NextArrayValue reports whether another element follows in the array
// frame currently being iterated; the cursor's State already reflects
// that element when it returns true. At the array's close it consumes
// the close and returns false. It tolerates the analogous overshoot from
// StateExitObject.
func (c *Cursor) NextArrayValue() bool {
	switch c.state {
	case StateExitArray:
		c.stack = c.stack[:len(c.stack)-1]
		c.afterValueConsumed()
		return false
	case StateExitObject, StateError:
		return false
	case StateKey:
		c.fail(errProtocol("NextArrayValue", c.state))
		return false
	default:
		return true
	}
}

// GetInt requires State() == StateNumber, returns the truncated integer
// value, and advances.
func (c *Cursor) GetInt() int {
	if c.state != StateNumber {
		c.fail(errProtocol("GetInt", c.state))
		return 0
	}
	v, err := c.current.Float64()
	if err != nil {
		c.fail(err)
		return 0
	}
	c.afterValueConsumed()
	return int(v)
}

// GetDouble requires State() == StateNumber, returns the float value, and
// advances.
func (c *Cursor) GetDouble() float64 {
	if c.state != StateNumber {
		c.fail(errProtocol("GetDouble", c.state))
		return 0
	}
	v, err := c.current.Float64()
	if err != nil {
		c.fail(err)
		return 0
	}
	c.afterValueConsumed()
	return v
}

// GetBool requires State() == StateBool, returns the value, and advances.
func (c *Cursor) GetBool() bool {
	if c.state != StateBool {
		c.fail(errProtocol("GetBool", c.state))
		return false
	}
	v, err := c.current.Bool()
	if err != nil {
		c.fail(err)
		return false
	}
	c.afterValueConsumed()
	return v
}

// GetString requires State() == StateString, returns the decoded string
// (a copy of fastjson's bytes, independent of the parse), and advances.
func (c *Cursor) GetString() string {
	if c.state != StateString {
		c.fail(errProtocol("GetString", c.state))
		return ""
	}
	b, err := c.current.StringBytes()
	if err != nil {
		c.fail(err)
		return ""
	}
	c.afterValueConsumed()
	return string(b)
}

// GetNull requires State() == StateNull and advances.
func (c *Cursor) GetNull() {
	if c.state != StateNull {
		c.fail(errProtocol("GetNull", c.state))
		return
	}
	c.afterValueConsumed()
}

// PeekType returns the underlying JSON type at the current position, or
// PeekEnd when the cursor is sitting on a sibling close.
func (c *Cursor) PeekType() PeekKind {
	switch c.state {
	case StateNull:
		return PeekNull
	case StateBool:
		return PeekBool
	case StateNumber:
		return PeekNumber
	case StateString:
		return PeekString
	case StateEnterObject:
		return PeekObject
	case StateEnterArray:
		return PeekArray
	default:
		return PeekEnd
	}
}

// Raw exposes the fastjson value under the cursor's current position
// without advancing. It exists for the small set of decoder call sites
// that must look past the generic get_* dispatch — e.g. a keyframe
// tangent's "x"/"y" field that is either a bare number or an array of
// numbers whose last element wins (spec §4.3) — and would otherwise need
// a bespoke State just for that one shape.
func (c *Cursor) Raw() *fastjson.Value { return c.current }

// SkipValue drains the value at the current position regardless of its
// kind and advances past it, without requiring a prior EnterObject or
// EnterArray.
func (c *Cursor) SkipValue() {
	switch c.state {
	case StateError, StateKey:
		c.fail(errProtocol("SkipValue", c.state))
	case StateExitObject, StateExitArray:
		// Nothing under the cursor to skip; treat as already drained.
	default:
		c.afterValueConsumed()
	}
}

// SkipObject assumes EnterObject has already been called for the frame on
// top of the stack and drains it to its matching close.
func (c *Cursor) SkipObject() {
	if len(c.stack) == 0 || c.stack[len(c.stack)-1].kind != frameObject {
		c.fail(errProtocol("SkipObject", c.state))
		return
	}
	c.stack = c.stack[:len(c.stack)-1]
	c.afterValueConsumed()
}

// SkipArray assumes EnterArray has already been called for the frame on
// top of the stack and drains it to its matching close.
func (c *Cursor) SkipArray() {
	if len(c.stack) == 0 || c.stack[len(c.stack)-1].kind != frameArray {
		c.fail(errProtocol("SkipArray", c.state))
		return
	}
	c.stack = c.stack[:len(c.stack)-1]
	c.afterValueConsumed()
}

// Skip drains whatever value follows an already-consumed object key,
// dispatching on PeekType. key is accepted only so call sites can fold
// "unknown key -> skip" into one line; it plays no role in the skip
// itself.
func (c *Cursor) Skip(key string) {
	switch c.PeekType() {
	case PeekObject:
		c.EnterObject()
		c.SkipObject()
	case PeekArray:
		c.EnterArray()
		c.SkipArray()
	default:
		c.SkipValue()
	}
}

type protocolError struct {
	op    string
	state State
}

func (e *protocolError) Error() string {
	return "cursor: " + e.op + " invalid in state " + e.state.String()
}

func errProtocol(op string, s State) error { return &protocolError{op: op, state: s} }
