package cursor

import "testing"

func TestScalarRoot(t *testing.T) {
	c := New([]byte(`42`))
	if !c.IsValid() {
		t.Fatalf("expected valid cursor, err=%v", c.Err())
	}
	if c.State() != StateNumber {
		t.Fatalf("expected StateNumber, got %v", c.State())
	}
	if got := c.GetDouble(); got != 42 {
		t.Fatalf("expected 42, got %v", got)
	}
}

func TestObjectWalk(t *testing.T) {
	c := New([]byte(`{"a":1,"b":"two","c":[1,2,3],"d":{"e":true}}`))
	if c.State() != StateEnterObject {
		t.Fatalf("expected StateEnterObject, got %v", c.State())
	}
	c.EnterObject()

	key, ok := c.NextObjectKey()
	if !ok || key != "a" {
		t.Fatalf("expected key a, got %q ok=%v", key, ok)
	}
	if v := c.GetInt(); v != 1 {
		t.Fatalf("expected 1, got %d", v)
	}

	key, ok = c.NextObjectKey()
	if !ok || key != "b" {
		t.Fatalf("expected key b, got %q ok=%v", key, ok)
	}
	if v := c.GetString(); v != "two" {
		t.Fatalf("expected two, got %q", v)
	}

	key, ok = c.NextObjectKey()
	if !ok || key != "c" {
		t.Fatalf("expected key c, got %q ok=%v", key, ok)
	}
	if c.State() != StateEnterArray {
		t.Fatalf("expected StateEnterArray, got %v", c.State())
	}
	c.EnterArray()
	count := 0
	for c.NextArrayValue() {
		c.GetInt()
		count++
	}
	if count != 3 {
		t.Fatalf("expected 3 array elements, got %d", count)
	}

	key, ok = c.NextObjectKey()
	if !ok || key != "d" {
		t.Fatalf("expected key d, got %q ok=%v", key, ok)
	}
	// Skip the nested object wholesale instead of entering it.
	c.SkipValue()

	key, ok = c.NextObjectKey()
	if ok || key != "" {
		t.Fatalf("expected no more keys, got %q ok=%v", key, ok)
	}
	if !c.IsValid() {
		t.Fatalf("expected cursor still valid, err=%v", c.Err())
	}
}

func TestEmptyObjectAndArray(t *testing.T) {
	c := New([]byte(`{"empty_obj":{},"empty_arr":[]}`))
	c.EnterObject()

	key, _ := c.NextObjectKey()
	if key != "empty_obj" {
		t.Fatalf("expected empty_obj, got %q", key)
	}
	c.EnterObject()
	if c.State() != StateExitObject {
		t.Fatalf("expected StateExitObject for empty object, got %v", c.State())
	}
	c.SkipObject()

	key, _ = c.NextObjectKey()
	if key != "empty_arr" {
		t.Fatalf("expected empty_arr, got %q", key)
	}
	c.EnterArray()
	if c.State() != StateExitArray {
		t.Fatalf("expected StateExitArray for empty array, got %v", c.State())
	}
	if c.NextArrayValue() {
		t.Fatalf("expected no elements in empty array")
	}
}

func TestProtocolViolationTerminatesCursor(t *testing.T) {
	c := New([]byte(`{"a":1}`))
	c.EnterObject()
	c.NextObjectKey() // positions on the number for "a"

	// GetString on a number is a protocol violation.
	_ = c.GetString()
	if c.IsValid() {
		t.Fatalf("expected cursor to be invalid after protocol violation")
	}
	if c.State() != StateError {
		t.Fatalf("expected StateError, got %v", c.State())
	}

	// Further operations are no-ops that return zero values.
	if v := c.GetInt(); v != 0 {
		t.Fatalf("expected 0 from a no-op getter, got %d", v)
	}
}

func TestMalformedJSON(t *testing.T) {
	c := New([]byte(`{"a":`))
	if c.IsValid() {
		t.Fatalf("expected invalid cursor for malformed JSON")
	}
	if c.Err() == nil {
		t.Fatalf("expected non-nil error")
	}
}

func TestSkipUnknownKey(t *testing.T) {
	c := New([]byte(`{"known":1,"unknown":{"nested":[1,2,{"x":1}]},"after":"ok"}`))
	c.EnterObject()

	key, _ := c.NextObjectKey()
	if key != "known" {
		t.Fatalf("expected known, got %q", key)
	}
	c.GetInt()

	key, _ = c.NextObjectKey()
	if key != "unknown" {
		t.Fatalf("expected unknown, got %q", key)
	}
	c.Skip(key)

	key, ok := c.NextObjectKey()
	if !ok || key != "after" {
		t.Fatalf("expected after, got %q ok=%v", key, ok)
	}
	if got := c.GetString(); got != "ok" {
		t.Fatalf("expected ok, got %q", got)
	}
}
