package glottie

import "errors"

var (
	// ErrEmptyDocument is reported by Parser.Err when the buffer passed to
	// New is empty.
	ErrEmptyDocument = errors.New("glottie: empty document")

	// ErrNotAnObject is reported by Parser.Err when the document's root
	// value is not a JSON object.
	ErrNotAnObject = errors.New("glottie: root value is not an object")

	// ErrMalformedJSON is reported by Parser.Err when the underlying
	// tokenizer could not parse the input as JSON, or when the cursor hit
	// a protocol error while walking the document (a value of the wrong
	// JSON type for its key).
	ErrMalformedJSON = errors.New("glottie: malformed JSON")
)
