package ir

import "errors"

var (
	// ErrUnsupportedType reports a value whose kind cannot be
	// classified for rendering.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrPath reports a path walk that could not continue; the
	// concrete error is always a *PathError.
	ErrPath = errors.New("invalid path")
)
