// Package anita renders nested data as dense JSON text and reads it
// back out by slash-delimited paths.
//
//	out, err := anita.Render(map[string]any{"a": 1, "b": []any{2, 3}})
//	// {
//	//     "a": 1,
//	//     "b": [2, 3]
//	// }
//
//	v, err := anita.Resolve(doc, "data/0/name")
package anita

import (
	"bytes"

	"github.com/anita-format/go-anita/debug"
	"github.com/anita-format/go-anita/encode"
	"github.com/anita-format/go-anita/gomap"
	"github.com/anita-format/go-anita/ir"
)

// Render converts v to IR and renders it densely with a 4-space
// indent. It fails with ir.ErrUnsupportedType if any value in v is of
// an unrepresentable kind; no partial output is returned.
func Render(v any) (string, error) {
	node, err := gomap.FromGo(v)
	if err != nil {
		return "", err
	}
	if debug.Encode() {
		debug.Logf("render %s\n", ir.CompactString(node))
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Resolve walks v by a slash path like "data/0/name" instead of
// consecutive indexing. Numeric segments index arrays only; they never
// dive into strings by position, just because strings are indexable
// like arrays, because this is usually not what you want (the Accessor
// variant allows it).
func Resolve(v any, path string) (*ir.Node, error) {
	node, err := gomap.FromGo(v)
	if err != nil {
		return nil, err
	}
	if debug.Resolve() {
		debug.Logf("resolve %q in %s\n", path, ir.CompactString(node))
	}
	return ir.Resolve(node, path)
}
