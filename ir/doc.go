// Package ir represents nested JSON-like values as an explicit tree.
//
// A Node is one of the scalar kinds (null, bool, number, string, plus
// the renders-as-text kinds time, date and decimal), an array, or an
// insertion-ordered object. Trees are built by callers and read-only
// from this package's point of view: classification, rendering and
// path resolution never mutate them.
//
// # Related Packages
//
//   - github.com/anita-format/go-anita/encode - dense text rendering
//   - github.com/anita-format/go-anita/gomap - Go value bridge
//   - github.com/anita-format/go-anita/parse - JSON/YAML to IR
package ir
