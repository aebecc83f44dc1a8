// Package encode renders IR nodes as dense JSON text.
//
// Denser than a naive four-space indenter: any container whose
// immediate children are all leaves collapses onto a single line, so
//
//	node := ir.FromKeyVals(
//	    ir.KeyVal{Key: "a", Val: ir.FromInt(1)},
//	    ir.KeyVal{Key: "b", Val: ir.FromSlice([]*ir.Node{ir.FromInt(2), ir.FromInt(3)})},
//	)
//	err := encode.Encode(node, os.Stdout)
//
// prints
//
//	{
//	    "a": 1,
//	    "b": [2, 3]
//	}
//
// The output stays parseable by any standard JSON reader as long as
// the tree holds only null/bool/number/string/array/object kinds; the
// renders-as-text kinds (time, date, decimal) come out as quoted
// strings and reparse as strings.
//
// # Related Packages
//
//   - github.com/anita-format/go-anita/ir - IR representation
//   - github.com/anita-format/go-anita/parse - parse text to IR
package encode
