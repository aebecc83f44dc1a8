package encode

import (
	"bytes"

	"github.com/anita-format/go-anita/ir"
)

// MustString renders node densely, panicking on classification errors.
// Meant for trees already known to hold only supported kinds.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return buf.String()
}

// CompactString is MustString on one line.
func CompactString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, Compact(true)); err != nil {
		panic(err)
	}
	return buf.String()
}
