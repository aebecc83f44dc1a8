package ir

import "fmt"

// Class partitions nodes for layout: leaves, containers that collapse
// onto one line, and containers that must expand.
type Class int

const (
	// Atomic is a leaf value with no children.
	Atomic Class = iota
	// Oneliner is a container whose immediate children are all Atomic.
	Oneliner
	// Expandable is a container with at least one non-Atomic child.
	Expandable
)

func (c Class) String() string {
	switch c {
	case Atomic:
		return "Atomic"
	case Oneliner:
		return "Oneliner"
	case Expandable:
		return "Expandable"
	default:
		return "<unknown class>"
	}
}

// Classify decides how y lays out. It inspects only y and the types of
// its immediate children, never mutates, and reports
// ErrUnsupportedType for any node of an unrecognized kind.
func Classify(y *Node) (Class, error) {
	if !y.Type.valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedType, y.Type)
	}
	if y.Type.IsLeaf() {
		return Atomic, nil
	}
	for _, v := range y.Values {
		if !v.Type.valid() {
			return 0, fmt.Errorf("%w: %s", ErrUnsupportedType, v.Type)
		}
		if !v.Type.IsLeaf() {
			return Expandable, nil
		}
	}
	return Oneliner, nil
}
