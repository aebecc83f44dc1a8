package anita

import (
	"errors"
	"fmt"

	"github.com/anita-format/go-anita/gomap"
	"github.com/anita-format/go-anita/ir"
)

var (
	ErrType      = errors.New("type error")
	ErrAttribute = errors.New("attribute not found")
)

// Accessor is a read-only facade over a nested structure: single-level
// field reads via Get and slash-path reads via Resolve, both against
// the same retained root.
type Accessor struct {
	root *ir.Node
}

// NewAccessor wraps v, which may be a *ir.Node or any Go value gomap
// understands. Scalar roots are rejected.
func NewAccessor(v any) (*Accessor, error) {
	node, err := gomap.FromGo(v)
	if err != nil {
		return nil, err
	}
	switch node.Type {
	case ir.ObjectType, ir.ArrayType:
		return &Accessor{root: node}, nil
	}
	return nil, fmt.Errorf("%w: expected list or dict, got '%s'", ErrType, typeName(v))
}

func typeName(v any) string {
	if n, ok := v.(*ir.Node); ok {
		return n.Type.String()
	}
	return fmt.Sprintf("%T", v)
}

// Root returns the wrapped tree.
func (a *Accessor) Root() *ir.Node {
	return a.root
}

// Get reads one immediate field of the root object. The result is the
// child node itself, not another Accessor, so chained Gets do not
// descend; use Resolve for depth greater than one.
func (a *Accessor) Get(name string) (*ir.Node, error) {
	if v := ir.Get(a.root, name); v != nil {
		return v, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrAttribute, name)
}

// Resolve walks a slash path from the root. Unlike the free
// ir.Resolve, a numeric segment may index into a string cursor by rune
// position.
func (a *Accessor) Resolve(path string) (*ir.Node, error) {
	return ir.Resolve(a.root, path, ir.StringIndexing(true))
}
