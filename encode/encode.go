package encode

import (
	"bytes"
	"io"
	"strings"

	"github.com/anita-format/go-anita/ir"
)

type encState struct {
	indent  int
	compact bool

	Color func(ir.Type, ColorAttr, string) string
}

func (es *encState) unit() string {
	return strings.Repeat(" ", es.indent)
}

func (es *encState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

// Encode renders node to w, one line per value where it helps and a
// single line where it doesn't: containers whose immediate children
// are all leaves collapse onto one line, everything else expands with
// one indent unit per nesting level. Rendering is all-or-nothing; on a
// classification error nothing is written to w.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &encState{indent: 4}
	for _, opt := range opts {
		opt(es)
	}
	buf := bytes.NewBuffer(nil)
	var err error
	if es.compact {
		err = encodeOneline(node, buf, es)
	} else {
		err = encode(node, buf, es, "", true)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// encode renders node at the given indent prefix. inline suppresses
// the leading prefix when the node sits right after its field's
// "key": or is the top-level call target; array elements emit their
// own prefix.
func encode(node *ir.Node, b *bytes.Buffer, es *encState, prefix string, inline bool) error {
	cls, err := ir.Classify(node)
	if err != nil {
		return err
	}
	lead := prefix
	if inline {
		lead = ""
	}
	if cls != ir.Expandable {
		b.WriteString(lead)
		return encodeOneline(node, b, es)
	}
	next := prefix + es.unit()
	switch node.Type {
	case ir.ObjectType:
		b.WriteString(lead)
		b.WriteString(es.color(ir.ObjectType, SepColor, "{"))
		for i, f := range node.Fields {
			if i > 0 {
				b.WriteString(es.color(ir.ObjectType, SepColor, ","))
			}
			b.WriteString("\n")
			b.WriteString(next)
			b.WriteString(es.color(ir.ObjectType, FieldColor, ir.Quote(f.String)))
			b.WriteString(es.color(ir.ObjectType, SepColor, ":"))
			b.WriteString(" ")
			if err := encode(node.Values[i], b, es, next, true); err != nil {
				return err
			}
		}
		b.WriteString("\n")
		b.WriteString(prefix)
		b.WriteString(es.color(ir.ObjectType, SepColor, "}"))
		return nil
	case ir.ArrayType:
		b.WriteString(lead)
		b.WriteString(es.color(ir.ArrayType, SepColor, "["))
		for i, v := range node.Values {
			if i > 0 {
				b.WriteString(es.color(ir.ArrayType, SepColor, ","))
			}
			b.WriteString("\n")
			if err := encode(v, b, es, next, false); err != nil {
				return err
			}
		}
		b.WriteString("\n")
		b.WriteString(prefix)
		b.WriteString(es.color(ir.ArrayType, SepColor, "]"))
		return nil
	default:
		// Classify said Expandable, so node is a container.
		panic("type")
	}
}

// encodeOneline renders any node as a standard single-line JSON
// literal, container or not.
func encodeOneline(node *ir.Node, b *bytes.Buffer, es *encState) error {
	switch node.Type {
	case ir.ObjectType:
		b.WriteString(es.color(ir.ObjectType, SepColor, "{"))
		for i, f := range node.Fields {
			if i > 0 {
				b.WriteString(es.color(ir.ObjectType, SepColor, ", "))
			}
			b.WriteString(es.color(ir.ObjectType, FieldColor, ir.Quote(f.String)))
			b.WriteString(es.color(ir.ObjectType, SepColor, ":"))
			b.WriteString(" ")
			if err := encodeOneline(node.Values[i], b, es); err != nil {
				return err
			}
		}
		b.WriteString(es.color(ir.ObjectType, SepColor, "}"))
		return nil
	case ir.ArrayType:
		b.WriteString(es.color(ir.ArrayType, SepColor, "["))
		for i, v := range node.Values {
			if i > 0 {
				b.WriteString(es.color(ir.ArrayType, SepColor, ", "))
			}
			if err := encodeOneline(v, b, es); err != nil {
				return err
			}
		}
		b.WriteString(es.color(ir.ArrayType, SepColor, "]"))
		return nil
	default:
		if _, err := ir.Classify(node); err != nil {
			return err
		}
		b.WriteString(es.color(node.Type, ValueColor, ir.LeafString(node)))
		return nil
	}
}
