package ir

import (
	"encoding/hex"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Quote renders v as a JSON string literal: double-quoted, with the
// JSON-mandated escapes and \uXXXX for other control characters.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// LeafString renders a leaf node as its single-line JSON literal. The
// renders-as-text kinds (Time, Date, Decimal) come out quoted in their
// canonical string form.
func LeafString(y *Node) string {
	switch y.Type {
	case NullType:
		return "null"
	case BoolType:
		return strconv.FormatBool(y.Bool)
	case NumberType:
		if y.Int64 != nil {
			return strconv.FormatInt(*y.Int64, 10)
		}
		if y.Float64 != nil {
			return formatFloat(*y.Float64)
		}
		return "0"
	case StringType:
		return Quote(y.String)
	case TimeType:
		return Quote(y.Time.Format(time.RFC3339))
	case DateType:
		return Quote(y.Time.Format(time.DateOnly))
	case DecimalType:
		return Quote(y.Decimal.String())
	default:
		return "<" + y.Type.String() + ">"
	}
}

// formatFloat keeps floats recognizably floats: "3" becomes "3.0".
func formatFloat(f float64) string {
	v := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(v, ".eE") {
		v += ".0"
	}
	return v
}

// CompactString renders the whole tree as a compact one-line JSON
// literal, regardless of classification. Used for error payloads and
// debugging.
func CompactString(y *Node) string {
	var b strings.Builder
	y.compact(&b)
	return b.String()
}

func (y *Node) compact(b *strings.Builder) {
	switch y.Type {
	case ObjectType:
		b.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(Quote(f.String))
			b.WriteString(": ")
			y.Values[i].compact(b)
		}
		b.WriteByte('}')
	case ArrayType:
		b.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				b.WriteString(", ")
			}
			v.compact(b)
		}
		b.WriteByte(']')
	default:
		b.WriteString(LeafString(y))
	}
}
