package ir

import (
	"maps"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/anita-format/go-anita/dating"
)

// Node is one value in a nested tree. Exactly one of the payload
// fields is meaningful, selected by Type. Objects keep their fields in
// insertion order via the parallel Fields/Values slices; Fields holds
// the string-typed key nodes.
type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Int64   *int64
	Float64 *float64
	Time    time.Time
	Decimal decimal.Decimal
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromTime(t time.Time) *Node {
	return &Node{Type: TimeType, Time: t}
}

func FromDate(d dating.Date) *Node {
	return &Node{Type: DateType, Time: d.Time()}
}

func FromDecimal(d decimal.Decimal) *Node {
	return &Node{Type: DecimalType, Decimal: d}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = append(res.Values, vs...)
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object preserving the given field order.
func FromKeyVals(kvs ...KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		res.Fields[i] = FromString(kvs[i].Key)
		res.Values[i] = kvs[i].Val
	}
	return res
}

// FromMap builds an object with fields in sorted key order. Use
// FromKeyVals when the caller has an order to preserve.
func FromMap(m map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(m))
	kvs := make([]KeyVal, len(keys))
	for i, k := range keys {
		kvs[i] = KeyVal{Key: k, Val: m[k]}
	}
	return FromKeyVals(kvs...)
}

// Get returns the value under field, or nil if y is not an object or
// has no such field.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	for i := range y.Fields {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.cloneTo(res)
}

func (y *Node) cloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Time = y.Time
	dst.Decimal = y.Decimal
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, yf := range y.Fields {
			dst.Fields[i] = yf.Clone()
		}
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}
