// Package gomap bridges plain Go values and IR trees.
package gomap

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/shopspring/decimal"

	"github.com/anita-format/go-anita/dating"
	"github.com/anita-format/go-anita/ir"
)

// FromGo converts an arbitrary Go value into an IR tree. A *ir.Node
// passes through unchanged. map[string]any fields come out in sorted
// key order, since Go map iteration has no insertion order to
// preserve; use yaml.MapSlice or ir.FromKeyVals when order matters.
// Values of any other kind fail with ir.ErrUnsupportedType naming the
// Go type.
func FromGo(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		return x, nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int8:
		return ir.FromInt(int64(x)), nil
	case int16:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return ir.FromInt(int64(x)), nil
	case uint8:
		return ir.FromInt(int64(x)), nil
	case uint16:
		return ir.FromInt(int64(x)), nil
	case uint32:
		return ir.FromInt(int64(x)), nil
	case uint64:
		if x > uint64(1)<<63-1 {
			return ir.FromFloat(float64(x)), nil
		}
		return ir.FromInt(int64(x)), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return ir.FromInt(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q", ir.ErrUnsupportedType, string(x))
		}
		return ir.FromFloat(f), nil
	case time.Time:
		return ir.FromTime(x), nil
	case dating.Date:
		return ir.FromDate(x), nil
	case decimal.Decimal:
		return ir.FromDecimal(x), nil
	case []any:
		vs := make([]*ir.Node, len(x))
		for i, e := range x {
			n, err := FromGo(e)
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return ir.FromSlice(vs), nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		res := &ir.Node{Type: ir.ObjectType}
		for _, k := range keys {
			n, err := FromGo(x[k])
			if err != nil {
				return nil, err
			}
			res.Fields = append(res.Fields, ir.FromString(k))
			res.Values = append(res.Values, n)
		}
		return res, nil
	case yaml.MapSlice:
		res := &ir.Node{Type: ir.ObjectType}
		for _, item := range x {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("%w: non-string key %T", ir.ErrUnsupportedType, item.Key)
			}
			n, err := FromGo(item.Value)
			if err != nil {
				return nil, err
			}
			res.Fields = append(res.Fields, ir.FromString(key))
			res.Values = append(res.Values, n)
		}
		return res, nil
	}
	return fromReflect(v)
}

// fromReflect covers typed slices, arrays and string-keyed maps, e.g.
// []string or map[string]int.
func fromReflect(v any) (*ir.Node, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		vs := make([]*ir.Node, rv.Len())
		for i := range rv.Len() {
			n, err := FromGo(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return ir.FromSlice(vs), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: %T", ir.ErrUnsupportedType, v)
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		res := &ir.Node{Type: ir.ObjectType}
		for _, k := range keys {
			n, err := FromGo(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface())
			if err != nil {
				return nil, err
			}
			res.Fields = append(res.Fields, ir.FromString(k))
			res.Values = append(res.Values, n)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %T", ir.ErrUnsupportedType, v)
	}
}

// ToGo inverts FromGo: objects become map[string]any (field order is
// lost), arrays []any, numbers int64 or float64.
func ToGo(node *ir.Node) any {
	switch node.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return node.Bool
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return int64(0)
	case ir.StringType:
		return node.String
	case ir.TimeType:
		return node.Time
	case ir.DateType:
		return dating.DateOf(node.Time)
	case ir.DecimalType:
		return node.Decimal
	case ir.ArrayType:
		vs := make([]any, len(node.Values))
		for i, v := range node.Values {
			vs[i] = ToGo(v)
		}
		return vs
	case ir.ObjectType:
		m := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			m[f.String] = ToGo(node.Values[i])
		}
		return m
	default:
		return nil
	}
}
