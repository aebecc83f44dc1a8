package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/anita-format/go-anita/ir"
)

var ErrParse = errors.New("parse error")

// parseJSON walks the token stream rather than unmarshaling into Go
// maps: maps would scramble field order, and UseNumber keeps integers
// integers.
func parseJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	node, err := jsonValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after document", ErrParse)
	}
	return node, nil
}

func jsonValue(dec *json.Decoder) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return jsonFromToken(dec, tok)
}

func jsonFromToken(dec *json.Decoder, tok json.Token) (*ir.Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return jsonObject(dec)
		case '[':
			return jsonArray(dec)
		default:
			return nil, fmt.Errorf("%w: unexpected %q", ErrParse, t.String())
		}
	case string:
		return ir.FromString(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return ir.FromInt(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q", ErrParse, string(t))
		}
		return ir.FromFloat(f), nil
	case bool:
		return ir.FromBool(t), nil
	case nil:
		return ir.Null(), nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %v", ErrParse, tok)
	}
}

func jsonObject(dec *json.Decoder) (*ir.Node, error) {
	res := &ir.Node{Type: ir.ObjectType}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key %v", ErrParse, keyTok)
		}
		val, err := jsonValue(dec)
		if err != nil {
			return nil, err
		}
		res.Fields = append(res.Fields, ir.FromString(key))
		res.Values = append(res.Values, val)
	}
	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return res, nil
}

func jsonArray(dec *json.Decoder) (*ir.Node, error) {
	res := &ir.Node{Type: ir.ArrayType}
	for dec.More() {
		val, err := jsonValue(dec)
		if err != nil {
			return nil, err
		}
		res.Values = append(res.Values, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return res, nil
}
