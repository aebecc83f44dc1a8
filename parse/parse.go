// Package parse reads JSON or YAML text into IR trees, preserving
// object field order and the int/float distinction.
package parse

import (
	"github.com/anita-format/go-anita/format"
	"github.com/anita-format/go-anita/ir"
)

type parseOpts struct {
	format format.Format
}

type ParseOption func(*parseOpts)

func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// Parse decodes one document from d. The default format is JSON.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	po := &parseOpts{}
	for _, opt := range opts {
		opt(po)
	}
	switch po.format {
	case format.YAMLFormat:
		return parseYAML(d)
	default:
		return parseJSON(d)
	}
}
