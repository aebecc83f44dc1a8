package parse

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/anita-format/go-anita/gomap"
	"github.com/anita-format/go-anita/ir"
)

// parseYAML decodes with ordered maps so that mapping key order
// survives the trip into IR.
func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return gomap.FromGo(v)
}
