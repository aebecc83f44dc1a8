package anita

import (
	"fmt"
	"strings"

	"github.com/anita-format/go-anita/ir"
)

// OnlyFieldsLike filters an array of objects to the documents carrying
// at least one key that contains any of the terms, each trimmed down
// to just its matching keys. The input is not modified; kept values
// are clones.
func OnlyFieldsLike(docs *ir.Node, terms ...string) (*ir.Node, error) {
	if docs == nil || docs.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: expected list of dicts", ErrType)
	}
	res := &ir.Node{Type: ir.ArrayType}
	for _, doc := range docs.Values {
		if doc.Type != ir.ObjectType {
			return nil, fmt.Errorf("%w: expected dict element, got '%s'", ErrType, doc.Type)
		}
		kept := &ir.Node{Type: ir.ObjectType}
		for i, f := range doc.Fields {
			if !containsAny(f.String, terms) {
				continue
			}
			kept.Fields = append(kept.Fields, ir.FromString(f.String))
			kept.Values = append(kept.Values, doc.Values[i].Clone())
		}
		if len(kept.Fields) > 0 {
			res.Values = append(res.Values, kept)
		}
	}
	return res, nil
}

func containsAny(key string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(key, t) {
			return true
		}
	}
	return false
}
