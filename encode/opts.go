package encode

type EncodeOption func(*encState)

// Indent sets the width of one indent unit. The default is 4 spaces.
func Indent(n int) EncodeOption {
	return func(es *encState) { es.indent = n }
}

// Compact renders the whole tree on one line, ignoring layout
// classification.
func Compact(v bool) EncodeOption {
	return func(es *encState) { es.compact = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *encState) { es.Color = c.Color }
}
