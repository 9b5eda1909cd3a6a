package parse

import "github.com/signadot/jv/format"

// DefaultMaxDepth bounds the nesting of arrays and objects.
const DefaultMaxDepth = 10000

type parseOpts struct {
	format   format.Format
	maxDepth int
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// MaxDepth sets how deeply arrays and objects may nest. Deeper input
// decodes as Invalid.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
