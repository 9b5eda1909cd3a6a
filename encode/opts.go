package encode

import "github.com/signadot/jv/format"

// Options controls how values are rendered as JSON text.
type Options struct {
	// EscapeNonASCII writes every code point above 0x7F as a \u escape.
	EscapeNonASCII bool

	// Reencode ignores cached encodings and computes fresh ones.
	Reencode bool

	// Pretty adds spaces after separators and wraps containers whose
	// compact form does not fit within WrapThreshold.
	Pretty bool

	// SpacesIndentationLevels is the number of spaces per indentation
	// level in wrapped output.
	SpacesIndentationLevels int

	// WrapThreshold is the width beyond which a container is wrapped,
	// counting the indentation of its level.
	WrapThreshold int

	// NumIndentationLevels is the indentation level of the value being
	// encoded.
	NumIndentationLevels int
}

func DefaultOptions() Options {
	return Options{
		SpacesIndentationLevels: 4,
		WrapThreshold:           60,
	}
}

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

func EscapeNonASCII(v bool) EncodeOption {
	return func(es *EncState) { es.EscapeNonASCII = v }
}
func Reencode(v bool) EncodeOption {
	return func(es *EncState) { es.Reencode = v }
}
func Pretty(v bool) EncodeOption {
	return func(es *EncState) { es.Pretty = v }
}
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.SpacesIndentationLevels = n }
}
func WrapThreshold(n int) EncodeOption {
	return func(es *EncState) { es.WrapThreshold = n }
}
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.NumIndentationLevels = n }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// WithOptions replaces all the Options fields at once.
func WithOptions(o Options) EncodeOption {
	return func(es *EncState) { es.Options = o }
}
