package encode

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/jv/debug"
	"github.com/signadot/jv/format"
	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/token"
)

type EncState struct {
	Options

	format format.Format
	Color  func(ir.Type, ColorAttr, string) string
}

const crlf = "\r\n"

// text is a rendering along with the width it occupies once colors are
// removed.
type text struct {
	s     string
	plain int
}

// ToEncoding renders v as JSON text according to opts.
func ToEncoding(v *ir.Value, opts Options) string {
	es := &EncState{Options: opts}
	return es.encode(v, opts.NumIndentationLevels).s
}

// Encode renders v with DefaultOptions modified by opts.
func Encode(v *ir.Value, opts ...EncodeOption) string {
	es := &EncState{Options: DefaultOptions()}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsYAML() && v.Type() != ir.InvalidType {
		return encodeYAML(v)
	}
	return es.encode(v, es.NumIndentationLevels).s
}

// EncodeTo writes the encoding of v followed by a newline.
func EncodeTo(w io.Writer, v *ir.Value, opts ...EncodeOption) error {
	_, err := io.WriteString(w, Encode(v, opts...)+"\n")
	return err
}

func encodeYAML(v *ir.Value) string {
	d, err := yaml.Marshal(v.ToAny())
	if err != nil {
		return invalidText(err.Error())
	}
	return strings.TrimSuffix(string(d), "\n")
}

func invalidText(src string) string {
	return "(Invalid JSON: " + src + ")"
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) text {
	if es.Color == nil {
		return text{s: s, plain: len(s)}
	}
	return text{s: es.Color(t, a, s), plain: len(s)}
}

func (es *EncState) encode(v *ir.Value, level int) text {
	if v.Type() == ir.InvalidType {
		return es.color(ir.InvalidType, ValueColor, invalidText(v.Source()))
	}
	if es.Color == nil && !es.Reencode {
		if enc, ok := v.CachedEncoding(); ok {
			if debug.Encode() {
				debug.Logf("encode: cached %s", v.Path())
			}
			return text{s: enc, plain: len(enc)}
		}
	}
	var res text
	switch v.Type() {
	case ir.NullType:
		res = es.color(ir.NullType, ValueColor, "null")
	case ir.BoolType:
		res = es.color(ir.BoolType, ValueColor, strconv.FormatBool(v.AsBool()))
	case ir.StringType:
		res = es.color(ir.StringType, ValueColor, token.Quote(v.AsString(), es.EscapeNonASCII))
	case ir.IntegerType:
		res = es.color(ir.IntegerType, ValueColor, strconv.FormatInt(v.AsInt(), 10))
	case ir.FloatType:
		f := v.AsFloat()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			res = es.color(ir.NullType, ValueColor, "null")
		} else {
			res = es.color(ir.FloatType, ValueColor, FormatFloat(f))
		}
	case ir.ArrayType:
		elts := make([]text, 0, v.Size())
		for e := range v.Values() {
			elts = append(elts, es.encode(e, level+1))
		}
		res = es.container(ir.ArrayType, "[", "]", elts, level)
	case ir.ObjectType:
		kSep := es.color(ir.ObjectType, SepColor, es.sep(':'))
		elts := make([]text, 0, v.Size())
		for k, e := range v.Entries() {
			key := es.color(ir.ObjectType, FieldColor, token.Quote(k, es.EscapeNonASCII))
			val := es.encode(e, level+1)
			elts = append(elts, text{s: key.s + kSep.s + val.s, plain: key.plain + kSep.plain + val.plain})
		}
		res = es.container(ir.ObjectType, "{", "}", elts, level)
	}
	if es.Color == nil {
		v.SetCachedEncoding(res.s)
	}
	return res
}

func (es *EncState) sep(c byte) string {
	if es.Pretty {
		return string(c) + " "
	}
	return string(c)
}

// container lays out already encoded elements either on one line or one
// per line, whichever the wrap threshold allows.
func (es *EncState) container(t ir.Type, open, close string, elts []text, level int) text {
	o := es.color(t, SepColor, open)
	c := es.color(t, SepColor, close)
	sep := es.color(t, SepColor, es.sep(','))

	compact := &strings.Builder{}
	n := o.plain + c.plain
	compact.WriteString(o.s)
	for i, e := range elts {
		if i > 0 {
			compact.WriteString(sep.s)
			n += sep.plain
		}
		compact.WriteString(e.s)
		n += e.plain
	}
	compact.WriteString(c.s)

	indent := level * es.SpacesIndentationLevels
	if !es.Pretty || len(elts) == 0 || indent+n <= es.WrapThreshold {
		return text{s: compact.String(), plain: n}
	}

	wsep := es.color(t, SepColor, ",")
	inner := strings.Repeat(" ", (level+1)*es.SpacesIndentationLevels)
	outer := strings.Repeat(" ", indent)
	wrapped := &strings.Builder{}
	wrapped.WriteString(o.s)
	wrapped.WriteString(crlf)
	n = o.plain + len(crlf)
	for i, e := range elts {
		if i > 0 {
			wrapped.WriteString(wsep.s)
			wrapped.WriteString(crlf)
			n += wsep.plain + len(crlf)
		}
		wrapped.WriteString(inner)
		wrapped.WriteString(e.s)
		n += len(inner) + e.plain
	}
	wrapped.WriteString(crlf)
	wrapped.WriteString(outer)
	wrapped.WriteString(c.s)
	n += len(crlf) + len(outer) + c.plain
	return text{s: wrapped.String(), plain: n}
}

// FormatFloat renders f in the shortest form that reads back as the same
// float64, always including a '.' or an exponent.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
