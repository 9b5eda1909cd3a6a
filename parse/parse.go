package parse

import (
	"github.com/goccy/go-yaml"

	"github.com/signadot/jv/debug"
	"github.com/signadot/jv/format"
	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/token"
)

func Parse(d []byte, opts ...ParseOption) *ir.Value {
	pOpts := &parseOpts{format: format.JSONFormat, maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	cps := token.DecodeCodePoints(string(d))
	if pOpts.format == format.YAMLFormat {
		return parseYAML(d, cps)
	}
	return newParser(cps, pOpts.maxDepth).parse()
}

func ParseString(s string, opts ...ParseOption) *ir.Value {
	return Parse([]byte(s), opts...)
}

// ParseCodePoints decodes JSON from code points with default options.
func ParseCodePoints(cps []rune) *ir.Value {
	return newParser(cps, DefaultMaxDepth).parse()
}

func parseYAML(d []byte, cps []rune) *ir.Value {
	src := token.EncodeCodePoints(token.TrimSpace(cps))
	if src == "" {
		return invalid(src, "empty")
	}
	var x any
	if err := yaml.Unmarshal(d, &x); err != nil {
		return invalid(src, err.Error())
	}
	v, err := ir.FromAny(x)
	if err != nil {
		return invalid(src, err.Error())
	}
	return v
}

// parser decodes ranges of cps. Every value's source is a substring of text,
// and nested containers are stepped over through match.
type parser struct {
	cps      []rune
	text     *token.Text
	match    []int
	balanced bool
	depth    int
	maxDepth int
}

func newParser(cps []rune, maxDepth int) *parser {
	match, ok := token.Matches(cps)
	return &parser{
		cps:      cps,
		text:     token.NewText(cps),
		match:    match,
		balanced: ok,
		maxDepth: maxDepth,
	}
}

func (p *parser) parse() *ir.Value {
	if !p.balanced {
		lo, hi := p.trim(0, len(p.cps))
		return invalid(p.text.Slice(lo, hi), "unbalanced")
	}
	return p.value(0, len(p.cps))
}

func (p *parser) trim(lo, hi int) (int, int) {
	for lo < hi && token.IsSpace(p.cps[lo]) {
		lo++
	}
	for hi > lo && token.IsSpace(p.cps[hi-1]) {
		hi--
	}
	return lo, hi
}

// value decodes cps[lo:hi] and records the trimmed text as the encoding of
// the result, whether or not it is valid.
func (p *parser) value(lo, hi int) *ir.Value {
	lo, hi = p.trim(lo, hi)
	src := p.text.Slice(lo, hi)
	v := p.decode(lo, hi, src)
	v.SetCachedEncoding(src)
	return v
}

func (p *parser) decode(lo, hi int, src string) *ir.Value {
	n := hi - lo
	if n == 0 {
		return invalid(src, "empty")
	}
	first, last := p.cps[lo], p.cps[hi-1]
	switch {
	case n >= 2 && first == '{' && last == '}':
		return p.object(lo+1, hi-1, src)
	case n >= 2 && first == '[' && last == ']':
		return p.array(lo+1, hi-1, src)
	case n >= 2 && first == '"' && last == '"':
		s, err := token.Unescape(p.text.Slice(lo+1, hi-1))
		if err != nil {
			return invalid(src, err.Error())
		}
		return ir.FromString(s)
	}
	switch src {
	case "null":
		return ir.Null()
	case "true":
		return ir.FromBool(true)
	case "false":
		return ir.FromBool(false)
	}
	cps := p.cps[lo:hi]
	if token.IsFloatLiteral(cps) {
		f, ok := token.ParseFloat(cps)
		if !ok {
			return invalid(src, "bad float")
		}
		return ir.FromFloat(f)
	}
	i, ok := token.ParseInteger(cps)
	if !ok {
		return invalid(src, "bad integer")
	}
	return ir.FromInt(i)
}

func (p *parser) enter() bool {
	p.depth++
	if p.depth > p.maxDepth {
		if debug.Parse() {
			debug.Logf("parse: depth %d exceeds %d", p.depth, p.maxDepth)
		}
		return false
	}
	return true
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) trailingSeparator(lo, hi int) bool {
	lo, hi = p.trim(lo, hi)
	return lo < hi && p.cps[hi-1] == ','
}

func (p *parser) blank(lo, hi int) bool {
	lo, hi = p.trim(lo, hi)
	return lo == hi
}

func (p *parser) array(lo, hi int, src string) *ir.Value {
	if !p.enter() {
		return invalid(src, "too deep")
	}
	defer p.leave()
	if p.blank(lo, hi) {
		return ir.New(ir.ArrayType)
	}
	if p.trailingSeparator(lo, hi) {
		return invalid(src, "trailing ','")
	}
	var elts []*ir.Value
	for off := lo; off < hi; {
		stop, next, ok := token.ExtractMatched(p.cps, p.match, off, hi, ',')
		if !ok {
			return invalid(src, "malformed element")
		}
		v := p.value(off, stop)
		off = next
		// an Invalid element makes the whole array Invalid
		if v.Type() == ir.InvalidType {
			return invalid(src, "invalid element")
		}
		elts = append(elts, v)
	}
	return ir.AdoptSlice(elts)
}

func (p *parser) object(lo, hi int, src string) *ir.Value {
	if !p.enter() {
		return invalid(src, "too deep")
	}
	defer p.leave()
	if p.blank(lo, hi) {
		return ir.New(ir.ObjectType)
	}
	if p.trailingSeparator(lo, hi) {
		return invalid(src, "trailing ','")
	}
	fields := map[string]*ir.Value{}
	for off := lo; off < hi; {
		kstop, next, ok := token.ExtractMatched(p.cps, p.match, off, hi, ':')
		if !ok {
			return invalid(src, "malformed key")
		}
		k := p.value(off, kstop)
		if k.Type() != ir.StringType {
			return invalid(src, "key is not a string")
		}
		voff := next
		vstop, next, ok := token.ExtractMatched(p.cps, p.match, voff, hi, ',')
		if !ok {
			return invalid(src, "missing value")
		}
		v := p.value(voff, vstop)
		off = next
		// as with arrays, one Invalid value makes the object Invalid
		if v.Type() == ir.InvalidType {
			return invalid(src, "invalid value")
		}
		fields[k.AsString()] = v
	}
	return ir.AdoptMap(fields)
}

func invalid(src, why string) *ir.Value {
	if debug.Parse() {
		debug.Logf("parse: %s: %q", why, src)
	}
	v := ir.Invalid()
	v.SetCachedEncoding(src)
	return v
}
