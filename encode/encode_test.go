package encode

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/signadot/jv/format"
	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/parse"
)

func TestScalars(t *testing.T) {
	tests := []struct {
		v    *ir.Value
		want string
	}{
		{ir.Null(), "null"},
		{ir.FromBool(true), "true"},
		{ir.FromBool(false), "false"},
		{ir.FromInt(42), "42"},
		{ir.FromInt(math.MinInt64), "-9223372036854775808"},
		{ir.FromFloat(3.14159), "3.14159"},
		{ir.FromFloat(-17.03), "-17.03"},
		{ir.FromFloat(5000), "5000.0"},
		{ir.FromFloat(0), "0.0"},
		{ir.FromFloat(1e21), "1e+21"},
		{ir.FromFloat(5.3e-7), "5.3e-07"},
		{ir.FromFloat(math.NaN()), "null"},
		{ir.FromFloat(math.Inf(-1)), "null"},
		{ir.FromString("Hello, World!"), `"Hello, World!"`},
		{ir.FromString("These need to be escaped: \", \\, \b, \n, \f, \r, \t"),
			`"These need to be escaped: \", \\, \b, \n, \f, \r, \t"`},
	}
	for _, tt := range tests {
		if got := Encode(tt.v); got != tt.want {
			t.Errorf("got %s want %s", got, tt.want)
		}
	}
}

func TestFloatRoundTrip(t *testing.T) {
	for _, f := range []float64{0.1, 1.0 / 3, -17.03, 5.03e14, 5e-324, math.MaxFloat64, 123456789.0} {
		enc := Encode(ir.FromFloat(f))
		v := parse.ParseString(enc)
		if v.Type() != ir.FloatType || v.AsFloat() != f {
			t.Errorf("%g encoded as %s decoded as %s %g", f, enc, v.Type(), v.AsFloat())
		}
	}
}

func TestNonASCII(t *testing.T) {
	s := "This is the Greek word 'kosme': \u03BA\u1F79\u03C3\u03BC\u03B5"
	v := ir.FromString(s)
	if got, want := Encode(v), `"`+s+`"`; got != want {
		t.Errorf("default: got %s", got)
	}
	opts := DefaultOptions()
	opts.Reencode = true
	opts.EscapeNonASCII = true
	want := `"This is the Greek word 'kosme': \u03BA\u1F79\u03C3\u03BC\u03B5"`
	if got := ToEncoding(v, opts); got != want {
		t.Errorf("escaped: got %s", got)
	}
	for _, enc := range []string{`"` + s + `"`, want} {
		if got := parse.ParseString(enc).AsString(); got != s {
			t.Errorf("decode %s: got %q", enc, got)
		}
	}
}

func TestSurrogatePairs(t *testing.T) {
	tests := map[string]string{
		"This should be encoded as a UTF-16 surrogate pair: 𣎴": `"This should be encoded as a UTF-16 surrogate pair: \uD84C\uDFB4"`,
		"This should be encoded as a UTF-16 surrogate pair: 💩": `"This should be encoded as a UTF-16 surrogate pair: \uD83D\uDCA9"`,
	}
	for s, want := range tests {
		if got := Encode(ir.FromString(s), EscapeNonASCII(true)); got != want {
			t.Errorf("got %s want %s", got, want)
		}
		if got := parse.ParseString(want).AsString(); got != s {
			t.Errorf("decode got %q", got)
		}
	}
}

func TestInvalid(t *testing.T) {
	v := parse.ParseString("\"This is bad: \\u123X\"")
	want := "(Invalid JSON: \"This is bad: \\u123X\")"
	if got := Encode(v); got != want {
		t.Errorf("got %s", got)
	}
	if got := Encode(v, Reencode(true)); got != want {
		t.Errorf("reencode got %s", got)
	}
	if got := Encode(ir.Invalid()); got != "(Invalid JSON: )" {
		t.Errorf("zero invalid got %s", got)
	}
}

func TestEncodeArray(t *testing.T) {
	a := ir.New(ir.ArrayType)
	a.Add(ir.FromInt(42))
	a.Insert(ir.FromString("Hello"), 0)
	a.Add(ir.FromInt(3))
	a.Insert(ir.FromString("World"), 1)
	a.Remove(1)
	if got := Encode(a); got != `["Hello",42,3]` {
		t.Errorf("got %s", got)
	}
}

func TestEncodeObject(t *testing.T) {
	o := ir.New(ir.ObjectType)
	o.Set("number", ir.FromInt(42))
	o.Set("Hello", ir.FromString("World"))
	o.Set("PopChamp", ir.FromBool(true))
	o.Set("Nullptr", ir.Null())
	if got := Encode(o); got != `{"Hello":"World","Nullptr":null,"PopChamp":true,"number":42}` {
		t.Errorf("got %s", got)
	}
	o.RemoveField("number")
	if got := Encode(o); got != `{"Hello":"World","Nullptr":null,"PopChamp":true}` {
		t.Errorf("after remove got %s", got)
	}
}

func TestAddSelf(t *testing.T) {
	a := ir.New(ir.ArrayType)
	a.Add(ir.FromInt(31))
	a.Add(a)
	if got := Encode(a); got != "[31,[31]]" {
		t.Errorf("got %s", got)
	}
}

func TestReassign(t *testing.T) {
	v2 := ir.New(ir.ArrayType)
	v2.Add(ir.FromInt(31))
	v2.Add(ir.FromString("Hello"))
	v1 := v2.Clone()
	v1.Add(ir.FromBool(false))
	v2.Remove(0)
	v2.Add(ir.FromBool(true))
	if got := Encode(v1); got != `[31,"Hello",false]` {
		t.Errorf("v1 got %s", got)
	}
	if got := Encode(v2); got != `["Hello",true]` {
		t.Errorf("v2 got %s", got)
	}
}

func TestInitializerList(t *testing.T) {
	v := ir.FromSlice([]*ir.Value{ir.FromInt(42), ir.FromString("Hello, World!"), ir.FromBool(true)})
	if got := Encode(v); got != `[42,"Hello, World!",true]` {
		t.Errorf("got %s", got)
	}
}

func TestPrettyObject(t *testing.T) {
	v := parse.ParseString(`{"value": 31, "name": "Toto", "handles":[3,7], "is,live": true}`)
	opts := DefaultOptions()
	opts.Reencode = true
	opts.Pretty = true
	opts.SpacesIndentationLevels = 4
	opts.WrapThreshold = 30
	want := "{\r\n" +
		"    \"handles\": [3, 7],\r\n" +
		"    \"is,live\": true,\r\n" +
		"    \"name\": \"Toto\",\r\n" +
		"    \"value\": 31\r\n" +
		"}"
	if got := ToEncoding(v, opts); got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestPrettyArray(t *testing.T) {
	v := parse.ParseString("[1,[2,3],4,[4,9,3]]")
	want := "[\r\n" +
		"    1,\r\n" +
		"    [2, 3],\r\n" +
		"    4,\r\n" +
		"    [\r\n" +
		"        4,\r\n" +
		"        9,\r\n" +
		"        3\r\n" +
		"    ]\r\n" +
		"]"
	got := Encode(v, Reencode(true), Pretty(true), Indent(4), WrapThreshold(11))
	if got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestPrettyFits(t *testing.T) {
	v := parse.ParseString(`{"a":[1,2],"b":{}}`)
	if got := Encode(v, Reencode(true), Pretty(true)); got != `{"a": [1, 2], "b": {}}` {
		t.Errorf("got %q", got)
	}
	if got := Encode(parse.ParseString("[[]]"), Reencode(true), Pretty(true), WrapThreshold(0)); got != "[\r\n    []\r\n]" {
		t.Errorf("empty child got %q", got)
	}
	if got := Encode(parse.ParseString("{}"), Reencode(true), Pretty(true), WrapThreshold(0), Depth(10)); got != "{}" {
		t.Errorf("empty deep got %q", got)
	}
}

func TestPrettyDepth(t *testing.T) {
	v := parse.ParseString("[1,2]")
	got := Encode(v, Reencode(true), Pretty(true), WrapThreshold(5), Depth(1), Indent(2))
	if want := "[\r\n    1,\r\n    2\r\n  ]"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestCache(t *testing.T) {
	v := parse.ParseString(" [31,  7] ")
	if got := Encode(v); got != "[31,  7]" {
		t.Errorf("cached source: got %q", got)
	}
	if got := Encode(v, Reencode(true)); got != "[31,7]" {
		t.Errorf("reencode: got %q", got)
	}
	if enc, _ := v.CachedEncoding(); enc != "[31,7]" {
		t.Errorf("cache not refreshed: %q", enc)
	}
	v.Get(0).Root().Add(ir.FromInt(1))
	if got := Encode(v); got != "[31,7,1]" {
		t.Errorf("after mutation: got %q", got)
	}
	o := parse.ParseString(`{"a": {"b" : 1}}`)
	o.Field("a").Set("c", ir.FromInt(2))
	if got := Encode(o); got != `{"a":{"b":1,"c":2}}` {
		t.Errorf("nested mutation: got %q", got)
	}
}

func TestColorsBypassCache(t *testing.T) {
	v := parse.ParseString(`[1, "x"]`)
	c := NewColors()
	c.Map = map[Colorable]func(string, ...any) string{
		{Type: ir.IntegerType, Attr: ValueColor}: func(s string, _ ...any) string { return "<" + s + ">" },
	}
	got := Encode(v, EncodeColors(c))
	if got != `[<1>,"x"]` {
		t.Errorf("got %q", got)
	}
	if enc, _ := v.CachedEncoding(); enc != `[1, "x"]` {
		t.Errorf("colors touched the cache: %q", enc)
	}
}

func TestColorsWrapUsesPlainWidth(t *testing.T) {
	v := parse.ParseString(`[1,2]`)
	c := &Colors{
		Default: func(s string, _ ...any) string { return "\x1b[1m" + s + "\x1b[0m" },
	}
	got := Encode(v, EncodeColors(c), Pretty(true), WrapThreshold(6))
	if strings.Contains(got, "\r\n") {
		t.Errorf("wrapped although plain width fits: %q", got)
	}
	plain := strings.NewReplacer("\x1b[1m", "", "\x1b[0m", "").Replace(got)
	if plain != "[1, 2]" {
		t.Errorf("plain got %q", plain)
	}
}

func TestYAML(t *testing.T) {
	v := parse.ParseString(`{"b":[1,2],"a":"x"}`)
	got := Encode(v, EncodeFormat(format.YAMLFormat))
	back := parse.ParseString(got, parse.ParseYAML())
	if !ir.Equal(v, back) {
		t.Errorf("yaml round trip gave %v from\n%s", back.ToAny(), got)
	}
	if FormatFromOpts(EncodeFormat(format.YAMLFormat)) != format.YAMLFormat {
		t.Errorf("format not recorded")
	}
}

func TestEncodeTo(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := EncodeTo(buf, ir.FromInt(3)); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "3\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestWithOptions(t *testing.T) {
	o := DefaultOptions()
	o.Pretty = true
	o.Reencode = true
	if got := Encode(parse.ParseString("[1,2]"), WithOptions(o)); got != "[1, 2]" {
		t.Errorf("got %q", got)
	}
}
