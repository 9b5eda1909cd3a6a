package eval

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/parse"
)

const evalDoc = `{"a": "x", "b": [1, 2, 3], "c": 1.5, "d": {"e": true}}`

func TestEval(t *testing.T) {
	doc := parse.ParseString(evalDoc)
	cases := []struct {
		expr string
		want string
	}{
		{`doc.a`, `"x"`},
		{`doc.b[0] + 1`, `2`},
		{`len(doc.b)`, `3`},
		{`size(doc.b)`, `3`},
		{`size(doc.a)`, `1`},
		{`keys(doc)`, `["a","b","c","d"]`},
		{`keys(doc.d)`, `["e"]`},
		{`typeOf(doc.c)`, `"Float"`},
		{`typeOf(doc.b[1])`, `"Integer"`},
		{`typeOf(doc.d)`, `"Object"`},
		{`getpath("$.b[2]")`, `3`},
		{`getpath("$.d.e")`, `true`},
		{`getpath("$.zz")`, `null`},
		{`listpath("$.b[*]")`, `[1,2,3]`},
		{`whereami()`, `"$"`},
		{`doc.d.e && doc.c > 1`, `true`},
		{`map(doc.b, # * 2)`, `[2,4,6]`},
	}
	for _, c := range cases {
		t.Run(c.expr, func(t *testing.T) {
			v, err := Eval(c.expr, doc)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(c.want, encode.Encode(v)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvalEnv(t *testing.T) {
	doc := parse.ParseString(evalDoc)
	v, err := EvalEnv(`x * len(doc.b)`, doc, Env{"x": 2, "doc": "shadowed"})
	if err != nil {
		t.Fatal(err)
	}
	if v.Type() != ir.IntegerType || v.AsInt() != 6 {
		t.Errorf("got %s", encode.Encode(v))
	}
}

func TestEvalGetenv(t *testing.T) {
	t.Setenv("JV_EVAL_TEST", "yes")
	v, err := Eval(`getenv("JV_EVAL_TEST")`, ir.Null())
	if err != nil {
		t.Fatal(err)
	}
	if v.AsString() != "yes" {
		t.Errorf("got %q", v.AsString())
	}
}

func TestEvalErrors(t *testing.T) {
	doc := parse.ParseString(evalDoc)
	for _, e := range []string{`1 +`, `keys(doc.b)`, `getpath("a")`, `getpath("$.b[9]")`} {
		if _, err := Eval(e, doc); err == nil {
			t.Errorf("%s: expected error", e)
		}
	}
}

func TestExpand(t *testing.T) {
	doc := parse.ParseString(`{
		"n": ".[doc.b[0] + 1]",
		"b": [5, 6],
		"s": "first=$[doc.b[0]] name=$[name]",
		"w": [".[whereami()]"],
		"o": ".[doc.b]",
		"k": 1.5,
		"lit": "$[open"
	}`)
	got, err := Expand(doc, Env{"name": "jv"})
	if err != nil {
		t.Fatal(err)
	}
	want := parse.ParseString(`{
		"n": 6,
		"b": [5, 6],
		"s": "first=5 name=jv",
		"w": ["$.w[0]"],
		"o": [5, 6],
		"k": 1.5,
		"lit": "$[open"
	}`)
	if !ir.Equal(want, got) {
		t.Errorf("got %s", encode.Encode(got))
	}
	if doc.Field("n").AsString() != ".[doc.b[0] + 1]" {
		t.Errorf("doc modified")
	}
}

func TestExpandString(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"$", "$"},
		{"a.b", "a.b"},
		{"hi $[name]!", "hi bob!"},
		{"$[n] and .[n]", "3 and 3"},
		{"$[1.5]", "1.5"},
		{"$[n > 2]", "true"},
		{"$[nil]", "null"},
		{`$["a\]b"]`, "a]b"},
		{"$[[1, 2]]", "[1,2]"},
		{"$[[n, 7][1]] and $[[n][0]]", "7 and 3"},
		{`$[[1, 2\]]`, `$[[1, 2\]]`},
		{"$[unclosed", "$[unclosed"},
		{"x $[n", "x $[n"},
	}
	env := Env{"name": "bob", "n": 3}
	for _, c := range cases {
		got, err := ExpandString(c.in, env)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: got %q want %q", c.in, got, c.want)
		}
	}
}

func TestGetRaw(t *testing.T) {
	cases := map[string]string{
		".[x]":             "x",
		".[ x + 1 ]":       "x + 1",
		"$[x]":             "",
		".[a] and .[b]":    "",
		".[doc.b[0] + 1]":  "doc.b[0] + 1",
		".[a[0]] and .[b]": "",
		"a.[x]":            "",
	}
	for in, want := range cases {
		if got := GetRaw(in); got != want {
			t.Errorf("%q: got %q want %q", in, got, want)
		}
	}
}
