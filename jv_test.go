package jv

import (
	"testing"

	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/ir"
)

type pathTest struct {
	Path  string
	Doc   string
	Res   string
	NoGet bool
}

var pathTests = []pathTest{
	{
		Path: "$",
		Doc:  "null",
		Res:  "null",
	},
	{
		Path: "$.f",
		Doc:  `{"f": 1}`,
		Res:  "1",
	},
	{
		Path: "$[0]",
		Doc:  "[1,2,3]",
		Res:  "1",
	},
	{
		Path: "$",
		Doc:  " [1, 2, 3] ",
		Res:  "[1, 2, 3]",
	},
	{
		Path: "$[1].f",
		Doc:  `[0, {"f": 2, "g": 3}]`,
		Res:  "2",
	},
	{
		Path: "$.f[3]",
		Doc:  `{"a": [1,2], "f": [0,1,2,"three"]}`,
		Res:  `"three"`,
	},
	{
		Path: "$.'f[3]'[2]",
		Doc:  `{"a": [1,2], "f[3]": [0,1,2,"three"]}`,
		Res:  "2",
	},
	{
		Path: "$.'$f[\\'3]'[2]",
		Doc:  `{"a": [1,2], "$f['3]": [0,1,2,"three"]}`,
		Res:  "2",
	},
	{
		Path: "$.'is live'",
		Doc:  `{"is live": true}`,
		Res:  "true",
	},
	{
		NoGet: true,
		Path:  "$[*]",
		Doc:   "[1,2,3]",
		Res:   "[1,2,3]",
	},
	{
		NoGet: true,
		Path:  "$.a[*]",
		Doc:   `{"b": [1,2,3]}`,
		Res:   "[]",
	},
	{
		NoGet: true,
		Path:  "$.b[*]",
		Doc:   `{"b": [1,2,3]}`,
		Res:   "[1,2,3]",
	},
	{
		NoGet: true,
		Path:  "$.c.d.a",
		Doc:   `{"a": "b", "c": {"d": 2, "a": 3}}`,
		Res:   "[]",
	},
	{
		NoGet: true,
		Path:  "$...a",
		Doc:   `{"a": "b", "c": {"d": 2, "a": 3}}`,
		Res:   `["b",3]`,
	},
	{
		NoGet: true,
		Path:  "$.c...a",
		Doc:   `{"a": "b", "c": {"d": 2, "a": 3}}`,
		Res:   "[3]",
	},
	{
		NoGet: true,
		Path:  "$.c...x",
		Doc:   `{"a": "b", "c": {"d": 2, "a": 3}}`,
		Res:   "[]",
	},
}

func TestPathGet(t *testing.T) {
	for i := range pathTests {
		pathTest := &pathTests[i]
		if pathTest.NoGet {
			continue
		}
		node := FromEncoding(pathTest.Doc)
		if node.Type() == ir.InvalidType {
			t.Errorf("could not decode %q", pathTest.Doc)
			continue
		}
		res, err := node.GetPath(pathTest.Path)
		if err != nil {
			t.Error(err)
			continue
		}
		pp, err := ir.ParsePath(pathTest.Path)
		if err != nil {
			t.Error(err)
			continue
		}
		t.Logf("got path %q -> %q", pathTest.Path, pp.String())
		if res == nil {
			t.Errorf("%s: no result", pathTest.Path)
			continue
		}
		if out := encode.Encode(res); out != pathTest.Res {
			t.Errorf("%s: got %q want %q", pathTest.Path, out, pathTest.Res)
		}
	}
}

func TestPathList(t *testing.T) {
	for i := range pathTests {
		pathTest := &pathTests[i]
		in := FromEncoding(pathTest.Doc)
		lst, err := in.ListPath(nil, pathTest.Path)
		if err != nil {
			t.Error(err)
			continue
		}
		if !pathTest.NoGet {
			get, err := in.GetPath(pathTest.Path)
			if err != nil {
				t.Error(err)
				continue
			}
			if len(lst) != 1 {
				t.Errorf("%s: listed %d values", pathTest.Path, len(lst))
				continue
			}
			if !Equal(get, lst[0]) {
				t.Errorf("%s: get %s list %s", pathTest.Path, encode.Encode(get), encode.Encode(lst[0]))
			}
			continue
		}
		if ls := encode.Encode(ir.FromSlice(lst)); ls != pathTest.Res {
			t.Errorf("%s: list gave %s want %s", pathTest.Path, ls, pathTest.Res)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	docs := []string{
		`null`,
		`[1,2.5,"x",true,null]`,
		`{"a":{"b":[{"c":-1}]},"d":"é"}`,
		`1e+300`,
	}
	for _, d := range docs {
		v := FromEncoding(d)
		if v.Type() == ir.InvalidType {
			t.Errorf("%s: invalid", d)
			continue
		}
		for _, pretty := range []bool{false, true} {
			opts := encode.DefaultOptions()
			opts.Pretty = pretty
			opts.Reencode = true
			opts.WrapThreshold = 0
			txt := ToEncoding(v, opts)
			if w := FromEncoding(txt); !Equal(v, w) {
				t.Errorf("%s pretty=%t: %q did not round trip", d, pretty, txt)
			}
		}
	}
}

func TestInvalidRoundTrip(t *testing.T) {
	v := FromEncoding(" [1,] ")
	if v.Type() != ir.InvalidType {
		t.Fatalf("got %s", v.Type())
	}
	if got := ToEncoding(v, encode.DefaultOptions()); got != "(Invalid JSON: [1,])" {
		t.Errorf("got %q", got)
	}
}
