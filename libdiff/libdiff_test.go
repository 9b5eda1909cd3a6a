package libdiff

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/jv/parse"
)

func TestLines(t *testing.T) {
	from := parse.ParseString(`{"a": 1, "b": [1, 2], "c": "x"}`)
	to := parse.ParseString(`{"a": 1, "b": [1, 3], "c": "x"}`)
	got := Lines(from, to)
	want := []Diff{
		{Equal, "{"},
		{Equal, `  "a": 1,`},
		{Equal, `  "b": [`},
		{Equal, "    1,"},
		{Delete, "    2"},
		{Insert, "    3"},
		{Equal, "  ],"},
		{Equal, `  "c": "x"`},
		{Equal, "}"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !Changed(got) {
		t.Errorf("not changed")
	}
	if Changed(Lines(from, from)) {
		t.Errorf("same value changed")
	}
}

func TestRender(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Render(buf, []Diff{{Equal, "["}, {Delete, "1"}, {Insert, "2"}, {Equal, "]"}}, false); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "  [\n- 1\n+ 2\n  ]\n" {
		t.Errorf("got %q", got)
	}
}

type change struct {
	Path     string
	From, To any
}

func TestChanges(t *testing.T) {
	tests := []struct {
		from, to string
		want     []change
	}{
		{`1`, `1`, nil},
		{`1`, `2`, []change{{"$", int64(1), int64(2)}}},
		{`1`, `"1"`, []change{{"$", int64(1), "1"}}},
		{`{"a":1,"b":2}`, `{"b":3,"c":4}`, []change{
			{"$.a", int64(1), nil},
			{"$.b", int64(2), int64(3)},
			{"$.c", nil, int64(4)},
		}},
		{`{"is,live":true}`, `{"is,live":false}`, []change{{"$.'is,live'", true, false}}},
		{`[1,2,3]`, `[1,9,2,3]`, []change{{"$[1]", nil, int64(9)}}},
		{`[1,2,3]`, `[1,3]`, []change{{"$[1]", int64(2), nil}}},
		{`[1,2,3]`, `[1,5,3]`, []change{{"$[1]", int64(2), int64(5)}}},
		{`[{"a":1},{"a":2}]`, `[{"a":1},{"a":3}]`, []change{{"$[1].a", int64(2), int64(3)}}},
	}
	for _, tt := range tests {
		var got []change
		for _, c := range Changes(parse.ParseString(tt.from), parse.ParseString(tt.to)) {
			x := change{Path: c.Path}
			if c.From != nil {
				x.From = c.From.ToAny()
			}
			if c.To != nil {
				x.To = c.To.ToAny()
			}
			got = append(got, x)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s -> %s (-want +got):\n%s", tt.from, tt.to, diff)
		}
	}
}
