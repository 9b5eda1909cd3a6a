package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"

	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/ir"
)

func TestEnvFunc(t *testing.T) {
	env := map[string]any{}
	for _, a := range []string{"n=3", "s=hello", "a.b=[1, 2]", "a.c=true"} {
		if err := envFunc(env, a); err != nil {
			t.Fatalf("%s: %v", a, err)
		}
	}
	v, err := ir.FromAny(env)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"a":{"b":[1,2],"c":true},"n":3,"s":"hello"}`
	if diff := cmp.Diff(want, encode.Encode(v)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := envFunc(env, "novalue"); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v", err)
	}
	if err := envFunc(env, "s.x=1"); err == nil {
		t.Errorf("expected error descending into a string")
	}
}

func TestQueryPath(t *testing.T) {
	path, rest, err := queryPath("get", []string{".a[0]", "f.json"})
	if err != nil {
		t.Fatal(err)
	}
	if path != "$.a[0]" || len(rest) != 1 || rest[0] != "f.json" {
		t.Errorf("got %q %v", path, rest)
	}
	for _, args := range [][]string{nil, {""}} {
		if _, _, err := queryPath("get", args); !errors.Is(err, cli.ErrUsage) {
			t.Errorf("%v: got %v", args, err)
		}
	}
}

func TestInputs(t *testing.T) {
	if diff := cmp.Diff([]string{"-"}, inputs(nil)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b"}, inputs([]string{"a", "b"})); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
