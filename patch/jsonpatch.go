package patch

import (
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/parse"
)

var (
	ErrInvalid = errors.New("invalid value")
	ErrPatch   = errors.New("patch error")
)

func marshal(v *ir.Value, what string) ([]byte, error) {
	if v.Type() == ir.InvalidType {
		return nil, fmt.Errorf("%w: %s: %s", ErrInvalid, what, encode.Encode(v))
	}
	return []byte(encode.Encode(v, encode.Reencode(true))), nil
}

func unmarshal(d []byte) (*ir.Value, error) {
	v := parse.Parse(d)
	if v.Type() == ir.InvalidType {
		return nil, fmt.Errorf("%w: patch produced %s", ErrPatch, encode.Encode(v))
	}
	return v, nil
}

// Apply applies the JSON Patch operations in ops, an array of operation
// objects, to a copy of doc.
func Apply(doc, ops *ir.Value) (*ir.Value, error) {
	od, err := marshal(ops, "operations")
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.DecodePatch(od)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	d, err := marshal(doc, "document")
	if err != nil {
		return nil, err
	}
	out, err := p.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return unmarshal(out)
}

// Merge applies a merge patch to a copy of doc.
func Merge(doc, mergePatch *ir.Value) (*ir.Value, error) {
	d, err := marshal(doc, "document")
	if err != nil {
		return nil, err
	}
	pd, err := marshal(mergePatch, "merge patch")
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, pd)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return unmarshal(out)
}

// CreateMerge returns a merge patch which turns from into to.
func CreateMerge(from, to *ir.Value) (*ir.Value, error) {
	fd, err := marshal(from, "source")
	if err != nil {
		return nil, err
	}
	td, err := marshal(to, "target")
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.CreateMergePatch(fd, td)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return unmarshal(out)
}
