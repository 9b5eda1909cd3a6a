// Package jv is a JSON value library.
//
// Values are represented by [ir.Value]. This package gathers the entry
// points most programs need; [parse], [encode] and [ir] hold the rest.
package jv

import (
	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/parse"
)

// FromEncoding decodes s. Malformed input yields an Invalid value that
// remembers the text it came from.
func FromEncoding(s string) *ir.Value {
	return parse.ParseString(s)
}

// ToEncoding encodes v with the given options.
func ToEncoding(v *ir.Value, opts encode.Options) string {
	return encode.ToEncoding(v, opts)
}

func Equal(a, b *ir.Value) bool {
	return ir.Equal(a, b)
}
