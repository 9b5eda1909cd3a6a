// Package encode renders values as JSON text.
//
// # Usage
//
//	v := ir.FromMap(map[string]*ir.Value{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	s := encode.Encode(v) // {"age":30,"name":"alice"}
//
//	// Pretty output, always recomputed
//	s = encode.Encode(v, encode.Pretty(true), encode.Reencode(true))
//
// Unless Reencode is set, a value that already carries an encoding, either
// from decoding or from an earlier Encode, is rendered as that text.
// Colored output never reads or writes that cache.
//
// # Related Packages
//
//   - github.com/signadot/jv/ir - value representation
//   - github.com/signadot/jv/parse - parse text to values
package encode
