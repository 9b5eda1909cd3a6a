// Package parse decodes JSON text into values.
//
// # Usage
//
//	v := parse.ParseString(`{"name": "alice", "age": 30}`)
//	if v.Type() == ir.InvalidType {
//	    // v.Source() holds the offending text
//	}
//
//	// YAML input
//	v = parse.Parse(data, parse.ParseYAML())
//
// Decoding never fails with an error: malformed input yields an Invalid
// value which remembers the text it came from.
//
// # Related Packages
//
//   - github.com/signadot/jv/ir - value representation
//   - github.com/signadot/jv/encode - encode values to text
//   - github.com/signadot/jv/token - lexical layer
package parse
