// Package ir provides the in-memory representation of JSON values.
//
// # Values
//
// A Value is one of Invalid, Null, Bool, String, Integer, Float, Array or
// Object. Invalid is distinct from Null: it marks the result of a failed
// decode or an absent element, and accessors return a fresh Invalid value
// rather than nil or an error. Views such as AsInt or AsString are total and
// return the zero value of the requested kind on a type mismatch.
//
// Objects keep their entries keyed by string and always present them in
// lexicographic key order, so encodings are deterministic.
//
// # Ownership
//
// Containers own their children. Add, Insert and Set store a deep copy of
// the value they are given, so
//
//	a := ir.FromSlice([]*ir.Value{ir.FromInt(31)})
//	a.Add(a)
//
// leaves a holding [31,[31]] with no cycle.
//
// # Encoding cache
//
// Each Value may carry the text of its encoding. The decoder records the
// trimmed source text, and the encoder records what it produces. Any
// mutation clears the cache of the mutated value and of all its ancestors.
//
// # Paths
//
// Paths address values inside a tree with a small JSONPath-like syntax:
// $ for the root, .field or .'quoted field' for object entries, [n] for
// array elements, [*] for every child and .. for every descendant.
package ir
