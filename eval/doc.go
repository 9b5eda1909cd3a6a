// Package eval evaluates expressions over values using
// github.com/expr-lang/expr.
//
// Expressions see the document as doc, in its native form (maps, slices,
// strings, int64 and float64), along with the helper functions
//
//	keys(x)      sorted keys of an object
//	size(x)      number of elements, entries or bytes
//	typeOf(x)    the value type name, such as "Object" or "Integer"
//	getpath(p)   the value at a path such as "$.a[0]", or nil
//	listpath(p)  every value matched by a path with wildcards
//	whereami()   the path of the value being expanded
//	getenv(k)    an environment variable
//
// [Expand] rewrites strings inside a value: a string of the form .[expr] is
// replaced by the result of expr, and $[expr] inside a string is replaced
// by the text of its result.
package eval
