// Package patch applies RFC 6902 JSON Patch documents and RFC 7386 merge
// patches to values.
package patch
