// Package libdiff computes differences between two values.
//
// # Usage
//
//	// line oriented, over pretty encodings
//	diffs := libdiff.Lines(from, to)
//	libdiff.Render(os.Stdout, diffs, false)
//
//	// structural, one change per differing path
//	for _, c := range libdiff.Changes(from, to) {
//	    fmt.Println(c.Path)
//	}
//
// # Related Packages
//
//   - github.com/signadot/jv/ir - value representation
//   - github.com/signadot/jv/encode - encodings the line diff is taken over
package libdiff
