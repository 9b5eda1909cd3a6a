package token

import "unicode/utf8"

// DecodeCodePoints splits s into code points. Bytes which are not valid
// UTF-8 decode as utf8.RuneError.
func DecodeCodePoints(s string) []rune {
	return []rune(s)
}

func EncodeCodePoints(cps []rune) string {
	d := make([]byte, 0, len(cps))
	for _, r := range cps {
		d = utf8.AppendRune(d, r)
	}
	return string(d)
}

func IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

// TrimSpace returns the subslice of cps without leading and trailing JSON
// whitespace.
func TrimSpace(cps []rune) []rune {
	i, j := 0, len(cps)
	for i < j && IsSpace(cps[i]) {
		i++
	}
	for j > i && IsSpace(cps[j-1]) {
		j--
	}
	return cps[i:j]
}

// Text is code points encoded once as UTF-8 with the byte offset of each,
// so that any range of them can be sliced out without copying.
type Text struct {
	s    string
	offs []int
}

func NewText(cps []rune) *Text {
	d := make([]byte, 0, len(cps))
	offs := make([]int, len(cps)+1)
	for i, r := range cps {
		offs[i] = len(d)
		d = utf8.AppendRune(d, r)
	}
	offs[len(cps)] = len(d)
	return &Text{s: string(d), offs: offs}
}

// Slice returns the text of code points [lo, hi).
func (t *Text) Slice(lo, hi int) string {
	return t.s[t.offs[lo]:t.offs[hi]]
}
