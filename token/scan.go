package token

// NotFound is the next offset Extract reports for a malformed or empty
// slice.
const NotFound = -1

// Extract scans cps from offset for the next element ending at an
// unnested, unquoted delim or at the end of cps. It returns the element
// without the delimiter and the offset just past it.
//
// Quotes, brackets and braces push the closer they expect; while the stack
// is not empty delim is not significant. Inside quotes only the closing
// quote matters and a backslash escapes the following code point. A closer
// that is not the expected one, or a stack that is not empty at the end of
// cps, makes the slice malformed.
func Extract(cps []rune, offset int, delim rune) (value []rune, next int, ok bool) {
	if offset < 0 || offset >= len(cps) {
		return nil, NotFound, false
	}
	var stack []rune
	inString, escaped := false, false
	for i := offset; i < len(cps); i++ {
		r := cps[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
				stack = stack[:len(stack)-1]
			}
			continue
		}
		switch r {
		case '"':
			inString = true
			stack = append(stack, '"')
		case '[':
			stack = append(stack, ']')
		case '{':
			stack = append(stack, '}')
		case ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != r {
				return nil, NotFound, false
			}
			stack = stack[:len(stack)-1]
		default:
			if r == delim && len(stack) == 0 {
				return cps[offset:i], i + 1, true
			}
		}
	}
	if len(stack) != 0 {
		return nil, NotFound, false
	}
	return cps[offset:], len(cps), true
}

// Matches pairs every opening quote, bracket and brace in cps with the offset
// of its closer. Offsets that open nothing map to NotFound. The result is
// not ok when a closer is not the expected one or an opener is left unclosed.
func Matches(cps []rune) (match []int, ok bool) {
	match = make([]int, len(cps))
	for i := range match {
		match[i] = NotFound
	}
	var stack []int
	for i := 0; i < len(cps); i++ {
		switch r := cps[i]; r {
		case '"':
			j := i + 1
			for ; j < len(cps) && cps[j] != '"'; j++ {
				if cps[j] == '\\' {
					j++
				}
			}
			if j >= len(cps) {
				return match, false
			}
			match[i] = j
			i = j
		case '[', '{':
			stack = append(stack, i)
		case ']', '}':
			if len(stack) == 0 {
				return match, false
			}
			o := stack[len(stack)-1]
			if closer(cps[o]) != r {
				return match, false
			}
			match[o] = i
			stack = stack[:len(stack)-1]
		}
	}
	return match, len(stack) == 0
}

func closer(r rune) rune {
	if r == '[' {
		return ']'
	}
	return '}'
}

// ExtractMatched is Extract over cps[offset:end] that skips nested quotes,
// brackets and braces in one step using match from Matches(cps). It returns
// the end of the element and the offset just past the delimiter.
func ExtractMatched(cps []rune, match []int, offset, end int, delim rune) (stop, next int, ok bool) {
	if offset < 0 || offset >= end {
		return NotFound, NotFound, false
	}
	for i := offset; i < end; i++ {
		switch r := cps[i]; r {
		case '"', '[', '{':
			c := match[i]
			if c == NotFound || c >= end {
				return NotFound, NotFound, false
			}
			i = c
		case ']', '}':
			return NotFound, NotFound, false
		default:
			if r == delim {
				return i, i + 1, true
			}
		}
	}
	return end, end, true
}
