package token

import (
	"strings"
	"unicode/utf8"
)

var mnemonics = map[rune]byte{
	'"':  '"',
	'\\': '\\',
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
}

var unmnemonics = map[rune]rune{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

const hexDigits = "0123456789ABCDEF"

func appendHex4(d []byte, r rune) []byte {
	return append(d, '\\', 'u',
		hexDigits[(r>>12)&0xF],
		hexDigits[(r>>8)&0xF],
		hexDigits[(r>>4)&0xF],
		hexDigits[r&0xF])
}

// Escape returns s as JSON string content, without the surrounding quotes.
// Quotes, backslashes and C0 controls are always escaped. With
// escapeNonASCII, every code point above 0x7F is written as \uXXXX, using a
// surrogate pair above 0xFFFF.
func Escape(s string, escapeNonASCII bool) string {
	d := make([]byte, 0, len(s)+2)
	for _, r := range s {
		switch {
		case r == '"' || r == '\\' || r < 0x20:
			if m, ok := mnemonics[r]; ok {
				d = append(d, '\\', m)
			} else {
				d = appendHex4(d, r)
			}
		case escapeNonASCII && r > 0x7F:
			if r > 0xFFFF {
				d = appendHex4(d, 0xD800+((r-0x10000)>>10)&0x3FF)
				d = appendHex4(d, 0xDC00+(r-0x10000)&0x3FF)
			} else {
				d = appendHex4(d, r)
			}
		default:
			d = utf8.AppendRune(d, r)
		}
	}
	return string(d)
}

const (
	unescPlain = iota
	unescBackslash
	unescHex
)

// Unescape decodes JSON string content, without the surrounding quotes.
// A \u escape inside the surrogate range must be a high half immediately
// followed by an escaped low half.
func Unescape(s string) (string, error) {
	b := &strings.Builder{}
	b.Grow(len(s))
	state := unescPlain
	var (
		acc, high rune
		nHex      int
	)
	for _, r := range s {
		switch state {
		case unescPlain:
			switch {
			case r == '\\':
				state = unescBackslash
			case high != 0:
				return "", ErrSurrogate
			case r == '"':
				return "", ErrQuote
			case r < 0x20:
				return "", ErrUnicodeControl
			default:
				b.WriteRune(r)
			}
		case unescBackslash:
			if r == 'u' {
				state = unescHex
				acc, nHex = 0, 0
				continue
			}
			if high != 0 {
				return "", ErrSurrogate
			}
			c, ok := unmnemonics[r]
			if !ok {
				return "", ErrBadEscape
			}
			b.WriteRune(c)
			state = unescPlain
		case unescHex:
			h, ok := hexValue(r)
			if !ok {
				return "", ErrBadUnicode
			}
			acc = acc<<4 | h
			nHex++
			if nHex < 4 {
				continue
			}
			state = unescPlain
			switch {
			case acc >= 0xD800 && acc <= 0xDBFF:
				if high != 0 {
					return "", ErrSurrogate
				}
				high = acc
			case acc >= 0xDC00 && acc <= 0xDFFF:
				if high == 0 {
					return "", ErrSurrogate
				}
				b.WriteRune((high-0xD800)<<10 + (acc - 0xDC00) + 0x10000)
				high = 0
			default:
				if high != 0 {
					return "", ErrSurrogate
				}
				b.WriteRune(acc)
			}
		}
	}
	switch {
	case state != unescPlain:
		return "", ErrUnterminated
	case high != 0:
		return "", ErrSurrogate
	}
	return b.String(), nil
}

func hexValue(r rune) (rune, bool) {
	switch {
	case r >= '0' && r <= '9':
		return r - '0', true
	case r >= 'a' && r <= 'f':
		return r - 'a' + 10, true
	case r >= 'A' && r <= 'F':
		return r - 'A' + 10, true
	default:
		return 0, false
	}
}

// Quote returns s escaped and enclosed in double quotes.
func Quote(s string, escapeNonASCII bool) string {
	return `"` + Escape(s, escapeNonASCII) + `"`
}
