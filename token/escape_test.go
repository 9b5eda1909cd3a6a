package token

import (
	"errors"
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		in       string
		nonASCII bool
		want     string
	}{
		{"Hello", false, "Hello"},
		{"a\"b\\c", false, `a\"b\\c`},
		{"\b\f\n\r\t", false, `\b\f\n\r\t`},
		{"\x00\x01\x1f", false, `\u0000\u0001\u001F`},
		{"/", false, "/"},
		{"\u03BA\u1F79\u03C3\u03BC\u03B5", false, "\u03BA\u1F79\u03C3\u03BC\u03B5"},
		{"\u03BA\u1F79\u03C3\u03BC\u03B5", true, `\u03BA\u1F79\u03C3\u03BC\u03B5`},
		{"𣎴", true, `\uD84C\uDFB4`},
		{"💩", true, `\uD83D\uDCA9`},
		{"\x7f", true, "\x7f"},
	}
	for _, tt := range tests {
		if got := Escape(tt.in, tt.nonASCII); got != tt.want {
			t.Errorf("Escape(%q, %v): got %q want %q", tt.in, tt.nonASCII, got, tt.want)
		}
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello", "Hello"},
		{`\"\\\/\b\f\n\r\t`, "\"\\/\b\f\n\r\t"},
		{`\u0041\u00e9`, "Aé"},
		{`\u03BA\u1F79\u03C3\u03BC\u03B5`, "\u03BA\u1F79\u03C3\u03BC\u03B5"},
		{`\uD84C\uDFB4`, "𣎴"},
		{`\ud83d\udca9!`, "💩!"},
		{"", ""},
	}
	for _, tt := range tests {
		got, err := Unescape(tt.in)
		if err != nil {
			t.Errorf("Unescape(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Unescape(%q): got %q want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnescapeErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{`This is bad: \u123X`, ErrBadUnicode},
		{`\x`, ErrBadEscape},
		{`abc\`, ErrUnterminated},
		{`\u12`, ErrUnterminated},
		{`\uD84C`, ErrSurrogate},
		{`\uD84Cx`, ErrSurrogate},
		{`\uD84C\n`, ErrSurrogate},
		{`\uD84C\uD84C`, ErrSurrogate},
		{`\uDFB4`, ErrSurrogate},
		{`\uD84CA`, ErrSurrogate},
		{`a"b`, ErrQuote},
		{"a\nb", ErrUnicodeControl},
	}
	for _, tt := range tests {
		_, err := Unescape(tt.in)
		if !errors.Is(err, tt.err) {
			t.Errorf("Unescape(%q): got %v want %v", tt.in, err, tt.err)
		}
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	inputs := []string{
		"\"\\\b\f\n\r\t",
		"mixed 𣎴 and 💩 with κόσμε",
		"\x00 control \x1f",
		"",
	}
	for _, in := range inputs {
		for _, nonASCII := range []bool{false, true} {
			got, err := Unescape(Escape(in, nonASCII))
			if err != nil {
				t.Errorf("%q (%v): %v", in, nonASCII, err)
				continue
			}
			if got != in {
				t.Errorf("%q (%v): round trip gave %q", in, nonASCII, got)
			}
		}
	}
}

func TestQuote(t *testing.T) {
	if got := Quote("a\"b", false); got != `"a\"b"` {
		t.Errorf("got %s", got)
	}
}
