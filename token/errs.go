package token

import "errors"

var (
	ErrUnterminated   = errors.New("unterminated")
	ErrBadEscape      = errors.New("bad escape")
	ErrBadUnicode     = errors.New("bad unicode")
	ErrSurrogate      = errors.New("unpaired surrogate")
	ErrUnicodeControl = errors.New("unicode control")
	ErrQuote          = errors.New("unescaped quote")
)
