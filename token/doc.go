// Package token provides the lexical layer of JSON decoding and encoding.
//
// Everything here operates on code points ([]rune) rather than bytes:
//   - [DecodeCodePoints] and [EncodeCodePoints] convert to and from UTF-8.
//   - [TrimSpace] drops the four JSON whitespace characters from both ends.
//   - [Escape] and [Unescape] handle string content, including UTF-16
//     surrogate pairs in \u escapes.
//   - [ParseInteger] and [ParseFloat] are explicit state machines for the
//     RFC 7159 number grammar.
//   - [Extract] slices the next element out of array or object content
//     using a stack of expected closing delimiters. [Matches] runs that
//     stack once over a whole document so [ExtractMatched] can step over
//     nested values, and [Text] slices their source without copying.
package token
