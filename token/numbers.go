package token

import (
	"math"
	"strconv"
)

// IsFloatLiteral reports whether a number literal should be read by
// ParseFloat rather than ParseInteger.
func IsFloatLiteral(cps []rune) bool {
	for _, r := range cps {
		switch r {
		case '.', 'e', 'E':
			return true
		}
	}
	return false
}

func digit(r rune) (int64, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return int64(r - '0'), true
}

// accumulate returns acc*10+sign*d and whether that fits in an int64
// without changing sign.
func accumulate(acc int64, sign int64, d int64) (int64, bool) {
	next := acc*10 + sign*d
	if next/10 != acc {
		return 0, false
	}
	if next != 0 && (next < 0) != (sign < 0) {
		return 0, false
	}
	return next, true
}

const (
	intSign = iota
	intFirst
	intZero
	intDigits
)

// ParseInteger reads -?(0|[1-9][0-9]*) covering the whole int64 range.
// Leading zeros, signs other than a single leading minus and overflow are
// rejected.
func ParseInteger(cps []rune) (int64, bool) {
	state := intSign
	sign := int64(1)
	var value int64
	for i := 0; i < len(cps); i++ {
		r := cps[i]
		switch state {
		case intSign:
			state = intFirst
			if r == '-' {
				sign = -1
				continue
			}
			i--
		case intFirst:
			d, ok := digit(r)
			if !ok {
				return 0, false
			}
			if d == 0 {
				state = intZero
				continue
			}
			value = sign * d
			state = intDigits
		case intZero:
			return 0, false
		case intDigits:
			d, ok := digit(r)
			if !ok {
				return 0, false
			}
			value, ok = accumulate(value, sign, d)
			if !ok {
				return 0, false
			}
		}
	}
	switch state {
	case intZero, intDigits:
		return value, true
	default:
		return 0, false
	}
}

const (
	floatSign = iota
	floatFirst
	floatZero
	floatInt
	floatFracFirst
	floatFrac
	floatExpSign
	floatExpFirst
	floatExp
)

// ParseFloat reads the RFC 7159 number grammar
//
//	-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
//
// Literals whose integer part or exponent does not fit in an int64 are
// rejected, as are values beyond the float64 range. The value itself is the
// correctly rounded float64 nearest the literal.
func ParseFloat(cps []rune) (float64, bool) {
	state := floatSign
	var intPart, exp int64
	for i := 0; i < len(cps); i++ {
		r := cps[i]
		switch state {
		case floatSign:
			state = floatFirst
			if r == '-' {
				continue
			}
			i--
		case floatFirst:
			d, ok := digit(r)
			if !ok {
				return 0, false
			}
			if d == 0 {
				state = floatZero
				continue
			}
			intPart = d
			state = floatInt
		case floatZero, floatInt:
			if d, ok := digit(r); ok {
				if state == floatZero {
					return 0, false
				}
				intPart, ok = accumulate(intPart, 1, d)
				if !ok {
					return 0, false
				}
				continue
			}
			switch r {
			case '.':
				state = floatFracFirst
			case 'e', 'E':
				state = floatExpSign
			default:
				return 0, false
			}
		case floatFracFirst, floatFrac:
			if _, ok := digit(r); ok {
				state = floatFrac
				continue
			}
			if state == floatFrac && (r == 'e' || r == 'E') {
				state = floatExpSign
				continue
			}
			return 0, false
		case floatExpSign:
			state = floatExpFirst
			if r == '-' || r == '+' {
				continue
			}
			i--
		case floatExpFirst, floatExp:
			d, ok := digit(r)
			if !ok {
				return 0, false
			}
			exp, ok = accumulate(exp, 1, d)
			if !ok {
				return 0, false
			}
			state = floatExp
		}
	}
	switch state {
	case floatZero, floatInt, floatFrac, floatExp:
	default:
		return 0, false
	}
	f, err := strconv.ParseFloat(string(cps), 64)
	if err != nil && math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
