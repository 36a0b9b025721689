package jsonvalue

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

var (
	errEmptyNumber        = errors.New("invalid number: empty")
	errNumberLeadingZero  = errors.New("invalid number: leading zero")
	errNumberNoDigits     = errors.New("invalid number: missing digits")
	errNumberBadFraction  = errors.New("invalid fraction")
	errNumberBadExponent  = errors.New("invalid exponent")
	errNumberTrailingData = errors.New("invalid number: unexpected characters")
)

// Number is an exact decimal representation of a JSON number.
//
// The numeric value is digits × 10^exponent, where digits has no leading or trailing zeros. Zero is
// represented with empty digits, a zero exponent and no sign, so -0 and 0.0e5 are the same number.
// The zero value of Number is the number 0.
type Number struct {
	literal  string
	negative bool
	digits   string
	exponent *big.Int
}

// ParseNumber parses a JSON number literal. The literal must follow the JSON number grammar exactly;
// leading or trailing whitespace is not allowed.
func ParseNumber(literal string) (Number, error) {
	n, end, err := scanNumberLiteral(literal, 0)
	if err != nil {
		return Number{}, err
	}
	if end != len(literal) {
		return Number{}, errNumberTrailingData
	}
	return n, nil
}

// NumberFromInt returns the Number for an integer.
func NumberFromInt(i int64) Number {
	n, _ := ParseNumber(strconv.FormatInt(i, 10))
	return n
}

// scanNumberLiteral reads a JSON number starting at src[start], returning the parsed number and the
// offset just past it. The returned offset on error points at the offending byte.
func scanNumberLiteral(src string, start int) (Number, int, error) {
	pos := start
	if pos >= len(src) {
		return Number{}, pos, errEmptyNumber
	}
	negative := false
	if src[pos] == '-' {
		negative = true
		pos++
	}
	intStart := pos
	switch {
	case pos >= len(src) || !isDigit(src[pos]):
		return Number{}, pos, errNumberNoDigits
	case src[pos] == '0':
		pos++
		if pos < len(src) && isDigit(src[pos]) {
			return Number{}, pos, errNumberLeadingZero
		}
	default:
		for pos < len(src) && isDigit(src[pos]) {
			pos++
		}
	}
	intPart := src[intStart:pos]

	fracPart := ""
	if pos < len(src) && src[pos] == '.' {
		pos++
		fracStart := pos
		for pos < len(src) && isDigit(src[pos]) {
			pos++
		}
		if pos == fracStart {
			return Number{}, pos, errNumberBadFraction
		}
		fracPart = src[fracStart:pos]
	}

	expPart := ""
	if pos < len(src) && (src[pos] == 'e' || src[pos] == 'E') {
		pos++
		expStart := pos
		if pos < len(src) && (src[pos] == '+' || src[pos] == '-') {
			pos++
		}
		digitsStart := pos
		for pos < len(src) && isDigit(src[pos]) {
			pos++
		}
		if pos == digitsStart {
			return Number{}, pos, errNumberBadExponent
		}
		expPart = src[expStart:pos]
	}

	return makeNumber(src[start:pos], negative, intPart, fracPart, expPart), pos, nil
}

func makeNumber(literal string, negative bool, intPart, fracPart, expPart string) Number {
	exponent := new(big.Int)
	if expPart != "" {
		// the grammar has already been checked, so this can't fail
		exponent.SetString(strings.TrimPrefix(expPart, "+"), 10)
	}
	exponent.Sub(exponent, big.NewInt(int64(len(fracPart))))

	digits := strings.TrimLeft(intPart+fracPart, "0")
	trimmed := strings.TrimRight(digits, "0")
	exponent.Add(exponent, big.NewInt(int64(len(digits)-len(trimmed))))
	digits = trimmed

	if digits == "" {
		return Number{literal: literal}
	}
	return Number{literal: literal, negative: negative, digits: digits, exponent: exponent}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// IsZero returns true if the number is zero, regardless of sign or notation.
func (n Number) IsZero() bool {
	return n.digits == ""
}

// Literal returns the number as it appeared in the source text. For a zero Number that was not
// parsed from text, this is "0".
func (n Number) Literal() string {
	if n.literal == "" {
		return "0"
	}
	return n.literal
}

// Canonical returns a normalized representation of the number that is identical for all literals
// denoting the same value, such as "0", "1e0" or "-15e-1". It is itself a valid JSON number.
func (n Number) Canonical() string {
	if n.IsZero() {
		return "0"
	}
	var sb strings.Builder
	if n.negative {
		sb.WriteByte('-')
	}
	sb.WriteString(n.digits)
	sb.WriteByte('e')
	sb.WriteString(n.exponent.String())
	return sb.String()
}

// Equal returns true if both numbers denote the same mathematical value.
func (n Number) Equal(other Number) bool {
	if n.IsZero() || other.IsZero() {
		return n.IsZero() && other.IsZero()
	}
	return n.negative == other.negative && n.digits == other.digits && n.exponent.Cmp(other.exponent) == 0
}

// Float64 returns the closest float64 to the number. This is lossy and is meant only for display.
func (n Number) Float64() float64 {
	f, _ := strconv.ParseFloat(n.Canonical(), 64)
	return f
}

// String returns the source literal of the number.
func (n Number) String() string {
	return n.Literal()
}
