package argz

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Value tokens are converted by their longest numeric prefix, the way C's
// strtod and strtol read them: "10abc" is 10, " 7" is 7, "abc" is rejected.

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// skipSign returns the index after leading white space and an optional sign,
// and the sign itself ("" or "-").
func skipSign(s string) (int, string) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	sign := ""
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = "-"
		}
		i++
	}
	return i, sign
}

func scanDigits(s string, i int, accept func(byte) bool) int {
	for i < len(s) && accept(s[i]) {
		i++
	}
	return i
}

// parseLongPrefix reads a base-10 integer prefix. Out of range values saturate.
func parseLongPrefix(s string) (int64, bool) {
	i, sign := skipSign(s)
	end := scanDigits(s, i, isDigit)
	if end == i {
		return 0, false
	}
	v, err := strconv.ParseInt(sign+s[i:end], 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}

// parseDoublePrefix reads a floating point prefix: decimal or hexadecimal
// literals with optional exponent, inf, infinity and nan. Out of range values
// saturate to ±Inf or 0.
func parseDoublePrefix(s string) (float64, bool) {
	i, sign := skipSign(s)
	rest := strings.ToLower(s[i:])
	switch {
	case strings.HasPrefix(rest, "inf"):
		if sign == "-" {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	case strings.HasPrefix(rest, "nan"):
		return math.NaN(), true
	case len(rest) > 2 && rest[0] == '0' && rest[1] == 'x':
		if v, ok := parseHexPrefix(s[i+2:], sign); ok {
			return v, true
		}
		// "0x" with no hex digits reads as the literal 0.
		return signed(0, sign), true
	}
	return parseDecimalPrefix(s[i:], sign)
}

func parseDecimalPrefix(s, sign string) (float64, bool) {
	intEnd := scanDigits(s, 0, isDigit)
	mantissa := s[:intEnd]
	end := intEnd
	if end < len(s) && s[end] == '.' {
		fracEnd := scanDigits(s, end+1, isDigit)
		if fracEnd > end+1 {
			mantissa = orZero(mantissa) + "." + s[end+1:fracEnd]
		}
		end = fracEnd
	}
	if mantissa == "" {
		return 0, false
	}
	exponent, _ := scanExponent(s, end, 'e')
	return toFloat(sign + orZero(mantissa) + exponent)
}

func parseHexPrefix(s, sign string) (float64, bool) {
	intEnd := scanDigits(s, 0, isHexDigit)
	mantissa := s[:intEnd]
	end := intEnd
	if end < len(s) && s[end] == '.' {
		fracEnd := scanDigits(s, end+1, isHexDigit)
		if fracEnd > end+1 {
			mantissa = orZero(mantissa) + "." + s[end+1:fracEnd]
		}
		end = fracEnd
	}
	if mantissa == "" {
		return 0, false
	}
	exponent, ok := scanExponent(s, end, 'p')
	if !ok {
		exponent = "p0"
	}
	return toFloat(sign + "0x" + orZero(mantissa) + exponent)
}

// scanExponent returns the exponent starting at s[i] if it is marker
// followed by an optional sign and at least one digit.
func scanExponent(s string, i int, marker byte) (string, bool) {
	if i >= len(s) || (s[i] != marker && s[i] != marker-'a'+'A') {
		return "", false
	}
	j := i + 1
	if j < len(s) && (s[j] == '+' || s[j] == '-') {
		j++
	}
	end := scanDigits(s, j, isDigit)
	if end == j {
		return "", false
	}
	return string(marker) + s[i+1:end], true
}

func toFloat(literal string) (float64, bool) {
	v, err := strconv.ParseFloat(literal, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}

func orZero(digits string) string {
	if digits == "" {
		return "0"
	}
	return digits
}

func signed(v float64, sign string) float64 {
	if sign == "-" {
		return -v
	}
	return v
}
