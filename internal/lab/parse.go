package lab

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var floatPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?)`)

// isJSSpace reports whether r is white space or a line terminator to a
// browser number parser. U+FEFF counts, U+0085 does not.
func isJSSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

// ParseFloat reads the longest leading decimal literal of s, the way a
// browser's parseFloat does. Leading whitespace is skipped and trailing
// garbage ignored. It returns NaN when no literal is present.
func ParseFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, isJSSpace)
	m := floatPrefix.FindString(s)
	if m == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return v
}

// ParseInt reads the leading base-10 integer of s (or base 16 with a 0x
// prefix), the way parseInt does without a radix. The result is a float64
// so that a failed parse can be reported as NaN.
func ParseInt(s string) float64 {
	s = strings.TrimLeftFunc(s, isJSSpace)

	sign := 1.0
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	radix := 10.0
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		radix = 16
		s = s[2:]
	}

	v, n := 0.0, 0
	for _, c := range s {
		d := digitValue(c)
		if d < 0 || float64(d) >= radix {
			break
		}
		v = v*radix + float64(d)
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sign * v
}

func digitValue(c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}
