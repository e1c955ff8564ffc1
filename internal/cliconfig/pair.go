package cliconfig

import (
	"strconv"
	"strings"
)

// ParsePair parses s as "<left><sep><right>", e.g. "400x600" or "1.0,0.5".
// It splits on the first sep and reports false unless both halves parse.
func ParsePair[T int | float64](s string, sep byte) (T, T, bool) {
	var zero T
	i := strings.IndexByte(s, sep)
	if i < 0 {
		return zero, zero, false
	}
	l, err := parseNumber[T](s[:i])
	if err != nil {
		return zero, zero, false
	}
	r, err := parseNumber[T](s[i+1:])
	if err != nil {
		return zero, zero, false
	}
	return l, r, true
}

func parseNumber[T int | float64](s string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case int:
		v, err := strconv.Atoi(s)
		return T(v), err
	default:
		v, err := strconv.ParseFloat(s, 64)
		return T(v), err
	}
}

// ParsePoint parses "RE,IM" as a point of the complex plane.
func ParsePoint(s string) (complex128, bool) {
	re, im, ok := ParsePair[float64](s, ',')
	if !ok {
		return 0, false
	}
	return complex(re, im), true
}
