package article

import (
	"fmt"
	"math"
	"strings"

	"github.com/ib-77/either/pkg/either"
	"github.com/spf13/cast"
)

// Convert turns any raw input into trimmed text. It never fails: values cast
// cannot render become empty text and are rejected by Parse.
func Convert(raw any) either.Either[error, string] {
	return either.Right[error](strings.TrimSpace(cast.ToString(raw)))
}

// Parse reads a base 10 integer out of text produced by Convert. Prefixes,
// underscores and fractions are rejected; leading zeros are not octal.
func Parse(s string) either.Either[error, int] {
	valid := either.ValidateAll(either.Right[error](s), true, notEmpty, isDecimal)

	return either.Chain(valid, func(s string) either.Either[error, int] {
		n, err := cast.ToIntE(trimLeadingZeros(s))
		if err != nil {
			// the text is already known to be decimal, only its size can fail
			return either.Left[error, int](fmt.Errorf("%w: %q", ErrOutOfRange, s))
		}
		return either.Right[error](n)
	})
}

// Process runs Parse and renders the value with the default pipeline settings.
func Process(s string) either.Either[error, string] {
	return New(nil).Process(s)
}

func notEmpty(s string) error {
	if s == "" {
		return ErrEmptyInput
	}
	return nil
}

func isDecimal(s string) error {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")
	if digits == "" {
		return fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: %q", ErrNotANumber, s)
		}
	}
	return nil
}

// trimLeadingZeros keeps cast from reading "010" as octal.
func trimLeadingZeros(s string) string {
	sign := ""
	if s[0] == '-' || s[0] == '+' {
		sign, s = s[:1], s[1:]
	}

	s = strings.TrimLeft(s, "0")
	if s == "" {
		s = "0"
	}
	return sign + s
}

// multiply returns a*b and false when the product does not fit in an int.
func multiply(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, false
	}

	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}

func formatInt(n int) (string, error) {
	return cast.ToString(n), nil
}
