//go:build !natural_integer

package natural

import (
	"fmt"
	"strings"

	"github.com/amp-labs/propersort/errors"
	"github.com/shopspring/decimal"
)

const numericMode = "decimal"

// Number is the comparison key of a numeric token. In the default build it is
// an arbitrary-precision decimal, so "172.5" orders between "170" and "175".
type Number struct {
	value decimal.Decimal
}

// Cmp compares two numbers by value: -1, 0 or +1.
func (n Number) Cmp(other Number) int {
	return n.value.Cmp(other.value)
}

func (n Number) String() string {
	return n.value.String()
}

// parseNumber accepts an optional sign, ASCII digits, at most one internal '.'
// and internal ',' grouping separators. Separators must sit between digits and
// no ',' may follow the '.'.
func parseNumber(s string) (Number, error) {
	digits := s
	if digits != "" && (digits[0] == '+' || digits[0] == '-') {
		digits = digits[1:]
	}

	if digits == "" || !isDigit(digits[0]) || numericRunEnd(digits, 0) != len(digits) {
		return Number{}, fmt.Errorf("%w: %q", errors.ErrNotANumber, s)
	}

	literal := strings.ReplaceAll(digits, ",", "")
	if s[0] == '-' {
		literal = "-" + literal
	}

	value, err := decimal.NewFromString(literal)
	if err != nil {
		return Number{}, fmt.Errorf("%w: %q: %w", errors.ErrNotANumber, s, err)
	}

	return Number{value: value}, nil
}

// numericRunEnd returns the end of the numeric run starting at word[start],
// which must be a digit.
func numericRunEnd(word string, start int) int {
	seenPoint := false

	i := start
	for i < len(word) {
		c := word[i]

		switch {
		case isDigit(c):
			i++
		case (c == '.' || c == ',') && !seenPoint && i+1 < len(word) && isDigit(word[i+1]):
			seenPoint = c == '.'
			i++
		default:
			return i
		}
	}

	return i
}
