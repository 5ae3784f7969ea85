//go:build natural_integer

package natural

import (
	"cmp"
	"fmt"
	"strconv"

	"github.com/amp-labs/propersort/errors"
)

const numericMode = "integer"

// Number is the comparison key of a numeric token. Built with the
// natural_integer tag it is a signed 64-bit integer; "172.5" is then read as
// the number 172, the text "." and the number 5.
type Number struct {
	value int64
}

// Cmp compares two numbers by value: -1, 0 or +1.
func (n Number) Cmp(other Number) int {
	return cmp.Compare(n.value, other.value)
}

func (n Number) String() string {
	return strconv.FormatInt(n.value, 10)
}

func parseNumber(s string) (Number, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Number{}, fmt.Errorf("%w: %q: %w", errors.ErrNotANumber, s, err)
	}

	return Number{value: value}, nil
}

func numericRunEnd(word string, start int) int {
	i := start
	for i < len(word) && isDigit(word[i]) {
		i++
	}

	return i
}
