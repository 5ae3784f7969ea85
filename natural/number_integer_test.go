//go:build natural_integer

package natural

import (
	"testing"

	"github.com/amp-labs/propersort/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber_Integer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{input: "175", expected: "175", ok: true},
		{input: "-2", expected: "-2", ok: true},
		{input: "+3", expected: "3", ok: true},
		{input: "007", expected: "7", ok: true},
		{input: "9223372036854775807", expected: "9223372036854775807", ok: true},
		{input: "9223372036854775808", ok: false},
		{input: "172.5", ok: false},
		{input: "1,000", ok: false},
		{input: "", ok: false},
		{input: "-", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			n, err := parseNumber(tt.input)
			if !tt.ok {
				require.ErrorIs(t, err, errors.ErrNotANumber)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, n.String())
		})
	}
}

func TestNumericMode_Integer(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "integer", NumericMode())
}

func TestTokenize_IntegerRuns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []tok{
		{Kind: KindNumber, Raw: "172", Start: 0, Value: "172"},
		{Kind: KindText, Raw: ".", Start: 3},
		{Kind: KindNumber, Raw: "5", Start: 4, Value: "5"},
		{Kind: KindText, Raw: "mm", Start: 5},
	}, flatten(Tokenize("172.5mm")))

	assert.Equal(t, []tok{
		{Kind: KindText, Raw: "99999999999999999999", Start: 0},
	}, flatten(Tokenize("99999999999999999999")))
}
