package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       int
		expected Ordering
	}{
		{name: "large negative", in: -42, expected: Less},
		{name: "minus one", in: -1, expected: Less},
		{name: "zero", in: 0, expected: Equal},
		{name: "one", in: 1, expected: Greater},
		{name: "large positive", in: 1 << 20, expected: Greater},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Of(tt.in))
		})
	}
}

func TestOrdering_Reverse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Greater, Less.Reverse())
	assert.Equal(t, Less, Greater.Reverse())
	assert.Equal(t, Equal, Equal.Reverse())
}

func TestOrdering_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Less", Less.String())
	assert.Equal(t, "Equal", Equal.String())
	assert.Equal(t, "Greater", Greater.String())
	assert.Equal(t, "Ordering(invalid)", Ordering(7).String())
	assert.Equal(t, -1, Less.Int())
}
