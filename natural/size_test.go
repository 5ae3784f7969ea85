package natural

import (
	"slices"
	"testing"

	"github.com/amp-labs/propersort/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word     string
		expected SizeRank
		ok       bool
	}{
		{word: "XXXXS", expected: XXXXS, ok: true},
		{word: "xs", expected: XS, ok: true},
		{word: "S", expected: S, ok: true},
		{word: "S/M", expected: SM, ok: true},
		{word: "s-m", expected: SM, ok: true},
		{word: "Med", expected: M, ok: true},
		{word: "MEDIUM", expected: M, ok: true},
		{word: "M-L", expected: ML, ok: true},
		{word: "large", expected: L, ok: true},
		{word: "L/XL", expected: LXL, ok: true},
		{word: "Extra Large", expected: XL, ok: true},
		{word: "EXTRA SMALL", expected: XS, ok: true},
		{word: "x-small", expected: XS, ok: true},
		{word: "XXX-Small", expected: XXXS, ok: true},
		{word: "xx-large", expected: XXL, ok: true},
		{word: "xxxxl", expected: XXXXL, ok: true},
		{word: "", ok: false},
		{word: "extra-large", ok: false},
		{word: "extra  large", ok: false},
		{word: "XXXXXL", ok: false},
		{word: "mm", ok: false},
		{word: "smal", ok: false},
		{word: "a very long word that exceeds every literal", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()

			rank, ok := ClassifySize(tt.word)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, rank)
		})
	}
}

func TestClassifySize_NegativeMatch(t *testing.T) {
	t.Parallel()

	_, err := classifySize("extra-large")
	require.ErrorIs(t, err, errors.ErrNotASize)

	_, err = classifySizePair("extra", "large-ish")
	require.ErrorIs(t, err, errors.ErrNotASize)

	rank, err := classifySizePair("Extra", "LARGE")
	require.NoError(t, err)
	assert.Equal(t, XL, rank)
}

func TestSizeTable_Invariants(t *testing.T) {
	t.Parallel()

	for literal, rank := range sizeTable {
		assert.LessOrEqual(t, len(literal), maxSizeLiteral, literal)
		assert.True(t, rank.Valid(), literal)

		for i := range len(literal) {
			assert.Equal(t, toLower(literal[i]), literal[i], "literal %q must be lower case", literal)
		}
	}
}

func TestSizeRank_Order(t *testing.T) {
	t.Parallel()

	ranks := []SizeRank{XXXXS, XXXS, XXS, XS, S, SM, M, ML, L, LXL, XL, XXL, XXXL, XXXXL}

	assert.True(t, slices.IsSorted(ranks))

	names := make([]string, len(ranks))
	for i, r := range ranks {
		names[i] = r.String()
	}

	assert.Equal(t, []string{
		"XXXXS", "XXXS", "XXS", "XS", "S", "SM", "M", "ML", "L", "LXL", "XL", "XXL", "XXXL", "XXXXL",
	}, names)

	assert.False(t, SizeRank(0).Valid())
	assert.Equal(t, "SizeRank(0)", SizeRank(0).String())
	assert.Equal(t, "SizeRank(99)", SizeRank(99).String())
}

func TestClassifySize_DoesNotAllocate(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_, _ = ClassifySize("Extra")
		_, _ = ClassifySize("XL")
	})

	assert.Zero(t, allocs) //nolint:testifylint
}
