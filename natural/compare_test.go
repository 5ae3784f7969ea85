package natural

import (
	"slices"
	"testing"

	"github.com/amp-labs/propersort/compare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{name: "numeric 170 vs 172.5", a: "Crank 170mm Blue", b: "Crank 172.5mm Blue", expected: -1},
		{name: "numeric 172.5 vs 175", a: "Crank 172.5mm Blue", b: "Crank 175mm Blue", expected: -1},
		{name: "numeric 175 vs 180", a: "Crank 175mm Blue", b: "Crank 180mm Blue", expected: -1},
		{name: "numeric by value not bytes", a: "item 90", b: "item 100", expected: -1},
		{name: "leading zeros are equivalent", a: "Item 08", b: "Item 8", expected: 0},
		{name: "uppercase first when only case differs", a: "Item 8", b: "item 8", expected: -1},
		{name: "size by rank", a: "T-Shirt XS Black", b: "T-Shirt L Black", expected: -1},
		{name: "synonyms are equivalent", a: "Shirt L", b: "Shirt Large", expected: 0},
		{name: "straddle sits between", a: "Shirt M/L", b: "Shirt L", expected: -1},
		{name: "straddle above lower neighbor", a: "Shirt M/L", b: "Shirt M", expected: 1},
		{name: "two word size", a: "T-Shirt Extra Large Black", b: "T-Shirt L Black", expected: 1},
		{name: "length fallback", a: "A", b: "A Black", expected: -1},
		{name: "length fallback reversed", a: "A Black", b: "A", expected: 1},
		{name: "empty before anything", a: "", b: "a", expected: -1},
		{name: "whitespace only equals empty", a: "  \t ", b: "", expected: 0},
		{name: "whitespace runs are ignored", a: "Crank  170mm", b: "Crank 170mm", expected: 0},
		{name: "number before size", a: "Shirt 5", b: "Shirt S", expected: -1},
		{name: "size before text", a: "Shirt S", b: "Shirt Blue", expected: -1},
		{name: "number before text", a: "36T", b: "T36", expected: -1},
		{name: "identical", a: "Adapter P.M. to P.M.", b: "Adapter P.M. to P.M.", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Compare(tt.a, tt.b))
			assert.Equal(t, -tt.expected, Compare(tt.b, tt.a))
			assert.Equal(t, compare.Of(tt.expected), Order(tt.a, tt.b))
			assert.Equal(t, tt.expected < 0, Less(tt.a, tt.b))
		})
	}
}

func TestSort_Sizes(t *testing.T) {
	t.Parallel()

	data := []string{
		"T-Shirt L Black",
		"T-Shirt XS Black",
		"T-Shirt Extra Large Black",
		"T-Shirt Medium Black",
	}

	Sort(data)

	assert.Equal(t, []string{
		"T-Shirt XS Black",
		"T-Shirt Medium Black",
		"T-Shirt L Black",
		"T-Shirt Extra Large Black",
	}, data)
}

func TestSort_ProductCatalog(t *testing.T) {
	t.Parallel()

	data := []string{
		"Adapter P.M. to P.M. 165mm to 175mm",
		"Adapter P.M. to P.M. 160mm to 180mm",
		"T-Shirt L Black",
		"T-Shirt XS Black",
		"T-Shirt Extra Large Black",
		"T-Shirt Medium Black",
		"Crank 180mm Blue",
		"Crank 172.5mm Blue",
		"Crank 175mm Blue",
		"Crank 170mm Blue",
		"A",
		"b2",
		"b1",
		"2b",
		"1b",
		"a",
		"48T",
		"36T",
		"20mm",
		"5mm",
		"30 mm",
		"10 mm",
	}

	Sort(data)

	assert.Equal(t, []string{
		"1b",
		"2b",
		"5mm",
		"10 mm",
		"20mm",
		"30 mm",
		"36T",
		"48T",
		"A",
		"a",
		"Adapter P.M. to P.M. 160mm to 180mm",
		"Adapter P.M. to P.M. 165mm to 175mm",
		"b1",
		"b2",
		"Crank 170mm Blue",
		"Crank 172.5mm Blue",
		"Crank 175mm Blue",
		"Crank 180mm Blue",
		"T-Shirt XS Black",
		"T-Shirt Medium Black",
		"T-Shirt L Black",
		"T-Shirt Extra Large Black",
	}, data)
}

func TestSortStable_KeepsEquivalentOrder(t *testing.T) {
	t.Parallel()

	data := []string{"Shirt Large", "Item 8", "Shirt L", "Item 08", "Shirt large"}

	SortStable(data)

	assert.Equal(t, []string{"Item 8", "Item 08", "Shirt Large", "Shirt L", "Shirt large"}, data)
	assert.True(t, slices.IsSortedFunc(data, Compare))
}

func TestCompareTokens(t *testing.T) {
	t.Parallel()

	num := Tokenize("08").At(0)
	eight := Tokenize("8").At(0)
	size := Tokenize("S").At(0)
	text := Tokenize("Blue").At(0)

	assert.Equal(t, 0, CompareTokens(num, eight))
	assert.True(t, num.Equals(eight))
	assert.Equal(t, -1, CompareTokens(num, size))
	assert.Equal(t, -1, CompareTokens(size, text))
	assert.Equal(t, 1, text.Compare(num))
}

func TestCompareTokens_PanicsOnZeroToken(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		CompareTokens(Token{}, Token{})
	})
}

func TestCompare_ConcurrentUse(t *testing.T) {
	t.Parallel()

	data := []string{"b2", "b10", "Shirt XL", "Shirt S", "Crank 172.5mm", "Crank 170mm"}

	done := make(chan []string)

	for range 8 {
		go func() {
			local := slices.Clone(data)
			Sort(local)
			done <- local
		}()
	}

	expected := slices.Clone(data)
	Sort(expected)

	for range 8 {
		assert.Equal(t, expected, <-done)
	}
}
