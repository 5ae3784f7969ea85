package natural

import (
	"fmt"
	"slices"
	"testing"

	"facette.io/natsort"
	"github.com/stretchr/testify/assert"
)

// For plain names with digit runs and no size words, our order matches the
// classic natural sort.
func TestSort_AgreesWithNatsortOnPlainNames(t *testing.T) {
	t.Parallel()

	data := []string{"file10", "file2", "file1", "file20", "img12.png", "img10.png", "img2.png", "img1.png"}

	ours := slices.Clone(data)
	Sort(ours)

	theirs := slices.Clone(data)
	natsort.Sort(theirs)

	assert.Equal(t, theirs, ours)
	assert.Equal(t, []string{
		"file1", "file2", "file10", "file20", "img1.png", "img2.png", "img10.png", "img12.png",
	}, ours)
}

// The classic natural sort knows nothing about sizes.
func TestSort_DiffersFromNatsortOnSizes(t *testing.T) {
	t.Parallel()

	data := []string{"Shirt XS", "Shirt L", "Shirt M"}

	theirs := slices.Clone(data)
	natsort.Sort(theirs)

	ours := slices.Clone(data)
	Sort(ours)

	assert.Equal(t, []string{"Shirt L", "Shirt M", "Shirt XS"}, theirs)
	assert.Equal(t, []string{"Shirt XS", "Shirt M", "Shirt L"}, ours)
}

func benchmarkTitles() []string {
	titles := make([]string, 0, 1000)

	sizes := []string{"XS", "S", "Medium", "L", "Extra Large"}
	for i := range 1000 {
		titles = append(titles, fmt.Sprintf("Crank %dmm %s Blue", 1000-i, sizes[i%len(sizes)]))
	}

	return titles
}

func BenchmarkSort(b *testing.B) {
	titles := benchmarkTitles()

	for b.Loop() {
		Sort(slices.Clone(titles))
	}
}

func BenchmarkSort_Natsort(b *testing.B) {
	titles := benchmarkTitles()

	for b.Loop() {
		natsort.Sort(slices.Clone(titles))
	}
}

func BenchmarkTokenize(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		_ = Tokenize("T-Shirt Extra Large Black 172.5mm")
	}
}
