package sortable

import (
	"github.com/amp-labs/propersort/compare"
)

type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Sort orders items by their LessThan method. It is an insertion sort for
// short slices and a stable merge sort otherwise, so equivalent items keep
// their relative order.
func Sort[T Sortable[T]](items []T) {
	const insertionThreshold = 12

	if len(items) <= insertionThreshold {
		insertionSort(items)

		return
	}

	buf := make([]T, len(items))
	mergeSort(items, buf)
}

func insertionSort[T Sortable[T]](items []T) {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && items[j].LessThan(items[j-1]); j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}

func mergeSort[T Sortable[T]](items, buf []T) {
	if len(items) < 2 { //nolint:mnd
		return
	}

	mid := len(items) / 2 //nolint:mnd
	mergeSort(items[:mid], buf[:mid])
	mergeSort(items[mid:], buf[mid:])

	copy(buf, items)

	left, right := buf[:mid], buf[mid:len(items)]
	i, j, k := 0, 0, 0

	for i < len(left) && j < len(right) {
		if right[j].LessThan(left[i]) {
			items[k] = right[j]
			j++
		} else {
			items[k] = left[i]
			i++
		}

		k++
	}

	k += copy(items[k:], left[i:])
	copy(items[k:], right[j:])
}
