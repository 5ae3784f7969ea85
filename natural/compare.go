package natural

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/amp-labs/propersort/compare"
)

// Compare orders two strings naturally and returns -1, 0 or +1. It can be
// passed straight to slices.SortFunc:
//
//	slices.SortFunc(titles, natural.Compare)
//
// Both strings are tokenized and compared token by token; see CompareTokens.
// A result of 0 does not imply the strings are byte-identical: "Item 08" and
// "Item 8" are equivalent, as are "Shirt L" and "Shirt Large".
func Compare(a, b string) int {
	if a == b {
		return 0
	}

	return Tokenize(a).Compare(Tokenize(b))
}

// Order is Compare expressed as a compare.Ordering.
func Order(a, b string) compare.Ordering {
	return compare.Of(Compare(a, b))
}

// Less reports whether a sorts strictly before b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Sort sorts items in natural order. The sort is not stable.
func Sort(items []string) {
	slices.SortFunc(items, Compare)
}

// SortStable sorts items in natural order, keeping equivalent items in their
// original order.
func SortStable(items []string) {
	slices.SortStableFunc(items, Compare)
}

// CompareTokens orders two tokens and returns -1, 0 or +1.
//
// Text is compared with CompareFold, numbers by value and sizes by rank.
// Tokens of different kinds are ordered by kind: Number < Size < Text.
func CompareTokens(a, b Token) int {
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}

	switch a.kind {
	case KindText:
		return CompareFold(a.raw, b.raw)
	case KindNumber:
		return a.number.Cmp(b.number)
	case KindSize:
		return cmp.Compare(a.size, b.size)
	default:
		panic(fmt.Sprintf("natural: cannot compare tokens of %s", a.kind))
	}
}
