package sortable

import "github.com/amp-labs/propersort/natural"

// Natural is a string ordered by natural.Compare: embedded numbers by value
// and apparel sizes by rank.
//
// Example:
//
//	items := []sortable.Natural{"Shirt XL", "Shirt S", "Shirt Medium"}
//	sortable.Sort(items)
//	// [Shirt S, Shirt Medium, Shirt XL]
//
// Equals follows the ordering, not byte equality: "Item 08" equals "Item 8".
type Natural string

// Compile-time check that Natural implements Sortable[Natural].
var _ Sortable[Natural] = (*Natural)(nil)

func (s Natural) Equals(other Natural) bool {
	return natural.Compare(string(s), string(other)) == 0
}

func (s Natural) LessThan(other Natural) bool {
	return natural.Compare(string(s), string(other)) < 0
}

func (s Natural) Compare(other Natural) int {
	return natural.Compare(string(s), string(other))
}

// Folded is a string ordered by natural.CompareFold, ignoring ASCII case with
// upper case first on ties. Only identical strings are Equal.
type Folded string

// Compile-time check that Folded implements Sortable[Folded].
var _ Sortable[Folded] = (*Folded)(nil)

func (s Folded) Equals(other Folded) bool {
	return s == other
}

func (s Folded) LessThan(other Folded) bool {
	return natural.CompareFold(string(s), string(other)) < 0
}

func (s Folded) Compare(other Folded) int {
	return natural.CompareFold(string(s), string(other))
}
