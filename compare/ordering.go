package compare

// Ordering is the result of a three-way comparison.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Of converts the integer result of a cmp-style function (any negative value,
// zero or any positive value) into an Ordering.
func Of(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}

// Reverse flips Less and Greater. Equal is unchanged.
func (o Ordering) Reverse() Ordering {
	return -o
}

// Int returns -1, 0 or 1, suitable for slices.SortFunc and friends.
func (o Ordering) Int() int {
	return int(o)
}

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "Ordering(invalid)"
	}
}
