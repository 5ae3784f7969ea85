// Package compare provides the equality and three-way ordering vocabulary
// shared by the natural ordering packages.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Ordered is implemented by types that define a three-way comparison against
// values of the same type. Compare returns a negative number when the receiver
// sorts before other, zero when they are equivalent and a positive number when
// it sorts after.
type Ordered[T any] interface {
	Comparable[T]

	Compare(other T) int
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}
