// Package sortable provides wrapper types that implement the Sortable
// interface, so strings can be ordered naturally by code written against
// Equals and LessThan.
//
// # Overview
//
// The Sortable interface extends [github.com/amp-labs/propersort/compare.Comparable]
// with a LessThan method. [Natural] orders strings with
// [github.com/amp-labs/propersort/natural.Compare]; [Folded] orders them with
// [github.com/amp-labs/propersort/natural.CompareFold].
//
// # Usage
//
//	titles := []sortable.Natural{"Crank 180mm", "Crank 172.5mm", "Crank 20mm"}
//	sortable.Sort(titles)
//	// Crank 20mm, Crank 172.5mm, Crank 180mm
//
// Both wrappers implement [github.com/amp-labs/propersort/compare.Ordered] too,
// so they can be passed to slices.SortFunc through a method value:
//
//	slices.SortFunc(titles, sortable.Natural.Compare)
//
// # Creating Custom Sortable Types
//
//	type Product struct {
//	    Title string
//	    SKU   string
//	}
//
//	func (p Product) Equals(other Product) bool {
//	    return p.SKU == other.SKU
//	}
//
//	func (p Product) LessThan(other Product) bool {
//	    if c := natural.Compare(p.Title, other.Title); c != 0 {
//	        return c < 0
//	    }
//	    return p.SKU < other.SKU
//	}
//
// # Thread Safety
//
// The wrapper types are immutable value types and safe for concurrent use.
package sortable
