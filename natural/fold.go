package natural

import "strings"

// CompareFold compares two strings ignoring ASCII case and returns -1, 0 or +1.
//
// Bytes are compared after folding A-Z to a-z; the first folded difference
// decides. When one string is a folded prefix of the other the shorter sorts
// first. Strings that differ only in case are ordered byte-wise, so upper
// case comes first: "A" < "a" and "String One" < "string one". Bytes outside
// ASCII are compared as they are.
func CompareFold(a, b string) int {
	if a == b {
		return 0
	}

	n := min(len(a), len(b))

	for i := range n {
		ca, cb := a[i], b[i]
		if ca == cb {
			continue
		}

		if la, lb := toLower(ca), toLower(cb); la != lb {
			if la < lb {
				return -1
			}

			return 1
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}
