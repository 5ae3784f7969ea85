package natural

import (
	"fmt"

	"github.com/amp-labs/propersort/errors"
)

// SizeRank is a recognized apparel size. Ranks are totally ordered from the
// smallest (XXXXS) to the largest (XXXXL). SM, ML and LXL are the straddle
// sizes written as "S/M", "M-L", "L/XL" and sit between their neighbors.
type SizeRank uint8

// The zero SizeRank is not a valid size.
const (
	XXXXS SizeRank = iota + 1
	XXXS
	XXS
	XS
	S
	SM
	M
	ML
	L
	LXL
	XL
	XXL
	XXXL
	XXXXL
)

var sizeNames = [...]string{ //nolint:gochecknoglobals
	XXXXS: "XXXXS",
	XXXS:  "XXXS",
	XXS:   "XXS",
	XS:    "XS",
	S:     "S",
	SM:    "SM",
	M:     "M",
	ML:    "ML",
	L:     "L",
	LXL:   "LXL",
	XL:    "XL",
	XXL:   "XXL",
	XXXL:  "XXXL",
	XXXXL: "XXXXL",
}

// Valid reports whether r is one of the defined ranks.
func (r SizeRank) Valid() bool {
	return r >= XXXXS && r <= XXXXL
}

func (r SizeRank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("SizeRank(%d)", uint8(r))
	}

	return sizeNames[r]
}

// maxSizeLiteral bounds the length of every key in sizeTable, which lets
// lookups fold into a stack buffer instead of allocating.
const maxSizeLiteral = 16

// sizeTable maps lower-case surface forms to ranks. It is never mutated.
var sizeTable = map[string]SizeRank{ //nolint:gochecknoglobals
	"xxxxs": XXXXS,
	"xxxs":  XXXS,
	"xxs":   XXS,
	"xs":    XS,
	"s":     S,
	"sm":    SM,
	"s/m":   SM,
	"s-m":   SM,
	"m":     M,
	"ml":    ML,
	"m/l":   ML,
	"m-l":   ML,
	"l":     L,
	"lxl":   LXL,
	"l/xl":  LXL,
	"l-xl":  LXL,
	"xl":    XL,
	"xxl":   XXL,
	"xxxl":  XXXL,
	"xxxxl": XXXXL,

	"small":  S,
	"medium": M,
	"med":    M,
	"large":  L,

	"extra small": XS,
	"x-small":     XS,
	"xx-small":    XXS,
	"xxx-small":   XXXS,
	"xxxx-small":  XXXXS,
	"extra large": XL,
	"x-large":     XL,
	"xx-large":    XXL,
	"xxx-large":   XXXL,
	"xxxx-large":  XXXXL,
}

// ClassifySize reports the rank of word when it is a size designator. The
// match is exact apart from ASCII case: "Extra Large" and "XL" classify,
// "extra-large" does not.
func ClassifySize(word string) (SizeRank, bool) {
	rank, err := classifySize(word)

	return rank, err == nil
}

func classifySize(word string) (SizeRank, error) {
	if len(word) > maxSizeLiteral {
		return 0, errors.ErrNotASize
	}

	var buf [maxSizeLiteral]byte

	return lookupSize(appendLower(buf[:0], word))
}

// classifySizePair classifies two adjacent words as if they had been
// separated by a single space.
func classifySizePair(first, second string) (SizeRank, error) {
	if len(first)+1+len(second) > maxSizeLiteral {
		return 0, errors.ErrNotASize
	}

	var buf [maxSizeLiteral]byte

	key := appendLower(buf[:0], first)
	key = append(key, ' ')
	key = appendLower(key, second)

	return lookupSize(key)
}

func lookupSize(key []byte) (SizeRank, error) {
	rank, ok := sizeTable[string(key)]
	if !ok {
		return 0, errors.ErrNotASize
	}

	return rank, nil
}

func appendLower(dst []byte, s string) []byte {
	for i := range len(s) {
		dst = append(dst, toLower(s[i]))
	}

	return dst
}
