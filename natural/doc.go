// Package natural orders free-form text the way people read it: embedded
// numbers by value and apparel sizes by rank.
//
// Plain byte order puts "Crank 180mm" before "Crank 20mm" and "T-Shirt L"
// before "T-Shirt XS". Compare instead splits each string into typed tokens
// and compares them position by position:
//
//	titles := []string{"T-Shirt L Black", "T-Shirt XS Black", "T-Shirt Extra Large Black"}
//	natural.Sort(titles)
//	// [T-Shirt XS Black T-Shirt L Black T-Shirt Extra Large Black]
//
// # Tokens
//
// Input is split on ASCII whitespace. Each word becomes, in order of
// preference:
//
//   - a Size joined with the previous word, when the two form a size phrase
//     such as "Extra Large";
//   - a Size on its own ("XS", "m/l", "Medium");
//   - a Number ("175", "172.5", "1,000");
//   - one token per numeric or textual run ("36T" is 36 then "T").
//
// Text compares with CompareFold, numbers by value, sizes by rank. Tokens of
// different kinds at the same position order as Number < Size < Text.
//
// # Numeric mode
//
// The default build reads numbers as decimals with an optional sign, one
// internal '.' and ',' grouping separators. Building with the natural_integer
// tag restricts numbers to signed 64-bit integers. The mode is fixed per build
// so that comparisons within one sort agree; NumericMode reports it.
//
// All functions are pure and safe for concurrent use.
package natural
