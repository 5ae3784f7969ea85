package main

import (
	"slices"

	"github.com/zeebo/xxh3"
)

// uniqueLines drops repeated lines in place, keeping the first occurrence.
// Lines are bucketed by hash and compared exactly within a bucket.
func uniqueLines(lines []string) []string {
	seen := make(map[uint64][]string, len(lines))
	out := lines[:0]

	for _, line := range lines {
		h := xxh3.HashString(line)
		if slices.Contains(seen[h], line) {
			continue
		}

		seen[h] = append(seen[h], line)
		out = append(out, line)
	}

	clear(lines[len(out):])

	return out
}
