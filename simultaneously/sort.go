// Package simultaneously sorts large slices in parallel on a bounded worker
// pool.
package simultaneously

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
	"slices"

	"github.com/alitto/pond/v2"
)

// ErrPanicRecovered is the base error for a comparator panic recovered on a worker.
var ErrPanicRecovered = errors.New("panic recovered")

// defaultMinChunk is the smallest number of items worth handing to a worker.
const defaultMinChunk = 4096

// SortFunc sorts items with cmp using up to maxConcurrent workers. If
// maxConcurrent is less than 1, GOMAXPROCS workers are used.
//
// The slice is split into chunks that are sorted concurrently and then merged
// pairwise, also concurrently. The result is the same as slices.SortStableFunc
// with the same comparator, so cmp must be a strict weak ordering (as
// natural.Compare is). Small slices are sorted on the calling goroutine.
//
// The context is checked between phases. On cancellation the slice holds a
// permutation of its original contents and the context's error is returned.
func SortFunc[T any](ctx context.Context, maxConcurrent int, items []T, cmp func(a, b T) int) error {
	return sortFunc(ctx, maxConcurrent, defaultMinChunk, items, cmp)
}

func sortFunc[T any](ctx context.Context, maxConcurrent, minChunk int, items []T, cmp func(a, b T) int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if maxConcurrent < 1 {
		maxConcurrent = runtime.GOMAXPROCS(0)
	}

	chunks := min(maxConcurrent, len(items)/max(minChunk, 1))
	if chunks < 2 { //nolint:mnd
		slices.SortStableFunc(items, cmp)

		return nil
	}

	pool := pond.NewPool(maxConcurrent, pond.WithContext(ctx))
	defer pool.StopAndWait()

	bounds := chunkBounds(len(items), chunks)

	group := pool.NewGroup()

	for i := range chunks {
		chunk := items[bounds[i]:bounds[i+1]]

		group.SubmitErr(func() error {
			return guard(func() {
				slices.SortStableFunc(chunk, cmp)
			})
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	return mergeRuns(ctx, pool, items, bounds, cmp)
}

// mergeRuns merges adjacent sorted runs, delimited by bounds, until one run
// remains. Each round halves the number of runs and runs its merges on pool.
func mergeRuns[T any](ctx context.Context, pool pond.Pool, items []T, bounds []int, cmp func(a, b T) int) error {
	src, dst := items, make([]T, len(items))

	for len(bounds) > 2 { //nolint:mnd
		if err := ctx.Err(); err != nil {
			return err
		}

		runs := len(bounds) - 1
		next := make([]int, 1, runs/2+2) //nolint:mnd
		group := pool.NewGroup()

		for r := 0; r < runs; r += 2 {
			lo, mid, hi := bounds[r], bounds[r+1], bounds[r+1]
			if r+1 < runs {
				hi = bounds[r+2]
			}

			in, out := src, dst

			group.SubmitErr(func() error {
				return guard(func() {
					mergeInto(out[lo:hi], in[lo:mid], in[mid:hi], cmp)
				})
			})

			next = append(next, hi)
		}

		if err := group.Wait(); err != nil {
			return err
		}

		src, dst = dst, src
		bounds = next
	}

	if &src[0] != &items[0] {
		copy(items, src)
	}

	return nil
}

// mergeInto merges two sorted runs into dst, taking from left on ties.
func mergeInto[T any](dst, left, right []T, cmp func(a, b T) int) {
	i, j, k := 0, 0, 0

	for i < len(left) && j < len(right) {
		if cmp(right[j], left[i]) < 0 {
			dst[k] = right[j]
			j++
		} else {
			dst[k] = left[i]
			i++
		}

		k++
	}

	k += copy(dst[k:], left[i:])
	copy(dst[k:], right[j:])
}

// chunkBounds splits n items into the given number of near-equal chunks and
// returns the chunks+1 boundaries.
func chunkBounds(n, chunks int) []int {
	bounds := make([]int, chunks+1)
	for i := range bounds {
		bounds[i] = i * n / chunks
	}

	return bounds
}

func guard(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v\n%s", ErrPanicRecovered, r, debug.Stack())
		}
	}()

	f()

	return nil
}
