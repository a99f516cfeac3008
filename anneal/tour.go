// Package anneal - configuration utilities.
//
// A configuration is an open ordering of location indices: a permutation of
// {0..n-1} visited in sequence order, with no closing edge. These helpers
// operate purely on structure, without touching distance data.
//
// Provided helpers:
//   - Identity: the starting configuration 0,1,…,n-1.
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - CopyTour: independent copy (configurations are never aliased).
//   - DebugString: compact printable representation for tests/debug.
package anneal

import (
	"fmt"
	"strings"
)

// Identity returns the configuration [0, 1, …, n-1]. For n<=0 it returns nil.
//
// Complexity: O(n) time, O(n) space.
func Identity(n int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
//
// Errors:
//   - ErrInvalidPermutation for wrong length or duplicates.
//   - ErrIndexOutOfRange for an element outside [0,n).
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrInvalidPermutation
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return ErrIndexOutOfRange
		}
		if seen[v] {
			return ErrInvalidPermutation
		}
		seen[v] = true
	}
	return nil
}

// CopyTour returns an independent copy of a configuration.
//
// Complexity: O(n).
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)
	return out
}

// DebugString returns a compact printable representation, e.g. "0 → 3 → 1 → 2".
//
// Complexity: O(n) time, O(n) space for formatting.
func DebugString(tour []int) string {
	if len(tour) == 0 {
		return "[]"
	}
	var b strings.Builder
	for i, v := range tour {
		if i > 0 {
			b.WriteString(" → ")
		}
		fmt.Fprintf(&b, "%d", v)
	}
	return b.String()
}
