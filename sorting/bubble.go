package sorting

import (
	"cmp"
	"slices"
)

// BubbleSort returns an ascending copy of s and the number of element
// comparisons performed. s itself is left unmodified.
//
// Algorithm:
//
//	for i in 0..n-1:
//	    for j in 0..n-i-2:
//	        comparisons++
//	        if c[j] > c[j+1]: swap
//
// The loop bounds are fixed (no early exit), so the count is always n(n-1)/2.
//
// Complexity: O(n²) time, O(n) memory for the copy.
func BubbleSort[T cmp.Ordered](s []T) ([]T, int) {
	c := slices.Clone(s)
	n := len(c)
	comparisons := 0

	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			comparisons++
			if c[j] > c[j+1] {
				c[j], c[j+1] = c[j+1], c[j]
			}
		}
	}

	return c, comparisons
}
