package sorting

import "cmp"

// QuickSort sorts s ascending in place.
//
// Partition scheme (Lomuto): pivot = s[hi]; every element <= pivot is swapped
// to the front, then the pivot is placed right after them. Both sides are
// sorted recursively. Not stable.
//
// Complexity: O(n log n) average, O(n²) worst case (sorted input),
// O(log n) to O(n) stack.
func QuickSort[T cmp.Ordered](s []T) {
	quickSort(s, 0, len(s)-1)
}

func quickSort[T cmp.Ordered](s []T, lo, hi int) {
	if lo >= hi {
		return
	}
	p := partition(s, lo, hi)
	quickSort(s, lo, p-1)
	quickSort(s, p+1, hi)
}

// partition places s[hi] at its final index and returns that index.
func partition[T cmp.Ordered](s []T, lo, hi int) int {
	pivot := s[hi]
	i := lo - 1
	for j := lo; j < hi; j++ {
		if s[j] <= pivot {
			i++
			s[i], s[j] = s[j], s[i]
		}
	}
	s[i+1], s[hi] = s[hi], s[i+1]

	return i + 1
}
