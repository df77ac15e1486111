package sorting

import "cmp"

// MergeSort returns an ascending, stable sorted copy of s.
//
// Algorithm:
//  1. len(s) <= 1 → copy of s.
//  2. mid = len(s)/2; sort s[:mid] and s[mid:] recursively.
//  3. Merge the halves, taking from the left on ties.
//
// Complexity: O(n log n) time, O(n) extra memory per level.
func MergeSort[T cmp.Ordered](s []T) []T {
	return MergeSortFunc(s, cmp.Compare[T])
}

// Merge combines two ascending slices into a new ascending slice.
// On equal elements the one from left comes first.
//
// Complexity: O(len(left)+len(right)).
func Merge[T cmp.Ordered](left, right []T) []T {
	return MergeFunc(left, right, cmp.Compare[T])
}

// MergeSortFunc is MergeSort ordered by cmp, which must return a negative
// number when a < b, zero when equal and a positive number when a > b.
// Elements that compare equal keep their input order.
func MergeSortFunc[T any](s []T, cmp func(a, b T) int) []T {
	if len(s) <= 1 {
		out := make([]T, len(s))
		copy(out, s)
		return out
	}

	mid := len(s) / 2
	left := MergeSortFunc(s[:mid], cmp)
	right := MergeSortFunc(s[mid:], cmp)

	return MergeFunc(left, right, cmp)
}

// MergeFunc is Merge ordered by cmp. Ties resolve to left.
func MergeFunc[T any](left, right []T, cmp func(a, b T) int) []T {
	res := make([]T, 0, len(left)+len(right))
	i, j := 0, 0

	for i < len(left) && j < len(right) {
		if cmp(left[i], right[j]) <= 0 { // left[i] <= right[j] keeps stability
			res = append(res, left[i])
			i++
		} else {
			res = append(res, right[j])
			j++
		}
	}
	res = append(res, left[i:]...)
	res = append(res, right[j:]...)

	return res
}
