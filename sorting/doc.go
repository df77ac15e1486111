// Package sorting implements the textbook comparison sorts with their
// characteristic costs.
//
// What
//
//   - BubbleSort : adjacent swaps on a copy, also returns how many element
//     comparisons it made (always n(n-1)/2). O(n²).
//   - MergeSort  : top-down split at the midpoint and a stable linear merge
//     that prefers the left half on ties. O(n log n), returns a new slice.
//   - MergeSortFunc / MergeFunc: the same with a caller-supplied comparison,
//     which makes stability observable on keyed records.
//   - QuickSort  : in-place Lomuto partition with the last element as pivot.
//     O(n log n) on average, O(n²) on already sorted input.
//
// BubbleSort and MergeSort never modify their input. QuickSort does, by design
// of the algorithm.
package sorting
