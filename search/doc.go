// Package search implements linear and binary search over Go slices.
//
// 🚀 What
//
//   - Linear scans left to right and returns the first matching index.
//   - Binary halves a sorted interval [lo, hi] until the target is found
//     or the interval is empty. Offered in iterative and recursive form;
//     both compare the midpoint before moving left or right, so they return
//     the same index for the same input.
//
// Not-found is signalled by the NotFound sentinel (-1), never by an error.
//
// Complexity
//
//   - Linear:          O(n) time, O(1) memory.
//   - Binary:          O(log n) time, O(1) memory.
//   - BinaryRecursive: O(log n) time, O(log n) stack.
//
// Preconditions
//
//	Binary and BinaryRecursive require the slice to be sorted ascending.
//	On unsorted input they still terminate but the result is meaningless.
//
// Usage
//
//	idx := search.Binary([]int{1, 3, 5, 7}, 5) // 2
//	if idx == search.NotFound {
//	    // absent
//	}
package search
