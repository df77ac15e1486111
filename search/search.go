package search

import "cmp"

// NotFound is returned by every search when the target is absent.
// It is distinct from any valid slice index.
const NotFound = -1

// Linear returns the index of the first element equal to target, or NotFound.
//
// Complexity: O(n) time, O(1) memory.
func Linear[T comparable](s []T, target T) int {
	for i, v := range s {
		if v == target {
			return i
		}
	}

	return NotFound
}

// Binary returns an index of target in the ascending slice s, or NotFound.
//
// Algorithm:
//  1. lo, hi = 0, len(s)-1.
//  2. While lo <= hi: mid = lo + (hi-lo)/2.
//     s[mid] == target → return mid.
//     s[mid] >  target → hi = mid-1.
//     otherwise        → lo = mid+1.
//  3. Interval empty → NotFound.
//
// When target occurs more than once, the index returned is whichever
// occurrence the halving lands on first, identical to BinaryRecursive.
//
// Complexity: O(log n) time, O(1) memory.
func Binary[T cmp.Ordered](s []T, target T) int {
	lo, hi := 0, len(s)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2 // avoids lo+hi overflow on huge slices
		switch {
		case s[mid] == target:
			return mid
		case s[mid] > target:
			hi = mid - 1
		default:
			lo = mid + 1
		}
	}

	return NotFound
}

// BinaryRecursive has the same contract and tie-break as Binary,
// expressed as recursion over explicit bounds.
//
// Complexity: O(log n) time, O(log n) stack depth.
func BinaryRecursive[T cmp.Ordered](s []T, target T) int {
	return binaryRange(s, target, 0, len(s)-1)
}

// binaryRange searches s[lo..hi] inclusive.
func binaryRange[T cmp.Ordered](s []T, target T, lo, hi int) int {
	if lo > hi {
		return NotFound
	}
	mid := lo + (hi-lo)/2
	if s[mid] == target {
		return mid
	}
	if s[mid] > target {
		return binaryRange(s, target, lo, mid-1)
	}

	return binaryRange(s, target, mid+1, hi)
}
