// Package array shows the cost of inserting at the front of a contiguous,
// fixed-capacity array: every existing element shifts one slot right.
//
// Complexity: InsertFront is O(n) time, O(1) extra memory when the backing
// array already has room.
package array
