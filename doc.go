// Package bigo is a small library of classic textbook algorithms, each written
// as a plain Go function with its complexity class documented next to it.
//
// 🚀 What is inside?
//
//	search/         linear search, iterative and recursive binary search       O(n), O(log n)
//	numeric/        factorial, naive/iterative/memoized Fibonacci              O(n), O(2ⁿ)
//	combinatorics/  permutations, subsets, Tower of Hanoi                      O(n!), O(2ⁿ)
//	sorting/        bubble sort with comparison count, merge sort, quicksort   O(n²), O(n log n)
//	matrix/         checked and naive multiplication, row-major flatten        O(n³), O(n²)
//	linkedlist/     singly linked list with head insert, traverse, find        O(1), O(n)
//	array/          insert-at-front on a fixed-capacity array                  O(n)
//
// ✨ Conventions
//
//   - Pure functions: no I/O, no logging, no package-level mutable state.
//     The one cache (numeric.Memo) is an explicit value owned by its caller.
//   - Absence is a sentinel (-1), never an error. Real failures, such as a
//     matrix dimension mismatch, are package sentinels matched with errors.Is.
//   - Inputs are never modified unless the algorithm is in-place by definition
//     (sorting.QuickSort, array.InsertFront).
//   - Every package ships runnable examples and benchmarks; run
//     `go test -bench . ./...` to watch the complexity classes diverge.
//
// Install with:
//
//	go get github.com/katalvlaran/bigo
package bigo
