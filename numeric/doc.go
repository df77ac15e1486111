// Package numeric provides the textbook recursive number functions:
// factorial and three Fibonacci variants with very different costs.
//
// 🚀 What
//
//   - Factorial         : n! by direct recursion, O(n).
//   - FactorialBig      : exact n! as *big.Int for n beyond uint64 range.
//   - FibonacciNaive    : fib(n-1)+fib(n-2) without reuse, O(φⁿ) ≈ O(2ⁿ).
//   - FibonacciIterative: two rolling accumulators, O(n) time, O(1) memory.
//   - Memo              : a cache object that memoizes Fibonacci per caller.
//
// All Fibonacci variants agree for every n ≥ 0; the naive one is kept only as
// the correctness baseline.
//
// ✨ Memo
//
//	A Memo is an explicit value, not a package-level table, so two callers never
//	observe each other's warm-up. It is safe for concurrent use: a RWMutex
//	guards the table and concurrent first computations of the same n are
//	collapsed into one with singleflight. Results never depend on call order.
//
//	m, err := numeric.NewMemo()                       // unbounded, never evicts
//	m, err := numeric.NewMemo(numeric.WithCapacity(64)) // LRU-bounded
//	v := m.Fibonacci(30)                              // 832040
//
// Overflow
//
//	uint64 holds n! up to n=20 and fib(n) up to n=93. Beyond that the
//	arithmetic wraps modulo 2⁶⁴; every variant wraps identically.
package numeric
