package numeric

// FibonacciNaive returns fib(n) with fib(0)=0, fib(1)=1, recomputing every
// subproblem. n <= 0 yields 0.
//
// Complexity: O(2ⁿ) time, O(n) stack. Practical only for n below ~40.
func FibonacciNaive(n int) uint64 {
	if n <= 1 {
		return base(n)
	}

	return FibonacciNaive(n-1) + FibonacciNaive(n-2)
}

// FibonacciIterative returns fib(n) by accumulating the last two values.
//
// Complexity: O(n) time, O(1) memory.
func FibonacciIterative(n int) uint64 {
	if n <= 1 {
		return base(n)
	}
	var a, b uint64 = 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}

	return b
}

// FibonacciMemoized returns fib(n) through a fresh Memo. Use a long-lived
// Memo directly to reuse work across calls.
//
// Complexity: O(n) time, O(n) memory.
func FibonacciMemoized(n int) uint64 {
	m, _ := NewMemo() // default options cannot fail

	return m.Fibonacci(n)
}

// base answers fib for n <= 1; negatives collapse to 0.
func base(n int) uint64 {
	if n < 0 {
		return 0
	}

	return uint64(n)
}
