package numeric

import "math/big"

// Factorial returns n! computed as n * Factorial(n-1) with base case n <= 1 → 1.
//
// Negative n is a caller precondition violation: it is not guarded, and the
// base case happens to answer 1. Results overflow uint64 for n > 20.
//
// Complexity: O(n) time, O(n) stack.
func Factorial(n int) uint64 {
	if n <= 1 {
		return 1
	}

	return uint64(n) * Factorial(n-1)
}

// FactorialBig returns n! exactly. Same base case as Factorial.
//
// Complexity: O(n) multiplications on growing integers.
func FactorialBig(n int) *big.Int {
	res := big.NewInt(1)
	for i := 2; i <= n; i++ {
		res.Mul(res, big.NewInt(int64(i)))
	}

	return res
}
