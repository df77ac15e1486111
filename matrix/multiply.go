// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Multiply returns C = A·B with C[i][j] = Σₖ A[i][k]·B[k][j].
//
// Implementation:
//   - Stage 1: validate both operands (non-empty, rectangular).
//   - Stage 2: require cols(A) == rows(B), else ErrDimensionMismatch.
//   - Stage 3: allocate rows(A)×cols(B) and accumulate in i-k-j order so the
//     inner loop walks rows of B and C contiguously.
//
// Errors (wrapped with "matrix.Multiply"):
//   - ErrEmpty, ErrRagged from Validate.
//   - ErrDimensionMismatch when the inner dimensions differ.
//
// Complexity: O(rows(A)·cols(B)·cols(A)) time, O(rows(A)·cols(B)) memory.
func Multiply[T Number](a, b Matrix[T]) (Matrix[T], error) {
	if err := a.Validate(); err != nil {
		return nil, matrixErrorf(opMultiply, fmt.Errorf("A: %w", err))
	}
	if err := b.Validate(); err != nil {
		return nil, matrixErrorf(opMultiply, fmt.Errorf("B: %w", err))
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMultiply, fmt.Errorf("A is %dx%d, B is %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := New[T](aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	var av T
	for i := 0; i < aRows; i++ {
		ri := res[i]
		for k := 0; k < aCols; k++ {
			// No zero skip: 0·Inf and 0·NaN must still reach the sum.
			av = a[i][k]
			bk := b[k]
			for j := 0; j < bCols; j++ {
				ri[j] += av * bk[j]
			}
		}
	}

	return res, nil
}

// MultiplySquare is the naive n×n product with n = len(a).
//
// Preconditions (not checked): a and b are both n×n. Violations panic with an
// index out of range or silently ignore extra entries.
//
// Complexity: O(n³).
func MultiplySquare[T Number](a, b Matrix[T]) Matrix[T] {
	n := len(a)
	res := make(Matrix[T], n)
	for i := range res {
		res[i] = make([]T, n)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				res[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return res
}
