// SPDX-License-Identifier: MIT

// Package matrix implements textbook matrix multiplication and row-major
// traversal over plain nested slices.
//
// What:
//
//   - Matrix[T] is a [][]T of any integer or float kind. Rectangularity
//     (all rows of equal length) is not enforced on construction; it is
//     checked by Multiply and reported through Validate.
//   - Multiply     : dimension-checked product, fails with
//     ErrDimensionMismatch when cols(A) != rows(B).
//   - MultiplySquare: the unchecked n×n triple loop, for callers that already
//     guarantee square operands of equal size.
//   - Flatten      : row-major traversal into one flat slice.
//
// Complexity:
//
//	Multiply:       O(rows(A)·cols(B)·cols(A)), O(n³) for square inputs.
//	MultiplySquare: O(n³).
//	Flatten:        O(rows·cols).
//
// Errors are package sentinels (errors.go) wrapped with the operation name;
// match them with errors.Is.
package matrix
