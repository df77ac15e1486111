// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Number is the set of element kinds a Matrix may hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Matrix is a row-major table of numbers: m[i][j] is row i, column j.
// A well-formed Matrix has at least one row, at least one column, and rows of
// equal length; Validate reports which of those fails.
type Matrix[T Number] [][]T

// New allocates a rows×cols zero matrix.
// Returns ErrEmpty (wrapped) when rows <= 0 or cols <= 0.
//
// Complexity: O(rows·cols).
func New[T Number](rows, cols int) (Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNew, fmt.Errorf("%dx%d: %w", rows, cols, ErrEmpty))
	}
	// One backing buffer keeps rows contiguous.
	buf := make([]T, rows*cols)
	m := make(Matrix[T], rows)
	for i := range m {
		m[i] = buf[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return m, nil
}

// Rows returns the number of rows.
func (m Matrix[T]) Rows() int {
	return len(m)
}

// Cols returns the length of the first row, or 0 for a matrix with no rows.
// For a ragged matrix this is not meaningful; see Validate.
func (m Matrix[T]) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Validate checks that m is non-empty and rectangular.
//
// Errors:
//   - ErrEmpty  if m has no rows or its first row has no columns.
//   - ErrRagged if any row length differs from the first row.
//
// Complexity: O(rows).
func (m Matrix[T]) Validate() error {
	if m.Rows() == 0 || m.Cols() == 0 {
		return matrixErrorf(opValidate, ErrEmpty)
	}
	cols := m.Cols()
	for i, row := range m {
		if len(row) != cols {
			return matrixErrorf(opValidate, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, ErrRagged))
		}
	}

	return nil
}
