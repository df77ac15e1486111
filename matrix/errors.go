// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ". Operations wrap these with
// matrixErrorf so callers still match via errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// empty operand -> ragged operand -> dimension mismatch.
var (
	// ErrDimensionMismatch indicates incompatible operands: cols(A) != rows(B).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRagged indicates rows of different lengths inside one matrix.
	ErrRagged = errors.New("matrix: rows have different lengths")

	// ErrEmpty indicates a matrix with no rows or no columns.
	ErrEmpty = errors.New("matrix: empty matrix")
)

// Operation tags for uniform error wrapping.
const (
	opMultiply = "Multiply"
	opValidate = "Validate"
	opNew      = "New"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("matrix.%s: %w", tag, err)
}
