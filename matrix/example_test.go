// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bigo/matrix"
)

// ExampleMultiply multiplies two 2×2 matrices and shows the mismatch error.
func ExampleMultiply() {
	a := matrix.Matrix[int]{{1, 2}, {3, 4}}
	b := matrix.Matrix[int]{{5, 6}, {7, 8}}

	c, err := matrix.Multiply(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c)

	_, err = matrix.Multiply(matrix.Matrix[int]{{1, 2, 3}}, b)
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch))
	fmt.Println(err)
	// Output:
	// [[19 22] [43 50]]
	// true
	// matrix.Multiply: A is 1x3, B is 2x2: matrix: dimension mismatch
}

// ExampleFlatten traverses a 3×3 matrix row by row.
func ExampleFlatten() {
	fmt.Println(matrix.Flatten(matrix.Matrix[int]{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}))
	// Output:
	// [1 2 3 4 5 6 7 8 9]
}
