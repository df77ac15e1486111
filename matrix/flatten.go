// SPDX-License-Identifier: MIT

package matrix

// Flatten returns every entry of m in row-major order.
//
// m is expected to be rectangular. A ragged matrix is a caller precondition
// violation; each row is still emitted in full, in order.
//
// Complexity: O(rows·cols).
func Flatten[T Number](m Matrix[T]) []T {
	out := make([]T, 0, m.Rows()*m.Cols())
	for _, row := range m {
		out = append(out, row...)
	}

	return out
}
