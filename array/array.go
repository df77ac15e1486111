package array

import (
	"errors"
	"fmt"
)

// ErrFull is returned when the array already holds capacity elements.
var ErrFull = errors.New("array: capacity exhausted")

// InsertFront places v at index 0 of s, shifting s[0:len] to s[1:len+1].
//
// capacity is the fixed size of the logical array. When len(s) >= capacity,
// s is returned unchanged together with ErrFull. Otherwise the shift happens
// in place if cap(s) has room, or in a new backing array of size capacity.
//
// Callers must use the returned slice, as with append.
func InsertFront[T any](s []T, v T, capacity int) ([]T, error) {
	n := len(s)
	if n >= capacity {
		return s, fmt.Errorf("array.InsertFront: len %d, capacity %d: %w", n, capacity, ErrFull)
	}
	if cap(s) < n+1 {
		grown := make([]T, n, capacity)
		copy(grown, s)
		s = grown
	}
	s = s[:n+1]

	// shift right, back to front, so no element is overwritten before it moves
	for i := n; i > 0; i-- {
		s[i] = s[i-1]
	}
	s[0] = v

	return s, nil
}
