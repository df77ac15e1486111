package search_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/bigo/search"
)

// sortedEvens returns [0, 2, 4, ...] of length n.
func sortedEvens(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i * 2
	}
	return s
}

// BenchmarkLinearVsBinary compares O(n) and O(log n) lookups of a value near
// the end of the slice, for growing sizes.
func BenchmarkLinearVsBinary(b *testing.B) {
	for _, n := range []int{1_000, 10_000, 100_000} {
		s := sortedEvens(n)
		target := s[n-10]

		b.Run(fmt.Sprintf("Linear/n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = search.Linear(s, target)
			}
		})
		b.Run(fmt.Sprintf("Binary/n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = search.Binary(s, target)
			}
		})
		b.Run(fmt.Sprintf("BinaryRecursive/n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = search.BinaryRecursive(s, target)
			}
		})
	}
}
