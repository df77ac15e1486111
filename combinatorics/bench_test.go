package combinatorics_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/bigo/combinatorics"
)

// BenchmarkPermutations shows O(n!) growth.
func BenchmarkPermutations(b *testing.B) {
	for _, n := range []int{4, 6, 8} {
		in := make([]int, n)
		for i := range in {
			in[i] = i
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = combinatorics.Permutations(in)
			}
		})
	}
}

// BenchmarkSubsets shows O(2ⁿ) growth.
func BenchmarkSubsets(b *testing.B) {
	for _, n := range []int{8, 12, 16} {
		in := make([]int, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = combinatorics.Subsets(in)
			}
		})
	}
}

// BenchmarkHanoi compares the recursive and work-stack variants.
func BenchmarkHanoi(b *testing.B) {
	const n = 16
	b.Run("Recursive", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = combinatorics.Hanoi(n, combinatorics.A, combinatorics.C, combinatorics.B)
		}
	})
	b.Run("Iterative", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = combinatorics.HanoiIterative(n, combinatorics.A, combinatorics.C, combinatorics.B)
		}
	})
}
