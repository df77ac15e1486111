package sorting_test

import (
	"fmt"

	"github.com/katalvlaran/bigo/sorting"
)

// ExampleBubbleSort reports the comparison count next to the result.
func ExampleBubbleSort() {
	data := []int{64, 34, 25, 12, 22, 11, 90, 88, 76, 50, 42}
	sorted, comparisons := sorting.BubbleSort(data)
	fmt.Println(sorted)
	fmt.Println("comparisons:", comparisons)
	fmt.Println(data)
	// Output:
	// [11 12 22 25 34 42 50 64 76 88 90]
	// comparisons: 55
	// [64 34 25 12 22 11 90 88 76 50 42]
}

// ExampleMergeSort sorts the same data in O(n log n).
func ExampleMergeSort() {
	fmt.Println(sorting.MergeSort([]int{64, 34, 25, 12, 22, 11, 90, 88, 76, 50, 42}))
	// Output:
	// [11 12 22 25 34 42 50 64 76 88 90]
}

// ExampleQuickSort sorts in place.
func ExampleQuickSort() {
	s := []int{50, 10, 40, 20, 30, 15, 25, 35, 45, 5}
	sorting.QuickSort(s)
	fmt.Println(s)
	// Output:
	// [5 10 15 20 25 30 35 40 45 50]
}
