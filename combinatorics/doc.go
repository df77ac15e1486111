// Package combinatorics generates the classic exhaustive structures:
// every permutation, every subset, and the Tower of Hanoi move list.
//
// What
//
//   - Permutations(s) : all n! orderings, grouped by which element is fixed
//     first, in input order, recursively.
//   - Subsets(s)      : all 2ⁿ subsets: subsets of the tail, then the same
//     subsets with the head prepended.
//   - Hanoi(n, ...)   : the 2ⁿ−1 moves that transfer n discs between pegs.
//   - HanoiIterative  : same moves in the same order, using an explicit work
//     stack instead of the call stack.
//
// Complexity
//
//   - Permutations: O(n·n!) time and output.
//   - Subsets:      O(n·2ⁿ) time and output.
//   - Hanoi:        O(2ⁿ) moves.
//
// Every output slice is freshly allocated; inputs are never modified and
// results never alias them.
package combinatorics
