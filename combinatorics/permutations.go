package combinatorics

import "slices"

// Permutations returns every ordering of s.
//
// Algorithm:
//  1. len(s) <= 1 → a single permutation, a copy of s.
//  2. For each index i in order: fix s[i] as prefix, permute s without i,
//     and emit prefix + each sub-permutation.
//
// For n distinct elements the result has exactly n! entries and no
// duplicates. Repeated input values produce repeated permutations.
//
// Complexity: O(n·n!) time and memory.
func Permutations[T any](s []T) [][]T {
	if len(s) <= 1 {
		return [][]T{slices.Clone(s)}
	}

	var res [][]T
	for i := range s {
		rest := make([]T, 0, len(s)-1)
		rest = append(rest, s[:i]...)
		rest = append(rest, s[i+1:]...)

		for _, p := range Permutations(rest) {
			perm := make([]T, 0, len(s))
			perm = append(perm, s[i])
			perm = append(perm, p...)
			res = append(res, perm)
		}
	}

	return res
}

// Subsets returns every subset of s, including the empty set and s itself.
//
// Algorithm:
//  1. Empty input → [[]].
//  2. Otherwise compute subsets of s[1:], return them followed by each of
//     them with s[0] prepended.
//
// Element order inside each subset follows s. The result has 2ⁿ entries.
//
// Complexity: O(n·2ⁿ) time and memory.
func Subsets[T any](s []T) [][]T {
	if len(s) == 0 {
		return [][]T{{}}
	}

	head := s[0]
	without := Subsets(s[1:])

	res := make([][]T, 0, 2*len(without))
	res = append(res, without...)
	for _, sub := range without {
		with := make([]T, 0, len(sub)+1)
		with = append(with, head)
		with = append(with, sub...)
		res = append(res, with)
	}

	return res
}
