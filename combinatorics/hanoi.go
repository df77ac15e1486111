package combinatorics

// Hanoi returns the moves that transfer n discs from source to target,
// using aux as the spare peg.
//
// Algorithm:
//
//	n == 1: move disc 1 source → target.
//	n >  1: Hanoi(n-1, source → aux), move disc n source → target,
//	        Hanoi(n-1, aux → target).
//
// n < 1 yields nil. For n >= 1 the result has exactly 2ⁿ−1 moves.
//
// Complexity: O(2ⁿ) time and memory, O(n) stack.
func Hanoi(n int, source, target, aux Peg) []Move {
	if n < 1 {
		return nil
	}
	moves := make([]Move, 0, moveCount(n))
	var solve func(k int, from, to, via Peg)
	solve = func(k int, from, to, via Peg) {
		if k == 1 {
			moves = append(moves, Move{Disc: 1, From: from, To: to})
			return
		}
		solve(k-1, from, via, to)
		moves = append(moves, Move{Disc: k, From: from, To: to})
		solve(k-1, via, to, from)
	}
	solve(n, source, target, aux)

	return moves
}

// hanoiTask is one unit of pending work: either a subproblem of k discs or,
// when emit is set, a single move of disc k.
type hanoiTask struct {
	k             int
	from, to, via Peg
	emit          bool
}

// HanoiIterative produces exactly the same move list as Hanoi without
// recursion. Tasks are pushed in reverse so they pop in recursive order.
//
// Complexity: O(2ⁿ) time, O(n) stack slice.
func HanoiIterative(n int, source, target, aux Peg) []Move {
	if n < 1 {
		return nil
	}
	moves := make([]Move, 0, moveCount(n))
	stack := []hanoiTask{{k: n, from: source, to: target, via: aux}}

	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if t.emit || t.k == 1 {
			moves = append(moves, Move{Disc: t.k, From: t.from, To: t.to})
			continue
		}
		stack = append(stack,
			hanoiTask{k: t.k - 1, from: t.via, to: t.to, via: t.from},
			hanoiTask{k: t.k, from: t.from, to: t.to, emit: true},
			hanoiTask{k: t.k - 1, from: t.from, to: t.via, via: t.to},
		)
	}

	return moves
}

// maxPrealloc caps the capacity hint; larger outputs grow by append.
const maxPrealloc = 1 << 20

// moveCount returns 2ⁿ−1 as a capacity hint, capped at maxPrealloc.
func moveCount(n int) int {
	if n >= 20 {
		return maxPrealloc
	}
	return 1<<n - 1
}
