package numeric

import "fmt"

// DefaultCapacity is the Memo capacity used when no option overrides it.
// Zero means unbounded: entries are never evicted.
const DefaultCapacity = 0

// MinCapacity is the smallest effective bound. Computing fib(n) reuses
// entries up to three steps back; a smaller LRU evicts them before reuse and
// the recursion turns exponential.
const MinCapacity = 3

// Option configures a Memo via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by NewMemo.
type Option func(*MemoOptions)

// MemoOptions holds the parameters of a Memo.
type MemoOptions struct {
	// Capacity bounds the number of cached entries with LRU eviction.
	// 0 disables the bound.
	Capacity int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns MemoOptions with an unbounded table.
func DefaultOptions() MemoOptions {
	return MemoOptions{
		Capacity: DefaultCapacity,
		err:      nil,
	}
}

// WithCapacity bounds the memo table to k entries.
//
//	k > 0: keep the k most recently used entries (at least MinCapacity)
//	k == 0: explicit "no bound"
//	k < 0: invalid option → ErrOptionViolation
func WithCapacity(k int) Option {
	return func(o *MemoOptions) {
		if k < 0 {
			o.err = fmt.Errorf("%w: Capacity cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.Capacity = k
	}
}
