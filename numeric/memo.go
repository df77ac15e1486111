package numeric

import (
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// Stats reports how a Memo answered lookups for n >= 2.
//   - Hits:   value served from the table.
//   - Misses: value computed (and stored).
type Stats struct {
	Hits   uint64
	Misses uint64
}

// store is the table behind a Memo: a plain map, or an LRU when bounded.
type store interface {
	get(n int) (uint64, bool)
	put(n int, v uint64)
	len() int
	purge()
}

// mapStore never evicts. Guarded by its own RWMutex.
type mapStore struct {
	mu    sync.RWMutex
	table map[int]uint64
}

func (s *mapStore) get(n int) (uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.table[n]
	return v, ok
}

func (s *mapStore) put(n int, v uint64) {
	s.mu.Lock()
	s.table[n] = v
	s.mu.Unlock()
}

func (s *mapStore) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.table)
}

func (s *mapStore) purge() {
	s.mu.Lock()
	s.table = make(map[int]uint64)
	s.mu.Unlock()
}

// lruStore keeps the most recently used entries; the cache locks internally.
type lruStore struct {
	cache *lru.Cache[int, uint64]
}

func (s *lruStore) get(n int) (uint64, bool) { return s.cache.Get(n) }
func (s *lruStore) put(n int, v uint64)      { s.cache.Add(n, v) }
func (s *lruStore) len() int                 { return s.cache.Len() }
func (s *lruStore) purge()                   { s.cache.Purge() }

// Memo memoizes Fibonacci values keyed by n.
//
// The first call for a given n computes it (recursively, through the same
// table) and stores it; later calls return the stored value in O(1).
// A Memo is safe for concurrent use. The zero value is not usable; call NewMemo.
type Memo struct {
	table  store
	flight singleflight.Group
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewMemo builds a Memo from DefaultOptions overridden by opts.
// Returns ErrOptionViolation (wrapped) for invalid options.
func NewMemo(opts ...Option) (*Memo, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	m := &Memo{}
	if o.Capacity > 0 {
		cache, err := lru.New[int, uint64](max(o.Capacity, MinCapacity))
		if err != nil {
			return nil, fmt.Errorf("numeric: NewMemo: %w", err)
		}
		m.table = &lruStore{cache: cache}
	} else {
		m.table = &mapStore{table: make(map[int]uint64)}
	}

	return m, nil
}

// Fibonacci returns fib(n), consulting and filling the table.
// n <= 0 yields 0, matching FibonacciNaive and FibonacciIterative.
//
// Complexity: O(n) on a cold table, O(1) for a cached n.
func (m *Memo) Fibonacci(n int) uint64 {
	if n <= 1 {
		return base(n)
	}
	if v, ok := m.table.get(n); ok {
		m.hits.Add(1)
		return v
	}

	// Concurrent callers asking for the same cold n share one computation.
	v, _, _ := m.flight.Do(strconv.Itoa(n), func() (interface{}, error) {
		// Another flight may have stored n while we queued.
		if v, ok := m.table.get(n); ok {
			m.hits.Add(1)
			return v, nil
		}
		m.misses.Add(1)
		v := m.Fibonacci(n-1) + m.Fibonacci(n-2)
		m.table.put(n, v)
		return v, nil
	})

	return v.(uint64)
}

// Len reports the number of cached entries.
func (m *Memo) Len() int {
	return m.table.len()
}

// Stats returns a snapshot of the hit/miss counters.
func (m *Memo) Stats() Stats {
	return Stats{Hits: m.hits.Load(), Misses: m.misses.Load()}
}

// Reset drops every cached entry and zeroes the counters.
func (m *Memo) Reset() {
	m.table.purge()
	m.hits.Store(0)
	m.misses.Store(0)
}
