package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hailam/uttt/internal/state"
)

// Tier is a bounded, least-recently-used mapping from Key to a ranked
// solution list. Reads and writes are serialised behind a single mutex,
// matching the shared-resource policy: LRU recency bookkeeping makes even
// a Get a mutation, so there is no useful read/write split.
type Tier struct {
	mu       sync.Mutex
	cache    *lru.Cache[Key, []state.Solution]
	capacity int
	evicted  *Entry
}

// New builds a Tier with the given capacity. Capacity must be positive.
func New(capacity int) (*Tier, error) {
	t := &Tier{capacity: capacity}
	c, err := lru.NewWithEvict[Key, []state.Solution](capacity, t.onEvict)
	if err != nil {
		return nil, err
	}
	t.cache = c
	return t, nil
}

// onEvict is invoked by the underlying LRU synchronously from within Add,
// while mu is already held by the calling Insert; it records the evicted
// entry so Insert can hand it back to the caller for promotion downward.
func (t *Tier) onEvict(key Key, value []state.Solution) {
	t.evicted = &Entry{Key: key, Value: value}
}

// Get looks up k, touching its recency on a hit. It returns nil on a
// miss.
func (t *Tier) Get(k Key) []state.Solution {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.cache.Get(k)
	if !ok {
		return nil
	}
	return v
}

// Insert stores v under k, touching recency, and evicts the
// least-recently-used entry if the tier is now over capacity. It returns
// the evicted entry, or nil if nothing was evicted. Re-inserting an
// existing key updates its value and recency atomically and never
// evicts.
//
// It returns ErrCacheInvariantViolated, and skips the insert, if k.Game
// fails its own well-formedness check. It also returns that error (after
// the insert has been made) if the underlying LRU still reports more
// entries than its capacity once the eviction callback has run — both
// are programmer errors, never a reachable runtime
// condition, but the stack orchestrator treats either as fatal rather
// than silently trusting the cache.
func (t *Tier) Insert(k Key, v []state.Solution) (*Entry, error) {
	if err := k.Game.IsValid(); err != nil {
		return nil, ErrCacheInvariantViolated
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.evicted = nil
	t.cache.Add(k, v)
	evicted := t.evicted
	t.evicted = nil
	if t.cache.Len() > t.capacity {
		return evicted, ErrCacheInvariantViolated
	}
	return evicted, nil
}

// RemoveLRU evicts and returns the least-recently-used entry, or nil if
// the tier is empty.
func (t *Tier) RemoveLRU() *Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	k, v, ok := t.cache.RemoveOldest()
	if !ok {
		return nil
	}
	return &Entry{Key: k, Value: v}
}

// Drain removes and returns every entry currently held, leaving the tier
// empty. Order is least-recently-used first.
func (t *Tier) Drain() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []Entry
	for {
		k, v, ok := t.cache.RemoveOldest()
		if !ok {
			break
		}
		out = append(out, Entry{Key: k, Value: v})
	}
	return out
}

// Len reports the number of entries currently held.
func (t *Tier) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cache.Len()
}

// Capacity reports the tier's maximum size.
func (t *Tier) Capacity() int {
	return t.capacity
}
