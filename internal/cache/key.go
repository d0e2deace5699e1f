// Package cache implements the in-memory LRU tiers of the solver's
// storage hierarchy: a bounded mapping from (position, depth) to the
// ranked solutions the solver found for it, with least-recently-used
// eviction and an eviction callback the stack orchestrator uses to
// cascade a dropped entry down to the next tier.
package cache

import "github.com/hailam/uttt/internal/state"

// Key identifies a memoised subproblem. Outcomes are depth-relative (an
// Unknown result at one depth says nothing about the position at another
// depth), so the in-memory tiers must key on the pair rather than on the
// position alone.
type Key struct {
	Game  state.Game
	Depth int
}

// Entry is a cache slot: the subproblem it answers and the ranked
// solutions the solver produced for it.
type Entry struct {
	Key   Key
	Value []state.Solution
}
