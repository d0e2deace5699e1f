package stack

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/hailam/uttt/internal/cache"
	"github.com/hailam/uttt/internal/durable"
	"github.com/hailam/uttt/internal/solver"
	"github.com/hailam/uttt/internal/state"
)

// Stack is the layered tier pipeline: hot LRU, warm LRU, durable store,
// and the solver as the final compute-capable tier. Both LRU tiers are
// read- and write-capable; the durable tier is read- and write-capable
// but never computes; the solver only computes.
type Stack struct {
	hot     *cache.Tier
	warm    *cache.Tier
	durable *durable.Store
	group   singleflight.Group
}

// Config bounds the two in-memory tiers.
type Config struct {
	HotCapacity  int
	WarmCapacity int
}

// New builds a Stack over an opened durable store.
func New(cfg Config, d *durable.Store) (*Stack, error) {
	hot, err := cache.New(cfg.HotCapacity)
	if err != nil {
		return nil, err
	}
	warm, err := cache.New(cfg.WarmCapacity)
	if err != nil {
		return nil, err
	}
	return &Stack{hot: hot, warm: warm, durable: d}, nil
}

// Solve returns the ranked solutions for position at depth, top-ranked
// first, reading through the tier pipeline and computing (then writing
// through) on a total miss.
func (s *Stack) Solve(g state.Game, depth int) ([]state.Solution, error) {
	if depth < 0 || depth > solver.MaxDepth {
		return nil, solver.ErrInvalidDepth
	}

	sfKey, err := singleflightKey(g, depth)
	if err != nil {
		return nil, err
	}

	v, err, _ := s.group.Do(sfKey, func() (interface{}, error) {
		return s.resolve(g, depth)
	})
	if err != nil {
		return nil, err
	}
	return v.([]state.Solution), nil
}

// subSolve is the stack's own entry point passed to the solver as its
// SubSolver callback: every child subproblem the solver recurses into
// re-enters the full tier pipeline, which is what lets memoisation reach
// across recursive calls instead of being confined to a single solve.
func (s *Stack) subSolve(g state.Game, depth int) (state.Solution, error) {
	sols, err := s.Solve(g, depth)
	if err != nil {
		return state.Solution{}, err
	}
	return sols[0], nil
}

func (s *Stack) resolve(g state.Game, depth int) ([]state.Solution, error) {
	key := cache.Key{Game: g, Depth: depth}

	if v := s.hot.Get(key); v != nil {
		return v, nil
	}

	if v := s.warm.Get(key); v != nil {
		if err := s.promote(key, v, s.hot); err != nil {
			return nil, err
		}
		return v, nil
	}

	durSols, err := s.durable.Read(g)
	if err != nil {
		return nil, err
	}
	if sufficient(durSols, depth) {
		if err := s.promote(key, durSols, s.hot, s.warm); err != nil {
			return nil, err
		}
		return durSols, nil
	}

	sols, err := solver.SolveRanked(g, depth, s.subSolve)
	if err != nil {
		return nil, err
	}
	if err := s.writeThrough(key, sols); err != nil {
		return nil, err
	}
	return sols, nil
}

// promote inserts an already-found value into every tier above the hit,
// highest first, so a later hot read sees it without another trip
// through warm or durable. Any entries an insert evicts are cascaded
// downward exactly as a fresh write would be. A tier reporting
// ErrCacheInvariantViolated is fatal and aborts the call immediately.
func (s *Stack) promote(key cache.Key, v []state.Solution, tiers ...*cache.Tier) error {
	for _, t := range tiers {
		evicted, err := t.Insert(key, v)
		if err != nil {
			return err
		}
		if err := s.cascadeFrom(t, evicted); err != nil {
			return err
		}
	}
	return nil
}

// writeThrough inserts a newly computed solution into the topmost
// writable tier (hot) and cascades any eviction downward.
func (s *Stack) writeThrough(key cache.Key, sols []state.Solution) error {
	evicted, err := s.hot.Insert(key, sols)
	if err != nil {
		return err
	}
	return s.cascadeFrom(s.hot, evicted)
}

// cascadeFrom forwards an entry evicted from "from" to the next writable
// tier below it: hot evictions go to warm, warm evictions go to durable.
// Durable never evicts, so the recursion always terminates there. A
// cache invariant violation while cascading into warm is fatal and
// aborts the call; a durable write failure is only logged, matching
// Upsert's own best-effort contract at Flush time.
func (s *Stack) cascadeFrom(from *cache.Tier, evicted *cache.Entry) error {
	if evicted == nil {
		return nil
	}
	switch from {
	case s.hot:
		next, err := s.warm.Insert(evicted.Key, evicted.Value)
		if err != nil {
			return err
		}
		return s.cascadeFrom(s.warm, next)
	case s.warm:
		if _, err := s.durable.Upsert(evicted.Key.Game, evicted.Value); err != nil {
			log.Warn().Err(err).Msg("stack-cascade-durable-write-failed")
		}
	}
	return nil
}

// Flush drains both in-memory tiers into the durable store, returning
// whether every write succeeded and how many positions were written.
func (s *Stack) Flush() (bool, int) {
	allOK := true
	count := 0
	for _, tier := range []*cache.Tier{s.hot, s.warm} {
		for _, e := range tier.Drain() {
			if _, err := s.durable.Upsert(e.Key.Game, e.Value); err != nil {
				log.Warn().Err(err).Msg("stack-flush-write-failed")
				allOK = false
				continue
			}
			count++
		}
	}
	return allOK, count
}

// CacheSizes reports the current occupancy of the hot and warm tiers.
func (s *Stack) CacheSizes() (hotLen, warmLen int) {
	return s.hot.Len(), s.warm.Len()
}

// singleflightKey derives a dedup key from the bit-exact packed position
// and the requested depth, so concurrent identical solves share one
// computation instead of racing each other through the pipeline.
func singleflightKey(g state.Game, depth int) (string, error) {
	k, err := durable.PackKey(g)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d:%d:%d:%d", k.A, k.B, k.C, depth), nil
}
