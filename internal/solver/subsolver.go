package solver

import "github.com/hailam/uttt/internal/state"

// SubSolver resolves a subproblem: the outcome of a game position searched
// to the given depth. The stack orchestrator supplies a SubSolver that is
// its own entry point (tiers, then this package's Solve on miss), which is
// what lets shared subtrees across a recursive search get memoised instead
// of recomputed. Solve never recurses into itself directly; it only ever
// calls the SubSolver it was given.
type SubSolver func(game state.Game, depth int) (state.Solution, error)
