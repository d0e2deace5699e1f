package solver

import (
	"sort"

	"github.com/samber/lo"

	"github.com/hailam/uttt/internal/rules"
	"github.com/hailam/uttt/internal/state"
)

// baseOutcome evaluates a position with no further search: the current
// game state, with turns fixed at zero.
func baseOutcome(g state.Game) (state.Outcome, error) {
	gs, err := rules.State(g)
	if err != nil {
		return state.Outcome{}, err
	}
	switch gs.Kind {
	case state.Won:
		return state.WinFor(gs.Winner, 0), nil
	case state.Tied:
		return state.TieAt(0), nil
	default:
		return state.UnknownAt(0), nil
	}
}

// futurize lifts a child's solution into the parent's frame: the parent's
// play becomes the move that led to it, and the outcome is pushed one ply
// further from the solved position.
func futurize(child state.Solution, play state.Location) state.Solution {
	o := child.Outcome
	return state.Solution{
		Play:    play,
		Outcome: state.Outcome{Kind: o.Kind, Winner: o.Winner, Turns: o.Turns + 1},
	}
}

// candidates runs the depth-bounded search and returns every play tied for
// best, sorted by location, together with the player to move (NoPlayer at
// depth zero or on an already terminal position, where there is nothing
// left to order).
func candidates(g state.Game, depth int, sub SubSolver) ([]state.Solution, state.Player, error) {
	if depth < 0 || depth > MaxDepth {
		return nil, state.NoPlayer, ErrInvalidDepth
	}
	if err := g.IsValid(); err != nil {
		return nil, state.NoPlayer, err
	}
	if depth == 0 {
		outcome, err := baseOutcome(g)
		if err != nil {
			return nil, state.NoPlayer, err
		}
		return []state.Solution{{Play: state.NoLocation, Outcome: outcome}}, state.NoPlayer, nil
	}

	mover, ok, err := rules.NextPlayer(g)
	if err != nil {
		return nil, state.NoPlayer, err
	}
	if !ok {
		// Terminal: the base evaluation is unconditionally dominant
		// (turns==0), so there is nothing further to search.
		outcome, err := baseOutcome(g)
		if err != nil {
			return nil, state.NoPlayer, err
		}
		return []state.Solution{{Play: state.NoLocation, Outcome: outcome}}, state.NoPlayer, nil
	}

	s0, err := sub(g, depth-1)
	if err != nil {
		return nil, mover, err
	}
	if isDominant(s0.Outcome, depth, mover) {
		return []state.Solution{s0}, mover, nil
	}

	plays, err := rules.ValidPlays(g)
	if err != nil {
		return nil, mover, err
	}

	pool := make(map[state.Location]state.Solution, len(plays)+1)
	consider := func(c state.Solution) {
		existing, ok := pool[c.Play]
		if !ok || c.Outcome.Turns > existing.Outcome.Turns {
			pool[c.Play] = c
		}
	}
	if s0.HasPlay() {
		consider(s0)
	}
	for _, p := range plays {
		child, err := rules.Apply(g, p)
		if err != nil {
			return nil, mover, err
		}
		childSol, err := sub(child, depth-1)
		if err != nil {
			return nil, mover, err
		}
		consider(futurize(childSol, p.Location))
	}

	all := lo.Values(pool)

	best := all[0]
	for _, c := range all[1:] {
		if c.Outcome.Compare(best.Outcome, mover) > 0 {
			best = c
		}
	}

	tied := lo.Filter(all, func(c state.Solution, _ int) bool {
		return c.Outcome.Equal(best.Outcome)
	})
	sort.Slice(tied, func(i, j int) bool { return tied[i].Play < tied[j].Play })
	return tied, mover, nil
}

// Solve computes the single best-play solution for game at depth, per the
// outcome ordering in Outcome.Compare. It recurses only through sub, never
// directly into itself, so callers that supply a memoising SubSolver get
// memoised subtrees for free.
func Solve(g state.Game, depth int, sub SubSolver) (state.Solution, error) {
	tied, _, err := candidates(g, depth, sub)
	if err != nil {
		return state.Solution{}, err
	}
	return tied[0], nil
}

// SolveRanked computes every play tied for best at depth, top-ranked
// first, for callers (the stack orchestrator) that need the full
// candidate set rather than a single answer.
func SolveRanked(g state.Game, depth int, sub SubSolver) ([]state.Solution, error) {
	tied, _, err := candidates(g, depth, sub)
	if err != nil {
		return nil, err
	}
	return tied, nil
}
