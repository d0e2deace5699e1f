package solver

import "github.com/hailam/uttt/internal/state"

// isDominant reports whether a shallower solution s0 already settles the
// search at the requested depth for the side to move: either the position
// is already decided (a win or tie at turns==0), or s0 already proves a
// forced win for the mover faster than the horizon the caller asked for.
// A loss never prunes — the search keeps looking for a better reply.
func isDominant(s0 state.Outcome, depth int, mover state.Player) bool {
	if (s0.Kind == state.Win || s0.Kind == state.Tie) && s0.Turns == 0 {
		return true
	}
	if s0.Kind == state.Win && s0.Winner == mover && s0.Turns > 0 && s0.Turns < depth {
		return true
	}
	return false
}
