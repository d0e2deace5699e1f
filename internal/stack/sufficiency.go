package stack

import "github.com/hailam/uttt/internal/state"

// sufficient reports whether a previously-computed solution list answers
// a request for depth, independent of whatever depth it was originally
// computed at. This is what guarantees cache transparency: the hot and
// warm tiers are keyed by the exact (game, depth) pair and so are
// trivially sufficient on a hit, but the durable tier keys only on the
// position, so a read there must be checked against solver monotonicity
// before it can be trusted:
//
//   - An Unknown result never dominance-prunes, so its turns count always
//     equals the depth it was solved at; it only answers a request for
//     that exact depth.
//   - A Win or Tie result is depth-stable once proved: solving deeper
//     reproduces the same outcome (invariant 9), so a result with
//     turns <= depth answers any request at depth or beyond.
func sufficient(solutions []state.Solution, depth int) bool {
	if len(solutions) == 0 {
		return false
	}
	turns := solutions[0].Outcome.Turns
	if solutions[0].Outcome.Kind == state.Unknown {
		return turns == depth
	}
	return turns <= depth
}
