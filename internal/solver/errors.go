// Package solver implements the depth-bounded minimax search over
// Ultimate Tic-Tac-Toe positions: dominance pruning, the outcome ordering
// that ranks candidate plays, and the solve entry point the stack
// orchestrator re-enters for every child subproblem.
package solver

import "errors"

// ErrInvalidDepth is returned when depth falls outside 0..=MaxDepth.
var ErrInvalidDepth = errors.New("solver: invalid depth")

// MaxDepth is the deepest depth Solve accepts: a full game is at most 81
// plies, so no useful search ever exceeds it.
const MaxDepth = 81
