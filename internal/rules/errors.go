// Package rules implements the Ultimate Tic-Tac-Toe legality and terminal
// detection logic: legal-play enumeration, the send-to rule, mutation and
// winner/state detection, all built on top of the bit-packed types in
// internal/state.
package rules

import "errors"

// ErrInvalidPlay is returned by Apply when a play violates legality: the
// game is already terminal, the wrong player is named, the target
// sub-board is not the one the send-to rule requires, or the target cell
// is already taken.
var ErrInvalidPlay = errors.New("rules: invalid play")
