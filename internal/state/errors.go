// Package state implements the bit-packed Ultimate Tic-Tac-Toe position
// representation: players, slots, rows, sub-boards, the outer board,
// locations and the outcome/solution types the rest of the engine passes
// around.
package state

import "errors"

// ErrInvalidEncoding is returned whenever a caller hands the package a
// value whose bit pattern does not correspond to any valid row, sub-board,
// location or player code.
var ErrInvalidEncoding = errors.New("state: invalid encoding")
