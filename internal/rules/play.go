package rules

import "github.com/hailam/uttt/internal/state"

// Play is a single move: a player placing their mark at a location.
type Play struct {
	Location state.Location
	Player   state.Player
}
