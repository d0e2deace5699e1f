package durable

import (
	"github.com/hailam/uttt/internal/rules"
	"github.com/hailam/uttt/internal/state"
)

// Key is the durable store's bit-exact primary key: a position packed
// into three words. This layout is an external interface -- it must
// match byte-for-byte across implementations, so it is never derived from
// the in-memory Game layout by convenience alone.
type Key struct {
	A uint64
	B uint64
	C uint32
}

// player codes for key_c, distinct from the in-memory state.Player
// encoding: Second=0, First=1, none=2.
const (
	codeSecond     = 0
	codeFirst      = 1
	codeNonePlayer = 2
)

func playerCode(p state.Player, ok bool) uint32 {
	if !ok {
		return codeNonePlayer
	}
	if p == state.First {
		return codeFirst
	}
	return codeSecond
}

func codeToPlayer(code uint32) (state.Player, bool) {
	switch code {
	case codeFirst:
		return state.First, true
	case codeSecond:
		return state.Second, true
	default:
		return state.NoPlayer, false
	}
}

// PackKey packs g into its bit-exact durable key.
func PackKey(g state.Game) (Key, error) {
	sb := g.Board
	a := uint64(sb[3])<<48 | uint64(sb[2])<<32 | uint64(sb[1])<<16 | uint64(sb[0])
	b := uint64(sb[7])<<48 | uint64(sb[6])<<32 | uint64(sb[5])<<16 | uint64(sb[4])

	var lastLoc uint32 = 0xFF
	var lastPlayerCode uint32 = codeNonePlayer
	if g.LastLocation != state.NoLocation {
		if !g.LastLocation.IsValid() {
			return Key{}, state.ErrInvalidEncoding
		}
		lastLoc = uint32(g.LastLocation)
		s, err := g.Board.SlotAt(g.LastLocation)
		if err != nil {
			return Key{}, err
		}
		occ, ok := s.Occupant()
		lastPlayerCode = playerCode(occ, ok)
	}

	next, ok, err := rules.NextPlayer(g)
	if err != nil {
		return Key{}, err
	}
	nextCode := playerCode(next, ok)

	c := lastPlayerCode<<30 | nextCode<<28 | lastLoc<<16 | uint32(sb[8])
	return Key{A: a, B: b, C: c}, nil
}

// UnpackKey reconstructs the Game a Key was packed from.
func UnpackKey(k Key) (state.Game, error) {
	var b state.Board
	b[0] = state.SubBoard(k.A & 0xFFFF)
	b[1] = state.SubBoard((k.A >> 16) & 0xFFFF)
	b[2] = state.SubBoard((k.A >> 32) & 0xFFFF)
	b[3] = state.SubBoard((k.A >> 48) & 0xFFFF)
	b[4] = state.SubBoard(k.B & 0xFFFF)
	b[5] = state.SubBoard((k.B >> 16) & 0xFFFF)
	b[6] = state.SubBoard((k.B >> 32) & 0xFFFF)
	b[7] = state.SubBoard((k.B >> 48) & 0xFFFF)
	b[8] = state.SubBoard(k.C & 0xFFFF)

	for _, sub := range b {
		if _, err := sub.Rows(); err != nil {
			return state.Game{}, err
		}
	}

	lastLoc := (k.C >> 16) & 0xFF
	loc := state.Location(lastLoc)
	if loc == state.NoLocation {
		return state.Game{Board: b, LastLocation: state.NoLocation}, nil
	}
	if !loc.IsValid() {
		return state.Game{}, state.ErrInvalidEncoding
	}
	return state.Game{Board: b, LastLocation: loc}, nil
}

// outcome codes for per-solution packing.
const (
	codeOutcomeUnknown   = 0
	codeOutcomeTie       = 1
	codeOutcomeWinSecond = 2
	codeOutcomeWinFirst  = 3
)

// noLocationCode is the per-solution packed "no play" sentinel (distinct
// from state.NoLocation, which is an 8-bit value unrelated to this 7-bit
// field).
const noLocationCode = 127

// PackSolution packs s into its 16-bit durable representation.
func PackSolution(s state.Solution) (uint16, error) {
	var outcomeCode uint16
	switch s.Outcome.Kind {
	case state.Unknown:
		outcomeCode = codeOutcomeUnknown
	case state.Tie:
		outcomeCode = codeOutcomeTie
	case state.Win:
		if s.Outcome.Winner == state.First {
			outcomeCode = codeOutcomeWinFirst
		} else {
			outcomeCode = codeOutcomeWinSecond
		}
	}

	var locCode uint16 = noLocationCode
	if s.HasPlay() {
		if !s.Play.IsValid() {
			return 0, state.ErrInvalidEncoding
		}
		locCode = uint16(s.Play.Row()*9 + s.Play.Col())
	}

	if s.Outcome.Turns < 0 || s.Outcome.Turns > 127 {
		return 0, state.ErrInvalidEncoding
	}

	return outcomeCode<<14 | locCode<<7 | uint16(s.Outcome.Turns), nil
}

// UnpackSolution decodes a 16-bit durable representation into a Solution.
func UnpackSolution(v uint16) (state.Solution, error) {
	outcomeCode := (v >> 14) & 0x3
	locCode := (v >> 7) & 0x7F
	turns := int(v & 0x7F)

	play := state.NoLocation
	if locCode != noLocationCode {
		row, col := int(locCode/9), int(locCode%9)
		l, err := state.NewLocation(row, col)
		if err != nil {
			return state.Solution{}, err
		}
		play = l
	}

	var outcome state.Outcome
	switch outcomeCode {
	case codeOutcomeUnknown:
		outcome = state.UnknownAt(turns)
	case codeOutcomeTie:
		outcome = state.TieAt(turns)
	case codeOutcomeWinFirst:
		outcome = state.WinFor(state.First, turns)
	case codeOutcomeWinSecond:
		outcome = state.WinFor(state.Second, turns)
	}

	return state.Solution{Play: play, Outcome: outcome}, nil
}
