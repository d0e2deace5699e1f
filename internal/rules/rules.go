package rules

import (
	"github.com/samber/lo"

	"github.com/hailam/uttt/internal/state"
)

// NextPlayer returns the player on move in g, and false if g is terminal
// (in which case there is no next player).
func NextPlayer(g state.Game) (state.Player, bool, error) {
	terminal, err := IsTerminal(g)
	if err != nil {
		return state.NoPlayer, false, err
	}
	if terminal {
		return state.NoPlayer, false, nil
	}
	p, err := g.ToMove()
	if err != nil {
		return state.NoPlayer, false, err
	}
	return p, true, nil
}

// legalSubBoards returns the set of sub-board indexes a play may target,
// applying the send-to rule: the sub-board named by the last play's
// cell-within-sub-board index, unless that sub-board is closed, in which
// case every open sub-board is legal.
func legalSubBoards(g state.Game) ([]int, error) {
	target, forced, err := g.SendTo()
	if err != nil {
		return nil, err
	}
	if forced {
		return []int{target}, nil
	}
	var statusErr error
	open := lo.Filter(lo.Range(9), func(i int, _ int) bool {
		if statusErr != nil {
			return false
		}
		status, _, err := g.Board.StatusOf(i)
		if err != nil {
			statusErr = err
			return false
		}
		return status == state.SubBoardOpen
	})
	if statusErr != nil {
		return nil, statusErr
	}
	return open, nil
}

// ValidPlays enumerates every legal play in g, in deterministic order:
// ascending sub-board index, then ascending cell index within it. The
// result is empty exactly when g is terminal.
func ValidPlays(g state.Game) ([]Play, error) {
	mover, ok, err := NextPlayer(g)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	subs, err := legalSubBoards(g)
	if err != nil {
		return nil, err
	}
	var plays []Play
	for _, sub := range subs {
		for cell := 0; cell < 9; cell++ {
			l, err := state.LocationOf(sub, cell)
			if err != nil {
				return nil, err
			}
			s, err := g.Board.SlotAt(l)
			if err != nil {
				return nil, err
			}
			if !s.IsEmpty() {
				continue
			}
			plays = append(plays, Play{Location: l, Player: mover})
		}
	}
	return plays, nil
}

// isLegal reports whether p is legal to play in g, per the four rules of
// the send-to system: the game is ongoing, p names the player on move, p
// targets a sub-board the send-to rule permits, and the target cell is
// empty.
func isLegal(g state.Game, p Play) (bool, error) {
	mover, ok, err := NextPlayer(g)
	if err != nil {
		return false, err
	}
	if !ok || mover != p.Player {
		return false, nil
	}
	if !p.Location.IsValid() {
		return false, nil
	}
	subs, err := legalSubBoards(g)
	if err != nil {
		return false, err
	}
	if !lo.Contains(subs, p.Location.SubIndex()) {
		return false, nil
	}
	s, err := g.Board.SlotAt(p.Location)
	if err != nil {
		return false, err
	}
	return s.IsEmpty(), nil
}

// Apply plays p against g and returns the resulting position. It fails
// with ErrInvalidPlay if p is not legal.
func Apply(g state.Game, p Play) (state.Game, error) {
	legal, err := isLegal(g, p)
	if err != nil {
		return state.Game{}, err
	}
	if !legal {
		return state.Game{}, ErrInvalidPlay
	}
	return g.WithPlay(p.Location)
}

// Winner reports the player who has won the meta-board, if any.
func Winner(g state.Game) (state.Player, bool, error) {
	return g.Board.MetaWinner()
}

// State derives the game's terminal status: Won, Tied or Ongoing.
func State(g state.Game) (state.GameState, error) {
	winner, won, err := Winner(g)
	if err != nil {
		return state.GameState{}, err
	}
	if won {
		return state.GameState{Kind: state.Won, Winner: winner}, nil
	}
	full, err := g.Board.IsBoardFull()
	if err != nil {
		return state.GameState{}, err
	}
	if full {
		return state.GameState{Kind: state.Tied}, nil
	}
	return state.GameState{Kind: state.Ongoing}, nil
}

// IsTerminal reports whether g admits no further plays.
func IsTerminal(g state.Game) (bool, error) {
	s, err := State(g)
	if err != nil {
		return false, err
	}
	return s.Kind != state.Ongoing, nil
}
