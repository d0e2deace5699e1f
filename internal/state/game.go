package state

// Game is a complete, self-describing Ultimate Tic-Tac-Toe position: the
// board plus the location of the most recent play, from which the
// send-to sub-board and the side to move are both derived.
type Game struct {
	Board        Board
	LastLocation Location
}

// NewGame returns the opening position: an empty board and no last play.
func NewGame() Game {
	return Game{Board: EmptyBoard, LastLocation: NoLocation}
}

// counts returns the number of cells occupied by each player across the
// whole board.
func (g Game) counts() (first, second int, err error) {
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			l, lerr := NewLocation(row, col)
			if lerr != nil {
				return 0, 0, lerr
			}
			s, serr := g.Board.SlotAt(l)
			if serr != nil {
				return 0, 0, serr
			}
			switch s {
			case SlotFirst:
				first++
			case SlotSecond:
				second++
			}
		}
	}
	return first, second, nil
}

// ToMove reports which player is on move. First moves first, so the side
// to move is First when both players have made the same number of plays,
// and Second otherwise.
func (g Game) ToMove() (Player, error) {
	first, second, err := g.counts()
	if err != nil {
		return NoPlayer, err
	}
	if first == second {
		return First, nil
	}
	return Second, nil
}

// IsValid checks the player-count invariant (the two players' ply counts
// differ by at most one, and First is never behind) together with the
// well-formedness of every encoded component, including that LastLocation
// actually holds the mover that preceded the side now to move.
func (g Game) IsValid() error {
	first, second, err := g.counts()
	if err != nil {
		return err
	}
	if first != second && first != second+1 {
		return ErrInvalidEncoding
	}
	if g.LastLocation == NoLocation {
		if first != 0 || second != 0 {
			return ErrInvalidEncoding
		}
		return nil
	}
	if !g.LastLocation.IsValid() {
		return ErrInvalidEncoding
	}
	s, err := g.Board.SlotAt(g.LastLocation)
	if err != nil {
		return err
	}
	occ, ok := s.Occupant()
	if !ok {
		return ErrInvalidEncoding
	}
	if occ == First && first != second+1 {
		return ErrInvalidEncoding
	}
	if occ == Second && first != second {
		return ErrInvalidEncoding
	}
	return nil
}

// SendTo reports the sub-board index the side to move is sent into, and
// whether that sub-board is actually open. When it is closed (or this is
// the opening position) the side to move is free to play in any open
// sub-board.
func (g Game) SendTo() (sub int, forced bool, err error) {
	if g.LastLocation == NoLocation {
		return -1, false, nil
	}
	target := g.LastLocation.CellIndex()
	status, _, err := g.Board.StatusOf(target)
	if err != nil {
		return -1, false, err
	}
	if status != SubBoardOpen {
		return -1, false, nil
	}
	return target, true, nil
}

// WithPlay returns the Game resulting from the side to move playing at l.
// It does not check legality against the send-to rule or sub-board
// status; that validation belongs to the rules package.
func (g Game) WithPlay(l Location) (Game, error) {
	p, err := g.ToMove()
	if err != nil {
		return Game{}, err
	}
	b, err := g.Board.WithPlay(l, p)
	if err != nil {
		return Game{}, err
	}
	return Game{Board: b, LastLocation: l}, nil
}

// String renders the board followed by the last play, for debugging.
func (g Game) String() string {
	return g.Board.String() + "\nlast: " + g.LastLocation.String()
}

// GameStateKind classifies the derived state of a Game.
type GameStateKind uint8

const (
	// Ongoing means the game has neither a meta-board winner nor a full
	// board.
	Ongoing GameStateKind = iota
	// Won means one player has completed a line of sub-boards.
	Won
	// Tied means the board is full with no meta-board winner.
	Tied
)

// GameState is the derived terminal/non-terminal status of a Game.
type GameState struct {
	Kind   GameStateKind
	Winner Player
}

// String renders the state for debugging.
func (s GameState) String() string {
	switch s.Kind {
	case Won:
		return "Won(" + s.Winner.String() + ")"
	case Tied:
		return "Tied"
	default:
		return "Ongoing"
	}
}

