package state

// Board is the full 9x9 outer board: nine sub-boards in row-major order.
type Board [9]SubBoard

// EmptyBoard is the board at the start of a game.
var EmptyBoard = Board{}

// SlotAt returns the slot occupying the cell addressed by l.
func (b Board) SlotAt(l Location) (Slot, error) {
	if !l.IsValid() {
		return 0, ErrInvalidEncoding
	}
	return b[l.SubIndex()].SlotAt(l.CellIndex())
}

// WithPlay returns the board obtained by placing p's mark at l, leaving b
// unmodified. It does not check legality; that is the rules package's job.
func (b Board) WithPlay(l Location, p Player) (Board, error) {
	if !l.IsValid() {
		return Board{}, ErrInvalidEncoding
	}
	out := b
	sb, err := b[l.SubIndex()].WithSlot(l.CellIndex(), p)
	if err != nil {
		return Board{}, err
	}
	out[l.SubIndex()] = sb
	return out, nil
}

// SubBoardStatus describes the terminal state of a single sub-board.
type SubBoardStatus uint8

const (
	// SubBoardOpen still accepts plays.
	SubBoardOpen SubBoardStatus = iota
	// SubBoardWon has been completed by one of the players.
	SubBoardWon
	// SubBoardDrawn is full with no winner.
	SubBoardDrawn
)

// StatusOf reports the status of sub-board idx and, if SubBoardWon, the
// winner.
func (b Board) StatusOf(idx int) (SubBoardStatus, Player, error) {
	if idx < 0 || idx > 8 {
		return 0, NoPlayer, ErrInvalidEncoding
	}
	winner, won, err := b[idx].Winner()
	if err != nil {
		return 0, NoPlayer, err
	}
	if won {
		return SubBoardWon, winner, nil
	}
	full, err := b[idx].IsFull()
	if err != nil {
		return 0, NoPlayer, err
	}
	if full {
		return SubBoardDrawn, NoPlayer, nil
	}
	return SubBoardOpen, NoPlayer, nil
}

// metaSlots maps the per-sub-board outcomes onto nine Slots suitable for
// meta-board win detection: each sub-board contributes SlotFirst/SlotSecond
// if won, or SlotEmpty if open or drawn.
func (b Board) metaSlots() ([9]Slot, error) {
	var slots [9]Slot
	for i := 0; i < 9; i++ {
		status, winner, err := b.StatusOf(i)
		if err != nil {
			return [9]Slot{}, err
		}
		if status == SubBoardWon {
			slots[i] = NewSlot(winner)
		}
	}
	return slots, nil
}

// MetaWinner reports the player who has won the meta-board: three
// sub-boards in a line, each won by the same player.
func (b Board) MetaWinner() (Player, bool, error) {
	slots, err := b.metaSlots()
	if err != nil {
		return NoPlayer, false, err
	}
	for _, line := range winLines {
		a := slots[line[0]]
		p, ok := a.Occupant()
		if !ok {
			continue
		}
		allMatch := true
		for _, idx := range line[1:] {
			occ, ok := slots[idx].Occupant()
			if !ok || occ != p {
				allMatch = false
				break
			}
		}
		if allMatch {
			return p, true, nil
		}
	}
	return NoPlayer, false, nil
}

// IsBoardFull reports whether every sub-board is won or drawn (no open
// sub-board remains).
func (b Board) IsBoardFull() (bool, error) {
	for i := 0; i < 9; i++ {
		status, _, err := b.StatusOf(i)
		if err != nil {
			return false, err
		}
		if status == SubBoardOpen {
			return false, nil
		}
	}
	return true, nil
}

// String renders the board as nine rows of nine cells, with a space
// between sub-board columns and a blank line between sub-board rows for
// readability.
func (b Board) String() string {
	out := make([]byte, 0, 9*10)
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			l, err := NewLocation(row, col)
			if err != nil {
				return "<invalid board>"
			}
			s, err := b.SlotAt(l)
			if err != nil {
				return "<invalid board>"
			}
			out = append(out, s.String()[0])
			if col%3 == 2 && col != 8 {
				out = append(out, ' ')
			}
		}
		if row != 8 {
			out = append(out, '\n')
		}
		if row%3 == 2 && row != 8 {
			out = append(out, '\n')
		}
	}
	return string(out)
}
