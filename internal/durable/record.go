package durable

import (
	"encoding/json"

	"github.com/hailam/uttt/internal/state"
)

// record is the JSON-serialised durable value: the logical schema's
// columns (plays, solutions, sol_turns, unknown) plus nothing else --
// the primary key lives outside the value, in the store's key bytes.
type record struct {
	Plays     int16    `json:"plays"`
	Solutions []uint16 `json:"solutions"`
	SolTurns  int16    `json:"sol_turns"`
	Unknown   bool     `json:"unknown"`
}

// plyCount returns the number of taken cells in g, for the plays column.
func plyCount(g state.Game) (int16, error) {
	var n int16
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			l, err := state.NewLocation(row, col)
			if err != nil {
				return 0, err
			}
			s, err := g.Board.SlotAt(l)
			if err != nil {
				return 0, err
			}
			if !s.IsEmpty() {
				n++
			}
		}
	}
	return n, nil
}

// validate checks the schema invariant that every solution shares the
// same turns count, and that Unknown solutions never mix with Win/Tie
// ones. It returns the shared turns and the unknown flag.
func validate(solutions []state.Solution) (turns int16, unknown bool, err error) {
	if len(solutions) == 0 {
		return 0, false, nil
	}
	turns = int16(solutions[0].Outcome.Turns)
	unknown = solutions[0].Outcome.Kind == state.Unknown
	for _, s := range solutions[1:] {
		if int16(s.Outcome.Turns) != turns {
			return 0, false, ErrInconsistentSolutions
		}
		if (s.Outcome.Kind == state.Unknown) != unknown {
			return 0, false, ErrInconsistentSolutions
		}
	}
	return turns, unknown, nil
}

// toRecord builds the durable value for g's solutions.
func toRecord(g state.Game, solutions []state.Solution) (record, error) {
	plays, err := plyCount(g)
	if err != nil {
		return record{}, err
	}
	turns, unknown, err := validate(solutions)
	if err != nil {
		return record{}, err
	}
	packed := make([]uint16, len(solutions))
	for i, s := range solutions {
		p, err := PackSolution(s)
		if err != nil {
			return record{}, err
		}
		packed[i] = p
	}
	return record{Plays: plays, Solutions: packed, SolTurns: turns, Unknown: unknown}, nil
}

// solutions decodes the record's packed entries back into Solutions.
func (r record) solutions() ([]state.Solution, error) {
	out := make([]state.Solution, len(r.Solutions))
	for i, v := range r.Solutions {
		s, err := UnpackSolution(v)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func marshalRecord(r record) ([]byte, error) {
	return json.Marshal(r)
}

func unmarshalRecord(data []byte) (record, error) {
	var r record
	err := json.Unmarshal(data, &r)
	return r, err
}
