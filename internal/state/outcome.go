package state

import "fmt"

// OutcomeKind classifies how a game resolves: a forced win for one side, a
// forced tie, or a result not yet determined within the searched depth.
type OutcomeKind uint8

const (
	// Win means the named player forces a win.
	Win OutcomeKind = iota
	// Tie means the game is a forced draw.
	Tie
	// Unknown means the search horizon was reached before the game
	// resolved; Turns then counts plies searched, not plies to resolution.
	Unknown
)

// String names the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case Win:
		return "Win"
	case Tie:
		return "Tie"
	default:
		return "Unknown"
	}
}

// Outcome is the result of analyzing a Game to some depth: which kind of
// result it is, who (if anyone) wins, and how many plies from the analyzed
// position the result was determined at (or, for Unknown, how many plies
// were searched before giving up). Turns always ranges over 0..82.
type Outcome struct {
	Kind   OutcomeKind
	Winner Player
	Turns  int
}

// WinFor builds a Win outcome for the given player at the given ply count.
func WinFor(p Player, turns int) Outcome {
	return Outcome{Kind: Win, Winner: p, Turns: turns}
}

// TieAt builds a Tie outcome at the given ply count.
func TieAt(turns int) Outcome {
	return Outcome{Kind: Tie, Winner: NoPlayer, Turns: turns}
}

// UnknownAt builds an Unknown outcome after searching the given number of
// plies.
func UnknownAt(turns int) Outcome {
	return Outcome{Kind: Unknown, Winner: NoPlayer, Turns: turns}
}

// Equal reports whether two outcomes describe the same result: same kind,
// same winner and same ply count.
func (o Outcome) Equal(other Outcome) bool {
	return o.Kind == other.Kind && o.Winner == other.Winner && o.Turns == other.Turns
}

// categoryRank ranks an outcome from the point of view of player p: 3 is
// best for p (p wins), 0 is worst (the opponent wins), with Unknown and
// Tie in between, matching the eight ordering rules of the solver spec.
func (o Outcome) categoryRank(p Player) int {
	switch o.Kind {
	case Win:
		if o.Winner == p {
			return 3
		}
		return 0
	case Unknown:
		return 2
	default: // Tie
		return 1
	}
}

// Compare orders outcomes from the point of view of player p: it returns a
// negative number if o is worse for p than other, zero if they rank
// equal, and positive if o is better. Within a shared category the
// direction of the Turns comparison depends on the category: a win for p
// is better the sooner it arrives, while a loss, a tie or an unresolved
// search is better for p the longer it is deferred.
func (o Outcome) Compare(other Outcome, p Player) int {
	or, thr := o.categoryRank(p), other.categoryRank(p)
	if or != thr {
		return or - thr
	}
	if or == 3 {
		// Win for p: fewer turns is better.
		return other.Turns - o.Turns
	}
	// Tie, Unknown, or a win for the opponent: more turns is better.
	return o.Turns - other.Turns
}

// Solution is the solver's verdict for a Game at some depth: the play that
// achieves the reported outcome, or NoLocation if the position was
// already terminal (or the evaluation was depth zero).
type Solution struct {
	Play    Location
	Outcome Outcome
}

// HasPlay reports whether the solution names a move.
func (s Solution) HasPlay() bool {
	return s.Play != NoLocation
}

// String renders the outcome for logging, e.g. "Win{First,3}".
func (o Outcome) String() string {
	switch o.Kind {
	case Win:
		return fmt.Sprintf("Win{%s,%d}", o.Winner, o.Turns)
	case Tie:
		return fmt.Sprintf("Tie{%d}", o.Turns)
	default:
		return fmt.Sprintf("Unknown{%d}", o.Turns)
	}
}
