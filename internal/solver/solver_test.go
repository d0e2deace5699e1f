package solver

import (
	"testing"

	"github.com/hailam/uttt/internal/state"
)

// direct is a naive, uncached SubSolver that recurses straight back into
// Solve. It is exponential in depth, which is fine for the small depths
// exercised here.
func direct(g state.Game, depth int) (state.Solution, error) {
	var rec SubSolver
	rec = func(g state.Game, depth int) (state.Solution, error) {
		return Solve(g, depth, rec)
	}
	return rec(g, depth)
}

func loc(t *testing.T, row, col int) state.Location {
	t.Helper()
	l, err := state.NewLocation(row, col)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

// S1: empty position at depth 0.
func TestSolveEmptyPositionDepthZero(t *testing.T) {
	sol, err := direct(state.NewGame(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if sol.HasPlay() || sol.Outcome.Kind != state.Unknown || sol.Outcome.Turns != 0 {
		t.Fatalf("Solve(empty,0) = %+v, want Unknown{0} with no play", sol)
	}
}

func TestSolveRejectsBadDepth(t *testing.T) {
	if _, err := direct(state.NewGame(), -1); err != ErrInvalidDepth {
		t.Fatalf("Solve(depth=-1) = %v, want ErrInvalidDepth", err)
	}
	if _, err := direct(state.NewGame(), MaxDepth+1); err != ErrInvalidDepth {
		t.Fatalf("Solve(depth=82) = %v, want ErrInvalidDepth", err)
	}
}

// setCell places p at the given (sub-board, cell) coordinate.
func setCell(t *testing.T, b state.Board, sub, cell int, p state.Player) state.Board {
	t.Helper()
	l, err := state.LocationOf(sub, cell)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := b.WithPlay(l, p)
	if err != nil {
		t.Fatal(err)
	}
	return b2
}

// winningSetup builds a position where First has already won sub-boards 0
// and 1 (the top meta-row) and holds the first two cells of sub-board 2's
// top row, one play away from completing both that sub-board and the
// meta-line. Second's plays are scattered across sub-boards 3-8 without
// forming any line; Second's most recent play has cell-within-sub-board
// index 0, which targets sub-board 0 -- already won and therefore closed,
// so First is free to play anywhere open, including the winning cell.
func winningSetup(t *testing.T) state.Game {
	t.Helper()
	b := state.EmptyBoard
	for _, cell := range []int{0, 1, 2} {
		b = setCell(t, b, 0, cell, state.First)
		b = setCell(t, b, 1, cell, state.First)
	}
	b = setCell(t, b, 2, 0, state.First)
	b = setCell(t, b, 2, 1, state.First)

	b = setCell(t, b, 3, 0, state.Second)
	b = setCell(t, b, 3, 1, state.Second)
	b = setCell(t, b, 4, 0, state.Second)
	b = setCell(t, b, 4, 1, state.Second)
	b = setCell(t, b, 5, 0, state.Second)
	b = setCell(t, b, 6, 0, state.Second)
	b = setCell(t, b, 7, 0, state.Second)
	b = setCell(t, b, 8, 0, state.Second)

	last, err := state.LocationOf(8, 0)
	if err != nil {
		t.Fatal(err)
	}
	return state.Game{Board: b, LastLocation: last}
}

// S3: an immediate winning play for First at depth 1.
func TestSolveFindsImmediateWin(t *testing.T) {
	g := winningSetup(t)
	if err := g.IsValid(); err != nil {
		t.Fatalf("winningSetup produced invalid game: %v", err)
	}
	sol, err := direct(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	want, err := state.LocationOf(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if sol.Outcome.Kind != state.Win || sol.Outcome.Winner != state.First || sol.Outcome.Turns != 1 {
		t.Fatalf("Solve(winning setup,1) outcome = %+v, want Win{First,1}", sol.Outcome)
	}
	if sol.Play != want {
		t.Fatalf("Solve(winning setup,1) play = %v, want %v", sol.Play, want)
	}
}

// S5: a fully-won board reports Win{winner,0} regardless of depth.
func TestSolveFullyWonBoard(t *testing.T) {
	b := state.EmptyBoard
	var err error
	for _, sub := range []int{0, 1, 2} {
		for _, cell := range []int{0, 1, 2} {
			l, lerr := state.LocationOf(sub, cell)
			if lerr != nil {
				t.Fatal(lerr)
			}
			b, err = b.WithPlay(l, state.First)
			if err != nil {
				t.Fatal(err)
			}
		}
	}
	// Second's eight replies sit in sub-boards 3-8 without forming any
	// line, so the position keeps a legal player count (9 First, 8 Second).
	for _, sub := range []int{3, 4} {
		b = setCell(t, b, sub, 0, state.Second)
		b = setCell(t, b, sub, 1, state.Second)
	}
	for _, sub := range []int{5, 6, 7, 8} {
		b = setCell(t, b, sub, 0, state.Second)
	}
	last, err := state.LocationOf(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	g := state.Game{Board: b, LastLocation: last}
	sol, err := direct(g, 5)
	if err != nil {
		t.Fatal(err)
	}
	if sol.Outcome.Kind != state.Win || sol.Outcome.Winner != state.First || sol.Outcome.Turns != 0 {
		t.Fatalf("Solve(won board,5) = %+v, want Win{First,0}", sol.Outcome)
	}
	if sol.HasPlay() {
		t.Fatalf("Solve(won board,5) play = %v, want none", sol.Play)
	}
}

// fullyTiedBoard fills every sub-board with the same classic drawn
// tic-tac-toe pattern (no row, column or diagonal shares a single
// occupant), with the two players swapped in sub-boards 0-3 so the board
// holds 41 First and 40 Second marks, a legal player count. Every
// sub-board is drawn, the meta-board has no winner, and the overall board
// is completely full.
func fullyTiedBoard(t *testing.T) state.Game {
	t.Helper()
	pattern := [9]state.Player{
		state.First, state.Second, state.First,
		state.First, state.Second, state.Second,
		state.Second, state.First, state.First,
	}
	b := state.EmptyBoard
	for sub := 0; sub < 9; sub++ {
		for cell, p := range pattern {
			if sub < 4 {
				p = p.Other()
			}
			b = setCell(t, b, sub, cell, p)
		}
	}
	last, err := state.LocationOf(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	return state.Game{Board: b, LastLocation: last}
}

// S6: a fully filled, winner-less board reports state Tied and
// solve(_,0) = Tie{0}.
func TestSolveFullyTiedBoard(t *testing.T) {
	g := fullyTiedBoard(t)
	full, err := g.Board.IsBoardFull()
	if err != nil {
		t.Fatal(err)
	}
	if !full {
		t.Fatal("fullyTiedBoard produced a board with empty cells")
	}
	if _, won, err := g.Board.MetaWinner(); err != nil || won {
		t.Fatalf("fullyTiedBoard produced a meta-board winner: won=%v err=%v", won, err)
	}

	sol, err := direct(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if sol.Outcome.Kind != state.Tie || sol.Outcome.Turns != 0 {
		t.Fatalf("Solve(tied board,0) = %+v, want Tie{0}", sol.Outcome)
	}
	if sol.HasPlay() {
		t.Fatalf("Solve(tied board,0) play = %v, want none", sol.Play)
	}
}

// Invariant 9: solve(game,d).outcome.turns <= d+1, and a proved forced
// win is stable under increasing depth.
func TestSolverMonotonicity(t *testing.T) {
	g := winningSetup(t)
	for d := 0; d <= 2; d++ {
		sol, err := direct(g, d)
		if err != nil {
			t.Fatal(err)
		}
		if sol.Outcome.Turns > d+1 {
			t.Fatalf("depth %d: outcome.turns = %d, want <= %d", d, sol.Outcome.Turns, d+1)
		}
	}
	sol1, err := direct(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if sol1.Outcome.Kind != state.Win {
		t.Fatalf("expected a proven win at depth 1, got %+v", sol1.Outcome)
	}
	for d := sol1.Outcome.Turns; d <= 3; d++ {
		sol, err := direct(g, d)
		if err != nil {
			t.Fatal(err)
		}
		if sol.Outcome.Kind != state.Win || sol.Outcome.Winner != sol1.Outcome.Winner || sol.Outcome.Turns != sol1.Outcome.Turns {
			t.Fatalf("depth %d: outcome = %+v, want stable Win{%v,%d}", d, sol.Outcome, sol1.Outcome.Winner, sol1.Outcome.Turns)
		}
	}
}

func TestSolveRankedReturnsOnlyTiedPlays(t *testing.T) {
	g := winningSetup(t)
	ranked, err := SolveRanked(g, 1, direct)
	if err != nil {
		t.Fatal(err)
	}
	if len(ranked) == 0 {
		t.Fatal("SolveRanked returned no candidates")
	}
	for _, s := range ranked[1:] {
		if !s.Outcome.Equal(ranked[0].Outcome) {
			t.Fatalf("ranked candidate %+v not tied with top %+v", s, ranked[0])
		}
	}
}
