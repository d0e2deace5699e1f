package durable

import (
	"testing"

	"github.com/hailam/uttt/internal/state"
)

// Invariant 11: unpack(pack(g)) = g for every well-formed Game.
func TestKeyRoundTrip(t *testing.T) {
	games := []state.Game{state.NewGame()}

	g2, err := state.NewGame().WithPlay(mustLoc(t, 2, 8))
	if err != nil {
		t.Fatal(err)
	}
	games = append(games, g2)

	g3, err := g2.WithPlay(mustLoc(t, 6, 8))
	if err != nil {
		t.Fatal(err)
	}
	games = append(games, g3)

	for _, g := range games {
		k, err := PackKey(g)
		if err != nil {
			t.Fatalf("PackKey(%v): %v", g, err)
		}
		got, err := UnpackKey(k)
		if err != nil {
			t.Fatalf("UnpackKey: %v", err)
		}
		if got != g {
			t.Fatalf("round trip mismatch:\nwant %v\ngot  %v", g, got)
		}
	}
}

func mustLoc(t *testing.T, row, col int) state.Location {
	t.Helper()
	l, err := state.NewLocation(row, col)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

// Invariant 11 (solution half): unpack16(pack16(s)) = s.
func TestSolutionRoundTrip(t *testing.T) {
	cases := []state.Solution{
		{Play: state.NoLocation, Outcome: state.UnknownAt(0)},
		{Play: state.NoLocation, Outcome: state.TieAt(40)},
		{Play: mustLoc(t, 4, 4), Outcome: state.WinFor(state.First, 3)},
		{Play: mustLoc(t, 0, 0), Outcome: state.WinFor(state.Second, 81)},
	}
	for _, s := range cases {
		packed, err := PackSolution(s)
		if err != nil {
			t.Fatalf("PackSolution(%+v): %v", s, err)
		}
		got, err := UnpackSolution(packed)
		if err != nil {
			t.Fatalf("UnpackSolution: %v", err)
		}
		if got != s {
			t.Fatalf("round trip mismatch: want %+v, got %+v", s, got)
		}
	}
}
