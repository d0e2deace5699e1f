package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/hailam/uttt/internal/durable"
	"github.com/hailam/uttt/internal/rules"
	"github.com/hailam/uttt/internal/stack"
	"github.com/hailam/uttt/internal/state"
)

var (
	trials  = flag.Int("trials", 10, "number of random games to generate and solve")
	depth   = flag.Int("depth", 4, "search depth passed to every solve call")
	seed    = flag.Int64("seed", 0, "PRNG seed; 0 seeds from the current time")
	verbose = flag.Bool("verbose", false, "enable debug-level logging")
	dbDir   = flag.String("db", "", "durable store directory; empty uses the default per-platform location")
)

func main() {
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	dir := *dbDir
	if dir == "" {
		d, err := durable.DefaultDir()
		if err != nil {
			log.Fatalf("resolve default db dir: %v", err)
		}
		dir = d
	}

	store, err := durable.NewStore(dir)
	if err != nil {
		log.Fatalf("open durable store at %s: %v", dir, err)
	}
	defer store.Close()

	s, err := stack.New(stack.Config{HotCapacity: 4096, WarmCapacity: 65536}, store)
	if err != nil {
		log.Fatalf("build stack: %v", err)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))
	zlog.Info().Int64("seed", rngSeed).Int("trials", *trials).Int("depth", *depth).Msg("uttt-solve-start")

	for trial := 0; trial < *trials; trial++ {
		positions, err := playRandomGame(rng)
		if err != nil {
			log.Fatalf("trial %d: generate random game: %v", trial, err)
		}

		for i := len(positions) - 1; i >= 0; i-- {
			sols, err := s.Solve(positions[i], *depth)
			if err != nil {
				log.Fatalf("trial %d: solve ply %d: %v", trial, i, err)
			}
			zlog.Debug().
				Int("trial", trial).
				Int("ply", i).
				Str("outcome", sols[0].Outcome.String()).
				Msg("solved-position")
		}

		hotLen, warmLen := s.CacheSizes()
		zlog.Info().Int("trial", trial).Int("hot", hotLen).Int("warm", warmLen).Msg("trial-complete")
	}

	ok, count := s.Flush()
	zlog.Info().Bool("all_succeeded", ok).Int("count", count).Msg("flush-complete")
	if !ok {
		log.Fatal("flush reported partial failure")
	}
}

// playRandomGame plays uniformly random legal moves from the empty
// position to a terminal state, returning every position visited in
// play order (including the opening and final positions).
func playRandomGame(rng *rand.Rand) ([]state.Game, error) {
	g := state.NewGame()
	history := []state.Game{g}
	for {
		terminal, err := rules.IsTerminal(g)
		if err != nil {
			return nil, err
		}
		if terminal {
			return history, nil
		}
		plays, err := rules.ValidPlays(g)
		if err != nil {
			return nil, err
		}
		choice := plays[rng.Intn(len(plays))]
		g, err = rules.Apply(g, choice)
		if err != nil {
			return nil, err
		}
		history = append(history, g)
	}
}
