package durable

import (
	"encoding/binary"
	"time"

	"github.com/avast/retry-go"
	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog/log"

	"github.com/hailam/uttt/internal/state"
)

const keyPrefix = "uttt:pos:"

// Store is a Badger-backed implementation of the durable tier: read and
// upsert keyed by the bit-exact packed position. Durable I/O failures are
// retried a bounded number of times; after that Upsert returns
// ErrUnavailable and Read reports a miss, matching the
// connection-pool-with-timeout resource policy.
type Store struct {
	db       *badger.DB
	attempts uint
	delay    time.Duration
}

// NewStore opens (or creates) a Badger database at dir.
func NewStore(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		log.Err(err).Str("dir", dir).Msg("durable-open-failed")
		return nil, ErrUnavailable
	}
	return &Store{db: db, attempts: 3, delay: 50 * time.Millisecond}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func keyBytes(k Key) []byte {
	buf := make([]byte, len(keyPrefix)+20)
	n := copy(buf, keyPrefix)
	binary.BigEndian.PutUint64(buf[n:], k.A)
	binary.BigEndian.PutUint64(buf[n+8:], k.B)
	binary.BigEndian.PutUint32(buf[n+16:], k.C)
	return buf
}

// Read returns the solutions stored for g, or an empty slice if absent.
// A durable I/O failure is treated as a miss, per the error taxonomy.
func (s *Store) Read(g state.Game) ([]state.Solution, error) {
	k, err := PackKey(g)
	if err != nil {
		return nil, err
	}
	keyB := keyBytes(k)

	var data []byte
	found := false
	runErr := retry.Do(func() error {
		return s.db.View(func(txn *badger.Txn) error {
			item, err := txn.Get(keyB)
			if err == badger.ErrKeyNotFound {
				return nil
			}
			if err != nil {
				return err
			}
			found = true
			return item.Value(func(val []byte) error {
				data = append([]byte(nil), val...)
				return nil
			})
		})
	}, retry.Attempts(s.attempts), retry.Delay(s.delay), retry.LastErrorOnly(true))
	if runErr != nil {
		log.Warn().Err(runErr).Msg("durable-read-failed")
		return nil, nil
	}
	if !found {
		return nil, nil
	}

	rec, err := unmarshalRecord(data)
	if err != nil {
		return nil, err
	}
	return rec.solutions()
}

// Upsert stores solutions for g, inserting if absent and overwriting if
// present. It rejects a solutions slice whose entries disagree on turns
// or mix Unknown with Win/Tie. When the store already holds a result,
// Upsert skips rewriting it if the existing entry is at least as
// informative as the incoming one (a Win/Tie is depth-stable and always
// preferred over a fresh Unknown; between two Unknown results the one
// with the larger turns count, i.e. the deeper search, wins) -- mirroring
// a transposition table's depth-gated replacement policy. This is purely
// an optimisation: the stack still validates sufficiency against the
// requested depth on every read, so a stale skip never produces a wrong
// answer, only a possible unnecessary recomputation.
func (s *Store) Upsert(g state.Game, solutions []state.Solution) (bool, error) {
	newRec, err := toRecord(g, solutions)
	if err != nil {
		return false, err
	}
	k, err := PackKey(g)
	if err != nil {
		return false, err
	}
	keyB := keyBytes(k)

	runErr := retry.Do(func() error {
		return s.db.Update(func(txn *badger.Txn) error {
			item, err := txn.Get(keyB)
			if err != nil && err != badger.ErrKeyNotFound {
				return err
			}
			if err == nil {
				var existing record
				if verr := item.Value(func(val []byte) error {
					var uerr error
					existing, uerr = unmarshalRecord(val)
					return uerr
				}); verr != nil {
					return verr
				}
				if supersedes(existing, newRec) {
					return nil
				}
			}
			data, merr := marshalRecord(newRec)
			if merr != nil {
				return merr
			}
			return txn.Set(keyB, data)
		})
	}, retry.Attempts(s.attempts), retry.Delay(s.delay), retry.LastErrorOnly(true))
	if runErr != nil {
		log.Warn().Err(runErr).Msg("durable-write-failed")
		return false, ErrUnavailable
	}
	return true, nil
}

// supersedes reports whether existing is at least as informative as
// incoming and should be kept as-is.
func supersedes(existing, incoming record) bool {
	if !existing.Unknown {
		// existing is a proven Win/Tie: depth-stable, never regress it.
		return true
	}
	if !incoming.Unknown {
		// incoming proves a result the store only had Unknown for.
		return false
	}
	return existing.SolTurns >= incoming.SolTurns
}
