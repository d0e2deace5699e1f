// Package durable implements the solver's durable key-value tier: a
// Badger-backed store keyed by the bit-exact packed position, holding the
// ranked solutions the solver found for it.
package durable

import "errors"

// ErrUnavailable reports a durable-tier I/O failure (connection, open, or
// per-acquisition timeout). NewStore and Upsert return it; Read reports
// such a failure as a miss instead.
var ErrUnavailable = errors.New("durable: store unavailable")

// ErrInconsistentSolutions is returned by Upsert when the solutions slice
// violates the schema invariant that every entry share the same turns
// count, and that Unknown entries never mix with Win/Tie entries.
var ErrInconsistentSolutions = errors.New("durable: inconsistent solutions")
