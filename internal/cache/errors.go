package cache

import "errors"

// ErrCacheInvariantViolated signals that a tier observed an impossible
// internal state: length exceeding capacity, or a key whose Game fails
// its own well-formedness check. It is always a programmer error.
var ErrCacheInvariantViolated = errors.New("cache: invariant violated")
