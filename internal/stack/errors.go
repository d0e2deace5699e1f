// Package stack wires the hot and warm in-memory tiers, the durable
// store, and the solver into a single layered pipeline: reads traverse
// tiers top-to-bottom with promotion on hit, writes land in the topmost
// writable tier with cascading eviction toward the durable tier, and a
// miss through every read-capable tier falls through to computation.
package stack
