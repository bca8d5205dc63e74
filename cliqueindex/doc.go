// Package cliqueindex is the orchestrator: it owns a spatial index, a
// compatibility graph, and a memoized clique cache, and exposes both
// batch and incremental fusion APIs that agree on the same result
// regardless of insertion order.
//
// Insert: compute this observation's search radius, grow the running
// maximum search radius, query the spatial index for everything within
// (this radius + running max), test each candidate exactly, add edges
// for the ones that pass, then add the observation to the spatial index
// and graph (in that order, so the radius query never returns the
// observation itself). FromObservations runs the identical per-item
// algorithm over a batch; it does not take a different code path that
// could disagree with Insert under reordering.
//
// Cliques lazily enumerates and memoizes the result until the next
// Insert invalidates the cache.
//
// Errors:
//
//	ErrDuplicateID      - Insert or FromObservations saw a repeated id.
//	ErrInvalidThreshold - New was given a threshold <= 0 or non-finite.
package cliqueindex
