// Package cliquefusion fuses noisy 2D positional observations into groups
// that are statistically consistent with a single true location.
//
// Each observation carries a position and a 2x2 covariance describing its
// uncertainty, plus an optional context tag marking observations known in
// advance to be distinct (e.g. simultaneous detections in one sensor
// frame). The module tests pairs of observations for statistical
// compatibility, builds an undirected graph of the compatible pairs, and
// enumerates its maximal cliques: the groups that should be fused.
//
// Everything is organized under single-responsibility subpackages, in the
// order the data flows:
//
//	covariance/   — 2x2 symmetric PSD covariance matrices
//	observation/  — immutable Observation values, the compatibility test
//	spatialindex/ — R-tree-backed radius queries over observation positions
//	compatgraph/  — sparse undirected graph of compatible pairs
//	clique/       — Bron-Kerbosch maximal-clique enumeration
//	cliqueindex/  — orchestrator: batch and incremental fusion API
//
// cliqueindex is the package most callers want:
//
//	idx, err := cliqueindex.New(observation.ChiSquared95)
//	err = idx.Insert(o1)
//	err = idx.Insert(o2)
//	for _, c := range idx.Cliques() {
//	    // c is a []uuid.UUID of size >= 2
//	}
//
// The module is single-threaded and synchronous: no operation suspends,
// no background work runs, and no state is shared across Index instances.
// Concurrent access to one Index from multiple goroutines is the caller's
// responsibility.
package cliquefusion
