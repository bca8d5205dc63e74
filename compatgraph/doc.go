// Package compatgraph implements the compatibility graph: a sparse
// undirected graph keyed by observation id.
//
// Graph is deliberately narrower than lvlath's core.Graph: it is always
// undirected, unweighted, simple (no self-loops, no parallel edges),
// and carries no internal locking. Single-owner use (package cliqueindex
// is the only owner) means the concurrency guarantees
// core.Graph offers are not required here; adjacency is a plain nested
// map, matching the expected O(degree) cost per vertex rather than an
// O(V) dense matrix.
//
// Errors:
//
//	ErrSelfLoop - AddEdge was asked to connect a vertex to itself.
package compatgraph
