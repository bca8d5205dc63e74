// Package clique enumerates the maximal cliques of a compatibility
// graph.
//
// Enumerate implements Bron-Kerbosch with pivoting: at every recursion
// level it picks a pivot vertex from the union of the current candidate
// and excluded sets and skips expanding candidates that are already
// neighbors of the pivot, pruning branches that cannot produce a new
// maximal clique. The recursion itself is written in an explicit,
// helper-threaded style rather than relying on implicit call-stack
// state: visited/candidate/excluded sets are plain
// map[uuid.UUID]struct{} values passed down by value at each branch.
//
// Only cliques of size >= 2 are reported; isolated vertices and the
// empty graph yield no output. The set of returned cliques is a pure
// function of the graph; the order they are emitted in is not
// significant.
package clique
