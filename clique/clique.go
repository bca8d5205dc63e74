package clique

import (
	"bytes"
	"sort"

	"github.com/google/uuid"
	"github.com/katalvlaran/cliquefusion/compatgraph"
)

// Clique is an unordered set of observation ids, all pairwise connected
// in the compatibility graph, that is not a subset of any larger such
// set. Members are returned sorted by their raw byte representation so
// that two calls over the same clique print identically; this is a
// presentation convenience, not a semantic requirement.
type Clique []uuid.UUID

// Enumerate returns every maximal clique of size >= 2 in g.
func Enumerate(g *compatgraph.Graph) []Clique {
	vertices := g.Vertices()
	p := toSet(vertices)
	x := make(map[uuid.UUID]struct{})
	r := make(map[uuid.UUID]struct{})

	var out []Clique
	bronKerbosch(g, r, p, x, &out)

	return out
}

// bronKerbosch expands R by one candidate from P at a time, following
// the classic pivoted recursion: BK(R, P, X) reports R as a maximal
// clique once P and X are both empty, otherwise it picks a pivot u from
// P union X and only branches on candidates in P that are not already
// adjacent to u (every candidate adjacent to the pivot is guaranteed to
// be considered in a different, non-redundant branch).
func bronKerbosch(g *compatgraph.Graph, r, p, x map[uuid.UUID]struct{}, out *[]Clique) {
	if len(p) == 0 && len(x) == 0 {
		if len(r) >= 2 {
			*out = append(*out, setToSortedClique(r))
		}

		return
	}

	pivot, found := choosePivot(g, p, x)
	var pivotNeighbors map[uuid.UUID]struct{}
	if found {
		pivotNeighbors = neighborSet(g, pivot)
	}

	for v := range copySet(p) {
		if _, blocked := pivotNeighbors[v]; blocked {
			continue
		}

		vNeighbors := neighborSet(g, v)
		newR := copySet(r)
		newR[v] = struct{}{}
		newP := intersect(p, vNeighbors)
		newX := intersect(x, vNeighbors)

		bronKerbosch(g, newR, newP, newX, out)

		delete(p, v)
		x[v] = struct{}{}
	}
}

// choosePivot picks a vertex from P union X with the most neighbors
// inside P, maximizing how many candidates get pruned from this level's
// branching. If both sets are empty, found is false.
func choosePivot(g *compatgraph.Graph, p, x map[uuid.UUID]struct{}) (pivot uuid.UUID, found bool) {
	best := -1
	for _, candidateSet := range []map[uuid.UUID]struct{}{p, x} {
		for v := range candidateSet {
			score := intersectCount(neighborSet(g, v), p)
			if score > best {
				best = score
				pivot = v
				found = true
			}
		}
	}

	return pivot, found
}

func neighborSet(g *compatgraph.Graph, id uuid.UUID) map[uuid.UUID]struct{} {
	nbrs := g.Neighbors(id)
	set := make(map[uuid.UUID]struct{}, len(nbrs))
	for _, n := range nbrs {
		set[n] = struct{}{}
	}

	return set
}

func intersectCount(a, b map[uuid.UUID]struct{}) int {
	count := 0
	for v := range a {
		if _, ok := b[v]; ok {
			count++
		}
	}

	return count
}

func toSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}

func copySet(s map[uuid.UUID]struct{}) map[uuid.UUID]struct{} {
	out := make(map[uuid.UUID]struct{}, len(s))
	for v := range s {
		out[v] = struct{}{}
	}

	return out
}

func intersect(a, b map[uuid.UUID]struct{}) map[uuid.UUID]struct{} {
	out := make(map[uuid.UUID]struct{})
	for v := range a {
		if _, ok := b[v]; ok {
			out[v] = struct{}{}
		}
	}

	return out
}

func setToSortedClique(s map[uuid.UUID]struct{}) Clique {
	c := make(Clique, 0, len(s))
	for v := range s {
		c = append(c, v)
	}
	sort.Slice(c, func(i, j int) bool {
		return bytes.Compare(c[i][:], c[j][:]) < 0
	})

	return c
}
