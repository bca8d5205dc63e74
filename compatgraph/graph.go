package compatgraph

import (
	"fmt"

	"github.com/google/uuid"
)

// Graph is a sparse undirected graph whose vertices are observation
// ids. Edges carry no payload: their sole meaning is "this pair of
// observations passed the compatibility test".
type Graph struct {
	adjacency map[uuid.UUID]map[uuid.UUID]struct{}
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{adjacency: make(map[uuid.UUID]map[uuid.UUID]struct{})}
}

// AddVertex inserts id into the graph if absent. A no-op if id is
// already present.
func (g *Graph) AddVertex(id uuid.UUID) {
	if _, ok := g.adjacency[id]; ok {
		return
	}
	g.adjacency[id] = make(map[uuid.UUID]struct{})
}

// AddEdge connects a and b. Both vertices are implicitly added if
// absent. A no-op if the edge already exists. Fails with ErrSelfLoop if
// a == b.
func (g *Graph) AddEdge(a, b uuid.UUID) error {
	if a == b {
		return fmt.Errorf("compatgraph: vertex %s: %w", a, ErrSelfLoop)
	}

	g.AddVertex(a)
	g.AddVertex(b)
	g.adjacency[a][b] = struct{}{}
	g.adjacency[b][a] = struct{}{}

	return nil
}

// Has reports whether id is a vertex of the graph.
func (g *Graph) Has(id uuid.UUID) bool {
	_, ok := g.adjacency[id]
	return ok
}

// HasEdge reports whether a and b are connected.
func (g *Graph) HasEdge(a, b uuid.UUID) bool {
	nbrs, ok := g.adjacency[a]
	if !ok {
		return false
	}
	_, ok = nbrs[b]

	return ok
}

// Neighbors returns the ids adjacent to id, in no particular order. Nil
// if id is not a vertex.
func (g *Graph) Neighbors(id uuid.UUID) []uuid.UUID {
	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil
	}

	out := make([]uuid.UUID, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}

	return out
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id uuid.UUID) int {
	return len(g.adjacency[id])
}

// Vertices returns every vertex id, in no particular order.
func (g *Graph) Vertices() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(g.adjacency))
	for v := range g.adjacency {
		out = append(out, v)
	}

	return out
}

// Len returns the number of vertices.
func (g *Graph) Len() int {
	return len(g.adjacency)
}
