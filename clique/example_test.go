package clique_test

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/katalvlaran/cliquefusion/clique"
	"github.com/katalvlaran/cliquefusion/compatgraph"
)

// ExampleEnumerate builds a triangle plus one isolated vertex and
// enumerates the maximal cliques.
func ExampleEnumerate() {
	g := compatgraph.New()
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	isolated := uuid.New()

	_ = g.AddEdge(a, b)
	_ = g.AddEdge(b, c)
	_ = g.AddEdge(a, c)
	g.AddVertex(isolated)

	cliques := clique.Enumerate(g)
	fmt.Println(len(cliques))
	// Output: 1
}
