package compatgraph_test

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/katalvlaran/cliquefusion/compatgraph"
)

// ExampleGraph_AddEdge builds a triangle and reports each vertex's
// degree.
func ExampleGraph_AddEdge() {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	g := compatgraph.New()
	_ = g.AddEdge(a, b)
	_ = g.AddEdge(b, c)
	_ = g.AddEdge(a, c)

	fmt.Println(g.Degree(a), g.Degree(b), g.Degree(c))
	// Output: 2 2 2
}
