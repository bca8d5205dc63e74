package spatialindex_test

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/katalvlaran/cliquefusion/spatialindex"
)

// ExampleIndex_QueryWithin indexes two points and queries a radius
// that covers one of them.
func ExampleIndex_QueryWithin() {
	near, far := uuid.New(), uuid.New()

	idx := spatialindex.New()
	idx.Insert(near, spatialindex.Point{X: 1, Y: 0})
	idx.Insert(far, spatialindex.Point{X: 100, Y: 0})

	hits := idx.QueryWithin(spatialindex.Point{X: 0, Y: 0}, 5)

	fmt.Println(len(hits))
	// Output: 1
}
