// Package compatgraph_test contains unit tests for the compatibility
// graph.
package compatgraph_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/katalvlaran/cliquefusion/compatgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddVertexIsIdempotent(t *testing.T) {
	t.Parallel()

	g := compatgraph.New()
	id := uuid.New()
	g.AddVertex(id)
	g.AddVertex(id)

	assert.Equal(t, 1, g.Len())
	assert.True(t, g.Has(id))
}

func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	t.Parallel()

	g := compatgraph.New()
	id := uuid.New()
	err := g.AddEdge(id, id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, compatgraph.ErrSelfLoop))
}

func TestAddEdgeIsUndirectedAndIdempotent(t *testing.T) {
	t.Parallel()

	g := compatgraph.New()
	a, b := uuid.New(), uuid.New()
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(a, b))

	assert.True(t, g.HasEdge(a, b))
	assert.True(t, g.HasEdge(b, a))
	assert.Equal(t, 1, g.Degree(a))
	assert.Equal(t, 1, g.Degree(b))
	assert.ElementsMatch(t, []uuid.UUID{b}, g.Neighbors(a))
}

func TestVerticesIncludesIsolated(t *testing.T) {
	t.Parallel()

	g := compatgraph.New()
	iso := uuid.New()
	a, b := uuid.New(), uuid.New()
	g.AddVertex(iso)
	require.NoError(t, g.AddEdge(a, b))

	assert.ElementsMatch(t, []uuid.UUID{iso, a, b}, g.Vertices())
	assert.Equal(t, 0, g.Degree(iso))
}
