package cliqueindex

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/katalvlaran/cliquefusion/clique"
	"github.com/katalvlaran/cliquefusion/compatgraph"
	"github.com/katalvlaran/cliquefusion/observation"
	"github.com/katalvlaran/cliquefusion/spatialindex"
)

// Index is the Clique Index: it owns a spatial index, a compatibility
// graph, and every inserted observation, and exposes batch and
// incremental fusion.
type Index struct {
	threshold       float64
	spatial         *spatialindex.Index
	graph           *compatgraph.Graph
	observations    map[uuid.UUID]observation.Observation
	maxSearchRadius float64

	cliquesCache []clique.Clique
	cacheValid   bool
}

// New returns an empty Index at the given chi-squared compatibility
// threshold. Fails with ErrInvalidThreshold if threshold is not
// strictly positive and finite.
func New(threshold float64) (*Index, error) {
	if !validThreshold(threshold) {
		return nil, fmt.Errorf("cliqueindex: threshold %v: %w", threshold, ErrInvalidThreshold)
	}

	return &Index{
		threshold:    threshold,
		spatial:      spatialindex.New(),
		graph:        compatgraph.New(),
		observations: make(map[uuid.UUID]observation.Observation),
	}, nil
}

// FromObservations builds an Index from a batch of observations at the
// given threshold. It rejects duplicate ids with ErrDuplicateID,
// leaving the index exactly as it was before the failing call (no
// partial mutation survives a rejected batch). The result is identical
// to calling New followed by Insert for every element of obs, in any
// order: Insert's per-item algorithm is the only code path, so batch and
// incremental construction cannot disagree.
func FromObservations(threshold float64, obs []observation.Observation) (*Index, error) {
	idx, err := New(threshold)
	if err != nil {
		return nil, err
	}

	for _, o := range obs {
		if err := idx.Insert(o); err != nil {
			return nil, err
		}
	}

	return idx, nil
}

// FromObservationsCoalescing is the permissive sibling FromObservations
// does not default to: later observations sharing an id already present
// are silently skipped rather than rejected. Because observations are
// immutable and never removed once indexed, coalescing means "first
// occurrence wins", not "last write wins" — there is no way to retract
// the graph edges and spatial entry a later duplicate would otherwise
// need to replace.
func FromObservationsCoalescing(threshold float64, obs []observation.Observation) (*Index, error) {
	idx, err := New(threshold)
	if err != nil {
		return nil, err
	}

	for _, o := range obs {
		if idx.Has(o.ID) {
			continue
		}
		if err := idx.Insert(o); err != nil {
			return nil, err
		}
	}

	return idx, nil
}

// Has reports whether id is already present in the index.
func (idx *Index) Has(id uuid.UUID) bool {
	_, ok := idx.observations[id]
	return ok
}

// Insert adds a single observation:
//
//  1. reject if the id is already present;
//  2. compute this observation's search radius and grow the running
//     maximum;
//  3. query the spatial index for candidates within (radius + running
//     max) of the position;
//  4. run the exact compatibility test against each candidate and add
//     an edge for every pass;
//  5. only then add the observation to the spatial index and graph, so
//     the query in step 3 cannot return the observation itself.
func (idx *Index) Insert(o observation.Observation) error {
	if idx.Has(o.ID) {
		return fmt.Errorf("cliqueindex: insert %s: %w", o.ID, ErrDuplicateID)
	}

	radius := observation.SearchRadius(o.Covariance, idx.threshold)
	if radius > idx.maxSearchRadius {
		idx.maxSearchRadius = radius
	}

	candidates := idx.spatial.QueryWithin(
		spatialindex.Point{X: o.X, Y: o.Y},
		radius+idx.maxSearchRadius,
	)

	for _, c := range candidates {
		other, ok := idx.observations[c.ID]
		if !ok {
			continue
		}
		if observation.Compatible(o, other, idx.threshold) {
			// AddEdge cannot fail here: c.ID != o.ID is guaranteed
			// because o is not yet in the spatial index.
			_ = idx.graph.AddEdge(o.ID, c.ID)
		}
	}

	idx.spatial.Insert(o.ID, spatialindex.Point{X: o.X, Y: o.Y})
	idx.graph.AddVertex(o.ID)
	idx.observations[o.ID] = o
	idx.cacheValid = false

	return nil
}

// Cliques returns every maximal clique of size >= 2 in the current
// compatibility graph. The result is memoized until the next Insert;
// callers never observe a stale result across a mutation.
func (idx *Index) Cliques() []clique.Clique {
	if !idx.cacheValid {
		idx.cliquesCache = clique.Enumerate(idx.graph)
		idx.cacheValid = true
	}

	return idx.cliquesCache
}

// Len returns the number of observations (graph vertices) in the index.
func (idx *Index) Len() int {
	return len(idx.observations)
}

// IsEmpty reports whether the index has no observations.
func (idx *Index) IsEmpty() bool {
	return idx.Len() == 0
}

func validThreshold(t float64) bool {
	return t > 0 && !math.IsInf(t, 0) && !math.IsNaN(t)
}
