package spatialindex

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/google/uuid"
)

// minBranch and maxBranch are the R-tree's node fan-out bounds. These
// match the values used throughout rtreego's own examples and are a
// reasonable default for the point counts this module expects (tens of
// thousands of observations, not millions).
const (
	minBranch = 25
	maxBranch = 50

	// boundsEpsilon keeps degenerate (zero-size) rectangles, which
	// rtreego.NewRect refuses to construct, strictly positive.
	boundsEpsilon = 1e-9
)

// Point is a 2D position.
type Point struct {
	X, Y float64
}

// Index is an R-tree-backed spatial index keyed by observation id.
type Index struct {
	tree *rtreego.Tree
}

// New returns an empty Index.
func New() *Index {
	return &Index{tree: rtreego.NewTree(2, minBranch, maxBranch)}
}

// Insert adds id at point p. The index never removes entries.
func (idx *Index) Insert(id uuid.UUID, p Point) {
	idx.tree.Insert(newEntry(id, p))
}

// Candidate is one result of a QueryWithin call.
type Candidate struct {
	ID    uuid.UUID
	Point Point
}

// QueryWithin returns every indexed id whose point lies within
// Euclidean distance radius of center (inclusive). It first asks the
// R-tree for every point inside the bounding square of side 2*radius
// centered on center, then filters that candidate set down to the true
// circular disc: rtreego only supports rectangular intersection
// queries, and callers depend on the exact circular semantics the
// compatibility prefilter requires.
func (idx *Index) QueryWithin(center Point, radius float64) []Candidate {
	if radius < 0 {
		radius = 0
	}

	bounds := squareBounds(center, radius)
	hits := idx.tree.SearchIntersect(bounds)

	out := make([]Candidate, 0, len(hits))
	for _, hit := range hits {
		e := hit.(*entry)
		if withinRadius(center, e.point, radius) {
			out = append(out, Candidate{ID: e.id, Point: e.point})
		}
	}

	return out
}

// entry is the rtreego.Spatial implementation stored in the tree.
type entry struct {
	id    uuid.UUID
	point Point
}

func newEntry(id uuid.UUID, p Point) *entry {
	return &entry{id: id, point: p}
}

// Bounds implements rtreego.Spatial as a tiny square of side
// boundsEpsilon centered on the entry's point.
func (e *entry) Bounds() rtreego.Rect {
	side := boundsEpsilon
	rect, err := rtreego.NewRect(
		rtreego.Point{e.point.X - side/2, e.point.Y - side/2},
		[]float64{side, side},
	)
	if err != nil {
		// side is a positive constant; NewRect only fails on
		// non-positive lengths, which cannot happen here.
		panic(err)
	}

	return rect
}

func squareBounds(center Point, radius float64) rtreego.Rect {
	side := 2*radius + boundsEpsilon
	rect, err := rtreego.NewRect(
		rtreego.Point{center.X - side/2, center.Y - side/2},
		[]float64{side, side},
	)
	if err != nil {
		panic(err)
	}

	return rect
}

func withinRadius(a, b Point, radius float64) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) <= radius
}
