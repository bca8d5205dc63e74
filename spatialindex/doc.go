// Package spatialindex wraps an R-tree to support radius queries over
// observation positions.
//
// Index is a thin adapter: it hides the backing
// github.com/dhconnelly/rtreego.Tree behind exactly the two operations
// the Clique Index needs, Insert and QueryWithin, so that the backing
// structure stays swappable. QueryWithin issues a bounding-box intersection query
// against the tree (the operation rtreego exposes) and then filters the
// candidates down to the true Euclidean disc, since an R-tree's native
// query shape is rectangular, not circular.
//
// Index never removes entries: observation deletion is out of scope.
package spatialindex
