package compatgraph

import "errors"

// ErrSelfLoop indicates AddEdge was asked to connect a vertex to itself.
var ErrSelfLoop = errors.New("compatgraph: self-loops are not allowed")
