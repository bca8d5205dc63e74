package observation

import "errors"

// ErrNonFiniteCoordinate indicates a position component was NaN or
// infinite.
var ErrNonFiniteCoordinate = errors.New("observation: coordinate must be finite")

// ErrInvalidConfidence indicates a circular-error confidence level fell
// outside the open interval (0, 1).
var ErrInvalidConfidence = errors.New("observation: confidence must be in (0, 1)")
