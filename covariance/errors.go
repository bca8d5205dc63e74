package covariance

import "errors"

// ErrNotPSD indicates a requested Matrix is not positive-semidefinite:
// a negative variance, or a determinant below the -psdTolerance floor.
var ErrNotPSD = errors.New("covariance: matrix is not positive-semidefinite")

// ErrSingular indicates Inverse was asked to invert a Matrix whose
// determinant magnitude falls below singularTolerance.
var ErrSingular = errors.New("covariance: matrix is singular")
