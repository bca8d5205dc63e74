// Package covariance implements 2x2 symmetric positive-semidefinite
// covariance matrices, the uncertainty model every observation carries.
//
// A Matrix holds the upper triangle of a symmetric 2x2 matrix:
//
//	[ XX  XY ]
//	[ XY  YY ]
//
// Construction is validated: New rejects negative variances and matrices
// whose determinant is negative beyond a small rounding tolerance (a sum
// of two valid covariances can land a hair below zero purely from
// floating-point error). Once built, a Matrix is immutable; Add and
// Inverse return new values.
//
// Inverse uses the closed-form 2x2 formula rather than a general
// decomposition, both because a 2x2 inverse is exact in closed form and
// because the compatibility test built on top of it (package
// observation) depends on this exact arithmetic ordering to keep
// boundary outcomes stable.
//
// Errors:
//
//	ErrNotPSD   - the requested matrix is not positive-semidefinite.
//	ErrSingular - Inverse was asked to invert a matrix too close to
//	              singular to trust.
package covariance
