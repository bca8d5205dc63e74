package covariance

import (
	"fmt"
	"math"
)

// psdTolerance bounds how far below zero a determinant may fall and
// still be accepted as positive-semidefinite. Sums of valid covariance
// matrices can land a hair below zero from floating-point rounding; this
// tolerance absorbs that without accepting genuinely invalid input.
const psdTolerance = 1e-10

// singularTolerance bounds how close to zero a determinant may be
// before Inverse refuses to trust it.
const singularTolerance = 1e-12

// Matrix is a 2x2 symmetric covariance matrix, stored as its upper
// triangle: XX and YY are variances, XY is the covariance term.
type Matrix struct {
	XX float64
	YY float64
	XY float64
}

// New validates and constructs a Matrix. It fails with ErrNotPSD if
// either variance is negative or the determinant is below -psdTolerance.
func New(xx, yy, xy float64) (Matrix, error) {
	m := Matrix{XX: xx, YY: yy, XY: xy}
	if xx < 0 || yy < 0 {
		return Matrix{}, fmt.Errorf("covariance: xx=%v yy=%v xy=%v: %w", xx, yy, xy, ErrNotPSD)
	}
	if m.Determinant() < -psdTolerance {
		return Matrix{}, fmt.Errorf("covariance: xx=%v yy=%v xy=%v: %w", xx, yy, xy, ErrNotPSD)
	}

	return m, nil
}

// Identity returns the 2x2 identity covariance matrix.
func Identity() Matrix {
	return Matrix{XX: 1, YY: 1, XY: 0}
}

// CircularError builds the diagonal covariance matrix for a circular
// error model: a radius r at a confidence level whose chi-squared (2
// degrees of freedom) quantile is chiSquaredQuantile gives
// XX = YY = r^2 / chiSquaredQuantile, XY = 0.
//
// Callers resolve a confidence percentage to its chi-squared quantile
// (package observation does this); CircularError itself only needs the
// resolved quantile and the radius.
func CircularError(radiusMeters, chiSquaredQuantile float64) (Matrix, error) {
	if radiusMeters < 0 || chiSquaredQuantile <= 0 {
		return Matrix{}, fmt.Errorf("covariance: radius=%v quantile=%v: %w", radiusMeters, chiSquaredQuantile, ErrNotPSD)
	}
	v := (radiusMeters * radiusMeters) / chiSquaredQuantile

	return Matrix{XX: v, YY: v, XY: 0}, nil
}

// Determinant returns XX*YY - XY*XY.
func (m Matrix) Determinant() float64 {
	return m.XX*m.YY - m.XY*m.XY
}

// Add returns the element-wise sum of two covariance matrices. The sum
// of two PSD matrices is always PSD (modulo rounding), so Add does not
// re-validate the result.
func Add(a, b Matrix) Matrix {
	return Matrix{
		XX: a.XX + b.XX,
		YY: a.YY + b.YY,
		XY: a.XY + b.XY,
	}
}

// Inverse returns the analytic inverse of m:
//
//	inv = (1/det) * [ YY  -XY ]
//	                [ -XY  XX ]
//
// It fails with ErrSingular if |det| < singularTolerance.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < singularTolerance {
		return Matrix{}, fmt.Errorf("covariance: det=%v: %w", det, ErrSingular)
	}
	invDet := 1 / det

	return Matrix{
		XX: m.YY * invDet,
		YY: m.XX * invDet,
		XY: -m.XY * invDet,
	}, nil
}

// LargestEigenvalue returns the larger eigenvalue of the symmetric
// matrix m, computed from the closed-form 2x2 characteristic equation
// rather than a general iterative solver:
//
//	lambda = (tr +- sqrt(tr^2 - 4*det)) / 2,  tr = XX+YY
//
// A 2x2 symmetric matrix always has real eigenvalues, so the
// discriminant is clamped to zero to absorb rounding noise rather than
// risk a tiny negative value under Sqrt.
func (m Matrix) LargestEigenvalue() float64 {
	tr := m.XX + m.YY
	disc := tr*tr - 4*m.Determinant()
	if disc < 0 {
		disc = 0
	}

	return (tr + math.Sqrt(disc)) / 2
}
