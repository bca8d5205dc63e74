package observation

import (
	"math"

	"github.com/katalvlaran/cliquefusion/covariance"
)

// Chi-squared quantiles at 2 degrees of freedom, the thresholds
// Compatible is typically calibrated against.
const (
	// ChiSquared90 is the 90%-confidence threshold.
	ChiSquared90 = 4.605170

	// ChiSquared95 is the 95%-confidence threshold.
	ChiSquared95 = 5.991465

	// ChiSquared99 is the 99%-confidence threshold.
	ChiSquared99 = 9.210340
)

// Compatible reports whether a and b are statistically consistent with
// originating from the same true location, at the given chi-squared
// threshold.
//
// Two observations sharing the same non-nil context are never
// compatible, checked first and short-circuiting the numeric test. The
// numeric test computes the squared Mahalanobis distance under the
// summed covariance S = a.Covariance + b.Covariance:
//
//	d^2 = deltaT * S^-1 * delta,  delta = (a.X-b.X, a.Y-b.Y)
//
// using the closed-form 2x2 inverse S^-1 = (1/det S) * [[S.YY, -S.XY],
// [-S.XY, S.XX]]. If S is singular, a and b are treated as incompatible
// rather than surfacing an error: the Clique Index never fails at query
// time because of a numeric degeneracy in one pair. a and b are
// compatible iff d^2 <= threshold (inclusive).
func Compatible(a, b Observation, threshold float64) bool {
	if a.SameContext(b) {
		return false
	}

	s := covariance.Add(a.Covariance, b.Covariance)
	inv, err := s.Inverse()
	if err != nil {
		return false
	}

	dx := a.X - b.X
	dy := a.Y - b.Y
	d2 := dx*dx*inv.XX + 2*dx*dy*inv.XY + dy*dy*inv.YY

	return d2 <= threshold
}

// SearchRadius returns a conservative scalar bound r such that any two
// observations i and j whose positions are farther apart than r_i + r_j
// are guaranteed to fail Compatible at the given threshold:
//
//	r = sqrt(threshold) * sqrt(lambda_max(cov))
//
// where lambda_max is the larger eigenvalue of cov. This is the
// "admissible definition" the spatial prefilter is built on: it may
// admit false positives (rejected later by Compatible), never false
// negatives.
func SearchRadius(cov covariance.Matrix, threshold float64) float64 {
	return math.Sqrt(threshold * cov.LargestEigenvalue())
}
