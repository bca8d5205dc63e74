// Package observation defines the Observation value, the statistical
// compatibility test between two observations, and the chi-squared
// quantiles the test is calibrated against.
//
// An Observation is immutable once built: identity, position, and
// covariance never change after New or NewCircular returns. The
// optional Context tag groups observations known a priori
// to be distinct (e.g. simultaneous detections in one sensor frame);
// two observations sharing a non-nil, equal Context can never be
// compatible, regardless of how close their positions are.
//
// Compatible implements the squared-Mahalanobis-distance test under the
// summed covariance, using the closed-form 2x2 inverse from package
// covariance rather than a general solver, so that the d^2 <= threshold
// boundary is stable across builds and platforms. ChiSquared90,
// ChiSquared95, and ChiSquared99 are the reference thresholds at 2
// degrees of freedom; any other confidence level can be resolved with
// chiSquaredQuantile2, the closed-form quantile of the 2-DoF chi-squared
// distribution (itself an Exponential(rate=1/2)): Q(p) = -2*ln(1-p).
//
// SearchRadius computes the conservative scalar bound package
// cliqueindex uses to prefilter candidates spatially before running the
// exact test.
//
// Errors:
//
//	ErrNonFiniteCoordinate - x or y is NaN or +-Inf.
//	ErrInvalidConfidence   - a circular-error confidence is outside (0, 1).
package observation
