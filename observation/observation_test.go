// Package observation_test contains unit tests for Observation
// construction and the statistical compatibility test.
package observation_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/katalvlaran/cliquefusion/covariance"
	"github.com/katalvlaran/cliquefusion/observation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitIsotropic(t *testing.T) covariance.Matrix {
	t.Helper()
	m, err := covariance.New(1, 1, 0)
	require.NoError(t, err)
	return m
}

func TestNewRejectsNonFiniteCoordinates(t *testing.T) {
	t.Parallel()

	cov := unitIsotropic(t)
	_, err := observation.New(uuid.New(), math.NaN(), 0, cov)
	require.Error(t, err)
	assert.True(t, errors.Is(err, observation.ErrNonFiniteCoordinate))

	_, err = observation.New(uuid.New(), 0, math.Inf(1), cov)
	require.Error(t, err)
	assert.True(t, errors.Is(err, observation.ErrNonFiniteCoordinate))
}

func TestNewCircularRejectsBadConfidence(t *testing.T) {
	t.Parallel()

	for _, c := range []float64{0, 1, -0.1, 1.1} {
		_, err := observation.NewCircular(uuid.New(), 0, 0, 10, c)
		require.Error(t, err)
		assert.True(t, errors.Is(err, observation.ErrInvalidConfidence))
	}
}

func TestNewCircularMatchesNamedThreshold(t *testing.T) {
	t.Parallel()

	o, err := observation.NewCircular(uuid.New(), 0, 0, 10, 0.95)
	require.NoError(t, err)
	// The named constant is written to six decimals, so compare the
	// quantile implied by the synthesized variance at that precision.
	want := observation.ChiSquared95
	assert.InDelta(t, want, (10.0*10.0)/o.Covariance.XX, 1e-6)
	assert.InDelta(t, want, (10.0*10.0)/o.Covariance.YY, 1e-6)
}

func TestWithContext(t *testing.T) {
	t.Parallel()

	ctx := uuid.New()
	cov := unitIsotropic(t)
	a, err := observation.New(uuid.New(), 0, 0, cov, observation.WithContext(ctx))
	require.NoError(t, err)
	b, err := observation.New(uuid.New(), 1, 1, cov, observation.WithContext(ctx))
	require.NoError(t, err)
	c, err := observation.New(uuid.New(), 1, 1, cov)
	require.NoError(t, err)

	assert.True(t, a.SameContext(b))
	assert.False(t, a.SameContext(c))
	assert.False(t, c.SameContext(a))
}

func TestCompatibleSymmetric(t *testing.T) {
	t.Parallel()

	cov := unitIsotropic(t)
	a, err := observation.New(uuid.New(), 0, 0, cov)
	require.NoError(t, err)
	b, err := observation.New(uuid.New(), 1.5, 0, cov)
	require.NoError(t, err)

	ab := observation.Compatible(a, b, observation.ChiSquared95)
	ba := observation.Compatible(b, a, observation.ChiSquared95)
	assert.Equal(t, ab, ba)
	assert.True(t, ab)
}

func TestCompatibleContextExclusion(t *testing.T) {
	t.Parallel()

	ctx := uuid.New()
	cov := unitIsotropic(t)
	a, err := observation.New(uuid.New(), 0, 0, cov, observation.WithContext(ctx))
	require.NoError(t, err)
	b, err := observation.New(uuid.New(), 1.5, 0, cov, observation.WithContext(ctx))
	require.NoError(t, err)

	assert.False(t, observation.Compatible(a, b, observation.ChiSquared95))
}

func TestCompatibleDistanceRejects(t *testing.T) {
	t.Parallel()

	cov := unitIsotropic(t)
	a, err := observation.New(uuid.New(), 0, 0, cov)
	require.NoError(t, err)
	b, err := observation.New(uuid.New(), 10, 0, cov)
	require.NoError(t, err)

	assert.False(t, observation.Compatible(a, b, observation.ChiSquared95))
}

func TestCompatibleSingularCovarianceIsIncompatible(t *testing.T) {
	t.Parallel()

	zero, err := covariance.New(0, 0, 0)
	require.NoError(t, err)
	a, err := observation.New(uuid.New(), 0, 0, zero)
	require.NoError(t, err)
	b, err := observation.New(uuid.New(), 0, 0, zero)
	require.NoError(t, err)

	assert.False(t, observation.Compatible(a, b, observation.ChiSquared95))
}

func TestCompatibleAsymmetricPrecision(t *testing.T) {
	t.Parallel()

	covA, err := covariance.New(100, 100, 0)
	require.NoError(t, err)
	covB, err := covariance.New(0.01, 0.01, 0)
	require.NoError(t, err)

	a, err := observation.New(uuid.New(), 0, 0, covA)
	require.NoError(t, err)
	bSame, err := observation.New(uuid.New(), 0, 0, covB)
	require.NoError(t, err)
	bNear, err := observation.New(uuid.New(), 1, 0, covB)
	require.NoError(t, err)

	assert.True(t, observation.Compatible(a, bSame, observation.ChiSquared95))
	assert.True(t, observation.Compatible(a, bNear, observation.ChiSquared95))
}

func TestThresholdMonotonicity(t *testing.T) {
	t.Parallel()

	cov := unitIsotropic(t)
	a, err := observation.New(uuid.New(), 0, 0, cov)
	require.NoError(t, err)
	b, err := observation.New(uuid.New(), 2, 0, cov)
	require.NoError(t, err)

	lowThreshold := 3.0
	highThreshold := 10.0
	if observation.Compatible(a, b, lowThreshold) {
		assert.True(t, observation.Compatible(a, b, highThreshold))
	}
}

func TestSearchRadiusIsConservative(t *testing.T) {
	t.Parallel()

	cov, err := covariance.New(4, 9, 0)
	require.NoError(t, err)
	r := observation.SearchRadius(cov, observation.ChiSquared95)
	assert.InDelta(t, math.Sqrt(observation.ChiSquared95*9), r, 1e-9)

	// Any pair farther apart than the sum of their search radii must
	// fail Compatible: the prefilter must never produce false negatives.
	a, err := observation.New(uuid.New(), 0, 0, cov)
	require.NoError(t, err)
	isotropic := unitIsotropic(t)
	rB := observation.SearchRadius(isotropic, observation.ChiSquared95)
	b, err := observation.New(uuid.New(), r+rB+1, 0, isotropic)
	require.NoError(t, err)
	assert.False(t, observation.Compatible(a, b, observation.ChiSquared95))
}
