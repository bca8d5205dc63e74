package observation

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/katalvlaran/cliquefusion/covariance"
)

// Observation is an immutable measurement of a 2D position with a
// Gaussian uncertainty model. ID is the caller-assigned, globally
// unique identity used as the compatibility-graph vertex key. Context,
// when non-nil, marks this observation as known in advance to be
// distinct from any other observation sharing the same Context value.
type Observation struct {
	ID         uuid.UUID
	X, Y       float64
	Covariance covariance.Matrix
	Context    *uuid.UUID
}

// Option configures an Observation at construction time.
type Option func(*Observation)

// WithContext attaches a context tag to the observation being built.
func WithContext(ctx uuid.UUID) Option {
	return func(o *Observation) {
		o.Context = &ctx
	}
}

// New constructs an Observation from an explicit covariance. It fails
// with ErrNonFiniteCoordinate if x or y is not finite.
func New(id uuid.UUID, x, y float64, cov covariance.Matrix, opts ...Option) (Observation, error) {
	if !isFinite(x) || !isFinite(y) {
		return Observation{}, fmt.Errorf("observation: id=%s x=%v y=%v: %w", id, x, y, ErrNonFiniteCoordinate)
	}

	o := Observation{ID: id, X: x, Y: y, Covariance: cov}
	for _, opt := range opts {
		opt(&o)
	}

	return o, nil
}

// NewCircular constructs an Observation whose covariance is synthesized
// from a circular-error radius at the given confidence level (e.g. 0.95
// for a 95%-confidence circle), per covariance.CircularError.
func NewCircular(id uuid.UUID, x, y, radiusMeters, confidence float64, opts ...Option) (Observation, error) {
	if !isFinite(x) || !isFinite(y) {
		return Observation{}, fmt.Errorf("observation: id=%s x=%v y=%v: %w", id, x, y, ErrNonFiniteCoordinate)
	}
	if !(confidence > 0 && confidence < 1) {
		return Observation{}, fmt.Errorf("observation: id=%s confidence=%v: %w", id, confidence, ErrInvalidConfidence)
	}

	quantile := chiSquaredQuantile2(confidence)
	cov, err := covariance.CircularError(radiusMeters, quantile)
	if err != nil {
		return Observation{}, err
	}

	o := Observation{ID: id, X: x, Y: y, Covariance: cov}
	for _, opt := range opts {
		opt(&o)
	}

	return o, nil
}

// SameContext reports whether a and b carry the same non-nil context.
func (o Observation) SameContext(other Observation) bool {
	if o.Context == nil || other.Context == nil {
		return false
	}

	return *o.Context == *other.Context
}

// chiSquaredQuantile2 returns the quantile of the chi-squared
// distribution with 2 degrees of freedom at confidence p, using the
// distribution's closed form (it is an Exponential(rate=1/2)):
//
//	Q(p) = -2 * ln(1 - p)
//
// This analytic form agrees with ChiSquared90/95/99 to the six decimal
// places those constants are written with, and lets
// NewCircular accept any confidence in (0, 1), not just the three named
// reference levels.
func chiSquaredQuantile2(p float64) float64 {
	return -2 * math.Log(1-p)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
