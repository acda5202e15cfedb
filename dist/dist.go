// Package dist provides closed-form probability distributions: immutable
// parameter objects built by validating constructors, with sampling,
// density, and moment queries.
//
// Distributions implement only the capabilities for which a closed form
// exists; consumers should depend on the narrow interfaces below rather
// than concrete types. Construction is the single validation point: a
// non-nil distribution always has valid parameters, and query methods on it
// never return errors. Queries that are mathematically undefined for an
// input follow IEEE conventions (NaN, infinities) as documented per method.
package dist

import (
	"errors"
	"fmt"

	"github.com/hupe1980/statkit/random"
)

// ErrInvalidParams is the sentinel wrapped by every ParamError, for use
// with errors.Is.
var ErrInvalidParams = errors.New("invalid parameters")

// ParamError reports rejected distribution parameters at construction time.
type ParamError struct {
	Dist   string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Dist, ErrInvalidParams, e.Reason)
}

func (e *ParamError) Unwrap() error { return ErrInvalidParams }

// Sampler draws random samples using the supplied randomness source.
type Sampler interface {
	Sample(src random.Source) float64
}

// Univariate is a distribution with a closed-form cumulative distribution
// function over a float64 support.
type Univariate interface {
	Sampler

	// CDF returns the cumulative distribution function evaluated at x.
	CDF(x float64) float64

	// Min returns the minimum value in the distribution's domain
	// representable by a float64.
	Min() float64

	// Max returns the maximum value in the distribution's domain
	// representable by a float64.
	Max() float64
}

// Continuous is a distribution with a closed-form probability density
// function.
type Continuous interface {
	Sampler

	// PDF returns the probability density function evaluated at x.
	PDF(x float64) float64

	// LnPDF returns the natural log of the probability density function
	// evaluated at x.
	LnPDF(x float64) float64
}

// Discrete is a distribution with a closed-form probability mass function.
type Discrete interface {
	Sampler

	// PMF returns the probability mass function evaluated at k.
	PMF(k int64) float64

	// LnPMF returns the natural log of the probability mass function
	// evaluated at k.
	LnPMF(k int64) float64
}
