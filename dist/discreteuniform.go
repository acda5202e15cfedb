package dist

import (
	"math"

	"github.com/hupe1980/statkit/random"
)

// DiscreteUniform is the discrete uniform distribution over the integers
// [min, max].
type DiscreteUniform struct {
	min int64
	max int64
}

// NewDiscreteUniform constructs a discrete uniform distribution over the
// integer range [min, max]. Fails if min > max.
func NewDiscreteUniform(minVal, maxVal int64) (*DiscreteUniform, error) {
	if minVal > maxVal {
		return nil, &ParamError{Dist: "discrete uniform", Reason: "min must be <= max"}
	}

	return &DiscreteUniform{min: minVal, max: maxVal}, nil
}

func (d *DiscreteUniform) span() uint64 {
	return uint64(d.max-d.min) + 1
}

// Sample draws an integer-valued variate in [min, max] from src.
func (d *DiscreteUniform) Sample(src random.Source) float64 {
	return float64(d.min + int64(src.Uint64n(d.span())))
}

// CDF returns (floor(x) - min + 1) / (max - min + 1), clamped to [0, 1].
func (d *DiscreteUniform) CDF(x float64) float64 {
	if x < float64(d.min) {
		return 0
	}
	if x >= float64(d.max) {
		return 1
	}

	return (math.Floor(x) - float64(d.min) + 1) / float64(d.span())
}

// Min returns the lower bound of the support.
func (d *DiscreteUniform) Min() float64 { return float64(d.min) }

// Max returns the upper bound of the support.
func (d *DiscreteUniform) Max() float64 { return float64(d.max) }

// Mean returns (min + max) / 2.
func (d *DiscreteUniform) Mean() float64 { return float64(d.min+d.max) / 2 }

// Variance returns ((max - min + 1)^2 - 1) / 12.
func (d *DiscreteUniform) Variance() float64 {
	n := float64(d.span())
	return (n*n - 1) / 12
}

// StdDev returns the square root of the variance.
func (d *DiscreteUniform) StdDev() float64 { return math.Sqrt(d.Variance()) }

// Entropy returns ln(max - min + 1).
func (d *DiscreteUniform) Entropy() float64 { return math.Log(float64(d.span())) }

// Skewness returns 0.
func (d *DiscreteUniform) Skewness() float64 { return 0 }

// Median returns (min + max) / 2.
func (d *DiscreteUniform) Median() float64 { return float64(d.min+d.max) / 2 }

// Mode returns the middle of the support, (min + max) / 2; every point is
// equally probable.
func (d *DiscreteUniform) Mode() float64 { return float64(d.min+d.max) / 2 }

// PMF returns 1 / (max - min + 1) for k in [min, max] and 0 otherwise.
func (d *DiscreteUniform) PMF(k int64) float64 {
	if k < d.min || k > d.max {
		return 0
	}

	return 1 / float64(d.span())
}

// LnPMF returns the natural log of PMF(k).
func (d *DiscreteUniform) LnPMF(k int64) float64 {
	if k < d.min || k > d.max {
		return math.Inf(-1)
	}

	return -math.Log(float64(d.span()))
}
