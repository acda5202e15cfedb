package dist

import (
	"math"

	"github.com/hupe1980/statkit/random"
)

// Uniform is the continuous uniform distribution over [min, max].
type Uniform struct {
	min float64
	max float64
}

// NewUniform constructs a uniform distribution with the given bounds.
// Fails if either bound is NaN or min > max.
func NewUniform(minVal, maxVal float64) (*Uniform, error) {
	if minVal > maxVal || math.IsNaN(minVal) || math.IsNaN(maxVal) {
		return nil, &ParamError{Dist: "uniform", Reason: "min must be <= max and neither may be NaN"}
	}

	return &Uniform{min: minVal, max: maxVal}, nil
}

// Sample draws a random value in [min, max) from src.
func (u *Uniform) Sample(src random.Source) float64 {
	return random.Range(src, u.min, u.max)
}

// CDF returns the cumulative distribution function at x:
// (x - min) / (max - min), clamped to 0 below min and 1 at or above max.
func (u *Uniform) CDF(x float64) float64 {
	if x <= u.min {
		return 0
	}
	if x >= u.max {
		return 1
	}

	return (x - u.min) / (u.max - u.min)
}

// Min returns the lower bound of the support.
func (u *Uniform) Min() float64 { return u.min }

// Max returns the upper bound of the support.
func (u *Uniform) Max() float64 { return u.max }

// Mean returns (min + max) / 2.
func (u *Uniform) Mean() float64 { return (u.min + u.max) / 2 }

// Variance returns (max - min)^2 / 12.
func (u *Uniform) Variance() float64 {
	return (u.max - u.min) * (u.max - u.min) / 12
}

// StdDev returns the square root of the variance.
func (u *Uniform) StdDev() float64 { return math.Sqrt(u.Variance()) }

// Entropy returns ln(max - min).
func (u *Uniform) Entropy() float64 { return math.Log(u.max - u.min) }

// Skewness returns 0.
func (u *Uniform) Skewness() float64 { return 0 }

// Median returns (min + max) / 2.
func (u *Uniform) Median() float64 { return (u.min + u.max) / 2 }

// Mode returns the middle of the support, (min + max) / 2; every point is
// equally probable.
func (u *Uniform) Mode() float64 { return (u.min + u.max) / 2 }

// PDF returns 1 / (max - min) inside [min, max] and 0 outside. A degenerate
// distribution (min == max) yields +Inf at that point.
func (u *Uniform) PDF(x float64) float64 {
	if x < u.min || x > u.max {
		return 0
	}

	return 1 / (u.max - u.min)
}

// LnPDF returns -ln(max - min) inside [min, max] and -Inf outside.
func (u *Uniform) LnPDF(x float64) float64 {
	if x < u.min || x > u.max {
		return math.Inf(-1)
	}

	return -math.Log(u.max - u.min)
}
