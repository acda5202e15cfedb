package dist

import (
	"math"

	"github.com/hupe1980/statkit/random"
)

// Normal is the normal (Gaussian) distribution with location mean and scale
// stdDev.
type Normal struct {
	mean   float64
	stdDev float64
}

// NewNormal constructs a normal distribution. Fails if either parameter is
// NaN or stdDev <= 0.
func NewNormal(mean, stdDev float64) (*Normal, error) {
	if math.IsNaN(mean) || math.IsNaN(stdDev) || stdDev <= 0 {
		return nil, &ParamError{Dist: "normal", Reason: "stdDev must be positive and no parameter may be NaN"}
	}

	return &Normal{mean: mean, stdDev: stdDev}, nil
}

// Sample draws a normal variate from src via the Box-Muller transform.
func (n *Normal) Sample(src random.Source) float64 {
	// 1 - Float64() keeps the log argument in (0, 1].
	u1 := 1 - src.Float64()
	u2 := src.Float64()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)

	return n.mean + n.stdDev*z
}

// CDF returns the cumulative distribution function at x.
func (n *Normal) CDF(x float64) float64 {
	return 0.5 * math.Erfc(-(x-n.mean)/(n.stdDev*math.Sqrt2))
}

// Min returns the lower bound of the support, -Inf.
func (n *Normal) Min() float64 { return math.Inf(-1) }

// Max returns the upper bound of the support, +Inf.
func (n *Normal) Max() float64 { return math.Inf(1) }

// Mean returns the location parameter.
func (n *Normal) Mean() float64 { return n.mean }

// Variance returns stdDev^2.
func (n *Normal) Variance() float64 { return n.stdDev * n.stdDev }

// StdDev returns the scale parameter.
func (n *Normal) StdDev() float64 { return n.stdDev }

// Entropy returns ln(stdDev * sqrt(2*pi*e)).
func (n *Normal) Entropy() float64 {
	return 0.5 * math.Log(2*math.Pi*math.E*n.stdDev*n.stdDev)
}

// Skewness returns 0.
func (n *Normal) Skewness() float64 { return 0 }

// Median returns the location parameter.
func (n *Normal) Median() float64 { return n.mean }

// Mode returns the location parameter.
func (n *Normal) Mode() float64 { return n.mean }

// PDF returns the probability density function at x.
func (n *Normal) PDF(x float64) float64 {
	d := (x - n.mean) / n.stdDev

	return math.Exp(-0.5*d*d) / (n.stdDev * math.Sqrt(2*math.Pi))
}

// LnPDF returns the natural log of the probability density function at x.
func (n *Normal) LnPDF(x float64) float64 {
	d := (x - n.mean) / n.stdDev

	return -0.5*d*d - math.Log(n.stdDev*math.Sqrt(2*math.Pi))
}
