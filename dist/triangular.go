package dist

import (
	"math"

	"github.com/hupe1980/statkit/random"
)

// Triangular is the triangular distribution over [min, max] with peak at
// mode.
type Triangular struct {
	min  float64
	max  float64
	mode float64
}

// NewTriangular constructs a triangular distribution. Fails if any
// parameter is NaN, the ordering min <= mode <= max is violated, or
// min == max.
func NewTriangular(minVal, maxVal, mode float64) (*Triangular, error) {
	if math.IsNaN(minVal) || math.IsNaN(maxVal) || math.IsNaN(mode) ||
		maxVal < mode || mode < minVal || minVal == maxVal {
		return nil, &ParamError{Dist: "triangular", Reason: "requires min <= mode <= max with min < max and no NaN"}
	}

	return &Triangular{min: minVal, max: maxVal, mode: mode}, nil
}

// Sample draws a triangular variate from src by inverting the CDF.
func (t *Triangular) Sample(src random.Source) float64 {
	u := src.Float64()
	cut := (t.mode - t.min) / (t.max - t.min)
	if u < cut {
		return t.min + math.Sqrt(u*(t.max-t.min)*(t.mode-t.min))
	}

	return t.max - math.Sqrt((1-u)*(t.max-t.min)*(t.max-t.mode))
}

// CDF returns the cumulative distribution function at x.
func (t *Triangular) CDF(x float64) float64 {
	switch {
	case x <= t.min:
		return 0
	case x >= t.max:
		return 1
	case x <= t.mode:
		d := x - t.min
		return d * d / ((t.max - t.min) * (t.mode - t.min))
	default:
		d := t.max - x
		return 1 - d*d/((t.max-t.min)*(t.max-t.mode))
	}
}

// Min returns the lower bound of the support.
func (t *Triangular) Min() float64 { return t.min }

// Max returns the upper bound of the support.
func (t *Triangular) Max() float64 { return t.max }

// Mean returns (min + max + mode) / 3.
func (t *Triangular) Mean() float64 { return (t.min + t.max + t.mode) / 3 }

// Variance returns (a^2 + b^2 + c^2 - ab - ac - bc) / 18 for
// a = min, b = max, c = mode.
func (t *Triangular) Variance() float64 {
	a, b, c := t.min, t.max, t.mode
	return (a*a + b*b + c*c - a*b - a*c - b*c) / 18
}

// StdDev returns the square root of the variance.
func (t *Triangular) StdDev() float64 { return math.Sqrt(t.Variance()) }

// Entropy returns 1/2 + ln((max - min) / 2).
func (t *Triangular) Entropy() float64 {
	return 0.5 + math.Log((t.max-t.min)/2)
}

// Skewness returns the closed-form skewness of the triangular distribution.
func (t *Triangular) Skewness() float64 {
	a, b, c := t.min, t.max, t.mode
	num := math.Sqrt2 * (a + b - 2*c) * (2*a - b - c) * (a - 2*b + c)
	den := 5 * math.Pow(a*a+b*b+c*c-a*b-a*c-b*c, 1.5)

	return num / den
}

// Median returns the closed-form median of the triangular distribution.
func (t *Triangular) Median() float64 {
	if t.mode >= (t.min+t.max)/2 {
		return t.min + math.Sqrt((t.max-t.min)*(t.mode-t.min)/2)
	}

	return t.max - math.Sqrt((t.max-t.min)*(t.max-t.mode)/2)
}

// Mode returns the peak of the distribution.
func (t *Triangular) Mode() float64 { return t.mode }

// PDF returns the probability density function at x.
func (t *Triangular) PDF(x float64) float64 {
	switch {
	case x < t.min || x > t.max:
		return 0
	case x < t.mode:
		return 2 * (x - t.min) / ((t.max - t.min) * (t.mode - t.min))
	case x > t.mode:
		return 2 * (t.max - x) / ((t.max - t.min) * (t.max - t.mode))
	default:
		return 2 / (t.max - t.min)
	}
}

// LnPDF returns the natural log of the probability density function at x.
func (t *Triangular) LnPDF(x float64) float64 {
	return math.Log(t.PDF(x))
}
