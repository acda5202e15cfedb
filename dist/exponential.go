package dist

import (
	"math"

	"github.com/hupe1980/statkit/random"
)

// Exponential is the exponential distribution with rate parameter rate.
type Exponential struct {
	rate float64
}

// NewExponential constructs an exponential distribution. Fails if rate is
// NaN or rate <= 0.
func NewExponential(rate float64) (*Exponential, error) {
	if math.IsNaN(rate) || rate <= 0 {
		return nil, &ParamError{Dist: "exponential", Reason: "rate must be positive"}
	}

	return &Exponential{rate: rate}, nil
}

// Sample draws an exponential variate from src by inverting the CDF.
func (e *Exponential) Sample(src random.Source) float64 {
	return -math.Log(1-src.Float64()) / e.rate
}

// CDF returns 1 - exp(-rate*x) for x >= 0 and 0 otherwise.
func (e *Exponential) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}

	return 1 - math.Exp(-e.rate*x)
}

// Min returns the lower bound of the support, 0.
func (e *Exponential) Min() float64 { return 0 }

// Max returns the upper bound of the support, +Inf.
func (e *Exponential) Max() float64 { return math.Inf(1) }

// Mean returns 1 / rate.
func (e *Exponential) Mean() float64 { return 1 / e.rate }

// Variance returns 1 / rate^2.
func (e *Exponential) Variance() float64 { return 1 / (e.rate * e.rate) }

// StdDev returns 1 / rate.
func (e *Exponential) StdDev() float64 { return 1 / e.rate }

// Entropy returns 1 - ln(rate).
func (e *Exponential) Entropy() float64 { return 1 - math.Log(e.rate) }

// Skewness returns 2.
func (e *Exponential) Skewness() float64 { return 2 }

// Median returns ln(2) / rate.
func (e *Exponential) Median() float64 { return math.Ln2 / e.rate }

// Mode returns 0.
func (e *Exponential) Mode() float64 { return 0 }

// PDF returns rate * exp(-rate*x) for x >= 0 and 0 otherwise.
func (e *Exponential) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}

	return e.rate * math.Exp(-e.rate*x)
}

// LnPDF returns ln(rate) - rate*x for x >= 0 and -Inf otherwise.
func (e *Exponential) LnPDF(x float64) float64 {
	if x < 0 {
		return math.Inf(-1)
	}

	return math.Log(e.rate) - e.rate*x
}
