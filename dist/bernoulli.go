package dist

import (
	"math"

	"github.com/hupe1980/statkit/random"
)

// Bernoulli is the Bernoulli distribution with success probability p.
type Bernoulli struct {
	p float64
}

// NewBernoulli constructs a Bernoulli distribution. Fails if p is NaN or
// outside [0, 1].
func NewBernoulli(p float64) (*Bernoulli, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, &ParamError{Dist: "bernoulli", Reason: "p must be in [0, 1]"}
	}

	return &Bernoulli{p: p}, nil
}

// Sample draws 0 or 1 from src.
func (b *Bernoulli) Sample(src random.Source) float64 {
	if src.Float64() < b.p {
		return 1
	}

	return 0
}

// CDF returns 0 for x < 0, 1-p for 0 <= x < 1, and 1 for x >= 1.
func (b *Bernoulli) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	return 1 - b.p
}

// Min returns the lower bound of the support, 0.
func (b *Bernoulli) Min() float64 { return 0 }

// Max returns the upper bound of the support, 1.
func (b *Bernoulli) Max() float64 { return 1 }

// Mean returns p.
func (b *Bernoulli) Mean() float64 { return b.p }

// Variance returns p * (1 - p).
func (b *Bernoulli) Variance() float64 { return b.p * (1 - b.p) }

// StdDev returns sqrt(p * (1 - p)).
func (b *Bernoulli) StdDev() float64 { return math.Sqrt(b.Variance()) }

// Entropy returns -q*ln(q) - p*ln(p), with the 0*ln(0) terms taken as 0.
func (b *Bernoulli) Entropy() float64 {
	if b.p == 0 || b.p == 1 {
		return 0
	}
	q := 1 - b.p

	return -q*math.Log(q) - b.p*math.Log(b.p)
}

// Skewness returns (1 - 2p) / sqrt(p * (1 - p)). Infinite for degenerate p.
func (b *Bernoulli) Skewness() float64 {
	return (1 - 2*b.p) / math.Sqrt(b.p*(1-b.p))
}

// Median returns 0 for p < 1/2, 1 for p > 1/2, and 1/2 at p == 1/2.
func (b *Bernoulli) Median() float64 {
	switch {
	case b.p < 0.5:
		return 0
	case b.p > 0.5:
		return 1
	default:
		return 0.5
	}
}

// Mode returns the more likely outcome, 1 when p > 1/2 and 0 otherwise.
func (b *Bernoulli) Mode() float64 {
	if b.p > 0.5 {
		return 1
	}

	return 0
}

// PMF returns p for k == 1, 1-p for k == 0, and 0 otherwise.
func (b *Bernoulli) PMF(k int64) float64 {
	switch k {
	case 0:
		return 1 - b.p
	case 1:
		return b.p
	default:
		return 0
	}
}

// LnPMF returns the natural log of PMF(k).
func (b *Bernoulli) LnPMF(k int64) float64 {
	return math.Log(b.PMF(k))
}
