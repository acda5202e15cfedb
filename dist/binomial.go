package dist

import (
	"math"

	"github.com/hupe1980/statkit/random"
)

// Binomial is the binomial distribution counting successes in n independent
// trials with success probability p.
type Binomial struct {
	p float64
	n int64
}

// NewBinomial constructs a binomial distribution. Fails if p is NaN or
// outside [0, 1], or if n is negative.
func NewBinomial(p float64, n int64) (*Binomial, error) {
	if math.IsNaN(p) || p < 0 || p > 1 || n < 0 {
		return nil, &ParamError{Dist: "binomial", Reason: "p must be in [0, 1] and n non-negative"}
	}

	return &Binomial{p: p, n: n}, nil
}

// Sample draws a binomial variate from src as the sum of n Bernoulli draws.
func (b *Binomial) Sample(src random.Source) float64 {
	var successes float64
	for i := int64(0); i < b.n; i++ {
		if src.Float64() < b.p {
			successes++
		}
	}

	return successes
}

// CDF returns the cumulative distribution function at x by summing the mass
// of 0..floor(x). The support is finite, so the sum is exact.
func (b *Binomial) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x >= float64(b.n) {
		return 1
	}

	var sum float64
	for k := int64(0); k <= int64(math.Floor(x)); k++ {
		sum += b.PMF(k)
	}

	return sum
}

// Min returns the lower bound of the support, 0.
func (b *Binomial) Min() float64 { return 0 }

// Max returns the upper bound of the support, n.
func (b *Binomial) Max() float64 { return float64(b.n) }

// Mean returns n * p.
func (b *Binomial) Mean() float64 { return float64(b.n) * b.p }

// Variance returns n * p * (1 - p).
func (b *Binomial) Variance() float64 { return float64(b.n) * b.p * (1 - b.p) }

// StdDev returns sqrt(n * p * (1 - p)).
func (b *Binomial) StdDev() float64 { return math.Sqrt(b.Variance()) }

// Skewness returns (1 - 2p) / sqrt(n * p * (1 - p)).
func (b *Binomial) Skewness() float64 {
	return (1 - 2*b.p) / math.Sqrt(float64(b.n)*b.p*(1-b.p))
}

// Median returns floor(n * p), the standard approximation.
func (b *Binomial) Median() float64 { return math.Floor(float64(b.n) * b.p) }

// Mode returns floor((n + 1) * p), with the degenerate p == 0 and p == 1
// cases pinned to 0 and n.
func (b *Binomial) Mode() float64 {
	switch {
	case b.p == 0:
		return 0
	case b.p == 1:
		return float64(b.n)
	default:
		return math.Floor(float64(b.n+1) * b.p)
	}
}

// PMF returns C(n, k) * p^k * (1-p)^(n-k) for k in [0, n] and 0 otherwise.
func (b *Binomial) PMF(k int64) float64 {
	if k < 0 || k > b.n {
		return 0
	}
	if b.p == 0 {
		if k == 0 {
			return 1
		}
		return 0
	}
	if b.p == 1 {
		if k == b.n {
			return 1
		}
		return 0
	}

	return math.Exp(lnChoose(b.n, k) +
		float64(k)*math.Log(b.p) +
		float64(b.n-k)*math.Log(1-b.p))
}

// LnPMF returns the natural log of PMF(k).
func (b *Binomial) LnPMF(k int64) float64 {
	if k < 0 || k > b.n {
		return math.Inf(-1)
	}
	if b.p == 0 || b.p == 1 {
		return math.Log(b.PMF(k))
	}

	return lnChoose(b.n, k) +
		float64(k)*math.Log(b.p) +
		float64(b.n-k)*math.Log(1-b.p)
}

// lnChoose returns ln(C(n, k)) via the log-gamma function.
func lnChoose(n, k int64) float64 {
	return lnFactorial(n) - lnFactorial(k) - lnFactorial(n-k)
}

// lnFactorial returns ln(n!).
func lnFactorial(n int64) float64 {
	v, _ := math.Lgamma(float64(n) + 1)
	return v
}
