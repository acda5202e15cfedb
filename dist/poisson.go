package dist

import (
	"math"

	"github.com/hupe1980/statkit/random"
)

// Poisson is the Poisson distribution with rate lambda.
type Poisson struct {
	lambda float64
}

// NewPoisson constructs a Poisson distribution. Fails if lambda is NaN or
// lambda <= 0.
func NewPoisson(lambda float64) (*Poisson, error) {
	if math.IsNaN(lambda) || lambda <= 0 {
		return nil, &ParamError{Dist: "poisson", Reason: "lambda must be positive"}
	}

	return &Poisson{lambda: lambda}, nil
}

// Sample draws a Poisson variate from src using Knuth's multiplication
// method. Runtime grows linearly with lambda; fine for the moderate rates
// closed-form queries target.
func (p *Poisson) Sample(src random.Source) float64 {
	limit := math.Exp(-p.lambda)
	prod := src.Float64()

	var k float64
	for prod >= limit {
		prod *= src.Float64()
		k++
	}

	return k
}

// CDF returns the cumulative distribution function at x by summing the mass
// of 0..floor(x).
func (p *Poisson) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}

	var sum float64
	for k := int64(0); k <= int64(math.Floor(x)); k++ {
		sum += p.PMF(k)
	}

	return sum
}

// Min returns the lower bound of the support, 0.
func (p *Poisson) Min() float64 { return 0 }

// Max returns the upper bound of the support, +Inf.
func (p *Poisson) Max() float64 { return math.Inf(1) }

// Mean returns lambda.
func (p *Poisson) Mean() float64 { return p.lambda }

// Variance returns lambda.
func (p *Poisson) Variance() float64 { return p.lambda }

// StdDev returns sqrt(lambda).
func (p *Poisson) StdDev() float64 { return math.Sqrt(p.lambda) }

// Entropy returns the standard large-lambda approximation
// 0.5*ln(2*pi*e*lambda) - 1/(12*lambda) - 1/(24*lambda^2).
func (p *Poisson) Entropy() float64 {
	return 0.5*math.Log(2*math.Pi*math.E*p.lambda) -
		1/(12*p.lambda) -
		1/(24*p.lambda*p.lambda)
}

// Skewness returns 1 / sqrt(lambda).
func (p *Poisson) Skewness() float64 { return 1 / math.Sqrt(p.lambda) }

// Median returns the standard approximation
// floor(lambda + 1/3 - 0.02/lambda).
func (p *Poisson) Median() float64 {
	return math.Floor(p.lambda + 1.0/3.0 - 0.02/p.lambda)
}

// Mode returns floor(lambda).
func (p *Poisson) Mode() float64 { return math.Floor(p.lambda) }

// PMF returns exp(-lambda) * lambda^k / k! for k >= 0 and 0 otherwise.
func (p *Poisson) PMF(k int64) float64 {
	if k < 0 {
		return 0
	}

	return math.Exp(p.LnPMF(k))
}

// LnPMF returns the natural log of PMF(k), computed via the log-gamma
// function to avoid overflow in k!.
func (p *Poisson) LnPMF(k int64) float64 {
	if k < 0 {
		return math.Inf(-1)
	}

	return -p.lambda + float64(k)*math.Log(p.lambda) - lnFactorial(k)
}
