package dist

import (
	"math"

	"github.com/hupe1980/statkit/random"
)

// LogNormal is the log-normal distribution: exp(N) for a normal N with
// location mu and scale sigma.
type LogNormal struct {
	mu    float64
	sigma float64
}

// NewLogNormal constructs a log-normal distribution. Fails if either
// parameter is NaN or sigma <= 0.
func NewLogNormal(mu, sigma float64) (*LogNormal, error) {
	if math.IsNaN(mu) || math.IsNaN(sigma) || sigma <= 0 {
		return nil, &ParamError{Dist: "log-normal", Reason: "sigma must be positive and no parameter may be NaN"}
	}

	return &LogNormal{mu: mu, sigma: sigma}, nil
}

// Sample draws a log-normal variate from src by exponentiating a normal
// draw.
func (l *LogNormal) Sample(src random.Source) float64 {
	n := Normal{mean: l.mu, stdDev: l.sigma}
	return math.Exp(n.Sample(src))
}

// CDF returns the cumulative distribution function at x; 0 for x <= 0.
func (l *LogNormal) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}

	return 0.5 * math.Erfc(-(math.Log(x)-l.mu)/(l.sigma*math.Sqrt2))
}

// Min returns the lower bound of the support, 0.
func (l *LogNormal) Min() float64 { return 0 }

// Max returns the upper bound of the support, +Inf.
func (l *LogNormal) Max() float64 { return math.Inf(1) }

// Mean returns exp(mu + sigma^2/2).
func (l *LogNormal) Mean() float64 {
	return math.Exp(l.mu + l.sigma*l.sigma/2)
}

// Variance returns (exp(sigma^2) - 1) * exp(2*mu + sigma^2).
func (l *LogNormal) Variance() float64 {
	s2 := l.sigma * l.sigma
	return (math.Exp(s2) - 1) * math.Exp(2*l.mu+s2)
}

// StdDev returns the square root of the variance.
func (l *LogNormal) StdDev() float64 { return math.Sqrt(l.Variance()) }

// Entropy returns mu + 1/2 + ln(sigma * sqrt(2*pi)).
func (l *LogNormal) Entropy() float64 {
	return l.mu + 0.5 + math.Log(l.sigma*math.Sqrt(2*math.Pi))
}

// Skewness returns (exp(sigma^2) + 2) * sqrt(exp(sigma^2) - 1).
func (l *LogNormal) Skewness() float64 {
	es2 := math.Exp(l.sigma * l.sigma)
	return (es2 + 2) * math.Sqrt(es2-1)
}

// Median returns exp(mu).
func (l *LogNormal) Median() float64 { return math.Exp(l.mu) }

// Mode returns exp(mu - sigma^2).
func (l *LogNormal) Mode() float64 { return math.Exp(l.mu - l.sigma*l.sigma) }

// PDF returns the probability density function at x; 0 for x <= 0.
func (l *LogNormal) PDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	d := (math.Log(x) - l.mu) / l.sigma

	return math.Exp(-0.5*d*d) / (x * l.sigma * math.Sqrt(2*math.Pi))
}

// LnPDF returns the natural log of the probability density function at x;
// -Inf for x <= 0.
func (l *LogNormal) LnPDF(x float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	d := (math.Log(x) - l.mu) / l.sigma

	return -0.5*d*d - math.Log(x*l.sigma*math.Sqrt(2*math.Pi))
}
