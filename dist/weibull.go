package dist

import (
	"math"

	"github.com/hupe1980/statkit/random"
)

// eulerMascheroni is the Euler-Mascheroni constant, used by the Weibull
// entropy closed form.
const eulerMascheroni = 0.5772156649015328606

// Weibull is the Weibull distribution with shape k and scale lambda.
type Weibull struct {
	shape float64
	scale float64
}

// NewWeibull constructs a Weibull distribution. Fails if either parameter
// is NaN or non-positive.
func NewWeibull(shape, scale float64) (*Weibull, error) {
	if math.IsNaN(shape) || math.IsNaN(scale) || shape <= 0 || scale <= 0 {
		return nil, &ParamError{Dist: "weibull", Reason: "shape and scale must be positive"}
	}

	return &Weibull{shape: shape, scale: scale}, nil
}

// Sample draws a Weibull variate from src by inverting the CDF.
func (w *Weibull) Sample(src random.Source) float64 {
	return w.scale * math.Pow(-math.Log(1-src.Float64()), 1/w.shape)
}

// CDF returns 1 - exp(-(x/scale)^shape) for x >= 0 and 0 otherwise.
func (w *Weibull) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}

	return 1 - math.Exp(-math.Pow(x/w.scale, w.shape))
}

// Min returns the lower bound of the support, 0.
func (w *Weibull) Min() float64 { return 0 }

// Max returns the upper bound of the support, +Inf.
func (w *Weibull) Max() float64 { return math.Inf(1) }

// Mean returns scale * Gamma(1 + 1/shape).
func (w *Weibull) Mean() float64 {
	return w.scale * math.Gamma(1+1/w.shape)
}

// Variance returns scale^2 * (Gamma(1 + 2/shape) - Gamma(1 + 1/shape)^2).
func (w *Weibull) Variance() float64 {
	g1 := math.Gamma(1 + 1/w.shape)
	g2 := math.Gamma(1 + 2/w.shape)

	return w.scale * w.scale * (g2 - g1*g1)
}

// StdDev returns the square root of the variance.
func (w *Weibull) StdDev() float64 { return math.Sqrt(w.Variance()) }

// Entropy returns gamma*(1 - 1/shape) + ln(scale/shape) + 1, with gamma the
// Euler-Mascheroni constant.
func (w *Weibull) Entropy() float64 {
	return eulerMascheroni*(1-1/w.shape) + math.Log(w.scale/w.shape) + 1
}

// Skewness returns the closed-form skewness of the Weibull distribution.
func (w *Weibull) Skewness() float64 {
	mu := w.Mean()
	sigma := w.StdDev()
	g3 := math.Gamma(1 + 3/w.shape)

	return (g3*w.scale*w.scale*w.scale - 3*mu*sigma*sigma - mu*mu*mu) /
		(sigma * sigma * sigma)
}

// Median returns scale * ln(2)^(1/shape).
func (w *Weibull) Median() float64 {
	return w.scale * math.Pow(math.Ln2, 1/w.shape)
}

// Mode returns scale * ((shape-1)/shape)^(1/shape) for shape > 1 and 0
// otherwise.
func (w *Weibull) Mode() float64 {
	if w.shape <= 1 {
		return 0
	}

	return w.scale * math.Pow((w.shape-1)/w.shape, 1/w.shape)
}

// PDF returns the probability density function at x; 0 for x < 0.
func (w *Weibull) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}

	r := x / w.scale

	return w.shape / w.scale * math.Pow(r, w.shape-1) * math.Exp(-math.Pow(r, w.shape))
}

// LnPDF returns the natural log of the probability density function at x.
func (w *Weibull) LnPDF(x float64) float64 {
	return math.Log(w.PDF(x))
}
