package statkit

import (
	"math"

	"github.com/hupe1980/statkit/internal/order"
)

// OrderStatistic returns the k-th smallest value in data, with k one-based
// in [1, len(data)]. Returns NaN if k is outside that range or data is
// empty.
//
// DESTRUCTIVE: reorders data as a side effect.
func OrderStatistic(data []float64, k int) float64 {
	n := len(data)
	switch {
	case k == 1:
		return Min(data)
	case k == n && n > 0:
		return Max(data)
	case k < 1 || k > n:
		return math.NaN()
	default:
		return order.SelectInPlace(data, k-1)
	}
}

// OrderStatisticChecked is the error-returning variant of OrderStatistic.
func OrderStatisticChecked(data []float64, k int) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyData
	}
	if k < 1 || k > len(data) {
		return 0, ErrOutOfRange
	}

	return OrderStatistic(data, k), nil
}

// Median returns the median of data, or NaN if data is empty. For even
// lengths it averages the two central order statistics. Infinities follow
// ordinary IEEE comparison and arithmetic: same-signed central infinities
// average to that infinity, mixed ones to NaN.
//
// DESTRUCTIVE: reorders data as a side effect.
func Median(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	k := len(data) / 2
	if len(data)%2 != 0 {
		return order.SelectInPlace(data, k)
	}

	return (order.SelectInPlace(data, k-1) + order.SelectInPlace(data, k)) / 2
}

// MedianChecked is the error-returning variant of Median.
func MedianChecked(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyData
	}

	return Median(data), nil
}

// Quantile estimates the tau-th quantile of data, the value where the
// empirical cumulative distribution crosses tau. Uses the Hyndman-Fan type 8
// estimator: h = (n + 1/3)*tau + 1/3, linearly interpolating between the
// order statistics bracketing h. Returns NaN if tau is outside [0, 1] or
// data is empty.
//
// DESTRUCTIVE: reorders data as a side effect.
func Quantile(data []float64, tau float64) float64 {
	if !(tau >= 0 && tau <= 1) || len(data) == 0 {
		return math.NaN()
	}

	h := (float64(len(data)) + 1.0/3.0)*tau + 1.0/3.0
	hf := int(h)

	if hf <= 0 || tau == 0 {
		return Min(data)
	}
	if hf >= len(data) || tau == 1 {
		return Max(data)
	}

	a := order.SelectInPlace(data, hf-1)
	b := order.SelectInPlace(data, hf)

	return a + (h-float64(hf))*(b-a)
}

// QuantileChecked is the error-returning variant of Quantile.
func QuantileChecked(data []float64, tau float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyData
	}
	if !(tau >= 0 && tau <= 1) {
		return 0, ErrOutOfRange
	}

	return Quantile(data, tau), nil
}

// Percentile estimates the p-th percentile of data, with p an integer in
// [0, 100]. Use Quantile for non-integer percentiles. Returns NaN if p is
// outside the range or data is empty.
//
// DESTRUCTIVE: reorders data as a side effect.
func Percentile(data []float64, p int) float64 {
	return Quantile(data, float64(p)/100)
}

// LowerQuartile estimates the first quartile of data, or NaN if data is
// empty.
//
// DESTRUCTIVE: reorders data as a side effect.
func LowerQuartile(data []float64) float64 {
	return Quantile(data, 0.25)
}

// UpperQuartile estimates the third quartile of data, or NaN if data is
// empty.
//
// DESTRUCTIVE: reorders data as a side effect.
func UpperQuartile(data []float64) float64 {
	return Quantile(data, 0.75)
}

// InterquartileRange estimates the difference between the third and first
// quartiles of data, or NaN if data is empty.
//
// DESTRUCTIVE: reorders data as a side effect.
func InterquartileRange(data []float64) float64 {
	return UpperQuartile(data) - LowerQuartile(data)
}
