package statkit

import (
	"math"

	"github.com/hupe1980/statkit/internal/order"
)

// Min returns the smallest value in data, or NaN if data is empty or
// contains a NaN.
func Min(data []float64) float64 {
	return order.MinOf(data)
}

// Max returns the largest value in data, or NaN if data is empty or
// contains a NaN.
func Max(data []float64) float64 {
	return order.MaxOf(data)
}

// AbsMin returns the smallest absolute value in data, or NaN if data is
// empty or contains a NaN.
func AbsMin(data []float64) float64 {
	return order.AbsMinOf(data)
}

// AbsMax returns the largest absolute value in data, or NaN if data is
// empty or contains a NaN.
func AbsMax(data []float64) float64 {
	return order.AbsMaxOf(data)
}

// Mean returns the arithmetic mean of data, or NaN if data is empty.
//
// The mean is accumulated incrementally (Welford style) instead of as
// sum/count, which avoids cancellation on large sums of large-magnitude
// values.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	var acc, m float64
	for _, x := range data {
		m++
		acc += (x - acc) / m
	}

	return acc
}

// GeometricMean returns the geometric mean of data, or NaN if data is empty.
// Any negative element makes the result NaN, since the logarithm is
// undefined there.
func GeometricMean(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	var sum float64
	for _, x := range data {
		if x < 0 {
			sum = math.NaN()
		} else {
			sum += math.Log(x)
		}
	}

	return math.Exp(sum / float64(len(data)))
}

// HarmonicMean returns the harmonic mean of data, or NaN if data is empty.
// Any negative element makes the result NaN.
func HarmonicMean(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	var sum float64
	for _, x := range data {
		if x < 0 {
			sum = math.NaN()
		} else {
			sum += 1 / x
		}
	}

	return float64(len(data)) / sum
}

// QuadraticMean returns the quadratic mean (root mean square) of data, or
// NaN if data is empty. Uses the same incremental accumulation as Mean,
// applied to squared values.
func QuadraticMean(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	var acc, m float64
	for _, x := range data {
		m++
		acc += (x*x - acc) / m
	}

	return math.Sqrt(acc)
}
