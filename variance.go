package statkit

import "math"

const mismatchedLengths = "statkit: paired slices must be the same length"

// Variance returns the unbiased sample variance of data (divisor n-1), or
// NaN if data has fewer than two elements.
//
// The accumulation is a single pass over the data: a running sum t plus a
// quadratic correction term diff = (i+1)*x - t, which keeps the computation
// stable without a separate mean pass.
func Variance(data []float64) float64 {
	if len(data) <= 1 {
		return math.NaN()
	}

	return sumSquaredDeviations(data) / float64(len(data)-1)
}

// PopulationVariance returns the population variance of data (divisor n),
// or NaN if data is empty.
func PopulationVariance(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	return sumSquaredDeviations(data) / float64(len(data))
}

// StdDev returns the unbiased sample standard deviation of data, or NaN if
// data has fewer than two elements.
func StdDev(data []float64) float64 {
	return math.Sqrt(Variance(data))
}

// PopulationStdDev returns the population standard deviation of data, or
// NaN if data is empty.
func PopulationStdDev(data []float64) float64 {
	return math.Sqrt(PopulationVariance(data))
}

func sumSquaredDeviations(data []float64) float64 {
	var variance float64
	t := data[0]
	for i := 1; i < len(data); i++ {
		x := data[i]
		t += x
		diff := float64(i+1)*x - t
		variance += (diff * diff) / float64((i+1)*i)
	}

	return variance
}

// Covariance returns the unbiased sample covariance between data and other
// (divisor n-1), or NaN if the inputs have fewer than two elements.
// Panics if the slices differ in length; that is a caller bug.
func Covariance(data, other []float64) float64 {
	if len(data) != len(other) {
		panic(mismatchedLengths)
	}
	if len(data) <= 1 {
		return math.NaN()
	}

	return crossDeviations(data, other) / float64(len(data)-1)
}

// PopulationCovariance returns the population covariance between data and
// other (divisor n), or NaN if the inputs are empty. Panics if the slices
// differ in length.
func PopulationCovariance(data, other []float64) float64 {
	if len(data) != len(other) {
		panic(mismatchedLengths)
	}
	if len(data) == 0 {
		return math.NaN()
	}

	return crossDeviations(data, other) / float64(len(data))
}

// crossDeviations is two-pass: means first, then the cross-product sum.
func crossDeviations(data, other []float64) float64 {
	mean1 := Mean(data)
	mean2 := Mean(other)

	var sum float64
	for i := range data {
		sum += (data[i] - mean1) * (other[i] - mean2)
	}

	return sum
}
