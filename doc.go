// Package statkit provides descriptive statistics, order statistics, and
// ranking over float64 slices, plus closed-form probability distributions.
//
// # Descriptive statistics
//
// One-pass, numerically stable accumulators over caller-owned data:
//
//	data := []float64{-1.0, 5.0, 0.0, -3.0, 10.0}
//	m := statkit.Mean(data)
//	v := statkit.Variance(data)
//
// # Order statistics
//
// Median, quantiles, percentiles and ranks are built on an in-place
// quickselect and dual-array quicksort core. These operations are
// DESTRUCTIVE: they reorder the input slice as a side effect. Copy first if
// the original order matters:
//
//	data := []float64{-1.0, 5.0, 0.0, -3.0, 10.0, -0.5, 4.0, 0.2, 1.0, 6.0}
//	med := statkit.Median(data) // 0.6; data is now reordered
//
// # Failure signaling
//
// Hot numeric paths signal "undefined for this input" (empty data,
// out-of-range quantile or order) by returning IEEE NaN rather than an
// error; check with math.IsNaN. A checked tier (MedianChecked,
// QuantileChecked, OrderStatisticChecked) returns errors instead for callers
// that prefer explicit plumbing. Mismatched-length paired inputs (Covariance,
// the sort engines) are caller bugs and panic.
//
// # Distributions
//
// The dist subpackage provides immutable distribution value objects with
// validating constructors and closed-form queries:
//
//	u, err := dist.NewUniform(0, 1)
//	// u.Mean() == 0.5, u.PDF(0.5) == 1.0, u.CDF(0.5) == 0.5
//
// Sampling draws from an injected random.Source, so callers control seeding
// and the generator algorithm.
//
// # Concurrency
//
// All operations are synchronous pure functions over caller-owned buffers.
// The library holds no shared mutable state; callers must not share one
// buffer across goroutines during an in-place operation.
package statkit
