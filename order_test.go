package statkit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/statkit"
)

func TestOrderStatistic(t *testing.T) {
	data := []float64{-1.0, 5.0, 0.0, -3.0, 10.0, -0.5, 4.0, 1.0, 6.0}

	tests := []struct {
		name     string
		k        int
		expected float64
	}{
		{"First", 1, -3.0},
		{"Second", 2, -1.0},
		{"Third", 3, -0.5},
		{"Seventh", 7, 5.0},
		{"Eighth", 8, 6.0},
		{"Last", 9, 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := append([]float64(nil), data...)
			assert.Equal(t, tt.expected, statkit.OrderStatistic(buf, tt.k))
		})
	}

	buf := append([]float64(nil), data...)
	assert.True(t, math.IsNaN(statkit.OrderStatistic(buf, 0)))
	assert.True(t, math.IsNaN(statkit.OrderStatistic(buf, 10)))
	assert.True(t, math.IsNaN(statkit.OrderStatistic(nil, 1)))
}

func TestOrderStatisticMatchesMinMax(t *testing.T) {
	data := []float64{3.0, -2.0, 7.0, 7.0, 0.0}

	buf := append([]float64(nil), data...)
	assert.Equal(t, statkit.Min(data), statkit.OrderStatistic(buf, 1))

	buf = append([]float64(nil), data...)
	assert.Equal(t, statkit.Max(data), statkit.OrderStatistic(buf, len(data)))
}

func TestOrderStatisticChecked(t *testing.T) {
	_, err := statkit.OrderStatisticChecked(nil, 1)
	require.ErrorIs(t, err, statkit.ErrEmptyData)

	_, err = statkit.OrderStatisticChecked([]float64{1, 2}, 3)
	require.ErrorIs(t, err, statkit.ErrOutOfRange)

	v, err := statkit.OrderStatisticChecked([]float64{2.0, 1.0}, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestMedian(t *testing.T) {
	even := []float64{-1.0, 5.0, 0.0, -3.0, 10.0, -0.5, 4.0, 0.2, 1.0, 6.0}
	assert.Equal(t, 0.6, statkit.Median(even))

	odd := []float64{-1.0, 5.0, 0.0, -3.0, 10.0, -0.5, 4.0, 0.2, 1.0}
	assert.Equal(t, 0.2, statkit.Median(odd))

	assert.True(t, math.IsNaN(statkit.Median(nil)))
}

func TestMedianLongConstantSequence(t *testing.T) {
	even := make([]float64, 100000)
	for i := range even {
		even[i] = 2.0
	}
	assert.Equal(t, 2.0, statkit.Median(even))

	odd := make([]float64, 100001)
	for i := range odd {
		odd[i] = 2.0
	}
	assert.Equal(t, 2.0, statkit.Median(odd))
}

func TestMedianRobustOnInfinities(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		expected float64
	}{
		{"InfLast", []float64{2.0, math.Inf(-1), math.Inf(1)}, 2.0},
		{"InfMiddle", []float64{math.Inf(-1), 2.0, math.Inf(1)}, 2.0},
		{"InfFirst", []float64{math.Inf(-1), math.Inf(1), 2.0}, 2.0},
		{"EvenStraddle", []float64{math.Inf(-1), 2.0, 3.0, math.Inf(1)}, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, statkit.Median(tt.data))
		})
	}
}

func TestMedianChecked(t *testing.T) {
	_, err := statkit.MedianChecked(nil)
	require.ErrorIs(t, err, statkit.ErrEmptyData)

	v, err := statkit.MedianChecked([]float64{3.0, 1.0, 2.0})
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestQuantile(t *testing.T) {
	data := []float64{-1.0, 5.0, 0.0, -3.0, 10.0, -0.5, 4.0, 0.2, 1.0, 6.0}

	tests := []struct {
		name     string
		tau      float64
		expected float64
	}{
		{"Zero", 0.0, -3.0},
		{"One", 1.0, 10.0},
		{"Half", 0.5, 3.0 / 5.0},
		{"Fifth", 0.2, -4.0 / 5.0},
		{"PointSeven", 0.7, 137.0 / 30.0},
		{"NearZero", 0.01, -3.0},
		{"NearOne", 0.99, 10.0},
		{"PointFiveTwo", 0.52, 287.0 / 375.0},
		{"Fractional", 0.325, -37.0 / 240.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := append([]float64(nil), data...)
			assert.InDelta(t, tt.expected, statkit.Quantile(buf, tt.tau), 1e-15)
		})
	}

	buf := append([]float64(nil), data...)
	assert.True(t, math.IsNaN(statkit.Quantile(buf, -1.0)))
	assert.True(t, math.IsNaN(statkit.Quantile(buf, 2.0)))
	assert.True(t, math.IsNaN(statkit.Quantile(nil, 0.5)))
}

func TestQuantileChecked(t *testing.T) {
	_, err := statkit.QuantileChecked(nil, 0.5)
	require.ErrorIs(t, err, statkit.ErrEmptyData)

	_, err = statkit.QuantileChecked([]float64{1.0}, 1.5)
	require.ErrorIs(t, err, statkit.ErrOutOfRange)

	v, err := statkit.QuantileChecked([]float64{1.0, 2.0, 3.0}, 0.0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestPercentile(t *testing.T) {
	data := []float64{1.0, 5.0, 3.0, 4.0, 10.0, 9.0, 6.0, 7.0, 8.0, 2.0}

	buf := append([]float64(nil), data...)
	assert.Equal(t, 1.0, statkit.Percentile(buf, 0))

	buf = append([]float64(nil), data...)
	assert.Equal(t, 5.5, statkit.Percentile(buf, 50))

	buf = append([]float64(nil), data...)
	assert.Equal(t, 10.0, statkit.Percentile(buf, 100))

	buf = append([]float64(nil), data...)
	assert.True(t, math.IsNaN(statkit.Percentile(buf, 105)))
}

func TestQuartiles(t *testing.T) {
	data := []float64{2.0, 1.0, 3.0, 4.0}

	buf := append([]float64(nil), data...)
	assert.InDelta(t, 1.416666666666666, statkit.LowerQuartile(buf), 1e-15)

	buf = append([]float64(nil), data...)
	assert.InDelta(t, 3.5833333333333333, statkit.UpperQuartile(buf), 1e-15)

	buf = append([]float64(nil), data...)
	assert.InDelta(t, 2.166666666666667, statkit.InterquartileRange(buf), 1e-14)
}

func TestOrderOperationsAreDestructive(t *testing.T) {
	original := []float64{0.0, 3.0, -2.0, 5.0, 1.0, -4.0, 2.0, 6.0, -1.0, 4.0, 7.0}
	data := append([]float64(nil), original...)

	statkit.Median(data)

	assert.NotEqual(t, original, data)
	assert.ElementsMatch(t, original, data)
}
