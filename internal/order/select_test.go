package order

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/statkit/testutil"
)

func TestMinOfMaxOf(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		min, max float64
	}{
		{"Simple", []float64{-1.0, 5.0, 0.0, -3.0, 10.0, -0.5, 4.0}, -3.0, 10.0},
		{"Single", []float64{2.5}, 2.5, 2.5},
		{"Duplicates", []float64{1.0, 1.0, 1.0}, 1.0, 1.0},
		{"Infinities", []float64{math.Inf(-1), 0, math.Inf(1)}, math.Inf(-1), math.Inf(1)},
		{"MixedZeros", []float64{0.0, math.Copysign(0, -1)}, 0.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.min, MinOf(tt.data))
			assert.Equal(t, tt.max, MaxOf(tt.data))
		})
	}
}

func TestMinOfMaxOfEmpty(t *testing.T) {
	assert.True(t, math.IsNaN(MinOf(nil)))
	assert.True(t, math.IsNaN(MaxOf(nil)))
	assert.True(t, math.IsNaN(AbsMinOf(nil)))
	assert.True(t, math.IsNaN(AbsMaxOf(nil)))
}

func TestMinOfMaxOfNaNPropagation(t *testing.T) {
	// A NaN anywhere poisons the scan; nothing compares less than NaN.
	data := []float64{3.0, math.NaN(), -7.0}
	assert.True(t, math.IsNaN(MinOf(data)))
	assert.True(t, math.IsNaN(MaxOf(data)))
}

func TestAbsMinOfAbsMaxOf(t *testing.T) {
	data := []float64{-1.0, 5.0, 0.5, -3.0, -10.0}
	assert.Equal(t, 0.5, AbsMinOf(data))
	assert.Equal(t, 10.0, AbsMaxOf(data))
}

func TestSelectInPlaceShort(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		rank     int
		expected float64
	}{
		{"PairLow", []float64{2.0, 1.0}, 0, 1.0},
		{"PairHigh", []float64{2.0, 1.0}, 1, 2.0},
		{"TripleMiddle", []float64{0.0, 3.0, -2.0}, 1, 0.0},
		{"Duplicates", []float64{2.0, 2.0, 2.0, 1.0}, 2, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := append([]float64(nil), tt.data...)
			assert.Equal(t, tt.expected, SelectInPlace(buf, tt.rank))
		})
	}
}

func TestSelectInPlaceEveryRank(t *testing.T) {
	rng := testutil.NewRNG(42)

	for _, n := range []int{1, 2, 3, 5, 11, 64, 257} {
		data := rng.UniformSlice(n, -100, 100)
		// Inject duplicates so partitions see repeated pivots.
		for i := 0; i+3 < n; i += 4 {
			data[i+3] = data[i]
		}

		want := append([]float64(nil), data...)
		sort.Float64s(want)

		for rank := 0; rank < n; rank++ {
			buf := append([]float64(nil), data...)
			got := SelectInPlace(buf, rank)
			require.Equal(t, want[rank], got, "n=%d rank=%d", n, rank)
			// The contract also pins position rank for interior ranks.
			if rank > 0 && rank < n-1 {
				require.Equal(t, want[rank], buf[rank], "n=%d rank=%d buffer position", n, rank)
			}
		}
	}
}

func TestSelectInPlaceConstantSequence(t *testing.T) {
	data := make([]float64, 10000)
	for i := range data {
		data[i] = 2.0
	}

	assert.Equal(t, 2.0, SelectInPlace(data, 5000))
}

func TestSelectInPlaceInfinities(t *testing.T) {
	data := []float64{math.Inf(1), 2.0, math.Inf(-1), 3.0, 1.0}
	assert.Equal(t, 2.0, SelectInPlace(data, 2))
}
