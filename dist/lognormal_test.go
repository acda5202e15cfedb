package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/statkit/random"
)

func TestNewLogNormal(t *testing.T) {
	for _, c := range [][2]float64{
		{math.NaN(), 1.0},
		{0.0, math.NaN()},
		{0.0, 0.0},
		{0.0, -2.0},
	} {
		_, err := NewLogNormal(c[0], c[1])
		require.ErrorIs(t, err, ErrInvalidParams, "mu=%v sigma=%v", c[0], c[1])
	}

	l, err := NewLogNormal(0.0, 1.0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, l.Median())
}

func TestLogNormalQueries(t *testing.T) {
	l, err := NewLogNormal(1.0, 0.5)
	require.NoError(t, err)

	assert.InDelta(t, math.Exp(1.125), l.Mean(), 1e-12)
	assert.InDelta(t, (math.Exp(0.25)-1)*math.Exp(2.25), l.Variance(), 1e-12)
	assert.InDelta(t, math.E, l.Median(), 1e-12)
	assert.InDelta(t, math.Exp(0.75), l.Mode(), 1e-12)
	assert.InDelta(t, 1.0+0.5+math.Log(0.5*math.Sqrt(2*math.Pi)), l.Entropy(), 1e-12)
	assert.InDelta(t, (math.Exp(0.25)+2)*math.Sqrt(math.Exp(0.25)-1), l.Skewness(), 1e-12)
	assert.Equal(t, 0.0, l.Min())
	assert.True(t, math.IsInf(l.Max(), 1))

	// Support ends at zero.
	assert.Equal(t, 0.0, l.PDF(0.0))
	assert.Equal(t, 0.0, l.PDF(-1.0))
	assert.True(t, math.IsInf(l.LnPDF(0.0), -1))
	assert.Equal(t, 0.0, l.CDF(0.0))

	// Median is the CDF midpoint.
	assert.InDelta(t, 0.5, l.CDF(l.Median()), 1e-12)
}

func TestLogNormalSample(t *testing.T) {
	l, err := NewLogNormal(0.5, 0.25)
	require.NoError(t, err)

	src := random.New(31)

	// The sample median estimates exp(mu) without the heavy-tail noise that
	// makes mean comparisons flaky.
	const n = 20001
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = l.Sample(src)
		require.Greater(t, samples[i], 0.0)
	}

	var below int
	for _, x := range samples {
		if x < l.Median() {
			below++
		}
	}

	assert.InDelta(t, 0.5, float64(below)/n, 0.02)
}
