package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/statkit/random"
)

func TestNewTriangular(t *testing.T) {
	cases := [][3]float64{
		{math.NaN(), 1.0, 0.5},
		{0.0, math.NaN(), 0.5},
		{0.0, 1.0, math.NaN()},
		{0.0, 1.0, 2.0},  // mode above max
		{0.0, 1.0, -1.0}, // mode below min
		{1.0, 1.0, 1.0},  // degenerate support
	}
	for _, c := range cases {
		_, err := NewTriangular(c[0], c[1], c[2])
		require.ErrorIs(t, err, ErrInvalidParams, "min=%v max=%v mode=%v", c[0], c[1], c[2])
	}

	tri, err := NewTriangular(0.0, 1.0, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, tri.Mode())
}

func TestTriangularQueries(t *testing.T) {
	tri, err := NewTriangular(0.0, 4.0, 1.0)
	require.NoError(t, err)

	assert.InDelta(t, 5.0/3.0, tri.Mean(), 1e-15)
	// (a^2+b^2+c^2-ab-ac-bc)/18 with a=0, b=4, c=1
	assert.InDelta(t, 13.0/18.0, tri.Variance(), 1e-15)
	assert.Equal(t, 0.0, tri.Min())
	assert.Equal(t, 4.0, tri.Max())
	assert.InDelta(t, 0.5+math.Log(2), tri.Entropy(), 1e-15)

	assert.Equal(t, 0.0, tri.PDF(-0.5))
	assert.Equal(t, 0.0, tri.PDF(4.5))
	assert.Equal(t, 0.5, tri.PDF(1.0)) // peak: 2/(max-min)
	assert.InDelta(t, 2.0*0.5/(4.0*1.0), tri.PDF(0.5), 1e-15)
	assert.InDelta(t, 2.0*(4.0-3.0)/(4.0*3.0), tri.PDF(3.0), 1e-15)

	assert.Equal(t, 0.0, tri.CDF(0.0))
	assert.Equal(t, 1.0, tri.CDF(4.0))
	assert.InDelta(t, 0.25*0.25/(4.0*1.0), tri.CDF(0.25), 1e-15)
	assert.InDelta(t, 1.0-1.0/(4.0*3.0), tri.CDF(3.0), 1e-15)

	// Median sits where CDF crosses one half.
	assert.InDelta(t, 0.5, tri.CDF(tri.Median()), 1e-12)

	// Symmetric triangle has no skew.
	sym, err := NewTriangular(-1.0, 1.0, 0.0)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, sym.Skewness(), 1e-15)
	assert.Equal(t, 0.0, sym.Median())
}

func TestTriangularSample(t *testing.T) {
	tri, err := NewTriangular(2.0, 10.0, 3.0)
	require.NoError(t, err)

	src := random.New(13)

	var sum float64
	const n = 20000
	for i := 0; i < n; i++ {
		x := tri.Sample(src)
		require.GreaterOrEqual(t, x, 2.0)
		require.LessOrEqual(t, x, 10.0)
		sum += x
	}

	assert.InDelta(t, tri.Mean(), sum/n, 0.05)
}
