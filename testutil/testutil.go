package testutil

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"

	"github.com/hupe1980/statkit/random"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	src  random.Source
	seed uint64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{
		src:  random.New(seed),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.src = random.New(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// Float64 returns a pseudo-random number in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Float64()
}

// Uint64n returns a pseudo-random number in [0, n).
func (r *RNG) Uint64n(n uint64) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Uint64n(n)
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = random.Range(r.src, minVal, maxVal)
	}
}

// UniformSlice returns n random values in range [minVal, maxVal).
func (r *RNG) UniformSlice(n int, minVal, maxVal float64) []float64 {
	dst := make([]float64, n)
	r.FillUniformRange(dst, minVal, maxVal)
	return dst
}

// Shuffle permutes data in place (Fisher-Yates).
func (r *RNG) Shuffle(data []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(data) - 1; i > 0; i-- {
		j := int(r.src.Uint64n(uint64(i + 1)))
		data[i], data[j] = data[j], data[i]
	}
}

// Periodic generates a sawtooth signal of the given length: samples of a
// unit-amplitude waveform of the given frequency taken at samplingRate.
// A full period spans [0, 1), so e.g. samplingRate=4, frequency=1 cycles
// through 0, 0.25, 0.5, 0.75 with mean 0.375.
func Periodic(length int, samplingRate, frequency float64) []float64 {
	step := frequency / samplingRate
	data := make([]float64, length)

	var phase float64
	for i := range data {
		data[i] = phase
		phase = math.Mod(phase+step, 1)
	}

	return data
}

// Sinusoidal generates amplitude * sin(2*pi*frequency/samplingRate * i) for
// i in [0, length). Its quadratic mean converges to amplitude/sqrt(2).
func Sinusoidal(length int, samplingRate, frequency, amplitude float64) []float64 {
	step := 2 * math.Pi * frequency / samplingRate
	data := make([]float64, length)
	for i := range data {
		data[i] = amplitude * math.Sin(step*float64(i))
	}

	return data
}

// NumAcc generates a NIST StRD style numerical-accuracy sequence: the
// center value followed by (n-1)/2 pairs of center-spread and center+spread.
// With odd n the exact mean is center and the exact sample standard
// deviation is spread.
func NumAcc(n int, center, spread float64) []float64 {
	data := make([]float64, n)
	data[0] = center
	for i := 1; i < n; i += 2 {
		data[i] = center - spread
		if i+1 < n {
			data[i+1] = center + spread
		}
	}

	return data
}

// LoadData reads one float64 per line from a plain-text fixture. Files
// ending in .gz are transparently gunzipped. Blank lines are skipped.
func LoadData(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()

	var scanner *bufio.Scanner
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gunzip fixture %s: %w", path, err)
		}
		defer zr.Close()
		scanner = bufio.NewScanner(zr)
	} else {
		scanner = bufio.NewScanner(f)
	}

	var data []float64
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("parse fixture %s: %w", path, err)
		}
		data = append(data, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}

	return data, nil
}
