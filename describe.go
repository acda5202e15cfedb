package statkit

// Summary is a one-call descriptive report over a data set.
type Summary struct {
	Count         int
	Mean          float64
	StdDev        float64
	Min           float64
	LowerQuartile float64
	Median        float64
	UpperQuartile float64
	Max           float64
}

type options struct {
	logger *Logger
}

// Option configures Describe behavior.
type Option func(*options)

// WithLogger configures the logger used for debug-level tracing.
//
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Describe computes a full descriptive summary of data in one call. Fields
// that are undefined for the input (empty data, single element) are NaN per
// the usual sentinel contract.
//
// DESTRUCTIVE: reorders data as a side effect, like the quantile layer it is
// built on.
func Describe(data []float64, opts ...Option) Summary {
	o := options{
		logger: NoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := Summary{
		Count:         len(data),
		Mean:          Mean(data),
		StdDev:        StdDev(data),
		Min:           Min(data),
		LowerQuartile: LowerQuartile(data),
		Median:        Median(data),
		UpperQuartile: UpperQuartile(data),
		Max:           Max(data),
	}

	o.logger.Debug("describe",
		"count", s.Count,
		"mean", s.Mean,
		"stddev", s.StdDev,
		"min", s.Min,
		"median", s.Median,
		"max", s.Max,
	)

	return s
}
