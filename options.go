package fractal

import "fmt"

// DefaultTolerance is the residual |p(x)| below which a Newton iterate is
// accepted as a root.
const DefaultTolerance = 1e-6

// SampleOption configures a sampling call.
//
// Example:
//
//	// Single-threaded with progress logging
//	err := fractal.SampleMandelbrot(buf, vp, 1000, fractal.WithVerbose(true))
//
//	// Eight row bands sampled concurrently
//	err := fractal.SampleMandelbrot(buf, vp, 1000, fractal.WithThreads(8))
type SampleOption func(*sampleOptions)

// sampleOptions holds optional configuration for a sampling call.
type sampleOptions struct {
	threads   int
	verbose   bool
	tolerance float64
}

// defaultSampleOptions returns the default sampling options.
func defaultSampleOptions() sampleOptions {
	return sampleOptions{
		threads:   1,
		tolerance: DefaultTolerance,
	}
}

func buildSampleOptions(opts []SampleOption) (sampleOptions, error) {
	o := defaultSampleOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.tolerance > 0) {
		return o, fmt.Errorf("%w: tolerance must be positive, got %g", ErrInvalidArgument, o.tolerance)
	}
	return o, nil
}

// WithThreads sets the number of row bands sampled concurrently.
// Each band runs on its own goroutine. The value must be at least 1.
func WithThreads(n int) SampleOption {
	return func(o *sampleOptions) {
		o.threads = n
	}
}

// WithVerbose enables progress and timing records on the package logger.
// Periodic per-row progress is only reported when sampling with one thread.
func WithVerbose(v bool) SampleOption {
	return func(o *sampleOptions) {
		o.verbose = v
	}
}

// WithTolerance sets the Newton convergence tolerance. It has no effect on
// escape-time sampling.
func WithTolerance(tol float64) SampleOption {
	return func(o *sampleOptions) {
		o.tolerance = tol
	}
}
