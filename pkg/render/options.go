package render

import (
	"github.com/bft-labs/mandelbrot/pkg/escape"
	"github.com/bft-labs/mandelbrot/pkg/log"
)

// DefaultWorkers is the number of bands, and goroutines, per render.
const DefaultWorkers = 8

// Option configures a Renderer.
type Option func(*options)

type options struct {
	workers int
	kernel  Kernel
	logger  log.Logger
}

func defaultOptions() options {
	return options{
		workers: DefaultWorkers,
		kernel:  DefaultKernel(),
		logger:  log.NewNoopLogger(),
	}
}

// WithWorkers sets the number of bands the image is split into.
// Values below 1 are rejected by Render.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithKernel replaces the whole per-pixel kernel.
func WithKernel(k Kernel) Option {
	return func(o *options) {
		o.kernel = k
	}
}

// WithIterationLimit sets the per-pixel iteration budget.
// Zero restores escape.DefaultLimit.
func WithIterationLimit(limit uint32) Option {
	return func(o *options) {
		if limit == 0 {
			limit = escape.DefaultLimit
		}
		o.kernel.Limit = limit
	}
}

// WithJulia renders the Julia set of c instead of the Mandelbrot set.
func WithJulia(c complex128) Option {
	return func(o *options) {
		o.kernel.Julia = true
		o.kernel.C = c
	}
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = log.NewNoopLogger()
		}
		o.logger = l
	}
}
