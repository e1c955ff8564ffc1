// Package mandelbrot renders grayscale images of the Mandelbrot set.
//
// Example usage:
//
//	b, _ := mandelbrot.NewBounds(1000, 750)
//	r, _ := mandelbrot.NewRect(complex(-1.20, 0.35), complex(-1.0, 0.20))
//	pixels, stats, err := mandelbrot.Render(b, r, mandelbrot.WithWorkers(8))
//	if err != nil {
//	    log.Fatal(err)
//	}
package mandelbrot

import (
	"github.com/bft-labs/mandelbrot/internal/domain"
	"github.com/bft-labs/mandelbrot/pkg/plane"
	"github.com/bft-labs/mandelbrot/pkg/render"
)

// Errors returned by this package. Use errors.Is to check for them.
var (
	ErrInvalidBounds  = domain.ErrInvalidBounds
	ErrInvalidRect    = domain.ErrInvalidRect
	ErrBufferSize     = domain.ErrBufferSize
	ErrInvalidWorkers = domain.ErrInvalidWorkers
	ErrWorkerFailed   = domain.ErrWorkerFailed
)

// Bounds is the pixel size of an image.
type Bounds = plane.Bounds

// Rect is the region of the complex plane an image covers.
type Rect = plane.Rect

// Option configures a render.
type Option = render.Option

// Stats describes a completed render.
type Stats = render.Stats

// NewBounds validates and returns image bounds.
func NewBounds(width, height int) (Bounds, error) {
	return plane.NewBounds(width, height)
}

// NewRect validates and returns a plane rectangle.
func NewRect(upperLeft, lowerRight complex128) (Rect, error) {
	return plane.NewRect(upperLeft, lowerRight)
}

// WithWorkers sets the number of concurrent workers.
func WithWorkers(n int) Option { return render.WithWorkers(n) }

// WithIterationLimit sets the escape iteration limit.
func WithIterationLimit(limit uint32) Option { return render.WithIterationLimit(limit) }

// WithJulia renders the Julia set for parameter c instead of the Mandelbrot set.
func WithJulia(c complex128) Option { return render.WithJulia(c) }

// Render allocates a row-major grayscale buffer for b and fills it.
// The buffer is nil whenever err is non-nil. Bounds that NewBounds would
// reject return an error wrapping ErrInvalidBounds.
func Render(b Bounds, r Rect, opts ...Option) ([]byte, Stats, error) {
	if err := b.Validate(); err != nil {
		return nil, Stats{}, err
	}
	pixels := make([]byte, b.Area())
	stats, err := render.New(opts...).Render(pixels, b, r)
	if err != nil {
		return nil, stats, err
	}
	return pixels, stats, nil
}
