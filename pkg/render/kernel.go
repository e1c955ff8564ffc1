package render

import (
	"github.com/bft-labs/mandelbrot/pkg/escape"
)

// Kernel selects the iteration run for every pixel.
type Kernel struct {
	// Limit is the iteration budget per pixel.
	Limit uint32

	// Julia switches from the Mandelbrot set to the Julia set of C:
	// the pixel becomes the starting point and C stays fixed.
	Julia bool
	C     complex128
}

// DefaultKernel renders the Mandelbrot set with the default budget.
func DefaultKernel() Kernel {
	return Kernel{Limit: escape.DefaultLimit}
}

// Shade returns the gray level of point p: 0 for points that never escape,
// otherwise 255 minus the escape step, floored at 0.
func (k Kernel) Shade(p complex128) byte {
	var (
		i       uint32
		escaped bool
	)
	if k.Julia {
		i, escaped = escape.EscapesFrom(p, k.C, k.Limit)
	} else {
		i, escaped = escape.Escapes(p, k.Limit)
	}
	if !escaped {
		return 0
	}
	if i >= 255 {
		return 0
	}
	return byte(255 - i)
}
