package domain

import "errors"

// Domain errors represent contract violations in the rendering engine.
// They are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidBounds is returned when a pixel grid has a non-positive side.
	ErrInvalidBounds = errors.New("mandelbrot: invalid bounds")

	// ErrInvalidRect is returned when the plane corners are not ordered
	// upper-left / lower-right.
	ErrInvalidRect = errors.New("mandelbrot: invalid plane rectangle")

	// ErrBufferSize is returned when a pixel buffer does not hold exactly
	// width*height bytes.
	ErrBufferSize = errors.New("mandelbrot: buffer size does not match bounds")

	// ErrInvalidWorkers is returned when fewer than one worker is requested.
	ErrInvalidWorkers = errors.New("mandelbrot: worker count must be positive")

	// ErrWorkerFailed is returned when a render worker terminates abnormally.
	// The buffer of a failed render must not be encoded.
	ErrWorkerFailed = errors.New("mandelbrot: render worker failed")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("mandelbrot: invalid configuration")
)
