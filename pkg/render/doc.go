// Package render turns a rectangle of the complex plane into a grayscale
// escape-time image.
//
// # Buffer ownership
//
// The caller allocates one []byte of width*height bytes. [Partition] cuts it
// into horizontal bands in a single pass over a running offset, so bands are
// disjoint and together cover every byte exactly once. Each band's slice is
// capped with a full slice expression, so a worker cannot grow into its
// neighbour. [Renderer.Render] hands each non-empty band to one goroutine
// and returns only after all of them have finished; the buffer belongs to
// the caller again once Render returns.
//
// No locks or atomics are taken on the pixel path. Workers only share the
// buffer, and they never touch the same byte.
//
// # Usage
//
//	b, _ := plane.NewBounds(1000, 750)
//	r, _ := plane.NewRect(complex(-1.20, 0.35), complex(-1.0, 0.20))
//	pixels := make([]byte, b.Area())
//
//	renderer := render.New(render.WithWorkers(8))
//	if _, err := renderer.Render(pixels, b, r); err != nil {
//	    // pixels must not be encoded
//	}
//
// # Failures
//
// A panic inside a worker is recovered and reported as an error wrapping
// domain.ErrWorkerFailed. The render either completes or fails as a whole.
package render
