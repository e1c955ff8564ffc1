// Package escape classifies points of the complex plane by how quickly
// their orbit under z <- z*z + c leaves the disc of radius 2.
package escape

// DefaultLimit is the iteration budget used when none is configured. It is
// also the number of distinct gray levels a rendered pixel can take.
const DefaultLimit uint32 = 255

// radiusSquared is |z|^2 past which an orbit is known to diverge.
const radiusSquared = 4.0

// Escapes iterates z <- z*z + c from z = 0 for at most limit steps.
//
// It returns the 0-based step at which |z|^2 first exceeded 4 and true, or
// 0 and false if the orbit stayed bounded for the whole budget.
func Escapes(c complex128, limit uint32) (uint32, bool) {
	return EscapesFrom(0, c, limit)
}

// EscapesFrom is Escapes with an arbitrary starting point. Julia sets are
// drawn with z = pixel and c fixed.
func EscapesFrom(z, c complex128, limit uint32) (uint32, bool) {
	for i := uint32(0); i < limit; i++ {
		z = z*z + c
		if norm(z) > radiusSquared {
			return i, true
		}
	}
	return 0, false
}

// norm is |z|^2. cmplx.Abs would take a square root on every step.
func norm(z complex128) float64 {
	re, im := real(z), imag(z)
	return re*re + im*im
}
