package plane

import (
	"fmt"
	"math"

	"github.com/bft-labs/mandelbrot/internal/domain"
)

// Bounds is the width and height of a pixel grid.
type Bounds struct {
	Width  int
	Height int
}

// NewBounds returns Bounds after checking both sides are positive and
// the pixel count fits in an int.
func NewBounds(width, height int) (Bounds, error) {
	if width <= 0 || height <= 0 {
		return Bounds{}, fmt.Errorf("%w: %dx%d", domain.ErrInvalidBounds, width, height)
	}
	if height > math.MaxInt/width {
		return Bounds{}, fmt.Errorf("%w: %dx%d pixels overflow", domain.ErrInvalidBounds, width, height)
	}
	return Bounds{Width: width, Height: height}, nil
}

// Validate reports whether b could have been returned by NewBounds.
func (b Bounds) Validate() error {
	_, err := NewBounds(b.Width, b.Height)
	return err
}

// Area is the number of pixels in the grid, which is also the length of
// the grayscale buffer that holds it.
func (b Bounds) Area() int {
	return b.Width * b.Height
}

func (b Bounds) String() string {
	return fmt.Sprintf("%dx%d", b.Width, b.Height)
}

// Rect is a region of the complex plane.
type Rect struct {
	UpperLeft  complex128
	LowerRight complex128
}

// NewRect returns a Rect after checking the corners are ordered.
// Degenerate rectangles (zero width or height) are allowed.
func NewRect(upperLeft, lowerRight complex128) (Rect, error) {
	if real(upperLeft) > real(lowerRight) || imag(upperLeft) < imag(lowerRight) {
		return Rect{}, fmt.Errorf("%w: upper-left %v, lower-right %v",
			domain.ErrInvalidRect, upperLeft, lowerRight)
	}
	return Rect{UpperLeft: upperLeft, LowerRight: lowerRight}, nil
}

// Width is the extent of r along the real axis.
func (r Rect) Width() float64 {
	return real(r.LowerRight) - real(r.UpperLeft)
}

// Height is the extent of r along the imaginary axis.
func (r Rect) Height() float64 {
	return imag(r.UpperLeft) - imag(r.LowerRight)
}

// PixelToPoint returns the point of r that corresponds to the upper-left
// corner of pixel (col, row) in a grid of size b.
//
// col and row are not range checked: col == b.Width and row == b.Height
// address the lower-right edge of the grid.
func PixelToPoint(b Bounds, col, row int, r Rect) complex128 {
	re := real(r.UpperLeft) + float64(col)*r.Width()/float64(b.Width)
	im := imag(r.UpperLeft) - float64(row)*r.Height()/float64(b.Height)
	return complex(re, im)
}
