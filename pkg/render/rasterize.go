package render

import (
	"fmt"

	"github.com/bft-labs/mandelbrot/pkg/plane"
)

// Rasterize fills pixels with the image of r at resolution b.
//
// b must be valid and len(pixels) must equal b.Area(). A violation is a
// programming error and panics.
func Rasterize(pixels []byte, b plane.Bounds, r plane.Rect, k Kernel) {
	if err := b.Validate(); err != nil {
		panic(fmt.Sprintf("render: %v", err))
	}
	if len(pixels) != b.Area() {
		panic(fmt.Sprintf("render: buffer holds %d bytes, bounds %s need %d", len(pixels), b, b.Area()))
	}
	for row := 0; row < b.Height; row++ {
		line := pixels[row*b.Width : (row+1)*b.Width]
		for col := range line {
			line[col] = k.Shade(plane.PixelToPoint(b, col, row, r))
		}
	}
}
