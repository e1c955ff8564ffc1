package render

import (
	"fmt"

	"github.com/bft-labs/mandelbrot/internal/domain"
	"github.com/bft-labs/mandelbrot/pkg/plane"
)

// Band is one horizontal slice of the image and the bytes that hold it.
type Band struct {
	// Index is the position of the band in the partition, top to bottom.
	Index int

	// Top is the first image row of the band and Rows its height.
	// Rows may be zero when there are more workers than rows.
	Top  int
	Rows int

	// Pixels is the band's exclusive range of the image buffer.
	Pixels []byte

	// Rect is the region of the plane the band covers.
	Rect plane.Rect
}

// Bounds is the size of the band as a grid of its own. Together with Rect
// it is what a worker hands to Rasterize.
func (b Band) Bounds(width int) plane.Bounds {
	return plane.Bounds{Width: width, Height: b.Rows}
}

// Empty reports whether the band owns no rows.
func (b Band) Empty() bool {
	return b.Rows == 0
}

// Partition splits pixels into workers horizontal bands of
// ceil(height/workers) rows; the last non-empty band may be shorter and
// trailing bands may be empty.
//
// Bands are cut from pixels in one pass, each starting where the previous
// one ended, so they are disjoint and cover the buffer exactly.
func Partition(pixels []byte, b plane.Bounds, r plane.Rect, workers int) ([]Band, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidWorkers, workers)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if len(pixels) != b.Area() {
		return nil, fmt.Errorf("%w: have %d bytes, %s needs %d", domain.ErrBufferSize, len(pixels), b, b.Area())
	}

	rowsPerBand := (b.Height + workers - 1) / workers

	bands := make([]Band, 0, workers)
	rest := pixels
	top := 0
	for i := 0; i < workers; i++ {
		rows := rowsPerBand
		if remaining := b.Height - top; rows > remaining {
			rows = remaining
		}
		n := rows * b.Width
		bands = append(bands, Band{
			Index:  i,
			Top:    top,
			Rows:   rows,
			Pixels: rest[:n:n],
			Rect: plane.Rect{
				UpperLeft:  plane.PixelToPoint(b, 0, top, r),
				LowerRight: plane.PixelToPoint(b, b.Width, top+rows, r),
			},
		})
		rest = rest[n:]
		top += rows
	}
	if len(rest) != 0 || top != b.Height {
		// The bands must cover the buffer exactly.
		panic(fmt.Sprintf("render: partition left %d bytes and %d rows unassigned", len(rest), b.Height-top))
	}
	return bands, nil
}
