// Package plane maps a discrete pixel grid onto a rectangle of the complex
// plane.
//
// A [Bounds] is the size of the grid and a [Rect] is the region of the plane
// the grid covers, given by its upper-left and lower-right corners. The
// imaginary axis decreases as the row index grows, so row 0 is the top edge
// of the rectangle.
//
// # Usage
//
//	b, _ := plane.NewBounds(1000, 750)
//	r, _ := plane.NewRect(complex(-1.20, 0.35), complex(-1.0, 0.20))
//	c := plane.PixelToPoint(b, 25, 75, r)
//
// [PixelToPoint] maps the upper-left corner of a pixel cell, not its
// centre, so pixel (0, 0) is exactly r.UpperLeft.
package plane
