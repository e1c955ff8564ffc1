package plane

import (
	"errors"
	"math"
	"testing"

	"github.com/bft-labs/mandelbrot/internal/domain"
)

const tolerance = 1e-12

func closeTo(a, b complex128) bool {
	return math.Abs(real(a)-real(b)) <= tolerance && math.Abs(imag(a)-imag(b)) <= tolerance
}

func TestPixelToPoint(t *testing.T) {
	b := Bounds{Width: 100, Height: 100}
	r := Rect{UpperLeft: complex(-1.0, 1.0), LowerRight: complex(1.0, -1.0)}

	got := PixelToPoint(b, 25, 75, r)
	if got != complex(-0.5, -0.5) {
		t.Errorf("PixelToPoint(25, 75) = %v, want (-0.5-0.5i)", got)
	}
}

func TestPixelToPoint_Corners(t *testing.T) {
	tests := []struct {
		name string
		b    Bounds
		r    Rect
	}{
		{"unit square", Bounds{100, 100}, Rect{complex(-1, 1), complex(1, -1)}},
		{"seahorse valley", Bounds{1000, 750}, Rect{complex(-1.20, 0.35), complex(-1.0, 0.20)}},
		{"single pixel", Bounds{1, 1}, Rect{complex(0.25, 0.5), complex(0.75, 0)}},
		{"tall strip", Bounds{3, 997}, Rect{complex(-2, 1.5), complex(1, -1.5)}},
		{"degenerate", Bounds{7, 5}, Rect{complex(0.3, 0.3), complex(0.3, 0.3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PixelToPoint(tt.b, 0, 0, tt.r); got != tt.r.UpperLeft {
				t.Errorf("PixelToPoint(0, 0) = %v, want %v", got, tt.r.UpperLeft)
			}
			got := PixelToPoint(tt.b, tt.b.Width, tt.b.Height, tt.r)
			if !closeTo(got, tt.r.LowerRight) {
				t.Errorf("PixelToPoint(%d, %d) = %v, want %v", tt.b.Width, tt.b.Height, got, tt.r.LowerRight)
			}
		})
	}
}

func TestPixelToPoint_ImaginaryAxisPointsUp(t *testing.T) {
	b := Bounds{Width: 10, Height: 10}
	r := Rect{UpperLeft: complex(-1, 1), LowerRight: complex(1, -1)}

	top := PixelToPoint(b, 5, 0, r)
	bottom := PixelToPoint(b, 5, 9, r)
	if imag(top) <= imag(bottom) {
		t.Errorf("imag(row 0) = %v, imag(row 9) = %v, want row 0 above row 9", imag(top), imag(bottom))
	}
}

func TestNewBounds(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr bool
	}{
		{"valid", 100, 75, false},
		{"one pixel", 1, 1, false},
		{"zero width", 0, 10, true},
		{"zero height", 10, 0, true},
		{"negative", -1, 10, true},
		{"area overflows", math.MaxInt / 2, 3, true},
		{"largest area", math.MaxInt / 2, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBounds(tt.w, tt.h)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewBounds() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, domain.ErrInvalidBounds) {
					t.Errorf("error = %v, want ErrInvalidBounds", err)
				}
				return
			}
			if b.Area() != tt.w*tt.h {
				t.Errorf("Area() = %d, want %d", b.Area(), tt.w*tt.h)
			}
		})
	}
}

func TestBounds_Validate(t *testing.T) {
	tests := []struct {
		name    string
		b       Bounds
		wantErr bool
	}{
		{"valid", Bounds{Width: 100, Height: 75}, false},
		{"negative width", Bounds{Width: -2, Height: 3}, true},
		{"zero value", Bounds{}, true},
		{"area overflows", Bounds{Width: math.MaxInt / 4, Height: 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.b.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidBounds) {
				t.Errorf("error = %v, want ErrInvalidBounds", err)
			}
		})
	}
}

func TestNewRect(t *testing.T) {
	tests := []struct {
		name    string
		ul, lr  complex128
		wantErr bool
	}{
		{"valid", complex(-1.2, 0.35), complex(-1.0, 0.20), false},
		{"degenerate point", complex(0, 0), complex(0, 0), false},
		{"real axis reversed", complex(1, 1), complex(-1, -1), true},
		{"imaginary axis reversed", complex(-1, -1), complex(1, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRect(tt.ul, tt.lr)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewRect() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidRect) {
				t.Errorf("error = %v, want ErrInvalidRect", err)
			}
			if err == nil && (r.Width() < 0 || r.Height() < 0) {
				t.Errorf("Width() = %v, Height() = %v, want non-negative", r.Width(), r.Height())
			}
		})
	}
}

func TestBounds_String(t *testing.T) {
	if got := (Bounds{Width: 1000, Height: 750}).String(); got != "1000x750" {
		t.Errorf("String() = %s, want 1000x750", got)
	}
}
