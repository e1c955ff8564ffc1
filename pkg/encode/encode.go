// Package encode writes a rendered grayscale buffer to an image container.
//
// The buffer is wrapped in an image.Gray without copying. PNG goes through
// the standard library; BMP and TIFF come from golang.org/x/image.
package encode

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/bft-labs/mandelbrot/internal/domain"
	"github.com/bft-labs/mandelbrot/pkg/plane"
)

// Format is an output container.
type Format string

const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// ErrUnknownFormat is returned for a format or file extension with no encoder.
var ErrUnknownFormat = errors.New("encode: unknown image format")

// ParseFormat accepts a format name, case insensitively. "tif" means TIFF.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath picks the format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Gray wraps pixels as an 8-bit grayscale image of size b.
func Gray(pixels []byte, b plane.Bounds) (*image.Gray, error) {
	if len(pixels) != b.Area() {
		return nil, fmt.Errorf("%w: have %d bytes, %s needs %d", domain.ErrBufferSize, len(pixels), b, b.Area())
	}
	return &image.Gray{
		Pix:    pixels,
		Stride: b.Width,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}, nil
}

// Encode writes pixels to w in format f.
func Encode(w io.Writer, pixels []byte, b plane.Bounds, f Format) error {
	img, err := Gray(pixels, b)
	if err != nil {
		return err
	}
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// WriteFile creates path and encodes pixels into it. A partially written
// file is removed on failure.
func WriteFile(path string, pixels []byte, b plane.Bounds, f Format) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := Encode(out, pixels, b, f); err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return nil
}
