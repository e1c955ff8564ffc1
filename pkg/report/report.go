// Package report builds a JSON manifest describing a finished render: what
// was drawn, how the work was split and how long each band took.
package report

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/bytedance/sonic"

	"github.com/bft-labs/mandelbrot/pkg/render"
)

// Report is the manifest written next to a rendered image.
type Report struct {
	Output     string    `json:"output"`
	Format     string    `json:"format"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	UpperLeft  string    `json:"upper_left"`
	LowerRight string    `json:"lower_right"`
	Julia      string    `json:"julia,omitempty"`
	Limit      uint32    `json:"iteration_limit"`
	Workers    int       `json:"workers"`
	ElapsedMS  float64   `json:"elapsed_ms"`
	Black      int       `json:"black_pixels"`
	Bands      []Band    `json:"bands"`
	CreatedAt  time.Time `json:"created_at"`
}

// Band is the manifest entry for one band.
type Band struct {
	Index      int     `json:"index"`
	Top        int     `json:"top"`
	Rows       int     `json:"rows"`
	UpperLeft  string  `json:"upper_left"`
	LowerRight string  `json:"lower_right"`
	ElapsedMS  float64 `json:"elapsed_ms"`
}

// New builds a Report from render stats and the finished buffer.
func New(output, format string, stats render.Stats, pixels []byte) Report {
	r := Report{
		Output:     output,
		Format:     format,
		Width:      stats.Bounds.Width,
		Height:     stats.Bounds.Height,
		UpperLeft:  formatPoint(stats.Rect.UpperLeft),
		LowerRight: formatPoint(stats.Rect.LowerRight),
		Limit:      stats.Kernel.Limit,
		Workers:    stats.Workers,
		ElapsedMS:  millis(stats.Elapsed),
		Black:      countBlack(pixels),
		Bands:      make([]Band, 0, len(stats.Bands)),
		CreatedAt:  time.Now().UTC(),
	}
	if stats.Kernel.Julia {
		r.Julia = formatPoint(stats.Kernel.C)
	}
	for _, b := range stats.Bands {
		r.Bands = append(r.Bands, Band{
			Index:      b.Index,
			Top:        b.Top,
			Rows:       b.Rows,
			UpperLeft:  formatPoint(b.Rect.UpperLeft),
			LowerRight: formatPoint(b.Rect.LowerRight),
			ElapsedMS:  millis(b.Elapsed),
		})
	}
	return r
}

// Marshal encodes r as indented JSON.
func (r Report) Marshal() ([]byte, error) {
	return sonic.ConfigStd.MarshalIndent(r, "", "  ")
}

// WriteFile writes r to path.
func (r Report) WriteFile(path string) error {
	b, err := r.Marshal()
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Load reads a report written by WriteFile.
func Load(path string) (Report, error) {
	var r Report
	b, err := os.ReadFile(path)
	if err != nil {
		return r, err
	}
	if err := sonic.ConfigStd.Unmarshal(b, &r); err != nil {
		return r, fmt.Errorf("parse report %s: %w", path, err)
	}
	return r, nil
}

// formatPoint uses the "RE,IM" form accepted on the command line.
func formatPoint(c complex128) string {
	return strconv.FormatFloat(real(c), 'g', -1, 64) + "," + strconv.FormatFloat(imag(c), 'g', -1, 64)
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func countBlack(pixels []byte) int {
	n := 0
	for _, p := range pixels {
		if p == 0 {
			n++
		}
	}
	return n
}
