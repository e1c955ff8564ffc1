package render

import (
	"fmt"
	"runtime/debug"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bft-labs/mandelbrot/internal/domain"
	"github.com/bft-labs/mandelbrot/pkg/log"
	"github.com/bft-labs/mandelbrot/pkg/plane"
)

// Renderer fills pixel buffers in parallel. A Renderer holds no per-render
// state and may be used from several goroutines, each with its own buffer.
type Renderer struct {
	opts options
}

// New creates a Renderer. Without options it draws the Mandelbrot set with
// DefaultWorkers bands and a budget of escape.DefaultLimit.
func New(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o}
}

// Workers returns the configured band count.
func (r *Renderer) Workers() int { return r.opts.workers }

// Kernel returns the configured per-pixel kernel.
func (r *Renderer) Kernel() Kernel { return r.opts.kernel }

// BandStats describes the work done for one band.
type BandStats struct {
	Index   int
	Top     int
	Rows    int
	Rect    plane.Rect
	Elapsed time.Duration
}

// Stats describes a finished render.
type Stats struct {
	Bounds  plane.Bounds
	Rect    plane.Rect
	Kernel  Kernel
	Workers int
	Elapsed time.Duration
	Bands   []BandStats
}

// Render fills pixels with the image of rect at resolution b.
//
// It blocks until every band has been rasterized. If any worker fails the
// returned error wraps domain.ErrWorkerFailed and the contents of pixels
// are undefined.
func (r *Renderer) Render(pixels []byte, b plane.Bounds, rect plane.Rect) (Stats, error) {
	logger := r.opts.logger
	kernel := r.opts.kernel

	bands, err := Partition(pixels, b, rect, r.opts.workers)
	if err != nil {
		return Stats{}, fmt.Errorf("partition: %w", err)
	}

	stats := Stats{
		Bounds:  b,
		Rect:    rect,
		Kernel:  kernel,
		Workers: len(bands),
		Bands:   make([]BandStats, len(bands)),
	}

	start := time.Now()
	var g errgroup.Group
	for _, band := range bands {
		stats.Bands[band.Index] = BandStats{Index: band.Index, Top: band.Top, Rows: band.Rows, Rect: band.Rect}
		if band.Empty() {
			logger.Debug("skipping empty band", log.Int("band", band.Index))
			continue
		}

		logger.Debug("rasterizing band",
			log.Int("band", band.Index),
			log.Int("top", band.Top),
			log.Int("rows", band.Rows),
		)
		band := band
		slot := &stats.Bands[band.Index]
		g.Go(func() error {
			bandStart := time.Now()
			if err := rasterizeBand(band, b.Width, kernel); err != nil {
				return err
			}
			slot.Elapsed = time.Since(bandStart)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("render failed", log.Err(err))
		return Stats{}, err
	}
	stats.Elapsed = time.Since(start)

	logger.Info("render complete",
		log.Stringer("bounds", b),
		log.Int("workers", stats.Workers),
		log.Uint32("limit", kernel.Limit),
		log.Duration("elapsed", stats.Elapsed),
	)
	return stats, nil
}

// rasterizeBand renders one band into its own slice against its own plane
// rectangle, reporting a panic as ErrWorkerFailed.
func rasterizeBand(band Band, width int, k Kernel) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: band %d (rows %d-%d): %v\n%s",
				domain.ErrWorkerFailed, band.Index, band.Top, band.Top+band.Rows, rec, debug.Stack())
		}
	}()
	Rasterize(band.Pixels, band.Bounds(width), band.Rect, k)
	return nil
}
