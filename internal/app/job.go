// Package app runs renders described by a cliconfig.Config: it owns the
// pixel buffer, drives the renderer and hands the finished buffer to the
// encoder.
package app

import (
	"fmt"

	"github.com/bft-labs/mandelbrot/internal/cliconfig"
	"github.com/bft-labs/mandelbrot/pkg/encode"
	"github.com/bft-labs/mandelbrot/pkg/log"
	"github.com/bft-labs/mandelbrot/pkg/render"
	"github.com/bft-labs/mandelbrot/pkg/report"
)

// Options converts a validated Config into renderer options.
func Options(cfg cliconfig.Config, logger log.Logger) []render.Option {
	opts := []render.Option{
		render.WithWorkers(cfg.Workers),
		render.WithIterationLimit(cfg.Limit()),
		render.WithLogger(logger),
	}
	if cfg.HasJulia {
		opts = append(opts, render.WithJulia(cfg.JuliaC))
	}
	return opts
}

// Run renders cfg into a fresh buffer and writes the image, and the report
// when one is configured. cfg must have been validated.
//
// Nothing is written if the render fails.
func Run(cfg cliconfig.Config, logger log.Logger) (render.Stats, error) {
	pixels := make([]byte, cfg.Bounds.Area())

	stats, err := render.New(Options(cfg, logger)...).Render(pixels, cfg.Bounds, cfg.Rect)
	if err != nil {
		return render.Stats{}, fmt.Errorf("render: %w", err)
	}

	if err := encode.WriteFile(cfg.Output, pixels, cfg.Bounds, cfg.ImageFormat); err != nil {
		return stats, err
	}
	logger.Info("image written",
		log.String("output", cfg.Output),
		log.String("format", string(cfg.ImageFormat)),
		log.Stringer("bounds", cfg.Bounds),
	)

	if cfg.Report != "" {
		rep := report.New(cfg.Output, string(cfg.ImageFormat), stats, pixels)
		if err := rep.WriteFile(cfg.Report); err != nil {
			return stats, err
		}
		logger.Debug("report written", log.String("report", cfg.Report))
	}
	return stats, nil
}
