package cliconfig

import (
	"fmt"
	"os"
)

// ApplyEnvConfig applies configuration from MANDELBROT_* environment
// variables. It respects flags that have been explicitly set (changed map)
// and returns an error if a numeric variable does not parse.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("output", os.Getenv("MANDELBROT_OUTPUT"), &cfg.Output)
	s.setString("pixels", os.Getenv("MANDELBROT_PIXELS"), &cfg.Pixels)
	s.setString("upper-left", os.Getenv("MANDELBROT_UPPER_LEFT"), &cfg.UpperLeft)
	s.setString("lower-right", os.Getenv("MANDELBROT_LOWER_RIGHT"), &cfg.LowerRight)
	s.setString("julia", os.Getenv("MANDELBROT_JULIA"), &cfg.Julia)
	s.setString("format", os.Getenv("MANDELBROT_FORMAT"), &cfg.Format)
	s.setString("report", os.Getenv("MANDELBROT_REPORT"), &cfg.Report)
	s.setString("log-level", os.Getenv("MANDELBROT_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setIntFromString("iterations", os.Getenv("MANDELBROT_ITERATIONS"), &cfg.Iterations); err != nil {
		return err
	}
	if err := s.setIntFromString("workers", os.Getenv("MANDELBROT_WORKERS"), &cfg.Workers); err != nil {
		return err
	}

	s.setBoolFromString("watch", os.Getenv("MANDELBROT_WATCH"), &cfg.Watch)
	s.setBoolFromString("gops", os.Getenv("MANDELBROT_GOPS"), &cfg.Gops)

	return nil
}

// Load builds the effective configuration: defaults, then the TOML file at
// path (if it exists), then the environment. Fields named in changed are
// left as the caller set them. The result is validated.
func Load(base Config, path string, changed map[string]bool) (Config, error) {
	cfg := base
	if path != "" && FileExists(path) {
		fc, err := LoadFileConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		ApplyFileConfig(&cfg, fc, changed)
	}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
