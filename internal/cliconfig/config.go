package cliconfig

import (
	"fmt"
	"math"
	"math/cmplx"
	"strconv"

	"github.com/bft-labs/mandelbrot/internal/domain"
	"github.com/bft-labs/mandelbrot/pkg/encode"
	"github.com/bft-labs/mandelbrot/pkg/escape"
	"github.com/bft-labs/mandelbrot/pkg/plane"
	"github.com/bft-labs/mandelbrot/pkg/render"
)

// Config holds CLI configuration for a render.
type Config struct {
	Output     string
	Pixels     string
	UpperLeft  string
	LowerRight string
	Julia      string

	Iterations int
	Workers    int
	Format     string
	Report     string
	LogLevel   string
	Watch      bool
	Gops       bool

	// Set by Validate.
	Bounds      plane.Bounds
	Rect        plane.Rect
	JuliaC      complex128
	HasJulia    bool
	ImageFormat encode.Format
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Iterations: int(escape.DefaultLimit),
		Workers:    render.DefaultWorkers,
		LogLevel:   "info",
	}
}

// Validate checks the configuration and fills in the parsed fields.
func (c *Config) Validate() error {
	if c.Output == "" {
		return invalid("output file is required")
	}

	w, h, ok := ParsePair[int](c.Pixels, 'x')
	if !ok {
		return invalid("pixels: %q is not WIDTHxHEIGHT", c.Pixels)
	}
	b, err := plane.NewBounds(w, h)
	if err != nil {
		return fmt.Errorf("pixels: %w", err)
	}

	ul, err := parsePoint("upper-left", c.UpperLeft)
	if err != nil {
		return err
	}
	lr, err := parsePoint("lower-right", c.LowerRight)
	if err != nil {
		return err
	}
	rect, err := plane.NewRect(ul, lr)
	if err != nil {
		return err
	}

	c.HasJulia = c.Julia != ""
	c.JuliaC = 0
	if c.HasJulia {
		if c.JuliaC, err = parsePoint("julia", c.Julia); err != nil {
			return err
		}
	}

	if c.Iterations <= 0 || int64(c.Iterations) > math.MaxUint32 {
		return invalid("iterations must be between 1 and %d", uint32(math.MaxUint32))
	}
	if c.Workers <= 0 {
		return invalid("workers must be positive")
	}

	if c.Format != "" {
		c.ImageFormat, err = encode.ParseFormat(c.Format)
	} else {
		c.ImageFormat, err = encode.FormatFromPath(c.Output)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}

	c.Bounds = b
	c.Rect = rect
	return nil
}

// Limit is the iteration budget as the engine takes it.
func (c *Config) Limit() uint32 {
	return uint32(c.Iterations)
}

func parsePoint(name, s string) (complex128, error) {
	p, ok := ParsePoint(s)
	if !ok {
		return 0, invalid("%s: %q is not RE,IM", name, s)
	}
	if cmplx.IsNaN(p) || cmplx.IsInf(p) {
		return 0, invalid("%s: %q is not finite", name, s)
	}
	return p, nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to a positive int and sets the
// destination. Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return invalid("%s must be positive, got %d", flag, i)
	}
	*dst = i
	return nil
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
