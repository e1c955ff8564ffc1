package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig is the TOML form of Config. Points and sizes are kept in their
// command line spelling ("1000x750", "-1.20,0.35").
type FileConfig struct {
	Output     string `toml:"output"`
	Pixels     string `toml:"pixels"`
	UpperLeft  string `toml:"upper_left"`
	LowerRight string `toml:"lower_right"`
	Julia      string `toml:"julia"`
	Iterations int    `toml:"iterations"`
	Workers    int    `toml:"workers"`
	Format     string `toml:"format"`
	Report     string `toml:"report"`
	LogLevel   string `toml:"log_level"`
	Gops       *bool  `toml:"gops"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.mandelbrot/config.toml, or "" when the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".mandelbrot", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("output", fc.Output, &cfg.Output)
	s.setString("pixels", fc.Pixels, &cfg.Pixels)
	s.setString("upper-left", fc.UpperLeft, &cfg.UpperLeft)
	s.setString("lower-right", fc.LowerRight, &cfg.LowerRight)
	s.setString("julia", fc.Julia, &cfg.Julia)
	s.setString("format", fc.Format, &cfg.Format)
	s.setString("report", fc.Report, &cfg.Report)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setInt("iterations", fc.Iterations, &cfg.Iterations)
	s.setInt("workers", fc.Workers, &cfg.Workers)

	s.setBool("gops", fc.Gops, &cfg.Gops)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
