package cliconfig

import (
	"testing"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"MANDELBROT_OUTPUT":      "mandel.png",
				"MANDELBROT_PIXELS":      "1000x750",
				"MANDELBROT_UPPER_LEFT":  "-1.20,0.35",
				"MANDELBROT_LOWER_RIGHT": "-1,0.20",
				"MANDELBROT_JULIA":       "-0.727,0.189",
				"MANDELBROT_ITERATIONS":  "1000",
				"MANDELBROT_WORKERS":     "16",
				"MANDELBROT_FORMAT":      "tiff",
				"MANDELBROT_REPORT":      "mandel.json",
				"MANDELBROT_LOG_LEVEL":   "warn",
				"MANDELBROT_WATCH":       "true",
				"MANDELBROT_GOPS":        "1",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Output:     "mandel.png",
				Pixels:     "1000x750",
				UpperLeft:  "-1.20,0.35",
				LowerRight: "-1,0.20",
				Julia:      "-0.727,0.189",
				Iterations: 1000,
				Workers:    16,
				Format:     "tiff",
				Report:     "mandel.json",
				LogLevel:   "warn",
				Watch:      true,
				Gops:       true,
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"MANDELBROT_OUTPUT":  "env.png",
				"MANDELBROT_WORKERS": "4",
			},
			changed:  map[string]bool{"output": true},
			initial:  Config{Output: "flag.png"},
			expected: Config{Output: "flag.png", Workers: 4},
		},
		{
			name: "returns error for invalid int",
			envVars: map[string]string{
				"MANDELBROT_WORKERS": "eight",
			},
			changed:  map[string]bool{},
			initial:  Config{},
			expected: Config{},
			wantErr:  true,
		},
		{
			name: "returns error for zero iterations",
			envVars: map[string]string{
				"MANDELBROT_ITERATIONS": "0",
			},
			changed: map[string]bool{},
			initial: Config{Iterations: 255},
			wantErr: true,
		},
		{
			name: "returns error for negative workers",
			envVars: map[string]string{
				"MANDELBROT_WORKERS": "-1",
			},
			changed: map[string]bool{},
			initial: Config{Workers: 8},
			wantErr: true,
		},
		{
			name: "changed flag shadows bad env value",
			envVars: map[string]string{
				"MANDELBROT_WORKERS": "-1",
			},
			changed:  map[string]bool{"workers": true},
			initial:  Config{Workers: 8},
			expected: Config{Workers: 8},
		},
		{
			name: "handles bool 'false' as false",
			envVars: map[string]string{
				"MANDELBROT_WATCH": "false",
			},
			changed:  map[string]bool{},
			initial:  Config{Watch: true},
			expected: Config{Watch: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyEnvConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && cfg != tt.expected {
				t.Errorf("ApplyEnvConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}
