package cliconfig

import "testing"

func TestParsePair_Int(t *testing.T) {
	tests := []struct {
		in     string
		l, r   int
		wantOK bool
	}{
		{"", 0, 0, false},
		{"10,", 0, 0, false},
		{",10", 0, 0, false},
		{"10,20", 10, 20, true},
		{"10,20xy", 0, 0, false},
		{"-3,4", -3, 4, true},
		{"1,2,3", 0, 0, false},
	}

	for _, tt := range tests {
		l, r, ok := ParsePair[int](tt.in, ',')
		if ok != tt.wantOK || l != tt.l || r != tt.r {
			t.Errorf("ParsePair[int](%q) = %d, %d, %v, want %d, %d, %v", tt.in, l, r, ok, tt.l, tt.r, tt.wantOK)
		}
	}
}

func TestParsePair_Float(t *testing.T) {
	tests := []struct {
		in     string
		sep    byte
		l, r   float64
		wantOK bool
	}{
		{"0.5x", 'x', 0, 0, false},
		{"0.5x1.5", 'x', 0.5, 1.5, true},
		{"-1.20,0.35", ',', -1.20, 0.35, true},
		{"-1,0.20", ',', -1, 0.20, true},
		{"1e-3,2", ',', 0.001, 2, true},
		{"abc,1", ',', 0, 0, false},
	}

	for _, tt := range tests {
		l, r, ok := ParsePair[float64](tt.in, tt.sep)
		if ok != tt.wantOK || l != tt.l || r != tt.r {
			t.Errorf("ParsePair[float64](%q, %q) = %v, %v, %v, want %v, %v, %v", tt.in, tt.sep, l, r, ok, tt.l, tt.r, tt.wantOK)
		}
	}
}

func TestParsePoint(t *testing.T) {
	c, ok := ParsePoint("-0.727,0.189")
	if !ok || c != complex(-0.727, 0.189) {
		t.Errorf("ParsePoint() = %v, %v, want (-0.727+0.189i), true", c, ok)
	}
	if _, ok := ParsePoint("-0.727x0.189"); ok {
		t.Error("ParsePoint() accepted the wrong separator")
	}
}
