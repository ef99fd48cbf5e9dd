package numc

import (
	"math"
	"testing"
)

func TestTriang(t *testing.T) {
	tests := []struct {
		name     string
		m        int
		sym      bool
		expected []float64
	}{
		{"symmetric 3", 3, true, []float64{0.5, 1, 0.5}},
		{"periodic 3", 3, false, []float64{0.25, 0.75, 0.75}},
		{"symmetric 4", 4, true, []float64{0.25, 0.75, 0.75, 0.25}},
		{"symmetric 2", 2, true, []float64{0.5, 0.5}},
		{"symmetric 5", 5, true, []float64{1.0 / 3, 2.0 / 3, 1, 2.0 / 3, 1.0 / 3}},
		{"periodic 4", 4, false, []float64{1.0 / 3, 2.0 / 3, 1, 2.0 / 3}},
		{"periodic 5", 5, false, []float64{1.0 / 6, 0.5, 5.0 / 6, 5.0 / 6, 0.5}},
		{"single", 1, true, []float64{1}},
		{"single periodic", 1, false, []float64{1}},
		{"empty", 0, true, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Triang(tt.m, tt.sym)
			if !AlmostEqualHandlingNaNs(result, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestExponential(t *testing.T) {
	e := math.Exp
	tests := []struct {
		name     string
		m        int
		tau      float64
		sym      bool
		center   float64
		expected []float64
	}{
		{"empty", 0, 1, true, -1, []float64{}},
		{"single", 1, 1, true, -1, []float64{1}},
		{"odd periodic", 5, 2, false, -1, []float64{e(-1), e(-0.5), 1, e(-0.5), e(-1)}},
		{"even periodic", 4, 2, false, -1, []float64{e(-1), e(-0.5), 1, e(-0.5)}},
		{"even symmetric", 4, 3, true, -1, []float64{e(-0.5), e(-1.0 / 6), e(-1.0 / 6), e(-0.5)}},
		{"odd symmetric", 5, 3, true, -1, []float64{e(-2.0 / 3), e(-1.0 / 3), 1, e(-1.0 / 3), e(-2.0 / 3)}},
		{"explicit center", 5, 3, false, 1, []float64{e(-1.0 / 3), 1, e(-1.0 / 3), e(-2.0 / 3), e(-1)}},
		{"symmetric overrides center", 5, 3, true, 1, []float64{e(-2.0 / 3), e(-1.0 / 3), 1, e(-1.0 / 3), e(-2.0 / 3)}},
		{"decay from start", 4, 1 / math.Ln2, false, 0, []float64{1, 0.5, 0.25, 0.125}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Exponential(tt.m, tt.tau, tt.sym, tt.center)
			if !AlmostEqualHandlingNaNs(result, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}
