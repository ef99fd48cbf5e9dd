package series

import (
	"errors"
	"math"
	"testing"
)

func TestWindowWeights(t *testing.T) {
	tests := []struct {
		name      string
		weighting Weighting
		size      int
		alpha     float64
		expected  []float64
	}{
		{"uniform", Uniform, 3, 0, []float64{1, 1, 1}},
		{"triangular odd", Triangular, 3, 0, []float64{0.5, 1, 0.5}},
		{"triangular even", Triangular, 4, 0, []float64{0.25, 0.75, 0.75, 0.25}},
		{"exponential", Exponential, 4, 0.5, []float64{0.125, 0.25, 0.5, 1}},
		{"empty", Uniform, 0, 0, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WindowWeights(tt.weighting, tt.size, tt.alpha)
			if len(result) != len(tt.expected) {
				t.Fatalf("Expected %d weights, got %d", len(tt.expected), len(result))
			}
			for i := range result {
				if math.Abs(result[i]-tt.expected[i]) > 1e-10 {
					t.Errorf("Weight %d: expected %f, got %f", i, tt.expected[i], result[i])
				}
			}
		})
	}
}

func TestParseWeighting(t *testing.T) {
	tests := []struct {
		input    string
		expected Weighting
	}{
		{"none", Uniform},
		{"Uniform", Uniform},
		{"triang", Triangular},
		{"triangular", Triangular},
		{"expn", Exponential},
		{"EXPONENTIAL", Exponential},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			w, err := ParseWeighting(tt.input)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if w != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, w)
			}
		})
	}

	if _, err := ParseWeighting("gaussian"); !errors.Is(err, ErrUnknownWeighting) {
		t.Errorf("Expected ErrUnknownWeighting, got %v", err)
	}
}

func TestWeightingString(t *testing.T) {
	if Triangular.String() != "triangular" {
		t.Errorf("Expected triangular, got %s", Triangular.String())
	}
	if Weighting(9).String() != "Weighting(9)" {
		t.Errorf("Unexpected name %s", Weighting(9).String())
	}
}
