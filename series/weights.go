package series

import (
	"fmt"
	"math"
	"strings"

	"github.com/sartorproj/goseries/numc"
)

// Weighting selects how samples inside a rolling window are weighted.
type Weighting int

const (
	// Uniform gives every sample the same weight.
	Uniform Weighting = iota
	// Triangular weights samples with a symmetric triangular window.
	Triangular
	// Exponential decays weights with the distance from the newest sample.
	Exponential
)

func (w Weighting) String() string {
	switch w {
	case Uniform:
		return "uniform"
	case Triangular:
		return "triangular"
	case Exponential:
		return "exponential"
	default:
		return fmt.Sprintf("Weighting(%d)", int(w))
	}
}

// ParseWeighting parses a weighting name. It accepts "none" and "uniform",
// "triang" and "triangular", "expn" and "exponential", in any case.
func ParseWeighting(name string) (Weighting, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "uniform":
		return Uniform, nil
	case "triang", "triangular":
		return Triangular, nil
	case "expn", "exponential":
		return Exponential, nil
	default:
		return Uniform, fmt.Errorf("%w: %q", ErrUnknownWeighting, name)
	}
}

// WindowWeights returns the weights of a window of the given size. Alpha is
// the smoothing factor and is only used by Exponential weighting.
//
// Exponential weights are ordered so that the weight 1 is the last element,
// matching the newest sample of a full window.
func WindowWeights(w Weighting, size int, alpha float64) []float64 {
	if size <= 0 {
		return []float64{}
	}
	switch w {
	case Triangular:
		return numc.Triang(size, true)
	case Exponential:
		tau := -1 / math.Log(1-alpha)
		return numc.Reverse(numc.Exponential(size, tau, false, 0))
	default:
		weights := make([]float64, size)
		for i := range weights {
			weights[i] = 1
		}
		return weights
	}
}
