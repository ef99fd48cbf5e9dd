package series

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidWindowSize is returned when the window size is not positive.
	ErrInvalidWindowSize = errors.New("window size must be positive")
	// ErrInvalidMinPeriods is returned when MinPeriods is negative.
	ErrInvalidMinPeriods = errors.New("min periods must not be negative")
	// ErrInvalidAlpha is returned when an exponential window has alpha outside (0, 1).
	ErrInvalidAlpha = errors.New("alpha must be in (0, 1)")
	// ErrNilAggregator is returned when Rolling is called without an aggregator.
	ErrNilAggregator = errors.New("aggregator must not be nil")
	// ErrUnknownWeighting is returned by ParseWeighting for unknown names.
	ErrUnknownWeighting = errors.New("unknown weighting")
)

// RollingConfig holds the parameters of a rolling window.
type RollingConfig struct {
	// MinPeriods is the number of finite values a window needs to be
	// aggregated. Zero means the window size.
	MinPeriods int
	// Center selects centered windows when the window is longer than the
	// series. Shorter windows are always centered on their position.
	Center bool
	// Symmetric keeps windows symmetric around their position at the edges
	// of the series by shrinking both sides. It is meant for odd windows.
	Symmetric bool
	// Weighting selects the window weights.
	Weighting Weighting
	// Alpha is the smoothing factor of Exponential weighting.
	Alpha float64
}

// DefaultRollingConfig returns a centered, uniformly weighted configuration.
func DefaultRollingConfig() *RollingConfig {
	return &RollingConfig{
		MinPeriods: 0,
		Center:     true,
		Symmetric:  false,
		Weighting:  Uniform,
		Alpha:      0.5,
	}
}

func (c *RollingConfig) validate(windowSize int) error {
	if windowSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWindowSize, windowSize)
	}
	if c.MinPeriods < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMinPeriods, c.MinPeriods)
	}
	if c.Weighting == Exponential && !(c.Alpha > 0 && c.Alpha < 1) {
		return fmt.Errorf("%w: got %g", ErrInvalidAlpha, c.Alpha)
	}
	return nil
}

// Rolling aggregates a window around every position of the series and
// returns a Series with the same index.
//
// A window is handed to agg only when it holds at least MinPeriods finite
// values; otherwise the position gets agg.DefaultValue(). A nil cfg means
// DefaultRollingConfig().
//
// Windows longer than the series are padded with NaN so that the results
// align with pandas. Exponential weighting always uses a window as long as
// the series and reproduces pandas ewm(alpha, min_periods).mean() when used
// with WeightedMean: a position is NaN until MinPeriods finite values (at
// least one) have been observed up to it.
func (s Series) Rolling(windowSize int, agg Aggregator, cfg *RollingConfig) (Series, error) {
	if cfg == nil {
		cfg = DefaultRollingConfig()
	}
	if agg == nil {
		return Series{}, ErrNilAggregator
	}
	if err := cfg.validate(windowSize); err != nil {
		return Series{}, err
	}

	n := s.Len()
	if n == 0 {
		return Series{}, nil
	}

	log := logger().WithFields(logrus.Fields{
		"window":    windowSize,
		"weighting": cfg.Weighting,
		"length":    n,
	})

	input := s
	switch {
	case cfg.Weighting == Exponential:
		input = ewmInputCorrection(s)
		windowSize = n
		log.WithField("padded_length", input.Len()).Debug("Applied exponential input correction")
	case windowSize > n:
		input = windowSizeCorrection(windowSize, cfg.Center, s)
		log.WithField("padded_length", input.Len()).Debug("Padded series shorter than window")
	}

	minPeriods := cfg.MinPeriods
	switch {
	case cfg.Weighting == Exponential:
		// gated against the original values after the correction
		minPeriods = 1
	case minPeriods == 0:
		minPeriods = windowSize
	}

	weights := WindowWeights(cfg.Weighting, windowSize, cfg.Alpha)
	results := make([]float64, input.Len())
	for i := range results {
		b := windowBounds(i, windowSize, input.Len(), cfg.Symmetric)
		window := Series{
			index:  input.index[b.left : b.right+1],
			values: input.values[b.left : b.right+1],
		}
		if window.FiniteLen() >= minPeriods {
			results[i] = agg.ProcessWindow(window, weights[b.weightLeft:b.weightRight+1])
		} else {
			results[i] = agg.DefaultValue()
		}
	}

	if cfg.Weighting == Exponential {
		results = ewmCorrection(results, s.values)
		minPeriods = max(cfg.MinPeriods, 1)
		ewmMinPeriods(results, s.values, minPeriods)
	}
	if len(results) > n {
		results = results[:n]
	}
	log.WithField("min_periods", minPeriods).Debug("Rolled window")

	return Series{index: cloneFloats(s.index), values: results}, nil
}

// bounds are inclusive positions of a window over the input and over the
// weights.
type bounds struct {
	left, right             int
	weightLeft, weightRight int
}

// windowBounds returns the window centered on position i of an input of
// length n.
func windowBounds(i, windowSize, n int, symmetric bool) bounds {
	offset := int(math.Round(float64(windowSize-1) / 2))
	b := bounds{
		left:        i - offset,
		right:       i - offset + windowSize - 1,
		weightLeft:  0,
		weightRight: windowSize - 1,
	}

	if symmetric {
		if b.left < 0 {
			leftErr := b.left
			rightErr := windowSize - 1 - i - offset
			b.shift(leftErr, rightErr)
		}
		if b.right >= n {
			clipped := b.right - n
			leftErr := -clipped - 1
			rightErr := b.right - (n - 1)
			b.shift(leftErr, rightErr)
		}
	} else {
		if b.left < 0 {
			b.weightLeft -= b.left
			b.left = 0
		}
		if b.right >= n {
			rightErr := b.right - (n - 1)
			b.weightRight -= rightErr
			b.right = n - 1
		}
	}
	return b
}

func (b *bounds) shift(leftErr, rightErr int) {
	b.left -= leftErr
	b.right -= rightErr
	b.weightLeft -= leftErr
	b.weightRight -= rightErr
}
