package series

import (
	"math"

	"github.com/sartorproj/goseries/numc"
)

// Aggregator reduces one rolling window to a single value.
//
// ProcessWindow receives the window and the weights aligned with it. The
// rolling engine calls DefaultValue instead of ProcessWindow when the window
// holds fewer finite values than the configured minimum.
type Aggregator interface {
	ProcessWindow(window Series, weights []float64) float64
	DefaultValue() float64
}

// weighted returns weights ⊙ values.
func weighted(window Series, weights []float64) []float64 {
	return numc.Mul(weights, window.values)
}

// Sum adds the weighted finite values.
type Sum struct{}

func (Sum) ProcessWindow(window Series, weights []float64) float64 {
	return numc.SumFinite(weighted(window, weights))
}

func (Sum) DefaultValue() float64 { return math.NaN() }

// Count counts the finite values of the window. The zero value defaults to
// NaN; use CountWithDefault to choose another default.
type Count struct {
	def    float64
	hasDef bool
}

// CountWithDefault returns a Count whose default value is v.
func CountWithDefault(v float64) Count {
	return Count{def: v, hasDef: true}
}

func (Count) ProcessWindow(window Series, _ []float64) float64 {
	return float64(window.FiniteLen())
}

func (c Count) DefaultValue() float64 {
	if c.hasDef {
		return c.def
	}
	return math.NaN()
}

// Mean divides the weighted finite sum by the sum of all weights of the
// window. The zero value defaults to NaN.
type Mean struct {
	def    float64
	hasDef bool
}

// MeanWithDefault returns a Mean whose default value is v.
func MeanWithDefault(v float64) Mean {
	return Mean{def: v, hasDef: true}
}

func (Mean) ProcessWindow(window Series, weights []float64) float64 {
	return numc.SumFinite(weighted(window, weights)) / numc.SumFinite(weights)
}

func (m Mean) DefaultValue() float64 {
	if m.hasDef {
		return m.def
	}
	return math.NaN()
}

// WeightedMean divides the weighted finite sum by the sum of the weights at
// positions holding a finite value. It is the mean to use with decaying or
// triangular weights over windows containing NaN.
type WeightedMean struct{}

func (WeightedMean) ProcessWindow(window Series, weights []float64) float64 {
	var num, den float64
	for i, v := range window.values {
		if !numc.IsFinite(v) {
			continue
		}
		num += weights[i] * v
		den += weights[i]
	}
	return num / den
}

func (WeightedMean) DefaultValue() float64 { return math.NaN() }

// Quantile returns the Q-th quantile of the weighted finite values.
type Quantile struct {
	Q float64
}

func (q Quantile) ProcessWindow(window Series, weights []float64) float64 {
	return numc.Quantile(weighted(window, weights), q.Q)
}

func (Quantile) DefaultValue() float64 { return math.NaN() }

// Median is Quantile{Q: 0.5}.
type Median struct{}

func (Median) ProcessWindow(window Series, weights []float64) float64 {
	return Quantile{Q: 0.5}.ProcessWindow(window, weights)
}

func (Median) DefaultValue() float64 { return math.NaN() }

// Std is the sample standard deviation of the weighted finite values.
type Std struct{}

func (Std) ProcessWindow(window Series, weights []float64) float64 {
	return numc.Std(weighted(window, weights), 1)
}

func (Std) DefaultValue() float64 { return math.NaN() }

// Min returns the smallest weighted finite value.
type Min struct{}

func (Min) ProcessWindow(window Series, weights []float64) float64 {
	return numc.Min(weighted(window, weights))
}

func (Min) DefaultValue() float64 { return math.NaN() }

// Max returns the largest weighted finite value.
type Max struct{}

func (Max) ProcessWindow(window Series, weights []float64) float64 {
	return numc.Max(weighted(window, weights))
}

func (Max) DefaultValue() float64 { return math.NaN() }
