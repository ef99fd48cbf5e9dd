package series

import (
	"math"

	"github.com/sartorproj/goseries/numc"
)

// indexDelta returns the spacing of a regularly spaced index, rounded up.
// Indices with fewer than two entries have a spacing of 1.
func indexDelta(index []float64) float64 {
	if len(index) < 2 {
		return 1
	}
	return math.Ceil(math.Abs(index[1] - index[0]))
}

// windowSizeCorrection pads a series shorter than the window with NaN so
// that the rolling results line up with pandas. The index is extended with
// the spacing of the first two entries.
func windowSizeCorrection(windowSize int, center bool, input Series) Series {
	n := input.Len()
	if n <= 1 {
		return input
	}

	nPad := windowSize / 2
	if n%2 == 0 {
		nPad--
	}
	delta := indexDelta(input.index)

	values := append(cloneFloats(input.values), nanFloats(nPad)...)
	start := input.index[0]
	end := input.index[n-1] + float64(nPad)*delta
	size := nPad + n

	if !center {
		switch {
		case windowSize > n+1:
			values = append(nanFloats(nPad), input.values...)
			start -= float64(nPad) * delta
			end -= float64(nPad) * delta
		case nPad == 1:
			values = append(nanFloats(2), input.values...)
			start -= 2 * delta
			end -= delta
			size++
		case nPad == 2:
			values = append(append(nanFloats(1), input.values...), math.NaN())
			start -= delta
			end -= delta
		}
	}

	return Series{index: numc.Linspace(start, end, size), values: values}
}

// ewmInputCorrection prepares a series for an exponential window. Leading
// non-finite values are dropped and as many NaN as remaining values are
// prepended, extending the index backwards.
func ewmInputCorrection(input Series) Series {
	first := firstFinite(input.values)
	if first < 0 {
		return input
	}

	delta := indexDelta(input.index)
	rest := Series{index: input.index[first:], values: input.values[first:]}
	m := rest.Len()

	start := rest.index[0] - float64(m)*delta
	return Series{
		index:  numc.Linspace(start, rest.index[m-1], 2*m),
		values: append(nanFloats(m), rest.values...),
	}
}

// ewmCorrection aligns the results of an exponential window over an input
// prepared by ewmInputCorrection with the original values. The result has
// the length of values.
func ewmCorrection(results, values []float64) []float64 {
	n := len(values)
	first := firstFinite(values)
	if first < 0 || numc.CountFinite(results) == 0 {
		return nanFloats(n)
	}

	effValues := values[first:]
	effResults := results
	if len(effResults) > len(effValues) {
		effResults = numc.FiniteValues(effResults)
		if len(effResults) > len(effValues) {
			effResults = effResults[:len(effValues)]
		}
	}

	corrected := effResults
	if effResults[0] != effValues[0] {
		corrected = make([]float64, len(effResults))
		corrected[0] = effValues[0]
		copy(corrected[1:], effResults)
	}

	if len(corrected) >= n {
		return corrected[:n]
	}
	return append(nanFloats(n-len(corrected)), corrected...)
}

// ewmMinPeriods sets results to NaN at every position where fewer than
// minPeriods finite values have been observed so far.
func ewmMinPeriods(results, values []float64, minPeriods int) {
	seen := 0
	for i, v := range values {
		if numc.IsFinite(v) {
			seen++
		}
		if seen < minPeriods {
			results[i] = math.NaN()
		}
	}
}

func firstFinite(x []float64) int {
	for i, v := range x {
		if numc.IsFinite(v) {
			return i
		}
	}
	return -1
}
