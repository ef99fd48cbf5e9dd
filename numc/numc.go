// Package numc provides NaN aware numeric helpers over float64 slices.
package numc

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	// almostEqualAbs is the absolute difference under which two values are
	// considered equal regardless of magnitude.
	almostEqualAbs = 1e-150
	// almostEqualRel is the relative difference under which two values are
	// considered equal.
	almostEqualRel = 1e-8
)

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FiniteValues returns the finite entries of x in their original order.
func FiniteValues(x []float64) []float64 {
	result := make([]float64, 0, len(x))
	for _, v := range x {
		if IsFinite(v) {
			result = append(result, v)
		}
	}
	return result
}

// FinitePositions returns the positions of the finite entries of x.
func FinitePositions(x []float64) []int {
	var positions []int
	for i, v := range x {
		if IsFinite(v) {
			positions = append(positions, i)
		}
	}
	return positions
}

// CountFinite returns the number of finite entries of x.
func CountFinite(x []float64) int {
	count := 0
	for _, v := range x {
		if IsFinite(v) {
			count++
		}
	}
	return count
}

// SumFinite returns the sum of the finite entries of x, or 0 if there are none.
func SumFinite(x []float64) float64 {
	return floats.Sum(FiniteValues(x))
}

// Sum returns the sum of the finite entries of x, or NaN if there are none.
func Sum(x []float64) float64 {
	finite := FiniteValues(x)
	if len(finite) == 0 {
		return math.NaN()
	}
	return floats.Sum(finite)
}

// Mean returns the mean of the finite entries of x, or NaN if there are none.
func Mean(x []float64) float64 {
	finite := FiniteValues(x)
	if len(finite) == 0 {
		return math.NaN()
	}
	return stat.Mean(finite, nil)
}

// Std returns the standard deviation of the finite entries of x using the
// denominator n-ddof. A negative ddof is treated as 0. It returns NaN when
// the number of finite entries does not exceed ddof.
func Std(x []float64, ddof int) float64 {
	if ddof < 0 {
		ddof = 0
	}
	finite := FiniteValues(x)
	n := len(finite)
	if n == 0 || n <= ddof {
		return math.NaN()
	}

	switch {
	case ddof == 1:
		return stat.StdDev(finite, nil)
	case n == 1:
		return 0
	}
	// rescale the n-1 denominator of stat.Variance to n-ddof
	return math.Sqrt(stat.Variance(finite, nil) * float64(n-1) / float64(n-ddof))
}

// Min returns the smallest finite entry of x, or NaN if there are none.
func Min(x []float64) float64 {
	finite := FiniteValues(x)
	if len(finite) == 0 {
		return math.NaN()
	}
	return floats.Min(finite)
}

// Max returns the largest finite entry of x, or NaN if there are none.
func Max(x []float64) float64 {
	finite := FiniteValues(x)
	if len(finite) == 0 {
		return math.NaN()
	}
	return floats.Max(finite)
}

// Quantile returns the q-th quantile of the finite entries of x.
//
// This follows NumPy's linear percentile rather than the textbook quantile
// definition: the finite values are sorted and the rank q*(n-1) is
// interpolated between its floor and ceiling. Empty input and q outside
// [0, 1] return NaN.
func Quantile(x []float64, q float64) float64 {
	sorted := FiniteValues(x)
	if len(sorted) == 0 {
		return math.NaN()
	}
	sort.Float64s(sorted)
	return quantileSorted(sorted, q)
}

// Quantiles returns one quantile of x per entry of qs. Empty input returns an
// empty slice; q outside [0, 1] gives NaN.
func Quantiles(x []float64, qs []float64) []float64 {
	sorted := FiniteValues(x)
	if len(sorted) == 0 {
		return []float64{}
	}
	sort.Float64s(sorted)

	result := make([]float64, len(qs))
	for i, q := range qs {
		result[i] = quantileSorted(sorted, q)
	}
	return result
}

func quantileSorted(sorted []float64, q float64) float64 {
	if !(q >= 0 && q <= 1) {
		return math.NaN()
	}
	position := q * float64(len(sorted)-1)
	lower := math.Floor(position)
	idx := int(lower)
	if position == lower {
		return sorted[idx]
	}
	fraction := position - lower
	return sorted[idx] + (sorted[idx+1]-sorted[idx])*fraction
}

// Linspace returns n evenly spaced values over [start, end], like numpy.linspace.
func Linspace(start, end float64, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{start}
	}
	return floats.Span(make([]float64, n), start, end)
}

// Arange returns values from start up to but excluding stop in increments of
// step, like numpy.arange.
func Arange(start, stop, step float64) []float64 {
	if step == 0 || (step > 0 && start >= stop) || (step < 0 && start <= stop) {
		return []float64{}
	}
	n := int(math.Ceil((stop - start) / step))
	result := make([]float64, n)
	for i := range result {
		result[i] = start + float64(i)*step
	}
	return result
}

// Reverse returns a reversed copy of x.
func Reverse(x []float64) []float64 {
	result := make([]float64, len(x))
	copy(result, x)
	floats.Reverse(result)
	return result
}

// Mul returns the elementwise product of a and b, which must have equal length.
func Mul(a, b []float64) []float64 {
	return floats.MulTo(make([]float64, len(a)), a, b)
}

// EqualHandlingNaNs reports whether a and b have the same length and every
// pair of entries is equal or both NaN.
func EqualHandlingNaNs(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] && !(math.IsNaN(a[i]) && math.IsNaN(b[i])) {
			return false
		}
	}
	return true
}

// AlmostEqual reports whether a and b differ by less than 1e-150 in absolute
// terms or by less than 1e-8 relative to the larger magnitude.
//
// It is intended for test and idempotence assertions, not numerical work.
func AlmostEqual(a, b float64) bool {
	if a == b {
		return true
	}
	absDiff := math.Abs(a - b)
	if absDiff < almostEqualAbs {
		return true
	}
	maxAbs := math.Max(math.Abs(a), math.Abs(b))
	return absDiff/maxAbs < almostEqualRel
}

// AlmostEqualHandlingNaNs is the tolerance based counterpart of
// EqualHandlingNaNs.
func AlmostEqualHandlingNaNs(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !(math.IsNaN(a[i]) && math.IsNaN(b[i])) && !AlmostEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
