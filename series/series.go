package series

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/goseries/numc"
)

// ErrLengthMismatch is returned when index and values have different lengths.
var ErrLengthMismatch = errors.New("index and values must have the same length")

// Series is an index paired with float64 values of the same length.
//
// The zero value is an empty Series. A Series is never modified after
// construction, so it is safe to share between goroutines.
type Series struct {
	index  []float64
	values []float64
}

// New creates a Series from copies of index and values.
func New(index, values []float64) (Series, error) {
	if len(index) != len(values) {
		return Series{}, fmt.Errorf("%w: index has %d entries, values has %d",
			ErrLengthMismatch, len(index), len(values))
	}
	return Series{
		index:  cloneFloats(index),
		values: cloneFloats(values),
	}, nil
}

// Must is like New but panics if the lengths differ.
func Must(index, values []float64) Series {
	s, err := New(index, values)
	if err != nil {
		panic(err)
	}
	return s
}

// FromSlices is an alias of New.
func FromSlices(index, values []float64) (Series, error) {
	return New(index, values)
}

// FromMap creates a Series from an index to value map, ordered by index.
func FromMap(m map[float64]float64) Series {
	index := make([]float64, 0, len(m))
	for k := range m {
		index = append(index, k)
	}
	sort.Float64s(index)

	values := make([]float64, len(index))
	for i, k := range index {
		values[i] = m[k]
	}
	return Series{index: index, values: values}
}

// Len returns the number of entries.
func (s Series) Len() int {
	return len(s.index)
}

// Empty reports whether the Series has no entries.
func (s Series) Empty() bool {
	return len(s.index) == 0 && len(s.values) == 0
}

// Index returns a copy of the index.
func (s Series) Index() []float64 {
	return cloneFloats(s.index)
}

// Values returns a copy of the values.
func (s Series) Values() []float64 {
	return cloneFloats(s.values)
}

// FiniteValues returns the finite values in order.
func (s Series) FiniteValues() []float64 {
	return numc.FiniteValues(s.values)
}

// FiniteLen returns the number of finite values.
func (s Series) FiniteLen() int {
	return numc.CountFinite(s.values)
}

// Copy returns a deep copy of the Series.
func (s Series) Copy() Series {
	return Series{index: cloneFloats(s.index), values: cloneFloats(s.values)}
}

// IndexAsSeries returns a Series whose values are the index.
func (s Series) IndexAsSeries() Series {
	return Series{index: cloneFloats(s.index), values: cloneFloats(s.index)}
}

// ToMap returns the Series as an index to value map. When an index value is
// repeated, the first entry wins.
func (s Series) ToMap() map[float64]float64 {
	m := make(map[float64]float64, s.Len())
	for i, k := range s.index {
		if _, ok := m[k]; !ok {
			m[k] = s.values[i]
		}
	}
	return m
}

// ToMask converts the Series into a Mask. Non-zero values other than NaN
// become true.
func (s Series) ToMask() Mask {
	values := make([]bool, len(s.values))
	for i, v := range s.values {
		values[i] = v != 0 && !math.IsNaN(v)
	}
	return Mask{index: cloneFloats(s.index), values: values}
}

// Count returns the number of finite values.
func (s Series) Count() int {
	return s.FiniteLen()
}

// Sum returns the sum of the finite values, or NaN if there are none.
func (s Series) Sum() float64 {
	return numc.Sum(s.values)
}

// Mean returns the mean of the finite values, or NaN if there are none.
func (s Series) Mean() float64 {
	return numc.Mean(s.values)
}

// Std returns the standard deviation of the finite values with denominator
// n-ddof. It returns NaN when there are no more than ddof finite values.
func (s Series) Std(ddof int) float64 {
	return numc.Std(s.values, ddof)
}

// Min returns the smallest finite value, or NaN if there are none.
func (s Series) Min() float64 {
	return numc.Min(s.values)
}

// Max returns the largest finite value, or NaN if there are none.
func (s Series) Max() float64 {
	return numc.Max(s.values)
}

// Quantile returns the q-th quantile of the finite values using NumPy's
// linear interpolation. An empty Series returns NaN.
func (s Series) Quantile(q float64) float64 {
	return numc.Quantile(s.values, q)
}

// Median returns the 0.5 quantile.
func (s Series) Median() float64 {
	return s.Quantile(0.5)
}

// Equals reports whether both Series have the same index and values, with
// NaN considered equal to NaN.
func (s Series) Equals(other Series) bool {
	return numc.EqualHandlingNaNs(s.index, other.index) &&
		numc.EqualHandlingNaNs(s.values, other.values)
}

// AlmostEquals is like Equals but compares values with numc.AlmostEqual.
func (s Series) AlmostEquals(other Series) bool {
	return numc.EqualHandlingNaNs(s.index, other.index) &&
		numc.AlmostEqualHandlingNaNs(s.values, other.values)
}

// Equal reports whether lhs equals rhs.
func Equal(lhs, rhs Series) bool {
	return lhs.Equals(rhs)
}

// AlmostEqual reports whether lhs almost equals rhs.
func AlmostEqual(lhs, rhs Series) bool {
	return lhs.AlmostEquals(rhs)
}

// NotEqual reports whether lhs differs from rhs.
func NotEqual(lhs, rhs Series) bool {
	return !lhs.Equals(rhs)
}

// String formats the Series as two columns. Long series show the first and
// last five entries.
func (s Series) String() string {
	var b strings.Builder
	b.WriteString("Series:\nindex\tvalue\n")
	writeRows(&b, s.Len(), func(i int) string {
		return fmt.Sprintf("%g\t%g\n", s.index[i], s.values[i])
	})
	return b.String()
}

// Diff returns the difference between each value and the previous one. The
// first value is NaN.
func (s Series) Diff() Series {
	result := make([]float64, s.Len())
	previous := math.NaN()
	for i, v := range s.values {
		result[i] = v - previous
		previous = v
	}
	return s.withValues(result)
}

// Abs returns the absolute values.
func (s Series) Abs() Series {
	return s.Apply(math.Abs)
}

// Pow raises every value to power.
func (s Series) Pow(power float64) Series {
	return s.Apply(func(v float64) float64 { return math.Pow(v, power) })
}

// Clip limits values to [lower, upper]. NaN values are kept.
func (s Series) Clip(lower, upper float64) Series {
	return s.Apply(func(v float64) float64 {
		if math.IsNaN(v) {
			return v
		}
		return math.Min(math.Max(v, lower), upper)
	})
}

// Apply returns a Series with f applied to every value.
func (s Series) Apply(f func(float64) float64) Series {
	result := make([]float64, s.Len())
	for i, v := range s.values {
		result[i] = f(v)
	}
	return s.withValues(result)
}

// FillNA replaces NaN values with value. Infinite values are kept.
func (s Series) FillNA(value float64) Series {
	return s.Apply(func(v float64) float64 {
		if math.IsNaN(v) {
			return value
		}
		return v
	})
}

// DropNA removes entries whose value is NaN. Infinite values are kept.
func (s Series) DropNA() Series {
	var positions []int
	for i, v := range s.values {
		if !math.IsNaN(v) {
			positions = append(positions, i)
		}
	}
	return s.take(positions)
}

// Add returns the pairwise sum of the values. The index is taken from s and
// the indices are not compared. Add panics if the lengths differ.
func (s Series) Add(other Series) Series {
	return s.withValues(floats.AddTo(make([]float64, s.Len()), s.values, other.values))
}

// Sub returns the pairwise difference of the values. See Add.
func (s Series) Sub(other Series) Series {
	return s.withValues(floats.SubTo(make([]float64, s.Len()), s.values, other.values))
}

// Mul returns the pairwise product of the values. See Add.
func (s Series) Mul(other Series) Series {
	return s.withValues(floats.MulTo(make([]float64, s.Len()), s.values, other.values))
}

// AddScalar adds v to every value.
func (s Series) AddScalar(v float64) Series {
	result := cloneFloats(s.values)
	floats.AddConst(v, result)
	return s.withValues(result)
}

// SubScalar subtracts v from every value.
func (s Series) SubScalar(v float64) Series {
	return s.AddScalar(-v)
}

// MulScalar multiplies every value by v.
func (s Series) MulScalar(v float64) Series {
	result := cloneFloats(s.values)
	floats.Scale(v, result)
	return s.withValues(result)
}

// withValues returns a Series sharing nothing with s, with the index of s and
// the given values, which must be owned by the caller.
func (s Series) withValues(values []float64) Series {
	return Series{index: cloneFloats(s.index), values: values}
}

func (s Series) take(positions []int) Series {
	return Series{index: take(s.index, positions), values: take(s.values, positions)}
}

func cloneFloats(x []float64) []float64 {
	result := make([]float64, len(x))
	copy(result, x)
	return result
}

func nanFloats(n int) []float64 {
	result := make([]float64, n)
	for i := range result {
		result[i] = math.NaN()
	}
	return result
}

func writeRows(b *strings.Builder, n int, row func(int) string) {
	if n <= 10 {
		for i := 0; i < n; i++ {
			b.WriteString(row(i))
		}
		return
	}
	for i := 0; i < 5; i++ {
		b.WriteString(row(i))
	}
	b.WriteString("...\n")
	for i := n - 5; i < n; i++ {
		b.WriteString(row(i))
	}
}
