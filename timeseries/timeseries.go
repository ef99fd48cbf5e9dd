package timeseries

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/sartorproj/goseries/series"
)

// ErrLengthMismatch is returned when timestamps and values have different lengths.
var ErrLengthMismatch = errors.New("timestamps and values must have the same length")

// TimeSeries is a series indexed by timestamps.
//
// Timestamps are stored as seconds since the Unix epoch, so the rolling
// engine sees a numeric index. Times returns them in UTC.
type TimeSeries struct {
	s    series.Series
	Name string
}

// New creates a time series from timestamps and values.
func New(timestamps []time.Time, values []float64) (*TimeSeries, error) {
	if len(timestamps) != len(values) {
		return nil, fmt.Errorf("%w: %d timestamps, %d values",
			ErrLengthMismatch, len(timestamps), len(values))
	}
	s, err := series.New(toSeconds(timestamps), values)
	if err != nil {
		return nil, err
	}
	return &TimeSeries{s: s}, nil
}

// FromValues creates a time series whose timestamps start at start and are
// step apart.
func FromValues(values []float64, start time.Time, step time.Duration) *TimeSeries {
	timestamps := make([]time.Time, len(values))
	for i := range timestamps {
		timestamps[i] = start.Add(time.Duration(i) * step)
	}
	ts, _ := New(timestamps, values)
	return ts
}

// FromSeries wraps a series whose index holds seconds since the Unix epoch.
func FromSeries(s series.Series) *TimeSeries {
	return &TimeSeries{s: s}
}

// FromMap creates a time series from a timestamp to value map, ordered by time.
func FromMap(m map[time.Time]float64) *TimeSeries {
	timestamps := make([]time.Time, 0, len(m))
	for t := range m {
		timestamps = append(timestamps, t)
	}
	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i].Before(timestamps[j]) })

	values := make([]float64, len(timestamps))
	for i, t := range timestamps {
		values[i] = m[t]
	}
	ts, _ := New(timestamps, values)
	return ts
}

// Series returns the underlying series.
func (ts *TimeSeries) Series() series.Series {
	return ts.s
}

// Len returns the length of the series.
func (ts *TimeSeries) Len() int {
	return ts.s.Len()
}

// Times returns the timestamps in UTC.
func (ts *TimeSeries) Times() []time.Time {
	return fromSeconds(ts.s.Index())
}

// Values returns a copy of the values.
func (ts *TimeSeries) Values() []float64 {
	return ts.s.Values()
}

// ToMap returns the series as a timestamp to value map.
func (ts *TimeSeries) ToMap() map[time.Time]float64 {
	times := ts.Times()
	values := ts.s.Values()
	m := make(map[time.Time]float64, len(times))
	for i, t := range times {
		if _, ok := m[t]; !ok {
			m[t] = values[i]
		}
	}
	return m
}

func (ts *TimeSeries) derive(s series.Series, suffix string) *TimeSeries {
	return &TimeSeries{s: s, Name: ts.Name + suffix}
}

// Loc selects the entries at the given timestamps.
func (ts *TimeSeries) Loc(times ...time.Time) *TimeSeries {
	return ts.derive(ts.s.Loc(toSeconds(times)...), "")
}

// Head returns the first n entries.
func (ts *TimeSeries) Head(n int) *TimeSeries {
	return ts.derive(ts.s.Head(n), "")
}

// Tail returns the last n entries.
func (ts *TimeSeries) Tail(n int) *TimeSeries {
	return ts.derive(ts.s.Tail(n), "")
}

// Slice returns the entries from start to end (exclusive).
func (ts *TimeSeries) Slice(start, end int) *TimeSeries {
	start = max(start, 0)
	end = min(end, ts.Len())
	if start >= end {
		return ts.derive(series.Series{}, "")
	}
	return ts.derive(ts.s.ILoc(start, end, 1), "")
}

// Between returns the entries with from <= t < to.
func (ts *TimeSeries) Between(from, to time.Time) *TimeSeries {
	index := ts.s.IndexAsSeries()
	return ts.Filter(&TimeMask{m: index.GeScalar(toSecond(from)).And(index.LtScalar(toSecond(to)))})
}

// Filter keeps the entries where mask is true.
func (ts *TimeSeries) Filter(mask *TimeMask) *TimeSeries {
	var positions []int
	for i, keep := range mask.m.Values() {
		if keep {
			positions = append(positions, i)
		}
	}
	return ts.derive(ts.s.ILocPositions(positions), "")
}

// Copy returns a deep copy of the series.
func (ts *TimeSeries) Copy() *TimeSeries {
	return ts.derive(ts.s.Copy(), "")
}

// Mean returns the mean of the finite values.
func (ts *TimeSeries) Mean() float64 {
	return ts.s.Mean()
}

// Std returns the sample standard deviation of the finite values.
func (ts *TimeSeries) Std() float64 {
	return ts.s.Std(1)
}

// Min returns the smallest finite value.
func (ts *TimeSeries) Min() float64 {
	return ts.s.Min()
}

// Max returns the largest finite value.
func (ts *TimeSeries) Max() float64 {
	return ts.s.Max()
}

// Median returns the median of the finite values.
func (ts *TimeSeries) Median() float64 {
	return ts.s.Median()
}

// Diff returns the first difference. The first value is NaN.
func (ts *TimeSeries) Diff() *TimeSeries {
	return ts.derive(ts.s.Diff(), "_diff")
}

// Lag shifts the values k steps forward in time, filling the first k
// entries with NaN.
func (ts *TimeSeries) Lag(k int) *TimeSeries {
	values := ts.s.Values()
	lagged := make([]float64, len(values))
	for i := range lagged {
		if i < k || i-k >= len(values) {
			lagged[i] = math.NaN()
		} else {
			lagged[i] = values[i-k]
		}
	}
	return ts.derive(series.Must(ts.s.Index(), lagged), "_lag")
}

// Log applies the natural logarithm. Non-positive values become NaN.
func (ts *TimeSeries) Log() *TimeSeries {
	return ts.derive(ts.s.Apply(func(v float64) float64 {
		if v > 0 {
			return math.Log(v)
		}
		return math.NaN()
	}), "_log")
}

// Normalize standardizes the finite values to zero mean and unit variance.
func (ts *TimeSeries) Normalize() *TimeSeries {
	std := ts.Std()
	if std == 0 || math.IsNaN(std) {
		return ts.Copy()
	}
	return ts.derive(ts.s.SubScalar(ts.Mean()).MulScalar(1/std), "_normalized")
}

// FillNA replaces NaN values with v.
func (ts *TimeSeries) FillNA(v float64) *TimeSeries {
	return ts.derive(ts.s.FillNA(v), "")
}

// DropNA removes entries whose value is NaN.
func (ts *TimeSeries) DropNA() *TimeSeries {
	return ts.derive(ts.s.DropNA(), "")
}

// Regular reports whether consecutive timestamps are equally spaced. Rolling
// windows that pad the input assume a regular index.
func (ts *TimeSeries) Regular() bool {
	times := ts.Times()
	if len(times) < 3 {
		return true
	}
	step := times[1].Sub(times[0])
	for i := 2; i < len(times); i++ {
		if times[i].Sub(times[i-1]) != step {
			return false
		}
	}
	return true
}

// Equals reports whether both series have the same timestamps and values.
func (ts *TimeSeries) Equals(other *TimeSeries) bool {
	return ts.s.Equals(other.s)
}

// AlmostEquals is like Equals but tolerates rounding differences in values.
func (ts *TimeSeries) AlmostEquals(other *TimeSeries) bool {
	return ts.s.AlmostEquals(other.s)
}

func (ts *TimeSeries) String() string {
	if ts.Name != "" {
		return ts.Name + "\n" + ts.s.String()
	}
	return ts.s.String()
}

func toSecond(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

func toSeconds(times []time.Time) []float64 {
	result := make([]float64, len(times))
	for i, t := range times {
		result[i] = toSecond(t)
	}
	return result
}

func fromSecond(f float64) time.Time {
	sec := math.Floor(f)
	nsec := math.Round((f - sec) * 1e9)
	return time.Unix(int64(sec), int64(nsec)).UTC()
}

func fromSeconds(index []float64) []time.Time {
	result := make([]time.Time, len(index))
	for i, f := range index {
		result[i] = fromSecond(f)
	}
	return result
}
