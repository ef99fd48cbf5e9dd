package timeseries

import (
	"time"

	"github.com/sartorproj/goseries/series"
)

// TimeMask is a boolean series indexed by timestamps.
type TimeMask struct {
	m series.Mask
}

// Mask returns the underlying mask.
func (tm *TimeMask) Mask() series.Mask {
	return tm.m
}

// Len returns the number of entries.
func (tm *TimeMask) Len() int {
	return tm.m.Len()
}

// Times returns the timestamps in UTC.
func (tm *TimeMask) Times() []time.Time {
	return fromSeconds(tm.m.Index())
}

// Values returns a copy of the values.
func (tm *TimeMask) Values() []bool {
	return tm.m.Values()
}

// And returns the pairwise conjunction.
func (tm *TimeMask) And(other *TimeMask) *TimeMask {
	return &TimeMask{m: tm.m.And(other.m)}
}

// Or returns the pairwise disjunction.
func (tm *TimeMask) Or(other *TimeMask) *TimeMask {
	return &TimeMask{m: tm.m.Or(other.m)}
}

// Not negates every value.
func (tm *TimeMask) Not() *TimeMask {
	return &TimeMask{m: tm.m.Not()}
}

// Equals reports whether both masks have the same timestamps and values.
func (tm *TimeMask) Equals(other *TimeMask) bool {
	return tm.m.Equals(other.m)
}

// ToTimeSeries converts the mask into a time series of ones and zeros.
func (tm *TimeMask) ToTimeSeries() *TimeSeries {
	return FromSeries(tm.m.ToSeries())
}

// Gt reports pairwise whether ts is greater than other.
func (ts *TimeSeries) Gt(other *TimeSeries) *TimeMask {
	return &TimeMask{m: ts.s.Gt(other.s)}
}

// Lt reports pairwise whether ts is less than other.
func (ts *TimeSeries) Lt(other *TimeSeries) *TimeMask {
	return &TimeMask{m: ts.s.Lt(other.s)}
}

// Eq compares values pairwise for equality.
func (ts *TimeSeries) Eq(other *TimeSeries) *TimeMask {
	return &TimeMask{m: ts.s.Eq(other.s)}
}

// GtScalar reports which values are greater than v.
func (ts *TimeSeries) GtScalar(v float64) *TimeMask {
	return &TimeMask{m: ts.s.GtScalar(v)}
}

// GeScalar reports which values are greater than or equal to v.
func (ts *TimeSeries) GeScalar(v float64) *TimeMask {
	return &TimeMask{m: ts.s.GeScalar(v)}
}

// LeScalar reports which values are less than or equal to v.
func (ts *TimeSeries) LeScalar(v float64) *TimeMask {
	return &TimeMask{m: ts.s.LeScalar(v)}
}

// LtScalar reports which values are less than v.
func (ts *TimeSeries) LtScalar(v float64) *TimeMask {
	return &TimeMask{m: ts.s.LtScalar(v)}
}

// Where keeps values where mask is true and takes them from other elsewhere.
func (ts *TimeSeries) Where(mask *TimeMask, other *TimeSeries) *TimeSeries {
	return ts.derive(ts.s.Where(mask.m, other.s), "")
}
