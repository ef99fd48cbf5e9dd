package timeseries

import (
	"math"

	"github.com/sartorproj/goseries/series"
)

// Rolling aggregates a window of windowSize observations around every
// timestamp. See series.Series.Rolling.
func (ts *TimeSeries) Rolling(windowSize int, agg series.Aggregator, cfg *series.RollingConfig) (*TimeSeries, error) {
	result, err := ts.s.Rolling(windowSize, agg, cfg)
	if err != nil {
		return nil, err
	}
	return ts.derive(result, "_rolling"), nil
}

// Window is a rolling window over a TimeSeries.
type Window struct {
	ts *TimeSeries
	w  series.Window
}

// Window returns a rolling window of windowSize observations. A nil cfg
// means series.DefaultRollingConfig().
func (ts *TimeSeries) Window(windowSize int, cfg *series.RollingConfig) *Window {
	return &Window{ts: ts, w: ts.s.Window(windowSize, cfg)}
}

func (w *Window) wrap(s series.Series, err error) (*TimeSeries, error) {
	if err != nil {
		return nil, err
	}
	return w.ts.derive(s, "_rolling"), nil
}

// Aggregate rolls the window with agg.
func (w *Window) Aggregate(agg series.Aggregator) (*TimeSeries, error) {
	return w.wrap(w.w.Aggregate(agg))
}

// Mean returns the rolling mean.
func (w *Window) Mean() (*TimeSeries, error) { return w.wrap(w.w.Mean()) }

// Sum returns the rolling sum.
func (w *Window) Sum() (*TimeSeries, error) { return w.wrap(w.w.Sum()) }

// Count returns the rolling count of finite values.
func (w *Window) Count() (*TimeSeries, error) { return w.wrap(w.w.Count()) }

// Quantile returns the rolling q-th quantile.
func (w *Window) Quantile(q float64) (*TimeSeries, error) { return w.wrap(w.w.Quantile(q)) }

// Median returns the rolling median.
func (w *Window) Median() (*TimeSeries, error) { return w.wrap(w.w.Median()) }

// Min returns the rolling minimum.
func (w *Window) Min() (*TimeSeries, error) { return w.wrap(w.w.Min()) }

// Max returns the rolling maximum.
func (w *Window) Max() (*TimeSeries, error) { return w.wrap(w.w.Max()) }

// Std returns the rolling sample standard deviation.
func (w *Window) Std() (*TimeSeries, error) { return w.wrap(w.w.Std()) }

// MovingAverage returns the trailing mean over window observations. The
// first window-1 entries are NaN.
func (ts *TimeSeries) MovingAverage(window int) (*TimeSeries, error) {
	centered, err := ts.s.Rolling(window, series.Mean{}, nil)
	if err != nil {
		return nil, err
	}

	// A centered window ends shift positions after its center.
	shift := window - 1 - int(math.Round(float64(window-1)/2))
	values := centered.Values()
	result := make([]float64, len(values))
	for i := range result {
		j := i - shift
		if j < 0 {
			result[i] = math.NaN()
			continue
		}
		result[i] = values[j]
	}
	return ts.derive(series.Must(ts.s.Index(), result), "_ma"), nil
}
