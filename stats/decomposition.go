package stats

import (
	"errors"
	"fmt"
	"math"

	"github.com/sartorproj/goseries/numc"
	"github.com/sartorproj/goseries/series"
	"github.com/sartorproj/goseries/timeseries"
)

var (
	// ErrInvalidPeriod is returned when the seasonal period is below 2.
	ErrInvalidPeriod = errors.New("period must be at least 2")
	// ErrSeriesTooShort is returned when the series covers fewer than two periods.
	ErrSeriesTooShort = errors.New("series must cover at least two periods")
	// ErrMissingValues is returned by STL for series holding NaN.
	ErrMissingValues = errors.New("series must not contain NaN")
)

// Model selects how the components of a decomposition combine.
type Model int

const (
	// Additive decomposes Y = T + S + R.
	Additive Model = iota
	// Multiplicative decomposes Y = T * S * R.
	Multiplicative
)

func (m Model) String() string {
	if m == Multiplicative {
		return "multiplicative"
	}
	return "additive"
}

// Decomposition holds the components of a seasonal decomposition.
type Decomposition struct {
	Original *timeseries.TimeSeries
	Trend    *timeseries.TimeSeries
	Seasonal *timeseries.TimeSeries
	Residual *timeseries.TimeSeries
	Period   int
	Model    Model
}

func checkPeriod(ts *timeseries.TimeSeries, period int) error {
	if period < 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidPeriod, period)
	}
	if ts.Len() < 2*period {
		return fmt.Errorf("%w: %d observations for period %d", ErrSeriesTooShort, ts.Len(), period)
	}
	return nil
}

// Decompose performs a classical seasonal decomposition. The trend is the
// centered moving average over one period, NaN where the window leaves the
// series or holds a NaN.
func Decompose(ts *timeseries.TimeSeries, period int, model Model) (*Decomposition, error) {
	if err := checkPeriod(ts, period); err != nil {
		return nil, err
	}

	trend, err := Trend(ts, period)
	if err != nil {
		return nil, err
	}

	values := ts.Values()
	trendValues := trend.Values()
	n := len(values)

	combine := func(a, b float64) float64 { return a - b }
	if model == Multiplicative {
		combine = func(a, b float64) float64 {
			if b == 0 {
				return math.NaN()
			}
			return a / b
		}
	}

	detrended := make([]float64, n)
	for i := range detrended {
		detrended[i] = combine(values[i], trendValues[i])
	}

	pattern := seasonalPattern(detrended, period, nil)
	mean := numc.Mean(pattern)
	for i := range pattern {
		if model == Multiplicative {
			pattern[i] /= mean
		} else {
			pattern[i] -= mean
		}
	}

	seasonal := make([]float64, n)
	residual := make([]float64, n)
	for i := range seasonal {
		seasonal[i] = pattern[i%period]
		residual[i] = combine(detrended[i], seasonal[i])
	}

	return &Decomposition{
		Original: ts,
		Trend:    trend,
		Seasonal: component(ts, seasonal, "seasonal"),
		Residual: component(ts, residual, "residual"),
		Period:   period,
		Model:    model,
	}, nil
}

// Trend returns the centered moving average over period observations. An
// even period uses the 2xperiod average, which gives the two ends of a
// window of period+1 observations half weight.
func Trend(ts *timeseries.TimeSeries, period int) (*timeseries.TimeSeries, error) {
	if period < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPeriod, period)
	}

	cfg := series.DefaultRollingConfig()
	var agg series.Aggregator = series.Mean{}
	window := period
	if period%2 == 0 {
		agg = halfEndsMean{}
		window = period + 1
	}

	trend, err := ts.Series().Rolling(window, agg, cfg)
	if err != nil {
		return nil, err
	}
	return component(ts, trend.Values(), "trend"), nil
}

// halfEndsMean averages a full window giving its first and last values
// half weight.
type halfEndsMean struct{}

func (halfEndsMean) ProcessWindow(window series.Series, _ []float64) float64 {
	values := window.Values()
	last := len(values) - 1
	sum := 0.5 * (values[0] + values[last])
	for _, v := range values[1:last] {
		sum += v
	}
	return sum / float64(last)
}

func (halfEndsMean) DefaultValue() float64 { return math.NaN() }

// seasonalPattern averages the finite values at each position of the period.
// A nil weights slice weighs every observation equally.
func seasonalPattern(values []float64, period int, weights []float64) []float64 {
	pattern := make([]float64, period)
	totals := make([]float64, period)
	for i, v := range values {
		if !numc.IsFinite(v) {
			continue
		}
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		pattern[i%period] += w * v
		totals[i%period] += w
	}
	for i := range pattern {
		if totals[i] > 0 {
			pattern[i] /= totals[i]
		}
	}
	return pattern
}

// STL performs a simplified Seasonal and Trend decomposition using Loess.
//
// Each pass averages the detrended series per season, then smooths the
// deseasonalized series with a triangular window of period observations
// (made odd) weighted by the robustness weights of the previous pass.
// Robustness weights are bisquare weights of the residuals.
func STL(ts *timeseries.TimeSeries, period int, robustIters int) (*Decomposition, error) {
	if err := checkPeriod(ts, period); err != nil {
		return nil, err
	}
	if ts.Series().FiniteLen() != ts.Len() {
		return nil, ErrMissingValues
	}
	if robustIters < 1 {
		robustIters = 2
	}

	index := ts.Series().Index()
	values := ts.Values()
	n := len(values)

	trend := make([]float64, n)
	seasonal := make([]float64, n)
	residual := make([]float64, n)
	robust := make([]float64, n)
	for i := range robust {
		robust[i] = 1
	}

	window := period
	if window%2 == 0 {
		window++
	}
	cfg := series.DefaultRollingConfig()
	cfg.Weighting = series.Triangular
	cfg.MinPeriods = 1

	detrended := make([]float64, n)
	weighted := make([]float64, n)
	for iter := 0; iter < robustIters; iter++ {
		for i := range detrended {
			detrended[i] = values[i] - trend[i]
		}
		pattern := seasonalPattern(detrended, period, robust)
		mean := numc.Mean(pattern)
		for i := range seasonal {
			seasonal[i] = pattern[i%period] - mean
			weighted[i] = robust[i] * (values[i] - seasonal[i])
		}

		num, err := series.Must(index, weighted).Rolling(window, series.Sum{}, cfg)
		if err != nil {
			return nil, err
		}
		den, err := series.Must(index, robust).Rolling(window, series.Sum{}, cfg)
		if err != nil {
			return nil, err
		}
		numValues, denValues := num.Values(), den.Values()
		for i := range trend {
			if denValues[i] > 0 {
				trend[i] = numValues[i] / denValues[i]
			}
		}

		for i := range residual {
			residual[i] = values[i] - trend[i] - seasonal[i]
		}
		if iter < robustIters-1 {
			updateRobustWeights(robust, residual)
		}
	}

	return &Decomposition{
		Original: ts,
		Trend:    component(ts, trend, "trend"),
		Seasonal: component(ts, seasonal, "seasonal"),
		Residual: component(ts, residual, "residual"),
		Period:   period,
		Model:    Additive,
	}, nil
}

// updateRobustWeights sets bisquare weights from the residuals scaled by six
// times their median absolute value. A zero scale keeps the weights.
func updateRobustWeights(weights, residual []float64) {
	abs := make([]float64, len(residual))
	for i, r := range residual {
		abs[i] = math.Abs(r)
	}
	h := 6 * numc.Quantile(abs, 0.5)
	if !(h > 0) {
		return
	}
	for i, a := range abs {
		u := a / h
		if u < 1 {
			weights[i] = (1 - u*u) * (1 - u*u)
		} else {
			weights[i] = 0
		}
	}
}

// SeasonalStrength measures seasonality as max(0, 1 - Var(R)/Var(S+R)) over
// an additive decomposition. Values of 0.64 and above suggest a seasonal
// difference.
func SeasonalStrength(ts *timeseries.TimeSeries, period int) (float64, error) {
	d, err := Decompose(ts, period, Additive)
	if err != nil {
		return 0, err
	}

	residual := d.Residual.Series()
	varR := math.Pow(residual.Std(1), 2)
	varSR := math.Pow(d.Seasonal.Series().Add(residual).Std(1), 2)
	if math.IsNaN(varR) || math.IsNaN(varSR) || varSR == 0 {
		return 0, nil
	}
	return math.Max(0, 1-varR/varSR), nil
}

func component(ts *timeseries.TimeSeries, values []float64, name string) *timeseries.TimeSeries {
	c := timeseries.FromSeries(series.Must(ts.Series().Index(), values))
	c.Name = name
	return c
}
