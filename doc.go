// Package goseries provides indexed numeric series with pandas compatible
// rolling window statistics.
//
// GoSeries is a Go package for working with float64 series: an index paired
// with values, element-wise operations, boolean masks and rolling windows whose
// results line up with pandas, including triangular and exponentially weighted
// windows over data with missing values.
//
// # Features
//
//   - Immutable Series and Mask types with NaN aware reductions
//   - Python style positional slicing and label lookup
//   - Rolling windows with uniform, triangular and exponential weights
//   - Sum, Count, Mean, WeightedMean, Quantile, Median, Std, Min and Max aggregators
//   - Centered and symmetric edge policies, minimum period gating
//   - Timestamp indexed series with CSV loading and saving
//
// # Quick Start
//
// Roll a window over a series:
//
//	s := series.Must([]float64{1, 2, 3, 4, 5}, []float64{1, 2, 3.5, -1, math.NaN()})
//	cfg := series.DefaultRollingConfig()
//	cfg.MinPeriods = 2
//	sums, err := s.Rolling(3, series.Sum{}, cfg)
//
// Compute an exponentially weighted mean matching pandas ewm(alpha=0.5).mean():
//
//	cfg = series.DefaultRollingConfig()
//	cfg.MinPeriods = 1
//	cfg.Weighting = series.Exponential
//	cfg.Alpha = 0.5
//	ewm, err := s.Window(s.Len(), cfg).Mean()
//
// # Packages
//
// The library is organized into the following packages:
//
//   - numc: Numeric helpers over float64 slices (finite filtering, quantiles, window functions)
//   - series: Series, Mask, weights, aggregators and the rolling engine
//   - timeseries: Timestamp indexed series and CSV input and output
//
// # References
//
//   - pandas.Series.rolling and pandas.Series.ewm
//   - scipy.signal.windows.triang and scipy.signal.windows.exponential
package goseries
