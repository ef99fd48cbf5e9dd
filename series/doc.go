// Package series provides an indexed numeric sequence and a rolling window engine.
//
// A Series pairs an index with values of the same length, in the spirit of a
// pandas Series restricted to float64. Series values are immutable: every
// operation returns a new Series and accessors return copies.
//
// # Creating a Series
//
//	s, err := series.New([]float64{1, 2, 3}, []float64{10, 20, 30})
//	if err != nil {
//	    // index and values have different lengths
//	}
//
//	// Panics instead of returning an error, handy for literals
//	s = series.Must([]float64{1, 2, 3}, []float64{10, 20, 30})
//
// # Masks
//
// Comparisons return a Mask, which can be combined and converted back into a
// Series of 0 and 1 values:
//
//	m := s.GtScalar(15).And(s.LeScalar(30))
//	filtered := s.Where(m, s.MulScalar(0))
//	ones := m.ToSeries()
//
// # Rolling Windows
//
// Rolling applies an Aggregator to a window around every position:
//
//	sums, err := s.Rolling(3, series.Sum{}, nil)
//
//	cfg := series.DefaultRollingConfig()
//	cfg.MinPeriods = 1
//	cfg.Weighting = series.Triangular
//	means, err := s.Rolling(5, series.WeightedMean{}, cfg)
//
//	// Exponentially weighted mean, matching pandas ewm(alpha=0.5).mean()
//	cfg = series.DefaultRollingConfig()
//	cfg.MinPeriods = 1
//	cfg.Center = false
//	cfg.Weighting = series.Exponential
//	cfg.Alpha = 0.5
//	ewm, err := s.Rolling(s.Len(), series.WeightedMean{}, cfg)
//
// The Window builder offers the common aggregations directly:
//
//	medians, err := s.Window(3, nil).Median()
//
// # Index Spacing
//
// When a window is larger than the series, or when exponential weighting is
// used, the engine pads the input with NaN values and synthesizes index
// entries using the spacing between the first two index values. The index is
// therefore expected to be regularly spaced; results for irregular indices
// are not specified. The returned Series always carries the input index.
//
// # Logging
//
// The rolling engine reports the input corrections it applies at debug level
// through logrus. Use SetLogger to route these messages.
package series
