package series

// Window is a rolling window over a Series waiting for an aggregation.
//
//	w := s.Window(3, nil)
//	sums, err := w.Sum()
type Window struct {
	series Series
	size   int
	cfg    RollingConfig
}

// Window returns a rolling window of the given size. A nil cfg means
// DefaultRollingConfig().
func (s Series) Window(windowSize int, cfg *RollingConfig) Window {
	if cfg == nil {
		cfg = DefaultRollingConfig()
	}
	return Window{series: s, size: windowSize, cfg: *cfg}
}

// Aggregate rolls the window with agg.
func (w Window) Aggregate(agg Aggregator) (Series, error) {
	cfg := w.cfg
	return w.series.Rolling(w.size, agg, &cfg)
}

// Mean returns the rolling mean. Exponential windows use WeightedMean.
func (w Window) Mean() (Series, error) {
	if w.cfg.Weighting == Exponential {
		return w.Aggregate(WeightedMean{})
	}
	return w.Aggregate(Mean{})
}

// Sum returns the rolling sum.
func (w Window) Sum() (Series, error) {
	return w.Aggregate(Sum{})
}

// Count returns the rolling count of finite values.
func (w Window) Count() (Series, error) {
	return w.Aggregate(Count{})
}

// Quantile returns the rolling q-th quantile.
func (w Window) Quantile(q float64) (Series, error) {
	return w.Aggregate(Quantile{Q: q})
}

// Median returns the rolling median.
func (w Window) Median() (Series, error) {
	return w.Aggregate(Median{})
}

// Min returns the rolling minimum.
func (w Window) Min() (Series, error) {
	return w.Aggregate(Min{})
}

// Max returns the rolling maximum.
func (w Window) Max() (Series, error) {
	return w.Aggregate(Max{})
}

// Std returns the rolling sample standard deviation.
func (w Window) Std() (Series, error) {
	return w.Aggregate(Std{})
}
