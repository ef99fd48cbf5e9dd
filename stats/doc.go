// Package stats provides autocorrelation, decomposition and residual
// diagnostics for time series, built on the rolling windows of package series.
//
// # Autocorrelation Functions
//
// Analyze autocorrelation patterns. Pairs holding NaN are skipped:
//
//	// Autocorrelation Function
//	acf := stats.ACF(ts, 20)
//
//	// Partial Autocorrelation Function
//	pacf := stats.PACF(ts, 20)
//
//	// ACF with confidence bounds
//	c := stats.ACFWithConfidence(ts, 20)
//	significant := c.Significant()
//
// # Time Series Decomposition
//
// Decompose a time series into trend, seasonal and residual components. The
// classical trend is a centered rolling mean over one period:
//
//	// Classical decomposition
//	d, err := stats.Decompose(ts, 12, stats.Additive)
//	// d.Trend, d.Seasonal, d.Residual
//
//	// STL decomposition, trend smoothed with a triangular window
//	stl, err := stats.STL(ts, 12, 2)
//
//	// Strength of seasonality in [0, 1]
//	fs, err := stats.SeasonalStrength(ts, 12)
//
// # Residual Diagnostics
//
// Test residuals for leftover autocorrelation:
//
//	// Ljung-Box test
//	lb, err := stats.LjungBox(d.Residual.DropNA(), 10, 0)
//	if lb.PValue > 0.05 {
//	    // Residuals are white noise
//	}
//
//	// Box-Pierce test
//	bp, err := stats.BoxPierce(d.Residual.DropNA(), 10, 0)
//
//	// Durbin-Watson statistic
//	dw := stats.DurbinWatson(d.Residual)
package stats
