// Package timeseries provides a timestamp indexed series on top of the
// series package, along with CSV loading and saving.
//
// # Creating a TimeSeries
//
// Create a time series from timestamps and values:
//
//	ts, err := timeseries.New(times, values)
//
//	// Daily observations starting at a given date
//	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
//	ts = timeseries.FromValues([]float64{100, 102, 105}, start, 24*time.Hour)
//
// Timestamps are stored as seconds since the Unix epoch with sub-second
// precision and returned in UTC.
//
// # Loading from CSV
//
// Load time series data from CSV files. Missing values such as "NA" are kept
// as NaN so that rolling windows see the gaps:
//
//	// Load a specific column
//	ts, err := timeseries.LoadCSVColumn("data.csv", "value")
//
//	// Load with filtering
//	ts, err := timeseries.LoadCSVFiltered(
//	    "data.csv",
//	    "country", "Australia",  // filter column and value
//	    "population",            // value column
//	)
//
// # Rolling Windows
//
// Rolling windows count observations, not durations:
//
//	cfg := series.DefaultRollingConfig()
//	cfg.MinPeriods = 1
//	smoothed, err := ts.Window(7, cfg).Mean()
//
//	// Trailing moving average
//	ma, err := ts.MovingAverage(7)
//
// Padding applied to short series assumes regularly spaced timestamps; use
// Regular to check.
//
// # Transformations
//
//	diff := ts.Diff()        // First difference
//	lagged := ts.Lag(1)      // Shifted forward by one observation
//	logged := ts.Log()       // Natural log
//	z := ts.Normalize()      // Z-score normalization
//
// # Selection
//
//	recent := ts.Tail(30)
//	january := ts.Between(jan1, feb1)
//	high := ts.Filter(ts.GtScalar(100))
//
// # CSV Options
//
// Customize CSV loading:
//
//	opts := &timeseries.CSVOptions{
//	    DateColumn:  "date",
//	    ValueColumn: "value",
//	    DateFormat:  "2006-01-02",
//	    HasHeader:   true,
//	    Delimiter:   ',',
//	}
//	ts, err := timeseries.LoadCSVFromReader(reader, opts)
package timeseries
