// Package main computes rolling window statistics over a CSV time series
// and optionally decomposes it into trend and seasonal components.
//
// Usage:
//
//	go run ./demo -csv data.csv -column y -window 7 -weighting triangular -min-periods 1 -period 7
//
// Without -csv a small built-in series with gaps is used.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sartorproj/goseries/internal/logs"
	"github.com/sartorproj/goseries/series"
	"github.com/sartorproj/goseries/stats"
	"github.com/sartorproj/goseries/timeseries"
)

// Options holds the command line configuration.
type Options struct {
	CSV        string
	Column     string
	FilterCol  string
	FilterVal  string
	Window     int
	MinPeriods int
	Center     bool
	Symmetric  bool
	Weighting  string
	Alpha      float64
	Period     int
	JSON       string
	Debug      bool
}

// Column is one rolling statistic for JSON export. NaN is exported as null.
type Column struct {
	Name   string     `json:"name"`
	Values []*float64 `json:"values"`
}

// Result holds the rolling statistics for JSON export.
type Result struct {
	Name       string   `json:"name"`
	NObs       int      `json:"n_obs"`
	Missing    int      `json:"missing"`
	Window     int      `json:"window"`
	MinPeriods int      `json:"min_periods"`
	Weighting  string   `json:"weighting"`
	Alpha      float64  `json:"alpha,omitempty"`
	Center     bool     `json:"center"`
	Symmetric  bool     `json:"symmetric"`
	Period     int      `json:"period,omitempty"`
	Strength   *float64 `json:"seasonal_strength,omitempty"`
	Timestamps []string `json:"timestamps"`
	Input      Column   `json:"input"`
	Columns    []Column `json:"columns"`
}

func main() {
	opts := parseFlags()
	log := logs.NewLogger("demo", os.Stderr, opts.Debug)
	if opts.Debug {
		series.SetLogger(log)
	}

	if err := run(opts, log); err != nil {
		log.WithError(err).Error("Failed")
		os.Exit(1)
	}
}

func parseFlags() Options {
	var opts Options
	flag.StringVar(&opts.CSV, "csv", "", "CSV file to read (default: built-in sample)")
	flag.StringVar(&opts.Column, "column", "y", "value column")
	flag.StringVar(&opts.FilterCol, "filter-col", "", "column to filter on")
	flag.StringVar(&opts.FilterVal, "filter-val", "", "value to keep in the filter column")
	flag.IntVar(&opts.Window, "window", 3, "window size in observations")
	flag.IntVar(&opts.MinPeriods, "min-periods", 0, "finite values required per window (0 = window size)")
	flag.BoolVar(&opts.Center, "center", true, "center windows longer than the series")
	flag.BoolVar(&opts.Symmetric, "symmetric", false, "shrink edge windows symmetrically")
	flag.StringVar(&opts.Weighting, "weighting", "uniform", "window weighting: uniform, triangular or exponential")
	flag.Float64Var(&opts.Alpha, "alpha", 0.5, "smoothing factor for exponential weighting")
	flag.IntVar(&opts.Period, "period", 0, "seasonal period to decompose (0 = no decomposition)")
	flag.StringVar(&opts.JSON, "json", "", "write results as JSON to this file")
	flag.BoolVar(&opts.Debug, "debug", false, "log rolling engine corrections")
	flag.Parse()
	return opts
}

func run(opts Options, log *logrus.Logger) error {
	weighting, err := series.ParseWeighting(opts.Weighting)
	if err != nil {
		return err
	}

	ts, err := loadData(opts)
	if err != nil {
		return fmt.Errorf("loading data: %w", err)
	}

	missing := ts.Len() - ts.Series().FiniteLen()
	log.WithFields(logrus.Fields{
		"observations": ts.Len(),
		"missing":      missing,
	}).Infof("Loaded %s", ts.Name)
	if !ts.Regular() {
		log.Warn("Timestamps are not equally spaced; padded windows assume a regular index")
	}

	cfg := series.DefaultRollingConfig()
	cfg.MinPeriods = opts.MinPeriods
	cfg.Center = opts.Center
	cfg.Symmetric = opts.Symmetric
	cfg.Weighting = weighting
	cfg.Alpha = opts.Alpha

	columns, err := rollAll(ts, opts.Window, cfg)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"window":    opts.Window,
		"weighting": weighting,
		"columns":   len(columns),
	}).Info("Computed rolling statistics")

	var strength *float64
	if opts.Period > 0 {
		components, fs, err := decompose(ts, opts.Period, log)
		if err != nil {
			return err
		}
		columns = append(columns, components...)
		strength = &fs
	}

	printTable(ts, columns)

	if opts.JSON == "" {
		return nil
	}
	result := Result{
		Name:       ts.Name,
		NObs:       ts.Len(),
		Missing:    missing,
		Window:     opts.Window,
		MinPeriods: cfg.MinPeriods,
		Weighting:  weighting.String(),
		Center:     opts.Center,
		Symmetric:  opts.Symmetric,
		Period:     opts.Period,
		Strength:   strength,
		Timestamps: formatTimes(ts.Times()),
		Input:      column("input", ts.Values()),
	}
	if weighting == series.Exponential {
		result.Alpha = opts.Alpha
	}
	for _, c := range columns {
		result.Columns = append(result.Columns, column(c.name, c.ts.Values()))
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.JSON, data, 0644); err != nil {
		return err
	}
	log.WithField("file", opts.JSON).Info("Exported results")
	return nil
}

// loadData reads the configured CSV, or the built-in sample when none is given.
func loadData(opts Options) (*timeseries.TimeSeries, error) {
	if opts.CSV == "" {
		ts := sampleSeries()
		ts.Name = "sample"
		return ts, nil
	}

	var ts *timeseries.TimeSeries
	var err error
	if opts.FilterCol != "" {
		ts, err = timeseries.LoadCSVFiltered(opts.CSV, opts.FilterCol, opts.FilterVal, opts.Column)
	} else {
		ts, err = timeseries.LoadCSVColumn(opts.CSV, opts.Column)
	}
	if err != nil {
		return nil, err
	}
	ts.Name = opts.Column
	return ts, nil
}

// sampleSeries returns two weeks of daily readings with a few gaps.
func sampleSeries() *timeseries.TimeSeries {
	values := []float64{
		12.1, 12.4, math.NaN(), 13.0, 13.8, 14.1, 13.2,
		12.7, math.NaN(), math.NaN(), 14.9, 15.3, 15.0, 14.2,
	}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return timeseries.FromValues(values, start, 24*time.Hour)
}

type namedSeries struct {
	name string
	ts   *timeseries.TimeSeries
}

// rollAll computes every statistic the weighting supports. Exponential
// windows only support the mean.
func rollAll(ts *timeseries.TimeSeries, windowSize int, cfg *series.RollingConfig) ([]namedSeries, error) {
	w := ts.Window(windowSize, cfg)

	type stat struct {
		name string
		fn   func() (*timeseries.TimeSeries, error)
	}
	aggs := []stat{{"mean", w.Mean}}
	if cfg.Weighting != series.Exponential {
		aggs = append(aggs,
			stat{"sum", w.Sum},
			stat{"count", w.Count},
			stat{"median", w.Median},
			stat{"std", w.Std},
			stat{"min", w.Min},
			stat{"max", w.Max},
		)
	}

	var result []namedSeries
	for _, s := range aggs {
		rolled, err := s.fn()
		if err != nil {
			return nil, fmt.Errorf("rolling %s: %w", s.name, err)
		}
		result = append(result, namedSeries{name: s.name, ts: rolled})
	}
	return result, nil
}

// decompose splits the series into trend, seasonal and residual columns and
// returns the seasonal strength.
func decompose(ts *timeseries.TimeSeries, period int, log *logrus.Logger) ([]namedSeries, float64, error) {
	d, err := stats.Decompose(ts, period, stats.Additive)
	if err != nil {
		return nil, 0, fmt.Errorf("decomposing: %w", err)
	}
	strength, err := stats.SeasonalStrength(ts, period)
	if err != nil {
		return nil, 0, fmt.Errorf("seasonal strength: %w", err)
	}

	fields := logrus.Fields{"period": period, "strength": strength}
	if lb, err := stats.LjungBox(d.Residual.DropNA(), min(period, 10), 0); err != nil {
		log.WithError(err).Warn("Skipped Ljung-Box test on residuals")
	} else {
		fields["ljung_box_p"] = lb.PValue
	}
	log.WithFields(fields).Info("Decomposed series")

	return []namedSeries{
		{name: "trend", ts: d.Trend},
		{name: "seasonal", ts: d.Seasonal},
		{name: "residual", ts: d.Residual},
	}, strength, nil
}

func printTable(ts *timeseries.TimeSeries, columns []namedSeries) {
	var header strings.Builder
	header.WriteString(fmt.Sprintf("%-20s %10s", "timestamp", "value"))
	for _, c := range columns {
		header.WriteString(fmt.Sprintf(" %10s", c.name))
	}
	fmt.Println(header.String())
	fmt.Println(strings.Repeat("-", header.Len()))

	times := ts.Times()
	values := ts.Values()
	rolled := make([][]float64, len(columns))
	for i, c := range columns {
		rolled[i] = c.ts.Values()
	}

	for i, t := range times {
		line := fmt.Sprintf("%-20s %10.4g", t.Format("2006-01-02 15:04:05"), values[i])
		for j := range columns {
			line += fmt.Sprintf(" %10.4g", rolled[j][i])
		}
		fmt.Println(line)
	}
}

func formatTimes(times []time.Time) []string {
	result := make([]string, len(times))
	for i, t := range times {
		result[i] = t.Format(time.RFC3339)
	}
	return result
}

// column converts values for JSON, which has no NaN.
func column(name string, values []float64) Column {
	c := Column{Name: name, Values: make([]*float64, len(values))}
	for i, v := range values {
		v := v
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			c.Values[i] = &v
		}
	}
	return c
}
