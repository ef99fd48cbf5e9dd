package main

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/sartorproj/goseries/internal/logs"
	"github.com/sartorproj/goseries/series"
	"github.com/sartorproj/goseries/stats"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	return Options{
		Column:     "y",
		Window:     3,
		MinPeriods: 1,
		Center:     true,
		Weighting:  "uniform",
		Alpha:      0.5,
		JSON:       filepath.Join(t.TempDir(), "out.json"),
	}
}

func readResult(t *testing.T, path string) Result {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Failed to decode output: %v", err)
	}
	return result
}

func TestRunSample(t *testing.T) {
	opts := testOptions(t)
	if err := run(opts, logs.NewLogger("test", io.Discard, false)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	result := readResult(t, opts.JSON)
	if result.NObs != 14 || result.Missing != 3 {
		t.Errorf("Expected 14 observations with 3 missing, got %d and %d", result.NObs, result.Missing)
	}
	if len(result.Columns) != 7 {
		t.Errorf("Expected 7 columns, got %d", len(result.Columns))
	}
	if result.Input.Values[2] != nil {
		t.Error("Expected missing input to be exported as null")
	}
	if result.Columns[0].Name != "mean" || *result.Columns[0].Values[0] != (12.1+12.4)/2 {
		t.Errorf("Unexpected first mean column %+v", result.Columns[0])
	}
}

func TestRunExponential(t *testing.T) {
	opts := testOptions(t)
	opts.Weighting = "expn"
	opts.MinPeriods = 0

	if err := run(opts, logs.NewLogger("test", io.Discard, false)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	result := readResult(t, opts.JSON)
	if len(result.Columns) != 1 || result.Columns[0].Name != "mean" {
		t.Fatalf("Expected a single mean column, got %+v", result.Columns)
	}
	if result.MinPeriods != 0 || result.Alpha != 0.5 {
		t.Errorf("Expected min periods 0 and alpha 0.5, got %d and %f", result.MinPeriods, result.Alpha)
	}
	if *result.Columns[0].Values[0] != 12.1 {
		t.Errorf("Expected first ewm value 12.1, got %f", *result.Columns[0].Values[0])
	}
}

func TestRunCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	csv := "ds,sales\n2024-01-01,1\n2024-01-02,2\n2024-01-03,NA\n2024-01-04,4\n"
	if err := os.WriteFile(path, []byte(csv), 0644); err != nil {
		t.Fatalf("Failed to write CSV: %v", err)
	}

	opts := testOptions(t)
	opts.CSV = path
	opts.Column = "sales"
	if err := run(opts, logs.NewLogger("test", io.Discard, false)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	result := readResult(t, opts.JSON)
	if result.Name != "sales" || result.NObs != 4 || result.Missing != 1 {
		t.Errorf("Unexpected result %+v", result)
	}
	if result.Timestamps[0] != "2024-01-01T00:00:00Z" {
		t.Errorf("Unexpected first timestamp %s", result.Timestamps[0])
	}
}

func TestRunDecompose(t *testing.T) {
	opts := testOptions(t)
	opts.Period = 3

	if err := run(opts, logs.NewLogger("test", io.Discard, false)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	result := readResult(t, opts.JSON)
	if len(result.Columns) != 10 {
		t.Fatalf("Expected 10 columns, got %d", len(result.Columns))
	}
	names := []string{result.Columns[7].Name, result.Columns[8].Name, result.Columns[9].Name}
	if names[0] != "trend" || names[1] != "seasonal" || names[2] != "residual" {
		t.Errorf("Expected trend, seasonal and residual columns, got %v", names)
	}
	if result.Period != 3 || result.Strength == nil {
		t.Errorf("Expected period 3 with a seasonal strength, got %d and %v", result.Period, result.Strength)
	}
	trend := result.Columns[7].Values
	if trend[0] != nil || trend[3] != nil {
		t.Error("Expected trend edges and windows with gaps to be null")
	}
	if trend[4] == nil || math.Abs(*trend[4]-(13.0+13.8+14.1)/3) > 1e-9 {
		t.Errorf("Expected trend %f at position 4, got %v", (13.0+13.8+14.1)/3, trend[4])
	}

	opts = testOptions(t)
	opts.Period = 8
	if err := run(opts, logs.NewLogger("test", io.Discard, false)); !errors.Is(err, stats.ErrSeriesTooShort) {
		t.Errorf("Expected ErrSeriesTooShort, got %v", err)
	}
}

func TestRunErrors(t *testing.T) {
	log := logs.NewLogger("test", io.Discard, false)

	opts := testOptions(t)
	opts.Weighting = "gaussian"
	if err := run(opts, log); !errors.Is(err, series.ErrUnknownWeighting) {
		t.Errorf("Expected ErrUnknownWeighting, got %v", err)
	}

	opts = testOptions(t)
	opts.Window = 0
	if err := run(opts, log); !errors.Is(err, series.ErrInvalidWindowSize) {
		t.Errorf("Expected ErrInvalidWindowSize, got %v", err)
	}

	opts = testOptions(t)
	opts.CSV = filepath.Join(t.TempDir(), "missing.csv")
	if err := run(opts, log); err == nil {
		t.Error("Expected error for missing file")
	}
}
