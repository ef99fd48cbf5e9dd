package timeseries

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadCSVFromReader(t *testing.T) {
	// Test basic CSV loading
	csvData := `ds,y
2020-01-01,100
2020-01-02,101
2020-01-03,102
2020-01-04,103
2020-01-05,104`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()

	ts, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if ts.Len() != 5 {
		t.Errorf("Expected 5 observations, got %d", ts.Len())
	}

	// Check values
	expected := []float64{100, 101, 102, 103, 104}
	values := ts.Values()
	for i, v := range expected {
		if values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, values[i])
		}
	}

	first := ts.Times()[0]
	if !first.Equal(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected first timestamp 2020-01-01, got %v", first)
	}
	if !ts.Regular() {
		t.Error("Expected daily timestamps to be regular")
	}
}

func TestLoadCSVWithFilter(t *testing.T) {
	// Test filtered CSV loading
	csvData := `unique_id,ds,y
A,2020-01-01,100
B,2020-01-01,200
A,2020-01-02,101
B,2020-01-02,201
A,2020-01-03,102`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()
	opts.IDColumn = "unique_id"
	opts.IDFilter = "A"

	ts, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if ts.Len() != 3 {
		t.Errorf("Expected 3 observations for 'A', got %d", ts.Len())
	}

	// Check values (should only have A's values)
	expected := []float64{100, 101, 102}
	values := ts.Values()
	for i, v := range expected {
		if values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, values[i])
		}
	}
}

func TestLoadCSVWithNAValues(t *testing.T) {
	// Missing values are kept as NaN
	csvData := `ds,y
2020-01-01,100
2020-01-02,NA
2020-01-03,102
2020-01-04,NaN
2020-01-05,
2020-01-06,104`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()

	ts, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if ts.Len() != 6 {
		t.Errorf("Expected 6 observations (NA values kept), got %d", ts.Len())
	}

	values := ts.Values()
	for _, i := range []int{1, 3, 4} {
		if !math.IsNaN(values[i]) {
			t.Errorf("Value at index %d: expected NaN, got %f", i, values[i])
		}
	}
	if values[5] != 104 {
		t.Errorf("Expected last value 104, got %f", values[5])
	}
}

func TestLoadCSVMultipleColumns(t *testing.T) {
	// Test loading specific column
	csvData := `ds,Beer,Cement,Gas
2020-01-01,100,200,50
2020-01-02,110,210,55
2020-01-03,120,220,60`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()
	opts.ValueColumn = "Cement"

	ts, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	expected := []float64{200, 210, 220}
	values := ts.Values()
	for i, v := range expected {
		if values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, values[i])
		}
	}
}

func TestLoadCSVQuotedFields(t *testing.T) {
	// Test handling of quoted fields
	csvData := `"unique_id","ds","y"
"Australia","2020-01-01","1000000"
"Australia","2020-01-02","1000100"
"Australia","2020-01-03","1000200"`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()

	ts, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if ts.Len() != 3 {
		t.Errorf("Expected 3 observations, got %d", ts.Len())
	}
}

func TestLoadCSVDateFormats(t *testing.T) {
	// Test various date formats
	testCases := []struct {
		name    string
		csvData string
	}{
		{
			"ISO format",
			`ds,y
2020-01-01,100
2020-01-02,101`,
		},
		{
			"Year only",
			`ds,y
2020,100
2021,101`,
		},
		{
			"RFC 3339",
			`ds,y
2020-01-01T10:00:00Z,100
2020-01-01T10:00:00.5Z,101`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reader := strings.NewReader(tc.csvData)
			opts := DefaultCSVOptions()

			ts, err := LoadCSVFromReader(reader, opts)
			if err != nil {
				t.Fatalf("Failed to load CSV: %v", err)
			}

			if ts.Len() != 2 {
				t.Errorf("Expected 2 observations, got %d", ts.Len())
			}
		})
	}
}

func TestLoadCSVWithoutDates(t *testing.T) {
	csvData := `y
1
2
3`

	opts := DefaultCSVOptions()
	opts.Interval = time.Hour

	ts, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	times := ts.Times()
	if !times[0].Equal(time.Unix(0, 0)) || times[2].Sub(times[0]) != 2*time.Hour {
		t.Errorf("Unexpected synthesized timestamps %v", times)
	}
}

func TestLoadCSVErrors(t *testing.T) {
	testCases := []struct {
		name    string
		csvData string
		want    error
	}{
		{"invalid value", "ds,y\n2020-01-01,abc", ErrInvalidValue},
		{"invalid date", "ds,y\nyesterday,1", ErrInvalidDate},
		{"no rows", "ds,y\n", ErrNoData},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadCSVFromReader(strings.NewReader(tc.csvData), nil)
			if !errors.Is(err, tc.want) {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestWriteCSV(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	ts := FromValues([]float64{1.5, math.NaN()}, start, time.Hour)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, ts, true); err != nil {
		t.Fatalf("Failed to write CSV: %v", err)
	}

	expected := "ds,y\n2020-01-01T00:00:00Z,1.5\n2020-01-01T01:00:00Z,NaN\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}

	buf.Reset()
	if err := WriteCSV(&buf, ts, false); err != nil {
		t.Fatalf("Failed to write CSV: %v", err)
	}
	if buf.String() != "y\n1.5\nNaN\n" {
		t.Errorf("Unexpected output without index %q", buf.String())
	}
}

func TestSaveAndLoadCSV(t *testing.T) {
	start := time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC)
	ts := FromValues([]float64{3, math.NaN(), 5}, start, 30*time.Minute)

	filename := filepath.Join(t.TempDir(), "series.csv")
	if err := SaveCSV(ts, filename, true); err != nil {
		t.Fatalf("Failed to save CSV: %v", err)
	}
	if _, err := os.Stat(filename); err != nil {
		t.Fatalf("Expected file to exist: %v", err)
	}

	loaded, err := LoadCSV(filename, nil)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}
	if !loaded.Equals(ts) {
		t.Errorf("Expected %v, got %v", ts, loaded)
	}
}

func TestDefaultCSVOptions(t *testing.T) {
	opts := DefaultCSVOptions()

	if opts.ValueColumn != "y" {
		t.Errorf("Expected default value column 'y', got '%s'", opts.ValueColumn)
	}

	if opts.DateFormat != "2006-01-02" {
		t.Errorf("Expected default date format '2006-01-02', got '%s'", opts.DateFormat)
	}

	if !opts.HasHeader {
		t.Error("Expected HasHeader to be true by default")
	}

	if opts.Delimiter != ',' {
		t.Errorf("Expected default delimiter ',', got '%c'", opts.Delimiter)
	}

	if opts.Interval != 24*time.Hour {
		t.Errorf("Expected default interval 24h, got %v", opts.Interval)
	}
}
