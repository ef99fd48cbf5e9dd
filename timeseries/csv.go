package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrNoData is returned when a CSV source holds no rows for the series.
	ErrNoData = errors.New("no valid data found in CSV")
	// ErrInvalidValue is returned when a value cell is neither a number nor a
	// missing value marker.
	ErrInvalidValue = errors.New("invalid value")
	// ErrInvalidDate is returned when a date cell matches no known layout.
	ErrInvalidDate = errors.New("invalid date")
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn  string        // Column name for dates (optional)
	ValueColumn string        // Column name for values (default: "y")
	IDColumn    string        // Column name for series ID (optional, for filtering)
	IDFilter    string        // Value to filter by ID column
	DateFormat  string        // Date format tried first (default: "2006-01-02")
	HasHeader   bool          // Whether CSV has header row (default: true)
	Delimiter   rune          // Field delimiter (default: ',')
	SkipRows    int           // Number of rows to skip at start
	Interval    time.Duration // Spacing of synthesized timestamps when there is no date column (default: 24h)
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "y",
		DateFormat:  "2006-01-02",
		HasHeader:   true,
		Delimiter:   ',',
		Interval:    24 * time.Hour,
	}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02-Jan-2006",
	"2006",
}

// LoadCSV loads a time series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*TimeSeries, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a time series from an io.Reader.
//
// Empty cells and the markers NA, NaN and null load as NaN. Without a date
// column, timestamps start at the Unix epoch and are opts.Interval apart.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*TimeSeries, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	// Skip rows if needed
	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	valueIdx, dateIdx, idIdx := 1, 0, -1
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		valueIdx, dateIdx, idIdx = findColumns(header, opts)
	}

	var values []float64
	var timestamps []time.Time
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row++

		// Filter by ID if specified
		if opts.IDFilter != "" && idIdx >= 0 && idIdx < len(record) {
			if cell(record, idIdx) != opts.IDFilter {
				continue
			}
		}
		if valueIdx >= len(record) {
			continue
		}

		val, err := parseValue(cell(record, valueIdx))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		values = append(values, val)

		if dateIdx >= 0 && dateIdx < len(record) {
			ts, err := parseDate(cell(record, dateIdx), opts.DateFormat)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", row, err)
			}
			timestamps = append(timestamps, ts)
		}
	}

	if len(values) == 0 {
		return nil, ErrNoData
	}

	if len(timestamps) == len(values) {
		return New(timestamps, values)
	}

	interval := opts.Interval
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return FromValues(values, time.Unix(0, 0).UTC(), interval), nil
}

func findColumns(headers []string, opts *CSVOptions) (valueIdx, dateIdx, idIdx int) {
	valueIdx, dateIdx, idIdx = -1, -1, -1

	for i, h := range headers {
		h = strings.TrimSpace(strings.Trim(h, "\""))
		switch {
		case h == opts.ValueColumn || (opts.ValueColumn == "" && (h == "y" || h == "value" || h == "Value")):
			valueIdx = i
		case opts.DateColumn != "" && h == opts.DateColumn:
			dateIdx = i
		case h == "ds" || h == "date" || h == "Date" || h == "time" || h == "timestamp" || h == "Month" || h == "Year":
			if dateIdx == -1 {
				dateIdx = i
			}
		case opts.IDColumn != "" && h == opts.IDColumn:
			idIdx = i
		case h == "unique_id" || h == "id" || h == "ID":
			if idIdx == -1 && opts.IDColumn == "" {
				idIdx = i
			}
		}
	}

	// Default to last column if not specified
	if valueIdx == -1 {
		valueIdx = len(headers) - 1
	}
	return valueIdx, dateIdx, idIdx
}

func cell(record []string, i int) string {
	return strings.TrimSpace(strings.Trim(record[i], "\""))
}

func parseValue(s string) (float64, error) {
	switch s {
	case "", "NA", "NaN", "nan", "null":
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}
	return v, nil
}

func parseDate(s, preferred string) (time.Time, error) {
	if preferred != "" {
		if t, err := time.Parse(preferred, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// LoadCSVColumn loads a specific column from a CSV file as a series.
func LoadCSVColumn(filename string, column string) (*TimeSeries, error) {
	opts := DefaultCSVOptions()
	opts.ValueColumn = column
	return LoadCSV(filename, opts)
}

// LoadCSVFiltered loads a filtered series from a CSV file.
func LoadCSVFiltered(filename string, idColumn, idValue, valueColumn string) (*TimeSeries, error) {
	opts := DefaultCSVOptions()
	opts.IDColumn = idColumn
	opts.IDFilter = idValue
	if valueColumn != "" {
		opts.ValueColumn = valueColumn
	}
	return LoadCSV(filename, opts)
}

// SaveCSV saves a time series to a CSV file.
func SaveCSV(ts *TimeSeries, filename string, includeIndex bool) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}

	if err := WriteCSV(file, ts, includeIndex); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// WriteCSV writes a time series as CSV with a "ds,y" header, or "y" without
// the index. Timestamps use RFC 3339 and NaN is written as NaN.
func WriteCSV(w io.Writer, ts *TimeSeries, includeIndex bool) error {
	writer := csv.NewWriter(w)

	header := []string{"y"}
	if includeIndex {
		header = []string{"ds", "y"}
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	times := ts.Times()
	for i, v := range ts.Values() {
		record := []string{strconv.FormatFloat(v, 'f', -1, 64)}
		if includeIndex {
			record = []string{times[i].Format(time.RFC3339Nano), record[0]}
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
