package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/matzehuels/cliquebench/pkg/chart"
	errs "github.com/matzehuels/cliquebench/pkg/errors"
)

var csvHeader = []string{"N", "Algorithm", "Size", "TimeUS"}

// WriteCSV writes records under the "N,Algorithm,Size,TimeUS" header.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.N),
			r.Algorithm,
			strconv.Itoa(r.Size),
			strconv.FormatInt(r.TimeUS, 10),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveResults writes records to path as CSV, creating parent directories.
func SaveResults(path string, records []Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// ReadCSV parses records written by WriteCSV.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errs.New(errs.ErrCodeParse, "empty results file")
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeParse, err, "read header")
	}
	if !slices.Equal(header, csvHeader) {
		return nil, errs.New(errs.ErrCodeParse, "unexpected header %v, want %v", header, csvHeader)
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeParse, err, "read record")
		}
		rec, err := parseRow(row)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, errs.Wrap(errs.ErrCodeParse, err, "line %d", line)
		}
		records = append(records, rec)
	}
}

func parseRow(row []string) (Record, error) {
	n, err := strconv.Atoi(row[0])
	if err != nil {
		return Record{}, fmt.Errorf("N: %w", err)
	}
	size, err := strconv.Atoi(row[2])
	if err != nil {
		return Record{}, fmt.Errorf("Size: %w", err)
	}
	elapsed, err := strconv.ParseInt(row[3], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("TimeUS: %w", err)
	}
	return Record{N: n, Algorithm: row[1], Size: size, TimeUS: elapsed}, nil
}

// LoadResults reads a results CSV from path.
func LoadResults(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// SaveAndPlot writes the results CSV and, if there is at least one record,
// a chart of time against N with one line per algorithm. It reports whether
// the chart was written.
func SaveAndPlot(records []Record, resultsPath, chartPath string) (bool, error) {
	if err := SaveResults(resultsPath, records); err != nil {
		return false, err
	}
	if len(records) == 0 {
		return false, nil
	}
	if err := chart.SavePNG(chartPath, chart.FromRecords(records), chart.DefaultOptions()); err != nil {
		return false, err
	}
	return true, nil
}
