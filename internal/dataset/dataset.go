// Package dataset reads raw similarity records from spreadsheets or CSV files
// and writes analysis reports back in the same formats.
//
// Input layout (first worksheet / CSV file, header row skipped):
//
//	A: label of item A   B: label of item B   C: shared lines   [D: ref A   E: ref B]
//
// In workbooks the references come from the hyperlinks of cells A and B. Reading
// stops at the first row whose A or B cell is empty.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/simforest/analysis"
	"github.com/katalvlaran/simforest/core"
)

// Supported formats.
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

var (
	// ErrUnsupportedFormat indicates a file extension or format name with no reader/writer.
	ErrUnsupportedFormat = errors.New("dataset: unsupported format")

	// ErrBadRow indicates a row whose shared-lines cell is not an integer.
	ErrBadRow = errors.New("dataset: malformed row")
)

// FormatOf returns the format implied by path's extension.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ReadRecords loads all records of the file at path.
func ReadRecords(ctx context.Context, path string) ([]core.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatXLSX:
		return readXLSX(path)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return ReadCSV(f)
	}
}

// Source wraps a file as an analysis.Dataset.
func Source(name, path string) analysis.Dataset {
	return analysis.Dataset{
		Name: name,
		Load: func(ctx context.Context) ([]core.Record, error) { return ReadRecords(ctx, path) },
	}
}

// Glob returns one dataset per .xlsx or .csv file in dir, sorted by name. The
// dataset name is the file name without extension.
func Glob(dir string) ([]analysis.Dataset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), "~$") {
			continue
		}
		if _, err := FormatOf(e.Name()); err == nil {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	out := make([]analysis.Dataset, 0, len(names))
	for _, n := range names {
		out = append(out, Source(strings.TrimSuffix(n, filepath.Ext(n)), filepath.Join(dir, n)))
	}

	return out, nil
}

// WriteReport writes the forest report and the cluster statistics for rep into
// dir and returns the two paths: <name>-MST-<method>.<ext> and <name>-STAT.<ext>.
func WriteReport(dir, format string, rep *analysis.Report) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	base := filepath.Join(dir, sanitize(rep.Name))
	forestPath := fmt.Sprintf("%s-MST-%s.%s", base, rep.Method, format)
	statPath := fmt.Sprintf("%s-STAT.%s", base, format)

	var err error
	switch format {
	case FormatXLSX:
		if err = writeForestXLSX(forestPath, rep.Forest); err == nil {
			err = writeGroupsXLSX(statPath, rep.Groups)
		}
	case FormatCSV:
		if err = writeFile(forestPath, func(f *os.File) error { return WriteForestCSV(f, rep.Forest) }); err == nil {
			err = writeFile(statPath, func(f *os.File) error { return WriteGroupsCSV(f, rep.Groups) })
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	return []string{forestPath, statPath}, nil
}

func writeFile(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// parseLines accepts "12", " 12 " and integral floats such as "12.0", which
// spreadsheet exports sometimes produce.
func parseLines(row int, s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == math.Trunc(f) && math.Abs(f) <= math.MaxInt32 {
		return int(f), nil
	}

	return 0, fmt.Errorf("%w: row %d: shared lines %q", ErrBadRow, row, s)
}

func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}
