package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/vdobler/graph/data"
)

// ErrNoData is returned for input without a single y column.
var ErrNoData = errors.New("no data columns")

// LoadError reports a failure to read the input file Path.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string { return fmt.Sprintf("loading %s: %v", e.Path, e.Err) }

func (e *LoadError) Unwrap() error { return e.Err }

// column is one named series of the input.
type column struct {
	name   string
	series *data.Series
}

// load reads the series from a CSV or, based on the extension, an XLSX
// file. The first row holds the column names, the first column the x
// values and every other column one series.
func load(path, sheet string) ([]column, error) {
	var cols []column
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		cols, err = loadXLSX(path, sheet)
	default:
		var f *os.File
		f, err = os.Open(path)
		if err != nil {
			break
		}
		cols, err = loadCSV(f)
		f.Close()
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return cols, nil
}

func loadCSV(r io.Reader) ([]column, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	cr.Comment = '#'
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return table(rows)
}

// loadXLSX reads the given sheet or the first one if sheet is empty.
func loadXLSX(path, sheet string) ([]column, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoData
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	return table(rows)
}

// table turns rows of cells into series. Empty cells are skipped,
// anything else must parse as a number.
func table(rows [][]string) ([]column, error) {
	if len(rows) == 0 || len(rows[0]) < 2 {
		return nil, ErrNoData
	}
	headings := rows[0]
	cols := make([]column, len(headings)-1)
	for j := range cols {
		name := strings.TrimSpace(headings[j+1])
		if name == "" {
			name = "column " + strconv.Itoa(j+2)
		}
		cols[j] = column{name: name, series: &data.Series{}}
	}

	for i, row := range rows[1:] {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		for j := 1; j < len(row) && j < len(headings); j++ {
			cell := strings.TrimSpace(row[j])
			if cell == "" {
				continue
			}
			y, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", i+2, j+1, err)
			}
			cols[j-1].series.Add(x, y)
		}
	}
	return cols, nil
}
