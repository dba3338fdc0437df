package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	ErrFileNotFound = fmt.Errorf("file not found")
	ErrEmptySheet   = fmt.Errorf("sheet is empty or corrupted")
)

// Sheet is an in-memory copy of one worksheet. Row 0 is the header row.
type Sheet struct {
	Name string
	rows [][]string
}

// Open loads the given sheet (1-based index) from an xlsx or csv file.
// Cell values are read raw, so date cells come back as serial numbers
// rather than locale-formatted strings.
func Open(path string, sheetIndex int) (*Sheet, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return openCSV(path)
	}

	f, err := excelize.OpenFile(path, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if sheetIndex < 1 || sheetIndex > len(sheets) {
		return nil, fmt.Errorf("sheet index %d out of range (%d sheets)", sheetIndex, len(sheets))
	}
	name := sheets[sheetIndex-1]

	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}

	return &Sheet{Name: name, rows: rows}, nil
}

func openCSV(path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}

	return &Sheet{Name: filepath.Base(path), rows: rows}, nil
}

// NewSheet builds a sheet from rows directly. Used by tests and by callers
// that already hold parsed data.
func NewSheet(name string, rows [][]string) *Sheet {
	return &Sheet{Name: name, rows: rows}
}

// Headers returns the first row, synthesizing "__EMPTY_<col>" names for
// blank header cells so every column stays addressable.
func (s *Sheet) Headers() []string {
	if len(s.rows) == 0 {
		return nil
	}
	headers := make([]string, len(s.rows[0]))
	for i, h := range s.rows[0] {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("__EMPTY_%s", ColumnLetter(i))
		}
		headers[i] = h
	}
	return headers
}

// RowCount returns the number of data rows below the header.
func (s *Sheet) RowCount() int {
	if len(s.rows) == 0 {
		return 0
	}
	return len(s.rows) - 1
}

// Cell returns the raw value at the 0-based column and row. The second
// return is false when the cell is absent or blank.
func (s *Sheet) Cell(col, row int) (string, bool) {
	if row < 0 || row >= len(s.rows) {
		return "", false
	}
	r := s.rows[row]
	if col < 0 || col >= len(r) {
		return "", false
	}
	if r[col] == "" {
		return "", false
	}
	return r[col], true
}

// Records returns one header-keyed map per data row. Blank cells map to
// nil so downstream coercion can tell missing from empty.
func (s *Sheet) Records() []map[string]any {
	headers := s.Headers()
	records := make([]map[string]any, 0, s.RowCount())
	for row := 1; row < len(s.rows); row++ {
		record := make(map[string]any, len(headers))
		for col, header := range headers {
			if v, ok := s.Cell(col, row); ok {
				record[header] = v
			} else {
				record[header] = nil
			}
		}
		records = append(records, record)
	}
	return records
}
