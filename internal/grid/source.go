package grid

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
)

// Sheet is the tabular data a Grid displays. Columns holds the header
// titles; every row has exactly len(Columns) cells.
type Sheet struct {
	Columns []string
	Rows    [][]string
}

// DemoSheet generates a spreadsheet-like sheet whose first column labels the
// row and whose remaining columns are named A, B, C and so on.
func DemoSheet(rows, cols int) Sheet {
	if cols < 1 {
		cols = 1
	}
	if rows < 0 {
		rows = 0
	}
	columns := make([]string, cols)
	columns[0] = "Row"
	for c := 1; c < cols; c++ {
		columns[c] = columnName(c)
	}
	data := make([][]string, rows)
	for r := range data {
		row := make([]string, cols)
		row[0] = "Row " + strconv.Itoa(r+1)
		for c := 1; c < cols; c++ {
			row[c] = strconv.Itoa((r + 1) * c)
		}
		data[r] = row
	}
	return Sheet{Columns: columns, Rows: data}
}

func columnName(n int) string {
	name, err := excelize.ColumnNumberToName(n)
	if err != nil {
		return "C" + strconv.Itoa(n)
	}
	return name
}

// LoadSheet reads a .csv or .xlsx file. The first record supplies the
// column titles.
func LoadSheet(path string) (Sheet, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return Sheet{}, fmt.Errorf("open sheet: %w", err)
		}
		defer f.Close()
		return readCSV(f)
	case ".xlsx", ".xlsm":
		return readWorkbook(path)
	default:
		return Sheet{}, fmt.Errorf("unsupported sheet format %q", filepath.Ext(path))
	}
}

func readCSV(r io.Reader) (Sheet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return Sheet{}, fmt.Errorf("parse csv: %w", err)
	}
	return sheetFromRecords(records)
}

func readWorkbook(path string) (Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Sheet{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	name := f.GetSheetName(0)
	if name == "" {
		return Sheet{}, fmt.Errorf("workbook %s has no sheets", filepath.Base(path))
	}
	rows, err := f.GetRows(name)
	if err != nil {
		return Sheet{}, fmt.Errorf("read sheet %s: %w", name, err)
	}
	return sheetFromRecords(rows)
}

var errEmptySheet = errors.New("sheet has no header row")

// sheetFromRecords squares ragged records off against the header, naming
// any extra columns after their spreadsheet letter.
func sheetFromRecords(records [][]string) (Sheet, error) {
	if len(records) == 0 || len(records[0]) == 0 {
		return Sheet{}, errEmptySheet
	}
	width := 0
	for _, rec := range records {
		if len(rec) > width {
			width = len(rec)
		}
	}
	columns := make([]string, width)
	copy(columns, records[0])
	for c := range columns {
		if strings.TrimSpace(columns[c]) == "" {
			columns[c] = columnName(c + 1)
		}
	}
	rows := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]string, width)
		copy(row, rec)
		rows = append(rows, row)
	}
	return Sheet{Columns: columns, Rows: rows}, nil
}
