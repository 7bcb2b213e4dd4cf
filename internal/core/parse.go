package core

// parse.go materializes uploaded spreadsheet bytes into a Table.
//
// Both parsers treat the first record as the header row. Real-world
// exports are messy, so the rules are deliberately tolerant:
//   - blank header cells get positional fallback names ("Column_3")
//   - short rows are padded with null cells
//   - cells past the header width are dropped
//   - empty string cells are missing values
//
// Duplicate header names are the one thing that is rejected outright:
// every downstream aggregate is keyed by column name.

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseCSV reads a CSV document into a table.
func ParseCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}
	return tableFromRecords(records)
}

// ParseExcel reads the first sheet of an xlsx workbook into a table.
func ParseExcel(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}
	return tableFromRecords(rows)
}

// tableFromRecords converts header + data records to a validated table.
func tableFromRecords(records [][]string) (*Table, error) {
	header := records[0]
	columns := make([]Column, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff") // Excel UTF-8 BOM
		}
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("Column_%d", i+1)
		}
		columns[i] = Column{Name: name, Cells: make([]Cell, 0, len(records)-1)}
	}

	for _, rec := range records[1:] {
		for i := range columns {
			if i < len(rec) && rec[i] != "" {
				columns[i].Cells = append(columns[i].Cells, CellOf(rec[i]))
			} else {
				columns[i].Cells = append(columns[i].Cells, NullCell())
			}
		}
	}

	return NewTable(columns)
}
