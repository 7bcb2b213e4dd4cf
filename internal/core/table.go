// Package core provides the dataset analysis engine: column type
// inference, summary statistics, chart aggregation, and row previews.
// This package has no HTTP dependencies and can be used by any frontend.
package core

import (
	"fmt"
)

// Cell is a single nullable value in a table column.
// Valid is false for missing values (empty CSV fields, short Excel rows).
// Mirrors the pgtype value-object convention: zero value is a null cell.
type Cell struct {
	String string
	Valid  bool
}

// CellOf returns a valid cell holding s.
func CellOf(s string) Cell {
	return Cell{String: s, Valid: true}
}

// NullCell returns a missing value.
func NullCell() Cell {
	return Cell{}
}

// Column is a named, ordered sequence of cells.
type Column struct {
	Name  string
	Cells []Cell
}

// Table is an ordered collection of equally sized columns.
//
// A Table is immutable once constructed: builders only read it, and the
// orchestrator never hands out mutable references. Column name uniqueness
// and uniform column length are enforced here, at the construction
// boundary, so the analysis code can assume both.
type Table struct {
	columns  []Column
	rowCount int
}

// NewTable validates columns and assembles a table.
// Duplicate column names and ragged columns are construction errors;
// analysis behavior for such tables is undefined, so they are rejected
// before a table ever exists.
func NewTable(columns []Column) (*Table, error) {
	seen := make(map[string]struct{}, len(columns))
	rows := 0
	for i, col := range columns {
		if _, dup := seen[col.Name]; dup {
			return nil, fmt.Errorf("duplicate column name %q", col.Name)
		}
		seen[col.Name] = struct{}{}

		if i == 0 {
			rows = len(col.Cells)
		} else if len(col.Cells) != rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", col.Name, len(col.Cells), rows)
		}
	}
	if len(columns) == 0 {
		rows = 0
	}
	return &Table{columns: columns, rowCount: rows}, nil
}

// Columns returns the table's columns in their original order.
// The returned slice must not be modified.
func (t *Table) Columns() []Column {
	return t.columns
}

// RowCount returns the number of rows in the table.
func (t *Table) RowCount() int {
	return t.rowCount
}

// ColumnCount returns the number of columns in the table.
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// ColumnType is the inferred semantic type of a column.
type ColumnType string

const (
	TypeDate     ColumnType = "date"
	TypeNumber   ColumnType = "number"
	TypeCategory ColumnType = "category"
	TypeText     ColumnType = "text"
)

// TypeMap maps column names to their inferred types.
type TypeMap map[string]ColumnType
