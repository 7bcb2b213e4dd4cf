package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestParseCSV(t *testing.T) {
	input := "name,age,city\nalice,30,Berlin\nbob,25,Paris\n"
	table, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}

	if table.ColumnCount() != 3 || table.RowCount() != 2 {
		t.Fatalf("dims = (%d, %d), want (2 rows, 3 cols)", table.RowCount(), table.ColumnCount())
	}
	cols := table.Columns()
	if cols[0].Name != "name" || cols[2].Name != "city" {
		t.Errorf("headers = %q, %q, %q", cols[0].Name, cols[1].Name, cols[2].Name)
	}
	if cols[1].Cells[1] != CellOf("25") {
		t.Errorf("cells[1][1] = %+v, want 25", cols[1].Cells[1])
	}
}

func TestParseCSV_EmptyCellsAreMissing(t *testing.T) {
	table, err := ParseCSV(strings.NewReader("a,b\n1,\n,2\n"))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	cols := table.Columns()
	if cols[1].Cells[0].Valid {
		t.Error("empty cell should be missing")
	}
	if cols[0].Cells[1].Valid {
		t.Error("empty cell should be missing")
	}
}

func TestParseCSV_RaggedRows(t *testing.T) {
	// short rows pad with nulls; long rows drop the extra cells
	table, err := ParseCSV(strings.NewReader("a,b\n1\n1,2,3\n"))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	cols := table.Columns()
	if table.RowCount() != 2 {
		t.Fatalf("RowCount() = %d, want 2", table.RowCount())
	}
	if cols[1].Cells[0].Valid {
		t.Error("padded cell should be missing")
	}
	if cols[1].Cells[1] != CellOf("2") {
		t.Errorf("cells[1][1] = %+v, want 2", cols[1].Cells[1])
	}
}

func TestParseCSV_BlankHeaderGetsFallbackName(t *testing.T) {
	table, err := ParseCSV(strings.NewReader("a,,c\n1,2,3\n"))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	if got := table.Columns()[1].Name; got != "Column_2" {
		t.Errorf("fallback name = %q, want Column_2", got)
	}
}

func TestParseCSV_StripsBOM(t *testing.T) {
	table, err := ParseCSV(strings.NewReader("\ufeffname,age\nx,1\n"))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	if got := table.Columns()[0].Name; got != "name" {
		t.Errorf("header = %q, want name", got)
	}
}

func TestParseCSV_DuplicateHeaders(t *testing.T) {
	if _, err := ParseCSV(strings.NewReader("id,id\n1,2\n")); err == nil {
		t.Fatal("ParseCSV() accepted duplicate headers")
	}
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	table, err := ParseCSV(strings.NewReader("a,b\n"))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	if table.RowCount() != 0 || table.ColumnCount() != 2 {
		t.Errorf("dims = (%d, %d), want (0, 2)", table.RowCount(), table.ColumnCount())
	}
}

func TestParseCSV_Empty(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""))
	if !errors.Is(err, ErrEmptyFile) {
		t.Errorf("ParseCSV() error = %v, want ErrEmptyFile", err)
	}
}

func TestParseCSV_Malformed(t *testing.T) {
	// unterminated quote
	if _, err := ParseCSV(strings.NewReader("a,b\n\"broken,2\n")); err == nil {
		t.Fatal("ParseCSV() accepted malformed CSV")
	}
}

func TestParseExcel(t *testing.T) {
	f := excelize.NewFile()
	rows := [][]any{
		{"name", "amount"},
		{"alice", 10},
		{"bob", 20},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName() error = %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("SetSheetRow() error = %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer() error = %v", err)
	}

	table, err := ParseExcel(buf)
	if err != nil {
		t.Fatalf("ParseExcel() error = %v", err)
	}
	if table.ColumnCount() != 2 || table.RowCount() != 2 {
		t.Fatalf("dims = (%d, %d), want (2 rows, 2 cols)", table.RowCount(), table.ColumnCount())
	}
	if table.Columns()[0].Name != "name" {
		t.Errorf("header = %q, want name", table.Columns()[0].Name)
	}
	if table.Columns()[1].Cells[1] != CellOf("20") {
		t.Errorf("cells[1][1] = %+v, want 20", table.Columns()[1].Cells[1])
	}
}

func TestParseExcel_NotAWorkbook(t *testing.T) {
	if _, err := ParseExcel(strings.NewReader("just text")); err == nil {
		t.Fatal("ParseExcel() accepted non-xlsx input")
	}
}
