package core

import (
	"strconv"
	"strings"
	"testing"
)

// column builds a test column from raw strings; "" becomes a null cell.
func column(name string, values ...string) Column {
	cells := make([]Cell, len(values))
	for i, v := range values {
		if v != "" {
			cells[i] = CellOf(v)
		}
	}
	return Column{Name: name, Cells: cells}
}

func TestInferColumnType(t *testing.T) {
	tests := []struct {
		name string
		col  Column
		want ColumnType
	}{
		{
			name: "empty column is text",
			col:  Column{Name: "empty"},
			want: TypeText,
		},
		{
			name: "all missing is text",
			col:  column("missing", "", "", ""),
			want: TypeText,
		},
		{
			name: "dates",
			col:  column("d", "2024-01-01", "2024-01-02", "2024-01-03"),
			want: TypeDate,
		},
		{
			name: "exactly half dates meets the threshold",
			col:  column("d", "2024-01-01", "2024-01-02", "foo", "bar"),
			want: TypeDate,
		},
		{
			name: "below half dates is not a date column",
			col:  column("d", "2024-01-01", "foo", "bar"),
			want: TypeCategory,
		},
		{
			name: "numbers",
			col:  column("n", "1", "2.5", "-3", "1e2"),
			want: TypeNumber,
		},
		{
			name: "numbers with some junk above threshold",
			col:  column("n", "1", "2", "3", "4", "5", "6", "7", "x", "y", "z"),
			want: TypeNumber,
		},
		{
			name: "numbers below threshold fall through",
			col:  column("n", "1", "2", "x", "y", "z"),
			want: TypeCategory,
		},
		{
			name: "few short distinct values is category",
			col:  column("c", "red", "green", "blue", "red", "red"),
			want: TypeCategory,
		},
		{
			name: "long values are text",
			col:  column("t", strings.Repeat("a", 80), strings.Repeat("b", 80)),
			want: TypeText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferColumnType(tt.col); got != tt.want {
				t.Errorf("InferColumnType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInferColumnType_TooManyDistinctIsText(t *testing.T) {
	values := make([]string, 60)
	for i := range values {
		values[i] = "v" + strconv.Itoa(i) + "x" // distinct, short, non-numeric
	}
	col := column("ids", values...)
	if got := InferColumnType(col); got != TypeText {
		t.Errorf("InferColumnType() = %q, want %q", got, TypeText)
	}
}

func TestInferColumnType_SamplesFirst200Only(t *testing.T) {
	// 199 of the first 200 values are numeric; the junk beyond index 200
	// must not affect classification.
	values := make([]string, 300)
	for i := range values {
		if i == 100 {
			values[i] = "junk"
			continue
		}
		if i < 200 {
			values[i] = strconv.Itoa(i)
		} else {
			values[i] = "definitely not a number"
		}
	}
	col := column("n", values...)
	if got := InferColumnType(col); got != TypeNumber {
		t.Errorf("InferColumnType() = %q, want %q", got, TypeNumber)
	}

	// Flip it: numeric values only beyond the sampling window.
	for i := range values {
		if i < 200 {
			values[i] = "plain text value " + strconv.Itoa(i%3)
		} else {
			values[i] = strconv.Itoa(i)
		}
	}
	col = column("n", values...)
	if got := InferColumnType(col); got == TypeNumber {
		t.Error("values beyond the 200-value sample window affected inference")
	}
}

func TestInferColumnType_SampleSkipsMissing(t *testing.T) {
	// Missing values do not occupy sample slots: a sparse date column
	// still classifies as date.
	values := make([]string, 0, 40)
	for i := 0; i < 20; i++ {
		values = append(values, "", "2024-01-01")
	}
	col := column("d", values...)
	if got := InferColumnType(col); got != TypeDate {
		t.Errorf("InferColumnType() = %q, want %q", got, TypeDate)
	}
}

func TestInferColumnTypes(t *testing.T) {
	table, err := NewTable([]Column{
		column("when", "2024-01-01", "2024-01-02"),
		column("amount", "10", "20"),
		column("status", "open", "closed"),
	})
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}

	types := InferColumnTypes(table)
	want := TypeMap{"when": TypeDate, "amount": TypeNumber, "status": TypeCategory}
	for name, wantType := range want {
		if types[name] != wantType {
			t.Errorf("types[%q] = %q, want %q", name, types[name], wantType)
		}
	}
	if len(types) != 3 {
		t.Errorf("len(types) = %d, want 3", len(types))
	}
}
