package core

// Preview limits. maxCellRunes applies per cell; longer values are cut
// and marked with a trailing ellipsis.
const (
	maxPreviewRows = 20
	maxCellRunes   = 200
)

// PreviewColumn describes one column of the preview: its name and
// inferred type.
type PreviewColumn struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type"`
}

// Preview is a bounded, string-safe sample of the table's leading rows.
// Every cell is a string; missing values render as "".
type Preview struct {
	Columns []PreviewColumn `json:"columns"`
	Rows    [][]string      `json:"rows"`
}

// BuildPreview renders the first min(20, rows) rows of the table.
// Cells in date-typed columns are normalized to ISO-8601 when they parse;
// everything else is passed through with truncation.
func BuildPreview(t *Table, types TypeMap) Preview {
	cols := t.Columns()
	descriptors := make([]PreviewColumn, len(cols))
	for i, col := range cols {
		colType, ok := types[col.Name]
		if !ok {
			colType = TypeText
		}
		descriptors[i] = PreviewColumn{Name: col.Name, Type: colType}
	}

	rowCount := t.RowCount()
	if rowCount > maxPreviewRows {
		rowCount = maxPreviewRows
	}

	rows := make([][]string, rowCount)
	for r := 0; r < rowCount; r++ {
		row := make([]string, len(cols))
		for c, col := range cols {
			row[c] = renderCell(col.Cells[r], descriptors[c].Type)
		}
		rows[r] = row
	}

	return Preview{Columns: descriptors, Rows: rows}
}

// renderCell converts a single cell to its display string.
func renderCell(cell Cell, colType ColumnType) string {
	if !cell.Valid {
		return ""
	}
	if colType == TypeDate {
		if d, ok := parseDate(cell.String); ok {
			return d.Format(isoDateTime)
		}
	}
	return truncateText(cell.String, maxCellRunes)
}

// truncateText cuts s to at most limit runes, appending "…" when cut.
func truncateText(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}
