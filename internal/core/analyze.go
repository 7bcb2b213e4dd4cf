package core

// Analysis groups everything derived from one table in a single pass.
type Analysis struct {
	Types   TypeMap
	Summary Summary
	Charts  Charts
	Preview Preview
}

// Analyze runs type inference and the three builders over a table.
//
// The builders are mutually independent and read-only over the table and
// the type map; they run sequentially here because a single table never
// warrants the coordination overhead. Per-cell parse failures are skips
// inside the builders — Analyze itself cannot fail and never returns a
// partial result.
func Analyze(t *Table) Analysis {
	types := InferColumnTypes(t)
	return Analysis{
		Types:   types,
		Summary: Summarize(t, types),
		Charts:  BuildCharts(t, types),
		Preview: BuildPreview(t, types),
	}
}
