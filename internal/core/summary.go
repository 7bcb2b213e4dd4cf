package core

import (
	"math"
	"sort"
	"time"
)

// missingRatioThreshold is the minimum fraction of missing values for a
// column to be reported in MissingColumns. The threshold is inclusive.
const missingRatioThreshold = 0.3

// TopCategory identifies the dominant value of the most informative
// category column. Ratio is the share of non-missing values in that
// column held by Value, always within [0, 1].
type TopCategory struct {
	Column string  `json:"column"`
	Value  string  `json:"value"`
	Ratio  float64 `json:"ratio"`
}

// Summary is the dataset-level statistical overview.
type Summary struct {
	RowCount       int          `json:"row_count"`
	ColumnCount    int          `json:"column_count"`
	LatestDate     *string      `json:"latest_date"`
	TopCategory    *TopCategory `json:"top_category"`
	MissingColumns []string     `json:"missing_columns"`
}

// Summarize computes the summary for a table and its inferred types.
func Summarize(t *Table, types TypeMap) Summary {
	return Summary{
		RowCount:       t.RowCount(),
		ColumnCount:    t.ColumnCount(),
		LatestDate:     findLatestDate(t, types),
		TopCategory:    findTopCategory(t, types),
		MissingColumns: findMissingColumns(t),
	}
}

// findLatestDate returns the maximum date across all date-typed columns,
// normalized to midnight and formatted as an ISO-8601 date-time string.
// Values that fail to parse are dropped; nil if nothing parses.
func findLatestDate(t *Table, types TypeMap) *string {
	var latest time.Time
	found := false
	for _, col := range t.Columns() {
		if types[col.Name] != TypeDate {
			continue
		}
		for _, cell := range col.Cells {
			if !cell.Valid {
				continue
			}
			d, ok := parseDate(cell.String)
			if !ok {
				continue
			}
			if !found || d.After(latest) {
				latest = d
				found = true
			}
		}
	}
	if !found {
		return nil
	}
	s := truncateDay(latest).Format(isoDateTime)
	return &s
}

// findTopCategory returns the most frequent value of the best-scoring
// category column, or nil if no category column has non-missing values.
func findTopCategory(t *Table, types TypeMap) *TopCategory {
	col, ok := selectCategoryColumn(t, types)
	if !ok {
		return nil
	}

	counts, total := countValues(col)
	if total == 0 || len(counts) == 0 {
		return nil
	}

	return &TopCategory{
		Column: col.Name,
		Value:  counts[0].value,
		Ratio:  float64(counts[0].count) / float64(total),
	}
}

// findMissingColumns lists columns whose missing-value ratio is at least
// missingRatioThreshold, in original column order. A table with zero rows
// yields an empty list.
func findMissingColumns(t *Table) []string {
	missing := make([]string, 0)
	if t.RowCount() == 0 {
		return missing
	}
	for _, col := range t.Columns() {
		nulls := 0
		for _, cell := range col.Cells {
			if !cell.Valid {
				nulls++
			}
		}
		if float64(nulls)/float64(t.RowCount()) >= missingRatioThreshold {
			missing = append(missing, col.Name)
		}
	}
	return missing
}

// valueCount is one entry of a column's frequency distribution.
type valueCount struct {
	value string
	count int
}

// countValues builds the frequency distribution of a column's non-missing
// values, sorted by descending count. Ties keep the order in which values
// were first encountered, which downstream consumers rely on for stable
// chart output. Returns the distribution and the total non-missing count.
func countValues(col Column) ([]valueCount, int) {
	index := make(map[string]int)
	var counts []valueCount
	total := 0
	for _, cell := range col.Cells {
		if !cell.Valid {
			continue
		}
		total++
		if i, seen := index[cell.String]; seen {
			counts[i].count++
			continue
		}
		index[cell.String] = len(counts)
		counts = append(counts, valueCount{value: cell.String, count: 1})
	}
	sortByCountDesc(counts)
	return counts, total
}

// sortByCountDesc sorts counts by descending count. The sort is stable,
// so equal counts keep their first-encountered order.
func sortByCountDesc(counts []valueCount) {
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].count > counts[j].count
	})
}

// selectCategoryColumn picks the category-typed column most useful for a
// frequency chart: score = distinct count - 2 * (top count / total).
// Rich, evenly spread columns beat columns dominated by one value.
// Ties keep the first column in table order; columns that are empty after
// dropping missing values are excluded.
func selectCategoryColumn(t *Table, types TypeMap) (Column, bool) {
	var best Column
	bestScore := math.Inf(-1)
	found := false
	for _, col := range t.Columns() {
		if types[col.Name] != TypeCategory {
			continue
		}
		counts, total := countValues(col)
		if total == 0 || len(counts) == 0 {
			continue
		}
		topRatio := float64(counts[0].count) / float64(total)
		score := float64(len(counts)) - 2*topRatio
		if score > bestScore {
			best = col
			bestScore = score
			found = true
		}
	}
	return best, found
}
