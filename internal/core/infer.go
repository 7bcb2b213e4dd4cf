package core

import "unicode/utf8"

// Inference thresholds and sampling limits. These are business rules,
// preserved exactly for compatibility with existing dashboard consumers.
const (
	// inferSampleSize caps how many non-missing values are examined per
	// column. Columns whose early rows are unrepresentative can be
	// misclassified; that is a documented limitation of the sampling
	// window, not something to silently widen.
	inferSampleSize = 200

	// dateThreshold is the minimum fraction of sampled values that must
	// parse as dates for the column to be typed date.
	dateThreshold = 0.5

	// numberThreshold is the minimum fraction of sampled values that must
	// parse as numbers for the column to be typed number.
	numberThreshold = 0.7

	// categoryMaxUnique and categoryMaxLength bound what still counts as
	// a categorical column: few distinct values, short labels.
	categoryMaxUnique = 50
	categoryMaxLength = 50
)

// InferColumnType classifies a column as date, number, category, or text.
//
// The policy is first-match-wins over the first inferSampleSize
// non-missing values:
//
//  1. no non-missing values -> text
//  2. >= 50% of the sample parses as a date -> date
//  3. >= 70% of the sample parses as a number -> number
//  4. <= 50 distinct values with mean length <= 50 runes -> category
//  5. otherwise -> text
//
// Deterministic for a given column; no side effects.
func InferColumnType(col Column) ColumnType {
	sample := make([]string, 0, inferSampleSize)
	for _, cell := range col.Cells {
		if !cell.Valid {
			continue
		}
		sample = append(sample, cell.String)
		if len(sample) == inferSampleSize {
			break
		}
	}
	if len(sample) == 0 {
		return TypeText
	}

	dateHits := 0
	for _, v := range sample {
		if _, ok := parseDate(v); ok {
			dateHits++
		}
	}
	if float64(dateHits)/float64(len(sample)) >= dateThreshold {
		return TypeDate
	}

	numberHits := 0
	for _, v := range sample {
		if _, ok := parseNumber(v); ok {
			numberHits++
		}
	}
	if float64(numberHits)/float64(len(sample)) >= numberThreshold {
		return TypeNumber
	}

	distinct := make(map[string]struct{}, len(sample))
	totalLen := 0
	for _, v := range sample {
		distinct[v] = struct{}{}
		totalLen += utf8.RuneCountInString(v)
	}
	meanLen := float64(totalLen) / float64(len(sample))
	if len(distinct) <= categoryMaxUnique && meanLen <= categoryMaxLength {
		return TypeCategory
	}

	return TypeText
}

// InferColumnTypes classifies every column of a table.
func InferColumnTypes(t *Table) TypeMap {
	types := make(TypeMap, t.ColumnCount())
	for _, col := range t.Columns() {
		types[col.Name] = InferColumnType(col)
	}
	return types
}
