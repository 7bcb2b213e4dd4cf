package core

import (
	"fmt"
	"sort"
)

// maxChartCategories caps the category frequency chart at the top N values.
const maxChartCategories = 5

// CategoryPoint is one bar of the category frequency chart.
type CategoryPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// CategoryTop5 is the top-5 category frequency chart.
type CategoryTop5 struct {
	Title       string          `json:"title"`
	XLabel      string          `json:"x_label"`
	YLabel      string          `json:"y_label"`
	Data        []CategoryPoint `json:"data"`
	Explanation string          `json:"explanation"`
}

// DatePoint is one entry of the daily time series.
type DatePoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ByDate is the daily record-count time series.
type ByDate struct {
	Title       string      `json:"title"`
	XLabel      string      `json:"x_label"`
	YLabel      string      `json:"y_label"`
	Data        []DatePoint `json:"data"`
	Explanation string      `json:"explanation"`
}

// Charts bundles the chart-ready aggregations. Either chart is nil when
// the table has no qualifying column; that is an expected outcome, not
// an error.
type Charts struct {
	ByCategoryTop5 *CategoryTop5 `json:"by_category_top5"`
	ByDate         *ByDate       `json:"by_date"`
}

// BuildCharts derives both chart aggregations from a table and its
// inferred types.
func BuildCharts(t *Table, types TypeMap) Charts {
	return Charts{
		ByCategoryTop5: buildCategoryTop5(t, types),
		ByDate:         buildByDate(t, types),
	}
}

// buildCategoryTop5 charts the five most frequent values of the
// best-scoring category column. Counts are descending; ties keep the
// order in which values first appear in the column.
func buildCategoryTop5(t *Table, types TypeMap) *CategoryTop5 {
	col, ok := selectCategoryColumn(t, types)
	if !ok {
		return nil
	}

	counts, total := countValues(col)
	if total == 0 || len(counts) == 0 {
		return nil
	}
	if len(counts) > maxChartCategories {
		counts = counts[:maxChartCategories]
	}

	data := make([]CategoryPoint, len(counts))
	for i, vc := range counts {
		data[i] = CategoryPoint{Label: vc.value, Value: vc.count}
	}

	return &CategoryTop5{
		Title:       fmt.Sprintf("%s別の件数Top5", col.Name),
		XLabel:      col.Name,
		YLabel:      "件数",
		Data:        data,
		Explanation: "主要カテゴリ別の件数上位です。数が多いほど関心が集中しています。",
	}
}

// buildByDate charts daily record counts for the first date-typed column
// in table order. Only one date aggregation is produced even when several
// date columns exist. Days with no valid values are absent, not zero.
func buildByDate(t *Table, types TypeMap) *ByDate {
	var col Column
	found := false
	for _, c := range t.Columns() {
		if types[c.Name] == TypeDate {
			col = c
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	perDay := make(map[string]int)
	for _, cell := range col.Cells {
		if !cell.Valid {
			continue
		}
		d, ok := parseDate(cell.String)
		if !ok {
			continue
		}
		perDay[truncateDay(d).Format("2006-01-02")]++
	}
	if len(perDay) == 0 {
		return nil
	}

	days := make([]string, 0, len(perDay))
	for day := range perDay {
		days = append(days, day)
	}
	sort.Strings(days)

	data := make([]DatePoint, len(days))
	for i, day := range days {
		data[i] = DatePoint{Date: day, Count: perDay[day]}
	}

	return &ByDate{
		Title:       fmt.Sprintf("%s単位の日次推移", col.Name),
		XLabel:      "日付",
		YLabel:      "件数",
		Data:        data,
		Explanation: "日付ごとの件数推移です。増減から傾向を把握できます。",
	}
}
