// Package interpret builds derived summary tables from air-quality frames:
// the static ICA reference scale and the per-category distribution of the
// observed severity labels.
package interpret

import (
	"sort"

	"go.uber.org/zap"

	"github.com/calaire-org/calaire/dataset"
)

var logger = zap.NewNop()

// SetLogger replaces the package logger. A nil logger is ignored.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

// MissingCategory is the bucket used for rows without a severity label.
// Distribution counts include it so missing values stay visible.
const MissingCategory = "Sin datos"

// ============================================================================
// REFERENCE TABLE
// ============================================================================

// ReferenceRow is one row of the ICA reference scale: the severity
// category, its PM2.5 concentration range, and the health impact text.
type ReferenceRow struct {
	Category     string
	PM25Range    string
	HealthImpact string
}

// ReferenceTable returns the fixed five-row ICA scale, rebuilt on each call.
// The ordering is part of the contract: Buena through Peligrosa.
func ReferenceTable() []ReferenceRow {
	return []ReferenceRow{
		{"Buena", "0–12", "Sin efectos visibles"},
		{"Moderada", "12.1–35.4", "Leve irritación en personas sensibles"},
		{"Dañina para grupos sensibles", "35.5–55.4", "Riesgo respiratorio leve"},
		{"Muy dañina", "55.5–150.4", "Efectos respiratorios y cardíacos"},
		{"Peligrosa", ">150.4", "Riesgo alto para toda la población"},
	}
}

// ============================================================================
// CATEGORY DISTRIBUTION
// ============================================================================

// CategoryCount is one row of a distribution summary.
type CategoryCount struct {
	Category   string
	Count      int
	Percentage float64
}

// CategoryDistribution computes value counts and percentages for the
// severity column. Rows without a label are counted under MissingCategory.
// The result is ordered by descending count (ties keep first-seen order).
//
// A missing column is recoverable: the summarizer logs a warning and
// returns a nil summary with a *dataset.ColumnError.
func CategoryDistribution(f *dataset.Frame, catCol string) ([]CategoryCount, error) {
	if catCol == "" {
		catCol = dataset.CategoryLabel
	}

	labels, ok := f.Label(catCol)
	if !ok {
		logger.Warn("category column not found, run the processing step first",
			zap.String("column", catCol))
		return nil, &dataset.ColumnError{Column: catCol}
	}

	counts := make(map[string]int)
	var order []string
	for _, lbl := range labels {
		if lbl == "" {
			lbl = MissingCategory
		}
		if _, seen := counts[lbl]; !seen {
			order = append(order, lbl)
		}
		counts[lbl]++
	}

	total := len(labels)
	rows := make([]CategoryCount, 0, len(order))
	for _, cat := range order {
		rows = append(rows, CategoryCount{
			Category:   cat,
			Count:      counts[cat],
			Percentage: float64(counts[cat]) / float64(total) * 100,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })
	return rows, nil
}
