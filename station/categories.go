package station

import (
	"math"

	"github.com/calaire-org/calaire/dataset"
)

// PM2.5 breakpoints of the ICA scale. Upper bounds are inclusive; the
// ranges match the reference table (0–12, 12.1–35.4, 35.5–55.4,
// 55.5–150.4, >150.4).
var icaBreakpoints = []struct {
	upper    float64
	category string
}{
	{12.0, "Buena"},
	{35.4, "Moderada"},
	{55.4, "Dañina para grupos sensibles"},
	{150.4, "Muy dañina"},
	{math.Inf(1), "Peligrosa"},
}

// CategoryFor returns the ICA severity label for a PM2.5 concentration.
// NaN yields the empty string.
func CategoryFor(pm25 float64) string {
	if math.IsNaN(pm25) {
		return ""
	}
	for _, bp := range icaBreakpoints {
		if pm25 <= bp.upper {
			return bp.category
		}
	}
	return ""
}

// AssignCategories returns a copy of the frame with the "ica_category"
// label derived from PM2.5. Rows without a PM2.5 value keep an empty
// label. A frame without a PM2.5 column is returned unchanged with a
// *dataset.ColumnError.
func AssignCategories(f *dataset.Frame) (*dataset.Frame, error) {
	vals, ok := f.Measure("pm2_5")
	if !ok {
		return f, &dataset.ColumnError{Column: "pm2_5"}
	}

	labels := make([]string, len(vals))
	for i, v := range vals {
		labels[i] = CategoryFor(v)
	}
	return f.WithLabel(dataset.CategoryLabel, labels), nil
}
