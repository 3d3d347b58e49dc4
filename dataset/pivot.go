package dataset

import (
	"math"
	"time"
)

// ============================================================================
// PIVOTS — Weekday × Hour Aggregation
// ============================================================================

// WeekdayNames are the pivot row labels, Monday first.
var WeekdayNames = []string{
	"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo",
}

// Pivot is a weekday × hour table of mean values. Cells with no
// observations hold NaN.
type Pivot struct {
	Rows   []string    // weekday names, Monday first
	Values [][]float64 // 7 rows × 24 hour columns
}

// HourlyPivot computes the mean of one measure bucketed by day-of-week and
// hour-of-day. The frame is time-index normalized first; a frame that cannot
// be indexed returns ErrNoTimeIndex, a missing measure returns *ColumnError.
func HourlyPivot(f *Frame, column string) (*Pivot, error) {
	f = f.NormalizeTimeIndex()
	if !f.HasTimeIndex() {
		return nil, ErrNoTimeIndex
	}

	vals, ok := f.Measure(column)
	if !ok {
		return nil, &ColumnError{Column: column}
	}

	var sums, counts [7][24]float64
	times := f.Times()
	for i, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		dow := mondayIndex(times[i])
		hour := times[i].Hour()
		sums[dow][hour] += v
		counts[dow][hour]++
	}

	values := make([][]float64, 7)
	for d := 0; d < 7; d++ {
		values[d] = make([]float64, 24)
		for h := 0; h < 24; h++ {
			if counts[d][h] == 0 {
				values[d][h] = math.NaN()
				continue
			}
			values[d][h] = sums[d][h] / counts[d][h]
		}
	}

	return &Pivot{Rows: WeekdayNames, Values: values}, nil
}

// mondayIndex maps time.Weekday (Sunday=0) to a Monday-first index.
func mondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
