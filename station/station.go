// Package station is the data-preparation collaborator for air-quality
// frames: it derives the ICA severity label from PM2.5 concentrations and
// ranks the most contaminated days of a monitoring station.
package station

import (
	"math"
	"sort"
	"time"

	"github.com/calaire-org/calaire/dataset"
)

// Station wraps a monitoring station's observation frame and answers
// day-ranking queries for the chart renderers.
type Station struct {
	name  string
	frame *dataset.Frame
}

// New creates a station over a frame. The frame is time-index normalized
// lazily, on the first ranking query.
func New(name string, f *dataset.Frame) *Station {
	return &Station{name: name, frame: f}
}

// Name returns the station name.
func (s *Station) Name() string { return s.name }

// TopDays returns the n days with the highest daily mean of a column,
// sorted descending. It satisfies the chart package's DayRanker contract.
func (s *Station) TopDays(column string, n int) ([]dataset.DayValue, error) {
	f := s.frame.NormalizeTimeIndex()
	if !f.HasTimeIndex() {
		return nil, dataset.ErrNoTimeIndex
	}

	vals, ok := f.Measure(column)
	if !ok {
		return nil, &dataset.ColumnError{Column: column}
	}

	type bucket struct {
		sum   float64
		count int
	}
	days := make(map[time.Time]*bucket)
	var order []time.Time
	times := f.Times()
	for i, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		day := times[i].Truncate(24 * time.Hour)
		b, seen := days[day]
		if !seen {
			b = &bucket{}
			days[day] = b
			order = append(order, day)
		}
		b.sum += v
		b.count++
	}

	ranked := make([]dataset.DayValue, 0, len(order))
	for _, day := range order {
		b := days[day]
		ranked = append(ranked, dataset.DayValue{
			Date:  day,
			Value: b.sum / float64(b.count),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Value > ranked[j].Value })

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}
