package dataset

import (
	"sort"
	"strings"
	"time"
)

// ============================================================================
// TIME-INDEX NORMALIZATION
// ============================================================================
// Time-aware operations (time series, hourly pivots, daily rankings) need a
// parsed, ascending time index. Normalization promotes the raw "date" label
// to the row timestamp, dropping rows whose dates do not parse. Calling it
// on an already-indexed frame returns the same frame.
// ============================================================================

// dateLayouts are tried in order when parsing the raw date label.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006 15:04",
	"02/01/2006",
}

// NormalizeTimeIndex guarantees the frame has a time-based row index.
// Rows with unparseable dates are dropped silently. Idempotent: an indexed
// frame is returned unchanged.
func (f *Frame) NormalizeTimeIndex() *Frame {
	if f.indexed {
		return f
	}

	raw, ok := f.Label(DateLabel)
	if !ok {
		return f
	}

	kept := make([]Observation, 0, len(f.obs))
	for i, o := range f.obs {
		t, ok := parseDate(raw[i])
		if !ok {
			continue
		}
		o.Time = t
		kept = append(kept, o)
	}

	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Time.Before(kept[j].Time) })

	out := NewFrame(kept)
	out.indexed = len(kept) > 0
	return out
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
