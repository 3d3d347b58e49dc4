package dataset

import (
	"math"
	"sort"
	"time"
)

// ============================================================================
// OBSERVATION FRAME — In-Memory Air-Quality Table
// ============================================================================
// An observation is a single measurement row: a timestamp, numeric pollutant
// measures, and string labels (the ICA category, raw date text, station
// metadata). A Frame is an ordered sequence of observations with cached
// measure/label keys so column lookups stay cheap.
//
// The frame never owns caller state beyond the slice it was built from;
// every transformation that changes rows returns a new Frame.
// ============================================================================

// Well-known column names.
const (
	DateLabel     = "date"
	CategoryLabel = "ica_category"
)

// Pollutants is the canonical set of pollutant measure keys, in the order
// charts present them.
var Pollutants = []string{"co", "no", "no2", "o3", "so2", "pm2_5", "pm10", "nh3"}

// Observation is a single timestamped measurement row.
type Observation struct {
	Time     time.Time
	Measures map[string]float64
	Labels   map[string]string
}

// Frame is an ordered sequence of observations.
type Frame struct {
	obs       []Observation
	measKeys  []string
	labelKeys []string
	indexed   bool
}

// NewFrame builds a Frame from observations and caches column keys.
// The frame is considered time-indexed when every row carries a timestamp.
func NewFrame(obs []Observation) *Frame {
	f := &Frame{obs: obs}
	f.cacheKeys()
	f.indexed = len(obs) > 0
	for _, o := range obs {
		if o.Time.IsZero() {
			f.indexed = false
			break
		}
	}
	return f
}

func (f *Frame) cacheKeys() {
	measSeen := make(map[string]bool)
	labelSeen := make(map[string]bool)
	for _, o := range f.obs {
		for k := range o.Measures {
			if !measSeen[k] {
				measSeen[k] = true
				f.measKeys = append(f.measKeys, k)
			}
		}
		for k := range o.Labels {
			if !labelSeen[k] {
				labelSeen[k] = true
				f.labelKeys = append(f.labelKeys, k)
			}
		}
	}
	sort.Strings(f.measKeys)
	sort.Strings(f.labelKeys)
}

// Len returns the number of observations.
func (f *Frame) Len() int { return len(f.obs) }

// HasTimeIndex reports whether every row carries a parsed timestamp.
func (f *Frame) HasTimeIndex() bool { return f.indexed }

// HasMeasure reports whether a numeric column exists in the frame.
func (f *Frame) HasMeasure(name string) bool {
	for _, k := range f.measKeys {
		if k == name {
			return true
		}
	}
	return false
}

// HasLabel reports whether a string column exists in the frame.
func (f *Frame) HasLabel(name string) bool {
	for _, k := range f.labelKeys {
		if k == name {
			return true
		}
	}
	return false
}

// MeasureKeys returns the numeric column names, sorted.
func (f *Frame) MeasureKeys() []string { return f.measKeys }

// LabelKeys returns the string column names, sorted.
func (f *Frame) LabelKeys() []string { return f.labelKeys }

// Measure returns the values of a numeric column, NaN where a row has no
// entry. The second return is false when the column does not exist at all.
func (f *Frame) Measure(name string) ([]float64, bool) {
	if !f.HasMeasure(name) {
		return nil, false
	}
	vals := make([]float64, len(f.obs))
	for i, o := range f.obs {
		v, ok := o.Measures[name]
		if !ok {
			v = math.NaN()
		}
		vals[i] = v
	}
	return vals, true
}

// Label returns the values of a string column, "" where a row has no entry.
// The second return is false when the column does not exist at all.
func (f *Frame) Label(name string) ([]string, bool) {
	if !f.HasLabel(name) {
		return nil, false
	}
	vals := make([]string, len(f.obs))
	for i, o := range f.obs {
		vals[i] = o.Labels[name]
	}
	return vals, true
}

// Times returns the timestamp of every row, in frame order.
func (f *Frame) Times() []time.Time {
	ts := make([]time.Time, len(f.obs))
	for i, o := range f.obs {
		ts[i] = o.Time
	}
	return ts
}

// PollutantColumns returns the canonical pollutants present in this frame,
// keeping the canonical order.
func (f *Frame) PollutantColumns() []string {
	var cols []string
	for _, p := range Pollutants {
		if f.HasMeasure(p) {
			cols = append(cols, p)
		}
	}
	return cols
}

// WithLabel returns a copy of the frame with a label column replaced by the
// given values (one per row). Label maps are cloned so the source frame is
// untouched.
func (f *Frame) WithLabel(name string, values []string) *Frame {
	obs := make([]Observation, len(f.obs))
	for i, o := range f.obs {
		labels := make(map[string]string, len(o.Labels)+1)
		for k, v := range o.Labels {
			labels[k] = v
		}
		if i < len(values) {
			labels[name] = values[i]
		}
		obs[i] = Observation{Time: o.Time, Measures: o.Measures, Labels: labels}
	}
	out := NewFrame(obs)
	out.indexed = f.indexed
	return out
}

// DayValue is one entry of a daily ranking: a calendar day and the value
// aggregated for it.
type DayValue struct {
	Date  time.Time
	Value float64
}
