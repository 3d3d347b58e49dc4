package dataset

import (
	"math"
	"testing"
	"time"
)

func obsAt(t time.Time, measures map[string]float64, labels map[string]string) Observation {
	return Observation{Time: t, Measures: measures, Labels: labels}
}

func TestFrameKeyCaching(t *testing.T) {
	f := NewFrame([]Observation{
		obsAt(time.Time{}, map[string]float64{"pm2_5": 10}, map[string]string{"date": "2024-01-01"}),
		obsAt(time.Time{}, map[string]float64{"pm10": 20}, map[string]string{"ica_category": "Buena"}),
	})

	if !f.HasMeasure("pm2_5") || !f.HasMeasure("pm10") {
		t.Errorf("expected both pollutant columns, got %v", f.MeasureKeys())
	}
	if !f.HasLabel("date") || !f.HasLabel("ica_category") {
		t.Errorf("expected both label columns, got %v", f.LabelKeys())
	}
	if f.HasMeasure("o3") {
		t.Error("o3 should not exist")
	}
}

func TestMeasureFillsNaN(t *testing.T) {
	f := NewFrame([]Observation{
		obsAt(time.Time{}, map[string]float64{"pm2_5": 10}, nil),
		obsAt(time.Time{}, map[string]float64{"pm10": 20}, nil),
	})

	vals, ok := f.Measure("pm2_5")
	if !ok {
		t.Fatal("pm2_5 should exist")
	}
	if vals[0] != 10 {
		t.Errorf("vals[0] = %v, want 10", vals[0])
	}
	if !math.IsNaN(vals[1]) {
		t.Errorf("vals[1] = %v, want NaN", vals[1])
	}
}

func TestPollutantColumnsKeepCanonicalOrder(t *testing.T) {
	f := NewFrame([]Observation{
		obsAt(time.Time{}, map[string]float64{"pm10": 1, "co": 2, "o3": 3, "humidity": 4}, nil),
	})

	got := f.PollutantColumns()
	want := []string{"co", "o3", "pm10"}
	if len(got) != len(want) {
		t.Fatalf("PollutantColumns = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PollutantColumns[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWithLabelDoesNotMutateSource(t *testing.T) {
	f := NewFrame([]Observation{
		obsAt(time.Time{}, map[string]float64{"pm2_5": 10}, map[string]string{"date": "2024-01-01"}),
		obsAt(time.Time{}, map[string]float64{"pm2_5": 40}, map[string]string{"date": "2024-01-02"}),
	})

	g := f.WithLabel("ica_category", []string{"Buena", "Moderada"})

	if f.HasLabel("ica_category") {
		t.Error("source frame should not gain the label column")
	}
	got, ok := g.Label("ica_category")
	if !ok {
		t.Fatal("copy should carry the label column")
	}
	if got[0] != "Buena" || got[1] != "Moderada" {
		t.Errorf("labels = %v", got)
	}
}
