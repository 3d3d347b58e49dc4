package dataset

import (
	"math"
	"strings"
	"testing"
)

var sampleCSV = `Date,PM2.5,PM10,O3,ICA Category
2024-03-01 09:00:00,10.5,22.1,31.0,Buena
2024-03-01 10:00:00,14.0,25.9,,Moderada
2024-03-01 11:00:00,55.7,80.3,28.4,Dañina para grupos sensibles
`

func TestLoadCSVAutoTyping(t *testing.T) {
	f, err := LoadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}

	if f.Len() != 3 {
		t.Fatalf("Len = %d, want 3", f.Len())
	}
	for _, col := range []string{"pm2_5", "pm10", "o3"} {
		if !f.HasMeasure(col) {
			t.Errorf("%s should be a measure, got %v", col, f.MeasureKeys())
		}
	}
	for _, col := range []string{"date", "ica_category"} {
		if !f.HasLabel(col) {
			t.Errorf("%s should be a label, got %v", col, f.LabelKeys())
		}
	}

	o3, _ := f.Measure("o3")
	if !math.IsNaN(o3[1]) {
		t.Errorf("empty cell should read as NaN, got %v", o3[1])
	}
}

func TestLoadCSVSkipsMalformedRows(t *testing.T) {
	data := "date,pm2_5\n2024-03-01,10\nonly-one-field\n2024-03-02,20\n"

	f, err := LoadCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}
	if f.Len() != 2 {
		t.Errorf("Len = %d, want 2 (malformed row skipped)", f.Len())
	}
}

func TestSnakeCaseHeaders(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"PM2.5", "pm2_5"},
		{"ICA Category", "ica_category"},
		{"pm10", "pm10"},
		{"Station-Name", "station_name"},
	}

	for _, tt := range tests {
		got := toSnakeCase(tt.input)
		if got != tt.expected {
			t.Errorf("toSnakeCase(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
