package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ============================================================================
// CSV LOADER — Raw Export to Frame
// ============================================================================
// The caller reads the CSV from wherever it lives (file, object store);
// this loader converts the rows into observations. Columns are auto-typed
// per cell: values that parse as numbers become measures, everything else
// becomes a label. Malformed rows are skipped.
// ============================================================================

// LoadCSV parses CSV data into a Frame. Headers are snake-cased, so
// "PM2 5" and "pm2_5" address the same column. The returned frame is not
// yet time-indexed; call NormalizeTimeIndex before time-aware operations.
func LoadCSV(r io.Reader) (*Frame, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	keys := make([]string, len(headers))
	for i, h := range headers {
		keys[i] = toSnakeCase(strings.TrimSpace(h))
	}

	var obs []Observation
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}
		if len(row) != len(keys) {
			continue
		}

		o := Observation{
			Measures: make(map[string]float64),
			Labels:   make(map[string]string),
		}
		for i, val := range row {
			val = strings.TrimSpace(val)
			if val == "" {
				continue
			}
			// The date column stays textual even when it looks numeric.
			if keys[i] != DateLabel {
				if v, err := strconv.ParseFloat(val, 64); err == nil {
					o.Measures[keys[i]] = v
					continue
				}
			}
			o.Labels[keys[i]] = val
		}
		obs = append(obs, o)
	}

	return NewFrame(obs), nil
}

// toSnakeCase converts "Column Name" → "column_name".
func toSnakeCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, ".", "_")
	return s
}
