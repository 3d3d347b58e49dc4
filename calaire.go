// Package calaire provides exploratory analysis and chart helpers for
// air-quality observation data graded on the ICA scale.
//
// Usage:
//
//	import (
//	    "github.com/calaire-org/calaire/dataset"
//	    "github.com/calaire-org/calaire/chart"
//	)
//
//	frame, _ := dataset.LoadCSV(file)
//	frame = frame.NormalizeTimeIndex()
//	err := chart.TimeSeries(frame, []string{"pm2_5", "pm10"}, "series.png")
//
// Every helper is a stateless transformation of an in-memory observation
// frame into either a derived table (interpret) or a rendered chart
// (chart for PNG output, explore for interactive HTML). Nothing persists
// between calls and no helper mutates the caller's frame.
package calaire
