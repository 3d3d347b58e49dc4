// Package explore renders air-quality frames as interactive HTML charts.
// It is the exploratory counterpart of the chart package: same validation
// contract, but the artifact is an echarts page opened in a browser
// instead of a fixed-resolution PNG.
package explore

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"go.uber.org/zap"

	"github.com/calaire-org/calaire/dataset"
	"github.com/calaire-org/calaire/interpret"
)

var logger = zap.NewNop()

// SetLogger replaces the package logger. A nil logger is ignored.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

var icaColors = map[string]string{
	"Buena":                        "#2ECC71",
	"Moderada":                     "#F1C40F",
	"Dañina para grupos sensibles": "#E67E22",
	"Dañina":                       "#D35400",
	"Muy dañina":                   "#E74C3C",
	"Peligrosa":                    "#8E44AD",
}

const chartWidth, chartHeight = "1100px", "500px"

// TimeSeriesHTML writes an interactive line chart of the given pollutant
// columns to path.
func TimeSeriesHTML(f *dataset.Frame, columns []string, path string) error {
	line, err := timeSeriesChart(f, columns)
	if err != nil {
		return err
	}
	return renderToFile(path, line.Render)
}

// CategoryBarsHTML writes an interactive bar chart of the ICA category
// distribution to path.
func CategoryBarsHTML(f *dataset.Frame, path string) error {
	bar, err := categoryBarsChart(f)
	if err != nil {
		return err
	}
	return renderToFile(path, bar.Render)
}

// ScatterHTML writes an interactive scatter comparison of two pollutants
// to path.
func ScatterHTML(f *dataset.Frame, colX, colY string, path string) error {
	sc, err := scatterChart(f, colX, colY)
	if err != nil {
		return err
	}
	return renderToFile(path, sc.Render)
}

// Dashboard writes a single page combining the time series, category
// distribution, and scatter comparison to path. Sections whose columns
// are missing are skipped with a warning; a page with no renderable
// section returns the last validation error.
func Dashboard(f *dataset.Frame, path string) error {
	page := components.NewPage()
	page.PageTitle = "Calidad del Aire"

	var added int
	var lastErr error

	if line, err := timeSeriesChart(f, nil); err == nil {
		page.AddCharts(line)
		added++
	} else {
		lastErr = err
	}
	if bar, err := categoryBarsChart(f); err == nil {
		page.AddCharts(bar)
		added++
	} else {
		lastErr = err
	}
	if sc, err := scatterChart(f, "pm2_5", "pm10"); err == nil {
		page.AddCharts(sc)
		added++
	} else {
		lastErr = err
	}

	if added == 0 {
		return lastErr
	}
	return renderToFile(path, page.Render)
}

// ============================================================================
// CHART BUILDERS
// ============================================================================

func timeSeriesChart(f *dataset.Frame, columns []string) (*charts.Line, error) {
	f = f.NormalizeTimeIndex()
	if !f.HasTimeIndex() {
		logger.Warn("time series requires a time index", zap.Int("rows", f.Len()))
		return nil, dataset.ErrNoTimeIndex
	}

	if len(columns) == 0 {
		columns = []string{"pm2_5", "pm10"}
	}
	var valid []string
	for _, col := range columns {
		if f.HasMeasure(col) {
			valid = append(valid, col)
		}
	}
	if len(valid) == 0 {
		logger.Warn("none of the requested columns exist in the frame",
			zap.Strings("columns", columns))
		return nil, &dataset.ColumnError{Column: strings.Join(columns, ", ")}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Evolución Temporal de Contaminantes"}),
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
	)

	times := f.Times()
	axis := make([]string, len(times))
	for i, t := range times {
		axis[i] = t.Format("2006-01-02 15:04")
	}
	line.SetXAxis(axis)

	for _, col := range valid {
		vals, _ := f.Measure(col)
		data := make([]opts.LineData, len(vals))
		for i, v := range vals {
			if math.IsNaN(v) {
				data[i] = opts.LineData{Value: nil}
				continue
			}
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(strings.ToUpper(col), data)
	}
	return line, nil
}

func categoryBarsChart(f *dataset.Frame) (*charts.Bar, error) {
	dist, err := interpret.CategoryDistribution(f, dataset.CategoryLabel)
	if err != nil {
		logger.Warn("cannot chart the category distribution", zap.Error(err))
		return nil, err
	}

	byCategory := make(map[string]int, len(dist))
	for _, row := range dist {
		byCategory[row.Category] = row.Count
	}

	order := []string{
		"Buena", "Moderada", "Dañina para grupos sensibles",
		"Dañina", "Muy dañina", "Peligrosa",
	}
	data := make([]opts.BarData, len(order))
	for i, cat := range order {
		data[i] = opts.BarData{
			Value:     byCategory[cat],
			ItemStyle: &opts.ItemStyle{Color: icaColors[cat]},
		}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Distribución de Categorías ICA"}),
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
	)
	bar.SetXAxis(order)
	bar.AddSeries("Frecuencia", data)
	bar.XYReversal()
	return bar, nil
}

func scatterChart(f *dataset.Frame, colX, colY string) (*charts.Scatter, error) {
	for _, col := range []string{colX, colY} {
		if !f.HasMeasure(col) {
			logger.Warn("column does not exist in the frame", zap.String("column", col))
			return nil, &dataset.ColumnError{Column: col}
		}
	}

	xs, _ := f.Measure(colX)
	ys, _ := f.Measure(colY)

	var data []opts.ScatterData
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		data = append(data, opts.ScatterData{Value: []interface{}{xs[i], ys[i]}})
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Relación entre %s y %s", strings.ToUpper(colX), strings.ToUpper(colY)),
		}),
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: strings.ToUpper(colX)}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: strings.ToUpper(colY)}),
	)
	sc.AddSeries(fmt.Sprintf("%s vs %s", strings.ToUpper(colX), strings.ToUpper(colY)), data)
	return sc, nil
}

func renderToFile(path string, render func(io.Writer) error) error {
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
