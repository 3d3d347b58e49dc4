package chart

import (
	"math"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/calaire-org/calaire/dataset"
)

// defaultSeriesColumns are plotted when the caller does not pick columns.
var defaultSeriesColumns = []string{"pm2_5", "pm10"}

// TimeSeries renders one line per pollutant column over the time index and
// writes the chart to path. Columns absent from the frame are skipped; when
// none remain the renderer warns and draws nothing.
func TimeSeries(f *dataset.Frame, columns []string, path string, opts ...Option) error {
	cfg := newConfig(14*vg.Inch, 6*vg.Inch, "Evolución Temporal de Contaminantes", opts)

	f = f.NormalizeTimeIndex()
	if !f.HasTimeIndex() {
		cfg.Logger.Warn("time series requires a time index", zap.Int("rows", f.Len()))
		return dataset.ErrNoTimeIndex
	}

	if len(columns) == 0 {
		columns = defaultSeriesColumns
	}
	var valid []string
	for _, col := range columns {
		if f.HasMeasure(col) {
			valid = append(valid, col)
		}
	}
	if len(valid) == 0 {
		cfg.Logger.Warn("none of the requested columns exist in the frame",
			zap.Strings("columns", columns))
		return &dataset.ColumnError{Column: strings.Join(columns, ", ")}
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = "Fecha"
	p.Y.Label.Text = "Concentración (µg/m³)"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.Add(plotter.NewGrid())

	times := f.Times()
	for i, col := range valid {
		vals, _ := f.Measure(col)
		xys := make(plotter.XYs, 0, len(vals))
		for j, v := range vals {
			if math.IsNaN(v) {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(times[j].Unix()), Y: v})
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = seriesColor(i)
		p.Add(line)
		p.Legend.Add(strings.ToUpper(col), line)
	}
	p.Legend.Top = true

	return writePNG(p, cfg, path)
}
