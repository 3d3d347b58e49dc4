package chart

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/calaire-org/calaire/dataset"
)

// HourlyHeatmap renders the mean concentration of one pollutant by
// day-of-week and hour-of-day. Weekday rows are labeled with day names,
// Monday first. Cells without observations are left blank.
func HourlyHeatmap(f *dataset.Frame, column string, path string, opts ...Option) error {
	if column == "" {
		column = "pm2_5"
	}
	title := fmt.Sprintf("Patrón Horario de %s por Día de la Semana", strings.ToUpper(column))
	cfg := newConfig(12*vg.Inch, 6*vg.Inch, title, opts)

	pivot, err := dataset.HourlyPivot(f, column)
	if err != nil {
		cfg.Logger.Warn("cannot build the hourly pattern",
			zap.String("column", column), zap.Error(err))
		return err
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = "Hora del Día"
	p.Y.Label.Text = "Día de la Semana"

	hm := plotter.NewHeatMap(&pivotGrid{pivot: pivot}, palette.Heat(16, 1))
	hm.Min, hm.Max = pivotRange(pivot)
	p.Add(hm)

	hourTicks := make([]plot.Tick, 24)
	for h := 0; h < 24; h++ {
		hourTicks[h] = plot.Tick{Value: float64(h), Label: fmt.Sprintf("%d", h)}
	}
	p.X.Tick.Marker = plot.ConstantTicks(hourTicks)

	dayTicks := make([]plot.Tick, len(pivot.Rows))
	for d, name := range pivot.Rows {
		dayTicks[d] = plot.Tick{Value: float64(d), Label: name}
	}
	p.Y.Tick.Marker = plot.ConstantTicks(dayTicks)

	return writePNG(p, cfg, path)
}

// pivotRange finds min and max over the pivot, ignoring empty cells.
func pivotRange(pv *dataset.Pivot) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, row := range pv.Values {
		for _, v := range row {
			if math.IsNaN(v) {
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	if min > max { // all cells empty
		return 0, 1
	}
	if min == max {
		max = min + 1
	}
	return min, max
}

// pivotGrid adapts a weekday × hour pivot to plotter.GridXYZ.
type pivotGrid struct {
	pivot *dataset.Pivot
}

func (g *pivotGrid) Dims() (c, r int)   { return 24, len(g.pivot.Values) }
func (g *pivotGrid) Z(c, r int) float64 { return g.pivot.Values[r][c] }
func (g *pivotGrid) X(c int) float64    { return float64(c) }
func (g *pivotGrid) Y(r int) float64    { return float64(r) }
