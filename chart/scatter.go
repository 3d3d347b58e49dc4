package chart

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/calaire-org/calaire/dataset"
)

// ============================================================================
// SCATTER COMPARISONS
// ============================================================================

// Scatter renders two pollutants against each other, colored by ICA
// category when the severity label exists, flat purple otherwise.
func Scatter(f *dataset.Frame, colX, colY string, path string, opts ...Option) error {
	if colX == "" {
		colX = "pm2_5"
	}
	if colY == "" {
		colY = "pm10"
	}
	title := fmt.Sprintf("Relación entre %s y %s", strings.ToUpper(colX), strings.ToUpper(colY))
	cfg := newConfig(10*vg.Inch, 6*vg.Inch, title, opts)

	xs, ys, cats, err := pairedColumns(f, colX, colY, cfg)
	if err != nil {
		return err
	}

	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	sc.GlyphStyle.Radius = vg.Points(2)
	if cats != nil {
		sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			return draw.GlyphStyle{
				Color:  categoryColor(cats[i]),
				Radius: vg.Points(2),
				Shape:  draw.CircleGlyph{},
			}
		}
	} else {
		sc.GlyphStyle.Color = hexColor("#8E44AD")
	}

	p := newScatterPlot(cfg, colX, colY)
	p.Add(sc)
	return writePNG(p, cfg, path)
}

// Regression renders a pollutant against a target pollutant with an
// optional fitted ordinary-least-squares line (disable with WithoutFit).
func Regression(f *dataset.Frame, pollutant, target string, path string, opts ...Option) error {
	if pollutant == "" {
		pollutant = "pm10"
	}
	if target == "" {
		target = "pm2_5"
	}
	title := fmt.Sprintf("Relación entre %s y %s", strings.ToUpper(pollutant), strings.ToUpper(target))
	cfg := newConfig(12*vg.Inch, 6*vg.Inch, title, opts)

	xs, ys, _, err := pairedColumns(f, pollutant, target, cfg)
	if err != nil {
		return err
	}

	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	sc.GlyphStyle.Radius = vg.Points(2)
	sc.GlyphStyle.Color = hexColor("#4682B4")

	p := newScatterPlot(cfg, pollutant, target)
	p.Add(sc)

	if cfg.Fit && len(xs) >= 2 {
		alpha, beta := stat.LinearRegression(xs, ys, nil, false)
		minX, maxX := xs[0], xs[0]
		for _, v := range xs {
			if v < minX {
				minX = v
			}
			if v > maxX {
				maxX = v
			}
		}
		fit, err := plotter.NewLine(plotter.XYs{
			{X: minX, Y: alpha + beta*minX},
			{X: maxX, Y: alpha + beta*maxX},
		})
		if err != nil {
			return err
		}
		fit.LineStyle.Width = vg.Points(2)
		fit.LineStyle.Color = hexColor("#EF4444")
		p.Add(fit)
		p.Legend.Add("ajuste lineal", fit)
	}

	return writePNG(p, cfg, path)
}

// pairedColumns validates both columns and returns their values with
// NaN pairs dropped, plus the per-row category labels when present.
func pairedColumns(f *dataset.Frame, colX, colY string, cfg *config) (xs, ys []float64, cats []string, err error) {
	for _, col := range []string{colX, colY} {
		if !f.HasMeasure(col) {
			cfg.Logger.Warn("column does not exist in the frame", zap.String("column", col))
			return nil, nil, nil, &dataset.ColumnError{Column: col}
		}
	}

	xRaw, _ := f.Measure(colX)
	yRaw, _ := f.Measure(colY)
	catRaw, hasCats := f.Label(dataset.CategoryLabel)

	for i := range xRaw {
		if math.IsNaN(xRaw[i]) || math.IsNaN(yRaw[i]) {
			continue
		}
		xs = append(xs, xRaw[i])
		ys = append(ys, yRaw[i])
		if hasCats {
			cats = append(cats, catRaw[i])
		}
	}
	if !hasCats {
		cats = nil
	}
	return xs, ys, cats, nil
}

func newScatterPlot(cfg *config, colX, colY string) *plot.Plot {
	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = fmt.Sprintf("%s (µg/m³)", strings.ToUpper(colX))
	p.Y.Label.Text = fmt.Sprintf("%s (µg/m³)", strings.ToUpper(colY))
	p.Add(plotter.NewGrid())
	return p
}
