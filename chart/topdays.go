package chart

import (
	"fmt"
	"image/color"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/calaire-org/calaire/dataset"
)

// DayRanker supplies ranked days for a column. The data-preparation
// collaborator (see the station package) implements it.
type DayRanker interface {
	Name() string
	TopDays(column string, n int) ([]dataset.DayValue, error)
}

// TopDays renders the n most contaminated days of a station as horizontal
// bars, highest first. Ranking is delegated to the collaborator; its
// errors (missing column, no time index) are passed through after a
// warning.
func TopDays(ranker DayRanker, column string, n int, path string, opts ...Option) error {
	if column == "" {
		column = "pm2_5"
	}
	if n <= 0 {
		n = 10
	}
	title := fmt.Sprintf("Top %d Días más contaminados en %s (%s)",
		n, ranker.Name(), strings.ToUpper(column))
	cfg := newConfig(12*vg.Inch, 6*vg.Inch, title, opts)

	days, err := ranker.TopDays(column, n)
	if err != nil {
		cfg.Logger.Warn("cannot rank days",
			zap.String("station", ranker.Name()),
			zap.String("column", column), zap.Error(err))
		return err
	}
	if len(days) == 0 {
		cfg.Logger.Warn("day ranking is empty", zap.String("station", ranker.Name()))
		return ErrNoData
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = fmt.Sprintf("%s (µg/m³)", strings.ToUpper(column))
	p.Y.Label.Text = "Fecha"
	p.Add(plotter.NewGrid())

	// Reverse so the highest day lands on the top row.
	labels := make([]string, len(days))
	for i, d := range days {
		labels[len(days)-1-i] = d.Date.Format("2006-01-02")
	}
	for i, d := range days {
		row := len(days) - 1 - i
		vals := make(plotter.Values, len(days))
		vals[row] = d.Value
		bars, err := plotter.NewBarChart(vals, vg.Points(16))
		if err != nil {
			return err
		}
		bars.Horizontal = true
		bars.Color = redRamp(i, len(days))
		p.Add(bars)
	}
	p.NominalY(labels...)

	return writePNG(p, cfg, path)
}

// redRamp shades from dark red (rank 0) to light red (last rank).
func redRamp(rank, total int) color.Color {
	if total <= 1 {
		return color.RGBA{R: 0xB3, G: 0x1B, B: 0x1B, A: 0xFF}
	}
	t := float64(rank) / float64(total-1) // 0 = most contaminated
	lerp := func(a, b uint8) uint8 { return uint8(float64(a) + (float64(b)-float64(a))*t) }
	return color.RGBA{
		R: lerp(0xB3, 0xF6),
		G: lerp(0x1B, 0x9A),
		B: lerp(0x1B, 0x8D),
		A: 0xFF,
	}
}
