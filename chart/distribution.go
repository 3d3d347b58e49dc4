package chart

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/calaire-org/calaire/dataset"
	"github.com/calaire-org/calaire/interpret"
)

// CanonicalOrder is the fixed category order for distribution bars. It
// carries six labels: the five-level reference scale plus the legacy
// "Dañina" label still present in historical data.
var CanonicalOrder = []string{
	"Buena",
	"Moderada",
	"Dañina para grupos sensibles",
	"Dañina",
	"Muy dañina",
	"Peligrosa",
}

// CategoryBars renders the ICA category distribution as horizontal bars in
// the canonical order, zero-filled for absent categories, with count and
// percentage annotated per bar.
func CategoryBars(f *dataset.Frame, path string, opts ...Option) error {
	cfg := newConfig(12*vg.Inch, 5*vg.Inch, "Distribución de Categorías ICA", opts)

	dist, err := interpret.CategoryDistribution(f, dataset.CategoryLabel)
	if err != nil {
		cfg.Logger.Warn("cannot chart the category distribution", zap.Error(err))
		return err
	}

	// Reindex descending-count rows onto the canonical order.
	byCategory := make(map[string]int, len(dist))
	for _, row := range dist {
		byCategory[row.Category] = row.Count
	}
	counts := make([]float64, len(CanonicalOrder))
	var total float64
	for i, cat := range CanonicalOrder {
		counts[i] = float64(byCategory[cat])
		total += counts[i]
	}
	if total == 0 {
		total = 1
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = "Frecuencia"
	p.Add(plotter.NewGrid())

	// One BarChart per category so each bar keeps its ICA color.
	for i, cat := range CanonicalOrder {
		vals := make(plotter.Values, len(CanonicalOrder))
		vals[i] = counts[i]
		bars, err := plotter.NewBarChart(vals, vg.Points(18))
		if err != nil {
			return err
		}
		bars.Horizontal = true
		bars.Color = categoryColor(cat)
		p.Add(bars)
	}
	p.NominalY(CanonicalOrder...)

	// Count and percentage annotations next to each bar.
	annotations := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(CanonicalOrder)),
		Labels: make([]string, len(CanonicalOrder)),
	}
	for i, c := range counts {
		annotations.XYs[i] = plotter.XY{X: c, Y: float64(i)}
		annotations.Labels[i] = fmt.Sprintf(" %.0f (%.1f%%)", c, c/total*100)
	}
	labels, err := plotter.NewLabels(annotations)
	if err != nil {
		return err
	}
	p.Add(labels)

	return writePNG(p, cfg, path)
}
