// Package chart renders air-quality frames into raster charts: time series,
// category distributions, heatmaps, scatter comparisons, and correlation
// matrices. Every renderer is a single validate → compute → render pass.
//
// Missing required columns are recoverable: the renderer logs a warning and
// returns a *dataset.ColumnError without writing anything. Passing an empty
// save path builds the chart but persists nothing.
package chart

import (
	"os"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var logger = zap.NewNop()

// SetLogger replaces the package logger. A nil logger is ignored.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

// writePNG rasterizes the plot at the configured size and DPI and writes it
// to path. An empty path is a no-op so callers can build charts for display
// pipelines without persisting them.
func writePNG(p *plot.Plot, cfg *config, path string) error {
	if path == "" {
		return nil
	}

	c := vgimg.NewWith(
		vgimg.UseWH(cfg.Width, cfg.Height),
		vgimg.UseDPI(cfg.DPI),
	)
	p.Draw(draw.New(c))

	w, err := os.Create(path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
