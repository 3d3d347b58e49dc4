package chart

import (
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

// ============================================================================
// CHART OPTIONS — Functional options shared by every renderer
// ============================================================================

// Option adjusts renderer cosmetics via the functional options pattern.
type Option func(*config)

type config struct {
	Width     vg.Length
	Height    vg.Length
	DPI       int
	Title     string
	Reference string // reference column for correlation reporting
	TopK      int    // how many correlated pollutants to report, 0 disables
	Fit       bool   // draw the regression line on Regression charts
	Logger    *zap.Logger
}

// WithSize overrides the figure size.
func WithSize(width, height vg.Length) Option {
	return func(c *config) {
		c.Width = width
		c.Height = height
	}
}

// WithDPI overrides the raster resolution (default 300).
func WithDPI(dpi int) Option {
	return func(c *config) { c.DPI = dpi }
}

// WithTitle overrides the default chart title.
func WithTitle(title string) Option {
	return func(c *config) { c.Title = title }
}

// WithReference sets the reference column for correlation reporting
// (default "pm2_5").
func WithReference(column string) Option {
	return func(c *config) { c.Reference = column }
}

// WithTopK sets how many correlated pollutants to report against the
// reference column. Zero disables the report.
func WithTopK(k int) Option {
	return func(c *config) { c.TopK = k }
}

// WithoutFit disables the regression overlay on Regression charts.
func WithoutFit() Option {
	return func(c *config) { c.Fit = false }
}

// WithLogger routes this call's warnings to the given logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// newConfig builds a config from per-chart defaults plus caller options.
func newConfig(width, height vg.Length, title string, opts []Option) *config {
	cfg := &config{
		Width:     width,
		Height:    height,
		DPI:       300,
		Title:     title,
		Reference: "pm2_5",
		TopK:      5,
		Fit:       true,
		Logger:    logger,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
