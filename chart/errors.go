package chart

import "errors"

// ErrInsufficientColumns is returned when a correlation matrix is requested
// over fewer than two valid columns.
var ErrInsufficientColumns = errors.New("chart: at least 2 columns are required to compute correlations")

// ErrNoData is returned when a renderer has nothing to draw after
// validation (for example an empty day ranking).
var ErrNoData = errors.New("chart: no data to render")
