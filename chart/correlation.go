package chart

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/calaire-org/calaire/dataset"
)

// ============================================================================
// CORRELATION MATRIX
// ============================================================================

// CorrMatrix is a pairwise Pearson correlation matrix, returned for reuse
// in later analysis steps.
type CorrMatrix struct {
	Columns []string
	Values  [][]float64 // Values[i][j] = corr(Columns[i], Columns[j])
}

// CorrPair is one entry of a top-correlated report.
type CorrPair struct {
	Column string
	R      float64
}

// TopCorrelated returns the k columns most correlated with ref, descending,
// with ref itself excluded. An unknown ref yields nil.
func (m *CorrMatrix) TopCorrelated(ref string, k int) []CorrPair {
	refIdx := -1
	for i, c := range m.Columns {
		if c == ref {
			refIdx = i
		}
	}
	if refIdx < 0 {
		return nil
	}

	var pairs []CorrPair
	for i, c := range m.Columns {
		if i == refIdx || math.IsNaN(m.Values[refIdx][i]) {
			continue
		}
		pairs = append(pairs, CorrPair{Column: c, R: m.Values[refIdx][i]})
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].R > pairs[j].R })
	if k > 0 && len(pairs) > k {
		pairs = pairs[:k]
	}
	return pairs
}

// CorrelationMatrix computes pairwise correlations over the chosen columns
// (default: every canonical pollutant present), renders them as a heatmap,
// and returns the matrix. Fewer than two valid columns is recoverable: the
// renderer warns and returns ErrInsufficientColumns.
//
// When the reference column is present, the top-K most correlated
// pollutants are logged (disable with WithTopK(0)).
func CorrelationMatrix(f *dataset.Frame, columns []string, path string, opts ...Option) (*CorrMatrix, error) {
	cfg := newConfig(10*vg.Inch, 8*vg.Inch, "Matriz de Correlación entre Contaminantes", opts)

	if len(columns) == 0 {
		columns = f.PollutantColumns()
	} else {
		var valid []string
		for _, col := range columns {
			if f.HasMeasure(col) {
				valid = append(valid, col)
			}
		}
		columns = valid
	}
	if len(columns) < 2 {
		cfg.Logger.Warn("at least 2 columns are required to compute correlations",
			zap.Strings("columns", columns))
		return nil, ErrInsufficientColumns
	}

	series := make([][]float64, len(columns))
	for i, col := range columns {
		series[i], _ = f.Measure(col)
	}

	matrix := &CorrMatrix{Columns: columns, Values: make([][]float64, len(columns))}
	for i := range columns {
		matrix.Values[i] = make([]float64, len(columns))
		for j := range columns {
			matrix.Values[i][j] = pairwiseCorrelation(series[i], series[j])
		}
	}

	if err := renderCorrelationHeatmap(matrix, cfg, path); err != nil {
		return nil, err
	}

	if cfg.TopK > 0 {
		for _, pair := range matrix.TopCorrelated(cfg.Reference, cfg.TopK) {
			cfg.Logger.Info("correlated pollutant",
				zap.String("reference", cfg.Reference),
				zap.String("column", pair.Column),
				zap.Float64("r", math.Round(pair.R*100)/100))
		}
	}

	return matrix, nil
}

// pairwiseCorrelation computes Pearson correlation over rows where both
// series carry a value. Fewer than two complete pairs yields NaN.
func pairwiseCorrelation(a, b []float64) float64 {
	xs := make([]float64, 0, len(a))
	ys := make([]float64, 0, len(a))
	for i := range a {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			continue
		}
		xs = append(xs, a[i])
		ys = append(ys, b[i])
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}

func renderCorrelationHeatmap(m *CorrMatrix, cfg *config, path string) error {
	p := plot.New()
	p.Title.Text = cfg.Title

	cmap := moreland.SmoothGreenRed()
	cmap.SetMin(-1)
	cmap.SetMax(1)
	hm := plotter.NewHeatMap(&matrixGrid{values: m.Values}, cmap.Palette(255))
	hm.Min, hm.Max = -1, 1
	p.Add(hm)

	ticks := make([]plot.Tick, len(m.Columns))
	for i, col := range m.Columns {
		ticks[i] = plot.Tick{Value: float64(i), Label: strings.ToUpper(col)}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)

	// Annotate each cell with its coefficient.
	n := len(m.Columns)
	annotations := plotter.XYLabels{
		XYs:    make(plotter.XYs, 0, n*n),
		Labels: make([]string, 0, n*n),
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := m.Values[i][j]
			if math.IsNaN(v) {
				continue
			}
			annotations.XYs = append(annotations.XYs, plotter.XY{X: float64(j), Y: float64(i)})
			annotations.Labels = append(annotations.Labels, fmt.Sprintf("%.2f", v))
		}
	}
	labels, err := plotter.NewLabels(annotations)
	if err != nil {
		return err
	}
	p.Add(labels)

	return writePNG(p, cfg, path)
}

// matrixGrid adapts a square matrix to plotter.GridXYZ.
type matrixGrid struct {
	values [][]float64
}

func (g *matrixGrid) Dims() (c, r int) { return len(g.values), len(g.values) }
func (g *matrixGrid) Z(c, r int) float64 {
	return g.values[r][c]
}
func (g *matrixGrid) X(c int) float64 { return float64(c) }
func (g *matrixGrid) Y(r int) float64 { return float64(r) }
