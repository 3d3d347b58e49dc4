package explore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calaire-org/calaire/dataset"
)

func exploreFrame(t *testing.T) *dataset.Frame {
	t.Helper()
	categories := []string{"Buena", "Moderada", "Buena"}
	obs := make([]dataset.Observation, len(categories))
	for i, cat := range categories {
		obs[i] = dataset.Observation{
			Time: time.Date(2024, 3, 1, 8+i, 0, 0, 0, time.UTC),
			Measures: map[string]float64{
				"pm2_5": float64(10 + i),
				"pm10":  float64(20 + i),
			},
			Labels: map[string]string{dataset.CategoryLabel: cat},
		}
	}
	return dataset.NewFrame(obs)
}

func readHTML(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestTimeSeriesHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timeseries.html")

	err := TimeSeriesHTML(exploreFrame(t), nil, path)

	require.NoError(t, err)
	html := readHTML(t, path)
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "PM2_5")
}

func TestTimeSeriesHTMLMissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timeseries.html")

	err := TimeSeriesHTML(exploreFrame(t), []string{"so2"}, path)

	var colErr *dataset.ColumnError
	require.ErrorAs(t, err, &colErr)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCategoryBarsHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.html")

	err := CategoryBarsHTML(exploreFrame(t), path)

	require.NoError(t, err)
	html := readHTML(t, path)
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "Distribución de Categorías ICA")
}

func TestCategoryBarsHTMLMissingColumn(t *testing.T) {
	f := dataset.NewFrame([]dataset.Observation{
		{Measures: map[string]float64{"pm2_5": 1}},
	})
	path := filepath.Join(t.TempDir(), "categories.html")

	err := CategoryBarsHTML(f, path)

	var colErr *dataset.ColumnError
	require.ErrorAs(t, err, &colErr)
}

func TestScatterHTMLMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scatter.html")

	err := ScatterHTML(exploreFrame(t), "pm2_5", "so2", path)

	var colErr *dataset.ColumnError
	require.ErrorAs(t, err, &colErr)
	assert.Equal(t, "so2", colErr.Column)
}

func TestDashboard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.html")

	err := Dashboard(exploreFrame(t), path)

	require.NoError(t, err)
	html := readHTML(t, path)
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "Calidad del Aire")
}

func TestDashboardSkipsBrokenSections(t *testing.T) {
	// No category column: the distribution section is skipped but the
	// time series and scatter still render.
	obs := make([]dataset.Observation, 3)
	for i := range obs {
		obs[i] = dataset.Observation{
			Time:     time.Date(2024, 3, 1, 8+i, 0, 0, 0, time.UTC),
			Measures: map[string]float64{"pm2_5": float64(i), "pm10": float64(i * 2)},
		}
	}
	path := filepath.Join(t.TempDir(), "dashboard.html")

	err := Dashboard(dataset.NewFrame(obs), path)

	require.NoError(t, err)
	assert.Contains(t, readHTML(t, path), "echarts")
}

func TestDashboardNothingRenderable(t *testing.T) {
	f := dataset.NewFrame([]dataset.Observation{
		{Labels: map[string]string{"note": "sin mediciones"}},
	})
	path := filepath.Join(t.TempDir(), "dashboard.html")

	err := Dashboard(f, path)

	require.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
