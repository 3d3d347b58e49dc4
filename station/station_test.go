package station

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calaire-org/calaire/dataset"
)

func stationFrame(t *testing.T) *dataset.Frame {
	t.Helper()
	mk := func(day, hour int, v float64) dataset.Observation {
		return dataset.Observation{
			Time:     time.Date(2024, 3, day, hour, 0, 0, 0, time.UTC),
			Measures: map[string]float64{"pm2_5": v},
		}
	}
	return dataset.NewFrame([]dataset.Observation{
		mk(1, 8, 10), mk(1, 20, 30), // day 1 → mean 20
		mk(2, 8, 80), mk(2, 20, 100), // day 2 → mean 90
		mk(3, 8, 50), // day 3 → mean 50
	})
}

func TestTopDaysRankedDescending(t *testing.T) {
	s := New("Centro", stationFrame(t))

	days, err := s.TopDays("pm2_5", 0)

	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), days[0].Date)
	assert.InDelta(t, 90.0, days[0].Value, 1e-9)
	assert.InDelta(t, 50.0, days[1].Value, 1e-9)
	assert.InDelta(t, 20.0, days[2].Value, 1e-9)
}

func TestTopDaysLimitsToN(t *testing.T) {
	s := New("Centro", stationFrame(t))

	days, err := s.TopDays("pm2_5", 2)

	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.InDelta(t, 90.0, days[0].Value, 1e-9)
}

func TestTopDaysMissingColumn(t *testing.T) {
	s := New("Centro", stationFrame(t))

	_, err := s.TopDays("so2", 5)

	var colErr *dataset.ColumnError
	require.ErrorAs(t, err, &colErr)
	assert.Equal(t, "so2", colErr.Column)
}

func TestTopDaysRequiresTimeIndex(t *testing.T) {
	f := dataset.NewFrame([]dataset.Observation{
		{Measures: map[string]float64{"pm2_5": 1}},
	})
	s := New("Centro", f)

	_, err := s.TopDays("pm2_5", 5)

	require.ErrorIs(t, err, dataset.ErrNoTimeIndex)
}

func TestTopDaysNormalizesRawDates(t *testing.T) {
	f := dataset.NewFrame([]dataset.Observation{
		{
			Measures: map[string]float64{"pm2_5": 12},
			Labels:   map[string]string{"date": "2024-03-01 08:00:00"},
		},
		{
			Measures: map[string]float64{"pm2_5": 60},
			Labels:   map[string]string{"date": "2024-03-02 08:00:00"},
		},
	})
	s := New("Centro", f)

	days, err := s.TopDays("pm2_5", 0)

	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.InDelta(t, 60.0, days[0].Value, 1e-9)
}
