package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvgDeliveryMinutesEmpty(t *testing.T) {
	assert.Equal(t, 0, AvgDeliveryMinutes(nil))
}

func TestAvgDeliveryMinutes(t *testing.T) {
	base := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	spans := [][2]time.Time{
		{base, base.Add(20 * time.Minute)},
		{base, base.Add(30 * time.Minute)},
		{base, base.Add(40 * time.Minute)},
	}
	assert.Equal(t, 30, AvgDeliveryMinutes(spans))
}

func TestAvgDeliveryMinutesRounds(t *testing.T) {
	base := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	spans := [][2]time.Time{
		{base, base.Add(10 * time.Minute)},
		{base, base.Add(11 * time.Minute)},
	}
	// 10.5 rounds up.
	assert.Equal(t, 11, AvgDeliveryMinutes(spans))
}

func TestAvgOrderValue(t *testing.T) {
	assert.Equal(t, 0.0, AvgOrderValue(0, 0))
	assert.Equal(t, 25.5, AvgOrderValue(51, 2))
	// Rounded to cents.
	assert.Equal(t, 33.33, AvgOrderValue(100, 3))
}

func TestDailySeries(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)
	counts := map[string]int64{
		"2026-08-25": 1,
		"2026-08-28": 4,
	}

	series := DailySeries(counts, now, 7)
	require.Len(t, series, 7)

	assert.Equal(t, "2026-08-22", series[0].Date)
	assert.Equal(t, int64(0), series[0].Count)
	assert.Equal(t, int64(1), series[3].Count)
	assert.Equal(t, "2026-08-28", series[6].Date)
	assert.Equal(t, int64(4), series[6].Count)
}

func TestConversionRate(t *testing.T) {
	assert.Equal(t, 0, ConversionRate(0, 0))
	assert.Equal(t, 0, ConversionRate(0, 10))
	assert.Equal(t, 50, ConversionRate(5, 10))
	assert.Equal(t, 100, ConversionRate(10, 10))
	assert.Equal(t, 33, ConversionRate(1, 3))
	assert.Equal(t, 67, ConversionRate(2, 3))
}
