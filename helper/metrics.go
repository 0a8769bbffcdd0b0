package helper

import (
	"math"
	"time"
)

// AvgDeliveryMinutes is the mean confirm-to-delivered duration, rounded to
// whole minutes. Pairs with a missing timestamp must be filtered out before.
func AvgDeliveryMinutes(spans [][2]time.Time) int {
	if len(spans) == 0 {
		return 0
	}

	var totalMinutes float64
	for _, span := range spans {
		totalMinutes += span[1].Sub(span[0]).Minutes()
	}
	return int(math.Round(totalMinutes / float64(len(spans))))
}

// ConversionRate is completed/total as a rounded percentage; 0 when empty.
func ConversionRate(completed, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// AvgOrderValue is revenue per delivered order, rounded to cents.
func AvgOrderValue(revenue float64, delivered int64) float64 {
	if delivered == 0 {
		return 0
	}
	return math.Round(revenue/float64(delivered)*100) / 100
}

// DayCount is one bucket of the daily order-volume series.
type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// DailySeries expands sparse per-day counts into a dense series covering the
// `days` days ending at `now`, oldest first. Missing days read as zero.
func DailySeries(counts map[string]int64, now time.Time, days int) []DayCount {
	series := make([]DayCount, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		series = append(series, DayCount{Date: day, Count: counts[day]})
	}
	return series
}
