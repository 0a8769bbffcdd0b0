package helper

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	obelisco  = Coordinates{Lat: -34.6037, Lng: -58.3816}
	laPlata   = Coordinates{Lat: -34.9215, Lng: -57.9545}
	nearPoint = Coordinates{Lat: -34.6090, Lng: -58.3838}
)

func TestDistanceKmZeroForSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, DistanceKm(obelisco, obelisco))
}

func TestDistanceKmIsSymmetric(t *testing.T) {
	assert.Equal(t, DistanceKm(obelisco, laPlata), DistanceKm(laPlata, obelisco))
}

func TestDistanceKmKnownRoute(t *testing.T) {
	// Obelisco to La Plata is ~52 km great circle.
	d := DistanceKm(obelisco, laPlata)
	assert.InDelta(t, 52.0, d, 2.0)
}

func TestDistanceKmRoundsToOneDecimal(t *testing.T) {
	d := DistanceKm(obelisco, nearPoint)
	assert.InDelta(t, math.Round(d*10), d*10, 1e-9)
	assert.Greater(t, d, 0.0)
}

func TestFallbackEstimateThreeMinutesPerKm(t *testing.T) {
	estimate := FallbackEstimate(obelisco, laPlata)

	distance := DistanceKm(obelisco, laPlata)
	assert.Equal(t, distance, estimate.DistanceKm)
	// ceil(km * 3)
	assert.GreaterOrEqual(t, float64(estimate.DurationMinutes), distance*3)
	assert.Less(t, float64(estimate.DurationMinutes), distance*3+1)
}

func TestFallbackEstimateZeroDistance(t *testing.T) {
	estimate := FallbackEstimate(obelisco, obelisco)
	assert.Equal(t, 0, estimate.DurationMinutes)
	assert.Equal(t, 0.0, estimate.DistanceKm)
}
