package helper

import (
	"testing"

	"store_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testZones() []model.DeliveryZone {
	return []model.DeliveryZone{
		{Name: "Near", MaxDistance: 3, DeliveryFee: 1.5, MinOrder: 8},
		{Name: "Mid", MaxDistance: 5, DeliveryFee: 2, MinOrder: 10},
		{Name: "Far", MaxDistance: 10, DeliveryFee: 4, MinOrder: 15},
	}
}

func TestPickZoneNarrowestBandWins(t *testing.T) {
	zone := PickZone(testZones(), 2.0)
	require.NotNil(t, zone)
	assert.Equal(t, "Near", zone.Name)
}

func TestPickZoneBoundaryIsInclusive(t *testing.T) {
	zone := PickZone(testZones(), 3.0)
	require.NotNil(t, zone)
	assert.Equal(t, "Near", zone.Name)

	zone = PickZone(testZones(), 3.1)
	require.NotNil(t, zone)
	assert.Equal(t, "Mid", zone.Name)
}

func TestPickZoneOuterBand(t *testing.T) {
	zone := PickZone(testZones(), 9.9)
	require.NotNil(t, zone)
	assert.Equal(t, "Far", zone.Name)
}

func TestPickZoneOutOfCoverage(t *testing.T) {
	assert.Nil(t, PickZone(testZones(), 10.1))
}

func TestPickZoneNoZones(t *testing.T) {
	assert.Nil(t, PickZone(nil, 1.0))
}
