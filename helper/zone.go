package helper

import (
	"store_manager/database"
	"store_manager/model"
)

// PickZone selects the narrowest zone covering the distance. Zones must be
// sorted by MaxDistance ascending; nil means out of coverage.
func PickZone(zones []model.DeliveryZone, distanceKm float64) *model.DeliveryZone {
	for i := range zones {
		if zones[i].MaxDistance >= distanceKm {
			return &zones[i]
		}
	}
	return nil
}

// FindZoneByDistance resolves the applicable active zone for a store.
func FindZoneByDistance(storeId uint, distanceKm float64) (*model.DeliveryZone, error) {
	var zones []model.DeliveryZone
	if err := database.DB.
		Where("store_id = ? AND is_active = ?", storeId, true).
		Order("max_distance asc").
		Find(&zones).Error; err != nil {
		return nil, err
	}

	return PickZone(zones, distanceKm), nil
}

// CountOtherActiveZones backs the last-active-zone delete guard.
func CountOtherActiveZones(storeId, excludeId uint) (int64, error) {
	var count int64
	err := database.DB.Model(&model.DeliveryZone{}).
		Where("store_id = ? AND is_active = ? AND id <> ?", storeId, true, excludeId).
		Count(&count).Error
	return count, err
}
