package model

// DeliveryZone is a coverage ring around the store origin: the zone with the
// smallest MaxDistance >= the computed distance applies.
type DeliveryZone struct {
	DTO
	StoreID     uint    `gorm:"index" json:"storeId"`
	Name        string  `json:"name"`
	MaxDistance float64 `json:"maxDistance"` // km
	DeliveryFee float64 `json:"deliveryFee"`
	MinOrder    float64 `json:"minOrder"`
	IsActive    bool    `gorm:"default:true" json:"isActive"`
}

type CreateZoneInput struct {
	Name        string  `json:"name" validate:"required"`
	MaxDistance float64 `json:"maxDistance" validate:"required,gt=0"`
	DeliveryFee float64 `json:"deliveryFee" validate:"min=0"`
	MinOrder    float64 `json:"minOrder" validate:"min=0"`
}

type UpdateZoneInput struct {
	Name        *string  `json:"name"`
	MaxDistance *float64 `json:"maxDistance" validate:"omitempty,gt=0"`
	DeliveryFee *float64 `json:"deliveryFee" validate:"omitempty,min=0"`
	MinOrder    *float64 `json:"minOrder" validate:"omitempty,min=0"`
	IsActive    *bool    `json:"isActive"`
}

type ZoneFilter struct {
	IncludeInactive bool `query:"includeInactive"`
}
