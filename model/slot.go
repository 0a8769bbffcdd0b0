package model

// DeliverySlot is a recurring weekly window with a booking-capacity cap.
// Times are zero-padded 24h "HH:MM" strings; the format is enforced at the
// boundary so lexicographic comparison stays safe.
type DeliverySlot struct {
	DTO
	StoreID          uint   `gorm:"index" json:"storeId"`
	DayOfWeek        int    `json:"dayOfWeek"` // 0=Sunday .. 6=Saturday
	StartTime        string `gorm:"size:5" json:"startTime"`
	EndTime          string `gorm:"size:5" json:"endTime"`
	MaxOrdersPerHour int    `json:"maxOrdersPerHour"`
	IsActive         bool   `gorm:"default:true" json:"isActive"`
}

type CreateSlotInput struct {
	DayOfWeek        int    `json:"dayOfWeek" validate:"min=0,max=6"`
	StartTime        string `json:"startTime" validate:"required,len=5,clock"`
	EndTime          string `json:"endTime" validate:"required,len=5,clock"`
	MaxOrdersPerHour int    `json:"maxOrdersPerHour" validate:"required,min=1"`
}

type UpdateSlotInput struct {
	DayOfWeek        *int    `json:"dayOfWeek" validate:"omitempty,min=0,max=6"`
	StartTime        *string `json:"startTime" validate:"omitempty,len=5,clock"`
	EndTime          *string `json:"endTime" validate:"omitempty,len=5,clock"`
	MaxOrdersPerHour *int    `json:"maxOrdersPerHour" validate:"omitempty,min=1"`
	IsActive         *bool   `json:"isActive"`
}

type SlotFilter struct {
	IncludeInactive bool `query:"includeInactive"`
	DayOfWeek       *int `query:"dayOfWeek"`
}
