package model

type User struct {
	DTO
	Email       string        `gorm:"uniqueIndex;size:255" json:"email"`
	Password    string        `json:"-"`
	Name        string        `json:"name"`
	Phone       string        `json:"phone"`
	Memberships []StoreMember `gorm:"foreignKey:UserID" json:"memberships,omitempty"`
}

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`

	StoreName      string  `json:"storeName" validate:"required"`
	StorePhone     string  `json:"storePhone" validate:"required"`
	StoreLogo      *string `json:"storeLogo"`
	StoreAddress   string  `json:"storeAddress" validate:"required"`
	StoreLatitude  float64 `json:"storeLatitude" validate:"required,latitude"`
	StoreLongitude float64 `json:"storeLongitude" validate:"required,longitude"`
	Currency       string  `json:"currency" validate:"required,len=3"`

	AcceptsCash       bool    `json:"acceptsCash"`
	AcceptsTransfer   bool    `json:"acceptsTransfer"`
	BankName          *string `json:"bankName"`
	BankAccountHolder *string `json:"bankAccountHolder"`
	BankAccountNumber *string `json:"bankAccountNumber"`
	BankAlias         *string `json:"bankAlias"`

	MinAdvanceHours        int `json:"minAdvanceHours" validate:"min=0"`
	MaxAdvanceDays         int `json:"maxAdvanceDays" validate:"min=1"`
	ImmediateCancelMinutes int `json:"immediateCancelMinutes" validate:"min=0"`
	ScheduledCancelHours   int `json:"scheduledCancelHours" validate:"min=0"`

	DeliverySlots []CreateSlotInput `json:"deliverySlots" validate:"required,min=1,dive"`
	DeliveryZones []CreateZoneInput `json:"deliveryZones" validate:"required,min=1,dive"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileInput struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}
