package model

type Store struct {
	DTO
	Name        string         `json:"name"`
	Slug        string         `gorm:"uniqueIndex;size:255" json:"slug"`
	Description *string        `json:"description,omitempty"`
	Logo        *string        `json:"logo,omitempty"`
	Phone       string         `json:"phone"`
	Email       *string        `json:"email,omitempty"`
	Address     string         `json:"address"`
	Latitude    float64        `json:"latitude"`
	Longitude   float64        `json:"longitude"`
	Currency    string         `gorm:"size:3" json:"currency"`
	IsActive    bool           `gorm:"default:true" json:"isActive"`
	OwnerID     uint           `json:"ownerId"`
	Owner       *User          `json:"owner,omitempty"`
	Settings    *StoreSettings `gorm:"foreignKey:StoreID" json:"settings,omitempty"`
}

// StoreSettings is one-to-one with Store, created at registration.
// At least one of AcceptsCash/AcceptsTransfer must stay true.
type StoreSettings struct {
	DTO
	StoreID           uint    `gorm:"uniqueIndex" json:"storeId"`
	AcceptsCash       bool    `gorm:"default:true" json:"acceptsCash"`
	AcceptsTransfer   bool    `json:"acceptsTransfer"`
	BankName          *string `json:"bankName,omitempty"`
	BankAccountHolder *string `json:"bankAccountHolder,omitempty"`
	BankAccountNumber *string `json:"bankAccountNumber,omitempty"`
	BankAlias         *string `json:"bankAlias,omitempty"`

	// Scheduling bounds for SCHEDULED orders.
	MinAdvanceHours int `gorm:"default:2" json:"minAdvanceHours"`
	MaxAdvanceDays  int `gorm:"default:7" json:"maxAdvanceDays"`

	// Customer cancellation windows.
	ImmediateCancelMinutes int `gorm:"default:10" json:"immediateCancelMinutes"`
	ScheduledCancelHours   int `gorm:"default:2" json:"scheduledCancelHours"`
}

type UpdateStoreInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Logo        *string  `json:"logo"`
	Phone       *string  `json:"phone"`
	Email       *string  `json:"email" validate:"omitempty,email"`
	Address     *string  `json:"address"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,longitude"`
	IsActive    *bool    `json:"isActive"`
}

type UpdateSettingsInput struct {
	AcceptsCash            *bool   `json:"acceptsCash"`
	AcceptsTransfer        *bool   `json:"acceptsTransfer"`
	BankName               *string `json:"bankName"`
	BankAccountHolder      *string `json:"bankAccountHolder"`
	BankAccountNumber      *string `json:"bankAccountNumber"`
	BankAlias              *string `json:"bankAlias"`
	MinAdvanceHours        *int    `json:"minAdvanceHours" validate:"omitempty,min=0"`
	MaxAdvanceDays         *int    `json:"maxAdvanceDays" validate:"omitempty,min=1"`
	ImmediateCancelMinutes *int    `json:"immediateCancelMinutes" validate:"omitempty,min=0"`
	ScheduledCancelHours   *int    `json:"scheduledCancelHours" validate:"omitempty,min=0"`
}
