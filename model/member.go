package model

// StoreMember links a user to a store with a role. Exactly one OWNER per
// store; the owner is never reassignable or removable through member ops.
type StoreMember struct {
	DTO
	StoreID  uint   `gorm:"index:idx_member_store_user,unique" json:"storeId"`
	UserID   uint   `gorm:"index:idx_member_store_user,unique" json:"userId"`
	Role     string `gorm:"size:20" json:"role"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
	User     *User  `json:"user,omitempty"`
	Store    *Store `json:"store,omitempty"`
}

type UpdateMemberRoleInput struct {
	Role string `json:"role" validate:"required,oneof=ADMIN CASHIER DELIVERY"`
}
