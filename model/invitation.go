package model

import "time"

type Invitation struct {
	DTO
	StoreID     uint       `gorm:"index" json:"storeId"`
	Email       string     `gorm:"size:255" json:"email"`
	Role        string     `gorm:"size:20" json:"role"`
	Token       string     `gorm:"uniqueIndex;size:64" json:"-"`
	ExpiresAt   time.Time  `json:"expiresAt"`
	UsedAt      *time.Time `json:"usedAt,omitempty"`
	InvitedByID uint       `json:"invitedById"`
	InvitedBy   *User      `json:"invitedBy,omitempty"`
	Store       *Store     `json:"store,omitempty"`
}

type CreateInvitationInput struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=ADMIN CASHIER DELIVERY"`
}

type AcceptInvitationInput struct {
	Name     string  `json:"name" validate:"required"`
	Password string  `json:"password" validate:"required,min=8"`
	Phone    *string `json:"phone"`
}
