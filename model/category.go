package model

type Category struct {
	DTO
	StoreID     uint      `gorm:"index" json:"storeId"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Image       *string   `json:"image,omitempty"`
	SortOrder   int       `json:"sortOrder"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
	Products    []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

type CreateCategoryInput struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	SortOrder   *int    `json:"sortOrder" validate:"omitempty,min=0"`
}

type UpdateCategoryInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	SortOrder   *int    `json:"sortOrder" validate:"omitempty,min=0"`
	IsActive    *bool   `json:"isActive"`
}

type CategoryFilter struct {
	IncludeInactive bool `query:"includeInactive"`
}
