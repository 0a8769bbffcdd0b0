package model

type Product struct {
	DTO
	StoreID     uint      `gorm:"index" json:"storeId"`
	CategoryID  *uint     `json:"categoryId,omitempty"`
	Category    *Category `gorm:"constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Image       *string   `json:"image,omitempty"`
	IsAvailable bool      `gorm:"default:true" json:"isAvailable"`
	SortOrder   int       `json:"sortOrder"`
}

type CreateProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Price       float64 `json:"price" validate:"min=0"`
	Image       *string `json:"image"`
	CategoryID  *uint   `json:"categoryId"`
	SortOrder   *int    `json:"sortOrder" validate:"omitempty,min=0"`
}

type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,min=0"`
	Image       *string  `json:"image"`
	CategoryID  *uint    `json:"categoryId"`
	SortOrder   *int     `json:"sortOrder" validate:"omitempty,min=0"`
	IsAvailable *bool    `json:"isAvailable"`
}

type ProductFilter struct {
	CategoryID         *uint `query:"categoryId"`
	IncludeUnavailable bool  `query:"includeUnavailable"`
}
