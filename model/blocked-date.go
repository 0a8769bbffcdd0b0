package model

import "store_manager/utils"

type BlockedDate struct {
	DTO
	StoreID uint             `gorm:"index:idx_blocked_store_date,unique" json:"storeId"`
	Date    utils.CustomDate `gorm:"index:idx_blocked_store_date,unique;type:date" json:"date"`
	Reason  *string          `json:"reason,omitempty"`
}

type CreateBlockedDateInput struct {
	Date   string  `json:"date" validate:"required,datetime=2006-01-02"`
	Reason *string `json:"reason"`
}

type BulkBlockedDatesInput struct {
	Dates []CreateBlockedDateInput `json:"dates" validate:"required,min=1,dive"`
}

type BlockedDateFilter struct {
	From *string `query:"from"`
	To   *string `query:"to"`
}
