package model

import (
	"time"

	"store_manager/utils"
)

// Order is the central entity. Customer and price fields are snapshots taken
// at creation time: later product or profile edits never touch them.
type Order struct {
	DTO
	StoreID     uint   `gorm:"index" json:"storeId"`
	Store       *Store `json:"store,omitempty"`
	PublicCode  string `gorm:"uniqueIndex;size:20" json:"publicCode"`
	OrderNumber int    `gorm:"index" json:"orderNumber"`
	Type        string `gorm:"size:20" json:"type"`
	Status      string `gorm:"size:20" json:"status"`

	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerEmail   *string `json:"customerEmail,omitempty"`
	CustomerAddress string  `json:"customerAddress"`
	CustomerLat     float64 `json:"customerLat"`
	CustomerLng     float64 `json:"customerLng"`
	CustomerNotes   *string `json:"customerNotes,omitempty"`

	ScheduledDate      *utils.CustomDate `gorm:"type:date" json:"scheduledDate,omitempty"`
	ScheduledSlotStart *string           `gorm:"size:5" json:"scheduledSlotStart,omitempty"`
	ScheduledSlotEnd   *string           `gorm:"size:5" json:"scheduledSlotEnd,omitempty"`

	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Total       float64 `json:"total"`

	PaymentMethod    string `gorm:"size:20" json:"paymentMethod"`
	PaymentStatus    string `gorm:"size:20" json:"paymentStatus"`
	EstimatedMinutes *int   `json:"estimatedMinutes,omitempty"`

	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`
	PreparingAt *time.Time `json:"preparingAt,omitempty"`
	ReadyAt     *time.Time `json:"readyAt,omitempty"`
	OnTheWayAt  *time.Time `json:"onTheWayAt,omitempty"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`

	CancelReason *string `json:"cancelReason,omitempty"`
	CancelledBy  *string `gorm:"size:20" json:"cancelledBy,omitempty"`
	RefundStatus *string `gorm:"size:20" json:"refundStatus,omitempty"`

	AssignedToID *uint      `json:"assignedToId,omitempty"`
	AssignedTo   *User      `json:"assignedTo,omitempty"`
	AssignedAt   *time.Time `json:"assignedAt,omitempty"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// OrderItem is immutable after creation; Name and UnitPrice are copied from
// the product at order time.
type OrderItem struct {
	DTO
	OrderID    uint    `gorm:"index" json:"orderId"`
	ProductID  uint    `json:"productId"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unitPrice"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"totalPrice"`
	Notes      *string `json:"notes,omitempty"`
}

type OrderItemInput struct {
	ProductID uint    `json:"productId" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	Notes     *string `json:"notes"`
}

type CreateOrderInput struct {
	CustomerName    string  `json:"customerName" validate:"required"`
	CustomerPhone   string  `json:"customerPhone" validate:"required"`
	CustomerEmail   *string `json:"customerEmail" validate:"omitempty,email"`
	CustomerAddress string  `json:"customerAddress" validate:"required"`
	CustomerLat     float64 `json:"customerLat" validate:"required,latitude"`
	CustomerLng     float64 `json:"customerLng" validate:"required,longitude"`
	CustomerNotes   *string `json:"customerNotes"`

	Type               string  `json:"type" validate:"required,oneof=IMMEDIATE SCHEDULED"`
	ScheduledDate      *string `json:"scheduledDate" validate:"omitempty,datetime=2006-01-02"`
	ScheduledSlotStart *string `json:"scheduledSlotStart" validate:"omitempty,len=5,clock"`
	ScheduledSlotEnd   *string `json:"scheduledSlotEnd" validate:"omitempty,len=5,clock"`

	PaymentMethod string           `json:"paymentMethod" validate:"required,oneof=CASH TRANSFER"`
	Items         []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED PREPARING READY ON_THE_WAY DELIVERED CANCELLED"`
}

type AssignDeliveryInput struct {
	DeliveryUserId uint `json:"deliveryUserId" validate:"required"`
}

type CancelOrderInput struct {
	Reason string `json:"reason" validate:"required"`
}

// OrderFilter holds the query parameters for listing store orders.
type OrderFilter struct {
	Status       *string `query:"status"`
	Type         *string `query:"type"`
	Date         *string `query:"date"`
	AssignedToId *uint   `query:"assignedToId"`
	Limit        *int    `query:"limit"`
	Page         *int    `query:"page"`
}

// MetricsFilter bounds the metrics aggregation window.
type MetricsFilter struct {
	From *string `query:"from"`
	To   *string `query:"to"`
}
