package helper

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"store_manager/constants"
	"store_manager/database"
	"store_manager/model"

	"gorm.io/gorm"
)

// validTransitions is the whole lifecycle: DELIVERED and CANCELLED are
// terminal and accept nothing.
var validTransitions = map[string][]string{
	constants.STATUS_PENDING:    {constants.STATUS_CONFIRMED, constants.STATUS_PREPARING, constants.STATUS_CANCELLED},
	constants.STATUS_CONFIRMED:  {constants.STATUS_PREPARING, constants.STATUS_CANCELLED},
	constants.STATUS_PREPARING:  {constants.STATUS_READY, constants.STATUS_CANCELLED},
	constants.STATUS_READY:      {constants.STATUS_ON_THE_WAY, constants.STATUS_CANCELLED},
	constants.STATUS_ON_THE_WAY: {constants.STATUS_DELIVERED, constants.STATUS_CANCELLED},
	constants.STATUS_DELIVERED:  {},
	constants.STATUS_CANCELLED:  {},
}

func ValidateStatusTransition(currentStatus, newStatus string) error {
	for _, allowed := range validTransitions[currentStatus] {
		if allowed == newStatus {
			return nil
		}
	}
	return fmt.Errorf("Cannot transition from %s to %s", currentStatus, newStatus)
}

// InitialOrderState returns the lifecycle fields a fresh order starts with.
// Cash needs no confirmation step, so cash orders are born CONFIRMED with
// payment settled on delivery.
func InitialOrderState(paymentMethod string, now time.Time) (status, paymentStatus string, confirmedAt *time.Time) {
	if paymentMethod == constants.PAYMENT_CASH {
		return constants.STATUS_CONFIRMED, constants.PAYMENT_STATUS_CONFIRMED, &now
	}
	return constants.STATUS_PENDING, constants.PAYMENT_STATUS_PENDING, nil
}

// ApplyPaymentConfirmation marks a transfer as received and moves the order
// straight to PREPARING, stamping both steps. Paying unlocks prep regardless
// of where the order currently sits.
func ApplyPaymentConfirmation(order *model.Order, now time.Time) {
	order.PaymentStatus = constants.PAYMENT_STATUS_CONFIRMED
	order.Status = constants.STATUS_PREPARING
	order.ConfirmedAt = &now
	order.PreparingAt = &now
}

func IsTerminalStatus(status string) bool {
	return status == constants.STATUS_DELIVERED || status == constants.STATUS_CANCELLED
}

// StampStatusTimestamp sets the *At field matching the entered status.
func StampStatusTimestamp(order *model.Order, status string, now time.Time) {
	switch status {
	case constants.STATUS_CONFIRMED:
		order.ConfirmedAt = &now
	case constants.STATUS_PREPARING:
		order.PreparingAt = &now
	case constants.STATUS_READY:
		order.ReadyAt = &now
	case constants.STATUS_ON_THE_WAY:
		order.OnTheWayAt = &now
	case constants.STATUS_DELIVERED:
		order.DeliveredAt = &now
	case constants.STATUS_CANCELLED:
		order.CancelledAt = &now
	}
}

// RefundStatusFor decides whether a cancelled order still owes money back:
// captured transfers need a manual refund, cash captured nothing.
func RefundStatusFor(paymentMethod, paymentStatus string) *string {
	if paymentMethod == constants.PAYMENT_TRANSFER && paymentStatus == constants.PAYMENT_STATUS_CONFIRMED {
		s := constants.REFUND_PENDING
		return &s
	}
	if paymentMethod == constants.PAYMENT_CASH {
		s := constants.REFUND_NOT_REQUIRED
		return &s
	}
	return nil
}

// CustomerCanCancel checks the store-configured cancellation window.
func CustomerCanCancel(order model.Order, settings model.StoreSettings, now time.Time) error {
	if order.Type == constants.ORDER_TYPE_IMMEDIATE {
		window := time.Duration(settings.ImmediateCancelMinutes) * time.Minute
		if now.Sub(order.CreatedAt) > window {
			return errors.New(constants.CANCEL_WINDOW_EXPIRED)
		}
		return nil
	}

	scheduledAt := ScheduledStartTime(*order.ScheduledDate, *order.ScheduledSlotStart)
	deadline := scheduledAt.Add(-time.Duration(settings.ScheduledCancelHours) * time.Hour)
	if now.After(deadline) {
		return errors.New(constants.CANCEL_WINDOW_EXPIRED)
	}
	return nil
}

// NextOrderNumber reads the store's current maximum and adds one. Not
// concurrency safe: two simultaneous creations can draw the same number.
func NextOrderNumber(tx *gorm.DB, storeId uint) (int, error) {
	var last model.Order
	err := tx.Where("store_id = ?", storeId).
		Order("order_number desc").
		First(&last).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 1, nil
		}
		return 0, err
	}
	return last.OrderNumber + 1, nil
}

// GenerateOrderCode returns a public code like ORD-3F2A9C1B.
func GenerateOrderCode() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("ORD-%d", time.Now().UnixNano()%100000000)
	}
	return "ORD-" + strings.ToUpper(hex.EncodeToString(b))
}

// BuildOrderItems snapshots prices for the requested items and totals them.
// Every referenced product must exist, belong to the store and be available.
func BuildOrderItems(storeId uint, inputs []model.OrderItemInput) ([]model.OrderItem, float64, error) {
	productIds := make([]uint, 0, len(inputs))
	for _, item := range inputs {
		productIds = append(productIds, item.ProductID)
	}

	var products []model.Product
	if err := database.DB.
		Where("id IN ? AND store_id = ? AND is_available = ?", productIds, storeId, true).
		Find(&products).Error; err != nil {
		return nil, 0, err
	}

	byId := make(map[uint]model.Product, len(products))
	for _, p := range products {
		byId[p.ID] = p
	}

	var subtotal float64
	items := make([]model.OrderItem, 0, len(inputs))
	for _, input := range inputs {
		product, ok := byId[input.ProductID]
		if !ok {
			return nil, 0, errors.New(constants.PRODUCTS_UNAVAILABLE)
		}

		totalPrice := product.Price * float64(input.Quantity)
		subtotal += totalPrice

		items = append(items, model.OrderItem{
			ProductID:  product.ID,
			Name:       product.Name,
			UnitPrice:  product.Price,
			Quantity:   input.Quantity,
			TotalPrice: totalPrice,
			Notes:      input.Notes,
		})
	}

	return items, subtotal, nil
}
