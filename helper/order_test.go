package helper

import (
	"strings"
	"testing"
	"time"

	"store_manager/constants"
	"store_manager/model"
	"store_manager/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStatusTransitionHappyPath(t *testing.T) {
	path := []string{
		constants.STATUS_PENDING, constants.STATUS_CONFIRMED, constants.STATUS_PREPARING,
		constants.STATUS_READY, constants.STATUS_ON_THE_WAY, constants.STATUS_DELIVERED,
	}
	for i := 0; i < len(path)-1; i++ {
		assert.NoError(t, ValidateStatusTransition(path[i], path[i+1]))
	}
}

func TestValidateStatusTransitionPendingShortcut(t *testing.T) {
	// Confirming a transfer payment jumps PENDING straight to PREPARING.
	assert.NoError(t, ValidateStatusTransition(constants.STATUS_PENDING, constants.STATUS_PREPARING))
}

func TestValidateStatusTransitionCancelFromAnyActive(t *testing.T) {
	for _, status := range []string{
		constants.STATUS_PENDING, constants.STATUS_CONFIRMED, constants.STATUS_PREPARING,
		constants.STATUS_READY, constants.STATUS_ON_THE_WAY,
	} {
		assert.NoError(t, ValidateStatusTransition(status, constants.STATUS_CANCELLED), status)
	}
}

func TestValidateStatusTransitionTerminalAcceptsNothing(t *testing.T) {
	all := []string{
		constants.STATUS_PENDING, constants.STATUS_CONFIRMED, constants.STATUS_PREPARING,
		constants.STATUS_READY, constants.STATUS_ON_THE_WAY, constants.STATUS_DELIVERED,
		constants.STATUS_CANCELLED,
	}
	for _, terminal := range []string{constants.STATUS_DELIVERED, constants.STATUS_CANCELLED} {
		for _, next := range all {
			assert.Error(t, ValidateStatusTransition(terminal, next), "%s -> %s", terminal, next)
		}
	}
}

func TestValidateStatusTransitionNoSkippingOrBacktracking(t *testing.T) {
	cases := [][2]string{
		{constants.STATUS_PENDING, constants.STATUS_READY},
		{constants.STATUS_PENDING, constants.STATUS_DELIVERED},
		{constants.STATUS_CONFIRMED, constants.STATUS_READY},
		{constants.STATUS_PREPARING, constants.STATUS_ON_THE_WAY},
		{constants.STATUS_READY, constants.STATUS_DELIVERED},
		{constants.STATUS_ON_THE_WAY, constants.STATUS_READY},
		{constants.STATUS_CONFIRMED, constants.STATUS_PENDING},
	}
	for _, tc := range cases {
		err := ValidateStatusTransition(tc[0], tc[1])
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Cannot transition from")
	}
}

func TestIsTerminalStatus(t *testing.T) {
	assert.True(t, IsTerminalStatus(constants.STATUS_DELIVERED))
	assert.True(t, IsTerminalStatus(constants.STATUS_CANCELLED))
	assert.False(t, IsTerminalStatus(constants.STATUS_PENDING))
	assert.False(t, IsTerminalStatus(constants.STATUS_ON_THE_WAY))
}

func TestStampStatusTimestamp(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	var order model.Order
	StampStatusTimestamp(&order, constants.STATUS_CONFIRMED, now)
	require.NotNil(t, order.ConfirmedAt)
	assert.Equal(t, now, *order.ConfirmedAt)
	assert.Nil(t, order.DeliveredAt)

	StampStatusTimestamp(&order, constants.STATUS_DELIVERED, now)
	require.NotNil(t, order.DeliveredAt)
}

func TestInitialOrderStateCashSkipsConfirmation(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	status, paymentStatus, confirmedAt := InitialOrderState(constants.PAYMENT_CASH, now)
	assert.Equal(t, constants.STATUS_CONFIRMED, status)
	assert.Equal(t, constants.PAYMENT_STATUS_CONFIRMED, paymentStatus)
	require.NotNil(t, confirmedAt)
	assert.Equal(t, now, *confirmedAt)
}

func TestInitialOrderStateTransferWaitsForPayment(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	status, paymentStatus, confirmedAt := InitialOrderState(constants.PAYMENT_TRANSFER, now)
	assert.Equal(t, constants.STATUS_PENDING, status)
	assert.Equal(t, constants.PAYMENT_STATUS_PENDING, paymentStatus)
	assert.Nil(t, confirmedAt)
}

func TestApplyPaymentConfirmationStampsBothSteps(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	order := model.Order{
		Status:        constants.STATUS_PENDING,
		PaymentMethod: constants.PAYMENT_TRANSFER,
		PaymentStatus: constants.PAYMENT_STATUS_PENDING,
	}
	ApplyPaymentConfirmation(&order, now)

	assert.Equal(t, constants.STATUS_PREPARING, order.Status)
	assert.Equal(t, constants.PAYMENT_STATUS_CONFIRMED, order.PaymentStatus)
	require.NotNil(t, order.ConfirmedAt)
	require.NotNil(t, order.PreparingAt)
	assert.Equal(t, now, *order.ConfirmedAt)
	assert.Equal(t, now, *order.PreparingAt)
}

func TestApplyPaymentConfirmationForcesPreparing(t *testing.T) {
	// A transfer settled late still pulls the order back to PREPARING.
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	order := model.Order{Status: constants.STATUS_READY, PaymentMethod: constants.PAYMENT_TRANSFER}
	ApplyPaymentConfirmation(&order, now)

	assert.Equal(t, constants.STATUS_PREPARING, order.Status)
	require.NotNil(t, order.ConfirmedAt)
	require.NotNil(t, order.PreparingAt)
}

func TestRefundStatusForMatrix(t *testing.T) {
	confirmed := RefundStatusFor(constants.PAYMENT_TRANSFER, constants.PAYMENT_STATUS_CONFIRMED)
	require.NotNil(t, confirmed)
	assert.Equal(t, constants.REFUND_PENDING, *confirmed)

	cash := RefundStatusFor(constants.PAYMENT_CASH, constants.PAYMENT_STATUS_PENDING)
	require.NotNil(t, cash)
	assert.Equal(t, constants.REFUND_NOT_REQUIRED, *cash)

	cashConfirmed := RefundStatusFor(constants.PAYMENT_CASH, constants.PAYMENT_STATUS_CONFIRMED)
	require.NotNil(t, cashConfirmed)
	assert.Equal(t, constants.REFUND_NOT_REQUIRED, *cashConfirmed)

	// Unpaid transfer owes nothing back.
	assert.Nil(t, RefundStatusFor(constants.PAYMENT_TRANSFER, constants.PAYMENT_STATUS_PENDING))
}

func TestCustomerCanCancelImmediateWindow(t *testing.T) {
	created := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	order := model.Order{
		Type: constants.ORDER_TYPE_IMMEDIATE,
		DTO:  model.DTO{CreatedAt: created},
	}
	settings := model.StoreSettings{ImmediateCancelMinutes: 10}

	assert.NoError(t, CustomerCanCancel(order, settings, created.Add(9*time.Minute)))
	assert.NoError(t, CustomerCanCancel(order, settings, created.Add(10*time.Minute)))

	err := CustomerCanCancel(order, settings, created.Add(11*time.Minute))
	require.Error(t, err)
	assert.Equal(t, constants.CANCEL_WINDOW_EXPIRED, err.Error())
}

func TestCustomerCanCancelScheduledWindow(t *testing.T) {
	date, err := utils.ParseCustomDate("2026-09-04")
	require.NoError(t, err)
	slotStart := "10:00"

	order := model.Order{
		Type:               constants.ORDER_TYPE_SCHEDULED,
		ScheduledDate:      &date,
		ScheduledSlotStart: &slotStart,
	}
	settings := model.StoreSettings{ScheduledCancelHours: 2}

	// Deadline is 08:00 on the scheduled day.
	assert.NoError(t, CustomerCanCancel(order, settings, time.Date(2026, 9, 4, 7, 59, 0, 0, time.UTC)))
	assert.NoError(t, CustomerCanCancel(order, settings, time.Date(2026, 9, 4, 8, 0, 0, 0, time.UTC)))

	late := CustomerCanCancel(order, settings, time.Date(2026, 9, 4, 8, 1, 0, 0, time.UTC))
	require.Error(t, late)
	assert.Equal(t, constants.CANCEL_WINDOW_EXPIRED, late.Error())
}

func TestGenerateOrderCodeFormat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := GenerateOrderCode()
		assert.True(t, strings.HasPrefix(code, "ORD-"), code)
		assert.Len(t, code, 12)
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}
