package helper

import (
	"testing"
	"time"

	"store_manager/constants"
	"store_manager/model"
	"store_manager/utils"

	"github.com/stretchr/testify/assert"
)

func TestClockMinutes(t *testing.T) {
	assert.Equal(t, 0, ClockMinutes("00:00"))
	assert.Equal(t, 630, ClockMinutes("10:30"))
	assert.Equal(t, 1439, ClockMinutes("23:59"))
}

func TestSlotDurationHoursFractional(t *testing.T) {
	assert.Equal(t, 2.0, SlotDurationHours("10:00", "12:00"))
	assert.Equal(t, 1.5, SlotDurationHours("10:00", "11:30"))
	assert.Equal(t, 0.5, SlotDurationHours("18:15", "18:45"))
}

func TestSlotCapacity(t *testing.T) {
	slot := model.DeliverySlot{StartTime: "10:00", EndTime: "12:00", MaxOrdersPerHour: 2}
	assert.Equal(t, 4.0, SlotCapacity(slot))

	halfHour := model.DeliverySlot{StartTime: "10:00", EndTime: "10:30", MaxOrdersPerHour: 4}
	assert.Equal(t, 2.0, SlotCapacity(halfHour))
}

func TestValidateSlotCapacityRejectsWhenFull(t *testing.T) {
	slot := model.DeliverySlot{StartTime: "10:00", EndTime: "12:00", MaxOrdersPerHour: 2}

	assert.NoError(t, ValidateSlotCapacity(slot, 3))

	err := ValidateSlotCapacity(slot, 4)
	assert.EqualError(t, err, constants.SLOT_FULL)
	assert.Error(t, ValidateSlotCapacity(slot, 5))
}

func TestValidateSlotCapacityFreesSeatAfterCancellation(t *testing.T) {
	slot := model.DeliverySlot{StartTime: "09:00", EndTime: "10:00", MaxOrdersPerHour: 1}

	assert.EqualError(t, ValidateSlotCapacity(slot, 1), constants.SLOT_FULL)

	// Cancelled bookings are excluded from the count, so the seat opens again.
	assert.NoError(t, ValidateSlotCapacity(slot, 0))
}

func TestSlotsOverlap(t *testing.T) {
	// Touching windows do not overlap.
	assert.False(t, SlotsOverlap("10:00", "12:00", "12:00", "14:00"))
	assert.False(t, SlotsOverlap("12:00", "14:00", "10:00", "12:00"))

	assert.True(t, SlotsOverlap("10:00", "12:00", "11:00", "13:00"))
	assert.True(t, SlotsOverlap("11:00", "13:00", "10:00", "12:00"))

	// Containment both ways.
	assert.True(t, SlotsOverlap("09:00", "18:00", "10:00", "12:00"))
	assert.True(t, SlotsOverlap("10:00", "12:00", "09:00", "18:00"))

	// Identical windows.
	assert.True(t, SlotsOverlap("10:00", "12:00", "10:00", "12:00"))
}

func TestScheduledStartTime(t *testing.T) {
	date, err := utils.ParseCustomDate("2026-09-04")
	assert.NoError(t, err)

	at := ScheduledStartTime(date, "10:30")
	assert.Equal(t, time.Date(2026, 9, 4, 10, 30, 0, 0, time.UTC), at)
}

func TestValidateAdvanceNoticeTooSoon(t *testing.T) {
	now := time.Date(2026, 9, 4, 9, 0, 0, 0, time.UTC)
	scheduled := now.Add(90 * time.Minute)

	err := ValidateAdvanceNotice(scheduled, now, 2, 7)
	assert.EqualError(t, err, "Orders must be placed at least 2 hours in advance")
}

func TestValidateAdvanceNoticeTooFar(t *testing.T) {
	now := time.Date(2026, 9, 4, 9, 0, 0, 0, time.UTC)
	scheduled := now.Add(8 * 24 * time.Hour)

	err := ValidateAdvanceNotice(scheduled, now, 2, 7)
	assert.EqualError(t, err, "Orders cannot be placed more than 7 days in advance")
}

func TestValidateAdvanceNoticeWithinBounds(t *testing.T) {
	now := time.Date(2026, 9, 4, 9, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateAdvanceNotice(now.Add(2*time.Hour), now, 2, 7))
	assert.NoError(t, ValidateAdvanceNotice(now.Add(7*24*time.Hour), now, 2, 7))
	assert.NoError(t, ValidateAdvanceNotice(now.Add(3*24*time.Hour), now, 2, 7))
}
