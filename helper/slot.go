package helper

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"store_manager/constants"
	"store_manager/database"
	"store_manager/model"
	"store_manager/utils"
)

var DayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// ClockMinutes converts a zero-padded "HH:MM" string to minutes since midnight.
// Inputs are validated at the boundary, so parse errors here mean a corrupt row.
func ClockMinutes(clock string) int {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return hours*60 + minutes
}

// SlotDurationHours supports fractional hours, e.g. "10:00"-"11:30" is 1.5.
func SlotDurationHours(startTime, endTime string) float64 {
	return float64(ClockMinutes(endTime)-ClockMinutes(startTime)) / 60
}

// SlotCapacity is the booking cap for one slot occurrence.
func SlotCapacity(slot model.DeliverySlot) float64 {
	return float64(slot.MaxOrdersPerHour) * SlotDurationHours(slot.StartTime, slot.EndTime)
}

// ValidateSlotCapacity rejects a booking once the non-cancelled count for the
// slot occurrence has reached its cap. Cancellations free their seat again.
func ValidateSlotCapacity(slot model.DeliverySlot, booked int64) error {
	if float64(booked) >= SlotCapacity(slot) {
		return errors.New(constants.SLOT_FULL)
	}
	return nil
}

// SlotsOverlap reports whether two [start,end) windows intersect.
func SlotsOverlap(aStart, aEnd, bStart, bEnd string) bool {
	return (aStart >= bStart && aStart < bEnd) ||
		(aEnd > bStart && aEnd <= bEnd) ||
		(aStart <= bStart && aEnd >= bEnd)
}

// ScheduledStartTime combines the scheduled day and the slot start clock.
func ScheduledStartTime(date utils.CustomDate, slotStart string) time.Time {
	d := date.Time
	return time.Date(d.Year(), d.Month(), d.Day(), ClockMinutes(slotStart)/60, ClockMinutes(slotStart)%60, 0, 0, time.UTC)
}

// ValidateAdvanceNotice enforces the store's scheduling bounds.
func ValidateAdvanceNotice(scheduledAt, now time.Time, minAdvanceHours, maxAdvanceDays int) error {
	lead := scheduledAt.Sub(now)

	if lead < time.Duration(minAdvanceHours)*time.Hour {
		return fmt.Errorf("Orders must be placed at least %d hours in advance", minAdvanceHours)
	}

	if lead > time.Duration(maxAdvanceDays)*24*time.Hour {
		return fmt.Errorf("Orders cannot be placed more than %d days in advance", maxAdvanceDays)
	}

	return nil
}

// ValidateScheduledOrder runs the scheduled-order checks in order; the first
// failure wins. The capacity check-then-book is not atomic with the order
// insert, matching the store's documented overbooking tolerance.
func ValidateScheduledOrder(storeId uint, date utils.CustomDate, slotStart, slotEnd string, settings model.StoreSettings) error {
	scheduledAt := ScheduledStartTime(date, slotStart)

	if err := ValidateAdvanceNotice(scheduledAt, time.Now().UTC(), settings.MinAdvanceHours, settings.MaxAdvanceDays); err != nil {
		return err
	}

	blocked, err := IsDateBlocked(storeId, date)
	if err != nil {
		return err
	}
	if blocked {
		return errors.New(constants.DATE_NOT_AVAILABLE)
	}

	var slot model.DeliverySlot
	if err := database.DB.
		Where("store_id = ? AND day_of_week = ? AND start_time = ? AND end_time = ? AND is_active = ?",
			storeId, int(date.Weekday()), slotStart, slotEnd, true).
		First(&slot).Error; err != nil {
		return errors.New(constants.SLOT_NOT_AVAILABLE)
	}

	var booked int64
	if err := database.DB.Model(&model.Order{}).
		Where("store_id = ? AND type = ? AND scheduled_date = ? AND scheduled_slot_start = ? AND status <> ?",
			storeId, constants.ORDER_TYPE_SCHEDULED, date, slotStart, constants.STATUS_CANCELLED).
		Count(&booked).Error; err != nil {
		return err
	}

	return ValidateSlotCapacity(slot, booked)
}

// FindOverlappingSlot returns the first active slot on the same weekday whose
// window intersects [startTime,endTime), ignoring excludeId.
func FindOverlappingSlot(storeId uint, dayOfWeek int, startTime, endTime string, excludeId uint) (*model.DeliverySlot, error) {
	var slots []model.DeliverySlot
	if err := database.DB.
		Where("store_id = ? AND day_of_week = ? AND is_active = ? AND id <> ?", storeId, dayOfWeek, true, excludeId).
		Find(&slots).Error; err != nil {
		return nil, err
	}

	for i := range slots {
		if SlotsOverlap(startTime, endTime, slots[i].StartTime, slots[i].EndTime) {
			return &slots[i], nil
		}
	}
	return nil, nil
}

// CountOtherActiveSlots backs the last-active-slot delete guard.
func CountOtherActiveSlots(storeId, excludeId uint) (int64, error) {
	var count int64
	err := database.DB.Model(&model.DeliverySlot{}).
		Where("store_id = ? AND is_active = ? AND id <> ?", storeId, true, excludeId).
		Count(&count).Error
	return count, err
}
