package handler

import (
	"errors"
	"fmt"

	"store_manager/constants"
	"store_manager/database"
	"store_manager/helper"
	"store_manager/model"
	"store_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetSlots(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	var filter model.SlotFilter
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := database.DB.Where("store_id = ?", storeId)
	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if filter.DayOfWeek != nil {
		query = query.Where("day_of_week = ?", *filter.DayOfWeek)
	}

	var slots []model.DeliverySlot
	if err := query.Order("day_of_week asc, start_time asc").Find(&slots).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, slots)
}

func CreateSlot(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	input, ok := c.Locals("createSlotInput").(model.CreateSlotInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing createSlotInput"))
	}

	if input.StartTime >= input.EndTime {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Slot start time must be before end time", errors.New("inverted window"))
	}

	overlap, err := helper.FindOverlappingSlot(storeId, input.DayOfWeek, input.StartTime, input.EndTime, 0)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if overlap != nil {
		msg := fmt.Sprintf("Slot overlaps with %s %s-%s", helper.DayNames[overlap.DayOfWeek], overlap.StartTime, overlap.EndTime)
		return utils.ErrorResponse(c, fiber.StatusConflict, msg, errors.New("slot overlap"))
	}

	slot := model.DeliverySlot{
		StoreID:          storeId,
		DayOfWeek:        input.DayOfWeek,
		StartTime:        input.StartTime,
		EndTime:          input.EndTime,
		MaxOrdersPerHour: input.MaxOrdersPerHour,
		IsActive:         true,
	}
	if err := database.DB.Create(&slot).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, slot)
}

func UpdateSlot(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)
	slotId := c.Locals("inputId").(uint)

	input, ok := c.Locals("updateSlotInput").(model.UpdateSlotInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing updateSlotInput"))
	}

	var slot model.DeliverySlot
	if err := database.DB.
		Where("id = ? AND store_id = ?", slotId, storeId).
		First(&slot).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Slot not found", err)
	}

	if input.IsActive != nil && !*input.IsActive && slot.IsActive {
		others, err := helper.CountOtherActiveSlots(storeId, slot.ID)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if others == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.LAST_ACTIVE_SLOT, errors.New("last active slot"))
		}
	}

	if input.DayOfWeek != nil {
		slot.DayOfWeek = *input.DayOfWeek
	}
	if input.StartTime != nil {
		slot.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		slot.EndTime = *input.EndTime
	}
	if input.MaxOrdersPerHour != nil {
		slot.MaxOrdersPerHour = *input.MaxOrdersPerHour
	}
	if input.IsActive != nil {
		slot.IsActive = *input.IsActive
	}

	if slot.StartTime >= slot.EndTime {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Slot start time must be before end time", errors.New("inverted window"))
	}

	if slot.IsActive {
		overlap, err := helper.FindOverlappingSlot(storeId, slot.DayOfWeek, slot.StartTime, slot.EndTime, slot.ID)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if overlap != nil {
			msg := fmt.Sprintf("Slot overlaps with %s %s-%s", helper.DayNames[overlap.DayOfWeek], overlap.StartTime, overlap.EndTime)
			return utils.ErrorResponse(c, fiber.StatusConflict, msg, errors.New("slot overlap"))
		}
	}

	if err := database.DB.Save(&slot).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, slot)
}

func DeleteSlot(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)
	slotId := c.Locals("inputId").(uint)

	var slot model.DeliverySlot
	if err := database.DB.
		Where("id = ? AND store_id = ?", slotId, storeId).
		First(&slot).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Slot not found", err)
	}

	if slot.IsActive {
		others, err := helper.CountOtherActiveSlots(storeId, slot.ID)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if others == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.LAST_ACTIVE_SLOT, errors.New("last active slot"))
		}
	}

	if err := database.DB.Delete(&slot).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Slot deleted"})
}
