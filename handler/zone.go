package handler

import (
	"errors"

	"store_manager/constants"
	"store_manager/database"
	"store_manager/helper"
	"store_manager/model"
	"store_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetZones(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	var filter model.ZoneFilter
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := database.DB.Where("store_id = ?", storeId)
	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}

	var zones []model.DeliveryZone
	if err := query.Order("max_distance asc").Find(&zones).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, zones)
}

func CreateZone(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	input, ok := c.Locals("createZoneInput").(model.CreateZoneInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing createZoneInput"))
	}

	zone := model.DeliveryZone{
		StoreID:     storeId,
		Name:        input.Name,
		MaxDistance: input.MaxDistance,
		DeliveryFee: input.DeliveryFee,
		MinOrder:    input.MinOrder,
		IsActive:    true,
	}
	if err := database.DB.Create(&zone).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, zone)
}

func UpdateZone(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)
	zoneId := c.Locals("inputId").(uint)

	input, ok := c.Locals("updateZoneInput").(model.UpdateZoneInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing updateZoneInput"))
	}

	var zone model.DeliveryZone
	if err := database.DB.
		Where("id = ? AND store_id = ?", zoneId, storeId).
		First(&zone).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Zone not found", err)
	}

	// Deactivating the last active zone would leave the store undeliverable.
	if input.IsActive != nil && !*input.IsActive && zone.IsActive {
		others, err := helper.CountOtherActiveZones(storeId, zone.ID)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if others == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.LAST_ACTIVE_ZONE, errors.New("last active zone"))
		}
	}

	if err := copier.CopyWithOption(&zone, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if input.IsActive != nil {
		zone.IsActive = *input.IsActive
	}

	if err := database.DB.Save(&zone).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, zone)
}

func DeleteZone(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)
	zoneId := c.Locals("inputId").(uint)

	var zone model.DeliveryZone
	if err := database.DB.
		Where("id = ? AND store_id = ?", zoneId, storeId).
		First(&zone).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Zone not found", err)
	}

	if zone.IsActive {
		others, err := helper.CountOtherActiveZones(storeId, zone.ID)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if others == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.LAST_ACTIVE_ZONE, errors.New("last active zone"))
		}
	}

	if err := database.DB.Delete(&zone).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Zone deleted"})
}
