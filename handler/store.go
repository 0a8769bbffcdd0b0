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
	"gorm.io/gorm"
)

func GetStore(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	var store model.Store
	if err := database.DB.Preload("Settings").First(&store, storeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.STORE_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, store)
}

// GetStoreBySlug is the public storefront payload: store, active zones,
// active slots and the available catalog. Settings stay private except the
// payment and scheduling fields the checkout needs.
func GetStoreBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var store model.Store
	if err := database.DB.
		Where("slug = ? AND is_active = ?", slug, true).
		First(&store).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.STORE_NOT_FOUND, err)
	}

	var settings model.StoreSettings
	if err := database.DB.Where("store_id = ?", store.ID).First(&settings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var zones []model.DeliveryZone
	database.DB.
		Where("store_id = ? AND is_active = ?", store.ID, true).
		Order("max_distance asc").
		Find(&zones)

	var slots []model.DeliverySlot
	database.DB.
		Where("store_id = ? AND is_active = ?", store.ID, true).
		Order("day_of_week asc, start_time asc").
		Find(&slots)

	var categories []model.Category
	database.DB.
		Preload("Products", "is_available = ?", true).
		Where("store_id = ? AND is_active = ?", store.ID, true).
		Order("sort_order asc").
		Find(&categories)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"store": store,
		"settings": fiber.Map{
			"acceptsCash":       settings.AcceptsCash,
			"acceptsTransfer":   settings.AcceptsTransfer,
			"bankName":          settings.BankName,
			"bankAccountHolder": settings.BankAccountHolder,
			"bankAccountNumber": settings.BankAccountNumber,
			"bankAlias":         settings.BankAlias,
			"minAdvanceHours":   settings.MinAdvanceHours,
			"maxAdvanceDays":    settings.MaxAdvanceDays,
		},
		"zones":      zones,
		"slots":      slots,
		"categories": categories,
	})
}

func UpdateStore(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	input, ok := c.Locals("updateStoreInput").(model.UpdateStoreInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing updateStoreInput"))
	}

	var store model.Store
	if err := database.DB.First(&store, storeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.STORE_NOT_FOUND, err)
	}

	renamed := input.Name != nil && *input.Name != store.Name

	if err := copier.CopyWithOption(&store, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if renamed {
			store.Slug = helper.GenerateUniqueStoreSlug(tx, store.Name, store.ID)
		}
		return tx.Save(&store).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, store)
}

func UpdateSettings(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	input, ok := c.Locals("updateSettingsInput").(model.UpdateSettingsInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing updateSettingsInput"))
	}

	var settings model.StoreSettings
	if err := database.DB.Where("store_id = ?", storeId).First(&settings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.STORE_NOT_FOUND, err)
	}

	if err := copier.CopyWithOption(&settings, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if !settings.AcceptsCash && !settings.AcceptsTransfer {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Store must accept at least one payment method", errors.New("no payment method enabled"))
	}

	if err := database.DB.Save(&settings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, settings)
}
