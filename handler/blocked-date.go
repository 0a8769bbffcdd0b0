package handler

import (
	"errors"
	"time"

	"store_manager/constants"
	"store_manager/database"
	"store_manager/model"
	"store_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetBlockedDates(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	var filter model.BlockedDateFilter
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := database.DB.Where("store_id = ?", storeId)
	if filter.From != nil {
		from, err := utils.ParseCustomDate(*filter.From)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		query = query.Where("date >= ?", from)
	}
	if filter.To != nil {
		to, err := utils.ParseCustomDate(*filter.To)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		query = query.Where("date <= ?", to)
	}

	var dates []model.BlockedDate
	if err := query.Order("date asc").Find(&dates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, dates)
}

func CreateBlockedDate(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	input, ok := c.Locals("createBlockedDateInput").(model.CreateBlockedDateInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing createBlockedDateInput"))
	}

	date, err := utils.ParseCustomDate(input.Date)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if isPastDate(date) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot block a past date", errors.New("date in the past"))
	}

	var existing model.BlockedDate
	if err := database.DB.
		Where("store_id = ? AND date = ?", storeId, date).
		First(&existing).Error; err == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.DATE_ALREADY_BLOCKED, errors.New("duplicate blocked date"))
	}

	blocked := model.BlockedDate{StoreID: storeId, Date: date, Reason: input.Reason}
	if err := database.DB.Create(&blocked).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, blocked)
}

// BulkBlockedDates inserts a batch atomically, skipping days already blocked
// rather than failing the whole request on one duplicate.
func BulkBlockedDates(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	input, ok := c.Locals("bulkBlockedDatesInput").(model.BulkBlockedDatesInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing bulkBlockedDatesInput"))
	}

	var created []model.BlockedDate
	var skipped []string

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range input.Dates {
			date, err := utils.ParseCustomDate(item.Date)
			if err != nil {
				return err
			}

			if isPastDate(date) {
				skipped = append(skipped, item.Date)
				continue
			}

			var existing model.BlockedDate
			if err := tx.Where("store_id = ? AND date = ?", storeId, date).First(&existing).Error; err == nil {
				skipped = append(skipped, item.Date)
				continue
			}

			blocked := model.BlockedDate{StoreID: storeId, Date: date, Reason: item.Reason}
			if err := tx.Create(&blocked).Error; err != nil {
				return err
			}
			created = append(created, blocked)
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"created": created,
		"skipped": skipped,
	})
}

func DeleteBlockedDate(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)
	blockedId := c.Locals("inputId").(uint)

	var blocked model.BlockedDate
	if err := database.DB.
		Where("id = ? AND store_id = ?", blockedId, storeId).
		First(&blocked).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Blocked date not found", err)
	}

	if err := database.DB.Delete(&blocked).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Blocked date removed"})
}

func isPastDate(date utils.CustomDate) bool {
	today := utils.NewCustomDate(time.Now().UTC())
	return date.Before(today.Time)
}
