package handler

import (
	"errors"

	"store_manager/constants"
	"store_manager/database"
	"store_manager/model"
	"store_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetCategories(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	var filter model.CategoryFilter
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := database.DB.Preload("Products").Where("store_id = ?", storeId)
	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}

	var categories []model.Category
	if err := query.Order("sort_order asc").Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, categories)
}

func CreateCategory(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	input, ok := c.Locals("createCategoryInput").(model.CreateCategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing createCategoryInput"))
	}

	category := model.Category{
		StoreID:     storeId,
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		IsActive:    true,
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	} else {
		category.SortOrder = nextSortOrder(database.DB.Model(&model.Category{}).Where("store_id = ?", storeId))
	}

	if err := database.DB.Create(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, category)
}

func UpdateCategory(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)
	categoryId := c.Locals("inputId").(uint)

	input, ok := c.Locals("updateCategoryInput").(model.UpdateCategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing updateCategoryInput"))
	}

	var category model.Category
	if err := database.DB.
		Where("id = ? AND store_id = ?", categoryId, storeId).
		First(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Category not found", err)
	}

	if err := copier.CopyWithOption(&category, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Save(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, category)
}

// DeleteCategory removes the category; products keep existing with a null
// category thanks to the SET NULL constraint.
func DeleteCategory(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)
	categoryId := c.Locals("inputId").(uint)

	var category model.Category
	if err := database.DB.
		Where("id = ? AND store_id = ?", categoryId, storeId).
		First(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Category not found", err)
	}

	detached := database.DB.Model(&model.Product{}).
		Where("category_id = ?", category.ID).
		Update("category_id", nil)
	if detached.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, detached.Error)
	}

	if err := database.DB.Delete(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":          "Category deleted",
		"productsAffected": detached.RowsAffected,
	})
}

// nextSortOrder appends new rows at the end of the store's ordering.
func nextSortOrder(query *gorm.DB) int {
	var max *int
	query.Select("MAX(sort_order)").Scan(&max)
	if max == nil {
		return 0
	}
	return *max + 1
}
