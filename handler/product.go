package handler

import (
	"errors"

	"store_manager/constants"
	"store_manager/database"
	"store_manager/model"
	"store_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetProducts(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	var filter model.ProductFilter
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := database.DB.Preload("Category").Where("store_id = ?", storeId)
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if !filter.IncludeUnavailable {
		query = query.Where("is_available = ?", true)
	}

	var products []model.Product
	if err := query.Order("sort_order asc, name asc").Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, products)
}

func CreateProduct(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	input, ok := c.Locals("createProductInput").(model.CreateProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing createProductInput"))
	}

	if input.CategoryID != nil {
		var category model.Category
		if err := database.DB.
			Where("id = ? AND store_id = ?", *input.CategoryID, storeId).
			First(&category).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Category not found", err)
		}
	}

	product := model.Product{
		StoreID:     storeId,
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		IsAvailable: true,
	}
	if input.SortOrder != nil {
		product.SortOrder = *input.SortOrder
	} else {
		product.SortOrder = nextSortOrder(database.DB.Model(&model.Product{}).Where("store_id = ?", storeId))
	}

	if err := database.DB.Create(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, product)
}

func UpdateProduct(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)
	productId := c.Locals("inputId").(uint)

	input, ok := c.Locals("updateProductInput").(model.UpdateProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing updateProductInput"))
	}

	var product model.Product
	if err := database.DB.
		Where("id = ? AND store_id = ?", productId, storeId).
		First(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Product not found", err)
	}

	if input.CategoryID != nil {
		var category model.Category
		if err := database.DB.
			Where("id = ? AND store_id = ?", *input.CategoryID, storeId).
			First(&category).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Category not found", err)
		}
	}

	if err := copier.CopyWithOption(&product, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Save(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

// DeleteProduct only hides the product. Order items reference products by id,
// so rows are never hard deleted.
func DeleteProduct(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)
	productId := c.Locals("inputId").(uint)

	var product model.Product
	if err := database.DB.
		Where("id = ? AND store_id = ?", productId, storeId).
		First(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Product not found", err)
	}

	if err := database.DB.Model(&product).Update("is_available", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Product disabled"})
}
