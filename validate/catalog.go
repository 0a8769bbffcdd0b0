package validate

import (
	"store_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateCategory() fiber.Handler {
	return body[model.CreateCategoryInput]("createCategoryInput")
}

func UpdateCategory() fiber.Handler {
	return body[model.UpdateCategoryInput]("updateCategoryInput")
}

func CreateProduct() fiber.Handler {
	return body[model.CreateProductInput]("createProductInput")
}

func UpdateProduct() fiber.Handler {
	return body[model.UpdateProductInput]("updateProductInput")
}
