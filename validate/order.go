package validate

import (
	"store_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateOrder() fiber.Handler {
	return body[model.CreateOrderInput]("createOrderInput")
}

func UpdateOrderStatus() fiber.Handler {
	return body[model.UpdateOrderStatusInput]("updateOrderStatusInput")
}

func AssignDelivery() fiber.Handler {
	return body[model.AssignDeliveryInput]("assignDeliveryInput")
}

func CancelOrder() fiber.Handler {
	return body[model.CancelOrderInput]("cancelOrderInput")
}
