package validate

import (
	"store_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateInvitation() fiber.Handler {
	return body[model.CreateInvitationInput]("createInvitationInput")
}

func AcceptInvitation() fiber.Handler {
	return body[model.AcceptInvitationInput]("acceptInvitationInput")
}
