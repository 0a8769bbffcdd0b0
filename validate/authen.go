package validate

import (
	"store_manager/model"

	"github.com/gofiber/fiber/v2"
)

func Register() fiber.Handler {
	return body[model.RegisterInput]("registerInput")
}

func Login() fiber.Handler {
	return body[model.LoginInput]("loginInput")
}

func UpdateProfile() fiber.Handler {
	return body[model.UpdateProfileInput]("updateProfileInput")
}

func ChangePassword() fiber.Handler {
	return body[model.ChangePasswordInput]("changePasswordInput")
}
