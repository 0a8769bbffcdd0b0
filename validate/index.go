package validate

import (
	"errors"
	"regexp"
	"strconv"

	"store_manager/constants"
	"store_manager/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Zero-padded 24h clock. Keeping the format strict is what makes the
// lexicographic "HH:MM" comparisons in the slot logic safe.
var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func init() {
	_ = validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return clockPattern.MatchString(fl.Field().String())
	})
}

// body parses and validates the JSON body into T, storing it in Locals
// under localKey for the handler.
func body[T any](localKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(T)
		if err := c.BodyParser(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}
		c.Locals(localKey, *input)
		return c.Next()
	}
}

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		c.Locals("inputId", uint(valueKey))
		return c.Next()
	}
}
