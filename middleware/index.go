package middleware

import (
	"errors"
	"strconv"
	"strings"

	"store_manager/constants"
	"store_manager/helper"
	"store_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			// check header Authorization: Bearer xxx
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, 401, "Missing token", errors.New("no token"))
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, 401, "Invalid token", err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// StoreAccess verifies the authenticated user is an active member of the
// :storeId store. With roles given, membership alone is not enough.
// Must run after Protected.
func StoreAccess(requiredRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, err := helper.GetInfoUserFromToken(c)
		if err != nil {
			return utils.ErrorResponse(c, 401, "Invalid token", err)
		}

		storeId64, err := strconv.ParseUint(c.Params("storeId"), 10, 32)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("storeId invalid"))
		}
		storeId := uint(storeId64)

		member, err := helper.GetMembership(storeId, claim.UserId)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if member == nil || !member.IsActive {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NO_STORE_ACCESS, errors.New("not a member"))
		}

		if len(requiredRoles) > 0 {
			allowed := false
			for _, role := range requiredRoles {
				if member.Role == role {
					allowed = true
					break
				}
			}
			if !allowed {
				return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NO_PERMISSION, errors.New("insufficient role"))
			}
		}

		c.Locals("storeId", storeId)
		c.Locals("member", member)
		c.Locals("claim", claim)
		return c.Next()
	}
}
