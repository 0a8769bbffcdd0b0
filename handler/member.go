package handler

import (
	"errors"

	"store_manager/constants"
	"store_manager/database"
	"store_manager/model"
	"store_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetMembers(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	var members []model.StoreMember
	if err := database.DB.
		Preload("User").
		Where("store_id = ?", storeId).
		Order("created_at asc").
		Find(&members).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, members)
}

// GetDeliveryUsers lists active couriers, the assignable pool for orders.
func GetDeliveryUsers(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	var members []model.StoreMember
	if err := database.DB.
		Preload("User").
		Where("store_id = ? AND role = ? AND is_active = ?", storeId, constants.ROLE_DELIVERY, true).
		Find(&members).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, members)
}

// UpdateMemberRole changes a member's role. The OWNER row is untouchable and
// OWNER is never a grantable role.
func UpdateMemberRole(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)
	memberId := c.Locals("inputId").(uint)

	input, ok := c.Locals("updateMemberRoleInput").(model.UpdateMemberRoleInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing updateMemberRoleInput"))
	}

	var member model.StoreMember
	if err := database.DB.
		Where("id = ? AND store_id = ?", memberId, storeId).
		First(&member).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Member not found", err)
	}

	if member.Role == constants.ROLE_OWNER {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Owner role cannot be changed", errors.New("target is owner"))
	}

	if err := database.DB.Model(&member).Update("role", input.Role).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, member)
}

func RemoveMember(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)
	memberId := c.Locals("inputId").(uint)
	actor := c.Locals("member").(*model.StoreMember)

	var member model.StoreMember
	if err := database.DB.
		Where("id = ? AND store_id = ?", memberId, storeId).
		First(&member).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Member not found", err)
	}

	if member.Role == constants.ROLE_OWNER {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Owner cannot be removed", errors.New("target is owner"))
	}
	if member.ID == actor.ID {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "You cannot remove yourself", errors.New("self removal"))
	}

	// Soft deactivate so past order assignments keep their reference.
	if err := database.DB.Model(&member).Update("is_active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Member removed"})
}
