package handler

import (
	"errors"
	"fmt"
	"time"

	"store_manager/config"
	"store_manager/constants"
	"store_manager/database"
	"store_manager/helper"
	"store_manager/model"
	"store_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const invitationTTL = 7 * 24 * time.Hour

func invitationLink(token string) string {
	return fmt.Sprintf("%s/invitations/%s",
		config.ConfigDefault("FRONTEND_URL", "http://localhost:3000"), token)
}

func CreateInvitation(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)
	claim := c.Locals("claim").(model.TokenClaim)

	input, ok := c.Locals("createInvitationInput").(model.CreateInvitationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing createInvitationInput"))
	}

	// Already a member?
	var user model.User
	if err := database.DB.Where("email = ?", input.Email).First(&user).Error; err == nil {
		member, err := helper.GetMembership(storeId, user.ID)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if member != nil && member.IsActive {
			return utils.ErrorResponse(c, fiber.StatusConflict, "This user is already a member of the store", errors.New("already a member"))
		}
	}

	var pending model.Invitation
	if err := database.DB.
		Where("store_id = ? AND email = ? AND used_at IS NULL AND expires_at > ?", storeId, input.Email, time.Now().UTC()).
		First(&pending).Error; err == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.INVITATION_PENDING_CONFLICT, errors.New("pending invitation exists"))
	}

	invitation := model.Invitation{
		StoreID:     storeId,
		Email:       input.Email,
		Role:        input.Role,
		Token:       uuid.NewString(),
		ExpiresAt:   time.Now().UTC().Add(invitationTTL),
		InvitedByID: claim.UserId,
	}
	if err := database.DB.Create(&invitation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var store model.Store
	database.DB.First(&store, storeId)
	var invitedBy model.User
	database.DB.First(&invitedBy, claim.UserId)

	link := invitationLink(invitation.Token)
	utils.SendInvitationEmail(invitation.Email, utils.InvitationEmailData{
		StoreName:      store.Name,
		InvitedBy:      invitedBy.Name,
		Role:           invitation.Role,
		InvitationLink: link,
	})

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"invitation":     invitation,
		"invitationLink": link,
	})
}

func GetInvitations(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	var invitations []model.Invitation
	if err := database.DB.
		Preload("InvitedBy").
		Where("store_id = ?", storeId).
		Order("created_at desc").
		Find(&invitations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, invitations)
}

// GetInvitationByToken is public: the accept page loads it to show who is
// inviting and for which role.
func GetInvitationByToken(c *fiber.Ctx) error {
	invitation, ok := findUsableInvitation(c)
	if !ok {
		return nil
	}

	var existing model.User
	hasAccount := database.DB.Where("email = ?", invitation.Email).First(&existing).Error == nil

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"email":      invitation.Email,
		"role":       invitation.Role,
		"store":      invitation.Store,
		"invitedBy":  invitation.InvitedBy,
		"expiresAt":  invitation.ExpiresAt,
		"hasAccount": hasAccount,
	})
}

// AcceptInvitation turns a valid invitation into an active membership. New
// users are created on the spot; existing users must present their password.
func AcceptInvitation(c *fiber.Ctx) error {
	invitation, ok := findUsableInvitation(c)
	if !ok {
		return nil
	}

	input, ok := c.Locals("acceptInvitationInput").(model.AcceptInvitationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing acceptInvitationInput"))
	}

	var user model.User
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		findErr := tx.Where("email = ?", invitation.Email).First(&user).Error
		switch {
		case findErr == nil:
			if !helper.CheckPasswordHash(input.Password, user.Password) {
				return errors.New(constants.INVALID_CREDENTIALS)
			}
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			hash, err := helper.HashPassword(input.Password)
			if err != nil {
				return err
			}
			user = model.User{
				Email:    invitation.Email,
				Password: hash,
				Name:     input.Name,
			}
			if input.Phone != nil {
				user.Phone = *input.Phone
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		default:
			return findErr
		}

		var member model.StoreMember
		memberErr := tx.Where("store_id = ? AND user_id = ?", invitation.StoreID, user.ID).First(&member).Error
		switch {
		case memberErr == nil:
			member.Role = invitation.Role
			member.IsActive = true
			if err := tx.Save(&member).Error; err != nil {
				return err
			}
		case errors.Is(memberErr, gorm.ErrRecordNotFound):
			member = model.StoreMember{
				StoreID:  invitation.StoreID,
				UserID:   user.ID,
				Role:     invitation.Role,
				IsActive: true,
			}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
		default:
			return memberErr
		}

		now := time.Now().UTC()
		return tx.Model(&model.Invitation{}).
			Where("id = ?", invitation.ID).
			Update("used_at", now).Error
	})
	if err != nil {
		if err.Error() == constants.INVALID_CREDENTIALS {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	token, err := helper.GenerateAccessToken(model.TokenClaim{UserId: user.ID, Email: user.Email})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setAccessTokenCookie(c, token)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"user":        user,
		"storeId":     invitation.StoreID,
		"role":        invitation.Role,
		"accessToken": token,
	})
}

func CancelInvitation(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)
	invitationId := c.Locals("inputId").(uint)

	var invitation model.Invitation
	if err := database.DB.
		Where("id = ? AND store_id = ?", invitationId, storeId).
		First(&invitation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.INVITATION_NOT_FOUND, err)
	}

	if invitation.UsedAt != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVITATION_USED, errors.New("already used"))
	}

	if err := database.DB.Delete(&invitation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Invitation cancelled"})
}

// ResendInvitation rotates the token and restarts the expiry clock.
func ResendInvitation(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)
	invitationId := c.Locals("inputId").(uint)

	var invitation model.Invitation
	if err := database.DB.
		Preload("Store").
		Preload("InvitedBy").
		Where("id = ? AND store_id = ?", invitationId, storeId).
		First(&invitation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.INVITATION_NOT_FOUND, err)
	}

	if invitation.UsedAt != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVITATION_USED, errors.New("already used"))
	}

	invitation.Token = uuid.NewString()
	invitation.ExpiresAt = time.Now().UTC().Add(invitationTTL)
	if err := database.DB.Save(&invitation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	link := invitationLink(invitation.Token)
	invitedBy := ""
	if invitation.InvitedBy != nil {
		invitedBy = invitation.InvitedBy.Name
	}
	storeName := ""
	if invitation.Store != nil {
		storeName = invitation.Store.Name
	}
	utils.SendInvitationEmail(invitation.Email, utils.InvitationEmailData{
		StoreName:      storeName,
		InvitedBy:      invitedBy,
		Role:           invitation.Role,
		InvitationLink: link,
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"invitation":     invitation,
		"invitationLink": link,
	})
}

// findUsableInvitation loads the :token invitation and rejects used or
// expired ones. When it returns false the error response is already written.
func findUsableInvitation(c *fiber.Ctx) (*model.Invitation, bool) {
	token := c.Params("token")

	var invitation model.Invitation
	if err := database.DB.
		Preload("Store").
		Preload("InvitedBy").
		Where("token = ?", token).
		First(&invitation).Error; err != nil {
		utils.ErrorResponse(c, fiber.StatusNotFound, constants.INVITATION_NOT_FOUND, err)
		return nil, false
	}

	if invitation.UsedAt != nil {
		utils.ErrorResponse(c, fiber.StatusGone, constants.INVITATION_USED, errors.New("already used"))
		return nil, false
	}
	if time.Now().UTC().After(invitation.ExpiresAt) {
		utils.ErrorResponse(c, fiber.StatusGone, constants.INVITATION_EXPIRED, errors.New("expired"))
		return nil, false
	}

	return &invitation, true
}
