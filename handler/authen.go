package handler

import (
	"errors"

	"store_manager/constants"
	"store_manager/database"
	"store_manager/helper"
	"store_manager/model"
	"store_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Register onboards an owner: user, store, settings, OWNER membership and the
// initial delivery slots and zones, all in one transaction.
func Register(c *fiber.Ctx) error {
	input, ok := c.Locals("registerInput").(model.RegisterInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing registerInput"))
	}

	if !input.AcceptsCash && !input.AcceptsTransfer {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Store must accept at least one payment method", errors.New("no payment method enabled"))
	}

	existing, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.EMAIL_ALREADY_REGISTERED, errors.New("email exists"))
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var user model.User
	var store model.Store

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		user = model.User{
			Email:    input.Email,
			Password: hash,
			Name:     input.Name,
			Phone:    input.Phone,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		store = model.Store{
			Name:      input.StoreName,
			Slug:      helper.GenerateUniqueStoreSlug(tx, input.StoreName, 0),
			Logo:      input.StoreLogo,
			Phone:     input.StorePhone,
			Address:   input.StoreAddress,
			Latitude:  input.StoreLatitude,
			Longitude: input.StoreLongitude,
			Currency:  input.Currency,
			IsActive:  true,
			OwnerID:   user.ID,
		}
		if err := tx.Create(&store).Error; err != nil {
			return err
		}

		settings := model.StoreSettings{
			StoreID:                store.ID,
			AcceptsCash:            input.AcceptsCash,
			AcceptsTransfer:        input.AcceptsTransfer,
			BankName:               input.BankName,
			BankAccountHolder:      input.BankAccountHolder,
			BankAccountNumber:      input.BankAccountNumber,
			BankAlias:              input.BankAlias,
			MinAdvanceHours:        input.MinAdvanceHours,
			MaxAdvanceDays:         input.MaxAdvanceDays,
			ImmediateCancelMinutes: input.ImmediateCancelMinutes,
			ScheduledCancelHours:   input.ScheduledCancelHours,
		}
		if err := tx.Create(&settings).Error; err != nil {
			return err
		}

		member := model.StoreMember{
			StoreID:  store.ID,
			UserID:   user.ID,
			Role:     constants.ROLE_OWNER,
			IsActive: true,
		}
		if err := tx.Create(&member).Error; err != nil {
			return err
		}

		for _, slotInput := range input.DeliverySlots {
			if slotInput.StartTime >= slotInput.EndTime {
				return errors.New("Slot start time must be before end time")
			}
			slot := model.DeliverySlot{
				StoreID:          store.ID,
				DayOfWeek:        slotInput.DayOfWeek,
				StartTime:        slotInput.StartTime,
				EndTime:          slotInput.EndTime,
				MaxOrdersPerHour: slotInput.MaxOrdersPerHour,
				IsActive:         true,
			}
			if err := tx.Create(&slot).Error; err != nil {
				return err
			}
		}

		for _, zoneInput := range input.DeliveryZones {
			zone := model.DeliveryZone{
				StoreID:     store.ID,
				Name:        zoneInput.Name,
				MaxDistance: zoneInput.MaxDistance,
				DeliveryFee: zoneInput.DeliveryFee,
				MinOrder:    zoneInput.MinOrder,
				IsActive:    true,
			}
			if err := tx.Create(&zone).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	token, err := helper.GenerateAccessToken(model.TokenClaim{UserId: user.ID, Email: user.Email})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setAccessTokenCookie(c, token)

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"user":        user,
		"store":       store,
		"accessToken": token,
	})
}

func Login(c *fiber.Ctx) error {
	input, ok := c.Locals("loginInput").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("missing loginInput"))
	}

	user, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, errors.New("email not registered"))
	}

	if !helper.CheckPasswordHash(input.Password, user.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, errors.New("password mismatch"))
	}

	token, err := helper.GenerateAccessToken(model.TokenClaim{UserId: user.ID, Email: user.Email})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setAccessTokenCookie(c, token)

	var memberships []model.StoreMember
	database.DB.Preload("Store").Where("user_id = ? AND is_active = ?", user.ID, true).Find(&memberships)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"user":        user,
		"memberships": memberships,
		"accessToken": token,
	})
}

func Me(c *fiber.Ctx) error {
	claim, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
	}

	var user model.User
	if err := database.DB.Preload("Memberships.Store").First(&user, claim.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func UpdateProfile(c *fiber.Ctx) error {
	claim, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
	}

	input, ok := c.Locals("updateProfileInput").(model.UpdateProfileInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing updateProfileInput"))
	}

	var user model.User
	if err := database.DB.First(&user, claim.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found", err)
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func ChangePassword(c *fiber.Ctx) error {
	claim, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
	}

	input, ok := c.Locals("changePasswordInput").(model.ChangePasswordInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing changePasswordInput"))
	}

	var user model.User
	if err := database.DB.First(&user, claim.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found", err)
	}

	if !helper.CheckPasswordHash(input.CurrentPassword, user.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Current password is incorrect", errors.New("password mismatch"))
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Model(&user).Update("password", hash).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Password changed"})
}

func setAccessTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})
}
