package validate

import (
	"store_manager/model"

	"github.com/gofiber/fiber/v2"
)

func UpdateStore() fiber.Handler {
	return body[model.UpdateStoreInput]("updateStoreInput")
}

func UpdateSettings() fiber.Handler {
	return body[model.UpdateSettingsInput]("updateSettingsInput")
}

func UpdateMemberRole() fiber.Handler {
	return body[model.UpdateMemberRoleInput]("updateMemberRoleInput")
}

func CreateZone() fiber.Handler {
	return body[model.CreateZoneInput]("createZoneInput")
}

func UpdateZone() fiber.Handler {
	return body[model.UpdateZoneInput]("updateZoneInput")
}

func CreateSlot() fiber.Handler {
	return body[model.CreateSlotInput]("createSlotInput")
}

func UpdateSlot() fiber.Handler {
	return body[model.UpdateSlotInput]("updateSlotInput")
}

func CreateBlockedDate() fiber.Handler {
	return body[model.CreateBlockedDateInput]("createBlockedDateInput")
}

func BulkBlockedDates() fiber.Handler {
	return body[model.BulkBlockedDatesInput]("bulkBlockedDatesInput")
}
