package validate

import (
	"testing"

	"store_manager/model"

	"github.com/stretchr/testify/assert"
)

func TestClockValidation(t *testing.T) {
	valid := []string{"00:00", "09:30", "10:00", "19:59", "23:59"}
	for _, clock := range valid {
		input := model.CreateSlotInput{DayOfWeek: 1, StartTime: clock, EndTime: "23:59", MaxOrdersPerHour: 1}
		assert.NoError(t, validate.Struct(input), clock)
	}

	invalid := []string{"24:00", "9:30", "10:60", "10-30", "banana"}
	for _, clock := range invalid {
		input := model.CreateSlotInput{DayOfWeek: 1, StartTime: clock, EndTime: "12:00", MaxOrdersPerHour: 1}
		assert.Error(t, validate.Struct(input), clock)
	}
}

func TestCreateOrderInputValidation(t *testing.T) {
	base := model.CreateOrderInput{
		CustomerName:    "Jane",
		CustomerPhone:   "+5491100000000",
		CustomerAddress: "Somewhere 123",
		CustomerLat:     -34.6,
		CustomerLng:     -58.4,
		Type:            "IMMEDIATE",
		PaymentMethod:   "CASH",
		Items:           []model.OrderItemInput{{ProductID: 1, Quantity: 2}},
	}
	assert.NoError(t, validate.Struct(base))

	badType := base
	badType.Type = "WHENEVER"
	assert.Error(t, validate.Struct(badType))

	badPayment := base
	badPayment.PaymentMethod = "CRYPTO"
	assert.Error(t, validate.Struct(badPayment))

	noItems := base
	noItems.Items = nil
	assert.Error(t, validate.Struct(noItems))

	badQuantity := base
	badQuantity.Items = []model.OrderItemInput{{ProductID: 1, Quantity: 0}}
	assert.Error(t, validate.Struct(badQuantity))
}
