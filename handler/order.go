package handler

import (
	"encoding/base64"
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
	"gorm.io/gorm"
)

// CreateOrder is the public checkout endpoint, keyed by store slug. Coverage,
// payment method, minimum order and (for scheduled orders) slot availability
// are all checked before anything is written.
func CreateOrder(c *fiber.Ctx) error {
	slug := c.Params("slug")

	input, ok := c.Locals("createOrderInput").(model.CreateOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing createOrderInput"))
	}

	var store model.Store
	if err := database.DB.
		Where("slug = ? AND is_active = ?", slug, true).
		First(&store).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.STORE_NOT_FOUND, err)
	}

	var settings model.StoreSettings
	if err := database.DB.Where("store_id = ?", store.ID).First(&settings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.PaymentMethod == constants.PAYMENT_CASH && !settings.AcceptsCash {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "This store does not accept cash payments", errors.New("cash disabled"))
	}
	if input.PaymentMethod == constants.PAYMENT_TRANSFER && !settings.AcceptsTransfer {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "This store does not accept transfer payments", errors.New("transfer disabled"))
	}

	origin := helper.Coordinates{Lat: store.Latitude, Lng: store.Longitude}
	destination := helper.Coordinates{Lat: input.CustomerLat, Lng: input.CustomerLng}
	distance := helper.DistanceKm(origin, destination)

	zone, err := helper.FindZoneByDistance(store.ID, distance)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if zone == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.OUT_OF_COVERAGE, errors.New("no zone covers distance"))
	}

	items, subtotal, err := helper.BuildOrderItems(store.ID, input.Items)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	if subtotal < zone.MinOrder {
		msg := fmt.Sprintf("Minimum order for your zone is %.2f", zone.MinOrder)
		return utils.ErrorResponse(c, fiber.StatusBadRequest, msg, errors.New("below zone minimum"))
	}

	var scheduledDate *utils.CustomDate
	if input.Type == constants.ORDER_TYPE_SCHEDULED {
		if input.ScheduledDate == nil || input.ScheduledSlotStart == nil || input.ScheduledSlotEnd == nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Scheduled orders require a date and time slot", errors.New("missing schedule fields"))
		}

		date, err := utils.ParseCustomDate(*input.ScheduledDate)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		scheduledDate = &date

		if err := helper.ValidateScheduledOrder(store.ID, date, *input.ScheduledSlotStart, *input.ScheduledSlotEnd, settings); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
	}

	status, paymentStatus, confirmedAt := helper.InitialOrderState(input.PaymentMethod, time.Now().UTC())

	order := model.Order{
		StoreID:            store.ID,
		PublicCode:         helper.GenerateOrderCode(),
		Type:               input.Type,
		Status:             status,
		ConfirmedAt:        confirmedAt,
		CustomerName:       input.CustomerName,
		CustomerPhone:      input.CustomerPhone,
		CustomerEmail:      input.CustomerEmail,
		CustomerAddress:    input.CustomerAddress,
		CustomerLat:        input.CustomerLat,
		CustomerLng:        input.CustomerLng,
		CustomerNotes:      input.CustomerNotes,
		ScheduledDate:      scheduledDate,
		ScheduledSlotStart: input.ScheduledSlotStart,
		ScheduledSlotEnd:   input.ScheduledSlotEnd,
		Subtotal:           subtotal,
		DeliveryFee:        zone.DeliveryFee,
		Total:              subtotal + zone.DeliveryFee,
		PaymentMethod:      input.PaymentMethod,
		PaymentStatus:      paymentStatus,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		number, err := helper.NextOrderNumber(tx, store.ID)
		if err != nil {
			return err
		}
		order.OrderNumber = number

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	order.Items = items
	emitOrderEvent(EventNewOrder, order)

	return utils.SuccessResponse(c, fiber.StatusCreated, order)
}

// TrackOrder is the public tracking endpoint. The payload includes a QR code
// for the tracking page so stores can print it on receipts.
func TrackOrder(c *fiber.Ctx) error {
	code := c.Params("code")

	var order model.Order
	if err := database.DB.
		Preload("Items").
		Preload("Store").
		Where("public_code = ?", code).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	trackingURL := fmt.Sprintf("%s/track/%s",
		config.ConfigDefault("FRONTEND_URL", "http://localhost:3000"), order.PublicCode)

	response := fiber.Map{"order": order}
	if png, err := utils.GenerateQRCode(trackingURL, 256); err == nil {
		response["qrCode"] = "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// CancelOrderByCustomer enforces the store's cancellation window before
// cancelling: minutes since creation for immediate orders, hours before the
// slot for scheduled ones.
func CancelOrderByCustomer(c *fiber.Ctx) error {
	code := c.Params("code")

	input, ok := c.Locals("cancelOrderInput").(model.CancelOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing cancelOrderInput"))
	}

	var order model.Order
	if err := database.DB.Where("public_code = ?", code).First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	if err := helper.ValidateStatusTransition(order.Status, constants.STATUS_CANCELLED); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	var settings model.StoreSettings
	if err := database.DB.Where("store_id = ?", order.StoreID).First(&settings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	now := time.Now().UTC()
	if err := helper.CustomerCanCancel(order, settings, now); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	cancelOrder(&order, input.Reason, constants.CANCELLED_BY_CUSTOMER, now)

	if err := database.DB.Save(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	emitOrderEvent(EventOrderCancelled, order)

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func GetOrders(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	var filter model.OrderFilter
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	var filterDate *utils.CustomDate
	if filter.Date != nil {
		date, err := utils.ParseCustomDate(*filter.Date)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		filterDate = &date
	}

	base := func() *gorm.DB {
		query := database.DB.Model(&model.Order{}).Where("store_id = ?", storeId)
		if filter.Status != nil {
			query = query.Where("status = ?", *filter.Status)
		}
		if filter.Type != nil {
			query = query.Where("type = ?", *filter.Type)
		}
		if filter.AssignedToId != nil {
			query = query.Where("assigned_to_id = ?", *filter.AssignedToId)
		}
		if filterDate != nil {
			dayStart := filterDate.Time
			query = query.Where(
				"(type = ? AND scheduled_date = ?) OR (type = ? AND created_at >= ? AND created_at < ?)",
				constants.ORDER_TYPE_SCHEDULED, *filterDate,
				constants.ORDER_TYPE_IMMEDIATE, dayStart, dayStart.Add(24*time.Hour),
			)
		}
		return query
	}

	var totalCount int64
	if err := base().Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var orders []model.Order
	if err := utils.ApplyPagination(base(), filter.Limit, filter.Page).
		Preload("Items").
		Preload("AssignedTo").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       orders,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetOrderById(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)
	orderId := c.Locals("inputId").(uint)

	var order model.Order
	if err := database.DB.
		Preload("Items").
		Preload("AssignedTo").
		Where("id = ? AND store_id = ?", orderId, storeId).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// UpdateOrderStatus walks the lifecycle. Moving to ON_THE_WAY requires an
// assigned courier and refreshes the delivery estimate from the store to the
// customer address.
func UpdateOrderStatus(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)
	orderId := c.Locals("inputId").(uint)

	input, ok := c.Locals("updateOrderStatusInput").(model.UpdateOrderStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing updateOrderStatusInput"))
	}

	var order model.Order
	if err := database.DB.
		Where("id = ? AND store_id = ?", orderId, storeId).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	if err := helper.ValidateStatusTransition(order.Status, input.Status); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	if input.Status == constants.STATUS_ON_THE_WAY && order.AssignedToID == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Order must be assigned to a delivery person first", errors.New("no courier assigned"))
	}

	now := time.Now().UTC()

	if input.Status == constants.STATUS_CANCELLED {
		cancelOrder(&order, "Cancelled by store", constants.CANCELLED_BY_STORE, now)
	} else {
		order.Status = input.Status
		helper.StampStatusTimestamp(&order, input.Status, now)
	}

	if input.Status == constants.STATUS_ON_THE_WAY {
		var store model.Store
		if err := database.DB.First(&store, storeId).Error; err == nil {
			estimate := helper.CalculateRoute(
				helper.Coordinates{Lat: store.Latitude, Lng: store.Longitude},
				helper.Coordinates{Lat: order.CustomerLat, Lng: order.CustomerLng},
			)
			order.EstimatedMinutes = &estimate.DurationMinutes
		}
	}

	if err := database.DB.Save(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Status == constants.STATUS_CANCELLED {
		emitOrderEvent(EventOrderCancelled, order)
	} else {
		emitOrderEvent(EventOrderUpdated, order)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func AssignDelivery(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)
	orderId := c.Locals("inputId").(uint)

	input, ok := c.Locals("assignDeliveryInput").(model.AssignDeliveryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing assignDeliveryInput"))
	}

	var order model.Order
	if err := database.DB.
		Where("id = ? AND store_id = ?", orderId, storeId).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	if helper.IsTerminalStatus(order.Status) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot assign a courier to a finished order", errors.New("order is terminal"))
	}

	var courier model.StoreMember
	if err := database.DB.
		Where("store_id = ? AND user_id = ? AND role = ? AND is_active = ?",
			storeId, input.DeliveryUserId, constants.ROLE_DELIVERY, true).
		First(&courier).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Delivery person not found in this store", err)
	}

	now := time.Now().UTC()
	order.AssignedToID = &input.DeliveryUserId
	order.AssignedAt = &now

	if err := database.DB.Save(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	database.DB.Preload("AssignedTo").First(&order, order.ID)
	emitOrderEvent(EventOrderAssigned, order)

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// ConfirmPayment marks a transfer as received. Payment moves the order to
// PREPARING no matter where it sits, stamping both steps.
func ConfirmPayment(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)
	orderId := c.Locals("inputId").(uint)

	var order model.Order
	if err := database.DB.
		Where("id = ? AND store_id = ?", orderId, storeId).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	if order.PaymentMethod != constants.PAYMENT_TRANSFER {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Only transfer payments need confirmation", errors.New("not a transfer order"))
	}
	if order.PaymentStatus == constants.PAYMENT_STATUS_CONFIRMED {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.PAYMENT_ALREADY_CONFIRMED, errors.New("already confirmed"))
	}
	if helper.IsTerminalStatus(order.Status) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot confirm payment on a finished order", errors.New("order is terminal"))
	}

	helper.ApplyPaymentConfirmation(&order, time.Now().UTC())

	if err := database.DB.Save(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	emitOrderEvent(EventOrderUpdated, order)

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// CancelOrderByStore cancels from the staff side and notifies the customer by
// email when one is on file.
func CancelOrderByStore(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)
	orderId := c.Locals("inputId").(uint)

	input, ok := c.Locals("cancelOrderInput").(model.CancelOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing cancelOrderInput"))
	}

	var order model.Order
	if err := database.DB.
		Where("id = ? AND store_id = ?", orderId, storeId).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	if err := helper.ValidateStatusTransition(order.Status, constants.STATUS_CANCELLED); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	cancelOrder(&order, input.Reason, constants.CANCELLED_BY_STORE, time.Now().UTC())

	if err := database.DB.Save(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if order.CustomerEmail != nil {
		var store model.Store
		database.DB.First(&store, storeId)

		refund := ""
		if order.RefundStatus != nil {
			refund = *order.RefundStatus
		}
		utils.SendOrderCancelledEmail(*order.CustomerEmail, utils.OrderCancelledEmailData{
			StoreName:  store.Name,
			PublicCode: order.PublicCode,
			Reason:     input.Reason,
			Refund:     refund,
		})
	}

	emitOrderEvent(EventOrderCancelled, order)

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// cancelOrder applies the shared cancellation bookkeeping: status, reason,
// actor, refund decision and timestamp.
func cancelOrder(order *model.Order, reason, cancelledBy string, now time.Time) {
	order.Status = constants.STATUS_CANCELLED
	order.CancelReason = &reason
	order.CancelledBy = &cancelledBy
	order.RefundStatus = helper.RefundStatusFor(order.PaymentMethod, order.PaymentStatus)
	order.CancelledAt = &now
}
