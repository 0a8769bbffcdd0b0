package handler

import (
	"time"

	"store_manager/constants"
	"store_manager/database"
	"store_manager/helper"
	"store_manager/model"
	"store_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetStoreMetrics aggregates order counts, revenue and delivery performance
// over an optional [from,to] window.
func GetStoreMetrics(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	var filter model.MetricsFilter
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	var fromTime, toTime *time.Time
	if filter.From != nil {
		if from, err := utils.ParseCustomDate(*filter.From); err == nil {
			fromTime = &from.Time
		}
	}
	if filter.To != nil {
		if to, err := utils.ParseCustomDate(*filter.To); err == nil {
			end := to.Time.Add(24 * time.Hour)
			toTime = &end
		}
	}

	base := func() *gorm.DB {
		query := database.DB.Model(&model.Order{}).Where("store_id = ?", storeId)
		if fromTime != nil {
			query = query.Where("created_at >= ?", *fromTime)
		}
		if toTime != nil {
			query = query.Where("created_at < ?", *toTime)
		}
		return query
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	byStatus := make(map[string]int64, 7)
	for _, status := range []string{
		constants.STATUS_PENDING, constants.STATUS_CONFIRMED, constants.STATUS_PREPARING,
		constants.STATUS_READY, constants.STATUS_ON_THE_WAY, constants.STATUS_DELIVERED,
		constants.STATUS_CANCELLED,
	} {
		var count int64
		if err := base().Where("status = ?", status).Count(&count).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		byStatus[status] = count
	}

	var revenue float64
	if err := base().
		Where("status = ?", constants.STATUS_DELIVERED).
		Select("COALESCE(SUM(total), 0)").
		Scan(&revenue).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var delivered []model.Order
	if err := base().
		Where("status = ? AND confirmed_at IS NOT NULL AND delivered_at IS NOT NULL", constants.STATUS_DELIVERED).
		Find(&delivered).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	spans := make([][2]time.Time, 0, len(delivered))
	for _, order := range delivered {
		spans = append(spans, [2]time.Time{*order.ConfirmedAt, *order.DeliveredAt})
	}

	type topProduct struct {
		ProductID uint   `json:"productId"`
		Name      string `json:"name"`
		Quantity  int64  `json:"quantity"`
	}

	topQuery := database.DB.Model(&model.OrderItem{}).
		Select("order_items.product_id, order_items.name, SUM(order_items.quantity) AS quantity").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.store_id = ? AND orders.status = ?", storeId, constants.STATUS_DELIVERED)
	if fromTime != nil {
		topQuery = topQuery.Where("orders.created_at >= ?", *fromTime)
	}
	if toTime != nil {
		topQuery = topQuery.Where("orders.created_at < ?", *toTime)
	}

	var topProducts []topProduct
	if err := topQuery.
		Group("order_items.product_id, order_items.name").
		Order("quantity DESC").
		Limit(5).
		Scan(&topProducts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Trailing 7-day volume, independent of the from/to window.
	now := time.Now().UTC()
	windowStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -6)

	type dayRow struct {
		Day   time.Time `gorm:"column:day"`
		Count int64     `gorm:"column:count"`
	}
	var dayRows []dayRow
	if err := database.DB.Model(&model.Order{}).
		Select("DATE(created_at) AS day, COUNT(*) AS count").
		Where("store_id = ? AND created_at >= ?", storeId, windowStart).
		Group("DATE(created_at)").
		Scan(&dayRows).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	dayCounts := make(map[string]int64, len(dayRows))
	for _, row := range dayRows {
		dayCounts[row.Day.Format("2006-01-02")] = row.Count
	}

	deliveredCount := byStatus[constants.STATUS_DELIVERED]

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"totalOrders":        total,
		"byStatus":           byStatus,
		"revenue":            revenue,
		"avgOrderValue":      helper.AvgOrderValue(revenue, deliveredCount),
		"avgDeliveryMinutes": helper.AvgDeliveryMinutes(spans),
		"conversionRate":     helper.ConversionRate(deliveredCount, total),
		"topProducts":        topProducts,
		"ordersPerDay":       helper.DailySeries(dayCounts, now, 7),
	})
}

// GetTodayMetrics is the dashboard header: today's volume plus what needs
// attention right now.
func GetTodayMetrics(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	today := utils.NewCustomDate(now)

	todayQuery := func() *gorm.DB {
		return database.DB.Model(&model.Order{}).
			Where("store_id = ?", storeId).
			Where(
				"(type = ? AND scheduled_date = ?) OR (type = ? AND created_at >= ?)",
				constants.ORDER_TYPE_SCHEDULED, today,
				constants.ORDER_TYPE_IMMEDIATE, dayStart,
			)
	}

	var totalToday int64
	if err := todayQuery().Count(&totalToday).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var pending int64
	if err := database.DB.Model(&model.Order{}).
		Where("store_id = ? AND status = ?", storeId, constants.STATUS_PENDING).
		Count(&pending).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var inProgress int64
	if err := database.DB.Model(&model.Order{}).
		Where("store_id = ? AND status IN ?", storeId, []string{
			constants.STATUS_CONFIRMED, constants.STATUS_PREPARING,
			constants.STATUS_READY, constants.STATUS_ON_THE_WAY,
		}).
		Count(&inProgress).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var revenueToday float64
	if err := todayQuery().
		Where("status = ?", constants.STATUS_DELIVERED).
		Select("COALESCE(SUM(total), 0)").
		Scan(&revenueToday).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"ordersToday":   totalToday,
		"pendingOrders": pending,
		"inProgress":    inProgress,
		"revenueToday":  revenueToday,
	})
}
