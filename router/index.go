package router

import (
	"store_manager/constants"
	"store_manager/handler"
	"store_manager/middleware"
	"store_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Get("/me", middleware.Protected(), handler.Me)
	auth.Put("/profile", middleware.Protected(), validate.UpdateProfile(), handler.UpdateProfile)
	auth.Post("/change-password", middleware.Protected(), validate.ChangePassword(), handler.ChangePassword)

	// Customer-facing storefront: no auth, keyed by slug or public code.
	public := v1.Group("/public")
	public.Get("/stores/:slug", handler.GetStoreBySlug)
	public.Post("/stores/:slug/orders", validate.CreateOrder(), handler.CreateOrder)
	public.Get("/orders/:code", handler.TrackOrder)
	public.Post("/orders/:code/cancel", validate.CancelOrder(), handler.CancelOrderByCustomer)
	public.Get("/orders/:code/ws", websocket.New(handler.TrackWebsocket))
	public.Get("/invitations/:token", handler.GetInvitationByToken)
	public.Post("/invitations/:token/accept", validate.AcceptInvitation(), handler.AcceptInvitation)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)
	v1.Post("/cloudinary-delete", middleware.Protected(), handler.DeleteUpload)

	store := v1.Group("/stores/:storeId", middleware.Protected())

	anyMember := middleware.StoreAccess()
	managers := middleware.StoreAccess(constants.ROLE_OWNER, constants.ROLE_ADMIN)
	staff := middleware.StoreAccess(constants.ROLE_OWNER, constants.ROLE_ADMIN, constants.ROLE_CASHIER)

	store.Get("/", anyMember, handler.GetStore)
	store.Put("/", managers, validate.UpdateStore(), handler.UpdateStore)
	store.Put("/settings", managers, validate.UpdateSettings(), handler.UpdateSettings)

	store.Get("/members", anyMember, handler.GetMembers)
	store.Get("/members/delivery", anyMember, handler.GetDeliveryUsers)
	store.Patch("/members/:memberId/role", managers, validate.GetById("memberId"), validate.UpdateMemberRole(), handler.UpdateMemberRole)
	store.Delete("/members/:memberId", managers, validate.GetById("memberId"), handler.RemoveMember)

	store.Post("/invitations", managers, validate.CreateInvitation(), handler.CreateInvitation)
	store.Get("/invitations", managers, handler.GetInvitations)
	store.Post("/invitations/:invitationId/resend", managers, validate.GetById("invitationId"), handler.ResendInvitation)
	store.Delete("/invitations/:invitationId", managers, validate.GetById("invitationId"), handler.CancelInvitation)

	store.Get("/zones", anyMember, handler.GetZones)
	store.Post("/zones", managers, validate.CreateZone(), handler.CreateZone)
	store.Put("/zones/:zoneId", managers, validate.GetById("zoneId"), validate.UpdateZone(), handler.UpdateZone)
	store.Delete("/zones/:zoneId", managers, validate.GetById("zoneId"), handler.DeleteZone)

	store.Get("/slots", anyMember, handler.GetSlots)
	store.Post("/slots", managers, validate.CreateSlot(), handler.CreateSlot)
	store.Put("/slots/:slotId", managers, validate.GetById("slotId"), validate.UpdateSlot(), handler.UpdateSlot)
	store.Delete("/slots/:slotId", managers, validate.GetById("slotId"), handler.DeleteSlot)

	store.Get("/blocked-dates", anyMember, handler.GetBlockedDates)
	store.Post("/blocked-dates", managers, validate.CreateBlockedDate(), handler.CreateBlockedDate)
	store.Post("/blocked-dates/bulk", managers, validate.BulkBlockedDates(), handler.BulkBlockedDates)
	store.Delete("/blocked-dates/:blockedDateId", managers, validate.GetById("blockedDateId"), handler.DeleteBlockedDate)

	store.Get("/categories", anyMember, handler.GetCategories)
	store.Post("/categories", managers, validate.CreateCategory(), handler.CreateCategory)
	store.Put("/categories/:categoryId", managers, validate.GetById("categoryId"), validate.UpdateCategory(), handler.UpdateCategory)
	store.Delete("/categories/:categoryId", managers, validate.GetById("categoryId"), handler.DeleteCategory)

	store.Get("/products", anyMember, handler.GetProducts)
	store.Post("/products", managers, validate.CreateProduct(), handler.CreateProduct)
	store.Put("/products/:productId", managers, validate.GetById("productId"), validate.UpdateProduct(), handler.UpdateProduct)
	store.Delete("/products/:productId", managers, validate.GetById("productId"), handler.DeleteProduct)

	store.Get("/orders", anyMember, handler.GetOrders)
	store.Get("/orders/:orderId", anyMember, validate.GetById("orderId"), handler.GetOrderById)
	store.Patch("/orders/:orderId/status", anyMember, validate.GetById("orderId"), validate.UpdateOrderStatus(), handler.UpdateOrderStatus)
	store.Post("/orders/:orderId/assign", staff, validate.GetById("orderId"), validate.AssignDelivery(), handler.AssignDelivery)
	store.Post("/orders/:orderId/confirm-payment", staff, validate.GetById("orderId"), handler.ConfirmPayment)
	store.Post("/orders/:orderId/cancel", managers, validate.GetById("orderId"), validate.CancelOrder(), handler.CancelOrderByStore)

	store.Get("/metrics", managers, handler.GetStoreMetrics)
	store.Get("/metrics/today", anyMember, handler.GetTodayMetrics)

	store.Get("/ws", anyMember, websocket.New(handler.StoreWebsocket))
}
