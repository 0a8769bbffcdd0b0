package main

import (
	"log"

	"store_manager/config"
	"store_manager/database"
	"store_manager/helper"
	"store_manager/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("FRONTEND_URL", "http://localhost:3000"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	helper.StartBlockedDateScheduler()
	defer helper.StopBlockedDateScheduler()
	helper.StartInvitationScheduler()
	defer helper.StopInvitationScheduler()

	router.SetupRoutes(app)

	log.Fatal(app.Listen(":" + config.ConfigDefault("PORT", "8002")))
}
