package notificationRoutes

import (
	notificationController "elms/controllers/notification"
	"elms/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRoutes(app *fiber.App) {
	notificationGroup := app.Group("/notifications", middleware.JWTMiddleware)

	notificationGroup.Get("/", notificationController.ListNotifications)
	notificationGroup.Patch("/read/all", notificationController.MarkAllRead)
	notificationGroup.Patch("/:id/read", notificationController.MarkRead)
}
