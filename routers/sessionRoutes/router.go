package sessionRoutes

import (
	sessionController "elms/controllers/session"
	"elms/middleware"
	"elms/models"
	sessionValidators "elms/validators/session"

	"github.com/gofiber/fiber/v2"
)

func SetupSessionRoutes(app *fiber.App) {
	// Public session listings
	sessionGroup := app.Group("/sessions")
	sessionGroup.Get("/", sessionController.ListByCourse)
	sessionGroup.Get("/:id", sessionValidators.SessionIDParam(), sessionController.GetSession)

	// Trainer scheduling
	trainerGroup := app.Group("/trainer/sessions", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleTrainer, models.RoleAdmin))
	trainerGroup.Post("/", sessionValidators.CreateSession(), sessionController.CreateSession)
	trainerGroup.Patch("/:id", sessionValidators.SessionIDParam(), sessionValidators.UpdateSession(), sessionController.UpdateSession)
	trainerGroup.Delete("/:id", sessionValidators.SessionIDParam(), sessionController.DeleteSession)
}
