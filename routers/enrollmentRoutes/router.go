package enrollmentRoutes

import (
	enrollmentController "elms/controllers/enrollment"
	"elms/middleware"
	"elms/models"
	enrollmentValidators "elms/validators/enrollment"
	sessionValidators "elms/validators/session"

	"github.com/gofiber/fiber/v2"
)

func SetupEnrollmentRoutes(app *fiber.App) {
	enrollGroup := app.Group("/enrollments", middleware.JWTMiddleware)

	enrollGroup.Get("/", enrollmentController.MyEnrollments)
	enrollGroup.Post("/", enrollmentValidators.Enroll(), enrollmentController.Enroll)
	enrollGroup.Delete("/:sessionId", enrollmentValidators.SessionIDParam(), enrollmentController.Cancel)

	rosterGroup := app.Group("/trainer/sessions", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleTrainer, models.RoleAdmin))
	rosterGroup.Get("/:id/roster", sessionValidators.SessionIDParam(), enrollmentController.SessionRoster)
}
