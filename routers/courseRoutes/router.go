package courseRoutes

import (
	courseController "elms/controllers/course"
	"elms/middleware"
	"elms/models"
	courseValidators "elms/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	// Public catalogue
	courseGroup := app.Group("/courses")
	courseGroup.Get("/", courseController.ListCourses)
	courseGroup.Get("/categories", courseController.ListCategories)
	courseGroup.Get("/:id", courseValidators.CourseIDParam(), courseController.GetCourse)

	// Trainer course management
	trainerGroup := app.Group("/trainer", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleTrainer, models.RoleAdmin))
	trainerGroup.Get("/courses", courseController.TrainerCourses)
	trainerGroup.Post("/courses", courseValidators.CreateCourse(), courseController.CreateCourse)
	trainerGroup.Patch("/courses/:id", courseValidators.CourseIDParam(), courseValidators.UpdateCourse(), courseController.UpdateCourse)
	trainerGroup.Delete("/courses/:id", courseValidators.CourseIDParam(), courseController.DeleteCourse)
	trainerGroup.Get("/dashboard", courseController.TrainerDashboard)

	// Admin course review and taxonomy
	adminGroup := app.Group("/admin/courses", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleAdmin))
	adminGroup.Get("/", courseController.AdminListCourses)
	adminGroup.Post("/", courseValidators.CreateCourse(), courseController.CreateCourse)
	adminGroup.Patch("/:id/review", courseValidators.CourseIDParam(), courseValidators.Approval(), courseController.ReviewCourse)

	categoryGroup := app.Group("/admin/categories", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleAdmin))
	categoryGroup.Post("/", courseValidators.CreateCategory(), courseController.CreateCategory)
	categoryGroup.Delete("/:id", courseController.DeleteCategory)
}
