package userRoutes

import (
	userController "elms/controllers/userControllers"
	"elms/middleware"
	"elms/models"
	userValidators "elms/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user", middleware.JWTMiddleware)

	userGroup.Get("/profile", userController.GetProfile)
	userGroup.Patch("/profile", userValidators.UpdateProfile(), userController.UpdateProfile)

	adminGroup := app.Group("/admin/users", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleAdmin))

	adminGroup.Get("/", userController.AdminListUsers)
	adminGroup.Post("/", userValidators.AdminCreateUser(), userController.AdminCreateUser)
	adminGroup.Get("/:id", userValidators.UserIDParam(), userController.AdminGetUser)
	adminGroup.Patch("/:id", userValidators.UserIDParam(), userValidators.AdminUpdateUser(), userController.AdminUpdateUser)
	adminGroup.Delete("/:id", userValidators.UserIDParam(), userController.AdminDeleteUser)
}
