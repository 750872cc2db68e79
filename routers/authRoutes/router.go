package authRoutes

import (
	authController "elms/controllers/auth"
	"elms/middleware"
	authValidators "elms/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authController.Signup)
	authGroup.Post("/login", authValidators.Login(), authController.Login)
	authGroup.Post("/forgot/password", authValidators.ForgotPassword(), authController.ForgotPassword)
	authGroup.Patch("/reset/password", authValidators.ResetPassword(), authController.ResetPassword)
	authGroup.Put("/change/password", authValidators.ChangePassword(), middleware.JWTMiddleware, authController.ChangePassword)
}
