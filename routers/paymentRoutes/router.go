package paymentRoutes

import (
	paymentController "elms/controllers/payment"
	"elms/middleware"
	"elms/models"
	paymentValidators "elms/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	app.Get("/plans", paymentController.ListPlans)

	paymentGroup := app.Group("/payments", middleware.JWTMiddleware)
	paymentGroup.Get("/", paymentController.MyPayments)
	paymentGroup.Post("/", paymentValidators.CreatePayment(), paymentController.CreatePayment)

	adminGroup := app.Group("/admin/payments", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleAdmin))
	adminGroup.Get("/", paymentController.AdminListPayments)
	adminGroup.Patch("/:id/status", paymentValidators.PaymentIDParam(), paymentValidators.UpdateStatus(), paymentController.UpdateStatus)
}
