package adminRoutes

import (
	adminController "elms/controllers/admin"
	"elms/middleware"
	"elms/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleAdmin))

	adminGroup.Get("/dashboard", adminController.Dashboard)
	adminGroup.Get("/dashboard/revenue", adminController.MonthlyRevenue)
	adminGroup.Get("/approval-requests", adminController.ListApprovalRequests)
	adminGroup.Get("/settings/platform-fee", adminController.GetPlatformFee)
	adminGroup.Put("/settings/platform-fee", adminController.UpdatePlatformFee)
}
