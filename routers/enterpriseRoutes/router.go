package enterpriseRoutes

import (
	enterpriseController "elms/controllers/enterprise"
	"elms/middleware"
	"elms/models"
	enterpriseValidators "elms/validators/enterprise"

	"github.com/gofiber/fiber/v2"
)

func SetupEnterpriseRoutes(app *fiber.App) {
	enterpriseGroup := app.Group("/enterprise", middleware.JWTMiddleware,
		middleware.RequireRoles(models.RoleEnterprise, models.RoleEnterpriseAdmin))

	enterpriseGroup.Get("/employees", enterpriseController.ListEmployees)
	enterpriseGroup.Post("/employees", enterpriseValidators.CreateEmployee(), enterpriseController.CreateEmployee)
	enterpriseGroup.Delete("/employees/:employeeId", enterpriseValidators.EmployeeIDParam(), enterpriseController.RemoveEmployee)

	enterpriseGroup.Post("/employees/:employeeId/courses", enterpriseValidators.EmployeeIDParam(),
		enterpriseValidators.CourseAssignment(), enterpriseController.AssignCourse)
	enterpriseGroup.Delete("/employees/:employeeId/courses", enterpriseValidators.EmployeeIDParam(),
		enterpriseValidators.CourseAssignment(), enterpriseController.UnassignCourse)
	enterpriseGroup.Put("/employees/:employeeId/progress", enterpriseValidators.EmployeeIDParam(),
		enterpriseValidators.Progress(), enterpriseController.RecordProgress)
	enterpriseGroup.Put("/employees/:employeeId/attendance", enterpriseValidators.EmployeeIDParam(),
		enterpriseValidators.Attendance(), enterpriseController.RecordAttendance)

	enterpriseGroup.Get("/courses", enterpriseController.ListLicensedCourses)
	enterpriseGroup.Get("/dashboard", enterpriseController.Dashboard)

	adminGroup := app.Group("/admin/enterprises", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleAdmin))
	adminGroup.Post("/:enterpriseId/courses", enterpriseValidators.EnterpriseIDParam(),
		enterpriseValidators.CourseAssignment(), enterpriseController.AdminGrantCourse)
	adminGroup.Delete("/:enterpriseId/courses", enterpriseValidators.EnterpriseIDParam(),
		enterpriseValidators.CourseAssignment(), enterpriseController.AdminRevokeCourse)
}
