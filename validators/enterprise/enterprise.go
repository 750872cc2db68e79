package enterpriseValidators

import (
	"strconv"
	"strings"
	"time"

	"elms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// EmployeeIDParam validates the :employeeId path parameter and stores it as
// Locals("employeeID").
func EmployeeIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("employeeId"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Employee ID is required!", nil)
		}
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Employee ID!", nil)
		}
		c.Locals("employeeID", id)
		return c.Next()
	}
}

// EnterpriseIDParam validates the :enterpriseId path parameter and stores it
// as Locals("enterpriseID").
func EnterpriseIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("enterpriseId"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Enterprise ID is required!", nil)
		}
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Enterprise ID!", nil)
		}
		c.Locals("enterpriseID", id)
		return c.Next()
	}
}

type CreateEmployeeRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func CreateEmployee() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateEmployeeRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = "Invalid value for " + fieldErr.Field() + "!"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("createEmployeeData", reqData)
		return c.Next()
	}
}

type CourseAssignmentRequest struct {
	CourseID uint `json:"courseId" validate:"required"`
}

func CourseAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseAssignmentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if reqData.CourseID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"courseId": "Course ID is required!",
			})
		}
		c.Locals("courseAssignmentData", reqData)
		return c.Next()
	}
}

type ProgressRequest struct {
	CourseID         uint    `json:"courseId" validate:"required"`
	Progress         float64 `json:"progress" validate:"min=0,max=100"`
	TimeSpentMinutes int     `json:"timeSpentMinutes" validate:"min=0"`
}

func Progress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = "Invalid value for " + fieldErr.Field() + "!"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("progressData", reqData)
		return c.Next()
	}
}

type AttendanceRequest struct {
	SessionID uint       `json:"sessionId" validate:"required"`
	Attended  bool       `json:"attended"`
	JoinedAt  *time.Time `json:"joinedAt"`
	LeftAt    *time.Time `json:"leftAt"`
}

func Attendance() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AttendanceRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if reqData.SessionID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"sessionId": "Session ID is required!",
			})
		}
		c.Locals("attendanceData", reqData)
		return c.Next()
	}
}
