package paymentValidators

import (
	"strconv"
	"strings"

	"elms/middleware"
	"elms/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// PaymentIDParam validates the :id path parameter and stores it as
// Locals("paymentID").
func PaymentIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment ID is required!", nil)
		}
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Payment ID!", nil)
		}
		c.Locals("paymentID", id)
		return c.Next()
	}
}

type CreatePaymentRequest struct {
	Type      string `json:"type" validate:"required,oneof=SUBSCRIPTION COURSE SESSION"`
	PlanID    uint   `json:"planId"`
	CourseID  uint   `json:"courseId"`
	SessionID uint   `json:"sessionId"`
}

// CreatePayment checks the purchase payload: the referenced entity must match
// the payment type.
func CreatePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreatePaymentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"type": "Type must be SUBSCRIPTION, COURSE or SESSION!",
			})
		}

		errors := make(map[string]string)
		switch reqData.Type {
		case models.PaymentTypeSubscription:
			if reqData.PlanID == 0 {
				errors["planId"] = "Plan ID is required for subscription payments!"
			}
		case models.PaymentTypeCourse:
			if reqData.CourseID == 0 {
				errors["courseId"] = "Course ID is required for course payments!"
			}
		case models.PaymentTypeSession:
			if reqData.SessionID == 0 {
				errors["sessionId"] = "Session ID is required for session payments!"
			}
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("createPaymentData", reqData)
		return c.Next()
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED REFUNDED"`
	Notes  string `json:"notes"`
}

func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateStatusRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be APPROVED, REJECTED or REFUNDED!",
			})
		}

		c.Locals("updateStatusData", reqData)
		return c.Next()
	}
}
