package sessionValidators

import (
	"strconv"
	"strings"
	"time"

	"elms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// SessionIDParam validates the :id path parameter and stores it as
// Locals("sessionID").
func SessionIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Session ID is required!", nil)
		}
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Session ID!", nil)
		}
		c.Locals("sessionID", id)
		return c.Next()
	}
}

type CreateSessionRequest struct {
	CourseID        uint      `json:"courseId" validate:"required"`
	Date            time.Time `json:"date" validate:"required"`
	EndDate         time.Time `json:"endDate" validate:"required"`
	ZoomLink        string    `json:"zoomLink"`
	MaxParticipants int       `json:"maxParticipants" validate:"omitempty,min=1"`
}

func CreateSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateSessionRequest)
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

		if !reqData.EndDate.After(reqData.Date) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"endDate": "End date must be after the start date!",
			})
		}

		c.Locals("createSessionData", reqData)
		return c.Next()
	}
}

type UpdateSessionRequest struct {
	Date            *time.Time `json:"date"`
	EndDate         *time.Time `json:"endDate"`
	ZoomLink        string     `json:"zoomLink"`
	RecordingLink   string     `json:"recordingLink"`
	MaxParticipants int        `json:"maxParticipants" validate:"omitempty,min=1"`
}

func UpdateSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateSessionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"maxParticipants": "Max participants must be greater than 0!",
			})
		}

		c.Locals("updateSessionData", reqData)
		return c.Next()
	}
}
