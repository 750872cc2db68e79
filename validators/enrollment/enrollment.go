package enrollmentValidators

import (
	"strconv"
	"strings"

	"elms/middleware"

	"github.com/gofiber/fiber/v2"
)

// SessionIDParam validates the :sessionId path parameter and stores it as
// Locals("sessionID").
func SessionIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("sessionId"))
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

// Enroll validates the enrollment body {sessionId}.
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SessionID uint `json:"sessionId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if reqData.SessionID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"sessionId": "Session ID is required!",
			})
		}
		c.Locals("enrollSessionID", reqData.SessionID)
		return c.Next()
	}
}
