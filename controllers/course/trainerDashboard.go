package courseController

import (
	"log"

	"elms/middleware"
	"elms/store"

	"github.com/gofiber/fiber/v2"
)

// TrainerDashboard aggregates the session trainer's courses, sessions,
// enrollments and earnings.
func TrainerDashboard(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	stats, err := store.S.GetTrainerStats(user.ID)
	if err != nil {
		log.Printf("Error building trainer dashboard: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build dashboard!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully.", stats)
}
