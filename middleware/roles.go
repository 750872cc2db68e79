package middleware

import (
	"strconv"

	"elms/models"
	"elms/store"

	"github.com/gofiber/fiber/v2"
)

// RequireRoles loads the session user and checks their role against the
// allow-list. The loaded user is stashed in Locals("currentUser") so
// controllers don't fetch it twice.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		user, err := store.S.GetUser(userID)
		if err != nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		}

		for _, role := range roles {
			if user.Role == role {
				c.Locals("currentUser", user)
				return c.Next()
			}
		}

		return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}
}

// OwnerOrAdmin allows the request when the :id path parameter matches the
// session user, or when the session user is an admin.
func OwnerOrAdmin(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		user, err := store.S.GetUser(userID)
		if err != nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		}

		targetID, err := strconv.Atoi(c.Params(param))
		if err != nil || targetID <= 0 {
			return JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
		}

		if user.Role != models.RoleAdmin && uint(targetID) != userID {
			return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}

		c.Locals("currentUser", user)
		return c.Next()
	}
}

// CurrentUser returns the user loaded by RequireRoles/OwnerOrAdmin, falling
// back to a store lookup for routes guarded by JWTMiddleware alone.
func CurrentUser(c *fiber.Ctx) (*models.User, error) {
	if user, ok := c.Locals("currentUser").(*models.User); ok {
		return user, nil
	}
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, store.ErrNotFound
	}
	return store.S.GetUser(userID)
}
