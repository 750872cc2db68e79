package notificationController

import (
	"log"
	"strconv"

	"elms/middleware"
	"elms/store"

	"github.com/gofiber/fiber/v2"
)

// ListNotifications returns the session user's notifications, newest first,
// with the unread count alongside.
func ListNotifications(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	notifications, total, err := store.S.GetNotificationsByUser(user.ID, page, limit)
	if err != nil {
		log.Printf("Error fetching notifications: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notifications!", nil)
	}

	unread, err := store.S.CountUnreadNotifications(user.ID)
	if err != nil {
		log.Printf("Error counting unread notifications: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched successfully.", fiber.Map{
		"items":  notifications,
		"unread": unread,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// MarkRead marks one of the session user's notifications as read.
func MarkRead(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Notification ID!", nil)
	}

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	notification, err := store.S.GetNotification(uint(id))
	if err != nil || notification.UserID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notification not found!", nil)
	}

	if err := store.S.MarkNotificationRead(uint(id)); err != nil {
		log.Printf("Error marking notification read: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update notification!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification marked as read.", nil)
}

// MarkAllRead marks every unread notification of the session user as read.
func MarkAllRead(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if err := store.S.MarkAllNotificationsRead(user.ID); err != nil {
		log.Printf("Error marking notifications read: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update notifications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "All notifications marked as read.", nil)
}
