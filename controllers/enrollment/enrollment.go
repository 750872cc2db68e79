package enrollmentController

import (
	"errors"
	"log"

	"elms/middleware"
	"elms/models"
	"elms/store"
	"elms/utils"

	"github.com/gofiber/fiber/v2"
)

var (
	errSessionNotFound = errors.New("session not found")
	errAlreadyEnrolled = errors.New("already enrolled")
	errSessionFull     = errors.New("session full")
	errNoAccess        = errors.New("no access")
)

// Enroll registers the session user for a live session. The whole check
// runs inside one transaction with the session row locked, so two racing
// requests cannot both pass the capacity check.
func Enroll(c *fiber.Ctx) error {
	sessionID := c.Locals("enrollSessionID").(uint)

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollment models.Enrollment
	var course *models.Course

	txErr := store.S.Transaction(func(tx store.Store) error {
		if err := tx.LockSession(sessionID); err != nil {
			return errSessionNotFound
		}

		session, err := tx.GetSession(sessionID)
		if err != nil {
			return errSessionNotFound
		}

		course, err = tx.GetCourse(session.CourseID)
		if err != nil || course.ApprovalStatus != models.ApprovalApproved {
			return errSessionNotFound
		}

		if _, err := tx.GetEnrollment(user.ID, sessionID); err == nil {
			return errAlreadyEnrolled
		}

		if course.Price > 0 && !user.IsSubscribed {
			hasAccess, err := tx.HasCourseAccess(user.ID, course.ID)
			if err != nil {
				return err
			}
			if !hasAccess {
				return errNoAccess
			}
		}

		count, err := tx.CountEnrollmentsBySession(sessionID)
		if err != nil {
			return err
		}
		capacity := session.MaxParticipants
		if capacity == 0 {
			capacity = course.MaxStudents
		}
		if capacity > 0 && count >= int64(capacity) {
			return errSessionFull
		}

		enrollment = models.Enrollment{
			UserID:    user.ID,
			SessionID: sessionID,
		}
		if err := tx.CreateEnrollment(&enrollment); err != nil {
			return err
		}

		return utils.Notify(tx, user.ID, models.NotificationEnrollment,
			"You are enrolled in \""+course.Title+"\".",
			map[string]interface{}{"courseId": course.ID, "sessionId": sessionID})
	})

	switch {
	case errors.Is(txErr, errSessionNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	case errors.Is(txErr, errAlreadyEnrolled):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You are already enrolled in this session!", nil)
	case errors.Is(txErr, errNoAccess):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "An active subscription or course purchase is required to enroll!", nil)
	case errors.Is(txErr, errSessionFull):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This session is full!", nil)
	case txErr != nil:
		log.Printf("Error creating enrollment: %v", txErr)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll!", nil)
	}

	if session, err := store.S.GetSession(sessionID); err == nil {
		utils.SendEnrollmentEmail(user.Email, user.Name, course.Title, session.Date)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled successfully.", enrollment)
}

// Cancel soft deletes the enrollment so the user can re-enroll later.
func Cancel(c *fiber.Ctx) error {
	sessionID := uint(c.Locals("sessionID").(int))

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if _, err := store.S.GetEnrollment(user.ID, sessionID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	if err := store.S.DeleteEnrollment(user.ID, sessionID); err != nil {
		log.Printf("Error cancelling enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to cancel enrollment!", nil)
	}

	if session, err := store.S.GetSession(sessionID); err == nil {
		if course, err := store.S.GetCourse(session.CourseID); err == nil {
			utils.SendEnrollmentCancelledEmail(user.Email, user.Name, course.Title)
			if err := utils.Notify(store.S, user.ID, models.NotificationEnrollment,
				"Your enrollment in \""+course.Title+"\" was cancelled.",
				map[string]interface{}{"courseId": course.ID, "sessionId": sessionID}); err != nil {
				log.Printf("Error creating notification: %v", err)
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment cancelled successfully.", nil)
}

// MyEnrollments lists the session user's live enrollments with their
// sessions and courses.
func MyEnrollments(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollments, total, err := store.S.GetEnrollmentsByUser(user.ID, page, limit)
	if err != nil {
		log.Printf("Error fetching enrollments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully.", fiber.Map{
		"items": enrollments,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// SessionRoster lists everyone enrolled in a session, for the owning trainer
// or an admin.
func SessionRoster(c *fiber.Ctx) error {
	sessionID := uint(c.Locals("sessionID").(int))

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	session, err := store.S.GetSession(sessionID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	course, err := store.S.GetCourse(session.CourseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if user.Role != models.RoleAdmin && course.TrainerID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	enrollments, err := store.S.GetEnrollmentsBySession(sessionID)
	if err != nil {
		log.Printf("Error fetching roster: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch roster!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Roster fetched successfully.", enrollments)
}
