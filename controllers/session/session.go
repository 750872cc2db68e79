package sessionController

import (
	"log"

	"elms/middleware"
	"elms/models"
	"elms/store"
	sessionValidators "elms/validators/session"

	"github.com/gofiber/fiber/v2"
)

// ListByCourse returns the sessions of an approved course with their live
// enrollment counts.
func ListByCourse(c *fiber.Ctx) error {
	courseID := uint(c.QueryInt("courseId", 0))
	if courseID == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
	}

	course, err := store.S.GetCourse(courseID)
	if err != nil || course.ApprovalStatus != models.ApprovalApproved {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	sessions, err := store.S.GetSessionsByCourse(courseID)
	if err != nil {
		log.Printf("Error fetching sessions: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sessions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sessions fetched successfully.", sessions)
}

func GetSession(c *fiber.Ctx) error {
	sessionID := uint(c.Locals("sessionID").(int))

	session, err := store.S.GetSessionWithDetails(sessionID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session fetched successfully.", session)
}

// CreateSession schedules a session on a course owned by the session trainer
// (admins may schedule on any course).
func CreateSession(c *fiber.Ctx) error {
	reqData := c.Locals("createSessionData").(*sessionValidators.CreateSessionRequest)

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	course, err := store.S.GetCourse(reqData.CourseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if user.Role != models.RoleAdmin && course.TrainerID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	session := models.Session{
		CourseID:        reqData.CourseID,
		Date:            reqData.Date,
		EndDate:         reqData.EndDate,
		ZoomLink:        reqData.ZoomLink,
		MaxParticipants: reqData.MaxParticipants,
	}

	if err := store.S.CreateSession(&session); err != nil {
		log.Printf("Error creating session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Session created successfully.", session)
}

func UpdateSession(c *fiber.Ctx) error {
	sessionID := uint(c.Locals("sessionID").(int))
	reqData := c.Locals("updateSessionData").(*sessionValidators.UpdateSessionRequest)

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

	if reqData.Date != nil {
		session.Date = *reqData.Date
	}
	if reqData.EndDate != nil {
		session.EndDate = *reqData.EndDate
	}
	if !session.EndDate.After(session.Date) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "End date must be after the start date!", nil)
	}
	if reqData.ZoomLink != "" {
		session.ZoomLink = reqData.ZoomLink
	}
	if reqData.RecordingLink != "" {
		session.RecordingLink = reqData.RecordingLink
	}
	if reqData.MaxParticipants != 0 {
		session.MaxParticipants = reqData.MaxParticipants
	}

	if err := store.S.UpdateSession(session); err != nil {
		log.Printf("Error updating session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session updated successfully.", session)
}

func DeleteSession(c *fiber.Ctx) error {
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

	if err := store.S.DeleteSession(sessionID); err != nil {
		log.Printf("Error deleting session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session deleted successfully.", nil)
}
