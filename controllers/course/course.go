package courseController

import (
	"log"
	"strconv"

	"elms/middleware"
	"elms/models"
	"elms/store"
	"elms/utils"
	courseValidators "elms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// ListCourses is the public catalogue: approved courses only, filterable by
// category and level.
func ListCourses(c *fiber.Ctx) error {
	filter := store.CourseFilter{
		ApprovalStatus: models.ApprovalApproved,
		CategoryID:     uint(c.QueryInt("categoryId", 0)),
		Level:          c.Query("level"),
		Page:           c.QueryInt("page", 1),
		Limit:          c.QueryInt("limit", 10),
	}

	courses, total, err := store.S.GetAllCourses(filter)
	if err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", fiber.Map{
		"items": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  filter.Page,
			"limit": filter.Limit,
		},
	})
}

// GetCourse returns one approved course with its category, trainer and live
// enrollment count.
func GetCourse(c *fiber.Ctx) error {
	courseID := uint(c.Locals("courseID").(int))

	course, err := store.S.GetCourseWithDetails(courseID)
	if err != nil || course.ApprovalStatus != models.ApprovalApproved {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully.", course)
}

// CreateCourse submits a new course. Trainer submissions start PENDING and
// open an approval request; admin-created courses go live immediately.
func CreateCourse(c *fiber.Ctx) error {
	reqData := c.Locals("createCourseData").(*courseValidators.CreateCourseRequest)

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if _, err := store.S.GetCategory(reqData.CategoryID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category not found!", nil)
	}

	level := reqData.Level
	if level == "" {
		level = models.LevelBeginner
	}

	course := models.Course{
		Title:          reqData.Title,
		Description:    reqData.Description,
		Level:          level,
		CategoryID:     reqData.CategoryID,
		TrainerID:      user.ID,
		Duration:       reqData.Duration,
		MaxStudents:    reqData.MaxStudents,
		Price:          reqData.Price,
		ThumbnailURL:   reqData.ThumbnailURL,
		ApprovalStatus: models.ApprovalPending,
	}
	if user.Role == models.RoleAdmin {
		course.ApprovalStatus = models.ApprovalApproved
	}

	if err := store.S.CreateCourse(&course); err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	if course.ApprovalStatus == models.ApprovalPending {
		request := models.ApprovalRequest{
			Type:        models.ApprovalItemCourse,
			ItemID:      course.ID,
			RequesterID: user.ID,
			Status:      models.ApprovalPending,
		}
		if err := store.S.CreateApprovalRequest(&request); err != nil {
			log.Printf("Error creating approval request: %v", err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully.", course)
}

// UpdateCourse edits a course owned by the session trainer (admins may edit
// any course).
func UpdateCourse(c *fiber.Ctx) error {
	courseID := uint(c.Locals("courseID").(int))
	reqData := c.Locals("updateCourseData").(*courseValidators.UpdateCourseRequest)

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	course, err := store.S.GetCourse(courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if user.Role != models.RoleAdmin && course.TrainerID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Level != "" {
		course.Level = reqData.Level
	}
	if reqData.CategoryID != 0 {
		if _, err := store.S.GetCategory(reqData.CategoryID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category not found!", nil)
		}
		course.CategoryID = reqData.CategoryID
	}
	if reqData.Duration != 0 {
		course.Duration = reqData.Duration
	}
	if reqData.MaxStudents != 0 {
		course.MaxStudents = reqData.MaxStudents
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}
	if reqData.ThumbnailURL != "" {
		course.ThumbnailURL = reqData.ThumbnailURL
	}

	if err := store.S.UpdateCourse(course); err != nil {
		log.Printf("Error updating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully.", course)
}

// DeleteCourse soft deletes a course along with its sessions and enrollments.
func DeleteCourse(c *fiber.Ctx) error {
	courseID := uint(c.Locals("courseID").(int))

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	course, err := store.S.GetCourse(courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if user.Role != models.RoleAdmin && course.TrainerID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	if err := store.S.DeleteCourse(courseID); err != nil {
		log.Printf("Error deleting course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully.", nil)
}

// TrainerCourses lists the session trainer's own courses in every approval
// state.
func TrainerCourses(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	filter := store.CourseFilter{
		TrainerID: user.ID,
		Page:      c.QueryInt("page", 1),
		Limit:     c.QueryInt("limit", 10),
	}

	courses, total, err := store.S.GetAllCourses(filter)
	if err != nil {
		log.Printf("Error fetching trainer courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", fiber.Map{
		"items": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  filter.Page,
			"limit": filter.Limit,
		},
	})
}

// AdminListCourses lists courses in any approval state, filterable by
// ?status=.
func AdminListCourses(c *fiber.Ctx) error {
	filter := store.CourseFilter{
		ApprovalStatus: c.Query("status"),
		CategoryID:     uint(c.QueryInt("categoryId", 0)),
		TrainerID:      uint(c.QueryInt("trainerId", 0)),
		Page:           c.QueryInt("page", 1),
		Limit:          c.QueryInt("limit", 10),
	}

	courses, total, err := store.S.GetAllCourses(filter)
	if err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", fiber.Map{
		"items": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  filter.Page,
			"limit": filter.Limit,
		},
	})
}

// ReviewCourse applies an admin approval decision. Repeating the current
// decision is a no-op so trainers aren't notified twice.
func ReviewCourse(c *fiber.Ctx) error {
	courseID := uint(c.Locals("courseID").(int))
	reqData := c.Locals("approvalData").(*courseValidators.ApprovalRequest)

	admin, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	course, err := store.S.GetCourse(courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.ApprovalStatus == reqData.Status {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Course is already "+reqData.Status+".", course)
	}

	course.ApprovalStatus = reqData.Status
	if err := store.S.UpdateCourse(course); err != nil {
		log.Printf("Error updating course approval: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	if request, err := store.S.GetApprovalRequestByItem(models.ApprovalItemCourse, course.ID); err == nil {
		request.Status = reqData.Status
		request.ReviewerID = &admin.ID
		request.Notes = reqData.Notes
		if err := store.S.UpdateApprovalRequest(request); err != nil {
			log.Printf("Error updating approval request: %v", err)
		}
	}

	if err := utils.Notify(store.S, course.TrainerID, models.NotificationCourse,
		"Your course \""+course.Title+"\" was "+reqData.Status+".",
		map[string]interface{}{"courseId": course.ID}); err != nil {
		log.Printf("Error creating notification: %v", err)
	}

	if trainer, err := store.S.GetUser(course.TrainerID); err == nil {
		if reqData.Status == models.ApprovalApproved {
			utils.SendCourseApprovedEmail(trainer.Email, trainer.Name, course.Title)
		} else {
			utils.SendCourseRejectedEmail(trainer.Email, trainer.Name, course.Title, reqData.Notes)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course "+reqData.Status+" successfully.", course)
}

// ListCategories is public reference data for the catalogue filters.
func ListCategories(c *fiber.Ctx) error {
	categories, err := store.S.GetAllCategories()
	if err != nil {
		log.Printf("Error fetching categories: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully.", categories)
}

func CreateCategory(c *fiber.Ctx) error {
	reqData := c.Locals("createCategoryData").(*courseValidators.CreateCategoryRequest)

	category := models.Category{
		Name: reqData.Name,
		Slug: reqData.Slug,
	}

	if err := store.S.CreateCategory(&category); err != nil {
		log.Printf("Error creating category: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully.", category)
}

func DeleteCategory(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Category ID!", nil)
	}
	categoryID := uint(id)

	if _, err := store.S.GetCategory(categoryID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	if err := store.S.DeleteCategory(categoryID); err != nil {
		log.Printf("Error deleting category: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category deleted successfully.", nil)
}
