package courseController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"elms/config"
	"elms/middleware"
	"elms/models"
	courseRoutes "elms/routers/courseRoutes"
	"elms/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()
	store.Use(store.NewMemoryStore())

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	return app
}

func seedUser(t *testing.T, email, role string) (*models.User, string) {
	t.Helper()
	user := &models.User{Name: "User", Email: email, Role: role, Password: "x"}
	require.NoError(t, store.S.CreateUser(user))
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return user, token
}

func seedCategory(t *testing.T) *models.Category {
	t.Helper()
	category := &models.Category{Name: "Programming", Slug: "programming"}
	require.NoError(t, store.S.CreateCategory(category))
	return category
}

func jsonRequest(method, path, token string, payload interface{}) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeCourse(t *testing.T, resp *http.Response) models.Course {
	t.Helper()
	var envelope struct {
		Data models.Course `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope.Data
}

func TestTrainerCourseStartsPending(t *testing.T) {
	app := newTestApp(t)
	category := seedCategory(t)
	trainer, token := seedUser(t, "trainer@example.com", models.RoleTrainer)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/trainer/courses", token, fiber.Map{
		"title":       "Go Fundamentals",
		"categoryId":  category.ID,
		"maxStudents": 20,
		"price":       4999,
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	course := decodeCourse(t, resp)
	assert.Equal(t, models.ApprovalPending, course.ApprovalStatus)

	request, err := store.S.GetApprovalRequestByItem(models.ApprovalItemCourse, course.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalPending, request.Status)
	assert.Equal(t, trainer.ID, request.RequesterID)
}

func TestAdminCourseIsLiveImmediately(t *testing.T) {
	app := newTestApp(t)
	category := seedCategory(t)
	_, token := seedUser(t, "admin@example.com", models.RoleAdmin)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/admin/courses", token, fiber.Map{
		"title":       "Platform Onboarding",
		"categoryId":  category.ID,
		"maxStudents": 50,
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	course := decodeCourse(t, resp)
	assert.Equal(t, models.ApprovalApproved, course.ApprovalStatus)

	_, err = store.S.GetApprovalRequestByItem(models.ApprovalItemCourse, course.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPublicCatalogueShowsApprovedOnly(t *testing.T) {
	app := newTestApp(t)
	category := seedCategory(t)
	trainer, _ := seedUser(t, "trainer@example.com", models.RoleTrainer)

	approved := &models.Course{Title: "Live", CategoryID: category.ID, TrainerID: trainer.ID,
		MaxStudents: 10, ApprovalStatus: models.ApprovalApproved}
	require.NoError(t, store.S.CreateCourse(approved))
	pending := &models.Course{Title: "Waiting", CategoryID: category.ID, TrainerID: trainer.ID,
		MaxStudents: 10, ApprovalStatus: models.ApprovalPending}
	require.NoError(t, store.S.CreateCourse(pending))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/courses", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data struct {
			Items []store.CourseDetails `json:"items"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Len(t, envelope.Data.Items, 1)
	assert.Equal(t, "Live", envelope.Data.Items[0].Title)

	// Pending course details stay hidden
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/courses/%d", pending.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/courses/%d", approved.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminReviewApprovesCourse(t *testing.T) {
	app := newTestApp(t)
	category := seedCategory(t)
	trainer, trainerToken := seedUser(t, "trainer@example.com", models.RoleTrainer)
	admin, adminToken := seedUser(t, "admin@example.com", models.RoleAdmin)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/trainer/courses", trainerToken, fiber.Map{
		"title":       "Go Fundamentals",
		"categoryId":  category.ID,
		"maxStudents": 20,
	}))
	require.NoError(t, err)
	course := decodeCourse(t, resp)

	resp, err = app.Test(jsonRequest(http.MethodPatch, fmt.Sprintf("/admin/courses/%d/review", course.ID), adminToken, fiber.Map{
		"status": "APPROVED",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	updated, err := store.S.GetCourse(course.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalApproved, updated.ApprovalStatus)

	request, err := store.S.GetApprovalRequestByItem(models.ApprovalItemCourse, course.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalApproved, request.Status)
	require.NotNil(t, request.ReviewerID)
	assert.Equal(t, admin.ID, *request.ReviewerID)

	unread, err := store.S.CountUnreadNotifications(trainer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}

func TestAdminReviewIsIdempotent(t *testing.T) {
	app := newTestApp(t)
	category := seedCategory(t)
	trainer, trainerToken := seedUser(t, "trainer@example.com", models.RoleTrainer)
	_, adminToken := seedUser(t, "admin@example.com", models.RoleAdmin)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/trainer/courses", trainerToken, fiber.Map{
		"title":       "Go Fundamentals",
		"categoryId":  category.ID,
		"maxStudents": 20,
	}))
	require.NoError(t, err)
	course := decodeCourse(t, resp)

	for i := 0; i < 2; i++ {
		resp, err = app.Test(jsonRequest(http.MethodPatch, fmt.Sprintf("/admin/courses/%d/review", course.ID), adminToken, fiber.Map{
			"status": "APPROVED",
		}))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	// Repeating the decision does not notify the trainer twice
	unread, err := store.S.CountUnreadNotifications(trainer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}

func TestAdminReviewRejectsCourse(t *testing.T) {
	app := newTestApp(t)
	category := seedCategory(t)
	_, trainerToken := seedUser(t, "trainer@example.com", models.RoleTrainer)
	_, adminToken := seedUser(t, "admin@example.com", models.RoleAdmin)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/trainer/courses", trainerToken, fiber.Map{
		"title":       "Go Fundamentals",
		"categoryId":  category.ID,
		"maxStudents": 20,
	}))
	require.NoError(t, err)
	course := decodeCourse(t, resp)

	resp, err = app.Test(jsonRequest(http.MethodPatch, fmt.Sprintf("/admin/courses/%d/review", course.ID), adminToken, fiber.Map{
		"status": "REJECTED",
		"notes":  "needs a syllabus",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	request, err := store.S.GetApprovalRequestByItem(models.ApprovalItemCourse, course.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalRejected, request.Status)
	assert.Equal(t, "needs a syllabus", request.Notes)
}

func TestUpdateCourseOwnershipCheck(t *testing.T) {
	app := newTestApp(t)
	category := seedCategory(t)
	owner, _ := seedUser(t, "owner@example.com", models.RoleTrainer)
	_, otherToken := seedUser(t, "other@example.com", models.RoleTrainer)

	course := &models.Course{Title: "Mine", CategoryID: category.ID, TrainerID: owner.ID,
		MaxStudents: 10, ApprovalStatus: models.ApprovalApproved}
	require.NoError(t, store.S.CreateCourse(course))

	resp, err := app.Test(jsonRequest(http.MethodPatch, fmt.Sprintf("/trainer/courses/%d", course.ID), otherToken, fiber.Map{
		"title": "Hijacked",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestListCategories(t *testing.T) {
	app := newTestApp(t)
	seedCategory(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/courses/categories", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data []models.Category `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Len(t, envelope.Data, 1)
}
