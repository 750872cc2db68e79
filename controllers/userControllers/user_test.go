package userController_test

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
	userRoutes "elms/routers/userRoutes"
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
	userRoutes.SetupUserRoutes(app)
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

func jsonRequest(method, path, token string, payload interface{}) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestProfileRoundTrip(t *testing.T) {
	app := newTestApp(t)
	_, token := seedUser(t, "me@example.com", models.RoleStudent)

	resp, err := app.Test(jsonRequest(http.MethodPatch, "/user/profile", token, fiber.Map{
		"name": "New Name",
		"bio":  "Lifelong learner.",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data models.User `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "New Name", envelope.Data.Name)
	assert.Equal(t, "Lifelong learner.", envelope.Data.Bio)
}

func TestProfileRequiresToken(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/user/profile", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminUserManagement(t *testing.T) {
	app := newTestApp(t)
	_, adminToken := seedUser(t, "admin@example.com", models.RoleAdmin)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/admin/users/", adminToken, fiber.Map{
		"name":     "New Trainer",
		"email":    "trainer@example.com",
		"password": "trainer-pass",
		"role":     models.RoleTrainer,
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	created, err := store.S.GetUserByEmail("trainer@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleTrainer, created.Role)

	resp, err = app.Test(jsonRequest(http.MethodPatch, fmt.Sprintf("/admin/users/%d", created.ID), adminToken, fiber.Map{
		"role": models.RoleEnterprise,
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	updated, err := store.S.GetUser(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleEnterprise, updated.Role)
}

func TestAdminListUsersFiltersByRole(t *testing.T) {
	app := newTestApp(t)
	_, adminToken := seedUser(t, "admin@example.com", models.RoleAdmin)
	seedUser(t, "s1@example.com", models.RoleStudent)
	seedUser(t, "s2@example.com", models.RoleStudent)
	seedUser(t, "t1@example.com", models.RoleTrainer)

	req := httptest.NewRequest(http.MethodGet, "/admin/users/?role=STUDENT", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data struct {
			Items []models.User `json:"items"`
			Pagination struct {
				Total int64 `json:"total"`
			} `json:"pagination"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, int64(2), envelope.Data.Pagination.Total)
	for _, u := range envelope.Data.Items {
		assert.Equal(t, models.RoleStudent, u.Role)
		assert.Empty(t, u.Password)
	}
}

func TestDeleteUserCascades(t *testing.T) {
	app := newTestApp(t)
	_, adminToken := seedUser(t, "admin@example.com", models.RoleAdmin)
	trainer, _ := seedUser(t, "trainer@example.com", models.RoleTrainer)

	category := &models.Category{Name: "Cat", Slug: "cat"}
	require.NoError(t, store.S.CreateCategory(category))
	course := &models.Course{Title: "Owned", CategoryID: category.ID, TrainerID: trainer.ID,
		MaxStudents: 10, ApprovalStatus: models.ApprovalApproved}
	require.NoError(t, store.S.CreateCourse(course))

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/admin/users/%d", trainer.ID), nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, err = store.S.GetUser(trainer.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = store.S.GetCourse(course.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStudentCannotManageUsers(t *testing.T) {
	app := newTestApp(t)
	_, token := seedUser(t, "student@example.com", models.RoleStudent)

	req := httptest.NewRequest(http.MethodGet, "/admin/users/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
