package adminController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"elms/config"
	"elms/middleware"
	"elms/models"
	adminRoutes "elms/routers/adminRoutes"
	"elms/store"
	"elms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	config.LoadConfig()
	store.Use(store.NewMemoryStore())

	admin := &models.User{Name: "Admin", Email: "admin@example.com", Role: models.RoleAdmin, Password: "x"}
	require.NoError(t, store.S.CreateUser(admin))
	token, err := middleware.GenerateJWT(admin.ID, admin.Name, admin.Role, admin.Email)
	require.NoError(t, err)

	app := fiber.New()
	adminRoutes.SetupAdminRoutes(app)
	return app, token
}

func get(token, path string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestDashboardCounts(t *testing.T) {
	app, token := newTestApp(t)

	trainer := &models.User{Name: "T", Email: "t@example.com", Role: models.RoleTrainer, Password: "x"}
	require.NoError(t, store.S.CreateUser(trainer))
	category := &models.Category{Name: "Cat", Slug: "cat"}
	require.NoError(t, store.S.CreateCategory(category))
	course := &models.Course{Title: "C", CategoryID: category.ID, TrainerID: trainer.ID,
		MaxStudents: 10, ApprovalStatus: models.ApprovalPending}
	require.NoError(t, store.S.CreateCourse(course))

	resp, err := app.Test(get(token, "/admin/dashboard"))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data store.AdminStats `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, int64(2), envelope.Data.TotalUsers)
	assert.Equal(t, int64(1), envelope.Data.TotalTrainers)
	assert.Equal(t, int64(1), envelope.Data.TotalCourses)
	assert.Equal(t, int64(1), envelope.Data.PendingCourses)
}

func TestDashboardRequiresAdminRole(t *testing.T) {
	app, _ := newTestApp(t)

	student := &models.User{Name: "S", Email: "s@example.com", Role: models.RoleStudent, Password: "x"}
	require.NoError(t, store.S.CreateUser(student))
	token, err := middleware.GenerateJWT(student.ID, student.Name, student.Role, student.Email)
	require.NoError(t, err)

	resp, err := app.Test(get(token, "/admin/dashboard"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestPlatformFeeRoundTrip(t *testing.T) {
	app, token := newTestApp(t)

	// Default applies before any setting exists
	assert.Equal(t, int64(20), utils.PlatformFeePercent())

	body, _ := json.Marshal(fiber.Map{"platformFeePercent": 25})
	req := httptest.NewRequest(http.MethodPut, "/admin/settings/platform-fee", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, int64(25), utils.PlatformFeePercent())

	fee, share := utils.SplitPayment(10000)
	assert.Equal(t, int64(2500), fee)
	assert.Equal(t, int64(7500), share)

	resp, err = app.Test(get(token, "/admin/settings/platform-fee"))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var envelope struct {
		Data struct {
			PlatformFeePercent int64 `json:"platformFeePercent"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, int64(25), envelope.Data.PlatformFeePercent)
}

func TestPlatformFeeBounds(t *testing.T) {
	app, token := newTestApp(t)

	body, _ := json.Marshal(fiber.Map{"platformFeePercent": 150})
	req := httptest.NewRequest(http.MethodPut, "/admin/settings/platform-fee", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestApprovalRequestQueue(t *testing.T) {
	app, token := newTestApp(t)

	require.NoError(t, store.S.CreateApprovalRequest(&models.ApprovalRequest{
		Type: models.ApprovalItemCourse, ItemID: 1, RequesterID: 2, Status: models.ApprovalPending}))
	require.NoError(t, store.S.CreateApprovalRequest(&models.ApprovalRequest{
		Type: models.ApprovalItemPost, ItemID: 3, RequesterID: 2, Status: models.ApprovalApproved}))

	resp, err := app.Test(get(token, "/admin/approval-requests?status=PENDING"))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data struct {
			Items []models.ApprovalRequest `json:"items"`
			Pagination struct {
				Total int64 `json:"total"`
			} `json:"pagination"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, int64(1), envelope.Data.Pagination.Total)
	require.Len(t, envelope.Data.Items, 1)
	assert.Equal(t, models.ApprovalItemCourse, envelope.Data.Items[0].Type)
}
