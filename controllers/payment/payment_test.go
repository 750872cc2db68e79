package paymentController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"elms/config"
	"elms/middleware"
	"elms/models"
	paymentRoutes "elms/routers/paymentRoutes"
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
	paymentRoutes.SetupPaymentRoutes(app)
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

func seedCourse(t *testing.T, price int64) *models.Course {
	t.Helper()
	trainer := &models.User{Name: "Trainer", Email: fmt.Sprintf("trainer-%d@example.com", time.Now().UnixNano()), Role: models.RoleTrainer, Password: "x"}
	require.NoError(t, store.S.CreateUser(trainer))
	category := &models.Category{Name: "Cat", Slug: "cat"}
	require.NoError(t, store.S.CreateCategory(category))

	course := &models.Course{
		Title:          "Course",
		CategoryID:     category.ID,
		TrainerID:      trainer.ID,
		MaxStudents:    100,
		Price:          price,
		ApprovalStatus: models.ApprovalApproved,
	}
	require.NoError(t, store.S.CreateCourse(course))
	return course
}

func postJSON(token, path string, payload interface{}) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func patchJSON(token, path string, payload interface{}) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPatch, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func decodePayment(t *testing.T, resp *http.Response) models.Payment {
	t.Helper()
	var envelope struct {
		Data models.Payment `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope.Data
}

func TestCreateCoursePayment(t *testing.T) {
	app := newTestApp(t)
	course := seedCourse(t, 10000)
	_, token := seedUser(t, "buyer@example.com", models.RoleStudent)

	resp, err := app.Test(postJSON(token, "/payments", fiber.Map{"type": "COURSE", "courseId": course.ID}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	payment := decodePayment(t, resp)
	assert.Equal(t, models.PaymentPending, payment.Status)
	assert.Equal(t, int64(10000), payment.Amount)
	assert.Equal(t, int64(2000), payment.PlatformFee) // default 20% split
	assert.Equal(t, int64(8000), payment.TrainerShare)
	assert.NotEmpty(t, payment.Reference)
}

func TestCreatePaymentForFreeCourse(t *testing.T) {
	app := newTestApp(t)
	course := seedCourse(t, 0)
	_, token := seedUser(t, "buyer@example.com", models.RoleStudent)

	resp, err := app.Test(postJSON(token, "/payments", fiber.Map{"type": "COURSE", "courseId": course.ID}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestApproveCoursePaymentGrantsAccess(t *testing.T) {
	app := newTestApp(t)
	course := seedCourse(t, 10000)
	buyer, token := seedUser(t, "buyer@example.com", models.RoleStudent)
	_, adminToken := seedUser(t, "admin@example.com", models.RoleAdmin)

	resp, err := app.Test(postJSON(token, "/payments", fiber.Map{"type": "COURSE", "courseId": course.ID}))
	require.NoError(t, err)
	payment := decodePayment(t, resp)

	resp, err = app.Test(patchJSON(adminToken, fmt.Sprintf("/admin/payments/%d/status", payment.ID), fiber.Map{"status": "APPROVED"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	has, err := store.S.HasCourseAccess(buyer.ID, course.ID)
	require.NoError(t, err)
	assert.True(t, has)

	unread, err := store.S.CountUnreadNotifications(buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}

func TestRejectApprovedPaymentRevokesAccess(t *testing.T) {
	app := newTestApp(t)
	course := seedCourse(t, 10000)
	buyer, token := seedUser(t, "buyer@example.com", models.RoleStudent)
	_, adminToken := seedUser(t, "admin@example.com", models.RoleAdmin)

	resp, err := app.Test(postJSON(token, "/payments", fiber.Map{"type": "COURSE", "courseId": course.ID}))
	require.NoError(t, err)
	payment := decodePayment(t, resp)

	resp, err = app.Test(patchJSON(adminToken, fmt.Sprintf("/admin/payments/%d/status", payment.ID), fiber.Map{"status": "APPROVED"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(patchJSON(adminToken, fmt.Sprintf("/admin/payments/%d/status", payment.ID), fiber.Map{"status": "REJECTED", "notes": "chargeback"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	has, err := store.S.HasCourseAccess(buyer.ID, course.ID)
	require.NoError(t, err)
	assert.False(t, has)

	updated, err := store.S.GetPayment(payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentRejected, updated.Status)
	assert.Equal(t, "chargeback", updated.ReviewNotes)
}

func TestSubscriptionPaymentLifecycle(t *testing.T) {
	app := newTestApp(t)
	plan := &models.Plan{Code: models.PlanMonthly, Name: "Monthly", Price: 1999, DurationDays: 30, IsActive: true}
	require.NoError(t, store.S.CreatePlan(plan))

	subscriber, token := seedUser(t, "sub@example.com", models.RoleStudent)
	_, adminToken := seedUser(t, "admin@example.com", models.RoleAdmin)

	resp, err := app.Test(postJSON(token, "/payments", fiber.Map{"type": "SUBSCRIPTION", "planId": plan.ID}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	payment := decodePayment(t, resp)
	assert.Equal(t, int64(1999), payment.Amount)

	resp, err = app.Test(patchJSON(adminToken, fmt.Sprintf("/admin/payments/%d/status", payment.ID), fiber.Map{"status": "APPROVED"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	activated, err := store.S.GetUser(subscriber.ID)
	require.NoError(t, err)
	assert.True(t, activated.IsSubscribed)
	require.NotNil(t, activated.SubscriptionEndDate)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), *activated.SubscriptionEndDate, time.Minute)

	// Refund walks the activation back
	resp, err = app.Test(patchJSON(adminToken, fmt.Sprintf("/admin/payments/%d/status", payment.ID), fiber.Map{"status": "REFUNDED"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	refunded, err := store.S.GetUser(subscriber.ID)
	require.NoError(t, err)
	assert.False(t, refunded.IsSubscribed)
	assert.Nil(t, refunded.SubscriptionEndDate)
}

func TestInvalidStatusTransition(t *testing.T) {
	app := newTestApp(t)
	course := seedCourse(t, 10000)
	_, token := seedUser(t, "buyer@example.com", models.RoleStudent)
	_, adminToken := seedUser(t, "admin@example.com", models.RoleAdmin)

	resp, err := app.Test(postJSON(token, "/payments", fiber.Map{"type": "COURSE", "courseId": course.ID}))
	require.NoError(t, err)
	payment := decodePayment(t, resp)

	// A pending payment cannot jump straight to refunded
	resp, err = app.Test(patchJSON(adminToken, fmt.Sprintf("/admin/payments/%d/status", payment.ID), fiber.Map{"status": "REFUNDED"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Rejected is terminal
	resp, err = app.Test(patchJSON(adminToken, fmt.Sprintf("/admin/payments/%d/status", payment.ID), fiber.Map{"status": "REJECTED"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, err = app.Test(patchJSON(adminToken, fmt.Sprintf("/admin/payments/%d/status", payment.ID), fiber.Map{"status": "APPROVED"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateSubscriptionPaymentUnknownPlan(t *testing.T) {
	app := newTestApp(t)
	_, token := seedUser(t, "sub@example.com", models.RoleStudent)

	resp, err := app.Test(postJSON(token, "/payments", fiber.Map{"type": "SUBSCRIPTION", "planId": 42}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListPlansShowsActiveOnly(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, store.S.CreatePlan(&models.Plan{Code: models.PlanMonthly, Name: "Monthly", Price: 1999, DurationDays: 30, IsActive: true}))
	require.NoError(t, store.S.CreatePlan(&models.Plan{Code: "LEGACY", Name: "Legacy", Price: 999, DurationDays: 30, IsActive: false}))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/plans", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data []models.Plan `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, models.PlanMonthly, envelope.Data[0].Code)
}
