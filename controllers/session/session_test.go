package sessionController_test

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
	sessionRoutes "elms/routers/sessionRoutes"
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
	sessionRoutes.SetupSessionRoutes(app)
	return app
}

func seedTrainer(t *testing.T, email string) (*models.User, string) {
	t.Helper()
	trainer := &models.User{Name: "Trainer", Email: email, Role: models.RoleTrainer, Password: "x"}
	require.NoError(t, store.S.CreateUser(trainer))
	token, err := middleware.GenerateJWT(trainer.ID, trainer.Name, trainer.Role, trainer.Email)
	require.NoError(t, err)
	return trainer, token
}

func seedCourse(t *testing.T, trainerID uint) *models.Course {
	t.Helper()
	category := &models.Category{Name: "Cat", Slug: "cat"}
	require.NoError(t, store.S.CreateCategory(category))
	course := &models.Course{Title: "Course", CategoryID: category.ID, TrainerID: trainerID,
		MaxStudents: 10, ApprovalStatus: models.ApprovalApproved}
	require.NoError(t, store.S.CreateCourse(course))
	return course
}

func jsonRequest(method, path, token string, payload interface{}) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestCreateSession(t *testing.T) {
	app := newTestApp(t)
	trainer, token := seedTrainer(t, "trainer@example.com")
	course := seedCourse(t, trainer.ID)

	start := time.Now().Add(24 * time.Hour)
	resp, err := app.Test(jsonRequest(http.MethodPost, "/trainer/sessions", token, fiber.Map{
		"courseId": course.ID,
		"date":     start,
		"endDate":  start.Add(2 * time.Hour),
		"zoomLink": "https://zoom.example.com/j/123",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	sessions, err := store.S.GetSessionsByCourse(course.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "https://zoom.example.com/j/123", sessions[0].ZoomLink)
}

func TestCreateSessionEndBeforeStart(t *testing.T) {
	app := newTestApp(t)
	trainer, token := seedTrainer(t, "trainer@example.com")
	course := seedCourse(t, trainer.ID)

	start := time.Now().Add(24 * time.Hour)
	resp, err := app.Test(jsonRequest(http.MethodPost, "/trainer/sessions", token, fiber.Map{
		"courseId": course.ID,
		"date":     start,
		"endDate":  start.Add(-time.Hour),
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCreateSessionOnForeignCourse(t *testing.T) {
	app := newTestApp(t)
	owner, _ := seedTrainer(t, "owner@example.com")
	course := seedCourse(t, owner.ID)
	_, otherToken := seedTrainer(t, "other@example.com")

	start := time.Now().Add(24 * time.Hour)
	resp, err := app.Test(jsonRequest(http.MethodPost, "/trainer/sessions", otherToken, fiber.Map{
		"courseId": course.ID,
		"date":     start,
		"endDate":  start.Add(2 * time.Hour),
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestUpdateSessionRecordingLink(t *testing.T) {
	app := newTestApp(t)
	trainer, token := seedTrainer(t, "trainer@example.com")
	course := seedCourse(t, trainer.ID)

	session := &models.Session{CourseID: course.ID, Date: time.Now().Add(time.Hour), EndDate: time.Now().Add(3 * time.Hour)}
	require.NoError(t, store.S.CreateSession(session))

	resp, err := app.Test(jsonRequest(http.MethodPatch, fmt.Sprintf("/trainer/sessions/%d", session.ID), token, fiber.Map{
		"recordingLink": "https://cdn.example.com/rec/42",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	updated, err := store.S.GetSession(session.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/rec/42", updated.RecordingLink)
}

func TestPublicSessionListing(t *testing.T) {
	app := newTestApp(t)
	trainer, _ := seedTrainer(t, "trainer@example.com")
	course := seedCourse(t, trainer.ID)

	session := &models.Session{CourseID: course.ID, Date: time.Now().Add(time.Hour), EndDate: time.Now().Add(3 * time.Hour)}
	require.NoError(t, store.S.CreateSession(session))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/sessions/?courseId=%d", course.ID), nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data []store.SessionDetails `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, session.ID, envelope.Data[0].ID)
}
