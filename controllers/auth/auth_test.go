package authController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"elms/config"
	"elms/models"
	authRoutes "elms/routers/authRoutes"
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
	authRoutes.SetupAuthRoutes(app)
	return app
}

func postJSON(path string, payload interface{}) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func signup(t *testing.T, app *fiber.App, email, password string) *http.Response {
	t.Helper()
	resp, err := app.Test(postJSON("/auth/signup", fiber.Map{
		"name":     "Jamie Park",
		"email":    email,
		"password": password,
	}))
	require.NoError(t, err)
	return resp
}

func TestSignup(t *testing.T) {
	app := newTestApp(t)

	resp := signup(t, app, "jamie@example.com", "s3cret-pass")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	user, err := store.S.GetUserByEmail("jamie@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.NotEqual(t, "s3cret-pass", user.Password) // stored hashed
}

func TestSignupDuplicateEmail(t *testing.T) {
	app := newTestApp(t)

	resp := signup(t, app, "jamie@example.com", "s3cret-pass")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = signup(t, app, "jamie@example.com", "another-pass")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSignupValidation(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(postJSON("/auth/signup", fiber.Map{
		"name":     "J",
		"email":    "not-an-email",
		"password": "short",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)

	resp := signup(t, app, "jamie@example.com", "s3cret-pass")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err := app.Test(postJSON("/auth/login", fiber.Map{
		"email":    "jamie@example.com",
		"password": "s3cret-pass",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data struct {
			Token string      `json:"token"`
			User  models.User `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.NotEmpty(t, envelope.Data.Token)
	assert.Equal(t, "jamie@example.com", envelope.Data.User.Email)

	// Login stamps the last seen time
	user, err := store.S.GetUserByEmail("jamie@example.com")
	require.NoError(t, err)
	assert.NotNil(t, user.LastLogin)
}

func TestLoginWrongPassword(t *testing.T) {
	app := newTestApp(t)

	resp := signup(t, app, "jamie@example.com", "s3cret-pass")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err := app.Test(postJSON("/auth/login", fiber.Map{
		"email":    "jamie@example.com",
		"password": "wrong-pass",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPasswordResetFlow(t *testing.T) {
	app := newTestApp(t)

	resp := signup(t, app, "jamie@example.com", "s3cret-pass")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err := app.Test(postJSON("/auth/forgot/password", fiber.Map{"email": "jamie@example.com"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	user, err := store.S.GetUserByEmail("jamie@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, user.ResetToken)

	body, _ := json.Marshal(fiber.Map{"token": user.ResetToken, "newPassword": "brand-new-pass"})
	req := httptest.NewRequest(http.MethodPatch, "/auth/reset/password", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Old password no longer works, new one does
	resp, err = app.Test(postJSON("/auth/login", fiber.Map{"email": "jamie@example.com", "password": "s3cret-pass"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(postJSON("/auth/login", fiber.Map{"email": "jamie@example.com", "password": "brand-new-pass"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestForgotPasswordUnknownEmailDoesNotLeak(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(postJSON("/auth/forgot/password", fiber.Map{"email": "nobody@example.com"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
