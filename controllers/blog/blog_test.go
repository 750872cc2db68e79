package blogController_test

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
	blogRoutes "elms/routers/blogRoutes"
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
	blogRoutes.SetupBlogRoutes(app)
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
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func seedPublishedPost(t *testing.T, authorID uint) *models.BlogPost {
	t.Helper()
	post := &models.BlogPost{Title: "Learning Paths", Content: "body", AuthorID: authorID, Status: models.PostPublished}
	require.NoError(t, store.S.CreateBlogPost(post))
	return post
}

func TestPostLifecycle(t *testing.T) {
	app := newTestApp(t)
	_, token := seedUser(t, "author@example.com", models.RoleTrainer)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/blog/manage/posts", token, fiber.Map{
		"title":   "Why Live Sessions Work",
		"content": "Some thoughts.",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var envelope struct {
		Data models.BlogPost `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	post := envelope.Data
	assert.Equal(t, models.PostDraft, post.Status)

	// Drafts are invisible publicly
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/blog/posts/%d", post.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Publish
	resp, err = app.Test(jsonRequest(http.MethodPatch, fmt.Sprintf("/blog/manage/posts/%d", post.ID), token, fiber.Map{
		"status": "PUBLISHED",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/blog/posts/%d", post.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestOnlyAuthorOrAdminCanEdit(t *testing.T) {
	app := newTestApp(t)
	author, _ := seedUser(t, "author@example.com", models.RoleTrainer)
	_, otherToken := seedUser(t, "other@example.com", models.RoleTrainer)
	post := seedPublishedPost(t, author.ID)

	resp, err := app.Test(jsonRequest(http.MethodPatch, fmt.Sprintf("/blog/manage/posts/%d", post.ID), otherToken, fiber.Map{
		"title": "Hijacked",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCommentModeration(t *testing.T) {
	app := newTestApp(t)
	author, _ := seedUser(t, "author@example.com", models.RoleTrainer)
	commenter, commenterToken := seedUser(t, "reader@example.com", models.RoleStudent)
	_, adminToken := seedUser(t, "admin@example.com", models.RoleAdmin)
	post := seedPublishedPost(t, author.ID)

	resp, err := app.Test(jsonRequest(http.MethodPost, fmt.Sprintf("/blog/posts/%d/comments", post.ID), commenterToken, fiber.Map{
		"content": "Great read!",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Unmoderated comments are hidden from the public view
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/blog/posts/%d", post.ID), nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var view struct {
		Data struct {
			Comments []models.BlogComment `json:"comments"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.Empty(t, view.Data.Comments)

	// Admin sees and approves it
	resp, err = app.Test(jsonRequest(http.MethodGet, fmt.Sprintf("/admin/blog/posts/%d/comments/pending", post.ID), adminToken, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var pending struct {
		Data []models.BlogComment `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pending))
	require.Len(t, pending.Data, 1)

	resp, err = app.Test(jsonRequest(http.MethodPatch, fmt.Sprintf("/admin/blog/comments/%d", pending.Data[0].ID), adminToken, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/blog/posts/%d", post.ID), nil))
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	require.Len(t, view.Data.Comments, 1)
	assert.Equal(t, "Great read!", view.Data.Comments[0].Content)

	unread, err := store.S.CountUnreadNotifications(commenter.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}

func TestRejectCommentRemovesIt(t *testing.T) {
	app := newTestApp(t)
	author, _ := seedUser(t, "author@example.com", models.RoleTrainer)
	_, commenterToken := seedUser(t, "reader@example.com", models.RoleStudent)
	_, adminToken := seedUser(t, "admin@example.com", models.RoleAdmin)
	post := seedPublishedPost(t, author.ID)

	resp, err := app.Test(jsonRequest(http.MethodPost, fmt.Sprintf("/blog/posts/%d/comments", post.ID), commenterToken, fiber.Map{
		"content": "Spam spam spam",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	comments, err := store.S.GetCommentsByPost(post.ID, false)
	require.NoError(t, err)
	require.Len(t, comments, 1)

	resp, err = app.Test(jsonRequest(http.MethodPatch, fmt.Sprintf("/admin/blog/comments/%d?approve=false", comments[0].ID), adminToken, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	comments, err = store.S.GetCommentsByPost(post.ID, false)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestPublicFeedShowsPublishedOnly(t *testing.T) {
	app := newTestApp(t)
	author, _ := seedUser(t, "author@example.com", models.RoleTrainer)

	seedPublishedPost(t, author.ID)
	draft := &models.BlogPost{Title: "Draft", Content: "wip", AuthorID: author.ID, Status: models.PostDraft}
	require.NoError(t, store.S.CreateBlogPost(draft))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/blog/posts", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data struct {
			Items []models.BlogPost `json:"items"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Len(t, envelope.Data.Items, 1)
	assert.Equal(t, "Learning Paths", envelope.Data.Items[0].Title)
}
