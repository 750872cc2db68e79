package blogController

import (
	"log"
	"strconv"

	"elms/middleware"
	"elms/models"
	"elms/store"
	"elms/utils"
	blogValidators "elms/validators/blog"

	"github.com/gofiber/fiber/v2"
)

// ListPosts is the public feed: published posts only.
func ListPosts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	categoryID := uint(c.QueryInt("categoryId", 0))

	posts, total, err := store.S.GetAllBlogPosts(models.PostPublished, categoryID, 0, page, limit)
	if err != nil {
		log.Printf("Error fetching posts: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch posts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Posts fetched successfully.", fiber.Map{
		"items": posts,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetPost returns one published post with its approved comments.
func GetPost(c *fiber.Ctx) error {
	postID := uint(c.Locals("postID").(int))

	post, err := store.S.GetBlogPost(postID)
	if err != nil || post.Status != models.PostPublished {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	comments, err := store.S.GetCommentsByPost(postID, true)
	if err != nil {
		log.Printf("Error fetching comments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post fetched successfully.", fiber.Map{
		"post":     post,
		"comments": comments,
	})
}

// CreatePost drafts a post for the session trainer or admin.
func CreatePost(c *fiber.Ctx) error {
	reqData := c.Locals("createPostData").(*blogValidators.CreatePostRequest)

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	post := models.BlogPost{
		Title:         reqData.Title,
		Content:       reqData.Content,
		AuthorID:      user.ID,
		Status:        models.PostDraft,
		CoverImageURL: reqData.CoverImageURL,
	}
	if reqData.BlogCategoryID != 0 {
		if _, err := store.S.GetBlogCategory(reqData.BlogCategoryID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Blog category not found!", nil)
		}
		post.BlogCategoryID = &reqData.BlogCategoryID
	}

	if err := store.S.CreateBlogPost(&post); err != nil {
		log.Printf("Error creating post: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Post created successfully.", post)
}

// UpdatePost edits or publishes a post owned by the session user (admins may
// edit any post).
func UpdatePost(c *fiber.Ctx) error {
	postID := uint(c.Locals("postID").(int))
	reqData := c.Locals("updatePostData").(*blogValidators.UpdatePostRequest)

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	post, err := store.S.GetBlogPost(postID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	if user.Role != models.RoleAdmin && post.AuthorID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	if reqData.Title != "" {
		post.Title = reqData.Title
	}
	if reqData.Content != "" {
		post.Content = reqData.Content
	}
	if reqData.BlogCategoryID != 0 {
		if _, err := store.S.GetBlogCategory(reqData.BlogCategoryID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Blog category not found!", nil)
		}
		post.BlogCategoryID = &reqData.BlogCategoryID
	}
	if reqData.CoverImageURL != "" {
		post.CoverImageURL = reqData.CoverImageURL
	}
	if reqData.Status != "" {
		post.Status = reqData.Status
	}

	if err := store.S.UpdateBlogPost(post); err != nil {
		log.Printf("Error updating post: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post updated successfully.", post)
}

func DeletePost(c *fiber.Ctx) error {
	postID := uint(c.Locals("postID").(int))

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	post, err := store.S.GetBlogPost(postID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	if user.Role != models.RoleAdmin && post.AuthorID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	if err := store.S.DeleteBlogPost(postID); err != nil {
		log.Printf("Error deleting post: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post deleted successfully.", nil)
}

// CreateComment submits a comment on a published post. Comments await
// moderation before they show publicly.
func CreateComment(c *fiber.Ctx) error {
	postID := uint(c.Locals("postID").(int))
	reqData := c.Locals("createCommentData").(*blogValidators.CreateCommentRequest)

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	post, err := store.S.GetBlogPost(postID)
	if err != nil || post.Status != models.PostPublished {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	comment := models.BlogComment{
		PostID:  postID,
		UserID:  user.ID,
		Content: reqData.Content,
	}
	if err := store.S.CreateBlogComment(&comment); err != nil {
		log.Printf("Error creating comment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create comment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Comment submitted for moderation.", comment)
}

// ModerateComment approves or removes a pending comment.
func ModerateComment(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("commentId"))
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Comment ID!", nil)
	}

	comment, err := store.S.GetBlogComment(uint(id))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Comment not found!", nil)
	}

	approve := c.Query("approve", "true") != "false"
	if !approve {
		if err := store.S.DeleteBlogComment(comment.ID); err != nil {
			log.Printf("Error deleting comment: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to moderate comment!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment removed.", nil)
	}

	comment.IsApproved = true
	if err := store.S.UpdateBlogComment(comment); err != nil {
		log.Printf("Error approving comment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to moderate comment!", nil)
	}

	if err := utils.Notify(store.S, comment.UserID, models.NotificationBlog,
		"Your comment was approved.",
		map[string]interface{}{"postId": comment.PostID, "commentId": comment.ID}); err != nil {
		log.Printf("Error creating notification: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment approved.", comment)
}

// ListBlogCategories is public reference data for the blog filters.
func ListBlogCategories(c *fiber.Ctx) error {
	categories, err := store.S.GetAllBlogCategories()
	if err != nil {
		log.Printf("Error fetching blog categories: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch blog categories!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Blog categories fetched successfully.", categories)
}

func CreateBlogCategory(c *fiber.Ctx) error {
	reqData := new(struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.Name == "" || reqData.Slug == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Name and slug are required!", nil)
	}

	category := models.BlogCategory{Name: reqData.Name, Slug: reqData.Slug}
	if err := store.S.CreateBlogCategory(&category); err != nil {
		log.Printf("Error creating blog category: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create blog category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Blog category created successfully.", category)
}

// MyPosts lists the author's own posts in every state.
func MyPosts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	posts, total, err := store.S.GetAllBlogPosts("", 0, user.ID, page, limit)
	if err != nil {
		log.Printf("Error fetching posts: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch posts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Posts fetched successfully.", fiber.Map{
		"items": posts,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// PendingComments lists unmoderated comments on a post for review.
func PendingComments(c *fiber.Ctx) error {
	postID := uint(c.Locals("postID").(int))

	if _, err := store.S.GetBlogPost(postID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	comments, err := store.S.GetCommentsByPost(postID, false)
	if err != nil {
		log.Printf("Error fetching comments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch comments!", nil)
	}

	pending := make([]models.BlogComment, 0, len(comments))
	for _, cm := range comments {
		if !cm.IsApproved {
			pending = append(pending, cm)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comments fetched successfully.", pending)
}
