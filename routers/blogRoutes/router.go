package blogRoutes

import (
	blogController "elms/controllers/blog"
	"elms/middleware"
	"elms/models"
	blogValidators "elms/validators/blog"

	"github.com/gofiber/fiber/v2"
)

func SetupBlogRoutes(app *fiber.App) {
	// Public feed
	blogGroup := app.Group("/blog")
	blogGroup.Get("/posts", blogController.ListPosts)
	blogGroup.Get("/categories", blogController.ListBlogCategories)
	blogGroup.Get("/posts/:id", blogValidators.PostIDParam(), blogController.GetPost)

	// Authoring (trainers and admins)
	authorGroup := app.Group("/blog/manage", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleTrainer, models.RoleAdmin))
	authorGroup.Get("/posts", blogController.MyPosts)
	authorGroup.Post("/posts", blogValidators.CreatePost(), blogController.CreatePost)
	authorGroup.Patch("/posts/:id", blogValidators.PostIDParam(), blogValidators.UpdatePost(), blogController.UpdatePost)
	authorGroup.Delete("/posts/:id", blogValidators.PostIDParam(), blogController.DeletePost)

	// Comments require a login; moderation is admin-only
	commentGroup := app.Group("/blog/posts/:id/comments", middleware.JWTMiddleware)
	commentGroup.Post("/", blogValidators.PostIDParam(), blogValidators.CreateComment(), blogController.CreateComment)

	moderationGroup := app.Group("/admin/blog", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleAdmin))
	moderationGroup.Get("/posts/:id/comments/pending", blogValidators.PostIDParam(), blogController.PendingComments)
	moderationGroup.Patch("/comments/:commentId", blogController.ModerateComment)
	moderationGroup.Post("/categories", blogController.CreateBlogCategory)
}
