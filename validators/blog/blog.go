package blogValidators

import (
	"strconv"
	"strings"

	"elms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// PostIDParam validates the :id path parameter and stores it as
// Locals("postID").
func PostIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Post ID is required!", nil)
		}
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Post ID!", nil)
		}
		c.Locals("postID", id)
		return c.Next()
	}
}

type CreatePostRequest struct {
	Title          string `json:"title" validate:"required,min=3,max=200"`
	Content        string `json:"content" validate:"required"`
	BlogCategoryID uint   `json:"blogCategoryId"`
	CoverImageURL  string `json:"coverImageUrl"`
}

func CreatePost() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreatePostRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = "Invalid value for " + fieldErr.Field() + "!"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("createPostData", reqData)
		return c.Next()
	}
}

type UpdatePostRequest struct {
	Title          string `json:"title" validate:"omitempty,min=3,max=200"`
	Content        string `json:"content"`
	BlogCategoryID uint   `json:"blogCategoryId"`
	CoverImageURL  string `json:"coverImageUrl"`
	Status         string `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
}

func UpdatePost() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdatePostRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = "Invalid value for " + fieldErr.Field() + "!"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("updatePostData", reqData)
		return c.Next()
	}
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

func CreateComment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCommentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"content": "Comment content is required!",
			})
		}

		c.Locals("createCommentData", reqData)
		return c.Next()
	}
}
