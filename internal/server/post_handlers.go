package server

import (
	"glimpse/internal/models"
	"glimpse/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/new/post (multipart, with image)
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	username := c.Locals("username").(string)

	file, err := c.FormFile("image")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("an image file is required"))
	}

	imagePath, err := s.saver.Save(file)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:      userID,
		Username:    username,
		DisplayName: formStringPtr(c, "displayName"),
		Avatar:      formStringPtr(c, "avatar"),
		TextContent: c.FormValue("textContent"),
		Image:       &imagePath,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// CreatePostNoImage handles POST /api/new/post/no-image (JSON)
func (s *Server) CreatePostNoImage(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	username := c.Locals("username").(string)

	var req struct {
		TextContent string  `json:"textContent"`
		DisplayName *string `json:"displayName"`
		Avatar      *string `json:"avatar"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:      userID,
		Username:    username,
		DisplayName: req.DisplayName,
		Avatar:      req.Avatar,
		TextContent: req.TextContent,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts handles GET /api/posts, returning the authenticated user's posts
// newest first.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	posts, err := s.postService.ListPosts(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return c.JSON(posts)
}

// DeletePost handles DELETE /api/posts/:postId. The delete is scoped to
// (postId, userId); deleting a non-owned or non-existent post affects zero
// rows and still succeeds.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), userID, postID); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
