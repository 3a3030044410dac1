package service

import (
	"context"

	"glimpse/internal/models"
	"glimpse/internal/repository"
)

const maxTextContentLen = 5000

// PostService implements post creation, listing and deletion.
type PostService struct {
	postRepo repository.PostRepository
}

// CreatePostInput carries a new post. UserID and Username come from the
// verified token, never the request body. DisplayName and Avatar are the
// client-supplied author snapshot, stored as-is.
type CreatePostInput struct {
	UserID      uint
	Username    string
	DisplayName *string
	Avatar      *string
	TextContent string
	Image       *string
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.TextContent == "" {
		return nil, models.NewValidationError("textContent is required")
	}
	if len(in.TextContent) > maxTextContentLen {
		return nil, models.NewValidationError("textContent too long (max 5000 characters)")
	}

	post := &models.Post{
		UserID:      in.UserID,
		Username:    in.Username,
		DisplayName: in.DisplayName,
		Avatar:      in.Avatar,
		TextContent: in.TextContent,
		Image:       in.Image,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns the user's posts, newest first by post ID.
func (s *PostService) ListPosts(ctx context.Context, userID uint) ([]models.Post, error) {
	return s.postRepo.ListByUser(ctx, userID)
}

// DeletePost removes the post if it belongs to the user. Zero rows affected
// is a successful no-op, not a failure.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	_, err := s.postRepo.Delete(ctx, postID, userID)
	return err
}
