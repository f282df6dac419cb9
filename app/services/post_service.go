package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"postboard/app/models"
	"postboard/app/repositories"
)

// DefaultListLimit caps the number of posts post.all returns.
const DefaultListLimit = 50

// ErrInvalidInput wraps validation failures of procedure inputs.
var ErrInvalidInput = errors.New("invalid input")

// PostService handles business logic for posts
type PostService struct {
	postRepo repositories.PostRepository
	logger   *slog.Logger
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, logger *slog.Logger) *PostService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostService{
		postRepo: postRepo,
		logger:   logger,
	}
}

// All returns the newest posts, newest first.
func (s *PostService) All(ctx context.Context) ([]*models.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	posts, err := s.postRepo.List(DefaultListLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// Create validates the input and stores a new post.
func (s *PostService) Create(ctx context.Context, in models.CreatePostInput) (*models.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	post := models.NewPost(in)
	if err := post.BeforeCreate(); err != nil {
		return nil, fmt.Errorf("prepare post: %w", err)
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.logger.Info("post created", "id", post.ID)
	return post, nil
}

// Remove deletes a post and returns its id.
func (s *PostService) Remove(ctx context.Context, id string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := (models.RemovePostInput{ID: id}).Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.postRepo.Delete(id); err != nil {
		return "", fmt.Errorf("remove post %s: %w", id, err)
	}

	s.logger.Info("post removed", "id", id)
	return id, nil
}
