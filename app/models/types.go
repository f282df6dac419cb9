package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Post represents a short text post as stored by the backend.
type Post struct {
	ID        string    `json:"id" validate:"required"`
	Title     string    `json:"title" validate:"required,max=256"`
	Content   string    `json:"content" validate:"required"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
}

// CreatePostInput is the payload of the post.create procedure.
type CreatePostInput struct {
	Title   string `json:"title" validate:"required,max=256"`
	Content string `json:"content" validate:"required"`
}

// RemovePostInput is the payload of the post.remove procedure.
type RemovePostInput struct {
	ID string `json:"id" validate:"required"`
}
