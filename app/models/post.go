package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() error {
	if p.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		p.ID = id.String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	return nil
}

// Validate checks the create input. Only the backend calls this.
func (in CreatePostInput) Validate() error {
	return validate.Struct(in)
}

// Validate checks the remove input.
func (in RemovePostInput) Validate() error {
	return validate.Struct(in)
}

// NewPost builds an unsaved post from a create input.
func NewPost(in CreatePostInput) *Post {
	return &Post{
		Title:   in.Title,
		Content: in.Content,
	}
}
