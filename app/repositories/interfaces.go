package repositories

import "postboard/app/models"

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id string) (*models.Post, error)
	List(limit, offset int) ([]*models.Post, error)
	Delete(id string) error
}
