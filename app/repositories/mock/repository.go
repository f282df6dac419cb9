package mock

import (
	"errors"
	"sync"

	"postboard/app/models"
	"postboard/app/repositories"
)

// PostRepository is an in-memory repositories.PostRepository. List
// returns posts newest first, matching the Badger implementation.
type PostRepository struct {
	posts map[string]*models.Post
	order []string
	mutex sync.RWMutex
}

var _ repositories.PostRepository = (*PostRepository)(nil)

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts: make(map[string]*models.Post),
	}
}

func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.posts = make(map[string]*models.Post)
	m.order = nil
}

func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if post.ID == "" {
		return errors.New("post id is required")
	}
	if _, exists := m.posts[post.ID]; !exists {
		m.order = append(m.order, post.ID)
	}
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) GetByID(id string) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (m *PostRepository) Delete(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *PostRepository) List(limit, offset int) ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	posts := []*models.Post{}
	count := 0
	for i := len(m.order) - 1; i >= 0; i-- {
		if count >= offset && len(posts) < limit {
			posts = append(posts, m.posts[m.order[i]])
		}
		count++
	}
	return posts, nil
}
