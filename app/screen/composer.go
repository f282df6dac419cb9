package screen

import (
	"sync"

	"postboard/app/models"
)

// Composer holds the two fields of the new-post form. Fields are not
// validated here; empty submissions reach the backend as is.
type Composer struct {
	mu      sync.Mutex
	title   string
	content string
}

func (c *Composer) SetTitle(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.title = title
}

func (c *Composer) SetContent(content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.content = content
}

// Input returns the current field values as a create input.
func (c *Composer) Input() models.CreatePostInput {
	c.mu.Lock()
	defer c.mu.Unlock()
	return models.CreatePostInput{Title: c.title, Content: c.content}
}

// Clear empties both fields.
func (c *Composer) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.title = ""
	c.content = ""
}

func (c *Composer) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.title == "" && c.content == ""
}
