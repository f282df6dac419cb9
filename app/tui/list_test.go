package tui

import (
	"fmt"
	"strings"
	"testing"

	"postboard/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manyPosts(n int) []models.Post {
	posts := make([]models.Post, n)
	for i := range posts {
		posts[i] = models.Post{ID: fmt.Sprintf("id-%02d", i), Title: fmt.Sprintf("Post %02d", i), Content: "body"}
	}
	return posts
}

func TestPostListWindow(t *testing.T) {
	posts := manyPosts(50)
	var l postList

	view := l.view(posts, "", 40, 12)
	assert.Contains(t, view, "Post 00")
	assert.NotContains(t, view, "Post 10")
	assert.LessOrEqual(t, strings.Count(view, "\n")+1, 12)

	t.Run("cursor stays visible", func(t *testing.T) {
		l.move(20, len(posts))
		l.follow(posts, "", 40, 12)
		view := l.view(posts, "", 40, 12)
		assert.Contains(t, view, "Post 20")
		assert.NotContains(t, view, "Post 00")
		assert.Equal(t, 19, l.offset)
	})

	t.Run("clamped to bounds", func(t *testing.T) {
		l.move(100, len(posts))
		assert.Equal(t, 49, l.cursor)
		l.move(-100, len(posts))
		assert.Equal(t, 0, l.cursor)
	})
}

func TestPostListEmpty(t *testing.T) {
	var l postList
	assert.Contains(t, l.view(nil, "", 40, 10), "No posts yet")
	_, ok := l.current(nil)
	assert.False(t, ok)
}

func TestRenderCardMarksSelection(t *testing.T) {
	post := models.Post{ID: "abc123", Title: "Hello", Content: "World"}
	assert.Contains(t, renderCard(post, false, true, 40), "● Hello")
	assert.NotContains(t, renderCard(post, false, false, 40), "●")
	assert.Contains(t, renderCard(post, true, false, 40), "d delete")
}

func TestPostListScrollHoldsWindow(t *testing.T) {
	posts := manyPosts(50)
	l := postList{}
	step := func(delta int) {
		l.move(delta, len(posts))
		l.follow(posts, "", 40, 12)
	}

	step(20)
	require.Equal(t, 19, l.offset)

	// Moving within the window does not scroll it.
	step(-1)
	assert.Equal(t, 19, l.offset)
	assert.Equal(t, 19, l.cursor)
	step(1)
	assert.Equal(t, 19, l.offset)

	// Leaving it at the bottom scrolls by one card.
	step(1)
	assert.Equal(t, 20, l.offset)

	// Leaving it at the top pulls the window up to the cursor.
	step(-3)
	assert.Equal(t, 18, l.offset)
	assert.Equal(t, 18, l.cursor)

	// Rendering never moves the window.
	before := l
	_ = l.view(posts, "", 40, 12)
	assert.Equal(t, before, l)
}
