package tui

import (
	"strings"

	"postboard/app/models"
)

// rowGap is the fixed number of blank lines between cards.
const rowGap = 1

// postList renders a window of cards that fits in height lines. Cards are
// only rendered while they fit, so long collections cost one screen.
type postList struct {
	cursor int
	offset int
}

func (l *postList) clamp(n int) {
	if n == 0 {
		l.cursor, l.offset = 0, 0
		return
	}
	if l.cursor >= n {
		l.cursor = n - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	if l.offset > l.cursor {
		l.offset = l.cursor
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

func (l *postList) move(delta, n int) {
	l.cursor += delta
	l.clamp(n)
}

// current returns the post under the cursor.
func (l *postList) current(posts []models.Post) (models.Post, bool) {
	if l.cursor < 0 || l.cursor >= len(posts) {
		return models.Post{}, false
	}
	return posts[l.cursor], true
}

// follow scrolls forward just enough for the cursor card to fit in
// height lines. Moving up keeps the window until the cursor leaves it.
func (l *postList) follow(posts []models.Post, selectedID string, width, height int) {
	l.clamp(len(posts))
	if len(posts) == 0 {
		return
	}

	first, used := l.cursor, 0
	for i := l.cursor; i >= l.offset; i-- {
		h := cardHeight(posts[i], i == l.cursor, posts[i].ID == selectedID, width)
		if i < l.cursor {
			h += rowGap
		}
		if used+h > height && i < l.cursor {
			break
		}
		used += h
		first = i
	}
	if l.offset < first {
		l.offset = first
	}
}

// view renders the cards from offset down while they fit. It does not
// scroll; follow does.
func (l postList) view(posts []models.Post, selectedID string, width, height int) string {
	l.clamp(len(posts))
	if len(posts) == 0 {
		return statusStyle.Render("No posts yet")
	}

	var b strings.Builder
	used := 0
	for i := l.offset; i < len(posts); i++ {
		card := renderCard(posts[i], i == l.cursor, posts[i].ID == selectedID, width)
		h := strings.Count(card, "\n") + 1
		if i > l.offset {
			h += rowGap
		}
		if used+h > height && i > l.offset {
			break
		}
		if i > l.offset {
			b.WriteString(strings.Repeat("\n", rowGap+1))
		}
		b.WriteString(card)
		used += h
	}
	return b.String()
}

func cardHeight(p models.Post, cursor, selected bool, width int) int {
	return strings.Count(renderCard(p, cursor, selected, width), "\n") + 1
}
