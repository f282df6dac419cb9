package tui

import (
	"postboard/app/models"

	"github.com/charmbracelet/lipgloss"
)

// renderCard draws one post. The cursor card gets the accent border and
// the delete hint.
func renderCard(post models.Post, cursor, selected bool, width int) string {
	title := post.Title
	if selected {
		title = "● " + title
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(title),
		post.Content,
	)
	if cursor {
		body = lipgloss.JoinVertical(lipgloss.Left, body, deleteHintStyle.Render("d delete"))
	}

	style := cardStyle
	if cursor {
		style = cardCursorStyle
	}
	if width > 4 {
		style = style.Width(width - 2)
	}
	return style.Render(body)
}
