// Package tui renders the posts screen in a terminal with bubbletea.
package tui

import (
	"context"
	"strings"

	"postboard/app/screen"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type focus int

const (
	focusList focus = iota
	focusTitle
	focusContent
)

type op int

const (
	opMount op = iota
	opRefresh
	opDelete
	opCreate
)

// opDoneMsg reports a finished controller call.
type opDoneMsg struct {
	op  op
	err error
}

// composerHeight is the number of lines the composer block takes.
const composerHeight = 5

// Model is the bubbletea model of the posts screen.
type Model struct {
	ctx      context.Context
	ctrl     *screen.Controller
	composer *screen.Composer
	notices  *noticeQueue
	bar      *helpBar

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	title   textinput.Model
	content textinput.Model
	list    postList

	focus    focus
	creating bool
	shown    []notice
	err      error
	width    int
	height   int
}

// newModel wires a controller into a terminal model. notices and bar must
// be the collaborators the controller was built with.
func newModel(ctx context.Context, ctrl *screen.Controller, notices *noticeQueue, bar *helpBar) Model {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 256

	content := textinput.New()
	content.Placeholder = "Content"

	return Model{
		ctx:      ctx,
		ctrl:     ctrl,
		composer: &screen.Composer{},
		notices:  notices,
		bar:      bar,
		keys:     defaultKeyMap(),
		help:     help.New(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		title:    title,
		content:  content,
		width:    80,
		height:   24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run(opMount, m.ctrl.Mount))
}

func (m Model) run(o op, fn func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{op: o, err: fn(ctx)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	posts := next.ctrl.Posts()
	state := next.ctrl.State()
	next.list.follow(posts, state.SelectedPostID, next.width, next.listHeight(state))
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case opDoneMsg:
		m.err = msg.err
		m.shown = append(m.shown, m.notices.drain()...)
		if msg.op == opCreate {
			m.creating = false
			if msg.err == nil {
				m.title.SetValue("")
				m.content.SetValue("")
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Notices block the screen until acknowledged.
	if len(m.shown) > 0 {
		if key.Matches(msg, m.keys.Dismiss) {
			m.shown = m.shown[1:]
		}
		return m, nil
	}

	if m.focus != focusList {
		return m.handleComposerKey(msg)
	}

	posts := m.ctrl.Posts()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.list.move(-1, len(posts))
	case key.Matches(msg, m.keys.Down):
		m.list.move(1, len(posts))
	case key.Matches(msg, m.keys.Select):
		if post, ok := m.list.current(posts); ok {
			m.ctrl.SelectPost(post.ID)
		}
	case key.Matches(msg, m.keys.Delete):
		if post, ok := m.list.current(posts); ok {
			id := post.ID
			return m, m.run(opDelete, func(ctx context.Context) error {
				return m.ctrl.DeletePost(ctx, id)
			})
		}
	case key.Matches(msg, m.keys.Refresh):
		return m, m.run(opRefresh, m.ctrl.Refresh)
	case key.Matches(msg, m.keys.Compose):
		m.focus = focusTitle
		return m, m.title.Focus()
	}
	return m, nil
}

func (m Model) handleComposerKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.focus = focusList
		m.title.Blur()
		m.content.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Compose):
		if m.focus == focusTitle {
			m.focus = focusContent
			m.title.Blur()
			return m, m.content.Focus()
		}
		m.focus = focusList
		m.content.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		if m.creating {
			return m, nil
		}
		m.creating = true
		composer := m.composer
		return m, m.run(opCreate, func(ctx context.Context) error {
			return m.ctrl.SubmitComposer(ctx, composer)
		})
	}

	// The fields are frozen until the in-flight create settles.
	if m.creating {
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == focusTitle {
		m.title, cmd = m.title.Update(msg)
		m.composer.SetTitle(m.title.Value())
	} else {
		m.content, cmd = m.content.Update(msg)
		m.composer.SetContent(m.content.Value())
	}
	return m, cmd
}

func (m Model) View() string {
	if len(m.shown) > 0 {
		n := m.shown[0]
		box := noticeStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
			titleStyle.Render(n.title),
			n.message,
			"",
			statusStyle.Render("enter ok"),
		))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}

	state := m.ctrl.State()
	var sections []string

	if state.Header == screen.HeaderAndroidPadded {
		sections = append(sections, "")
	}
	header := titleStyle.Render("Posts")
	if state.Refreshing {
		header += " " + m.spinner.View() + statusStyle.Render(" refreshing")
	}
	sections = append(sections, header, statusStyle.Render(m.ctrl.StatusText()))

	footer := ""
	if m.bar.visible() {
		footer = m.help.View(m.keys)
	}
	errLine := ""
	if m.err != nil {
		errLine = errorStyle.Render("error: " + m.err.Error())
	}

	sections = append(sections, "", m.list.view(m.ctrl.Posts(), state.SelectedPostID, m.width, m.listHeight(state)), "")
	sections = append(sections, m.composerView())
	if errLine != "" {
		sections = append(sections, errLine)
	}
	if footer != "" {
		sections = append(sections, footer)
	}
	return strings.Join(sections, "\n")
}

// listHeight is what is left for the cards once the header, status line,
// composer, error line and footer are laid out.
func (m Model) listHeight(state screen.State) int {
	used := 2 + composerHeight + 2
	if state.Header == screen.HeaderAndroidPadded {
		used++
	}
	if m.bar.visible() {
		used++
	}
	if m.err != nil {
		used++
	}
	if h := m.height - used; h > 3 {
		return h
	}
	return 3
}

func (m Model) composerView() string {
	hint := "ctrl+s create"
	if m.creating {
		hint = "creating..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		inputLabelStyle.Render("New post"),
		m.title.View(),
		m.content.View(),
		statusStyle.Render(hint),
	)
}
