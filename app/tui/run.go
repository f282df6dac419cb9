package tui

import (
	"context"
	"fmt"
	"log/slog"

	"postboard/app/screen"

	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the terminal screen.
type Options struct {
	Platform screen.Platform
	Logger   *slog.Logger
}

// NewScreen builds the controller and its terminal model over gw.
func NewScreen(ctx context.Context, gw screen.Gateway, opts Options) (Model, *screen.Controller) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	notices := &noticeQueue{}
	bar := &helpBar{}
	ctrl := screen.NewController(gw,
		screen.WithNotifier(notices),
		screen.WithNavigationBar(bar),
		screen.WithPlatform(opts.Platform),
		screen.WithScheduler(screen.FrameScheduler{}),
		screen.WithLogger(logger),
	)
	return newModel(ctx, ctrl, notices, bar), ctrl
}

// Run shows the posts screen until the user quits or ctx ends.
func Run(ctx context.Context, gw screen.Gateway, opts Options) error {
	model, _ := NewScreen(ctx, gw, opts)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run screen: %w", err)
	}
	return nil
}
