package screen

import (
	"context"
	"time"

	"postboard/app/models"
)

// Gateway is the remote data layer the controller drives.
type Gateway interface {
	Query(ctx context.Context, key string) ([]models.Post, error)
	Invalidate(ctx context.Context, key string) error
	CreatePost(ctx context.Context, in models.CreatePostInput) (*models.Post, error)
	RemovePost(ctx context.Context, id string) (string, error)
}

// Notifier shows a blocking confirmation notice.
type Notifier interface {
	Notice(title, message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(title, message string)

func (f NotifierFunc) Notice(title, message string) { f(title, message) }

// NavigationBar toggles the system navigation bar. Only Android has one.
type NavigationBar interface {
	SetVisible(visible bool) error
}

// NavigationBarFunc adapts a function to NavigationBar.
type NavigationBarFunc func(visible bool) error

func (f NavigationBarFunc) SetVisible(visible bool) error { return f(visible) }

// Scheduler yields control for one scheduling tick.
type Scheduler interface {
	Yield(ctx context.Context) error
}

// DefaultFrame is one tick of FrameScheduler.
const DefaultFrame = 16 * time.Millisecond

// FrameScheduler treats one render frame as a tick.
type FrameScheduler struct {
	Frame time.Duration
}

func (s FrameScheduler) Yield(ctx context.Context) error {
	frame := s.Frame
	if frame <= 0 {
		frame = DefaultFrame
	}
	timer := time.NewTimer(frame)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type discardNotifier struct{}

func (discardNotifier) Notice(string, string) {}
