package tui

import (
	"sync"
	"sync/atomic"
)

type notice struct {
	title   string
	message string
}

// noticeQueue collects notices raised by the controller from command
// goroutines until the model shows them.
type noticeQueue struct {
	mu      sync.Mutex
	pending []notice
}

func (q *noticeQueue) Notice(title, message string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, notice{title: title, message: message})
}

func (q *noticeQueue) drain() []notice {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}

// helpBar is the terminal's stand-in for the system navigation bar: the
// key help footer.
type helpBar struct {
	hidden atomic.Bool
}

func (b *helpBar) SetVisible(visible bool) error {
	b.hidden.Store(!visible)
	return nil
}

func (b *helpBar) visible() bool {
	return !b.hidden.Load()
}
