// Package screen coordinates the posts screen: selection, pull-to-refresh,
// and the create and delete round trips through the gateway.
package screen

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"postboard/app/gateway"
	"postboard/app/models"
)

// StatusPrompt is shown while no post is selected.
const StatusPrompt = "Press on a post"

// State is the local UI state owned by the controller.
type State struct {
	SelectedPostID string
	Refreshing     bool
	Header         HeaderVariant
}

func (s State) HasSelection() bool {
	return s.SelectedPostID != ""
}

// Controller owns the screen state and drives the gateway.
type Controller struct {
	gw        Gateway
	notifier  Notifier
	navBar    NavigationBar
	platform  Platform
	scheduler Scheduler
	logger    *slog.Logger

	mu    sync.Mutex
	state State
	posts []models.Post
}

// Option configures a Controller.
type Option func(*Controller)

func WithNotifier(n Notifier) Option {
	return func(c *Controller) { c.notifier = n }
}

func WithNavigationBar(nav NavigationBar) Option {
	return func(c *Controller) { c.navBar = nav }
}

func WithPlatform(p Platform) Option {
	return func(c *Controller) { c.platform = p }
}

func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.scheduler = s }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// NewController returns a controller over gw. The platform defaults to
// DetectPlatform.
func NewController(gw Gateway, opts ...Option) *Controller {
	c := &Controller{
		gw:        gw,
		notifier:  discardNotifier{},
		platform:  DetectPlatform(),
		scheduler: FrameScheduler{},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mount resets the screen, applies the platform header and the one-shot
// navigation bar effect, then loads the post collection.
func (c *Controller) Mount(ctx context.Context) error {
	c.mu.Lock()
	c.state = State{Header: HeaderFor(c.platform)}
	c.posts = nil
	c.mu.Unlock()

	c.hideNavigationBar()

	return c.load(ctx)
}

// hideNavigationBar runs once per mount. Failures are logged and dropped.
func (c *Controller) hideNavigationBar() {
	if c.platform != PlatformAndroid || c.navBar == nil {
		return
	}
	if err := c.navBar.SetVisible(false); err != nil {
		c.logger.Debug("hide navigation bar", "error", err)
	}
}

// State returns a snapshot of the screen state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Posts returns the last fetched collection.
func (c *Controller) Posts() []models.Post {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Post, len(c.posts))
	copy(out, c.posts)
	return out
}

// SelectPost marks id as the selected post.
func (c *Controller) SelectPost(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SelectedPostID = id
}

// StatusText describes the current selection.
func (c *Controller) StatusText() string {
	s := c.State()
	if !s.HasSelection() {
		return StatusPrompt
	}
	return fmt.Sprintf("Selected post: %s", s.SelectedPostID)
}

// Refresh invalidates the collection and keeps Refreshing set until the
// re-fetch settles and one more scheduler tick has passed. Overlapping
// calls are not coalesced.
func (c *Controller) Refresh(ctx context.Context) error {
	c.setRefreshing(true)

	err := c.gw.Invalidate(ctx, gateway.KeyPostAll)
	if yieldErr := c.scheduler.Yield(ctx); yieldErr != nil && err == nil {
		err = yieldErr
	}

	c.setRefreshing(false)
	if err != nil {
		return err
	}
	return c.load(ctx)
}

// DeletePost removes a post, invalidates the collection and confirms.
func (c *Controller) DeletePost(ctx context.Context, id string) error {
	if _, err := c.gw.RemovePost(ctx, id); err != nil {
		return err
	}
	if err := c.gw.Invalidate(ctx, gateway.KeyPostAll); err != nil {
		return err
	}
	c.notifier.Notice("Post deleted", "The post has been deleted.")
	return c.load(ctx)
}

// SubmitComposer creates a post from the composer fields, invalidates
// the collection, confirms and clears the composer.
func (c *Controller) SubmitComposer(ctx context.Context, composer *Composer) error {
	post, err := c.gw.CreatePost(ctx, composer.Input())
	if err != nil {
		return err
	}
	if err := c.gw.Invalidate(ctx, gateway.KeyPostAll); err != nil {
		return err
	}
	c.logger.Debug("post created", "id", post.ID)
	c.notifier.Notice("Post created", "Your post has been created.")
	composer.Clear()
	return c.load(ctx)
}

// load reads the collection through the cache and drops a selection
// that no longer exists.
func (c *Controller) load(ctx context.Context) error {
	posts, err := c.gw.Query(ctx, gateway.KeyPostAll)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.posts = posts
	if c.state.HasSelection() && !containsPost(posts, c.state.SelectedPostID) {
		c.logger.Debug("selected post gone, clearing selection", "id", c.state.SelectedPostID)
		c.state.SelectedPostID = ""
	}
	return nil
}

func (c *Controller) setRefreshing(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Refreshing = v
}

func containsPost(posts []models.Post, id string) bool {
	for _, p := range posts {
		if p.ID == id {
			return true
		}
	}
	return false
}
