// Package gateway is the client side data layer: a procedure client and a
// small query cache with manual invalidation in front of it.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"postboard/app/models"
	"postboard/app/rpc"

	lru "github.com/hashicorp/golang-lru/v2"
)

// KeyPostAll is the query key for the post collection.
const KeyPostAll = rpc.PostAll

// DefaultCacheSize bounds the number of cached query results.
const DefaultCacheSize = 16

// ErrUnknownQuery is returned for keys with no registered fetcher.
var ErrUnknownQuery = errors.New("unknown query key")

type entry struct {
	posts []models.Post
	stale bool
	gen   uint64
}

// Gateway caches query results and forwards mutations. Mutations never
// invalidate on their own; callers invalidate the queries they affect.
type Gateway struct {
	procs  Procedures
	logger *slog.Logger

	mu    sync.Mutex
	cache *lru.Cache[string, *entry]
	gen   uint64
}

// Option configures a Gateway.
type Option func(*config)

type config struct {
	cacheSize int
	logger    *slog.Logger
}

// WithCacheSize overrides DefaultCacheSize.
func WithCacheSize(n int) Option {
	return func(c *config) { c.cacheSize = n }
}

// WithLogger sets the gateway logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// New returns a Gateway over procs.
func New(procs Procedures, opts ...Option) (*Gateway, error) {
	cfg := config{cacheSize: DefaultCacheSize, logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cache, err := lru.New[string, *entry](cfg.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create query cache: %w", err)
	}
	return &Gateway{
		procs:  procs,
		logger: cfg.logger,
		cache:  cache,
	}, nil
}

// Query returns the cached result for key, fetching it when missing or stale.
func (g *Gateway) Query(ctx context.Context, key string) ([]models.Post, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}

	g.mu.Lock()
	e, ok := g.cache.Get(key)
	if ok && !e.stale {
		posts := clonePosts(e.posts)
		g.mu.Unlock()
		return posts, nil
	}
	g.mu.Unlock()

	return g.fetch(ctx, key)
}

// Invalidate marks key stale and re-fetches it if it has been queried
// before. It returns once the re-fetch settles. A key that was never
// queried has nothing to refresh.
func (g *Gateway) Invalidate(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	g.mu.Lock()
	e, ok := g.cache.Peek(key)
	if !ok {
		g.mu.Unlock()
		return nil
	}
	e.stale = true
	g.mu.Unlock()

	g.logger.Debug("query invalidated", "key", key)
	_, err := g.fetch(ctx, key)
	return err
}

// Cached reports the cached result for key without fetching.
func (g *Gateway) Cached(key string) (posts []models.Post, stale bool, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.cache.Peek(key)
	if !ok {
		return nil, false, false
	}
	return clonePosts(e.posts), e.stale, true
}

// CreatePost calls post.create.
func (g *Gateway) CreatePost(ctx context.Context, in models.CreatePostInput) (*models.Post, error) {
	return g.procs.CreatePost(ctx, in)
}

// RemovePost calls post.remove.
func (g *Gateway) RemovePost(ctx context.Context, id string) (string, error) {
	return g.procs.RemovePost(ctx, id)
}

func (g *Gateway) fetch(ctx context.Context, key string) ([]models.Post, error) {
	g.mu.Lock()
	g.gen++
	gen := g.gen
	g.mu.Unlock()

	posts, err := g.procs.AllPosts(ctx)
	if err != nil {
		g.logger.Warn("query failed", "key", key, "error", err)
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	// An older fetch finishing late must not overwrite a newer result.
	if current, ok := g.cache.Peek(key); ok && current.gen > gen {
		return clonePosts(current.posts), nil
	}
	g.cache.Add(key, &entry{posts: posts, gen: gen})
	g.logger.Debug("query fetched", "key", key, "count", len(posts))
	return clonePosts(posts), nil
}

func checkKey(key string) error {
	if key != KeyPostAll {
		return fmt.Errorf("%w: %q", ErrUnknownQuery, key)
	}
	return nil
}

func clonePosts(posts []models.Post) []models.Post {
	out := make([]models.Post, len(posts))
	copy(out, posts)
	return out
}
