package gateway

import (
	"context"
	"errors"
	"sync"
	"testing"

	"postboard/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProcedures struct {
	mu      sync.Mutex
	posts   []models.Post
	fetches int
	err     error
	created []models.CreatePostInput
	removed []string
}

func (f *fakeProcedures) AllPosts(ctx context.Context) ([]models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Post(nil), f.posts...), nil
}

func (f *fakeProcedures) CreatePost(ctx context.Context, in models.CreatePostInput) (*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, in)
	post := models.Post{ID: "new", Title: in.Title, Content: in.Content}
	f.posts = append([]models.Post{post}, f.posts...)
	return &post, nil
}

func (f *fakeProcedures) RemovePost(ctx context.Context, id string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, id)
	return id, nil
}

func (f *fakeProcedures) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

func newTestGateway(t *testing.T, procs Procedures) *Gateway {
	g, err := New(procs)
	require.NoError(t, err)
	return g
}

func TestGatewayQueryCaches(t *testing.T) {
	procs := &fakeProcedures{posts: []models.Post{{ID: "abc123", Title: "Hello"}}}
	g := newTestGateway(t, procs)
	ctx := context.Background()

	posts, err := g.Query(ctx, KeyPostAll)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "abc123", posts[0].ID)

	_, err = g.Query(ctx, KeyPostAll)
	require.NoError(t, err)
	assert.Equal(t, 1, procs.fetchCount())

	t.Run("results are copies", func(t *testing.T) {
		posts[0].Title = "mutated"
		again, err := g.Query(ctx, KeyPostAll)
		require.NoError(t, err)
		assert.Equal(t, "Hello", again[0].Title)
	})
}

func TestGatewayInvalidate(t *testing.T) {
	procs := &fakeProcedures{posts: []models.Post{{ID: "one"}}}
	g := newTestGateway(t, procs)
	ctx := context.Background()

	t.Run("never queried", func(t *testing.T) {
		require.NoError(t, g.Invalidate(ctx, KeyPostAll))
		assert.Equal(t, 0, procs.fetchCount())
	})

	_, err := g.Query(ctx, KeyPostAll)
	require.NoError(t, err)

	_, err = g.CreatePost(ctx, models.CreatePostInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	t.Run("mutation does not invalidate", func(t *testing.T) {
		cached, stale, ok := g.Cached(KeyPostAll)
		require.True(t, ok)
		assert.False(t, stale)
		assert.Len(t, cached, 1)
	})

	t.Run("invalidate re-fetches", func(t *testing.T) {
		require.NoError(t, g.Invalidate(ctx, KeyPostAll))
		assert.Equal(t, 2, procs.fetchCount())

		cached, stale, ok := g.Cached(KeyPostAll)
		require.True(t, ok)
		assert.False(t, stale)
		require.Len(t, cached, 2)
		assert.Equal(t, "new", cached[0].ID)
	})

	t.Run("failed re-fetch leaves entry stale", func(t *testing.T) {
		boom := errors.New("backend down")
		procs.mu.Lock()
		procs.err = boom
		procs.mu.Unlock()

		err := g.Invalidate(ctx, KeyPostAll)
		assert.ErrorIs(t, err, boom)

		_, stale, ok := g.Cached(KeyPostAll)
		require.True(t, ok)
		assert.True(t, stale)

		_, err = g.Query(ctx, KeyPostAll)
		assert.ErrorIs(t, err, boom)

		procs.mu.Lock()
		procs.err = nil
		procs.mu.Unlock()

		posts, err := g.Query(ctx, KeyPostAll)
		require.NoError(t, err)
		assert.Len(t, posts, 2)
	})
}

func TestGatewayUnknownKey(t *testing.T) {
	g := newTestGateway(t, &fakeProcedures{})
	ctx := context.Background()

	_, err := g.Query(ctx, "post.byId")
	assert.ErrorIs(t, err, ErrUnknownQuery)
	assert.ErrorIs(t, g.Invalidate(ctx, "post.byId"), ErrUnknownQuery)
}

func TestGatewayConcurrentInvalidate(t *testing.T) {
	procs := &fakeProcedures{posts: []models.Post{{ID: "one"}}}
	g := newTestGateway(t, procs)
	ctx := context.Background()

	_, err := g.Query(ctx, KeyPostAll)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Invalidate(ctx, KeyPostAll))
		}()
	}
	wg.Wait()

	// No de-duplication: every invalidation fetches.
	assert.Equal(t, 6, procs.fetchCount())
}

func TestGatewayMutationsForward(t *testing.T) {
	procs := &fakeProcedures{}
	g := newTestGateway(t, procs)
	ctx := context.Background()

	post, err := g.CreatePost(ctx, models.CreatePostInput{})
	require.NoError(t, err)
	assert.Equal(t, "new", post.ID)

	id, err := g.RemovePost(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)

	assert.Equal(t, []models.CreatePostInput{{}}, procs.created)
	assert.Equal(t, []string{"abc123"}, procs.removed)
}

func TestNewRejectsBadCacheSize(t *testing.T) {
	_, err := New(&fakeProcedures{}, WithCacheSize(0))
	assert.Error(t, err)
}
