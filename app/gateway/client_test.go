package gateway

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"postboard/app/models"
	"postboard/app/repositories"
	"postboard/app/routes"
	"postboard/app/rpc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T) *httptest.Server {
	db, err := repositories.Open("")
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})
	server := httptest.NewServer(routes.SetupRoutes(db, slog.New(slog.NewTextHandler(io.Discard, nil))))
	t.Cleanup(server.Close)
	return server
}

func TestRPCClientAgainstBackend(t *testing.T) {
	server := setupTestServer(t)
	client := NewRPCClient(server.URL+"/", server.Client())
	ctx := context.Background()

	posts, err := client.AllPosts(ctx)
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)

	created, err := client.CreatePost(ctx, models.CreatePostInput{Title: "Hello", Content: "World"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Hello", created.Title)

	posts, err = client.AllPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, created.ID, posts[0].ID)

	id, err := client.RemovePost(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, id)

	t.Run("remove missing", func(t *testing.T) {
		_, err := client.RemovePost(ctx, created.ID)
		var remote *RemoteError
		require.True(t, errors.As(err, &remote))
		assert.Equal(t, http.StatusNotFound, remote.Status)
		assert.Equal(t, rpc.CodeNotFound, remote.Code)
		assert.Equal(t, rpc.PostRemove, remote.Procedure)
	})

	t.Run("empty input rejected by backend", func(t *testing.T) {
		_, err := client.CreatePost(ctx, models.CreatePostInput{})
		var remote *RemoteError
		require.True(t, errors.As(err, &remote))
		assert.Equal(t, rpc.CodeBadRequest, remote.Code)
	})
}

func TestRPCClientNonEnvelopeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	_, err := NewRPCClient(server.URL, nil).AllPosts(context.Background())
	var remote *RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, http.StatusBadGateway, remote.Status)
	assert.Equal(t, rpc.CodeInternal, remote.Code)
}

func TestRPCClientCanceled(t *testing.T) {
	server := setupTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRPCClient(server.URL, nil).AllPosts(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGatewayOverRPC(t *testing.T) {
	server := setupTestServer(t)
	g := newTestGateway(t, NewRPCClient(server.URL, nil))
	ctx := context.Background()

	posts, err := g.Query(ctx, KeyPostAll)
	require.NoError(t, err)
	assert.Empty(t, posts)

	_, err = g.CreatePost(ctx, models.CreatePostInput{Title: "Hello", Content: "World"})
	require.NoError(t, err)
	require.NoError(t, g.Invalidate(ctx, KeyPostAll))

	posts, err = g.Query(ctx, KeyPostAll)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}
