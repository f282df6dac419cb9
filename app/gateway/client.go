package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"postboard/app/models"
	"postboard/app/rpc"
)

// Procedures is the remote procedure surface the screen consumes.
type Procedures interface {
	AllPosts(ctx context.Context) ([]models.Post, error)
	CreatePost(ctx context.Context, in models.CreatePostInput) (*models.Post, error)
	RemovePost(ctx context.Context, id string) (string, error)
}

// RemoteError is a failure reported by the backend.
type RemoteError struct {
	Procedure string
	Status    int
	Code      string
	Message   string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %s (%d): %s", e.Procedure, e.Code, e.Status, e.Message)
}

// RPCClient calls the backend procedures over HTTP/JSON.
type RPCClient struct {
	Base string
	HTTP *http.Client
}

var _ Procedures = (*RPCClient)(nil)

// NewRPCClient returns a client for the backend at base, e.g. http://127.0.0.1:8080.
func NewRPCClient(base string, httpClient *http.Client) *RPCClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &RPCClient{
		Base: strings.TrimRight(base, "/"),
		HTTP: httpClient,
	}
}

func (c *RPCClient) AllPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := call[[]models.Post](ctx, c, http.MethodGet, rpc.PostAll, nil)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

func (c *RPCClient) CreatePost(ctx context.Context, in models.CreatePostInput) (*models.Post, error) {
	post, err := call[models.Post](ctx, c, http.MethodPost, rpc.PostCreate, in)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *RPCClient) RemovePost(ctx context.Context, id string) (string, error) {
	return call[string](ctx, c, http.MethodPost, rpc.PostRemove, models.RemovePostInput{ID: id})
}

func call[T any](ctx context.Context, c *RPCClient, method, procedure string, input interface{}) (T, error) {
	var zero T

	var body io.Reader
	if input != nil {
		b, err := json.Marshal(input)
		if err != nil {
			return zero, fmt.Errorf("%s: encode input: %w", procedure, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.Base+rpc.ProcedurePath(procedure), body)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", procedure, err)
	}
	req.Header.Set("Accept", "application/json")
	if input != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", procedure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		remote := &RemoteError{Procedure: procedure, Status: resp.StatusCode, Code: rpc.CodeInternal, Message: resp.Status}
		var envelope rpc.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error.Code != "" {
			remote.Code = envelope.Error.Code
			remote.Message = envelope.Error.Message
		}
		return zero, remote
	}

	var result rpc.Result[T]
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return zero, fmt.Errorf("%s: decode result: %w", procedure, err)
	}
	return result.Result.Data, nil
}
