package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"postboard/app/models"
	"postboard/app/repositories"
	"postboard/app/rpc"
	"postboard/app/services"

	"github.com/dgraph-io/badger/v4"
)

// maxBodyBytes bounds procedure input bodies.
const maxBodyBytes = 1 << 20

// PostController serves the post.* procedures
type PostController struct {
	postService *services.PostService
	logger      *slog.Logger
}

// SetService sets the post service for testing
func (pc *PostController) SetService(service *services.PostService) {
	pc.postService = service
}

// NewPostController creates a new PostController around a service
func NewPostController(service *services.PostService, logger *slog.Logger) *PostController {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostController{
		postService: service,
		logger:      logger,
	}
}

// NewPostControllerWithDB creates a new PostController with a DB instance
func NewPostControllerWithDB(db *badger.DB, logger *slog.Logger) *PostController {
	postRepo := repositories.NewBadgerPostRepository(db)
	return NewPostController(services.NewPostService(postRepo, logger), logger)
}

// All handles post.all
func (pc *PostController) All(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.All(r.Context())
	if err != nil {
		pc.sendServiceError(w, r, err)
		return
	}
	pc.sendJSON(w, http.StatusOK, rpc.NewResult(posts))
}

// Create handles post.create
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CreatePostInput
	if err := decodeInput(w, r, &in); err != nil {
		pc.sendError(w, http.StatusBadRequest, rpc.CodeBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	post, err := pc.postService.Create(r.Context(), in)
	if err != nil {
		pc.sendServiceError(w, r, err)
		return
	}
	pc.sendJSON(w, http.StatusOK, rpc.NewResult(post))
}

// Remove handles post.remove
func (pc *PostController) Remove(w http.ResponseWriter, r *http.Request) {
	var in models.RemovePostInput
	if err := decodeInput(w, r, &in); err != nil {
		pc.sendError(w, http.StatusBadRequest, rpc.CodeBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	id, err := pc.postService.Remove(r.Context(), in.ID)
	if err != nil {
		pc.sendServiceError(w, r, err)
		return
	}
	pc.sendJSON(w, http.StatusOK, rpc.NewResult(id))
}

func decodeInput(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// Helper methods for consistent response handling

func (pc *PostController) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	rpc.WriteJSON(w, status, data)
}

func (pc *PostController) sendError(w http.ResponseWriter, status int, code, message string) {
	rpc.WriteError(w, status, code, message)
}

func (pc *PostController) sendServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		pc.sendError(w, http.StatusBadRequest, rpc.CodeBadRequest, err.Error())
	case errors.Is(err, repositories.ErrNotFound):
		pc.sendError(w, http.StatusNotFound, rpc.CodeNotFound, err.Error())
	default:
		pc.logger.Error("procedure failed", "path", r.URL.Path, "error", err)
		pc.sendError(w, http.StatusInternalServerError, rpc.CodeInternal, "internal error")
	}
}
