package routes

import (
	"log/slog"
	"net/http"

	"postboard/app/controllers"
	"postboard/app/middleware"
	"postboard/app/rpc"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupRoutes mounts the post procedures backed by db and returns the router.
func SetupRoutes(db *badger.DB, logger *slog.Logger) *mux.Router {
	return SetupRoutesWithController(controllers.NewPostControllerWithDB(db, logger), logger)
}

// SetupRoutesWithController mounts the procedures of postController.
func SetupRoutesWithController(postController *controllers.PostController, logger *slog.Logger) *mux.Router {
	if logger == nil {
		logger = slog.Default()
	}
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer(logger))
	router.Use(middleware.ContentTypeJSON)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rpc.WriteError(w, http.StatusNotFound, rpc.CodeNotFound, "no such procedure: "+r.URL.Path)
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rpc.WriteError(w, http.StatusMethodNotAllowed, rpc.CodeMethodNotAllowed, r.Method+" not allowed on "+r.URL.Path)
	})

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		rpc.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	// Procedures live on the root router so a method mismatch reaches
	// MethodNotAllowedHandler instead of falling through to NotFound.
	router.HandleFunc(rpc.ProcedurePath(rpc.PostAll), postController.All).Methods("GET")
	router.HandleFunc(rpc.ProcedurePath(rpc.PostCreate), postController.Create).Methods("POST")
	router.HandleFunc(rpc.ProcedurePath(rpc.PostRemove), postController.Remove).Methods("POST")

	return router
}
