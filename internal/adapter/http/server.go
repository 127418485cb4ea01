// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"bloglist/internal/app"
	"bloglist/internal/domain"

	"github.com/gorilla/mux"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth  *app.AuthService
	users *app.UserService
	posts *app.PostService

	// set only when testing routes are enabled
	userRepo domain.UserRepository
	postRepo domain.PostRepository
}

// New creates a Server wired to the given application services.
func New(auth *app.AuthService, users *app.UserService, posts *app.PostService) *Server {
	return &Server{auth: auth, users: users, posts: posts}
}

// WithTestingRoutes registers the database reset route backed by the given
// repositories. Must never be enabled in a production deployment.
func (s *Server) WithTestingRoutes(users domain.UserRepository, posts domain.PostRepository) *Server {
	s.userRepo = users
	s.postRepo = posts
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.withUser)

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}).Methods(http.MethodGet)

	r.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)

	r.HandleFunc("/users", s.handleCreateUser).Methods(http.MethodPost)
	r.HandleFunc("/users", s.handleListUsers).Methods(http.MethodGet)

	r.HandleFunc("/posts", s.handleListPosts).Methods(http.MethodGet)
	r.HandleFunc("/posts", s.handleCreatePost).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id}", s.handleGetPost).Methods(http.MethodGet)
	r.HandleFunc("/posts/{id}", s.handleUpdatePost).Methods(http.MethodPut)
	r.HandleFunc("/posts/{id}", s.handleDeletePost).Methods(http.MethodDelete)
	r.HandleFunc("/posts/{id}/likes", s.handleLikePost).Methods(http.MethodPost)

	if s.userRepo != nil && s.postRepo != nil {
		r.HandleFunc("/testing/reset", s.handleReset).Methods(http.MethodPost)
	}

	return r
}
