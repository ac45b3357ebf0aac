// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"go.uber.org/zap"

	"companion/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth       *app.AuthService
	chats      *app.ChatService
	moods      *app.MoodService
	corsOrigin string
	logger     *zap.Logger
}

// New creates a Server wired to the given application services. corsOrigin is
// the origin allowed to call the API from a browser; "*" allows any.
func New(auth *app.AuthService, chats *app.ChatService, moods *app.MoodService, corsOrigin string, logger *zap.Logger) *Server {
	return &Server{auth: auth, chats: chats, moods: moods, corsOrigin: corsOrigin, logger: logger}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	// Public
	mux.HandleFunc("POST /token", s.handleToken)
	mux.HandleFunc("POST /users", s.handleCreateUser)
	mux.HandleFunc("POST /users/anonymous", s.handleCreateAnonymousUser)

	// Protected
	mux.Handle("GET /users/me", s.requireAuth(s.handleMe))
	mux.Handle("POST /chats", s.requireAuth(s.handleCreateChat))
	mux.Handle("GET /chats", s.requireAuth(s.handleListChats))
	mux.Handle("GET /chats/{id}", s.requireAuth(s.handleGetChat))
	mux.Handle("POST /chats/{id}/messages", s.requireAuth(s.handleSendMessage))
	mux.Handle("POST /moods", s.requireAuth(s.handleCreateMood))
	mux.Handle("GET /moods", s.requireAuth(s.handleListMoods))
	mux.Handle("GET /moods/{id}", s.requireAuth(s.handleGetMood))

	return s.loggingMiddleware(s.corsMiddleware(mux))
}
