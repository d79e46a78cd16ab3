package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/zaeon-io/zaeon-core/internal/identity"
)

// requestTimeout bounds a full request including the model call.
// Sized for dense PDF summarization turns.
const requestTimeout = 60 * time.Second

// Router builds the chi router with the global middleware stack.
func Router(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(requestTimeout))
	r.Use(sessionEmail)

	r.Get("/api/health", h.handleHealth)
	r.Post("/api/chat", h.handleChat)
	r.Post("/api/workspace/save", h.handleWorkspaceSave)
	r.Get("/api/workspace/{owner}", h.handleWorkspaceLoad)

	return r
}

// sessionEmail lifts the verified-email header set by the auth proxy
// onto the request context. Absent header means an unauthenticated
// (guest) request, which is allowed through.
func sessionEmail(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if email := r.Header.Get(identity.EmailHeaderName); email != "" {
			r = r.WithContext(identity.WithEmail(r.Context(), email))
		}
		next.ServeHTTP(w, r)
	})
}
