// Package api provides HTTP handlers for the Zaeon API.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/zaeon-io/zaeon-core/internal/chat"
	"github.com/zaeon-io/zaeon-core/internal/identity"
	"github.com/zaeon-io/zaeon-core/internal/store"
)

// Handler provides common handler utilities and dependencies.
type Handler struct {
	chat       *chat.Service
	workspaces store.WorkspaceRepo
	resolver   *identity.Resolver
	log        *slog.Logger
}

// NewHandler creates a new Handler with common dependencies.
func NewHandler(chatSvc *chat.Service, workspaces store.WorkspaceRepo, resolver *identity.Resolver, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		chat:       chatSvc,
		workspaces: workspaces,
		resolver:   resolver,
		log:        log,
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// ErrorDetails writes a JSON error response with a details field.
func ErrorDetails(w http.ResponseWriter, status int, message, details string) {
	JSON(w, status, map[string]string{"error": message, "details": details})
}
