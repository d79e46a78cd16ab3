package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zaeon-io/zaeon-core/internal/identity"
	"github.com/zaeon-io/zaeon-core/internal/schedule"
	"github.com/zaeon-io/zaeon-core/internal/store"
)

const maxSaveBodyBytes = 8 * 1024 * 1024

type saveRequest struct {
	UserID       string                    `json:"userId,omitempty"`
	Title        string                    `json:"title"`
	Content      string                    `json:"content"`
	Agent        string                    `json:"agent"`
	ChatHistory  []store.TranscriptMessage `json:"chatHistory"`
	TerminalLogs []string                  `json:"terminalLogs"`
	Schedule     []schedule.Entry          `json:"schedule,omitempty"`
}

type workspaceResponse struct {
	Title        string                    `json:"title"`
	Content      string                    `json:"content"`
	Agent        string                    `json:"agent"`
	ChatHistory  []store.TranscriptMessage `json:"chatHistory"`
	TerminalLogs []string                  `json:"terminalLogs"`
	Schedule     []schedule.Entry          `json:"schedule"`
}

func (h *Handler) handleWorkspaceSave(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSaveBodyBytes)

	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ownerID, err := h.resolver.Resolve(r.Context(), identity.EmailFromContext(r.Context()), req.UserID)
	if err != nil {
		if errors.Is(err, identity.ErrUnresolved) {
			Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		h.log.Error("resolve owner", "error", err)
		Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	bundle := &store.WorkspaceBundle{
		OwnerID:    ownerID,
		Title:      req.Title,
		Content:    req.Content,
		Agent:      req.Agent,
		Schedule:   req.Schedule,
		Transcript: req.ChatHistory,
		Logs:       req.TerminalLogs,
	}
	if err := h.workspaces.Upsert(r.Context(), bundle); err != nil {
		h.log.Error("save workspace", "error", err, "owner", ownerID)
		Error(w, http.StatusInternalServerError, "failed to save workspace")
		return
	}

	JSON(w, http.StatusOK, map[string]any{"success": true, "savedFor": ownerID})
}

func (h *Handler) handleWorkspaceLoad(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")
	if owner == "" {
		Error(w, http.StatusBadRequest, "owner is required")
		return
	}

	bundle, err := h.workspaces.Get(r.Context(), owner)
	if err != nil {
		h.log.Error("load workspace", "error", err, "owner", owner)
		Error(w, http.StatusInternalServerError, "failed to load workspace")
		return
	}
	if bundle == nil {
		Error(w, http.StatusNotFound, "workspace not found")
		return
	}

	resp := workspaceResponse{
		Title:        bundle.Title,
		Content:      bundle.Content,
		Agent:        bundle.Agent,
		ChatHistory:  bundle.Transcript,
		TerminalLogs: bundle.Logs,
		Schedule:     bundle.Schedule,
	}
	if resp.ChatHistory == nil {
		resp.ChatHistory = []store.TranscriptMessage{}
	}
	if resp.TerminalLogs == nil {
		resp.TerminalLogs = []string{}
	}
	if resp.Schedule == nil {
		resp.Schedule = []schedule.Entry{}
	}
	JSON(w, http.StatusOK, resp)
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
