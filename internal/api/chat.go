package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/zaeon-io/zaeon-core/internal/chat"
	"github.com/zaeon-io/zaeon-core/internal/identity"
	"github.com/zaeon-io/zaeon-core/internal/llm"
	"github.com/zaeon-io/zaeon-core/internal/schedule"
	"github.com/zaeon-io/zaeon-core/internal/store"
)

// maxAttachmentBytes caps decoded attachment size at 15 MB.
const maxAttachmentBytes = 15 * 1024 * 1024

// maxChatBodyBytes bounds the raw request body: base64 inflates the
// attachment by 4/3, plus headroom for the rest of the payload.
const maxChatBodyBytes = 24 * 1024 * 1024

type chatRequest struct {
	Message       string                    `json:"message"`
	Agent         string                    `json:"agent"`
	UserID        string                    `json:"userId,omitempty"`
	ChatHistory   []store.TranscriptMessage `json:"chatHistory,omitempty"`
	StateSnapshot string                    `json:"stateSnapshot,omitempty"`
	FileData      string                    `json:"fileData,omitempty"` // base64
	MimeType      string                    `json:"mimeType,omitempty"`
}


func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxChatBodyBytes)

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		Error(w, http.StatusBadRequest, "message is required")
		return
	}

	attachment, err := decodeAttachment(req.FileData, req.MimeType)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, errAttachmentTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		Error(w, status, err.Error())
		return
	}

	reply, err := h.chat.Converse(r.Context(), chat.Turn{
		Message:    req.Message,
		Agent:      req.Agent,
		History:    req.ChatHistory,
		Email:      identity.EmailFromContext(r.Context()),
		OwnerHint:  req.UserID,
		Snapshot:   req.StateSnapshot,
		Attachment: attachment,
	})
	if err != nil {
		h.writeChatError(w, r, err)
		return
	}

	if !reply.Mutated {
		JSON(w, http.StatusOK, map[string]string{"text": reply.Text})
		return
	}

	sched := reply.Schedule
	if sched == nil {
		sched = []schedule.Entry{}
	}
	JSON(w, http.StatusOK, map[string]any{"text": reply.Text, "schedule": sched})
}

func (h *Handler) writeChatError(w http.ResponseWriter, r *http.Request, err error) {
	// Client gone: nothing to write, nothing to log loudly.
	if errors.Is(err, context.Canceled) {
		return
	}

	var (
		empty    *llm.ErrEmptyResponse
		unavail  *llm.ErrProviderUnavailable
		rateLim  *llm.ErrRateLimit
		deadline = errors.Is(err, context.DeadlineExceeded)
	)

	switch {
	case errors.As(err, &empty):
		h.log.Error("empty model response", "error", err)
		ErrorDetails(w, http.StatusBadGateway, "model returned no content", err.Error())
	case errors.As(err, &rateLim):
		ErrorDetails(w, http.StatusTooManyRequests, "model provider rate limited", err.Error())
	case errors.As(err, &unavail) || deadline:
		ErrorDetails(w, http.StatusBadGateway, "model provider unavailable", err.Error())
	default:
		h.log.Error("chat turn failed", "error", err, "path", r.URL.Path)
		ErrorDetails(w, http.StatusInternalServerError, "internal error", err.Error())
	}
}

var errAttachmentTooLarge = errors.New("attachment exceeds the 15 MB limit")

// decodeAttachment decodes an optional inline base64 attachment,
// enforcing the size cap on the decoded bytes.
func decodeAttachment(fileData, mimeType string) (*llm.Attachment, error) {
	if fileData == "" {
		return nil, nil
	}

	data, err := base64.StdEncoding.DecodeString(fileData)
	if err != nil {
		return nil, errors.New("fileData is not valid base64")
	}
	if len(data) > maxAttachmentBytes {
		return nil, errAttachmentTooLarge
	}
	if mimeType == "" {
		mimeType = "application/pdf"
	}
	return &llm.Attachment{Data: data, MediaType: mimeType}, nil
}
