package store

import (
	"context"
	"time"

	"github.com/zaeon-io/zaeon-core/internal/schedule"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // filter by purpose label ("" = all)
}

// TranscriptMessage is one turn of a saved chat transcript.
type TranscriptMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// WorkspaceBundle is the full saved state for one owner: the weekly
// schedule, the active document, the selected agent, the chat
// transcript and the terminal log. Saves replace the whole bundle.
type WorkspaceBundle struct {
	OwnerID    string
	Title      string
	Content    string
	Agent      string
	Schedule   []schedule.Entry
	Transcript []TranscriptMessage
	Logs       []string
	UpdatedAt  time.Time
}

// WorkspaceRepo manages per-owner workspace bundles.
type WorkspaceRepo interface {
	// Upsert stores the bundle, replacing any existing bundle for the
	// same owner. Saving twice with identical content is idempotent.
	Upsert(ctx context.Context, b *WorkspaceBundle) error

	// Get returns the bundle for ownerID, or nil if none exists.
	Get(ctx context.Context, ownerID string) (*WorkspaceBundle, error)
}

// AccountRepo looks up registered user accounts.
type AccountRepo interface {
	// FindIDByEmail returns the account ID for email, or "" if no
	// account with that email exists.
	FindIDByEmail(ctx context.Context, email string) (string, error)

	// Create registers a new account and returns its ID.
	Create(ctx context.Context, email, name string) (string, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates token usage for one purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model ID.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events matching opts, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns the event with the given ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates usage grouped by model ID.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
