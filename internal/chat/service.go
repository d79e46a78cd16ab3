// Package chat orchestrates a single conversation turn: prompt assembly,
// model invocation, response interpretation and schedule reconciliation.
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/zaeon-io/zaeon-core/internal/identity"
	"github.com/zaeon-io/zaeon-core/internal/llm"
	"github.com/zaeon-io/zaeon-core/internal/persona"
	"github.com/zaeon-io/zaeon-core/internal/prompt"
	"github.com/zaeon-io/zaeon-core/internal/schedule"
	"github.com/zaeon-io/zaeon-core/internal/store"
)

// scheduleAck is returned in place of raw mutation JSON, which is a wire
// artifact and never user-facing.
const scheduleAck = "Done. I've updated your schedule."

const defaultMaxTokens = 4096

// Turn is one user request to the conversation service.
type Turn struct {
	Message    string
	Agent      string
	History    []store.TranscriptMessage
	Email      string // verified session email, "" for guests
	OwnerHint  string // caller-supplied owner ID, "" when absent
	Snapshot   string // client state context forwarded into the prompt
	Attachment *llm.Attachment
}

// Reply is the outcome of one turn.
type Reply struct {
	Text     string
	Schedule []schedule.Entry // set when a mutation was applied
	Mutated  bool
}

// Service wires the conversation pipeline together.
type Service struct {
	registry   *persona.Registry
	prompts    *prompt.Assembler
	provider   llm.Provider
	workspaces store.WorkspaceRepo
	resolver   *identity.Resolver
	log        *slog.Logger
}

// NewService creates a conversation service.
func NewService(registry *persona.Registry, provider llm.Provider, workspaces store.WorkspaceRepo, resolver *identity.Resolver, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		registry:   registry,
		prompts:    prompt.New(registry),
		provider:   provider,
		workspaces: workspaces,
		resolver:   resolver,
		log:        log,
	}
}

// Converse runs one conversation turn. Schedule mutations are applied to
// the owner's stored schedule and persisted; guests get the mutation
// applied to the in-memory seed without persistence.
func (s *Service) Converse(ctx context.Context, turn Turn) (*Reply, error) {
	ownerID, err := s.resolver.Resolve(ctx, turn.Email, turn.OwnerHint)
	if err != nil && !errors.Is(err, identity.ErrUnresolved) {
		return nil, fmt.Errorf("resolve owner: %w", err)
	}

	current, bundle, err := s.currentSchedule(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	p := s.registry.Lookup(turn.Agent)
	snapshot := turn.Snapshot
	if p.ScheduleAgent {
		snapshot = joinSnapshot(snapshot, scheduleSnapshot(current))
	}

	assembled := s.prompts.Assemble(turn.Agent, snapshot)

	purpose := "chat"
	if assembled.MutationCapable {
		purpose = "schedule"
	}
	ctx = llm.WithPurpose(ctx, purpose)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:     assembled.System,
		Messages:   buildMessages(turn),
		Attachment: turn.Attachment,
		MaxTokens:  defaultMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	interp := schedule.Interpret(resp.Text(), assembled.MutationCapable)

	switch interp.Outcome {
	case schedule.OutcomeConversational:
		return &Reply{Text: interp.Text}, nil

	case schedule.OutcomeUnparsable:
		// Entry-shaped output that validated to nothing: degrade to a
		// conversational reply rather than failing the turn.
		s.log.Warn("unparsable schedule mutation",
			"agent", assembled.Persona.Key,
			"model", resp.Model)
		return &Reply{Text: interp.Text}, nil

	case schedule.OutcomeMutation:
		updated := s.applyMutation(current, interp.Mutation)
		if ownerID != "" {
			if err := s.persistSchedule(ctx, ownerID, bundle, updated, turn.Agent); err != nil {
				return nil, err
			}
		}
		return &Reply{Text: scheduleAck, Schedule: updated, Mutated: true}, nil

	default:
		return nil, fmt.Errorf("unknown interpretation outcome %q", interp.Outcome)
	}
}

// currentSchedule loads the owner's stored schedule, falling back to the
// seed timetable for first-time owners and guests.
func (s *Service) currentSchedule(ctx context.Context, ownerID string) ([]schedule.Entry, *store.WorkspaceBundle, error) {
	if ownerID == "" {
		return schedule.Seed(), nil, nil
	}

	bundle, err := s.workspaces.Get(ctx, ownerID)
	if err != nil {
		return nil, nil, fmt.Errorf("load workspace: %w", err)
	}
	if bundle == nil || len(bundle.Schedule) == 0 {
		return schedule.Seed(), bundle, nil
	}
	return bundle.Schedule, bundle, nil
}

func (s *Service) applyMutation(current []schedule.Entry, m *schedule.Mutation) []schedule.Entry {
	if m.Dropped > 0 {
		s.log.Warn("dropped invalid mutation elements", "count", m.Dropped)
	}

	switch m.Kind {
	case schedule.KindReplace:
		return schedule.Replace(m.Entries)
	default:
		return schedule.Apply(current, m.Ops)
	}
}

// persistSchedule writes the updated schedule back into the owner's
// bundle, creating the bundle on first mutation.
func (s *Service) persistSchedule(ctx context.Context, ownerID string, bundle *store.WorkspaceBundle, updated []schedule.Entry, agent string) error {
	if bundle == nil {
		bundle = &store.WorkspaceBundle{OwnerID: ownerID, Agent: agent}
	}
	bundle.Schedule = updated

	if err := s.workspaces.Upsert(ctx, bundle); err != nil {
		return fmt.Errorf("persist schedule: %w", err)
	}
	return nil
}

func buildMessages(turn Turn) []llm.Message {
	msgs := make([]llm.Message, 0, len(turn.History)+1)
	for _, m := range turn.History {
		role := llm.RoleUser
		if m.Role == "assistant" || m.Role == "model" {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: m.Text})
	}
	return append(msgs, llm.Message{Role: llm.RoleUser, Content: turn.Message})
}

// scheduleSnapshot renders the current schedule as compact JSON so the
// model reconciles against real state instead of guessing.
func scheduleSnapshot(entries []schedule.Entry) string {
	b, err := json.Marshal(entries)
	if err != nil {
		return ""
	}
	return "Current weekly schedule:\n" + string(b)
}

func joinSnapshot(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + "\n\n" + b
	}
}
