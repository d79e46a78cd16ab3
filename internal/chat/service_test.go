package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/zaeon-io/zaeon-core/internal/identity"
	"github.com/zaeon-io/zaeon-core/internal/llm"
	"github.com/zaeon-io/zaeon-core/internal/persona"
	"github.com/zaeon-io/zaeon-core/internal/schedule"
	"github.com/zaeon-io/zaeon-core/internal/store"
)

// fakeWorkspaces is an in-memory WorkspaceRepo.
type fakeWorkspaces struct {
	bundles map[string]*store.WorkspaceBundle
	getErr  error
}

func newFakeWorkspaces() *fakeWorkspaces {
	return &fakeWorkspaces{bundles: map[string]*store.WorkspaceBundle{}}
}

func (f *fakeWorkspaces) Upsert(_ context.Context, b *store.WorkspaceBundle) error {
	if b.OwnerID == "" {
		return errors.New("empty owner")
	}
	cp := *b
	f.bundles[b.OwnerID] = &cp
	return nil
}

func (f *fakeWorkspaces) Get(_ context.Context, ownerID string) (*store.WorkspaceBundle, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	b, ok := f.bundles[ownerID]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

// fakeAccounts maps emails to account IDs.
type fakeAccounts struct {
	byEmail map[string]string
}

func (f *fakeAccounts) FindIDByEmail(_ context.Context, email string) (string, error) {
	return f.byEmail[email], nil
}

func (f *fakeAccounts) Create(_ context.Context, email, _ string) (string, error) {
	return "", errors.New("not implemented")
}

func testService(t *testing.T, mock *llm.MockProvider, workspaces *fakeWorkspaces) *Service {
	t.Helper()
	reg, err := persona.Load()
	if err != nil {
		t.Fatalf("load personas: %v", err)
	}
	resolver := identity.NewResolver(&fakeAccounts{byEmail: map[string]string{
		"maya@example.com": "acct-1",
	}})
	return NewService(reg, mock, workspaces, resolver, nil)
}

func TestConverseConversational(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`Sure, I can help with that.`)},
	)
	svc := testService(t, mock, newFakeWorkspaces())

	reply, err := svc.Converse(context.Background(), Turn{
		Message: "explain my timetable",
		Agent:   "zenita",
	})
	if err != nil {
		t.Fatalf("converse: %v", err)
	}
	if reply.Mutated {
		t.Error("conversational turn must not mutate")
	}
	if reply.Text != "Sure, I can help with that." {
		t.Errorf("Text = %q", reply.Text)
	}

	// Non-mutation-capable personas never get the schedule block.
	req, ok := mock.LastCall()
	if !ok {
		t.Fatal("no recorded call")
	}
	if strings.Contains(req.System, "SCHEDULE PROTOCOL") {
		t.Error("zenita prompt must not carry the schedule protocol")
	}
}

func TestConverseMutationPersists(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"kind":"ops","payload":[{"action":"add","day":2,"hour":10,"name":"Calculus"}]}`)},
	)
	workspaces := newFakeWorkspaces()
	svc := testService(t, mock, workspaces)

	reply, err := svc.Converse(context.Background(), Turn{
		Message: "add calculus tuesday at 10",
		Agent:   "aura",
		Email:   "maya@example.com",
	})
	if err != nil {
		t.Fatalf("converse: %v", err)
	}
	if !reply.Mutated {
		t.Fatal("expected a mutation")
	}
	if _, ok := schedule.At(reply.Schedule, 2, 10); !ok {
		t.Error("expected Calculus at (2,10)")
	}
	// Raw mutation JSON never reaches the user.
	if strings.Contains(reply.Text, "[") {
		t.Errorf("reply leaked wire format: %q", reply.Text)
	}

	saved := workspaces.bundles["acct-1"]
	if saved == nil {
		t.Fatal("expected persisted bundle for resolved owner")
	}
	if _, ok := schedule.At(saved.Schedule, 2, 10); !ok {
		t.Error("persisted schedule missing new entry")
	}
	// First mutation seeds the rest of the week.
	if len(saved.Schedule) <= 1 {
		t.Errorf("expected seed + new entry, got %d entries", len(saved.Schedule))
	}
}

func TestConverseGuestMutationNotPersisted(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"kind":"ops","payload":[{"action":"add","day":3,"hour":9,"name":"Yoga"}]}`)},
	)
	workspaces := newFakeWorkspaces()
	svc := testService(t, mock, workspaces)

	reply, err := svc.Converse(context.Background(), Turn{
		Message: "add yoga wednesday at 9",
		Agent:   "aura",
	})
	if err != nil {
		t.Fatalf("converse: %v", err)
	}
	if !reply.Mutated {
		t.Fatal("expected a mutation")
	}
	if _, ok := schedule.At(reply.Schedule, 3, 9); !ok {
		t.Error("guest reply should still carry the updated schedule")
	}
	if len(workspaces.bundles) != 0 {
		t.Error("guest turn must not persist")
	}
}

func TestConverseMutationAgainstStoredSchedule(t *testing.T) {
	workspaces := newFakeWorkspaces()
	workspaces.bundles["acct-1"] = &store.WorkspaceBundle{
		OwnerID: "acct-1",
		Schedule: []schedule.Entry{
			{ID: "e1", Name: "Chemistry", Days: []int{4}, Hour: 11, Color: schedule.AccentColor},
		},
	}
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"kind":"ops","payload":[{"action":"remove","day":4,"hour":11}]}`)},
	)
	svc := testService(t, mock, workspaces)

	reply, err := svc.Converse(context.Background(), Turn{
		Message: "cancel chemistry",
		Agent:   "aura",
		Email:   "maya@example.com",
	})
	if err != nil {
		t.Fatalf("converse: %v", err)
	}
	if _, ok := schedule.At(reply.Schedule, 4, 11); ok {
		t.Error("expected (4,11) cleared")
	}
	if len(reply.Schedule) != 0 {
		t.Errorf("expected empty schedule, got %+v", reply.Schedule)
	}

	// The model saw the stored schedule, not the seed.
	req, _ := mock.LastCall()
	if !strings.Contains(req.System, "Chemistry") {
		t.Error("prompt snapshot missing stored schedule")
	}
}

func TestConverseFullReplacement(t *testing.T) {
	replacement := `{"kind":"replace","payload":[{"id":"n1","name":"Deep Work","days":[1,3],"hour":9,"color":"` + schedule.AccentColor + `"}]}`
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(replacement)},
	)
	workspaces := newFakeWorkspaces()
	svc := testService(t, mock, workspaces)

	reply, err := svc.Converse(context.Background(), Turn{
		Message: "replace everything with deep work",
		Agent:   "aura",
		Email:   "maya@example.com",
	})
	if err != nil {
		t.Fatalf("converse: %v", err)
	}
	if len(reply.Schedule) != 1 || reply.Schedule[0].Name != "Deep Work" {
		t.Errorf("replacement schedule = %+v", reply.Schedule)
	}
}

func TestConverseUnparsableDegrades(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`[{"action":"add","day":9,"hour":3,"name":"Bad"}]`)},
	)
	workspaces := newFakeWorkspaces()
	svc := testService(t, mock, workspaces)

	reply, err := svc.Converse(context.Background(), Turn{
		Message: "do something weird",
		Agent:   "aura",
		Email:   "maya@example.com",
	})
	if err != nil {
		t.Fatalf("unparsable output must not fail the turn: %v", err)
	}
	if reply.Mutated {
		t.Error("unparsable output must not mutate")
	}
	if len(workspaces.bundles) != 0 {
		t.Error("unparsable output must not persist")
	}
}

func TestConverseProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrEmptyResponse{Model: "gemini-2.5-flash"}},
	)
	svc := testService(t, mock, newFakeWorkspaces())

	_, err := svc.Converse(context.Background(), Turn{Message: "hi", Agent: "zenita"})
	if err == nil {
		t.Fatal("expected provider error")
	}
	var empty *llm.ErrEmptyResponse
	if !errors.As(err, &empty) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestConverseHistoryAndAttachmentForwarded(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`Summary: a dense paper.`)},
	)
	svc := testService(t, mock, newFakeWorkspaces())

	_, err := svc.Converse(context.Background(), Turn{
		Message: "summarize the attachment",
		Agent:   "zenita",
		History: []store.TranscriptMessage{
			{Role: "user", Text: "hello"},
			{Role: "assistant", Text: "hi there"},
		},
		Attachment: &llm.Attachment{Data: []byte("%PDF-1.4"), MediaType: "application/pdf"},
	})
	if err != nil {
		t.Fatalf("converse: %v", err)
	}

	req, _ := mock.LastCall()
	if len(req.Messages) != 3 {
		t.Fatalf("got %d messages, want 3", len(req.Messages))
	}
	if req.Messages[1].Role != llm.RoleAssistant {
		t.Errorf("history role mapping broken: %+v", req.Messages[1])
	}
	if req.Messages[2].Content != "summarize the attachment" {
		t.Errorf("latest message last, got %q", req.Messages[2].Content)
	}
	if req.Attachment == nil || req.Attachment.MediaType != "application/pdf" {
		t.Errorf("attachment not forwarded: %+v", req.Attachment)
	}
}

func TestConverseSeedVisibleToModel(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`ok`)},
	)
	svc := testService(t, mock, newFakeWorkspaces())

	_, err := svc.Converse(context.Background(), Turn{
		Message: "what's on my schedule?",
		Agent:   "aura",
	})
	if err != nil {
		t.Fatalf("converse: %v", err)
	}

	req, _ := mock.LastCall()
	var count int
	for _, e := range schedule.Seed() {
		if strings.Contains(req.System, e.Name) {
			count++
		}
	}
	if count < 5 {
		t.Errorf("expected seed classes in snapshot, found %d", count)
	}
}

func TestConverseWorkspaceLoadError(t *testing.T) {
	workspaces := newFakeWorkspaces()
	workspaces.getErr = fmt.Errorf("db locked")
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`ok`)},
	)
	svc := testService(t, mock, workspaces)

	_, err := svc.Converse(context.Background(), Turn{
		Message: "hi",
		Agent:   "aura",
		Email:   "maya@example.com",
	})
	if err == nil {
		t.Fatal("expected load error to propagate")
	}
	if mock.CallCount() != 0 {
		t.Error("must not call the model when state load fails")
	}
}
