package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/zaeon-io/zaeon-core/internal/store"
)

// fakeEventRepo captures appended events in memory.
type fakeEventRepo struct {
	events []store.LLMRequestEventData
	err    error
}

func (f *fakeEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, data)
	return nil
}

func (f *fakeEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

func (f *fakeEventRepo) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) {
	return nil, nil
}

func (f *fakeEventRepo) LLMUsageByPurpose(context.Context) ([]store.LLMPurposeUsage, error) {
	return nil, nil
}

func (f *fakeEventRepo) LLMUsageByModel(context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`Sure thing.`),
			Usage:   Usage{InputTokens: 120, OutputTokens: 15},
		},
	)
	repo := &fakeEventRepo{}
	p := WithLogging(mock, "gemini", repo)

	ctx := WithPurpose(context.Background(), "schedule")
	resp, err := p.Generate(ctx, Request{
		System:   "persona text",
		Messages: []Message{{Role: RoleUser, Content: "move my class"}},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp == nil {
		t.Fatal("expected response")
	}

	if len(repo.events) != 1 {
		t.Fatalf("got %d events, want 1", len(repo.events))
	}
	e := repo.events[0]
	if e.Provider != "gemini" || e.Purpose != "schedule" {
		t.Errorf("event provider/purpose = %q/%q", e.Provider, e.Purpose)
	}
	if !e.Success {
		t.Error("expected success flag")
	}
	if e.InputTokens != 120 || e.OutputTokens != 15 {
		t.Errorf("tokens = %d/%d", e.InputTokens, e.OutputTokens)
	}
	if !strings.Contains(e.RequestBody, "persona text") || !strings.Contains(e.RequestBody, "move my class") {
		t.Errorf("request body missing content: %q", e.RequestBody)
	}
	if e.ResponseBody != "Sure thing." {
		t.Errorf("response body = %q", e.ResponseBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	repo := &fakeEventRepo{}
	p := WithLogging(mock, "anthropic", repo)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("got %d events, want 1", len(repo.events))
	}
	e := repo.events[0]
	if e.Success {
		t.Error("expected failure flag")
	}
	if e.ErrorMessage == "" {
		t.Error("expected error message recorded")
	}
}

func TestLogging_RepoFailureDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`ok`)},
	)
	repo := &fakeEventRepo{err: errors.New("disk full")}
	p := WithLogging(mock, "gemini", repo)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("request must survive logging failure: %v", err)
	}
	if string(resp.Content) != "ok" {
		t.Errorf("content = %s", resp.Content)
	}
}

func TestSerializeRequestAttachmentSummary(t *testing.T) {
	body := serializeRequest(Request{
		Messages:   []Message{{Role: RoleUser, Content: "summarize this"}},
		Attachment: &Attachment{Data: make([]byte, 2048), MediaType: "application/pdf"},
	})
	if !strings.Contains(body, "application/pdf") || !strings.Contains(body, "2048 bytes") {
		t.Errorf("expected attachment summary, got: %q", body)
	}
	// Raw bytes must not leak into the stored body.
	if len(body) > 200 {
		t.Errorf("serialized body unexpectedly large: %d", len(body))
	}
}
