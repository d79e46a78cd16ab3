package llm

import (
	"encoding/json"
	"testing"
)

func TestResolveModelAliases(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestResponseText(t *testing.T) {
	resp := &Response{Content: json.RawMessage(`Sure, moved your class.`)}
	if got := resp.Text(); got != "Sure, moved your class." {
		t.Errorf("Text() = %q", got)
	}
}

func TestMockProviderFIFO(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`first`)},
		MockResponse{Content: json.RawMessage(`second`)},
	)

	resp, err := mock.Generate(t.Context(), Request{System: "sys"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(resp.Content) != "first" {
		t.Errorf("first response = %s", resp.Content)
	}

	resp, _ = mock.Generate(t.Context(), Request{})
	if string(resp.Content) != "second" {
		t.Errorf("second response = %s", resp.Content)
	}

	// Exhausted queue surfaces as provider unavailable.
	if _, err := mock.Generate(t.Context(), Request{}); err == nil {
		t.Error("expected error on empty queue")
	}

	if mock.CallCount() != 3 {
		t.Errorf("CallCount = %d, want 3", mock.CallCount())
	}
	last, ok := mock.LastCall()
	if !ok || last.System != "" {
		t.Errorf("LastCall = %+v, %v", last, ok)
	}
}

func TestAttachmentRidesLatestUserMessage(t *testing.T) {
	msgs := []Message{
		{Role: RoleUser, Content: "what did we cover last week?"},
		{Role: RoleAssistant, Content: "Normalization and indexing."},
		{Role: RoleUser, Content: "summarize the attached paper"},
	}
	att := &Attachment{Data: []byte("%PDF-1.4"), MediaType: "application/pdf"}

	params := buildAnthropicMessages(msgs, att)
	if len(params) != 3 {
		t.Fatalf("got %d messages, want 3", len(params))
	}
	if len(params[0].Content) != 1 {
		t.Errorf("history message carries %d blocks, want text only", len(params[0].Content))
	}
	if len(params[2].Content) != 2 {
		t.Errorf("current message carries %d blocks, want document and text", len(params[2].Content))
	}

	contents := buildGeminiContents(msgs, att)
	if len(contents) != 3 {
		t.Fatalf("got %d contents, want 3", len(contents))
	}
	if len(contents[0].Parts) != 1 {
		t.Errorf("history content carries %d parts, want text only", len(contents[0].Parts))
	}
	if len(contents[2].Parts) != 2 || contents[2].Parts[0].InlineData == nil {
		t.Errorf("current content parts = %+v, want inline data then text", contents[2].Parts)
	}
}

func TestLastUserIndex(t *testing.T) {
	if got := lastUserIndex(nil); got != -1 {
		t.Errorf("empty = %d, want -1", got)
	}
	msgs := []Message{
		{Role: RoleUser},
		{Role: RoleAssistant},
	}
	if got := lastUserIndex(msgs); got != 0 {
		t.Errorf("trailing assistant = %d, want 0", got)
	}
}

func TestLookupCost(t *testing.T) {
	if LookupCost("gemini-2.5-flash") == nil {
		t.Error("expected pricing for gemini-2.5-flash")
	}
	if LookupCost("made-up-model") != nil {
		t.Error("expected nil for unknown model")
	}
	// OpenRouter-style vendor prefix falls back to the bare model name.
	if LookupCost("google/gemini-2.5-flash") == nil {
		t.Error("expected prefix fallback pricing")
	}
}

func TestModelCostMath(t *testing.T) {
	c := ModelCost{InputPerMTok: 1, OutputPerMTok: 10}
	got := c.Cost(500_000, 100_000)
	want := 0.5 + 1.0
	if got != want {
		t.Errorf("Cost = %v, want %v", got, want)
	}
}
