package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/zaeon-io/zaeon-core/internal/chat"
	"github.com/zaeon-io/zaeon-core/internal/identity"
	"github.com/zaeon-io/zaeon-core/internal/llm"
	"github.com/zaeon-io/zaeon-core/internal/persona"
	"github.com/zaeon-io/zaeon-core/internal/store"
)

type fakeWorkspaces struct {
	bundles map[string]*store.WorkspaceBundle
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
	b, ok := f.bundles[ownerID]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

type fakeAccounts struct {
	byEmail map[string]string
}

func (f *fakeAccounts) FindIDByEmail(_ context.Context, email string) (string, error) {
	return f.byEmail[email], nil
}

func (f *fakeAccounts) Create(_ context.Context, email, _ string) (string, error) {
	return "", errors.New("not implemented")
}

func testServer(t *testing.T, mock *llm.MockProvider) (*httptest.Server, *fakeWorkspaces) {
	t.Helper()

	reg, err := persona.Load()
	if err != nil {
		t.Fatalf("load personas: %v", err)
	}
	workspaces := &fakeWorkspaces{bundles: map[string]*store.WorkspaceBundle{}}
	resolver := identity.NewResolver(&fakeAccounts{byEmail: map[string]string{
		"maya@example.com": "acct-1",
	}})
	chatSvc := chat.NewService(reg, mock, workspaces, resolver, nil)
	h := NewHandler(chatSvc, workspaces, resolver, nil)

	srv := httptest.NewServer(Router(h))
	t.Cleanup(srv.Close)
	return srv, workspaces
}

func postJSON(t *testing.T, url string, body any, headers map[string]string) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHealth(t *testing.T) {
	srv, _ := testServer(t, llm.NewMockProvider())

	resp, err := http.Get(srv.URL + "/api/health")
	if err != nil {
		t.Fatalf("get health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestChatConversational(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`Hello! How can I help?`)},
	)
	srv, _ := testServer(t, mock)

	resp := postJSON(t, srv.URL+"/api/chat", map[string]any{
		"message": "hi",
		"agent":   "zenita",
	}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body struct {
		Text     string `json:"text"`
		Schedule []any  `json:"schedule"`
	}
	decodeBody(t, resp, &body)
	if body.Text != "Hello! How can I help?" {
		t.Errorf("text = %q", body.Text)
	}
	if body.Schedule != nil {
		t.Error("conversational reply must omit schedule")
	}
}

func TestChatMutationReturnsSchedule(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"kind":"ops","payload":[{"action":"add","day":1,"hour":14,"name":"Robotics"}]}`)},
	)
	srv, workspaces := testServer(t, mock)

	resp := postJSON(t, srv.URL+"/api/chat", map[string]any{
		"message": "add robotics monday at 2pm",
		"agent":   "aura",
	}, map[string]string{identity.EmailHeaderName: "maya@example.com"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body struct {
		Text     string `json:"text"`
		Schedule []struct {
			Name string `json:"name"`
			Hour int    `json:"hour"`
		} `json:"schedule"`
	}
	decodeBody(t, resp, &body)
	if len(body.Schedule) == 0 {
		t.Fatal("expected schedule in mutation reply")
	}
	var found bool
	for _, e := range body.Schedule {
		if e.Name == "Robotics" && e.Hour == 14 {
			found = true
		}
	}
	if !found {
		t.Errorf("Robotics not in schedule: %+v", body.Schedule)
	}

	if workspaces.bundles["acct-1"] == nil {
		t.Error("expected persisted schedule for authenticated caller")
	}
}

func TestChatMissingMessage(t *testing.T) {
	srv, _ := testServer(t, llm.NewMockProvider())

	resp := postJSON(t, srv.URL+"/api/chat", map[string]any{"agent": "zenita"}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestChatInvalidBase64Attachment(t *testing.T) {
	srv, _ := testServer(t, llm.NewMockProvider())

	resp := postJSON(t, srv.URL+"/api/chat", map[string]any{
		"message":  "summarize",
		"agent":    "zenita",
		"fileData": "!!!not-base64!!!",
	}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestChatAttachmentTooLarge(t *testing.T) {
	srv, _ := testServer(t, llm.NewMockProvider())

	big := base64.StdEncoding.EncodeToString(make([]byte, maxAttachmentBytes+1))
	resp := postJSON(t, srv.URL+"/api/chat", map[string]any{
		"message":  "summarize",
		"agent":    "zenita",
		"fileData": big,
	}, nil)
	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", resp.StatusCode)
	}
}

func TestChatEmptyModelResponseIs502(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrEmptyResponse{Model: "gemini-2.5-flash"}},
	)
	srv, _ := testServer(t, mock)

	resp := postJSON(t, srv.URL+"/api/chat", map[string]any{
		"message": "hi",
		"agent":   "zenita",
	}, nil)
	if resp.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", resp.StatusCode)
	}

	var body struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	decodeBody(t, resp, &body)
	if body.Error == "" || body.Details == "" {
		t.Errorf("expected error and details, got %+v", body)
	}
}

func TestChatProviderUnavailableIs502(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("upstream down")}},
	)
	srv, _ := testServer(t, mock)

	resp := postJSON(t, srv.URL+"/api/chat", map[string]any{
		"message": "hi",
		"agent":   "zenita",
	}, nil)
	if resp.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", resp.StatusCode)
	}
}

func TestWorkspaceSaveUnauthorized(t *testing.T) {
	srv, _ := testServer(t, llm.NewMockProvider())

	resp := postJSON(t, srv.URL+"/api/workspace/save", map[string]any{
		"title":   "notes",
		"content": "...",
	}, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}

	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, resp, &body)
	if body.Error != "Unauthorized" {
		t.Errorf("error = %q", body.Error)
	}
}

func TestWorkspaceSaveSessionWinsOverHint(t *testing.T) {
	srv, _ := testServer(t, llm.NewMockProvider())

	resp := postJSON(t, srv.URL+"/api/workspace/save", map[string]any{
		"userId":       "spoofed-owner",
		"title":        "Week 12",
		"content":      "lab notes",
		"agent":        "aura",
		"chatHistory":  []map[string]string{{"role": "user", "text": "hi"}},
		"terminalLogs": []string{"$ ls"},
	}, map[string]string{identity.EmailHeaderName: "maya@example.com"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body struct {
		Success  bool   `json:"success"`
		SavedFor string `json:"savedFor"`
	}
	decodeBody(t, resp, &body)
	if !body.Success || body.SavedFor != "acct-1" {
		t.Errorf("savedFor = %q, want acct-1", body.SavedFor)
	}
}

func TestWorkspaceSaveAndLoadRoundTrip(t *testing.T) {
	srv, _ := testServer(t, llm.NewMockProvider())

	resp := postJSON(t, srv.URL+"/api/workspace/save", map[string]any{
		"userId":       "guest-7",
		"title":        "Draft",
		"content":      "essay body",
		"agent":        "ballena",
		"chatHistory":  []map[string]string{{"role": "user", "text": "help me write"}},
		"terminalLogs": []string{},
	}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("save status = %d", resp.StatusCode)
	}

	loadResp, err := http.Get(srv.URL + "/api/workspace/guest-7")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defer loadResp.Body.Close()
	if loadResp.StatusCode != http.StatusOK {
		t.Fatalf("load status = %d", loadResp.StatusCode)
	}

	var body workspaceResponse
	if err := json.NewDecoder(loadResp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Title != "Draft" || body.Agent != "ballena" {
		t.Errorf("round-trip fields = %q/%q", body.Title, body.Agent)
	}
	if len(body.ChatHistory) != 1 || !strings.Contains(body.ChatHistory[0].Text, "help me write") {
		t.Errorf("chat history = %+v", body.ChatHistory)
	}
	// Empty collections render as [], not null.
	if body.TerminalLogs == nil || body.Schedule == nil {
		t.Error("expected empty slices in load response")
	}
}

func TestWorkspaceLoadNotFound(t *testing.T) {
	srv, _ := testServer(t, llm.NewMockProvider())

	resp, err := http.Get(srv.URL + "/api/workspace/nobody")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
