package store

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/zaeon-io/zaeon-core/internal/schedule"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestWorkspaceUpsertAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.WorkspaceRepo()
	ctx := context.Background()

	// Absent owner returns nil.
	got, err := repo.Get(ctx, "nobody")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil bundle for unknown owner")
	}

	bundle := &WorkspaceBundle{
		OwnerID: "owner-1",
		Title:   "Week 12 notes",
		Content: "Finish the lab report.",
		Agent:   "aura",
		Schedule: []schedule.Entry{
			{ID: "e1", Name: "Databases", Teacher: "Dr. Chen", Room: "Lab 3", Days: []int{2, 4}, Hour: 10, Color: schedule.AccentColor},
		},
		Transcript: []TranscriptMessage{
			{Role: "user", Text: "move my class"},
			{Role: "assistant", Text: "Done."},
		},
		Logs: []string{"$ make test", "ok"},
	}
	if err := repo.Upsert(ctx, bundle); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err = repo.Get(ctx, "owner-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected a bundle")
	}
	if got.Title != bundle.Title || got.Agent != "aura" {
		t.Errorf("bundle fields = %q/%q, want %q/aura", got.Title, got.Agent, bundle.Title)
	}
	if len(got.Schedule) != 1 || got.Schedule[0].Name != "Databases" {
		t.Errorf("schedule round-trip failed: %+v", got.Schedule)
	}
	if len(got.Schedule[0].Days) != 2 || got.Schedule[0].Days[1] != 4 {
		t.Errorf("days round-trip failed: %v", got.Schedule[0].Days)
	}
	if len(got.Transcript) != 2 || got.Transcript[1].Role != "assistant" {
		t.Errorf("transcript round-trip failed: %+v", got.Transcript)
	}
	if len(got.Logs) != 2 {
		t.Errorf("logs round-trip failed: %v", got.Logs)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be set")
	}
}

func TestWorkspaceUpsertReplaces(t *testing.T) {
	s := openTestStore(t)
	repo := s.WorkspaceRepo()
	ctx := context.Background()

	first := &WorkspaceBundle{OwnerID: "owner-2", Title: "draft", Agent: "zenita"}
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := &WorkspaceBundle{
		OwnerID:  "owner-2",
		Title:    "final",
		Agent:    "aura",
		Schedule: []schedule.Entry{{ID: "x", Name: "Ethics", Days: []int{1}, Hour: 9, Color: schedule.AccentColor}},
	}
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := repo.Get(ctx, "owner-2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "final" {
		t.Errorf("Title = %q, want %q (save must overwrite)", got.Title, "final")
	}
	if len(got.Schedule) != 1 {
		t.Errorf("expected replaced schedule, got %+v", got.Schedule)
	}

	// One row per owner, not one per save.
	n, err := s.Client().Workspace.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("workspace rows = %d, want 1", n)
	}
}

func TestWorkspaceUpsertConcurrentLastWriteWins(t *testing.T) {
	s := openTestStore(t)
	repo := s.WorkspaceRepo()
	ctx := context.Background()

	bundles := []*WorkspaceBundle{
		{OwnerID: "owner-3", Title: "draft A", Content: "alpha", Agent: "zenita"},
		{OwnerID: "owner-3", Title: "draft B", Content: "beta", Agent: "aura"},
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(bundles))
	for _, b := range bundles {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.Upsert(ctx, b)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent upsert: %v", err)
		}
	}

	got, err := repo.Get(ctx, "owner-3")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected a bundle")
	}

	// Whichever save lands last must survive whole; fields must not mix.
	switch got.Title {
	case "draft A":
		if got.Content != "alpha" || got.Agent != "zenita" {
			t.Errorf("torn record: %q/%q/%q", got.Title, got.Content, got.Agent)
		}
	case "draft B":
		if got.Content != "beta" || got.Agent != "aura" {
			t.Errorf("torn record: %q/%q/%q", got.Title, got.Content, got.Agent)
		}
	default:
		t.Fatalf("Title = %q, want one of the saved bundles", got.Title)
	}

	n, err := s.Client().Workspace.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("workspace rows = %d, want 1", n)
	}
}

func TestWorkspaceUpsertEmptyOwner(t *testing.T) {
	s := openTestStore(t)
	err := s.WorkspaceRepo().Upsert(context.Background(), &WorkspaceBundle{Title: "stray"})
	if err == nil {
		t.Fatal("expected error for empty owner ID")
	}
}

func TestAccountFindIDByEmail(t *testing.T) {
	s := openTestStore(t)
	repo := s.AccountRepo()
	ctx := context.Background()

	// Unknown email resolves to empty, not an error.
	id, err := repo.FindIDByEmail(ctx, "ghost@example.com")
	if err != nil {
		t.Fatalf("find (absent): %v", err)
	}
	if id != "" {
		t.Errorf("expected empty ID, got %q", id)
	}

	created, err := repo.Create(ctx, "maya@example.com", "Maya")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created == "" {
		t.Fatal("expected generated account ID")
	}

	id, err = repo.FindIDByEmail(ctx, "maya@example.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if id != created {
		t.Errorf("FindIDByEmail = %q, want %q", id, created)
	}

	// Lookups trim surrounding whitespace.
	id, err = repo.FindIDByEmail(ctx, "  maya@example.com  ")
	if err != nil {
		t.Fatalf("find (padded): %v", err)
	}
	if id != created {
		t.Errorf("padded lookup = %q, want %q", id, created)
	}
}

func TestEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"chat", "schedule", "chat"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "gemini",
			Model:        "gemini-2.5-flash",
			Purpose:      purpose,
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    800,
			Success:      true,
			RequestBody:  `{"system":"..."}`,
			ResponseBody: "ok",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	// Newest first, sequences strictly increasing over time.
	if events[0].Sequence <= events[2].Sequence {
		t.Errorf("expected descending sequence order: %d .. %d", events[0].Sequence, events[2].Sequence)
	}

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "schedule"})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Purpose != "schedule" {
		t.Errorf("purpose filter returned %+v", filtered)
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limit returned %d events, want 2", len(limited))
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if got == nil || got.RequestBody == "" {
		t.Errorf("expected stored request body, got %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown event ID")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "chat", InputTokens: 100, OutputTokens: 20, LatencyMs: 400, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "chat", InputTokens: 300, OutputTokens: 40, LatencyMs: 600, Success: true},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "schedule", InputTokens: 50, OutputTokens: 10, LatencyMs: 200, Success: false},
	}
	for i, data := range appends {
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	usage := map[string]LLMPurposeUsage{}
	for _, u := range byPurpose {
		usage[u.Purpose] = u
	}
	chat, ok := usage["chat"]
	if !ok {
		t.Fatal("missing chat purpose in aggregation")
	}
	if chat.Calls != 2 || chat.InputTokens != 400 || chat.OutputTokens != 60 {
		t.Errorf("chat usage = %+v", chat)
	}
	if chat.AvgLatencyMs != 500 {
		t.Errorf("chat avg latency = %d, want 500", chat.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Errorf("got %d models, want 2", len(byModel))
	}
}
