package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/zaeon-io/zaeon-core/ent"
	"github.com/zaeon-io/zaeon-core/ent/workspace"
	"github.com/zaeon-io/zaeon-core/internal/schedule"
)

// workspaceRepo implements WorkspaceRepo using the ent client.
type workspaceRepo struct {
	client *ent.Client
}

func (r *workspaceRepo) Upsert(ctx context.Context, b *WorkspaceBundle) error {
	if b.OwnerID == "" {
		return fmt.Errorf("upsert workspace: empty owner ID")
	}

	sched, err := toMapList(b.Schedule)
	if err != nil {
		return fmt.Errorf("marshal schedule: %w", err)
	}
	transcript, err := toMapList(b.Transcript)
	if err != nil {
		return fmt.Errorf("marshal transcript: %w", err)
	}

	err = r.client.Workspace.Create().
		SetOwnerID(b.OwnerID).
		SetTitle(b.Title).
		SetContent(b.Content).
		SetAgent(b.Agent).
		SetSchedule(sched).
		SetTranscript(transcript).
		SetLogs(b.Logs).
		OnConflictColumns(workspace.FieldOwnerID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert workspace: %w", err)
	}
	return nil
}

func (r *workspaceRepo) Get(ctx context.Context, ownerID string) (*WorkspaceBundle, error) {
	w, err := r.client.Workspace.Query().
		Where(workspace.OwnerIDEQ(ownerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query workspace: %w", err)
	}

	var sched []schedule.Entry
	if err := fromMapList(w.Schedule, &sched); err != nil {
		return nil, fmt.Errorf("unmarshal schedule: %w", err)
	}
	var transcript []TranscriptMessage
	if err := fromMapList(w.Transcript, &transcript); err != nil {
		return nil, fmt.Errorf("unmarshal transcript: %w", err)
	}

	return &WorkspaceBundle{
		OwnerID:    w.OwnerID,
		Title:      w.Title,
		Content:    w.Content,
		Agent:      w.Agent,
		Schedule:   sched,
		Transcript: transcript,
		Logs:       w.Logs,
		UpdatedAt:  w.UpdatedAt,
	}, nil
}

// toMapList converts a typed slice to []map[string]any for ent JSON storage.
func toMapList(v any) ([]map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// fromMapList converts ent JSON storage back into a typed slice.
func fromMapList(in []map[string]any, out any) error {
	if in == nil {
		return nil
	}
	b, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
