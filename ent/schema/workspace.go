package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Workspace is the one-record-per-owner session bundle: schedule,
// document, selected agent, chat transcript and terminal logs.
// Overwritten wholesale on each save; no versioning.
type Workspace struct {
	ent.Schema
}

func (Workspace) Fields() []ent.Field {
	return []ent.Field{
		field.String("owner_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("Resolved owner key the bundle is stored under"),
		field.String("title").
			Default("").
			Comment("Active document title"),
		field.Text("content").
			Default("").
			Comment("Active document body"),
		field.String("agent").
			Default("").
			Comment("Selected persona key"),
		field.JSON("schedule", []map[string]any{}).
			Optional().
			Comment("Weekly schedule entries"),
		field.JSON("transcript", []map[string]any{}).
			Optional().
			Comment("Chat transcript"),
		field.JSON("logs", []string{}).
			Optional().
			Comment("Terminal log lines"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last save time"),
	}
}

func (Workspace) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
	}
}
