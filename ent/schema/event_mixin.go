package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin provides the base fields shared by audit event entities,
// currently only LLMRequestEvent. The sequence gives `zaeon-core llm list`
// a total order over requests that timestamps alone cannot.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Monotonically increasing sequence shared across all audit events"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("UTC wall-clock time the event was recorded"),
	}
}

func (EventMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sequence"),
		index.Fields("timestamp"),
	}
}
