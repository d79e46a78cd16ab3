package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// User is an account holder. The durable id is what session state is
// keyed on; the email is how an authenticated session resolves to it,
// since session tokens may not carry the id.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Immutable().
			Comment("Durable account identifier"),
		field.String("email").
			Unique().
			NotEmpty().
			Comment("Login email, the session-to-account join key"),
		field.String("name").
			Default("").
			Comment("Display name"),
		field.String("role").
			Default("student").
			Comment("Platform role: student, researcher, admin"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
	}
}
