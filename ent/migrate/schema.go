// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Default: ""},
		{Name: "role", Type: field.TypeString, Default: "student"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[1]},
			},
		},
	}
	// WorkspacesColumns holds the columns for the "workspaces" table.
	WorkspacesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "owner_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Default: ""},
		{Name: "content", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "agent", Type: field.TypeString, Default: ""},
		{Name: "schedule", Type: field.TypeJSON, Nullable: true},
		{Name: "transcript", Type: field.TypeJSON, Nullable: true},
		{Name: "logs", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorkspacesTable holds the schema information for the "workspaces" table.
	WorkspacesTable = &schema.Table{
		Name:       "workspaces",
		Columns:    WorkspacesColumns,
		PrimaryKey: []*schema.Column{WorkspacesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workspace_owner_id",
				Unique:  false,
				Columns: []*schema.Column{WorkspacesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		UsersTable,
		WorkspacesTable,
	}
)

func init() {
}
