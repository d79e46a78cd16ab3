// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/zaeon-io/zaeon-core/ent/llmrequestevent"
	"github.com/zaeon-io/zaeon-core/ent/schema"
	"github.com/zaeon-io/zaeon-core/ent/user"
	"github.com/zaeon-io/zaeon-core/ent/workspace"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.DefaultName holds the default value on creation for the name field.
	user.DefaultName = userDescName.Default.(string)
	// userDescRole is the schema descriptor for role field.
	userDescRole := userFields[3].Descriptor()
	// user.DefaultRole holds the default value on creation for the role field.
	user.DefaultRole = userDescRole.Default.(string)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() string)
	workspaceFields := schema.Workspace{}.Fields()
	_ = workspaceFields
	// workspaceDescOwnerID is the schema descriptor for owner_id field.
	workspaceDescOwnerID := workspaceFields[0].Descriptor()
	// workspace.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	workspace.OwnerIDValidator = workspaceDescOwnerID.Validators[0].(func(string) error)
	// workspaceDescTitle is the schema descriptor for title field.
	workspaceDescTitle := workspaceFields[1].Descriptor()
	// workspace.DefaultTitle holds the default value on creation for the title field.
	workspace.DefaultTitle = workspaceDescTitle.Default.(string)
	// workspaceDescContent is the schema descriptor for content field.
	workspaceDescContent := workspaceFields[2].Descriptor()
	// workspace.DefaultContent holds the default value on creation for the content field.
	workspace.DefaultContent = workspaceDescContent.Default.(string)
	// workspaceDescAgent is the schema descriptor for agent field.
	workspaceDescAgent := workspaceFields[3].Descriptor()
	// workspace.DefaultAgent holds the default value on creation for the agent field.
	workspace.DefaultAgent = workspaceDescAgent.Default.(string)
	// workspaceDescUpdatedAt is the schema descriptor for updated_at field.
	workspaceDescUpdatedAt := workspaceFields[7].Descriptor()
	// workspace.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workspace.DefaultUpdatedAt = workspaceDescUpdatedAt.Default.(func() time.Time)
	// workspace.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workspace.UpdateDefaultUpdatedAt = workspaceDescUpdatedAt.UpdateDefault.(func() time.Time)
}
