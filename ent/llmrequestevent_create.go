// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/zaeon-io/zaeon-core/ent/llmrequestevent"
)

// LLMRequestEventCreate is the builder for creating a LLMRequestEvent entity.
type LLMRequestEventCreate struct {
	config
	mutation *LLMRequestEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *LLMRequestEventCreate) SetSequence(v int64) *LLMRequestEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *LLMRequestEventCreate) SetTimestamp(v time.Time) *LLMRequestEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *LLMRequestEventCreate) SetNillableTimestamp(v *time.Time) *LLMRequestEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *LLMRequestEventCreate) SetProvider(v string) *LLMRequestEventCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *LLMRequestEventCreate) SetModel(v string) *LLMRequestEventCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetPurpose sets the "purpose" field.
func (_c *LLMRequestEventCreate) SetPurpose(v string) *LLMRequestEventCreate {
	_c.mutation.SetPurpose(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *LLMRequestEventCreate) SetInputTokens(v int) *LLMRequestEventCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *LLMRequestEventCreate) SetNillableInputTokens(v *int) *LLMRequestEventCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *LLMRequestEventCreate) SetOutputTokens(v int) *LLMRequestEventCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *LLMRequestEventCreate) SetNillableOutputTokens(v *int) *LLMRequestEventCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *LLMRequestEventCreate) SetLatencyMs(v int64) *LLMRequestEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *LLMRequestEventCreate) SetNillableLatencyMs(v *int64) *LLMRequestEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *LLMRequestEventCreate) SetSuccess(v bool) *LLMRequestEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *LLMRequestEventCreate) SetErrorMessage(v string) *LLMRequestEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *LLMRequestEventCreate) SetNillableErrorMessage(v *string) *LLMRequestEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetRequestBody sets the "request_body" field.
func (_c *LLMRequestEventCreate) SetRequestBody(v string) *LLMRequestEventCreate {
	_c.mutation.SetRequestBody(v)
	return _c
}

// SetNillableRequestBody sets the "request_body" field if the given value is not nil.
func (_c *LLMRequestEventCreate) SetNillableRequestBody(v *string) *LLMRequestEventCreate {
	if v != nil {
		_c.SetRequestBody(*v)
	}
	return _c
}

// SetResponseBody sets the "response_body" field.
func (_c *LLMRequestEventCreate) SetResponseBody(v string) *LLMRequestEventCreate {
	_c.mutation.SetResponseBody(v)
	return _c
}

// SetNillableResponseBody sets the "response_body" field if the given value is not nil.
func (_c *LLMRequestEventCreate) SetNillableResponseBody(v *string) *LLMRequestEventCreate {
	if v != nil {
		_c.SetResponseBody(*v)
	}
	return _c
}

// Mutation returns the LLMRequestEventMutation object of the builder.
func (_c *LLMRequestEventCreate) Mutation() *LLMRequestEventMutation {
	return _c.mutation
}

// Save creates the LLMRequestEvent in the database.
func (_c *LLMRequestEventCreate) Save(ctx context.Context) (*LLMRequestEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LLMRequestEventCreate) SaveX(ctx context.Context) *LLMRequestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMRequestEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMRequestEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LLMRequestEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := llmrequestevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := llmrequestevent.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := llmrequestevent.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := llmrequestevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := llmrequestevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
	if _, ok := _c.mutation.RequestBody(); !ok {
		v := llmrequestevent.DefaultRequestBody
		_c.mutation.SetRequestBody(v)
	}
	if _, ok := _c.mutation.ResponseBody(); !ok {
		v := llmrequestevent.DefaultResponseBody
		_c.mutation.SetResponseBody(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LLMRequestEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "LLMRequestEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "LLMRequestEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "LLMRequestEvent.provider"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "LLMRequestEvent.model"`)}
	}
	if _, ok := _c.mutation.Purpose(); !ok {
		return &ValidationError{Name: "purpose", err: errors.New(`ent: missing required field "LLMRequestEvent.purpose"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "LLMRequestEvent.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "LLMRequestEvent.output_tokens"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "LLMRequestEvent.latency_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "LLMRequestEvent.success"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "LLMRequestEvent.error_message"`)}
	}
	if _, ok := _c.mutation.RequestBody(); !ok {
		return &ValidationError{Name: "request_body", err: errors.New(`ent: missing required field "LLMRequestEvent.request_body"`)}
	}
	if _, ok := _c.mutation.ResponseBody(); !ok {
		return &ValidationError{Name: "response_body", err: errors.New(`ent: missing required field "LLMRequestEvent.response_body"`)}
	}
	return nil
}

func (_c *LLMRequestEventCreate) sqlSave(ctx context.Context) (*LLMRequestEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LLMRequestEventCreate) createSpec() (*LLMRequestEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &LLMRequestEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(llmrequestevent.Table, sqlgraph.NewFieldSpec(llmrequestevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(llmrequestevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(llmrequestevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(llmrequestevent.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(llmrequestevent.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Purpose(); ok {
		_spec.SetField(llmrequestevent.FieldPurpose, field.TypeString, value)
		_node.Purpose = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(llmrequestevent.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(llmrequestevent.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(llmrequestevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(llmrequestevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(llmrequestevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.RequestBody(); ok {
		_spec.SetField(llmrequestevent.FieldRequestBody, field.TypeString, value)
		_node.RequestBody = value
	}
	if value, ok := _c.mutation.ResponseBody(); ok {
		_spec.SetField(llmrequestevent.FieldResponseBody, field.TypeString, value)
		_node.ResponseBody = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LLMRequestEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LLMRequestEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *LLMRequestEventCreate) OnConflict(opts ...sql.ConflictOption) *LLMRequestEventUpsertOne {
	_c.conflict = opts
	return &LLMRequestEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LLMRequestEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LLMRequestEventCreate) OnConflictColumns(columns ...string) *LLMRequestEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LLMRequestEventUpsertOne{
		create: _c,
	}
}

type (
	// LLMRequestEventUpsertOne is the builder for "upsert"-ing
	//  one LLMRequestEvent node.
	LLMRequestEventUpsertOne struct {
		create *LLMRequestEventCreate
	}

	// LLMRequestEventUpsert is the "OnConflict" setter.
	LLMRequestEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetProvider sets the "provider" field.
func (u *LLMRequestEventUpsert) SetProvider(v string) *LLMRequestEventUpsert {
	u.Set(llmrequestevent.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMRequestEventUpsert) UpdateProvider() *LLMRequestEventUpsert {
	u.SetExcluded(llmrequestevent.FieldProvider)
	return u
}

// SetModel sets the "model" field.
func (u *LLMRequestEventUpsert) SetModel(v string) *LLMRequestEventUpsert {
	u.Set(llmrequestevent.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *LLMRequestEventUpsert) UpdateModel() *LLMRequestEventUpsert {
	u.SetExcluded(llmrequestevent.FieldModel)
	return u
}

// SetPurpose sets the "purpose" field.
func (u *LLMRequestEventUpsert) SetPurpose(v string) *LLMRequestEventUpsert {
	u.Set(llmrequestevent.FieldPurpose, v)
	return u
}

// UpdatePurpose sets the "purpose" field to the value that was provided on create.
func (u *LLMRequestEventUpsert) UpdatePurpose() *LLMRequestEventUpsert {
	u.SetExcluded(llmrequestevent.FieldPurpose)
	return u
}

// SetInputTokens sets the "input_tokens" field.
func (u *LLMRequestEventUpsert) SetInputTokens(v int) *LLMRequestEventUpsert {
	u.Set(llmrequestevent.FieldInputTokens, v)
	return u
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *LLMRequestEventUpsert) UpdateInputTokens() *LLMRequestEventUpsert {
	u.SetExcluded(llmrequestevent.FieldInputTokens)
	return u
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *LLMRequestEventUpsert) AddInputTokens(v int) *LLMRequestEventUpsert {
	u.Add(llmrequestevent.FieldInputTokens, v)
	return u
}

// SetOutputTokens sets the "output_tokens" field.
func (u *LLMRequestEventUpsert) SetOutputTokens(v int) *LLMRequestEventUpsert {
	u.Set(llmrequestevent.FieldOutputTokens, v)
	return u
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *LLMRequestEventUpsert) UpdateOutputTokens() *LLMRequestEventUpsert {
	u.SetExcluded(llmrequestevent.FieldOutputTokens)
	return u
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *LLMRequestEventUpsert) AddOutputTokens(v int) *LLMRequestEventUpsert {
	u.Add(llmrequestevent.FieldOutputTokens, v)
	return u
}

// SetLatencyMs sets the "latency_ms" field.
func (u *LLMRequestEventUpsert) SetLatencyMs(v int64) *LLMRequestEventUpsert {
	u.Set(llmrequestevent.FieldLatencyMs, v)
	return u
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *LLMRequestEventUpsert) UpdateLatencyMs() *LLMRequestEventUpsert {
	u.SetExcluded(llmrequestevent.FieldLatencyMs)
	return u
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *LLMRequestEventUpsert) AddLatencyMs(v int64) *LLMRequestEventUpsert {
	u.Add(llmrequestevent.FieldLatencyMs, v)
	return u
}

// SetSuccess sets the "success" field.
func (u *LLMRequestEventUpsert) SetSuccess(v bool) *LLMRequestEventUpsert {
	u.Set(llmrequestevent.FieldSuccess, v)
	return u
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *LLMRequestEventUpsert) UpdateSuccess() *LLMRequestEventUpsert {
	u.SetExcluded(llmrequestevent.FieldSuccess)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *LLMRequestEventUpsert) SetErrorMessage(v string) *LLMRequestEventUpsert {
	u.Set(llmrequestevent.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LLMRequestEventUpsert) UpdateErrorMessage() *LLMRequestEventUpsert {
	u.SetExcluded(llmrequestevent.FieldErrorMessage)
	return u
}

// SetRequestBody sets the "request_body" field.
func (u *LLMRequestEventUpsert) SetRequestBody(v string) *LLMRequestEventUpsert {
	u.Set(llmrequestevent.FieldRequestBody, v)
	return u
}

// UpdateRequestBody sets the "request_body" field to the value that was provided on create.
func (u *LLMRequestEventUpsert) UpdateRequestBody() *LLMRequestEventUpsert {
	u.SetExcluded(llmrequestevent.FieldRequestBody)
	return u
}

// SetResponseBody sets the "response_body" field.
func (u *LLMRequestEventUpsert) SetResponseBody(v string) *LLMRequestEventUpsert {
	u.Set(llmrequestevent.FieldResponseBody, v)
	return u
}

// UpdateResponseBody sets the "response_body" field to the value that was provided on create.
func (u *LLMRequestEventUpsert) UpdateResponseBody() *LLMRequestEventUpsert {
	u.SetExcluded(llmrequestevent.FieldResponseBody)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.LLMRequestEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LLMRequestEventUpsertOne) UpdateNewValues() *LLMRequestEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(llmrequestevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(llmrequestevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LLMRequestEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LLMRequestEventUpsertOne) Ignore() *LLMRequestEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LLMRequestEventUpsertOne) DoNothing() *LLMRequestEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LLMRequestEventCreate.OnConflict
// documentation for more info.
func (u *LLMRequestEventUpsertOne) Update(set func(*LLMRequestEventUpsert)) *LLMRequestEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LLMRequestEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *LLMRequestEventUpsertOne) SetProvider(v string) *LLMRequestEventUpsertOne {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMRequestEventUpsertOne) UpdateProvider() *LLMRequestEventUpsertOne {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.UpdateProvider()
	})
}

// SetModel sets the "model" field.
func (u *LLMRequestEventUpsertOne) SetModel(v string) *LLMRequestEventUpsertOne {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *LLMRequestEventUpsertOne) UpdateModel() *LLMRequestEventUpsertOne {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.UpdateModel()
	})
}

// SetPurpose sets the "purpose" field.
func (u *LLMRequestEventUpsertOne) SetPurpose(v string) *LLMRequestEventUpsertOne {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.SetPurpose(v)
	})
}

// UpdatePurpose sets the "purpose" field to the value that was provided on create.
func (u *LLMRequestEventUpsertOne) UpdatePurpose() *LLMRequestEventUpsertOne {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.UpdatePurpose()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *LLMRequestEventUpsertOne) SetInputTokens(v int) *LLMRequestEventUpsertOne {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *LLMRequestEventUpsertOne) AddInputTokens(v int) *LLMRequestEventUpsertOne {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *LLMRequestEventUpsertOne) UpdateInputTokens() *LLMRequestEventUpsertOne {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *LLMRequestEventUpsertOne) SetOutputTokens(v int) *LLMRequestEventUpsertOne {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *LLMRequestEventUpsertOne) AddOutputTokens(v int) *LLMRequestEventUpsertOne {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *LLMRequestEventUpsertOne) UpdateOutputTokens() *LLMRequestEventUpsertOne {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *LLMRequestEventUpsertOne) SetLatencyMs(v int64) *LLMRequestEventUpsertOne {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *LLMRequestEventUpsertOne) AddLatencyMs(v int64) *LLMRequestEventUpsertOne {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *LLMRequestEventUpsertOne) UpdateLatencyMs() *LLMRequestEventUpsertOne {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetSuccess sets the "success" field.
func (u *LLMRequestEventUpsertOne) SetSuccess(v bool) *LLMRequestEventUpsertOne {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *LLMRequestEventUpsertOne) UpdateSuccess() *LLMRequestEventUpsertOne {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.UpdateSuccess()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *LLMRequestEventUpsertOne) SetErrorMessage(v string) *LLMRequestEventUpsertOne {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LLMRequestEventUpsertOne) UpdateErrorMessage() *LLMRequestEventUpsertOne {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.UpdateErrorMessage()
	})
}

// SetRequestBody sets the "request_body" field.
func (u *LLMRequestEventUpsertOne) SetRequestBody(v string) *LLMRequestEventUpsertOne {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.SetRequestBody(v)
	})
}

// UpdateRequestBody sets the "request_body" field to the value that was provided on create.
func (u *LLMRequestEventUpsertOne) UpdateRequestBody() *LLMRequestEventUpsertOne {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.UpdateRequestBody()
	})
}

// SetResponseBody sets the "response_body" field.
func (u *LLMRequestEventUpsertOne) SetResponseBody(v string) *LLMRequestEventUpsertOne {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.SetResponseBody(v)
	})
}

// UpdateResponseBody sets the "response_body" field to the value that was provided on create.
func (u *LLMRequestEventUpsertOne) UpdateResponseBody() *LLMRequestEventUpsertOne {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.UpdateResponseBody()
	})
}

// Exec executes the query.
func (u *LLMRequestEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LLMRequestEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LLMRequestEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LLMRequestEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LLMRequestEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LLMRequestEventCreateBulk is the builder for creating many LLMRequestEvent entities in bulk.
type LLMRequestEventCreateBulk struct {
	config
	err      error
	builders []*LLMRequestEventCreate
	conflict []sql.ConflictOption
}

// Save creates the LLMRequestEvent entities in the database.
func (_c *LLMRequestEventCreateBulk) Save(ctx context.Context) ([]*LLMRequestEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LLMRequestEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LLMRequestEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LLMRequestEventCreateBulk) SaveX(ctx context.Context) []*LLMRequestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMRequestEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMRequestEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LLMRequestEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LLMRequestEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *LLMRequestEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *LLMRequestEventUpsertBulk {
	_c.conflict = opts
	return &LLMRequestEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LLMRequestEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LLMRequestEventCreateBulk) OnConflictColumns(columns ...string) *LLMRequestEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LLMRequestEventUpsertBulk{
		create: _c,
	}
}

// LLMRequestEventUpsertBulk is the builder for "upsert"-ing
// a bulk of LLMRequestEvent nodes.
type LLMRequestEventUpsertBulk struct {
	create *LLMRequestEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LLMRequestEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LLMRequestEventUpsertBulk) UpdateNewValues() *LLMRequestEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(llmrequestevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(llmrequestevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LLMRequestEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LLMRequestEventUpsertBulk) Ignore() *LLMRequestEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LLMRequestEventUpsertBulk) DoNothing() *LLMRequestEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LLMRequestEventCreateBulk.OnConflict
// documentation for more info.
func (u *LLMRequestEventUpsertBulk) Update(set func(*LLMRequestEventUpsert)) *LLMRequestEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LLMRequestEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *LLMRequestEventUpsertBulk) SetProvider(v string) *LLMRequestEventUpsertBulk {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMRequestEventUpsertBulk) UpdateProvider() *LLMRequestEventUpsertBulk {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.UpdateProvider()
	})
}

// SetModel sets the "model" field.
func (u *LLMRequestEventUpsertBulk) SetModel(v string) *LLMRequestEventUpsertBulk {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *LLMRequestEventUpsertBulk) UpdateModel() *LLMRequestEventUpsertBulk {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.UpdateModel()
	})
}

// SetPurpose sets the "purpose" field.
func (u *LLMRequestEventUpsertBulk) SetPurpose(v string) *LLMRequestEventUpsertBulk {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.SetPurpose(v)
	})
}

// UpdatePurpose sets the "purpose" field to the value that was provided on create.
func (u *LLMRequestEventUpsertBulk) UpdatePurpose() *LLMRequestEventUpsertBulk {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.UpdatePurpose()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *LLMRequestEventUpsertBulk) SetInputTokens(v int) *LLMRequestEventUpsertBulk {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *LLMRequestEventUpsertBulk) AddInputTokens(v int) *LLMRequestEventUpsertBulk {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *LLMRequestEventUpsertBulk) UpdateInputTokens() *LLMRequestEventUpsertBulk {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *LLMRequestEventUpsertBulk) SetOutputTokens(v int) *LLMRequestEventUpsertBulk {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *LLMRequestEventUpsertBulk) AddOutputTokens(v int) *LLMRequestEventUpsertBulk {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *LLMRequestEventUpsertBulk) UpdateOutputTokens() *LLMRequestEventUpsertBulk {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *LLMRequestEventUpsertBulk) SetLatencyMs(v int64) *LLMRequestEventUpsertBulk {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *LLMRequestEventUpsertBulk) AddLatencyMs(v int64) *LLMRequestEventUpsertBulk {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *LLMRequestEventUpsertBulk) UpdateLatencyMs() *LLMRequestEventUpsertBulk {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetSuccess sets the "success" field.
func (u *LLMRequestEventUpsertBulk) SetSuccess(v bool) *LLMRequestEventUpsertBulk {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *LLMRequestEventUpsertBulk) UpdateSuccess() *LLMRequestEventUpsertBulk {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.UpdateSuccess()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *LLMRequestEventUpsertBulk) SetErrorMessage(v string) *LLMRequestEventUpsertBulk {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LLMRequestEventUpsertBulk) UpdateErrorMessage() *LLMRequestEventUpsertBulk {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.UpdateErrorMessage()
	})
}

// SetRequestBody sets the "request_body" field.
func (u *LLMRequestEventUpsertBulk) SetRequestBody(v string) *LLMRequestEventUpsertBulk {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.SetRequestBody(v)
	})
}

// UpdateRequestBody sets the "request_body" field to the value that was provided on create.
func (u *LLMRequestEventUpsertBulk) UpdateRequestBody() *LLMRequestEventUpsertBulk {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.UpdateRequestBody()
	})
}

// SetResponseBody sets the "response_body" field.
func (u *LLMRequestEventUpsertBulk) SetResponseBody(v string) *LLMRequestEventUpsertBulk {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.SetResponseBody(v)
	})
}

// UpdateResponseBody sets the "response_body" field to the value that was provided on create.
func (u *LLMRequestEventUpsertBulk) UpdateResponseBody() *LLMRequestEventUpsertBulk {
	return u.Update(func(s *LLMRequestEventUpsert) {
		s.UpdateResponseBody()
	})
}

// Exec executes the query.
func (u *LLMRequestEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LLMRequestEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LLMRequestEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LLMRequestEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
