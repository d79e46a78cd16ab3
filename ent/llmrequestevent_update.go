// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/zaeon-io/zaeon-core/ent/llmrequestevent"
	"github.com/zaeon-io/zaeon-core/ent/predicate"
)

// LLMRequestEventUpdate is the builder for updating LLMRequestEvent entities.
type LLMRequestEventUpdate struct {
	config
	hooks    []Hook
	mutation *LLMRequestEventMutation
}

// Where appends a list predicates to the LLMRequestEventUpdate builder.
func (_u *LLMRequestEventUpdate) Where(ps ...predicate.LLMRequestEvent) *LLMRequestEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *LLMRequestEventUpdate) SetProvider(v string) *LLMRequestEventUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *LLMRequestEventUpdate) SetNillableProvider(v *string) *LLMRequestEventUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *LLMRequestEventUpdate) SetModel(v string) *LLMRequestEventUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *LLMRequestEventUpdate) SetNillableModel(v *string) *LLMRequestEventUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *LLMRequestEventUpdate) SetPurpose(v string) *LLMRequestEventUpdate {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *LLMRequestEventUpdate) SetNillablePurpose(v *string) *LLMRequestEventUpdate {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *LLMRequestEventUpdate) SetInputTokens(v int) *LLMRequestEventUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *LLMRequestEventUpdate) SetNillableInputTokens(v *int) *LLMRequestEventUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *LLMRequestEventUpdate) AddInputTokens(v int) *LLMRequestEventUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *LLMRequestEventUpdate) SetOutputTokens(v int) *LLMRequestEventUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *LLMRequestEventUpdate) SetNillableOutputTokens(v *int) *LLMRequestEventUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *LLMRequestEventUpdate) AddOutputTokens(v int) *LLMRequestEventUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *LLMRequestEventUpdate) SetLatencyMs(v int64) *LLMRequestEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *LLMRequestEventUpdate) SetNillableLatencyMs(v *int64) *LLMRequestEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *LLMRequestEventUpdate) AddLatencyMs(v int64) *LLMRequestEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *LLMRequestEventUpdate) SetSuccess(v bool) *LLMRequestEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *LLMRequestEventUpdate) SetNillableSuccess(v *bool) *LLMRequestEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LLMRequestEventUpdate) SetErrorMessage(v string) *LLMRequestEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LLMRequestEventUpdate) SetNillableErrorMessage(v *string) *LLMRequestEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetRequestBody sets the "request_body" field.
func (_u *LLMRequestEventUpdate) SetRequestBody(v string) *LLMRequestEventUpdate {
	_u.mutation.SetRequestBody(v)
	return _u
}

// SetNillableRequestBody sets the "request_body" field if the given value is not nil.
func (_u *LLMRequestEventUpdate) SetNillableRequestBody(v *string) *LLMRequestEventUpdate {
	if v != nil {
		_u.SetRequestBody(*v)
	}
	return _u
}

// SetResponseBody sets the "response_body" field.
func (_u *LLMRequestEventUpdate) SetResponseBody(v string) *LLMRequestEventUpdate {
	_u.mutation.SetResponseBody(v)
	return _u
}

// SetNillableResponseBody sets the "response_body" field if the given value is not nil.
func (_u *LLMRequestEventUpdate) SetNillableResponseBody(v *string) *LLMRequestEventUpdate {
	if v != nil {
		_u.SetResponseBody(*v)
	}
	return _u
}

// Mutation returns the LLMRequestEventMutation object of the builder.
func (_u *LLMRequestEventUpdate) Mutation() *LLMRequestEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LLMRequestEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMRequestEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LLMRequestEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMRequestEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LLMRequestEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(llmrequestevent.Table, llmrequestevent.Columns, sqlgraph.NewFieldSpec(llmrequestevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(llmrequestevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(llmrequestevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(llmrequestevent.FieldPurpose, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(llmrequestevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(llmrequestevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(llmrequestevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(llmrequestevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(llmrequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(llmrequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(llmrequestevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(llmrequestevent.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestBody(); ok {
		_spec.SetField(llmrequestevent.FieldRequestBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseBody(); ok {
		_spec.SetField(llmrequestevent.FieldResponseBody, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmrequestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LLMRequestEventUpdateOne is the builder for updating a single LLMRequestEvent entity.
type LLMRequestEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LLMRequestEventMutation
}

// SetProvider sets the "provider" field.
func (_u *LLMRequestEventUpdateOne) SetProvider(v string) *LLMRequestEventUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *LLMRequestEventUpdateOne) SetNillableProvider(v *string) *LLMRequestEventUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *LLMRequestEventUpdateOne) SetModel(v string) *LLMRequestEventUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *LLMRequestEventUpdateOne) SetNillableModel(v *string) *LLMRequestEventUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *LLMRequestEventUpdateOne) SetPurpose(v string) *LLMRequestEventUpdateOne {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *LLMRequestEventUpdateOne) SetNillablePurpose(v *string) *LLMRequestEventUpdateOne {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *LLMRequestEventUpdateOne) SetInputTokens(v int) *LLMRequestEventUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *LLMRequestEventUpdateOne) SetNillableInputTokens(v *int) *LLMRequestEventUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *LLMRequestEventUpdateOne) AddInputTokens(v int) *LLMRequestEventUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *LLMRequestEventUpdateOne) SetOutputTokens(v int) *LLMRequestEventUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *LLMRequestEventUpdateOne) SetNillableOutputTokens(v *int) *LLMRequestEventUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *LLMRequestEventUpdateOne) AddOutputTokens(v int) *LLMRequestEventUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *LLMRequestEventUpdateOne) SetLatencyMs(v int64) *LLMRequestEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *LLMRequestEventUpdateOne) SetNillableLatencyMs(v *int64) *LLMRequestEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *LLMRequestEventUpdateOne) AddLatencyMs(v int64) *LLMRequestEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *LLMRequestEventUpdateOne) SetSuccess(v bool) *LLMRequestEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *LLMRequestEventUpdateOne) SetNillableSuccess(v *bool) *LLMRequestEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LLMRequestEventUpdateOne) SetErrorMessage(v string) *LLMRequestEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LLMRequestEventUpdateOne) SetNillableErrorMessage(v *string) *LLMRequestEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetRequestBody sets the "request_body" field.
func (_u *LLMRequestEventUpdateOne) SetRequestBody(v string) *LLMRequestEventUpdateOne {
	_u.mutation.SetRequestBody(v)
	return _u
}

// SetNillableRequestBody sets the "request_body" field if the given value is not nil.
func (_u *LLMRequestEventUpdateOne) SetNillableRequestBody(v *string) *LLMRequestEventUpdateOne {
	if v != nil {
		_u.SetRequestBody(*v)
	}
	return _u
}

// SetResponseBody sets the "response_body" field.
func (_u *LLMRequestEventUpdateOne) SetResponseBody(v string) *LLMRequestEventUpdateOne {
	_u.mutation.SetResponseBody(v)
	return _u
}

// SetNillableResponseBody sets the "response_body" field if the given value is not nil.
func (_u *LLMRequestEventUpdateOne) SetNillableResponseBody(v *string) *LLMRequestEventUpdateOne {
	if v != nil {
		_u.SetResponseBody(*v)
	}
	return _u
}

// Mutation returns the LLMRequestEventMutation object of the builder.
func (_u *LLMRequestEventUpdateOne) Mutation() *LLMRequestEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the LLMRequestEventUpdate builder.
func (_u *LLMRequestEventUpdateOne) Where(ps ...predicate.LLMRequestEvent) *LLMRequestEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LLMRequestEventUpdateOne) Select(field string, fields ...string) *LLMRequestEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LLMRequestEvent entity.
func (_u *LLMRequestEventUpdateOne) Save(ctx context.Context) (*LLMRequestEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMRequestEventUpdateOne) SaveX(ctx context.Context) *LLMRequestEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LLMRequestEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMRequestEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LLMRequestEventUpdateOne) sqlSave(ctx context.Context) (_node *LLMRequestEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(llmrequestevent.Table, llmrequestevent.Columns, sqlgraph.NewFieldSpec(llmrequestevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LLMRequestEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, llmrequestevent.FieldID)
		for _, f := range fields {
			if !llmrequestevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != llmrequestevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(llmrequestevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(llmrequestevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(llmrequestevent.FieldPurpose, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(llmrequestevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(llmrequestevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(llmrequestevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(llmrequestevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(llmrequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(llmrequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(llmrequestevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(llmrequestevent.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestBody(); ok {
		_spec.SetField(llmrequestevent.FieldRequestBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseBody(); ok {
		_spec.SetField(llmrequestevent.FieldResponseBody, field.TypeString, value)
	}
	_node = &LLMRequestEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmrequestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
