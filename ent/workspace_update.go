// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/zaeon-io/zaeon-core/ent/predicate"
	"github.com/zaeon-io/zaeon-core/ent/workspace"
)

// WorkspaceUpdate is the builder for updating Workspace entities.
type WorkspaceUpdate struct {
	config
	hooks    []Hook
	mutation *WorkspaceMutation
}

// Where appends a list predicates to the WorkspaceUpdate builder.
func (_u *WorkspaceUpdate) Where(ps ...predicate.Workspace) *WorkspaceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *WorkspaceUpdate) SetTitle(v string) *WorkspaceUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableTitle(v *string) *WorkspaceUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *WorkspaceUpdate) SetContent(v string) *WorkspaceUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableContent(v *string) *WorkspaceUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetAgent sets the "agent" field.
func (_u *WorkspaceUpdate) SetAgent(v string) *WorkspaceUpdate {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableAgent(v *string) *WorkspaceUpdate {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetSchedule sets the "schedule" field.
func (_u *WorkspaceUpdate) SetSchedule(v []map[string]interface{}) *WorkspaceUpdate {
	_u.mutation.SetSchedule(v)
	return _u
}

// AppendSchedule appends value to the "schedule" field.
func (_u *WorkspaceUpdate) AppendSchedule(v []map[string]interface{}) *WorkspaceUpdate {
	_u.mutation.AppendSchedule(v)
	return _u
}

// ClearSchedule clears the value of the "schedule" field.
func (_u *WorkspaceUpdate) ClearSchedule() *WorkspaceUpdate {
	_u.mutation.ClearSchedule()
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *WorkspaceUpdate) SetTranscript(v []map[string]interface{}) *WorkspaceUpdate {
	_u.mutation.SetTranscript(v)
	return _u
}

// AppendTranscript appends value to the "transcript" field.
func (_u *WorkspaceUpdate) AppendTranscript(v []map[string]interface{}) *WorkspaceUpdate {
	_u.mutation.AppendTranscript(v)
	return _u
}

// ClearTranscript clears the value of the "transcript" field.
func (_u *WorkspaceUpdate) ClearTranscript() *WorkspaceUpdate {
	_u.mutation.ClearTranscript()
	return _u
}

// SetLogs sets the "logs" field.
func (_u *WorkspaceUpdate) SetLogs(v []string) *WorkspaceUpdate {
	_u.mutation.SetLogs(v)
	return _u
}

// AppendLogs appends value to the "logs" field.
func (_u *WorkspaceUpdate) AppendLogs(v []string) *WorkspaceUpdate {
	_u.mutation.AppendLogs(v)
	return _u
}

// ClearLogs clears the value of the "logs" field.
func (_u *WorkspaceUpdate) ClearLogs() *WorkspaceUpdate {
	_u.mutation.ClearLogs()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkspaceUpdate) SetUpdatedAt(v time.Time) *WorkspaceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkspaceMutation object of the builder.
func (_u *WorkspaceUpdate) Mutation() *WorkspaceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkspaceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkspaceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkspaceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkspaceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkspaceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workspace.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *WorkspaceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(workspace.Table, workspace.Columns, sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(workspace.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(workspace.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(workspace.FieldAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Schedule(); ok {
		_spec.SetField(workspace.FieldSchedule, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSchedule(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workspace.FieldSchedule, value)
		})
	}
	if _u.mutation.ScheduleCleared() {
		_spec.ClearField(workspace.FieldSchedule, field.TypeJSON)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(workspace.FieldTranscript, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTranscript(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workspace.FieldTranscript, value)
		})
	}
	if _u.mutation.TranscriptCleared() {
		_spec.ClearField(workspace.FieldTranscript, field.TypeJSON)
	}
	if value, ok := _u.mutation.Logs(); ok {
		_spec.SetField(workspace.FieldLogs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLogs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workspace.FieldLogs, value)
		})
	}
	if _u.mutation.LogsCleared() {
		_spec.ClearField(workspace.FieldLogs, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workspace.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workspace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkspaceUpdateOne is the builder for updating a single Workspace entity.
type WorkspaceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkspaceMutation
}

// SetTitle sets the "title" field.
func (_u *WorkspaceUpdateOne) SetTitle(v string) *WorkspaceUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableTitle(v *string) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *WorkspaceUpdateOne) SetContent(v string) *WorkspaceUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableContent(v *string) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetAgent sets the "agent" field.
func (_u *WorkspaceUpdateOne) SetAgent(v string) *WorkspaceUpdateOne {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableAgent(v *string) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetSchedule sets the "schedule" field.
func (_u *WorkspaceUpdateOne) SetSchedule(v []map[string]interface{}) *WorkspaceUpdateOne {
	_u.mutation.SetSchedule(v)
	return _u
}

// AppendSchedule appends value to the "schedule" field.
func (_u *WorkspaceUpdateOne) AppendSchedule(v []map[string]interface{}) *WorkspaceUpdateOne {
	_u.mutation.AppendSchedule(v)
	return _u
}

// ClearSchedule clears the value of the "schedule" field.
func (_u *WorkspaceUpdateOne) ClearSchedule() *WorkspaceUpdateOne {
	_u.mutation.ClearSchedule()
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *WorkspaceUpdateOne) SetTranscript(v []map[string]interface{}) *WorkspaceUpdateOne {
	_u.mutation.SetTranscript(v)
	return _u
}

// AppendTranscript appends value to the "transcript" field.
func (_u *WorkspaceUpdateOne) AppendTranscript(v []map[string]interface{}) *WorkspaceUpdateOne {
	_u.mutation.AppendTranscript(v)
	return _u
}

// ClearTranscript clears the value of the "transcript" field.
func (_u *WorkspaceUpdateOne) ClearTranscript() *WorkspaceUpdateOne {
	_u.mutation.ClearTranscript()
	return _u
}

// SetLogs sets the "logs" field.
func (_u *WorkspaceUpdateOne) SetLogs(v []string) *WorkspaceUpdateOne {
	_u.mutation.SetLogs(v)
	return _u
}

// AppendLogs appends value to the "logs" field.
func (_u *WorkspaceUpdateOne) AppendLogs(v []string) *WorkspaceUpdateOne {
	_u.mutation.AppendLogs(v)
	return _u
}

// ClearLogs clears the value of the "logs" field.
func (_u *WorkspaceUpdateOne) ClearLogs() *WorkspaceUpdateOne {
	_u.mutation.ClearLogs()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkspaceUpdateOne) SetUpdatedAt(v time.Time) *WorkspaceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkspaceMutation object of the builder.
func (_u *WorkspaceUpdateOne) Mutation() *WorkspaceMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkspaceUpdate builder.
func (_u *WorkspaceUpdateOne) Where(ps ...predicate.Workspace) *WorkspaceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkspaceUpdateOne) Select(field string, fields ...string) *WorkspaceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Workspace entity.
func (_u *WorkspaceUpdateOne) Save(ctx context.Context) (*Workspace, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkspaceUpdateOne) SaveX(ctx context.Context) *Workspace {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkspaceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkspaceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkspaceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workspace.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *WorkspaceUpdateOne) sqlSave(ctx context.Context) (_node *Workspace, err error) {
	_spec := sqlgraph.NewUpdateSpec(workspace.Table, workspace.Columns, sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Workspace.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workspace.FieldID)
		for _, f := range fields {
			if !workspace.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workspace.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(workspace.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(workspace.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(workspace.FieldAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Schedule(); ok {
		_spec.SetField(workspace.FieldSchedule, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSchedule(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workspace.FieldSchedule, value)
		})
	}
	if _u.mutation.ScheduleCleared() {
		_spec.ClearField(workspace.FieldSchedule, field.TypeJSON)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(workspace.FieldTranscript, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTranscript(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workspace.FieldTranscript, value)
		})
	}
	if _u.mutation.TranscriptCleared() {
		_spec.ClearField(workspace.FieldTranscript, field.TypeJSON)
	}
	if value, ok := _u.mutation.Logs(); ok {
		_spec.SetField(workspace.FieldLogs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLogs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workspace.FieldLogs, value)
		})
	}
	if _u.mutation.LogsCleared() {
		_spec.ClearField(workspace.FieldLogs, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workspace.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Workspace{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workspace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
