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
	"github.com/zaeon-io/zaeon-core/ent/workspace"
)

// WorkspaceCreate is the builder for creating a Workspace entity.
type WorkspaceCreate struct {
	config
	mutation *WorkspaceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetOwnerID sets the "owner_id" field.
func (_c *WorkspaceCreate) SetOwnerID(v string) *WorkspaceCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *WorkspaceCreate) SetTitle(v string) *WorkspaceCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableTitle(v *string) *WorkspaceCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *WorkspaceCreate) SetContent(v string) *WorkspaceCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableContent(v *string) *WorkspaceCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetAgent sets the "agent" field.
func (_c *WorkspaceCreate) SetAgent(v string) *WorkspaceCreate {
	_c.mutation.SetAgent(v)
	return _c
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableAgent(v *string) *WorkspaceCreate {
	if v != nil {
		_c.SetAgent(*v)
	}
	return _c
}

// SetSchedule sets the "schedule" field.
func (_c *WorkspaceCreate) SetSchedule(v []map[string]interface{}) *WorkspaceCreate {
	_c.mutation.SetSchedule(v)
	return _c
}

// SetTranscript sets the "transcript" field.
func (_c *WorkspaceCreate) SetTranscript(v []map[string]interface{}) *WorkspaceCreate {
	_c.mutation.SetTranscript(v)
	return _c
}

// SetLogs sets the "logs" field.
func (_c *WorkspaceCreate) SetLogs(v []string) *WorkspaceCreate {
	_c.mutation.SetLogs(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkspaceCreate) SetUpdatedAt(v time.Time) *WorkspaceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableUpdatedAt(v *time.Time) *WorkspaceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the WorkspaceMutation object of the builder.
func (_c *WorkspaceCreate) Mutation() *WorkspaceMutation {
	return _c.mutation
}

// Save creates the Workspace in the database.
func (_c *WorkspaceCreate) Save(ctx context.Context) (*Workspace, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkspaceCreate) SaveX(ctx context.Context) *Workspace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkspaceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkspaceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkspaceCreate) defaults() {
	if _, ok := _c.mutation.Title(); !ok {
		v := workspace.DefaultTitle
		_c.mutation.SetTitle(v)
	}
	if _, ok := _c.mutation.Content(); !ok {
		v := workspace.DefaultContent
		_c.mutation.SetContent(v)
	}
	if _, ok := _c.mutation.Agent(); !ok {
		v := workspace.DefaultAgent
		_c.mutation.SetAgent(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workspace.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkspaceCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Workspace.owner_id"`)}
	}
	if v, ok := _c.mutation.OwnerID(); ok {
		if err := workspace.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "Workspace.owner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Workspace.title"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Workspace.content"`)}
	}
	if _, ok := _c.mutation.Agent(); !ok {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required field "Workspace.agent"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Workspace.updated_at"`)}
	}
	return nil
}

func (_c *WorkspaceCreate) sqlSave(ctx context.Context) (*Workspace, error) {
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

func (_c *WorkspaceCreate) createSpec() (*Workspace, *sqlgraph.CreateSpec) {
	var (
		_node = &Workspace{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workspace.Table, sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(workspace.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(workspace.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(workspace.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Agent(); ok {
		_spec.SetField(workspace.FieldAgent, field.TypeString, value)
		_node.Agent = value
	}
	if value, ok := _c.mutation.Schedule(); ok {
		_spec.SetField(workspace.FieldSchedule, field.TypeJSON, value)
		_node.Schedule = value
	}
	if value, ok := _c.mutation.Transcript(); ok {
		_spec.SetField(workspace.FieldTranscript, field.TypeJSON, value)
		_node.Transcript = value
	}
	if value, ok := _c.mutation.Logs(); ok {
		_spec.SetField(workspace.FieldLogs, field.TypeJSON, value)
		_node.Logs = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workspace.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Workspace.Create().
//		SetOwnerID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkspaceUpsert) {
//			SetOwnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkspaceCreate) OnConflict(opts ...sql.ConflictOption) *WorkspaceUpsertOne {
	_c.conflict = opts
	return &WorkspaceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Workspace.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkspaceCreate) OnConflictColumns(columns ...string) *WorkspaceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkspaceUpsertOne{
		create: _c,
	}
}

type (
	// WorkspaceUpsertOne is the builder for "upsert"-ing
	//  one Workspace node.
	WorkspaceUpsertOne struct {
		create *WorkspaceCreate
	}

	// WorkspaceUpsert is the "OnConflict" setter.
	WorkspaceUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *WorkspaceUpsert) SetTitle(v string) *WorkspaceUpsert {
	u.Set(workspace.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *WorkspaceUpsert) UpdateTitle() *WorkspaceUpsert {
	u.SetExcluded(workspace.FieldTitle)
	return u
}

// SetContent sets the "content" field.
func (u *WorkspaceUpsert) SetContent(v string) *WorkspaceUpsert {
	u.Set(workspace.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *WorkspaceUpsert) UpdateContent() *WorkspaceUpsert {
	u.SetExcluded(workspace.FieldContent)
	return u
}

// SetAgent sets the "agent" field.
func (u *WorkspaceUpsert) SetAgent(v string) *WorkspaceUpsert {
	u.Set(workspace.FieldAgent, v)
	return u
}

// UpdateAgent sets the "agent" field to the value that was provided on create.
func (u *WorkspaceUpsert) UpdateAgent() *WorkspaceUpsert {
	u.SetExcluded(workspace.FieldAgent)
	return u
}

// SetSchedule sets the "schedule" field.
func (u *WorkspaceUpsert) SetSchedule(v []map[string]interface{}) *WorkspaceUpsert {
	u.Set(workspace.FieldSchedule, v)
	return u
}

// UpdateSchedule sets the "schedule" field to the value that was provided on create.
func (u *WorkspaceUpsert) UpdateSchedule() *WorkspaceUpsert {
	u.SetExcluded(workspace.FieldSchedule)
	return u
}

// ClearSchedule clears the value of the "schedule" field.
func (u *WorkspaceUpsert) ClearSchedule() *WorkspaceUpsert {
	u.SetNull(workspace.FieldSchedule)
	return u
}

// SetTranscript sets the "transcript" field.
func (u *WorkspaceUpsert) SetTranscript(v []map[string]interface{}) *WorkspaceUpsert {
	u.Set(workspace.FieldTranscript, v)
	return u
}

// UpdateTranscript sets the "transcript" field to the value that was provided on create.
func (u *WorkspaceUpsert) UpdateTranscript() *WorkspaceUpsert {
	u.SetExcluded(workspace.FieldTranscript)
	return u
}

// ClearTranscript clears the value of the "transcript" field.
func (u *WorkspaceUpsert) ClearTranscript() *WorkspaceUpsert {
	u.SetNull(workspace.FieldTranscript)
	return u
}

// SetLogs sets the "logs" field.
func (u *WorkspaceUpsert) SetLogs(v []string) *WorkspaceUpsert {
	u.Set(workspace.FieldLogs, v)
	return u
}

// UpdateLogs sets the "logs" field to the value that was provided on create.
func (u *WorkspaceUpsert) UpdateLogs() *WorkspaceUpsert {
	u.SetExcluded(workspace.FieldLogs)
	return u
}

// ClearLogs clears the value of the "logs" field.
func (u *WorkspaceUpsert) ClearLogs() *WorkspaceUpsert {
	u.SetNull(workspace.FieldLogs)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkspaceUpsert) SetUpdatedAt(v time.Time) *WorkspaceUpsert {
	u.Set(workspace.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkspaceUpsert) UpdateUpdatedAt() *WorkspaceUpsert {
	u.SetExcluded(workspace.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Workspace.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *WorkspaceUpsertOne) UpdateNewValues() *WorkspaceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.OwnerID(); exists {
			s.SetIgnore(workspace.FieldOwnerID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Workspace.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WorkspaceUpsertOne) Ignore() *WorkspaceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkspaceUpsertOne) DoNothing() *WorkspaceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkspaceCreate.OnConflict
// documentation for more info.
func (u *WorkspaceUpsertOne) Update(set func(*WorkspaceUpsert)) *WorkspaceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkspaceUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *WorkspaceUpsertOne) SetTitle(v string) *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *WorkspaceUpsertOne) UpdateTitle() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateTitle()
	})
}

// SetContent sets the "content" field.
func (u *WorkspaceUpsertOne) SetContent(v string) *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *WorkspaceUpsertOne) UpdateContent() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateContent()
	})
}

// SetAgent sets the "agent" field.
func (u *WorkspaceUpsertOne) SetAgent(v string) *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetAgent(v)
	})
}

// UpdateAgent sets the "agent" field to the value that was provided on create.
func (u *WorkspaceUpsertOne) UpdateAgent() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateAgent()
	})
}

// SetSchedule sets the "schedule" field.
func (u *WorkspaceUpsertOne) SetSchedule(v []map[string]interface{}) *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetSchedule(v)
	})
}

// UpdateSchedule sets the "schedule" field to the value that was provided on create.
func (u *WorkspaceUpsertOne) UpdateSchedule() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateSchedule()
	})
}

// ClearSchedule clears the value of the "schedule" field.
func (u *WorkspaceUpsertOne) ClearSchedule() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.ClearSchedule()
	})
}

// SetTranscript sets the "transcript" field.
func (u *WorkspaceUpsertOne) SetTranscript(v []map[string]interface{}) *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetTranscript(v)
	})
}

// UpdateTranscript sets the "transcript" field to the value that was provided on create.
func (u *WorkspaceUpsertOne) UpdateTranscript() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateTranscript()
	})
}

// ClearTranscript clears the value of the "transcript" field.
func (u *WorkspaceUpsertOne) ClearTranscript() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.ClearTranscript()
	})
}

// SetLogs sets the "logs" field.
func (u *WorkspaceUpsertOne) SetLogs(v []string) *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetLogs(v)
	})
}

// UpdateLogs sets the "logs" field to the value that was provided on create.
func (u *WorkspaceUpsertOne) UpdateLogs() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateLogs()
	})
}

// ClearLogs clears the value of the "logs" field.
func (u *WorkspaceUpsertOne) ClearLogs() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.ClearLogs()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkspaceUpsertOne) SetUpdatedAt(v time.Time) *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkspaceUpsertOne) UpdateUpdatedAt() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *WorkspaceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkspaceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkspaceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WorkspaceUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WorkspaceUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WorkspaceCreateBulk is the builder for creating many Workspace entities in bulk.
type WorkspaceCreateBulk struct {
	config
	err      error
	builders []*WorkspaceCreate
	conflict []sql.ConflictOption
}

// Save creates the Workspace entities in the database.
func (_c *WorkspaceCreateBulk) Save(ctx context.Context) ([]*Workspace, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Workspace, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkspaceMutation)
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
func (_c *WorkspaceCreateBulk) SaveX(ctx context.Context) []*Workspace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkspaceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkspaceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Workspace.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkspaceUpsert) {
//			SetOwnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkspaceCreateBulk) OnConflict(opts ...sql.ConflictOption) *WorkspaceUpsertBulk {
	_c.conflict = opts
	return &WorkspaceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Workspace.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkspaceCreateBulk) OnConflictColumns(columns ...string) *WorkspaceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkspaceUpsertBulk{
		create: _c,
	}
}

// WorkspaceUpsertBulk is the builder for "upsert"-ing
// a bulk of Workspace nodes.
type WorkspaceUpsertBulk struct {
	create *WorkspaceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Workspace.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *WorkspaceUpsertBulk) UpdateNewValues() *WorkspaceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.OwnerID(); exists {
				s.SetIgnore(workspace.FieldOwnerID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Workspace.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WorkspaceUpsertBulk) Ignore() *WorkspaceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkspaceUpsertBulk) DoNothing() *WorkspaceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkspaceCreateBulk.OnConflict
// documentation for more info.
func (u *WorkspaceUpsertBulk) Update(set func(*WorkspaceUpsert)) *WorkspaceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkspaceUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *WorkspaceUpsertBulk) SetTitle(v string) *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *WorkspaceUpsertBulk) UpdateTitle() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateTitle()
	})
}

// SetContent sets the "content" field.
func (u *WorkspaceUpsertBulk) SetContent(v string) *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *WorkspaceUpsertBulk) UpdateContent() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateContent()
	})
}

// SetAgent sets the "agent" field.
func (u *WorkspaceUpsertBulk) SetAgent(v string) *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetAgent(v)
	})
}

// UpdateAgent sets the "agent" field to the value that was provided on create.
func (u *WorkspaceUpsertBulk) UpdateAgent() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateAgent()
	})
}

// SetSchedule sets the "schedule" field.
func (u *WorkspaceUpsertBulk) SetSchedule(v []map[string]interface{}) *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetSchedule(v)
	})
}

// UpdateSchedule sets the "schedule" field to the value that was provided on create.
func (u *WorkspaceUpsertBulk) UpdateSchedule() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateSchedule()
	})
}

// ClearSchedule clears the value of the "schedule" field.
func (u *WorkspaceUpsertBulk) ClearSchedule() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.ClearSchedule()
	})
}

// SetTranscript sets the "transcript" field.
func (u *WorkspaceUpsertBulk) SetTranscript(v []map[string]interface{}) *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetTranscript(v)
	})
}

// UpdateTranscript sets the "transcript" field to the value that was provided on create.
func (u *WorkspaceUpsertBulk) UpdateTranscript() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateTranscript()
	})
}

// ClearTranscript clears the value of the "transcript" field.
func (u *WorkspaceUpsertBulk) ClearTranscript() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.ClearTranscript()
	})
}

// SetLogs sets the "logs" field.
func (u *WorkspaceUpsertBulk) SetLogs(v []string) *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetLogs(v)
	})
}

// UpdateLogs sets the "logs" field to the value that was provided on create.
func (u *WorkspaceUpsertBulk) UpdateLogs() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateLogs()
	})
}

// ClearLogs clears the value of the "logs" field.
func (u *WorkspaceUpsertBulk) ClearLogs() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.ClearLogs()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkspaceUpsertBulk) SetUpdatedAt(v time.Time) *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkspaceUpsertBulk) UpdateUpdatedAt() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *WorkspaceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WorkspaceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkspaceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkspaceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
