// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/solacecommunity/agent-mesh-gateway/ent/scheduledtask"
	"github.com/solacecommunity/agent-mesh-gateway/ent/scheduledtaskexecution"
)

// ScheduledTaskExecutionCreate is the builder for creating a ScheduledTaskExecution entity.
type ScheduledTaskExecutionCreate struct {
	config
	mutation *ScheduledTaskExecutionMutation
	hooks    []Hook
}

// SetScheduledTaskID sets the "scheduled_task_id" field.
func (_c *ScheduledTaskExecutionCreate) SetScheduledTaskID(v string) *ScheduledTaskExecutionCreate {
	_c.mutation.SetScheduledTaskID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScheduledTaskExecutionCreate) SetStatus(v scheduledtaskexecution.Status) *ScheduledTaskExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScheduledTaskExecutionCreate) SetNillableStatus(v *scheduledtaskexecution.Status) *ScheduledTaskExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetA2aTaskID sets the "a2a_task_id" field.
func (_c *ScheduledTaskExecutionCreate) SetA2aTaskID(v string) *ScheduledTaskExecutionCreate {
	_c.mutation.SetA2aTaskID(v)
	return _c
}

// SetNillableA2aTaskID sets the "a2a_task_id" field if the given value is not nil.
func (_c *ScheduledTaskExecutionCreate) SetNillableA2aTaskID(v *string) *ScheduledTaskExecutionCreate {
	if v != nil {
		_c.SetA2aTaskID(*v)
	}
	return _c
}

// SetScheduledFor sets the "scheduled_for" field.
func (_c *ScheduledTaskExecutionCreate) SetScheduledFor(v int64) *ScheduledTaskExecutionCreate {
	_c.mutation.SetScheduledFor(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ScheduledTaskExecutionCreate) SetStartedAt(v int64) *ScheduledTaskExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ScheduledTaskExecutionCreate) SetNillableStartedAt(v *int64) *ScheduledTaskExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ScheduledTaskExecutionCreate) SetCompletedAt(v int64) *ScheduledTaskExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ScheduledTaskExecutionCreate) SetNillableCompletedAt(v *int64) *ScheduledTaskExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetResultSummary sets the "result_summary" field.
func (_c *ScheduledTaskExecutionCreate) SetResultSummary(v map[string]interface{}) *ScheduledTaskExecutionCreate {
	_c.mutation.SetResultSummary(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ScheduledTaskExecutionCreate) SetErrorMessage(v string) *ScheduledTaskExecutionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ScheduledTaskExecutionCreate) SetNillableErrorMessage(v *string) *ScheduledTaskExecutionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *ScheduledTaskExecutionCreate) SetRetryCount(v int) *ScheduledTaskExecutionCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *ScheduledTaskExecutionCreate) SetNillableRetryCount(v *int) *ScheduledTaskExecutionCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetArtifacts sets the "artifacts" field.
func (_c *ScheduledTaskExecutionCreate) SetArtifacts(v []map[string]interface{}) *ScheduledTaskExecutionCreate {
	_c.mutation.SetArtifacts(v)
	return _c
}

// SetNotificationsSent sets the "notifications_sent" field.
func (_c *ScheduledTaskExecutionCreate) SetNotificationsSent(v map[string]interface{}) *ScheduledTaskExecutionCreate {
	_c.mutation.SetNotificationsSent(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ScheduledTaskExecutionCreate) SetID(v string) *ScheduledTaskExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetScheduledTask sets the "scheduled_task" edge to the ScheduledTask entity.
func (_c *ScheduledTaskExecutionCreate) SetScheduledTask(v *ScheduledTask) *ScheduledTaskExecutionCreate {
	return _c.SetScheduledTaskID(v.ID)
}

// Mutation returns the ScheduledTaskExecutionMutation object of the builder.
func (_c *ScheduledTaskExecutionCreate) Mutation() *ScheduledTaskExecutionMutation {
	return _c.mutation
}

// Save creates the ScheduledTaskExecution in the database.
func (_c *ScheduledTaskExecutionCreate) Save(ctx context.Context) (*ScheduledTaskExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduledTaskExecutionCreate) SaveX(ctx context.Context) *ScheduledTaskExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledTaskExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledTaskExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduledTaskExecutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := scheduledtaskexecution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := scheduledtaskexecution.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduledTaskExecutionCreate) check() error {
	if _, ok := _c.mutation.ScheduledTaskID(); !ok {
		return &ValidationError{Name: "scheduled_task_id", err: errors.New(`ent: missing required field "ScheduledTaskExecution.scheduled_task_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ScheduledTaskExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := scheduledtaskexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledTaskExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScheduledFor(); !ok {
		return &ValidationError{Name: "scheduled_for", err: errors.New(`ent: missing required field "ScheduledTaskExecution.scheduled_for"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "ScheduledTaskExecution.retry_count"`)}
	}
	if len(_c.mutation.ScheduledTaskIDs()) == 0 {
		return &ValidationError{Name: "scheduled_task", err: errors.New(`ent: missing required edge "ScheduledTaskExecution.scheduled_task"`)}
	}
	return nil
}

func (_c *ScheduledTaskExecutionCreate) sqlSave(ctx context.Context) (*ScheduledTaskExecution, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ScheduledTaskExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduledTaskExecutionCreate) createSpec() (*ScheduledTaskExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduledTaskExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scheduledtaskexecution.Table, sqlgraph.NewFieldSpec(scheduledtaskexecution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(scheduledtaskexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.A2aTaskID(); ok {
		_spec.SetField(scheduledtaskexecution.FieldA2aTaskID, field.TypeString, value)
		_node.A2aTaskID = &value
	}
	if value, ok := _c.mutation.ScheduledFor(); ok {
		_spec.SetField(scheduledtaskexecution.FieldScheduledFor, field.TypeInt64, value)
		_node.ScheduledFor = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(scheduledtaskexecution.FieldStartedAt, field.TypeInt64, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(scheduledtaskexecution.FieldCompletedAt, field.TypeInt64, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ResultSummary(); ok {
		_spec.SetField(scheduledtaskexecution.FieldResultSummary, field.TypeJSON, value)
		_node.ResultSummary = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(scheduledtaskexecution.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(scheduledtaskexecution.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.Artifacts(); ok {
		_spec.SetField(scheduledtaskexecution.FieldArtifacts, field.TypeJSON, value)
		_node.Artifacts = value
	}
	if value, ok := _c.mutation.NotificationsSent(); ok {
		_spec.SetField(scheduledtaskexecution.FieldNotificationsSent, field.TypeJSON, value)
		_node.NotificationsSent = value
	}
	if nodes := _c.mutation.ScheduledTaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledtaskexecution.ScheduledTaskTable,
			Columns: []string{scheduledtaskexecution.ScheduledTaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledtask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ScheduledTaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ScheduledTaskExecutionCreateBulk is the builder for creating many ScheduledTaskExecution entities in bulk.
type ScheduledTaskExecutionCreateBulk struct {
	config
	err      error
	builders []*ScheduledTaskExecutionCreate
}

// Save creates the ScheduledTaskExecution entities in the database.
func (_c *ScheduledTaskExecutionCreateBulk) Save(ctx context.Context) ([]*ScheduledTaskExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduledTaskExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduledTaskExecutionMutation)
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
func (_c *ScheduledTaskExecutionCreateBulk) SaveX(ctx context.Context) []*ScheduledTaskExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledTaskExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledTaskExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
