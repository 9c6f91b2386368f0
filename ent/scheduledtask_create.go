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

// ScheduledTaskCreate is the builder for creating a ScheduledTask entity.
type ScheduledTaskCreate struct {
	config
	mutation *ScheduledTaskMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ScheduledTaskCreate) SetName(v string) *ScheduledTaskCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNamespace sets the "namespace" field.
func (_c *ScheduledTaskCreate) SetNamespace(v string) *ScheduledTaskCreate {
	_c.mutation.SetNamespace(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ScheduledTaskCreate) SetUserID(v string) *ScheduledTaskCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableUserID(v *string) *ScheduledTaskCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *ScheduledTaskCreate) SetCreatedBy(v string) *ScheduledTaskCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetScheduleType sets the "schedule_type" field.
func (_c *ScheduledTaskCreate) SetScheduleType(v scheduledtask.ScheduleType) *ScheduledTaskCreate {
	_c.mutation.SetScheduleType(v)
	return _c
}

// SetScheduleExpression sets the "schedule_expression" field.
func (_c *ScheduledTaskCreate) SetScheduleExpression(v string) *ScheduledTaskCreate {
	_c.mutation.SetScheduleExpression(v)
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *ScheduledTaskCreate) SetTimezone(v string) *ScheduledTaskCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableTimezone(v *string) *ScheduledTaskCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetTargetAgentName sets the "target_agent_name" field.
func (_c *ScheduledTaskCreate) SetTargetAgentName(v string) *ScheduledTaskCreate {
	_c.mutation.SetTargetAgentName(v)
	return _c
}

// SetTaskMessage sets the "task_message" field.
func (_c *ScheduledTaskCreate) SetTaskMessage(v []map[string]interface{}) *ScheduledTaskCreate {
	_c.mutation.SetTaskMessage(v)
	return _c
}

// SetTaskMetadata sets the "task_metadata" field.
func (_c *ScheduledTaskCreate) SetTaskMetadata(v map[string]interface{}) *ScheduledTaskCreate {
	_c.mutation.SetTaskMetadata(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *ScheduledTaskCreate) SetEnabled(v bool) *ScheduledTaskCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableEnabled(v *bool) *ScheduledTaskCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetMaxRetries sets the "max_retries" field.
func (_c *ScheduledTaskCreate) SetMaxRetries(v int) *ScheduledTaskCreate {
	_c.mutation.SetMaxRetries(v)
	return _c
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableMaxRetries(v *int) *ScheduledTaskCreate {
	if v != nil {
		_c.SetMaxRetries(*v)
	}
	return _c
}

// SetRetryDelaySeconds sets the "retry_delay_seconds" field.
func (_c *ScheduledTaskCreate) SetRetryDelaySeconds(v int) *ScheduledTaskCreate {
	_c.mutation.SetRetryDelaySeconds(v)
	return _c
}

// SetNillableRetryDelaySeconds sets the "retry_delay_seconds" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableRetryDelaySeconds(v *int) *ScheduledTaskCreate {
	if v != nil {
		_c.SetRetryDelaySeconds(*v)
	}
	return _c
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_c *ScheduledTaskCreate) SetTimeoutSeconds(v int) *ScheduledTaskCreate {
	_c.mutation.SetTimeoutSeconds(v)
	return _c
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableTimeoutSeconds(v *int) *ScheduledTaskCreate {
	if v != nil {
		_c.SetTimeoutSeconds(*v)
	}
	return _c
}

// SetNotificationConfig sets the "notification_config" field.
func (_c *ScheduledTaskCreate) SetNotificationConfig(v map[string]interface{}) *ScheduledTaskCreate {
	_c.mutation.SetNotificationConfig(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScheduledTaskCreate) SetCreatedAt(v int64) *ScheduledTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ScheduledTaskCreate) SetUpdatedAt(v int64) *ScheduledTaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNextRunAt sets the "next_run_at" field.
func (_c *ScheduledTaskCreate) SetNextRunAt(v int64) *ScheduledTaskCreate {
	_c.mutation.SetNextRunAt(v)
	return _c
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableNextRunAt(v *int64) *ScheduledTaskCreate {
	if v != nil {
		_c.SetNextRunAt(*v)
	}
	return _c
}

// SetLastRunAt sets the "last_run_at" field.
func (_c *ScheduledTaskCreate) SetLastRunAt(v int64) *ScheduledTaskCreate {
	_c.mutation.SetLastRunAt(v)
	return _c
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableLastRunAt(v *int64) *ScheduledTaskCreate {
	if v != nil {
		_c.SetLastRunAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ScheduledTaskCreate) SetDeletedAt(v int64) *ScheduledTaskCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableDeletedAt(v *int64) *ScheduledTaskCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScheduledTaskCreate) SetID(v string) *ScheduledTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddExecutionIDs adds the "executions" edge to the ScheduledTaskExecution entity by IDs.
func (_c *ScheduledTaskCreate) AddExecutionIDs(ids ...string) *ScheduledTaskCreate {
	_c.mutation.AddExecutionIDs(ids...)
	return _c
}

// AddExecutions adds the "executions" edges to the ScheduledTaskExecution entity.
func (_c *ScheduledTaskCreate) AddExecutions(v ...*ScheduledTaskExecution) *ScheduledTaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExecutionIDs(ids...)
}

// Mutation returns the ScheduledTaskMutation object of the builder.
func (_c *ScheduledTaskCreate) Mutation() *ScheduledTaskMutation {
	return _c.mutation
}

// Save creates the ScheduledTask in the database.
func (_c *ScheduledTaskCreate) Save(ctx context.Context) (*ScheduledTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduledTaskCreate) SaveX(ctx context.Context) *ScheduledTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduledTaskCreate) defaults() {
	if _, ok := _c.mutation.Timezone(); !ok {
		v := scheduledtask.DefaultTimezone
		_c.mutation.SetTimezone(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := scheduledtask.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		v := scheduledtask.DefaultMaxRetries
		_c.mutation.SetMaxRetries(v)
	}
	if _, ok := _c.mutation.RetryDelaySeconds(); !ok {
		v := scheduledtask.DefaultRetryDelaySeconds
		_c.mutation.SetRetryDelaySeconds(v)
	}
	if _, ok := _c.mutation.TimeoutSeconds(); !ok {
		v := scheduledtask.DefaultTimeoutSeconds
		_c.mutation.SetTimeoutSeconds(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduledTaskCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ScheduledTask.name"`)}
	}
	if _, ok := _c.mutation.Namespace(); !ok {
		return &ValidationError{Name: "namespace", err: errors.New(`ent: missing required field "ScheduledTask.namespace"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "ScheduledTask.created_by"`)}
	}
	if _, ok := _c.mutation.ScheduleType(); !ok {
		return &ValidationError{Name: "schedule_type", err: errors.New(`ent: missing required field "ScheduledTask.schedule_type"`)}
	}
	if v, ok := _c.mutation.ScheduleType(); ok {
		if err := scheduledtask.ScheduleTypeValidator(v); err != nil {
			return &ValidationError{Name: "schedule_type", err: fmt.Errorf(`ent: validator failed for field "ScheduledTask.schedule_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScheduleExpression(); !ok {
		return &ValidationError{Name: "schedule_expression", err: errors.New(`ent: missing required field "ScheduledTask.schedule_expression"`)}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`ent: missing required field "ScheduledTask.timezone"`)}
	}
	if _, ok := _c.mutation.TargetAgentName(); !ok {
		return &ValidationError{Name: "target_agent_name", err: errors.New(`ent: missing required field "ScheduledTask.target_agent_name"`)}
	}
	if _, ok := _c.mutation.TaskMessage(); !ok {
		return &ValidationError{Name: "task_message", err: errors.New(`ent: missing required field "ScheduledTask.task_message"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "ScheduledTask.enabled"`)}
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		return &ValidationError{Name: "max_retries", err: errors.New(`ent: missing required field "ScheduledTask.max_retries"`)}
	}
	if _, ok := _c.mutation.RetryDelaySeconds(); !ok {
		return &ValidationError{Name: "retry_delay_seconds", err: errors.New(`ent: missing required field "ScheduledTask.retry_delay_seconds"`)}
	}
	if _, ok := _c.mutation.TimeoutSeconds(); !ok {
		return &ValidationError{Name: "timeout_seconds", err: errors.New(`ent: missing required field "ScheduledTask.timeout_seconds"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScheduledTask.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ScheduledTask.updated_at"`)}
	}
	return nil
}

func (_c *ScheduledTaskCreate) sqlSave(ctx context.Context) (*ScheduledTask, error) {
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
			return nil, fmt.Errorf("unexpected ScheduledTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduledTaskCreate) createSpec() (*ScheduledTask, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduledTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scheduledtask.Table, sqlgraph.NewFieldSpec(scheduledtask.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(scheduledtask.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Namespace(); ok {
		_spec.SetField(scheduledtask.FieldNamespace, field.TypeString, value)
		_node.Namespace = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(scheduledtask.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(scheduledtask.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.ScheduleType(); ok {
		_spec.SetField(scheduledtask.FieldScheduleType, field.TypeEnum, value)
		_node.ScheduleType = value
	}
	if value, ok := _c.mutation.ScheduleExpression(); ok {
		_spec.SetField(scheduledtask.FieldScheduleExpression, field.TypeString, value)
		_node.ScheduleExpression = value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(scheduledtask.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.TargetAgentName(); ok {
		_spec.SetField(scheduledtask.FieldTargetAgentName, field.TypeString, value)
		_node.TargetAgentName = value
	}
	if value, ok := _c.mutation.TaskMessage(); ok {
		_spec.SetField(scheduledtask.FieldTaskMessage, field.TypeJSON, value)
		_node.TaskMessage = value
	}
	if value, ok := _c.mutation.TaskMetadata(); ok {
		_spec.SetField(scheduledtask.FieldTaskMetadata, field.TypeJSON, value)
		_node.TaskMetadata = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(scheduledtask.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.MaxRetries(); ok {
		_spec.SetField(scheduledtask.FieldMaxRetries, field.TypeInt, value)
		_node.MaxRetries = value
	}
	if value, ok := _c.mutation.RetryDelaySeconds(); ok {
		_spec.SetField(scheduledtask.FieldRetryDelaySeconds, field.TypeInt, value)
		_node.RetryDelaySeconds = value
	}
	if value, ok := _c.mutation.TimeoutSeconds(); ok {
		_spec.SetField(scheduledtask.FieldTimeoutSeconds, field.TypeInt, value)
		_node.TimeoutSeconds = value
	}
	if value, ok := _c.mutation.NotificationConfig(); ok {
		_spec.SetField(scheduledtask.FieldNotificationConfig, field.TypeJSON, value)
		_node.NotificationConfig = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scheduledtask.FieldCreatedAt, field.TypeInt64, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduledtask.FieldUpdatedAt, field.TypeInt64, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.NextRunAt(); ok {
		_spec.SetField(scheduledtask.FieldNextRunAt, field.TypeInt64, value)
		_node.NextRunAt = &value
	}
	if value, ok := _c.mutation.LastRunAt(); ok {
		_spec.SetField(scheduledtask.FieldLastRunAt, field.TypeInt64, value)
		_node.LastRunAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(scheduledtask.FieldDeletedAt, field.TypeInt64, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.ExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scheduledtask.ExecutionsTable,
			Columns: []string{scheduledtask.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledtaskexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ScheduledTaskCreateBulk is the builder for creating many ScheduledTask entities in bulk.
type ScheduledTaskCreateBulk struct {
	config
	err      error
	builders []*ScheduledTaskCreate
}

// Save creates the ScheduledTask entities in the database.
func (_c *ScheduledTaskCreateBulk) Save(ctx context.Context) ([]*ScheduledTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduledTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduledTaskMutation)
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
func (_c *ScheduledTaskCreateBulk) SaveX(ctx context.Context) []*ScheduledTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
