// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/solacecommunity/agent-mesh-gateway/ent/predicate"
	"github.com/solacecommunity/agent-mesh-gateway/ent/scheduledtask"
	"github.com/solacecommunity/agent-mesh-gateway/ent/scheduledtaskexecution"
)

// ScheduledTaskUpdate is the builder for updating ScheduledTask entities.
type ScheduledTaskUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduledTaskMutation
}

// Where appends a list predicates to the ScheduledTaskUpdate builder.
func (_u *ScheduledTaskUpdate) Where(ps ...predicate.ScheduledTask) *ScheduledTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ScheduledTaskUpdate) SetName(v string) *ScheduledTaskUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableName(v *string) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNamespace sets the "namespace" field.
func (_u *ScheduledTaskUpdate) SetNamespace(v string) *ScheduledTaskUpdate {
	_u.mutation.SetNamespace(v)
	return _u
}

// SetNillableNamespace sets the "namespace" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableNamespace(v *string) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetNamespace(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ScheduledTaskUpdate) SetUserID(v string) *ScheduledTaskUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableUserID(v *string) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ScheduledTaskUpdate) ClearUserID() *ScheduledTaskUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ScheduledTaskUpdate) SetCreatedBy(v string) *ScheduledTaskUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableCreatedBy(v *string) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetScheduleType sets the "schedule_type" field.
func (_u *ScheduledTaskUpdate) SetScheduleType(v scheduledtask.ScheduleType) *ScheduledTaskUpdate {
	_u.mutation.SetScheduleType(v)
	return _u
}

// SetNillableScheduleType sets the "schedule_type" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableScheduleType(v *scheduledtask.ScheduleType) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetScheduleType(*v)
	}
	return _u
}

// SetScheduleExpression sets the "schedule_expression" field.
func (_u *ScheduledTaskUpdate) SetScheduleExpression(v string) *ScheduledTaskUpdate {
	_u.mutation.SetScheduleExpression(v)
	return _u
}

// SetNillableScheduleExpression sets the "schedule_expression" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableScheduleExpression(v *string) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetScheduleExpression(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *ScheduledTaskUpdate) SetTimezone(v string) *ScheduledTaskUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableTimezone(v *string) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetTargetAgentName sets the "target_agent_name" field.
func (_u *ScheduledTaskUpdate) SetTargetAgentName(v string) *ScheduledTaskUpdate {
	_u.mutation.SetTargetAgentName(v)
	return _u
}

// SetNillableTargetAgentName sets the "target_agent_name" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableTargetAgentName(v *string) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetTargetAgentName(*v)
	}
	return _u
}

// SetTaskMessage sets the "task_message" field.
func (_u *ScheduledTaskUpdate) SetTaskMessage(v []map[string]interface{}) *ScheduledTaskUpdate {
	_u.mutation.SetTaskMessage(v)
	return _u
}

// AppendTaskMessage appends value to the "task_message" field.
func (_u *ScheduledTaskUpdate) AppendTaskMessage(v []map[string]interface{}) *ScheduledTaskUpdate {
	_u.mutation.AppendTaskMessage(v)
	return _u
}

// SetTaskMetadata sets the "task_metadata" field.
func (_u *ScheduledTaskUpdate) SetTaskMetadata(v map[string]interface{}) *ScheduledTaskUpdate {
	_u.mutation.SetTaskMetadata(v)
	return _u
}

// ClearTaskMetadata clears the value of the "task_metadata" field.
func (_u *ScheduledTaskUpdate) ClearTaskMetadata() *ScheduledTaskUpdate {
	_u.mutation.ClearTaskMetadata()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ScheduledTaskUpdate) SetEnabled(v bool) *ScheduledTaskUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableEnabled(v *bool) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *ScheduledTaskUpdate) SetMaxRetries(v int) *ScheduledTaskUpdate {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableMaxRetries(v *int) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *ScheduledTaskUpdate) AddMaxRetries(v int) *ScheduledTaskUpdate {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetRetryDelaySeconds sets the "retry_delay_seconds" field.
func (_u *ScheduledTaskUpdate) SetRetryDelaySeconds(v int) *ScheduledTaskUpdate {
	_u.mutation.ResetRetryDelaySeconds()
	_u.mutation.SetRetryDelaySeconds(v)
	return _u
}

// SetNillableRetryDelaySeconds sets the "retry_delay_seconds" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableRetryDelaySeconds(v *int) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetRetryDelaySeconds(*v)
	}
	return _u
}

// AddRetryDelaySeconds adds value to the "retry_delay_seconds" field.
func (_u *ScheduledTaskUpdate) AddRetryDelaySeconds(v int) *ScheduledTaskUpdate {
	_u.mutation.AddRetryDelaySeconds(v)
	return _u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_u *ScheduledTaskUpdate) SetTimeoutSeconds(v int) *ScheduledTaskUpdate {
	_u.mutation.ResetTimeoutSeconds()
	_u.mutation.SetTimeoutSeconds(v)
	return _u
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableTimeoutSeconds(v *int) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetTimeoutSeconds(*v)
	}
	return _u
}

// AddTimeoutSeconds adds value to the "timeout_seconds" field.
func (_u *ScheduledTaskUpdate) AddTimeoutSeconds(v int) *ScheduledTaskUpdate {
	_u.mutation.AddTimeoutSeconds(v)
	return _u
}

// SetNotificationConfig sets the "notification_config" field.
func (_u *ScheduledTaskUpdate) SetNotificationConfig(v map[string]interface{}) *ScheduledTaskUpdate {
	_u.mutation.SetNotificationConfig(v)
	return _u
}

// ClearNotificationConfig clears the value of the "notification_config" field.
func (_u *ScheduledTaskUpdate) ClearNotificationConfig() *ScheduledTaskUpdate {
	_u.mutation.ClearNotificationConfig()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduledTaskUpdate) SetUpdatedAt(v int64) *ScheduledTaskUpdate {
	_u.mutation.ResetUpdatedAt()
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableUpdatedAt(v *int64) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddUpdatedAt adds value to the "updated_at" field.
func (_u *ScheduledTaskUpdate) AddUpdatedAt(v int64) *ScheduledTaskUpdate {
	_u.mutation.AddUpdatedAt(v)
	return _u
}

// SetNextRunAt sets the "next_run_at" field.
func (_u *ScheduledTaskUpdate) SetNextRunAt(v int64) *ScheduledTaskUpdate {
	_u.mutation.ResetNextRunAt()
	_u.mutation.SetNextRunAt(v)
	return _u
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableNextRunAt(v *int64) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetNextRunAt(*v)
	}
	return _u
}

// AddNextRunAt adds value to the "next_run_at" field.
func (_u *ScheduledTaskUpdate) AddNextRunAt(v int64) *ScheduledTaskUpdate {
	_u.mutation.AddNextRunAt(v)
	return _u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (_u *ScheduledTaskUpdate) ClearNextRunAt() *ScheduledTaskUpdate {
	_u.mutation.ClearNextRunAt()
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *ScheduledTaskUpdate) SetLastRunAt(v int64) *ScheduledTaskUpdate {
	_u.mutation.ResetLastRunAt()
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableLastRunAt(v *int64) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// AddLastRunAt adds value to the "last_run_at" field.
func (_u *ScheduledTaskUpdate) AddLastRunAt(v int64) *ScheduledTaskUpdate {
	_u.mutation.AddLastRunAt(v)
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *ScheduledTaskUpdate) ClearLastRunAt() *ScheduledTaskUpdate {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ScheduledTaskUpdate) SetDeletedAt(v int64) *ScheduledTaskUpdate {
	_u.mutation.ResetDeletedAt()
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableDeletedAt(v *int64) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// AddDeletedAt adds value to the "deleted_at" field.
func (_u *ScheduledTaskUpdate) AddDeletedAt(v int64) *ScheduledTaskUpdate {
	_u.mutation.AddDeletedAt(v)
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ScheduledTaskUpdate) ClearDeletedAt() *ScheduledTaskUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddExecutionIDs adds the "executions" edge to the ScheduledTaskExecution entity by IDs.
func (_u *ScheduledTaskUpdate) AddExecutionIDs(ids ...string) *ScheduledTaskUpdate {
	_u.mutation.AddExecutionIDs(ids...)
	return _u
}

// AddExecutions adds the "executions" edges to the ScheduledTaskExecution entity.
func (_u *ScheduledTaskUpdate) AddExecutions(v ...*ScheduledTaskExecution) *ScheduledTaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionIDs(ids...)
}

// Mutation returns the ScheduledTaskMutation object of the builder.
func (_u *ScheduledTaskUpdate) Mutation() *ScheduledTaskMutation {
	return _u.mutation
}

// ClearExecutions clears all "executions" edges to the ScheduledTaskExecution entity.
func (_u *ScheduledTaskUpdate) ClearExecutions() *ScheduledTaskUpdate {
	_u.mutation.ClearExecutions()
	return _u
}

// RemoveExecutionIDs removes the "executions" edge to ScheduledTaskExecution entities by IDs.
func (_u *ScheduledTaskUpdate) RemoveExecutionIDs(ids ...string) *ScheduledTaskUpdate {
	_u.mutation.RemoveExecutionIDs(ids...)
	return _u
}

// RemoveExecutions removes "executions" edges to ScheduledTaskExecution entities.
func (_u *ScheduledTaskUpdate) RemoveExecutions(v ...*ScheduledTaskExecution) *ScheduledTaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduledTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduledTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledTaskUpdate) check() error {
	if v, ok := _u.mutation.ScheduleType(); ok {
		if err := scheduledtask.ScheduleTypeValidator(v); err != nil {
			return &ValidationError{Name: "schedule_type", err: fmt.Errorf(`ent: validator failed for field "ScheduledTask.schedule_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduledTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledtask.Table, scheduledtask.Columns, sqlgraph.NewFieldSpec(scheduledtask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(scheduledtask.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Namespace(); ok {
		_spec.SetField(scheduledtask.FieldNamespace, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(scheduledtask.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(scheduledtask.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(scheduledtask.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScheduleType(); ok {
		_spec.SetField(scheduledtask.FieldScheduleType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduleExpression(); ok {
		_spec.SetField(scheduledtask.FieldScheduleExpression, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(scheduledtask.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetAgentName(); ok {
		_spec.SetField(scheduledtask.FieldTargetAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskMessage(); ok {
		_spec.SetField(scheduledtask.FieldTaskMessage, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTaskMessage(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scheduledtask.FieldTaskMessage, value)
		})
	}
	if value, ok := _u.mutation.TaskMetadata(); ok {
		_spec.SetField(scheduledtask.FieldTaskMetadata, field.TypeJSON, value)
	}
	if _u.mutation.TaskMetadataCleared() {
		_spec.ClearField(scheduledtask.FieldTaskMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(scheduledtask.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(scheduledtask.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(scheduledtask.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryDelaySeconds(); ok {
		_spec.SetField(scheduledtask.FieldRetryDelaySeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryDelaySeconds(); ok {
		_spec.AddField(scheduledtask.FieldRetryDelaySeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeoutSeconds(); ok {
		_spec.SetField(scheduledtask.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSeconds(); ok {
		_spec.AddField(scheduledtask.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NotificationConfig(); ok {
		_spec.SetField(scheduledtask.FieldNotificationConfig, field.TypeJSON, value)
	}
	if _u.mutation.NotificationConfigCleared() {
		_spec.ClearField(scheduledtask.FieldNotificationConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduledtask.FieldUpdatedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUpdatedAt(); ok {
		_spec.AddField(scheduledtask.FieldUpdatedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.NextRunAt(); ok {
		_spec.SetField(scheduledtask.FieldNextRunAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedNextRunAt(); ok {
		_spec.AddField(scheduledtask.FieldNextRunAt, field.TypeInt64, value)
	}
	if _u.mutation.NextRunAtCleared() {
		_spec.ClearField(scheduledtask.FieldNextRunAt, field.TypeInt64)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(scheduledtask.FieldLastRunAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastRunAt(); ok {
		_spec.AddField(scheduledtask.FieldLastRunAt, field.TypeInt64, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(scheduledtask.FieldLastRunAt, field.TypeInt64)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(scheduledtask.FieldDeletedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDeletedAt(); ok {
		_spec.AddField(scheduledtask.FieldDeletedAt, field.TypeInt64, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(scheduledtask.FieldDeletedAt, field.TypeInt64)
	}
	if _u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduledTaskUpdateOne is the builder for updating a single ScheduledTask entity.
type ScheduledTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduledTaskMutation
}

// SetName sets the "name" field.
func (_u *ScheduledTaskUpdateOne) SetName(v string) *ScheduledTaskUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableName(v *string) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNamespace sets the "namespace" field.
func (_u *ScheduledTaskUpdateOne) SetNamespace(v string) *ScheduledTaskUpdateOne {
	_u.mutation.SetNamespace(v)
	return _u
}

// SetNillableNamespace sets the "namespace" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableNamespace(v *string) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetNamespace(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ScheduledTaskUpdateOne) SetUserID(v string) *ScheduledTaskUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableUserID(v *string) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ScheduledTaskUpdateOne) ClearUserID() *ScheduledTaskUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ScheduledTaskUpdateOne) SetCreatedBy(v string) *ScheduledTaskUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableCreatedBy(v *string) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetScheduleType sets the "schedule_type" field.
func (_u *ScheduledTaskUpdateOne) SetScheduleType(v scheduledtask.ScheduleType) *ScheduledTaskUpdateOne {
	_u.mutation.SetScheduleType(v)
	return _u
}

// SetNillableScheduleType sets the "schedule_type" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableScheduleType(v *scheduledtask.ScheduleType) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetScheduleType(*v)
	}
	return _u
}

// SetScheduleExpression sets the "schedule_expression" field.
func (_u *ScheduledTaskUpdateOne) SetScheduleExpression(v string) *ScheduledTaskUpdateOne {
	_u.mutation.SetScheduleExpression(v)
	return _u
}

// SetNillableScheduleExpression sets the "schedule_expression" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableScheduleExpression(v *string) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetScheduleExpression(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *ScheduledTaskUpdateOne) SetTimezone(v string) *ScheduledTaskUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableTimezone(v *string) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetTargetAgentName sets the "target_agent_name" field.
func (_u *ScheduledTaskUpdateOne) SetTargetAgentName(v string) *ScheduledTaskUpdateOne {
	_u.mutation.SetTargetAgentName(v)
	return _u
}

// SetNillableTargetAgentName sets the "target_agent_name" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableTargetAgentName(v *string) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetTargetAgentName(*v)
	}
	return _u
}

// SetTaskMessage sets the "task_message" field.
func (_u *ScheduledTaskUpdateOne) SetTaskMessage(v []map[string]interface{}) *ScheduledTaskUpdateOne {
	_u.mutation.SetTaskMessage(v)
	return _u
}

// AppendTaskMessage appends value to the "task_message" field.
func (_u *ScheduledTaskUpdateOne) AppendTaskMessage(v []map[string]interface{}) *ScheduledTaskUpdateOne {
	_u.mutation.AppendTaskMessage(v)
	return _u
}

// SetTaskMetadata sets the "task_metadata" field.
func (_u *ScheduledTaskUpdateOne) SetTaskMetadata(v map[string]interface{}) *ScheduledTaskUpdateOne {
	_u.mutation.SetTaskMetadata(v)
	return _u
}

// ClearTaskMetadata clears the value of the "task_metadata" field.
func (_u *ScheduledTaskUpdateOne) ClearTaskMetadata() *ScheduledTaskUpdateOne {
	_u.mutation.ClearTaskMetadata()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ScheduledTaskUpdateOne) SetEnabled(v bool) *ScheduledTaskUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableEnabled(v *bool) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *ScheduledTaskUpdateOne) SetMaxRetries(v int) *ScheduledTaskUpdateOne {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableMaxRetries(v *int) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *ScheduledTaskUpdateOne) AddMaxRetries(v int) *ScheduledTaskUpdateOne {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetRetryDelaySeconds sets the "retry_delay_seconds" field.
func (_u *ScheduledTaskUpdateOne) SetRetryDelaySeconds(v int) *ScheduledTaskUpdateOne {
	_u.mutation.ResetRetryDelaySeconds()
	_u.mutation.SetRetryDelaySeconds(v)
	return _u
}

// SetNillableRetryDelaySeconds sets the "retry_delay_seconds" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableRetryDelaySeconds(v *int) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetRetryDelaySeconds(*v)
	}
	return _u
}

// AddRetryDelaySeconds adds value to the "retry_delay_seconds" field.
func (_u *ScheduledTaskUpdateOne) AddRetryDelaySeconds(v int) *ScheduledTaskUpdateOne {
	_u.mutation.AddRetryDelaySeconds(v)
	return _u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_u *ScheduledTaskUpdateOne) SetTimeoutSeconds(v int) *ScheduledTaskUpdateOne {
	_u.mutation.ResetTimeoutSeconds()
	_u.mutation.SetTimeoutSeconds(v)
	return _u
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableTimeoutSeconds(v *int) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetTimeoutSeconds(*v)
	}
	return _u
}

// AddTimeoutSeconds adds value to the "timeout_seconds" field.
func (_u *ScheduledTaskUpdateOne) AddTimeoutSeconds(v int) *ScheduledTaskUpdateOne {
	_u.mutation.AddTimeoutSeconds(v)
	return _u
}

// SetNotificationConfig sets the "notification_config" field.
func (_u *ScheduledTaskUpdateOne) SetNotificationConfig(v map[string]interface{}) *ScheduledTaskUpdateOne {
	_u.mutation.SetNotificationConfig(v)
	return _u
}

// ClearNotificationConfig clears the value of the "notification_config" field.
func (_u *ScheduledTaskUpdateOne) ClearNotificationConfig() *ScheduledTaskUpdateOne {
	_u.mutation.ClearNotificationConfig()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduledTaskUpdateOne) SetUpdatedAt(v int64) *ScheduledTaskUpdateOne {
	_u.mutation.ResetUpdatedAt()
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableUpdatedAt(v *int64) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddUpdatedAt adds value to the "updated_at" field.
func (_u *ScheduledTaskUpdateOne) AddUpdatedAt(v int64) *ScheduledTaskUpdateOne {
	_u.mutation.AddUpdatedAt(v)
	return _u
}

// SetNextRunAt sets the "next_run_at" field.
func (_u *ScheduledTaskUpdateOne) SetNextRunAt(v int64) *ScheduledTaskUpdateOne {
	_u.mutation.ResetNextRunAt()
	_u.mutation.SetNextRunAt(v)
	return _u
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableNextRunAt(v *int64) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetNextRunAt(*v)
	}
	return _u
}

// AddNextRunAt adds value to the "next_run_at" field.
func (_u *ScheduledTaskUpdateOne) AddNextRunAt(v int64) *ScheduledTaskUpdateOne {
	_u.mutation.AddNextRunAt(v)
	return _u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (_u *ScheduledTaskUpdateOne) ClearNextRunAt() *ScheduledTaskUpdateOne {
	_u.mutation.ClearNextRunAt()
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *ScheduledTaskUpdateOne) SetLastRunAt(v int64) *ScheduledTaskUpdateOne {
	_u.mutation.ResetLastRunAt()
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableLastRunAt(v *int64) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// AddLastRunAt adds value to the "last_run_at" field.
func (_u *ScheduledTaskUpdateOne) AddLastRunAt(v int64) *ScheduledTaskUpdateOne {
	_u.mutation.AddLastRunAt(v)
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *ScheduledTaskUpdateOne) ClearLastRunAt() *ScheduledTaskUpdateOne {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ScheduledTaskUpdateOne) SetDeletedAt(v int64) *ScheduledTaskUpdateOne {
	_u.mutation.ResetDeletedAt()
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableDeletedAt(v *int64) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// AddDeletedAt adds value to the "deleted_at" field.
func (_u *ScheduledTaskUpdateOne) AddDeletedAt(v int64) *ScheduledTaskUpdateOne {
	_u.mutation.AddDeletedAt(v)
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ScheduledTaskUpdateOne) ClearDeletedAt() *ScheduledTaskUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddExecutionIDs adds the "executions" edge to the ScheduledTaskExecution entity by IDs.
func (_u *ScheduledTaskUpdateOne) AddExecutionIDs(ids ...string) *ScheduledTaskUpdateOne {
	_u.mutation.AddExecutionIDs(ids...)
	return _u
}

// AddExecutions adds the "executions" edges to the ScheduledTaskExecution entity.
func (_u *ScheduledTaskUpdateOne) AddExecutions(v ...*ScheduledTaskExecution) *ScheduledTaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionIDs(ids...)
}

// Mutation returns the ScheduledTaskMutation object of the builder.
func (_u *ScheduledTaskUpdateOne) Mutation() *ScheduledTaskMutation {
	return _u.mutation
}

// ClearExecutions clears all "executions" edges to the ScheduledTaskExecution entity.
func (_u *ScheduledTaskUpdateOne) ClearExecutions() *ScheduledTaskUpdateOne {
	_u.mutation.ClearExecutions()
	return _u
}

// RemoveExecutionIDs removes the "executions" edge to ScheduledTaskExecution entities by IDs.
func (_u *ScheduledTaskUpdateOne) RemoveExecutionIDs(ids ...string) *ScheduledTaskUpdateOne {
	_u.mutation.RemoveExecutionIDs(ids...)
	return _u
}

// RemoveExecutions removes "executions" edges to ScheduledTaskExecution entities.
func (_u *ScheduledTaskUpdateOne) RemoveExecutions(v ...*ScheduledTaskExecution) *ScheduledTaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionIDs(ids...)
}

// Where appends a list predicates to the ScheduledTaskUpdate builder.
func (_u *ScheduledTaskUpdateOne) Where(ps ...predicate.ScheduledTask) *ScheduledTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduledTaskUpdateOne) Select(field string, fields ...string) *ScheduledTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScheduledTask entity.
func (_u *ScheduledTaskUpdateOne) Save(ctx context.Context) (*ScheduledTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledTaskUpdateOne) SaveX(ctx context.Context) *ScheduledTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduledTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledTaskUpdateOne) check() error {
	if v, ok := _u.mutation.ScheduleType(); ok {
		if err := scheduledtask.ScheduleTypeValidator(v); err != nil {
			return &ValidationError{Name: "schedule_type", err: fmt.Errorf(`ent: validator failed for field "ScheduledTask.schedule_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduledTaskUpdateOne) sqlSave(ctx context.Context) (_node *ScheduledTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledtask.Table, scheduledtask.Columns, sqlgraph.NewFieldSpec(scheduledtask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScheduledTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduledtask.FieldID)
		for _, f := range fields {
			if !scheduledtask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scheduledtask.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(scheduledtask.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Namespace(); ok {
		_spec.SetField(scheduledtask.FieldNamespace, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(scheduledtask.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(scheduledtask.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(scheduledtask.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScheduleType(); ok {
		_spec.SetField(scheduledtask.FieldScheduleType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduleExpression(); ok {
		_spec.SetField(scheduledtask.FieldScheduleExpression, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(scheduledtask.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetAgentName(); ok {
		_spec.SetField(scheduledtask.FieldTargetAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskMessage(); ok {
		_spec.SetField(scheduledtask.FieldTaskMessage, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTaskMessage(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scheduledtask.FieldTaskMessage, value)
		})
	}
	if value, ok := _u.mutation.TaskMetadata(); ok {
		_spec.SetField(scheduledtask.FieldTaskMetadata, field.TypeJSON, value)
	}
	if _u.mutation.TaskMetadataCleared() {
		_spec.ClearField(scheduledtask.FieldTaskMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(scheduledtask.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(scheduledtask.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(scheduledtask.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryDelaySeconds(); ok {
		_spec.SetField(scheduledtask.FieldRetryDelaySeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryDelaySeconds(); ok {
		_spec.AddField(scheduledtask.FieldRetryDelaySeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeoutSeconds(); ok {
		_spec.SetField(scheduledtask.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSeconds(); ok {
		_spec.AddField(scheduledtask.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NotificationConfig(); ok {
		_spec.SetField(scheduledtask.FieldNotificationConfig, field.TypeJSON, value)
	}
	if _u.mutation.NotificationConfigCleared() {
		_spec.ClearField(scheduledtask.FieldNotificationConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduledtask.FieldUpdatedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUpdatedAt(); ok {
		_spec.AddField(scheduledtask.FieldUpdatedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.NextRunAt(); ok {
		_spec.SetField(scheduledtask.FieldNextRunAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedNextRunAt(); ok {
		_spec.AddField(scheduledtask.FieldNextRunAt, field.TypeInt64, value)
	}
	if _u.mutation.NextRunAtCleared() {
		_spec.ClearField(scheduledtask.FieldNextRunAt, field.TypeInt64)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(scheduledtask.FieldLastRunAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastRunAt(); ok {
		_spec.AddField(scheduledtask.FieldLastRunAt, field.TypeInt64, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(scheduledtask.FieldLastRunAt, field.TypeInt64)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(scheduledtask.FieldDeletedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDeletedAt(); ok {
		_spec.AddField(scheduledtask.FieldDeletedAt, field.TypeInt64, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(scheduledtask.FieldDeletedAt, field.TypeInt64)
	}
	if _u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ScheduledTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
