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

// ScheduledTaskExecutionUpdate is the builder for updating ScheduledTaskExecution entities.
type ScheduledTaskExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduledTaskExecutionMutation
}

// Where appends a list predicates to the ScheduledTaskExecutionUpdate builder.
func (_u *ScheduledTaskExecutionUpdate) Where(ps ...predicate.ScheduledTaskExecution) *ScheduledTaskExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScheduledTaskID sets the "scheduled_task_id" field.
func (_u *ScheduledTaskExecutionUpdate) SetScheduledTaskID(v string) *ScheduledTaskExecutionUpdate {
	_u.mutation.SetScheduledTaskID(v)
	return _u
}

// SetNillableScheduledTaskID sets the "scheduled_task_id" field if the given value is not nil.
func (_u *ScheduledTaskExecutionUpdate) SetNillableScheduledTaskID(v *string) *ScheduledTaskExecutionUpdate {
	if v != nil {
		_u.SetScheduledTaskID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduledTaskExecutionUpdate) SetStatus(v scheduledtaskexecution.Status) *ScheduledTaskExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduledTaskExecutionUpdate) SetNillableStatus(v *scheduledtaskexecution.Status) *ScheduledTaskExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetA2aTaskID sets the "a2a_task_id" field.
func (_u *ScheduledTaskExecutionUpdate) SetA2aTaskID(v string) *ScheduledTaskExecutionUpdate {
	_u.mutation.SetA2aTaskID(v)
	return _u
}

// SetNillableA2aTaskID sets the "a2a_task_id" field if the given value is not nil.
func (_u *ScheduledTaskExecutionUpdate) SetNillableA2aTaskID(v *string) *ScheduledTaskExecutionUpdate {
	if v != nil {
		_u.SetA2aTaskID(*v)
	}
	return _u
}

// ClearA2aTaskID clears the value of the "a2a_task_id" field.
func (_u *ScheduledTaskExecutionUpdate) ClearA2aTaskID() *ScheduledTaskExecutionUpdate {
	_u.mutation.ClearA2aTaskID()
	return _u
}

// SetScheduledFor sets the "scheduled_for" field.
func (_u *ScheduledTaskExecutionUpdate) SetScheduledFor(v int64) *ScheduledTaskExecutionUpdate {
	_u.mutation.ResetScheduledFor()
	_u.mutation.SetScheduledFor(v)
	return _u
}

// SetNillableScheduledFor sets the "scheduled_for" field if the given value is not nil.
func (_u *ScheduledTaskExecutionUpdate) SetNillableScheduledFor(v *int64) *ScheduledTaskExecutionUpdate {
	if v != nil {
		_u.SetScheduledFor(*v)
	}
	return _u
}

// AddScheduledFor adds value to the "scheduled_for" field.
func (_u *ScheduledTaskExecutionUpdate) AddScheduledFor(v int64) *ScheduledTaskExecutionUpdate {
	_u.mutation.AddScheduledFor(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ScheduledTaskExecutionUpdate) SetStartedAt(v int64) *ScheduledTaskExecutionUpdate {
	_u.mutation.ResetStartedAt()
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ScheduledTaskExecutionUpdate) SetNillableStartedAt(v *int64) *ScheduledTaskExecutionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// AddStartedAt adds value to the "started_at" field.
func (_u *ScheduledTaskExecutionUpdate) AddStartedAt(v int64) *ScheduledTaskExecutionUpdate {
	_u.mutation.AddStartedAt(v)
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ScheduledTaskExecutionUpdate) ClearStartedAt() *ScheduledTaskExecutionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ScheduledTaskExecutionUpdate) SetCompletedAt(v int64) *ScheduledTaskExecutionUpdate {
	_u.mutation.ResetCompletedAt()
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ScheduledTaskExecutionUpdate) SetNillableCompletedAt(v *int64) *ScheduledTaskExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// AddCompletedAt adds value to the "completed_at" field.
func (_u *ScheduledTaskExecutionUpdate) AddCompletedAt(v int64) *ScheduledTaskExecutionUpdate {
	_u.mutation.AddCompletedAt(v)
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ScheduledTaskExecutionUpdate) ClearCompletedAt() *ScheduledTaskExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetResultSummary sets the "result_summary" field.
func (_u *ScheduledTaskExecutionUpdate) SetResultSummary(v map[string]interface{}) *ScheduledTaskExecutionUpdate {
	_u.mutation.SetResultSummary(v)
	return _u
}

// ClearResultSummary clears the value of the "result_summary" field.
func (_u *ScheduledTaskExecutionUpdate) ClearResultSummary() *ScheduledTaskExecutionUpdate {
	_u.mutation.ClearResultSummary()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScheduledTaskExecutionUpdate) SetErrorMessage(v string) *ScheduledTaskExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScheduledTaskExecutionUpdate) SetNillableErrorMessage(v *string) *ScheduledTaskExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ScheduledTaskExecutionUpdate) ClearErrorMessage() *ScheduledTaskExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *ScheduledTaskExecutionUpdate) SetRetryCount(v int) *ScheduledTaskExecutionUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *ScheduledTaskExecutionUpdate) SetNillableRetryCount(v *int) *ScheduledTaskExecutionUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *ScheduledTaskExecutionUpdate) AddRetryCount(v int) *ScheduledTaskExecutionUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetArtifacts sets the "artifacts" field.
func (_u *ScheduledTaskExecutionUpdate) SetArtifacts(v []map[string]interface{}) *ScheduledTaskExecutionUpdate {
	_u.mutation.SetArtifacts(v)
	return _u
}

// AppendArtifacts appends value to the "artifacts" field.
func (_u *ScheduledTaskExecutionUpdate) AppendArtifacts(v []map[string]interface{}) *ScheduledTaskExecutionUpdate {
	_u.mutation.AppendArtifacts(v)
	return _u
}

// ClearArtifacts clears the value of the "artifacts" field.
func (_u *ScheduledTaskExecutionUpdate) ClearArtifacts() *ScheduledTaskExecutionUpdate {
	_u.mutation.ClearArtifacts()
	return _u
}

// SetNotificationsSent sets the "notifications_sent" field.
func (_u *ScheduledTaskExecutionUpdate) SetNotificationsSent(v map[string]interface{}) *ScheduledTaskExecutionUpdate {
	_u.mutation.SetNotificationsSent(v)
	return _u
}

// ClearNotificationsSent clears the value of the "notifications_sent" field.
func (_u *ScheduledTaskExecutionUpdate) ClearNotificationsSent() *ScheduledTaskExecutionUpdate {
	_u.mutation.ClearNotificationsSent()
	return _u
}

// SetScheduledTask sets the "scheduled_task" edge to the ScheduledTask entity.
func (_u *ScheduledTaskExecutionUpdate) SetScheduledTask(v *ScheduledTask) *ScheduledTaskExecutionUpdate {
	return _u.SetScheduledTaskID(v.ID)
}

// Mutation returns the ScheduledTaskExecutionMutation object of the builder.
func (_u *ScheduledTaskExecutionUpdate) Mutation() *ScheduledTaskExecutionMutation {
	return _u.mutation
}

// ClearScheduledTask clears the "scheduled_task" edge to the ScheduledTask entity.
func (_u *ScheduledTaskExecutionUpdate) ClearScheduledTask() *ScheduledTaskExecutionUpdate {
	_u.mutation.ClearScheduledTask()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduledTaskExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledTaskExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduledTaskExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledTaskExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledTaskExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := scheduledtaskexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledTaskExecution.status": %w`, err)}
		}
	}
	if _u.mutation.ScheduledTaskCleared() && len(_u.mutation.ScheduledTaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScheduledTaskExecution.scheduled_task"`)
	}
	return nil
}

func (_u *ScheduledTaskExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledtaskexecution.Table, scheduledtaskexecution.Columns, sqlgraph.NewFieldSpec(scheduledtaskexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scheduledtaskexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.A2aTaskID(); ok {
		_spec.SetField(scheduledtaskexecution.FieldA2aTaskID, field.TypeString, value)
	}
	if _u.mutation.A2aTaskIDCleared() {
		_spec.ClearField(scheduledtaskexecution.FieldA2aTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.ScheduledFor(); ok {
		_spec.SetField(scheduledtaskexecution.FieldScheduledFor, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedScheduledFor(); ok {
		_spec.AddField(scheduledtaskexecution.FieldScheduledFor, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(scheduledtaskexecution.FieldStartedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedStartedAt(); ok {
		_spec.AddField(scheduledtaskexecution.FieldStartedAt, field.TypeInt64, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(scheduledtaskexecution.FieldStartedAt, field.TypeInt64)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(scheduledtaskexecution.FieldCompletedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompletedAt(); ok {
		_spec.AddField(scheduledtaskexecution.FieldCompletedAt, field.TypeInt64, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(scheduledtaskexecution.FieldCompletedAt, field.TypeInt64)
	}
	if value, ok := _u.mutation.ResultSummary(); ok {
		_spec.SetField(scheduledtaskexecution.FieldResultSummary, field.TypeJSON, value)
	}
	if _u.mutation.ResultSummaryCleared() {
		_spec.ClearField(scheduledtaskexecution.FieldResultSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scheduledtaskexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(scheduledtaskexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(scheduledtaskexecution.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(scheduledtaskexecution.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Artifacts(); ok {
		_spec.SetField(scheduledtaskexecution.FieldArtifacts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArtifacts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scheduledtaskexecution.FieldArtifacts, value)
		})
	}
	if _u.mutation.ArtifactsCleared() {
		_spec.ClearField(scheduledtaskexecution.FieldArtifacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.NotificationsSent(); ok {
		_spec.SetField(scheduledtaskexecution.FieldNotificationsSent, field.TypeJSON, value)
	}
	if _u.mutation.NotificationsSentCleared() {
		_spec.ClearField(scheduledtaskexecution.FieldNotificationsSent, field.TypeJSON)
	}
	if _u.mutation.ScheduledTaskCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScheduledTaskIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledtaskexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduledTaskExecutionUpdateOne is the builder for updating a single ScheduledTaskExecution entity.
type ScheduledTaskExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduledTaskExecutionMutation
}

// SetScheduledTaskID sets the "scheduled_task_id" field.
func (_u *ScheduledTaskExecutionUpdateOne) SetScheduledTaskID(v string) *ScheduledTaskExecutionUpdateOne {
	_u.mutation.SetScheduledTaskID(v)
	return _u
}

// SetNillableScheduledTaskID sets the "scheduled_task_id" field if the given value is not nil.
func (_u *ScheduledTaskExecutionUpdateOne) SetNillableScheduledTaskID(v *string) *ScheduledTaskExecutionUpdateOne {
	if v != nil {
		_u.SetScheduledTaskID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduledTaskExecutionUpdateOne) SetStatus(v scheduledtaskexecution.Status) *ScheduledTaskExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduledTaskExecutionUpdateOne) SetNillableStatus(v *scheduledtaskexecution.Status) *ScheduledTaskExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetA2aTaskID sets the "a2a_task_id" field.
func (_u *ScheduledTaskExecutionUpdateOne) SetA2aTaskID(v string) *ScheduledTaskExecutionUpdateOne {
	_u.mutation.SetA2aTaskID(v)
	return _u
}

// SetNillableA2aTaskID sets the "a2a_task_id" field if the given value is not nil.
func (_u *ScheduledTaskExecutionUpdateOne) SetNillableA2aTaskID(v *string) *ScheduledTaskExecutionUpdateOne {
	if v != nil {
		_u.SetA2aTaskID(*v)
	}
	return _u
}

// ClearA2aTaskID clears the value of the "a2a_task_id" field.
func (_u *ScheduledTaskExecutionUpdateOne) ClearA2aTaskID() *ScheduledTaskExecutionUpdateOne {
	_u.mutation.ClearA2aTaskID()
	return _u
}

// SetScheduledFor sets the "scheduled_for" field.
func (_u *ScheduledTaskExecutionUpdateOne) SetScheduledFor(v int64) *ScheduledTaskExecutionUpdateOne {
	_u.mutation.ResetScheduledFor()
	_u.mutation.SetScheduledFor(v)
	return _u
}

// SetNillableScheduledFor sets the "scheduled_for" field if the given value is not nil.
func (_u *ScheduledTaskExecutionUpdateOne) SetNillableScheduledFor(v *int64) *ScheduledTaskExecutionUpdateOne {
	if v != nil {
		_u.SetScheduledFor(*v)
	}
	return _u
}

// AddScheduledFor adds value to the "scheduled_for" field.
func (_u *ScheduledTaskExecutionUpdateOne) AddScheduledFor(v int64) *ScheduledTaskExecutionUpdateOne {
	_u.mutation.AddScheduledFor(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ScheduledTaskExecutionUpdateOne) SetStartedAt(v int64) *ScheduledTaskExecutionUpdateOne {
	_u.mutation.ResetStartedAt()
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ScheduledTaskExecutionUpdateOne) SetNillableStartedAt(v *int64) *ScheduledTaskExecutionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// AddStartedAt adds value to the "started_at" field.
func (_u *ScheduledTaskExecutionUpdateOne) AddStartedAt(v int64) *ScheduledTaskExecutionUpdateOne {
	_u.mutation.AddStartedAt(v)
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ScheduledTaskExecutionUpdateOne) ClearStartedAt() *ScheduledTaskExecutionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ScheduledTaskExecutionUpdateOne) SetCompletedAt(v int64) *ScheduledTaskExecutionUpdateOne {
	_u.mutation.ResetCompletedAt()
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ScheduledTaskExecutionUpdateOne) SetNillableCompletedAt(v *int64) *ScheduledTaskExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// AddCompletedAt adds value to the "completed_at" field.
func (_u *ScheduledTaskExecutionUpdateOne) AddCompletedAt(v int64) *ScheduledTaskExecutionUpdateOne {
	_u.mutation.AddCompletedAt(v)
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ScheduledTaskExecutionUpdateOne) ClearCompletedAt() *ScheduledTaskExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetResultSummary sets the "result_summary" field.
func (_u *ScheduledTaskExecutionUpdateOne) SetResultSummary(v map[string]interface{}) *ScheduledTaskExecutionUpdateOne {
	_u.mutation.SetResultSummary(v)
	return _u
}

// ClearResultSummary clears the value of the "result_summary" field.
func (_u *ScheduledTaskExecutionUpdateOne) ClearResultSummary() *ScheduledTaskExecutionUpdateOne {
	_u.mutation.ClearResultSummary()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScheduledTaskExecutionUpdateOne) SetErrorMessage(v string) *ScheduledTaskExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScheduledTaskExecutionUpdateOne) SetNillableErrorMessage(v *string) *ScheduledTaskExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ScheduledTaskExecutionUpdateOne) ClearErrorMessage() *ScheduledTaskExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *ScheduledTaskExecutionUpdateOne) SetRetryCount(v int) *ScheduledTaskExecutionUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *ScheduledTaskExecutionUpdateOne) SetNillableRetryCount(v *int) *ScheduledTaskExecutionUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *ScheduledTaskExecutionUpdateOne) AddRetryCount(v int) *ScheduledTaskExecutionUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetArtifacts sets the "artifacts" field.
func (_u *ScheduledTaskExecutionUpdateOne) SetArtifacts(v []map[string]interface{}) *ScheduledTaskExecutionUpdateOne {
	_u.mutation.SetArtifacts(v)
	return _u
}

// AppendArtifacts appends value to the "artifacts" field.
func (_u *ScheduledTaskExecutionUpdateOne) AppendArtifacts(v []map[string]interface{}) *ScheduledTaskExecutionUpdateOne {
	_u.mutation.AppendArtifacts(v)
	return _u
}

// ClearArtifacts clears the value of the "artifacts" field.
func (_u *ScheduledTaskExecutionUpdateOne) ClearArtifacts() *ScheduledTaskExecutionUpdateOne {
	_u.mutation.ClearArtifacts()
	return _u
}

// SetNotificationsSent sets the "notifications_sent" field.
func (_u *ScheduledTaskExecutionUpdateOne) SetNotificationsSent(v map[string]interface{}) *ScheduledTaskExecutionUpdateOne {
	_u.mutation.SetNotificationsSent(v)
	return _u
}

// ClearNotificationsSent clears the value of the "notifications_sent" field.
func (_u *ScheduledTaskExecutionUpdateOne) ClearNotificationsSent() *ScheduledTaskExecutionUpdateOne {
	_u.mutation.ClearNotificationsSent()
	return _u
}

// SetScheduledTask sets the "scheduled_task" edge to the ScheduledTask entity.
func (_u *ScheduledTaskExecutionUpdateOne) SetScheduledTask(v *ScheduledTask) *ScheduledTaskExecutionUpdateOne {
	return _u.SetScheduledTaskID(v.ID)
}

// Mutation returns the ScheduledTaskExecutionMutation object of the builder.
func (_u *ScheduledTaskExecutionUpdateOne) Mutation() *ScheduledTaskExecutionMutation {
	return _u.mutation
}

// ClearScheduledTask clears the "scheduled_task" edge to the ScheduledTask entity.
func (_u *ScheduledTaskExecutionUpdateOne) ClearScheduledTask() *ScheduledTaskExecutionUpdateOne {
	_u.mutation.ClearScheduledTask()
	return _u
}

// Where appends a list predicates to the ScheduledTaskExecutionUpdate builder.
func (_u *ScheduledTaskExecutionUpdateOne) Where(ps ...predicate.ScheduledTaskExecution) *ScheduledTaskExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduledTaskExecutionUpdateOne) Select(field string, fields ...string) *ScheduledTaskExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScheduledTaskExecution entity.
func (_u *ScheduledTaskExecutionUpdateOne) Save(ctx context.Context) (*ScheduledTaskExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledTaskExecutionUpdateOne) SaveX(ctx context.Context) *ScheduledTaskExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduledTaskExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledTaskExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledTaskExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := scheduledtaskexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledTaskExecution.status": %w`, err)}
		}
	}
	if _u.mutation.ScheduledTaskCleared() && len(_u.mutation.ScheduledTaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScheduledTaskExecution.scheduled_task"`)
	}
	return nil
}

func (_u *ScheduledTaskExecutionUpdateOne) sqlSave(ctx context.Context) (_node *ScheduledTaskExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledtaskexecution.Table, scheduledtaskexecution.Columns, sqlgraph.NewFieldSpec(scheduledtaskexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScheduledTaskExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduledtaskexecution.FieldID)
		for _, f := range fields {
			if !scheduledtaskexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scheduledtaskexecution.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scheduledtaskexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.A2aTaskID(); ok {
		_spec.SetField(scheduledtaskexecution.FieldA2aTaskID, field.TypeString, value)
	}
	if _u.mutation.A2aTaskIDCleared() {
		_spec.ClearField(scheduledtaskexecution.FieldA2aTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.ScheduledFor(); ok {
		_spec.SetField(scheduledtaskexecution.FieldScheduledFor, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedScheduledFor(); ok {
		_spec.AddField(scheduledtaskexecution.FieldScheduledFor, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(scheduledtaskexecution.FieldStartedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedStartedAt(); ok {
		_spec.AddField(scheduledtaskexecution.FieldStartedAt, field.TypeInt64, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(scheduledtaskexecution.FieldStartedAt, field.TypeInt64)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(scheduledtaskexecution.FieldCompletedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompletedAt(); ok {
		_spec.AddField(scheduledtaskexecution.FieldCompletedAt, field.TypeInt64, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(scheduledtaskexecution.FieldCompletedAt, field.TypeInt64)
	}
	if value, ok := _u.mutation.ResultSummary(); ok {
		_spec.SetField(scheduledtaskexecution.FieldResultSummary, field.TypeJSON, value)
	}
	if _u.mutation.ResultSummaryCleared() {
		_spec.ClearField(scheduledtaskexecution.FieldResultSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scheduledtaskexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(scheduledtaskexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(scheduledtaskexecution.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(scheduledtaskexecution.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Artifacts(); ok {
		_spec.SetField(scheduledtaskexecution.FieldArtifacts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArtifacts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scheduledtaskexecution.FieldArtifacts, value)
		})
	}
	if _u.mutation.ArtifactsCleared() {
		_spec.ClearField(scheduledtaskexecution.FieldArtifacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.NotificationsSent(); ok {
		_spec.SetField(scheduledtaskexecution.FieldNotificationsSent, field.TypeJSON, value)
	}
	if _u.mutation.NotificationsSentCleared() {
		_spec.ClearField(scheduledtaskexecution.FieldNotificationsSent, field.TypeJSON)
	}
	if _u.mutation.ScheduledTaskCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScheduledTaskIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ScheduledTaskExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledtaskexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
