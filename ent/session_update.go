// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/solacecommunity/agent-mesh-gateway/ent/chattask"
	"github.com/solacecommunity/agent-mesh-gateway/ent/predicate"
	"github.com/solacecommunity/agent-mesh-gateway/ent/session"
	"github.com/solacecommunity/agent-mesh-gateway/ent/sseevent"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionUpdate) SetUserID(v string) *SessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableUserID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SessionUpdate) SetName(v string) *SessionUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableName(v *string) *SessionUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *SessionUpdate) ClearName() *SessionUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *SessionUpdate) SetAgentID(v string) *SessionUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableAgentID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *SessionUpdate) ClearAgentID() *SessionUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *SessionUpdate) SetProjectID(v string) *SessionUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableProjectID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *SessionUpdate) ClearProjectID() *SessionUpdate {
	_u.mutation.ClearProjectID()
	return _u
}

// SetUpdatedTime sets the "updated_time" field.
func (_u *SessionUpdate) SetUpdatedTime(v int64) *SessionUpdate {
	_u.mutation.ResetUpdatedTime()
	_u.mutation.SetUpdatedTime(v)
	return _u
}

// SetNillableUpdatedTime sets the "updated_time" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableUpdatedTime(v *int64) *SessionUpdate {
	if v != nil {
		_u.SetUpdatedTime(*v)
	}
	return _u
}

// AddUpdatedTime adds value to the "updated_time" field.
func (_u *SessionUpdate) AddUpdatedTime(v int64) *SessionUpdate {
	_u.mutation.AddUpdatedTime(v)
	return _u
}

// SetGatewayType sets the "gateway_type" field.
func (_u *SessionUpdate) SetGatewayType(v string) *SessionUpdate {
	_u.mutation.SetGatewayType(v)
	return _u
}

// SetNillableGatewayType sets the "gateway_type" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableGatewayType(v *string) *SessionUpdate {
	if v != nil {
		_u.SetGatewayType(*v)
	}
	return _u
}

// ClearGatewayType clears the value of the "gateway_type" field.
func (_u *SessionUpdate) ClearGatewayType() *SessionUpdate {
	_u.mutation.ClearGatewayType()
	return _u
}

// SetExternalContextID sets the "external_context_id" field.
func (_u *SessionUpdate) SetExternalContextID(v string) *SessionUpdate {
	_u.mutation.SetExternalContextID(v)
	return _u
}

// SetNillableExternalContextID sets the "external_context_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableExternalContextID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetExternalContextID(*v)
	}
	return _u
}

// ClearExternalContextID clears the value of the "external_context_id" field.
func (_u *SessionUpdate) ClearExternalContextID() *SessionUpdate {
	_u.mutation.ClearExternalContextID()
	return _u
}

// SetIsCompressionBranch sets the "is_compression_branch" field.
func (_u *SessionUpdate) SetIsCompressionBranch(v bool) *SessionUpdate {
	_u.mutation.SetIsCompressionBranch(v)
	return _u
}

// SetNillableIsCompressionBranch sets the "is_compression_branch" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableIsCompressionBranch(v *bool) *SessionUpdate {
	if v != nil {
		_u.SetIsCompressionBranch(*v)
	}
	return _u
}

// SetCompressionMetadata sets the "compression_metadata" field.
func (_u *SessionUpdate) SetCompressionMetadata(v map[string]interface{}) *SessionUpdate {
	_u.mutation.SetCompressionMetadata(v)
	return _u
}

// ClearCompressionMetadata clears the value of the "compression_metadata" field.
func (_u *SessionUpdate) ClearCompressionMetadata() *SessionUpdate {
	_u.mutation.ClearCompressionMetadata()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *SessionUpdate) SetDeletedAt(v int64) *SessionUpdate {
	_u.mutation.ResetDeletedAt()
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableDeletedAt(v *int64) *SessionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// AddDeletedAt adds value to the "deleted_at" field.
func (_u *SessionUpdate) AddDeletedAt(v int64) *SessionUpdate {
	_u.mutation.AddDeletedAt(v)
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *SessionUpdate) ClearDeletedAt() *SessionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddChatTaskIDs adds the "chat_tasks" edge to the ChatTask entity by IDs.
func (_u *SessionUpdate) AddChatTaskIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddChatTaskIDs(ids...)
	return _u
}

// AddChatTasks adds the "chat_tasks" edges to the ChatTask entity.
func (_u *SessionUpdate) AddChatTasks(v ...*ChatTask) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatTaskIDs(ids...)
}

// AddSseEventIDs adds the "sse_events" edge to the SSEEvent entity by IDs.
func (_u *SessionUpdate) AddSseEventIDs(ids ...int) *SessionUpdate {
	_u.mutation.AddSseEventIDs(ids...)
	return _u
}

// AddSseEvents adds the "sse_events" edges to the SSEEvent entity.
func (_u *SessionUpdate) AddSseEvents(v ...*SSEEvent) *SessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSseEventIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearChatTasks clears all "chat_tasks" edges to the ChatTask entity.
func (_u *SessionUpdate) ClearChatTasks() *SessionUpdate {
	_u.mutation.ClearChatTasks()
	return _u
}

// RemoveChatTaskIDs removes the "chat_tasks" edge to ChatTask entities by IDs.
func (_u *SessionUpdate) RemoveChatTaskIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemoveChatTaskIDs(ids...)
	return _u
}

// RemoveChatTasks removes "chat_tasks" edges to ChatTask entities.
func (_u *SessionUpdate) RemoveChatTasks(v ...*ChatTask) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatTaskIDs(ids...)
}

// ClearSseEvents clears all "sse_events" edges to the SSEEvent entity.
func (_u *SessionUpdate) ClearSseEvents() *SessionUpdate {
	_u.mutation.ClearSseEvents()
	return _u
}

// RemoveSseEventIDs removes the "sse_events" edge to SSEEvent entities by IDs.
func (_u *SessionUpdate) RemoveSseEventIDs(ids ...int) *SessionUpdate {
	_u.mutation.RemoveSseEventIDs(ids...)
	return _u
}

// RemoveSseEvents removes "sse_events" edges to SSEEvent entities.
func (_u *SessionUpdate) RemoveSseEvents(v ...*SSEEvent) *SessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSseEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(session.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(session.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(session.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(session.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(session.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(session.FieldProjectID, field.TypeString, value)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(session.FieldProjectID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedTime(); ok {
		_spec.SetField(session.FieldUpdatedTime, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUpdatedTime(); ok {
		_spec.AddField(session.FieldUpdatedTime, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.GatewayType(); ok {
		_spec.SetField(session.FieldGatewayType, field.TypeString, value)
	}
	if _u.mutation.GatewayTypeCleared() {
		_spec.ClearField(session.FieldGatewayType, field.TypeString)
	}
	if value, ok := _u.mutation.ExternalContextID(); ok {
		_spec.SetField(session.FieldExternalContextID, field.TypeString, value)
	}
	if _u.mutation.ExternalContextIDCleared() {
		_spec.ClearField(session.FieldExternalContextID, field.TypeString)
	}
	if value, ok := _u.mutation.IsCompressionBranch(); ok {
		_spec.SetField(session.FieldIsCompressionBranch, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompressionMetadata(); ok {
		_spec.SetField(session.FieldCompressionMetadata, field.TypeJSON, value)
	}
	if _u.mutation.CompressionMetadataCleared() {
		_spec.ClearField(session.FieldCompressionMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(session.FieldDeletedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDeletedAt(); ok {
		_spec.AddField(session.FieldDeletedAt, field.TypeInt64, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(session.FieldDeletedAt, field.TypeInt64)
	}
	if _u.mutation.ChatTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ChatTasksTable,
			Columns: []string{session.ChatTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chattask.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatTasksIDs(); len(nodes) > 0 && !_u.mutation.ChatTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ChatTasksTable,
			Columns: []string{session.ChatTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chattask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatTasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ChatTasksTable,
			Columns: []string{session.ChatTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chattask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SseEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.SseEventsTable,
			Columns: []string{session.SseEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sseevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSseEventsIDs(); len(nodes) > 0 && !_u.mutation.SseEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.SseEventsTable,
			Columns: []string{session.SseEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sseevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SseEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.SseEventsTable,
			Columns: []string{session.SseEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sseevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetUserID sets the "user_id" field.
func (_u *SessionUpdateOne) SetUserID(v string) *SessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableUserID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SessionUpdateOne) SetName(v string) *SessionUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableName(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *SessionUpdateOne) ClearName() *SessionUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *SessionUpdateOne) SetAgentID(v string) *SessionUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableAgentID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *SessionUpdateOne) ClearAgentID() *SessionUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *SessionUpdateOne) SetProjectID(v string) *SessionUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableProjectID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *SessionUpdateOne) ClearProjectID() *SessionUpdateOne {
	_u.mutation.ClearProjectID()
	return _u
}

// SetUpdatedTime sets the "updated_time" field.
func (_u *SessionUpdateOne) SetUpdatedTime(v int64) *SessionUpdateOne {
	_u.mutation.ResetUpdatedTime()
	_u.mutation.SetUpdatedTime(v)
	return _u
}

// SetNillableUpdatedTime sets the "updated_time" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableUpdatedTime(v *int64) *SessionUpdateOne {
	if v != nil {
		_u.SetUpdatedTime(*v)
	}
	return _u
}

// AddUpdatedTime adds value to the "updated_time" field.
func (_u *SessionUpdateOne) AddUpdatedTime(v int64) *SessionUpdateOne {
	_u.mutation.AddUpdatedTime(v)
	return _u
}

// SetGatewayType sets the "gateway_type" field.
func (_u *SessionUpdateOne) SetGatewayType(v string) *SessionUpdateOne {
	_u.mutation.SetGatewayType(v)
	return _u
}

// SetNillableGatewayType sets the "gateway_type" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableGatewayType(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetGatewayType(*v)
	}
	return _u
}

// ClearGatewayType clears the value of the "gateway_type" field.
func (_u *SessionUpdateOne) ClearGatewayType() *SessionUpdateOne {
	_u.mutation.ClearGatewayType()
	return _u
}

// SetExternalContextID sets the "external_context_id" field.
func (_u *SessionUpdateOne) SetExternalContextID(v string) *SessionUpdateOne {
	_u.mutation.SetExternalContextID(v)
	return _u
}

// SetNillableExternalContextID sets the "external_context_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableExternalContextID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetExternalContextID(*v)
	}
	return _u
}

// ClearExternalContextID clears the value of the "external_context_id" field.
func (_u *SessionUpdateOne) ClearExternalContextID() *SessionUpdateOne {
	_u.mutation.ClearExternalContextID()
	return _u
}

// SetIsCompressionBranch sets the "is_compression_branch" field.
func (_u *SessionUpdateOne) SetIsCompressionBranch(v bool) *SessionUpdateOne {
	_u.mutation.SetIsCompressionBranch(v)
	return _u
}

// SetNillableIsCompressionBranch sets the "is_compression_branch" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableIsCompressionBranch(v *bool) *SessionUpdateOne {
	if v != nil {
		_u.SetIsCompressionBranch(*v)
	}
	return _u
}

// SetCompressionMetadata sets the "compression_metadata" field.
func (_u *SessionUpdateOne) SetCompressionMetadata(v map[string]interface{}) *SessionUpdateOne {
	_u.mutation.SetCompressionMetadata(v)
	return _u
}

// ClearCompressionMetadata clears the value of the "compression_metadata" field.
func (_u *SessionUpdateOne) ClearCompressionMetadata() *SessionUpdateOne {
	_u.mutation.ClearCompressionMetadata()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *SessionUpdateOne) SetDeletedAt(v int64) *SessionUpdateOne {
	_u.mutation.ResetDeletedAt()
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableDeletedAt(v *int64) *SessionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// AddDeletedAt adds value to the "deleted_at" field.
func (_u *SessionUpdateOne) AddDeletedAt(v int64) *SessionUpdateOne {
	_u.mutation.AddDeletedAt(v)
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *SessionUpdateOne) ClearDeletedAt() *SessionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddChatTaskIDs adds the "chat_tasks" edge to the ChatTask entity by IDs.
func (_u *SessionUpdateOne) AddChatTaskIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddChatTaskIDs(ids...)
	return _u
}

// AddChatTasks adds the "chat_tasks" edges to the ChatTask entity.
func (_u *SessionUpdateOne) AddChatTasks(v ...*ChatTask) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatTaskIDs(ids...)
}

// AddSseEventIDs adds the "sse_events" edge to the SSEEvent entity by IDs.
func (_u *SessionUpdateOne) AddSseEventIDs(ids ...int) *SessionUpdateOne {
	_u.mutation.AddSseEventIDs(ids...)
	return _u
}

// AddSseEvents adds the "sse_events" edges to the SSEEvent entity.
func (_u *SessionUpdateOne) AddSseEvents(v ...*SSEEvent) *SessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSseEventIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearChatTasks clears all "chat_tasks" edges to the ChatTask entity.
func (_u *SessionUpdateOne) ClearChatTasks() *SessionUpdateOne {
	_u.mutation.ClearChatTasks()
	return _u
}

// RemoveChatTaskIDs removes the "chat_tasks" edge to ChatTask entities by IDs.
func (_u *SessionUpdateOne) RemoveChatTaskIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemoveChatTaskIDs(ids...)
	return _u
}

// RemoveChatTasks removes "chat_tasks" edges to ChatTask entities.
func (_u *SessionUpdateOne) RemoveChatTasks(v ...*ChatTask) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatTaskIDs(ids...)
}

// ClearSseEvents clears all "sse_events" edges to the SSEEvent entity.
func (_u *SessionUpdateOne) ClearSseEvents() *SessionUpdateOne {
	_u.mutation.ClearSseEvents()
	return _u
}

// RemoveSseEventIDs removes the "sse_events" edge to SSEEvent entities by IDs.
func (_u *SessionUpdateOne) RemoveSseEventIDs(ids ...int) *SessionUpdateOne {
	_u.mutation.RemoveSseEventIDs(ids...)
	return _u
}

// RemoveSseEvents removes "sse_events" edges to SSEEvent entities.
func (_u *SessionUpdateOne) RemoveSseEvents(v ...*SSEEvent) *SessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSseEventIDs(ids...)
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(session.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(session.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(session.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(session.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(session.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(session.FieldProjectID, field.TypeString, value)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(session.FieldProjectID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedTime(); ok {
		_spec.SetField(session.FieldUpdatedTime, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUpdatedTime(); ok {
		_spec.AddField(session.FieldUpdatedTime, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.GatewayType(); ok {
		_spec.SetField(session.FieldGatewayType, field.TypeString, value)
	}
	if _u.mutation.GatewayTypeCleared() {
		_spec.ClearField(session.FieldGatewayType, field.TypeString)
	}
	if value, ok := _u.mutation.ExternalContextID(); ok {
		_spec.SetField(session.FieldExternalContextID, field.TypeString, value)
	}
	if _u.mutation.ExternalContextIDCleared() {
		_spec.ClearField(session.FieldExternalContextID, field.TypeString)
	}
	if value, ok := _u.mutation.IsCompressionBranch(); ok {
		_spec.SetField(session.FieldIsCompressionBranch, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompressionMetadata(); ok {
		_spec.SetField(session.FieldCompressionMetadata, field.TypeJSON, value)
	}
	if _u.mutation.CompressionMetadataCleared() {
		_spec.ClearField(session.FieldCompressionMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(session.FieldDeletedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDeletedAt(); ok {
		_spec.AddField(session.FieldDeletedAt, field.TypeInt64, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(session.FieldDeletedAt, field.TypeInt64)
	}
	if _u.mutation.ChatTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ChatTasksTable,
			Columns: []string{session.ChatTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chattask.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatTasksIDs(); len(nodes) > 0 && !_u.mutation.ChatTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ChatTasksTable,
			Columns: []string{session.ChatTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chattask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatTasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ChatTasksTable,
			Columns: []string{session.ChatTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chattask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SseEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.SseEventsTable,
			Columns: []string{session.SseEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sseevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSseEventsIDs(); len(nodes) > 0 && !_u.mutation.SseEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.SseEventsTable,
			Columns: []string{session.SseEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sseevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SseEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.SseEventsTable,
			Columns: []string{session.SseEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sseevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
