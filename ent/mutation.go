// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/solacecommunity/agent-mesh-gateway/ent/chattask"
	"github.com/solacecommunity/agent-mesh-gateway/ent/docconversioncache"
	"github.com/solacecommunity/agent-mesh-gateway/ent/feedback"
	"github.com/solacecommunity/agent-mesh-gateway/ent/monthlyusage"
	"github.com/solacecommunity/agent-mesh-gateway/ent/predicate"
	"github.com/solacecommunity/agent-mesh-gateway/ent/project"
	"github.com/solacecommunity/agent-mesh-gateway/ent/scheduledtask"
	"github.com/solacecommunity/agent-mesh-gateway/ent/scheduledtaskexecution"
	"github.com/solacecommunity/agent-mesh-gateway/ent/schedulerlock"
	"github.com/solacecommunity/agent-mesh-gateway/ent/session"
	"github.com/solacecommunity/agent-mesh-gateway/ent/sseevent"
	"github.com/solacecommunity/agent-mesh-gateway/ent/task"
	"github.com/solacecommunity/agent-mesh-gateway/ent/taskevent"
	"github.com/solacecommunity/agent-mesh-gateway/ent/tokentransaction"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChatTask               = "ChatTask"
	TypeDocConversionCache     = "DocConversionCache"
	TypeFeedback               = "Feedback"
	TypeMonthlyUsage           = "MonthlyUsage"
	TypeProject                = "Project"
	TypeSSEEvent               = "SSEEvent"
	TypeScheduledTask          = "ScheduledTask"
	TypeScheduledTaskExecution = "ScheduledTaskExecution"
	TypeSchedulerLock          = "SchedulerLock"
	TypeSession                = "Session"
	TypeTask                   = "Task"
	TypeTaskEvent              = "TaskEvent"
	TypeTokenTransaction       = "TokenTransaction"
)

// ChatTaskMutation represents an operation that mutates the ChatTask nodes in the graph.
type ChatTaskMutation struct {
	config
	op              Op
	typ             string
	id              *string
	user_id         *string
	user_message    *string
	message_bubbles *string
	task_metadata   *string
	created_time    *int64
	addcreated_time *int64
	updated_time    *int64
	addupdated_time *int64
	clearedFields   map[string]struct{}
	session         *string
	clearedsession  bool
	done            bool
	oldValue        func(context.Context) (*ChatTask, error)
	predicates      []predicate.ChatTask
}

var _ ent.Mutation = (*ChatTaskMutation)(nil)

// chattaskOption allows management of the mutation configuration using functional options.
type chattaskOption func(*ChatTaskMutation)

// newChatTaskMutation creates new mutation for the ChatTask entity.
func newChatTaskMutation(c config, op Op, opts ...chattaskOption) *ChatTaskMutation {
	m := &ChatTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeChatTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatTaskID sets the ID field of the mutation.
func withChatTaskID(id string) chattaskOption {
	return func(m *ChatTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatTask
		)
		m.oldValue = func(ctx context.Context) (*ChatTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatTask sets the old ChatTask of the mutation.
func withChatTask(node *ChatTask) chattaskOption {
	return func(m *ChatTaskMutation) {
		m.oldValue = func(context.Context) (*ChatTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatTask entities.
func (m *ChatTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ChatTaskMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ChatTaskMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ChatTask entity.
// If the ChatTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatTaskMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ChatTaskMutation) ResetSessionID() {
	m.session = nil
}

// SetUserID sets the "user_id" field.
func (m *ChatTaskMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ChatTaskMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ChatTask entity.
// If the ChatTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatTaskMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ChatTaskMutation) ResetUserID() {
	m.user_id = nil
}

// SetUserMessage sets the "user_message" field.
func (m *ChatTaskMutation) SetUserMessage(s string) {
	m.user_message = &s
}

// UserMessage returns the value of the "user_message" field in the mutation.
func (m *ChatTaskMutation) UserMessage() (r string, exists bool) {
	v := m.user_message
	if v == nil {
		return
	}
	return *v, true
}

// OldUserMessage returns the old "user_message" field's value of the ChatTask entity.
// If the ChatTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatTaskMutation) OldUserMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserMessage: %w", err)
	}
	return oldValue.UserMessage, nil
}

// ClearUserMessage clears the value of the "user_message" field.
func (m *ChatTaskMutation) ClearUserMessage() {
	m.user_message = nil
	m.clearedFields[chattask.FieldUserMessage] = struct{}{}
}

// UserMessageCleared returns if the "user_message" field was cleared in this mutation.
func (m *ChatTaskMutation) UserMessageCleared() bool {
	_, ok := m.clearedFields[chattask.FieldUserMessage]
	return ok
}

// ResetUserMessage resets all changes to the "user_message" field.
func (m *ChatTaskMutation) ResetUserMessage() {
	m.user_message = nil
	delete(m.clearedFields, chattask.FieldUserMessage)
}

// SetMessageBubbles sets the "message_bubbles" field.
func (m *ChatTaskMutation) SetMessageBubbles(s string) {
	m.message_bubbles = &s
}

// MessageBubbles returns the value of the "message_bubbles" field in the mutation.
func (m *ChatTaskMutation) MessageBubbles() (r string, exists bool) {
	v := m.message_bubbles
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageBubbles returns the old "message_bubbles" field's value of the ChatTask entity.
// If the ChatTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatTaskMutation) OldMessageBubbles(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageBubbles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageBubbles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageBubbles: %w", err)
	}
	return oldValue.MessageBubbles, nil
}

// ResetMessageBubbles resets all changes to the "message_bubbles" field.
func (m *ChatTaskMutation) ResetMessageBubbles() {
	m.message_bubbles = nil
}

// SetTaskMetadata sets the "task_metadata" field.
func (m *ChatTaskMutation) SetTaskMetadata(s string) {
	m.task_metadata = &s
}

// TaskMetadata returns the value of the "task_metadata" field in the mutation.
func (m *ChatTaskMutation) TaskMetadata() (r string, exists bool) {
	v := m.task_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskMetadata returns the old "task_metadata" field's value of the ChatTask entity.
// If the ChatTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatTaskMutation) OldTaskMetadata(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskMetadata: %w", err)
	}
	return oldValue.TaskMetadata, nil
}

// ClearTaskMetadata clears the value of the "task_metadata" field.
func (m *ChatTaskMutation) ClearTaskMetadata() {
	m.task_metadata = nil
	m.clearedFields[chattask.FieldTaskMetadata] = struct{}{}
}

// TaskMetadataCleared returns if the "task_metadata" field was cleared in this mutation.
func (m *ChatTaskMutation) TaskMetadataCleared() bool {
	_, ok := m.clearedFields[chattask.FieldTaskMetadata]
	return ok
}

// ResetTaskMetadata resets all changes to the "task_metadata" field.
func (m *ChatTaskMutation) ResetTaskMetadata() {
	m.task_metadata = nil
	delete(m.clearedFields, chattask.FieldTaskMetadata)
}

// SetCreatedTime sets the "created_time" field.
func (m *ChatTaskMutation) SetCreatedTime(i int64) {
	m.created_time = &i
	m.addcreated_time = nil
}

// CreatedTime returns the value of the "created_time" field in the mutation.
func (m *ChatTaskMutation) CreatedTime() (r int64, exists bool) {
	v := m.created_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedTime returns the old "created_time" field's value of the ChatTask entity.
// If the ChatTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatTaskMutation) OldCreatedTime(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedTime: %w", err)
	}
	return oldValue.CreatedTime, nil
}

// AddCreatedTime adds i to the "created_time" field.
func (m *ChatTaskMutation) AddCreatedTime(i int64) {
	if m.addcreated_time != nil {
		*m.addcreated_time += i
	} else {
		m.addcreated_time = &i
	}
}

// AddedCreatedTime returns the value that was added to the "created_time" field in this mutation.
func (m *ChatTaskMutation) AddedCreatedTime() (r int64, exists bool) {
	v := m.addcreated_time
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedTime resets all changes to the "created_time" field.
func (m *ChatTaskMutation) ResetCreatedTime() {
	m.created_time = nil
	m.addcreated_time = nil
}

// SetUpdatedTime sets the "updated_time" field.
func (m *ChatTaskMutation) SetUpdatedTime(i int64) {
	m.updated_time = &i
	m.addupdated_time = nil
}

// UpdatedTime returns the value of the "updated_time" field in the mutation.
func (m *ChatTaskMutation) UpdatedTime() (r int64, exists bool) {
	v := m.updated_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedTime returns the old "updated_time" field's value of the ChatTask entity.
// If the ChatTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatTaskMutation) OldUpdatedTime(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedTime: %w", err)
	}
	return oldValue.UpdatedTime, nil
}

// AddUpdatedTime adds i to the "updated_time" field.
func (m *ChatTaskMutation) AddUpdatedTime(i int64) {
	if m.addupdated_time != nil {
		*m.addupdated_time += i
	} else {
		m.addupdated_time = &i
	}
}

// AddedUpdatedTime returns the value that was added to the "updated_time" field in this mutation.
func (m *ChatTaskMutation) AddedUpdatedTime() (r int64, exists bool) {
	v := m.addupdated_time
	if v == nil {
		return
	}
	return *v, true
}

// ClearUpdatedTime clears the value of the "updated_time" field.
func (m *ChatTaskMutation) ClearUpdatedTime() {
	m.updated_time = nil
	m.addupdated_time = nil
	m.clearedFields[chattask.FieldUpdatedTime] = struct{}{}
}

// UpdatedTimeCleared returns if the "updated_time" field was cleared in this mutation.
func (m *ChatTaskMutation) UpdatedTimeCleared() bool {
	_, ok := m.clearedFields[chattask.FieldUpdatedTime]
	return ok
}

// ResetUpdatedTime resets all changes to the "updated_time" field.
func (m *ChatTaskMutation) ResetUpdatedTime() {
	m.updated_time = nil
	m.addupdated_time = nil
	delete(m.clearedFields, chattask.FieldUpdatedTime)
}

// ClearSession clears the "session" edge to the Session entity.
func (m *ChatTaskMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[chattask.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *ChatTaskMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ChatTaskMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ChatTaskMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the ChatTaskMutation builder.
func (m *ChatTaskMutation) Where(ps ...predicate.ChatTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatTask).
func (m *ChatTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatTaskMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session != nil {
		fields = append(fields, chattask.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, chattask.FieldUserID)
	}
	if m.user_message != nil {
		fields = append(fields, chattask.FieldUserMessage)
	}
	if m.message_bubbles != nil {
		fields = append(fields, chattask.FieldMessageBubbles)
	}
	if m.task_metadata != nil {
		fields = append(fields, chattask.FieldTaskMetadata)
	}
	if m.created_time != nil {
		fields = append(fields, chattask.FieldCreatedTime)
	}
	if m.updated_time != nil {
		fields = append(fields, chattask.FieldUpdatedTime)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chattask.FieldSessionID:
		return m.SessionID()
	case chattask.FieldUserID:
		return m.UserID()
	case chattask.FieldUserMessage:
		return m.UserMessage()
	case chattask.FieldMessageBubbles:
		return m.MessageBubbles()
	case chattask.FieldTaskMetadata:
		return m.TaskMetadata()
	case chattask.FieldCreatedTime:
		return m.CreatedTime()
	case chattask.FieldUpdatedTime:
		return m.UpdatedTime()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chattask.FieldSessionID:
		return m.OldSessionID(ctx)
	case chattask.FieldUserID:
		return m.OldUserID(ctx)
	case chattask.FieldUserMessage:
		return m.OldUserMessage(ctx)
	case chattask.FieldMessageBubbles:
		return m.OldMessageBubbles(ctx)
	case chattask.FieldTaskMetadata:
		return m.OldTaskMetadata(ctx)
	case chattask.FieldCreatedTime:
		return m.OldCreatedTime(ctx)
	case chattask.FieldUpdatedTime:
		return m.OldUpdatedTime(ctx)
	}
	return nil, fmt.Errorf("unknown ChatTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chattask.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case chattask.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case chattask.FieldUserMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserMessage(v)
		return nil
	case chattask.FieldMessageBubbles:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageBubbles(v)
		return nil
	case chattask.FieldTaskMetadata:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskMetadata(v)
		return nil
	case chattask.FieldCreatedTime:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedTime(v)
		return nil
	case chattask.FieldUpdatedTime:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedTime(v)
		return nil
	}
	return fmt.Errorf("unknown ChatTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatTaskMutation) AddedFields() []string {
	var fields []string
	if m.addcreated_time != nil {
		fields = append(fields, chattask.FieldCreatedTime)
	}
	if m.addupdated_time != nil {
		fields = append(fields, chattask.FieldUpdatedTime)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chattask.FieldCreatedTime:
		return m.AddedCreatedTime()
	case chattask.FieldUpdatedTime:
		return m.AddedUpdatedTime()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chattask.FieldCreatedTime:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedTime(v)
		return nil
	case chattask.FieldUpdatedTime:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpdatedTime(v)
		return nil
	}
	return fmt.Errorf("unknown ChatTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chattask.FieldUserMessage) {
		fields = append(fields, chattask.FieldUserMessage)
	}
	if m.FieldCleared(chattask.FieldTaskMetadata) {
		fields = append(fields, chattask.FieldTaskMetadata)
	}
	if m.FieldCleared(chattask.FieldUpdatedTime) {
		fields = append(fields, chattask.FieldUpdatedTime)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatTaskMutation) ClearField(name string) error {
	switch name {
	case chattask.FieldUserMessage:
		m.ClearUserMessage()
		return nil
	case chattask.FieldTaskMetadata:
		m.ClearTaskMetadata()
		return nil
	case chattask.FieldUpdatedTime:
		m.ClearUpdatedTime()
		return nil
	}
	return fmt.Errorf("unknown ChatTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatTaskMutation) ResetField(name string) error {
	switch name {
	case chattask.FieldSessionID:
		m.ResetSessionID()
		return nil
	case chattask.FieldUserID:
		m.ResetUserID()
		return nil
	case chattask.FieldUserMessage:
		m.ResetUserMessage()
		return nil
	case chattask.FieldMessageBubbles:
		m.ResetMessageBubbles()
		return nil
	case chattask.FieldTaskMetadata:
		m.ResetTaskMetadata()
		return nil
	case chattask.FieldCreatedTime:
		m.ResetCreatedTime()
		return nil
	case chattask.FieldUpdatedTime:
		m.ResetUpdatedTime()
		return nil
	}
	return fmt.Errorf("unknown ChatTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, chattask.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatTaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chattask.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, chattask.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatTaskMutation) EdgeCleared(name string) bool {
	switch name {
	case chattask.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatTaskMutation) ClearEdge(name string) error {
	switch name {
	case chattask.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown ChatTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatTaskMutation) ResetEdge(name string) error {
	switch name {
	case chattask.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown ChatTask edge %s", name)
}

// DocConversionCacheMutation represents an operation that mutates the DocConversionCache nodes in the graph.
type DocConversionCacheMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	content_hash           *string
	file_extension         *string
	original_size_bytes    *int64
	addoriginal_size_bytes *int64
	pdf_data               *[]byte
	pdf_size_bytes         *int64
	addpdf_size_bytes      *int64
	created_at             *int64
	addcreated_at          *int64
	last_accessed_at       *int64
	addlast_accessed_at    *int64
	access_count           *int64
	addaccess_count        *int64
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*DocConversionCache, error)
	predicates             []predicate.DocConversionCache
}

var _ ent.Mutation = (*DocConversionCacheMutation)(nil)

// docconversioncacheOption allows management of the mutation configuration using functional options.
type docconversioncacheOption func(*DocConversionCacheMutation)

// newDocConversionCacheMutation creates new mutation for the DocConversionCache entity.
func newDocConversionCacheMutation(c config, op Op, opts ...docconversioncacheOption) *DocConversionCacheMutation {
	m := &DocConversionCacheMutation{
		config:        c,
		op:            op,
		typ:           TypeDocConversionCache,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocConversionCacheID sets the ID field of the mutation.
func withDocConversionCacheID(id int) docconversioncacheOption {
	return func(m *DocConversionCacheMutation) {
		var (
			err   error
			once  sync.Once
			value *DocConversionCache
		)
		m.oldValue = func(ctx context.Context) (*DocConversionCache, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocConversionCache.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocConversionCache sets the old DocConversionCache of the mutation.
func withDocConversionCache(node *DocConversionCache) docconversioncacheOption {
	return func(m *DocConversionCacheMutation) {
		m.oldValue = func(context.Context) (*DocConversionCache, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocConversionCacheMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocConversionCacheMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DocConversionCache entities.
func (m *DocConversionCacheMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocConversionCacheMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocConversionCacheMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocConversionCache.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContentHash sets the "content_hash" field.
func (m *DocConversionCacheMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *DocConversionCacheMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the DocConversionCache entity.
// If the DocConversionCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocConversionCacheMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *DocConversionCacheMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFileExtension sets the "file_extension" field.
func (m *DocConversionCacheMutation) SetFileExtension(s string) {
	m.file_extension = &s
}

// FileExtension returns the value of the "file_extension" field in the mutation.
func (m *DocConversionCacheMutation) FileExtension() (r string, exists bool) {
	v := m.file_extension
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExtension returns the old "file_extension" field's value of the DocConversionCache entity.
// If the DocConversionCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocConversionCacheMutation) OldFileExtension(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExtension is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExtension requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExtension: %w", err)
	}
	return oldValue.FileExtension, nil
}

// ResetFileExtension resets all changes to the "file_extension" field.
func (m *DocConversionCacheMutation) ResetFileExtension() {
	m.file_extension = nil
}

// SetOriginalSizeBytes sets the "original_size_bytes" field.
func (m *DocConversionCacheMutation) SetOriginalSizeBytes(i int64) {
	m.original_size_bytes = &i
	m.addoriginal_size_bytes = nil
}

// OriginalSizeBytes returns the value of the "original_size_bytes" field in the mutation.
func (m *DocConversionCacheMutation) OriginalSizeBytes() (r int64, exists bool) {
	v := m.original_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalSizeBytes returns the old "original_size_bytes" field's value of the DocConversionCache entity.
// If the DocConversionCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocConversionCacheMutation) OldOriginalSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalSizeBytes: %w", err)
	}
	return oldValue.OriginalSizeBytes, nil
}

// AddOriginalSizeBytes adds i to the "original_size_bytes" field.
func (m *DocConversionCacheMutation) AddOriginalSizeBytes(i int64) {
	if m.addoriginal_size_bytes != nil {
		*m.addoriginal_size_bytes += i
	} else {
		m.addoriginal_size_bytes = &i
	}
}

// AddedOriginalSizeBytes returns the value that was added to the "original_size_bytes" field in this mutation.
func (m *DocConversionCacheMutation) AddedOriginalSizeBytes() (r int64, exists bool) {
	v := m.addoriginal_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetOriginalSizeBytes resets all changes to the "original_size_bytes" field.
func (m *DocConversionCacheMutation) ResetOriginalSizeBytes() {
	m.original_size_bytes = nil
	m.addoriginal_size_bytes = nil
}

// SetPdfData sets the "pdf_data" field.
func (m *DocConversionCacheMutation) SetPdfData(b []byte) {
	m.pdf_data = &b
}

// PdfData returns the value of the "pdf_data" field in the mutation.
func (m *DocConversionCacheMutation) PdfData() (r []byte, exists bool) {
	v := m.pdf_data
	if v == nil {
		return
	}
	return *v, true
}

// OldPdfData returns the old "pdf_data" field's value of the DocConversionCache entity.
// If the DocConversionCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocConversionCacheMutation) OldPdfData(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPdfData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPdfData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPdfData: %w", err)
	}
	return oldValue.PdfData, nil
}

// ResetPdfData resets all changes to the "pdf_data" field.
func (m *DocConversionCacheMutation) ResetPdfData() {
	m.pdf_data = nil
}

// SetPdfSizeBytes sets the "pdf_size_bytes" field.
func (m *DocConversionCacheMutation) SetPdfSizeBytes(i int64) {
	m.pdf_size_bytes = &i
	m.addpdf_size_bytes = nil
}

// PdfSizeBytes returns the value of the "pdf_size_bytes" field in the mutation.
func (m *DocConversionCacheMutation) PdfSizeBytes() (r int64, exists bool) {
	v := m.pdf_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldPdfSizeBytes returns the old "pdf_size_bytes" field's value of the DocConversionCache entity.
// If the DocConversionCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocConversionCacheMutation) OldPdfSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPdfSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPdfSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPdfSizeBytes: %w", err)
	}
	return oldValue.PdfSizeBytes, nil
}

// AddPdfSizeBytes adds i to the "pdf_size_bytes" field.
func (m *DocConversionCacheMutation) AddPdfSizeBytes(i int64) {
	if m.addpdf_size_bytes != nil {
		*m.addpdf_size_bytes += i
	} else {
		m.addpdf_size_bytes = &i
	}
}

// AddedPdfSizeBytes returns the value that was added to the "pdf_size_bytes" field in this mutation.
func (m *DocConversionCacheMutation) AddedPdfSizeBytes() (r int64, exists bool) {
	v := m.addpdf_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetPdfSizeBytes resets all changes to the "pdf_size_bytes" field.
func (m *DocConversionCacheMutation) ResetPdfSizeBytes() {
	m.pdf_size_bytes = nil
	m.addpdf_size_bytes = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DocConversionCacheMutation) SetCreatedAt(i int64) {
	m.created_at = &i
	m.addcreated_at = nil
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocConversionCacheMutation) CreatedAt() (r int64, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DocConversionCache entity.
// If the DocConversionCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocConversionCacheMutation) OldCreatedAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// AddCreatedAt adds i to the "created_at" field.
func (m *DocConversionCacheMutation) AddCreatedAt(i int64) {
	if m.addcreated_at != nil {
		*m.addcreated_at += i
	} else {
		m.addcreated_at = &i
	}
}

// AddedCreatedAt returns the value that was added to the "created_at" field in this mutation.
func (m *DocConversionCacheMutation) AddedCreatedAt() (r int64, exists bool) {
	v := m.addcreated_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocConversionCacheMutation) ResetCreatedAt() {
	m.created_at = nil
	m.addcreated_at = nil
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (m *DocConversionCacheMutation) SetLastAccessedAt(i int64) {
	m.last_accessed_at = &i
	m.addlast_accessed_at = nil
}

// LastAccessedAt returns the value of the "last_accessed_at" field in the mutation.
func (m *DocConversionCacheMutation) LastAccessedAt() (r int64, exists bool) {
	v := m.last_accessed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAccessedAt returns the old "last_accessed_at" field's value of the DocConversionCache entity.
// If the DocConversionCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocConversionCacheMutation) OldLastAccessedAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAccessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAccessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAccessedAt: %w", err)
	}
	return oldValue.LastAccessedAt, nil
}

// AddLastAccessedAt adds i to the "last_accessed_at" field.
func (m *DocConversionCacheMutation) AddLastAccessedAt(i int64) {
	if m.addlast_accessed_at != nil {
		*m.addlast_accessed_at += i
	} else {
		m.addlast_accessed_at = &i
	}
}

// AddedLastAccessedAt returns the value that was added to the "last_accessed_at" field in this mutation.
func (m *DocConversionCacheMutation) AddedLastAccessedAt() (r int64, exists bool) {
	v := m.addlast_accessed_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastAccessedAt resets all changes to the "last_accessed_at" field.
func (m *DocConversionCacheMutation) ResetLastAccessedAt() {
	m.last_accessed_at = nil
	m.addlast_accessed_at = nil
}

// SetAccessCount sets the "access_count" field.
func (m *DocConversionCacheMutation) SetAccessCount(i int64) {
	m.access_count = &i
	m.addaccess_count = nil
}

// AccessCount returns the value of the "access_count" field in the mutation.
func (m *DocConversionCacheMutation) AccessCount() (r int64, exists bool) {
	v := m.access_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessCount returns the old "access_count" field's value of the DocConversionCache entity.
// If the DocConversionCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocConversionCacheMutation) OldAccessCount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessCount: %w", err)
	}
	return oldValue.AccessCount, nil
}

// AddAccessCount adds i to the "access_count" field.
func (m *DocConversionCacheMutation) AddAccessCount(i int64) {
	if m.addaccess_count != nil {
		*m.addaccess_count += i
	} else {
		m.addaccess_count = &i
	}
}

// AddedAccessCount returns the value that was added to the "access_count" field in this mutation.
func (m *DocConversionCacheMutation) AddedAccessCount() (r int64, exists bool) {
	v := m.addaccess_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccessCount resets all changes to the "access_count" field.
func (m *DocConversionCacheMutation) ResetAccessCount() {
	m.access_count = nil
	m.addaccess_count = nil
}

// Where appends a list predicates to the DocConversionCacheMutation builder.
func (m *DocConversionCacheMutation) Where(ps ...predicate.DocConversionCache) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocConversionCacheMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocConversionCacheMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocConversionCache, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocConversionCacheMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocConversionCacheMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocConversionCache).
func (m *DocConversionCacheMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocConversionCacheMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.content_hash != nil {
		fields = append(fields, docconversioncache.FieldContentHash)
	}
	if m.file_extension != nil {
		fields = append(fields, docconversioncache.FieldFileExtension)
	}
	if m.original_size_bytes != nil {
		fields = append(fields, docconversioncache.FieldOriginalSizeBytes)
	}
	if m.pdf_data != nil {
		fields = append(fields, docconversioncache.FieldPdfData)
	}
	if m.pdf_size_bytes != nil {
		fields = append(fields, docconversioncache.FieldPdfSizeBytes)
	}
	if m.created_at != nil {
		fields = append(fields, docconversioncache.FieldCreatedAt)
	}
	if m.last_accessed_at != nil {
		fields = append(fields, docconversioncache.FieldLastAccessedAt)
	}
	if m.access_count != nil {
		fields = append(fields, docconversioncache.FieldAccessCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocConversionCacheMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case docconversioncache.FieldContentHash:
		return m.ContentHash()
	case docconversioncache.FieldFileExtension:
		return m.FileExtension()
	case docconversioncache.FieldOriginalSizeBytes:
		return m.OriginalSizeBytes()
	case docconversioncache.FieldPdfData:
		return m.PdfData()
	case docconversioncache.FieldPdfSizeBytes:
		return m.PdfSizeBytes()
	case docconversioncache.FieldCreatedAt:
		return m.CreatedAt()
	case docconversioncache.FieldLastAccessedAt:
		return m.LastAccessedAt()
	case docconversioncache.FieldAccessCount:
		return m.AccessCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocConversionCacheMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case docconversioncache.FieldContentHash:
		return m.OldContentHash(ctx)
	case docconversioncache.FieldFileExtension:
		return m.OldFileExtension(ctx)
	case docconversioncache.FieldOriginalSizeBytes:
		return m.OldOriginalSizeBytes(ctx)
	case docconversioncache.FieldPdfData:
		return m.OldPdfData(ctx)
	case docconversioncache.FieldPdfSizeBytes:
		return m.OldPdfSizeBytes(ctx)
	case docconversioncache.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case docconversioncache.FieldLastAccessedAt:
		return m.OldLastAccessedAt(ctx)
	case docconversioncache.FieldAccessCount:
		return m.OldAccessCount(ctx)
	}
	return nil, fmt.Errorf("unknown DocConversionCache field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocConversionCacheMutation) SetField(name string, value ent.Value) error {
	switch name {
	case docconversioncache.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case docconversioncache.FieldFileExtension:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExtension(v)
		return nil
	case docconversioncache.FieldOriginalSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalSizeBytes(v)
		return nil
	case docconversioncache.FieldPdfData:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPdfData(v)
		return nil
	case docconversioncache.FieldPdfSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPdfSizeBytes(v)
		return nil
	case docconversioncache.FieldCreatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case docconversioncache.FieldLastAccessedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAccessedAt(v)
		return nil
	case docconversioncache.FieldAccessCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessCount(v)
		return nil
	}
	return fmt.Errorf("unknown DocConversionCache field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocConversionCacheMutation) AddedFields() []string {
	var fields []string
	if m.addoriginal_size_bytes != nil {
		fields = append(fields, docconversioncache.FieldOriginalSizeBytes)
	}
	if m.addpdf_size_bytes != nil {
		fields = append(fields, docconversioncache.FieldPdfSizeBytes)
	}
	if m.addcreated_at != nil {
		fields = append(fields, docconversioncache.FieldCreatedAt)
	}
	if m.addlast_accessed_at != nil {
		fields = append(fields, docconversioncache.FieldLastAccessedAt)
	}
	if m.addaccess_count != nil {
		fields = append(fields, docconversioncache.FieldAccessCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocConversionCacheMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case docconversioncache.FieldOriginalSizeBytes:
		return m.AddedOriginalSizeBytes()
	case docconversioncache.FieldPdfSizeBytes:
		return m.AddedPdfSizeBytes()
	case docconversioncache.FieldCreatedAt:
		return m.AddedCreatedAt()
	case docconversioncache.FieldLastAccessedAt:
		return m.AddedLastAccessedAt()
	case docconversioncache.FieldAccessCount:
		return m.AddedAccessCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocConversionCacheMutation) AddField(name string, value ent.Value) error {
	switch name {
	case docconversioncache.FieldOriginalSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOriginalSizeBytes(v)
		return nil
	case docconversioncache.FieldPdfSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPdfSizeBytes(v)
		return nil
	case docconversioncache.FieldCreatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedAt(v)
		return nil
	case docconversioncache.FieldLastAccessedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastAccessedAt(v)
		return nil
	case docconversioncache.FieldAccessCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccessCount(v)
		return nil
	}
	return fmt.Errorf("unknown DocConversionCache numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocConversionCacheMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocConversionCacheMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocConversionCacheMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DocConversionCache nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocConversionCacheMutation) ResetField(name string) error {
	switch name {
	case docconversioncache.FieldContentHash:
		m.ResetContentHash()
		return nil
	case docconversioncache.FieldFileExtension:
		m.ResetFileExtension()
		return nil
	case docconversioncache.FieldOriginalSizeBytes:
		m.ResetOriginalSizeBytes()
		return nil
	case docconversioncache.FieldPdfData:
		m.ResetPdfData()
		return nil
	case docconversioncache.FieldPdfSizeBytes:
		m.ResetPdfSizeBytes()
		return nil
	case docconversioncache.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case docconversioncache.FieldLastAccessedAt:
		m.ResetLastAccessedAt()
		return nil
	case docconversioncache.FieldAccessCount:
		m.ResetAccessCount()
		return nil
	}
	return fmt.Errorf("unknown DocConversionCache field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocConversionCacheMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocConversionCacheMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocConversionCacheMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocConversionCacheMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocConversionCacheMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocConversionCacheMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocConversionCacheMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DocConversionCache unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocConversionCacheMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DocConversionCache edge %s", name)
}

// FeedbackMutation represents an operation that mutates the Feedback nodes in the graph.
type FeedbackMutation struct {
	config
	op              Op
	typ             string
	id              *string
	session_id      *string
	task_id         *string
	user_id         *string
	rating          *feedback.Rating
	comment         *string
	created_time    *int64
	addcreated_time *int64
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Feedback, error)
	predicates      []predicate.Feedback
}

var _ ent.Mutation = (*FeedbackMutation)(nil)

// feedbackOption allows management of the mutation configuration using functional options.
type feedbackOption func(*FeedbackMutation)

// newFeedbackMutation creates new mutation for the Feedback entity.
func newFeedbackMutation(c config, op Op, opts ...feedbackOption) *FeedbackMutation {
	m := &FeedbackMutation{
		config:        c,
		op:            op,
		typ:           TypeFeedback,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFeedbackID sets the ID field of the mutation.
func withFeedbackID(id string) feedbackOption {
	return func(m *FeedbackMutation) {
		var (
			err   error
			once  sync.Once
			value *Feedback
		)
		m.oldValue = func(ctx context.Context) (*Feedback, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Feedback.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFeedback sets the old Feedback of the mutation.
func withFeedback(node *Feedback) feedbackOption {
	return func(m *FeedbackMutation) {
		m.oldValue = func(context.Context) (*Feedback, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FeedbackMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FeedbackMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Feedback entities.
func (m *FeedbackMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FeedbackMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FeedbackMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Feedback.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *FeedbackMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *FeedbackMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *FeedbackMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTaskID sets the "task_id" field.
func (m *FeedbackMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *FeedbackMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *FeedbackMutation) ResetTaskID() {
	m.task_id = nil
}

// SetUserID sets the "user_id" field.
func (m *FeedbackMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *FeedbackMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *FeedbackMutation) ResetUserID() {
	m.user_id = nil
}

// SetRating sets the "rating" field.
func (m *FeedbackMutation) SetRating(f feedback.Rating) {
	m.rating = &f
}

// Rating returns the value of the "rating" field in the mutation.
func (m *FeedbackMutation) Rating() (r feedback.Rating, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldRating(ctx context.Context) (v feedback.Rating, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// ResetRating resets all changes to the "rating" field.
func (m *FeedbackMutation) ResetRating() {
	m.rating = nil
}

// SetComment sets the "comment" field.
func (m *FeedbackMutation) SetComment(s string) {
	m.comment = &s
}

// Comment returns the value of the "comment" field in the mutation.
func (m *FeedbackMutation) Comment() (r string, exists bool) {
	v := m.comment
	if v == nil {
		return
	}
	return *v, true
}

// OldComment returns the old "comment" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldComment(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComment: %w", err)
	}
	return oldValue.Comment, nil
}

// ClearComment clears the value of the "comment" field.
func (m *FeedbackMutation) ClearComment() {
	m.comment = nil
	m.clearedFields[feedback.FieldComment] = struct{}{}
}

// CommentCleared returns if the "comment" field was cleared in this mutation.
func (m *FeedbackMutation) CommentCleared() bool {
	_, ok := m.clearedFields[feedback.FieldComment]
	return ok
}

// ResetComment resets all changes to the "comment" field.
func (m *FeedbackMutation) ResetComment() {
	m.comment = nil
	delete(m.clearedFields, feedback.FieldComment)
}

// SetCreatedTime sets the "created_time" field.
func (m *FeedbackMutation) SetCreatedTime(i int64) {
	m.created_time = &i
	m.addcreated_time = nil
}

// CreatedTime returns the value of the "created_time" field in the mutation.
func (m *FeedbackMutation) CreatedTime() (r int64, exists bool) {
	v := m.created_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedTime returns the old "created_time" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldCreatedTime(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedTime: %w", err)
	}
	return oldValue.CreatedTime, nil
}

// AddCreatedTime adds i to the "created_time" field.
func (m *FeedbackMutation) AddCreatedTime(i int64) {
	if m.addcreated_time != nil {
		*m.addcreated_time += i
	} else {
		m.addcreated_time = &i
	}
}

// AddedCreatedTime returns the value that was added to the "created_time" field in this mutation.
func (m *FeedbackMutation) AddedCreatedTime() (r int64, exists bool) {
	v := m.addcreated_time
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedTime resets all changes to the "created_time" field.
func (m *FeedbackMutation) ResetCreatedTime() {
	m.created_time = nil
	m.addcreated_time = nil
}

// Where appends a list predicates to the FeedbackMutation builder.
func (m *FeedbackMutation) Where(ps ...predicate.Feedback) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FeedbackMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FeedbackMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Feedback, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FeedbackMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FeedbackMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Feedback).
func (m *FeedbackMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FeedbackMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.session_id != nil {
		fields = append(fields, feedback.FieldSessionID)
	}
	if m.task_id != nil {
		fields = append(fields, feedback.FieldTaskID)
	}
	if m.user_id != nil {
		fields = append(fields, feedback.FieldUserID)
	}
	if m.rating != nil {
		fields = append(fields, feedback.FieldRating)
	}
	if m.comment != nil {
		fields = append(fields, feedback.FieldComment)
	}
	if m.created_time != nil {
		fields = append(fields, feedback.FieldCreatedTime)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FeedbackMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case feedback.FieldSessionID:
		return m.SessionID()
	case feedback.FieldTaskID:
		return m.TaskID()
	case feedback.FieldUserID:
		return m.UserID()
	case feedback.FieldRating:
		return m.Rating()
	case feedback.FieldComment:
		return m.Comment()
	case feedback.FieldCreatedTime:
		return m.CreatedTime()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FeedbackMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case feedback.FieldSessionID:
		return m.OldSessionID(ctx)
	case feedback.FieldTaskID:
		return m.OldTaskID(ctx)
	case feedback.FieldUserID:
		return m.OldUserID(ctx)
	case feedback.FieldRating:
		return m.OldRating(ctx)
	case feedback.FieldComment:
		return m.OldComment(ctx)
	case feedback.FieldCreatedTime:
		return m.OldCreatedTime(ctx)
	}
	return nil, fmt.Errorf("unknown Feedback field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackMutation) SetField(name string, value ent.Value) error {
	switch name {
	case feedback.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case feedback.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case feedback.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case feedback.FieldRating:
		v, ok := value.(feedback.Rating)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case feedback.FieldComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComment(v)
		return nil
	case feedback.FieldCreatedTime:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedTime(v)
		return nil
	}
	return fmt.Errorf("unknown Feedback field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FeedbackMutation) AddedFields() []string {
	var fields []string
	if m.addcreated_time != nil {
		fields = append(fields, feedback.FieldCreatedTime)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FeedbackMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case feedback.FieldCreatedTime:
		return m.AddedCreatedTime()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackMutation) AddField(name string, value ent.Value) error {
	switch name {
	case feedback.FieldCreatedTime:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedTime(v)
		return nil
	}
	return fmt.Errorf("unknown Feedback numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FeedbackMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(feedback.FieldComment) {
		fields = append(fields, feedback.FieldComment)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FeedbackMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FeedbackMutation) ClearField(name string) error {
	switch name {
	case feedback.FieldComment:
		m.ClearComment()
		return nil
	}
	return fmt.Errorf("unknown Feedback nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FeedbackMutation) ResetField(name string) error {
	switch name {
	case feedback.FieldSessionID:
		m.ResetSessionID()
		return nil
	case feedback.FieldTaskID:
		m.ResetTaskID()
		return nil
	case feedback.FieldUserID:
		m.ResetUserID()
		return nil
	case feedback.FieldRating:
		m.ResetRating()
		return nil
	case feedback.FieldComment:
		m.ResetComment()
		return nil
	case feedback.FieldCreatedTime:
		m.ResetCreatedTime()
		return nil
	}
	return fmt.Errorf("unknown Feedback field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FeedbackMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FeedbackMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FeedbackMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FeedbackMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FeedbackMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FeedbackMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FeedbackMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Feedback unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FeedbackMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Feedback edge %s", name)
}

// MonthlyUsageMutation represents an operation that mutates the MonthlyUsage nodes in the graph.
type MonthlyUsageMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	user_id             *string
	month               *string
	total_usage         *int64
	addtotal_usage      *int64
	prompt_usage        *int64
	addprompt_usage     *int64
	completion_usage    *int64
	addcompletion_usage *int64
	cached_usage        *int64
	addcached_usage     *int64
	usage_by_model      *map[string]int64
	usage_by_source     *map[string]int64
	created_at          *int64
	addcreated_at       *int64
	updated_at          *int64
	addupdated_at       *int64
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*MonthlyUsage, error)
	predicates          []predicate.MonthlyUsage
}

var _ ent.Mutation = (*MonthlyUsageMutation)(nil)

// monthlyusageOption allows management of the mutation configuration using functional options.
type monthlyusageOption func(*MonthlyUsageMutation)

// newMonthlyUsageMutation creates new mutation for the MonthlyUsage entity.
func newMonthlyUsageMutation(c config, op Op, opts ...monthlyusageOption) *MonthlyUsageMutation {
	m := &MonthlyUsageMutation{
		config:        c,
		op:            op,
		typ:           TypeMonthlyUsage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMonthlyUsageID sets the ID field of the mutation.
func withMonthlyUsageID(id int) monthlyusageOption {
	return func(m *MonthlyUsageMutation) {
		var (
			err   error
			once  sync.Once
			value *MonthlyUsage
		)
		m.oldValue = func(ctx context.Context) (*MonthlyUsage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MonthlyUsage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMonthlyUsage sets the old MonthlyUsage of the mutation.
func withMonthlyUsage(node *MonthlyUsage) monthlyusageOption {
	return func(m *MonthlyUsageMutation) {
		m.oldValue = func(context.Context) (*MonthlyUsage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MonthlyUsageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MonthlyUsageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MonthlyUsage entities.
func (m *MonthlyUsageMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MonthlyUsageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MonthlyUsageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MonthlyUsage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *MonthlyUsageMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MonthlyUsageMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the MonthlyUsage entity.
// If the MonthlyUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonthlyUsageMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MonthlyUsageMutation) ResetUserID() {
	m.user_id = nil
}

// SetMonth sets the "month" field.
func (m *MonthlyUsageMutation) SetMonth(s string) {
	m.month = &s
}

// Month returns the value of the "month" field in the mutation.
func (m *MonthlyUsageMutation) Month() (r string, exists bool) {
	v := m.month
	if v == nil {
		return
	}
	return *v, true
}

// OldMonth returns the old "month" field's value of the MonthlyUsage entity.
// If the MonthlyUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonthlyUsageMutation) OldMonth(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonth: %w", err)
	}
	return oldValue.Month, nil
}

// ResetMonth resets all changes to the "month" field.
func (m *MonthlyUsageMutation) ResetMonth() {
	m.month = nil
}

// SetTotalUsage sets the "total_usage" field.
func (m *MonthlyUsageMutation) SetTotalUsage(i int64) {
	m.total_usage = &i
	m.addtotal_usage = nil
}

// TotalUsage returns the value of the "total_usage" field in the mutation.
func (m *MonthlyUsageMutation) TotalUsage() (r int64, exists bool) {
	v := m.total_usage
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalUsage returns the old "total_usage" field's value of the MonthlyUsage entity.
// If the MonthlyUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonthlyUsageMutation) OldTotalUsage(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalUsage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalUsage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalUsage: %w", err)
	}
	return oldValue.TotalUsage, nil
}

// AddTotalUsage adds i to the "total_usage" field.
func (m *MonthlyUsageMutation) AddTotalUsage(i int64) {
	if m.addtotal_usage != nil {
		*m.addtotal_usage += i
	} else {
		m.addtotal_usage = &i
	}
}

// AddedTotalUsage returns the value that was added to the "total_usage" field in this mutation.
func (m *MonthlyUsageMutation) AddedTotalUsage() (r int64, exists bool) {
	v := m.addtotal_usage
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalUsage resets all changes to the "total_usage" field.
func (m *MonthlyUsageMutation) ResetTotalUsage() {
	m.total_usage = nil
	m.addtotal_usage = nil
}

// SetPromptUsage sets the "prompt_usage" field.
func (m *MonthlyUsageMutation) SetPromptUsage(i int64) {
	m.prompt_usage = &i
	m.addprompt_usage = nil
}

// PromptUsage returns the value of the "prompt_usage" field in the mutation.
func (m *MonthlyUsageMutation) PromptUsage() (r int64, exists bool) {
	v := m.prompt_usage
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptUsage returns the old "prompt_usage" field's value of the MonthlyUsage entity.
// If the MonthlyUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonthlyUsageMutation) OldPromptUsage(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptUsage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptUsage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptUsage: %w", err)
	}
	return oldValue.PromptUsage, nil
}

// AddPromptUsage adds i to the "prompt_usage" field.
func (m *MonthlyUsageMutation) AddPromptUsage(i int64) {
	if m.addprompt_usage != nil {
		*m.addprompt_usage += i
	} else {
		m.addprompt_usage = &i
	}
}

// AddedPromptUsage returns the value that was added to the "prompt_usage" field in this mutation.
func (m *MonthlyUsageMutation) AddedPromptUsage() (r int64, exists bool) {
	v := m.addprompt_usage
	if v == nil {
		return
	}
	return *v, true
}

// ResetPromptUsage resets all changes to the "prompt_usage" field.
func (m *MonthlyUsageMutation) ResetPromptUsage() {
	m.prompt_usage = nil
	m.addprompt_usage = nil
}

// SetCompletionUsage sets the "completion_usage" field.
func (m *MonthlyUsageMutation) SetCompletionUsage(i int64) {
	m.completion_usage = &i
	m.addcompletion_usage = nil
}

// CompletionUsage returns the value of the "completion_usage" field in the mutation.
func (m *MonthlyUsageMutation) CompletionUsage() (r int64, exists bool) {
	v := m.completion_usage
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionUsage returns the old "completion_usage" field's value of the MonthlyUsage entity.
// If the MonthlyUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonthlyUsageMutation) OldCompletionUsage(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionUsage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionUsage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionUsage: %w", err)
	}
	return oldValue.CompletionUsage, nil
}

// AddCompletionUsage adds i to the "completion_usage" field.
func (m *MonthlyUsageMutation) AddCompletionUsage(i int64) {
	if m.addcompletion_usage != nil {
		*m.addcompletion_usage += i
	} else {
		m.addcompletion_usage = &i
	}
}

// AddedCompletionUsage returns the value that was added to the "completion_usage" field in this mutation.
func (m *MonthlyUsageMutation) AddedCompletionUsage() (r int64, exists bool) {
	v := m.addcompletion_usage
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionUsage resets all changes to the "completion_usage" field.
func (m *MonthlyUsageMutation) ResetCompletionUsage() {
	m.completion_usage = nil
	m.addcompletion_usage = nil
}

// SetCachedUsage sets the "cached_usage" field.
func (m *MonthlyUsageMutation) SetCachedUsage(i int64) {
	m.cached_usage = &i
	m.addcached_usage = nil
}

// CachedUsage returns the value of the "cached_usage" field in the mutation.
func (m *MonthlyUsageMutation) CachedUsage() (r int64, exists bool) {
	v := m.cached_usage
	if v == nil {
		return
	}
	return *v, true
}

// OldCachedUsage returns the old "cached_usage" field's value of the MonthlyUsage entity.
// If the MonthlyUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonthlyUsageMutation) OldCachedUsage(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCachedUsage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCachedUsage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCachedUsage: %w", err)
	}
	return oldValue.CachedUsage, nil
}

// AddCachedUsage adds i to the "cached_usage" field.
func (m *MonthlyUsageMutation) AddCachedUsage(i int64) {
	if m.addcached_usage != nil {
		*m.addcached_usage += i
	} else {
		m.addcached_usage = &i
	}
}

// AddedCachedUsage returns the value that was added to the "cached_usage" field in this mutation.
func (m *MonthlyUsageMutation) AddedCachedUsage() (r int64, exists bool) {
	v := m.addcached_usage
	if v == nil {
		return
	}
	return *v, true
}

// ResetCachedUsage resets all changes to the "cached_usage" field.
func (m *MonthlyUsageMutation) ResetCachedUsage() {
	m.cached_usage = nil
	m.addcached_usage = nil
}

// SetUsageByModel sets the "usage_by_model" field.
func (m *MonthlyUsageMutation) SetUsageByModel(value map[string]int64) {
	m.usage_by_model = &value
}

// UsageByModel returns the value of the "usage_by_model" field in the mutation.
func (m *MonthlyUsageMutation) UsageByModel() (r map[string]int64, exists bool) {
	v := m.usage_by_model
	if v == nil {
		return
	}
	return *v, true
}

// OldUsageByModel returns the old "usage_by_model" field's value of the MonthlyUsage entity.
// If the MonthlyUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonthlyUsageMutation) OldUsageByModel(ctx context.Context) (v map[string]int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsageByModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsageByModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsageByModel: %w", err)
	}
	return oldValue.UsageByModel, nil
}

// ClearUsageByModel clears the value of the "usage_by_model" field.
func (m *MonthlyUsageMutation) ClearUsageByModel() {
	m.usage_by_model = nil
	m.clearedFields[monthlyusage.FieldUsageByModel] = struct{}{}
}

// UsageByModelCleared returns if the "usage_by_model" field was cleared in this mutation.
func (m *MonthlyUsageMutation) UsageByModelCleared() bool {
	_, ok := m.clearedFields[monthlyusage.FieldUsageByModel]
	return ok
}

// ResetUsageByModel resets all changes to the "usage_by_model" field.
func (m *MonthlyUsageMutation) ResetUsageByModel() {
	m.usage_by_model = nil
	delete(m.clearedFields, monthlyusage.FieldUsageByModel)
}

// SetUsageBySource sets the "usage_by_source" field.
func (m *MonthlyUsageMutation) SetUsageBySource(value map[string]int64) {
	m.usage_by_source = &value
}

// UsageBySource returns the value of the "usage_by_source" field in the mutation.
func (m *MonthlyUsageMutation) UsageBySource() (r map[string]int64, exists bool) {
	v := m.usage_by_source
	if v == nil {
		return
	}
	return *v, true
}

// OldUsageBySource returns the old "usage_by_source" field's value of the MonthlyUsage entity.
// If the MonthlyUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonthlyUsageMutation) OldUsageBySource(ctx context.Context) (v map[string]int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsageBySource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsageBySource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsageBySource: %w", err)
	}
	return oldValue.UsageBySource, nil
}

// ClearUsageBySource clears the value of the "usage_by_source" field.
func (m *MonthlyUsageMutation) ClearUsageBySource() {
	m.usage_by_source = nil
	m.clearedFields[monthlyusage.FieldUsageBySource] = struct{}{}
}

// UsageBySourceCleared returns if the "usage_by_source" field was cleared in this mutation.
func (m *MonthlyUsageMutation) UsageBySourceCleared() bool {
	_, ok := m.clearedFields[monthlyusage.FieldUsageBySource]
	return ok
}

// ResetUsageBySource resets all changes to the "usage_by_source" field.
func (m *MonthlyUsageMutation) ResetUsageBySource() {
	m.usage_by_source = nil
	delete(m.clearedFields, monthlyusage.FieldUsageBySource)
}

// SetCreatedAt sets the "created_at" field.
func (m *MonthlyUsageMutation) SetCreatedAt(i int64) {
	m.created_at = &i
	m.addcreated_at = nil
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MonthlyUsageMutation) CreatedAt() (r int64, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MonthlyUsage entity.
// If the MonthlyUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonthlyUsageMutation) OldCreatedAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// AddCreatedAt adds i to the "created_at" field.
func (m *MonthlyUsageMutation) AddCreatedAt(i int64) {
	if m.addcreated_at != nil {
		*m.addcreated_at += i
	} else {
		m.addcreated_at = &i
	}
}

// AddedCreatedAt returns the value that was added to the "created_at" field in this mutation.
func (m *MonthlyUsageMutation) AddedCreatedAt() (r int64, exists bool) {
	v := m.addcreated_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MonthlyUsageMutation) ResetCreatedAt() {
	m.created_at = nil
	m.addcreated_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MonthlyUsageMutation) SetUpdatedAt(i int64) {
	m.updated_at = &i
	m.addupdated_at = nil
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MonthlyUsageMutation) UpdatedAt() (r int64, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MonthlyUsage entity.
// If the MonthlyUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonthlyUsageMutation) OldUpdatedAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// AddUpdatedAt adds i to the "updated_at" field.
func (m *MonthlyUsageMutation) AddUpdatedAt(i int64) {
	if m.addupdated_at != nil {
		*m.addupdated_at += i
	} else {
		m.addupdated_at = &i
	}
}

// AddedUpdatedAt returns the value that was added to the "updated_at" field in this mutation.
func (m *MonthlyUsageMutation) AddedUpdatedAt() (r int64, exists bool) {
	v := m.addupdated_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MonthlyUsageMutation) ResetUpdatedAt() {
	m.updated_at = nil
	m.addupdated_at = nil
}

// Where appends a list predicates to the MonthlyUsageMutation builder.
func (m *MonthlyUsageMutation) Where(ps ...predicate.MonthlyUsage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MonthlyUsageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MonthlyUsageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MonthlyUsage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MonthlyUsageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MonthlyUsageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MonthlyUsage).
func (m *MonthlyUsageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MonthlyUsageMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user_id != nil {
		fields = append(fields, monthlyusage.FieldUserID)
	}
	if m.month != nil {
		fields = append(fields, monthlyusage.FieldMonth)
	}
	if m.total_usage != nil {
		fields = append(fields, monthlyusage.FieldTotalUsage)
	}
	if m.prompt_usage != nil {
		fields = append(fields, monthlyusage.FieldPromptUsage)
	}
	if m.completion_usage != nil {
		fields = append(fields, monthlyusage.FieldCompletionUsage)
	}
	if m.cached_usage != nil {
		fields = append(fields, monthlyusage.FieldCachedUsage)
	}
	if m.usage_by_model != nil {
		fields = append(fields, monthlyusage.FieldUsageByModel)
	}
	if m.usage_by_source != nil {
		fields = append(fields, monthlyusage.FieldUsageBySource)
	}
	if m.created_at != nil {
		fields = append(fields, monthlyusage.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, monthlyusage.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MonthlyUsageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case monthlyusage.FieldUserID:
		return m.UserID()
	case monthlyusage.FieldMonth:
		return m.Month()
	case monthlyusage.FieldTotalUsage:
		return m.TotalUsage()
	case monthlyusage.FieldPromptUsage:
		return m.PromptUsage()
	case monthlyusage.FieldCompletionUsage:
		return m.CompletionUsage()
	case monthlyusage.FieldCachedUsage:
		return m.CachedUsage()
	case monthlyusage.FieldUsageByModel:
		return m.UsageByModel()
	case monthlyusage.FieldUsageBySource:
		return m.UsageBySource()
	case monthlyusage.FieldCreatedAt:
		return m.CreatedAt()
	case monthlyusage.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MonthlyUsageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case monthlyusage.FieldUserID:
		return m.OldUserID(ctx)
	case monthlyusage.FieldMonth:
		return m.OldMonth(ctx)
	case monthlyusage.FieldTotalUsage:
		return m.OldTotalUsage(ctx)
	case monthlyusage.FieldPromptUsage:
		return m.OldPromptUsage(ctx)
	case monthlyusage.FieldCompletionUsage:
		return m.OldCompletionUsage(ctx)
	case monthlyusage.FieldCachedUsage:
		return m.OldCachedUsage(ctx)
	case monthlyusage.FieldUsageByModel:
		return m.OldUsageByModel(ctx)
	case monthlyusage.FieldUsageBySource:
		return m.OldUsageBySource(ctx)
	case monthlyusage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case monthlyusage.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MonthlyUsage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MonthlyUsageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case monthlyusage.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case monthlyusage.FieldMonth:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonth(v)
		return nil
	case monthlyusage.FieldTotalUsage:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalUsage(v)
		return nil
	case monthlyusage.FieldPromptUsage:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptUsage(v)
		return nil
	case monthlyusage.FieldCompletionUsage:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionUsage(v)
		return nil
	case monthlyusage.FieldCachedUsage:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCachedUsage(v)
		return nil
	case monthlyusage.FieldUsageByModel:
		v, ok := value.(map[string]int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsageByModel(v)
		return nil
	case monthlyusage.FieldUsageBySource:
		v, ok := value.(map[string]int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsageBySource(v)
		return nil
	case monthlyusage.FieldCreatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case monthlyusage.FieldUpdatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MonthlyUsage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MonthlyUsageMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_usage != nil {
		fields = append(fields, monthlyusage.FieldTotalUsage)
	}
	if m.addprompt_usage != nil {
		fields = append(fields, monthlyusage.FieldPromptUsage)
	}
	if m.addcompletion_usage != nil {
		fields = append(fields, monthlyusage.FieldCompletionUsage)
	}
	if m.addcached_usage != nil {
		fields = append(fields, monthlyusage.FieldCachedUsage)
	}
	if m.addcreated_at != nil {
		fields = append(fields, monthlyusage.FieldCreatedAt)
	}
	if m.addupdated_at != nil {
		fields = append(fields, monthlyusage.FieldUpdatedAt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MonthlyUsageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case monthlyusage.FieldTotalUsage:
		return m.AddedTotalUsage()
	case monthlyusage.FieldPromptUsage:
		return m.AddedPromptUsage()
	case monthlyusage.FieldCompletionUsage:
		return m.AddedCompletionUsage()
	case monthlyusage.FieldCachedUsage:
		return m.AddedCachedUsage()
	case monthlyusage.FieldCreatedAt:
		return m.AddedCreatedAt()
	case monthlyusage.FieldUpdatedAt:
		return m.AddedUpdatedAt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MonthlyUsageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case monthlyusage.FieldTotalUsage:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalUsage(v)
		return nil
	case monthlyusage.FieldPromptUsage:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptUsage(v)
		return nil
	case monthlyusage.FieldCompletionUsage:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionUsage(v)
		return nil
	case monthlyusage.FieldCachedUsage:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCachedUsage(v)
		return nil
	case monthlyusage.FieldCreatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedAt(v)
		return nil
	case monthlyusage.FieldUpdatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MonthlyUsage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MonthlyUsageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(monthlyusage.FieldUsageByModel) {
		fields = append(fields, monthlyusage.FieldUsageByModel)
	}
	if m.FieldCleared(monthlyusage.FieldUsageBySource) {
		fields = append(fields, monthlyusage.FieldUsageBySource)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MonthlyUsageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MonthlyUsageMutation) ClearField(name string) error {
	switch name {
	case monthlyusage.FieldUsageByModel:
		m.ClearUsageByModel()
		return nil
	case monthlyusage.FieldUsageBySource:
		m.ClearUsageBySource()
		return nil
	}
	return fmt.Errorf("unknown MonthlyUsage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MonthlyUsageMutation) ResetField(name string) error {
	switch name {
	case monthlyusage.FieldUserID:
		m.ResetUserID()
		return nil
	case monthlyusage.FieldMonth:
		m.ResetMonth()
		return nil
	case monthlyusage.FieldTotalUsage:
		m.ResetTotalUsage()
		return nil
	case monthlyusage.FieldPromptUsage:
		m.ResetPromptUsage()
		return nil
	case monthlyusage.FieldCompletionUsage:
		m.ResetCompletionUsage()
		return nil
	case monthlyusage.FieldCachedUsage:
		m.ResetCachedUsage()
		return nil
	case monthlyusage.FieldUsageByModel:
		m.ResetUsageByModel()
		return nil
	case monthlyusage.FieldUsageBySource:
		m.ResetUsageBySource()
		return nil
	case monthlyusage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case monthlyusage.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MonthlyUsage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MonthlyUsageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MonthlyUsageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MonthlyUsageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MonthlyUsageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MonthlyUsageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MonthlyUsageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MonthlyUsageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MonthlyUsage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MonthlyUsageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MonthlyUsage edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op               Op
	typ              string
	id               *string
	name             *string
	user_id          *string
	description      *string
	system_prompt    *string
	default_agent_id *string
	created_at       *int64
	addcreated_at    *int64
	updated_at       *int64
	addupdated_at    *int64
	deleted_at       *int64
	adddeleted_at    *int64
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Project, error)
	predicates       []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetUserID sets the "user_id" field.
func (m *ProjectMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ProjectMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ProjectMutation) ResetUserID() {
	m.user_id = nil
}

// SetDescription sets the "description" field.
func (m *ProjectMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProjectMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ProjectMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[project.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ProjectMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[project.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ProjectMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, project.FieldDescription)
}

// SetSystemPrompt sets the "system_prompt" field.
func (m *ProjectMutation) SetSystemPrompt(s string) {
	m.system_prompt = &s
}

// SystemPrompt returns the value of the "system_prompt" field in the mutation.
func (m *ProjectMutation) SystemPrompt() (r string, exists bool) {
	v := m.system_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemPrompt returns the old "system_prompt" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldSystemPrompt(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemPrompt: %w", err)
	}
	return oldValue.SystemPrompt, nil
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (m *ProjectMutation) ClearSystemPrompt() {
	m.system_prompt = nil
	m.clearedFields[project.FieldSystemPrompt] = struct{}{}
}

// SystemPromptCleared returns if the "system_prompt" field was cleared in this mutation.
func (m *ProjectMutation) SystemPromptCleared() bool {
	_, ok := m.clearedFields[project.FieldSystemPrompt]
	return ok
}

// ResetSystemPrompt resets all changes to the "system_prompt" field.
func (m *ProjectMutation) ResetSystemPrompt() {
	m.system_prompt = nil
	delete(m.clearedFields, project.FieldSystemPrompt)
}

// SetDefaultAgentID sets the "default_agent_id" field.
func (m *ProjectMutation) SetDefaultAgentID(s string) {
	m.default_agent_id = &s
}

// DefaultAgentID returns the value of the "default_agent_id" field in the mutation.
func (m *ProjectMutation) DefaultAgentID() (r string, exists bool) {
	v := m.default_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultAgentID returns the old "default_agent_id" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDefaultAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultAgentID: %w", err)
	}
	return oldValue.DefaultAgentID, nil
}

// ClearDefaultAgentID clears the value of the "default_agent_id" field.
func (m *ProjectMutation) ClearDefaultAgentID() {
	m.default_agent_id = nil
	m.clearedFields[project.FieldDefaultAgentID] = struct{}{}
}

// DefaultAgentIDCleared returns if the "default_agent_id" field was cleared in this mutation.
func (m *ProjectMutation) DefaultAgentIDCleared() bool {
	_, ok := m.clearedFields[project.FieldDefaultAgentID]
	return ok
}

// ResetDefaultAgentID resets all changes to the "default_agent_id" field.
func (m *ProjectMutation) ResetDefaultAgentID() {
	m.default_agent_id = nil
	delete(m.clearedFields, project.FieldDefaultAgentID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(i int64) {
	m.created_at = &i
	m.addcreated_at = nil
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r int64, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// AddCreatedAt adds i to the "created_at" field.
func (m *ProjectMutation) AddCreatedAt(i int64) {
	if m.addcreated_at != nil {
		*m.addcreated_at += i
	} else {
		m.addcreated_at = &i
	}
}

// AddedCreatedAt returns the value that was added to the "created_at" field in this mutation.
func (m *ProjectMutation) AddedCreatedAt() (r int64, exists bool) {
	v := m.addcreated_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
	m.addcreated_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(i int64) {
	m.updated_at = &i
	m.addupdated_at = nil
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r int64, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// AddUpdatedAt adds i to the "updated_at" field.
func (m *ProjectMutation) AddUpdatedAt(i int64) {
	if m.addupdated_at != nil {
		*m.addupdated_at += i
	} else {
		m.addupdated_at = &i
	}
}

// AddedUpdatedAt returns the value that was added to the "updated_at" field in this mutation.
func (m *ProjectMutation) AddedUpdatedAt() (r int64, exists bool) {
	v := m.addupdated_at
	if v == nil {
		return
	}
	return *v, true
}

// ClearUpdatedAt clears the value of the "updated_at" field.
func (m *ProjectMutation) ClearUpdatedAt() {
	m.updated_at = nil
	m.addupdated_at = nil
	m.clearedFields[project.FieldUpdatedAt] = struct{}{}
}

// UpdatedAtCleared returns if the "updated_at" field was cleared in this mutation.
func (m *ProjectMutation) UpdatedAtCleared() bool {
	_, ok := m.clearedFields[project.FieldUpdatedAt]
	return ok
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
	m.addupdated_at = nil
	delete(m.clearedFields, project.FieldUpdatedAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ProjectMutation) SetDeletedAt(i int64) {
	m.deleted_at = &i
	m.adddeleted_at = nil
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ProjectMutation) DeletedAt() (r int64, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDeletedAt(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// AddDeletedAt adds i to the "deleted_at" field.
func (m *ProjectMutation) AddDeletedAt(i int64) {
	if m.adddeleted_at != nil {
		*m.adddeleted_at += i
	} else {
		m.adddeleted_at = &i
	}
}

// AddedDeletedAt returns the value that was added to the "deleted_at" field in this mutation.
func (m *ProjectMutation) AddedDeletedAt() (r int64, exists bool) {
	v := m.adddeleted_at
	if v == nil {
		return
	}
	return *v, true
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ProjectMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.adddeleted_at = nil
	m.clearedFields[project.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ProjectMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[project.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ProjectMutation) ResetDeletedAt() {
	m.deleted_at = nil
	m.adddeleted_at = nil
	delete(m.clearedFields, project.FieldDeletedAt)
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.user_id != nil {
		fields = append(fields, project.FieldUserID)
	}
	if m.description != nil {
		fields = append(fields, project.FieldDescription)
	}
	if m.system_prompt != nil {
		fields = append(fields, project.FieldSystemPrompt)
	}
	if m.default_agent_id != nil {
		fields = append(fields, project.FieldDefaultAgentID)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, project.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldUserID:
		return m.UserID()
	case project.FieldDescription:
		return m.Description()
	case project.FieldSystemPrompt:
		return m.SystemPrompt()
	case project.FieldDefaultAgentID:
		return m.DefaultAgentID()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	case project.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldUserID:
		return m.OldUserID(ctx)
	case project.FieldDescription:
		return m.OldDescription(ctx)
	case project.FieldSystemPrompt:
		return m.OldSystemPrompt(ctx)
	case project.FieldDefaultAgentID:
		return m.OldDefaultAgentID(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case project.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case project.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case project.FieldSystemPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemPrompt(v)
		return nil
	case project.FieldDefaultAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultAgentID(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case project.FieldDeletedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	var fields []string
	if m.addcreated_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.addupdated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	if m.adddeleted_at != nil {
		fields = append(fields, project.FieldDeletedAt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case project.FieldCreatedAt:
		return m.AddedCreatedAt()
	case project.FieldUpdatedAt:
		return m.AddedUpdatedAt()
	case project.FieldDeletedAt:
		return m.AddedDeletedAt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	case project.FieldCreatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpdatedAt(v)
		return nil
	case project.FieldDeletedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldDescription) {
		fields = append(fields, project.FieldDescription)
	}
	if m.FieldCleared(project.FieldSystemPrompt) {
		fields = append(fields, project.FieldSystemPrompt)
	}
	if m.FieldCleared(project.FieldDefaultAgentID) {
		fields = append(fields, project.FieldDefaultAgentID)
	}
	if m.FieldCleared(project.FieldUpdatedAt) {
		fields = append(fields, project.FieldUpdatedAt)
	}
	if m.FieldCleared(project.FieldDeletedAt) {
		fields = append(fields, project.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldDescription:
		m.ClearDescription()
		return nil
	case project.FieldSystemPrompt:
		m.ClearSystemPrompt()
		return nil
	case project.FieldDefaultAgentID:
		m.ClearDefaultAgentID()
		return nil
	case project.FieldUpdatedAt:
		m.ClearUpdatedAt()
		return nil
	case project.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldUserID:
		m.ResetUserID()
		return nil
	case project.FieldDescription:
		m.ResetDescription()
		return nil
	case project.FieldSystemPrompt:
		m.ResetSystemPrompt()
		return nil
	case project.FieldDefaultAgentID:
		m.ResetDefaultAgentID()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case project.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Project edge %s", name)
}

// SSEEventMutation represents an operation that mutates the SSEEvent nodes in the graph.
type SSEEventMutation struct {
	config
	op                Op
	typ               string
	id                *int
	task_id           *string
	user_id           *string
	event_sequence    *int64
	addevent_sequence *int64
	event_type        *string
	event_data        *string
	created_at        *int64
	addcreated_at     *int64
	consumed          *bool
	consumed_at       *int64
	addconsumed_at    *int64
	clearedFields     map[string]struct{}
	session           *string
	clearedsession    bool
	done              bool
	oldValue          func(context.Context) (*SSEEvent, error)
	predicates        []predicate.SSEEvent
}

var _ ent.Mutation = (*SSEEventMutation)(nil)

// sseeventOption allows management of the mutation configuration using functional options.
type sseeventOption func(*SSEEventMutation)

// newSSEEventMutation creates new mutation for the SSEEvent entity.
func newSSEEventMutation(c config, op Op, opts ...sseeventOption) *SSEEventMutation {
	m := &SSEEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSSEEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSSEEventID sets the ID field of the mutation.
func withSSEEventID(id int) sseeventOption {
	return func(m *SSEEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SSEEvent
		)
		m.oldValue = func(ctx context.Context) (*SSEEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SSEEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSSEEvent sets the old SSEEvent of the mutation.
func withSSEEvent(node *SSEEvent) sseeventOption {
	return func(m *SSEEventMutation) {
		m.oldValue = func(context.Context) (*SSEEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SSEEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SSEEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SSEEvent entities.
func (m *SSEEventMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SSEEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SSEEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SSEEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *SSEEventMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *SSEEventMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the SSEEvent entity.
// If the SSEEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SSEEventMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *SSEEventMutation) ResetTaskID() {
	m.task_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *SSEEventMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SSEEventMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SSEEvent entity.
// If the SSEEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SSEEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SSEEventMutation) ResetSessionID() {
	m.session = nil
}

// SetUserID sets the "user_id" field.
func (m *SSEEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SSEEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SSEEvent entity.
// If the SSEEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SSEEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SSEEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetEventSequence sets the "event_sequence" field.
func (m *SSEEventMutation) SetEventSequence(i int64) {
	m.event_sequence = &i
	m.addevent_sequence = nil
}

// EventSequence returns the value of the "event_sequence" field in the mutation.
func (m *SSEEventMutation) EventSequence() (r int64, exists bool) {
	v := m.event_sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldEventSequence returns the old "event_sequence" field's value of the SSEEvent entity.
// If the SSEEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SSEEventMutation) OldEventSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventSequence: %w", err)
	}
	return oldValue.EventSequence, nil
}

// AddEventSequence adds i to the "event_sequence" field.
func (m *SSEEventMutation) AddEventSequence(i int64) {
	if m.addevent_sequence != nil {
		*m.addevent_sequence += i
	} else {
		m.addevent_sequence = &i
	}
}

// AddedEventSequence returns the value that was added to the "event_sequence" field in this mutation.
func (m *SSEEventMutation) AddedEventSequence() (r int64, exists bool) {
	v := m.addevent_sequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetEventSequence resets all changes to the "event_sequence" field.
func (m *SSEEventMutation) ResetEventSequence() {
	m.event_sequence = nil
	m.addevent_sequence = nil
}

// SetEventType sets the "event_type" field.
func (m *SSEEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *SSEEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the SSEEvent entity.
// If the SSEEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SSEEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *SSEEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetEventData sets the "event_data" field.
func (m *SSEEventMutation) SetEventData(s string) {
	m.event_data = &s
}

// EventData returns the value of the "event_data" field in the mutation.
func (m *SSEEventMutation) EventData() (r string, exists bool) {
	v := m.event_data
	if v == nil {
		return
	}
	return *v, true
}

// OldEventData returns the old "event_data" field's value of the SSEEvent entity.
// If the SSEEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SSEEventMutation) OldEventData(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventData: %w", err)
	}
	return oldValue.EventData, nil
}

// ResetEventData resets all changes to the "event_data" field.
func (m *SSEEventMutation) ResetEventData() {
	m.event_data = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SSEEventMutation) SetCreatedAt(i int64) {
	m.created_at = &i
	m.addcreated_at = nil
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SSEEventMutation) CreatedAt() (r int64, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SSEEvent entity.
// If the SSEEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SSEEventMutation) OldCreatedAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// AddCreatedAt adds i to the "created_at" field.
func (m *SSEEventMutation) AddCreatedAt(i int64) {
	if m.addcreated_at != nil {
		*m.addcreated_at += i
	} else {
		m.addcreated_at = &i
	}
}

// AddedCreatedAt returns the value that was added to the "created_at" field in this mutation.
func (m *SSEEventMutation) AddedCreatedAt() (r int64, exists bool) {
	v := m.addcreated_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SSEEventMutation) ResetCreatedAt() {
	m.created_at = nil
	m.addcreated_at = nil
}

// SetConsumed sets the "consumed" field.
func (m *SSEEventMutation) SetConsumed(b bool) {
	m.consumed = &b
}

// Consumed returns the value of the "consumed" field in the mutation.
func (m *SSEEventMutation) Consumed() (r bool, exists bool) {
	v := m.consumed
	if v == nil {
		return
	}
	return *v, true
}

// OldConsumed returns the old "consumed" field's value of the SSEEvent entity.
// If the SSEEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SSEEventMutation) OldConsumed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsumed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsumed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsumed: %w", err)
	}
	return oldValue.Consumed, nil
}

// ResetConsumed resets all changes to the "consumed" field.
func (m *SSEEventMutation) ResetConsumed() {
	m.consumed = nil
}

// SetConsumedAt sets the "consumed_at" field.
func (m *SSEEventMutation) SetConsumedAt(i int64) {
	m.consumed_at = &i
	m.addconsumed_at = nil
}

// ConsumedAt returns the value of the "consumed_at" field in the mutation.
func (m *SSEEventMutation) ConsumedAt() (r int64, exists bool) {
	v := m.consumed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldConsumedAt returns the old "consumed_at" field's value of the SSEEvent entity.
// If the SSEEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SSEEventMutation) OldConsumedAt(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsumedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsumedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsumedAt: %w", err)
	}
	return oldValue.ConsumedAt, nil
}

// AddConsumedAt adds i to the "consumed_at" field.
func (m *SSEEventMutation) AddConsumedAt(i int64) {
	if m.addconsumed_at != nil {
		*m.addconsumed_at += i
	} else {
		m.addconsumed_at = &i
	}
}

// AddedConsumedAt returns the value that was added to the "consumed_at" field in this mutation.
func (m *SSEEventMutation) AddedConsumedAt() (r int64, exists bool) {
	v := m.addconsumed_at
	if v == nil {
		return
	}
	return *v, true
}

// ClearConsumedAt clears the value of the "consumed_at" field.
func (m *SSEEventMutation) ClearConsumedAt() {
	m.consumed_at = nil
	m.addconsumed_at = nil
	m.clearedFields[sseevent.FieldConsumedAt] = struct{}{}
}

// ConsumedAtCleared returns if the "consumed_at" field was cleared in this mutation.
func (m *SSEEventMutation) ConsumedAtCleared() bool {
	_, ok := m.clearedFields[sseevent.FieldConsumedAt]
	return ok
}

// ResetConsumedAt resets all changes to the "consumed_at" field.
func (m *SSEEventMutation) ResetConsumedAt() {
	m.consumed_at = nil
	m.addconsumed_at = nil
	delete(m.clearedFields, sseevent.FieldConsumedAt)
}

// ClearSession clears the "session" edge to the Session entity.
func (m *SSEEventMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[sseevent.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *SSEEventMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *SSEEventMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *SSEEventMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the SSEEventMutation builder.
func (m *SSEEventMutation) Where(ps ...predicate.SSEEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SSEEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SSEEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SSEEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SSEEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SSEEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SSEEvent).
func (m *SSEEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SSEEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.task_id != nil {
		fields = append(fields, sseevent.FieldTaskID)
	}
	if m.session != nil {
		fields = append(fields, sseevent.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, sseevent.FieldUserID)
	}
	if m.event_sequence != nil {
		fields = append(fields, sseevent.FieldEventSequence)
	}
	if m.event_type != nil {
		fields = append(fields, sseevent.FieldEventType)
	}
	if m.event_data != nil {
		fields = append(fields, sseevent.FieldEventData)
	}
	if m.created_at != nil {
		fields = append(fields, sseevent.FieldCreatedAt)
	}
	if m.consumed != nil {
		fields = append(fields, sseevent.FieldConsumed)
	}
	if m.consumed_at != nil {
		fields = append(fields, sseevent.FieldConsumedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SSEEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sseevent.FieldTaskID:
		return m.TaskID()
	case sseevent.FieldSessionID:
		return m.SessionID()
	case sseevent.FieldUserID:
		return m.UserID()
	case sseevent.FieldEventSequence:
		return m.EventSequence()
	case sseevent.FieldEventType:
		return m.EventType()
	case sseevent.FieldEventData:
		return m.EventData()
	case sseevent.FieldCreatedAt:
		return m.CreatedAt()
	case sseevent.FieldConsumed:
		return m.Consumed()
	case sseevent.FieldConsumedAt:
		return m.ConsumedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SSEEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sseevent.FieldTaskID:
		return m.OldTaskID(ctx)
	case sseevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case sseevent.FieldUserID:
		return m.OldUserID(ctx)
	case sseevent.FieldEventSequence:
		return m.OldEventSequence(ctx)
	case sseevent.FieldEventType:
		return m.OldEventType(ctx)
	case sseevent.FieldEventData:
		return m.OldEventData(ctx)
	case sseevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sseevent.FieldConsumed:
		return m.OldConsumed(ctx)
	case sseevent.FieldConsumedAt:
		return m.OldConsumedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SSEEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SSEEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sseevent.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case sseevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sseevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case sseevent.FieldEventSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventSequence(v)
		return nil
	case sseevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case sseevent.FieldEventData:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventData(v)
		return nil
	case sseevent.FieldCreatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sseevent.FieldConsumed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsumed(v)
		return nil
	case sseevent.FieldConsumedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsumedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SSEEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SSEEventMutation) AddedFields() []string {
	var fields []string
	if m.addevent_sequence != nil {
		fields = append(fields, sseevent.FieldEventSequence)
	}
	if m.addcreated_at != nil {
		fields = append(fields, sseevent.FieldCreatedAt)
	}
	if m.addconsumed_at != nil {
		fields = append(fields, sseevent.FieldConsumedAt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SSEEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sseevent.FieldEventSequence:
		return m.AddedEventSequence()
	case sseevent.FieldCreatedAt:
		return m.AddedCreatedAt()
	case sseevent.FieldConsumedAt:
		return m.AddedConsumedAt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SSEEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sseevent.FieldEventSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEventSequence(v)
		return nil
	case sseevent.FieldCreatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedAt(v)
		return nil
	case sseevent.FieldConsumedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsumedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SSEEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SSEEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sseevent.FieldConsumedAt) {
		fields = append(fields, sseevent.FieldConsumedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SSEEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SSEEventMutation) ClearField(name string) error {
	switch name {
	case sseevent.FieldConsumedAt:
		m.ClearConsumedAt()
		return nil
	}
	return fmt.Errorf("unknown SSEEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SSEEventMutation) ResetField(name string) error {
	switch name {
	case sseevent.FieldTaskID:
		m.ResetTaskID()
		return nil
	case sseevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sseevent.FieldUserID:
		m.ResetUserID()
		return nil
	case sseevent.FieldEventSequence:
		m.ResetEventSequence()
		return nil
	case sseevent.FieldEventType:
		m.ResetEventType()
		return nil
	case sseevent.FieldEventData:
		m.ResetEventData()
		return nil
	case sseevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sseevent.FieldConsumed:
		m.ResetConsumed()
		return nil
	case sseevent.FieldConsumedAt:
		m.ResetConsumedAt()
		return nil
	}
	return fmt.Errorf("unknown SSEEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SSEEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, sseevent.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SSEEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sseevent.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SSEEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SSEEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SSEEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, sseevent.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SSEEventMutation) EdgeCleared(name string) bool {
	switch name {
	case sseevent.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SSEEventMutation) ClearEdge(name string) error {
	switch name {
	case sseevent.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown SSEEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SSEEventMutation) ResetEdge(name string) error {
	switch name {
	case sseevent.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown SSEEvent edge %s", name)
}

// ScheduledTaskMutation represents an operation that mutates the ScheduledTask nodes in the graph.
type ScheduledTaskMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	name                   *string
	namespace              *string
	user_id                *string
	created_by             *string
	schedule_type          *scheduledtask.ScheduleType
	schedule_expression    *string
	timezone               *string
	target_agent_name      *string
	task_message           *[]map[string]interface{}
	appendtask_message     []map[string]interface{}
	task_metadata          *map[string]interface{}
	enabled                *bool
	max_retries            *int
	addmax_retries         *int
	retry_delay_seconds    *int
	addretry_delay_seconds *int
	timeout_seconds        *int
	addtimeout_seconds     *int
	notification_config    *map[string]interface{}
	created_at             *int64
	addcreated_at          *int64
	updated_at             *int64
	addupdated_at          *int64
	next_run_at            *int64
	addnext_run_at         *int64
	last_run_at            *int64
	addlast_run_at         *int64
	deleted_at             *int64
	adddeleted_at          *int64
	clearedFields          map[string]struct{}
	executions             map[string]struct{}
	removedexecutions      map[string]struct{}
	clearedexecutions      bool
	done                   bool
	oldValue               func(context.Context) (*ScheduledTask, error)
	predicates             []predicate.ScheduledTask
}

var _ ent.Mutation = (*ScheduledTaskMutation)(nil)

// scheduledtaskOption allows management of the mutation configuration using functional options.
type scheduledtaskOption func(*ScheduledTaskMutation)

// newScheduledTaskMutation creates new mutation for the ScheduledTask entity.
func newScheduledTaskMutation(c config, op Op, opts ...scheduledtaskOption) *ScheduledTaskMutation {
	m := &ScheduledTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeScheduledTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduledTaskID sets the ID field of the mutation.
func withScheduledTaskID(id string) scheduledtaskOption {
	return func(m *ScheduledTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *ScheduledTask
		)
		m.oldValue = func(ctx context.Context) (*ScheduledTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScheduledTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScheduledTask sets the old ScheduledTask of the mutation.
func withScheduledTask(node *ScheduledTask) scheduledtaskOption {
	return func(m *ScheduledTaskMutation) {
		m.oldValue = func(context.Context) (*ScheduledTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduledTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduledTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScheduledTask entities.
func (m *ScheduledTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduledTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduledTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScheduledTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ScheduledTaskMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ScheduledTaskMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ScheduledTaskMutation) ResetName() {
	m.name = nil
}

// SetNamespace sets the "namespace" field.
func (m *ScheduledTaskMutation) SetNamespace(s string) {
	m.namespace = &s
}

// Namespace returns the value of the "namespace" field in the mutation.
func (m *ScheduledTaskMutation) Namespace() (r string, exists bool) {
	v := m.namespace
	if v == nil {
		return
	}
	return *v, true
}

// OldNamespace returns the old "namespace" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldNamespace(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNamespace is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNamespace requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNamespace: %w", err)
	}
	return oldValue.Namespace, nil
}

// ResetNamespace resets all changes to the "namespace" field.
func (m *ScheduledTaskMutation) ResetNamespace() {
	m.namespace = nil
}

// SetUserID sets the "user_id" field.
func (m *ScheduledTaskMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ScheduledTaskMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *ScheduledTaskMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[scheduledtask.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *ScheduledTaskMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[scheduledtask.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ScheduledTaskMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, scheduledtask.FieldUserID)
}

// SetCreatedBy sets the "created_by" field.
func (m *ScheduledTaskMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *ScheduledTaskMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *ScheduledTaskMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetScheduleType sets the "schedule_type" field.
func (m *ScheduledTaskMutation) SetScheduleType(st scheduledtask.ScheduleType) {
	m.schedule_type = &st
}

// ScheduleType returns the value of the "schedule_type" field in the mutation.
func (m *ScheduledTaskMutation) ScheduleType() (r scheduledtask.ScheduleType, exists bool) {
	v := m.schedule_type
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduleType returns the old "schedule_type" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldScheduleType(ctx context.Context) (v scheduledtask.ScheduleType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduleType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduleType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduleType: %w", err)
	}
	return oldValue.ScheduleType, nil
}

// ResetScheduleType resets all changes to the "schedule_type" field.
func (m *ScheduledTaskMutation) ResetScheduleType() {
	m.schedule_type = nil
}

// SetScheduleExpression sets the "schedule_expression" field.
func (m *ScheduledTaskMutation) SetScheduleExpression(s string) {
	m.schedule_expression = &s
}

// ScheduleExpression returns the value of the "schedule_expression" field in the mutation.
func (m *ScheduledTaskMutation) ScheduleExpression() (r string, exists bool) {
	v := m.schedule_expression
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduleExpression returns the old "schedule_expression" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldScheduleExpression(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduleExpression is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduleExpression requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduleExpression: %w", err)
	}
	return oldValue.ScheduleExpression, nil
}

// ResetScheduleExpression resets all changes to the "schedule_expression" field.
func (m *ScheduledTaskMutation) ResetScheduleExpression() {
	m.schedule_expression = nil
}

// SetTimezone sets the "timezone" field.
func (m *ScheduledTaskMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *ScheduledTaskMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *ScheduledTaskMutation) ResetTimezone() {
	m.timezone = nil
}

// SetTargetAgentName sets the "target_agent_name" field.
func (m *ScheduledTaskMutation) SetTargetAgentName(s string) {
	m.target_agent_name = &s
}

// TargetAgentName returns the value of the "target_agent_name" field in the mutation.
func (m *ScheduledTaskMutation) TargetAgentName() (r string, exists bool) {
	v := m.target_agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetAgentName returns the old "target_agent_name" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldTargetAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetAgentName: %w", err)
	}
	return oldValue.TargetAgentName, nil
}

// ResetTargetAgentName resets all changes to the "target_agent_name" field.
func (m *ScheduledTaskMutation) ResetTargetAgentName() {
	m.target_agent_name = nil
}

// SetTaskMessage sets the "task_message" field.
func (m *ScheduledTaskMutation) SetTaskMessage(value []map[string]interface{}) {
	m.task_message = &value
	m.appendtask_message = nil
}

// TaskMessage returns the value of the "task_message" field in the mutation.
func (m *ScheduledTaskMutation) TaskMessage() (r []map[string]interface{}, exists bool) {
	v := m.task_message
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskMessage returns the old "task_message" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldTaskMessage(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskMessage: %w", err)
	}
	return oldValue.TaskMessage, nil
}

// AppendTaskMessage adds value to the "task_message" field.
func (m *ScheduledTaskMutation) AppendTaskMessage(value []map[string]interface{}) {
	m.appendtask_message = append(m.appendtask_message, value...)
}

// AppendedTaskMessage returns the list of values that were appended to the "task_message" field in this mutation.
func (m *ScheduledTaskMutation) AppendedTaskMessage() ([]map[string]interface{}, bool) {
	if len(m.appendtask_message) == 0 {
		return nil, false
	}
	return m.appendtask_message, true
}

// ResetTaskMessage resets all changes to the "task_message" field.
func (m *ScheduledTaskMutation) ResetTaskMessage() {
	m.task_message = nil
	m.appendtask_message = nil
}

// SetTaskMetadata sets the "task_metadata" field.
func (m *ScheduledTaskMutation) SetTaskMetadata(value map[string]interface{}) {
	m.task_metadata = &value
}

// TaskMetadata returns the value of the "task_metadata" field in the mutation.
func (m *ScheduledTaskMutation) TaskMetadata() (r map[string]interface{}, exists bool) {
	v := m.task_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskMetadata returns the old "task_metadata" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldTaskMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskMetadata: %w", err)
	}
	return oldValue.TaskMetadata, nil
}

// ClearTaskMetadata clears the value of the "task_metadata" field.
func (m *ScheduledTaskMutation) ClearTaskMetadata() {
	m.task_metadata = nil
	m.clearedFields[scheduledtask.FieldTaskMetadata] = struct{}{}
}

// TaskMetadataCleared returns if the "task_metadata" field was cleared in this mutation.
func (m *ScheduledTaskMutation) TaskMetadataCleared() bool {
	_, ok := m.clearedFields[scheduledtask.FieldTaskMetadata]
	return ok
}

// ResetTaskMetadata resets all changes to the "task_metadata" field.
func (m *ScheduledTaskMutation) ResetTaskMetadata() {
	m.task_metadata = nil
	delete(m.clearedFields, scheduledtask.FieldTaskMetadata)
}

// SetEnabled sets the "enabled" field.
func (m *ScheduledTaskMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *ScheduledTaskMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *ScheduledTaskMutation) ResetEnabled() {
	m.enabled = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *ScheduledTaskMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *ScheduledTaskMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *ScheduledTaskMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *ScheduledTaskMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *ScheduledTaskMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetRetryDelaySeconds sets the "retry_delay_seconds" field.
func (m *ScheduledTaskMutation) SetRetryDelaySeconds(i int) {
	m.retry_delay_seconds = &i
	m.addretry_delay_seconds = nil
}

// RetryDelaySeconds returns the value of the "retry_delay_seconds" field in the mutation.
func (m *ScheduledTaskMutation) RetryDelaySeconds() (r int, exists bool) {
	v := m.retry_delay_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryDelaySeconds returns the old "retry_delay_seconds" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldRetryDelaySeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryDelaySeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryDelaySeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryDelaySeconds: %w", err)
	}
	return oldValue.RetryDelaySeconds, nil
}

// AddRetryDelaySeconds adds i to the "retry_delay_seconds" field.
func (m *ScheduledTaskMutation) AddRetryDelaySeconds(i int) {
	if m.addretry_delay_seconds != nil {
		*m.addretry_delay_seconds += i
	} else {
		m.addretry_delay_seconds = &i
	}
}

// AddedRetryDelaySeconds returns the value that was added to the "retry_delay_seconds" field in this mutation.
func (m *ScheduledTaskMutation) AddedRetryDelaySeconds() (r int, exists bool) {
	v := m.addretry_delay_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryDelaySeconds resets all changes to the "retry_delay_seconds" field.
func (m *ScheduledTaskMutation) ResetRetryDelaySeconds() {
	m.retry_delay_seconds = nil
	m.addretry_delay_seconds = nil
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (m *ScheduledTaskMutation) SetTimeoutSeconds(i int) {
	m.timeout_seconds = &i
	m.addtimeout_seconds = nil
}

// TimeoutSeconds returns the value of the "timeout_seconds" field in the mutation.
func (m *ScheduledTaskMutation) TimeoutSeconds() (r int, exists bool) {
	v := m.timeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutSeconds returns the old "timeout_seconds" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldTimeoutSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutSeconds: %w", err)
	}
	return oldValue.TimeoutSeconds, nil
}

// AddTimeoutSeconds adds i to the "timeout_seconds" field.
func (m *ScheduledTaskMutation) AddTimeoutSeconds(i int) {
	if m.addtimeout_seconds != nil {
		*m.addtimeout_seconds += i
	} else {
		m.addtimeout_seconds = &i
	}
}

// AddedTimeoutSeconds returns the value that was added to the "timeout_seconds" field in this mutation.
func (m *ScheduledTaskMutation) AddedTimeoutSeconds() (r int, exists bool) {
	v := m.addtimeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeoutSeconds resets all changes to the "timeout_seconds" field.
func (m *ScheduledTaskMutation) ResetTimeoutSeconds() {
	m.timeout_seconds = nil
	m.addtimeout_seconds = nil
}

// SetNotificationConfig sets the "notification_config" field.
func (m *ScheduledTaskMutation) SetNotificationConfig(value map[string]interface{}) {
	m.notification_config = &value
}

// NotificationConfig returns the value of the "notification_config" field in the mutation.
func (m *ScheduledTaskMutation) NotificationConfig() (r map[string]interface{}, exists bool) {
	v := m.notification_config
	if v == nil {
		return
	}
	return *v, true
}

// OldNotificationConfig returns the old "notification_config" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldNotificationConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotificationConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotificationConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotificationConfig: %w", err)
	}
	return oldValue.NotificationConfig, nil
}

// ClearNotificationConfig clears the value of the "notification_config" field.
func (m *ScheduledTaskMutation) ClearNotificationConfig() {
	m.notification_config = nil
	m.clearedFields[scheduledtask.FieldNotificationConfig] = struct{}{}
}

// NotificationConfigCleared returns if the "notification_config" field was cleared in this mutation.
func (m *ScheduledTaskMutation) NotificationConfigCleared() bool {
	_, ok := m.clearedFields[scheduledtask.FieldNotificationConfig]
	return ok
}

// ResetNotificationConfig resets all changes to the "notification_config" field.
func (m *ScheduledTaskMutation) ResetNotificationConfig() {
	m.notification_config = nil
	delete(m.clearedFields, scheduledtask.FieldNotificationConfig)
}

// SetCreatedAt sets the "created_at" field.
func (m *ScheduledTaskMutation) SetCreatedAt(i int64) {
	m.created_at = &i
	m.addcreated_at = nil
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScheduledTaskMutation) CreatedAt() (r int64, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldCreatedAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// AddCreatedAt adds i to the "created_at" field.
func (m *ScheduledTaskMutation) AddCreatedAt(i int64) {
	if m.addcreated_at != nil {
		*m.addcreated_at += i
	} else {
		m.addcreated_at = &i
	}
}

// AddedCreatedAt returns the value that was added to the "created_at" field in this mutation.
func (m *ScheduledTaskMutation) AddedCreatedAt() (r int64, exists bool) {
	v := m.addcreated_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScheduledTaskMutation) ResetCreatedAt() {
	m.created_at = nil
	m.addcreated_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ScheduledTaskMutation) SetUpdatedAt(i int64) {
	m.updated_at = &i
	m.addupdated_at = nil
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ScheduledTaskMutation) UpdatedAt() (r int64, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldUpdatedAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// AddUpdatedAt adds i to the "updated_at" field.
func (m *ScheduledTaskMutation) AddUpdatedAt(i int64) {
	if m.addupdated_at != nil {
		*m.addupdated_at += i
	} else {
		m.addupdated_at = &i
	}
}

// AddedUpdatedAt returns the value that was added to the "updated_at" field in this mutation.
func (m *ScheduledTaskMutation) AddedUpdatedAt() (r int64, exists bool) {
	v := m.addupdated_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ScheduledTaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
	m.addupdated_at = nil
}

// SetNextRunAt sets the "next_run_at" field.
func (m *ScheduledTaskMutation) SetNextRunAt(i int64) {
	m.next_run_at = &i
	m.addnext_run_at = nil
}

// NextRunAt returns the value of the "next_run_at" field in the mutation.
func (m *ScheduledTaskMutation) NextRunAt() (r int64, exists bool) {
	v := m.next_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRunAt returns the old "next_run_at" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldNextRunAt(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRunAt: %w", err)
	}
	return oldValue.NextRunAt, nil
}

// AddNextRunAt adds i to the "next_run_at" field.
func (m *ScheduledTaskMutation) AddNextRunAt(i int64) {
	if m.addnext_run_at != nil {
		*m.addnext_run_at += i
	} else {
		m.addnext_run_at = &i
	}
}

// AddedNextRunAt returns the value that was added to the "next_run_at" field in this mutation.
func (m *ScheduledTaskMutation) AddedNextRunAt() (r int64, exists bool) {
	v := m.addnext_run_at
	if v == nil {
		return
	}
	return *v, true
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (m *ScheduledTaskMutation) ClearNextRunAt() {
	m.next_run_at = nil
	m.addnext_run_at = nil
	m.clearedFields[scheduledtask.FieldNextRunAt] = struct{}{}
}

// NextRunAtCleared returns if the "next_run_at" field was cleared in this mutation.
func (m *ScheduledTaskMutation) NextRunAtCleared() bool {
	_, ok := m.clearedFields[scheduledtask.FieldNextRunAt]
	return ok
}

// ResetNextRunAt resets all changes to the "next_run_at" field.
func (m *ScheduledTaskMutation) ResetNextRunAt() {
	m.next_run_at = nil
	m.addnext_run_at = nil
	delete(m.clearedFields, scheduledtask.FieldNextRunAt)
}

// SetLastRunAt sets the "last_run_at" field.
func (m *ScheduledTaskMutation) SetLastRunAt(i int64) {
	m.last_run_at = &i
	m.addlast_run_at = nil
}

// LastRunAt returns the value of the "last_run_at" field in the mutation.
func (m *ScheduledTaskMutation) LastRunAt() (r int64, exists bool) {
	v := m.last_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRunAt returns the old "last_run_at" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldLastRunAt(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRunAt: %w", err)
	}
	return oldValue.LastRunAt, nil
}

// AddLastRunAt adds i to the "last_run_at" field.
func (m *ScheduledTaskMutation) AddLastRunAt(i int64) {
	if m.addlast_run_at != nil {
		*m.addlast_run_at += i
	} else {
		m.addlast_run_at = &i
	}
}

// AddedLastRunAt returns the value that was added to the "last_run_at" field in this mutation.
func (m *ScheduledTaskMutation) AddedLastRunAt() (r int64, exists bool) {
	v := m.addlast_run_at
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (m *ScheduledTaskMutation) ClearLastRunAt() {
	m.last_run_at = nil
	m.addlast_run_at = nil
	m.clearedFields[scheduledtask.FieldLastRunAt] = struct{}{}
}

// LastRunAtCleared returns if the "last_run_at" field was cleared in this mutation.
func (m *ScheduledTaskMutation) LastRunAtCleared() bool {
	_, ok := m.clearedFields[scheduledtask.FieldLastRunAt]
	return ok
}

// ResetLastRunAt resets all changes to the "last_run_at" field.
func (m *ScheduledTaskMutation) ResetLastRunAt() {
	m.last_run_at = nil
	m.addlast_run_at = nil
	delete(m.clearedFields, scheduledtask.FieldLastRunAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ScheduledTaskMutation) SetDeletedAt(i int64) {
	m.deleted_at = &i
	m.adddeleted_at = nil
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ScheduledTaskMutation) DeletedAt() (r int64, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldDeletedAt(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// AddDeletedAt adds i to the "deleted_at" field.
func (m *ScheduledTaskMutation) AddDeletedAt(i int64) {
	if m.adddeleted_at != nil {
		*m.adddeleted_at += i
	} else {
		m.adddeleted_at = &i
	}
}

// AddedDeletedAt returns the value that was added to the "deleted_at" field in this mutation.
func (m *ScheduledTaskMutation) AddedDeletedAt() (r int64, exists bool) {
	v := m.adddeleted_at
	if v == nil {
		return
	}
	return *v, true
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ScheduledTaskMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.adddeleted_at = nil
	m.clearedFields[scheduledtask.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ScheduledTaskMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[scheduledtask.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ScheduledTaskMutation) ResetDeletedAt() {
	m.deleted_at = nil
	m.adddeleted_at = nil
	delete(m.clearedFields, scheduledtask.FieldDeletedAt)
}

// AddExecutionIDs adds the "executions" edge to the ScheduledTaskExecution entity by ids.
func (m *ScheduledTaskMutation) AddExecutionIDs(ids ...string) {
	if m.executions == nil {
		m.executions = make(map[string]struct{})
	}
	for i := range ids {
		m.executions[ids[i]] = struct{}{}
	}
}

// ClearExecutions clears the "executions" edge to the ScheduledTaskExecution entity.
func (m *ScheduledTaskMutation) ClearExecutions() {
	m.clearedexecutions = true
}

// ExecutionsCleared reports if the "executions" edge to the ScheduledTaskExecution entity was cleared.
func (m *ScheduledTaskMutation) ExecutionsCleared() bool {
	return m.clearedexecutions
}

// RemoveExecutionIDs removes the "executions" edge to the ScheduledTaskExecution entity by IDs.
func (m *ScheduledTaskMutation) RemoveExecutionIDs(ids ...string) {
	if m.removedexecutions == nil {
		m.removedexecutions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.executions, ids[i])
		m.removedexecutions[ids[i]] = struct{}{}
	}
}

// RemovedExecutions returns the removed IDs of the "executions" edge to the ScheduledTaskExecution entity.
func (m *ScheduledTaskMutation) RemovedExecutionsIDs() (ids []string) {
	for id := range m.removedexecutions {
		ids = append(ids, id)
	}
	return
}

// ExecutionsIDs returns the "executions" edge IDs in the mutation.
func (m *ScheduledTaskMutation) ExecutionsIDs() (ids []string) {
	for id := range m.executions {
		ids = append(ids, id)
	}
	return
}

// ResetExecutions resets all changes to the "executions" edge.
func (m *ScheduledTaskMutation) ResetExecutions() {
	m.executions = nil
	m.clearedexecutions = false
	m.removedexecutions = nil
}

// Where appends a list predicates to the ScheduledTaskMutation builder.
func (m *ScheduledTaskMutation) Where(ps ...predicate.ScheduledTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduledTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduledTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScheduledTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduledTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduledTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScheduledTask).
func (m *ScheduledTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduledTaskMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.name != nil {
		fields = append(fields, scheduledtask.FieldName)
	}
	if m.namespace != nil {
		fields = append(fields, scheduledtask.FieldNamespace)
	}
	if m.user_id != nil {
		fields = append(fields, scheduledtask.FieldUserID)
	}
	if m.created_by != nil {
		fields = append(fields, scheduledtask.FieldCreatedBy)
	}
	if m.schedule_type != nil {
		fields = append(fields, scheduledtask.FieldScheduleType)
	}
	if m.schedule_expression != nil {
		fields = append(fields, scheduledtask.FieldScheduleExpression)
	}
	if m.timezone != nil {
		fields = append(fields, scheduledtask.FieldTimezone)
	}
	if m.target_agent_name != nil {
		fields = append(fields, scheduledtask.FieldTargetAgentName)
	}
	if m.task_message != nil {
		fields = append(fields, scheduledtask.FieldTaskMessage)
	}
	if m.task_metadata != nil {
		fields = append(fields, scheduledtask.FieldTaskMetadata)
	}
	if m.enabled != nil {
		fields = append(fields, scheduledtask.FieldEnabled)
	}
	if m.max_retries != nil {
		fields = append(fields, scheduledtask.FieldMaxRetries)
	}
	if m.retry_delay_seconds != nil {
		fields = append(fields, scheduledtask.FieldRetryDelaySeconds)
	}
	if m.timeout_seconds != nil {
		fields = append(fields, scheduledtask.FieldTimeoutSeconds)
	}
	if m.notification_config != nil {
		fields = append(fields, scheduledtask.FieldNotificationConfig)
	}
	if m.created_at != nil {
		fields = append(fields, scheduledtask.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, scheduledtask.FieldUpdatedAt)
	}
	if m.next_run_at != nil {
		fields = append(fields, scheduledtask.FieldNextRunAt)
	}
	if m.last_run_at != nil {
		fields = append(fields, scheduledtask.FieldLastRunAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, scheduledtask.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduledTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scheduledtask.FieldName:
		return m.Name()
	case scheduledtask.FieldNamespace:
		return m.Namespace()
	case scheduledtask.FieldUserID:
		return m.UserID()
	case scheduledtask.FieldCreatedBy:
		return m.CreatedBy()
	case scheduledtask.FieldScheduleType:
		return m.ScheduleType()
	case scheduledtask.FieldScheduleExpression:
		return m.ScheduleExpression()
	case scheduledtask.FieldTimezone:
		return m.Timezone()
	case scheduledtask.FieldTargetAgentName:
		return m.TargetAgentName()
	case scheduledtask.FieldTaskMessage:
		return m.TaskMessage()
	case scheduledtask.FieldTaskMetadata:
		return m.TaskMetadata()
	case scheduledtask.FieldEnabled:
		return m.Enabled()
	case scheduledtask.FieldMaxRetries:
		return m.MaxRetries()
	case scheduledtask.FieldRetryDelaySeconds:
		return m.RetryDelaySeconds()
	case scheduledtask.FieldTimeoutSeconds:
		return m.TimeoutSeconds()
	case scheduledtask.FieldNotificationConfig:
		return m.NotificationConfig()
	case scheduledtask.FieldCreatedAt:
		return m.CreatedAt()
	case scheduledtask.FieldUpdatedAt:
		return m.UpdatedAt()
	case scheduledtask.FieldNextRunAt:
		return m.NextRunAt()
	case scheduledtask.FieldLastRunAt:
		return m.LastRunAt()
	case scheduledtask.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduledTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scheduledtask.FieldName:
		return m.OldName(ctx)
	case scheduledtask.FieldNamespace:
		return m.OldNamespace(ctx)
	case scheduledtask.FieldUserID:
		return m.OldUserID(ctx)
	case scheduledtask.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case scheduledtask.FieldScheduleType:
		return m.OldScheduleType(ctx)
	case scheduledtask.FieldScheduleExpression:
		return m.OldScheduleExpression(ctx)
	case scheduledtask.FieldTimezone:
		return m.OldTimezone(ctx)
	case scheduledtask.FieldTargetAgentName:
		return m.OldTargetAgentName(ctx)
	case scheduledtask.FieldTaskMessage:
		return m.OldTaskMessage(ctx)
	case scheduledtask.FieldTaskMetadata:
		return m.OldTaskMetadata(ctx)
	case scheduledtask.FieldEnabled:
		return m.OldEnabled(ctx)
	case scheduledtask.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case scheduledtask.FieldRetryDelaySeconds:
		return m.OldRetryDelaySeconds(ctx)
	case scheduledtask.FieldTimeoutSeconds:
		return m.OldTimeoutSeconds(ctx)
	case scheduledtask.FieldNotificationConfig:
		return m.OldNotificationConfig(ctx)
	case scheduledtask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case scheduledtask.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case scheduledtask.FieldNextRunAt:
		return m.OldNextRunAt(ctx)
	case scheduledtask.FieldLastRunAt:
		return m.OldLastRunAt(ctx)
	case scheduledtask.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScheduledTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scheduledtask.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case scheduledtask.FieldNamespace:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNamespace(v)
		return nil
	case scheduledtask.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case scheduledtask.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case scheduledtask.FieldScheduleType:
		v, ok := value.(scheduledtask.ScheduleType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduleType(v)
		return nil
	case scheduledtask.FieldScheduleExpression:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduleExpression(v)
		return nil
	case scheduledtask.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case scheduledtask.FieldTargetAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetAgentName(v)
		return nil
	case scheduledtask.FieldTaskMessage:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskMessage(v)
		return nil
	case scheduledtask.FieldTaskMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskMetadata(v)
		return nil
	case scheduledtask.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case scheduledtask.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case scheduledtask.FieldRetryDelaySeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryDelaySeconds(v)
		return nil
	case scheduledtask.FieldTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutSeconds(v)
		return nil
	case scheduledtask.FieldNotificationConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotificationConfig(v)
		return nil
	case scheduledtask.FieldCreatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case scheduledtask.FieldUpdatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case scheduledtask.FieldNextRunAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRunAt(v)
		return nil
	case scheduledtask.FieldLastRunAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRunAt(v)
		return nil
	case scheduledtask.FieldDeletedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduledTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduledTaskMutation) AddedFields() []string {
	var fields []string
	if m.addmax_retries != nil {
		fields = append(fields, scheduledtask.FieldMaxRetries)
	}
	if m.addretry_delay_seconds != nil {
		fields = append(fields, scheduledtask.FieldRetryDelaySeconds)
	}
	if m.addtimeout_seconds != nil {
		fields = append(fields, scheduledtask.FieldTimeoutSeconds)
	}
	if m.addcreated_at != nil {
		fields = append(fields, scheduledtask.FieldCreatedAt)
	}
	if m.addupdated_at != nil {
		fields = append(fields, scheduledtask.FieldUpdatedAt)
	}
	if m.addnext_run_at != nil {
		fields = append(fields, scheduledtask.FieldNextRunAt)
	}
	if m.addlast_run_at != nil {
		fields = append(fields, scheduledtask.FieldLastRunAt)
	}
	if m.adddeleted_at != nil {
		fields = append(fields, scheduledtask.FieldDeletedAt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduledTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scheduledtask.FieldMaxRetries:
		return m.AddedMaxRetries()
	case scheduledtask.FieldRetryDelaySeconds:
		return m.AddedRetryDelaySeconds()
	case scheduledtask.FieldTimeoutSeconds:
		return m.AddedTimeoutSeconds()
	case scheduledtask.FieldCreatedAt:
		return m.AddedCreatedAt()
	case scheduledtask.FieldUpdatedAt:
		return m.AddedUpdatedAt()
	case scheduledtask.FieldNextRunAt:
		return m.AddedNextRunAt()
	case scheduledtask.FieldLastRunAt:
		return m.AddedLastRunAt()
	case scheduledtask.FieldDeletedAt:
		return m.AddedDeletedAt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scheduledtask.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	case scheduledtask.FieldRetryDelaySeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryDelaySeconds(v)
		return nil
	case scheduledtask.FieldTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeoutSeconds(v)
		return nil
	case scheduledtask.FieldCreatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedAt(v)
		return nil
	case scheduledtask.FieldUpdatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpdatedAt(v)
		return nil
	case scheduledtask.FieldNextRunAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNextRunAt(v)
		return nil
	case scheduledtask.FieldLastRunAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastRunAt(v)
		return nil
	case scheduledtask.FieldDeletedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduledTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduledTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scheduledtask.FieldUserID) {
		fields = append(fields, scheduledtask.FieldUserID)
	}
	if m.FieldCleared(scheduledtask.FieldTaskMetadata) {
		fields = append(fields, scheduledtask.FieldTaskMetadata)
	}
	if m.FieldCleared(scheduledtask.FieldNotificationConfig) {
		fields = append(fields, scheduledtask.FieldNotificationConfig)
	}
	if m.FieldCleared(scheduledtask.FieldNextRunAt) {
		fields = append(fields, scheduledtask.FieldNextRunAt)
	}
	if m.FieldCleared(scheduledtask.FieldLastRunAt) {
		fields = append(fields, scheduledtask.FieldLastRunAt)
	}
	if m.FieldCleared(scheduledtask.FieldDeletedAt) {
		fields = append(fields, scheduledtask.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduledTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduledTaskMutation) ClearField(name string) error {
	switch name {
	case scheduledtask.FieldUserID:
		m.ClearUserID()
		return nil
	case scheduledtask.FieldTaskMetadata:
		m.ClearTaskMetadata()
		return nil
	case scheduledtask.FieldNotificationConfig:
		m.ClearNotificationConfig()
		return nil
	case scheduledtask.FieldNextRunAt:
		m.ClearNextRunAt()
		return nil
	case scheduledtask.FieldLastRunAt:
		m.ClearLastRunAt()
		return nil
	case scheduledtask.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown ScheduledTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduledTaskMutation) ResetField(name string) error {
	switch name {
	case scheduledtask.FieldName:
		m.ResetName()
		return nil
	case scheduledtask.FieldNamespace:
		m.ResetNamespace()
		return nil
	case scheduledtask.FieldUserID:
		m.ResetUserID()
		return nil
	case scheduledtask.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case scheduledtask.FieldScheduleType:
		m.ResetScheduleType()
		return nil
	case scheduledtask.FieldScheduleExpression:
		m.ResetScheduleExpression()
		return nil
	case scheduledtask.FieldTimezone:
		m.ResetTimezone()
		return nil
	case scheduledtask.FieldTargetAgentName:
		m.ResetTargetAgentName()
		return nil
	case scheduledtask.FieldTaskMessage:
		m.ResetTaskMessage()
		return nil
	case scheduledtask.FieldTaskMetadata:
		m.ResetTaskMetadata()
		return nil
	case scheduledtask.FieldEnabled:
		m.ResetEnabled()
		return nil
	case scheduledtask.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case scheduledtask.FieldRetryDelaySeconds:
		m.ResetRetryDelaySeconds()
		return nil
	case scheduledtask.FieldTimeoutSeconds:
		m.ResetTimeoutSeconds()
		return nil
	case scheduledtask.FieldNotificationConfig:
		m.ResetNotificationConfig()
		return nil
	case scheduledtask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case scheduledtask.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case scheduledtask.FieldNextRunAt:
		m.ResetNextRunAt()
		return nil
	case scheduledtask.FieldLastRunAt:
		m.ResetLastRunAt()
		return nil
	case scheduledtask.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown ScheduledTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduledTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.executions != nil {
		edges = append(edges, scheduledtask.EdgeExecutions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduledTaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case scheduledtask.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.executions))
		for id := range m.executions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduledTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedexecutions != nil {
		edges = append(edges, scheduledtask.EdgeExecutions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduledTaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case scheduledtask.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.removedexecutions))
		for id := range m.removedexecutions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduledTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedexecutions {
		edges = append(edges, scheduledtask.EdgeExecutions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduledTaskMutation) EdgeCleared(name string) bool {
	switch name {
	case scheduledtask.EdgeExecutions:
		return m.clearedexecutions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduledTaskMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ScheduledTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduledTaskMutation) ResetEdge(name string) error {
	switch name {
	case scheduledtask.EdgeExecutions:
		m.ResetExecutions()
		return nil
	}
	return fmt.Errorf("unknown ScheduledTask edge %s", name)
}

// ScheduledTaskExecutionMutation represents an operation that mutates the ScheduledTaskExecution nodes in the graph.
type ScheduledTaskExecutionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	status                *scheduledtaskexecution.Status
	a2a_task_id           *string
	scheduled_for         *int64
	addscheduled_for      *int64
	started_at            *int64
	addstarted_at         *int64
	completed_at          *int64
	addcompleted_at       *int64
	result_summary        *map[string]interface{}
	error_message         *string
	retry_count           *int
	addretry_count        *int
	artifacts             *[]map[string]interface{}
	appendartifacts       []map[string]interface{}
	notifications_sent    *map[string]interface{}
	clearedFields         map[string]struct{}
	scheduled_task        *string
	clearedscheduled_task bool
	done                  bool
	oldValue              func(context.Context) (*ScheduledTaskExecution, error)
	predicates            []predicate.ScheduledTaskExecution
}

var _ ent.Mutation = (*ScheduledTaskExecutionMutation)(nil)

// scheduledtaskexecutionOption allows management of the mutation configuration using functional options.
type scheduledtaskexecutionOption func(*ScheduledTaskExecutionMutation)

// newScheduledTaskExecutionMutation creates new mutation for the ScheduledTaskExecution entity.
func newScheduledTaskExecutionMutation(c config, op Op, opts ...scheduledtaskexecutionOption) *ScheduledTaskExecutionMutation {
	m := &ScheduledTaskExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeScheduledTaskExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduledTaskExecutionID sets the ID field of the mutation.
func withScheduledTaskExecutionID(id string) scheduledtaskexecutionOption {
	return func(m *ScheduledTaskExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *ScheduledTaskExecution
		)
		m.oldValue = func(ctx context.Context) (*ScheduledTaskExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScheduledTaskExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScheduledTaskExecution sets the old ScheduledTaskExecution of the mutation.
func withScheduledTaskExecution(node *ScheduledTaskExecution) scheduledtaskexecutionOption {
	return func(m *ScheduledTaskExecutionMutation) {
		m.oldValue = func(context.Context) (*ScheduledTaskExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduledTaskExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduledTaskExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScheduledTaskExecution entities.
func (m *ScheduledTaskExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduledTaskExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduledTaskExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScheduledTaskExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetScheduledTaskID sets the "scheduled_task_id" field.
func (m *ScheduledTaskExecutionMutation) SetScheduledTaskID(s string) {
	m.scheduled_task = &s
}

// ScheduledTaskID returns the value of the "scheduled_task_id" field in the mutation.
func (m *ScheduledTaskExecutionMutation) ScheduledTaskID() (r string, exists bool) {
	v := m.scheduled_task
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledTaskID returns the old "scheduled_task_id" field's value of the ScheduledTaskExecution entity.
// If the ScheduledTaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskExecutionMutation) OldScheduledTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledTaskID: %w", err)
	}
	return oldValue.ScheduledTaskID, nil
}

// ResetScheduledTaskID resets all changes to the "scheduled_task_id" field.
func (m *ScheduledTaskExecutionMutation) ResetScheduledTaskID() {
	m.scheduled_task = nil
}

// SetStatus sets the "status" field.
func (m *ScheduledTaskExecutionMutation) SetStatus(s scheduledtaskexecution.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScheduledTaskExecutionMutation) Status() (r scheduledtaskexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ScheduledTaskExecution entity.
// If the ScheduledTaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskExecutionMutation) OldStatus(ctx context.Context) (v scheduledtaskexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ScheduledTaskExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetA2aTaskID sets the "a2a_task_id" field.
func (m *ScheduledTaskExecutionMutation) SetA2aTaskID(s string) {
	m.a2a_task_id = &s
}

// A2aTaskID returns the value of the "a2a_task_id" field in the mutation.
func (m *ScheduledTaskExecutionMutation) A2aTaskID() (r string, exists bool) {
	v := m.a2a_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldA2aTaskID returns the old "a2a_task_id" field's value of the ScheduledTaskExecution entity.
// If the ScheduledTaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskExecutionMutation) OldA2aTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldA2aTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldA2aTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldA2aTaskID: %w", err)
	}
	return oldValue.A2aTaskID, nil
}

// ClearA2aTaskID clears the value of the "a2a_task_id" field.
func (m *ScheduledTaskExecutionMutation) ClearA2aTaskID() {
	m.a2a_task_id = nil
	m.clearedFields[scheduledtaskexecution.FieldA2aTaskID] = struct{}{}
}

// A2aTaskIDCleared returns if the "a2a_task_id" field was cleared in this mutation.
func (m *ScheduledTaskExecutionMutation) A2aTaskIDCleared() bool {
	_, ok := m.clearedFields[scheduledtaskexecution.FieldA2aTaskID]
	return ok
}

// ResetA2aTaskID resets all changes to the "a2a_task_id" field.
func (m *ScheduledTaskExecutionMutation) ResetA2aTaskID() {
	m.a2a_task_id = nil
	delete(m.clearedFields, scheduledtaskexecution.FieldA2aTaskID)
}

// SetScheduledFor sets the "scheduled_for" field.
func (m *ScheduledTaskExecutionMutation) SetScheduledFor(i int64) {
	m.scheduled_for = &i
	m.addscheduled_for = nil
}

// ScheduledFor returns the value of the "scheduled_for" field in the mutation.
func (m *ScheduledTaskExecutionMutation) ScheduledFor() (r int64, exists bool) {
	v := m.scheduled_for
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledFor returns the old "scheduled_for" field's value of the ScheduledTaskExecution entity.
// If the ScheduledTaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskExecutionMutation) OldScheduledFor(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledFor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledFor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledFor: %w", err)
	}
	return oldValue.ScheduledFor, nil
}

// AddScheduledFor adds i to the "scheduled_for" field.
func (m *ScheduledTaskExecutionMutation) AddScheduledFor(i int64) {
	if m.addscheduled_for != nil {
		*m.addscheduled_for += i
	} else {
		m.addscheduled_for = &i
	}
}

// AddedScheduledFor returns the value that was added to the "scheduled_for" field in this mutation.
func (m *ScheduledTaskExecutionMutation) AddedScheduledFor() (r int64, exists bool) {
	v := m.addscheduled_for
	if v == nil {
		return
	}
	return *v, true
}

// ResetScheduledFor resets all changes to the "scheduled_for" field.
func (m *ScheduledTaskExecutionMutation) ResetScheduledFor() {
	m.scheduled_for = nil
	m.addscheduled_for = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ScheduledTaskExecutionMutation) SetStartedAt(i int64) {
	m.started_at = &i
	m.addstarted_at = nil
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ScheduledTaskExecutionMutation) StartedAt() (r int64, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ScheduledTaskExecution entity.
// If the ScheduledTaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskExecutionMutation) OldStartedAt(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// AddStartedAt adds i to the "started_at" field.
func (m *ScheduledTaskExecutionMutation) AddStartedAt(i int64) {
	if m.addstarted_at != nil {
		*m.addstarted_at += i
	} else {
		m.addstarted_at = &i
	}
}

// AddedStartedAt returns the value that was added to the "started_at" field in this mutation.
func (m *ScheduledTaskExecutionMutation) AddedStartedAt() (r int64, exists bool) {
	v := m.addstarted_at
	if v == nil {
		return
	}
	return *v, true
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ScheduledTaskExecutionMutation) ClearStartedAt() {
	m.started_at = nil
	m.addstarted_at = nil
	m.clearedFields[scheduledtaskexecution.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ScheduledTaskExecutionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[scheduledtaskexecution.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ScheduledTaskExecutionMutation) ResetStartedAt() {
	m.started_at = nil
	m.addstarted_at = nil
	delete(m.clearedFields, scheduledtaskexecution.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ScheduledTaskExecutionMutation) SetCompletedAt(i int64) {
	m.completed_at = &i
	m.addcompleted_at = nil
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ScheduledTaskExecutionMutation) CompletedAt() (r int64, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ScheduledTaskExecution entity.
// If the ScheduledTaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskExecutionMutation) OldCompletedAt(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// AddCompletedAt adds i to the "completed_at" field.
func (m *ScheduledTaskExecutionMutation) AddCompletedAt(i int64) {
	if m.addcompleted_at != nil {
		*m.addcompleted_at += i
	} else {
		m.addcompleted_at = &i
	}
}

// AddedCompletedAt returns the value that was added to the "completed_at" field in this mutation.
func (m *ScheduledTaskExecutionMutation) AddedCompletedAt() (r int64, exists bool) {
	v := m.addcompleted_at
	if v == nil {
		return
	}
	return *v, true
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ScheduledTaskExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.addcompleted_at = nil
	m.clearedFields[scheduledtaskexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ScheduledTaskExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[scheduledtaskexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ScheduledTaskExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	m.addcompleted_at = nil
	delete(m.clearedFields, scheduledtaskexecution.FieldCompletedAt)
}

// SetResultSummary sets the "result_summary" field.
func (m *ScheduledTaskExecutionMutation) SetResultSummary(value map[string]interface{}) {
	m.result_summary = &value
}

// ResultSummary returns the value of the "result_summary" field in the mutation.
func (m *ScheduledTaskExecutionMutation) ResultSummary() (r map[string]interface{}, exists bool) {
	v := m.result_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldResultSummary returns the old "result_summary" field's value of the ScheduledTaskExecution entity.
// If the ScheduledTaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskExecutionMutation) OldResultSummary(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultSummary: %w", err)
	}
	return oldValue.ResultSummary, nil
}

// ClearResultSummary clears the value of the "result_summary" field.
func (m *ScheduledTaskExecutionMutation) ClearResultSummary() {
	m.result_summary = nil
	m.clearedFields[scheduledtaskexecution.FieldResultSummary] = struct{}{}
}

// ResultSummaryCleared returns if the "result_summary" field was cleared in this mutation.
func (m *ScheduledTaskExecutionMutation) ResultSummaryCleared() bool {
	_, ok := m.clearedFields[scheduledtaskexecution.FieldResultSummary]
	return ok
}

// ResetResultSummary resets all changes to the "result_summary" field.
func (m *ScheduledTaskExecutionMutation) ResetResultSummary() {
	m.result_summary = nil
	delete(m.clearedFields, scheduledtaskexecution.FieldResultSummary)
}

// SetErrorMessage sets the "error_message" field.
func (m *ScheduledTaskExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ScheduledTaskExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ScheduledTaskExecution entity.
// If the ScheduledTaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ScheduledTaskExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[scheduledtaskexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ScheduledTaskExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[scheduledtaskexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ScheduledTaskExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, scheduledtaskexecution.FieldErrorMessage)
}

// SetRetryCount sets the "retry_count" field.
func (m *ScheduledTaskExecutionMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *ScheduledTaskExecutionMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the ScheduledTaskExecution entity.
// If the ScheduledTaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskExecutionMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *ScheduledTaskExecutionMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *ScheduledTaskExecutionMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *ScheduledTaskExecutionMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetArtifacts sets the "artifacts" field.
func (m *ScheduledTaskExecutionMutation) SetArtifacts(value []map[string]interface{}) {
	m.artifacts = &value
	m.appendartifacts = nil
}

// Artifacts returns the value of the "artifacts" field in the mutation.
func (m *ScheduledTaskExecutionMutation) Artifacts() (r []map[string]interface{}, exists bool) {
	v := m.artifacts
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifacts returns the old "artifacts" field's value of the ScheduledTaskExecution entity.
// If the ScheduledTaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskExecutionMutation) OldArtifacts(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifacts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifacts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifacts: %w", err)
	}
	return oldValue.Artifacts, nil
}

// AppendArtifacts adds value to the "artifacts" field.
func (m *ScheduledTaskExecutionMutation) AppendArtifacts(value []map[string]interface{}) {
	m.appendartifacts = append(m.appendartifacts, value...)
}

// AppendedArtifacts returns the list of values that were appended to the "artifacts" field in this mutation.
func (m *ScheduledTaskExecutionMutation) AppendedArtifacts() ([]map[string]interface{}, bool) {
	if len(m.appendartifacts) == 0 {
		return nil, false
	}
	return m.appendartifacts, true
}

// ClearArtifacts clears the value of the "artifacts" field.
func (m *ScheduledTaskExecutionMutation) ClearArtifacts() {
	m.artifacts = nil
	m.appendartifacts = nil
	m.clearedFields[scheduledtaskexecution.FieldArtifacts] = struct{}{}
}

// ArtifactsCleared returns if the "artifacts" field was cleared in this mutation.
func (m *ScheduledTaskExecutionMutation) ArtifactsCleared() bool {
	_, ok := m.clearedFields[scheduledtaskexecution.FieldArtifacts]
	return ok
}

// ResetArtifacts resets all changes to the "artifacts" field.
func (m *ScheduledTaskExecutionMutation) ResetArtifacts() {
	m.artifacts = nil
	m.appendartifacts = nil
	delete(m.clearedFields, scheduledtaskexecution.FieldArtifacts)
}

// SetNotificationsSent sets the "notifications_sent" field.
func (m *ScheduledTaskExecutionMutation) SetNotificationsSent(value map[string]interface{}) {
	m.notifications_sent = &value
}

// NotificationsSent returns the value of the "notifications_sent" field in the mutation.
func (m *ScheduledTaskExecutionMutation) NotificationsSent() (r map[string]interface{}, exists bool) {
	v := m.notifications_sent
	if v == nil {
		return
	}
	return *v, true
}

// OldNotificationsSent returns the old "notifications_sent" field's value of the ScheduledTaskExecution entity.
// If the ScheduledTaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskExecutionMutation) OldNotificationsSent(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotificationsSent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotificationsSent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotificationsSent: %w", err)
	}
	return oldValue.NotificationsSent, nil
}

// ClearNotificationsSent clears the value of the "notifications_sent" field.
func (m *ScheduledTaskExecutionMutation) ClearNotificationsSent() {
	m.notifications_sent = nil
	m.clearedFields[scheduledtaskexecution.FieldNotificationsSent] = struct{}{}
}

// NotificationsSentCleared returns if the "notifications_sent" field was cleared in this mutation.
func (m *ScheduledTaskExecutionMutation) NotificationsSentCleared() bool {
	_, ok := m.clearedFields[scheduledtaskexecution.FieldNotificationsSent]
	return ok
}

// ResetNotificationsSent resets all changes to the "notifications_sent" field.
func (m *ScheduledTaskExecutionMutation) ResetNotificationsSent() {
	m.notifications_sent = nil
	delete(m.clearedFields, scheduledtaskexecution.FieldNotificationsSent)
}

// ClearScheduledTask clears the "scheduled_task" edge to the ScheduledTask entity.
func (m *ScheduledTaskExecutionMutation) ClearScheduledTask() {
	m.clearedscheduled_task = true
	m.clearedFields[scheduledtaskexecution.FieldScheduledTaskID] = struct{}{}
}

// ScheduledTaskCleared reports if the "scheduled_task" edge to the ScheduledTask entity was cleared.
func (m *ScheduledTaskExecutionMutation) ScheduledTaskCleared() bool {
	return m.clearedscheduled_task
}

// ScheduledTaskIDs returns the "scheduled_task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ScheduledTaskID instead. It exists only for internal usage by the builders.
func (m *ScheduledTaskExecutionMutation) ScheduledTaskIDs() (ids []string) {
	if id := m.scheduled_task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetScheduledTask resets all changes to the "scheduled_task" edge.
func (m *ScheduledTaskExecutionMutation) ResetScheduledTask() {
	m.scheduled_task = nil
	m.clearedscheduled_task = false
}

// Where appends a list predicates to the ScheduledTaskExecutionMutation builder.
func (m *ScheduledTaskExecutionMutation) Where(ps ...predicate.ScheduledTaskExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduledTaskExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduledTaskExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScheduledTaskExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduledTaskExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduledTaskExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScheduledTaskExecution).
func (m *ScheduledTaskExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduledTaskExecutionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.scheduled_task != nil {
		fields = append(fields, scheduledtaskexecution.FieldScheduledTaskID)
	}
	if m.status != nil {
		fields = append(fields, scheduledtaskexecution.FieldStatus)
	}
	if m.a2a_task_id != nil {
		fields = append(fields, scheduledtaskexecution.FieldA2aTaskID)
	}
	if m.scheduled_for != nil {
		fields = append(fields, scheduledtaskexecution.FieldScheduledFor)
	}
	if m.started_at != nil {
		fields = append(fields, scheduledtaskexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, scheduledtaskexecution.FieldCompletedAt)
	}
	if m.result_summary != nil {
		fields = append(fields, scheduledtaskexecution.FieldResultSummary)
	}
	if m.error_message != nil {
		fields = append(fields, scheduledtaskexecution.FieldErrorMessage)
	}
	if m.retry_count != nil {
		fields = append(fields, scheduledtaskexecution.FieldRetryCount)
	}
	if m.artifacts != nil {
		fields = append(fields, scheduledtaskexecution.FieldArtifacts)
	}
	if m.notifications_sent != nil {
		fields = append(fields, scheduledtaskexecution.FieldNotificationsSent)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduledTaskExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scheduledtaskexecution.FieldScheduledTaskID:
		return m.ScheduledTaskID()
	case scheduledtaskexecution.FieldStatus:
		return m.Status()
	case scheduledtaskexecution.FieldA2aTaskID:
		return m.A2aTaskID()
	case scheduledtaskexecution.FieldScheduledFor:
		return m.ScheduledFor()
	case scheduledtaskexecution.FieldStartedAt:
		return m.StartedAt()
	case scheduledtaskexecution.FieldCompletedAt:
		return m.CompletedAt()
	case scheduledtaskexecution.FieldResultSummary:
		return m.ResultSummary()
	case scheduledtaskexecution.FieldErrorMessage:
		return m.ErrorMessage()
	case scheduledtaskexecution.FieldRetryCount:
		return m.RetryCount()
	case scheduledtaskexecution.FieldArtifacts:
		return m.Artifacts()
	case scheduledtaskexecution.FieldNotificationsSent:
		return m.NotificationsSent()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduledTaskExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scheduledtaskexecution.FieldScheduledTaskID:
		return m.OldScheduledTaskID(ctx)
	case scheduledtaskexecution.FieldStatus:
		return m.OldStatus(ctx)
	case scheduledtaskexecution.FieldA2aTaskID:
		return m.OldA2aTaskID(ctx)
	case scheduledtaskexecution.FieldScheduledFor:
		return m.OldScheduledFor(ctx)
	case scheduledtaskexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case scheduledtaskexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case scheduledtaskexecution.FieldResultSummary:
		return m.OldResultSummary(ctx)
	case scheduledtaskexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case scheduledtaskexecution.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case scheduledtaskexecution.FieldArtifacts:
		return m.OldArtifacts(ctx)
	case scheduledtaskexecution.FieldNotificationsSent:
		return m.OldNotificationsSent(ctx)
	}
	return nil, fmt.Errorf("unknown ScheduledTaskExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledTaskExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scheduledtaskexecution.FieldScheduledTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledTaskID(v)
		return nil
	case scheduledtaskexecution.FieldStatus:
		v, ok := value.(scheduledtaskexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case scheduledtaskexecution.FieldA2aTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetA2aTaskID(v)
		return nil
	case scheduledtaskexecution.FieldScheduledFor:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledFor(v)
		return nil
	case scheduledtaskexecution.FieldStartedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case scheduledtaskexecution.FieldCompletedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case scheduledtaskexecution.FieldResultSummary:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultSummary(v)
		return nil
	case scheduledtaskexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case scheduledtaskexecution.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case scheduledtaskexecution.FieldArtifacts:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifacts(v)
		return nil
	case scheduledtaskexecution.FieldNotificationsSent:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotificationsSent(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduledTaskExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduledTaskExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addscheduled_for != nil {
		fields = append(fields, scheduledtaskexecution.FieldScheduledFor)
	}
	if m.addstarted_at != nil {
		fields = append(fields, scheduledtaskexecution.FieldStartedAt)
	}
	if m.addcompleted_at != nil {
		fields = append(fields, scheduledtaskexecution.FieldCompletedAt)
	}
	if m.addretry_count != nil {
		fields = append(fields, scheduledtaskexecution.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduledTaskExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scheduledtaskexecution.FieldScheduledFor:
		return m.AddedScheduledFor()
	case scheduledtaskexecution.FieldStartedAt:
		return m.AddedStartedAt()
	case scheduledtaskexecution.FieldCompletedAt:
		return m.AddedCompletedAt()
	case scheduledtaskexecution.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledTaskExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scheduledtaskexecution.FieldScheduledFor:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScheduledFor(v)
		return nil
	case scheduledtaskexecution.FieldStartedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartedAt(v)
		return nil
	case scheduledtaskexecution.FieldCompletedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedAt(v)
		return nil
	case scheduledtaskexecution.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduledTaskExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduledTaskExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scheduledtaskexecution.FieldA2aTaskID) {
		fields = append(fields, scheduledtaskexecution.FieldA2aTaskID)
	}
	if m.FieldCleared(scheduledtaskexecution.FieldStartedAt) {
		fields = append(fields, scheduledtaskexecution.FieldStartedAt)
	}
	if m.FieldCleared(scheduledtaskexecution.FieldCompletedAt) {
		fields = append(fields, scheduledtaskexecution.FieldCompletedAt)
	}
	if m.FieldCleared(scheduledtaskexecution.FieldResultSummary) {
		fields = append(fields, scheduledtaskexecution.FieldResultSummary)
	}
	if m.FieldCleared(scheduledtaskexecution.FieldErrorMessage) {
		fields = append(fields, scheduledtaskexecution.FieldErrorMessage)
	}
	if m.FieldCleared(scheduledtaskexecution.FieldArtifacts) {
		fields = append(fields, scheduledtaskexecution.FieldArtifacts)
	}
	if m.FieldCleared(scheduledtaskexecution.FieldNotificationsSent) {
		fields = append(fields, scheduledtaskexecution.FieldNotificationsSent)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduledTaskExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduledTaskExecutionMutation) ClearField(name string) error {
	switch name {
	case scheduledtaskexecution.FieldA2aTaskID:
		m.ClearA2aTaskID()
		return nil
	case scheduledtaskexecution.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case scheduledtaskexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case scheduledtaskexecution.FieldResultSummary:
		m.ClearResultSummary()
		return nil
	case scheduledtaskexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case scheduledtaskexecution.FieldArtifacts:
		m.ClearArtifacts()
		return nil
	case scheduledtaskexecution.FieldNotificationsSent:
		m.ClearNotificationsSent()
		return nil
	}
	return fmt.Errorf("unknown ScheduledTaskExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduledTaskExecutionMutation) ResetField(name string) error {
	switch name {
	case scheduledtaskexecution.FieldScheduledTaskID:
		m.ResetScheduledTaskID()
		return nil
	case scheduledtaskexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case scheduledtaskexecution.FieldA2aTaskID:
		m.ResetA2aTaskID()
		return nil
	case scheduledtaskexecution.FieldScheduledFor:
		m.ResetScheduledFor()
		return nil
	case scheduledtaskexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case scheduledtaskexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case scheduledtaskexecution.FieldResultSummary:
		m.ResetResultSummary()
		return nil
	case scheduledtaskexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case scheduledtaskexecution.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case scheduledtaskexecution.FieldArtifacts:
		m.ResetArtifacts()
		return nil
	case scheduledtaskexecution.FieldNotificationsSent:
		m.ResetNotificationsSent()
		return nil
	}
	return fmt.Errorf("unknown ScheduledTaskExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduledTaskExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.scheduled_task != nil {
		edges = append(edges, scheduledtaskexecution.EdgeScheduledTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduledTaskExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case scheduledtaskexecution.EdgeScheduledTask:
		if id := m.scheduled_task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduledTaskExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduledTaskExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduledTaskExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedscheduled_task {
		edges = append(edges, scheduledtaskexecution.EdgeScheduledTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduledTaskExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case scheduledtaskexecution.EdgeScheduledTask:
		return m.clearedscheduled_task
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduledTaskExecutionMutation) ClearEdge(name string) error {
	switch name {
	case scheduledtaskexecution.EdgeScheduledTask:
		m.ClearScheduledTask()
		return nil
	}
	return fmt.Errorf("unknown ScheduledTaskExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduledTaskExecutionMutation) ResetEdge(name string) error {
	switch name {
	case scheduledtaskexecution.EdgeScheduledTask:
		m.ResetScheduledTask()
		return nil
	}
	return fmt.Errorf("unknown ScheduledTaskExecution edge %s", name)
}

// SchedulerLockMutation represents an operation that mutates the SchedulerLock nodes in the graph.
type SchedulerLockMutation struct {
	config
	op               Op
	typ              string
	id               *int
	leader_id        *string
	leader_namespace *string
	acquired_at      *int64
	addacquired_at   *int64
	expires_at       *int64
	addexpires_at    *int64
	heartbeat_at     *int64
	addheartbeat_at  *int64
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*SchedulerLock, error)
	predicates       []predicate.SchedulerLock
}

var _ ent.Mutation = (*SchedulerLockMutation)(nil)

// schedulerlockOption allows management of the mutation configuration using functional options.
type schedulerlockOption func(*SchedulerLockMutation)

// newSchedulerLockMutation creates new mutation for the SchedulerLock entity.
func newSchedulerLockMutation(c config, op Op, opts ...schedulerlockOption) *SchedulerLockMutation {
	m := &SchedulerLockMutation{
		config:        c,
		op:            op,
		typ:           TypeSchedulerLock,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSchedulerLockID sets the ID field of the mutation.
func withSchedulerLockID(id int) schedulerlockOption {
	return func(m *SchedulerLockMutation) {
		var (
			err   error
			once  sync.Once
			value *SchedulerLock
		)
		m.oldValue = func(ctx context.Context) (*SchedulerLock, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SchedulerLock.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSchedulerLock sets the old SchedulerLock of the mutation.
func withSchedulerLock(node *SchedulerLock) schedulerlockOption {
	return func(m *SchedulerLockMutation) {
		m.oldValue = func(context.Context) (*SchedulerLock, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SchedulerLockMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SchedulerLockMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SchedulerLock entities.
func (m *SchedulerLockMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SchedulerLockMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SchedulerLockMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SchedulerLock.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLeaderID sets the "leader_id" field.
func (m *SchedulerLockMutation) SetLeaderID(s string) {
	m.leader_id = &s
}

// LeaderID returns the value of the "leader_id" field in the mutation.
func (m *SchedulerLockMutation) LeaderID() (r string, exists bool) {
	v := m.leader_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaderID returns the old "leader_id" field's value of the SchedulerLock entity.
// If the SchedulerLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchedulerLockMutation) OldLeaderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaderID: %w", err)
	}
	return oldValue.LeaderID, nil
}

// ResetLeaderID resets all changes to the "leader_id" field.
func (m *SchedulerLockMutation) ResetLeaderID() {
	m.leader_id = nil
}

// SetLeaderNamespace sets the "leader_namespace" field.
func (m *SchedulerLockMutation) SetLeaderNamespace(s string) {
	m.leader_namespace = &s
}

// LeaderNamespace returns the value of the "leader_namespace" field in the mutation.
func (m *SchedulerLockMutation) LeaderNamespace() (r string, exists bool) {
	v := m.leader_namespace
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaderNamespace returns the old "leader_namespace" field's value of the SchedulerLock entity.
// If the SchedulerLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchedulerLockMutation) OldLeaderNamespace(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaderNamespace is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaderNamespace requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaderNamespace: %w", err)
	}
	return oldValue.LeaderNamespace, nil
}

// ResetLeaderNamespace resets all changes to the "leader_namespace" field.
func (m *SchedulerLockMutation) ResetLeaderNamespace() {
	m.leader_namespace = nil
}

// SetAcquiredAt sets the "acquired_at" field.
func (m *SchedulerLockMutation) SetAcquiredAt(i int64) {
	m.acquired_at = &i
	m.addacquired_at = nil
}

// AcquiredAt returns the value of the "acquired_at" field in the mutation.
func (m *SchedulerLockMutation) AcquiredAt() (r int64, exists bool) {
	v := m.acquired_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcquiredAt returns the old "acquired_at" field's value of the SchedulerLock entity.
// If the SchedulerLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchedulerLockMutation) OldAcquiredAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcquiredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcquiredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcquiredAt: %w", err)
	}
	return oldValue.AcquiredAt, nil
}

// AddAcquiredAt adds i to the "acquired_at" field.
func (m *SchedulerLockMutation) AddAcquiredAt(i int64) {
	if m.addacquired_at != nil {
		*m.addacquired_at += i
	} else {
		m.addacquired_at = &i
	}
}

// AddedAcquiredAt returns the value that was added to the "acquired_at" field in this mutation.
func (m *SchedulerLockMutation) AddedAcquiredAt() (r int64, exists bool) {
	v := m.addacquired_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetAcquiredAt resets all changes to the "acquired_at" field.
func (m *SchedulerLockMutation) ResetAcquiredAt() {
	m.acquired_at = nil
	m.addacquired_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *SchedulerLockMutation) SetExpiresAt(i int64) {
	m.expires_at = &i
	m.addexpires_at = nil
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *SchedulerLockMutation) ExpiresAt() (r int64, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the SchedulerLock entity.
// If the SchedulerLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchedulerLockMutation) OldExpiresAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// AddExpiresAt adds i to the "expires_at" field.
func (m *SchedulerLockMutation) AddExpiresAt(i int64) {
	if m.addexpires_at != nil {
		*m.addexpires_at += i
	} else {
		m.addexpires_at = &i
	}
}

// AddedExpiresAt returns the value that was added to the "expires_at" field in this mutation.
func (m *SchedulerLockMutation) AddedExpiresAt() (r int64, exists bool) {
	v := m.addexpires_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *SchedulerLockMutation) ResetExpiresAt() {
	m.expires_at = nil
	m.addexpires_at = nil
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (m *SchedulerLockMutation) SetHeartbeatAt(i int64) {
	m.heartbeat_at = &i
	m.addheartbeat_at = nil
}

// HeartbeatAt returns the value of the "heartbeat_at" field in the mutation.
func (m *SchedulerLockMutation) HeartbeatAt() (r int64, exists bool) {
	v := m.heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHeartbeatAt returns the old "heartbeat_at" field's value of the SchedulerLock entity.
// If the SchedulerLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchedulerLockMutation) OldHeartbeatAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeartbeatAt: %w", err)
	}
	return oldValue.HeartbeatAt, nil
}

// AddHeartbeatAt adds i to the "heartbeat_at" field.
func (m *SchedulerLockMutation) AddHeartbeatAt(i int64) {
	if m.addheartbeat_at != nil {
		*m.addheartbeat_at += i
	} else {
		m.addheartbeat_at = &i
	}
}

// AddedHeartbeatAt returns the value that was added to the "heartbeat_at" field in this mutation.
func (m *SchedulerLockMutation) AddedHeartbeatAt() (r int64, exists bool) {
	v := m.addheartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetHeartbeatAt resets all changes to the "heartbeat_at" field.
func (m *SchedulerLockMutation) ResetHeartbeatAt() {
	m.heartbeat_at = nil
	m.addheartbeat_at = nil
}

// Where appends a list predicates to the SchedulerLockMutation builder.
func (m *SchedulerLockMutation) Where(ps ...predicate.SchedulerLock) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SchedulerLockMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SchedulerLockMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SchedulerLock, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SchedulerLockMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SchedulerLockMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SchedulerLock).
func (m *SchedulerLockMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SchedulerLockMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.leader_id != nil {
		fields = append(fields, schedulerlock.FieldLeaderID)
	}
	if m.leader_namespace != nil {
		fields = append(fields, schedulerlock.FieldLeaderNamespace)
	}
	if m.acquired_at != nil {
		fields = append(fields, schedulerlock.FieldAcquiredAt)
	}
	if m.expires_at != nil {
		fields = append(fields, schedulerlock.FieldExpiresAt)
	}
	if m.heartbeat_at != nil {
		fields = append(fields, schedulerlock.FieldHeartbeatAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SchedulerLockMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case schedulerlock.FieldLeaderID:
		return m.LeaderID()
	case schedulerlock.FieldLeaderNamespace:
		return m.LeaderNamespace()
	case schedulerlock.FieldAcquiredAt:
		return m.AcquiredAt()
	case schedulerlock.FieldExpiresAt:
		return m.ExpiresAt()
	case schedulerlock.FieldHeartbeatAt:
		return m.HeartbeatAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SchedulerLockMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case schedulerlock.FieldLeaderID:
		return m.OldLeaderID(ctx)
	case schedulerlock.FieldLeaderNamespace:
		return m.OldLeaderNamespace(ctx)
	case schedulerlock.FieldAcquiredAt:
		return m.OldAcquiredAt(ctx)
	case schedulerlock.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case schedulerlock.FieldHeartbeatAt:
		return m.OldHeartbeatAt(ctx)
	}
	return nil, fmt.Errorf("unknown SchedulerLock field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SchedulerLockMutation) SetField(name string, value ent.Value) error {
	switch name {
	case schedulerlock.FieldLeaderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaderID(v)
		return nil
	case schedulerlock.FieldLeaderNamespace:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaderNamespace(v)
		return nil
	case schedulerlock.FieldAcquiredAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcquiredAt(v)
		return nil
	case schedulerlock.FieldExpiresAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case schedulerlock.FieldHeartbeatAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeartbeatAt(v)
		return nil
	}
	return fmt.Errorf("unknown SchedulerLock field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SchedulerLockMutation) AddedFields() []string {
	var fields []string
	if m.addacquired_at != nil {
		fields = append(fields, schedulerlock.FieldAcquiredAt)
	}
	if m.addexpires_at != nil {
		fields = append(fields, schedulerlock.FieldExpiresAt)
	}
	if m.addheartbeat_at != nil {
		fields = append(fields, schedulerlock.FieldHeartbeatAt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SchedulerLockMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case schedulerlock.FieldAcquiredAt:
		return m.AddedAcquiredAt()
	case schedulerlock.FieldExpiresAt:
		return m.AddedExpiresAt()
	case schedulerlock.FieldHeartbeatAt:
		return m.AddedHeartbeatAt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SchedulerLockMutation) AddField(name string, value ent.Value) error {
	switch name {
	case schedulerlock.FieldAcquiredAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAcquiredAt(v)
		return nil
	case schedulerlock.FieldExpiresAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExpiresAt(v)
		return nil
	case schedulerlock.FieldHeartbeatAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeartbeatAt(v)
		return nil
	}
	return fmt.Errorf("unknown SchedulerLock numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SchedulerLockMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SchedulerLockMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SchedulerLockMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SchedulerLock nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SchedulerLockMutation) ResetField(name string) error {
	switch name {
	case schedulerlock.FieldLeaderID:
		m.ResetLeaderID()
		return nil
	case schedulerlock.FieldLeaderNamespace:
		m.ResetLeaderNamespace()
		return nil
	case schedulerlock.FieldAcquiredAt:
		m.ResetAcquiredAt()
		return nil
	case schedulerlock.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case schedulerlock.FieldHeartbeatAt:
		m.ResetHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown SchedulerLock field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SchedulerLockMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SchedulerLockMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SchedulerLockMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SchedulerLockMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SchedulerLockMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SchedulerLockMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SchedulerLockMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SchedulerLock unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SchedulerLockMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SchedulerLock edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	user_id               *string
	name                  *string
	agent_id              *string
	project_id            *string
	created_time          *int64
	addcreated_time       *int64
	updated_time          *int64
	addupdated_time       *int64
	gateway_type          *string
	external_context_id   *string
	is_compression_branch *bool
	compression_metadata  *map[string]interface{}
	deleted_at            *int64
	adddeleted_at         *int64
	clearedFields         map[string]struct{}
	chat_tasks            map[string]struct{}
	removedchat_tasks     map[string]struct{}
	clearedchat_tasks     bool
	sse_events            map[int]struct{}
	removedsse_events     map[int]struct{}
	clearedsse_events     bool
	done                  bool
	oldValue              func(context.Context) (*Session, error)
	predicates            []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id string) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetName sets the "name" field.
func (m *SessionMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SessionMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *SessionMutation) ClearName() {
	m.name = nil
	m.clearedFields[session.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *SessionMutation) NameCleared() bool {
	_, ok := m.clearedFields[session.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *SessionMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, session.FieldName)
}

// SetAgentID sets the "agent_id" field.
func (m *SessionMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *SessionMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *SessionMutation) ClearAgentID() {
	m.agent_id = nil
	m.clearedFields[session.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *SessionMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[session.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *SessionMutation) ResetAgentID() {
	m.agent_id = nil
	delete(m.clearedFields, session.FieldAgentID)
}

// SetProjectID sets the "project_id" field.
func (m *SessionMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *SessionMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldProjectID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ClearProjectID clears the value of the "project_id" field.
func (m *SessionMutation) ClearProjectID() {
	m.project_id = nil
	m.clearedFields[session.FieldProjectID] = struct{}{}
}

// ProjectIDCleared returns if the "project_id" field was cleared in this mutation.
func (m *SessionMutation) ProjectIDCleared() bool {
	_, ok := m.clearedFields[session.FieldProjectID]
	return ok
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *SessionMutation) ResetProjectID() {
	m.project_id = nil
	delete(m.clearedFields, session.FieldProjectID)
}

// SetCreatedTime sets the "created_time" field.
func (m *SessionMutation) SetCreatedTime(i int64) {
	m.created_time = &i
	m.addcreated_time = nil
}

// CreatedTime returns the value of the "created_time" field in the mutation.
func (m *SessionMutation) CreatedTime() (r int64, exists bool) {
	v := m.created_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedTime returns the old "created_time" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedTime(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedTime: %w", err)
	}
	return oldValue.CreatedTime, nil
}

// AddCreatedTime adds i to the "created_time" field.
func (m *SessionMutation) AddCreatedTime(i int64) {
	if m.addcreated_time != nil {
		*m.addcreated_time += i
	} else {
		m.addcreated_time = &i
	}
}

// AddedCreatedTime returns the value that was added to the "created_time" field in this mutation.
func (m *SessionMutation) AddedCreatedTime() (r int64, exists bool) {
	v := m.addcreated_time
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedTime resets all changes to the "created_time" field.
func (m *SessionMutation) ResetCreatedTime() {
	m.created_time = nil
	m.addcreated_time = nil
}

// SetUpdatedTime sets the "updated_time" field.
func (m *SessionMutation) SetUpdatedTime(i int64) {
	m.updated_time = &i
	m.addupdated_time = nil
}

// UpdatedTime returns the value of the "updated_time" field in the mutation.
func (m *SessionMutation) UpdatedTime() (r int64, exists bool) {
	v := m.updated_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedTime returns the old "updated_time" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUpdatedTime(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedTime: %w", err)
	}
	return oldValue.UpdatedTime, nil
}

// AddUpdatedTime adds i to the "updated_time" field.
func (m *SessionMutation) AddUpdatedTime(i int64) {
	if m.addupdated_time != nil {
		*m.addupdated_time += i
	} else {
		m.addupdated_time = &i
	}
}

// AddedUpdatedTime returns the value that was added to the "updated_time" field in this mutation.
func (m *SessionMutation) AddedUpdatedTime() (r int64, exists bool) {
	v := m.addupdated_time
	if v == nil {
		return
	}
	return *v, true
}

// ResetUpdatedTime resets all changes to the "updated_time" field.
func (m *SessionMutation) ResetUpdatedTime() {
	m.updated_time = nil
	m.addupdated_time = nil
}

// SetGatewayType sets the "gateway_type" field.
func (m *SessionMutation) SetGatewayType(s string) {
	m.gateway_type = &s
}

// GatewayType returns the value of the "gateway_type" field in the mutation.
func (m *SessionMutation) GatewayType() (r string, exists bool) {
	v := m.gateway_type
	if v == nil {
		return
	}
	return *v, true
}

// OldGatewayType returns the old "gateway_type" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldGatewayType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGatewayType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGatewayType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGatewayType: %w", err)
	}
	return oldValue.GatewayType, nil
}

// ClearGatewayType clears the value of the "gateway_type" field.
func (m *SessionMutation) ClearGatewayType() {
	m.gateway_type = nil
	m.clearedFields[session.FieldGatewayType] = struct{}{}
}

// GatewayTypeCleared returns if the "gateway_type" field was cleared in this mutation.
func (m *SessionMutation) GatewayTypeCleared() bool {
	_, ok := m.clearedFields[session.FieldGatewayType]
	return ok
}

// ResetGatewayType resets all changes to the "gateway_type" field.
func (m *SessionMutation) ResetGatewayType() {
	m.gateway_type = nil
	delete(m.clearedFields, session.FieldGatewayType)
}

// SetExternalContextID sets the "external_context_id" field.
func (m *SessionMutation) SetExternalContextID(s string) {
	m.external_context_id = &s
}

// ExternalContextID returns the value of the "external_context_id" field in the mutation.
func (m *SessionMutation) ExternalContextID() (r string, exists bool) {
	v := m.external_context_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalContextID returns the old "external_context_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldExternalContextID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalContextID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalContextID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalContextID: %w", err)
	}
	return oldValue.ExternalContextID, nil
}

// ClearExternalContextID clears the value of the "external_context_id" field.
func (m *SessionMutation) ClearExternalContextID() {
	m.external_context_id = nil
	m.clearedFields[session.FieldExternalContextID] = struct{}{}
}

// ExternalContextIDCleared returns if the "external_context_id" field was cleared in this mutation.
func (m *SessionMutation) ExternalContextIDCleared() bool {
	_, ok := m.clearedFields[session.FieldExternalContextID]
	return ok
}

// ResetExternalContextID resets all changes to the "external_context_id" field.
func (m *SessionMutation) ResetExternalContextID() {
	m.external_context_id = nil
	delete(m.clearedFields, session.FieldExternalContextID)
}

// SetIsCompressionBranch sets the "is_compression_branch" field.
func (m *SessionMutation) SetIsCompressionBranch(b bool) {
	m.is_compression_branch = &b
}

// IsCompressionBranch returns the value of the "is_compression_branch" field in the mutation.
func (m *SessionMutation) IsCompressionBranch() (r bool, exists bool) {
	v := m.is_compression_branch
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCompressionBranch returns the old "is_compression_branch" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldIsCompressionBranch(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCompressionBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCompressionBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCompressionBranch: %w", err)
	}
	return oldValue.IsCompressionBranch, nil
}

// ResetIsCompressionBranch resets all changes to the "is_compression_branch" field.
func (m *SessionMutation) ResetIsCompressionBranch() {
	m.is_compression_branch = nil
}

// SetCompressionMetadata sets the "compression_metadata" field.
func (m *SessionMutation) SetCompressionMetadata(value map[string]interface{}) {
	m.compression_metadata = &value
}

// CompressionMetadata returns the value of the "compression_metadata" field in the mutation.
func (m *SessionMutation) CompressionMetadata() (r map[string]interface{}, exists bool) {
	v := m.compression_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldCompressionMetadata returns the old "compression_metadata" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCompressionMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompressionMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompressionMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompressionMetadata: %w", err)
	}
	return oldValue.CompressionMetadata, nil
}

// ClearCompressionMetadata clears the value of the "compression_metadata" field.
func (m *SessionMutation) ClearCompressionMetadata() {
	m.compression_metadata = nil
	m.clearedFields[session.FieldCompressionMetadata] = struct{}{}
}

// CompressionMetadataCleared returns if the "compression_metadata" field was cleared in this mutation.
func (m *SessionMutation) CompressionMetadataCleared() bool {
	_, ok := m.clearedFields[session.FieldCompressionMetadata]
	return ok
}

// ResetCompressionMetadata resets all changes to the "compression_metadata" field.
func (m *SessionMutation) ResetCompressionMetadata() {
	m.compression_metadata = nil
	delete(m.clearedFields, session.FieldCompressionMetadata)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *SessionMutation) SetDeletedAt(i int64) {
	m.deleted_at = &i
	m.adddeleted_at = nil
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *SessionMutation) DeletedAt() (r int64, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldDeletedAt(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// AddDeletedAt adds i to the "deleted_at" field.
func (m *SessionMutation) AddDeletedAt(i int64) {
	if m.adddeleted_at != nil {
		*m.adddeleted_at += i
	} else {
		m.adddeleted_at = &i
	}
}

// AddedDeletedAt returns the value that was added to the "deleted_at" field in this mutation.
func (m *SessionMutation) AddedDeletedAt() (r int64, exists bool) {
	v := m.adddeleted_at
	if v == nil {
		return
	}
	return *v, true
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *SessionMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.adddeleted_at = nil
	m.clearedFields[session.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *SessionMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *SessionMutation) ResetDeletedAt() {
	m.deleted_at = nil
	m.adddeleted_at = nil
	delete(m.clearedFields, session.FieldDeletedAt)
}

// AddChatTaskIDs adds the "chat_tasks" edge to the ChatTask entity by ids.
func (m *SessionMutation) AddChatTaskIDs(ids ...string) {
	if m.chat_tasks == nil {
		m.chat_tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.chat_tasks[ids[i]] = struct{}{}
	}
}

// ClearChatTasks clears the "chat_tasks" edge to the ChatTask entity.
func (m *SessionMutation) ClearChatTasks() {
	m.clearedchat_tasks = true
}

// ChatTasksCleared reports if the "chat_tasks" edge to the ChatTask entity was cleared.
func (m *SessionMutation) ChatTasksCleared() bool {
	return m.clearedchat_tasks
}

// RemoveChatTaskIDs removes the "chat_tasks" edge to the ChatTask entity by IDs.
func (m *SessionMutation) RemoveChatTaskIDs(ids ...string) {
	if m.removedchat_tasks == nil {
		m.removedchat_tasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.chat_tasks, ids[i])
		m.removedchat_tasks[ids[i]] = struct{}{}
	}
}

// RemovedChatTasks returns the removed IDs of the "chat_tasks" edge to the ChatTask entity.
func (m *SessionMutation) RemovedChatTasksIDs() (ids []string) {
	for id := range m.removedchat_tasks {
		ids = append(ids, id)
	}
	return
}

// ChatTasksIDs returns the "chat_tasks" edge IDs in the mutation.
func (m *SessionMutation) ChatTasksIDs() (ids []string) {
	for id := range m.chat_tasks {
		ids = append(ids, id)
	}
	return
}

// ResetChatTasks resets all changes to the "chat_tasks" edge.
func (m *SessionMutation) ResetChatTasks() {
	m.chat_tasks = nil
	m.clearedchat_tasks = false
	m.removedchat_tasks = nil
}

// AddSseEventIDs adds the "sse_events" edge to the SSEEvent entity by ids.
func (m *SessionMutation) AddSseEventIDs(ids ...int) {
	if m.sse_events == nil {
		m.sse_events = make(map[int]struct{})
	}
	for i := range ids {
		m.sse_events[ids[i]] = struct{}{}
	}
}

// ClearSseEvents clears the "sse_events" edge to the SSEEvent entity.
func (m *SessionMutation) ClearSseEvents() {
	m.clearedsse_events = true
}

// SseEventsCleared reports if the "sse_events" edge to the SSEEvent entity was cleared.
func (m *SessionMutation) SseEventsCleared() bool {
	return m.clearedsse_events
}

// RemoveSseEventIDs removes the "sse_events" edge to the SSEEvent entity by IDs.
func (m *SessionMutation) RemoveSseEventIDs(ids ...int) {
	if m.removedsse_events == nil {
		m.removedsse_events = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.sse_events, ids[i])
		m.removedsse_events[ids[i]] = struct{}{}
	}
}

// RemovedSseEvents returns the removed IDs of the "sse_events" edge to the SSEEvent entity.
func (m *SessionMutation) RemovedSseEventsIDs() (ids []int) {
	for id := range m.removedsse_events {
		ids = append(ids, id)
	}
	return
}

// SseEventsIDs returns the "sse_events" edge IDs in the mutation.
func (m *SessionMutation) SseEventsIDs() (ids []int) {
	for id := range m.sse_events {
		ids = append(ids, id)
	}
	return
}

// ResetSseEvents resets all changes to the "sse_events" edge.
func (m *SessionMutation) ResetSseEvents() {
	m.sse_events = nil
	m.clearedsse_events = false
	m.removedsse_events = nil
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.user_id != nil {
		fields = append(fields, session.FieldUserID)
	}
	if m.name != nil {
		fields = append(fields, session.FieldName)
	}
	if m.agent_id != nil {
		fields = append(fields, session.FieldAgentID)
	}
	if m.project_id != nil {
		fields = append(fields, session.FieldProjectID)
	}
	if m.created_time != nil {
		fields = append(fields, session.FieldCreatedTime)
	}
	if m.updated_time != nil {
		fields = append(fields, session.FieldUpdatedTime)
	}
	if m.gateway_type != nil {
		fields = append(fields, session.FieldGatewayType)
	}
	if m.external_context_id != nil {
		fields = append(fields, session.FieldExternalContextID)
	}
	if m.is_compression_branch != nil {
		fields = append(fields, session.FieldIsCompressionBranch)
	}
	if m.compression_metadata != nil {
		fields = append(fields, session.FieldCompressionMetadata)
	}
	if m.deleted_at != nil {
		fields = append(fields, session.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldUserID:
		return m.UserID()
	case session.FieldName:
		return m.Name()
	case session.FieldAgentID:
		return m.AgentID()
	case session.FieldProjectID:
		return m.ProjectID()
	case session.FieldCreatedTime:
		return m.CreatedTime()
	case session.FieldUpdatedTime:
		return m.UpdatedTime()
	case session.FieldGatewayType:
		return m.GatewayType()
	case session.FieldExternalContextID:
		return m.ExternalContextID()
	case session.FieldIsCompressionBranch:
		return m.IsCompressionBranch()
	case session.FieldCompressionMetadata:
		return m.CompressionMetadata()
	case session.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldUserID:
		return m.OldUserID(ctx)
	case session.FieldName:
		return m.OldName(ctx)
	case session.FieldAgentID:
		return m.OldAgentID(ctx)
	case session.FieldProjectID:
		return m.OldProjectID(ctx)
	case session.FieldCreatedTime:
		return m.OldCreatedTime(ctx)
	case session.FieldUpdatedTime:
		return m.OldUpdatedTime(ctx)
	case session.FieldGatewayType:
		return m.OldGatewayType(ctx)
	case session.FieldExternalContextID:
		return m.OldExternalContextID(ctx)
	case session.FieldIsCompressionBranch:
		return m.OldIsCompressionBranch(ctx)
	case session.FieldCompressionMetadata:
		return m.OldCompressionMetadata(ctx)
	case session.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case session.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case session.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case session.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case session.FieldCreatedTime:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedTime(v)
		return nil
	case session.FieldUpdatedTime:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedTime(v)
		return nil
	case session.FieldGatewayType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGatewayType(v)
		return nil
	case session.FieldExternalContextID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalContextID(v)
		return nil
	case session.FieldIsCompressionBranch:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCompressionBranch(v)
		return nil
	case session.FieldCompressionMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompressionMetadata(v)
		return nil
	case session.FieldDeletedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	var fields []string
	if m.addcreated_time != nil {
		fields = append(fields, session.FieldCreatedTime)
	}
	if m.addupdated_time != nil {
		fields = append(fields, session.FieldUpdatedTime)
	}
	if m.adddeleted_at != nil {
		fields = append(fields, session.FieldDeletedAt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case session.FieldCreatedTime:
		return m.AddedCreatedTime()
	case session.FieldUpdatedTime:
		return m.AddedUpdatedTime()
	case session.FieldDeletedAt:
		return m.AddedDeletedAt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case session.FieldCreatedTime:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedTime(v)
		return nil
	case session.FieldUpdatedTime:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpdatedTime(v)
		return nil
	case session.FieldDeletedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldName) {
		fields = append(fields, session.FieldName)
	}
	if m.FieldCleared(session.FieldAgentID) {
		fields = append(fields, session.FieldAgentID)
	}
	if m.FieldCleared(session.FieldProjectID) {
		fields = append(fields, session.FieldProjectID)
	}
	if m.FieldCleared(session.FieldGatewayType) {
		fields = append(fields, session.FieldGatewayType)
	}
	if m.FieldCleared(session.FieldExternalContextID) {
		fields = append(fields, session.FieldExternalContextID)
	}
	if m.FieldCleared(session.FieldCompressionMetadata) {
		fields = append(fields, session.FieldCompressionMetadata)
	}
	if m.FieldCleared(session.FieldDeletedAt) {
		fields = append(fields, session.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldName:
		m.ClearName()
		return nil
	case session.FieldAgentID:
		m.ClearAgentID()
		return nil
	case session.FieldProjectID:
		m.ClearProjectID()
		return nil
	case session.FieldGatewayType:
		m.ClearGatewayType()
		return nil
	case session.FieldExternalContextID:
		m.ClearExternalContextID()
		return nil
	case session.FieldCompressionMetadata:
		m.ClearCompressionMetadata()
		return nil
	case session.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldUserID:
		m.ResetUserID()
		return nil
	case session.FieldName:
		m.ResetName()
		return nil
	case session.FieldAgentID:
		m.ResetAgentID()
		return nil
	case session.FieldProjectID:
		m.ResetProjectID()
		return nil
	case session.FieldCreatedTime:
		m.ResetCreatedTime()
		return nil
	case session.FieldUpdatedTime:
		m.ResetUpdatedTime()
		return nil
	case session.FieldGatewayType:
		m.ResetGatewayType()
		return nil
	case session.FieldExternalContextID:
		m.ResetExternalContextID()
		return nil
	case session.FieldIsCompressionBranch:
		m.ResetIsCompressionBranch()
		return nil
	case session.FieldCompressionMetadata:
		m.ResetCompressionMetadata()
		return nil
	case session.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.chat_tasks != nil {
		edges = append(edges, session.EdgeChatTasks)
	}
	if m.sse_events != nil {
		edges = append(edges, session.EdgeSseEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeChatTasks:
		ids := make([]ent.Value, 0, len(m.chat_tasks))
		for id := range m.chat_tasks {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeSseEvents:
		ids := make([]ent.Value, 0, len(m.sse_events))
		for id := range m.sse_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedchat_tasks != nil {
		edges = append(edges, session.EdgeChatTasks)
	}
	if m.removedsse_events != nil {
		edges = append(edges, session.EdgeSseEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeChatTasks:
		ids := make([]ent.Value, 0, len(m.removedchat_tasks))
		for id := range m.removedchat_tasks {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeSseEvents:
		ids := make([]ent.Value, 0, len(m.removedsse_events))
		for id := range m.removedsse_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedchat_tasks {
		edges = append(edges, session.EdgeChatTasks)
	}
	if m.clearedsse_events {
		edges = append(edges, session.EdgeSseEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	switch name {
	case session.EdgeChatTasks:
		return m.clearedchat_tasks
	case session.EdgeSseEvents:
		return m.clearedsse_events
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	switch name {
	case session.EdgeChatTasks:
		m.ResetChatTasks()
		return nil
	case session.EdgeSseEvents:
		m.ResetSseEvents()
		return nil
	}
	return fmt.Errorf("unknown Session edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                           Op
	typ                          string
	id                           *string
	user_id                      *string
	start_time                   *int64
	addstart_time                *int64
	end_time                     *int64
	addend_time                  *int64
	status                       *string
	initial_request_text         *string
	agent_name                   *string
	background_execution_enabled *bool
	max_execution_time_ms        *int64
	addmax_execution_time_ms     *int64
	last_activity_time           *int64
	addlast_activity_time        *int64
	has_buffered_events          *bool
	clearedFields                map[string]struct{}
	events                       map[string]struct{}
	removedevents                map[string]struct{}
	clearedevents                bool
	done                         bool
	oldValue                     func(context.Context) (*Task, error)
	predicates                   []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *TaskMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TaskMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TaskMutation) ResetUserID() {
	m.user_id = nil
}

// SetStartTime sets the "start_time" field.
func (m *TaskMutation) SetStartTime(i int64) {
	m.start_time = &i
	m.addstart_time = nil
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *TaskMutation) StartTime() (r int64, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartTime(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// AddStartTime adds i to the "start_time" field.
func (m *TaskMutation) AddStartTime(i int64) {
	if m.addstart_time != nil {
		*m.addstart_time += i
	} else {
		m.addstart_time = &i
	}
}

// AddedStartTime returns the value that was added to the "start_time" field in this mutation.
func (m *TaskMutation) AddedStartTime() (r int64, exists bool) {
	v := m.addstart_time
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *TaskMutation) ResetStartTime() {
	m.start_time = nil
	m.addstart_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *TaskMutation) SetEndTime(i int64) {
	m.end_time = &i
	m.addend_time = nil
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *TaskMutation) EndTime() (r int64, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldEndTime(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// AddEndTime adds i to the "end_time" field.
func (m *TaskMutation) AddEndTime(i int64) {
	if m.addend_time != nil {
		*m.addend_time += i
	} else {
		m.addend_time = &i
	}
}

// AddedEndTime returns the value that was added to the "end_time" field in this mutation.
func (m *TaskMutation) AddedEndTime() (r int64, exists bool) {
	v := m.addend_time
	if v == nil {
		return
	}
	return *v, true
}

// ClearEndTime clears the value of the "end_time" field.
func (m *TaskMutation) ClearEndTime() {
	m.end_time = nil
	m.addend_time = nil
	m.clearedFields[task.FieldEndTime] = struct{}{}
}

// EndTimeCleared returns if the "end_time" field was cleared in this mutation.
func (m *TaskMutation) EndTimeCleared() bool {
	_, ok := m.clearedFields[task.FieldEndTime]
	return ok
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *TaskMutation) ResetEndTime() {
	m.end_time = nil
	m.addend_time = nil
	delete(m.clearedFields, task.FieldEndTime)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *TaskMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[task.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *TaskMutation) StatusCleared() bool {
	_, ok := m.clearedFields[task.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, task.FieldStatus)
}

// SetInitialRequestText sets the "initial_request_text" field.
func (m *TaskMutation) SetInitialRequestText(s string) {
	m.initial_request_text = &s
}

// InitialRequestText returns the value of the "initial_request_text" field in the mutation.
func (m *TaskMutation) InitialRequestText() (r string, exists bool) {
	v := m.initial_request_text
	if v == nil {
		return
	}
	return *v, true
}

// OldInitialRequestText returns the old "initial_request_text" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldInitialRequestText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitialRequestText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitialRequestText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitialRequestText: %w", err)
	}
	return oldValue.InitialRequestText, nil
}

// ClearInitialRequestText clears the value of the "initial_request_text" field.
func (m *TaskMutation) ClearInitialRequestText() {
	m.initial_request_text = nil
	m.clearedFields[task.FieldInitialRequestText] = struct{}{}
}

// InitialRequestTextCleared returns if the "initial_request_text" field was cleared in this mutation.
func (m *TaskMutation) InitialRequestTextCleared() bool {
	_, ok := m.clearedFields[task.FieldInitialRequestText]
	return ok
}

// ResetInitialRequestText resets all changes to the "initial_request_text" field.
func (m *TaskMutation) ResetInitialRequestText() {
	m.initial_request_text = nil
	delete(m.clearedFields, task.FieldInitialRequestText)
}

// SetAgentName sets the "agent_name" field.
func (m *TaskMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *TaskMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAgentName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ClearAgentName clears the value of the "agent_name" field.
func (m *TaskMutation) ClearAgentName() {
	m.agent_name = nil
	m.clearedFields[task.FieldAgentName] = struct{}{}
}

// AgentNameCleared returns if the "agent_name" field was cleared in this mutation.
func (m *TaskMutation) AgentNameCleared() bool {
	_, ok := m.clearedFields[task.FieldAgentName]
	return ok
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *TaskMutation) ResetAgentName() {
	m.agent_name = nil
	delete(m.clearedFields, task.FieldAgentName)
}

// SetBackgroundExecutionEnabled sets the "background_execution_enabled" field.
func (m *TaskMutation) SetBackgroundExecutionEnabled(b bool) {
	m.background_execution_enabled = &b
}

// BackgroundExecutionEnabled returns the value of the "background_execution_enabled" field in the mutation.
func (m *TaskMutation) BackgroundExecutionEnabled() (r bool, exists bool) {
	v := m.background_execution_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldBackgroundExecutionEnabled returns the old "background_execution_enabled" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldBackgroundExecutionEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBackgroundExecutionEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBackgroundExecutionEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBackgroundExecutionEnabled: %w", err)
	}
	return oldValue.BackgroundExecutionEnabled, nil
}

// ResetBackgroundExecutionEnabled resets all changes to the "background_execution_enabled" field.
func (m *TaskMutation) ResetBackgroundExecutionEnabled() {
	m.background_execution_enabled = nil
}

// SetMaxExecutionTimeMs sets the "max_execution_time_ms" field.
func (m *TaskMutation) SetMaxExecutionTimeMs(i int64) {
	m.max_execution_time_ms = &i
	m.addmax_execution_time_ms = nil
}

// MaxExecutionTimeMs returns the value of the "max_execution_time_ms" field in the mutation.
func (m *TaskMutation) MaxExecutionTimeMs() (r int64, exists bool) {
	v := m.max_execution_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxExecutionTimeMs returns the old "max_execution_time_ms" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldMaxExecutionTimeMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxExecutionTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxExecutionTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxExecutionTimeMs: %w", err)
	}
	return oldValue.MaxExecutionTimeMs, nil
}

// AddMaxExecutionTimeMs adds i to the "max_execution_time_ms" field.
func (m *TaskMutation) AddMaxExecutionTimeMs(i int64) {
	if m.addmax_execution_time_ms != nil {
		*m.addmax_execution_time_ms += i
	} else {
		m.addmax_execution_time_ms = &i
	}
}

// AddedMaxExecutionTimeMs returns the value that was added to the "max_execution_time_ms" field in this mutation.
func (m *TaskMutation) AddedMaxExecutionTimeMs() (r int64, exists bool) {
	v := m.addmax_execution_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaxExecutionTimeMs clears the value of the "max_execution_time_ms" field.
func (m *TaskMutation) ClearMaxExecutionTimeMs() {
	m.max_execution_time_ms = nil
	m.addmax_execution_time_ms = nil
	m.clearedFields[task.FieldMaxExecutionTimeMs] = struct{}{}
}

// MaxExecutionTimeMsCleared returns if the "max_execution_time_ms" field was cleared in this mutation.
func (m *TaskMutation) MaxExecutionTimeMsCleared() bool {
	_, ok := m.clearedFields[task.FieldMaxExecutionTimeMs]
	return ok
}

// ResetMaxExecutionTimeMs resets all changes to the "max_execution_time_ms" field.
func (m *TaskMutation) ResetMaxExecutionTimeMs() {
	m.max_execution_time_ms = nil
	m.addmax_execution_time_ms = nil
	delete(m.clearedFields, task.FieldMaxExecutionTimeMs)
}

// SetLastActivityTime sets the "last_activity_time" field.
func (m *TaskMutation) SetLastActivityTime(i int64) {
	m.last_activity_time = &i
	m.addlast_activity_time = nil
}

// LastActivityTime returns the value of the "last_activity_time" field in the mutation.
func (m *TaskMutation) LastActivityTime() (r int64, exists bool) {
	v := m.last_activity_time
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityTime returns the old "last_activity_time" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLastActivityTime(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityTime: %w", err)
	}
	return oldValue.LastActivityTime, nil
}

// AddLastActivityTime adds i to the "last_activity_time" field.
func (m *TaskMutation) AddLastActivityTime(i int64) {
	if m.addlast_activity_time != nil {
		*m.addlast_activity_time += i
	} else {
		m.addlast_activity_time = &i
	}
}

// AddedLastActivityTime returns the value that was added to the "last_activity_time" field in this mutation.
func (m *TaskMutation) AddedLastActivityTime() (r int64, exists bool) {
	v := m.addlast_activity_time
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastActivityTime clears the value of the "last_activity_time" field.
func (m *TaskMutation) ClearLastActivityTime() {
	m.last_activity_time = nil
	m.addlast_activity_time = nil
	m.clearedFields[task.FieldLastActivityTime] = struct{}{}
}

// LastActivityTimeCleared returns if the "last_activity_time" field was cleared in this mutation.
func (m *TaskMutation) LastActivityTimeCleared() bool {
	_, ok := m.clearedFields[task.FieldLastActivityTime]
	return ok
}

// ResetLastActivityTime resets all changes to the "last_activity_time" field.
func (m *TaskMutation) ResetLastActivityTime() {
	m.last_activity_time = nil
	m.addlast_activity_time = nil
	delete(m.clearedFields, task.FieldLastActivityTime)
}

// SetHasBufferedEvents sets the "has_buffered_events" field.
func (m *TaskMutation) SetHasBufferedEvents(b bool) {
	m.has_buffered_events = &b
}

// HasBufferedEvents returns the value of the "has_buffered_events" field in the mutation.
func (m *TaskMutation) HasBufferedEvents() (r bool, exists bool) {
	v := m.has_buffered_events
	if v == nil {
		return
	}
	return *v, true
}

// OldHasBufferedEvents returns the old "has_buffered_events" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldHasBufferedEvents(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasBufferedEvents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasBufferedEvents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasBufferedEvents: %w", err)
	}
	return oldValue.HasBufferedEvents, nil
}

// ResetHasBufferedEvents resets all changes to the "has_buffered_events" field.
func (m *TaskMutation) ResetHasBufferedEvents() {
	m.has_buffered_events = nil
}

// AddEventIDs adds the "events" edge to the TaskEvent entity by ids.
func (m *TaskMutation) AddEventIDs(ids ...string) {
	if m.events == nil {
		m.events = make(map[string]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the TaskEvent entity.
func (m *TaskMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the TaskEvent entity was cleared.
func (m *TaskMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the TaskEvent entity by IDs.
func (m *TaskMutation) RemoveEventIDs(ids ...string) {
	if m.removedevents == nil {
		m.removedevents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the TaskEvent entity.
func (m *TaskMutation) RemovedEventsIDs() (ids []string) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *TaskMutation) EventsIDs() (ids []string) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *TaskMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user_id != nil {
		fields = append(fields, task.FieldUserID)
	}
	if m.start_time != nil {
		fields = append(fields, task.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, task.FieldEndTime)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.initial_request_text != nil {
		fields = append(fields, task.FieldInitialRequestText)
	}
	if m.agent_name != nil {
		fields = append(fields, task.FieldAgentName)
	}
	if m.background_execution_enabled != nil {
		fields = append(fields, task.FieldBackgroundExecutionEnabled)
	}
	if m.max_execution_time_ms != nil {
		fields = append(fields, task.FieldMaxExecutionTimeMs)
	}
	if m.last_activity_time != nil {
		fields = append(fields, task.FieldLastActivityTime)
	}
	if m.has_buffered_events != nil {
		fields = append(fields, task.FieldHasBufferedEvents)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldUserID:
		return m.UserID()
	case task.FieldStartTime:
		return m.StartTime()
	case task.FieldEndTime:
		return m.EndTime()
	case task.FieldStatus:
		return m.Status()
	case task.FieldInitialRequestText:
		return m.InitialRequestText()
	case task.FieldAgentName:
		return m.AgentName()
	case task.FieldBackgroundExecutionEnabled:
		return m.BackgroundExecutionEnabled()
	case task.FieldMaxExecutionTimeMs:
		return m.MaxExecutionTimeMs()
	case task.FieldLastActivityTime:
		return m.LastActivityTime()
	case task.FieldHasBufferedEvents:
		return m.HasBufferedEvents()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldUserID:
		return m.OldUserID(ctx)
	case task.FieldStartTime:
		return m.OldStartTime(ctx)
	case task.FieldEndTime:
		return m.OldEndTime(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldInitialRequestText:
		return m.OldInitialRequestText(ctx)
	case task.FieldAgentName:
		return m.OldAgentName(ctx)
	case task.FieldBackgroundExecutionEnabled:
		return m.OldBackgroundExecutionEnabled(ctx)
	case task.FieldMaxExecutionTimeMs:
		return m.OldMaxExecutionTimeMs(ctx)
	case task.FieldLastActivityTime:
		return m.OldLastActivityTime(ctx)
	case task.FieldHasBufferedEvents:
		return m.OldHasBufferedEvents(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case task.FieldStartTime:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case task.FieldEndTime:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldInitialRequestText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitialRequestText(v)
		return nil
	case task.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case task.FieldBackgroundExecutionEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBackgroundExecutionEnabled(v)
		return nil
	case task.FieldMaxExecutionTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxExecutionTimeMs(v)
		return nil
	case task.FieldLastActivityTime:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityTime(v)
		return nil
	case task.FieldHasBufferedEvents:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasBufferedEvents(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addstart_time != nil {
		fields = append(fields, task.FieldStartTime)
	}
	if m.addend_time != nil {
		fields = append(fields, task.FieldEndTime)
	}
	if m.addmax_execution_time_ms != nil {
		fields = append(fields, task.FieldMaxExecutionTimeMs)
	}
	if m.addlast_activity_time != nil {
		fields = append(fields, task.FieldLastActivityTime)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldStartTime:
		return m.AddedStartTime()
	case task.FieldEndTime:
		return m.AddedEndTime()
	case task.FieldMaxExecutionTimeMs:
		return m.AddedMaxExecutionTimeMs()
	case task.FieldLastActivityTime:
		return m.AddedLastActivityTime()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldStartTime:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartTime(v)
		return nil
	case task.FieldEndTime:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndTime(v)
		return nil
	case task.FieldMaxExecutionTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxExecutionTimeMs(v)
		return nil
	case task.FieldLastActivityTime:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastActivityTime(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldEndTime) {
		fields = append(fields, task.FieldEndTime)
	}
	if m.FieldCleared(task.FieldStatus) {
		fields = append(fields, task.FieldStatus)
	}
	if m.FieldCleared(task.FieldInitialRequestText) {
		fields = append(fields, task.FieldInitialRequestText)
	}
	if m.FieldCleared(task.FieldAgentName) {
		fields = append(fields, task.FieldAgentName)
	}
	if m.FieldCleared(task.FieldMaxExecutionTimeMs) {
		fields = append(fields, task.FieldMaxExecutionTimeMs)
	}
	if m.FieldCleared(task.FieldLastActivityTime) {
		fields = append(fields, task.FieldLastActivityTime)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldEndTime:
		m.ClearEndTime()
		return nil
	case task.FieldStatus:
		m.ClearStatus()
		return nil
	case task.FieldInitialRequestText:
		m.ClearInitialRequestText()
		return nil
	case task.FieldAgentName:
		m.ClearAgentName()
		return nil
	case task.FieldMaxExecutionTimeMs:
		m.ClearMaxExecutionTimeMs()
		return nil
	case task.FieldLastActivityTime:
		m.ClearLastActivityTime()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldUserID:
		m.ResetUserID()
		return nil
	case task.FieldStartTime:
		m.ResetStartTime()
		return nil
	case task.FieldEndTime:
		m.ResetEndTime()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldInitialRequestText:
		m.ResetInitialRequestText()
		return nil
	case task.FieldAgentName:
		m.ResetAgentName()
		return nil
	case task.FieldBackgroundExecutionEnabled:
		m.ResetBackgroundExecutionEnabled()
		return nil
	case task.FieldMaxExecutionTimeMs:
		m.ResetMaxExecutionTimeMs()
		return nil
	case task.FieldLastActivityTime:
		m.ResetLastActivityTime()
		return nil
	case task.FieldHasBufferedEvents:
		m.ResetHasBufferedEvents()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.events != nil {
		edges = append(edges, task.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedevents != nil {
		edges = append(edges, task.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedevents {
		edges = append(edges, task.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TaskEventMutation represents an operation that mutates the TaskEvent nodes in the graph.
type TaskEventMutation struct {
	config
	op              Op
	typ             string
	id              *string
	user_id         *string
	created_time    *int64
	addcreated_time *int64
	topic           *string
	direction       *taskevent.Direction
	payload         *map[string]interface{}
	clearedFields   map[string]struct{}
	task            *string
	clearedtask     bool
	done            bool
	oldValue        func(context.Context) (*TaskEvent, error)
	predicates      []predicate.TaskEvent
}

var _ ent.Mutation = (*TaskEventMutation)(nil)

// taskeventOption allows management of the mutation configuration using functional options.
type taskeventOption func(*TaskEventMutation)

// newTaskEventMutation creates new mutation for the TaskEvent entity.
func newTaskEventMutation(c config, op Op, opts ...taskeventOption) *TaskEventMutation {
	m := &TaskEventMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskEventID sets the ID field of the mutation.
func withTaskEventID(id string) taskeventOption {
	return func(m *TaskEventMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskEvent
		)
		m.oldValue = func(ctx context.Context) (*TaskEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskEvent sets the old TaskEvent of the mutation.
func withTaskEvent(node *TaskEvent) taskeventOption {
	return func(m *TaskEventMutation) {
		m.oldValue = func(context.Context) (*TaskEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskEvent entities.
func (m *TaskEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *TaskEventMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TaskEventMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TaskEventMutation) ResetTaskID() {
	m.task = nil
}

// SetUserID sets the "user_id" field.
func (m *TaskEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TaskEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *TaskEventMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[taskevent.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *TaskEventMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[taskevent.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TaskEventMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, taskevent.FieldUserID)
}

// SetCreatedTime sets the "created_time" field.
func (m *TaskEventMutation) SetCreatedTime(i int64) {
	m.created_time = &i
	m.addcreated_time = nil
}

// CreatedTime returns the value of the "created_time" field in the mutation.
func (m *TaskEventMutation) CreatedTime() (r int64, exists bool) {
	v := m.created_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedTime returns the old "created_time" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldCreatedTime(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedTime: %w", err)
	}
	return oldValue.CreatedTime, nil
}

// AddCreatedTime adds i to the "created_time" field.
func (m *TaskEventMutation) AddCreatedTime(i int64) {
	if m.addcreated_time != nil {
		*m.addcreated_time += i
	} else {
		m.addcreated_time = &i
	}
}

// AddedCreatedTime returns the value that was added to the "created_time" field in this mutation.
func (m *TaskEventMutation) AddedCreatedTime() (r int64, exists bool) {
	v := m.addcreated_time
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedTime resets all changes to the "created_time" field.
func (m *TaskEventMutation) ResetCreatedTime() {
	m.created_time = nil
	m.addcreated_time = nil
}

// SetTopic sets the "topic" field.
func (m *TaskEventMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *TaskEventMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *TaskEventMutation) ResetTopic() {
	m.topic = nil
}

// SetDirection sets the "direction" field.
func (m *TaskEventMutation) SetDirection(t taskevent.Direction) {
	m.direction = &t
}

// Direction returns the value of the "direction" field in the mutation.
func (m *TaskEventMutation) Direction() (r taskevent.Direction, exists bool) {
	v := m.direction
	if v == nil {
		return
	}
	return *v, true
}

// OldDirection returns the old "direction" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldDirection(ctx context.Context) (v taskevent.Direction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirection: %w", err)
	}
	return oldValue.Direction, nil
}

// ResetDirection resets all changes to the "direction" field.
func (m *TaskEventMutation) ResetDirection() {
	m.direction = nil
}

// SetPayload sets the "payload" field.
func (m *TaskEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *TaskEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *TaskEventMutation) ResetPayload() {
	m.payload = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *TaskEventMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[taskevent.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *TaskEventMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *TaskEventMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *TaskEventMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the TaskEventMutation builder.
func (m *TaskEventMutation) Where(ps ...predicate.TaskEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskEvent).
func (m *TaskEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.task != nil {
		fields = append(fields, taskevent.FieldTaskID)
	}
	if m.user_id != nil {
		fields = append(fields, taskevent.FieldUserID)
	}
	if m.created_time != nil {
		fields = append(fields, taskevent.FieldCreatedTime)
	}
	if m.topic != nil {
		fields = append(fields, taskevent.FieldTopic)
	}
	if m.direction != nil {
		fields = append(fields, taskevent.FieldDirection)
	}
	if m.payload != nil {
		fields = append(fields, taskevent.FieldPayload)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskevent.FieldTaskID:
		return m.TaskID()
	case taskevent.FieldUserID:
		return m.UserID()
	case taskevent.FieldCreatedTime:
		return m.CreatedTime()
	case taskevent.FieldTopic:
		return m.Topic()
	case taskevent.FieldDirection:
		return m.Direction()
	case taskevent.FieldPayload:
		return m.Payload()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskevent.FieldTaskID:
		return m.OldTaskID(ctx)
	case taskevent.FieldUserID:
		return m.OldUserID(ctx)
	case taskevent.FieldCreatedTime:
		return m.OldCreatedTime(ctx)
	case taskevent.FieldTopic:
		return m.OldTopic(ctx)
	case taskevent.FieldDirection:
		return m.OldDirection(ctx)
	case taskevent.FieldPayload:
		return m.OldPayload(ctx)
	}
	return nil, fmt.Errorf("unknown TaskEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskevent.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case taskevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case taskevent.FieldCreatedTime:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedTime(v)
		return nil
	case taskevent.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case taskevent.FieldDirection:
		v, ok := value.(taskevent.Direction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirection(v)
		return nil
	case taskevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	}
	return fmt.Errorf("unknown TaskEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskEventMutation) AddedFields() []string {
	var fields []string
	if m.addcreated_time != nil {
		fields = append(fields, taskevent.FieldCreatedTime)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taskevent.FieldCreatedTime:
		return m.AddedCreatedTime()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taskevent.FieldCreatedTime:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedTime(v)
		return nil
	}
	return fmt.Errorf("unknown TaskEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taskevent.FieldUserID) {
		fields = append(fields, taskevent.FieldUserID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskEventMutation) ClearField(name string) error {
	switch name {
	case taskevent.FieldUserID:
		m.ClearUserID()
		return nil
	}
	return fmt.Errorf("unknown TaskEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskEventMutation) ResetField(name string) error {
	switch name {
	case taskevent.FieldTaskID:
		m.ResetTaskID()
		return nil
	case taskevent.FieldUserID:
		m.ResetUserID()
		return nil
	case taskevent.FieldCreatedTime:
		m.ResetCreatedTime()
		return nil
	case taskevent.FieldTopic:
		m.ResetTopic()
		return nil
	case taskevent.FieldDirection:
		m.ResetDirection()
		return nil
	case taskevent.FieldPayload:
		m.ResetPayload()
		return nil
	}
	return fmt.Errorf("unknown TaskEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, taskevent.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case taskevent.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, taskevent.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskEventMutation) EdgeCleared(name string) bool {
	switch name {
	case taskevent.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskEventMutation) ClearEdge(name string) error {
	switch name {
	case taskevent.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown TaskEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskEventMutation) ResetEdge(name string) error {
	switch name {
	case taskevent.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown TaskEvent edge %s", name)
}

// TokenTransactionMutation represents an operation that mutates the TokenTransaction nodes in the graph.
type TokenTransactionMutation struct {
	config
	op               Op
	typ              string
	id               *int
	user_id          *string
	task_id          *string
	transaction_type *tokentransaction.TransactionType
	model            *string
	raw_tokens       *int64
	addraw_tokens    *int64
	token_cost       *int64
	addtoken_cost    *int64
	rate             *float64
	addrate          *float64
	source           *string
	tool_name        *string
	context          *string
	created_at       *int64
	addcreated_at    *int64
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*TokenTransaction, error)
	predicates       []predicate.TokenTransaction
}

var _ ent.Mutation = (*TokenTransactionMutation)(nil)

// tokentransactionOption allows management of the mutation configuration using functional options.
type tokentransactionOption func(*TokenTransactionMutation)

// newTokenTransactionMutation creates new mutation for the TokenTransaction entity.
func newTokenTransactionMutation(c config, op Op, opts ...tokentransactionOption) *TokenTransactionMutation {
	m := &TokenTransactionMutation{
		config:        c,
		op:            op,
		typ:           TypeTokenTransaction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTokenTransactionID sets the ID field of the mutation.
func withTokenTransactionID(id int) tokentransactionOption {
	return func(m *TokenTransactionMutation) {
		var (
			err   error
			once  sync.Once
			value *TokenTransaction
		)
		m.oldValue = func(ctx context.Context) (*TokenTransaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TokenTransaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTokenTransaction sets the old TokenTransaction of the mutation.
func withTokenTransaction(node *TokenTransaction) tokentransactionOption {
	return func(m *TokenTransactionMutation) {
		m.oldValue = func(context.Context) (*TokenTransaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TokenTransactionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TokenTransactionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TokenTransaction entities.
func (m *TokenTransactionMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TokenTransactionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TokenTransactionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TokenTransaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *TokenTransactionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TokenTransactionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the TokenTransaction entity.
// If the TokenTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenTransactionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TokenTransactionMutation) ResetUserID() {
	m.user_id = nil
}

// SetTaskID sets the "task_id" field.
func (m *TokenTransactionMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TokenTransactionMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TokenTransaction entity.
// If the TokenTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenTransactionMutation) OldTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *TokenTransactionMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[tokentransaction.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *TokenTransactionMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[tokentransaction.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TokenTransactionMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, tokentransaction.FieldTaskID)
}

// SetTransactionType sets the "transaction_type" field.
func (m *TokenTransactionMutation) SetTransactionType(tt tokentransaction.TransactionType) {
	m.transaction_type = &tt
}

// TransactionType returns the value of the "transaction_type" field in the mutation.
func (m *TokenTransactionMutation) TransactionType() (r tokentransaction.TransactionType, exists bool) {
	v := m.transaction_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTransactionType returns the old "transaction_type" field's value of the TokenTransaction entity.
// If the TokenTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenTransactionMutation) OldTransactionType(ctx context.Context) (v tokentransaction.TransactionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransactionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransactionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransactionType: %w", err)
	}
	return oldValue.TransactionType, nil
}

// ResetTransactionType resets all changes to the "transaction_type" field.
func (m *TokenTransactionMutation) ResetTransactionType() {
	m.transaction_type = nil
}

// SetModel sets the "model" field.
func (m *TokenTransactionMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *TokenTransactionMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the TokenTransaction entity.
// If the TokenTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenTransactionMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *TokenTransactionMutation) ResetModel() {
	m.model = nil
}

// SetRawTokens sets the "raw_tokens" field.
func (m *TokenTransactionMutation) SetRawTokens(i int64) {
	m.raw_tokens = &i
	m.addraw_tokens = nil
}

// RawTokens returns the value of the "raw_tokens" field in the mutation.
func (m *TokenTransactionMutation) RawTokens() (r int64, exists bool) {
	v := m.raw_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldRawTokens returns the old "raw_tokens" field's value of the TokenTransaction entity.
// If the TokenTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenTransactionMutation) OldRawTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawTokens: %w", err)
	}
	return oldValue.RawTokens, nil
}

// AddRawTokens adds i to the "raw_tokens" field.
func (m *TokenTransactionMutation) AddRawTokens(i int64) {
	if m.addraw_tokens != nil {
		*m.addraw_tokens += i
	} else {
		m.addraw_tokens = &i
	}
}

// AddedRawTokens returns the value that was added to the "raw_tokens" field in this mutation.
func (m *TokenTransactionMutation) AddedRawTokens() (r int64, exists bool) {
	v := m.addraw_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetRawTokens resets all changes to the "raw_tokens" field.
func (m *TokenTransactionMutation) ResetRawTokens() {
	m.raw_tokens = nil
	m.addraw_tokens = nil
}

// SetTokenCost sets the "token_cost" field.
func (m *TokenTransactionMutation) SetTokenCost(i int64) {
	m.token_cost = &i
	m.addtoken_cost = nil
}

// TokenCost returns the value of the "token_cost" field in the mutation.
func (m *TokenTransactionMutation) TokenCost() (r int64, exists bool) {
	v := m.token_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenCost returns the old "token_cost" field's value of the TokenTransaction entity.
// If the TokenTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenTransactionMutation) OldTokenCost(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenCost: %w", err)
	}
	return oldValue.TokenCost, nil
}

// AddTokenCost adds i to the "token_cost" field.
func (m *TokenTransactionMutation) AddTokenCost(i int64) {
	if m.addtoken_cost != nil {
		*m.addtoken_cost += i
	} else {
		m.addtoken_cost = &i
	}
}

// AddedTokenCost returns the value that was added to the "token_cost" field in this mutation.
func (m *TokenTransactionMutation) AddedTokenCost() (r int64, exists bool) {
	v := m.addtoken_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokenCost resets all changes to the "token_cost" field.
func (m *TokenTransactionMutation) ResetTokenCost() {
	m.token_cost = nil
	m.addtoken_cost = nil
}

// SetRate sets the "rate" field.
func (m *TokenTransactionMutation) SetRate(f float64) {
	m.rate = &f
	m.addrate = nil
}

// Rate returns the value of the "rate" field in the mutation.
func (m *TokenTransactionMutation) Rate() (r float64, exists bool) {
	v := m.rate
	if v == nil {
		return
	}
	return *v, true
}

// OldRate returns the old "rate" field's value of the TokenTransaction entity.
// If the TokenTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenTransactionMutation) OldRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRate: %w", err)
	}
	return oldValue.Rate, nil
}

// AddRate adds f to the "rate" field.
func (m *TokenTransactionMutation) AddRate(f float64) {
	if m.addrate != nil {
		*m.addrate += f
	} else {
		m.addrate = &f
	}
}

// AddedRate returns the value that was added to the "rate" field in this mutation.
func (m *TokenTransactionMutation) AddedRate() (r float64, exists bool) {
	v := m.addrate
	if v == nil {
		return
	}
	return *v, true
}

// ResetRate resets all changes to the "rate" field.
func (m *TokenTransactionMutation) ResetRate() {
	m.rate = nil
	m.addrate = nil
}

// SetSource sets the "source" field.
func (m *TokenTransactionMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *TokenTransactionMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the TokenTransaction entity.
// If the TokenTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenTransactionMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *TokenTransactionMutation) ResetSource() {
	m.source = nil
}

// SetToolName sets the "tool_name" field.
func (m *TokenTransactionMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *TokenTransactionMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the TokenTransaction entity.
// If the TokenTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenTransactionMutation) OldToolName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ClearToolName clears the value of the "tool_name" field.
func (m *TokenTransactionMutation) ClearToolName() {
	m.tool_name = nil
	m.clearedFields[tokentransaction.FieldToolName] = struct{}{}
}

// ToolNameCleared returns if the "tool_name" field was cleared in this mutation.
func (m *TokenTransactionMutation) ToolNameCleared() bool {
	_, ok := m.clearedFields[tokentransaction.FieldToolName]
	return ok
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *TokenTransactionMutation) ResetToolName() {
	m.tool_name = nil
	delete(m.clearedFields, tokentransaction.FieldToolName)
}

// SetContext sets the "context" field.
func (m *TokenTransactionMutation) SetContext(s string) {
	m.context = &s
}

// Context returns the value of the "context" field in the mutation.
func (m *TokenTransactionMutation) Context() (r string, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the TokenTransaction entity.
// If the TokenTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenTransactionMutation) OldContext(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *TokenTransactionMutation) ClearContext() {
	m.context = nil
	m.clearedFields[tokentransaction.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *TokenTransactionMutation) ContextCleared() bool {
	_, ok := m.clearedFields[tokentransaction.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *TokenTransactionMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, tokentransaction.FieldContext)
}

// SetCreatedAt sets the "created_at" field.
func (m *TokenTransactionMutation) SetCreatedAt(i int64) {
	m.created_at = &i
	m.addcreated_at = nil
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TokenTransactionMutation) CreatedAt() (r int64, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TokenTransaction entity.
// If the TokenTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenTransactionMutation) OldCreatedAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// AddCreatedAt adds i to the "created_at" field.
func (m *TokenTransactionMutation) AddCreatedAt(i int64) {
	if m.addcreated_at != nil {
		*m.addcreated_at += i
	} else {
		m.addcreated_at = &i
	}
}

// AddedCreatedAt returns the value that was added to the "created_at" field in this mutation.
func (m *TokenTransactionMutation) AddedCreatedAt() (r int64, exists bool) {
	v := m.addcreated_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TokenTransactionMutation) ResetCreatedAt() {
	m.created_at = nil
	m.addcreated_at = nil
}

// Where appends a list predicates to the TokenTransactionMutation builder.
func (m *TokenTransactionMutation) Where(ps ...predicate.TokenTransaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TokenTransactionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TokenTransactionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TokenTransaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TokenTransactionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TokenTransactionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TokenTransaction).
func (m *TokenTransactionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TokenTransactionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.user_id != nil {
		fields = append(fields, tokentransaction.FieldUserID)
	}
	if m.task_id != nil {
		fields = append(fields, tokentransaction.FieldTaskID)
	}
	if m.transaction_type != nil {
		fields = append(fields, tokentransaction.FieldTransactionType)
	}
	if m.model != nil {
		fields = append(fields, tokentransaction.FieldModel)
	}
	if m.raw_tokens != nil {
		fields = append(fields, tokentransaction.FieldRawTokens)
	}
	if m.token_cost != nil {
		fields = append(fields, tokentransaction.FieldTokenCost)
	}
	if m.rate != nil {
		fields = append(fields, tokentransaction.FieldRate)
	}
	if m.source != nil {
		fields = append(fields, tokentransaction.FieldSource)
	}
	if m.tool_name != nil {
		fields = append(fields, tokentransaction.FieldToolName)
	}
	if m.context != nil {
		fields = append(fields, tokentransaction.FieldContext)
	}
	if m.created_at != nil {
		fields = append(fields, tokentransaction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TokenTransactionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tokentransaction.FieldUserID:
		return m.UserID()
	case tokentransaction.FieldTaskID:
		return m.TaskID()
	case tokentransaction.FieldTransactionType:
		return m.TransactionType()
	case tokentransaction.FieldModel:
		return m.Model()
	case tokentransaction.FieldRawTokens:
		return m.RawTokens()
	case tokentransaction.FieldTokenCost:
		return m.TokenCost()
	case tokentransaction.FieldRate:
		return m.Rate()
	case tokentransaction.FieldSource:
		return m.Source()
	case tokentransaction.FieldToolName:
		return m.ToolName()
	case tokentransaction.FieldContext:
		return m.Context()
	case tokentransaction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TokenTransactionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tokentransaction.FieldUserID:
		return m.OldUserID(ctx)
	case tokentransaction.FieldTaskID:
		return m.OldTaskID(ctx)
	case tokentransaction.FieldTransactionType:
		return m.OldTransactionType(ctx)
	case tokentransaction.FieldModel:
		return m.OldModel(ctx)
	case tokentransaction.FieldRawTokens:
		return m.OldRawTokens(ctx)
	case tokentransaction.FieldTokenCost:
		return m.OldTokenCost(ctx)
	case tokentransaction.FieldRate:
		return m.OldRate(ctx)
	case tokentransaction.FieldSource:
		return m.OldSource(ctx)
	case tokentransaction.FieldToolName:
		return m.OldToolName(ctx)
	case tokentransaction.FieldContext:
		return m.OldContext(ctx)
	case tokentransaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TokenTransaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TokenTransactionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tokentransaction.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case tokentransaction.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case tokentransaction.FieldTransactionType:
		v, ok := value.(tokentransaction.TransactionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransactionType(v)
		return nil
	case tokentransaction.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case tokentransaction.FieldRawTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawTokens(v)
		return nil
	case tokentransaction.FieldTokenCost:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenCost(v)
		return nil
	case tokentransaction.FieldRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRate(v)
		return nil
	case tokentransaction.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case tokentransaction.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case tokentransaction.FieldContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case tokentransaction.FieldCreatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TokenTransaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TokenTransactionMutation) AddedFields() []string {
	var fields []string
	if m.addraw_tokens != nil {
		fields = append(fields, tokentransaction.FieldRawTokens)
	}
	if m.addtoken_cost != nil {
		fields = append(fields, tokentransaction.FieldTokenCost)
	}
	if m.addrate != nil {
		fields = append(fields, tokentransaction.FieldRate)
	}
	if m.addcreated_at != nil {
		fields = append(fields, tokentransaction.FieldCreatedAt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TokenTransactionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tokentransaction.FieldRawTokens:
		return m.AddedRawTokens()
	case tokentransaction.FieldTokenCost:
		return m.AddedTokenCost()
	case tokentransaction.FieldRate:
		return m.AddedRate()
	case tokentransaction.FieldCreatedAt:
		return m.AddedCreatedAt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TokenTransactionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tokentransaction.FieldRawTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRawTokens(v)
		return nil
	case tokentransaction.FieldTokenCost:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokenCost(v)
		return nil
	case tokentransaction.FieldRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRate(v)
		return nil
	case tokentransaction.FieldCreatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TokenTransaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TokenTransactionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tokentransaction.FieldTaskID) {
		fields = append(fields, tokentransaction.FieldTaskID)
	}
	if m.FieldCleared(tokentransaction.FieldToolName) {
		fields = append(fields, tokentransaction.FieldToolName)
	}
	if m.FieldCleared(tokentransaction.FieldContext) {
		fields = append(fields, tokentransaction.FieldContext)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TokenTransactionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TokenTransactionMutation) ClearField(name string) error {
	switch name {
	case tokentransaction.FieldTaskID:
		m.ClearTaskID()
		return nil
	case tokentransaction.FieldToolName:
		m.ClearToolName()
		return nil
	case tokentransaction.FieldContext:
		m.ClearContext()
		return nil
	}
	return fmt.Errorf("unknown TokenTransaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TokenTransactionMutation) ResetField(name string) error {
	switch name {
	case tokentransaction.FieldUserID:
		m.ResetUserID()
		return nil
	case tokentransaction.FieldTaskID:
		m.ResetTaskID()
		return nil
	case tokentransaction.FieldTransactionType:
		m.ResetTransactionType()
		return nil
	case tokentransaction.FieldModel:
		m.ResetModel()
		return nil
	case tokentransaction.FieldRawTokens:
		m.ResetRawTokens()
		return nil
	case tokentransaction.FieldTokenCost:
		m.ResetTokenCost()
		return nil
	case tokentransaction.FieldRate:
		m.ResetRate()
		return nil
	case tokentransaction.FieldSource:
		m.ResetSource()
		return nil
	case tokentransaction.FieldToolName:
		m.ResetToolName()
		return nil
	case tokentransaction.FieldContext:
		m.ResetContext()
		return nil
	case tokentransaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TokenTransaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TokenTransactionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TokenTransactionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TokenTransactionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TokenTransactionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TokenTransactionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TokenTransactionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TokenTransactionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TokenTransaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TokenTransactionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TokenTransaction edge %s", name)
}
