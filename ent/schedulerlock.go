// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/solacecommunity/agent-mesh-gateway/ent/schedulerlock"
)

// SchedulerLock is the model entity for the SchedulerLock schema.
type SchedulerLock struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LeaderID holds the value of the "leader_id" field.
	LeaderID string `json:"leader_id,omitempty"`
	// LeaderNamespace holds the value of the "leader_namespace" field.
	LeaderNamespace string `json:"leader_namespace,omitempty"`
	// AcquiredAt holds the value of the "acquired_at" field.
	AcquiredAt int64 `json:"acquired_at,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt int64 `json:"expires_at,omitempty"`
	// HeartbeatAt holds the value of the "heartbeat_at" field.
	HeartbeatAt  int64 `json:"heartbeat_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SchedulerLock) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case schedulerlock.FieldID, schedulerlock.FieldAcquiredAt, schedulerlock.FieldExpiresAt, schedulerlock.FieldHeartbeatAt:
			values[i] = new(sql.NullInt64)
		case schedulerlock.FieldLeaderID, schedulerlock.FieldLeaderNamespace:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SchedulerLock fields.
func (_m *SchedulerLock) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case schedulerlock.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case schedulerlock.FieldLeaderID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field leader_id", values[i])
			} else if value.Valid {
				_m.LeaderID = value.String
			}
		case schedulerlock.FieldLeaderNamespace:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field leader_namespace", values[i])
			} else if value.Valid {
				_m.LeaderNamespace = value.String
			}
		case schedulerlock.FieldAcquiredAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field acquired_at", values[i])
			} else if value.Valid {
				_m.AcquiredAt = value.Int64
			}
		case schedulerlock.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Int64
			}
		case schedulerlock.FieldHeartbeatAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field heartbeat_at", values[i])
			} else if value.Valid {
				_m.HeartbeatAt = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SchedulerLock.
// This includes values selected through modifiers, order, etc.
func (_m *SchedulerLock) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SchedulerLock.
// Note that you need to call SchedulerLock.Unwrap() before calling this method if this SchedulerLock
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SchedulerLock) Update() *SchedulerLockUpdateOne {
	return NewSchedulerLockClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SchedulerLock entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SchedulerLock) Unwrap() *SchedulerLock {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SchedulerLock is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SchedulerLock) String() string {
	var builder strings.Builder
	builder.WriteString("SchedulerLock(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("leader_id=")
	builder.WriteString(_m.LeaderID)
	builder.WriteString(", ")
	builder.WriteString("leader_namespace=")
	builder.WriteString(_m.LeaderNamespace)
	builder.WriteString(", ")
	builder.WriteString("acquired_at=")
	builder.WriteString(fmt.Sprintf("%v", _m.AcquiredAt))
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExpiresAt))
	builder.WriteString(", ")
	builder.WriteString("heartbeat_at=")
	builder.WriteString(fmt.Sprintf("%v", _m.HeartbeatAt))
	builder.WriteByte(')')
	return builder.String()
}

// SchedulerLocks is a parsable slice of SchedulerLock.
type SchedulerLocks []*SchedulerLock
