// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatTask is the predicate function for chattask builders.
type ChatTask func(*sql.Selector)

// DocConversionCache is the predicate function for docconversioncache builders.
type DocConversionCache func(*sql.Selector)

// Feedback is the predicate function for feedback builders.
type Feedback func(*sql.Selector)

// MonthlyUsage is the predicate function for monthlyusage builders.
type MonthlyUsage func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// SSEEvent is the predicate function for sseevent builders.
type SSEEvent func(*sql.Selector)

// ScheduledTask is the predicate function for scheduledtask builders.
type ScheduledTask func(*sql.Selector)

// ScheduledTaskExecution is the predicate function for scheduledtaskexecution builders.
type ScheduledTaskExecution func(*sql.Selector)

// SchedulerLock is the predicate function for schedulerlock builders.
type SchedulerLock func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TaskEvent is the predicate function for taskevent builders.
type TaskEvent func(*sql.Selector)

// TokenTransaction is the predicate function for tokentransaction builders.
type TokenTransaction func(*sql.Selector)
