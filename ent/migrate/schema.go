// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatTasksColumns holds the columns for the "chat_tasks" table.
	ChatTasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "user_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "message_bubbles", Type: field.TypeString, Size: 2147483647},
		{Name: "task_metadata", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_time", Type: field.TypeInt64},
		{Name: "updated_time", Type: field.TypeInt64, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// ChatTasksTable holds the schema information for the "chat_tasks" table.
	ChatTasksTable = &schema.Table{
		Name:       "chat_tasks",
		Columns:    ChatTasksColumns,
		PrimaryKey: []*schema.Column{ChatTasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_tasks_sessions_chat_tasks",
				Columns:    []*schema.Column{ChatTasksColumns[7]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chattask_session_id_created_time",
				Unique:  false,
				Columns: []*schema.Column{ChatTasksColumns[7], ChatTasksColumns[5]},
			},
			{
				Name:    "chattask_user_id",
				Unique:  false,
				Columns: []*schema.Column{ChatTasksColumns[1]},
			},
		},
	}
	// DocConversionCachesColumns holds the columns for the "doc_conversion_caches" table.
	DocConversionCachesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "content_hash", Type: field.TypeString},
		{Name: "file_extension", Type: field.TypeString},
		{Name: "original_size_bytes", Type: field.TypeInt64},
		{Name: "pdf_data", Type: field.TypeBytes},
		{Name: "pdf_size_bytes", Type: field.TypeInt64},
		{Name: "created_at", Type: field.TypeInt64},
		{Name: "last_accessed_at", Type: field.TypeInt64},
		{Name: "access_count", Type: field.TypeInt64, Default: 0},
	}
	// DocConversionCachesTable holds the schema information for the "doc_conversion_caches" table.
	DocConversionCachesTable = &schema.Table{
		Name:       "doc_conversion_caches",
		Columns:    DocConversionCachesColumns,
		PrimaryKey: []*schema.Column{DocConversionCachesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "docconversioncache_content_hash_file_extension",
				Unique:  true,
				Columns: []*schema.Column{DocConversionCachesColumns[1], DocConversionCachesColumns[2]},
			},
			{
				Name:    "docconversioncache_last_accessed_at",
				Unique:  false,
				Columns: []*schema.Column{DocConversionCachesColumns[7]},
			},
		},
	}
	// FeedbacksColumns holds the columns for the "feedbacks" table.
	FeedbacksColumns = []*schema.Column{
		{Name: "feedback_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "rating", Type: field.TypeEnum, Enums: []string{"up", "down"}},
		{Name: "comment", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_time", Type: field.TypeInt64},
	}
	// FeedbacksTable holds the schema information for the "feedbacks" table.
	FeedbacksTable = &schema.Table{
		Name:       "feedbacks",
		Columns:    FeedbacksColumns,
		PrimaryKey: []*schema.Column{FeedbacksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "feedback_user_id_task_id_rating",
				Unique:  true,
				Columns: []*schema.Column{FeedbacksColumns[3], FeedbacksColumns[2], FeedbacksColumns[4]},
			},
			{
				Name:    "feedback_created_time",
				Unique:  false,
				Columns: []*schema.Column{FeedbacksColumns[6]},
			},
		},
	}
	// MonthlyUsagesColumns holds the columns for the "monthly_usages" table.
	MonthlyUsagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "month", Type: field.TypeString},
		{Name: "total_usage", Type: field.TypeInt64, Default: 0},
		{Name: "prompt_usage", Type: field.TypeInt64, Default: 0},
		{Name: "completion_usage", Type: field.TypeInt64, Default: 0},
		{Name: "cached_usage", Type: field.TypeInt64, Default: 0},
		{Name: "usage_by_model", Type: field.TypeJSON, Nullable: true},
		{Name: "usage_by_source", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeInt64},
		{Name: "updated_at", Type: field.TypeInt64},
	}
	// MonthlyUsagesTable holds the schema information for the "monthly_usages" table.
	MonthlyUsagesTable = &schema.Table{
		Name:       "monthly_usages",
		Columns:    MonthlyUsagesColumns,
		PrimaryKey: []*schema.Column{MonthlyUsagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "monthlyusage_user_id_month",
				Unique:  true,
				Columns: []*schema.Column{MonthlyUsagesColumns[1], MonthlyUsagesColumns[2]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "system_prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "default_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeInt64},
		{Name: "updated_at", Type: field.TypeInt64, Nullable: true},
		{Name: "deleted_at", Type: field.TypeInt64, Nullable: true},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_user_id",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[2]},
			},
			{
				Name:    "project_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[8]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// SseEventsColumns holds the columns for the "sse_events" table.
	SseEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "event_sequence", Type: field.TypeInt64},
		{Name: "event_type", Type: field.TypeString},
		{Name: "event_data", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeInt64},
		{Name: "consumed", Type: field.TypeBool, Default: false},
		{Name: "consumed_at", Type: field.TypeInt64, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// SseEventsTable holds the schema information for the "sse_events" table.
	SseEventsTable = &schema.Table{
		Name:       "sse_events",
		Columns:    SseEventsColumns,
		PrimaryKey: []*schema.Column{SseEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sse_events_sessions_sse_events",
				Columns:    []*schema.Column{SseEventsColumns[9]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sseevent_task_id_event_sequence",
				Unique:  true,
				Columns: []*schema.Column{SseEventsColumns[1], SseEventsColumns[3]},
			},
			{
				Name:    "sseevent_session_id_consumed",
				Unique:  false,
				Columns: []*schema.Column{SseEventsColumns[9], SseEventsColumns[7]},
			},
			{
				Name:    "sseevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{SseEventsColumns[6]},
			},
		},
	}
	// ScheduledTasksColumns holds the columns for the "scheduled_tasks" table.
	ScheduledTasksColumns = []*schema.Column{
		{Name: "scheduled_task_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "namespace", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "created_by", Type: field.TypeString},
		{Name: "schedule_type", Type: field.TypeEnum, Enums: []string{"cron", "interval", "one_time"}},
		{Name: "schedule_expression", Type: field.TypeString},
		{Name: "timezone", Type: field.TypeString, Default: "UTC"},
		{Name: "target_agent_name", Type: field.TypeString},
		{Name: "task_message", Type: field.TypeJSON},
		{Name: "task_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "max_retries", Type: field.TypeInt, Default: 0},
		{Name: "retry_delay_seconds", Type: field.TypeInt, Default: 60},
		{Name: "timeout_seconds", Type: field.TypeInt, Default: 300},
		{Name: "notification_config", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeInt64},
		{Name: "updated_at", Type: field.TypeInt64},
		{Name: "next_run_at", Type: field.TypeInt64, Nullable: true},
		{Name: "last_run_at", Type: field.TypeInt64, Nullable: true},
		{Name: "deleted_at", Type: field.TypeInt64, Nullable: true},
	}
	// ScheduledTasksTable holds the schema information for the "scheduled_tasks" table.
	ScheduledTasksTable = &schema.Table{
		Name:       "scheduled_tasks",
		Columns:    ScheduledTasksColumns,
		PrimaryKey: []*schema.Column{ScheduledTasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scheduledtask_namespace_enabled",
				Unique:  false,
				Columns: []*schema.Column{ScheduledTasksColumns[2], ScheduledTasksColumns[11]},
			},
			{
				Name:    "scheduledtask_user_id",
				Unique:  false,
				Columns: []*schema.Column{ScheduledTasksColumns[3]},
			},
			{
				Name:    "scheduledtask_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{ScheduledTasksColumns[20]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// ScheduledTaskExecutionsColumns holds the columns for the "scheduled_task_executions" table.
	ScheduledTaskExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "timeout", "cancelled"}, Default: "pending"},
		{Name: "a2a_task_id", Type: field.TypeString, Nullable: true},
		{Name: "scheduled_for", Type: field.TypeInt64},
		{Name: "started_at", Type: field.TypeInt64, Nullable: true},
		{Name: "completed_at", Type: field.TypeInt64, Nullable: true},
		{Name: "result_summary", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "artifacts", Type: field.TypeJSON, Nullable: true},
		{Name: "notifications_sent", Type: field.TypeJSON, Nullable: true},
		{Name: "scheduled_task_id", Type: field.TypeString},
	}
	// ScheduledTaskExecutionsTable holds the schema information for the "scheduled_task_executions" table.
	ScheduledTaskExecutionsTable = &schema.Table{
		Name:       "scheduled_task_executions",
		Columns:    ScheduledTaskExecutionsColumns,
		PrimaryKey: []*schema.Column{ScheduledTaskExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "scheduled_task_executions_scheduled_tasks_executions",
				Columns:    []*schema.Column{ScheduledTaskExecutionsColumns[11]},
				RefColumns: []*schema.Column{ScheduledTasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "scheduledtaskexecution_scheduled_task_id_scheduled_for",
				Unique:  false,
				Columns: []*schema.Column{ScheduledTaskExecutionsColumns[11], ScheduledTaskExecutionsColumns[3]},
			},
			{
				Name:    "scheduledtaskexecution_status",
				Unique:  false,
				Columns: []*schema.Column{ScheduledTaskExecutionsColumns[1]},
			},
			{
				Name:    "scheduledtaskexecution_a2a_task_id",
				Unique:  false,
				Columns: []*schema.Column{ScheduledTaskExecutionsColumns[2]},
			},
		},
	}
	// SchedulerLocksColumns holds the columns for the "scheduler_locks" table.
	SchedulerLocksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "leader_id", Type: field.TypeString},
		{Name: "leader_namespace", Type: field.TypeString},
		{Name: "acquired_at", Type: field.TypeInt64},
		{Name: "expires_at", Type: field.TypeInt64},
		{Name: "heartbeat_at", Type: field.TypeInt64},
	}
	// SchedulerLocksTable holds the schema information for the "scheduler_locks" table.
	SchedulerLocksTable = &schema.Table{
		Name:       "scheduler_locks",
		Columns:    SchedulerLocksColumns,
		PrimaryKey: []*schema.Column{SchedulerLocksColumns[0]},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "project_id", Type: field.TypeString, Nullable: true},
		{Name: "created_time", Type: field.TypeInt64},
		{Name: "updated_time", Type: field.TypeInt64},
		{Name: "gateway_type", Type: field.TypeString, Nullable: true},
		{Name: "external_context_id", Type: field.TypeString, Nullable: true},
		{Name: "is_compression_branch", Type: field.TypeBool, Default: false},
		{Name: "compression_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "deleted_at", Type: field.TypeInt64, Nullable: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
			{
				Name:    "session_user_id_updated_time",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1], SessionsColumns[6]},
			},
			{
				Name:    "session_user_id_project_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1], SessionsColumns[4]},
			},
			{
				Name:    "session_external_context_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[8]},
			},
			{
				Name:    "session_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[11]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "start_time", Type: field.TypeInt64},
		{Name: "end_time", Type: field.TypeInt64, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "initial_request_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "agent_name", Type: field.TypeString, Nullable: true},
		{Name: "background_execution_enabled", Type: field.TypeBool, Default: false},
		{Name: "max_execution_time_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "last_activity_time", Type: field.TypeInt64, Nullable: true},
		{Name: "has_buffered_events", Type: field.TypeBool, Default: false},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_user_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1]},
			},
			{
				Name:    "task_start_time",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[2]},
			},
			{
				Name:    "task_status_background_execution_enabled",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4], TasksColumns[7]},
			},
		},
	}
	// TaskEventsColumns holds the columns for the "task_events" table.
	TaskEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "created_time", Type: field.TypeInt64},
		{Name: "topic", Type: field.TypeString},
		{Name: "direction", Type: field.TypeEnum, Enums: []string{"request", "response", "status_update", "artifact_update"}},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "task_id", Type: field.TypeString},
	}
	// TaskEventsTable holds the schema information for the "task_events" table.
	TaskEventsTable = &schema.Table{
		Name:       "task_events",
		Columns:    TaskEventsColumns,
		PrimaryKey: []*schema.Column{TaskEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_events_tasks_events",
				Columns:    []*schema.Column{TaskEventsColumns[6]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taskevent_task_id_created_time",
				Unique:  false,
				Columns: []*schema.Column{TaskEventsColumns[6], TaskEventsColumns[2]},
			},
		},
	}
	// TokenTransactionsColumns holds the columns for the "token_transactions" table.
	TokenTransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "transaction_type", Type: field.TypeEnum, Enums: []string{"prompt", "completion", "cached"}},
		{Name: "model", Type: field.TypeString},
		{Name: "raw_tokens", Type: field.TypeInt64},
		{Name: "token_cost", Type: field.TypeInt64},
		{Name: "rate", Type: field.TypeFloat64},
		{Name: "source", Type: field.TypeString},
		{Name: "tool_name", Type: field.TypeString, Nullable: true},
		{Name: "context", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeInt64},
	}
	// TokenTransactionsTable holds the schema information for the "token_transactions" table.
	TokenTransactionsTable = &schema.Table{
		Name:       "token_transactions",
		Columns:    TokenTransactionsColumns,
		PrimaryKey: []*schema.Column{TokenTransactionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tokentransaction_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TokenTransactionsColumns[1], TokenTransactionsColumns[11]},
			},
			{
				Name:    "tokentransaction_task_id",
				Unique:  false,
				Columns: []*schema.Column{TokenTransactionsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatTasksTable,
		DocConversionCachesTable,
		FeedbacksTable,
		MonthlyUsagesTable,
		ProjectsTable,
		SseEventsTable,
		ScheduledTasksTable,
		ScheduledTaskExecutionsTable,
		SchedulerLocksTable,
		SessionsTable,
		TasksTable,
		TaskEventsTable,
		TokenTransactionsTable,
	}
)

func init() {
	ChatTasksTable.ForeignKeys[0].RefTable = SessionsTable
	SseEventsTable.ForeignKeys[0].RefTable = SessionsTable
	ScheduledTaskExecutionsTable.ForeignKeys[0].RefTable = ScheduledTasksTable
	TaskEventsTable.ForeignKeys[0].RefTable = TasksTable
}
