// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/solacecommunity/agent-mesh-gateway/ent/docconversioncache"
	"github.com/solacecommunity/agent-mesh-gateway/ent/monthlyusage"
	"github.com/solacecommunity/agent-mesh-gateway/ent/scheduledtask"
	"github.com/solacecommunity/agent-mesh-gateway/ent/scheduledtaskexecution"
	"github.com/solacecommunity/agent-mesh-gateway/ent/schema"
	"github.com/solacecommunity/agent-mesh-gateway/ent/session"
	"github.com/solacecommunity/agent-mesh-gateway/ent/sseevent"
	"github.com/solacecommunity/agent-mesh-gateway/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	docconversioncacheFields := schema.DocConversionCache{}.Fields()
	_ = docconversioncacheFields
	// docconversioncacheDescAccessCount is the schema descriptor for access_count field.
	docconversioncacheDescAccessCount := docconversioncacheFields[8].Descriptor()
	// docconversioncache.DefaultAccessCount holds the default value on creation for the access_count field.
	docconversioncache.DefaultAccessCount = docconversioncacheDescAccessCount.Default.(int64)
	monthlyusageFields := schema.MonthlyUsage{}.Fields()
	_ = monthlyusageFields
	// monthlyusageDescTotalUsage is the schema descriptor for total_usage field.
	monthlyusageDescTotalUsage := monthlyusageFields[3].Descriptor()
	// monthlyusage.DefaultTotalUsage holds the default value on creation for the total_usage field.
	monthlyusage.DefaultTotalUsage = monthlyusageDescTotalUsage.Default.(int64)
	// monthlyusageDescPromptUsage is the schema descriptor for prompt_usage field.
	monthlyusageDescPromptUsage := monthlyusageFields[4].Descriptor()
	// monthlyusage.DefaultPromptUsage holds the default value on creation for the prompt_usage field.
	monthlyusage.DefaultPromptUsage = monthlyusageDescPromptUsage.Default.(int64)
	// monthlyusageDescCompletionUsage is the schema descriptor for completion_usage field.
	monthlyusageDescCompletionUsage := monthlyusageFields[5].Descriptor()
	// monthlyusage.DefaultCompletionUsage holds the default value on creation for the completion_usage field.
	monthlyusage.DefaultCompletionUsage = monthlyusageDescCompletionUsage.Default.(int64)
	// monthlyusageDescCachedUsage is the schema descriptor for cached_usage field.
	monthlyusageDescCachedUsage := monthlyusageFields[6].Descriptor()
	// monthlyusage.DefaultCachedUsage holds the default value on creation for the cached_usage field.
	monthlyusage.DefaultCachedUsage = monthlyusageDescCachedUsage.Default.(int64)
	sseeventFields := schema.SSEEvent{}.Fields()
	_ = sseeventFields
	// sseeventDescConsumed is the schema descriptor for consumed field.
	sseeventDescConsumed := sseeventFields[8].Descriptor()
	// sseevent.DefaultConsumed holds the default value on creation for the consumed field.
	sseevent.DefaultConsumed = sseeventDescConsumed.Default.(bool)
	scheduledtaskFields := schema.ScheduledTask{}.Fields()
	_ = scheduledtaskFields
	// scheduledtaskDescTimezone is the schema descriptor for timezone field.
	scheduledtaskDescTimezone := scheduledtaskFields[7].Descriptor()
	// scheduledtask.DefaultTimezone holds the default value on creation for the timezone field.
	scheduledtask.DefaultTimezone = scheduledtaskDescTimezone.Default.(string)
	// scheduledtaskDescEnabled is the schema descriptor for enabled field.
	scheduledtaskDescEnabled := scheduledtaskFields[11].Descriptor()
	// scheduledtask.DefaultEnabled holds the default value on creation for the enabled field.
	scheduledtask.DefaultEnabled = scheduledtaskDescEnabled.Default.(bool)
	// scheduledtaskDescMaxRetries is the schema descriptor for max_retries field.
	scheduledtaskDescMaxRetries := scheduledtaskFields[12].Descriptor()
	// scheduledtask.DefaultMaxRetries holds the default value on creation for the max_retries field.
	scheduledtask.DefaultMaxRetries = scheduledtaskDescMaxRetries.Default.(int)
	// scheduledtaskDescRetryDelaySeconds is the schema descriptor for retry_delay_seconds field.
	scheduledtaskDescRetryDelaySeconds := scheduledtaskFields[13].Descriptor()
	// scheduledtask.DefaultRetryDelaySeconds holds the default value on creation for the retry_delay_seconds field.
	scheduledtask.DefaultRetryDelaySeconds = scheduledtaskDescRetryDelaySeconds.Default.(int)
	// scheduledtaskDescTimeoutSeconds is the schema descriptor for timeout_seconds field.
	scheduledtaskDescTimeoutSeconds := scheduledtaskFields[14].Descriptor()
	// scheduledtask.DefaultTimeoutSeconds holds the default value on creation for the timeout_seconds field.
	scheduledtask.DefaultTimeoutSeconds = scheduledtaskDescTimeoutSeconds.Default.(int)
	scheduledtaskexecutionFields := schema.ScheduledTaskExecution{}.Fields()
	_ = scheduledtaskexecutionFields
	// scheduledtaskexecutionDescRetryCount is the schema descriptor for retry_count field.
	scheduledtaskexecutionDescRetryCount := scheduledtaskexecutionFields[9].Descriptor()
	// scheduledtaskexecution.DefaultRetryCount holds the default value on creation for the retry_count field.
	scheduledtaskexecution.DefaultRetryCount = scheduledtaskexecutionDescRetryCount.Default.(int)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescIsCompressionBranch is the schema descriptor for is_compression_branch field.
	sessionDescIsCompressionBranch := sessionFields[9].Descriptor()
	// session.DefaultIsCompressionBranch holds the default value on creation for the is_compression_branch field.
	session.DefaultIsCompressionBranch = sessionDescIsCompressionBranch.Default.(bool)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescBackgroundExecutionEnabled is the schema descriptor for background_execution_enabled field.
	taskDescBackgroundExecutionEnabled := taskFields[7].Descriptor()
	// task.DefaultBackgroundExecutionEnabled holds the default value on creation for the background_execution_enabled field.
	task.DefaultBackgroundExecutionEnabled = taskDescBackgroundExecutionEnabled.Default.(bool)
	// taskDescHasBufferedEvents is the schema descriptor for has_buffered_events field.
	taskDescHasBufferedEvents := taskFields[10].Descriptor()
	// task.DefaultHasBufferedEvents holds the default value on creation for the has_buffered_events field.
	task.DefaultHasBufferedEvents = taskDescHasBufferedEvents.Default.(bool)
}
