package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
)

func TestParseTriggerCron(t *testing.T) {
	trigger, err := ParseTrigger(ScheduleTypeCron, "0 9 * * 1", "", false)
	require.NoError(t, err)

	// Monday 2026-03-02; next fire is 09:00 that day.
	from := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	next := trigger.Next(from)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), next)

	_, err = ParseTrigger(ScheduleTypeCron, "not a cron", "", false)
	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "scheduleExpression", verr.Field)
}

func TestParseTriggerCronTimezone(t *testing.T) {
	trigger, err := ParseTrigger(ScheduleTypeCron, "0 9 * * *", "America/New_York", false)
	require.NoError(t, err)

	// 13:00 UTC in January (EST, UTC-5) is 08:00 local; next 09:00 local is
	// 14:00 UTC the same day.
	from := time.Date(2026, 1, 15, 13, 0, 0, 0, time.UTC)
	next := trigger.Next(from).UTC()
	assert.Equal(t, time.Date(2026, 1, 15, 14, 0, 0, 0, time.UTC), next)

	_, err = ParseTrigger(ScheduleTypeCron, "0 9 * * *", "Not/AZone", false)
	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "timezone", verr.Field)
}

func TestParseTriggerInterval(t *testing.T) {
	cases := []struct {
		expression string
		want       time.Duration
	}{
		{"30s", 30 * time.Second},
		{"5m", 5 * time.Minute},
		{"2h", 2 * time.Hour},
		{"1d", 24 * time.Hour},
	}
	for _, tc := range cases {
		trigger, err := ParseTrigger(ScheduleTypeInterval, tc.expression, "", false)
		require.NoError(t, err, tc.expression)

		from := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
		assert.Equal(t, tc.want, trigger.Next(from).Sub(from), tc.expression)
	}
}

func TestParseTriggerIntervalInvalid(t *testing.T) {
	for _, expression := range []string{"", "m", "0s", "-5m", "10x", "abc"} {
		_, err := ParseTrigger(ScheduleTypeInterval, expression, "", false)
		assert.Error(t, err, expression)
	}
}

func TestParseTriggerIntervalOrchestratorFloor(t *testing.T) {
	// Sub-minute intervals are fine embedded but rejected in orchestrator
	// mode, where the schedule becomes a cron expression.
	_, err := ParseTrigger(ScheduleTypeInterval, "30s", "", false)
	require.NoError(t, err)

	_, err = ParseTrigger(ScheduleTypeInterval, "30s", "", true)
	assert.ErrorContains(t, err, "orchestrator")

	_, err = ParseTrigger(ScheduleTypeInterval, "60s", "", true)
	require.NoError(t, err)
}

func TestParseTriggerOneTime(t *testing.T) {
	fireAt := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	trigger, err := ParseTrigger(ScheduleTypeOneTime, fireAt.Format(time.RFC3339), "", false)
	require.NoError(t, err)

	before := fireAt.Add(-time.Hour)
	assert.Equal(t, fireAt, trigger.Next(before))

	// Spent trigger: zero time retires the entry.
	after := fireAt.Add(time.Hour)
	assert.True(t, trigger.Next(after).IsZero())

	_, err = ParseTrigger(ScheduleTypeOneTime, "tomorrow", "", false)
	assert.Error(t, err)
}

func TestParseTriggerUnknownType(t *testing.T) {
	_, err := ParseTrigger("weekly", "x", "", false)
	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "scheduleType", verr.Field)
}
