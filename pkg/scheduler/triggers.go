// Package scheduler fires scheduled tasks and collects their results. One
// gateway instance at a time holds a DB lease and runs the trigger engine;
// followers serve reads and DB writes only.
package scheduler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
)

// Schedule types.
const (
	ScheduleTypeCron     = "cron"
	ScheduleTypeInterval = "interval"
	ScheduleTypeOneTime  = "one_time"
)

// minIntervalOrchestrator is the smallest interval expressible as an
// orchestrator cron; sub-minute intervals are only valid embedded.
const minIntervalOrchestrator = 60 * time.Second

var cronParser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Trigger is a validated schedule ready for the engine.
type Trigger struct {
	Type       string
	Expression string
	Location   *time.Location

	schedule cron.Schedule // cron and interval
	fireAt   time.Time     // one_time
}

// ParseTrigger validates a schedule definition. orchestratorMode tightens
// the interval floor to what orchestrator cron can express.
func ParseTrigger(scheduleType, expression, timezone string, orchestratorMode bool) (*Trigger, error) {
	loc := time.UTC
	if timezone != "" {
		var err error
		loc, err = time.LoadLocation(timezone)
		if err != nil {
			return nil, services.NewValidationError("timezone", fmt.Sprintf("unknown timezone %q", timezone))
		}
	}

	t := &Trigger{Type: scheduleType, Expression: expression, Location: loc}
	switch scheduleType {
	case ScheduleTypeCron:
		schedule, err := cronParser.Parse(expression)
		if err != nil {
			return nil, services.NewValidationError("scheduleExpression", fmt.Sprintf("invalid cron expression: %v", err))
		}
		t.schedule = schedule

	case ScheduleTypeInterval:
		interval, err := parseInterval(expression)
		if err != nil {
			return nil, err
		}
		if orchestratorMode && interval < minIntervalOrchestrator {
			return nil, services.NewValidationError("scheduleExpression",
				"intervals below 60s are not supported in orchestrator mode")
		}
		t.schedule = cron.Every(interval)

	case ScheduleTypeOneTime:
		fireAt, err := time.Parse(time.RFC3339, expression)
		if err != nil {
			return nil, services.NewValidationError("scheduleExpression",
				fmt.Sprintf("invalid ISO-8601 datetime: %v", err))
		}
		t.fireAt = fireAt

	default:
		return nil, services.NewValidationError("scheduleType",
			"must be cron, interval, or one_time")
	}
	return t, nil
}

// Next returns the next fire time after from, in the trigger's timezone.
// A spent one_time trigger returns the zero time.
func (t *Trigger) Next(from time.Time) time.Time {
	switch t.Type {
	case ScheduleTypeOneTime:
		if t.fireAt.After(from) {
			return t.fireAt
		}
		return time.Time{}
	default:
		return t.schedule.Next(from.In(t.Location))
	}
}

// parseInterval parses the Ns|Nm|Nh|Nd form.
func parseInterval(expression string) (time.Duration, error) {
	if len(expression) < 2 {
		return 0, services.NewValidationError("scheduleExpression",
			"interval must look like 30s, 5m, 2h, or 1d")
	}

	unit := expression[len(expression)-1]
	n, err := strconv.Atoi(strings.TrimSpace(expression[:len(expression)-1]))
	if err != nil || n <= 0 {
		return 0, services.NewValidationError("scheduleExpression",
			"interval must be a positive number followed by s, m, h, or d")
	}

	switch unit {
	case 's':
		return time.Duration(n) * time.Second, nil
	case 'm':
		return time.Duration(n) * time.Minute, nil
	case 'h':
		return time.Duration(n) * time.Hour, nil
	case 'd':
		return time.Duration(n) * 24 * time.Hour, nil
	default:
		return 0, services.NewValidationError("scheduleExpression",
			"interval unit must be s, m, h, or d")
	}
}
