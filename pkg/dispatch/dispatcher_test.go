package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/a2a"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/bus"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/sse"
)

type fakePublisher struct {
	topic   string
	payload []byte
	headers map[string]string
	err     error
}

func (p *fakePublisher) Publish(_ context.Context, topic string, payload []byte, headers map[string]string) error {
	p.topic = topic
	p.payload = payload
	p.headers = headers
	return p.err
}

type fakeTaskLog struct {
	submissions []services.TaskSubmission
	err         error
}

func (l *fakeTaskLog) RecordSubmission(_ context.Context, rec services.TaskSubmission) error {
	l.submissions = append(l.submissions, rec)
	return l.err
}

func newTestDispatcher(pub *fakePublisher, log *fakeTaskLog) *Dispatcher {
	m := sse.NewManager(nil, 10, 50*time.Millisecond)
	return NewDispatcher(pub, m, log, "sam/", "gw-1")
}

func TestSubmitTask(t *testing.T) {
	pub := &fakePublisher{}
	log := &fakeTaskLog{}
	d := newTestDispatcher(pub, log)

	taskID, err := d.SubmitTask(context.Background(), Submission{
		AgentName: "weather",
		Parts:     []a2a.Part{a2a.TextPart("forecast for tomorrow")},
		UserID:    "user-1",
		ClientID:  "client-1",
		SessionID: "session-1",
		Streaming: true,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(taskID, "task-"))

	assert.Equal(t, "sam/a2a/v1/agent/weather/request", pub.topic)
	assert.Equal(t, "sam/a2a/v1/gateway/response/gw-1", pub.headers[bus.HeaderReplyTo])
	assert.Equal(t, "sam/a2a/v1/gateway/status/gw-1", pub.headers[bus.HeaderStatusTopic])
	assert.Equal(t, "client-1", pub.headers[bus.HeaderClientID])
	assert.Equal(t, "user-1", pub.headers[bus.HeaderUserID])

	var req a2a.Request
	require.NoError(t, json.Unmarshal(pub.payload, &req))
	assert.Equal(t, "2.0", req.JSONRPC)
	assert.Equal(t, taskID, req.ID)
	assert.Equal(t, a2a.MethodStreamMessage, req.Method)

	var params a2a.MessageSendParams
	require.NoError(t, json.Unmarshal(req.Params, &params))
	assert.Equal(t, "user", params.Message.Role)
	assert.Equal(t, taskID, params.Message.TaskID)
	assert.Equal(t, "session-1", params.Message.ContextID)
	assert.Equal(t, "forecast for tomorrow", params.Message.Text())

	require.Len(t, log.submissions, 1)
	rec := log.submissions[0]
	assert.Equal(t, taskID, rec.TaskID)
	assert.Equal(t, "weather", rec.AgentName)
	assert.Equal(t, "forecast for tomorrow", rec.InitialRequestText)
}

func TestSubmitTaskNonStreaming(t *testing.T) {
	pub := &fakePublisher{}
	d := newTestDispatcher(pub, &fakeTaskLog{})

	_, err := d.SubmitTask(context.Background(), Submission{
		AgentName: "weather",
		Parts:     []a2a.Part{a2a.TextPart("hi")},
	})
	require.NoError(t, err)

	var req a2a.Request
	require.NoError(t, json.Unmarshal(pub.payload, &req))
	assert.Equal(t, a2a.MethodSendMessage, req.Method)

	// Without a session the context id is generated.
	var params a2a.MessageSendParams
	require.NoError(t, json.Unmarshal(req.Params, &params))
	assert.True(t, strings.HasPrefix(params.Message.ContextID, "ctx-"))
}

func TestSubmitTaskValidation(t *testing.T) {
	d := newTestDispatcher(&fakePublisher{}, &fakeTaskLog{})

	_, err := d.SubmitTask(context.Background(), Submission{Parts: []a2a.Part{a2a.TextPart("hi")}})
	assert.True(t, services.IsValidationError(err))

	_, err = d.SubmitTask(context.Background(), Submission{AgentName: "weather"})
	assert.True(t, services.IsValidationError(err))
}

func TestSubmitTaskPublishFailure(t *testing.T) {
	pub := &fakePublisher{err: errors.New("no responders")}
	d := newTestDispatcher(pub, &fakeTaskLog{})

	_, err := d.SubmitTask(context.Background(), Submission{
		AgentName: "weather",
		Parts:     []a2a.Part{a2a.TextPart("hi")},
	})
	assert.ErrorIs(t, err, services.ErrUpstreamUnavailable)
}

func TestSubmitTaskSurvivesAuditFailure(t *testing.T) {
	pub := &fakePublisher{}
	d := newTestDispatcher(pub, &fakeTaskLog{err: errors.New("db down")})

	taskID, err := d.SubmitTask(context.Background(), Submission{
		AgentName: "weather",
		Parts:     []a2a.Part{a2a.TextPart("hi")},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, taskID)
	assert.NotEmpty(t, pub.payload)
}

func TestCancelTask(t *testing.T) {
	pub := &fakePublisher{}
	d := newTestDispatcher(pub, &fakeTaskLog{})

	require.NoError(t, d.CancelTask(context.Background(), "task-9", "weather", "user-1"))

	var req a2a.Request
	require.NoError(t, json.Unmarshal(pub.payload, &req))
	assert.Equal(t, a2a.MethodCancelTask, req.Method)
	assert.Equal(t, "task-9", req.ID)

	var params a2a.CancelParams
	require.NoError(t, json.Unmarshal(req.Params, &params))
	assert.Equal(t, "task-9", params.TaskID)

	err := d.CancelTask(context.Background(), "task-9", "", "user-1")
	assert.True(t, services.IsValidationError(err))
}

func TestFirstText(t *testing.T) {
	assert.Equal(t, "hello", firstText([]a2a.Part{
		{Kind: "data", Data: map[string]any{"k": "v"}},
		a2a.TextPart("hello"),
		a2a.TextPart("second"),
	}))
	assert.Equal(t, "", firstText(nil))

	long := strings.Repeat("x", 3000)
	assert.Len(t, firstText([]a2a.Part{a2a.TextPart(long)}), 2000)
}
