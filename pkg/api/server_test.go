package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/a2a"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/config"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/database"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/dispatch"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/registry"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/sse"
	testdb "github.com/solacecommunity/agent-mesh-gateway/test/database"
)

type capturePublisher struct {
	mu     sync.Mutex
	topics []string
	err    error
}

func (p *capturePublisher) Publish(_ context.Context, topic string, _ []byte, _ map[string]string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	return p.err
}

func testConfig(authEnabled bool) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{Enabled: authEnabled, DevUserID: "sam_dev_user"},
		Features: &config.FeatureFlags{
			Persistence: true,
			Feedback:    true,
			Scheduler:   true,
		},
		SSE: &config.SSEConfig{MaxQueueSize: 10, PutTimeout: time.Second, IdleTimeout: time.Minute},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) (*Server, *database.Client, *capturePublisher) {
	t.Helper()
	db := testdb.NewTestClient(t)

	buffer := sse.NewPersistentEventBuffer(db.Client)
	manager := sse.NewManager(buffer, 10, time.Second)
	tasks := services.NewTaskService(db.Client)
	pub := &capturePublisher{}
	dispatcher := dispatch.NewDispatcher(pub, manager, tasks, "sam/", "gw-test")

	srv := NewServer(cfg, db, dispatcher, manager, buffer,
		services.NewSessionService(db.Client), tasks,
		registry.NewAgentRegistry(), registry.NewGatewayRegistry())
	srv.SetFeedbackService(services.NewFeedbackService(db.Client))
	srv.SetProjectService(services.NewProjectService(db.Client))
	return srv, db, pub
}

// do runs one request through the full middleware chain.
func do(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

func jsonRequest(method, path string, body any) *http.Request {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestIdentityResolution(t *testing.T) {
	t.Run("auth disabled runs as the dev user", func(t *testing.T) {
		srv, _, _ := newTestServer(t, testConfig(false))

		rec := do(srv, httptest.NewRequest(http.MethodGet, "/api/v1/me", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "sam_dev_user", body["userId"])
		assert.Equal(t, false, body["authenticated"])
	})

	t.Run("auth enabled rejects anonymous requests", func(t *testing.T) {
		srv, _, _ := newTestServer(t, testConfig(true))

		rec := do(srv, httptest.NewRequest(http.MethodGet, "/api/v1/me", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "authentication required", decodeBody(t, rec)["detail"])
	})

	t.Run("proxy headers resolve identity in priority order", func(t *testing.T) {
		srv, _, _ := newTestServer(t, testConfig(true))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		req.Header.Set("X-Remote-User", "kube-user")
		req.Header.Set("X-Forwarded-User", "alice@corp.example")
		rec := do(srv, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "alice@corp.example", decodeBody(t, rec)["userId"])

		req = httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		req.Header.Set("X-Remote-User", "kube-user")
		rec = do(srv, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "kube-user", decodeBody(t, rec)["userId"])
	})
}

func TestSecurityHeaders(t *testing.T) {
	srv, _, _ := newTestServer(t, testConfig(false))

	rec := do(srv, httptest.NewRequest(http.MethodGet, "/api/v1/me", nil))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
	assert.NotEmpty(t, rec.Header().Get("Permissions-Policy"))
}

func TestHealthAndConfig(t *testing.T) {
	srv, _, _ := newTestServer(t, testConfig(false))

	rec := do(srv, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", decodeBody(t, rec)["status"])

	rec = do(srv, httptest.NewRequest(http.MethodGet, "/api/v1/config", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	flags := decodeBody(t, rec)
	assert.Equal(t, true, flags["persistence"])
	assert.Equal(t, true, flags["feedback"])
}

func TestSessionEndpoints(t *testing.T) {
	srv, _, _ := newTestServer(t, testConfig(false))

	rec := do(srv, jsonRequest(http.MethodPost, "/api/v1/sessions", map[string]any{"name": "my chat"}))
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec)
	sessionID, _ := created["id"].(string)
	require.NotEmpty(t, sessionID)
	assert.Equal(t, "sam_dev_user", created["userId"])

	rec = do(srv, httptest.NewRequest(http.MethodGet, "/api/v1/sessions", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody(t, rec)
	sessions, ok := list["data"].([]any)
	require.True(t, ok)
	assert.Len(t, sessions, 1)

	rec = do(srv, jsonRequest(http.MethodPatch, "/api/v1/sessions/"+sessionID, map[string]any{"name": "renamed"}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "renamed", decodeBody(t, rec)["name"])

	rec = do(srv, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/session-unknown", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "resource not found", decodeBody(t, rec)["detail"])

	rec = do(srv, httptest.NewRequest(http.MethodDelete, "/api/v1/sessions/"+sessionID, nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Deleting again is still a 204.
	rec = do(srv, httptest.NewRequest(http.MethodDelete, "/api/v1/sessions/"+sessionID, nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSessionPaginationValidation(t *testing.T) {
	srv, _, _ := newTestServer(t, testConfig(false))

	rec := do(srv, httptest.NewRequest(http.MethodGet, "/api/v1/sessions?pageNumber=abc", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["detail"], "pageNumber")

	rec = do(srv, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/search", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["detail"], "query")
}

func TestProjectEndpoints(t *testing.T) {
	srv, _, _ := newTestServer(t, testConfig(false))

	rec := do(srv, jsonRequest(http.MethodPost, "/api/v1/projects", map[string]any{
		"name":         "Research",
		"systemPrompt": "You are terse.",
	}))
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec)
	projectID, _ := created["id"].(string)
	require.NotEmpty(t, projectID)
	assert.Equal(t, "You are terse.", created["systemPrompt"])

	rec = do(srv, httptest.NewRequest(http.MethodGet, "/api/v1/projects/"+projectID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Research", decodeBody(t, rec)["name"])

	rec = do(srv, jsonRequest(http.MethodPost, "/api/v1/projects", map[string]any{"name": ""}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(srv, httptest.NewRequest(http.MethodDelete, "/api/v1/projects/"+projectID, nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(srv, httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	projects, ok := decodeBody(t, rec)["projects"].([]any)
	require.True(t, ok)
	assert.Empty(t, projects)
}

// multipartSubmission builds the form body for /tasks/send and /tasks/subscribe.
func multipartSubmission(t *testing.T, fields map[string]string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestTaskSubmission(t *testing.T) {
	t.Run("streaming submission returns task and session ids", func(t *testing.T) {
		srv, db, pub := newTestServer(t, testConfig(false))

		body, contentType := multipartSubmission(t, map[string]string{
			"agent_name": "weather",
			"message":    "forecast for tomorrow",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/subscribe", body)
		req.Header.Set("Content-Type", contentType)
		rec := do(srv, req)
		require.Equal(t, http.StatusOK, rec.Code)

		envelope := decodeBody(t, rec)
		assert.Equal(t, "2.0", envelope["jsonrpc"])
		result, ok := envelope["result"].(map[string]any)
		require.True(t, ok)
		taskID, _ := result["taskId"].(string)
		assert.True(t, strings.HasPrefix(taskID, "task-"))
		sessionID, _ := result["sessionId"].(string)
		assert.True(t, strings.HasPrefix(sessionID, "session-"))

		assert.Equal(t, []string{"sam/a2a/v1/agent/weather/request"}, pub.topics)

		// The generated session is persisted for chat history.
		sess, err := services.NewSessionService(db.Client).GetSession(context.Background(), "sam_dev_user", sessionID)
		require.NoError(t, err)
		assert.Equal(t, sessionID, sess.ID)
	})

	t.Run("non-streaming submission omits the session id", func(t *testing.T) {
		srv, _, _ := newTestServer(t, testConfig(false))

		body, contentType := multipartSubmission(t, map[string]string{
			"agent_name": "weather",
			"message":    "hello",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/send", body)
		req.Header.Set("Content-Type", contentType)
		rec := do(srv, req)
		require.Equal(t, http.StatusOK, rec.Code)

		result, ok := decodeBody(t, rec)["result"].(map[string]any)
		require.True(t, ok)
		assert.NotContains(t, result, "sessionId")
	})

	t.Run("missing agent name is a json-rpc invalid request", func(t *testing.T) {
		srv, _, _ := newTestServer(t, testConfig(false))

		body, contentType := multipartSubmission(t, map[string]string{"message": "hello"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/send", body)
		req.Header.Set("Content-Type", contentType)
		rec := do(srv, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		envelope := decodeBody(t, rec)
		rpcErr, ok := envelope["error"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(a2a.ErrorCodeInvalidRequest), rpcErr["code"])
	})

	t.Run("non-multipart body is rejected", func(t *testing.T) {
		srv, _, _ := newTestServer(t, testConfig(false))

		rec := do(srv, jsonRequest(http.MethodPost, "/api/v1/tasks/send", map[string]any{"agent_name": "weather"}))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("publish failure maps to service unavailable", func(t *testing.T) {
		srv, _, pub := newTestServer(t, testConfig(false))
		pub.err = context.DeadlineExceeded

		body, contentType := multipartSubmission(t, map[string]string{
			"agent_name": "weather",
			"message":    "hello",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/send", body)
		req.Header.Set("Content-Type", contentType)
		rec := do(srv, req)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestCancelTaskEndpoint(t *testing.T) {
	srv, _, _ := newTestServer(t, testConfig(false))

	t.Run("unknown task", func(t *testing.T) {
		body, contentType := multipartSubmission(t, map[string]string{"task_id": "task-nope"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/cancel", body)
		req.Header.Set("Content-Type", contentType)
		rec := do(srv, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("submitted task cancels", func(t *testing.T) {
		body, contentType := multipartSubmission(t, map[string]string{
			"agent_name": "weather",
			"message":    "hello",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/send", body)
		req.Header.Set("Content-Type", contentType)
		rec := do(srv, req)
		require.Equal(t, http.StatusOK, rec.Code)
		result := decodeBody(t, rec)["result"].(map[string]any)
		taskID := result["taskId"].(string)

		body, contentType = multipartSubmission(t, map[string]string{"task_id": taskID})
		req = httptest.NewRequest(http.MethodPost, "/api/v1/tasks/cancel", body)
		req.Header.Set("Content-Type", contentType)
		rec = do(srv, req)
		require.Equal(t, http.StatusOK, rec.Code)
		cancelled := decodeBody(t, rec)["result"].(map[string]any)
		assert.Equal(t, true, cancelled["cancelled"])
	})
}

func TestTaskStatusAndEvents(t *testing.T) {
	srv, _, _ := newTestServer(t, testConfig(false))

	body, contentType := multipartSubmission(t, map[string]string{
		"agent_name": "weather",
		"message":    "hello",
		"background": "true",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/send", body)
	req.Header.Set("Content-Type", contentType)
	rec := do(srv, req)
	require.Equal(t, http.StatusOK, rec.Code)
	taskID := decodeBody(t, rec)["result"].(map[string]any)["taskId"].(string)

	rec = do(srv, httptest.NewRequest(http.MethodGet, "/api/v1/tasks/"+taskID+"/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	status := decodeBody(t, rec)
	assert.Equal(t, true, status["isRunning"])
	assert.Equal(t, true, status["isBackground"])

	rec = do(srv, httptest.NewRequest(http.MethodGet, "/api/v1/tasks/"+taskID+"/events", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(srv, httptest.NewRequest(http.MethodGet, "/api/v1/tasks/"+taskID+"/events?limit=0", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(srv, httptest.NewRequest(http.MethodGet, "/api/v1/tasks/task-missing/status", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(srv, httptest.NewRequest(http.MethodGet, "/api/v1/tasks/background/active", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	tasks, ok := decodeBody(t, rec)["tasks"].([]any)
	require.True(t, ok)
	assert.Len(t, tasks, 1)
}

func gatewayCard(name string) *a2a.AgentCard {
	return &a2a.AgentCard{
		Name: name,
		Capabilities: a2a.Capabilities{
			Extensions: []a2a.Extension{
				{
					URI: a2a.ExtensionURIGatewayRole,
					Params: map[string]any{
						"gatewayType": "http_sse",
						"namespace":   "sam",
					},
				},
				{
					URI:    a2a.ExtensionURIDeployment,
					Params: map[string]any{"deploymentId": "deploy-1"},
				},
			},
		},
	}
}

func TestRegistryEndpoints(t *testing.T) {
	srv, _, _ := newTestServer(t, testConfig(false))

	srv.agents.AddOrUpdate(&a2a.AgentCard{
		Name:     "weather",
		Metadata: map[string]any{"model": "gpt-4o"},
	})
	srv.gateways.AddOrUpdate(gatewayCard("gw-peer"))

	rec := do(srv, httptest.NewRequest(http.MethodGet, "/api/v1/agentCards", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	cards, ok := decodeBody(t, rec)["cards"].([]any)
	require.True(t, ok)
	assert.Len(t, cards, 1)

	rec = do(srv, httptest.NewRequest(http.MethodGet, "/api/v1/agents/weather/model", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gpt-4o", decodeBody(t, rec)["model"])

	rec = do(srv, httptest.NewRequest(http.MethodGet, "/api/v1/agents/ghost/model", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(srv, httptest.NewRequest(http.MethodGet, "/api/v1/gateways/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	fleet := decodeBody(t, rec)
	assert.Equal(t, float64(1), fleet["totalCount"])
	assert.Equal(t, float64(1), fleet["healthyCount"])

	rec = do(srv, httptest.NewRequest(http.MethodGet, "/api/v1/gateways/gw-peer/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	health := decodeBody(t, rec)
	assert.Equal(t, true, health["healthy"])
	assert.Equal(t, "http_sse", health["gatewayType"])
	assert.Equal(t, "deploy-1", health["deploymentId"])

	rec = do(srv, httptest.NewRequest(http.MethodGet, "/api/v1/gateways/gw-ghost/health", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(srv, httptest.NewRequest(http.MethodGet, "/api/v1/gateways/health?ttl=0", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type scopedVisibility struct{}

func (scopedVisibility) VisibleCard(userID string, card *a2a.AgentCard) bool {
	for _, tool := range card.Tools() {
		if len(tool.RequiredScopes) > 0 && userID != "admin" {
			return false
		}
	}
	return true
}

func TestAgentCardVisibility(t *testing.T) {
	srv, _, _ := newTestServer(t, testConfig(true))
	srv.SetCardVisibility(scopedVisibility{})

	srv.agents.AddOrUpdate(&a2a.AgentCard{Name: "open-agent"})
	srv.agents.AddOrUpdate(&a2a.AgentCard{
		Name: "locked-agent",
		Capabilities: a2a.Capabilities{
			Extensions: []a2a.Extension{{
				URI: a2a.ExtensionURITools,
				Params: map[string]any{
					"tools": []any{map[string]any{
						"name":           "rollout",
						"requiredScopes": []any{"deploy:prod"},
					}},
				},
			}},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/agentCards", nil)
	req.Header.Set("X-Forwarded-User", "alice")
	rec := do(srv, req)
	require.Equal(t, http.StatusOK, rec.Code)
	cards, _ := decodeBody(t, rec)["cards"].([]any)
	require.Len(t, cards, 1)
	first, _ := cards[0].(map[string]any)
	assert.Equal(t, "open-agent", first["name"])

	req = httptest.NewRequest(http.MethodGet, "/api/v1/agentCards", nil)
	req.Header.Set("X-Forwarded-User", "admin")
	rec = do(srv, req)
	require.Equal(t, http.StatusOK, rec.Code)
	cards, _ = decodeBody(t, rec)["cards"].([]any)
	assert.Len(t, cards, 2)
}

func TestFeedbackEndpoint(t *testing.T) {
	srv, _, _ := newTestServer(t, testConfig(false))

	rec := do(srv, jsonRequest(http.MethodPost, "/api/v1/feedback", map[string]any{
		"messageId":    "task-1",
		"sessionId":    "session-1",
		"feedbackType": "up",
		"feedbackText": "great answer",
	}))
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = do(srv, jsonRequest(http.MethodPost, "/api/v1/feedback", map[string]any{
		"messageId":    "task-1",
		"sessionId":    "session-1",
		"feedbackType": "sideways",
	}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOptionalSurfacesUnconfigured(t *testing.T) {
	db := testdb.NewTestClient(t)
	buffer := sse.NewPersistentEventBuffer(db.Client)
	manager := sse.NewManager(buffer, 10, time.Second)
	tasks := services.NewTaskService(db.Client)
	dispatcher := dispatch.NewDispatcher(&capturePublisher{}, manager, tasks, "sam/", "gw-test")
	srv := NewServer(testConfig(false), db, dispatcher, manager, buffer,
		services.NewSessionService(db.Client), tasks,
		registry.NewAgentRegistry(), registry.NewGatewayRegistry())

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/projects"},
		{http.MethodPost, "/api/v1/feedback"},
		{http.MethodGet, "/api/v1/scheduled-tasks"},
		{http.MethodGet, "/api/v1/scheduler/status"},
		{http.MethodPost, "/api/v1/scheduled-tasks/builder/chat"},
		{http.MethodPost, "/api/v1/document-conversion/to-pdf"},
	}
	for _, p := range paths {
		rec := do(srv, jsonRequest(p.method, p.path, map[string]any{}))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, "%s %s", p.method, p.path)
		assert.Equal(t, "upstream service unavailable", decodeBody(t, rec)["detail"])
	}
}

func TestUserScoping(t *testing.T) {
	srv, _, _ := newTestServer(t, testConfig(true))

	// Alice creates a session; Bob cannot see it.
	req := jsonRequest(http.MethodPost, "/api/v1/sessions", map[string]any{"name": "alice chat"})
	req.Header.Set("X-Forwarded-User", "alice")
	rec := do(srv, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	sessionID := decodeBody(t, rec)["id"].(string)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+sessionID, nil)
	req.Header.Set("X-Forwarded-User", "bob")
	rec = do(srv, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+sessionID, nil)
	req.Header.Set("X-Forwarded-User", "alice")
	rec = do(srv, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
