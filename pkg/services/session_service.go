package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/solacecommunity/agent-mesh-gateway/ent"
	"github.com/solacecommunity/agent-mesh-gateway/ent/chattask"
	"github.com/solacecommunity/agent-mesh-gateway/ent/project"
	"github.com/solacecommunity/agent-mesh-gateway/ent/session"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/models"
)

// SessionService manages session lifecycle, project association, and the
// per-task chat bubble bundles used to render history.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService.
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// GetUserSessions returns one page of the user's sessions, newest activity
// first, optionally filtered by project. Project names are enriched in a
// single batch lookup.
func (s *SessionService) GetUserSessions(ctx context.Context, userID string, p models.Pagination, projectID string) (*models.SessionListResponse, error) {
	p, err := clampPagination(p)
	if err != nil {
		return nil, err
	}

	query := s.client.Session.Query().
		Where(session.UserID(userID), session.DeletedAtIsNil())
	if projectID != "" {
		query = query.Where(session.ProjectID(projectID))
	}

	totalCount, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, ClassifyDBError("count sessions", err)
	}

	sessions, err := query.
		Order(ent.Desc(session.FieldUpdatedTime)).
		Offset((p.PageNumber - 1) * p.PageSize).
		Limit(p.PageSize).
		All(ctx)
	if err != nil {
		return nil, ClassifyDBError("list sessions", err)
	}

	summaries := make([]models.SessionSummary, 0, len(sessions))
	for _, sess := range sessions {
		summaries = append(summaries, models.NewSessionSummary(sess))
	}
	if err := s.enrichProjectNames(ctx, summaries); err != nil {
		return nil, err
	}

	return &models.SessionListResponse{
		Data: summaries,
		Meta: models.NewPageMeta(p, totalCount),
	}, nil
}

// enrichProjectNames resolves project ids to names in one query.
func (s *SessionService) enrichProjectNames(ctx context.Context, summaries []models.SessionSummary) error {
	idSet := make(map[string]struct{})
	for _, sum := range summaries {
		if sum.ProjectID != nil && *sum.ProjectID != "" {
			idSet[*sum.ProjectID] = struct{}{}
		}
	}
	if len(idSet) == 0 {
		return nil
	}

	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	projects, err := s.client.Project.Query().
		Where(project.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return ClassifyDBError("load project names", err)
	}

	names := make(map[string]string, len(projects))
	for _, proj := range projects {
		names[proj.ID] = proj.Name
	}
	for i := range summaries {
		if summaries[i].ProjectID == nil {
			continue
		}
		if name, ok := names[*summaries[i].ProjectID]; ok {
			n := name
			summaries[i].ProjectName = &n
		}
	}
	return nil
}

// CreateSession creates a session owned by userID. A client-supplied id is
// honored when present.
func (s *SessionService) CreateSession(httpCtx context.Context, userID string, req models.CreateSessionRequest) (*ent.Session, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}

	id := req.SessionID
	if id == "" {
		id = "session-" + uuid.New().String()
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := nowMs()
	builder := s.client.Session.Create().
		SetID(id).
		SetUserID(userID).
		SetCreatedTime(now).
		SetUpdatedTime(now)
	if req.Name != "" {
		builder.SetName(req.Name)
	}
	if req.AgentID != "" {
		builder.SetAgentID(req.AgentID)
	}
	if req.ProjectID != "" {
		builder.SetProjectID(req.ProjectID)
	}
	if req.GatewayType != "" {
		builder.SetGatewayType(req.GatewayType)
	}
	if req.ExternalContextID != "" {
		builder.SetExternalContextID(req.ExternalContextID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, ClassifyDBError("create session", err)
	}
	return created, nil
}

// GetSession returns the user's session by id.
func (s *SessionService) GetSession(ctx context.Context, userID, id string) (*ent.Session, error) {
	if !validSessionID(id) {
		return nil, ErrNotFound
	}
	sess, err := s.client.Session.Query().
		Where(session.ID(id), session.UserID(userID), session.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, ClassifyDBError("get session", err)
	}
	return sess, nil
}

// UpdateSessionName renames a session.
func (s *SessionService) UpdateSessionName(ctx context.Context, userID, id, name string) (*ent.Session, error) {
	if !validSessionID(id) {
		return nil, ErrNotFound
	}
	if name == "" {
		return nil, NewValidationError("name", "required")
	}

	n, err := s.client.Session.Update().
		Where(session.ID(id), session.UserID(userID), session.DeletedAtIsNil()).
		SetName(name).
		SetUpdatedTime(nowMs()).
		Save(ctx)
	if err != nil {
		return nil, ClassifyDBError("rename session", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return s.GetSession(ctx, userID, id)
}

// SoftDeleteSession marks the session deleted. Returns false when the
// session was already deleted or never existed — a second delete is a no-op.
func (s *SessionService) SoftDeleteSession(ctx context.Context, userID, id string) (bool, error) {
	if !validSessionID(id) {
		return false, nil
	}
	n, err := s.client.Session.Update().
		Where(session.ID(id), session.UserID(userID), session.DeletedAtIsNil()).
		SetDeletedAt(nowMs()).
		Save(ctx)
	if err != nil {
		return false, ClassifyDBError("delete session", err)
	}
	return n > 0, nil
}

// MoveSessionToProject re-homes a session. An empty projectID clears the
// association. The target project must belong to the same user.
func (s *SessionService) MoveSessionToProject(ctx context.Context, userID, id, projectID string) (*ent.Session, error) {
	if !validSessionID(id) {
		return nil, ErrNotFound
	}

	if projectID != "" {
		exists, err := s.client.Project.Query().
			Where(project.ID(projectID), project.UserID(userID), project.DeletedAtIsNil()).
			Exist(ctx)
		if err != nil {
			return nil, ClassifyDBError("check project", err)
		}
		if !exists {
			return nil, fmt.Errorf("project %s: %w", projectID, ErrNotFound)
		}
	}

	update := s.client.Session.Update().
		Where(session.ID(id), session.UserID(userID), session.DeletedAtIsNil()).
		SetUpdatedTime(nowMs())
	if projectID == "" {
		update.ClearProjectID()
	} else {
		update.SetProjectID(projectID)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return nil, ClassifyDBError("move session", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return s.GetSession(ctx, userID, id)
}

// SaveChatTask upserts the chat task identified by req.TaskID and touches
// the session's updatedTime. MessageBubbles and TaskMetadata are stored
// opaque — their schema belongs to the frontend. Saving the same task twice
// keeps one row with the latest fields and the original createdTime.
func (s *SessionService) SaveChatTask(httpCtx context.Context, userID, sessionID string, req models.SaveChatTaskRequest) (*ent.ChatTask, error) {
	if !validSessionID(sessionID) {
		return nil, ErrNotFound
	}
	if req.TaskID == "" {
		return nil, NewValidationError("taskId", "required")
	}
	if req.MessageBubbles == "" {
		return nil, NewValidationError("messageBubbles", "required")
	}
	if !json.Valid([]byte(req.MessageBubbles)) {
		return nil, NewValidationError("messageBubbles", "must be a JSON string")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := s.GetSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, ClassifyDBError("start transaction", err)
	}
	defer tx.Rollback()

	existing, err := tx.ChatTask.Query().
		Where(chattask.ID(req.TaskID), chattask.UserID(userID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, ClassifyDBError("load chat task", err)
	}

	now := nowMs()
	var saved *ent.ChatTask
	if existing != nil {
		update := existing.Update().
			SetMessageBubbles(req.MessageBubbles).
			SetUpdatedTime(now)
		if req.UserMessage != nil {
			update.SetUserMessage(*req.UserMessage)
		}
		if req.TaskMetadata != nil {
			update.SetTaskMetadata(*req.TaskMetadata)
		}
		saved, err = update.Save(ctx)
	} else {
		create := tx.ChatTask.Create().
			SetID(req.TaskID).
			SetSessionID(sessionID).
			SetUserID(userID).
			SetMessageBubbles(req.MessageBubbles).
			SetCreatedTime(now)
		if req.UserMessage != nil {
			create.SetUserMessage(*req.UserMessage)
		}
		if req.TaskMetadata != nil {
			create.SetTaskMetadata(*req.TaskMetadata)
		}
		saved, err = create.Save(ctx)
	}
	if err != nil {
		return nil, ClassifyDBError("save chat task", err)
	}

	if err := tx.Session.Update().
		Where(session.ID(sessionID)).
		SetUpdatedTime(now).
		Exec(ctx); err != nil {
		return nil, ClassifyDBError("touch session", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, ClassifyDBError("commit chat task", err)
	}
	return saved, nil
}

// GetSessionTasks returns all chat tasks of a session in chronological
// order.
func (s *SessionService) GetSessionTasks(ctx context.Context, userID, sessionID string) ([]*ent.ChatTask, error) {
	if _, err := s.GetSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}
	tasks, err := s.client.ChatTask.Query().
		Where(chattask.SessionID(sessionID)).
		Order(ent.Asc(chattask.FieldCreatedTime)).
		All(ctx)
	if err != nil {
		return nil, ClassifyDBError("list chat tasks", err)
	}
	return tasks, nil
}

// GetSessionMessagesFromTasks flattens every task's bubbles into the legacy
// message list: the concatenation, in createdTime order, of each task's
// bubbles. Bubbles that fail to parse are skipped.
func (s *SessionService) GetSessionMessagesFromTasks(ctx context.Context, userID, sessionID string) ([]models.ChatMessage, error) {
	tasks, err := s.GetSessionTasks(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	messages := make([]models.ChatMessage, 0, len(tasks)*2)
	for _, t := range tasks {
		messages = append(messages, FlattenBubbles(t)...)
	}
	return messages, nil
}

// FlattenBubbles parses one task's opaque bubble bundle into messages.
// Only the fields the legacy view needs are read; unknown bubble fields are
// carried in Metadata.
func FlattenBubbles(t *ent.ChatTask) []models.ChatMessage {
	var bubbles []map[string]any
	if err := json.Unmarshal([]byte(t.MessageBubbles), &bubbles); err != nil {
		slog.Warn("Skipping unparseable message bubbles", "task_id", t.ID, "error", err)
		return nil
	}

	messages := make([]models.ChatMessage, 0, len(bubbles))
	for _, b := range bubbles {
		msg := models.ChatMessage{TaskID: t.ID, CreatedTime: t.CreatedTime}
		if id, ok := b["id"].(string); ok {
			msg.BubbleID = id
		}
		if typ, ok := b["type"].(string); ok {
			msg.BubbleType = typ
			if typ == "user" {
				msg.Role = "user"
			} else {
				msg.Role = "assistant"
			}
		}
		if text, ok := b["text"].(string); ok {
			msg.Text = text
		}
		if meta, ok := b["metadata"].(map[string]any); ok {
			msg.Metadata = meta
		}
		messages = append(messages, msg)
	}
	return messages
}

// SearchSessions performs a name-only search over the user's sessions.
func (s *SessionService) SearchSessions(ctx context.Context, userID, query, projectID string, p models.Pagination) (*models.SessionListResponse, error) {
	if query == "" {
		return nil, NewValidationError("query", "required")
	}
	p, err := clampPagination(p)
	if err != nil {
		return nil, err
	}

	q := s.client.Session.Query().
		Where(
			session.UserID(userID),
			session.DeletedAtIsNil(),
			session.NameContainsFold(query),
		)
	if projectID != "" {
		q = q.Where(session.ProjectID(projectID))
	}

	totalCount, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, ClassifyDBError("count search results", err)
	}
	sessions, err := q.
		Order(ent.Desc(session.FieldUpdatedTime)).
		Offset((p.PageNumber - 1) * p.PageSize).
		Limit(p.PageSize).
		All(ctx)
	if err != nil {
		return nil, ClassifyDBError("search sessions", err)
	}

	summaries := make([]models.SessionSummary, 0, len(sessions))
	for _, sess := range sessions {
		summaries = append(summaries, models.NewSessionSummary(sess))
	}
	if err := s.enrichProjectNames(ctx, summaries); err != nil {
		return nil, err
	}

	return &models.SessionListResponse{
		Data: summaries,
		Meta: models.NewPageMeta(p, totalCount),
	}, nil
}

// FindByExternalContextID resolves a session from the client-scoped A2A
// context id.
func (s *SessionService) FindByExternalContextID(ctx context.Context, userID, externalContextID string) (*ent.Session, error) {
	if externalContextID == "" {
		return nil, ErrNotFound
	}
	sess, err := s.client.Session.Query().
		Where(
			session.UserID(userID),
			session.ExternalContextID(externalContextID),
			session.DeletedAtIsNil(),
		).
		Order(ent.Desc(session.FieldCreatedTime)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, ClassifyDBError("find session by context", err)
	}
	return sess, nil
}
