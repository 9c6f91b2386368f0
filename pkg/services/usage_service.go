package services

import (
	"context"
	"time"

	"github.com/solacecommunity/agent-mesh-gateway/ent"
	"github.com/solacecommunity/agent-mesh-gateway/ent/monthlyusage"
	"github.com/solacecommunity/agent-mesh-gateway/ent/tokentransaction"
)

// TokenUsage is one LLM call's token accounting input. Costs are credits:
// 1,000,000 credits = $1.
type TokenUsage struct {
	UserID    string
	TaskID    string
	Type      string // prompt, completion, cached
	Model     string
	RawTokens int64
	Rate      float64
	Source    string
	ToolName  string
	Context   string
}

// UsageService maintains the append-only token transaction log and the
// per-(user, month) aggregate.
type UsageService struct {
	client *ent.Client
}

// NewUsageService creates a new UsageService.
func NewUsageService(client *ent.Client) *UsageService {
	return &UsageService{client: client}
}

// RecordUsage appends a transaction and folds it into the monthly aggregate
// in one transaction.
func (s *UsageService) RecordUsage(httpCtx context.Context, usage TokenUsage) error {
	if usage.UserID == "" {
		return NewValidationError("user_id", "required")
	}
	switch usage.Type {
	case "prompt", "completion", "cached":
	default:
		return NewValidationError("transaction_type", "must be prompt, completion, or cached")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cost := int64(float64(usage.RawTokens) * usage.Rate)
	now := nowMs()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return ClassifyDBError("start transaction", err)
	}
	defer tx.Rollback()

	create := tx.TokenTransaction.Create().
		SetUserID(usage.UserID).
		SetTransactionType(tokentransaction.TransactionType(usage.Type)).
		SetModel(usage.Model).
		SetRawTokens(usage.RawTokens).
		SetTokenCost(cost).
		SetRate(usage.Rate).
		SetSource(usage.Source).
		SetCreatedAt(now)
	if usage.TaskID != "" {
		create.SetTaskID(usage.TaskID)
	}
	if usage.ToolName != "" {
		create.SetToolName(usage.ToolName)
	}
	if usage.Context != "" {
		create.SetContext(usage.Context)
	}
	if err := create.Exec(ctx); err != nil {
		return ClassifyDBError("record token transaction", err)
	}

	if err := s.foldIntoMonthly(ctx, tx, usage, cost, now); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return ClassifyDBError("commit usage", err)
	}
	return nil
}

func (s *UsageService) foldIntoMonthly(ctx context.Context, tx *ent.Tx, usage TokenUsage, cost, now int64) error {
	month := time.UnixMilli(now).UTC().Format("2006-01")

	row, err := tx.MonthlyUsage.Query().
		Where(monthlyusage.UserID(usage.UserID), monthlyusage.Month(month)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return ClassifyDBError("load monthly usage", err)
	}

	if row == nil {
		create := tx.MonthlyUsage.Create().
			SetUserID(usage.UserID).
			SetMonth(month).
			SetTotalUsage(cost).
			SetUsageByModel(map[string]int64{usage.Model: cost}).
			SetUsageBySource(map[string]int64{usage.Source: cost}).
			SetCreatedAt(now).
			SetUpdatedAt(now)
		applyTypeUsage(create.Mutation(), usage.Type, cost)
		if err := create.Exec(ctx); err != nil {
			return ClassifyDBError("create monthly usage", err)
		}
		return nil
	}

	byModel := row.UsageByModel
	if byModel == nil {
		byModel = map[string]int64{}
	}
	byModel[usage.Model] += cost
	bySource := row.UsageBySource
	if bySource == nil {
		bySource = map[string]int64{}
	}
	bySource[usage.Source] += cost

	update := row.Update().
		AddTotalUsage(cost).
		SetUsageByModel(byModel).
		SetUsageBySource(bySource).
		SetUpdatedAt(now)
	switch usage.Type {
	case "prompt":
		update.AddPromptUsage(cost)
	case "completion":
		update.AddCompletionUsage(cost)
	case "cached":
		update.AddCachedUsage(cost)
	}
	if err := update.Exec(ctx); err != nil {
		return ClassifyDBError("update monthly usage", err)
	}
	return nil
}

// applyTypeUsage sets the per-type column on a fresh aggregate row.
func applyTypeUsage(m *ent.MonthlyUsageMutation, usageType string, cost int64) {
	switch usageType {
	case "prompt":
		m.SetPromptUsage(cost)
	case "completion":
		m.SetCompletionUsage(cost)
	case "cached":
		m.SetCachedUsage(cost)
	}
}

// GetMonthlyUsage returns the aggregate for a user and YYYY-MM month, or
// ErrNotFound.
func (s *UsageService) GetMonthlyUsage(ctx context.Context, userID, month string) (*ent.MonthlyUsage, error) {
	row, err := s.client.MonthlyUsage.Query().
		Where(monthlyusage.UserID(userID), monthlyusage.Month(month)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, ClassifyDBError("get monthly usage", err)
	}
	return row, nil
}
