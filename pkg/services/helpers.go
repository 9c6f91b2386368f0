package services

import (
	"fmt"
	"time"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/database"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// nowMs returns the current time as epoch milliseconds, the timestamp unit
// used across the data model.
func nowMs() int64 {
	return time.Now().UnixMilli()
}

// validSessionID rejects ids that frontends commonly serialize from a
// missing value. They map to NotFound, not BadRequest, so clients treat them
// like any other unknown session.
func validSessionID(id string) bool {
	switch id {
	case "", "null", "undefined":
		return false
	}
	return true
}

// clampPagination applies the page bounds: pageSize is clamped into
// [1,100] with a default of 20; pageNumber below 1 is rejected.
func clampPagination(p models.Pagination) (models.Pagination, error) {
	if p.PageNumber == 0 {
		p.PageNumber = 1
	}
	if p.PageNumber < 1 {
		return p, NewValidationError("pageNumber", "must be at least 1")
	}
	if p.PageSize <= 0 {
		p.PageSize = defaultPageSize
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
	return p, nil
}

// ClassifyDBError rewrites invalidated-connection failures into
// ErrTransientBackend so the HTTP layer can answer 503 "please retry";
// everything else is wrapped with op context.
func ClassifyDBError(op string, err error) error {
	if err == nil {
		return nil
	}
	if database.IsTransientConnectionError(err) {
		return fmt.Errorf("%w: %s: %v", ErrTransientBackend, op, err)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
