// Package models holds the request and response shapes shared between the
// HTTP layer and the services. All JSON fields are camelCase.
package models

import (
	"github.com/solacecommunity/agent-mesh-gateway/ent"
)

// CreateSessionRequest contains fields for creating a session.
type CreateSessionRequest struct {
	SessionID         string `json:"sessionId,omitempty"`
	Name              string `json:"name,omitempty"`
	AgentID           string `json:"agentId,omitempty"`
	ProjectID         string `json:"projectId,omitempty"`
	GatewayType       string `json:"gatewayType,omitempty"`
	ExternalContextID string `json:"externalContextId,omitempty"`
}

// Pagination is the common page selector. PageNumber is 1-based.
type Pagination struct {
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
}

// PageMeta describes one result page.
type PageMeta struct {
	PageNumber int  `json:"pageNumber"`
	PageSize   int  `json:"pageSize"`
	TotalCount int  `json:"totalCount"`
	TotalPages int  `json:"totalPages"`
	NextPage   *int `json:"nextPage"`
}

// NewPageMeta computes paging metadata for a total row count.
func NewPageMeta(p Pagination, totalCount int) PageMeta {
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = (totalCount + p.PageSize - 1) / p.PageSize
	}
	meta := PageMeta{
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
	if p.PageNumber < totalPages {
		next := p.PageNumber + 1
		meta.NextPage = &next
	}
	return meta
}

// SessionSummary is the list and detail projection of a session.
type SessionSummary struct {
	ID                  string         `json:"id"`
	UserID              string         `json:"userId"`
	Name                *string        `json:"name"`
	AgentID             *string        `json:"agentId"`
	ProjectID           *string        `json:"projectId"`
	ProjectName         *string        `json:"projectName,omitempty"`
	CreatedTime         int64          `json:"createdTime"`
	UpdatedTime         int64          `json:"updatedTime"`
	IsCompressionBranch bool           `json:"isCompressionBranch"`
	CompressionMetadata map[string]any `json:"compressionMetadata,omitempty"`
}

// NewSessionSummary projects an ent row.
func NewSessionSummary(s *ent.Session) SessionSummary {
	return SessionSummary{
		ID:                  s.ID,
		UserID:              s.UserID,
		Name:                s.Name,
		AgentID:             s.AgentID,
		ProjectID:           s.ProjectID,
		CreatedTime:         s.CreatedTime,
		UpdatedTime:         s.UpdatedTime,
		IsCompressionBranch: s.IsCompressionBranch,
		CompressionMetadata: s.CompressionMetadata,
	}
}

// SessionListResponse is one page of sessions.
type SessionListResponse struct {
	Data []SessionSummary `json:"data"`
	Meta PageMeta         `json:"meta"`
}

// CompressAndBranchRequest asks for a compressed continuation branch.
type CompressAndBranchRequest struct {
	AgentID     string `json:"agentId,omitempty"`
	Name        string `json:"name,omitempty"`
	LLMProvider string `json:"llmProvider,omitempty"`
	LLMModel    string `json:"llmModel,omitempty"`
}

// CompressAndBranchResponse reports the created branch.
type CompressAndBranchResponse struct {
	NewSessionID           string `json:"newSessionId"`
	ParentSessionID        string `json:"parentSessionId"`
	SummaryTaskID          string `json:"summaryTaskId"`
	CompressedMessageCount int    `json:"compressedMessageCount"`
}
