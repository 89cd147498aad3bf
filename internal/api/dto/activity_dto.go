package dto

import (
	"time"

	"github.com/spec-kit/supplychain-service/internal/domain"
)

// ActivityCreateRequest payload submitted by API clients for audit purposes.
type ActivityCreateRequest struct {
	Action     string                `json:"action"`
	EntityType domain.ActivityEntity `json:"entity_type,omitempty"`
	EntityID   int64                 `json:"entity_id,omitempty"`
	Details    string                `json:"details,omitempty"`
}

// ActivityResponse is the public shape of an audit entry.
type ActivityResponse struct {
	ID         int64                 `json:"id"`
	UserID     int64                 `json:"user_id"`
	Action     string                `json:"action"`
	EntityType domain.ActivityEntity `json:"entity_type"`
	EntityID   int64                 `json:"entity_id"`
	Details    string                `json:"details"`
	Timestamp  time.Time             `json:"timestamp"`
}

// NewActivityResponses maps a slice of domain audit entries.
func NewActivityResponses(logs []domain.ActivityLog) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(logs))
	for _, log := range logs {
		out = append(out, ActivityResponse{
			ID:         log.ID,
			UserID:     log.UserID,
			Action:     log.Action,
			EntityType: log.EntityType,
			EntityID:   log.EntityID,
			Details:    log.Details,
			Timestamp:  log.Timestamp,
		})
	}
	return out
}

// SearchRequest payload for natural-language search.
type SearchRequest struct {
	QueryText string `json:"query_text"`
}
