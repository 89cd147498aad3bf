package events

import (
	"time"

	"github.com/spec-kit/supplychain-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEntityCreated EventType = "entity_created"
	EventEntityUpdated EventType = "entity_updated"
	EventEntityDeleted EventType = "entity_deleted"
	EventUserLoggedIn  EventType = "user_logged_in"
	EventSearchRan     EventType = "search_ran"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID         string                `json:"id"`
	Type       EventType             `json:"type"`
	ActorID    int64                 `json:"actor_id"`
	EntityType domain.ActivityEntity `json:"entity_type,omitempty"`
	EntityID   int64                 `json:"entity_id,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
	Payload    interface{}           `json:"payload,omitempty"`
}

// EntityMutationPayload describes a create/update/delete of a resource.
type EntityMutationPayload struct {
	Summary string `json:"summary,omitempty"`
}

// SearchRanPayload describes an executed natural-language search.
type SearchRanPayload struct {
	Query string `json:"query"`
	SQL   string `json:"sql,omitempty"`
}
