package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/spec-kit/supplychain-service/internal/domain"
	"github.com/spec-kit/supplychain-service/internal/events"
	"github.com/spec-kit/supplychain-service/internal/repository"
)

// ActivityService persists the audit trail, both from domain events and from
// records submitted directly by API clients.
type ActivityService struct {
	logs       repository.ActivityRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewActivityService builds the service.
func NewActivityService(logs repository.ActivityRepository, dispatcher events.Dispatcher, logger *zap.Logger) *ActivityService {
	return &ActivityService{logs: logs, dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes the recorder to domain events.
func (s *ActivityService) RegisterHandlers() {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Subscribe(events.EventEntityCreated, s.handleEvent)
	s.dispatcher.Subscribe(events.EventEntityUpdated, s.handleEvent)
	s.dispatcher.Subscribe(events.EventEntityDeleted, s.handleEvent)
	s.dispatcher.Subscribe(events.EventUserLoggedIn, s.handleEvent)
	s.dispatcher.Subscribe(events.EventSearchRan, s.handleEvent)
}

// Record stores an audit entry submitted by a client.
func (s *ActivityService) Record(ctx context.Context, log *domain.ActivityLog) error {
	return s.logs.Create(ctx, log)
}

// List returns a page of the audit trail, newest first.
func (s *ActivityService) List(ctx context.Context, offset, limit int) ([]domain.ActivityLog, error) {
	return s.logs.List(ctx, offset, clampLimit(limit))
}

func (s *ActivityService) handleEvent(ctx context.Context, event events.Event) error {
	details := ""
	if event.Payload != nil {
		if raw, err := json.Marshal(event.Payload); err == nil {
			details = string(raw)
		}
	}

	log := &domain.ActivityLog{
		UserID:     event.ActorID,
		Action:     string(event.Type),
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		Details:    details,
	}
	if err := s.logs.Create(ctx, log); err != nil {
		// audit persistence must not disturb the originating request
		s.logger.Warn("failed to persist activity log", zap.Error(err))
	}
	return nil
}
