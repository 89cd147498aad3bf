package service

import (
	"context"

	"github.com/spec-kit/supplychain-service/internal/domain"
	"github.com/spec-kit/supplychain-service/internal/events"
	"github.com/spec-kit/supplychain-service/internal/repository"
)

// InventoryService manages stocked products.
type InventoryService struct {
	items      repository.InventoryRepository
	dispatcher events.Dispatcher
}

// NewInventoryService builds the service.
func NewInventoryService(items repository.InventoryRepository, dispatcher events.Dispatcher) *InventoryService {
	return &InventoryService{items: items, dispatcher: dispatcher}
}

// List returns a page of inventory items.
func (s *InventoryService) List(ctx context.Context, offset, limit int) ([]domain.InventoryItem, error) {
	return s.items.List(ctx, offset, clampLimit(limit))
}

// Get returns one item by id.
func (s *InventoryService) Get(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	return s.items.GetByID(ctx, id)
}

// Create stores a new item.
func (s *InventoryService) Create(ctx context.Context, actorID int64, item *domain.InventoryItem) error {
	if err := s.items.Create(ctx, item); err != nil {
		return err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:       events.EventEntityCreated,
		ActorID:    actorID,
		EntityType: domain.ActivityEntityInventory,
		EntityID:   item.ID,
		Payload:    events.EntityMutationPayload{Summary: item.ProductName},
	})
	return nil
}

// Update overwrites an existing item.
func (s *InventoryService) Update(ctx context.Context, actorID int64, item *domain.InventoryItem) error {
	if err := s.items.Update(ctx, item); err != nil {
		return err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:       events.EventEntityUpdated,
		ActorID:    actorID,
		EntityType: domain.ActivityEntityInventory,
		EntityID:   item.ID,
		Payload:    events.EntityMutationPayload{Summary: item.ProductName},
	})
	return nil
}

// Delete removes an item.
func (s *InventoryService) Delete(ctx context.Context, actorID, id int64) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:       events.EventEntityDeleted,
		ActorID:    actorID,
		EntityType: domain.ActivityEntityInventory,
		EntityID:   id,
	})
	return nil
}
