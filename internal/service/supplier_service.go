package service

import (
	"context"

	"github.com/spec-kit/supplychain-service/internal/domain"
	"github.com/spec-kit/supplychain-service/internal/events"
	"github.com/spec-kit/supplychain-service/internal/repository"
)

// SupplierService manages vendors.
type SupplierService struct {
	suppliers  repository.SupplierRepository
	dispatcher events.Dispatcher
}

// NewSupplierService builds the service.
func NewSupplierService(suppliers repository.SupplierRepository, dispatcher events.Dispatcher) *SupplierService {
	return &SupplierService{suppliers: suppliers, dispatcher: dispatcher}
}

// List returns a page of suppliers.
func (s *SupplierService) List(ctx context.Context, offset, limit int) ([]domain.Supplier, error) {
	return s.suppliers.List(ctx, offset, clampLimit(limit))
}

// Get returns one supplier by id.
func (s *SupplierService) Get(ctx context.Context, id int64) (*domain.Supplier, error) {
	return s.suppliers.GetByID(ctx, id)
}

// Create stores a new supplier.
func (s *SupplierService) Create(ctx context.Context, actorID int64, supplier *domain.Supplier) error {
	supplier.IsActive = true
	if err := s.suppliers.Create(ctx, supplier); err != nil {
		return err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:       events.EventEntityCreated,
		ActorID:    actorID,
		EntityType: domain.ActivityEntitySupplier,
		EntityID:   supplier.ID,
		Payload:    events.EntityMutationPayload{Summary: supplier.Name},
	})
	return nil
}

// Update overwrites an existing supplier.
func (s *SupplierService) Update(ctx context.Context, actorID int64, supplier *domain.Supplier) error {
	if err := s.suppliers.Update(ctx, supplier); err != nil {
		return err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:       events.EventEntityUpdated,
		ActorID:    actorID,
		EntityType: domain.ActivityEntitySupplier,
		EntityID:   supplier.ID,
		Payload:    events.EntityMutationPayload{Summary: supplier.Name},
	})
	return nil
}

// Delete removes a supplier.
func (s *SupplierService) Delete(ctx context.Context, actorID, id int64) error {
	if err := s.suppliers.Delete(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:       events.EventEntityDeleted,
		ActorID:    actorID,
		EntityType: domain.ActivityEntitySupplier,
		EntityID:   id,
	})
	return nil
}
