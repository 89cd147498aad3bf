package service

import (
	"context"
	"errors"

	"github.com/spec-kit/supplychain-service/internal/domain"
	"github.com/spec-kit/supplychain-service/internal/events"
	"github.com/spec-kit/supplychain-service/internal/repository"
)

// OrderService manages purchase orders.
type OrderService struct {
	orders     repository.OrderRepository
	suppliers  repository.SupplierRepository
	dispatcher events.Dispatcher
}

// NewOrderService builds the service.
func NewOrderService(orders repository.OrderRepository, suppliers repository.SupplierRepository, dispatcher events.Dispatcher) *OrderService {
	return &OrderService{orders: orders, suppliers: suppliers, dispatcher: dispatcher}
}

// List returns a page of orders.
func (s *OrderService) List(ctx context.Context, offset, limit int) ([]domain.Order, error) {
	return s.orders.List(ctx, offset, clampLimit(limit))
}

// Get returns one order with its items.
func (s *OrderService) Get(ctx context.Context, id int64) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// Create places an order. The total is computed from the items; stock levels
// are decremented in the same transaction as the insert.
func (s *OrderService) Create(ctx context.Context, actorID int64, order *domain.Order) error {
	if len(order.Items) == 0 {
		return errors.New("order requires at least one item")
	}
	if _, err := s.suppliers.GetByID(ctx, order.SupplierID); err != nil {
		return err
	}
	if order.Status == "" {
		order.Status = domain.OrderStatusPending
	}

	var total float64
	for _, item := range order.Items {
		if item.Quantity <= 0 {
			return errors.New("item quantity must be positive")
		}
		total += float64(item.Quantity) * item.UnitPrice
	}
	order.TotalAmount = total

	if err := s.orders.Create(ctx, order); err != nil {
		return err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:       events.EventEntityCreated,
		ActorID:    actorID,
		EntityType: domain.ActivityEntityOrder,
		EntityID:   order.ID,
	})
	return nil
}

// Update changes order status or supplier; items are immutable after creation.
func (s *OrderService) Update(ctx context.Context, actorID int64, id int64, status *domain.OrderStatus, supplierID *int64) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if status != nil {
		switch *status {
		case domain.OrderStatusPending, domain.OrderStatusCompleted, domain.OrderStatusCancelled:
			order.Status = *status
		default:
			return nil, errors.New("unknown order status")
		}
	}
	if supplierID != nil {
		if _, err := s.suppliers.GetByID(ctx, *supplierID); err != nil {
			return nil, err
		}
		order.SupplierID = *supplierID
	}

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:       events.EventEntityUpdated,
		ActorID:    actorID,
		EntityType: domain.ActivityEntityOrder,
		EntityID:   order.ID,
	})
	return order, nil
}
