package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/supplychain-service/internal/domain"
	"github.com/spec-kit/supplychain-service/internal/events"
)

type fakeOrderRepo struct {
	created []*domain.Order
	byID    map[int64]*domain.Order
}

func (f *fakeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	order.ID = int64(len(f.created) + 1)
	f.created = append(f.created, order)
	return nil
}

func (f *fakeOrderRepo) Update(_ context.Context, order *domain.Order) error {
	if f.byID == nil || f.byID[order.ID] == nil {
		return pgx.ErrNoRows
	}
	f.byID[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	if order, ok := f.byID[id]; ok {
		return order, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeOrderRepo) List(_ context.Context, _, _ int) ([]domain.Order, error) {
	return nil, nil
}

type fakeSupplierRepo struct {
	known map[int64]*domain.Supplier
}

func (f *fakeSupplierRepo) Create(_ context.Context, _ *domain.Supplier) error { return nil }
func (f *fakeSupplierRepo) Update(_ context.Context, _ *domain.Supplier) error { return nil }
func (f *fakeSupplierRepo) Delete(_ context.Context, _ int64) error            { return nil }
func (f *fakeSupplierRepo) List(_ context.Context, _, _ int) ([]domain.Supplier, error) {
	return nil, nil
}

func (f *fakeSupplierRepo) GetByID(_ context.Context, id int64) (*domain.Supplier, error) {
	if s, ok := f.known[id]; ok {
		return s, nil
	}
	return nil, pgx.ErrNoRows
}

func TestOrderCreateComputesTotal(t *testing.T) {
	orders := &fakeOrderRepo{}
	suppliers := &fakeSupplierRepo{known: map[int64]*domain.Supplier{5: {ID: 5, Name: "Acme"}}}
	svc := NewOrderService(orders, suppliers, events.NewInMemoryDispatcher())

	order := &domain.Order{
		SupplierID: 5,
		Items: []domain.OrderItem{
			{InventoryID: 1, Quantity: 3, UnitPrice: 2.5},
			{InventoryID: 2, Quantity: 1, UnitPrice: 10},
		},
	}
	require.NoError(t, svc.Create(context.Background(), 1, order))

	assert.Equal(t, 17.5, order.TotalAmount)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	require.Len(t, orders.created, 1)
}

func TestOrderCreateRejectsEmptyItems(t *testing.T) {
	svc := NewOrderService(&fakeOrderRepo{}, &fakeSupplierRepo{}, nil)
	err := svc.Create(context.Background(), 1, &domain.Order{SupplierID: 5})
	assert.Error(t, err)
}

func TestOrderCreateRejectsUnknownSupplier(t *testing.T) {
	svc := NewOrderService(&fakeOrderRepo{}, &fakeSupplierRepo{}, nil)
	err := svc.Create(context.Background(), 1, &domain.Order{
		SupplierID: 99,
		Items:      []domain.OrderItem{{InventoryID: 1, Quantity: 1, UnitPrice: 1}},
	})
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestOrderUpdateValidatesStatus(t *testing.T) {
	orders := &fakeOrderRepo{byID: map[int64]*domain.Order{
		3: {ID: 3, SupplierID: 5, Status: domain.OrderStatusPending},
	}}
	suppliers := &fakeSupplierRepo{known: map[int64]*domain.Supplier{5: {ID: 5}}}
	svc := NewOrderService(orders, suppliers, nil)

	bad := domain.OrderStatus("shipped")
	_, err := svc.Update(context.Background(), 1, 3, &bad, nil)
	assert.Error(t, err)

	good := domain.OrderStatusCompleted
	updated, err := svc.Update(context.Background(), 1, 3, &good, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, updated.Status)
}
