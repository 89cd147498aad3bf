package dto

import (
	"time"

	"github.com/spec-kit/supplychain-service/internal/domain"
)

// OrderItemRequest is one line of an order create payload.
type OrderItemRequest struct {
	InventoryID int64   `json:"inventory_id"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// OrderCreateRequest payload for placing an order.
type OrderCreateRequest struct {
	SupplierID int64              `json:"supplier_id"`
	Status     domain.OrderStatus `json:"status,omitempty"`
	Items      []OrderItemRequest `json:"items"`
}

// ToDomain maps the request onto a domain order.
func (r OrderCreateRequest) ToDomain() *domain.Order {
	order := &domain.Order{
		SupplierID: r.SupplierID,
		Status:     r.Status,
	}
	for _, item := range r.Items {
		order.Items = append(order.Items, domain.OrderItem{
			InventoryID: item.InventoryID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return order
}

// OrderUpdateRequest payload for changing an order.
type OrderUpdateRequest struct {
	Status     *domain.OrderStatus `json:"status,omitempty"`
	SupplierID *int64              `json:"supplier_id,omitempty"`
}

// OrderItemResponse is one line of an order.
type OrderItemResponse struct {
	ID          int64   `json:"id"`
	InventoryID int64   `json:"inventory_id"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// OrderResponse is the public shape of an order.
type OrderResponse struct {
	ID          int64               `json:"id"`
	OrderDate   time.Time           `json:"order_date"`
	Status      domain.OrderStatus  `json:"status"`
	TotalAmount float64             `json:"total_amount"`
	SupplierID  int64               `json:"supplier_id"`
	Items       []OrderItemResponse `json:"items,omitempty"`
}

// NewOrderResponse maps a domain order.
func NewOrderResponse(order *domain.Order) OrderResponse {
	resp := OrderResponse{
		ID:          order.ID,
		OrderDate:   order.OrderDate,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		SupplierID:  order.SupplierID,
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:          item.ID,
			InventoryID: item.InventoryID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return resp
}

// NewOrderResponses maps a slice of domain orders.
func NewOrderResponses(orders []domain.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, NewOrderResponse(&orders[i]))
	}
	return out
}
