package domain

import "time"

// OrderStatus enumerates purchase order lifecycle states.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is the aggregate for purchase orders placed with a supplier.
type Order struct {
	ID          int64
	OrderDate   time.Time
	Status      OrderStatus
	TotalAmount float64
	SupplierID  int64
	Items       []OrderItem
}

// OrderItem is a single line of an order, referencing an inventory item.
type OrderItem struct {
	ID          int64
	OrderID     int64
	InventoryID int64
	Quantity    int
	UnitPrice   float64
}
