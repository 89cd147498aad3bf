package domain

import "time"

// InventoryItem models a stocked product.
type InventoryItem struct {
	ID          int64
	ProductName string
	Description string
	Quantity    int
	UnitPrice   float64
	Category    string
	Location    string
	LastUpdated time.Time
}
