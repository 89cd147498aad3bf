package dto

import (
	"time"

	"github.com/spec-kit/supplychain-service/internal/domain"
)

// InventoryRequest payload for create/update.
type InventoryRequest struct {
	ProductName string  `json:"product_name"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Category    string  `json:"category"`
	Location    string  `json:"location"`
}

// ToDomain maps the request onto a domain item.
func (r InventoryRequest) ToDomain(id int64) *domain.InventoryItem {
	return &domain.InventoryItem{
		ID:          id,
		ProductName: r.ProductName,
		Description: r.Description,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		Category:    r.Category,
		Location:    r.Location,
	}
}

// InventoryResponse is the public shape of an inventory item.
type InventoryResponse struct {
	ID          int64     `json:"id"`
	ProductName string    `json:"product_name"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	LastUpdated time.Time `json:"last_updated"`
}

// NewInventoryResponse maps a domain item.
func NewInventoryResponse(item *domain.InventoryItem) InventoryResponse {
	return InventoryResponse{
		ID:          item.ID,
		ProductName: item.ProductName,
		Description: item.Description,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		Category:    item.Category,
		Location:    item.Location,
		LastUpdated: item.LastUpdated,
	}
}

// NewInventoryResponses maps a slice of domain items.
func NewInventoryResponses(items []domain.InventoryItem) []InventoryResponse {
	out := make([]InventoryResponse, 0, len(items))
	for i := range items {
		out = append(out, NewInventoryResponse(&items[i]))
	}
	return out
}
