package dto

import "github.com/spec-kit/supplychain-service/internal/domain"

// SupplierRequest payload for create/update.
type SupplierRequest struct {
	Name        string `json:"name"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// ToDomain maps the request onto a domain supplier.
func (r SupplierRequest) ToDomain(id int64) *domain.Supplier {
	supplier := &domain.Supplier{
		ID:          id,
		Name:        r.Name,
		ContactName: r.ContactName,
		Email:       r.Email,
		Phone:       r.Phone,
		Address:     r.Address,
		IsActive:    true,
	}
	if r.IsActive != nil {
		supplier.IsActive = *r.IsActive
	}
	return supplier
}

// SupplierResponse is the public shape of a supplier.
type SupplierResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	IsActive    bool   `json:"is_active"`
}

// NewSupplierResponse maps a domain supplier.
func NewSupplierResponse(supplier *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:          supplier.ID,
		Name:        supplier.Name,
		ContactName: supplier.ContactName,
		Email:       supplier.Email,
		Phone:       supplier.Phone,
		Address:     supplier.Address,
		IsActive:    supplier.IsActive,
	}
}

// NewSupplierResponses maps a slice of domain suppliers.
func NewSupplierResponses(suppliers []domain.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		out = append(out, NewSupplierResponse(&suppliers[i]))
	}
	return out
}
