package domain

// Supplier models an upstream vendor.
type Supplier struct {
	ID          int64
	Name        string
	ContactName string
	Email       string
	Phone       string
	Address     string
	IsActive    bool
}
