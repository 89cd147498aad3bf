package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/spec-kit/supplychain-service/internal/api/dto"
)

// Auth wraps the token and identity endpoints.
type Auth struct {
	client *Client
}

// NewAuth builds the auth caller.
func NewAuth(client *Client) *Auth {
	return &Auth{client: client}
}

// ExchangeToken trades credentials for a bearer token via POST /token.
func (a *Auth) ExchangeToken(ctx context.Context, username, password string) (*dto.TokenResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var token dto.TokenResponse
	if err := a.client.FormPost(ctx, "/token", form, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Me fetches the identity behind the current credential.
func (a *Auth) Me(ctx context.Context) (*dto.UserResponse, error) {
	var user dto.UserResponse
	if err := a.client.Get(ctx, "/users/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Inventory wraps the /inventory/ resource.
type Inventory struct {
	client *Client
}

// NewInventory builds the inventory caller.
func NewInventory(client *Client) *Inventory {
	return &Inventory{client: client}
}

func (r *Inventory) List(ctx context.Context) ([]dto.InventoryResponse, error) {
	var items []dto.InventoryResponse
	if err := r.client.Get(ctx, "/inventory/", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Inventory) Get(ctx context.Context, id int64) (*dto.InventoryResponse, error) {
	var item dto.InventoryResponse
	if err := r.client.Get(ctx, fmt.Sprintf("/inventory/%d", id), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Inventory) Create(ctx context.Context, req dto.InventoryRequest) (*dto.InventoryResponse, error) {
	var item dto.InventoryResponse
	if err := r.client.Post(ctx, "/inventory/", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Inventory) Update(ctx context.Context, id int64, req dto.InventoryRequest) (*dto.InventoryResponse, error) {
	var item dto.InventoryResponse
	if err := r.client.Put(ctx, fmt.Sprintf("/inventory/%d", id), req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Inventory) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/inventory/%d", id))
}

// Suppliers wraps the /suppliers/ resource.
type Suppliers struct {
	client *Client
}

// NewSuppliers builds the suppliers caller.
func NewSuppliers(client *Client) *Suppliers {
	return &Suppliers{client: client}
}

func (r *Suppliers) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	var suppliers []dto.SupplierResponse
	if err := r.client.Get(ctx, "/suppliers/", &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *Suppliers) Get(ctx context.Context, id int64) (*dto.SupplierResponse, error) {
	var supplier dto.SupplierResponse
	if err := r.client.Get(ctx, fmt.Sprintf("/suppliers/%d", id), &supplier); err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *Suppliers) Create(ctx context.Context, req dto.SupplierRequest) (*dto.SupplierResponse, error) {
	var supplier dto.SupplierResponse
	if err := r.client.Post(ctx, "/suppliers/", req, &supplier); err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *Suppliers) Update(ctx context.Context, id int64, req dto.SupplierRequest) (*dto.SupplierResponse, error) {
	var supplier dto.SupplierResponse
	if err := r.client.Put(ctx, fmt.Sprintf("/suppliers/%d", id), req, &supplier); err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *Suppliers) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/suppliers/%d", id))
}

// Orders wraps the /orders/ resource.
type Orders struct {
	client *Client
}

// NewOrders builds the orders caller.
func NewOrders(client *Client) *Orders {
	return &Orders{client: client}
}

func (r *Orders) List(ctx context.Context) ([]dto.OrderResponse, error) {
	var orders []dto.OrderResponse
	if err := r.client.Get(ctx, "/orders/", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *Orders) Get(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	var order dto.OrderResponse
	if err := r.client.Get(ctx, fmt.Sprintf("/orders/%d", id), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *Orders) Create(ctx context.Context, req dto.OrderCreateRequest) (*dto.OrderResponse, error) {
	var order dto.OrderResponse
	if err := r.client.Post(ctx, "/orders/", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *Orders) Update(ctx context.Context, id int64, req dto.OrderUpdateRequest) (*dto.OrderResponse, error) {
	var order dto.OrderResponse
	if err := r.client.Put(ctx, fmt.Sprintf("/orders/%d", id), req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// SearchResult is the response shape of POST /ai/search/.
type SearchResult struct {
	Success bool             `json:"success"`
	Query   string           `json:"query"`
	SQL     string           `json:"sql,omitempty"`
	Results []map[string]any `json:"results,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// Search wraps the natural-language search endpoint.
type Search struct {
	client *Client
}

// NewSearch builds the search caller.
func NewSearch(client *Client) *Search {
	return &Search{client: client}
}

func (r *Search) Query(ctx context.Context, queryText string) (*SearchResult, error) {
	var result SearchResult
	if err := r.client.Post(ctx, "/ai/search/", dto.SearchRequest{QueryText: queryText}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Activity wraps the remote audit endpoint.
type Activity struct {
	client *Client
}

// NewActivity builds the activity caller.
func NewActivity(client *Client) *Activity {
	return &Activity{client: client}
}

func (r *Activity) Record(ctx context.Context, req dto.ActivityCreateRequest) error {
	return r.client.Post(ctx, "/activity/", req, nil)
}

func (r *Activity) List(ctx context.Context) ([]dto.ActivityResponse, error) {
	var logs []dto.ActivityResponse
	if err := r.client.Get(ctx, "/activity/", &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
