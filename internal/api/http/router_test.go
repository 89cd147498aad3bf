package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/supplychain-service/internal/api/http/handlers"
	"github.com/spec-kit/supplychain-service/internal/auth"
	"github.com/spec-kit/supplychain-service/internal/config"
	"github.com/spec-kit/supplychain-service/internal/domain"
	"github.com/spec-kit/supplychain-service/internal/events"
	"github.com/spec-kit/supplychain-service/internal/observability"
	"github.com/spec-kit/supplychain-service/internal/service"
)

type memUserRepo struct {
	nextID int64
	users  map[int64]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1, users: map[int64]*domain.User{}}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memUserRepo) List(_ context.Context, offset, limit int) ([]domain.User, error) {
	var out []domain.User
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

type memInventoryRepo struct {
	nextID int64
	items  map[int64]*domain.InventoryItem
}

func newMemInventoryRepo() *memInventoryRepo {
	return &memInventoryRepo{nextID: 1, items: map[int64]*domain.InventoryItem{}}
}

func (r *memInventoryRepo) Create(_ context.Context, item *domain.InventoryItem) error {
	item.ID = r.nextID
	r.nextID++
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *memInventoryRepo) Update(_ context.Context, item *domain.InventoryItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *memInventoryRepo) GetByID(_ context.Context, id int64) (*domain.InventoryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *item
	return &copied, nil
}

func (r *memInventoryRepo) List(_ context.Context, offset, limit int) ([]domain.InventoryItem, error) {
	var out []domain.InventoryItem
	for _, item := range r.items {
		out = append(out, *item)
	}
	return out, nil
}

func (r *memInventoryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.AccessTokenTTLMinutes = 60
	cfg.Auth.BcryptCost = 4

	users := newMemUserRepo()
	inventory := newMemInventoryRepo()
	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(cfg, users, dispatcher)
	inventoryService := service.NewInventoryService(inventory, dispatcher)

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler(nil, nil),
		Auth:           handlers.NewAuthHandler(authService),
		Inventory:      handlers.NewInventoryHandler(inventoryService),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager(), users),
	})
	return app
}

func createUser(t *testing.T, app *fiber.App, email, password string, role domain.Role) {
	t.Helper()
	payload, _ := json.Marshal(map[string]any{
		"email":     email,
		"full_name": "Test User",
		"password":  password,
		"role":      role,
	})
	req := httptest.NewRequest(http.MethodPost, "/users/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func obtainToken(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	form := url.Values{"username": {email}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&token))
	require.Equal(t, "bearer", token.TokenType)
	return token.AccessToken
}

func authedRequest(method, target, token string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func TestTokenExchangeAndIdentity(t *testing.T) {
	app := newTestApp(t)
	createUser(t, app, "jane@corp.test", "pw", domain.RoleManager)

	token := obtainToken(t, app, "jane@corp.test", "pw")

	resp, err := app.Test(authedRequest(http.MethodGet, "/users/me", token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var me struct {
		ID       int64  `json:"id"`
		Email    string `json:"email"`
		FullName string `json:"full_name"`
		Role     string `json:"role"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&me))
	assert.Equal(t, "jane@corp.test", me.Email)
	assert.Equal(t, "Test User", me.FullName)
	assert.Equal(t, "manager", me.Role)
}

func TestTokenExchangeRejectsBadPassword(t *testing.T) {
	app := newTestApp(t)
	createUser(t, app, "jane@corp.test", "pw", domain.RoleUser)

	form := url.Values{"username": {"jane@corp.test"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/inventory/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(authedRequest(http.MethodGet, "/inventory/", "garbage", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRoleEnforcement(t *testing.T) {
	app := newTestApp(t)
	createUser(t, app, "viewer@corp.test", "pw", domain.RoleUser)
	createUser(t, app, "manager@corp.test", "pw", domain.RoleManager)

	viewerToken := obtainToken(t, app, "viewer@corp.test", "pw")
	managerToken := obtainToken(t, app, "manager@corp.test", "pw")

	item := `{"product_name":"Widget","quantity":5,"unit_price":2.5}`

	// plain users can read but not write
	resp, err := app.Test(authedRequest(http.MethodGet, "/inventory/", viewerToken, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(authedRequest(http.MethodPost, "/inventory/", viewerToken, strings.NewReader(item)), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// managers can write but not delete
	resp, err = app.Test(authedRequest(http.MethodPost, "/inventory/", managerToken, strings.NewReader(item)), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = app.Test(authedRequest(http.MethodDelete, "/inventory/1", managerToken, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// admin listing is off limits to both
	resp, err = app.Test(authedRequest(http.MethodGet, "/users/", managerToken, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestInventoryCRUDRoundTrip(t *testing.T) {
	app := newTestApp(t)
	createUser(t, app, "admin@corp.test", "pw", domain.RoleAdmin)
	token := obtainToken(t, app, "admin@corp.test", "pw")

	item := `{"product_name":"Widget","description":"a widget","quantity":5,"unit_price":2.5,"category":"parts","location":"A1"}`
	resp, err := app.Test(authedRequest(http.MethodPost, "/inventory/", token, strings.NewReader(item)), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotZero(t, created.ID)

	resp, err = app.Test(authedRequest(http.MethodGet, "/inventory/1", token, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(authedRequest(http.MethodDelete, "/inventory/1", token, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// deleted items report not found through the error envelope
	resp, err = app.Test(authedRequest(http.MethodGet, "/inventory/1", token, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "NOT_FOUND", envelope.Error.Code)
}

func TestHealthEndpointIsPublic(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
