package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/supplychain-service/internal/api/http/handlers"
	"github.com/spec-kit/supplychain-service/internal/auth"
	"github.com/spec-kit/supplychain-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Inventory      *handlers.InventoryHandler
	Suppliers      *handlers.SupplierHandler
	Orders         *handlers.OrderHandler
	Search         *handlers.SearchHandler
	Activity       *handlers.ActivityHandler
	Transfer       *handlers.TransferHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Reads require a valid token, mutations
// require manager rank, deletes require admin.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health", cfg.Health.Check)

	app.Post("/token", cfg.Auth.Token)
	app.Post("/users/", cfg.Auth.CreateUser)

	authed := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	authed.Get("/users/me", cfg.Auth.Me)
	authed.Get("/users/", auth.RequireRole(domain.RoleAdmin), cfg.Auth.ListUsers)

	reader := auth.RequireRole(domain.RoleUser)
	writer := auth.RequireRole(domain.RoleManager)
	admin := auth.RequireRole(domain.RoleAdmin)

	inventory := authed.Group("/inventory")
	inventory.Get("/", reader, cfg.Inventory.List)
	inventory.Get("/:id", reader, cfg.Inventory.Get)
	inventory.Post("/", writer, cfg.Inventory.Create)
	inventory.Put("/:id", writer, cfg.Inventory.Update)
	inventory.Delete("/:id", admin, cfg.Inventory.Delete)

	suppliers := authed.Group("/suppliers")
	suppliers.Get("/", reader, cfg.Suppliers.List)
	suppliers.Get("/:id", reader, cfg.Suppliers.Get)
	suppliers.Post("/", writer, cfg.Suppliers.Create)
	suppliers.Put("/:id", writer, cfg.Suppliers.Update)
	suppliers.Delete("/:id", admin, cfg.Suppliers.Delete)

	orders := authed.Group("/orders")
	orders.Get("/", reader, cfg.Orders.List)
	orders.Get("/:id", reader, cfg.Orders.Get)
	orders.Post("/", writer, cfg.Orders.Create)
	orders.Put("/:id", writer, cfg.Orders.Update)

	authed.Post("/ai/search/", reader, cfg.Search.Search)

	authed.Get("/activity/", reader, cfg.Activity.List)
	authed.Post("/activity/", reader, cfg.Activity.Create)

	export := authed.Group("/export", writer)
	export.Get("/inventory", cfg.Transfer.ExportInventory)
	export.Get("/suppliers", cfg.Transfer.ExportSuppliers)
	export.Get("/orders", cfg.Transfer.ExportOrders)

	authed.Post("/import/inventory", writer, cfg.Transfer.ImportInventory)
}
