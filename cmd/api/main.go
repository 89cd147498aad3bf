package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/supplychain-service/internal/api/http"
	"github.com/spec-kit/supplychain-service/internal/api/http/handlers"
	"github.com/spec-kit/supplychain-service/internal/auth"
	"github.com/spec-kit/supplychain-service/internal/config"
	"github.com/spec-kit/supplychain-service/internal/events"
	"github.com/spec-kit/supplychain-service/internal/observability"
	"github.com/spec-kit/supplychain-service/internal/persistence"
	"github.com/spec-kit/supplychain-service/internal/repository"
	"github.com/spec-kit/supplychain-service/internal/search"
	"github.com/spec-kit/supplychain-service/internal/service"
	"github.com/spec-kit/supplychain-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	inventoryRepo := repository.NewInventoryRepository(pool)
	supplierRepo := repository.NewSupplierRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	activityRepo := repository.NewActivityRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, userRepo, dispatcher)
	inventoryService := service.NewInventoryService(inventoryRepo, dispatcher)
	supplierService := service.NewSupplierService(supplierRepo, dispatcher)
	orderService := service.NewOrderService(orderRepo, supplierRepo, dispatcher)
	activityService := service.NewActivityService(activityRepo, dispatcher, logger)

	var completion search.SQLSource
	if cfg.Search.CompletionURL != "" {
		completion = search.NewCompletionClient(cfg.Search.CompletionURL, cfg.Search.CompletionKey, cfg.Search.CompletionModel, cfg.Search.Timeout())
	}
	generator := search.NewGenerator(completion, logger)
	searchService := service.NewSearchService(pool, generator, redis, cfg.Search.CacheTTL(), dispatcher, logger)

	worker.StartActivityRecorder(activityService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Inventory:      handlers.NewInventoryHandler(inventoryService),
		Suppliers:      handlers.NewSupplierHandler(supplierService),
		Orders:         handlers.NewOrderHandler(orderService),
		Search:         handlers.NewSearchHandler(searchService),
		Activity:       handlers.NewActivityHandler(activityService),
		Transfer:       handlers.NewTransferHandler(inventoryService, supplierService, orderService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
