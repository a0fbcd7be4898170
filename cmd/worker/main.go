package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.temporal.io/sdk/worker"

	"github.com/stockflow/backend/pkg/app"
	"github.com/stockflow/backend/pkg/cache"
	"github.com/stockflow/backend/pkg/config"
	"github.com/stockflow/backend/pkg/database"
	"github.com/stockflow/backend/pkg/events"
	"github.com/stockflow/backend/pkg/logger"
	"github.com/stockflow/backend/pkg/telemetry"
	"github.com/stockflow/backend/pkg/workflows"
	invevents "github.com/stockflow/backend/services/inventory/domain/events"
	invpostgres "github.com/stockflow/backend/services/inventory/infrastructure/persistence/postgres"
	orderevents "github.com/stockflow/backend/services/order/domain/events"
	prefevents "github.com/stockflow/backend/services/preference/domain/events"
	reportworkflows "github.com/stockflow/backend/services/report/workflows"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	if cfg.TemporalEnabled {
		temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
		if err != nil {
			log.Error("failed to initialize temporal client", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer temporalClient.Close()

		w, err := startReportWorker(temporalClient, appConfig)
		if err != nil {
			log.Error("failed to start temporal worker", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer w.Stop()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := map[string]func(context.Context, *message.Message) error{
		invevents.TopicProductCreated:      handleProductCreated(a),
		invevents.TopicProductLowStock:     handleProductLowStock(a),
		orderevents.TopicOrderCreated:      handleOrderCreated(a),
		prefevents.TopicPreferencesUpdated: handlePreferencesUpdated(a),
	}

	names := make([]string, 0, len(topics))
	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		names = append(names, topic)

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered", "topics", names)
	return nil
}

// handleProductCreated returns a handler for product.created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Warms the Redis read-model cache so subsequent GetByID calls are served from cache.
func handleProductCreated(a *app.Application) func(context.Context, *message.Message) error {
	productCache := cache.NewProductCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt invevents.ProductCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := productCache.Set(ctx, &cache.CachedProduct{
			ID:        evt.ProductID,
			UserID:    evt.UserID,
			Name:      evt.Name,
			SKU:       evt.SKU,
			Category:  evt.Category,
			Quantity:  evt.Quantity,
			MinLevel:  evt.MinLevel,
			Price:     evt.Price,
			Cost:      evt.Cost,
			Status:    evt.Status,
			Supplier:  evt.Supplier,
			CreatedAt: evt.OccurredAt,
			UpdatedAt: evt.OccurredAt,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for product.created",
				"product_id", evt.ProductID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed",
				"product_id", evt.ProductID, "user_id", evt.UserID)
		}

		return nil
	}
}

// handleProductLowStock returns a handler for product.low_stock events.
// Invalidates the stale cache entry and records the alert for operators.
func handleProductLowStock(a *app.Application) func(context.Context, *message.Message) error {
	productCache := cache.NewProductCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt invevents.ProductLowStockEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := productCache.Delete(ctx, evt.UserID, evt.ProductID); err != nil {
			a.Logger.WarnContext(ctx, "cache invalidation failed for product.low_stock",
				"product_id", evt.ProductID, "error", err)
		}

		a.Logger.WarnContext(ctx, "low stock alert",
			"product_id", evt.ProductID,
			"sku", evt.SKU,
			"quantity", evt.Quantity,
			"min_level", evt.MinLevel,
			"status", evt.Status,
		)
		return nil
	}
}

// handleOrderCreated returns a handler for order.created events.
func handleOrderCreated(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt orderevents.OrderCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		a.Logger.InfoContext(ctx, "order created",
			"order_id", evt.OrderID,
			"number", evt.Number,
			"total", evt.Total,
			"items_count", evt.ItemsCount,
			"occurred_at", evt.OccurredAt.Format(time.RFC3339),
		)
		return nil
	}
}

// handlePreferencesUpdated returns a handler for preference.updated events.
func handlePreferencesUpdated(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt prefevents.PreferencesUpdatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		a.Logger.InfoContext(ctx, "preferences updated",
			"user_id", evt.UserID,
			"dark_mode", evt.DarkMode,
			"currency", evt.Currency,
		)
		return nil
	}
}

// startReportWorker registers report workflows and activities on the
// Temporal task queue and starts the worker.
func startReportWorker(tc *workflows.TemporalClient, a *app.Application) (worker.Worker, error) {
	w := worker.New(tc.Client, reportworkflows.TaskQueue, worker.Options{})

	w.RegisterWorkflow(reportworkflows.EfficiencyReportWorkflow)
	w.RegisterActivity(reportworkflows.NewActivities(
		invpostgres.NewProductRepository(a.Db, nil),
	))

	if err := w.Start(); err != nil {
		return nil, err
	}
	a.Logger.Info("temporal worker started", "task_queue", reportworkflows.TaskQueue)
	return w, nil
}
