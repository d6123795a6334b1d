package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelhub/internal/api"
	"hotelhub/internal/config"
	"hotelhub/internal/events"
	"hotelhub/internal/export"
	"hotelhub/internal/logging"
	"hotelhub/internal/metrics"
	"hotelhub/internal/service"
	"hotelhub/internal/storage"
	"hotelhub/internal/store"
	"hotelhub/internal/worker"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	cfg, logger, closer, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	if closer != nil {
		defer (func() { _ = closer.Close() })()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics.Register()

	snapshots, cleanup, err := initSnapshots(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	catalog, err := store.NewCatalog(ctx, snapshots, cfg.SeedHotels, logger)
	if err != nil {
		return fmt.Errorf("init catalog: %w", err)
	}
	ledger, err := store.NewLedger(ctx, snapshots, logger)
	if err != nil {
		return fmt.Errorf("init ledger: %w", err)
	}
	session := store.NewSession()

	bus := events.NewEventBus()
	subscribeAudit(bus, logger)

	authService := service.NewAuthService(session, logger)
	hotelService := service.NewHotelService(catalog, ledger, bus, logger)
	bookingService := service.NewBookingService(ledger, catalog, bus, logger)
	exporter := export.NewExporter(cfg.Exports.Path, logger)

	if cfg.Drift.Enabled {
		drift := worker.NewDriftWorker(catalog, cfg.Drift.Interval(), cfg.Drift.Chance, logger)
		go drift.Start(ctx)
	}

	if cfg.Monitoring.PrometheusEnabled {
		go startMetricsServer(ctx, cfg.Monitoring.PrometheusPort, logger)
	}

	server := api.NewServer(cfg.Server, authService, hotelService, bookingService, exporter, session, logger)

	go func() {
		if err := server.Start(); err != nil {
			logger.Error().Err(err).Msg("http server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = server.Shutdown(shutdownCtx)
	logger.Info().Msg("server stopped")
	return nil
}

func loadConfigAndLogger() (*config.Config, *zerolog.Logger, io.Closer, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	baseLogger, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init logger: %w", err)
	}
	logger := baseLogger.With().Str("component", "api-main").Logger()

	return cfg, &logger, closer, nil
}

// initSnapshots builds the snapshot backend from config. The redis backend
// wraps the client in a failover so the process survives redis outages.
func initSnapshots(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (storage.SnapshotStore, func(), error) {
	switch cfg.Storage.Backend {
	case "memory":
		logger.Warn().Msg("using in-memory snapshot store; state is lost on restart")
		return storage.NewMemory(), nil, nil

	case "redis":
		client := storage.NewRedisClient(storage.RedisOptions{
			Address:  cfg.Storage.Redis.Address,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
			PoolSize: cfg.Storage.Redis.PoolSize,
		})
		if err := storage.Ping(ctx, client); err != nil {
			logger.Warn().Err(err).Msg("redis unreachable at startup, failover will retry")
		} else {
			logger.Info().Str("addr", cfg.Storage.Redis.Address).Msg("redis connected")
		}
		failover := storage.NewFailover(storage.NewRedis(client), storage.NewMemory(), logger)
		return failover, func() { _ = client.Close() }, nil

	case "sqlite":
		db, err := storage.NewSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("init sqlite: %w", err)
		}
		logger.Info().Str("path", cfg.Storage.SQLitePath).Msg("sqlite snapshot store ready")
		return db, func() { _ = db.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}

// subscribeAudit logs every domain event.
func subscribeAudit(bus *events.EventBus, logger *zerolog.Logger) {
	audit := logger.With().Str("component", "audit").Logger()
	handler := func(event *events.Event) error {
		audit.Info().
			Str("event", event.Type).
			RawJSON("payload", event.Payload).
			Msg("domain event")
		return nil
	}

	for _, t := range []string{
		events.EventBookingCreated,
		events.EventBookingCompleted,
		events.EventBookingCancelled,
		events.EventHotelAdded,
		events.EventHotelUpdated,
		events.EventHotelDeleted,
	} {
		bus.Subscribe(t, handler)
	}
}

func startMetricsServer(ctx context.Context, port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("metrics server error")
	}
}
