package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/unchin/unchin/internal/app"
	"github.com/unchin/unchin/internal/customers"
	"github.com/unchin/unchin/internal/dispatch"
	"github.com/unchin/unchin/internal/invoices"
	"github.com/unchin/unchin/internal/observability"
	"github.com/unchin/unchin/internal/platform/cache"
	"github.com/unchin/unchin/internal/platform/db"
	"github.com/unchin/unchin/internal/reports"
	"github.com/unchin/unchin/internal/shipments"
	"github.com/unchin/unchin/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	dbpool, err := db.New(ctx, cfg.PGDSN, cfg.PGMaxConns)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	if cfg.DBAutoMigrate {
		if err := db.Migrate(ctx, dbpool); err != nil {
			logger.Error("migrate schema", slog.Any("error", err))
			os.Exit(1)
		}
	}

	redisOpts := cache.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB}
	var redisClient *redis.Client
	if redisOpts.Enabled() {
		redisClient, err = cache.New(ctx, redisOpts)
		if err != nil {
			// Reports fall back to direct loads without a cache.
			logger.Warn("redis unavailable, report cache disabled", slog.Any("error", err))
		} else {
			defer func() {
				if err := redisClient.Close(); err != nil {
					logger.Warn("redis close", slog.Any("error", err))
				}
			}()
		}
	}

	metrics := observability.NewMetrics()
	reportCache := reports.NewCache(redisClient, cfg.ReportCacheTTL)

	customerRepo := customers.NewRepository(dbpool)
	customerService := customers.NewService(customerRepo)
	customerHandler := customers.NewHandler(logger, customerService)

	shipmentRepo := shipments.NewRepository(dbpool)
	shipmentService := shipments.NewService(shipmentRepo, reportCache, logger)
	shipmentHandler := shipments.NewHandler(logger, shipmentService)

	invoiceOpts := invoices.Options{Cache: reportCache, Metrics: metrics, Logger: logger}
	var jobHandler *jobs.Handler
	if redisClient != nil {
		asynqOpts := asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB}
		jobClient := jobs.NewClient(asynqOpts)
		defer func() {
			if err := jobClient.Close(); err != nil {
				logger.Warn("job client close", slog.Any("error", err))
			}
		}()
		invoiceOpts.Warmup = jobClient

		inspector := asynq.NewInspector(asynqOpts)
		defer func() {
			if err := inspector.Close(); err != nil {
				logger.Warn("inspector close", slog.Any("error", err))
			}
		}()
		jobHandler = jobs.NewHandler(inspector, logger)
	} else {
		jobHandler = jobs.NewHandler(nil, logger)
	}

	invoiceRepo := invoices.NewRepository(dbpool)
	invoiceService := invoices.NewService(invoiceRepo, shipmentRepo, invoiceOpts)
	invoiceHandler := invoices.NewHandler(logger, invoiceService)

	reportService := reports.NewService(shipmentRepo, reportCache, logger)
	reportHandler := reports.NewHandler(logger, reportService)

	dispatchService := dispatch.NewService(shipmentRepo)
	dispatchHandler := dispatch.NewHandler(logger, dispatchService)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		DB:               dbpool,
		CustomersHandler: customerHandler,
		ShipmentsHandler: shipmentHandler,
		InvoicesHandler:  invoiceHandler,
		ReportsHandler:   reportHandler,
		DispatchHandler:  dispatchHandler,
		JobHandler:       jobHandler,
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
