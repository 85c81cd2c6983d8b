package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	tlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"golang.org/x/sync/errgroup"

	"sport-store/storefront/activities"
	"sport-store/storefront/api"
	"sport-store/storefront/catalog"
	"sport-store/storefront/checkout"
	"sport-store/storefront/config"
	"sport-store/storefront/metrics"
	"sport-store/storefront/notify"
	"sport-store/storefront/pipeline"
	"sport-store/storefront/pricing"
	"sport-store/storefront/seed"
	"sport-store/storefront/workflows"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := catalog.New()
	reg := metrics.NewRegistry()

	notifier := notify.New(logger)
	notifier.Attach(notify.NewEmailListener(logger))
	notifier.Attach(notify.NewSMSListener(logger))
	notifier.Attach(reg)
	if cfg.KafkaBrokers != "" {
		kafkaListener := notify.NewKafkaListener(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kafkaListener.Close()
		notifier.Attach(kafkaListener)
	}

	if cfg.SeedData {
		if _, err := seed.Load(store, logger); err != nil {
			return err
		}
	}
	reg.CatalogItems.Set(float64(len(store.AllEquipment())))

	prices, err := pricing.NewRegistry(cfg.Pricing)
	if err != nil {
		return err
	}

	stages := pipeline.Default(store, notifier, logger)
	local := checkout.New(store, stages, notifier, checkout.WithRecorder(reg), checkout.WithLogger(logger))

	var orders api.OrderPlacer = local
	if cfg.TemporalEnabled {
		c, err := client.Dial(client.Options{
			HostPort: cfg.TemporalHost,
			Logger:   tlog.NewStructuredLogger(logger),
		})
		if err != nil {
			return err
		}
		defer c.Close()

		w := worker.New(c, cfg.TaskQueue, worker.Options{
			Identity:                               "order-worker-" + hostname(),
			MaxConcurrentActivityExecutionSize:     100,
			MaxConcurrentWorkflowTaskExecutionSize: 50,
		})
		w.RegisterWorkflow(workflows.OrderWorkflow)

		orderActivities := &activities.OrderActivities{Catalog: store, Pipeline: stages, Recorder: local}
		w.RegisterActivity(orderActivities.ValidateStock)
		w.RegisterActivity(orderActivities.ProcessPayment)
		w.RegisterActivity(orderActivities.FulfillOrder)
		w.RegisterActivity(orderActivities.RecordOrder)

		if err := w.Start(); err != nil {
			return err
		}
		defer w.Stop()
		logger.Info("Worker started", "taskQueue", cfg.TaskQueue, "identity", "order-worker-"+hostname())

		if cfg.Processor == config.ProcessorTemporal {
			orders = workflows.NewCheckout(c, cfg.TaskQueue)
		}
	}

	h := api.New(store, prices, orders, logger)
	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      h.Router(reg.Handler()),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 75 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server starting", "addr", cfg.HTTPAddr, "processor", cfg.Processor)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
