package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mayankdk/portfolio-assistant/internal/bootstrap"
	"github.com/mayankdk/portfolio-assistant/internal/config"
	"github.com/mayankdk/portfolio-assistant/internal/observability/logging"
	"github.com/mayankdk/portfolio-assistant/internal/observability/metrics"
)

func main() {
	cfg := config.Load()
	logger := logging.Setup("portfolio-indexer", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		logger.Error("bootstrap_error", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	indexerMetrics := metrics.NewIndexerMetrics("portfolio-indexer")
	metricsServer := &http.Server{
		Addr:    ":" + cfg.IndexerMetricsPort,
		Handler: metricsHandler(indexerMetrics),
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics_server_error", "error", err)
		}
	}()

	rebuild := func(rebuildCtx context.Context, requestID string) error {
		timeoutCtx, cancel := context.WithTimeout(rebuildCtx, 5*time.Minute)
		defer cancel()

		start := time.Now()
		indexerMetrics.StartRebuild()
		chunks, err := app.RebuildUC.Rebuild(timeoutCtx)
		indexerMetrics.FinishRebuild("portfolio-indexer", chunks, time.Since(start), err)
		if err != nil {
			return err
		}
		logger.Info("index_rebuilt", "request_id", requestID, "chunks", chunks)
		return nil
	}

	// Full rebuild on boot so a fresh deployment serves immediately.
	if err := rebuild(ctx, "boot"); err != nil {
		logger.Error("initial_rebuild_error", "error", err)
		os.Exit(1)
	}

	logger.Info("indexer_subscribed", "subject", cfg.NATSSubject)
	if err := app.Queue.SubscribeReindexRequested(ctx, rebuild); err != nil {
		logger.Error("indexer_subscribe_error", "error", err)
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics_shutdown_error", "error", err)
	}
}

func metricsHandler(m *metrics.IndexerMetrics) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	return mux
}
