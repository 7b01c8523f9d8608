package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/mayankdk/portfolio-assistant/internal/adapters/http"
	"github.com/mayankdk/portfolio-assistant/internal/bootstrap"
	"github.com/mayankdk/portfolio-assistant/internal/config"
	"github.com/mayankdk/portfolio-assistant/internal/observability/logging"
	"github.com/mayankdk/portfolio-assistant/internal/observability/metrics"
)

func main() {
	cfg := config.Load()
	logger := logging.Setup("portfolio-api", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		logger.Error("bootstrap_error", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	// The in-process index starts empty, so populate it before serving.
	if app.MemoryBackend {
		chunks, err := app.RebuildUC.Rebuild(ctx)
		if err != nil {
			logger.Error("initial_index_rebuild_error", "error", err)
			os.Exit(1)
		}
		logger.Info("initial_index_rebuilt", "chunks", chunks)
	}

	httpMetrics := metrics.NewHTTPServerMetrics("portfolio-api")
	router := httpadapter.NewRouter(app.AnswerUC, app.Queue, httpMetrics).Handler()
	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("api_listening", "port", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("api_server_error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("api_shutdown_error", "error", err)
	}
}
