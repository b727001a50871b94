package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/halalai/quran-assistant/internal/bootstrap"
	"github.com/halalai/quran-assistant/internal/config"
	"github.com/halalai/quran-assistant/internal/observability/logging"
	"github.com/halalai/quran-assistant/internal/observability/metrics"
)

func main() {
	cfg := config.Load()
	logger := logging.NewJSONLogger("worker", cfg.LogLevel)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("bootstrap failed", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	workerMetrics := metrics.NewWorkerMetrics("worker")
	metricsServer := &http.Server{
		Addr:    ":" + cfg.WorkerMetricsPort,
		Handler: workerMetrics.Handler(),
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server failed", "error", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsServer.Shutdown(shutdownCtx)
	}()

	logger.Info("worker subscribed", "subject", cfg.NATSSubject)
	err = app.Queue.SubscribeCorpusIngested(ctx, func(handlerCtx context.Context, sourceID string) error {
		processCtx, cancel := context.WithTimeout(handlerCtx, 15*time.Minute)
		defer cancel()

		if src, err := app.Repo.GetByID(processCtx, sourceID); err == nil {
			workerMetrics.ObserveQueueLag("worker", time.Since(src.CreatedAt))
		}

		workerMetrics.StartRebuild()
		start := time.Now()
		processErr := app.ProcessUC.ProcessByID(processCtx, sourceID)
		workerMetrics.FinishRebuild("worker", time.Since(start), processErr)
		if processErr == nil {
			workerMetrics.SetIndexedPassages(app.Store.DocumentCount())
		}
		return processErr
	})
	if err != nil {
		logger.Error("worker subscribe failed", "error", err)
		os.Exit(1)
	}
}
