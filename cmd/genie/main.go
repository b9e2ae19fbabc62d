// Genie conversational backend server — provides the HTTP and WebSocket
// API, runs the job queue workers, and drives the response pipeline.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/splunk-genie/genie/pkg/analytics"
	"github.com/splunk-genie/genie/pkg/api"
	"github.com/splunk-genie/genie/pkg/cleanup"
	"github.com/splunk-genie/genie/pkg/config"
	"github.com/splunk-genie/genie/pkg/database"
	"github.com/splunk-genie/genie/pkg/events"
	"github.com/splunk-genie/genie/pkg/llm"
	"github.com/splunk-genie/genie/pkg/metrics"
	"github.com/splunk-genie/genie/pkg/pipeline"
	"github.com/splunk-genie/genie/pkg/queue"
	"github.com/splunk-genie/genie/pkg/retrieval"
	"github.com/splunk-genie/genie/pkg/services"
	"github.com/splunk-genie/genie/pkg/version"
)

func main() {
	configPath := flag.String("config",
		os.Getenv("GENIE_CONFIG"),
		"Path to optional YAML configuration overlay")
	flag.Parse()

	// Load .env from the working directory; absence is fine.
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}

	slog.Info("Starting genie",
		"version", version.Full(),
		"config", *configPath)

	ctx := context.Background()

	// 1. Resolve configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Connect to PostgreSQL and run migrations
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Event bus and WebSocket fan-out
	bus := events.NewBus(cfg.Events.QueueCapacity)
	defer bus.Close()
	connManager := events.NewConnectionManager(cfg.Server.WSWriteTimeout, cfg.Server.WSIdlePing)
	publisher := events.NewPublisher(bus)
	events.AttachBroadcaster(bus, connManager)
	slog.Info("Event bus initialized", "queue_capacity", cfg.Events.QueueCapacity)

	// 4. Domain services
	conversations := services.NewConversationService(dbClient.Client)
	messages := services.NewMessageService(dbClient.Client)
	jobs := services.NewJobService(dbClient.Client)
	results := services.NewQueryResultService(dbClient.Client)
	warnings := services.NewSystemWarningsService()
	slog.Info("Services initialized")

	// 5. External adapters. An unconfigured adapter stays in the wiring
	// and degrades at call time; surface each one as a system warning.
	llmClient := llm.NewOpenAIClient(cfg.LLM)
	retrievalClient := retrieval.NewClient(cfg.Retrieval)
	analyticsClient := analytics.NewClient(cfg.Analytics)

	if !llmClient.Available() {
		warnings.AddWarning(services.WarningCategoryAdapter,
			"LLM adapter is not configured", "set OPENAI_API_KEY", "llm")
	}
	if !retrievalClient.Available() {
		warnings.AddWarning(services.WarningCategoryAdapter,
			"Retrieval adapter is not configured", "set OPENSEARCH_HOST", "retrieval")
	}
	if !analyticsClient.Available() {
		warnings.AddWarning(services.WarningCategoryAdapter,
			"Analytics adapter is not configured", "set SPLUNK_HOST, SPLUNK_USERNAME and SPLUNK_PASSWORD", "analytics")
	}

	// 6. Pipeline engine and job executors
	engine := pipeline.NewEngine(pipeline.Deps{
		Config:    cfg.Pipeline,
		Stream:    cfg.Stream,
		LLM:       llmClient,
		Retrieval: retrievalClient,
		Analytics: analyticsClient,
		Messages:  messages,
		Jobs:      jobs,
		Results:   results,
		Publisher: publisher,
		Logger:    slog.Default(),
	})
	chartBuilder := queue.NewChartBuilder(jobs, publisher, slog.Default())
	executor := queue.NewExecutor(cfg.Queue, jobs, publisher, engine, chartBuilder, slog.Default())

	// 7. Start worker pool (before the HTTP server takes traffic)
	workerPool := queue.NewWorkerPool(dbClient.Client, cfg.Queue, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8. Retention cleanup
	var cleanupService *cleanup.Service
	if cfg.Retention.Enabled {
		cleanupService = cleanup.NewService(cfg.Retention, jobs, results)
		cleanupService.Start(ctx)
	}

	// 9. HTTP server
	httpServer := api.NewServer(api.Deps{
		Config:        cfg,
		DBClient:      dbClient,
		Conversations: conversations,
		Messages:      messages,
		Jobs:          jobs,
		Results:       results,
		Warnings:      warnings,
		LLM:           llmClient,
		Retrieval:     retrievalClient,
		Analytics:     analyticsClient,
		ConnManager:   connManager,
		Publisher:     publisher,
		WorkerPool:    workerPool,
		Exporter:      metrics.NewExporter(),
	})

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.Server.ListenAddr)
		if err := httpServer.Start(cfg.Server.ListenAddr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Genie started successfully", "workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: retention loop, then workers, then HTTP.
	if cleanupService != nil {
		cleanupService.Stop()
	}

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — remaining jobs were failed with reason shutdown")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
