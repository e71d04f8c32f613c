// Dirigent engine server. Exposes the HTTP API, streams queue-change
// events over WebSocket, and runs the background janitor loops.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dirigent-io/dirigent/pkg/api"
	"github.com/dirigent-io/dirigent/pkg/config"
	"github.com/dirigent-io/dirigent/pkg/database"
	"github.com/dirigent-io/dirigent/pkg/events"
	"github.com/dirigent-io/dirigent/pkg/janitor"
	"github.com/dirigent-io/dirigent/pkg/scheduler"
	"github.com/dirigent-io/dirigent/pkg/services"
	"github.com/dirigent-io/dirigent/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	password := os.Getenv("DIRIGENT_PASSWORD")
	if password == "" {
		slog.Error("DIRIGENT_PASSWORD is not set; refusing to start without a shared secret")
		os.Exit(1)
	}

	// 2. Database
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

	// 3. Event streaming infrastructure
	eventService := services.NewEventService(dbClient.Client)
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, cfg.Server.WriteTimeout)

	notifyListener := events.NewNotifyListener(dbConfig.ConnString(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start notify listener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	connManager.SetListener(notifyListener)
	slog.Info("Event streaming initialized")

	// 4. Domain services. The publisher doubles as the queue notifier so
	// every write that changes scheduling emits a queue.changed event.
	namespaceService := services.NewNamespaceService(dbClient.Client)
	assignmentService := services.NewAssignmentService(dbClient.Client, eventPublisher)
	groupService := services.NewGroupService(dbClient.Client, eventPublisher)
	threadService := services.NewChatThreadService(dbClient.Client)
	chatJobService := services.NewChatJobService(dbClient.Client, threadService, eventPublisher)
	sched := scheduler.NewScheduler(dbClient.Client, slog.Default())
	slog.Info("Services initialized")

	// 5. Janitor
	jan := janitor.New(cfg.Janitor, dbClient.Client,
		groupService, chatJobService, namespaceService, eventService)
	jan.Start(ctx)
	defer jan.Stop()

	// 6. HTTP server
	apiServer := api.NewServer(cfg.Server, password, dbClient, api.Services{
		Namespaces:  namespaceService,
		Assignments: assignmentService,
		Groups:      groupService,
		Threads:     threadService,
		ChatJobs:    chatJobService,
		Scheduler:   sched,
	}, connManager)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: apiServer.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Dirigent started", "version", version.Full())

	// 7. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 8. Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
