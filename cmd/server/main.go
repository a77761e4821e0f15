package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"meet-relay/internal"
	"meet-relay/observability"
	"meet-relay/repositories"
	"meet-relay/runtime"
	"meet-relay/runtime/workers"
	"meet-relay/services"
	"meet-relay/transport"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Relay terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting, so every defer (like the database close)
// executes before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx := context.Background()

	// 2. Database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		// Defer ensures the database lock is released and buffers are flushed.
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Core wiring: registry, dedup cache, broadcaster, repositories
	stats := observability.NewRelayStats()
	registry := runtime.NewRegistry()
	dedup := runtime.NewDeduplicator()
	broadcaster := runtime.NewBroadcaster(logger, registry, dedup, stats, config.SendTimeout)
	historyRepository := repositories.NewHistoryRepository(db, logger, config.ReplayLimit)
	counterRepository := repositories.NewCounterRepository(db, logger)

	relayService := services.NewRelayService(
		logger, registry, broadcaster, dedup,
		historyRepository, counterRepository,
		stats, config.RoomCapacity,
	)
	handler := transport.NewHandler(logger, relayService, stats, config.SendBufferSize)

	if logger.Enabled(ctx, slog.LevelDebug) {
		debugPort := 8081
		endpoint := "/inspect"
		logger.Info("Debug Badger inspector available",
			"url", fmt.Sprintf("http://localhost:%d%s", debugPort, endpoint))
		database.StartDebugServer(db, debugPort, endpoint, HistoryMapper)
	}

	// 4. Supervision: periodic stats report and Badger value-log GC
	sup := workers.NewSupervisor(logger, config.RestartInterval)
	sup.Add(workers.NewStatsWorker(logger, stats, config.StatsInterval))
	sup.Add(workers.NewGCWorker(logger, db, config.GCInterval))

	// 5. Context & Signals
	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sup.Run(ctx)

	// 6. HTTP server
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := &http.Server{
		Addr:              address,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting relay server", "address", address, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 8. Final Cleanup (Graceful Shutdown)
	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP shutdown incomplete", "err", err)
	}
	sup.Stop()
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}

// HistoryMapper renders relay records for the Badger inspector:
// chat messages, location points, and room counters.
func HistoryMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)

	switch {
	case strings.HasPrefix(key, "msg:"):
		var sm repositories.StoredMessage
		if err := json.Unmarshal(val, &sm); err != nil {
			row.Detail = "Error: unmarshal failed"
			return row
		}
		row.Type = "CHAT"
		row.Detail = fmt.Sprintf("%s: %s", sm.Name, sm.Message)
	case strings.HasPrefix(key, "loc:"):
		row.Type = "LOCATION"
		row.Detail = string(val)
	case strings.HasPrefix(key, "room:"):
		row.Type = "ROOM"
		row.Detail = fmt.Sprintf("members: %s", val)
	}
	return row
}
