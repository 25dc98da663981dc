// Package main is the entry point for the boardroom decision-support API.
// The service evaluates cyber-risk simulation runs with a board of executive
// agents, adjusts security budget allocations year over year, and persists
// thresholds and simulation history in SQLite.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agentic-research/boardroom/internal/config"
	"github.com/agentic-research/boardroom/internal/database"
	"github.com/agentic-research/boardroom/internal/modules/agents"
	"github.com/agentic-research/boardroom/internal/modules/runs"
	"github.com/agentic-research/boardroom/internal/server"
	"github.com/agentic-research/boardroom/pkg/logger"
)

func main() {
	// Load configuration first to get log level
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	log.Info().Msg("Starting boardroom API")

	// config.db holds thresholds, history.db the append-only simulation logs.
	configDB, err := database.New(database.Config{
		Path:    cfg.DatabasePath("config"),
		Profile: database.ProfileStandard,
		Name:    "config",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open config database")
	}
	defer configDB.Close()

	historyDB, err := database.New(database.Config{
		Path:    cfg.DatabasePath("history"),
		Profile: database.ProfileHistory,
		Name:    "history",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open history database")
	}
	defer historyDB.Close()

	for _, db := range []*database.DB{configDB, historyDB} {
		if err := db.Migrate(); err != nil {
			log.Fatal().Err(err).Str("database", db.Name()).Msg("Failed to apply schema")
		}

		// Full integrity check once at boot; the health endpoint only pings.
		checkCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := db.HealthCheck(checkCtx); err != nil {
			cancel()
			log.Fatal().Err(err).Str("database", db.Name()).Msg("Database integrity check failed")
		}
		cancel()
	}

	// Roster: JSON override when present, built-in defaults otherwise.
	roster := agents.LoadRoster(cfg.AgentConfigPath, log)
	log.Info().Int("agents", len(roster)).Msg("Agent roster loaded")

	loader := runs.NewLoader(cfg.SimDataCSV, cfg.DataDir, log)

	srv := server.New(server.Config{
		Log:       log,
		Cfg:       cfg,
		ConfigDB:  configDB,
		HistoryDB: historyDB,
		Roster:    roster,
		Loader:    loader,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// In-flight requests get up to 10 seconds to finish.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
