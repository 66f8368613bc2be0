package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mira/puzzleacademy/internal/api"
	"github.com/mira/puzzleacademy/internal/catalog"
	"github.com/mira/puzzleacademy/internal/config"
	"github.com/mira/puzzleacademy/internal/db"
	"github.com/mira/puzzleacademy/internal/engine"
	"github.com/mira/puzzleacademy/internal/jobs"
	"github.com/mira/puzzleacademy/internal/logger"
	"github.com/mira/puzzleacademy/internal/repository/sqlite"
	"github.com/mira/puzzleacademy/internal/rooms"
	"github.com/mira/puzzleacademy/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("Puzzle Academy Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("default_puzzle_count=%d", cfg.DefaultPuzzleCount)
	log.Debug("hint_penalty=%d", cfg.HintPenalty)
	log.Debug("archive_worker_count=%d", cfg.ArchiveWorkerCount)
	log.Debug("archive_queue_size=%d", cfg.ArchiveQueueSize)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Load puzzle catalog
	log.Debug("loading puzzle catalog")
	cat, err := catalog.Load()
	if err != nil {
		log.Error("failed to load puzzle catalog: %v", err)
		os.Exit(1)
	}
	log.Info("catalog loaded with %d puzzles", cat.Size())

	// Initialize repositories
	profileRepo := sqlite.NewProfileRepository(database.DB)
	statsRepo := sqlite.NewStatsRepository(database.DB)
	sessionRepo := sqlite.NewSessionRepository(database.DB)

	// Initialize background archiving
	archivePool := worker.NewPool(cfg.ArchiveWorkerCount, cfg.ArchiveQueueSize)
	queue := jobs.NewWorkerQueue(archivePool, sessionRepo)

	// Initialize the session engine
	eng := engine.New(profileRepo, statsRepo,
		engine.WithHintPenalty(cfg.HintPenalty),
		engine.WithJobQueue(queue),
	)

	srv := &api.Server{
		DB:                 database,
		Catalog:            cat,
		Engine:             eng,
		Rooms:              rooms.NewStore(),
		ProfileRepo:        profileRepo,
		StatsRepo:          statsRepo,
		SessionRepo:        sessionRepo,
		DefaultPuzzleCount: cfg.DefaultPuzzleCount,
	}

	ctx, cancel := context.WithCancel(context.Background())
	archivePool.Start(ctx)

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping worker context")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Debug("stopping archive pool")
	archivePool.Stop()

	log.Info("===========================================")
	log.Info("Puzzle Academy Server Stopped")
	log.Info("===========================================")
}
