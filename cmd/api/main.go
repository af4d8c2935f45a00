package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studydeck/internal/config"
	"studydeck/internal/contextutil"
	"studydeck/internal/flashcards"
	"studydeck/internal/handlers"
	"studydeck/internal/http"
	"studydeck/internal/importer"
	"studydeck/internal/service"
	"studydeck/internal/storage"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	extractor := flashcards.NewExtractor(flashcards.Options{
		DefaultSection:     cfg.DefaultSection,
		LegacyHeadingReset: cfg.LegacyHeadingReset,
	})

	deps := &http.Deps{
		MaxContentBytes: cfg.MaxContentBytes,
	}

	var decks storage.DeckStore
	if cfg.PersistDecks {
		// Initialize database
		db, err := storage.New(cfg.DBPath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer func() {
			_ = db.Close()
		}()

		if err := storage.Migrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		slog.Info("Database initialized", "path", cfg.DBPath)

		decks = storage.NewDeckRepo(db)
		deps.DB = db
	} else {
		slog.Info("Deck persistence disabled")
	}

	flashcardService := service.NewFlashcardService(extractor, decks)
	deps.FlashcardService = flashcardService

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.NotesDir != "" {
		importHandler := handlers.NewImportHandler(importer.NewPipeline(flashcardService), cfg.NotesDir)
		deps.Import = importHandler

		// Import notes in background after router is ready
		slog.Info("Starting background import of notes", "root", cfg.NotesDir)
		importHandler.Start(contextutil.WithLogger(ctx, logger))
	}

	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	server := &nethttp.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		slog.Info("Shutting down API server")
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
		}
	}()

	slog.Info("Starting API server",
		"addr", addr,
		"default_section", cfg.DefaultSection,
		"legacy_heading_reset", cfg.LegacyHeadingReset,
		"persist_decks", cfg.PersistDecks,
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		log.Fatalf("API server failed to start: %v", err)
	}
}
