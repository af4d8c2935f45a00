// Package main is the entry point for the deckgen CLI, which generates
// flashcards from notes without running the API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"studydeck/internal/config"
	"studydeck/internal/flashcards"
	"studydeck/internal/service"
	"studydeck/internal/storage"
)

// newRootCmd builds the deckgen command tree.
func newRootCmd() *cobra.Command {
	var cfg *config.Config

	rootCmd := &cobra.Command{
		Use:   "deckgen",
		Short: "Generate flashcards from study notes",
		Long: `deckgen turns plain-text or markdown notes into question/answer flashcards
using the same extractor as the API server.

Settings are read from the environment and an optional .env file, the same way
the server reads them. Logs go to stderr; results go to stdout.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			cfg = loaded

			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: cfg.LogLevel,
			})))
			return nil
		},
	}

	conf := func() *config.Config { return cfg }

	rootCmd.AddCommand(
		newGenerateCmd(conf),
		newImportCmd(conf),
		newDecksCmd(conf),
	)
	return rootCmd
}

// extractorFor builds an extractor from the loaded configuration.
func extractorFor(cfg *config.Config, legacyHeadings bool) *flashcards.Extractor {
	return flashcards.NewExtractor(flashcards.Options{
		DefaultSection:     cfg.DefaultSection,
		LegacyHeadingReset: cfg.LegacyHeadingReset || legacyHeadings,
	})
}

// openService opens the deck store at dbPath and returns a service backed by it.
// The returned close function releases the database.
func openService(cfg *config.Config, dbPath string) (service.FlashcardService, func(), error) {
	db, err := storage.New(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := storage.Migrate(db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	svc := service.NewFlashcardService(extractorFor(cfg, false), storage.NewDeckRepo(db))
	return svc, func() { _ = db.Close() }, nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
