// Package importer turns a directory of notes into stored flashcard decks.
package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"studydeck/internal/contextutil"
	"studydeck/internal/notes"
	"studydeck/internal/service"
)

// Pipeline generates and stores one deck per note file.
type Pipeline struct {
	flashcardService service.FlashcardService
}

// NewPipeline creates a new import pipeline.
func NewPipeline(flashcardService service.FlashcardService) *Pipeline {
	return &Pipeline{flashcardService: flashcardService}
}

// ImportNote reads a single note file and generates its deck.
// An unchanged note returns the previously stored deck with Cached set.
func (p *Pipeline) ImportNote(ctx context.Context, file notes.File) (service.GenerateResponse, error) {
	content, err := os.ReadFile(file.AbsPath)
	if err != nil {
		return service.GenerateResponse{}, fmt.Errorf("failed to read file %s: %w", file.AbsPath, err)
	}

	note := notes.Parse(content, filepath.Base(file.RelPath))

	resp, err := p.flashcardService.Generate(ctx, service.GenerateRequest{
		Content: &note.Body,
		Title:   note.Title,
	})
	if err != nil {
		return service.GenerateResponse{}, fmt.Errorf("failed to generate deck for %s: %w", file.RelPath, err)
	}

	return resp, nil
}

// ImportAll scans root and imports every note found.
// Errors for individual files are logged but don't stop the import.
func (p *Pipeline) ImportAll(ctx context.Context, root string) (*Stats, error) {
	logger := contextutil.LoggerFromContext(ctx)

	files, err := notes.Scan(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("failed to scan notes: %w", err)
	}

	logger.InfoContext(ctx, "starting import", "root", root, "total_files", len(files))

	stats := &Stats{Notes: len(files)}
	cardCounts := make([]int, 0, len(files))

	for _, file := range files {
		// Check for context cancellation
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		resp, err := p.ImportNote(ctx, file)
		if err != nil {
			stats.Failed++
			logger.ErrorContext(ctx, "failed to import note", "rel_path", file.RelPath, "error", err)
			continue
		}

		if resp.Cached {
			stats.Skipped++
			logger.DebugContext(ctx, "skipping unchanged note", "rel_path", file.RelPath, "deck_id", resp.DeckID)
			continue
		}

		stats.Imported++
		cardCounts = append(cardCounts, len(resp.Flashcards))
		logger.InfoContext(ctx, "imported note", "rel_path", file.RelPath, "cards", len(resp.Flashcards), "deck_id", resp.DeckID)
	}

	stats.Cards = computeCardStats(cardCounts)

	logger.InfoContext(ctx, "import completed",
		"total_files", stats.Notes,
		"imported", stats.Imported,
		"skipped", stats.Skipped,
		"failed", stats.Failed,
	)

	if stats.Failed > 0 {
		return stats, fmt.Errorf("import completed with %d errors", stats.Failed)
	}

	return stats, nil
}
