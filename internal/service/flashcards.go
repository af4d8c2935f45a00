package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_flashcard_service.go -package=mocks -mock_names=FlashcardService=MockFlashcardService studydeck/internal/service FlashcardService

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"studydeck/internal/contextutil"
	"studydeck/internal/flashcards"
	"studydeck/internal/storage"
)

// UntitledDeck is the deck title used when a note has no title.
const UntitledDeck = "Untitled note"

// GenerateRequest represents a flashcard generation request in the domain layer.
type GenerateRequest struct {
	// Content is nil when the caller did not send a string.
	Content *string
	Title   string
}

// GenerateResponse represents the result of a generation.
type GenerateResponse struct {
	// DeckID is empty when persistence is disabled or the deck could not be stored.
	DeckID     string
	Flashcards []flashcards.Flashcard
	// Cached is true when the cards came from a previously stored deck.
	Cached bool
}

// Deck is a stored set of flashcards.
type Deck struct {
	ID         string
	Title      string
	CardCount  int
	CreatedAt  time.Time
	Flashcards []flashcards.Flashcard
}

// FlashcardService provides flashcard generation and deck access.
type FlashcardService interface {
	// Generate extracts flashcards from a note. Missing content is a *ValidationError.
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
	// ListDecks returns stored decks without their cards, newest first.
	ListDecks(ctx context.Context) ([]Deck, error)
	// GetDeck returns a stored deck with its cards. Returns ErrNotFound if missing.
	GetDeck(ctx context.Context, id string) (Deck, error)
	// DeleteDeck removes a stored deck. Returns ErrNotFound if missing.
	DeleteDeck(ctx context.Context, id string) error
}

// flashcardService implements FlashcardService.
type flashcardService struct {
	extractor *flashcards.Extractor
	decks     storage.DeckStore
}

// NewFlashcardService creates a new FlashcardService.
// A nil deck store disables persistence; generation still works.
func NewFlashcardService(extractor *flashcards.Extractor, decks storage.DeckStore) FlashcardService {
	return &flashcardService{
		extractor: extractor,
		decks:     decks,
	}
}

// DeckHash identifies a generation by its inputs and the extractor options.
func DeckHash(title, content string, opts flashcards.Options) string {
	h := sha256.New()
	_, _ = fmt.Fprintf(h, "%s\x00%s\x00%s\x00%t", title, content, opts.DefaultSection, opts.LegacyHeadingReset)
	return hex.EncodeToString(h.Sum(nil))
}

// Generate processes a generation request.
func (s *flashcardService) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if req.Content == nil {
		logger.WarnContext(ctx, "missing content in generate request")
		return GenerateResponse{}, &ValidationError{
			Field:   "content",
			Message: "must be a string",
		}
	}
	content := *req.Content

	var hash string
	if s.decks != nil {
		hash = DeckHash(req.Title, content, s.extractor.Options())
		existing, err := s.decks.GetByHash(ctx, hash)
		switch {
		case err == nil:
			logger.DebugContext(ctx, "returning stored deck", "deck_id", existing.ID, "hash", hash)
			return GenerateResponse{
				DeckID:     existing.ID,
				Flashcards: fromRecords(existing.Cards),
				Cached:     true,
			}, nil
		case !errors.Is(err, storage.ErrNotFound):
			logger.WarnContext(ctx, "failed to look up stored deck", "hash", hash, "error", err)
		}
	}

	cards, err := s.extractor.Generate(content, req.Title)
	if err != nil {
		logger.ErrorContext(ctx, "failed to generate flashcards", "content_length", len(content), "error", err)
		return GenerateResponse{}, WrapError(err, "failed to generate flashcards")
	}

	resp := GenerateResponse{Flashcards: cards}

	if s.decks != nil {
		deck := &storage.DeckRecord{
			Title: deckTitle(req.Title),
			Hash:  hash,
			Cards: toRecords(cards),
		}
		// The cards are still returned when storing fails.
		if err := s.decks.Create(ctx, deck); err != nil {
			logger.WarnContext(ctx, "failed to store deck", "hash", hash, "error", err)
		} else {
			resp.DeckID = deck.ID
		}
	}

	logger.InfoContext(ctx, "flashcards generated",
		"content_length", len(content),
		"cards", len(cards),
		"deck_id", resp.DeckID,
	)
	return resp, nil
}

// ListDecks returns stored decks without cards.
func (s *flashcardService) ListDecks(ctx context.Context) ([]Deck, error) {
	if s.decks == nil {
		return []Deck{}, nil
	}

	records, err := s.decks.List(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list decks")
	}

	decks := make([]Deck, 0, len(records))
	for _, r := range records {
		decks = append(decks, Deck{
			ID:        r.ID,
			Title:     r.Title,
			CardCount: r.CardCount,
			CreatedAt: r.CreatedAt,
		})
	}
	return decks, nil
}

// GetDeck returns a stored deck with its cards.
func (s *flashcardService) GetDeck(ctx context.Context, id string) (Deck, error) {
	if s.decks == nil {
		return Deck{}, ErrNotFound
	}

	record, err := s.decks.GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return Deck{}, ErrNotFound
	}
	if err != nil {
		return Deck{}, WrapError(err, "failed to get deck")
	}

	return Deck{
		ID:         record.ID,
		Title:      record.Title,
		CardCount:  record.CardCount,
		CreatedAt:  record.CreatedAt,
		Flashcards: fromRecords(record.Cards),
	}, nil
}

// DeleteDeck removes a stored deck.
func (s *flashcardService) DeleteDeck(ctx context.Context, id string) error {
	if s.decks == nil {
		return ErrNotFound
	}

	err := s.decks.Delete(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return WrapError(err, "failed to delete deck")
	}

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "deck deleted", "deck_id", id)
	return nil
}

func deckTitle(title string) string {
	if title == "" {
		return UntitledDeck
	}
	return title
}

func toRecords(cards []flashcards.Flashcard) []storage.CardRecord {
	records := make([]storage.CardRecord, len(cards))
	for i, c := range cards {
		records[i] = storage.CardRecord{
			Position: i,
			Question: c.Question,
			Answer:   c.Answer,
			Section:  c.Section,
		}
	}
	return records
}

func fromRecords(records []storage.CardRecord) []flashcards.Flashcard {
	cards := make([]flashcards.Flashcard, len(records))
	for i, r := range records {
		cards[i] = flashcards.Flashcard{
			Question: r.Question,
			Answer:   r.Answer,
			Section:  r.Section,
		}
	}
	return cards
}
