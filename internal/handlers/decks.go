package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"studydeck/internal/contextutil"
	"studydeck/internal/flashcards"
	"studydeck/internal/service"
)

// DeckHandler handles HTTP requests for stored decks.
type DeckHandler struct {
	flashcardService service.FlashcardService
}

// NewDeckHandler creates a new DeckHandler.
func NewDeckHandler(flashcardService service.FlashcardService) *DeckHandler {
	return &DeckHandler{flashcardService: flashcardService}
}

// DeckSummary describes a stored deck without its cards.
type DeckSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CardCount int    `json:"card_count"`
	CreatedAt string `json:"created_at"`
}

// DeckListResponse is the payload of GET /api/decks.
type DeckListResponse struct {
	Decks []DeckSummary `json:"decks"`
}

// DeckResponse is the payload of GET /api/decks/{id}.
type DeckResponse struct {
	DeckSummary
	Flashcards []flashcards.Flashcard `json:"flashcards"`
}

// List handles GET /api/decks.
func (h *DeckHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	decks, err := h.flashcardService.ListDecks(ctx)
	if err != nil {
		handleServiceError(ctx, w, err, "Invalid request", "Failed to list decks")
		return
	}

	resp := DeckListResponse{Decks: make([]DeckSummary, 0, len(decks))}
	for _, d := range decks {
		resp.Decks = append(resp.Decks, summarize(d))
	}

	writeJSON(ctx, w, http.StatusOK, resp)
}

// Get handles GET /api/decks/{id}.
func (h *DeckHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	deck, err := h.flashcardService.GetDeck(ctx, id)
	if err != nil {
		handleServiceError(ctx, w, err, "Invalid request", "Failed to get deck")
		return
	}

	cards := deck.Flashcards
	if cards == nil {
		cards = []flashcards.Flashcard{}
	}

	writeJSON(ctx, w, http.StatusOK, DeckResponse{
		DeckSummary: summarize(deck),
		Flashcards:  cards,
	})
}

// Delete handles DELETE /api/decks/{id}.
func (h *DeckHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.flashcardService.DeleteDeck(ctx, id); err != nil {
		handleServiceError(ctx, w, err, "Invalid request", "Failed to delete deck")
		return
	}

	contextutil.LoggerFromContext(ctx).DebugContext(ctx, "deck removed", "deck_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func summarize(d service.Deck) DeckSummary {
	return DeckSummary{
		ID:        d.ID,
		Title:     d.Title,
		CardCount: d.CardCount,
		CreatedAt: d.CreatedAt.UTC().Format(time.RFC3339),
	}
}
