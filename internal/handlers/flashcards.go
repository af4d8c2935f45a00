package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"studydeck/internal/contextutil"
	"studydeck/internal/flashcards"
	"studydeck/internal/service"
)

const (
	msgInvalidContent  = "Invalid Content"
	msgInternalError   = "Internal Server error"
	msgContentTooLarge = "Content Too Large"
)

// FlashcardHandler handles HTTP requests for flashcard generation.
type FlashcardHandler struct {
	flashcardService service.FlashcardService
	maxBodyBytes     int64
}

// NewFlashcardHandler creates a new FlashcardHandler.
// Request bodies larger than maxBodyBytes are rejected; zero or less disables the limit.
func NewFlashcardHandler(flashcardService service.FlashcardService, maxBodyBytes int64) *FlashcardHandler {
	return &FlashcardHandler{
		flashcardService: flashcardService,
		maxBodyBytes:     maxBodyBytes,
	}
}

// GenerateRequest represents the HTTP request payload for generation.
type GenerateRequest struct {
	Content *string   `json:"content"`
	Title   noteTitle `json:"title,omitempty"`
}

// noteTitle accepts any JSON value as a title. Strings are used as is, null
// means no title and other values keep their literal JSON text.
type noteTitle string

func (t *noteTitle) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = noteTitle(s)
		return nil
	}
	*t = noteTitle(bytes.TrimSpace(data))
	return nil
}

// GenerateResponse represents the HTTP response payload for generation.
type GenerateResponse struct {
	Success    bool                   `json:"success"`
	Flashcards []flashcards.Flashcard `json:"flashcards"`
	DeckID     string                 `json:"deck_id,omitempty"`
	Cached     bool                   `json:"cached,omitempty"`
}

// ServeHTTP handles POST /api/flashcards/generate.
func (h *FlashcardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(ctx, w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			logger.WarnContext(ctx, "request body too large", "limit", maxBytesErr.Limit)
			writeError(ctx, w, http.StatusRequestEntityTooLarge, msgContentTooLarge)
			return
		}
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(ctx, w, http.StatusBadRequest, msgInvalidContent)
		return
	}

	svcResp, err := h.flashcardService.Generate(ctx, service.GenerateRequest{
		Content: req.Content,
		Title:   string(req.Title),
	})
	if err != nil {
		handleServiceError(ctx, w, err, msgInvalidContent, msgInternalError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, GenerateResponse{
		Success:    true,
		Flashcards: svcResp.Flashcards,
		DeckID:     svcResp.DeckID,
		Cached:     svcResp.Cached,
	})
}
