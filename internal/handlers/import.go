package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"

	"studydeck/internal/contextutil"
	"studydeck/internal/importer"
)

// ImportHandler handles HTTP requests for importing the configured notes directory.
type ImportHandler struct {
	pipeline *importer.Pipeline
	root     string
	running  atomic.Bool
	// done is called with the result of each background run. Used by tests.
	done func(*importer.Stats, error)
}

// NewImportHandler creates a new ImportHandler that imports notes below root.
func NewImportHandler(pipeline *importer.Pipeline, root string) *ImportHandler {
	return &ImportHandler{
		pipeline: pipeline,
		root:     root,
	}
}

// ImportResponse represents the response from the import endpoint.
type ImportResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// ServeHTTP handles POST /api/import.
func (h *ImportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(ctx, w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	// Use a detached context so the import continues after the response is sent
	if !h.Start(contextutil.WithLogger(context.Background(), logger)) {
		logger.InfoContext(ctx, "import already running")
		writeError(ctx, w, http.StatusConflict, "Import already running")
		return
	}

	logger.InfoContext(ctx, "import triggered via API", "root", h.root)

	writeJSON(ctx, w, http.StatusAccepted, ImportResponse{
		Message: "Import started. Check server logs for progress.",
		Status:  "accepted",
	})
}

// Start runs an import in the background unless one is already in progress.
// It reports whether a new import was started.
func (h *ImportHandler) Start(ctx context.Context) bool {
	if !h.running.CompareAndSwap(false, true) {
		return false
	}

	go func() {
		defer h.running.Store(false)
		stats, err := h.Run(ctx)
		if h.done != nil {
			h.done(stats, err)
		}
	}()
	return true
}

// Run imports the notes directory synchronously and logs the outcome.
// It does not take the running guard; callers that may overlap use Start.
func (h *ImportHandler) Run(ctx context.Context) (*importer.Stats, error) {
	logger := contextutil.LoggerFromContext(ctx)

	stats, err := h.pipeline.ImportAll(ctx, h.root)
	if err != nil {
		logger.ErrorContext(ctx, "import completed with errors", "root", h.root, "error", err)
		return stats, err
	}

	logger.InfoContext(ctx, "import completed successfully", slog.Group("stats",
		"notes", stats.Notes,
		"imported", stats.Imported,
		"skipped", stats.Skipped,
		"cards", stats.Cards.Total,
	))
	return stats, nil
}
