package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"studydeck/internal/handlers"
	"studydeck/internal/service"
)

// healthPath is excluded from request logging when healthy.
const healthPath = "/api/health"

// Deps holds dependencies for the HTTP router.
type Deps struct {
	FlashcardService service.FlashcardService
	// DB is pinged by the health check. Nil when persistence is disabled.
	DB handlers.Pinger
	// Import serves POST /api/import. Nil when no notes directory is configured.
	Import *handlers.ImportHandler
	// MaxContentBytes limits generate request bodies.
	MaxContentBytes int64
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.RequestID)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	// Add CORS middleware
	r.Use(CORS)

	flashcardHandler := handlers.NewFlashcardHandler(deps.FlashcardService, deps.MaxContentBytes)
	deckHandler := handlers.NewDeckHandler(deps.FlashcardService)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/flashcards/generate", flashcardHandler)

		r.Get("/decks", deckHandler.List)
		r.Get("/decks/{id}", deckHandler.Get)
		r.Delete("/decks/{id}", deckHandler.Delete)

		if deps.Import != nil {
			r.Method(http.MethodPost, "/import", deps.Import)
		}

		r.Method(http.MethodGet, "/health", healthHandler)
	})

	return r
}
