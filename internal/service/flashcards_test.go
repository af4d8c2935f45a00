package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"studydeck/internal/flashcards"
	"studydeck/internal/service"
	"studydeck/internal/storage"
	"studydeck/internal/storage/mocks"

	"go.uber.org/mock/gomock"
)

func init() {
	// Set default logger to discard output for cleaner test output
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func strPtr(s string) *string {
	return &s
}

func TestNewFlashcardService(t *testing.T) {
	svc := service.NewFlashcardService(flashcards.NewExtractor(flashcards.DefaultOptions()), nil)
	if svc == nil {
		t.Fatal("NewFlashcardService() returned nil")
	}
}

func TestFlashcardService_Generate_WithoutStore(t *testing.T) {
	svc := service.NewFlashcardService(flashcards.NewExtractor(flashcards.DefaultOptions()), nil)

	tests := []struct {
		name         string
		req          service.GenerateRequest
		wantErr      bool
		wantQuestion string
	}{
		{
			name:         "definition",
			req:          service.GenerateRequest{Content: strPtr("Mitosis - cell division process")},
			wantQuestion: "What is Mitosis?",
		},
		{
			name:         "empty content gets fallback card",
			req:          service.GenerateRequest{Content: strPtr("")},
			wantQuestion: "Summarize this note:",
		},
		{
			name:    "missing content",
			req:     service.GenerateRequest{Title: "T"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Generate(context.Background(), tt.req)
			if tt.wantErr {
				var validationErr *service.ValidationError
				if !errors.As(err, &validationErr) || validationErr.Field != "content" {
					t.Fatalf("Generate() error = %v, want content ValidationError", err)
				}
				if !errors.Is(err, service.ErrInvalidInput) {
					t.Error("Generate() error should match ErrInvalidInput")
				}
				return
			}
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if resp.DeckID != "" || resp.Cached {
				t.Errorf("Generate() without store = %+v, want no deck", resp)
			}
			if len(resp.Flashcards) == 0 || resp.Flashcards[0].Question != tt.wantQuestion {
				t.Errorf("Generate() cards = %+v, want first question %q", resp.Flashcards, tt.wantQuestion)
			}
		})
	}
}

func TestFlashcardService_Generate_WithStore(t *testing.T) {
	opts := flashcards.DefaultOptions()
	content := "TCP vs UDP"
	hash := service.DeckHash("Networks", content, opts)

	tests := []struct {
		name       string
		mockSetup  func(*mocks.MockDeckStore)
		wantDeckID string
		wantCached bool
		wantAnswer string
	}{
		{
			name: "new deck is stored",
			mockSetup: func(m *mocks.MockDeckStore) {
				m.EXPECT().GetByHash(gomock.Any(), hash).Return(nil, storage.ErrNotFound)
				m.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, deck *storage.DeckRecord) error {
						if deck.Title != "Networks" || deck.Hash != hash || len(deck.Cards) != 1 {
							t.Errorf("Create() deck = %+v", deck)
						}
						deck.ID = "deck-1"
						return nil
					})
			},
			wantDeckID: "deck-1",
			wantAnswer: "Compare their definitions or features.",
		},
		{
			name: "stored deck is returned",
			mockSetup: func(m *mocks.MockDeckStore) {
				m.EXPECT().GetByHash(gomock.Any(), hash).Return(&storage.DeckRecord{
					ID: "deck-old",
					Cards: []storage.CardRecord{
						{Question: "Q", Answer: "stored answer", Section: strPtr("Networks")},
					},
				}, nil)
			},
			wantDeckID: "deck-old",
			wantCached: true,
			wantAnswer: "stored answer",
		},
		{
			name: "store failure still returns cards",
			mockSetup: func(m *mocks.MockDeckStore) {
				m.EXPECT().GetByHash(gomock.Any(), hash).Return(nil, errors.New("db down"))
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantAnswer: "Compare their definitions or features.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockDeckStore(ctrl)
			tt.mockSetup(store)

			svc := service.NewFlashcardService(flashcards.NewExtractor(opts), store)
			resp, err := svc.Generate(context.Background(), service.GenerateRequest{
				Content: strPtr(content),
				Title:   "Networks",
			})
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if resp.DeckID != tt.wantDeckID {
				t.Errorf("Generate() DeckID = %q, want %q", resp.DeckID, tt.wantDeckID)
			}
			if resp.Cached != tt.wantCached {
				t.Errorf("Generate() Cached = %v, want %v", resp.Cached, tt.wantCached)
			}
			if len(resp.Flashcards) != 1 || resp.Flashcards[0].Answer != tt.wantAnswer {
				t.Errorf("Generate() cards = %+v, want answer %q", resp.Flashcards, tt.wantAnswer)
			}
		})
	}
}

func TestFlashcardService_Generate_UntitledDeck(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockDeckStore(ctrl)

	store.EXPECT().GetByHash(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)
	store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, deck *storage.DeckRecord) error {
			if deck.Title != service.UntitledDeck {
				t.Errorf("Create() title = %q, want %q", deck.Title, service.UntitledDeck)
			}
			return nil
		})

	svc := service.NewFlashcardService(flashcards.NewExtractor(flashcards.DefaultOptions()), store)
	if _, err := svc.Generate(context.Background(), service.GenerateRequest{Content: strPtr("A - b")}); err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
}

func TestDeckHash(t *testing.T) {
	opts := flashcards.DefaultOptions()
	legacy := flashcards.Options{DefaultSection: flashcards.DefaultSection, LegacyHeadingReset: true}

	base := service.DeckHash("T", "content", opts)
	if base != service.DeckHash("T", "content", opts) {
		t.Error("DeckHash() should be deterministic")
	}

	others := map[string]string{
		"title":   service.DeckHash("U", "content", opts),
		"content": service.DeckHash("T", "content2", opts),
		"options": service.DeckHash("T", "content", legacy),
		"shifted": service.DeckHash("Tc", "ontent", opts),
	}
	for name, h := range others {
		if h == base {
			t.Errorf("DeckHash() did not change with %s", name)
		}
	}
}

func TestFlashcardService_ListDecks(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("without store", func(t *testing.T) {
		svc := service.NewFlashcardService(flashcards.NewExtractor(flashcards.DefaultOptions()), nil)
		decks, err := svc.ListDecks(context.Background())
		if err != nil || len(decks) != 0 {
			t.Errorf("ListDecks() = %v, %v; want empty, nil", decks, err)
		}
	})

	t.Run("with store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockDeckStore(ctrl)
		store.EXPECT().List(gomock.Any()).Return([]storage.DeckRecord{
			{ID: "d1", Title: "Bio", CardCount: 3, CreatedAt: created},
		}, nil)

		svc := service.NewFlashcardService(flashcards.NewExtractor(flashcards.DefaultOptions()), store)
		decks, err := svc.ListDecks(context.Background())
		if err != nil {
			t.Fatalf("ListDecks() unexpected error: %v", err)
		}
		if len(decks) != 1 || decks[0].ID != "d1" || decks[0].CardCount != 3 || !decks[0].CreatedAt.Equal(created) {
			t.Errorf("ListDecks() = %+v", decks)
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockDeckStore(ctrl)
		store.EXPECT().List(gomock.Any()).Return(nil, errors.New("boom"))

		svc := service.NewFlashcardService(flashcards.NewExtractor(flashcards.DefaultOptions()), store)
		if _, err := svc.ListDecks(context.Background()); err == nil {
			t.Error("ListDecks() expected error")
		}
	})
}

func TestFlashcardService_GetDeck(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(*mocks.MockDeckStore)
		wantErr   error
		wantCards int
	}{
		{
			name: "found",
			mockSetup: func(m *mocks.MockDeckStore) {
				m.EXPECT().GetByID(gomock.Any(), "d1").Return(&storage.DeckRecord{
					ID:        "d1",
					Title:     "Bio",
					CardCount: 2,
					Cards: []storage.CardRecord{
						{Question: "Q1", Answer: "A1"},
						{Question: "Q2", Answer: "A2", Section: strPtr("S")},
					},
				}, nil)
			},
			wantCards: 2,
		},
		{
			name: "not found",
			mockSetup: func(m *mocks.MockDeckStore) {
				m.EXPECT().GetByID(gomock.Any(), "d1").Return(nil, storage.ErrNotFound)
			},
			wantErr: service.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockDeckStore(ctrl)
			tt.mockSetup(store)

			svc := service.NewFlashcardService(flashcards.NewExtractor(flashcards.DefaultOptions()), store)
			deck, err := svc.GetDeck(context.Background(), "d1")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("GetDeck() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetDeck() unexpected error: %v", err)
			}
			if len(deck.Flashcards) != tt.wantCards {
				t.Errorf("GetDeck() cards = %d, want %d", len(deck.Flashcards), tt.wantCards)
			}
			if deck.Flashcards[1].SectionName() != "S" {
				t.Errorf("GetDeck() second card section = %q, want S", deck.Flashcards[1].SectionName())
			}
		})
	}
}

func TestFlashcardService_DeleteDeck(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockDeckStore(ctrl)
	gomock.InOrder(
		store.EXPECT().Delete(gomock.Any(), "d1").Return(nil),
		store.EXPECT().Delete(gomock.Any(), "d1").Return(storage.ErrNotFound),
	)

	svc := service.NewFlashcardService(flashcards.NewExtractor(flashcards.DefaultOptions()), store)
	if err := svc.DeleteDeck(context.Background(), "d1"); err != nil {
		t.Errorf("DeleteDeck() unexpected error: %v", err)
	}
	if err := svc.DeleteDeck(context.Background(), "d1"); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("DeleteDeck() error = %v, want ErrNotFound", err)
	}
}
