package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_deck_store.go -package=mocks studydeck/internal/storage DeckStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// DeckStore defines the interface for deck storage operations.
type DeckStore interface {
	// GetByHash gets a deck and its cards by content hash.
	// Returns nil and ErrNotFound if not found.
	GetByHash(ctx context.Context, hash string) (*DeckRecord, error)
	// GetByID gets a deck and its cards by ID.
	// Returns nil and ErrNotFound if not found.
	GetByID(ctx context.Context, id string) (*DeckRecord, error)
	// List returns all decks without cards, newest first.
	List(ctx context.Context) ([]DeckRecord, error)
	// Create inserts a deck and its cards. A UUID is generated when deck.ID is empty.
	Create(ctx context.Context, deck *DeckRecord) error
	// Delete removes a deck and its cards. Returns ErrNotFound if not found.
	Delete(ctx context.Context, id string) error
}

// DeckRepo provides methods for deck operations.
// It implements the DeckStore interface.
type DeckRepo struct {
	db *sql.DB
}

// NewDeckRepo creates a new DeckRepo.
func NewDeckRepo(db *sql.DB) *DeckRepo {
	return &DeckRepo{db: db}
}

const deckColumns = "id, title, content_hash, card_count, created_at"

// GetByHash gets a deck and its cards by content hash.
func (r *DeckRepo) GetByHash(ctx context.Context, hash string) (*DeckRecord, error) {
	return r.getOne(ctx, "SELECT "+deckColumns+" FROM decks WHERE content_hash = ?", hash)
}

// GetByID gets a deck and its cards by ID.
func (r *DeckRepo) GetByID(ctx context.Context, id string) (*DeckRecord, error) {
	return r.getOne(ctx, "SELECT "+deckColumns+" FROM decks WHERE id = ?", id)
}

func (r *DeckRepo) getOne(ctx context.Context, query string, arg any) (*DeckRecord, error) {
	var deck DeckRecord
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&deck.ID, &deck.Title, &deck.Hash, &deck.CardCount, &deck.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query deck: %w", err)
	}

	cards, err := r.listCards(ctx, deck.ID)
	if err != nil {
		return nil, err
	}
	deck.Cards = cards

	return &deck, nil
}

func (r *DeckRepo) listCards(ctx context.Context, deckID string) ([]CardRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT position, question, answer, section FROM cards WHERE deck_id = ? ORDER BY position",
		deckID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	cards := []CardRecord{}
	for rows.Next() {
		var card CardRecord
		var section sql.NullString
		if err := rows.Scan(&card.Position, &card.Question, &card.Answer, &section); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		if section.Valid {
			s := section.String
			card.Section = &s
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return cards, nil
}

// List returns all decks without cards, newest first.
func (r *DeckRepo) List(ctx context.Context) ([]DeckRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+deckColumns+" FROM decks ORDER BY created_at DESC, title",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query decks: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	decks := []DeckRecord{}
	for rows.Next() {
		var deck DeckRecord
		if err := rows.Scan(&deck.ID, &deck.Title, &deck.Hash, &deck.CardCount, &deck.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan deck: %w", err)
		}
		decks = append(decks, deck)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return decks, nil
}

// Create inserts a deck and its cards in a single transaction.
// It sets deck.ID (when empty), deck.CardCount and deck.CreatedAt.
func (r *DeckRepo) Create(ctx context.Context, deck *DeckRecord) error {
	if deck.ID == "" {
		deck.ID = uuid.New().String()
	}
	deck.CardCount = len(deck.Cards)
	deck.CreatedAt = time.Now().UTC()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO decks (id, title, content_hash, card_count, created_at) VALUES (?, ?, ?, ?, ?)",
		deck.ID, deck.Title, deck.Hash, deck.CardCount, deck.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert deck: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO cards (deck_id, position, question, answer, section) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("failed to prepare card insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for i := range deck.Cards {
		card := &deck.Cards[i]
		card.Position = i
		var section sql.NullString
		if card.Section != nil {
			section = sql.NullString{String: *card.Section, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, deck.ID, card.Position, card.Question, card.Answer, section); err != nil {
			return fmt.Errorf("failed to insert card %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit deck: %w", err)
	}

	return nil
}

// Delete removes a deck and its cards.
func (r *DeckRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM cards WHERE deck_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete cards: %w", err)
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM decks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete deck: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}

	return nil
}
