package storage

import "time"

// DeckRecord represents a generated flashcard deck in the database.
type DeckRecord struct {
	ID        string // UUID
	Title     string // Note title the deck was generated from
	Hash      string // SHA256 hex of title, content and extractor options
	CardCount int
	CreatedAt time.Time
	Cards     []CardRecord // Empty for list results
}

// CardRecord represents a single flashcard belonging to a deck.
type CardRecord struct {
	Position int     // Order within the deck (starts at 0)
	Question string
	Answer   string
	Section  *string // NULL when the card has no section
}
