package repositories

import (
	"context"

	"github.com/qrasickz/vovabank_backend/internal/core/domain"
)

// CardReader defines read operations for card records.
type CardReader interface {
	// FindCardByID retrieves a card by its unique identifier.
	FindCardByID(ctx context.Context, cardID string) (*domain.Card, error)

	// FindCardByNumber retrieves a card by its number, ignoring whitespace
	// formatting differences. Used by transfer resolution.
	FindCardByNumber(ctx context.Context, number string) (*domain.Card, error)

	// ListCardsByUser retrieves all cards owned by the given user.
	ListCardsByUser(ctx context.Context, userID string) ([]domain.Card, error)
}

// CardWriter defines write operations for card records.
type CardWriter interface {
	// SaveCard persists a new card.
	SaveCard(ctx context.Context, card domain.Card) error

	// UpdateCard replaces an existing card record.
	// Returns apperrors.ErrNotFound for unknown ids.
	UpdateCard(ctx context.Context, card domain.Card) error

	// DeleteCard removes a card record. Does not cascade to the ledger or
	// the owning user. Returns apperrors.ErrNotFound for unknown ids.
	DeleteCard(ctx context.Context, cardID string) error
}

// CardRepository combines all card record operations.
type CardRepository interface {
	CardReader
	CardWriter
}
