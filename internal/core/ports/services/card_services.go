package services

import (
	"context"

	"github.com/qrasickz/vovabank_backend/internal/core/domain"
	"github.com/qrasickz/vovabank_backend/internal/dto"
)

// CardSvcFacade is the card-store surface scoped to an owning user.
type CardSvcFacade interface {
	// IssueCard creates a new virtual card for the user. The owner must be
	// verified; ErrUserNotVerified otherwise.
	IssueCard(ctx context.Context, userID string, tier domain.CardTier) (*domain.Card, error)

	// ListCards returns the user's cards.
	ListCards(ctx context.Context, userID string) ([]domain.Card, error)

	// UpdateCard applies settings changes (block toggle, CVV rotation) to a
	// card owned by the user. apperrors.ErrNotFound for unknown or
	// foreign-owned cards.
	UpdateCard(ctx context.Context, userID string, cardID string, req dto.UpdateCardRequest) (*domain.Card, error)

	// CloseCard deletes a card owned by the user.
	CloseCard(ctx context.Context, userID string, cardID string) error
}
