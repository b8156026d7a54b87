package jsonfile

import (
	"context"
	"fmt"
	"strings"

	"github.com/qrasickz/vovabank_backend/internal/apperrors"
	"github.com/qrasickz/vovabank_backend/internal/core/domain"
	portsrepo "github.com/qrasickz/vovabank_backend/internal/core/ports/repositories"
)

// CardRepository implements portsrepo.CardRepository over the snapshot store.
type CardRepository struct {
	store *Store
}

// NewCardRepository creates a card repository backed by the given store.
func NewCardRepository(store *Store) *CardRepository {
	return &CardRepository{store: store}
}

var _ portsrepo.CardRepository = (*CardRepository)(nil)

// normalizeCardNumber strips all whitespace so lookups are insensitive to
// display formatting.
func normalizeCardNumber(number string) string {
	return strings.Join(strings.Fields(number), "")
}

func (r *CardRepository) FindCardByID(ctx context.Context, cardID string) (*domain.Card, error) {
	var out *domain.Card
	r.store.withRead(func(s *snapshot) {
		if c, ok := s.Cards[cardID]; ok {
			cp := *c
			out = &cp
		}
	})
	if out == nil {
		return nil, fmt.Errorf("card %s: %w", cardID, apperrors.ErrNotFound)
	}
	return out, nil
}

func (r *CardRepository) FindCardByNumber(ctx context.Context, number string) (*domain.Card, error) {
	want := normalizeCardNumber(number)
	var out *domain.Card
	r.store.withRead(func(s *snapshot) {
		for _, c := range s.Cards {
			if normalizeCardNumber(c.Number) == want {
				cp := *c
				out = &cp
				break
			}
		}
	})
	if out == nil {
		return nil, fmt.Errorf("card number: %w", apperrors.ErrNotFound)
	}
	return out, nil
}

func (r *CardRepository) ListCardsByUser(ctx context.Context, userID string) ([]domain.Card, error) {
	var out []domain.Card
	r.store.withRead(func(s *snapshot) {
		for _, c := range s.Cards {
			if c.UserID == userID {
				out = append(out, *c)
			}
		}
	})
	return out, nil
}

func (r *CardRepository) SaveCard(ctx context.Context, card domain.Card) error {
	return r.store.withWrite(ctx, func(s *snapshot) error {
		if _, exists := s.Cards[card.CardID]; exists {
			return fmt.Errorf("card id %s: %w", card.CardID, apperrors.ErrDuplicate)
		}
		want := normalizeCardNumber(card.Number)
		for _, c := range s.Cards {
			if normalizeCardNumber(c.Number) == want {
				return fmt.Errorf("card number: %w", apperrors.ErrDuplicate)
			}
		}
		cp := card
		s.Cards[card.CardID] = &cp
		return nil
	})
}

func (r *CardRepository) UpdateCard(ctx context.Context, card domain.Card) error {
	return r.store.withWrite(ctx, func(s *snapshot) error {
		if _, ok := s.Cards[card.CardID]; !ok {
			return fmt.Errorf("card %s: %w", card.CardID, apperrors.ErrNotFound)
		}
		cp := card
		s.Cards[card.CardID] = &cp
		return nil
	})
}

func (r *CardRepository) DeleteCard(ctx context.Context, cardID string) error {
	return r.store.withWrite(ctx, func(s *snapshot) error {
		if _, ok := s.Cards[cardID]; !ok {
			return fmt.Errorf("card %s: %w", cardID, apperrors.ErrNotFound)
		}
		delete(s.Cards, cardID)
		return nil
	})
}
