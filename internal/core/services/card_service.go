package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/qrasickz/vovabank_backend/internal/apperrors"
	"github.com/qrasickz/vovabank_backend/internal/core/domain"
	portsrepo "github.com/qrasickz/vovabank_backend/internal/core/ports/repositories"
	portssvc "github.com/qrasickz/vovabank_backend/internal/core/ports/services"
	"github.com/qrasickz/vovabank_backend/internal/dto"
	"github.com/qrasickz/vovabank_backend/internal/utils"
)

// ErrUserNotVerified is returned when an unverified account requests a
// virtual card.
var ErrUserNotVerified = errors.New("account is not verified")

// cardExpiry is the fixed expiry stamped on every issued virtual card.
const cardExpiry = "12/30"

// cardService implements the card store.
type cardService struct {
	BaseService
	cardRepo portsrepo.CardRepository
	userRepo portsrepo.UserRepository
}

// NewCardService creates the card store service.
func NewCardService(cardRepo portsrepo.CardRepository, userRepo portsrepo.UserRepository) portssvc.CardSvcFacade {
	return &cardService{cardRepo: cardRepo, userRepo: userRepo}
}

var _ portssvc.CardSvcFacade = (*cardService)(nil)

func (s *cardService) IssueCard(ctx context.Context, userID string, tier domain.CardTier) (*domain.Card, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsVerified {
		return nil, ErrUserNotVerified
	}

	number, err := utils.GenerateCardNumber()
	if err != nil {
		return nil, err
	}
	cvv, err := utils.GenerateCVV()
	if err != nil {
		return nil, err
	}
	pin, err := utils.GeneratePIN()
	if err != nil {
		return nil, err
	}
	network, err := utils.PickCardNetwork()
	if err != nil {
		return nil, err
	}

	card := domain.Card{
		CardID:  uuid.NewString(),
		UserID:  userID,
		Number:  number,
		Expiry:  cardExpiry,
		CVV:     cvv,
		PIN:     pin,
		Network: domain.CardNetwork(network),
		Tier:    tier,
	}

	if err := s.cardRepo.SaveCard(ctx, card); err != nil {
		s.LogError(ctx, err, "Failed to save card", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Card issued", slog.String("user_id", userID), slog.String("card_id", card.CardID), slog.String("tier", string(tier)))
	return &card, nil
}

func (s *cardService) ListCards(ctx context.Context, userID string) ([]domain.Card, error) {
	return s.cardRepo.ListCardsByUser(ctx, userID)
}

// findOwnedCard resolves a card and checks ownership. A foreign-owned card
// is reported as not found rather than forbidden so card ids of other users
// cannot be enumerated.
func (s *cardService) findOwnedCard(ctx context.Context, userID, cardID string) (*domain.Card, error) {
	card, err := s.cardRepo.FindCardByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card.UserID != userID {
		return nil, fmt.Errorf("card %s: %w", cardID, apperrors.ErrNotFound)
	}
	return card, nil
}

func (s *cardService) UpdateCard(ctx context.Context, userID string, cardID string, req dto.UpdateCardRequest) (*domain.Card, error) {
	card, err := s.findOwnedCard(ctx, userID, cardID)
	if err != nil {
		return nil, err
	}

	if req.IsBlocked != nil {
		card.IsBlocked = *req.IsBlocked
	}
	if req.RotateCVV != nil && *req.RotateCVV {
		cvv, err := utils.GenerateCVV()
		if err != nil {
			return nil, err
		}
		card.CVV = cvv
	}

	if err := s.cardRepo.UpdateCard(ctx, *card); err != nil {
		s.LogError(ctx, err, "Failed to update card", slog.String("card_id", cardID))
		return nil, err
	}
	return card, nil
}

func (s *cardService) CloseCard(ctx context.Context, userID string, cardID string) error {
	if _, err := s.findOwnedCard(ctx, userID, cardID); err != nil {
		return err
	}
	if err := s.cardRepo.DeleteCard(ctx, cardID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Card closed", slog.String("user_id", userID), slog.String("card_id", cardID))
	return nil
}
