package dto

import (
	"github.com/qrasickz/vovabank_backend/internal/core/domain"
)

// IssueCardRequest selects the tier for a newly issued card.
type IssueCardRequest struct {
	Tier domain.CardTier `json:"tier" binding:"required,oneof=SILVER GOLD PLATINUM"`
}

// UpdateCardRequest defines the card settings a user may change.
type UpdateCardRequest struct {
	IsBlocked *bool `json:"isBlocked"`
	RotateCVV *bool `json:"rotateCVV"`
}

// CardResponse defines the card data returned to its owner.
type CardResponse struct {
	CardID    string             `json:"cardID"`
	Number    string             `json:"number"`
	Expiry    string             `json:"expiry"`
	CVV       string             `json:"cvv"`
	Network   domain.CardNetwork `json:"network"`
	Tier      domain.CardTier    `json:"tier"`
	IsBlocked bool               `json:"isBlocked"`
}

// ToCardResponse converts a domain.Card to its response DTO. The PIN is
// intentionally omitted from responses.
func ToCardResponse(c *domain.Card) CardResponse {
	return CardResponse{
		CardID:    c.CardID,
		Number:    c.Number,
		Expiry:    c.Expiry,
		CVV:       c.CVV,
		Network:   c.Network,
		Tier:      c.Tier,
		IsBlocked: c.IsBlocked,
	}
}

// ToCardResponses converts a slice of domain.Card to response DTOs.
func ToCardResponses(cards []domain.Card) []CardResponse {
	out := make([]CardResponse, len(cards))
	for i := range cards {
		out[i] = ToCardResponse(&cards[i])
	}
	return out
}
