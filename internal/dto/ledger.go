package dto

import (
	"time"

	"github.com/qrasickz/vovabank_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CounterpartyResponse is one side of a ledger entry as returned to callers.
type CounterpartyResponse struct {
	Kind   domain.CounterpartyKind `json:"kind"`
	UserID string                  `json:"userID,omitempty"`
}

// LedgerEntryResponse defines one history row.
type LedgerEntryResponse struct {
	EntryID     string               `json:"entryID"`
	From        CounterpartyResponse `json:"from"`
	To          CounterpartyResponse `json:"to"`
	Amount      decimal.Decimal      `json:"amount"`
	Category    domain.EntryCategory `json:"category"`
	Description string               `json:"description"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// HistoryResponse wraps a user's transaction history, newest first.
type HistoryResponse struct {
	Entries []LedgerEntryResponse `json:"entries"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its response DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:     e.EntryID,
		From:        CounterpartyResponse{Kind: e.From.Kind, UserID: e.From.UserID},
		To:          CounterpartyResponse{Kind: e.To.Kind, UserID: e.To.UserID},
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

// ToHistoryResponse converts a slice of entries to the history DTO.
func ToHistoryResponse(entries []domain.LedgerEntry) HistoryResponse {
	out := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		out[i] = ToLedgerEntryResponse(&entries[i])
	}
	return HistoryResponse{Entries: out}
}
