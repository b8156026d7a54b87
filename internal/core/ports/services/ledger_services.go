package services

import (
	"context"

	"github.com/qrasickz/vovabank_backend/internal/core/domain"
)

// LedgerSvcFacade exposes the append-only audit trail.
type LedgerSvcFacade interface {
	// HistoryFor returns all entries where the user is sender or receiver,
	// newest-first by timestamp.
	HistoryFor(ctx context.Context, userID string) ([]domain.LedgerEntry, error)
}
