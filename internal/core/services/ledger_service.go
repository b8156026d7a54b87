package services

import (
	"context"

	"github.com/qrasickz/vovabank_backend/internal/core/domain"
	portsrepo "github.com/qrasickz/vovabank_backend/internal/core/ports/repositories"
	portssvc "github.com/qrasickz/vovabank_backend/internal/core/ports/services"
)

// ledgerService exposes read access to the audit trail. Writes happen only
// through the transaction engine and the account store.
type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerReader
}

// NewLedgerService creates the ledger read service.
func NewLedgerService(ledgerRepo portsrepo.LedgerReader) portssvc.LedgerSvcFacade {
	return &ledgerService{ledgerRepo: ledgerRepo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) HistoryFor(ctx context.Context, userID string) ([]domain.LedgerEntry, error) {
	return s.ledgerRepo.ListEntriesByUser(ctx, userID)
}
