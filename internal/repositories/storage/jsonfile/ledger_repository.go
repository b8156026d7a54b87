package jsonfile

import (
	"context"
	"fmt"
	"sort"

	"github.com/qrasickz/vovabank_backend/internal/apperrors"
	"github.com/qrasickz/vovabank_backend/internal/core/domain"
	portsrepo "github.com/qrasickz/vovabank_backend/internal/core/ports/repositories"
)

// LedgerRepository implements portsrepo.LedgerRepositoryWithTx over the
// snapshot store. The store's all-or-nothing write gives the engine its
// atomic balance-plus-entry unit of work.
type LedgerRepository struct {
	store *Store
}

// NewLedgerRepository creates a ledger repository backed by the given store.
func NewLedgerRepository(store *Store) *LedgerRepository {
	return &LedgerRepository{store: store}
}

var _ portsrepo.LedgerRepositoryWithTx = (*LedgerRepository)(nil)

func (r *LedgerRepository) AppendEntry(ctx context.Context, entry domain.LedgerEntry) error {
	return r.store.withWrite(ctx, func(s *snapshot) error {
		s.Entries = append(s.Entries, entry)
		return nil
	})
}

func (r *LedgerRepository) ListEntriesByUser(ctx context.Context, userID string) ([]domain.LedgerEntry, error) {
	var out []domain.LedgerEntry
	r.store.withRead(func(s *snapshot) {
		for i := range s.Entries {
			if s.Entries[i].Involves(userID) {
				out = append(out, s.Entries[i])
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *LedgerRepository) SaveEntryWithBalances(ctx context.Context, entry domain.LedgerEntry, updates []portsrepo.BalanceUpdate) error {
	return r.store.withWrite(ctx, func(s *snapshot) error {
		for _, upd := range updates {
			if _, ok := s.Users[upd.UserID]; !ok {
				return fmt.Errorf("user %s: %w", upd.UserID, apperrors.ErrNotFound)
			}
		}
		for _, upd := range updates {
			u := s.Users[upd.UserID]
			u.Balance = upd.NewBalance
			if upd.SalaryClaimedAt != nil {
				claimed := *upd.SalaryClaimedAt
				u.LastSalaryClaim = &claimed
			}
		}
		s.Entries = append(s.Entries, entry)
		return nil
	})
}
