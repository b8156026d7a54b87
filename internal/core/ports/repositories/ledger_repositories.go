package repositories

import (
	"context"
	"time"

	"github.com/qrasickz/vovabank_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceUpdate carries the new absolute balance for one user, plus the
// optional salary claim timestamp set atomically with the credit.
type BalanceUpdate struct {
	UserID          string
	NewBalance      decimal.Decimal
	SalaryClaimedAt *time.Time
}

// LedgerReader defines read operations over the append-only ledger.
type LedgerReader interface {
	// ListEntriesByUser returns every entry where the user is sender or
	// receiver, ordered newest-first by timestamp.
	ListEntriesByUser(ctx context.Context, userID string) ([]domain.LedgerEntry, error)
}

// LedgerWriter defines write operations over the append-only ledger.
type LedgerWriter interface {
	// AppendEntry writes one immutable record. No business-rule validation;
	// that is the transaction engine's job.
	AppendEntry(ctx context.Context, entry domain.LedgerEntry) error
}

// LedgerRepositoryWithTx extends the ledger with the atomic write the
// transaction engine needs: the balance updates and the entry are applied
// together or not at all.
type LedgerRepositoryWithTx interface {
	LedgerReader
	LedgerWriter

	// SaveEntryWithBalances sets the new balances and appends the entry as
	// one unit of work. Returns apperrors.ErrNotFound when any referenced
	// user does not exist; on any error no state change is persisted.
	SaveEntryWithBalances(ctx context.Context, entry domain.LedgerEntry, updates []BalanceUpdate) error
}
