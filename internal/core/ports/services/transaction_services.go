package services

import (
	"context"

	"github.com/qrasickz/vovabank_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionSvcFacade is the transaction engine: the only component
// permitted to mutate balances. Every successful operation appends exactly
// one ledger entry whose amount equals the absolute balance delta, and no
// operation may leave a balance negative.
type TransactionSvcFacade interface {
	// Transfer moves amount from the sender to the owner of the card with
	// the given number. Fails with ErrSenderNotFound, ErrCardNotFound,
	// ErrCardBlocked, ErrInsufficientFunds, ErrSelfTransfer or
	// ErrInvalidAmount; on failure no state changes.
	Transfer(ctx context.Context, senderUserID, targetCardNumber string, amount decimal.Decimal, description string) error

	// Wager settles one casino bet: net = bet*multiplier - bet is applied to
	// the balance and one GAME entry vs the CASINO party records |net|.
	// Returns the resulting balance so the caller can render it without a
	// second read.
	Wager(ctx context.Context, userID string, bet decimal.Decimal, multiplier decimal.Decimal, gameLabel string) (decimal.Decimal, error)

	// CollectDailySalary credits the daily salary once per calendar day.
	// A second claim on the same day fails with ErrSalaryAlreadyClaimed.
	CollectDailySalary(ctx context.Context, userID string, amount decimal.Decimal) error

	// AwardTaskReward credits a per-task reward with its SALARY entry.
	AwardTaskReward(ctx context.Context, userID string, amount decimal.Decimal, taskLabel string) error

	// AdjustBalance sets the balance to newBalance (admin edit). The delta
	// is ledgered as DEPOSIT or WITHDRAWAL against the SYSTEM party. The
	// actor must be an admin.
	AdjustBalance(ctx context.Context, actorUserID, userID string, newBalance decimal.Decimal, reason string) error
}

// CasinoSvcFacade derives game outcomes and settles them through the
// transaction engine. The engine itself is agnostic to how a multiplier was
// produced.
type CasinoSvcFacade interface {
	PlaySlots(ctx context.Context, userID string, bet decimal.Decimal) (*domain.SlotsResult, error)
	PlayCoinFlip(ctx context.Context, userID string, bet decimal.Decimal, pick domain.CoinSide) (*domain.CoinFlipResult, error)
	PlayRoulette(ctx context.Context, userID string, bet decimal.Decimal, pick domain.RouletteColor) (*domain.RouletteResult, error)
}
