package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/qrasickz/vovabank_backend/internal/apperrors"
	"github.com/qrasickz/vovabank_backend/internal/core/domain"
	portsrepo "github.com/qrasickz/vovabank_backend/internal/core/ports/repositories"
	portssvc "github.com/qrasickz/vovabank_backend/internal/core/ports/services"
)

// Engine failure modes. Handlers map these to HTTP statuses; the engine
// guarantees that none of them leaves a partial state change behind.
var (
	ErrSenderNotFound       = errors.New("sender account not found")
	ErrCardNotFound         = errors.New("target card not found")
	ErrCardBlocked          = errors.New("target card is blocked")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrSelfTransfer         = errors.New("cannot transfer to your own card")
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrSalaryAlreadyClaimed = errors.New("salary already claimed today")
)

// transactionService is the transaction engine: the only component that
// mutates balances. A single mutex serializes every balance-affecting
// operation so read-validate-write sequences never interleave.
type transactionService struct {
	BaseService
	mu         sync.Mutex
	userRepo   portsrepo.UserRepository
	cardRepo   portsrepo.CardRepository
	ledgerRepo portsrepo.LedgerRepositoryWithTx
	now        func() time.Time
}

// TransactionServiceOption configures the transaction engine.
type TransactionServiceOption func(*transactionService)

// WithClock overrides the engine's time source.
func WithClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) { s.now = now }
}

// NewTransactionService creates the transaction engine.
func NewTransactionService(userRepo portsrepo.UserRepository, cardRepo portsrepo.CardRepository, ledgerRepo portsrepo.LedgerRepositoryWithTx, opts ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	s := &transactionService{
		userRepo:   userRepo,
		cardRepo:   cardRepo,
		ledgerRepo: ledgerRepo,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) Transfer(ctx context.Context, senderUserID, targetCardNumber string, amount decimal.Decimal, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sender, err := s.userRepo.FindUserByID(ctx, senderUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return ErrSenderNotFound
		}
		return err
	}

	card, err := s.cardRepo.FindCardByNumber(ctx, targetCardNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return ErrCardNotFound
		}
		return err
	}
	if card.IsBlocked {
		return ErrCardBlocked
	}

	receiver, err := s.userRepo.FindUserByID(ctx, card.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return ErrCardNotFound
		}
		return err
	}

	if sender.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	if receiver.UserID == sender.UserID {
		return ErrSelfTransfer
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	entry := domain.LedgerEntry{
		EntryID:     uuid.NewString(),
		From:        domain.AccountParty(sender.UserID),
		To:          domain.AccountParty(receiver.UserID),
		Amount:      amount,
		Category:    domain.CategoryTransfer,
		Description: description,
		CreatedAt:   s.now(),
	}
	updates := []portsrepo.BalanceUpdate{
		{UserID: sender.UserID, NewBalance: sender.Balance.Sub(amount)},
		{UserID: receiver.UserID, NewBalance: receiver.Balance.Add(amount)},
	}
	if err := s.ledgerRepo.SaveEntryWithBalances(ctx, entry, updates); err != nil {
		s.LogError(ctx, err, "Failed to settle transfer", slog.String("sender_id", sender.UserID))
		return err
	}

	s.LogInfo(ctx, "Transfer settled",
		slog.String("sender_id", sender.UserID),
		slog.String("receiver_id", receiver.UserID),
		slog.String("amount", amount.String()))
	return nil
}

func (s *transactionService) Wager(ctx context.Context, userID string, bet decimal.Decimal, multiplier decimal.Decimal, gameLabel string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !bet.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	if multiplier.IsNegative() {
		return decimal.Zero, fmt.Errorf("multiplier must be non-negative: %w", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	if user.Balance.LessThan(bet) {
		return decimal.Zero, ErrInsufficientFunds
	}

	// net is the signed balance delta: payout minus stake.
	net := bet.Mul(multiplier).Sub(bet)
	newBalance := user.Balance.Add(net)

	from, to := domain.AccountParty(userID), domain.CasinoParty()
	if net.IsPositive() {
		from, to = domain.CasinoParty(), domain.AccountParty(userID)
	}
	entry := domain.LedgerEntry{
		EntryID:     uuid.NewString(),
		From:        from,
		To:          to,
		Amount:      net.Abs(),
		Category:    domain.CategoryGame,
		Description: gameLabel,
		CreatedAt:   s.now(),
	}
	updates := []portsrepo.BalanceUpdate{{UserID: userID, NewBalance: newBalance}}
	if err := s.ledgerRepo.SaveEntryWithBalances(ctx, entry, updates); err != nil {
		s.LogError(ctx, err, "Failed to settle wager", slog.String("user_id", userID))
		return decimal.Zero, err
	}

	s.LogInfo(ctx, "Wager settled",
		slog.String("user_id", userID),
		slog.String("game", gameLabel),
		slog.String("net", net.String()))
	return newBalance, nil
}

func (s *transactionService) CollectDailySalary(ctx context.Context, userID string, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}

	now := s.now()
	if user.LastSalaryClaim != nil && sameCalendarDay(*user.LastSalaryClaim, now) {
		return ErrSalaryAlreadyClaimed
	}

	entry := domain.LedgerEntry{
		EntryID:     uuid.NewString(),
		From:        domain.JobParty(),
		To:          domain.AccountParty(userID),
		Amount:      amount,
		Category:    domain.CategorySalary,
		Description: "Daily salary",
		CreatedAt:   now,
	}
	updates := []portsrepo.BalanceUpdate{{
		UserID:          userID,
		NewBalance:      user.Balance.Add(amount),
		SalaryClaimedAt: &now,
	}}
	if err := s.ledgerRepo.SaveEntryWithBalances(ctx, entry, updates); err != nil {
		s.LogError(ctx, err, "Failed to credit salary", slog.String("user_id", userID))
		return err
	}

	s.LogInfo(ctx, "Salary collected", slog.String("user_id", userID), slog.String("amount", amount.String()))
	return nil
}

func (s *transactionService) AwardTaskReward(ctx context.Context, userID string, amount decimal.Decimal, taskLabel string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}

	entry := domain.LedgerEntry{
		EntryID:     uuid.NewString(),
		From:        domain.JobParty(),
		To:          domain.AccountParty(userID),
		Amount:      amount,
		Category:    domain.CategorySalary,
		Description: taskLabel,
		CreatedAt:   s.now(),
	}
	updates := []portsrepo.BalanceUpdate{{UserID: userID, NewBalance: user.Balance.Add(amount)}}
	if err := s.ledgerRepo.SaveEntryWithBalances(ctx, entry, updates); err != nil {
		s.LogError(ctx, err, "Failed to credit task reward", slog.String("user_id", userID))
		return err
	}
	return nil
}

func (s *transactionService) AdjustBalance(ctx context.Context, actorUserID, userID string, newBalance decimal.Decimal, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, err := s.userRepo.FindUserByID(ctx, actorUserID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return fmt.Errorf("user %s is not an admin: %w", actorUserID, apperrors.ErrForbidden)
	}
	if newBalance.IsNegative() {
		return ErrInvalidAmount
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}

	delta := newBalance.Sub(user.Balance)
	if delta.IsZero() {
		return nil
	}

	from, to := domain.AccountParty(userID), domain.SystemParty()
	category := domain.CategoryWithdrawal
	if delta.IsPositive() {
		from, to = domain.SystemParty(), domain.AccountParty(userID)
		category = domain.CategoryDeposit
	}
	if reason == "" {
		reason = "Balance adjustment"
	}
	entry := domain.LedgerEntry{
		EntryID:     uuid.NewString(),
		From:        from,
		To:          to,
		Amount:      delta.Abs(),
		Category:    category,
		Description: reason,
		CreatedAt:   s.now(),
	}
	updates := []portsrepo.BalanceUpdate{{UserID: userID, NewBalance: newBalance}}
	if err := s.ledgerRepo.SaveEntryWithBalances(ctx, entry, updates); err != nil {
		s.LogError(ctx, err, "Failed to adjust balance", slog.String("user_id", userID))
		return err
	}

	s.LogInfo(ctx, "Balance adjusted",
		slog.String("actor_id", actorUserID),
		slog.String("user_id", userID),
		slog.String("new_balance", newBalance.String()))
	return nil
}

// sameCalendarDay compares wall-clock dates in local time.
func sameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
