package services_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/qrasickz/vovabank_backend/internal/core/domain"
	portsrepo "github.com/qrasickz/vovabank_backend/internal/core/ports/repositories"
	portssvc "github.com/qrasickz/vovabank_backend/internal/core/ports/services"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SaveUserWithDeposit(ctx context.Context, user domain.User, entry *domain.LedgerEntry) error {
	args := m.Called(ctx, user, entry)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock CardRepository ---
type MockCardRepository struct {
	mock.Mock
}

var _ portsrepo.CardRepository = (*MockCardRepository)(nil)

func (m *MockCardRepository) FindCardByID(ctx context.Context, cardID string) (*domain.Card, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardRepository) FindCardByNumber(ctx context.Context, number string) (*domain.Card, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardRepository) ListCardsByUser(ctx context.Context, userID string) ([]domain.Card, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Card), args.Error(1)
}

func (m *MockCardRepository) SaveCard(ctx context.Context, card domain.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) UpdateCard(ctx context.Context, card domain.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) DeleteCard(ctx context.Context, cardID string) error {
	args := m.Called(ctx, cardID)
	return args.Error(0)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryWithTx = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) AppendEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) ListEntriesByUser(ctx context.Context, userID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) SaveEntryWithBalances(ctx context.Context, entry domain.LedgerEntry, updates []portsrepo.BalanceUpdate) error {
	args := m.Called(ctx, entry, updates)
	return args.Error(0)
}

// --- Mock TransactionService (as used by the casino and job services) ---
type MockTransactionService struct {
	mock.Mock
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

func (m *MockTransactionService) Transfer(ctx context.Context, senderUserID, targetCardNumber string, amount decimal.Decimal, description string) error {
	args := m.Called(ctx, senderUserID, targetCardNumber, amount, description)
	return args.Error(0)
}

func (m *MockTransactionService) Wager(ctx context.Context, userID string, bet decimal.Decimal, multiplier decimal.Decimal, gameLabel string) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, bet, multiplier, gameLabel)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTransactionService) CollectDailySalary(ctx context.Context, userID string, amount decimal.Decimal) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *MockTransactionService) AwardTaskReward(ctx context.Context, userID string, amount decimal.Decimal, taskLabel string) error {
	args := m.Called(ctx, userID, amount, taskLabel)
	return args.Error(0)
}

func (m *MockTransactionService) AdjustBalance(ctx context.Context, actorUserID, userID string, newBalance decimal.Decimal, reason string) error {
	args := m.Called(ctx, actorUserID, userID, newBalance, reason)
	return args.Error(0)
}
