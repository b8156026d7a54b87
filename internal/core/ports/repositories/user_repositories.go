package repositories

import (
	"context"

	"github.com/qrasickz/vovabank_backend/internal/core/domain"
)

// UserReader defines read operations for user records.
type UserReader interface {
	// FindUserByID retrieves a user by its unique identifier.
	// Returns apperrors.ErrNotFound when no record exists.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by exact, case-sensitive username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListUsers retrieves every user record. Administrative use only; the
	// repository performs no authorization.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriter defines write operations for user records.
type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate when the
	// username is already taken.
	SaveUser(ctx context.Context, user domain.User) error

	// SaveUserWithDeposit persists a new user together with an opening
	// deposit entry in one unit of work: either both land or neither does.
	// A nil entry degrades to SaveUser.
	SaveUserWithDeposit(ctx context.Context, user domain.User, entry *domain.LedgerEntry) error

	// UpdateUser replaces the profile fields of an existing user record.
	// Balance and LastSalaryClaim are owned by the transaction engine and
	// keep their stored values regardless of what the passed record carries.
	// Returns apperrors.ErrNotFound for unknown ids.
	UpdateUser(ctx context.Context, user domain.User) error
}

// UserRepository combines all user record operations.
type UserRepository interface {
	UserReader
	UserWriter
}
