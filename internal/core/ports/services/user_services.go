package services

import (
	"context"

	"github.com/qrasickz/vovabank_backend/internal/core/domain"
	"github.com/qrasickz/vovabank_backend/internal/dto"
)

// UserReaderSvc defines read-only operations over user records.
type UserReaderSvc interface {
	// GetUserByID retrieves a user; apperrors.ErrNotFound when absent.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserSvcFacade is the account-store surface: registration, authentication
// and profile maintenance for banked identities.
type UserSvcFacade interface {
	UserReaderSvc

	// Register creates a new user with the configured signup bonus and
	// records the matching DEPOSIT ledger entry. Duplicate usernames fail
	// with apperrors.ErrDuplicate.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Authenticate matches (username, password). Credential mismatch fails
	// with apperrors.ErrUnauthorized; the blocked check runs only after a
	// successful credential match and fails with ErrUserBlocked.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// UpdateProfile merges the provided profile fields into the user record.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)

	// Employ assigns a job position to the user.
	Employ(ctx context.Context, userID string, jobID string) error

	// ListUsers returns every user. The actor must be an admin;
	// apperrors.ErrForbidden otherwise.
	ListUsers(ctx context.Context, actorUserID string) ([]domain.User, error)

	// AdminUpdateUser lets an admin edit role, blocked and verified flags.
	// Balance edits go through the transaction engine, not here.
	AdminUpdateUser(ctx context.Context, actorUserID string, userID string, req dto.AdminUpdateUserRequest) (*domain.User, error)

	// EnsureSeedAdmin creates the initial administrative account if no user
	// with the given username exists. Called once at startup.
	EnsureSeedAdmin(ctx context.Context, username, password, fullName string) error
}
