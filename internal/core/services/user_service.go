package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/qrasickz/vovabank_backend/internal/apperrors"
	"github.com/qrasickz/vovabank_backend/internal/core/domain"
	portsrepo "github.com/qrasickz/vovabank_backend/internal/core/ports/repositories"
	portssvc "github.com/qrasickz/vovabank_backend/internal/core/ports/services"
	"github.com/qrasickz/vovabank_backend/internal/dto"
	"github.com/qrasickz/vovabank_backend/internal/utils"
)

// ErrUserBlocked is returned on login when the credentials matched but the
// account has been blocked by the bank. The check runs only after the
// credential match so blocked accounts are not distinguishable from unknown
// ones without a valid password.
var ErrUserBlocked = errors.New("account is blocked")

// userService implements the account store: registration, authentication
// and profile maintenance.
type userService struct {
	BaseService
	userRepo         portsrepo.UserRepository
	signupBonus      decimal.Decimal
	adminSeedBalance decimal.Decimal
}

// NewUserService creates the account store service. The signup bonus and
// the seed admin's starting balance come from configuration.
func NewUserService(userRepo portsrepo.UserRepository, signupBonus, adminSeedBalance decimal.Decimal) portssvc.UserSvcFacade {
	return &userService{
		userRepo:         userRepo,
		signupBonus:      signupBonus,
		adminSeedBalance: adminSeedBalance,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func defaultAvatarURL(fullName string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(fullName) + "&background=random"
}

// openingDeposit builds the ledger entry for an account's starting credit,
// or nil when there is nothing to credit.
func openingDeposit(userID string, amount decimal.Decimal, description string, at time.Time) *domain.LedgerEntry {
	if !amount.IsPositive() {
		return nil
	}
	return &domain.LedgerEntry{
		EntryID:     uuid.NewString(),
		From:        domain.SystemParty(),
		To:          domain.AccountParty(userID),
		Amount:      amount,
		Category:    domain.CategoryDeposit,
		Description: description,
		CreatedAt:   at,
	}
}

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	if _, err := s.userRepo.FindUserByUsername(ctx, req.Username); err == nil {
		return nil, fmt.Errorf("username %s: %w", req.Username, apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         domain.RoleUser,
		Balance:      decimal.Zero,
		AvatarURL:    defaultAvatarURL(req.FullName),
		Location:     "Ukraine",
		Bio:          "New client",
		CreatedAt:    now,
	}

	// The signup bonus is credited through the ledger so even the very
	// first balance change has its entry, and the account plus its entry
	// land in the same unit of work.
	entry := openingDeposit(user.UserID, s.signupBonus, "Signup bonus", now)
	if entry != nil {
		user.Balance = s.signupBonus
	}
	if err := s.userRepo.SaveUserWithDeposit(ctx, user, entry); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("username", req.Username))
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID), slog.String("username", user.Username))
	return &user, nil
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("invalid username or password: %w", apperrors.ErrUnauthorized)
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("invalid username or password: %w", apperrors.ErrUnauthorized)
	}
	// Blocked is checked only after the credential match.
	if user.IsBlocked {
		return nil, ErrUserBlocked
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update profile", slog.String("user_id", userID))
		return nil, err
	}
	return user, nil
}

func (s *userService) Employ(ctx context.Context, userID string, jobID string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	user.JobID = jobID
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return err
	}
	s.LogInfo(ctx, "User employed", slog.String("user_id", userID), slog.String("job_id", jobID))
	return nil
}

// requireAdmin resolves the acting user and checks the ADMIN role. The
// repositories perform no authorization, so every administrative service
// path funnels through here.
func (s *userService) requireAdmin(ctx context.Context, actorUserID string) error {
	actor, err := s.userRepo.FindUserByID(ctx, actorUserID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return fmt.Errorf("user %s is not an admin: %w", actorUserID, apperrors.ErrForbidden)
	}
	return nil
}

func (s *userService) ListUsers(ctx context.Context, actorUserID string) ([]domain.User, error) {
	if err := s.requireAdmin(ctx, actorUserID); err != nil {
		return nil, err
	}
	return s.userRepo.ListUsers(ctx)
}

func (s *userService) AdminUpdateUser(ctx context.Context, actorUserID string, userID string, req dto.AdminUpdateUserRequest) (*domain.User, error) {
	if err := s.requireAdmin(ctx, actorUserID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.IsBlocked != nil {
		user.IsBlocked = *req.IsBlocked
	}
	if req.IsVerified != nil {
		user.IsVerified = *req.IsVerified
	}

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to apply admin update", slog.String("user_id", userID))
		return nil, err
	}
	s.LogInfo(ctx, "Admin updated user", slog.String("actor_id", actorUserID), slog.String("user_id", userID))
	return user, nil
}

func (s *userService) EnsureSeedAdmin(ctx context.Context, username, password, fullName string) error {
	if _, err := s.userRepo.FindUserByUsername(ctx, username); err == nil {
		return nil
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	now := time.Now()
	admin := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		FullName:     fullName,
		Role:         domain.RoleAdmin,
		Balance:      decimal.Zero,
		AvatarURL:    defaultAvatarURL(fullName),
		Location:     "Kyiv, Head office",
		Bio:          "System operator",
		IsVerified:   true,
		CreatedAt:    now,
	}

	entry := openingDeposit(admin.UserID, s.adminSeedBalance, "Initial system grant", now)
	if entry != nil {
		admin.Balance = s.adminSeedBalance
	}
	if err := s.userRepo.SaveUserWithDeposit(ctx, admin, entry); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	s.LogInfo(ctx, "Seed admin created", slog.String("username", username))
	return nil
}
