package jsonfile

import (
	"context"
	"fmt"
	"sort"

	"github.com/qrasickz/vovabank_backend/internal/apperrors"
	"github.com/qrasickz/vovabank_backend/internal/core/domain"
	portsrepo "github.com/qrasickz/vovabank_backend/internal/core/ports/repositories"
)

// UserRepository implements portsrepo.UserRepository over the snapshot store.
type UserRepository struct {
	store *Store
}

// NewUserRepository creates a user repository backed by the given store.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

var _ portsrepo.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	var out *domain.User
	r.store.withRead(func(s *snapshot) {
		if u, ok := s.Users[userID]; ok {
			cp := *u
			out = &cp
		}
	})
	if out == nil {
		return nil, fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	return out, nil
}

func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var out *domain.User
	r.store.withRead(func(s *snapshot) {
		for _, u := range s.Users {
			if u.Username == username {
				cp := *u
				out = &cp
				break
			}
		}
	})
	if out == nil {
		return nil, fmt.Errorf("username %s: %w", username, apperrors.ErrNotFound)
	}
	return out, nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	r.store.withRead(func(s *snapshot) {
		out = make([]domain.User, 0, len(s.Users))
		for _, u := range s.Users {
			out = append(out, *u)
		}
	})
	// Map iteration order is random; keep the listing stable.
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return r.store.withWrite(ctx, func(s *snapshot) error {
		if _, exists := s.Users[user.UserID]; exists {
			return fmt.Errorf("user id %s: %w", user.UserID, apperrors.ErrDuplicate)
		}
		for _, u := range s.Users {
			if u.Username == user.Username {
				return fmt.Errorf("username %s: %w", user.Username, apperrors.ErrDuplicate)
			}
		}
		cp := user
		s.Users[user.UserID] = &cp
		return nil
	})
}

func (r *UserRepository) SaveUserWithDeposit(ctx context.Context, user domain.User, entry *domain.LedgerEntry) error {
	return r.store.withWrite(ctx, func(s *snapshot) error {
		if _, exists := s.Users[user.UserID]; exists {
			return fmt.Errorf("user id %s: %w", user.UserID, apperrors.ErrDuplicate)
		}
		for _, u := range s.Users {
			if u.Username == user.Username {
				return fmt.Errorf("username %s: %w", user.Username, apperrors.ErrDuplicate)
			}
		}
		cp := user
		s.Users[user.UserID] = &cp
		if entry != nil {
			s.Entries = append(s.Entries, *entry)
		}
		return nil
	})
}

func (r *UserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	return r.store.withWrite(ctx, func(s *snapshot) error {
		cur, ok := s.Users[user.UserID]
		if !ok {
			return fmt.Errorf("user %s: %w", user.UserID, apperrors.ErrNotFound)
		}
		cp := user
		// Money state is written only through SaveEntryWithBalances; a
		// profile update carrying a stale read must not revert it.
		cp.Balance = cur.Balance
		cp.LastSalaryClaim = cur.LastSalaryClaim
		s.Users[user.UserID] = &cp
		return nil
	})
}
