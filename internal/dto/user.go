package dto

import (
	"time"

	"github.com/qrasickz/vovabank_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UserResponse defines the user data returned to callers. The password
// hash never leaves the service layer.
type UserResponse struct {
	UserID          string          `json:"userID"`
	Username        string          `json:"username"`
	FullName        string          `json:"fullName"`
	Role            domain.UserRole `json:"role"`
	Balance         decimal.Decimal `json:"balance"`
	AvatarURL       string          `json:"avatarURL,omitempty"`
	Location        string          `json:"location,omitempty"`
	Bio             string          `json:"bio,omitempty"`
	IsBlocked       bool            `json:"isBlocked"`
	IsVerified      bool            `json:"isVerified"`
	JobID           string          `json:"jobID,omitempty"`
	LastSalaryClaim *time.Time      `json:"lastSalaryClaim,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:          u.UserID,
		Username:        u.Username,
		FullName:        u.FullName,
		Role:            u.Role,
		Balance:         u.Balance,
		AvatarURL:       u.AvatarURL,
		Location:        u.Location,
		Bio:             u.Bio,
		IsBlocked:       u.IsBlocked,
		IsVerified:      u.IsVerified,
		JobID:           u.JobID,
		LastSalaryClaim: u.LastSalaryClaim,
		CreatedAt:       u.CreatedAt,
	}
}

// ListUsersResponse wraps the administrative full listing.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain.User to the listing DTO.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: out}
}

// UpdateProfileRequest defines the profile fields a user may edit.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateProfileRequest struct {
	FullName  *string `json:"fullName"`
	AvatarURL *string `json:"avatarURL"`
	Location  *string `json:"location"`
	Bio       *string `json:"bio"`
}

// AdminUpdateUserRequest defines the account fields an admin may edit.
// Balance edits are a separate request routed through the transaction engine.
type AdminUpdateUserRequest struct {
	Role       *domain.UserRole `json:"role" binding:"omitempty,oneof=USER ADMIN"`
	IsBlocked  *bool            `json:"isBlocked"`
	IsVerified *bool            `json:"isVerified"`
}

// AdminSetBalanceRequest sets a user's balance to an absolute value.
type AdminSetBalanceRequest struct {
	Balance decimal.Decimal `json:"balance" binding:"required"`
	Reason  string          `json:"reason"`
}
