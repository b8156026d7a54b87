package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserRole controls access to the administrative surface.
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// User represents one banked identity. All monetary value lives on the
// user's balance; cards are lookup instruments only.
type User struct {
	UserID       string          `json:"userID"`
	Username     string          `json:"username"` // unique, case-sensitive, immutable
	// PasswordHash is persisted in the snapshot but never serialized in
	// API responses; those go through dto.UserResponse.
	PasswordHash string          `json:"passwordHash"`
	FullName     string          `json:"fullName"`
	Role         UserRole        `json:"role"`
	Balance      decimal.Decimal `json:"balance"` // never negative after an engine operation
	AvatarURL    string          `json:"avatarURL,omitempty"`
	Location     string          `json:"location,omitempty"`
	Bio          string          `json:"bio,omitempty"`
	IsBlocked    bool            `json:"isBlocked"`
	IsVerified   bool            `json:"isVerified"` // gates card issuance
	JobID        string          `json:"jobID,omitempty"`
	// LastSalaryClaim gates the once-per-calendar-day salary collection.
	LastSalaryClaim *time.Time `json:"lastSalaryClaim,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// IsAdmin reports whether the user may use the administrative surface.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
