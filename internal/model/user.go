package model

import (
	"time"

	"github.com/rs/xid"
	"gorm.io/gorm"
)

// User is the identity-store entity. Passwords and token secrets are
// stored only as hashes.
type User struct {
	Base
	FirstName         string     `gorm:"column:first_name;size:64;not null"`
	LastName          string     `gorm:"column:last_name;size:64;not null"`
	Email             string     `gorm:"column:email;size:128;not null;uniqueIndex"`
	PasswordHash      string     `gorm:"column:password_hash;size:128;not null"`
	IsBlocked         bool       `gorm:"column:is_blocked;not null;default:false"`
	EmailConfirmed    bool       `gorm:"column:email_confirmed;not null;default:false"`
	ConfirmTokenHash  *string    `gorm:"column:confirm_token_hash;size:64"`
	ResetTokenHash    *string    `gorm:"column:reset_token_hash;size:64"`
	ResetTokenExpires *time.Time `gorm:"column:reset_token_expires_at"`
	LastLogin         *time.Time `gorm:"column:last_login"`

	Roles []Role `gorm:"many2many:user_roles;joinForeignKey:UserID;joinReferences:RoleID"`
}

func (User) TableName() string { return "users" }

// FullName joins first and last name for token claims and menus
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Role groups permission claims assignable to users
type Role struct {
	Base
	Name string `gorm:"column:name;size:64;not null;uniqueIndex"`

	Claims []RoleClaim `gorm:"foreignKey:RoleID"`
}

func (Role) TableName() string { return "roles" }

// HasClaim reports whether the role carries a claim value
func (r *Role) HasClaim(value string) bool {
	for i := range r.Claims {
		if r.Claims[i].ClaimValue == value {
			return true
		}
	}
	return false
}

// RoleClaim is a single "<Entity>:<Action>" permission on a role
type RoleClaim struct {
	Base
	RoleID     string `gorm:"column:role_id;size:20;not null;index"`
	ClaimValue string `gorm:"column:claim_value;size:64;not null"`
}

func (RoleClaim) TableName() string { return "role_claims" }

// RefreshToken is one active session row. The opaque secret is stored as
// a SHA-256 hex digest so refresh requests can look it up directly.
type RefreshToken struct {
	ID         string    `gorm:"column:id;primaryKey;size:20"`
	UserID     string    `gorm:"column:user_id;size:20;not null;index"`
	TokenHash  string    `gorm:"column:token_hash;size:64;not null;uniqueIndex"`
	ExpiryDate time.Time `gorm:"column:expiry_date;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
}

func (RefreshToken) TableName() string { return "refresh_tokens" }

func (t *RefreshToken) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = xid.New().String()
	}
	return nil
}

// Expired reports whether the token can no longer be redeemed
func (t *RefreshToken) Expired(now time.Time) bool {
	return t.ExpiryDate.Before(now)
}
