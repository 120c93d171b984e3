package model

import (
	"testing"
	"time"
)

func TestUserFullName(t *testing.T) {
	u := &User{FirstName: "Ada", LastName: "Lovelace"}
	if got := u.FullName(); got != "Ada Lovelace" {
		t.Errorf("expected %q, got %q", "Ada Lovelace", got)
	}
}

func TestRoleHasClaim(t *testing.T) {
	r := &Role{Name: "Clerk"}
	r.Claims = []RoleClaim{
		{ClaimValue: "Vendor:Read"},
		{ClaimValue: "Vendor:Update"},
	}

	if !r.HasClaim("Vendor:Read") {
		t.Error("expected claim Vendor:Read")
	}
	if r.HasClaim("Vendor:Delete") {
		t.Error("unexpected claim Vendor:Delete")
	}
}

func TestRefreshTokenExpired(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name    string
		expiry  time.Time
		expired bool
	}{
		{"Future expiry", now.Add(time.Hour), false},
		{"Past expiry", now.Add(-time.Minute), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := &RefreshToken{ExpiryDate: tt.expiry}
			if got := token.Expired(now); got != tt.expired {
				t.Errorf("expected expired=%v, got %v", tt.expired, got)
			}
		})
	}
}

func TestBaseStamps(t *testing.T) {
	var b Base

	b.StampCreated("creator")
	if b.CreatedByID != "creator" {
		t.Errorf("bad created stamp %+v", b)
	}

	b.StampUpdated("editor")
	if b.UpdatedByID == nil || *b.UpdatedByID != "editor" || b.UpdatedAt == nil {
		t.Errorf("bad updated stamp %+v", b)
	}

	b.MarkDeleted("remover")
	if !b.IsDeleted {
		t.Error("expected deleted flag")
	}
}
