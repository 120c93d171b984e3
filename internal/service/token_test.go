package service

import (
	"testing"
	"time"

	"github.com/parakita/backoffice/internal/model"
)

func testUser() *model.User {
	u := &model.User{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@backoffice.local",
	}
	u.ID = "usr1"
	return u
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", 15*time.Minute)

	permissions := []string{"Vendor:Read", "Customer:Read"}
	signed, err := svc.GenerateAccessToken(testUser(), permissions)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := svc.ValidateAccessToken(signed)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}

	if claims.UserID != "usr1" {
		t.Errorf("expected user id usr1, got %q", claims.UserID)
	}
	if claims.Email != "ada@backoffice.local" {
		t.Errorf("unexpected email %q", claims.Email)
	}
	if claims.Name != "Ada Lovelace" {
		t.Errorf("unexpected name %q", claims.Name)
	}
	if len(claims.Permissions) != 2 || claims.Permissions[0] != "Vendor:Read" {
		t.Errorf("unexpected permissions %v", claims.Permissions)
	}
}

func TestValidateAccessTokenRejects(t *testing.T) {
	svc := NewTokenService("test-secret", 15*time.Minute)
	other := NewTokenService("other-secret", 15*time.Minute)
	expired := NewTokenService("test-secret", -time.Minute)

	validToken, _ := svc.GenerateAccessToken(testUser(), nil)
	foreignToken, _ := other.GenerateAccessToken(testUser(), nil)
	expiredToken, _ := expired.GenerateAccessToken(testUser(), nil)

	tests := []struct {
		name  string
		token string
	}{
		{"Garbage", "not.a.token"},
		{"Wrong signature", foreignToken},
		{"Expired", expiredToken},
		{"Tampered payload", validToken[:len(validToken)-4] + "AAAA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.ValidateAccessToken(tt.token); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestGenerateRefreshToken(t *testing.T) {
	svc := NewTokenService("test-secret", time.Minute)

	a, err := svc.GenerateRefreshToken()
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	b, err := svc.GenerateRefreshToken()
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if a == b {
		t.Error("two tokens must differ")
	}
	if len(a) < 40 {
		t.Errorf("token too short: %d", len(a))
	}
}

func TestHashRefreshToken(t *testing.T) {
	svc := NewTokenService("test-secret", time.Minute)

	h1 := svc.HashRefreshToken("secret-token")
	h2 := svc.HashRefreshToken("secret-token")
	h3 := svc.HashRefreshToken("other-token")

	if h1 != h2 {
		t.Error("hash must be deterministic")
	}
	if h1 == h3 {
		t.Error("different tokens must hash differently")
	}
	if len(h1) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(h1))
	}
}

func TestPermissionsOfDeduplicates(t *testing.T) {
	user := testUser()
	user.Roles = []model.Role{
		{
			Base: model.Base{ID: "r1"},
			Name: "Clerk",
			Claims: []model.RoleClaim{
				{ClaimValue: "Vendor:Read"},
				{ClaimValue: "Customer:Read"},
			},
		},
		{
			Base: model.Base{ID: "r2"},
			Name: "Auditor",
			Claims: []model.RoleClaim{
				{ClaimValue: "Vendor:Read"},
				{ClaimValue: "Config:Read"},
			},
		},
		{
			Base: model.Base{ID: "r3", IsDeleted: true},
			Name: "Retired",
			Claims: []model.RoleClaim{
				{ClaimValue: "Role:Delete"},
			},
		},
	}

	got := permissionsOf(user)

	expected := map[string]bool{
		"Vendor:Read":   true,
		"Customer:Read": true,
		"Config:Read":   true,
	}
	if len(got) != len(expected) {
		t.Fatalf("expected %d permissions, got %v", len(expected), got)
	}
	for _, p := range got {
		if !expected[p] {
			t.Errorf("unexpected permission %q", p)
		}
	}
}
