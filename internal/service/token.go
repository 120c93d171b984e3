package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/parakita/backoffice/internal/model"
)

// TokenService issues and validates access tokens and generates the
// opaque refresh-token secrets.
type TokenService struct {
	secretKey string
	expiry    time.Duration
}

// AccessClaims are the decoded claims of a valid access token
type AccessClaims struct {
	UserID      string
	Email       string
	Name        string
	Permissions []string
}

func NewTokenService(secretKey string, expiry time.Duration) *TokenService {
	return &TokenService{secretKey: secretKey, expiry: expiry}
}

// Expiry returns the access-token lifetime
func (s *TokenService) Expiry() time.Duration {
	return s.expiry
}

// GenerateAccessToken creates a signed JWT carrying the user's identity
// and permission claims
func (s *TokenService) GenerateAccessToken(user *model.User, permissions []string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":     user.ID,
		"email":       user.Email,
		"name":        user.FullName(),
		"permissions": permissions,
		"exp":         now.Add(s.expiry).Unix(),
		"iat":         now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		return "", err
	}
	return signed, nil
}

// GenerateRefreshToken creates a 32-byte random opaque token
func (s *TokenService) GenerateRefreshToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}

// HashRefreshToken digests a refresh token for storage and lookup
func (s *TokenService) HashRefreshToken(refreshToken string) string {
	sum := sha256.Sum256([]byte(refreshToken))
	return hex.EncodeToString(sum[:])
}

// ValidateAccessToken parses and verifies a JWT and extracts its claims
func (s *TokenService) ValidateAccessToken(tokenString string) (*AccessClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	out := &AccessClaims{}
	if v, ok := claims["user_id"].(string); ok {
		out.UserID = v
	}
	if out.UserID == "" {
		return nil, errors.New("missing user id claim")
	}
	if v, ok := claims["email"].(string); ok {
		out.Email = v
	}
	if v, ok := claims["name"].(string); ok {
		out.Name = v
	}
	if raw, ok := claims["permissions"].([]interface{}); ok {
		for _, item := range raw {
			if v, ok := item.(string); ok {
				out.Permissions = append(out.Permissions, v)
			}
		}
	}
	return out, nil
}
