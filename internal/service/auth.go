package service

import (
	"context"
	"time"

	"github.com/parakita/backoffice/config"
	"github.com/parakita/backoffice/internal/dto"
	apperrors "github.com/parakita/backoffice/internal/errors"
	"github.com/parakita/backoffice/internal/model"
	"github.com/parakita/backoffice/internal/repository"
	"github.com/parakita/backoffice/pkg/logger"
	"github.com/parakita/backoffice/pkg/mailer"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SingleSessionPerUser is the login policy: logging in purges every
// existing refresh token of the user, so at most one session is active.
const SingleSessionPerUser = true

const resetTokenLifetime = time.Hour

// AuthService owns the login / refresh / logout lifecycle and the
// email confirmation and password reset flows.
type AuthService struct {
	users      *repository.UserRepository
	tokens     *repository.RefreshTokenRepository
	tokenSvc   *TokenService
	mail       mailer.Mailer
	navigation *NavigationService
	cfg        *config.Config
}

func NewAuthService(
	users *repository.UserRepository,
	tokens *repository.RefreshTokenRepository,
	tokenSvc *TokenService,
	mail mailer.Mailer,
	navigation *NavigationService,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		tokenSvc:   tokenSvc,
		mail:       mail,
		navigation: navigation,
		cfg:        cfg,
	}
}

// Login authenticates the user and issues a fresh token pair. All prior
// sessions of the user are purged first.
func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.IsDeleted {
		return nil, apperrors.ErrInvalidCredentials
	}
	if user.IsBlocked {
		return nil, apperrors.ErrUserBlocked
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.EmailConfirmed {
		return nil, apperrors.ErrEmailNotConfirmed
	}

	if err := s.tokens.PurgeForUser(ctx, user.ID); err != nil {
		return nil, err
	}

	response, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user.LastLogin = &now
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	logger.GetLogger().Info("user logged in",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email))
	return response, nil
}

// Refresh rotates a refresh token: the presented token must exist and be
// unexpired, and its row is atomically replaced. A concurrent refresh on
// the same token loses the race and must re-authenticate.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	row, err := s.tokens.GetByHash(ctx, s.tokenSvc.HashRefreshToken(refreshToken))
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if row.Expired(time.Now()) {
		return nil, apperrors.ErrRefreshTokenExpired
	}

	user, err := s.users.GetWithRoles(ctx, row.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if user.IsBlocked {
		return nil, apperrors.ErrUserBlocked
	}

	secret, err := s.tokenSvc.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}
	replacement := &model.RefreshToken{
		UserID:     user.ID,
		TokenHash:  s.tokenSvc.HashRefreshToken(secret),
		ExpiryDate: time.Now().Add(s.cfg.JWT.RefreshDuration),
	}

	rotated, err := s.tokens.Rotate(ctx, row.ID, replacement)
	if err != nil {
		return nil, err
	}
	if !rotated {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	access, err := s.tokenSvc.GenerateAccessToken(user, permissionsOf(user))
	if err != nil {
		return nil, err
	}

	return s.loginResponse(user, access, secret), nil
}

// Logout purges every session of the user
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if err := s.tokens.PurgeForUser(ctx, userID); err != nil {
		return err
	}
	s.navigation.Invalidate(ctx, userID)
	logger.GetLogger().Info("user logged out", zap.String("user_id", userID))
	return nil
}

// SendConfirmation issues a confirmation token and emails its link
func (s *AuthService) SendConfirmation(ctx context.Context, user *model.User) error {
	secret, err := s.tokenSvc.GenerateRefreshToken()
	if err != nil {
		return err
	}

	hash := s.tokenSvc.HashRefreshToken(secret)
	user.ConfirmTokenHash = &hash
	if err := s.users.Save(ctx, user); err != nil {
		return err
	}

	body, err := mailer.Render("confirm-email", mailer.ConfirmEmailTemplate, map[string]any{
		"Name":    user.FullName(),
		"AppName": s.cfg.App.Name,
		"BaseURL": s.cfg.App.BaseURL,
		"Email":   user.Email,
		"Token":   secret,
	})
	if err != nil {
		return err
	}

	return s.mail.Send(ctx, mailer.Message{
		To:      user.Email,
		Subject: "Confirm your email address",
		Body:    body,
	})
}

// ConfirmEmail verifies a confirmation token and marks the email confirmed
func (s *AuthService) ConfirmEmail(ctx context.Context, email, token string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil || user.ConfirmTokenHash == nil {
		return apperrors.ErrInvalidToken
	}
	if *user.ConfirmTokenHash != s.tokenSvc.HashRefreshToken(token) {
		return apperrors.ErrInvalidToken
	}

	user.EmailConfirmed = true
	user.ConfirmTokenHash = nil
	return s.users.Save(ctx, user)
}

// ForgotPassword issues a reset token and emails its link. Unknown emails
// are ignored so the endpoint does not leak account existence.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil || user.IsBlocked {
		return nil
	}

	secret, err := s.tokenSvc.GenerateRefreshToken()
	if err != nil {
		return err
	}

	hash := s.tokenSvc.HashRefreshToken(secret)
	expires := time.Now().UTC().Add(resetTokenLifetime)
	user.ResetTokenHash = &hash
	user.ResetTokenExpires = &expires
	if err := s.users.Save(ctx, user); err != nil {
		return err
	}

	body, err := mailer.Render("reset-password", mailer.ResetPasswordTemplate, map[string]any{
		"Name":      user.FullName(),
		"BaseURL":   s.cfg.App.BaseURL,
		"Email":     user.Email,
		"Token":     secret,
		"ExpiresIn": resetTokenLifetime.String(),
	})
	if err != nil {
		return err
	}

	return s.mail.Send(ctx, mailer.Message{
		To:      user.Email,
		Subject: "Reset your password",
		Body:    body,
	})
}

// ResetPassword verifies a reset token and replaces the password, ending
// every active session.
func (s *AuthService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return apperrors.ErrPasswordMismatch
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if user == nil || user.ResetTokenHash == nil || user.ResetTokenExpires == nil {
		return apperrors.ErrInvalidToken
	}
	if *user.ResetTokenHash != s.tokenSvc.HashRefreshToken(req.Token) {
		return apperrors.ErrInvalidToken
	}
	if user.ResetTokenExpires.Before(time.Now().UTC()) {
		return apperrors.ErrInvalidToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	user.PasswordHash = string(hash)
	user.ResetTokenHash = nil
	user.ResetTokenExpires = nil
	if err := s.users.Save(ctx, user); err != nil {
		return err
	}

	return s.tokens.PurgeForUser(ctx, user.ID)
}

// issueTokens creates a refresh row plus access token for the user
func (s *AuthService) issueTokens(ctx context.Context, user *model.User) (*dto.LoginResponse, error) {
	secret, err := s.tokenSvc.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	row := &model.RefreshToken{
		UserID:     user.ID,
		TokenHash:  s.tokenSvc.HashRefreshToken(secret),
		ExpiryDate: time.Now().Add(s.cfg.JWT.RefreshDuration),
	}
	if err := s.tokens.Create(ctx, row); err != nil {
		return nil, err
	}

	access, err := s.tokenSvc.GenerateAccessToken(user, permissionsOf(user))
	if err != nil {
		return nil, err
	}

	return s.loginResponse(user, access, secret), nil
}

func (s *AuthService) loginResponse(user *model.User, access, refresh string) *dto.LoginResponse {
	userResp := toUserResponse(user)

	return &dto.LoginResponse{
		Token:        access,
		RefreshToken: refresh,
		ExpiresIn:    int(s.tokenSvc.Expiry().Seconds()),
		User:         userResp,
	}
}

// permissionsOf flattens the user's role claims into a deduplicated list
func permissionsOf(user *model.User) []string {
	seen := make(map[string]bool)
	var permissions []string
	for i := range user.Roles {
		role := &user.Roles[i]
		if role.IsDeleted {
			continue
		}
		for j := range role.Claims {
			claim := &role.Claims[j]
			if claim.IsDeleted || seen[claim.ClaimValue] {
				continue
			}
			seen[claim.ClaimValue] = true
			permissions = append(permissions, claim.ClaimValue)
		}
	}
	return permissions
}
