package service

import (
	"context"

	"github.com/parakita/backoffice/internal/dto"
	apperrors "github.com/parakita/backoffice/internal/errors"
	"github.com/parakita/backoffice/internal/model"
	"github.com/parakita/backoffice/internal/query"
	"github.com/parakita/backoffice/internal/repository"
	"github.com/parakita/backoffice/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserService manages accounts: creation with role assignment and email
// confirmation, password changes, blocking and soft deletion.
type UserService struct {
	users      *repository.UserRepository
	roles      *repository.RoleRepository
	tokens     *repository.RefreshTokenRepository
	auth       *AuthService
	navigation *NavigationService
}

func NewUserService(
	users *repository.UserRepository,
	roles *repository.RoleRepository,
	tokens *repository.RefreshTokenRepository,
	auth *AuthService,
	navigation *NavigationService,
) *UserService {
	return &UserService{
		users:      users,
		roles:      roles,
		tokens:     tokens,
		auth:       auth,
		navigation: navigation,
	}
}

func (s *UserService) userSpec() query.Spec[model.User, dto.UserResponse] {
	return query.Spec[model.User, dto.UserResponse]{
		Preloads:      []string{"Roles", "Roles.Claims"},
		SearchColumns: []string{"first_name", "last_name", "email"},
		Project: func(row *model.User) dto.UserResponse {
			return toUserResponse(row)
		},
	}
}

func (s *UserService) List(ctx context.Context, opts query.Options) (*query.PagedList[dto.UserResponse], error) {
	return query.Run(ctx, s.users.DB(), opts, s.userSpec())
}

func (s *UserService) Get(ctx context.Context, id string) (*dto.UserResponse, error) {
	row, err := s.users.GetWithRoles(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(row)
	return &resp, nil
}

// Create registers an account, assigns its initial roles and sends the
// email confirmation link.
func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest, actorID string) (*dto.UserResponse, error) {
	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	row := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	row.StampCreated(actorID)

	if len(req.RoleIDs) > 0 {
		roles, err := s.roles.GetMany(ctx, req.RoleIDs)
		if err != nil {
			return nil, err
		}
		row.Roles = roles
	}

	if err := s.users.Create(ctx, row); err != nil {
		return nil, err
	}

	if err := s.auth.SendConfirmation(ctx, row); err != nil {
		logger.GetLogger().Warn("failed to send confirmation email",
			zap.String("user_id", row.ID),
			zap.Error(err))
	}

	logger.GetLogger().Info("user created",
		zap.String("user_id", row.ID),
		zap.String("email", row.Email))

	return s.Get(ctx, row.ID)
}

func (s *UserService) Update(ctx context.Context, id string, req *dto.UpdateUserRequest, actorID string) (*dto.UserResponse, error) {
	row, err := s.users.GetWithRoles(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != "" {
		row.FirstName = req.FirstName
	}
	if req.LastName != "" {
		row.LastName = req.LastName
	}
	row.StampUpdated(actorID)

	if err := s.users.Save(ctx, row); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// ChangePassword verifies the current password and swaps in the new one,
// ending every active session of the user.
func (s *UserService) ChangePassword(ctx context.Context, id string, req *dto.UpdatePasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return apperrors.ErrPasswordMismatch
	}

	row, err := s.users.GetWithRoles(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return apperrors.ErrIncorrectPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	row.PasswordHash = string(hash)
	row.StampUpdated(id)
	if err := s.users.Save(ctx, row); err != nil {
		return err
	}

	return s.tokens.PurgeForUser(ctx, id)
}

// Block locks the account out and purges its sessions
func (s *UserService) Block(ctx context.Context, id, actorID string) error {
	return s.setBlocked(ctx, id, actorID, true)
}

// Unblock restores access to the account
func (s *UserService) Unblock(ctx context.Context, id, actorID string) error {
	return s.setBlocked(ctx, id, actorID, false)
}

func (s *UserService) setBlocked(ctx context.Context, id, actorID string, blocked bool) error {
	row, err := s.users.GetWithRoles(ctx, id)
	if err != nil {
		return err
	}

	row.IsBlocked = blocked
	row.StampUpdated(actorID)
	if err := s.users.Save(ctx, row); err != nil {
		return err
	}

	if blocked {
		return s.tokens.PurgeForUser(ctx, id)
	}
	return nil
}

// Delete soft-deletes the account and purges its sessions
func (s *UserService) Delete(ctx context.Context, id, actorID string) error {
	row, err := s.users.GetWithRoles(ctx, id)
	if err != nil {
		return err
	}

	row.MarkDeleted(actorID)
	if err := s.users.Save(ctx, row); err != nil {
		return err
	}

	s.navigation.Invalidate(ctx, id)
	return s.tokens.PurgeForUser(ctx, id)
}

// AssignRoles replaces the user's role set; the cached menu is dropped so
// the next request sees the new permissions.
func (s *UserService) AssignRoles(ctx context.Context, id string, req *dto.AssignRolesRequest, actorID string) (*dto.UserResponse, error) {
	row, err := s.users.GetWithRoles(ctx, id)
	if err != nil {
		return nil, err
	}

	roles, err := s.roles.GetMany(ctx, req.RoleIDs)
	if err != nil {
		return nil, err
	}

	if err := s.users.ReplaceRoles(ctx, row, roles); err != nil {
		return nil, err
	}

	// keep the in-memory aggregate in sync so the save does not
	// resurrect the old join rows
	row.Roles = roles
	row.StampUpdated(actorID)
	if err := s.users.Save(ctx, row); err != nil {
		return nil, err
	}

	s.navigation.Invalidate(ctx, id)

	logger.GetLogger().Info("user roles replaced",
		zap.String("user_id", id),
		zap.Int("role_count", len(roles)))

	return s.Get(ctx, id)
}
