package repository

import (
	"context"
	"errors"

	apperrors "github.com/parakita/backoffice/internal/errors"
	"github.com/parakita/backoffice/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct {
	Base[model.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{Base: NewBase[model.User](db, "user")}
}

// GetWithRoles loads a user with roles and their claims
func (r *UserRepository) GetWithRoles(ctx context.Context, id string) (*model.User, error) {
	return r.GetByID(ctx, id, "Roles", "Roles.Claims")
}

// GetByEmail finds an active user by email, nil when absent
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?) AND is_deleted = ?", email, false).
		Preload("Roles").
		Preload("Roles.Claims").
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// ReplaceRoles swaps the user's role assignments
func (r *UserRepository) ReplaceRoles(ctx context.Context, user *model.User, roles []model.Role) error {
	return r.db.WithContext(ctx).Model(user).Association("Roles").Replace(roles)
}

type RoleRepository struct {
	Base[model.Role]
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{Base: NewBase[model.Role](db, "role")}
}

// GetWithClaims loads a role including its claim rows
func (r *RoleRepository) GetWithClaims(ctx context.Context, id string) (*model.Role, error) {
	return r.GetByID(ctx, id, "Claims")
}

// GetByName finds an active role by name, nil when absent
func (r *RoleRepository) GetByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?) AND is_deleted = ?", name, false).
		Preload("Claims").
		First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

// GetMany loads the active roles with the given ids, erroring on any
// missing id.
func (r *RoleRepository) GetMany(ctx context.Context, ids []string) ([]model.Role, error) {
	var roles []model.Role
	err := r.db.WithContext(ctx).
		Where("id IN ? AND is_deleted = ?", ids, false).
		Preload("Claims").
		Find(&roles).Error
	if err != nil {
		return nil, err
	}
	if len(roles) != len(ids) {
		found := make(map[string]bool, len(roles))
		for i := range roles {
			found[roles[i].ID] = true
		}
		for _, id := range ids {
			if !found[id] {
				return nil, apperrors.NotFound("role", id)
			}
		}
	}
	return roles, nil
}

// ReplaceClaims swaps the role's claim rows inside one transaction
func (r *RoleRepository) ReplaceClaims(ctx context.Context, role *model.Role, claims []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", role.ID).Delete(&model.RoleClaim{}).Error; err != nil {
			return err
		}
		for _, value := range claims {
			claim := model.RoleClaim{RoleID: role.ID, ClaimValue: value}
			claim.StampCreated(role.CreatedByID)
			if err := tx.Create(&claim).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
