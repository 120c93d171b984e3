package repository

import (
	"context"
	"errors"

	"github.com/parakita/backoffice/internal/model"
	"gorm.io/gorm"
)

// RefreshTokenRepository manages session rows. Tokens are purged
// physically, not soft-deleted.
type RefreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

// GetByHash finds a token row by its digest, nil when absent
func (r *RefreshTokenRepository) GetByHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error) {
	var token model.RefreshToken
	err := r.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

// Create inserts a new session row
func (r *RefreshTokenRepository) Create(ctx context.Context, token *model.RefreshToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

// PurgeForUser removes every session row of the user
func (r *RefreshTokenRepository) PurgeForUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.RefreshToken{}).Error
}

// Rotate atomically replaces the presented token row with its successor.
// The delete acts as a single-use guard: when two refresh calls race on
// the same token, the second delete affects zero rows and the rotation
// fails, forcing re-authentication.
func (r *RefreshTokenRepository) Rotate(ctx context.Context, oldID string, replacement *model.RefreshToken) (bool, error) {
	rotated := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", oldID).Delete(&model.RefreshToken{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		if err := tx.Create(replacement).Error; err != nil {
			return err
		}
		rotated = true
		return nil
	})
	return rotated, err
}
