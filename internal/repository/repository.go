package repository

import (
	"context"
	"errors"

	apperrors "github.com/parakita/backoffice/internal/errors"
	"github.com/parakita/backoffice/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Base is the shared gorm access layer embedded by every typed repository.
// Reads filter soft-deleted rows; writes save the whole aggregate in one
// unit of work.
type Base[T any] struct {
	db     *gorm.DB
	entity string
}

func NewBase[T any](db *gorm.DB, entity string) Base[T] {
	return Base[T]{db: db, entity: entity}
}

// DB exposes the underlying handle for the paged-query engine
func (r *Base[T]) DB() *gorm.DB {
	return r.db
}

// GetByID loads one active row, preloading the named relations
func (r *Base[T]) GetByID(ctx context.Context, id string, preloads ...string) (*T, error) {
	tx := r.db.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false)
	for _, preload := range preloads {
		tx = tx.Preload(preload)
	}

	var row T
	if err := tx.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(r.entity, id)
		}
		logger.GetLogger().Error("failed to load row",
			zap.String("entity", r.entity),
			zap.String("id", id),
			zap.Error(err))
		return nil, err
	}
	return &row, nil
}

// Create inserts a new aggregate including its children
func (r *Base[T]) Create(ctx context.Context, row *T) error {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		logger.GetLogger().Error("failed to create row",
			zap.String("entity", r.entity),
			zap.Error(err))
		return err
	}
	return nil
}

// Save persists the aggregate and all loaded associations as one batch
func (r *Base[T]) Save(ctx context.Context, row *T) error {
	err := r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(row).Error
	if err != nil {
		logger.GetLogger().Error("failed to save row",
			zap.String("entity", r.entity),
			zap.Error(err))
		return err
	}
	return nil
}
