package repository

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/parakita/backoffice/internal/errors"
	"github.com/parakita/backoffice/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SequenceRepository advances named number sequences under a row lock so
// two concurrent creates never share a document number.
type SequenceRepository struct {
	db *gorm.DB
}

func NewSequenceRepository(db *gorm.DB) *SequenceRepository {
	return &SequenceRepository{db: db}
}

// Next returns the next formatted number for the sequence, e.g. "VEN-000042"
func (r *SequenceRepository) Next(ctx context.Context, name string) (string, error) {
	var formatted string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var seq model.NumberSequence
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("name = ? AND is_deleted = ?", name, false).
			First(&seq).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("number sequence", name)
			}
			return err
		}

		seq.LastValue++
		formatted = fmt.Sprintf("%s%0*d", seq.Prefix, seq.Padding, seq.LastValue)
		return tx.Model(&seq).Update("last_value", seq.LastValue).Error
	})
	return formatted, err
}
