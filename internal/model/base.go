package model

import (
	"time"

	"github.com/rs/xid"
	"gorm.io/gorm"
)

// Base carries the audit and soft-delete columns shared by every row.
// Rows are never physically removed; IsDeleted marks them and the query
// layer filters them out by default.
type Base struct {
	ID          string     `gorm:"column:id;primaryKey;size:20"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null"`
	CreatedByID string     `gorm:"column:created_by_id;size:20"`
	UpdatedAt   *time.Time `gorm:"column:updated_at"`
	UpdatedByID *string    `gorm:"column:updated_by_id;size:20"`
	IsDeleted   bool       `gorm:"column:is_deleted;not null;default:false;index"`
}

// BeforeCreate assigns an opaque id when none was set
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = xid.New().String()
	}
	return nil
}

// StampCreated records the creating user
func (b *Base) StampCreated(actorID string) {
	b.CreatedByID = actorID
}

// StampUpdated records the updating user and time
func (b *Base) StampUpdated(actorID string) {
	now := time.Now().UTC()
	b.UpdatedAt = &now
	b.UpdatedByID = &actorID
}

// MarkDeleted soft-deletes the row
func (b *Base) MarkDeleted(actorID string) {
	b.IsDeleted = true
	b.StampUpdated(actorID)
}
