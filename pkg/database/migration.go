package database

import (
	"github.com/parakita/backoffice/internal/model"
	"gorm.io/gorm"
)

// AutoMigrate runs database migrations for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Role{},
		&model.RoleClaim{},
		&model.RefreshToken{},
		&model.Currency{},
		&model.Gender{},
		&model.VendorGroup{},
		&model.VendorSubGroup{},
		&model.Vendor{},
		&model.VendorContact{},
		&model.CustomerGroup{},
		&model.CustomerSubGroup{},
		&model.Customer{},
		&model.CustomerContact{},
		&model.Config{},
		&model.NumberSequence{},
	)
}
