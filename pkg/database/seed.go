package database

import (
	"errors"

	"github.com/parakita/backoffice/internal/constants"
	"github.com/parakita/backoffice/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultAdmin defines the default administrator credentials
type DefaultAdmin struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// GetDefaultAdmin returns the default admin user
func GetDefaultAdmin() DefaultAdmin {
	return DefaultAdmin{
		FirstName: "Admin",
		LastName:  "Backoffice",
		Email:     "admin@backoffice.local",
		Password:  "Admin@123", // Change this in production!
	}
}

// Seed creates the initial data set
func Seed(db *gorm.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	if err := seedSequences(db); err != nil {
		return err
	}
	return seedLookups(db)
}

func seedAdmin(db *gorm.DB) error {
	role, err := ensureAdminRole(db)
	if err != nil {
		return err
	}

	admin := GetDefaultAdmin()

	var existing model.User
	result := db.Where("email = ?", admin.Email).First(&existing)
	if result.Error == nil {
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := model.User{
		FirstName:      admin.FirstName,
		LastName:       admin.LastName,
		Email:          admin.Email,
		PasswordHash:   string(hash),
		EmailConfirmed: true,
		Roles:          []model.Role{*role},
	}
	return db.Create(&user).Error
}

// ensureAdminRole creates the Administrator role with the full claim set
func ensureAdminRole(db *gorm.DB) (*model.Role, error) {
	var role model.Role
	result := db.Preload("Claims").Where("name = ?", "Administrator").First(&role)
	if result.Error == nil {
		return &role, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	role = model.Role{Name: "Administrator"}
	for _, entity := range constants.AllEntities() {
		for _, action := range constants.AllActions() {
			role.Claims = append(role.Claims, model.RoleClaim{
				ClaimValue: constants.Permission(entity, action),
			})
		}
	}
	if err := db.Create(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func seedSequences(db *gorm.DB) error {
	sequences := []model.NumberSequence{
		{Name: "vendor", Prefix: "VEN-", Padding: 6},
		{Name: "customer", Prefix: "CUS-", Padding: 6},
	}
	for _, seq := range sequences {
		var existing model.NumberSequence
		result := db.Where("name = ?", seq.Name).First(&existing)
		if result.Error == nil {
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}
		if err := db.Create(&seq).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedLookups(db *gorm.DB) error {
	currencies := []model.Currency{
		{Code: "USD", Name: "US Dollar", Symbol: "$"},
		{Code: "EUR", Name: "Euro", Symbol: "€"},
		{Code: "IDR", Name: "Indonesian Rupiah", Symbol: "Rp"},
	}
	for _, currency := range currencies {
		var existing model.Currency
		result := db.Where("code = ?", currency.Code).First(&existing)
		if result.Error == nil {
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}
		if err := db.Create(&currency).Error; err != nil {
			return err
		}
	}

	genders := []model.Gender{
		{Code: "M", Name: "Male"},
		{Code: "F", Name: "Female"},
	}
	for _, gender := range genders {
		var existing model.Gender
		result := db.Where("code = ?", gender.Code).First(&existing)
		if result.Error == nil {
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}
		if err := db.Create(&gender).Error; err != nil {
			return err
		}
	}
	return nil
}
