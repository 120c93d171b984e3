package repository

import (
	"context"
	"errors"

	"github.com/parakita/backoffice/internal/model"
	"gorm.io/gorm"
)

type CurrencyRepository struct {
	Base[model.Currency]
}

func NewCurrencyRepository(db *gorm.DB) *CurrencyRepository {
	return &CurrencyRepository{Base: NewBase[model.Currency](db, "currency")}
}

// CodeExists reports whether an active currency already uses the code
func (r *CurrencyRepository) CodeExists(ctx context.Context, code string, excludeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Currency{}).
		Where("LOWER(code) = LOWER(?) AND is_deleted = ? AND id <> ?", code, false, excludeID).
		Count(&count).Error
	return count > 0, err
}

type GenderRepository struct {
	Base[model.Gender]
}

func NewGenderRepository(db *gorm.DB) *GenderRepository {
	return &GenderRepository{Base: NewBase[model.Gender](db, "gender")}
}

func (r *GenderRepository) CodeExists(ctx context.Context, code string, excludeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Gender{}).
		Where("LOWER(code) = LOWER(?) AND is_deleted = ? AND id <> ?", code, false, excludeID).
		Count(&count).Error
	return count > 0, err
}

type VendorRepository struct {
	Base[model.Vendor]
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{Base: NewBase[model.Vendor](db, "vendor")}
}

// GetAggregate loads a vendor with contacts and lookups
func (r *VendorRepository) GetAggregate(ctx context.Context, id string) (*model.Vendor, error) {
	return r.GetByID(ctx, id, "Contacts", "Contacts.Gender", "Currency", "VendorGroup", "VendorSubGroup")
}

type CustomerRepository struct {
	Base[model.Customer]
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{Base: NewBase[model.Customer](db, "customer")}
}

func (r *CustomerRepository) GetAggregate(ctx context.Context, id string) (*model.Customer, error) {
	return r.GetByID(ctx, id, "Contacts", "Contacts.Gender", "Currency", "CustomerGroup", "CustomerSubGroup")
}

type VendorGroupRepository struct {
	Base[model.VendorGroup]
}

func NewVendorGroupRepository(db *gorm.DB) *VendorGroupRepository {
	return &VendorGroupRepository{Base: NewBase[model.VendorGroup](db, "vendor group")}
}

func (r *VendorGroupRepository) GetAggregate(ctx context.Context, id string) (*model.VendorGroup, error) {
	return r.GetByID(ctx, id, "SubGroups")
}

type CustomerGroupRepository struct {
	Base[model.CustomerGroup]
}

func NewCustomerGroupRepository(db *gorm.DB) *CustomerGroupRepository {
	return &CustomerGroupRepository{Base: NewBase[model.CustomerGroup](db, "customer group")}
}

func (r *CustomerGroupRepository) GetAggregate(ctx context.Context, id string) (*model.CustomerGroup, error) {
	return r.GetByID(ctx, id, "SubGroups")
}

type ConfigRepository struct {
	Base[model.Config]
}

func NewConfigRepository(db *gorm.DB) *ConfigRepository {
	return &ConfigRepository{Base: NewBase[model.Config](db, "config")}
}

// GetByName loads an active config record by its unique name
func (r *ConfigRepository) GetByName(ctx context.Context, name string) (*model.Config, error) {
	var row model.Config
	err := r.db.WithContext(ctx).
		Where("name = ? AND is_deleted = ?", name, false).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
