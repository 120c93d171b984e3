package dto

import "time"

type CreateVendorRequest struct {
	Name             string  `json:"name" binding:"required,min=2,max=128"`
	Address          string  `json:"address" binding:"omitempty,max=256"`
	City             string  `json:"city" binding:"omitempty,max=64"`
	Phone            string  `json:"phone" binding:"omitempty,max=32"`
	Email            string  `json:"email" binding:"omitempty,email"`
	Website          string  `json:"website" binding:"omitempty,max=128"`
	CurrencyID       *string `json:"currencyId"`
	VendorGroupID    *string `json:"vendorGroupId"`
	VendorSubGroupID *string `json:"vendorSubGroupId"`

	Contacts []VendorContactRequest `json:"contacts" binding:"omitempty,dive"`
}

type UpdateVendorRequest struct {
	Name             string  `json:"name" binding:"required,min=2,max=128"`
	Address          string  `json:"address" binding:"omitempty,max=256"`
	City             string  `json:"city" binding:"omitempty,max=64"`
	Phone            string  `json:"phone" binding:"omitempty,max=32"`
	Email            string  `json:"email" binding:"omitempty,email"`
	Website          string  `json:"website" binding:"omitempty,max=128"`
	CurrencyID       *string `json:"currencyId"`
	VendorGroupID    *string `json:"vendorGroupId"`
	VendorSubGroupID *string `json:"vendorSubGroupId"`
}

type VendorContactRequest struct {
	FirstName string  `json:"firstName" binding:"required,min=1,max=64"`
	LastName  string  `json:"lastName" binding:"required,min=1,max=64"`
	Email     string  `json:"email" binding:"omitempty,email"`
	Phone     string  `json:"phone" binding:"omitempty,max=32"`
	JobTitle  string  `json:"jobTitle" binding:"omitempty,max=64"`
	GenderID  *string `json:"genderId"`
}

// VendorResponse carries the joined lookup display names so relation
// searches and relation-qualified sorts have something to read. Missing
// lookups leave the name empty.
type VendorResponse struct {
	ID               string     `json:"id"`
	Number           string     `json:"number"`
	Name             string     `json:"name"`
	Address          string     `json:"address,omitempty"`
	City             string     `json:"city,omitempty"`
	Phone            string     `json:"phone,omitempty"`
	Email            string     `json:"email,omitempty"`
	Website          string     `json:"website,omitempty"`
	CurrencyID       *string    `json:"currencyId,omitempty"`
	CurrencyName     string     `json:"currencyName,omitempty"`
	VendorGroupID    *string    `json:"vendorGroupId,omitempty"`
	VendorGroupName  string     `json:"vendorGroupName,omitempty"`
	VendorSubGroupID *string    `json:"vendorSubGroupId,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`

	Contacts []VendorContactResponse `json:"contacts,omitempty"`
}

type VendorContactResponse struct {
	ID         string  `json:"id"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Email      string  `json:"email,omitempty"`
	Phone      string  `json:"phone,omitempty"`
	JobTitle   string  `json:"jobTitle,omitempty"`
	GenderID   *string `json:"genderId,omitempty"`
	GenderName string  `json:"genderName,omitempty"`
}
