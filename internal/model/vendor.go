package model

import (
	"strings"

	apperrors "github.com/parakita/backoffice/internal/errors"
)

// Vendor is an aggregate root owning its contact collection. Uniqueness of
// contact names and emails is enforced here, against the loaded collection.
type Vendor struct {
	Base
	Number           string  `gorm:"column:number;size:32;not null;uniqueIndex"`
	Name             string  `gorm:"column:name;size:128;not null;index"`
	Address          string  `gorm:"column:address;size:256"`
	City             string  `gorm:"column:city;size:64"`
	Phone            string  `gorm:"column:phone;size:32"`
	Email            string  `gorm:"column:email;size:128"`
	Website          string  `gorm:"column:website;size:128"`
	CurrencyID       *string `gorm:"column:currency_id;size:20;index"`
	VendorGroupID    *string `gorm:"column:vendor_group_id;size:20;index"`
	VendorSubGroupID *string `gorm:"column:vendor_sub_group_id;size:20"`

	Currency       *Currency       `gorm:"foreignKey:CurrencyID"`
	VendorGroup    *VendorGroup    `gorm:"foreignKey:VendorGroupID"`
	VendorSubGroup *VendorSubGroup `gorm:"foreignKey:VendorSubGroupID"`
	Contacts       []VendorContact `gorm:"foreignKey:VendorID"`
}

func (Vendor) TableName() string { return "vendors" }

type VendorContact struct {
	Base
	VendorID  string  `gorm:"column:vendor_id;size:20;not null;index"`
	FirstName string  `gorm:"column:first_name;size:64;not null"`
	LastName  string  `gorm:"column:last_name;size:64;not null"`
	Email     string  `gorm:"column:email;size:128"`
	Phone     string  `gorm:"column:phone;size:32"`
	JobTitle  string  `gorm:"column:job_title;size:64"`
	GenderID  *string `gorm:"column:gender_id;size:20"`

	Gender *Gender `gorm:"foreignKey:GenderID"`
}

func (VendorContact) TableName() string { return "vendor_contacts" }

// AddContact appends a contact after checking that no active contact shares
// the same name pair or email, case-insensitively.
func (v *Vendor) AddContact(contact VendorContact) error {
	if err := v.checkContactUnique(contact.FirstName, contact.LastName, contact.Email, ""); err != nil {
		return err
	}
	contact.VendorID = v.ID
	v.Contacts = append(v.Contacts, contact)
	return nil
}

// UpdateContact mutates an existing active contact, re-checking uniqueness
// against its siblings.
func (v *Vendor) UpdateContact(id string, update VendorContact, actorID string) error {
	idx := v.contactIndex(id)
	if idx < 0 {
		return apperrors.NotFound("vendor contact", id)
	}
	if err := v.checkContactUnique(update.FirstName, update.LastName, update.Email, id); err != nil {
		return err
	}

	contact := &v.Contacts[idx]
	contact.FirstName = update.FirstName
	contact.LastName = update.LastName
	contact.Email = update.Email
	contact.Phone = update.Phone
	contact.JobTitle = update.JobTitle
	contact.GenderID = update.GenderID
	contact.StampUpdated(actorID)
	return nil
}

// RemoveContact soft-deletes a contact by id
func (v *Vendor) RemoveContact(id, actorID string) error {
	idx := v.contactIndex(id)
	if idx < 0 {
		return apperrors.NotFound("vendor contact", id)
	}
	v.Contacts[idx].MarkDeleted(actorID)
	return nil
}

// ContactByID returns an active contact or a not-found error
func (v *Vendor) ContactByID(id string) (*VendorContact, error) {
	idx := v.contactIndex(id)
	if idx < 0 {
		return nil, apperrors.NotFound("vendor contact", id)
	}
	return &v.Contacts[idx], nil
}

// SoftDelete marks the vendor and all of its contacts deleted
func (v *Vendor) SoftDelete(actorID string) {
	v.MarkDeleted(actorID)
	for i := range v.Contacts {
		if !v.Contacts[i].IsDeleted {
			v.Contacts[i].MarkDeleted(actorID)
		}
	}
}

func (v *Vendor) contactIndex(id string) int {
	for i := range v.Contacts {
		if v.Contacts[i].ID == id && !v.Contacts[i].IsDeleted {
			return i
		}
	}
	return -1
}

func (v *Vendor) checkContactUnique(firstName, lastName, email, excludeID string) error {
	for i := range v.Contacts {
		c := &v.Contacts[i]
		if c.IsDeleted || c.ID == excludeID {
			continue
		}
		if strings.EqualFold(c.FirstName, firstName) && strings.EqualFold(c.LastName, lastName) {
			return apperrors.AlreadyExists("vendor contact", firstName+" "+lastName)
		}
		if email != "" && strings.EqualFold(c.Email, email) {
			return apperrors.AlreadyExists("vendor contact", email)
		}
	}
	return nil
}
