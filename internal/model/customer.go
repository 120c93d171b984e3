package model

import (
	"strings"

	apperrors "github.com/parakita/backoffice/internal/errors"
)

// Customer mirrors the vendor aggregate: it owns its contact collection
// and enforces name/email uniqueness among active contacts.
type Customer struct {
	Base
	Number             string  `gorm:"column:number;size:32;not null;uniqueIndex"`
	Name               string  `gorm:"column:name;size:128;not null;index"`
	Address            string  `gorm:"column:address;size:256"`
	City               string  `gorm:"column:city;size:64"`
	Phone              string  `gorm:"column:phone;size:32"`
	Email              string  `gorm:"column:email;size:128"`
	Website            string  `gorm:"column:website;size:128"`
	CurrencyID         *string `gorm:"column:currency_id;size:20;index"`
	CustomerGroupID    *string `gorm:"column:customer_group_id;size:20;index"`
	CustomerSubGroupID *string `gorm:"column:customer_sub_group_id;size:20"`

	Currency         *Currency         `gorm:"foreignKey:CurrencyID"`
	CustomerGroup    *CustomerGroup    `gorm:"foreignKey:CustomerGroupID"`
	CustomerSubGroup *CustomerSubGroup `gorm:"foreignKey:CustomerSubGroupID"`
	Contacts         []CustomerContact `gorm:"foreignKey:CustomerID"`
}

func (Customer) TableName() string { return "customers" }

type CustomerContact struct {
	Base
	CustomerID string  `gorm:"column:customer_id;size:20;not null;index"`
	FirstName  string  `gorm:"column:first_name;size:64;not null"`
	LastName   string  `gorm:"column:last_name;size:64;not null"`
	Email      string  `gorm:"column:email;size:128"`
	Phone      string  `gorm:"column:phone;size:32"`
	JobTitle   string  `gorm:"column:job_title;size:64"`
	GenderID   *string `gorm:"column:gender_id;size:20"`

	Gender *Gender `gorm:"foreignKey:GenderID"`
}

func (CustomerContact) TableName() string { return "customer_contacts" }

// AddContact appends a contact after the uniqueness check
func (c *Customer) AddContact(contact CustomerContact) error {
	if err := c.checkContactUnique(contact.FirstName, contact.LastName, contact.Email, ""); err != nil {
		return err
	}
	contact.CustomerID = c.ID
	c.Contacts = append(c.Contacts, contact)
	return nil
}

// UpdateContact mutates an existing active contact
func (c *Customer) UpdateContact(id string, update CustomerContact, actorID string) error {
	idx := c.contactIndex(id)
	if idx < 0 {
		return apperrors.NotFound("customer contact", id)
	}
	if err := c.checkContactUnique(update.FirstName, update.LastName, update.Email, id); err != nil {
		return err
	}

	contact := &c.Contacts[idx]
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
func (c *Customer) RemoveContact(id, actorID string) error {
	idx := c.contactIndex(id)
	if idx < 0 {
		return apperrors.NotFound("customer contact", id)
	}
	c.Contacts[idx].MarkDeleted(actorID)
	return nil
}

// ContactByID returns an active contact or a not-found error
func (c *Customer) ContactByID(id string) (*CustomerContact, error) {
	idx := c.contactIndex(id)
	if idx < 0 {
		return nil, apperrors.NotFound("customer contact", id)
	}
	return &c.Contacts[idx], nil
}

// SoftDelete marks the customer and all of its contacts deleted
func (c *Customer) SoftDelete(actorID string) {
	c.MarkDeleted(actorID)
	for i := range c.Contacts {
		if !c.Contacts[i].IsDeleted {
			c.Contacts[i].MarkDeleted(actorID)
		}
	}
}

func (c *Customer) contactIndex(id string) int {
	for i := range c.Contacts {
		if c.Contacts[i].ID == id && !c.Contacts[i].IsDeleted {
			return i
		}
	}
	return -1
}

func (c *Customer) checkContactUnique(firstName, lastName, email, excludeID string) error {
	for i := range c.Contacts {
		existing := &c.Contacts[i]
		if existing.IsDeleted || existing.ID == excludeID {
			continue
		}
		if strings.EqualFold(existing.FirstName, firstName) && strings.EqualFold(existing.LastName, lastName) {
			return apperrors.AlreadyExists("customer contact", firstName+" "+lastName)
		}
		if email != "" && strings.EqualFold(existing.Email, email) {
			return apperrors.AlreadyExists("customer contact", email)
		}
	}
	return nil
}
