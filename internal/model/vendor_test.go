package model

import (
	"testing"
)

func testVendor() *Vendor {
	v := &Vendor{Name: "Acme"}
	v.ID = "ven1"
	v.Contacts = []VendorContact{
		{
			Base:      Base{ID: "c1"},
			VendorID:  "ven1",
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@acme.test",
		},
		{
			Base:      Base{ID: "c2"},
			VendorID:  "ven1",
			FirstName: "Grace",
			LastName:  "Hopper",
			Email:     "grace@acme.test",
		},
		{
			Base:      Base{ID: "c3", IsDeleted: true},
			VendorID:  "ven1",
			FirstName: "Old",
			LastName:  "Timer",
			Email:     "old@acme.test",
		},
	}
	return v
}

func TestVendorAddContact(t *testing.T) {
	tests := []struct {
		name    string
		contact VendorContact
		wantErr bool
	}{
		{
			name:    "New contact",
			contact: VendorContact{FirstName: "Alan", LastName: "Turing", Email: "alan@acme.test"},
		},
		{
			name:    "Duplicate name pair",
			contact: VendorContact{FirstName: "Ada", LastName: "Lovelace", Email: "other@acme.test"},
			wantErr: true,
		},
		{
			name:    "Duplicate name pair case insensitive",
			contact: VendorContact{FirstName: "ADA", LastName: "lovelace", Email: "other@acme.test"},
			wantErr: true,
		},
		{
			name:    "Duplicate email",
			contact: VendorContact{FirstName: "New", LastName: "Person", Email: "GRACE@acme.test"},
			wantErr: true,
		},
		{
			name:    "Name of a deleted contact is reusable",
			contact: VendorContact{FirstName: "Old", LastName: "Timer", Email: "fresh@acme.test"},
		},
		{
			name:    "Empty email never collides",
			contact: VendorContact{FirstName: "An", LastName: "Other"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := testVendor()
			err := v.AddContact(tt.contact)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			added := v.Contacts[len(v.Contacts)-1]
			if added.VendorID != v.ID {
				t.Errorf("expected vendor id %q on new contact, got %q", v.ID, added.VendorID)
			}
		})
	}
}

func TestVendorUpdateContact(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		update  VendorContact
		wantErr bool
	}{
		{
			name:   "Rename keeping own identity",
			id:     "c1",
			update: VendorContact{FirstName: "Ada", LastName: "Lovelace", Email: "ada@acme.test", JobTitle: "CTO"},
		},
		{
			name:    "Collides with sibling",
			id:      "c1",
			update:  VendorContact{FirstName: "Grace", LastName: "Hopper", Email: "ada@acme.test"},
			wantErr: true,
		},
		{
			name:    "Unknown contact",
			id:      "nope",
			update:  VendorContact{FirstName: "X", LastName: "Y"},
			wantErr: true,
		},
		{
			name:    "Deleted contact not updatable",
			id:      "c3",
			update:  VendorContact{FirstName: "Old", LastName: "Timer"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := testVendor()
			err := v.UpdateContact(tt.id, tt.update, "actor")

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			contact, err := v.ContactByID(tt.id)
			if err != nil {
				t.Fatalf("contact lookup failed: %v", err)
			}
			if contact.JobTitle != tt.update.JobTitle {
				t.Errorf("expected job title %q, got %q", tt.update.JobTitle, contact.JobTitle)
			}
			if contact.UpdatedAt == nil {
				t.Error("expected updated stamp")
			}
		})
	}
}

func TestVendorRemoveContact(t *testing.T) {
	v := testVendor()

	if err := v.RemoveContact("c1", "actor"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Contacts[0].IsDeleted {
		t.Error("expected contact marked deleted")
	}
	if _, err := v.ContactByID("c1"); err == nil {
		t.Error("deleted contact must not resolve")
	}
	if err := v.RemoveContact("c1", "actor"); err == nil {
		t.Error("removing twice must fail")
	}
}

func TestVendorSoftDeleteCascades(t *testing.T) {
	v := testVendor()
	v.SoftDelete("actor")

	if !v.IsDeleted {
		t.Error("expected vendor marked deleted")
	}
	for i := range v.Contacts {
		if !v.Contacts[i].IsDeleted {
			t.Errorf("contact %s not cascaded", v.Contacts[i].ID)
		}
	}
}

func TestCustomerContactUniqueness(t *testing.T) {
	c := &Customer{Name: "Globex"}
	c.ID = "cus1"
	if err := c.AddContact(CustomerContact{FirstName: "Ada", LastName: "Lovelace", Email: "ada@globex.test"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.AddContact(CustomerContact{FirstName: "ada", LastName: "LOVELACE"}); err == nil {
		t.Error("expected duplicate name rejection")
	}
	if err := c.AddContact(CustomerContact{FirstName: "Other", LastName: "Person", Email: "Ada@Globex.test"}); err == nil {
		t.Error("expected duplicate email rejection")
	}
}
