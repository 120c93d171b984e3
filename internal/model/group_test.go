package model

import (
	"testing"
)

func testVendorGroup() *VendorGroup {
	g := &VendorGroup{Code: "RAW", Name: "Raw Materials"}
	g.ID = "grp1"
	g.SubGroups = []VendorSubGroup{
		{Base: Base{ID: "s1"}, VendorGroupID: "grp1", Code: "MET", Name: "Metals"},
		{Base: Base{ID: "s2", IsDeleted: true}, VendorGroupID: "grp1", Code: "OLD", Name: "Retired"},
	}
	return g
}

func TestVendorGroupAddSubGroup(t *testing.T) {
	tests := []struct {
		name    string
		sub     VendorSubGroup
		wantErr bool
	}{
		{
			name: "New sub group",
			sub:  VendorSubGroup{Code: "PLA", Name: "Plastics"},
		},
		{
			name:    "Duplicate name",
			sub:     VendorSubGroup{Code: "MT2", Name: "Metals"},
			wantErr: true,
		},
		{
			name:    "Duplicate name case insensitive",
			sub:     VendorSubGroup{Code: "MT2", Name: "METALS"},
			wantErr: true,
		},
		{
			name: "Name of deleted sub group is reusable",
			sub:  VendorSubGroup{Code: "NEW", Name: "Retired"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testVendorGroup()
			err := g.AddSubGroup(tt.sub)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			added := g.SubGroups[len(g.SubGroups)-1]
			if added.VendorGroupID != g.ID {
				t.Errorf("expected group id %q, got %q", g.ID, added.VendorGroupID)
			}
		})
	}
}

func TestVendorGroupUpdateSubGroup(t *testing.T) {
	g := testVendorGroup()

	if err := g.UpdateSubGroup("s1", VendorSubGroup{Code: "MET", Name: "Base Metals"}, "actor"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.SubGroups[0].Name != "Base Metals" {
		t.Errorf("expected renamed sub group, got %q", g.SubGroups[0].Name)
	}

	if err := g.UpdateSubGroup("missing", VendorSubGroup{Name: "X"}, "actor"); err == nil {
		t.Error("expected error for unknown sub group")
	}
	if err := g.UpdateSubGroup("s2", VendorSubGroup{Name: "X"}, "actor"); err == nil {
		t.Error("deleted sub group must not be updatable")
	}
}

func TestVendorGroupSoftDeleteCascades(t *testing.T) {
	g := testVendorGroup()
	g.SoftDelete("actor")

	if !g.IsDeleted {
		t.Error("expected group marked deleted")
	}
	for i := range g.SubGroups {
		if !g.SubGroups[i].IsDeleted {
			t.Errorf("sub group %s not cascaded", g.SubGroups[i].ID)
		}
	}
}

func TestCustomerGroupSubGroupUniqueness(t *testing.T) {
	g := &CustomerGroup{Code: "RET", Name: "Retail"}
	g.ID = "cg1"

	if err := g.AddSubGroup(CustomerSubGroup{Code: "ON", Name: "Online"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.AddSubGroup(CustomerSubGroup{Code: "O2", Name: "online"}); err == nil {
		t.Error("expected duplicate name rejection")
	}
	if err := g.RemoveSubGroup(g.SubGroups[0].ID, "actor"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.AddSubGroup(CustomerSubGroup{Code: "O3", Name: "Online"}); err != nil {
		t.Errorf("name freed by deletion should be reusable: %v", err)
	}
}
