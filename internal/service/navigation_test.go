package service

import (
	"testing"

	"github.com/parakita/backoffice/internal/dto"
)

func testMenu() []dto.MenuItem {
	return []dto.MenuItem{
		{Title: "Dashboard", Path: "/dashboard"},
		{
			Title: "Master Data",
			Children: []dto.MenuItem{
				{Title: "Vendors", Path: "/vendors", Permission: "Vendor:Read"},
				{Title: "Customers", Path: "/customers", Permission: "Customer:Read"},
			},
		},
		{
			Title: "Administration",
			Children: []dto.MenuItem{
				{Title: "Users", Path: "/users", Permission: "User:Read"},
			},
		},
	}
}

func TestFilterMenu(t *testing.T) {
	tests := []struct {
		name        string
		permissions map[string]bool
		wantTitles  []string
	}{
		{
			name:        "No permissions keeps only open items",
			permissions: map[string]bool{},
			wantTitles:  []string{"Dashboard"},
		},
		{
			name:        "Partial permissions prune siblings",
			permissions: map[string]bool{"Vendor:Read": true},
			wantTitles:  []string{"Dashboard", "Master Data"},
		},
		{
			name: "Full permissions keep everything",
			permissions: map[string]bool{
				"Vendor:Read":   true,
				"Customer:Read": true,
				"User:Read":     true,
			},
			wantTitles: []string{"Dashboard", "Master Data", "Administration"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterMenu(testMenu(), tt.permissions)
			if len(got) != len(tt.wantTitles) {
				t.Fatalf("expected %d items, got %d: %+v", len(tt.wantTitles), len(got), got)
			}
			for i, title := range tt.wantTitles {
				if got[i].Title != title {
					t.Errorf("item %d: expected %q, got %q", i, title, got[i].Title)
				}
			}
		})
	}
}

func TestFilterMenuPrunesDeniedChildren(t *testing.T) {
	got := FilterMenu(testMenu(), map[string]bool{"Vendor:Read": true, "Customer:Read": true})

	var master *dto.MenuItem
	for i := range got {
		if got[i].Title == "Master Data" {
			master = &got[i]
		}
	}
	if master == nil {
		t.Fatal("master data group missing")
	}
	if len(master.Children) != 2 {
		t.Fatalf("expected both children, got %+v", master.Children)
	}

	got = FilterMenu(testMenu(), map[string]bool{"Customer:Read": true})
	for i := range got {
		if got[i].Title == "Master Data" {
			master = &got[i]
		}
	}
	if len(master.Children) != 1 || master.Children[0].Title != "Customers" {
		t.Errorf("expected only customers child, got %+v", master.Children)
	}
}

func TestLoadMenuTemplate(t *testing.T) {
	items, err := LoadMenuTemplate()
	if err != nil {
		t.Fatalf("template must parse: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("template must not be empty")
	}

	var leaves int
	var walk func(items []dto.MenuItem)
	walk = func(items []dto.MenuItem) {
		for _, item := range items {
			if item.Title == "" {
				t.Errorf("item without title: %+v", item)
			}
			if len(item.Children) > 0 {
				walk(item.Children)
				continue
			}
			leaves++
			if item.Path == "" {
				t.Errorf("leaf %q without path", item.Title)
			}
		}
	}
	walk(items)

	if leaves == 0 {
		t.Error("template must carry leaf entries")
	}
}
