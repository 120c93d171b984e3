package query

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewPagedList(t *testing.T) {
	tests := []struct {
		name       string
		items      []string
		total      int64
		skip, top  int
		page       int
		totalPages int
		count      int
	}{
		{
			name:       "First page",
			items:      []string{"a", "b"},
			total:      10,
			skip:       0,
			top:        2,
			page:       1,
			totalPages: 5,
			count:      2,
		},
		{
			name:       "Middle page",
			items:      []string{"e", "f"},
			total:      10,
			skip:       4,
			top:        2,
			page:       3,
			totalPages: 5,
			count:      2,
		},
		{
			name:       "Partial last page",
			items:      []string{"k"},
			total:      11,
			skip:       10,
			top:        5,
			page:       3,
			totalPages: 3,
			count:      1,
		},
		{
			name:       "Zero top falls back to page one",
			items:      []string{"a"},
			total:      1,
			skip:       0,
			top:        0,
			page:       1,
			totalPages: 1,
			count:      1,
		},
		{
			name:       "Empty result",
			items:      nil,
			total:      0,
			skip:       0,
			top:        10,
			page:       1,
			totalPages: 0,
			count:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewPagedList(tt.items, tt.total, tt.skip, tt.top)

			if list.Items == nil {
				t.Error("items must never be nil")
			}
			if list.Page != tt.page {
				t.Errorf("expected page %d, got %d", tt.page, list.Page)
			}
			if list.TotalPages != tt.totalPages {
				t.Errorf("expected totalPages %d, got %d", tt.totalPages, list.TotalPages)
			}
			if list.Count != tt.count {
				t.Errorf("expected count %d, got %d", tt.count, list.Count)
			}
			if list.TotalRecords != tt.total {
				t.Errorf("expected totalRecords %d, got %d", tt.total, list.TotalRecords)
			}
			if list.Limit != tt.top {
				t.Errorf("expected limit %d, got %d", tt.top, list.Limit)
			}
		})
	}
}

func TestPageFromSlice(t *testing.T) {
	all := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name      string
		skip, top int
		expected  []int
		total     int64
	}{
		{"First page", 0, 2, []int{1, 2}, 5},
		{"Second page", 2, 2, []int{3, 4}, 5},
		{"Last partial page", 4, 2, []int{5}, 5},
		{"Skip beyond end", 10, 2, []int{}, 5},
		{"Zero top returns remainder", 1, 0, []int{2, 3, 4, 5}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := PageFromSlice(all, tt.skip, tt.top)

			if list.TotalRecords != tt.total {
				t.Errorf("expected total %d, got %d", tt.total, list.TotalRecords)
			}
			if len(list.Items) != len(tt.expected) {
				t.Fatalf("expected %d items, got %d", len(tt.expected), len(list.Items))
			}
			for i, v := range tt.expected {
				if list.Items[i] != v {
					t.Errorf("item %d: expected %d, got %d", i, v, list.Items[i])
				}
			}
		})
	}
}

func TestPagedListJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(NewPagedList([]string{"a"}, 1, 0, 10))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	for _, field := range []string{"items", "totalRecords", "totalPages", "page", "limit", "count"} {
		if !strings.Contains(string(data), `"`+field+`"`) {
			t.Errorf("expected field %q in payload %s", field, data)
		}
	}
}
