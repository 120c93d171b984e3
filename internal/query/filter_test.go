package query

import (
	"reflect"
	"testing"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Predicate
		wantErr  bool
	}{
		{
			name:     "Empty input",
			input:    "",
			expected: nil,
		},
		{
			name:  "String equality",
			input: "Name eq 'Acme'",
			expected: []Predicate{
				{SQL: "name = ?", Args: []any{"Acme"}},
			},
		},
		{
			name:  "Quoted value with spaces",
			input: "Name eq 'Acme Corp'",
			expected: []Predicate{
				{SQL: "name = ?", Args: []any{"Acme Corp"}},
			},
		},
		{
			name:  "Integer comparison",
			input: "Padding ge 4",
			expected: []Predicate{
				{SQL: "padding >= ?", Args: []any{int64(4)}},
			},
		},
		{
			name:  "Boolean comparison",
			input: "IsBlocked eq true",
			expected: []Predicate{
				{SQL: "is_blocked = ?", Args: []any{true}},
			},
		},
		{
			name:  "And-joined clauses",
			input: "City ne 'Oslo' and Name eq 'Acme'",
			expected: []Predicate{
				{SQL: "city <> ?", Args: []any{"Oslo"}},
				{SQL: "name = ?", Args: []any{"Acme"}},
			},
		},
		{
			name:  "Contains function",
			input: "contains(Email,'acme.com')",
			expected: []Predicate{
				{SQL: "email ILIKE ?", Args: []any{"%acme.com%"}},
			},
		},
		{
			name:  "Startswith function",
			input: "startswith(Number,'VEN-')",
			expected: []Predicate{
				{SQL: "number ILIKE ?", Args: []any{"VEN-%"}},
			},
		},
		{
			name:  "Function mixed with comparison",
			input: "contains(Name,'co') and City eq 'Oslo'",
			expected: []Predicate{
				{SQL: "name ILIKE ?", Args: []any{"%co%"}},
				{SQL: "city = ?", Args: []any{"Oslo"}},
			},
		},
		{
			name:    "Unsupported operator",
			input:   "Name like 'Acme'",
			wantErr: true,
		},
		{
			name:    "Malformed clause",
			input:   "Name eq",
			wantErr: true,
		},
		{
			name:    "Invalid field name",
			input:   "na-me eq 'x'",
			wantErr: true,
		},
		{
			name:    "Unquoted non-numeric value",
			input:   "Name eq Acme",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFilter(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestRelationKeywordCondition(t *testing.T) {
	rel := NewRelation("Currency", "currency_id", "currencies")

	sql, args := rel.keywordCondition("%usd%")

	expected := "currency_id IN (SELECT id FROM currencies WHERE name ILIKE ? AND is_deleted = ?)"
	if sql != expected {
		t.Errorf("expected %q, got %q", expected, sql)
	}
	if len(args) != 2 || args[0] != "%usd%" || args[1] != false {
		t.Errorf("unexpected args %+v", args)
	}
}

func TestNewRelationPanicsOnBlankField(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for blank table")
		}
	}()
	NewRelation("Currency", "currency_id", "")
}
