package query

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected Options
		wantErr  string
	}{
		{
			name:  "Defaults",
			query: "",
			expected: Options{
				OrderBy: "Name asc",
				Top:     10,
				Skip:    0,
			},
		},
		{
			name:  "All parameters",
			query: "%24filter=Name+eq+%27Acme%27&%24orderby=City+desc&%24top=25&%24skip=50&searchValue=acme&includeDeleted=true",
			expected: Options{
				Filter:         "Name eq 'Acme'",
				OrderBy:        "City desc",
				Top:            25,
				Skip:           50,
				Search:         "acme",
				IncludeDeleted: true,
			},
		},
		{
			name:  "Top capped at maximum",
			query: "%24top=5000",
			expected: Options{
				OrderBy: "Name asc",
				Top:     100,
				Skip:    0,
			},
		},
		{
			name:    "Malformed top",
			query:   "%24top=abc",
			wantErr: "top must be a number",
		},
		{
			name:    "Malformed skip",
			query:   "%24skip=x",
			wantErr: "skip must be a number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ParseOptions(newTestContext(tt.query))

			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error %q, got nil", tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if opts != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, opts)
			}
		})
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{
			name: "Valid",
			opts: Options{OrderBy: "Name asc", Top: 10, Skip: 0},
		},
		{
			name:    "Empty orderby",
			opts:    Options{OrderBy: "  ", Top: 10},
			wantErr: "orderby must not empty",
		},
		{
			name:    "Zero top",
			opts:    Options{OrderBy: "Name asc", Top: 0},
			wantErr: "top must not zero or less",
		},
		{
			name:    "Negative top",
			opts:    Options{OrderBy: "Name asc", Top: -5},
			wantErr: "top must not zero or less",
		},
		{
			name:    "Negative skip",
			opts:    Options{OrderBy: "Name asc", Top: 10, Skip: -1},
			wantErr: "skip not negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %q, got nil", tt.wantErr)
			}
		})
	}
}

func TestSplitOrderBy(t *testing.T) {
	tests := []struct {
		name     string
		orderBy  string
		field    string
		wantDesc bool
	}{
		{"Ascending explicit", "Name asc", "Name", false},
		{"Descending", "Name desc", "Name", true},
		{"Descending mixed case", "Name DESC", "Name", true},
		{"No direction", "Number", "Number", false},
		{"Relation qualified", "Currency.Name desc", "Currency.Name", true},
		{"Unknown direction sorts ascending", "Name down", "Name", false},
		{"Empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, desc := SplitOrderBy(tt.orderBy)
			if field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, field)
			}
			if desc != tt.wantDesc {
				t.Errorf("expected desc %v, got %v", tt.wantDesc, desc)
			}
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Name", "name"},
		{"FirstName", "first_name"},
		{"JobTitle", "job_title"},
		{"City", "city"},
		{"number", "number"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ToSnakeCase(tt.in); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
