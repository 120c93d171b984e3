package query

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/parakita/backoffice/internal/constants"
	apperrors "github.com/parakita/backoffice/internal/errors"
)

// Options is the neutral descriptor the engine consumes. It is built from
// the request parameters $filter, $orderby, $top, $skip and searchValue.
type Options struct {
	Filter         string
	OrderBy        string
	Top            int
	Skip           int
	Search         string
	IncludeDeleted bool
}

// ParseOptions extracts paging options from the request. Missing $orderby,
// $top and $skip fall back to defaults; malformed numbers are rejected.
func ParseOptions(c *gin.Context) (Options, error) {
	opts := Options{
		Filter:         c.Query(constants.QueryParamFilter),
		OrderBy:        c.DefaultQuery(constants.QueryParamOrderBy, constants.DefaultOrderBy),
		Search:         c.Query(constants.QueryParamSearch),
		IncludeDeleted: c.Query(constants.QueryParamIncludeDeleted) == "true",
	}

	top, err := strconv.Atoi(c.DefaultQuery(constants.QueryParamTop, strconv.Itoa(constants.DefaultTop)))
	if err != nil {
		return opts, apperrors.Validation("top must be a number")
	}
	opts.Top = top

	skip, err := strconv.Atoi(c.DefaultQuery(constants.QueryParamSkip, strconv.Itoa(constants.DefaultSkip)))
	if err != nil {
		return opts, apperrors.Validation("skip must be a number")
	}
	opts.Skip = skip

	if opts.Top > constants.MaxTop {
		opts.Top = constants.MaxTop
	}

	return opts, nil
}

// Validate enforces the option invariants. Violations are fatal for the
// request and surface as 400-class errors.
func (o Options) Validate() error {
	if strings.TrimSpace(o.OrderBy) == "" {
		return apperrors.Validation("orderby must not empty")
	}
	if o.Top <= 0 {
		return apperrors.Validation("top must not zero or less")
	}
	if o.Skip < 0 {
		return apperrors.Validation("skip not negative")
	}
	return nil
}

// SplitOrderBy splits "Field asc|desc" into the field expression and a
// descending flag. Direction is case-insensitive; anything that is not
// "desc" sorts ascending.
func SplitOrderBy(orderBy string) (field string, desc bool) {
	parts := strings.Fields(orderBy)
	if len(parts) == 0 {
		return "", false
	}
	field = parts[0]
	if len(parts) > 1 && strings.EqualFold(parts[1], constants.OrderDesc) {
		desc = true
	}
	return field, desc
}

// ToSnakeCase converts a PascalCase field name to its column name
func ToSnakeCase(s string) string {
	var result []rune
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			result = append(result, '_')
		}
		result = append(result, unicode.ToLower(r))
	}
	return string(result)
}
