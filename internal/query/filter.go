package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	apperrors "github.com/parakita/backoffice/internal/errors"
	"gorm.io/gorm"
)

// Predicate is a single translated filter clause. Clauses are and-joined.
type Predicate struct {
	SQL  string
	Args []any
}

var comparisonOps = map[string]string{
	"eq": "=",
	"ne": "<>",
	"gt": ">",
	"ge": ">=",
	"lt": "<",
	"le": "<=",
}

var (
	fieldRe    = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)
	functionRe = regexp.MustCompile(`^(contains|startswith)\(\s*([A-Za-z][A-Za-z0-9]*)\s*,\s*'(.*)'\s*\)$`)
)

// ParseFilter translates a $filter expression into predicates. The grammar
// covers attribute-only comparisons joined with "and":
//
//	Name eq 'Acme'  and  City ne 'Oslo'  and  contains(Email,'acme.com')
//
// Relations cannot be referenced here; the relation keyword filter covers
// cross-table search.
func ParseFilter(input string) ([]Predicate, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	var predicates []Predicate
	for _, clause := range splitClauses(input) {
		pred, err := parseClause(clause)
		if err != nil {
			return nil, err
		}
		predicates = append(predicates, pred)
	}
	return predicates, nil
}

// ApplyPredicates adds every predicate as a WHERE condition
func ApplyPredicates(tx *gorm.DB, predicates []Predicate) *gorm.DB {
	for _, p := range predicates {
		tx = tx.Where(p.SQL, p.Args...)
	}
	return tx
}

// splitClauses splits the expression on "and" tokens outside quotes
func splitClauses(input string) []string {
	var clauses []string
	var current strings.Builder

	for _, tok := range tokenize(input) {
		if strings.EqualFold(tok, "and") {
			clauses = append(clauses, strings.TrimSpace(current.String()))
			current.Reset()
			continue
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(tok)
	}
	if current.Len() > 0 {
		clauses = append(clauses, strings.TrimSpace(current.String()))
	}
	return clauses
}

// tokenize splits on whitespace, keeping single-quoted segments intact
func tokenize(input string) []string {
	var tokens []string
	var current strings.Builder
	inQuote := false

	for _, r := range input {
		switch {
		case r == '\'':
			inQuote = !inQuote
			current.WriteRune(r)
		case !inQuote && (r == ' ' || r == '\t'):
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}

func parseClause(clause string) (Predicate, error) {
	if m := functionRe.FindStringSubmatch(clause); m != nil {
		column := ToSnakeCase(m[2])
		switch m[1] {
		case "contains":
			return Predicate{SQL: fmt.Sprintf("%s ILIKE ?", column), Args: []any{"%" + m[3] + "%"}}, nil
		case "startswith":
			return Predicate{SQL: fmt.Sprintf("%s ILIKE ?", column), Args: []any{m[3] + "%"}}, nil
		}
	}

	parts := tokenize(clause)
	if len(parts) != 3 {
		return Predicate{}, apperrors.Validation(fmt.Sprintf("invalid filter expression %q", clause))
	}

	field, op, rawValue := parts[0], strings.ToLower(parts[1]), parts[2]
	if !fieldRe.MatchString(field) {
		return Predicate{}, apperrors.Validation(fmt.Sprintf("invalid filter field %q", field))
	}

	sqlOp, ok := comparisonOps[op]
	if !ok {
		return Predicate{}, apperrors.Validation(fmt.Sprintf("unsupported filter operator %q", op))
	}

	value, err := parseValue(rawValue)
	if err != nil {
		return Predicate{}, err
	}

	return Predicate{
		SQL:  fmt.Sprintf("%s %s ?", ToSnakeCase(field), sqlOp),
		Args: []any{value},
	}, nil
}

func parseValue(raw string) (any, error) {
	if strings.HasPrefix(raw, "'") && strings.HasSuffix(raw, "'") && len(raw) >= 2 {
		return strings.Trim(raw, "'"), nil
	}
	if raw == "true" || raw == "false" {
		return raw == "true", nil
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f, nil
	}
	return nil, apperrors.Validation(fmt.Sprintf("invalid filter value %q", raw))
}
