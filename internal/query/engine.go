package query

import (
	"context"
	"fmt"
	"sort"
	"strings"

	apperrors "github.com/parakita/backoffice/internal/errors"
	"gorm.io/gorm"
)

// Spec parameterizes the engine for one entity type. Each list endpoint
// supplies its own spec: which relations to preload and search, which
// columns free-text search matches, how a row projects into its DTO, and
// how relation-qualified sort keys read the projected DTO.
type Spec[T any, D any] struct {
	Preloads      []string
	SearchColumns []string
	Relations     []Relation
	Project       func(*T) D
	Sorters       map[string]func(D) string
}

// Run filters, sorts and pages rows of T and returns projected DTOs.
//
// The sort key makes one global decision per request: a direct field sorts,
// counts and pages at the database, while a relation-qualified key
// ("Currency.Name") materializes the whole filtered set and sorts the
// projected DTOs in memory. The fallback exists because the joined display
// names only exist after projection.
func Run[T any, D any](ctx context.Context, db *gorm.DB, opts Options, spec Spec[T, D]) (*PagedList[D], error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	for _, rel := range spec.Relations {
		rel.mustBeValid()
	}

	field, desc := SplitOrderBy(opts.OrderBy)
	useDBSortingPaging := !strings.Contains(field, ".")

	predicates, err := ParseFilter(opts.Filter)
	if err != nil {
		return nil, err
	}

	tx := db.WithContext(ctx).Model(new(T))
	if !opts.IncludeDeleted {
		tx = tx.Where("is_deleted = ?", false)
	}
	tx = ApplyPredicates(tx, predicates)
	if opts.Search != "" {
		tx = applySearch(db, tx, opts.Search, spec.SearchColumns, spec.Relations)
	}

	if useDBSortingPaging {
		return runAtSource(tx, opts, spec, field, desc)
	}
	return runInMemory(tx, opts, spec, field, desc)
}

// runAtSource counts, orders and slices before materialization
func runAtSource[T any, D any](tx *gorm.DB, opts Options, spec Spec[T, D], field string, desc bool) (*PagedList[D], error) {
	if !fieldRe.MatchString(field) {
		return nil, apperrors.Validation(fmt.Sprintf("invalid orderby field %q", field))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	direction := "asc"
	if desc {
		direction = "desc"
	}

	for _, preload := range spec.Preloads {
		tx = tx.Preload(preload)
	}

	var rows []T
	err := tx.Order(fmt.Sprintf("%s %s", ToSnakeCase(field), direction)).
		Offset(opts.Skip).
		Limit(opts.Top).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]D, 0, len(rows))
	for i := range rows {
		items = append(items, spec.Project(&rows[i]))
	}

	return NewPagedList(items, total, opts.Skip, opts.Top), nil
}

// runInMemory materializes the entire filtered set, sorts the projected
// DTOs by the relation-qualified key and slices in memory. Rows whose
// related entity is missing project an empty display name, which sorts
// first ascending and last descending.
func runInMemory[T any, D any](tx *gorm.DB, opts Options, spec Spec[T, D], field string, desc bool) (*PagedList[D], error) {
	sorter, ok := spec.Sorters[field]
	if !ok {
		return nil, apperrors.Validation(fmt.Sprintf("cannot sort by %q", field))
	}

	for _, preload := range spec.Preloads {
		tx = tx.Preload(preload)
	}

	var rows []T
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]D, 0, len(rows))
	for i := range rows {
		items = append(items, spec.Project(&rows[i]))
	}

	sort.SliceStable(items, func(i, j int) bool {
		a := strings.ToLower(sorter(items[i]))
		b := strings.ToLower(sorter(items[j]))
		if desc {
			return a > b
		}
		return a < b
	})

	return PageFromSlice(items, opts.Skip, opts.Top), nil
}

// applySearch ORs free-text matches over the entity's own columns with the
// relation keyword filter of every configured relation. All branches live
// in one query, so the resulting set is a union deduplicated by row
// identity.
func applySearch(db *gorm.DB, tx *gorm.DB, search string, columns []string, relations []Relation) *gorm.DB {
	pattern := "%" + search + "%"

	var cond *gorm.DB
	add := func(sql string, args ...any) {
		if cond == nil {
			cond = db.Where(sql, args...)
		} else {
			cond = cond.Or(sql, args...)
		}
	}

	for _, col := range columns {
		add(fmt.Sprintf("%s ILIKE ?", col), pattern)
	}
	for _, rel := range relations {
		sql, args := rel.keywordCondition(pattern)
		add(sql, args...)
	}

	if cond == nil {
		return tx
	}
	return tx.Where(cond)
}
