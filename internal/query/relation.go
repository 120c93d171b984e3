package query

import (
	"fmt"
)

// Relation describes a lookup relation on the primary entity: the foreign
// key column pointing at the secondary table and the column holding the
// secondary entity's display name. Relations feed two engine features:
// the keyword search across joined tables and the preload list used for
// DTO projection.
type Relation struct {
	Name       string // navigation property name, e.g. "Currency"
	ForeignKey string // column on the primary table, e.g. "currency_id"
	Table      string // secondary table, e.g. "currencies"
	NameColumn string // display-name column on the secondary table
}

// NewRelation builds a relation descriptor. A blank field is a programmer
// error in the call-site spec, not a runtime condition.
func NewRelation(name, foreignKey, table string) Relation {
	r := Relation{Name: name, ForeignKey: foreignKey, Table: table, NameColumn: "name"}
	r.mustBeValid()
	return r
}

func (r Relation) mustBeValid() {
	if r.Name == "" || r.ForeignKey == "" || r.Table == "" || r.NameColumn == "" {
		panic(fmt.Sprintf("query: incomplete relation descriptor %+v", r))
	}
}

// keywordCondition returns the SQL restricting primary rows to those whose
// related entity's display name contains the keyword. It composes as one
// OR-branch of the search condition, so rows matched both directly and via
// the relation appear once.
func (r Relation) keywordCondition(pattern string) (string, []any) {
	sql := fmt.Sprintf(
		"%s IN (SELECT id FROM %s WHERE %s ILIKE ? AND is_deleted = ?)",
		r.ForeignKey, r.Table, r.NameColumn,
	)
	return sql, []any{pattern, false}
}
