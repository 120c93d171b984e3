package query

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

type widget struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	GroupID   *string
	IsDeleted bool
}

func (widget) TableName() string { return "widgets" }

type widgetDTO struct {
	ID        string
	Name      string
	GroupName string
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	return db, mock
}

func widgetSpec() Spec[widget, widgetDTO] {
	return Spec[widget, widgetDTO]{
		SearchColumns: []string{"name"},
		Relations: []Relation{
			NewRelation("Group", "group_id", "groups"),
		},
		Project: func(w *widget) widgetDTO {
			return widgetDTO{ID: w.ID, Name: w.Name}
		},
	}
}

func TestRunAtSource(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "widgets" WHERE is_deleted = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT \* FROM "widgets" WHERE is_deleted = \$1 ORDER BY name asc`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "is_deleted"}).
			AddRow("w1", "alpha", false).
			AddRow("w2", "beta", false))

	opts := Options{OrderBy: "Name asc", Top: 2, Skip: 0}
	page, err := Run(context.Background(), db, opts, widgetSpec())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if page.TotalRecords != 3 {
		t.Errorf("expected total 3, got %d", page.TotalRecords)
	}
	if page.TotalPages != 2 {
		t.Errorf("expected 2 pages, got %d", page.TotalPages)
	}
	if len(page.Items) != 2 || page.Items[0].Name != "alpha" {
		t.Errorf("unexpected items %+v", page.Items)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRunAtSourceWithFilter(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "widgets" WHERE is_deleted = \$1 AND name = \$2`).
		WithArgs(false, "alpha").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "widgets" WHERE is_deleted = \$1 AND name = \$2 ORDER BY name asc`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "is_deleted"}).
			AddRow("w1", "alpha", false))

	opts := Options{Filter: "Name eq 'alpha'", OrderBy: "Name asc", Top: 10, Skip: 0}
	page, err := Run(context.Background(), db, opts, widgetSpec())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalRecords != 1 || len(page.Items) != 1 {
		t.Errorf("unexpected page %+v", page)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRunSearchSpansRelations(t *testing.T) {
	db, mock := newMockDB(t)

	// One query with OR branches: own column plus the relation subquery.
	// Matching at most once per row makes the union inherently deduplicated.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "widgets" WHERE is_deleted = \$1 AND \(name ILIKE \$2 OR group_id IN \(SELECT id FROM groups WHERE name ILIKE \$3 AND is_deleted = \$4\)\)`).
		WithArgs(false, "%usd%", "%usd%", false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "widgets" WHERE is_deleted = \$1 AND \(name ILIKE \$2 OR group_id IN`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "is_deleted"}).
			AddRow("w1", "usd widget", false))

	opts := Options{OrderBy: "Name asc", Top: 10, Skip: 0, Search: "usd"}
	page, err := Run(context.Background(), db, opts, widgetSpec())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 1 {
		t.Errorf("expected 1 item, got %d", len(page.Items))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRunInMemorySortsByRelation(t *testing.T) {
	db, mock := newMockDB(t)

	groups := map[string]string{"w1": "zeta", "w2": "alpha", "w3": ""}
	spec := widgetSpec()
	spec.Project = func(w *widget) widgetDTO {
		return widgetDTO{ID: w.ID, Name: w.Name, GroupName: groups[w.ID]}
	}
	spec.Sorters = map[string]func(widgetDTO) string{
		"Group.Name": func(d widgetDTO) string { return d.GroupName },
	}

	// Relation-qualified sort key: materialize everything, no LIMIT
	mock.ExpectQuery(`SELECT \* FROM "widgets" WHERE is_deleted = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "is_deleted"}).
			AddRow("w1", "one", false).
			AddRow("w2", "two", false).
			AddRow("w3", "three", false))

	opts := Options{OrderBy: "Group.Name desc", Top: 10, Skip: 0}
	page, err := Run(context.Background(), db, opts, spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(page.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(page.Items))
	}
	// Descending: zeta, alpha, then the widget without a group
	order := []string{"w1", "w2", "w3"}
	for i, id := range order {
		if page.Items[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, page.Items[i].ID)
		}
	}
	if page.TotalRecords != 3 {
		t.Errorf("expected total 3, got %d", page.TotalRecords)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRunInMemoryPagesAfterSort(t *testing.T) {
	db, mock := newMockDB(t)

	groups := map[string]string{"w1": "c", "w2": "a", "w3": "b"}
	spec := widgetSpec()
	spec.Project = func(w *widget) widgetDTO {
		return widgetDTO{ID: w.ID, GroupName: groups[w.ID]}
	}
	spec.Sorters = map[string]func(widgetDTO) string{
		"Group.Name": func(d widgetDTO) string { return d.GroupName },
	}

	mock.ExpectQuery(`SELECT \* FROM "widgets" WHERE is_deleted = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "is_deleted"}).
			AddRow("w1", "one", false).
			AddRow("w2", "two", false).
			AddRow("w3", "three", false))

	opts := Options{OrderBy: "Group.Name asc", Top: 1, Skip: 1}
	page, err := Run(context.Background(), db, opts, spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(page.Items) != 1 || page.Items[0].ID != "w3" {
		t.Errorf("expected the middle element w3, got %+v", page.Items)
	}
	if page.Page != 2 {
		t.Errorf("expected page 2, got %d", page.Page)
	}
	if page.TotalRecords != 3 {
		t.Errorf("expected total 3, got %d", page.TotalRecords)
	}
}

func TestRunRejectsInvalidOptions(t *testing.T) {
	db, _ := newMockDB(t)

	tests := []struct {
		name string
		opts Options
	}{
		{"Zero top", Options{OrderBy: "Name asc", Top: 0}},
		{"Blank orderby", Options{OrderBy: " ", Top: 10}},
		{"Negative skip", Options{OrderBy: "Name asc", Top: 10, Skip: -1}},
		{"Unknown relation sort key", Options{OrderBy: "Nowhere.Name asc", Top: 10}},
		{"Malformed filter", Options{OrderBy: "Name asc", Top: 10, Filter: "Name similar 'x'"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Run(context.Background(), db, tt.opts, widgetSpec()); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
