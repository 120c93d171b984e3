package repository

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	apperrors "github.com/parakita/backoffice/internal/errors"
	"github.com/parakita/backoffice/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

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

func TestRotateReplacesToken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefreshTokenRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "refresh_tokens" WHERE id = \$1`).
		WithArgs("old-id").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "refresh_tokens"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	replacement := &model.RefreshToken{
		ID:         "new-id",
		UserID:     "usr1",
		TokenHash:  "digest",
		ExpiryDate: time.Now().Add(time.Hour),
	}
	rotated, err := repo.Rotate(context.Background(), "old-id", replacement)
	if err != nil {
		t.Fatalf("rotate failed: %v", err)
	}
	if !rotated {
		t.Error("expected rotation to succeed")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRotateRefusesSpentToken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefreshTokenRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "refresh_tokens" WHERE id = \$1`).
		WithArgs("old-id").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	replacement := &model.RefreshToken{ID: "new-id", UserID: "usr1", TokenHash: "digest"}
	rotated, err := repo.Rotate(context.Background(), "old-id", replacement)
	if err != nil {
		t.Fatalf("rotate errored: %v", err)
	}
	if rotated {
		t.Error("a spent token must not rotate")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetByHashMiss(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefreshTokenRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "refresh_tokens" WHERE token_hash = \$1`).
		WithArgs("absent", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	token, err := repo.GetByHash(context.Background(), "absent")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if token != nil {
		t.Errorf("expected nil on miss, got %+v", token)
	}
}

func TestSequenceNext(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSequenceRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "number_sequences" WHERE name = \$1 AND is_deleted = \$2 ORDER BY .* FOR UPDATE`).
		WithArgs("vendor", false, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "prefix", "padding", "last_value"}).
			AddRow("seq1", "vendor", "VEN-", 6, 41))
	mock.ExpectExec(`UPDATE "number_sequences" SET`).
		WithArgs(int64(42), sqlmock.AnyArg(), "seq1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	number, err := repo.Next(context.Background(), "vendor")
	if err != nil {
		t.Fatalf("next failed: %v", err)
	}
	if number != "VEN-000042" {
		t.Errorf("expected VEN-000042, got %q", number)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSequenceNextUnknownName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSequenceRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "number_sequences" WHERE name = \$1 AND is_deleted = \$2`).
		WithArgs("missing", false, 1).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectRollback()

	_, err := repo.Next(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected an error for an unknown sequence")
	}
	if apperrors.ToHTTPStatus(err) != http.StatusNotFound {
		t.Errorf("expected a not-found error, got %v", err)
	}
}
