package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/parakita/backoffice/config"
	apperrors "github.com/parakita/backoffice/internal/errors"
	"github.com/parakita/backoffice/internal/repository"
	"github.com/parakita/backoffice/pkg/mailer"
	"github.com/parakita/backoffice/pkg/redis"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
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

func newAuthService(db *gorm.DB) *AuthService {
	cfg := &config.Config{
		App: config.AppConfig{Name: "backoffice", BaseURL: "http://localhost:8080"},
		JWT: config.JWTConfig{
			Secret:          "test-secret",
			ExpirationTime:  time.Minute,
			RefreshDuration: time.Hour,
		},
	}
	users := repository.NewUserRepository(db)
	tokens := repository.NewRefreshTokenRepository(db)
	tokenSvc := NewTokenService(cfg.JWT.Secret, cfg.JWT.ExpirationTime)
	cache := redis.NewClient(redis.Config{}, zap.NewNop())
	navigation := NewNavigationService(users, cache)
	return NewAuthService(users, tokens, tokenSvc, mailer.NewLogMailer(zap.NewNop()), navigation, cfg)
}

func TestLoginPurgesPriorSessions(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newAuthService(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt failed: %v", err)
	}

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE LOWER\(email\) = LOWER\(\$1\) AND is_deleted = \$2`).
		WithArgs("ada@example.com", false, 1).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "first_name", "last_name", "email", "password_hash", "is_blocked", "email_confirmed", "is_deleted",
		}).AddRow("usr1", "Ada", "Lovelace", "ada@example.com", string(hash), false, true, false))
	mock.ExpectQuery(`SELECT \* FROM "user_roles" WHERE "user_roles"\."user_id" = \$1`).
		WithArgs("usr1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "role_id"}))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "refresh_tokens" WHERE user_id = \$1`).
		WithArgs("usr1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "refresh_tokens"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := svc.Login(context.Background(), "ada@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resp.Token == "" || resp.RefreshToken == "" {
		t.Errorf("token pair missing: %+v", resp)
	}
	if resp.User.Email != "ada@example.com" {
		t.Errorf("unexpected user %+v", resp.User)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newAuthService(db)

	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE LOWER\(email\) = LOWER\(\$1\) AND is_deleted = \$2`).
		WithArgs("ada@example.com", false, 1).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "password_hash", "is_blocked", "email_confirmed", "is_deleted",
		}).AddRow("usr1", "ada@example.com", string(hash), false, true, false))
	mock.ExpectQuery(`SELECT \* FROM "user_roles" WHERE "user_roles"\."user_id" = \$1`).
		WithArgs("usr1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "role_id"}))

	_, err := svc.Login(context.Background(), "ada@example.com", "wrong")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected invalid credentials, got %v", err)
	}
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newAuthService(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE LOWER\(email\) = LOWER\(\$1\) AND is_deleted = \$2`).
		WithArgs("ghost@example.com", false, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected invalid credentials, got %v", err)
	}
}

func TestRefreshRejectsUnknownToken(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newAuthService(db)

	mock.ExpectQuery(`SELECT \* FROM "refresh_tokens" WHERE token_hash = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Refresh(context.Background(), "never-issued")
	if !errors.Is(err, apperrors.ErrInvalidRefreshToken) {
		t.Errorf("expected invalid refresh token, got %v", err)
	}
}

func TestRefreshRejectsExpiredToken(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newAuthService(db)

	mock.ExpectQuery(`SELECT \* FROM "refresh_tokens" WHERE token_hash = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token_hash", "expiry_date"}).
			AddRow("tok1", "usr1", "digest", time.Now().Add(-time.Minute)))

	_, err := svc.Refresh(context.Background(), "stale")
	if !errors.Is(err, apperrors.ErrRefreshTokenExpired) {
		t.Errorf("expected expired refresh token, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("rotation must not run for an expired token: %v", err)
	}
}
