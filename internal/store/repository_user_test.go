package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/cinetrack/internal/logger"
	"github.com/MKhiriev/cinetrack/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
		db.Close()
	})
	return &DB{DB: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userRowColumns = []string{"user_id", "name", "email", "password_hash", "created_at"}

func TestCreateUser_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	now := time.Now().UTC()
	user := models.User{ID: "u-1", Name: "Ann", Email: "ann@example.com", PasswordHash: "hash", CreatedAt: now}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(user.ID, user.Name, user.Email, user.PasswordHash, now))

	created, err := repo.CreateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != user {
		t.Errorf("expected %+v, got %+v", user, created)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "ann@example.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected wrapped ErrExecutingStatement, got %v", err)
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
		WithArgs("ann@example.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow("u-1", "Ann", "ann@example.com", "hash", now))

	found, err := repo.FindUserByEmail(context.Background(), "ann@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != "u-1" || found.PasswordHash != "hash" {
		t.Errorf("unexpected user %+v", found)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM users WHERE user_id = \\$1").
		WithArgs("gone").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(context.Background(), "gone")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByID_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindUserByID(context.Background(), "u-1")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
