package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Username:  "joel",
		Password:  "$2a$10$hash",
		FirstName: "Joel",
		LastName:  "Burton",
		Phone:     "+14155550000",
	}

	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"username", "password", "first_name", "last_name", "phone", "join_at", "last_login_at"}).
		AddRow(user.Username, user.Password, user.FirstName, user.LastName, user.Phone, now, nil)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.Password, user.FirstName, user.LastName, user.Phone).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Username != user.Username {
		t.Errorf("expected username %s, got %s", user.Username, created.Username)
	}
	if created.JoinAt.IsZero() {
		t.Error("expected JoinAt to be populated")
	}
	if created.LastLoginAt != nil {
		t.Errorf("expected nil LastLoginAt for a new user, got %v", created.LastLoginAt)
	}
}

func TestCreateUser_UsernameTaken(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "joel"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "joel"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, user)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "joel"}

	rows := sqlmock.
		NewRows([]string{"username"}). // intentionally wrong shape → scan error
		AddRow("joel")

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(rows)

	_, err := repo.CreateUser(ctx, user)
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"username", "password", "first_name", "last_name", "phone", "join_at", "last_login_at"}).
		AddRow("joel", "$2a$10$hash", "Joel", "Burton", "+14155550000", now, now)

	mock.ExpectQuery("SELECT username").
		WithArgs("joel").
		WillReturnRows(rows)

	found, err := repo.FindUserByUsername(ctx, "joel")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Username != "joel" {
		t.Errorf("expected username joel, got %s", found.Username)
	}
	if found.LastLoginAt == nil {
		t.Error("expected LastLoginAt to be populated")
	}
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"username", "password", "first_name", "last_name", "phone", "join_at", "last_login_at"})

	mock.ExpectQuery("SELECT username").
		WithArgs("ghost").
		WillReturnRows(rows)

	_, err := repo.FindUserByUsername(ctx, "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByUsername_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT username").
		WithArgs("joel").
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindUserByUsername(ctx, "joel")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestGetAllUsers_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"username", "first_name", "last_name", "phone"}).
		AddRow("bob", "Bob", "Smith", "+14155550001").
		AddRow("joel", "Joel", "Burton", "+14155550000")

	mock.ExpectQuery("SELECT username, first_name, last_name, phone FROM users").
		WillReturnRows(rows)

	users, err := repo.GetAllUsers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Username != "bob" || users[1].Username != "joel" {
		t.Errorf("expected users ordered by username, got %v", users)
	}
}

func TestGetAllUsers_Empty(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"username", "first_name", "last_name", "phone"})

	mock.ExpectQuery("SELECT username, first_name, last_name, phone FROM users").
		WillReturnRows(rows)

	users, err := repo.GetAllUsers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected empty slice, got %d users", len(users))
	}
}

func TestGetAllUsers_QueryError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT username, first_name, last_name, phone FROM users").
		WillReturnError(errors.New("db failure"))

	_, err := repo.GetAllUsers(ctx)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetAllUsers_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"username"}).AddRow("joel")

	mock.ExpectQuery("SELECT username, first_name, last_name, phone FROM users").
		WillReturnRows(rows)

	_, err := repo.GetAllUsers(ctx)
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestTouchLastLogin_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"last_login_at"}).AddRow(now)

	mock.ExpectQuery("UPDATE users").
		WithArgs("joel").
		WillReturnRows(rows)

	lastLoginAt, err := repo.TouchLastLogin(ctx, "joel")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !lastLoginAt.Equal(now) {
		t.Errorf("expected %v, got %v", now, lastLoginAt)
	}
}

func TestTouchLastLogin_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"last_login_at"})

	mock.ExpectQuery("UPDATE users").
		WithArgs("ghost").
		WillReturnRows(rows)

	_, err := repo.TouchLastLogin(ctx, "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
