package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (JoinAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameTaken].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Password, user.FirstName, user.LastName, user.Phone)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameTaken
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved user from db
	if err := row.Scan(&user.Username, &user.Password, &user.FirstName, &user.LastName, &user.Phone, &user.JoinAt, &user.LastLoginAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrUsernameTaken
		}

		return models.User{}, err
	}

	return user, nil
}

// FindUserByUsername retrieves the user record whose username matches the
// given one, including the password hash for credential verification.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByUsername, username)

	// find user by username
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found user from db
	if err := row.Scan(&foundUser.Username, &foundUser.Password, &foundUser.FirstName, &foundUser.LastName, &foundUser.Phone, &foundUser.JoinAt, &foundUser.LastLoginAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}

// GetAllUsers returns every user's public profile, ordered by username.
func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.UserSummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAllUsersQuery()
	if err != nil {
		log.Err(err).
			Str("func", "userRepository.GetAllUsers").
			Msg("failed to create query")
		return nil, wrapBuildError(err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "userRepository.GetAllUsers").
			Msg("failed to execute query for listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.UserSummary, 0, 50)

	for rows.Next() {
		var user models.UserSummary

		scanErr := rows.Scan(&user.Username, &user.FirstName, &user.LastName, &user.Phone)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "userRepository.GetAllUsers").
				Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		users = append(users, user)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "userRepository.GetAllUsers").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}

// TouchLastLogin records the moment of a successful login and returns the
// new last_login_at value.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrUserNotFound].
func (r *userRepository) TouchLastLogin(ctx context.Context, username string) (time.Time, error) {
	log := logger.FromContext(ctx)

	var lastLoginAt time.Time
	row := r.db.QueryRowContext(ctx, touchLastLogin, username)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.TouchLastLogin").Msg("error: row is nil")
		return time.Time{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&lastLoginAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.TouchLastLogin").Msg("error: scanning error")
		return time.Time{}, err
	}

	return lastLoginAt, nil
}
