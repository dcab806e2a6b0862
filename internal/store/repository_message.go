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

// messageRepository is the PostgreSQL-backed implementation of
// [MessageRepository]. It executes all message operations against the
// "messages" table, joining the "users" table to embed sender and recipient
// profiles where the operation calls for them.
type messageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMessageRepository constructs a [MessageRepository] backed by the
// provided database connection and logger.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMessage inserts a message and returns it with the server-assigned
// id and sent_at populated.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrUserNotFound]
//     (the recipient or sender does not exist).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *messageRepository) CreateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateMessageQuery(message)
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.CreateMessage").
			Str("to_username", message.ToUsername).
			Msg("failed to create query")
		return models.Message{}, wrapBuildError(err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*messageRepository.CreateMessage").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Message{}, ErrUserNotFound
		default:
			return models.Message{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&message.ID, &message.SentAt); err != nil {
		log.Err(err).Str("func", "*messageRepository.CreateMessage").Msg("error: scanning error")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Message{}, ErrUserNotFound
		}

		return models.Message{}, err
	}

	return message, nil
}

// GetMessage returns one message with both the sender's and the recipient's
// public profiles embedded. FromUsername/ToUsername are left empty since the
// profiles carry the usernames.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrMessageNotFound].
func (r *messageRepository) GetMessage(ctx context.Context, id int64) (models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetMessageQuery(id)
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.GetMessage").
			Int64("message_id", id).
			Msg("failed to create query")
		return models.Message{}, wrapBuildError(err)
	}

	var message models.Message
	var fromUser, toUser models.UserSummary

	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*messageRepository.GetMessage").Msg("error: row is nil")
		return models.Message{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	scanErr := row.Scan(
		&message.ID,
		&message.Body,
		&message.SentAt,
		&message.ReadAt,
		&fromUser.Username,
		&fromUser.FirstName,
		&fromUser.LastName,
		&fromUser.Phone,
		&toUser.Username,
		&toUser.FirstName,
		&toUser.LastName,
		&toUser.Phone,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Message{}, ErrMessageNotFound
		}

		log.Err(scanErr).
			Str("func", "*messageRepository.GetMessage").
			Int64("message_id", id).
			Msg("error: scanning error")
		return models.Message{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	message.FromUser = &fromUser
	message.ToUser = &toUser

	return message, nil
}

// GetInboundMessages returns all messages addressed to username, each with
// the sender's public profile embedded, ordered by id.
func (r *messageRepository) GetInboundMessages(ctx context.Context, username string) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInboundMessagesQuery(username)
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.GetInboundMessages").
			Str("username", username).
			Msg("failed to create query")
		return nil, wrapBuildError(err)
	}

	return r.queryMessages(ctx, "messageRepository.GetInboundMessages", query, args, func(message *models.Message, user *models.UserSummary) {
		message.FromUser = user
	})
}

// GetOutboundMessages returns all messages sent by username, each with the
// recipient's public profile embedded, ordered by id.
func (r *messageRepository) GetOutboundMessages(ctx context.Context, username string) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildOutboundMessagesQuery(username)
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.GetOutboundMessages").
			Str("username", username).
			Msg("failed to create query")
		return nil, wrapBuildError(err)
	}

	return r.queryMessages(ctx, "messageRepository.GetOutboundMessages", query, args, func(message *models.Message, user *models.UserSummary) {
		message.ToUser = user
	})
}

// queryMessages runs a listing query whose rows carry message columns
// followed by one joined user profile, and attaches the profile to each
// message via the attach callback.
func (r *messageRepository) queryMessages(ctx context.Context, funcName, query string, args []any, attach func(*models.Message, *models.UserSummary)) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.db.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", funcName).
			Msg("failed to execute query for listing messages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	messages := make([]models.Message, 0, 50)

	for rows.Next() {
		var message models.Message
		var user models.UserSummary

		scanErr := rows.Scan(
			&message.ID,
			&message.Body,
			&message.SentAt,
			&message.ReadAt,
			&user.Username,
			&user.FirstName,
			&user.LastName,
			&user.Phone,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", funcName).
				Msg("failed to scan message row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		attach(&message, &user)
		messages = append(messages, message)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", funcName).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return messages, nil
}

// MarkMessageRead stamps read_at for the given message and returns the
// effective timestamp. A message that was already read keeps its original
// timestamp, so repeated calls are safe.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrMessageNotFound].
func (r *messageRepository) MarkMessageRead(ctx context.Context, id int64) (time.Time, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildMarkMessageReadQuery(id)
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.MarkMessageRead").
			Int64("message_id", id).
			Msg("failed to create query")
		return time.Time{}, wrapBuildError(err)
	}

	var readAt time.Time
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*messageRepository.MarkMessageRead").Msg("error: row is nil")
		return time.Time{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&readAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, ErrMessageNotFound
		}

		log.Err(err).
			Str("func", "*messageRepository.MarkMessageRead").
			Int64("message_id", id).
			Msg("error: scanning error")
		return time.Time{}, err
	}

	return readAt, nil
}
