package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-messagely/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns the record with
	// server-assigned fields (JoinAt) populated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the full user record, including the
	// password hash, for credential verification and detail views.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// GetAllUsers returns every user's public profile, ordered by username.
	GetAllUsers(ctx context.Context) ([]models.UserSummary, error)

	// TouchLastLogin sets last_login_at to the current time and returns
	// the new value.
	TouchLastLogin(ctx context.Context, username string) (time.Time, error)
}

// MessageRepository is the data-access contract for messages.
type MessageRepository interface {
	// CreateMessage inserts a message and returns it with the generated
	// id and sent_at populated.
	CreateMessage(ctx context.Context, message models.Message) (models.Message, error)

	// GetMessage returns one message with both the sender's and the
	// recipient's public profiles embedded.
	GetMessage(ctx context.Context, id int64) (models.Message, error)

	// GetInboundMessages returns all messages addressed to username,
	// each with the sender's public profile embedded.
	GetInboundMessages(ctx context.Context, username string) ([]models.Message, error)

	// GetOutboundMessages returns all messages sent by username,
	// each with the recipient's public profile embedded.
	GetOutboundMessages(ctx context.Context, username string) ([]models.Message, error)

	// MarkMessageRead sets read_at for the message if it is still unread
	// and returns the effective read_at timestamp. Marking an already-read
	// message is a no-op that returns the existing timestamp.
	MarkMessageRead(ctx context.Context, id int64) (time.Time, error)
}
