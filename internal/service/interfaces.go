package service

import (
	"context"

	"github.com/MKhiriev/go-messagely/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles account registration, credential verification, and
// JWT token lifecycle.
type AuthService interface {
	// Register creates a new account from the given user, hashing the
	// plain-text password before persistence.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login verifies the given credentials and stamps last_login_at on
	// success.
	Login(ctx context.Context, user models.User) (models.User, error)

	// CreateToken issues a signed JWT whose subject is the user's username.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService exposes read operations over registered accounts.
type UserService interface {
	// GetAllUsers lists every user's public profile.
	GetAllUsers(ctx context.Context) ([]models.UserSummary, error)

	// GetUser returns the full profile of one user.
	GetUser(ctx context.Context, username string) (models.User, error)
}

// MessageService handles sending, reading, and listing messages, enforcing
// that only the participants of a message may see it.
type MessageService interface {
	// SendMessage persists a new message and enqueues a notification for
	// the recipient.
	SendMessage(ctx context.Context, message models.Message) (models.Message, error)

	// GetMessage returns one message. Only the sender and the recipient
	// may retrieve it; anyone else gets ErrMessageAccessDenied.
	GetMessage(ctx context.Context, requester string, id int64) (models.Message, error)

	// MessagesTo lists messages addressed to username.
	MessagesTo(ctx context.Context, username string) ([]models.Message, error)

	// MessagesFrom lists messages sent by username.
	MessagesFrom(ctx context.Context, username string) ([]models.Message, error)

	// MarkMessageRead stamps the message as read. Only the recipient may
	// do this; repeated calls keep the original timestamp.
	MarkMessageRead(ctx context.Context, requester string, id int64) (models.MessageRead, error)
}

// NotificationQueue accepts new-message notifications for asynchronous
// delivery. Implemented by the background notification dispatcher.
type NotificationQueue interface {
	Enqueue(notification models.MessageNotification)
}
