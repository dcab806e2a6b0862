package models

import "time"

// Message represents a single user-to-user message.
//
// Depending on the route, a message is serialized with different
// companions: inbound listings embed FromUser, outbound listings embed
// ToUser, and the detail view embeds both. The omitempty tags keep the
// unused side out of the payload.
type Message struct {
	// ID is the server-assigned unique message identifier.
	ID int64 `json:"id"`

	// FromUsername references the sending user. Omitted from listing
	// payloads where the sender is embedded as FromUser instead.
	FromUsername string `json:"from_username,omitempty"`

	// ToUsername references the receiving user.
	ToUsername string `json:"to_username,omitempty"`

	// Body is the message text. Always non-empty for persisted messages.
	Body string `json:"body"`

	// SentAt is set by the database at creation time.
	SentAt time.Time `json:"sent_at"`

	// ReadAt is nil until the recipient marks the message read.
	// The transition null -> timestamp happens at most once.
	ReadAt *time.Time `json:"read_at"`

	// FromUser is the sender's public profile, embedded in inbound
	// listings and the detail view.
	FromUser *UserSummary `json:"from_user,omitempty"`

	// ToUser is the recipient's public profile, embedded in outbound
	// listings and the detail view.
	ToUser *UserSummary `json:"to_user,omitempty"`
}

// MessageRead is the minimal view of a message returned after it has
// been marked read.
type MessageRead struct {
	ID     int64      `json:"id"`
	ReadAt *time.Time `json:"read_at"`
}

// MessageNotification is the payload handed to the outbound notifier
// when a new message is created.
type MessageNotification struct {
	MessageID    int64     `json:"message_id"`
	FromUsername string    `json:"from_username"`
	ToUsername   string    `json:"to_username"`
	SentAt       time.Time `json:"sent_at"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}
