package store

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-messagely/models"
)

// Raw queries for the "users" table. Each mutating query carries a RETURNING
// clause so the repository hands back the canonical database representation.
const (
	createUser = `INSERT INTO users (username, password, first_name, last_name, phone)
VALUES ($1, $2, $3, $4, $5)
RETURNING username, password, first_name, last_name, phone, join_at, last_login_at;`

	findUserByUsername = `SELECT username, password, first_name, last_name, phone, join_at, last_login_at
FROM users
WHERE username = $1;`

	touchLastLogin = `UPDATE users
SET last_login_at = now()
WHERE username = $1
RETURNING last_login_at;`
)

// psql is the shared statement builder configured for PostgreSQL positional
// placeholders ($1, $2, ...).
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// buildGetAllUsersQuery returns the query listing every user's public
// profile, ordered by username for stable pagination-free output.
func buildGetAllUsersQuery() (string, []any, error) {
	return psql.
		Select("username", "first_name", "last_name", "phone").
		From(models.User{}.TableName()).
		OrderBy("username").
		ToSql()
}

// buildCreateMessageQuery inserts a message and returns the server-assigned
// id and sent_at timestamp.
func buildCreateMessageQuery(message models.Message) (string, []any, error) {
	return psql.
		Insert(models.Message{}.TableName()).
		Columns("from_username", "to_username", "body").
		Values(message.FromUsername, message.ToUsername, message.Body).
		Suffix("RETURNING id, sent_at").
		ToSql()
}

// buildGetMessageQuery selects one message joined with both the sender's and
// the recipient's public profiles.
func buildGetMessageQuery(id int64) (string, []any, error) {
	return psql.
		Select(
			"m.id", "m.body", "m.sent_at", "m.read_at",
			"f.username", "f.first_name", "f.last_name", "f.phone",
			"t.username", "t.first_name", "t.last_name", "t.phone",
		).
		From(models.Message{}.TableName() + " AS m").
		Join("users AS f ON f.username = m.from_username").
		Join("users AS t ON t.username = m.to_username").
		Where(squirrel.Eq{"m.id": id}).
		ToSql()
}

// buildInboundMessagesQuery selects every message addressed to username,
// each joined with the sender's public profile. Ordered by id so messages
// appear in the order they were sent.
func buildInboundMessagesQuery(username string) (string, []any, error) {
	return psql.
		Select(
			"m.id", "m.body", "m.sent_at", "m.read_at",
			"f.username", "f.first_name", "f.last_name", "f.phone",
		).
		From(models.Message{}.TableName() + " AS m").
		Join("users AS f ON f.username = m.from_username").
		Where(squirrel.Eq{"m.to_username": username}).
		OrderBy("m.id").
		ToSql()
}

// buildOutboundMessagesQuery selects every message sent by username,
// each joined with the recipient's public profile.
func buildOutboundMessagesQuery(username string) (string, []any, error) {
	return psql.
		Select(
			"m.id", "m.body", "m.sent_at", "m.read_at",
			"t.username", "t.first_name", "t.last_name", "t.phone",
		).
		From(models.Message{}.TableName() + " AS m").
		Join("users AS t ON t.username = m.to_username").
		Where(squirrel.Eq{"m.from_username": username}).
		OrderBy("m.id").
		ToSql()
}

// buildMarkMessageReadQuery stamps read_at on first call and keeps the
// original timestamp on repeats. COALESCE makes the operation idempotent
// at the database level.
func buildMarkMessageReadQuery(id int64) (string, []any, error) {
	return psql.
		Update(models.Message{}.TableName()).
		Set("read_at", squirrel.Expr("COALESCE(read_at, now())")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING read_at").
		ToSql()
}

// wrapBuildError uniformly wraps squirrel build failures.
func wrapBuildError(err error) error {
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}
