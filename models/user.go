package models

import "time"

// User represents a registered account. The username is the primary
// identifier and is immutable after registration.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// Username is the globally unique account identifier.
	Username string `json:"username"`

	// Password stores the bcrypt hash of the user's password.
	// It is never serialized and never leaves the store/service layers.
	Password string `json:"-"`

	// FirstName is the user's given name. Non-sensitive, shown in profiles.
	FirstName string `json:"first_name"`

	// LastName is the user's family name. Non-sensitive, shown in profiles.
	LastName string `json:"last_name"`

	// Phone is the user's contact phone number in E.164-ish free form.
	Phone string `json:"phone"`

	// JoinAt is the timestamp the account was created. Set by the database.
	JoinAt time.Time `json:"join_at"`

	// LastLoginAt is the timestamp of the most recent successful login.
	// Nil (JSON null) until the user logs in for the first time.
	LastLoginAt *time.Time `json:"last_login_at"`
}

// UserSummary is the public subset of a user's fields, safe to embed in
// user listings and message payloads.
type UserSummary struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
