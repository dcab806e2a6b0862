package models

// TokenResponse carries a freshly issued JWT back to the client after
// registration or login.
type TokenResponse struct {
	Token string `json:"token"`
}

// UsersResponse is the envelope of GET /users.
type UsersResponse struct {
	// Users holds every registered user's public profile,
	// ordered by username.
	Users []UserSummary `json:"users"`
}

// UserResponse is the envelope of GET /users/{username}.
type UserResponse struct {
	User User `json:"user"`
}

// MessagesResponse is the envelope of the inbound and outbound
// message listings.
type MessagesResponse struct {
	Messages []Message `json:"messages"`
}

// MessageResponse is the envelope of POST /messages and GET /messages/{id}.
type MessageResponse struct {
	Message Message `json:"message"`
}

// MessageReadResponse is the envelope of POST /messages/{id}/read.
type MessageReadResponse struct {
	Message MessageRead `json:"message"`
}

// ErrorResponse is the minimal JSON error body returned on every
// failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
