package models

// RegisterRequest is the JSON body of POST /auth/register.
// Password arrives in plain text over the transport and is hashed by the
// auth service before it ever reaches the store.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// LoginRequest is the JSON body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SendMessageRequest is the JSON body of POST /messages. The sender is
// taken from the authenticated identity, never from the body.
type SendMessageRequest struct {
	ToUsername string `json:"to_username"`
	Body       string `json:"body"`
}
