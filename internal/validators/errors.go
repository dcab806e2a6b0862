package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername  = errors.New("username is required")
	ErrEmptyPassword  = errors.New("password is required")
	ErrEmptyFirstName = errors.New("first name is required")
	ErrEmptyLastName  = errors.New("last name is required")
	ErrEmptyPhone     = errors.New("phone is required")

	ErrEmptySender    = errors.New("sender username is required")
	ErrEmptyRecipient = errors.New("recipient username is required")
	ErrEmptyBody      = errors.New("message body is required")
)
