package validators

import (
	"context"

	"github.com/MKhiriev/go-messagely/models"
)

const (
	FieldFromUsername = "from_username"
	FieldToUsername   = "to_username"
	FieldBody         = "body"
)

type MessageValidator struct {
}

func NewMessageValidator() Validator {
	return &MessageValidator{}
}

func (v *MessageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Message:
		return v.validateMessage(ctx, value, fields...)
	case *models.Message:
		return v.validateMessage(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *MessageValidator) validateMessage(_ context.Context, message models.Message, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFromUsername, FieldToUsername, FieldBody}
	}

	for _, f := range fields {
		switch f {
		case FieldFromUsername:
			if message.FromUsername == "" {
				return ErrEmptySender
			}
		case FieldToUsername:
			if message.ToUsername == "" {
				return ErrEmptyRecipient
			}
		case FieldBody:
			if message.Body == "" {
				return ErrEmptyBody
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
