package validators

import (
	"context"

	"github.com/MKhiriev/go-messagely/models"
)

const (
	FieldUsername  = "username"
	FieldPassword  = "password"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldPhone     = "phone"
)

type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldFirstName, FieldLastName, FieldPhone}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if user.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		case FieldFirstName:
			if user.FirstName == "" {
				return ErrEmptyFirstName
			}
		case FieldLastName:
			if user.LastName == "" {
				return ErrEmptyLastName
			}
		case FieldPhone:
			if user.Phone == "" {
				return ErrEmptyPhone
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
