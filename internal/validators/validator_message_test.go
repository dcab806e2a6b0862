// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-messagely/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMessage() models.Message {
	return models.Message{
		FromUsername: "test1",
		ToUsername:   "test2",
		Body:         "hello",
	}
}

func TestNewMessageValidator(t *testing.T) {
	v := NewMessageValidator()
	require.NotNil(t, v)
}

func TestMessageValidator_Dispatch(t *testing.T) {
	v := NewMessageValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, 42)
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("value and pointer are both accepted", func(t *testing.T) {
		message := validMessage()
		assert.NoError(t, v.Validate(ctx, message))
		assert.NoError(t, v.Validate(ctx, &message))
	})

	t.Run("unknown field", func(t *testing.T) {
		err := v.Validate(ctx, validMessage(), "no-such-field")
		require.ErrorIs(t, err, ErrUnknownField)
	})
}

func TestMessageValidator_AllFields(t *testing.T) {
	v := NewMessageValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.Message)
		wantErr error
	}{
		{name: "missing sender", mutate: func(m *models.Message) { m.FromUsername = "" }, wantErr: ErrEmptySender},
		{name: "missing recipient", mutate: func(m *models.Message) { m.ToUsername = "" }, wantErr: ErrEmptyRecipient},
		{name: "missing body", mutate: func(m *models.Message) { m.Body = "" }, wantErr: ErrEmptyBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message := validMessage()
			tt.mutate(&message)
			assert.ErrorIs(t, v.Validate(ctx, message), tt.wantErr)
		})
	}
}
