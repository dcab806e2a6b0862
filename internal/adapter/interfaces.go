package adapter

import (
	"context"

	"github.com/MKhiriev/go-messagely/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// MessageNotifier delivers new-message events to an external system,
// typically an SMS gateway or a webhook consumer.
type MessageNotifier interface {
	// NotifyNewMessage pushes a single notification. Implementations must
	// honour ctx cancellation and report delivery failures via error.
	NotifyNewMessage(ctx context.Context, notification models.MessageNotification) error
}
