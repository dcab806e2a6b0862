package service

import (
	"github.com/MKhiriev/go-messagely/internal/config"
	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/store"
)

// Services aggregates every business-logic service of the application.
type Services struct {
	AuthService    AuthService
	UserService    UserService
	MessageService MessageService
}

// NewServices wires all services over the shared storages. The notification
// queue receives a new-message event for every successfully sent message.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, notifications NotificationQueue, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.Auth, logger),
		UserService:    NewUserService(storages.UserRepository, logger),
		MessageService: NewMessageService(storages.MessageRepository, notifications, logger),
	}
}
