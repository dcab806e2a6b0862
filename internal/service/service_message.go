package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/store"
	"github.com/MKhiriev/go-messagely/internal/validators"
	"github.com/MKhiriev/go-messagely/models"
)

// messageService is the concrete implementation of MessageService.
// It enforces the participant rule: a message is visible to its sender and
// its recipient only, and only the recipient may mark it read.
type messageService struct {
	messageRepository store.MessageRepository
	validator         validators.Validator
	notifications     NotificationQueue
	logger            *logger.Logger
}

// NewMessageService constructs a MessageService backed by the given
// repository. notifications may not be nil; use a no-op queue when
// notifications are disabled.
func NewMessageService(messageRepository store.MessageRepository, notifications NotificationQueue, logger *logger.Logger) MessageService {
	return &messageService{
		messageRepository: messageRepository,
		validator:         validators.NewMessageValidator(),
		notifications:     notifications,
		logger:            logger,
	}
}

// SendMessage persists a new message and enqueues a recipient notification.
//
// Returns the created message (with server-assigned ID and SentAt) or:
//   - ErrInvalidDataProvided if the recipient or the body is empty.
//   - A wrapped store.ErrUserNotFound if the recipient does not exist.
func (m *messageService) SendMessage(ctx context.Context, message models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	if err := m.validator.Validate(ctx, message); err != nil {
		log.Error().
			Err(err).
			Str("from_username", message.FromUsername).
			Str("to_username", message.ToUsername).
			Msg("invalid message data provided")
		return models.Message{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := m.messageRepository.CreateMessage(ctx, message)
	if err != nil {
		log.Err(err).
			Str("from_username", message.FromUsername).
			Str("to_username", message.ToUsername).
			Msg("message creation ended with error")
		return models.Message{}, fmt.Errorf("message creation ended with error: %w", err)
	}

	m.notifications.Enqueue(models.MessageNotification{
		MessageID:    created.ID,
		FromUsername: created.FromUsername,
		ToUsername:   created.ToUsername,
		SentAt:       created.SentAt,
	})

	return created, nil
}

// GetMessage returns one message with both participant profiles embedded.
//
// Returns:
//   - A wrapped store.ErrMessageNotFound if no such message exists.
//   - ErrMessageAccessDenied if requester is neither the sender nor the
//     recipient.
func (m *messageService) GetMessage(ctx context.Context, requester string, id int64) (models.Message, error) {
	log := logger.FromContext(ctx)

	message, err := m.messageRepository.GetMessage(ctx, id)
	if err != nil {
		log.Err(err).Int64("message_id", id).Msg("message lookup ended with error")
		return models.Message{}, fmt.Errorf("message lookup ended with error: %w", err)
	}

	if !isParticipant(message, requester) {
		log.Warn().
			Int64("message_id", id).
			Str("requester", requester).
			Msg("requester is not a participant of the message")
		return models.Message{}, ErrMessageAccessDenied
	}

	return message, nil
}

// MessagesTo lists messages addressed to username, each with the sender's
// profile embedded.
func (m *messageService) MessagesTo(ctx context.Context, username string) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	messages, err := m.messageRepository.GetInboundMessages(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("listing inbound messages ended with error")
		return nil, fmt.Errorf("listing inbound messages ended with error: %w", err)
	}

	return messages, nil
}

// MessagesFrom lists messages sent by username, each with the recipient's
// profile embedded.
func (m *messageService) MessagesFrom(ctx context.Context, username string) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	messages, err := m.messageRepository.GetOutboundMessages(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("listing outbound messages ended with error")
		return nil, fmt.Errorf("listing outbound messages ended with error: %w", err)
	}

	return messages, nil
}

// MarkMessageRead stamps the message as read on behalf of requester.
//
// Returns:
//   - A wrapped store.ErrMessageNotFound if no such message exists.
//   - ErrMessageAccessDenied if requester is not the recipient. The sender
//     cannot mark their own message read.
func (m *messageService) MarkMessageRead(ctx context.Context, requester string, id int64) (models.MessageRead, error) {
	log := logger.FromContext(ctx)

	message, err := m.messageRepository.GetMessage(ctx, id)
	if err != nil {
		log.Err(err).Int64("message_id", id).Msg("message lookup ended with error")
		return models.MessageRead{}, fmt.Errorf("message lookup ended with error: %w", err)
	}

	if message.ToUser == nil || message.ToUser.Username != requester {
		log.Warn().
			Int64("message_id", id).
			Str("requester", requester).
			Msg("requester is not the recipient of the message")
		return models.MessageRead{}, ErrMessageAccessDenied
	}

	readAt, err := m.messageRepository.MarkMessageRead(ctx, id)
	if err != nil {
		log.Err(err).Int64("message_id", id).Msg("marking message read ended with error")
		return models.MessageRead{}, fmt.Errorf("marking message read ended with error: %w", err)
	}

	return models.MessageRead{ID: id, ReadAt: &readAt}, nil
}

func isParticipant(message models.Message, username string) bool {
	if message.FromUser != nil && message.FromUser.Username == username {
		return true
	}
	if message.ToUser != nil && message.ToUser.Username == username {
		return true
	}
	return false
}
