package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/store"
	"github.com/MKhiriev/go-messagely/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService backed by the given repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetAllUsers lists every user's public profile, ordered by username.
func (u *userService) GetAllUsers(ctx context.Context) ([]models.UserSummary, error) {
	log := logger.FromContext(ctx)

	users, err := u.userRepository.GetAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing users ended with error")
		return nil, fmt.Errorf("listing users ended with error: %w", err)
	}

	return users, nil
}

// GetUser returns the full profile of one user.
//
// Returns a wrapped store.ErrUserNotFound when no such account exists.
func (u *userService) GetUser(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		log.Error().Msg("empty username provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := u.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	return user, nil
}
