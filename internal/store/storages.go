package store

import (
	"context"

	"github.com/MKhiriev/go-messagely/internal/config"
	"github.com/MKhiriev/go-messagely/internal/logger"
)

// Storages aggregates every repository backed by the shared database
// connection.
type Storages struct {
	UserRepository    UserRepository
	MessageRepository MessageRepository

	db *DB
}

// NewStorages connects to the database described by cfg, applies pending
// migrations, and constructs all repositories over the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Msg("database migration failed")
		return nil, err
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		MessageRepository: NewMessageRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the underlying database connection pool. Called once at
// process shutdown.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
