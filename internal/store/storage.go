package store

import (
	"context"

	"github.com/MaulanaR/zendash/internal/config"
	"github.com/MaulanaR/zendash/internal/logger"
)

// NewStorage returns the best available [Storage] for the given settings.
//
// It prefers the SQLite backend; when the database cannot be opened or
// migrated it silently substitutes the in-memory store. No error ever
// reaches the caller: persistence being unavailable is a degradation, not a
// failure, and the dashboard must keep working either way.
func NewStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) Storage {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "NewStorage").
			Str("path", cfg.DB.Path).
			Msg("sqlite unavailable, falling back to in-memory storage")
		return NewMemoryStorage()
	}

	if err = db.Migrate(); err != nil {
		log.Warn().Err(err).
			Str("func", "NewStorage").
			Str("path", cfg.DB.Path).
			Msg("migration failed, falling back to in-memory storage")
		db.Close()
		return NewMemoryStorage()
	}

	return NewSQLiteStorage(db, log)
}
