package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MaulanaR/zendash/internal/logger"
)

const stateTable = "dashboard_state"

// qb builds all state queries with SQLite "?" placeholders.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// sqliteStorage is the privileged [Storage] implementation backed by a
// single key-value table in the local SQLite database.
type sqliteStorage struct {
	*DB
	logger *logger.Logger
}

// NewSQLiteStorage constructs a [Storage] backed by the provided database
// connection and logger.
func NewSQLiteStorage(db *DB, logger *logger.Logger) Storage {
	return &sqliteStorage{
		DB:     db,
		logger: logger,
	}
}

func (s *sqliteStorage) Load(ctx context.Context, keys ...string) (map[string]json.RawMessage, error) {
	log := logger.FromContext(ctx)

	if len(keys) == 0 {
		return map[string]json.RawMessage{}, nil
	}

	query, args, err := qb.
		Select("key", "value").
		From(stateTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "sqliteStorage.Load").
			Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sqliteStorage.Load").
			Int("keys", len(keys)).
			Msg("failed to execute query for loading dashboard state")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make(map[string]json.RawMessage, len(keys))

	for rows.Next() {
		var key, value string
		if scanErr := rows.Scan(&key, &value); scanErr != nil {
			log.Err(scanErr).
				Str("func", "sqliteStorage.Load").
				Msg("failed to scan state row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		values[key] = json.RawMessage(value)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "sqliteStorage.Load").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, rowsErr)
	}

	return values, nil
}

func (s *sqliteStorage) Save(ctx context.Context, entries map[string]json.RawMessage) error {
	log := logger.FromContext(ctx)

	if len(entries) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "sqliteStorage.Save").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for key, value := range entries {
		query, args, buildErr := qb.
			Insert(stateTable).
			Columns("key", "value", "updated_at").
			Values(key, string(value), now).
			Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
			ToSql()
		if buildErr != nil {
			log.Err(buildErr).
				Str("func", "sqliteStorage.Save").
				Str("key", key).
				Msg("failed to build upsert query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			log.Err(execErr).
				Str("func", "sqliteStorage.Save").
				Str("key", key).
				Msg("failed to execute upsert for dashboard state")
			return fmt.Errorf("failed to save state key %s: %w", key, execErr)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "sqliteStorage.Save").
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
