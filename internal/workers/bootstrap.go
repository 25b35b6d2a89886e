package workers

import (
	"context"
	"encoding/json"

	"github.com/MaulanaR/zendash/internal/logger"
	"github.com/MaulanaR/zendash/internal/store"
	"github.com/MaulanaR/zendash/models"
)

// bootstrapWorker seeds the initial dashboard state on a fresh install.
// Keys that already hold a value are left untouched, so it is safe to run on
// every start. It seeds from the same defaults the in-app load falls back
// to: both paths produce an identical first-run state.
type bootstrapWorker struct {
	storage store.Storage
	logger  *logger.Logger
}

func NewBootstrapWorker(storage store.Storage, log *logger.Logger) Worker {
	return &bootstrapWorker{storage: storage, logger: log}
}

func (b *bootstrapWorker) Run(ctx context.Context) {
	log := b.logger.GetChildLogger()

	existing, err := b.storage.Load(ctx, models.StorageKeyFolders, models.StorageKeySettings)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "bootstrapWorker.Run").
			Msg("failed to read existing state, skipping bootstrap")
		return
	}

	entries := make(map[string]json.RawMessage, 2)

	if _, ok := existing[models.StorageKeyFolders]; !ok {
		raw, marshalErr := json.Marshal(models.DefaultFolders())
		if marshalErr != nil {
			log.Error().Err(marshalErr).
				Str("func", "bootstrapWorker.Run").
				Msg("failed to marshal default folders")
			return
		}
		entries[models.StorageKeyFolders] = raw
	}

	if _, ok := existing[models.StorageKeySettings]; !ok {
		raw, marshalErr := json.Marshal(models.DefaultSettings())
		if marshalErr != nil {
			log.Error().Err(marshalErr).
				Str("func", "bootstrapWorker.Run").
				Msg("failed to marshal default settings")
			return
		}
		entries[models.StorageKeySettings] = raw
	}

	if len(entries) == 0 {
		log.Debug().
			Str("func", "bootstrapWorker.Run").
			Msg("state already present, nothing to seed")
		return
	}

	if err = b.storage.Save(ctx, entries); err != nil {
		log.Warn().Err(err).
			Str("func", "bootstrapWorker.Run").
			Int("keys", len(entries)).
			Msg("failed to seed initial state")
		return
	}

	log.Info().
		Str("func", "bootstrapWorker.Run").
		Int("keys", len(entries)).
		Msg("seeded initial dashboard state")
}
