package store

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/storage_mock.go -package=mock

// Storage is the key-value persistence adapter behind the dashboard state.
//
// Implementations must behave identically whether the privileged SQLite
// backend or the in-memory fallback is in use: callers never learn which one
// they got. Values are opaque JSON documents keyed by the snapshot key names
// in [models].
type Storage interface {
	// Load returns the stored values for the requested keys. Keys with no
	// stored value are simply absent from the returned map; that is not an
	// error.
	Load(ctx context.Context, keys ...string) (map[string]json.RawMessage, error)

	// Save upserts the given entries. Entries not mentioned are left
	// untouched. Save returns only after the data is durably written, so
	// callers can order re-renders after persistence.
	Save(ctx context.Context, entries map[string]json.RawMessage) error
}
