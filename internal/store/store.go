// Package store provides durable storage for the user's state: the favorite
// id list and the user-added frequency records.
//
// The layout mirrors the browser-origin format: two string-keyed entries,
// each holding a JSON-serialized array. Readers treat a missing key as an
// empty collection, and malformed content the same way (logged, never
// surfaced as an error).
package store

import "github.com/Styt0/airwave-aggregator/internal/model"

// Storage keys. Kept byte-compatible with the original browser storage so an
// exported localStorage dump can be imported as-is.
const (
	keyFavorites     = "radio-favorites"
	keyCustomRecords = "radio-custom-frequencies"
)

// Store defines the persistence operations. SQLite, PostgreSQL and the
// in-memory implementation all satisfy this interface.
type Store interface {
	Close() error

	// BackendType returns the name of the storage backend.
	BackendType() string

	// Favorites returns the persisted favorite id list, empty when absent.
	Favorites() ([]string, error)

	// ToggleFavorite removes id if present, appends it otherwise, persists
	// the result in a single write and returns it.
	ToggleFavorite(id string) ([]string, error)

	// CustomRecords returns the persisted user-added records, empty when absent.
	CustomRecords() ([]model.FrequencyRecord, error)

	// AddCustomRecord appends a record to the user-added collection and persists it.
	AddCustomRecord(rec model.FrequencyRecord) error
}

// toggled returns ids with id removed if present, appended otherwise.
func toggled(ids []string, id string) []string {
	out := make([]string, 0, len(ids)+1)
	found := false
	for _, v := range ids {
		if v == id {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, id)
	}
	return out
}
