package store

import (
	"sync"

	"github.com/Styt0/airwave-aggregator/internal/model"
)

// MemoryStore is a non-durable Store for tests and throwaway runs.
type MemoryStore struct {
	mu        sync.Mutex
	favorites []string
	custom    []model.FrequencyRecord
}

var _ Store = (*MemoryStore)(nil)

// NewMemory returns an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{}
}

// Close is a no-op.
func (m *MemoryStore) Close() error { return nil }

// BackendType returns the storage backend name.
func (m *MemoryStore) BackendType() string { return "Memory" }

// Favorites returns the favorite id list.
func (m *MemoryStore) Favorites() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.favorites...), nil
}

// ToggleFavorite toggles id membership and returns the resulting list.
func (m *MemoryStore) ToggleFavorite(id string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.favorites = toggled(m.favorites, id)
	return append([]string{}, m.favorites...), nil
}

// CustomRecords returns the user-added records.
func (m *MemoryStore) CustomRecords() ([]model.FrequencyRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.FrequencyRecord{}, m.custom...), nil
}

// AddCustomRecord appends rec to the user-added collection.
func (m *MemoryStore) AddCustomRecord(rec model.FrequencyRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.custom = append(m.custom, rec)
	return nil
}
