package catalog

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Styt0/airwave-aggregator/internal/data"
	"github.com/Styt0/airwave-aggregator/internal/model"
	"github.com/Styt0/airwave-aggregator/internal/store"
)

// Service aggregates the static datasets with the persisted user-added
// records and owns the add-frequency and favorite flows.
type Service struct {
	store store.Store
}

// NewService creates an aggregator backed by the given store.
func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// GetAllFrequencies returns the aggregated collection: every static dataset
// in fixed order, followed by the persisted user-added records.
func (s *Service) GetAllFrequencies() ([]model.FrequencyRecord, error) {
	custom, err := s.store.CustomRecords()
	if err != nil {
		return nil, errors.Wrap(err, "load custom records")
	}
	return append(data.All(), custom...), nil
}

// Favorites returns the persisted favorite id list.
func (s *Service) Favorites() ([]string, error) {
	ids, err := s.store.Favorites()
	if err != nil {
		return nil, errors.Wrap(err, "load favorites")
	}
	return ids, nil
}

// ToggleFavorite flips id's favorite membership and returns the resulting
// list. Ids that resolve to no record are legal; they stay inert.
func (s *Service) ToggleFavorite(id string) ([]string, error) {
	ids, err := s.store.ToggleFavorite(id)
	if err != nil {
		return nil, errors.Wrapf(err, "toggle favorite %s", id)
	}
	return ids, nil
}

// AddFrequency builds a record from input, persists it and returns it. The
// record gets a fresh id and starts with no observed activity regardless of
// the input. The durable write is not transactional with any in-memory
// snapshot held by the caller; a reload re-reads the persisted truth.
func (s *Service) AddFrequency(input model.NewFrequencyInput) (model.FrequencyRecord, error) {
	rec := model.FrequencyRecord{
		ID:             uuid.NewString(),
		Frequency:      input.Frequency,
		Name:           input.Name,
		Description:    input.Description,
		Category:       input.Category,
		Location:       input.Location,
		ActivityStatus: model.ActivityNone,
		LastActivity:   nil,
		Mode:           input.Mode,
		Source:         input.Source,
		Schedule:       input.Schedule,
		Language:       input.Language,
		Repeater:       input.Repeater,
		Airport:        input.Airport,
		Aprs:           input.Aprs,
	}
	if err := s.store.AddCustomRecord(rec); err != nil {
		return model.FrequencyRecord{}, errors.Wrap(err, "persist new frequency")
	}
	return rec, nil
}
