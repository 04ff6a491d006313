// Package session owns the live catalog snapshot: the aggregated record
// collection with periodically re-derived activity status, the user's
// favorite set, and the location tri-state.
package session

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Styt0/airwave-aggregator/internal/catalog"
	"github.com/Styt0/airwave-aggregator/internal/locate"
	"github.com/Styt0/airwave-aggregator/internal/model"
)

// Defaults for the refresh cadence and location acquisition bound.
const (
	DefaultRefreshInterval = 15 * time.Second
	DefaultLocateTimeout   = 5 * time.Second
)

// Session holds the in-memory state between the catalog service and the
// HTTP surface. Snapshots are copy-on-write: the refresh loop and every
// mutation replace the whole collection, so a captured slice stays valid.
type Session struct {
	catalog         *catalog.Service
	provider        locate.Provider
	refreshInterval time.Duration
	locateTimeout   time.Duration

	mu          sync.Mutex
	records     []model.FrequencyRecord
	location    model.UserLocation
	locationGen uint64

	stopChan chan struct{}
	wg       sync.WaitGroup
}

// Option adjusts a Session.
type Option func(*Session)

// WithRefreshInterval overrides the activity refresh cadence.
func WithRefreshInterval(d time.Duration) Option {
	return func(s *Session) { s.refreshInterval = d }
}

// WithLocateTimeout overrides the location acquisition bound.
func WithLocateTimeout(d time.Duration) Option {
	return func(s *Session) { s.locateTimeout = d }
}

// New loads the aggregated collection and returns a session over it.
// Call Start to begin the periodic activity refresh.
func New(svc *catalog.Service, provider locate.Provider, opts ...Option) (*Session, error) {
	s := &Session{
		catalog:         svc,
		provider:        provider,
		refreshInterval: DefaultRefreshInterval,
		locateTimeout:   DefaultLocateTimeout,
		stopChan:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the aggregated collection from the catalog, replacing the
// snapshot. Persisted records written by an earlier session appear here.
func (s *Session) Reload() error {
	records, err := s.catalog.GetAllFrequencies()
	if err != nil {
		return err
	}
	records = catalog.UpdateActivityStatus(records)
	s.mu.Lock()
	s.records = records
	s.mu.Unlock()
	return nil
}

// Start begins the periodic activity-status refresh.
func (s *Session) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.refreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-s.stopChan:
				return
			case <-ticker.C:
				s.refresh()
			}
		}
	}()
	log.WithField("interval", s.refreshInterval).Info("session: activity refresh started")
}

// Stop halts the refresh loop and waits for in-flight work.
func (s *Session) Stop() {
	close(s.stopChan)
	s.wg.Wait()
}

// refresh re-derives activity status over a new collection. Only the status
// field changes; concurrent mutations of other state are never lost.
func (s *Session) refresh() {
	s.mu.Lock()
	s.records = catalog.UpdateActivityStatus(s.records)
	s.mu.Unlock()
}

// Records returns the current snapshot. Callers must not mutate it.
func (s *Session) Records() []model.FrequencyRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records
}

// Favorites returns the persisted favorite id list.
func (s *Session) Favorites() ([]string, error) {
	return s.catalog.Favorites()
}

// ToggleFavorite flips id's favorite membership and returns the new list.
func (s *Session) ToggleFavorite(id string) ([]string, error) {
	return s.catalog.ToggleFavorite(id)
}

// FavoriteRecords returns the favorited subset of the current snapshot.
func (s *Session) FavoriteRecords() ([]model.FrequencyRecord, error) {
	ids, err := s.catalog.Favorites()
	if err != nil {
		return nil, err
	}
	return catalog.Favorites(s.Records(), ids), nil
}

// AddFrequency persists a new record and merges it into the snapshot.
func (s *Session) AddFrequency(input model.NewFrequencyInput) (model.FrequencyRecord, error) {
	rec, err := s.catalog.AddFrequency(input)
	if err != nil {
		return model.FrequencyRecord{}, err
	}
	s.mu.Lock()
	merged := make([]model.FrequencyRecord, 0, len(s.records)+1)
	merged = append(merged, s.records...)
	merged = append(merged, rec)
	s.records = merged
	s.mu.Unlock()
	return rec, nil
}

// Location returns the current location tri-state.
func (s *Session) Location() model.UserLocation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.location
}

// SetManualLocation overrides the user location with fixed coordinates,
// superseding any acquisition still in flight.
func (s *Session) SetManualLocation(c model.Coordinates) model.UserLocation {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locationGen++
	s.location = model.UserLocation{Coordinates: &c}
	return s.location
}

// RequestLocation starts a provider acquisition and returns the loading
// state immediately. Resolution follows last-write-wins: if a manual
// override or a newer request lands first, the stale result is dropped.
func (s *Session) RequestLocation() model.UserLocation {
	s.mu.Lock()
	s.locationGen++
	gen := s.locationGen
	s.location.Loading = true
	s.location.Error = ""
	state := s.location
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.locateTimeout)
		defer cancel()
		coords, err := s.provider.Locate(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.locationGen {
			return
		}
		if err != nil {
			if ctx.Err() == context.DeadlineExceeded {
				err = locate.ErrTimeout
			}
			log.WithError(err).Warning("session: location acquisition failed")
			s.location = model.UserLocation{Error: locate.ErrorMessage(err)}
			return
		}
		s.location = model.UserLocation{Coordinates: &coords}
	}()

	return state
}
