package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Styt0/airwave-aggregator/internal/catalog"
	"github.com/Styt0/airwave-aggregator/internal/data"
	"github.com/Styt0/airwave-aggregator/internal/locate"
	"github.com/Styt0/airwave-aggregator/internal/model"
	"github.com/Styt0/airwave-aggregator/internal/store"
)

var testCoords = model.Coordinates{Latitude: 50.8503, Longitude: 4.3517}

// blockingProvider holds every Locate call until release is closed.
type blockingProvider struct {
	release chan struct{}
	coords  model.Coordinates
}

func (p *blockingProvider) Locate(ctx context.Context) (model.Coordinates, error) {
	select {
	case <-p.release:
		return p.coords, nil
	case <-ctx.Done():
		return model.Coordinates{}, ctx.Err()
	}
}

func newTestSession(t *testing.T, provider locate.Provider, opts ...Option) *Session {
	t.Helper()
	svc := catalog.NewService(store.NewMemory())
	s, err := New(svc, provider, opts...)
	require.NoError(t, err)
	return s
}

func TestNewLoadsDerivedSnapshot(t *testing.T) {
	s := newTestSession(t, locate.Static{})

	recs := s.Records()
	require.Len(t, recs, len(data.All()))
	for _, rec := range recs {
		if rec.LastActivity == nil {
			assert.Equal(t, model.ActivityNone, rec.ActivityStatus, rec.ID)
		}
	}
}

func TestAddFrequencyCopyOnWrite(t *testing.T) {
	s := newTestSession(t, locate.Static{})

	before := s.Records()
	beforeLen := len(before)

	rec, err := s.AddFrequency(model.NewFrequencyInput{
		Frequency: "145.500",
		Name:      "Simplex Calling",
		Category:  model.CategoryAmateur,
		Location:  model.Location{Name: "Ghent"},
	})
	require.NoError(t, err)

	after := s.Records()
	require.Len(t, after, beforeLen+1)
	assert.Equal(t, rec.ID, after[beforeLen].ID)

	// The previously captured snapshot is untouched.
	assert.Len(t, before, beforeLen)
}

func TestReloadPicksUpPersistedRecords(t *testing.T) {
	st := store.NewMemory()
	svc := catalog.NewService(st)
	s, err := New(svc, locate.Static{})
	require.NoError(t, err)

	// A record written behind the session's back appears after a reload.
	require.NoError(t, st.AddCustomRecord(model.FrequencyRecord{ID: "ext-1", Name: "External"}))
	require.NoError(t, s.Reload())

	recs := s.Records()
	assert.Equal(t, "ext-1", recs[len(recs)-1].ID)
}

func TestFavoriteRecords(t *testing.T) {
	s := newTestSession(t, locate.Static{})

	_, err := s.ToggleFavorite("core-2")
	require.NoError(t, err)
	_, err = s.ToggleFavorite("core-1")
	require.NoError(t, err)

	favs, err := s.FavoriteRecords()
	require.NoError(t, err)
	require.Len(t, favs, 2)
	// Snapshot order, not toggle order.
	assert.Equal(t, "core-1", favs[0].ID)
	assert.Equal(t, "core-2", favs[1].ID)
}

func TestSetManualLocation(t *testing.T) {
	s := newTestSession(t, locate.Static{})

	loc := s.SetManualLocation(testCoords)
	require.NotNil(t, loc.Coordinates)
	assert.Equal(t, testCoords, *loc.Coordinates)
	assert.False(t, loc.Loading)
	assert.Empty(t, loc.Error)
	assert.Equal(t, loc, s.Location())
}

func TestRequestLocationResolves(t *testing.T) {
	s := newTestSession(t, locate.Static{Coordinates: testCoords, Configured: true})

	state := s.RequestLocation()
	assert.True(t, state.Loading)
	assert.Empty(t, state.Error)

	assert.Eventually(t, func() bool {
		loc := s.Location()
		return loc.Coordinates != nil && *loc.Coordinates == testCoords && !loc.Loading
	}, time.Second, 10*time.Millisecond)
}

func TestRequestLocationUnavailable(t *testing.T) {
	s := newTestSession(t, locate.Static{})

	s.RequestLocation()

	assert.Eventually(t, func() bool {
		loc := s.Location()
		return !loc.Loading && loc.Error == "Location information is unavailable."
	}, time.Second, 10*time.Millisecond)
}

func TestRequestLocationTimesOut(t *testing.T) {
	p := &blockingProvider{release: make(chan struct{}), coords: testCoords}
	s := newTestSession(t, p, WithLocateTimeout(20*time.Millisecond))

	s.RequestLocation()

	assert.Eventually(t, func() bool {
		loc := s.Location()
		return !loc.Loading && loc.Error == "The request to get your location timed out."
	}, time.Second, 10*time.Millisecond)
}

func TestManualOverrideDropsInFlightResult(t *testing.T) {
	p := &blockingProvider{release: make(chan struct{}), coords: testCoords}
	s := newTestSession(t, p, WithLocateTimeout(time.Second))

	s.RequestLocation()

	override := model.Coordinates{Latitude: 51.2194, Longitude: 4.4025}
	s.SetManualLocation(override)

	// Let the stale acquisition finish; its result must be dropped.
	close(p.release)
	time.Sleep(50 * time.Millisecond)

	loc := s.Location()
	require.NotNil(t, loc.Coordinates)
	assert.Equal(t, override, *loc.Coordinates)
}

func TestStartStopRefresh(t *testing.T) {
	s := newTestSession(t, locate.Static{}, WithRefreshInterval(10*time.Millisecond))

	before := s.Records()
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	// The refreshed snapshot is a new collection; the old one stays valid.
	after := s.Records()
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
	}
}
