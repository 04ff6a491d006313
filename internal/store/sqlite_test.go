package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Styt0/airwave-aggregator/internal/model"
)

func newTestDB(t *testing.T) (*DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := New(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, path
}

func TestFavoritesEmptyByDefault(t *testing.T) {
	db, _ := newTestDB(t)

	ids, err := db.Favorites()
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestToggleFavoritePersists(t *testing.T) {
	db, path := newTestDB(t)

	ids, err := db.ToggleFavorite("core-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"core-1"}, ids)

	ids, err = db.ToggleFavorite("core-5")
	require.NoError(t, err)
	assert.Equal(t, []string{"core-1", "core-5"}, ids)

	// Self-inverse.
	ids, err = db.ToggleFavorite("core-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"core-5"}, ids)

	// Survives a reopen.
	require.NoError(t, db.Close())
	db2, err := New(path)
	require.NoError(t, err)
	defer db2.Close()

	ids, err = db2.Favorites()
	require.NoError(t, err)
	assert.Equal(t, []string{"core-5"}, ids)
}

func TestCustomRecordsRoundTrip(t *testing.T) {
	db, path := newTestDB(t)

	recs, err := db.CustomRecords()
	require.NoError(t, err)
	assert.Empty(t, recs)

	last := time.Date(2025, 5, 1, 8, 30, 0, 0, time.UTC)
	rec := model.FrequencyRecord{
		ID:        "custom-1",
		Frequency: "145.650",
		Name:      "ON0ANT Repeater",
		Category:  model.CategoryRepeaters,
		Location: model.Location{
			Name:        "Antwerp",
			Coordinates: model.Coordinates{Latitude: 51.2194, Longitude: 4.4025},
		},
		ActivityStatus: model.ActivityNone,
		LastActivity:   &last,
		Repeater:       &model.RepeaterDetails{Offset: "-0.6 MHz", Tone: "131.8 Hz"},
	}
	require.NoError(t, db.AddCustomRecord(rec))

	require.NoError(t, db.Close())
	db2, err := New(path)
	require.NoError(t, err)
	defer db2.Close()

	recs, err = db2.CustomRecords()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, rec.ID, recs[0].ID)
	assert.Equal(t, rec.Location, recs[0].Location)
	require.NotNil(t, recs[0].Repeater)
	assert.Equal(t, "131.8 Hz", recs[0].Repeater.Tone)
	require.NotNil(t, recs[0].LastActivity)
	assert.True(t, last.Equal(*recs[0].LastActivity))
}

func TestAddCustomRecordAppends(t *testing.T) {
	db, _ := newTestDB(t)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, db.AddCustomRecord(model.FrequencyRecord{ID: id, Name: id}))
	}

	recs, err := db.CustomRecords()
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "a", recs[0].ID)
	assert.Equal(t, "b", recs[1].ID)
	assert.Equal(t, "c", recs[2].ID)
}

func TestMalformedEntriesFailSoft(t *testing.T) {
	db, _ := newTestDB(t)

	require.NoError(t, db.set(keyFavorites, "{not json"))
	require.NoError(t, db.set(keyCustomRecords, "[[["))

	ids, err := db.Favorites()
	require.NoError(t, err)
	assert.Empty(t, ids)

	recs, err := db.CustomRecords()
	require.NoError(t, err)
	assert.Empty(t, recs)

	// Toggling on top of a corrupt entry starts from empty.
	ids, err = db.ToggleFavorite("core-3")
	require.NoError(t, err)
	assert.Equal(t, []string{"core-3"}, ids)
}

func TestToggled(t *testing.T) {
	assert.Equal(t, []string{"a"}, toggled(nil, "a"))
	assert.Equal(t, []string{"a", "b"}, toggled([]string{"a"}, "b"))
	assert.Equal(t, []string{"b"}, toggled([]string{"a", "b"}, "a"))
	assert.Empty(t, toggled([]string{"a"}, "a"))
}
