package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Styt0/airwave-aggregator/internal/data"
	"github.com/Styt0/airwave-aggregator/internal/model"
	"github.com/Styt0/airwave-aggregator/internal/store"
)

func TestGetAllFrequencies(t *testing.T) {
	svc := NewService(store.NewMemory())

	recs, err := svc.GetAllFrequencies()
	require.NoError(t, err)
	static := data.All()
	require.Len(t, recs, len(static))
	for i := range static {
		assert.Equal(t, static[i].ID, recs[i].ID)
	}
}

func TestAddFrequency(t *testing.T) {
	svc := NewService(store.NewMemory())

	in := model.NewFrequencyInput{
		Frequency:   "145.500",
		Name:        "Simplex Calling",
		Description: "2m FM calling frequency",
		Category:    model.CategoryAmateur,
		Location: model.Location{
			Name:        "Ghent",
			Coordinates: model.Coordinates{Latitude: 51.0543, Longitude: 3.7174},
		},
		Mode: "FM",
	}

	rec, err := svc.AddFrequency(in)
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, model.ActivityNone, rec.ActivityStatus)
	assert.Nil(t, rec.LastActivity)
	assert.Equal(t, in.Name, rec.Name)
	assert.Equal(t, in.Location, rec.Location)

	// A second add gets its own id.
	rec2, err := svc.AddFrequency(in)
	require.NoError(t, err)
	assert.NotEqual(t, rec.ID, rec2.ID)

	// Both appear after the static datasets, in insertion order.
	recs, err := svc.GetAllFrequencies()
	require.NoError(t, err)
	static := len(data.All())
	require.Len(t, recs, static+2)
	assert.Equal(t, rec.ID, recs[static].ID)
	assert.Equal(t, rec2.ID, recs[static+1].ID)
}

func TestAddFrequencyIgnoresDerivedInput(t *testing.T) {
	svc := NewService(store.NewMemory())

	rec, err := svc.AddFrequency(model.NewFrequencyInput{
		Frequency: "121.500",
		Name:      "Guard",
		Category:  model.CategoryAirband,
		Location:  model.Location{Name: "Everywhere"},
	})
	require.NoError(t, err)
	assert.Equal(t, model.ActivityNone, rec.ActivityStatus)
	assert.Nil(t, rec.LastActivity)
	assert.Nil(t, rec.Distance)
}

func TestToggleFavorite(t *testing.T) {
	svc := NewService(store.NewMemory())

	ids, err := svc.ToggleFavorite("core-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"core-1"}, ids)

	ids, err = svc.ToggleFavorite("core-2")
	require.NoError(t, err)
	assert.Equal(t, []string{"core-1", "core-2"}, ids)

	// Toggling twice is the identity.
	ids, err = svc.ToggleFavorite("core-2")
	require.NoError(t, err)
	assert.Equal(t, []string{"core-1"}, ids)

	favs, err := svc.Favorites()
	require.NoError(t, err)
	assert.Equal(t, []string{"core-1"}, favs)
}

func TestAddThenDeriveActivity(t *testing.T) {
	svc := NewService(store.NewMemory())

	_, err := svc.AddFrequency(model.NewFrequencyInput{
		Frequency: "433.500",
		Name:      "UHF Simplex",
		Category:  model.CategoryUHF,
		Location:  model.Location{Name: "Antwerp"},
	})
	require.NoError(t, err)

	recs, err := svc.GetAllFrequencies()
	require.NoError(t, err)

	// Derivation keeps a user-added record at none.
	now := time.Now()
	derived := UpdateActivityStatusAt(recs, now)
	assert.Equal(t, model.ActivityNone, derived[len(derived)-1].ActivityStatus)
}
