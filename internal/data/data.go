// Package data holds the static frequency datasets that seed the catalog.
//
// Each dataset is authored independently, so record ids carry a per-dataset
// prefix to keep the union collision-free. Static records are immutable for
// the process lifetime; their activity seeds are derived from the process
// start time.
package data

import (
	"time"

	"github.com/Styt0/airwave-aggregator/internal/model"
)

var loadedAt = time.Now()

// minutesAgo returns a last-activity seed n minutes before process start.
func minutesAgo(n int) *time.Time {
	t := loadedAt.Add(-time.Duration(n) * time.Minute)
	return &t
}

func loc(name string, lat, lon float64) model.Location {
	return model.Location{Name: name, Coordinates: model.Coordinates{Latitude: lat, Longitude: lon}}
}

// Datasets returns every static dataset in its fixed aggregation order.
func Datasets() [][]model.FrequencyRecord {
	return [][]model.FrequencyRecord{
		coreFrequencies,
		belgianRepeaters,
		volmetFrequencies,
		utilityFrequencies,
		amateurFrequencies,
	}
}

// All returns the union of every static dataset, static order preserved.
func All() []model.FrequencyRecord {
	var out []model.FrequencyRecord
	for _, ds := range Datasets() {
		out = append(out, ds...)
	}
	return out
}
