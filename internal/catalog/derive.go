// Package catalog implements the frequency catalog: pure derivation
// functions (activity status, distance, filtering, sorting) and the
// aggregator that merges the static datasets with persisted user records.
package catalog

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/Styt0/airwave-aggregator/internal/model"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// ActivityStatusAt buckets a last-activity timestamp by the whole minutes
// elapsed at now. Band upper bounds are inclusive: <=5 green, <=10 yellow,
// <=30 orange, <=60 red, beyond that (or with no timestamp) none.
func ActivityStatusAt(lastActivity *time.Time, now time.Time) model.ActivityStatus {
	if lastActivity == nil {
		return model.ActivityNone
	}
	elapsed := int(math.Floor(now.Sub(*lastActivity).Minutes()))
	switch {
	case elapsed <= 5:
		return model.ActivityGreen
	case elapsed <= 10:
		return model.ActivityYellow
	case elapsed <= 30:
		return model.ActivityOrange
	case elapsed <= 60:
		return model.ActivityRed
	default:
		return model.ActivityNone
	}
}

// ActivityStatusFor is ActivityStatusAt against the current clock.
func ActivityStatusFor(lastActivity *time.Time) model.ActivityStatus {
	return ActivityStatusAt(lastActivity, time.Now())
}

// DistanceKm returns the great-circle distance between two points in km,
// rounded to one decimal place.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return math.Round(earthRadiusKm*c*10) / 10
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// FilterByCategory returns the records matching category, order preserved.
// The All sentinel returns the input unchanged.
func FilterByCategory(records []model.FrequencyRecord, category model.Category) []model.FrequencyRecord {
	if category == model.CategoryAll {
		return records
	}
	var out []model.FrequencyRecord
	for _, rec := range records {
		if rec.Category == category {
			out = append(out, rec)
		}
	}
	return out
}

// FilterByText returns the records whose name, description, frequency text,
// location name, category or callsign contains term, case-insensitively.
// A blank or whitespace-only term returns the input unchanged.
func FilterByText(records []model.FrequencyRecord, term string) []model.FrequencyRecord {
	term = strings.TrimSpace(strings.ToLower(term))
	if term == "" {
		return records
	}
	var out []model.FrequencyRecord
	for _, rec := range records {
		if recordMatches(rec, term) {
			out = append(out, rec)
		}
	}
	return out
}

func recordMatches(rec model.FrequencyRecord, term string) bool {
	fields := []string{
		rec.Name,
		rec.Description,
		rec.Frequency,
		rec.Location.Name,
		string(rec.Category),
	}
	if rec.Aprs != nil {
		fields = append(fields, rec.Aprs.Callsign)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// SortByDistance returns a copy sorted ascending by distance. Records
// without a distance sort last; ties keep their input order.
func SortByDistance(records []model.FrequencyRecord) []model.FrequencyRecord {
	out := make([]model.FrequencyRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return distanceOrInf(out[i]) < distanceOrInf(out[j])
	})
	return out
}

func distanceOrInf(rec model.FrequencyRecord) float64 {
	if rec.Distance == nil {
		return math.Inf(1)
	}
	return *rec.Distance
}

// UpdateActivityStatusAt re-derives the activity status of every record at
// the given clock reading. The input is left untouched; callers holding the
// old snapshot keep a valid collection.
func UpdateActivityStatusAt(records []model.FrequencyRecord, now time.Time) []model.FrequencyRecord {
	out := make([]model.FrequencyRecord, len(records))
	for i, rec := range records {
		rec.ActivityStatus = ActivityStatusAt(rec.LastActivity, now)
		out[i] = rec
	}
	return out
}

// UpdateActivityStatus is UpdateActivityStatusAt against the current clock.
func UpdateActivityStatus(records []model.FrequencyRecord) []model.FrequencyRecord {
	return UpdateActivityStatusAt(records, time.Now())
}

// ByLocation attaches the distance from (lat, lon) to every record and
// returns the result distance-sorted. Distances are always recomputed, so a
// record never carries a stale value from a previous location.
func ByLocation(records []model.FrequencyRecord, lat, lon float64) []model.FrequencyRecord {
	out := make([]model.FrequencyRecord, len(records))
	for i, rec := range records {
		d := DistanceKm(lat, lon, rec.Location.Coordinates.Latitude, rec.Location.Coordinates.Longitude)
		rec.Distance = &d
		out[i] = rec
	}
	return SortByDistance(out)
}

// Favorites returns the records whose id is in favoriteIDs, in record order.
// Ids that resolve to no record are inert.
func Favorites(records []model.FrequencyRecord, favoriteIDs []string) []model.FrequencyRecord {
	ids := make(map[string]struct{}, len(favoriteIDs))
	for _, id := range favoriteIDs {
		ids[id] = struct{}{}
	}
	var out []model.FrequencyRecord
	for _, rec := range records {
		if _, ok := ids[rec.ID]; ok {
			out = append(out, rec)
		}
	}
	return out
}
