// Package exchange handles importing and exporting the catalog as CSV.
package exchange

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Styt0/airwave-aggregator/internal/model"
)

var columns = []string{
	"frequency", "name", "description", "category",
	"location_name", "latitude", "longitude",
	"mode", "source", "schedule", "language",
	"offset", "tone", "callsign",
}

// Export writes records as CSV. Derived fields (activity status, distance)
// are not part of the exchange format.
func Export(w io.Writer, records []model.FrequencyRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.Frequency,
			rec.Name,
			rec.Description,
			string(rec.Category),
			rec.Location.Name,
			strconv.FormatFloat(rec.Location.Coordinates.Latitude, 'f', -1, 64),
			strconv.FormatFloat(rec.Location.Coordinates.Longitude, 'f', -1, 64),
			rec.Mode,
			rec.Source,
			rec.Schedule,
			rec.Language,
			"", "", "",
		}
		if rec.Repeater != nil {
			row[11] = rec.Repeater.Offset
			row[12] = rec.Repeater.Tone
		}
		if rec.Aprs != nil {
			row[13] = rec.Aprs.Callsign
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write record %s: %w", rec.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Parse reads a CSV document and returns the entries as add-frequency
// inputs. Rows without a frequency or name are skipped; coordinate parse
// failures skip the row rather than failing the whole import.
func Parse(r io.Reader) ([]model.NewFrequencyInput, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	field := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var entries []model.NewFrequencyInput
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		freq := field(row, "frequency")
		name := field(row, "name")
		if freq == "" || name == "" {
			continue
		}
		lat, latErr := strconv.ParseFloat(field(row, "latitude"), 64)
		lon, lonErr := strconv.ParseFloat(field(row, "longitude"), 64)
		if latErr != nil || lonErr != nil {
			continue
		}

		in := model.NewFrequencyInput{
			Frequency:   freq,
			Name:        name,
			Description: field(row, "description"),
			Category:    model.Category(field(row, "category")),
			Location: model.Location{
				Name:        field(row, "location_name"),
				Coordinates: model.Coordinates{Latitude: lat, Longitude: lon},
			},
			Mode:     field(row, "mode"),
			Source:   field(row, "source"),
			Schedule: field(row, "schedule"),
			Language: field(row, "language"),
		}
		if offset, tone := field(row, "offset"), field(row, "tone"); offset != "" || tone != "" {
			in.Repeater = &model.RepeaterDetails{Offset: offset, Tone: tone}
		}
		if callsign := field(row, "callsign"); callsign != "" {
			in.Aprs = &model.AprsDetails{Callsign: callsign}
		}
		entries = append(entries, in)
	}
	return entries, nil
}
