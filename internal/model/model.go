// Package model defines shared data structures.
package model

import "time"

// Category classifies a frequency record. The set is closed and append-only:
// renderers treat unknown values as unstyled, never as an error.
type Category string

const (
	CategoryAirband    Category = "Airband"
	CategoryVHF        Category = "VHF"
	CategoryUHF        Category = "UHF"
	CategoryRepeaters  Category = "Repeaters"
	CategoryCW         Category = "CW"
	CategoryHF         Category = "HF"
	CategorySatellite  Category = "Satellite"
	CategorySpace      Category = "Space"
	CategoryMilitary   Category = "Military"
	CategoryWeather    Category = "Weather"
	CategoryMaritime   Category = "Maritime"
	CategoryDigital    Category = "Digital"
	CategoryAmateur    Category = "Amateur"
	CategoryVOLMET     Category = "VOLMET"
	CategoryUtility    Category = "Utility"
	CategoryAirport    Category = "Airport"
	CategoryAPRS       Category = "APRS"
	CategoryLoRa       Category = "LoRa"
	CategoryMeshtastic Category = "Meshtastic"
	CategoryModeS      Category = "ModeS"

	// CategoryAll is a filter sentinel. It is never stored on a record.
	CategoryAll Category = "All"
)

// Categories returns the closed enumeration of record categories,
// excluding the All sentinel.
func Categories() []Category {
	return []Category{
		CategoryAirband, CategoryVHF, CategoryUHF, CategoryRepeaters,
		CategoryCW, CategoryHF, CategorySatellite, CategorySpace,
		CategoryMilitary, CategoryWeather, CategoryMaritime, CategoryDigital,
		CategoryAmateur, CategoryVOLMET, CategoryUtility, CategoryAirport,
		CategoryAPRS, CategoryLoRa, CategoryMeshtastic, CategoryModeS,
	}
}

// Valid reports whether c is a member of the record category enumeration.
func (c Category) Valid() bool {
	for _, k := range Categories() {
		if c == k {
			return true
		}
	}
	return false
}

// ActivityStatus is a coarse recency bucket derived from the time elapsed
// since a record's last observed activity.
type ActivityStatus string

const (
	ActivityGreen  ActivityStatus = "green"  // active within 5 minutes
	ActivityYellow ActivityStatus = "yellow" // active within 10 minutes
	ActivityOrange ActivityStatus = "orange" // active within 30 minutes
	ActivityRed    ActivityStatus = "red"    // active within the hour
	ActivityNone   ActivityStatus = "none"   // no recent activity
)

// Coordinates is a geographical point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is a named geographical point.
type Location struct {
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates"`
}

// RepeaterDetails holds the attributes specific to repeater entries.
type RepeaterDetails struct {
	Offset string `json:"offset,omitempty"`
	Tone   string `json:"tone,omitempty"`
}

// AirportDetails holds the attributes specific to airport entries.
type AirportDetails struct {
	ICAOCode       string   `json:"icaoCode,omitempty"`
	IATACode       string   `json:"iataCode,omitempty"`
	Type           string   `json:"type,omitempty"`
	Runways        []string `json:"runways,omitempty"`
	ElevationFt    int      `json:"elevationFt,omitempty"`
	Services       []string `json:"services,omitempty"`
	OperationHours string   `json:"operationHours,omitempty"`
}

// AprsDetails holds the attributes specific to APRS station entries.
type AprsDetails struct {
	Callsign string `json:"callsign,omitempty"`
	Symbol   string `json:"symbol,omitempty"`
	Course   string `json:"course,omitempty"`
	Speed    string `json:"speed,omitempty"`
	Altitude string `json:"altitude,omitempty"`
	Comment  string `json:"comment,omitempty"`
	Path     string `json:"path,omitempty"`
}

// FrequencyRecord is one catalog entry. Frequency is display text (MHz unless
// the value itself carries another unit); it is not validated as a physical
// quantity. Distance is populated only by a location-based sort.
type FrequencyRecord struct {
	ID             string         `json:"id"`
	Frequency      string         `json:"frequency"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Category       Category       `json:"category"`
	Location       Location       `json:"location"`
	ActivityStatus ActivityStatus `json:"activityStatus"`
	LastActivity   *time.Time     `json:"lastActivity"`
	Distance       *float64       `json:"distance,omitempty"`

	Mode     string `json:"mode,omitempty"`
	Source   string `json:"source,omitempty"`
	Schedule string `json:"schedule,omitempty"`
	Language string `json:"language,omitempty"`

	Repeater *RepeaterDetails `json:"repeater,omitempty"`
	Airport  *AirportDetails  `json:"airport,omitempty"`
	Aprs     *AprsDetails     `json:"aprs,omitempty"`
}

// NewFrequencyInput is the payload of the add-frequency flow. Any
// activity-like state in the input is ignored: new records always start
// with no observed activity.
type NewFrequencyInput struct {
	Frequency   string   `json:"frequency"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Location    Location `json:"location"`

	Mode     string `json:"mode,omitempty"`
	Source   string `json:"source,omitempty"`
	Schedule string `json:"schedule,omitempty"`
	Language string `json:"language,omitempty"`

	Repeater *RepeaterDetails `json:"repeater,omitempty"`
	Airport  *AirportDetails  `json:"airport,omitempty"`
	Aprs     *AprsDetails     `json:"aprs,omitempty"`
}

// UserLocation is the tri-state of location acquisition: unresolved
// (nil coordinates, not loading), resolving (loading), or resolved/failed.
// Loading and a non-empty Error are never set together.
type UserLocation struct {
	Coordinates *Coordinates `json:"coordinates"`
	Loading     bool         `json:"loading"`
	Error       string       `json:"error,omitempty"`
}
