package data

import "github.com/Styt0/airwave-aggregator/internal/model"

// coreFrequencies is the general-purpose dataset spanning most categories.
var coreFrequencies = []model.FrequencyRecord{
	{
		ID: "core-1", Frequency: "118.950", Name: "Brussels Airport ATIS",
		Description: "Automatic Terminal Information Service for Brussels Airport",
		Category:    model.CategoryAirband, Location: loc("Brussels Airport", 50.9013, 4.4844),
		LastActivity: minutesAgo(2), ActivityStatus: model.ActivityGreen,
	},
	{
		ID: "core-2", Frequency: "119.350", Name: "Brussels Airport Tower",
		Description: "Main control tower frequency",
		Category:    model.CategoryAirband, Location: loc("Brussels Airport", 50.9013, 4.4844),
		LastActivity: minutesAgo(7), ActivityStatus: model.ActivityYellow,
	},
	{
		ID: "core-3", Frequency: "121.800", Name: "Brussels Airport Ground",
		Description: "Ground control services",
		Category:    model.CategoryAirband, Location: loc("Brussels Airport", 50.9013, 4.4844),
		LastActivity: minutesAgo(21), ActivityStatus: model.ActivityOrange,
	},
	{
		ID: "core-4", Frequency: "126.905", Name: "Antwerp Approach",
		Description: "Approach control for Antwerp Airport",
		Category:    model.CategoryAirband, Location: loc("Antwerp Airport", 51.1894, 4.4603),
		LastActivity: minutesAgo(45), ActivityStatus: model.ActivityRed,
	},
	{
		ID: "core-5", Frequency: "145.500", Name: "VHF Calling Frequency",
		Description: "Common simplex calling frequency",
		Category:    model.CategoryVHF, Location: loc("National", 50.8503, 4.3517),
		LastActivity: minutesAgo(3), ActivityStatus: model.ActivityGreen,
	},
	{
		ID: "core-6", Frequency: "145.775", Name: "ON0LG Repeater",
		Description: "Repeater in Leuven",
		Category:    model.CategoryRepeaters, Location: loc("Leuven", 50.8798, 4.7005),
		LastActivity: minutesAgo(18), ActivityStatus: model.ActivityOrange,
	},
	{
		ID: "core-7", Frequency: "438.825", Name: "ON0ANT UHF Repeater",
		Description: "Antwerp repeater with wide coverage",
		Category:    model.CategoryUHF, Location: loc("Antwerp", 51.2194, 4.4025),
		LastActivity: nil, ActivityStatus: model.ActivityNone,
	},
	{
		ID: "core-8", Frequency: "7.030", Name: "CW QRP Calling",
		Description: "QRP CW calling frequency",
		Category:    model.CategoryCW, Location: loc("National", 50.8503, 4.3517),
		LastActivity: minutesAgo(59), ActivityStatus: model.ActivityRed,
	},
	{
		ID: "core-9", Frequency: "14.285", Name: "SSB International",
		Description: "20m SSB common frequency",
		Category:    model.CategoryHF, Location: loc("International", 50.8503, 4.3517),
		LastActivity: minutesAgo(8), ActivityStatus: model.ActivityYellow,
	},
	{
		ID: "core-10", Frequency: "433.500", Name: "UHF Simplex",
		Description: "Popular UHF simplex frequency",
		Category:    model.CategoryUHF, Location: loc("National", 50.8503, 4.3517),
		LastActivity: minutesAgo(4), ActivityStatus: model.ActivityGreen,
	},
	{
		ID: "core-11", Frequency: "3.560", Name: "CW Regional",
		Description: "80m regional CW frequency",
		Category:    model.CategoryCW, Location: loc("Regional", 50.8503, 4.3517),
		LastActivity: minutesAgo(29), ActivityStatus: model.ActivityOrange,
	},
	{
		ID: "core-12", Frequency: "7.150", Name: "40m Voice",
		Description: "Popular voice frequency in 40m band",
		Category:    model.CategoryHF, Location: loc("International", 50.8503, 4.3517),
		LastActivity: minutesAgo(15), ActivityStatus: model.ActivityOrange,
	},
	{
		ID: "core-13", Frequency: "118.250", Name: "Liège Airport Tower",
		Description: "Liège Airport main control",
		Category:    model.CategoryAirband, Location: loc("Liège Airport", 50.6374, 5.4437),
		LastActivity: minutesAgo(12), ActivityStatus: model.ActivityYellow,
	},
	{
		ID: "core-14", Frequency: "145.425", Name: "ON0DST Repeater",
		Description: "Digital voice repeater in Diest",
		Category:    model.CategoryRepeaters, Location: loc("Diest", 50.9848, 5.0513),
		LastActivity: minutesAgo(1), ActivityStatus: model.ActivityGreen,
	},
	{
		ID: "core-15", Frequency: "433.125", Name: "ON0UHF Repeater",
		Description: "UHF repeater with excellent coverage",
		Category:    model.CategoryRepeaters, Location: loc("Brussels", 50.8503, 4.3517),
		LastActivity: minutesAgo(6), ActivityStatus: model.ActivityYellow,
	},
	{
		ID: "core-16", Frequency: "145.800", Name: "ISS Downlink Voice",
		Description: "International Space Station voice communications downlink",
		Category:    model.CategorySpace, Location: loc("Low Earth Orbit", 0, 0),
		LastActivity: minutesAgo(3), ActivityStatus: model.ActivityGreen,
	},
	{
		ID: "core-17", Frequency: "437.800", Name: "ISS Packet Radio",
		Description: "ISS APRS Packet Radio System",
		Category:    model.CategorySpace, Location: loc("Low Earth Orbit", 0, 0),
		LastActivity: minutesAgo(17), ActivityStatus: model.ActivityOrange,
	},
	{
		ID: "core-18", Frequency: "145.825", Name: "ISS Digipeater",
		Description: "ISS Digital Repeater for APRS",
		Category:    model.CategorySpace, Location: loc("Low Earth Orbit", 0, 0),
		LastActivity: minutesAgo(8), ActivityStatus: model.ActivityYellow,
	},
	{
		ID: "core-19", Frequency: "137.100", Name: "NOAA-19 APT",
		Description: "NOAA Weather Satellite Automatic Picture Transmission",
		Category:    model.CategorySatellite, Location: loc("Polar Orbit", 0, 0),
		LastActivity: minutesAgo(45), ActivityStatus: model.ActivityRed,
	},
	{
		ID: "core-20", Frequency: "137.620", Name: "METEOR-M2 LRPT",
		Description: "Russian Meteor Weather Satellite",
		Category:    model.CategorySatellite, Location: loc("Polar Orbit", 0, 0),
		LastActivity: minutesAgo(2), ActivityStatus: model.ActivityGreen,
	},
	{
		ID: "core-21", Frequency: "435.270", Name: "AMSAT OSCAR-7",
		Description: "One of the oldest operational amateur radio satellites",
		Category:    model.CategorySatellite, Location: loc("Polar Orbit", 0, 0),
		LastActivity: minutesAgo(30), ActivityStatus: model.ActivityOrange,
	},
	{
		ID: "core-22", Frequency: "162.400", Name: "NOAA Weather Radio",
		Description: "National weather service broadcast",
		Category:    model.CategoryWeather, Location: loc("National", 50.8503, 4.3517),
		LastActivity: minutesAgo(5), ActivityStatus: model.ActivityGreen,
	},
	{
		ID: "core-23", Frequency: "162.425", Name: "NOAA Weather Alt",
		Description: "Alternative NOAA weather frequency",
		Category:    model.CategoryWeather, Location: loc("National", 50.8503, 4.3517),
		LastActivity: minutesAgo(9), ActivityStatus: model.ActivityYellow,
	},
	{
		ID: "core-24", Frequency: "243.000", Name: "Military Air Distress",
		Description: "Military aircraft emergency frequency",
		Category:    model.CategoryMilitary, Location: loc("National Airspace", 50.8503, 4.3517),
		LastActivity: nil, ActivityStatus: model.ActivityNone,
	},
	{
		ID: "core-25", Frequency: "255.400", Name: "NATO Common",
		Description: "Common NATO military air operations",
		Category:    model.CategoryMilitary, Location: loc("European Airspace", 50.8503, 4.3517),
		LastActivity: minutesAgo(25), ActivityStatus: model.ActivityOrange,
	},
	{
		ID: "core-26", Frequency: "156.800", Name: "Marine Channel 16",
		Description: "International maritime distress and calling frequency",
		Category:    model.CategoryMaritime, Location: loc("Coastal Areas", 51.2194, 2.9282),
		LastActivity: minutesAgo(4), ActivityStatus: model.ActivityGreen,
	},
	{
		ID: "core-27", Frequency: "156.650", Name: "Marine Channel 13",
		Description: "Bridge-to-bridge navigation",
		Category:    model.CategoryMaritime, Location: loc("Coastal Areas", 51.2194, 2.9282),
		LastActivity: minutesAgo(18), ActivityStatus: model.ActivityOrange,
	},
	{
		ID: "core-28", Frequency: "14.070", Name: "FT8 20m",
		Description: "Popular FT8 digital mode frequency on 20m band",
		Category:    model.CategoryDigital, Location: loc("International", 50.8503, 4.3517),
		LastActivity: minutesAgo(1), ActivityStatus: model.ActivityGreen,
	},
	{
		ID: "core-29", Frequency: "7.074", Name: "FT8 40m",
		Description: "FT8 digital mode frequency on 40m band",
		Category:    model.CategoryDigital, Location: loc("International", 50.8503, 4.3517),
		LastActivity: minutesAgo(7), ActivityStatus: model.ActivityYellow,
	},
	{
		ID: "core-30", Frequency: "10.136", Name: "WSPR 30m",
		Description: "Weak Signal Propagation Reporter Network",
		Category:    model.CategoryDigital, Location: loc("International", 50.8503, 4.3517),
		LastActivity: minutesAgo(15), ActivityStatus: model.ActivityOrange,
	},
}
