package data

import "github.com/Styt0/airwave-aggregator/internal/model"

// amateurFrequencies lists common amateur band-plan frequencies.
var amateurFrequencies = []model.FrequencyRecord{
	{
		ID: "am-1", Frequency: "14.074", Name: "FT8 International",
		Description: "FT8 Digital Mode - 20m Band - Very Popular",
		Category:    model.CategoryAmateur, Location: loc("International", 50.850, 4.352),
		LastActivity: minutesAgo(1), ActivityStatus: model.ActivityGreen,
		Mode: "FT8", Source: "Amateur Radio Band Plan",
	},
	{
		ID: "am-2", Frequency: "3.573", Name: "FT8 80m",
		Description: "FT8 Digital Mode - 80m Band - European Night Activity",
		Category:    model.CategoryAmateur, Location: loc("Europe", 50.850, 4.352),
		LastActivity: minutesAgo(3), ActivityStatus: model.ActivityGreen,
		Mode: "FT8", Source: "Amateur Radio Band Plan",
	},
	{
		ID: "am-3", Frequency: "7.074", Name: "FT8 40m",
		Description: "FT8 Digital Mode - 40m Band - Active Day & Night",
		Category:    model.CategoryAmateur, Location: loc("Europe", 50.850, 4.352),
		LastActivity: minutesAgo(2), ActivityStatus: model.ActivityGreen,
		Mode: "FT8", Source: "Amateur Radio Band Plan",
	},
	{
		ID: "am-4", Frequency: "144.800", Name: "APRS 2m",
		Description: "Automatic Packet Reporting System - VHF",
		Category:    model.CategoryAmateur, Location: loc("Belgium", 50.850, 4.352),
		LastActivity: minutesAgo(5), ActivityStatus: model.ActivityGreen,
		Mode: "APRS", Source: "Amateur Radio Band Plan",
	},
	{
		ID: "am-5", Frequency: "144.300", Name: "SSB Calling",
		Description: "2m SSB/CW Calling Frequency",
		Category:    model.CategoryAmateur, Location: loc("Europe", 50.850, 4.352),
		LastActivity: minutesAgo(8), ActivityStatus: model.ActivityYellow,
		Mode: "SSB", Source: "Amateur Radio Band Plan",
	},
}
