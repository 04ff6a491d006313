package data

import "github.com/Styt0/airwave-aggregator/internal/model"

// volmetFrequencies lists aviation weather broadcast stations, after dxinfocentre.com.
var volmetFrequencies = []model.FrequencyRecord{
	{
		ID: "volmet-1", Frequency: "3.413", Name: "Shannon VOLMET",
		Description: "Aviation weather for North Atlantic, UK, and Ireland",
		Category:    model.CategoryVOLMET, Location: loc("Shannon, Ireland", 52.702, -8.925),
		LastActivity: minutesAgo(2), ActivityStatus: model.ActivityGreen,
		Mode: "USB", Source: "DX Info Centre", Schedule: "H+00, H+30", Language: "English",
	},
	{
		ID: "volmet-2", Frequency: "5.505", Name: "Shannon VOLMET",
		Description: "Aviation weather for North Atlantic, UK, and Ireland (Alt)",
		Category:    model.CategoryVOLMET, Location: loc("Shannon, Ireland", 52.702, -8.925),
		LastActivity: minutesAgo(8), ActivityStatus: model.ActivityYellow,
		Mode: "USB", Source: "DX Info Centre", Schedule: "H+00, H+30", Language: "English",
	},
	{
		ID: "volmet-3", Frequency: "8.957", Name: "New York VOLMET",
		Description: "Aviation weather for North America and Atlantic",
		Category:    model.CategoryVOLMET, Location: loc("New York, USA", 40.713, -74.006),
		LastActivity: minutesAgo(4), ActivityStatus: model.ActivityGreen,
		Mode: "USB", Source: "DX Info Centre", Schedule: "H+00, H+20, H+40", Language: "English",
	},
	{
		ID: "volmet-4", Frequency: "6.604", Name: "London VOLMET",
		Description: "Aviation weather for UK and Western Europe",
		Category:    model.CategoryVOLMET, Location: loc("London, UK", 51.507, -0.128),
		LastActivity: minutesAgo(16), ActivityStatus: model.ActivityOrange,
		Mode: "USB", Source: "DX Info Centre", Schedule: "Continuous", Language: "English",
	},
	{
		ID: "volmet-5", Frequency: "11.253", Name: "RAF VOLMET",
		Description: "Military aviation weather for European bases",
		Category:    model.CategoryVOLMET, Location: loc("UK", 51.507, -0.128),
		LastActivity: minutesAgo(44), ActivityStatus: model.ActivityRed,
		Mode: "USB", Source: "DX Info Centre", Schedule: "Continuous", Language: "English",
	},
	{
		ID: "volmet-6", Frequency: "10.051", Name: "Stockholm VOLMET",
		Description: "Aviation weather for Scandinavia",
		Category:    model.CategoryVOLMET, Location: loc("Stockholm, Sweden", 59.329, 18.069),
		LastActivity: minutesAgo(1), ActivityStatus: model.ActivityGreen,
		Mode: "USB", Source: "DX Info Centre", Schedule: "H+15, H+45", Language: "English",
	},
	{
		ID: "volmet-7", Frequency: "127.600", Name: "Brussels VOLMET",
		Description: "Aviation weather for Brussels and surrounding airports",
		Category:    model.CategoryVOLMET, Location: loc("Brussels, Belgium", 50.850, 4.352),
		LastActivity: minutesAgo(3), ActivityStatus: model.ActivityGreen,
		Mode: "AM", Source: "DX Info Centre", Schedule: "Continuous", Language: "English",
	},
	{
		ID: "volmet-8", Frequency: "126.400", Name: "Paris VOLMET",
		Description: "Aviation weather for Paris and surrounding airports",
		Category:    model.CategoryVOLMET, Location: loc("Paris, France", 48.857, 2.352),
		LastActivity: minutesAgo(25), ActivityStatus: model.ActivityOrange,
		Mode: "AM", Source: "DX Info Centre", Schedule: "Continuous", Language: "English/French",
	},
}
